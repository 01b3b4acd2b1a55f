package comb

import "errors"

var (
	ErrShort = errors.New("completed before the byte minimum")
	ErrLimit = errors.New("byte limit reached mid-value")
)
