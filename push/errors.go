package push

import "errors"

var (
	ErrMemory = errors.New("invalid parser graph")
	ErrInput  = errors.New("invalid activation input")
	ErrEOF    = errors.New("unexpected end of stream")
	ErrData   = errors.New("unexpected data")
	ErrDone   = errors.New("parser already finished")
)
