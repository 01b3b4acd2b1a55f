package pb

import "errors"

var (
	ErrVarint    = errors.New("malformed varint")
	ErrSize      = errors.New("varint size overflow")
	ErrFieldNum  = errors.New("invalid field number")
	ErrFieldDupe = errors.New("duplicate field number")
	ErrWireType  = errors.New("wire type mismatch")
	ErrGroup     = errors.New("group wire types not supported")
	ErrTruncated = errors.New("length-delimited field truncated")
)
