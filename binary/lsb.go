// Package binary provides binary read/write methods.
package binary

import (
	"encoding/binary"
	"io"
)

var Lsb = lsb{
	binary.LittleEndian,
	binary.LittleEndian,
}

type lsb struct {
	binary.ByteOrder
	binary.AppendByteOrder
}

func (lsb) WriteUint8(w io.Writer, v uint8) (n int, err error) {
	b := [...]byte{
		byte(v),
	}
	return w.Write(b[:])
}

func (lsb) WriteUint32(w io.Writer, v uint32) (n int, err error) {
	b := [...]byte{
		byte(v),
		byte(v >> 8),
		byte(v >> 16),
		byte(v >> 24),
	}
	return w.Write(b[:])
}

func (lsb) WriteUint64(w io.Writer, v uint64) (n int, err error) {
	b := [...]byte{
		byte(v),
		byte(v >> 8),
		byte(v >> 16),
		byte(v >> 24),
		byte(v >> 32),
		byte(v >> 40),
		byte(v >> 48),
		byte(v >> 56),
	}
	return w.Write(b[:])
}
