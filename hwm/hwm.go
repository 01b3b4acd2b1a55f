// Package hwm implements a growable high-water-mark byte buffer.
//
// A Buffer keeps its allocation across resets, growing it only when a
// parse needs more room than any before. String contents follow a
// NUL-terminator convention: the terminator lives one byte past the
// logical length and is not part of it.
package hwm

import "github.com/pushfix/pushfix/json"

// Buffer accumulates bytes, re-using its allocation across resets.
// The zero value is an empty buffer ready for use.
type Buffer struct {
	data []byte // logical contents; capacity may include the NUL
}

// Reset clears the buffer, keeping its allocation.
func (b *Buffer) Reset() {
	b.data = b.data[:0]
}

// Len returns the logical length, excluding the NUL terminator.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Append appends p to the buffer.
func (b *Buffer) Append(p []byte) {
	b.data = append(b.data, p...)
}

// SetString replaces the contents with s and NUL-terminates.
func (b *Buffer) SetString(s string) {
	b.data = append(b.data[:0], s...)
	b.Terminate()
}

// Terminate writes a NUL byte just past the logical length, growing the
// allocation if needed. The logical length does not change.
func (b *Buffer) Terminate() {
	b.data = append(b.data, 0)
	b.data = b.data[:len(b.data)-1]
}

// Bytes returns the logical contents, without the terminator.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Mem returns the contents including the NUL terminator.
// Valid only after Terminate.
func (b *Buffer) Mem() []byte {
	return b.data[:len(b.data)+1]
}

// String returns the logical contents as a string.
func (b *Buffer) String() string {
	return string(b.data)
}

// ToJSON appends the contents as a JSON hex string to dst.
func (b *Buffer) ToJSON(dst []byte) []byte {
	return json.Hex(dst, b.data)
}

// FromJSON replaces the contents with a hex string parsed from src.
func (b *Buffer) FromJSON(src []byte) (err error) {
	b.data, err = json.UnHex(b.data[:0], src)
	return err
}
