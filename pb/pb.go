// Package pb implements incremental Protocol Buffers decoding on top of
// push parser callbacks.
//
// This package can read the standard protobuf binary wire format:
// base-128 varints, zig-zag signed integers, and length-delimited
// fields, dispatched to per-field value callbacks through a FieldMap.
// Like every push callback, the decoders suspend between any two bytes
// and resume on the next chunk.
package pb

import "google.golang.org/protobuf/encoding/protowire"

// WireType is the 3-bit type suffix of a protobuf tag.
type WireType byte

//go:generate go run github.com/dmarkham/enumer -type WireType -trimprefix WIRE_
const (
	WIRE_VARINT      WireType = 0 // base-128 varint
	WIRE_FIXED64     WireType = 1 // 8 bytes, little-endian
	WIRE_BYTES       WireType = 2 // length-delimited
	WIRE_GROUP_START WireType = 3 // deprecated, not supported
	WIRE_GROUP_END   WireType = 4 // deprecated, not supported
	WIRE_FIXED32     WireType = 5 // 4 bytes, little-endian
)

// Tag holds a protobuf field tag: (field number << 3) | wire type.
type Tag uint64

// NewTag returns the tag for the given field number and wire type.
func NewTag(num uint32, wt WireType) Tag {
	return Tag(num)<<3 | Tag(wt&7)
}

// Num returns the field number.
func (t Tag) Num() uint32 {
	return uint32(t >> 3)
}

// Type returns the wire type.
func (t Tag) Type() WireType {
	return WireType(t & 7)
}

// Valid returns true iff the field number is in the valid protobuf range.
func (t Tag) Valid() bool {
	n := t >> 3
	return n >= 1 && n <= Tag(protowire.MaxValidNumber)
}
