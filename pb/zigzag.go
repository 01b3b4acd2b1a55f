package pb

import "google.golang.org/protobuf/encoding/protowire"

// Zigzag32 decodes a zig-zag-encoded 32-bit signed integer.
func Zigzag32(v uint32) int32 {
	return int32(protowire.DecodeZigZag(uint64(v)))
}

// Zigzag64 decodes a zig-zag-encoded 64-bit signed integer.
func Zigzag64(v uint64) int64 {
	return protowire.DecodeZigZag(v)
}
