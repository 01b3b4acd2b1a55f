package binary

import "google.golang.org/protobuf/encoding/protowire"

// AppendVarint appends the base-128 varint encoding of v to dst.
func AppendVarint(dst []byte, v uint64) []byte {
	return protowire.AppendVarint(dst, v)
}

// AppendVarint32 appends v encoded per the protobuf int32 wire rules:
// negative values are sign-extended to 64 bits, taking 10 bytes.
func AppendVarint32(dst []byte, v int32) []byte {
	return protowire.AppendVarint(dst, uint64(int64(v)))
}

// AppendZigzag32 appends the zig-zag varint encoding of v.
func AppendZigzag32(dst []byte, v int32) []byte {
	return protowire.AppendVarint(dst, protowire.EncodeZigZag(int64(v)))
}

// AppendZigzag64 appends the zig-zag varint encoding of v.
func AppendZigzag64(dst []byte, v int64) []byte {
	return protowire.AppendVarint(dst, protowire.EncodeZigZag(v))
}

// Varint decodes one whole varint from the start of buf, returning the
// value and the number of bytes read (n <= 0 on error).
func Varint(buf []byte) (uint64, int) {
	return protowire.ConsumeVarint(buf)
}

// SizeVarint returns the encoded length of v in bytes.
func SizeVarint(v uint64) int {
	return protowire.SizeVarint(v)
}
