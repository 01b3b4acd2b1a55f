package pb

import (
	"github.com/pushfix/pushfix/binary"
	"github.com/pushfix/pushfix/comb"
	"github.com/pushfix/pushfix/hwm"
	"github.com/pushfix/pushfix/push"
)

// assign registers a reader composed with a pure store step under num.
func (fm *FieldMap) assign(name string, num uint32, wt WireType, reader push.Callback, store func(any) (any, error)) error {
	cb := comb.NewCompose(name, reader, comb.NewPure(name+".assign", store))
	if cb == nil {
		return push.ErrMemory
	}
	return fm.Add(name, num, wt, cb)
}

// AddUint32 registers a varint uint32 field assigned to dest.
// Later occurrences overwrite earlier ones.
func (fm *FieldMap) AddUint32(name string, num uint32, dest *uint32) error {
	return fm.assign(name, num, WIRE_VARINT, NewVarint32(name+".varint"),
		func(v any) (any, error) {
			*dest = v.(uint32)
			return v, nil
		})
}

// AddUint64 registers a varint uint64 field assigned to dest.
func (fm *FieldMap) AddUint64(name string, num uint32, dest *uint64) error {
	return fm.assign(name, num, WIRE_VARINT, NewVarint64(name+".varint"),
		func(v any) (any, error) {
			*dest = v.(uint64)
			return v, nil
		})
}

// AddInt32 registers a varint int32 field assigned to dest. Negative
// values arrive sign-extended to 64 bits and are truncated.
func (fm *FieldMap) AddInt32(name string, num uint32, dest *int32) error {
	return fm.assign(name, num, WIRE_VARINT, NewVarint32(name+".varint"),
		func(v any) (any, error) {
			*dest = int32(v.(uint32))
			return v, nil
		})
}

// AddInt64 registers a varint int64 field assigned to dest.
func (fm *FieldMap) AddInt64(name string, num uint32, dest *int64) error {
	return fm.assign(name, num, WIRE_VARINT, NewVarint64(name+".varint"),
		func(v any) (any, error) {
			*dest = int64(v.(uint64))
			return v, nil
		})
}

// AddSint32 registers a zig-zag-encoded sint32 field assigned to dest.
// Oversized values truncate to 32 bits before the zig-zag decode.
func (fm *FieldMap) AddSint32(name string, num uint32, dest *int32) error {
	return fm.assign(name, num, WIRE_VARINT, NewVarint32(name+".varint"),
		func(v any) (any, error) {
			*dest = Zigzag32(v.(uint32))
			return v, nil
		})
}

// AddSint64 registers a zig-zag-encoded sint64 field assigned to dest.
func (fm *FieldMap) AddSint64(name string, num uint32, dest *int64) error {
	return fm.assign(name, num, WIRE_VARINT, NewVarint64(name+".varint"),
		func(v any) (any, error) {
			*dest = Zigzag64(v.(uint64))
			return v, nil
		})
}

// AddFixed32 registers a 4-byte little-endian field assigned to dest.
func (fm *FieldMap) AddFixed32(name string, num uint32, dest *uint32) error {
	return fm.assign(name, num, WIRE_FIXED32, push.NewFixed(name+".fixed", 4),
		func(v any) (any, error) {
			*dest = binary.Lsb.Uint32(v.([]byte))
			return v, nil
		})
}

// AddFixed64 registers an 8-byte little-endian field assigned to dest.
func (fm *FieldMap) AddFixed64(name string, num uint32, dest *uint64) error {
	return fm.assign(name, num, WIRE_FIXED64, push.NewFixed(name+".fixed", 8),
		func(v any) (any, error) {
			*dest = binary.Lsb.Uint64(v.([]byte))
			return v, nil
		})
}

// AddHwmString registers a length-delimited string field copied into
// buf, NUL-terminated past its logical length.
func (fm *FieldMap) AddHwmString(name string, num uint32, buf *hwm.Buffer) error {
	cb := comb.NewCompose(name,
		NewVarintSize(name+".length"),
		push.NewHwmString(name+".string", buf))
	if cb == nil {
		return push.ErrMemory
	}
	return fm.Add(name, num, WIRE_BYTES, cb)
}

// AddSubmessage registers a length-delimited submessage field decoded
// by inner.
func (fm *FieldMap) AddSubmessage(name string, num uint32, inner *Message) error {
	cb := NewSubmessage(name, inner)
	if cb == nil {
		return push.ErrMemory
	}
	return fm.Add(name, num, WIRE_BYTES, cb)
}
