package pb

import (
	"math"

	"github.com/pushfix/pushfix/push"
)

// maximum encoded length of a varint: 64 bits in 7-bit groups; negative
// 32-bit values arrive sign-extended to the full 10 bytes
const maxVarintLen = 10

// Varint64 reads a base-128 varint of up to 10 bytes, suspending
// between any two bytes. The result is a uint64.
type Varint64 struct {
	name  string
	value uint64
	shift uint
	count int
}

// NewVarint64 returns a new 64-bit varint callback.
func NewVarint64(name string) *Varint64 {
	if name == "" {
		name = "varint64"
	}
	return &Varint64{name: name}
}

func (cb *Varint64) Name() string { return cb.name }

func (cb *Varint64) Activate(input any) error {
	cb.value, cb.shift, cb.count = 0, 0, 0
	return nil
}

func (cb *Varint64) Process(buf []byte) push.Outcome {
	if len(buf) == 0 {
		return push.Fail(ErrVarint) // stream ended mid-varint
	}

	for i, b := range buf {
		cb.count++
		if cb.count == maxVarintLen && b > 1 {
			return push.Fail(ErrVarint) // overflows 64 bits
		}

		cb.value |= uint64(b&0x7f) << cb.shift
		cb.shift += 7

		if b < 0x80 {
			return push.Success(cb.value, buf[i+1:])
		}
		if cb.count == maxVarintLen {
			return push.Fail(ErrVarint) // 11th byte would be needed
		}
	}

	return push.More()
}

// Varint32 reads a varint like Varint64 but truncates the result to 32
// bits: protobuf encodes negative int32 values sign-extended to 64
// bits, so the encoding may still span 10 bytes. The result is a
// uint32.
type Varint32 struct {
	Varint64
}

// NewVarint32 returns a new 32-bit varint callback.
func NewVarint32(name string) *Varint32 {
	if name == "" {
		name = "varint32"
	}
	cb := &Varint32{}
	cb.Varint64.name = name
	return cb
}

func (cb *Varint32) Process(buf []byte) push.Outcome {
	out := cb.Varint64.Process(buf)
	if out.Status == push.SUCCESS {
		out.Result = uint32(out.Result.(uint64))
	}
	return out
}

// VarintSize reads a varint used as a byte count. The result is an
// int; values beyond the native int range are a parse error.
type VarintSize struct {
	Varint64
}

// NewVarintSize returns a new size varint callback.
func NewVarintSize(name string) *VarintSize {
	if name == "" {
		name = "varint-size"
	}
	cb := &VarintSize{}
	cb.Varint64.name = name
	return cb
}

func (cb *VarintSize) Process(buf []byte) push.Outcome {
	out := cb.Varint64.Process(buf)
	if out.Status == push.SUCCESS {
		v := out.Result.(uint64)
		if v > uint64(math.MaxInt) {
			return push.Fail(ErrSize)
		}
		out.Result = int(v)
	}
	return out
}
