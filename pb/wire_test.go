// Package pb - wire format tests against the standard protobuf binary
// encoding, including sign-extension and truncation corner cases.
package pb

import (
	"testing"

	"github.com/protocolbuffers/protoscope"
	"github.com/stretchr/testify/require"

	"github.com/pushfix/pushfix/hwm"
	"github.com/pushfix/pushfix/push"
)

// data is the destination struct populated by the test message.
type data struct {
	int1 uint32
	int2 uint64
	int3 int32
	int4 int64
	int5 int32
	int6 int64
	buf  hwm.Buffer
}

// message builds the test message: fields 1-7 as uint32, uint64,
// hwm-string, int32, int64, sint32, sint64.
func (d *data) message(t *testing.T) *Message {
	t.Helper()

	fm := NewFieldMap()
	require.NoError(t, fm.AddUint32("int1", 1, &d.int1))
	require.NoError(t, fm.AddUint64("int2", 2, &d.int2))
	require.NoError(t, fm.AddHwmString("buf", 3, &d.buf))
	require.NoError(t, fm.AddInt32("int3", 4, &d.int3))
	require.NoError(t, fm.AddInt64("int4", 5, &d.int4))
	require.NoError(t, fm.AddSint32("int5", 6, &d.int5))
	require.NoError(t, fm.AddSint64("int6", 7, &d.int6))

	return NewMessage("data", fm)
}

var data01 = []byte{
	0x08,                                                       // field 1, varint
	0xac, 0x02,                                                 //   300
	0x10,                                                       // field 2, varint
	0x80, 0xe4, 0x97, 0xd0, 0x12,                               //   5000000000
	0x20,                                                       // field 4, varint
	0x8c, 0xfc, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01, //   -500 sign-extended
	0x28,                                                       // field 5, varint
	0x80, 0x9c, 0xe8, 0xaf, 0xed, 0xff, 0xff, 0xff, 0xff, 0x01, //   -5000000000
	0x30,       // field 6, varint
	0xe7, 0x07, //   zigzag -500
	0x38,                         // field 7, varint
	0xff, 0xc7, 0xaf, 0xa0, 0x25, //   zigzag -5000000000
}

var data02 = []byte{
	0x08,             // field 1, varint
	0xac, 0x02,       //   300
	0x82, 0x10, 0x00, // unknown field, length-delimited, empty
	0x10,                         // field 2, varint
	0x80, 0xe4, 0x97, 0xd0, 0x12, //   5000000000
	0x20, 0x00, // field 4 = 0
	0x28, 0x00, // field 5 = 0
	0x30,                         // field 6, varint
	0xff, 0xc7, 0xaf, 0xa0, 0x25, //   zigzag -5000000000, truncated to 32 bits
	0x38,       // field 7, varint
	0xe7, 0x07, //   zigzag -500
	0x82, 0x11, 0x07, // unknown field, length-delimited
	'1', '2', '3', '4', '5', '6', '7',
}

var data03 = []byte{
	0x08,       // field 1, varint
	0xac, 0x02, //   300
	0x20, 0x00, // field 4 = 0
	0x28, 0x00, // field 5 = 0
	0x30, 0x00, // field 6 = 0
	0x38, 0x00, // field 7 = 0
	0x10,                         // field 2, varint
	0x80, 0xe4, 0x97, 0xd0, 0x12, //   5000000000
	0x1a,                    // field 3, length-delimited
	0x05,                    //   length 5
	'a', 'b', 'c', 'd', 'e', //   content
}

var data04 = []byte{
	0x1a,                    // field 3, length-delimited
	0x05,                    //   length 5
	'a', 'b', 'c', 'd', 'e', //   content
	0x08,       // field 1, varint
	0xac, 0x02, //   300
	0x20, 0x00, // field 4 = 0
	0x28, 0x00, // field 5 = 0
	0x30, 0x00, // field 6 = 0
	0x38, 0x00, // field 7 = 0
	0x10,                         // field 2, varint
	0x80, 0xe4, 0x97, 0xd0, 0x12, //   5000000000
}

// parse runs raw through a fresh test message, splitting the input at
// the given boundaries, and returns the populated destination.
func parse(t *testing.T, raw []byte, splits ...int) (*data, push.Status) {
	t.Helper()

	d := new(data)
	p := push.NewParser(d.message(t))
	require.NotNil(t, p)
	require.NoError(t, p.Activate(nil))

	last := 0
	for _, s := range splits {
		if s == last {
			continue
		}
		if p.Submit(raw[last:s]) != push.INCOMPLETE {
			return d, p.Status()
		}
		last = s
	}
	if last < len(raw) && p.Submit(raw[last:]) != push.INCOMPLETE {
		return d, p.Status()
	}
	return d, p.Eof()
}

func TestRead01(t *testing.T) {
	d, st := parse(t, data01)
	require.Equal(t, push.SUCCESS, st)
	require.Equal(t, uint32(300), d.int1)
	require.Equal(t, uint64(5_000_000_000), d.int2)
	require.Equal(t, int32(-500), d.int3)
	require.Equal(t, int64(-5_000_000_000), d.int4)
	require.Equal(t, int32(-500), d.int5)
	require.Equal(t, int64(-5_000_000_000), d.int6)
	require.Equal(t, 0, d.buf.Len())
}

func TestRead02(t *testing.T) {
	d, st := parse(t, data02)
	require.Equal(t, push.SUCCESS, st)
	require.Equal(t, uint32(300), d.int1)
	require.Equal(t, uint64(5_000_000_000), d.int2)
	require.Equal(t, int32(0), d.int3)
	require.Equal(t, int64(0), d.int4)
	require.Equal(t, int32(-705_032_704), d.int5) // -5000000000 truncated to 32 bits
	require.Equal(t, int64(-500), d.int6)
}

func TestRead03(t *testing.T) {
	d, st := parse(t, data03)
	require.Equal(t, push.SUCCESS, st)
	require.Equal(t, uint32(300), d.int1)
	require.Equal(t, uint64(5_000_000_000), d.int2)
	require.Equal(t, "abcde", d.buf.String())
	require.Equal(t, []byte("abcde\x00"), d.buf.Mem())
}

func TestRead04(t *testing.T) {
	// same as 03, with the string field first
	d, st := parse(t, data04)
	require.Equal(t, push.SUCCESS, st)
	require.Equal(t, uint32(300), d.int1)
	require.Equal(t, uint64(5_000_000_000), d.int2)
	require.Equal(t, "abcde", d.buf.String())
}

func TestTwoPartReads(t *testing.T) {
	for name, raw := range map[string][]byte{
		"01": data01, "02": data02, "03": data03, "04": data04,
	} {
		t.Run(name, func(t *testing.T) {
			_, st := parse(t, raw, len(raw)/2)
			require.Equal(t, push.SUCCESS, st)
		})
	}
}

func TestEverySplit(t *testing.T) {
	// chunking independence: any single split yields the same message
	for split := 0; split <= len(data03); split++ {
		d, st := parse(t, data03, split)
		require.Equal(t, push.SUCCESS, st, "split at %d", split)
		require.Equal(t, uint32(300), d.int1)
		require.Equal(t, uint64(5_000_000_000), d.int2)
		require.Equal(t, "abcde", d.buf.String())
	}
}

func TestTruncated(t *testing.T) {
	for name, raw := range map[string][]byte{
		"01": data01, "02": data02, "03": data03, "04": data04,
	} {
		t.Run(name, func(t *testing.T) {
			_, st := parse(t, raw[:len(raw)-1])
			require.Equal(t, push.PARSE_ERROR, st)
		})
	}
}

func TestSplitInsideVarint(t *testing.T) {
	// two scalar fields, split in the middle of the second value
	raw := []byte{0x08, 0xac, 0x02, 0x10, 0x80, 0xe4, 0x97, 0xd0, 0x12}
	d, st := parse(t, raw, 4)
	require.Equal(t, push.SUCCESS, st)
	require.Equal(t, uint32(300), d.int1)
	require.Equal(t, uint64(5_000_000_000), d.int2)
}

func TestUnknownFieldOnly(t *testing.T) {
	// a message of nothing but an unknown empty length-delimited field
	d, st := parse(t, []byte{0x82, 0x10, 0x00})
	require.Equal(t, push.SUCCESS, st)
	require.Equal(t, uint32(0), d.int1)
}

func TestWireTypeMismatch(t *testing.T) {
	// field 1 is registered as varint, sent as length-delimited
	d := new(data)
	p := push.NewParser(d.message(t))
	require.NoError(t, p.Activate(nil))

	require.Equal(t, push.PARSE_ERROR, p.Submit([]byte{0x0a, 0x00}))
	require.ErrorIs(t, p.Err(), ErrWireType)
}

func TestGroupWireType(t *testing.T) {
	// wire type 3 on an unknown field number cannot be skipped
	d := new(data)
	p := push.NewParser(d.message(t))
	require.NoError(t, p.Activate(nil))

	require.Equal(t, push.PARSE_ERROR, p.Submit([]byte{0xcb, 0x07})) // field 121, wire 3
	require.ErrorIs(t, p.Err(), ErrGroup)
}

func TestZeroFieldNumber(t *testing.T) {
	d := new(data)
	p := push.NewParser(d.message(t))
	require.NoError(t, p.Activate(nil))

	require.Equal(t, push.PARSE_ERROR, p.Submit([]byte{0x00}))
	require.ErrorIs(t, p.Err(), ErrFieldNum)
}

func TestOverwrite(t *testing.T) {
	// later occurrences of a scalar field overwrite earlier ones
	raw := []byte{
		0x08, 0xac, 0x02, // field 1 = 300
		0x08, 0x07, // field 1 = 7
	}
	d, st := parse(t, raw)
	require.Equal(t, push.SUCCESS, st)
	require.Equal(t, uint32(7), d.int1)
}

func TestProtoscope(t *testing.T) {
	// author the wire bytes from protoscope text
	raw, err := protoscope.NewScanner(`
		1: 300
		3: {"abcde"}
		2: 5000000000
	`).Exec()
	require.NoError(t, err)

	for split := 0; split <= len(raw); split++ {
		d, st := parse(t, raw, split)
		require.Equal(t, push.SUCCESS, st)
		require.Equal(t, uint32(300), d.int1)
		require.Equal(t, uint64(5_000_000_000), d.int2)
		require.Equal(t, "abcde", d.buf.String())
	}
}
