package pb

import (
	"fmt"

	"github.com/pushfix/pushfix/comb"
	"github.com/pushfix/pushfix/push"
)

// Message reads a protobuf message body: it decodes tags, dispatches
// known field numbers through a FieldMap, and skips unknown fields by
// wire type. The message has no outer length prefix; it consumes input
// until the stream (or a surrounding byte bound) ends at a field
// boundary.
//
// Value callbacks populate their destinations as a side effect; the
// message's own result is nil.
type Message struct {
	name string
	fm   *FieldMap

	tag     *Varint64
	value   push.Callback // active value callback
	inValue bool
	tagIdle bool // no tag bytes kept since the last field boundary

	// fallbacks for unknown field numbers
	skipVarint *Varint64
	skipLP     *comb.Compose
	skipFixed  *push.Skip
}

// NewMessage returns a message callback reading fields through fm.
// The field map must be fully populated first; it is not copied.
// Returns nil if fm is nil.
func NewMessage(name string, fm *FieldMap) *Message {
	if fm == nil {
		return nil
	}
	if name == "" {
		name = "message"
	}

	return &Message{
		name:       name,
		fm:         fm,
		tag:        NewVarint64(name + ".tag"),
		skipVarint: NewVarint64(name + ".skip-varint"),
		skipLP:     NewSkipLengthPrefixed(name + ".skip-lp"),
		skipFixed:  push.NewSkip(name + ".skip-fixed"),
	}
}

func (cb *Message) Name() string { return cb.name }

func (cb *Message) Activate(input any) error {
	cb.inValue = false
	cb.tagIdle = true
	return cb.tag.Activate(nil)
}

func (cb *Message) Process(buf []byte) push.Outcome {
	eof := len(buf) == 0

	for {
		if cb.inValue {
			out := cb.value.Process(buf)
			switch out.Status {
			case push.SUCCESS:
				cb.inValue = false
				cb.tag.Activate(nil)
				cb.tagIdle = true
				buf = out.Rest
			case push.INCOMPLETE:
				return push.More()
			default:
				return out
			}
			if len(buf) == 0 && !eof {
				return push.More()
			}
			continue
		}

		// next field tag
		if len(buf) == 0 {
			if !eof {
				return push.More()
			}
			if cb.tagIdle {
				return push.Success(nil, buf) // stream ends at a field boundary
			}
			// stream ends inside a tag: let the varint report it
		}
		out := cb.tag.Process(buf)
		switch out.Status {
		case push.SUCCESS:
			value, err := cb.dispatch(Tag(out.Result.(uint64)))
			if err != nil {
				return push.Fail(err)
			}
			cb.value = value
			cb.inValue = true
			buf = out.Rest
		case push.INCOMPLETE:
			cb.tagIdle = false
			return push.More()
		default:
			return out
		}
		if len(buf) == 0 && !eof {
			return push.More()
		}
	}
}

// dispatch picks and activates the value callback for tag.
func (cb *Message) dispatch(tag Tag) (push.Callback, error) {
	if !tag.Valid() {
		return nil, ErrFieldNum
	}

	if f := cb.fm.Get(tag.Num()); f != nil {
		if f.Type != tag.Type() {
			return nil, fmt.Errorf("%s: got %s, want %s: %w",
				f.Name, tag.Type(), f.Type, ErrWireType)
		}
		return f.Value, f.Value.Activate(nil)
	}

	// unknown field: skip the value by wire type
	switch tag.Type() {
	case WIRE_VARINT:
		return cb.skipVarint, cb.skipVarint.Activate(nil)
	case WIRE_BYTES:
		return cb.skipLP, cb.skipLP.Activate(nil)
	case WIRE_FIXED32:
		return cb.skipFixed, cb.skipFixed.Activate(4)
	case WIRE_FIXED64:
		return cb.skipFixed, cb.skipFixed.Activate(8)
	default:
		return nil, ErrGroup
	}
}
