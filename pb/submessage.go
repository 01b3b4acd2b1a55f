package pb

import (
	"github.com/pushfix/pushfix/comb"
	"github.com/pushfix/pushfix/push"
)

// Submessage reads a varint length and runs an inner message bounded to
// exactly that many bytes. A stream that ends inside the promised
// length is a parse error.
type Submessage struct {
	name   string
	size   *VarintSize
	body   *comb.MaxBytes
	inBody bool
}

// NewSubmessage returns a length-delimited wrapper around inner.
// Returns nil if inner is nil.
func NewSubmessage(name string, inner *Message) *Submessage {
	if inner == nil {
		return nil
	}
	if name == "" {
		name = "submessage"
	}
	return &Submessage{
		name: name,
		size: NewVarintSize(name + ".length"),
		body: comb.NewMaxBytes(name+".body", 0, inner),
	}
}

func (cb *Submessage) Name() string { return cb.name }

func (cb *Submessage) Activate(input any) error {
	cb.inBody = false
	return cb.size.Activate(nil)
}

func (cb *Submessage) Process(buf []byte) push.Outcome {
	eof := len(buf) == 0

	if !cb.inBody {
		out := cb.size.Process(buf)
		if out.Status != push.SUCCESS {
			return out
		}

		cb.body.SetLimit(out.Result.(int))
		if err := cb.body.Activate(nil); err != nil {
			return push.Fail(err)
		}
		cb.inBody = true

		buf = out.Rest
		if len(buf) == 0 && !eof && cb.body.Remaining() > 0 {
			return push.More()
		}
	}

	out := cb.body.Process(buf)
	if out.Status == push.SUCCESS && cb.body.Remaining() > 0 {
		return push.Fail(ErrTruncated) // stream ended inside the promised length
	}
	return out
}
