package comb

import "github.com/pushfix/pushfix/push"

// Compose runs f, then g: g's input is f's result, and g's first bytes
// are whatever f left unconsumed. The arrow f >>> g.
type Compose struct {
	name string
	f, g push.Callback
	ing  bool // f done, g active
}

// NewCompose returns the composition of f and g.
func NewCompose(name string, f, g push.Callback) *Compose {
	if f == nil || g == nil {
		return nil
	}
	if name == "" {
		name = "compose"
	}
	return &Compose{name: name, f: f, g: g}
}

func (cb *Compose) Name() string { return cb.name }

func (cb *Compose) Activate(input any) error {
	cb.ing = false
	return cb.f.Activate(input)
}

func (cb *Compose) Process(buf []byte) push.Outcome {
	eof := len(buf) == 0

	if !cb.ing {
		out := cb.f.Process(buf)
		if out.Status != push.SUCCESS {
			return out
		}

		if err := cb.g.Activate(out.Result); err != nil {
			return push.Fail(err)
		}
		cb.ing = true

		buf = out.Rest
		if len(buf) == 0 && !eof {
			return push.More()
		}
	}

	return cb.g.Process(buf)
}
