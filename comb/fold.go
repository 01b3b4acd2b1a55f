package comb

import "github.com/pushfix/pushfix/push"

// Fold repeatedly runs body, carrying an accumulator: the fold's
// activation input seeds it, and each successful body run replaces it
// with the body's result before the body is re-activated with it.
//
// The fold ends successfully when the body fails at an activation
// boundary (having kept no bytes since its last activation), or at the
// end of the stream with the body idle; the accumulator is the fold's
// result. A body failure mid-value propagates.
type Fold struct {
	name string
	body push.Callback
	acc  any
	fed  bool // body kept bytes since its last activation
}

// NewFold returns a combinator running body until it fails cleanly.
func NewFold(name string, body push.Callback) *Fold {
	if body == nil {
		return nil
	}
	if name == "" {
		name = "fold"
	}
	return &Fold{name: name, body: body}
}

func (cb *Fold) Name() string { return cb.name }

func (cb *Fold) Activate(input any) error {
	cb.acc = input
	cb.fed = false
	return cb.body.Activate(input)
}

func (cb *Fold) Process(buf []byte) push.Outcome {
	eof := len(buf) == 0

	for {
		out := cb.body.Process(buf)
		switch out.Status {
		case push.SUCCESS:
			cb.acc = out.Result
			if err := cb.body.Activate(cb.acc); err != nil {
				return push.Fail(err)
			}
			cb.fed = false

			buf = out.Rest
			if len(buf) == 0 {
				if eof {
					// the body completed exactly at the end of the stream
					return push.Success(cb.acc, buf)
				}
				return push.More()
			}

		case push.INCOMPLETE:
			cb.fed = true
			return push.More()

		default:
			if !cb.fed {
				// failed at an input boundary: the fold is done,
				// whatever made the body fail is left for downstream
				return push.Success(cb.acc, buf)
			}
			return out
		}
	}
}
