package comb

import "github.com/pushfix/pushfix/push"

// Choice tries a; if a fails before keeping any bytes, it falls back to
// b on the same input. Once a has held on to bytes from an earlier
// chunk, its error is permanent: there is no backtracking across
// consumed bytes.
//
// A failing Process call surrenders nothing to the stream, so "a
// consumed bytes" means a returned INCOMPLETE at least once since its
// activation; only then is its failure final.
type Choice struct {
	name  string
	a, b  push.Callback
	input any
	inb   bool // a gave up, b active
	fed   bool // a kept bytes from an earlier chunk
}

// NewChoice returns a combinator trying a first, then b.
func NewChoice(name string, a, b push.Callback) *Choice {
	if a == nil || b == nil {
		return nil
	}
	if name == "" {
		name = "choice"
	}
	return &Choice{name: name, a: a, b: b}
}

func (cb *Choice) Name() string { return cb.name }

func (cb *Choice) Activate(input any) error {
	cb.input = input
	cb.inb = false
	cb.fed = false
	return cb.a.Activate(input)
}

func (cb *Choice) Process(buf []byte) push.Outcome {
	if !cb.inb {
		out := cb.a.Process(buf)
		switch out.Status {
		case push.SUCCESS:
			return out
		case push.INCOMPLETE:
			cb.fed = true
			return out
		default:
			if cb.fed {
				return out // a consumed bytes: permanent
			}
			if err := cb.b.Activate(cb.input); err != nil {
				return push.Fail(err)
			}
			cb.inb = true
		}
	}

	return cb.b.Process(buf)
}
