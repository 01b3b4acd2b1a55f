package comb

import "github.com/pushfix/pushfix/push"

// Pure lifts a pure function into a callback that consumes no bytes:
// its result is fn applied to its activation input.
type Pure struct {
	name  string
	fn    func(input any) (any, error)
	input any
}

// NewPure returns a new pure-function callback.
func NewPure(name string, fn func(input any) (any, error)) *Pure {
	if fn == nil {
		return nil
	}
	if name == "" {
		name = "pure"
	}
	return &Pure{name: name, fn: fn}
}

func (cb *Pure) Name() string { return cb.name }

func (cb *Pure) Activate(input any) error {
	cb.input = input
	return nil
}

func (cb *Pure) Process(buf []byte) push.Outcome {
	out, err := cb.fn(cb.input)
	if err != nil {
		return push.Fail(err)
	}
	return push.Success(out, buf)
}
