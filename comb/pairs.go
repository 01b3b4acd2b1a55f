package comb

import "github.com/pushfix/pushfix/push"

// First runs f on the first element of a pair input, passing the second
// element through: (a, b) becomes (f(a), b).
type First struct {
	name   string
	f      push.Callback
	second any
}

// NewFirst returns a new first-element combinator around f.
func NewFirst(name string, f push.Callback) *First {
	if f == nil {
		return nil
	}
	if name == "" {
		name = "first"
	}
	return &First{name: name, f: f}
}

func (cb *First) Name() string { return cb.name }

func (cb *First) Activate(input any) error {
	pr, ok := input.(push.Pair)
	if !ok {
		return push.ErrInput
	}
	cb.second = pr.Second
	return cb.f.Activate(pr.First)
}

func (cb *First) Process(buf []byte) push.Outcome {
	out := cb.f.Process(buf)
	if out.Status != push.SUCCESS {
		return out
	}
	return push.Success(push.Pair{First: out.Result, Second: cb.second}, out.Rest)
}

// Second runs f on the second element of a pair input, passing the
// first element through: (a, b) becomes (a, f(b)).
type Second struct {
	name  string
	f     push.Callback
	first any
}

// NewSecond returns a new second-element combinator around f.
func NewSecond(name string, f push.Callback) *Second {
	if f == nil {
		return nil
	}
	if name == "" {
		name = "second"
	}
	return &Second{name: name, f: f}
}

func (cb *Second) Name() string { return cb.name }

func (cb *Second) Activate(input any) error {
	pr, ok := input.(push.Pair)
	if !ok {
		return push.ErrInput
	}
	cb.first = pr.First
	return cb.f.Activate(pr.Second)
}

func (cb *Second) Process(buf []byte) push.Outcome {
	out := cb.f.Process(buf)
	if out.Status != push.SUCCESS {
		return out
	}
	return push.Success(push.Pair{First: cb.first, Second: out.Result}, out.Rest)
}

// NewDup returns a callback that pairs its input with itself, reading
// no bytes.
func NewDup(name string) *Pure {
	if name == "" {
		name = "dup"
	}
	return NewPure(name, func(input any) (any, error) {
		return push.Pair{First: input, Second: input}, nil
	})
}

// NewPar runs a and b on the elements of a pair input: (x, y) yields
// (a(x), b(y)), with b reading bytes where a stopped.
func NewPar(name string, a, b push.Callback) *Compose {
	if a == nil || b == nil {
		return nil
	}
	if name == "" {
		name = "par"
	}
	return NewCompose(name,
		NewFirst(name+".first", a),
		NewSecond(name+".second", b))
}

// NewBoth runs a and b sequentially on the same input value: b picks up
// the byte stream where a stopped. The arrow a &&& b.
func NewBoth(name string, a, b push.Callback) *Compose {
	if a == nil || b == nil {
		return nil
	}
	if name == "" {
		name = "both"
	}
	return NewCompose(name,
		NewDup(name+".dup"),
		NewPar(name+".par", a, b))
}
