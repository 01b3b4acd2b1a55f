package comb

import "github.com/pushfix/pushfix/push"

// MinBytes requires inner to process at least min bytes: completing
// earlier is a parse error.
type MinBytes struct {
	name     string
	min      int
	inner    push.Callback
	consumed int
}

// NewMinBytes returns a combinator enforcing a byte minimum on inner.
func NewMinBytes(name string, min int, inner push.Callback) *MinBytes {
	if inner == nil || min < 0 {
		return nil
	}
	if name == "" {
		name = "min-bytes"
	}
	return &MinBytes{name: name, min: min, inner: inner}
}

func (cb *MinBytes) Name() string { return cb.name }

func (cb *MinBytes) Activate(input any) error {
	cb.consumed = 0
	return cb.inner.Activate(input)
}

func (cb *MinBytes) Process(buf []byte) push.Outcome {
	out := cb.inner.Process(buf)
	switch out.Status {
	case push.SUCCESS:
		cb.consumed += len(buf) - len(out.Rest)
		if cb.consumed < cb.min {
			return push.Fail(ErrShort)
		}
		return out
	case push.INCOMPLETE:
		cb.consumed += len(buf)
		return out
	default:
		return out
	}
}

// MaxBytes bounds the number of bytes inner may process. The bound acts
// as an inner end-of-stream: when it is reached, inner must complete as
// if the stream had ended, and anything beyond the bound is left for
// downstream. Inner never sees a single byte past the limit.
type MaxBytes struct {
	name      string
	limit     int
	inner     push.Callback
	remaining int
}

// NewMaxBytes returns a combinator bounding inner to limit bytes.
func NewMaxBytes(name string, limit int, inner push.Callback) *MaxBytes {
	if inner == nil || limit < 0 {
		return nil
	}
	if name == "" {
		name = "max-bytes"
	}
	return &MaxBytes{name: name, limit: limit, inner: inner}
}

func (cb *MaxBytes) Name() string { return cb.name }

// SetLimit replaces the byte limit. Takes effect on the next activation.
func (cb *MaxBytes) SetLimit(limit int) {
	cb.limit = limit
}

// Remaining returns how much of the limit is still unused.
func (cb *MaxBytes) Remaining() int {
	return cb.remaining
}

func (cb *MaxBytes) Activate(input any) error {
	cb.remaining = cb.limit
	return cb.inner.Activate(input)
}

func (cb *MaxBytes) Process(buf []byte) push.Outcome {
	eof := len(buf) == 0

	// limit already exhausted: close the window
	if cb.remaining == 0 {
		return cb.finish(buf)
	}

	feed := buf
	if len(feed) > cb.remaining {
		feed = buf[:cb.remaining]
	}

	out := cb.inner.Process(feed)
	switch out.Status {
	case push.SUCCESS:
		taken := len(feed) - len(out.Rest)
		cb.remaining -= taken
		return push.Success(out.Result, buf[taken:])
	case push.INCOMPLETE:
		cb.remaining -= len(feed)
		if cb.remaining == 0 && !eof {
			return cb.finish(buf[len(feed):])
		}
		return push.More()
	default:
		return out
	}
}

// finish delivers the end-of-window signal to inner and reports its
// outcome, with rest as the bytes beyond the window.
func (cb *MaxBytes) finish(rest []byte) push.Outcome {
	out := cb.inner.Process(nil)
	switch out.Status {
	case push.SUCCESS:
		return push.Success(out.Result, rest)
	case push.INCOMPLETE:
		return push.Fail(ErrLimit)
	default:
		return out
	}
}
