package push

import "github.com/pushfix/pushfix/hwm"

// Noop parses no data and copies its input to its result.
type Noop struct {
	name  string
	input any
}

// NewNoop returns a new no-op callback.
func NewNoop(name string) *Noop {
	if name == "" {
		name = "noop"
	}
	return &Noop{name: name}
}

func (cb *Noop) Name() string { return cb.name }

func (cb *Noop) Activate(input any) error {
	cb.input = input
	return nil
}

func (cb *Noop) Process(buf []byte) Outcome {
	return Success(cb.input, buf)
}

// Eof requires the end of the stream: any data is a parse error.
// Its input passes through as its result.
type Eof struct {
	name  string
	input any
}

// NewEof returns a new end-of-stream callback.
func NewEof(name string) *Eof {
	if name == "" {
		name = "eof"
	}
	return &Eof{name: name}
}

func (cb *Eof) Name() string { return cb.name }

func (cb *Eof) Activate(input any) error {
	cb.input = input
	return nil
}

func (cb *Eof) Process(buf []byte) Outcome {
	if len(buf) > 0 {
		return Fail(ErrData)
	}
	return Success(cb.input, buf)
}

// Fixed reads a fixed number of bytes. If the whole value arrives in
// one chunk, the result references the chunk directly; otherwise the
// bytes accumulate in internal storage. Either way the result is a
// []byte of the requested size, valid until the next activation.
type Fixed struct {
	name string
	size int
	data []byte // internal storage for the accumulating path
}

// NewFixed returns a callback reading exactly size bytes.
// Returns nil if size is negative.
func NewFixed(name string, size int) *Fixed {
	if size < 0 {
		return nil
	}
	if name == "" {
		name = "fixed"
	}
	return &Fixed{name: name, size: size}
}

func (cb *Fixed) Name() string { return cb.name }

func (cb *Fixed) Activate(input any) error {
	cb.data = cb.data[:0]
	return nil
}

func (cb *Fixed) Process(buf []byte) Outcome {
	// the whole value is in this chunk: reference it, no copy
	if len(cb.data) == 0 && len(buf) >= cb.size {
		return Success(buf[:cb.size:cb.size], buf[cb.size:])
	}

	if len(buf) == 0 {
		return Fail(ErrEOF)
	}

	take := min(cb.size-len(cb.data), len(buf))
	cb.data = append(cb.data, buf[:take]...)
	if len(cb.data) < cb.size {
		return More()
	}
	return Success(cb.data, buf[take:])
}

// Skip consumes a number of bytes given as its activation input (an
// int), preserving the input as its result.
type Skip struct {
	name  string
	input any
	left  int
}

// NewSkip returns a new skip callback.
func NewSkip(name string) *Skip {
	if name == "" {
		name = "skip"
	}
	return &Skip{name: name}
}

func (cb *Skip) Name() string { return cb.name }

func (cb *Skip) Activate(input any) error {
	n, ok := input.(int)
	if !ok || n < 0 {
		return ErrInput
	}
	cb.input = input
	cb.left = n
	return nil
}

func (cb *Skip) Process(buf []byte) Outcome {
	if cb.left == 0 {
		return Success(cb.input, buf)
	}
	if len(buf) == 0 {
		return Fail(ErrEOF)
	}

	take := min(cb.left, len(buf))
	cb.left -= take
	if cb.left > 0 {
		return More()
	}
	return Success(cb.input, buf[take:])
}

// HwmString copies a number of bytes given as its activation input (an
// int) into a high-water-mark buffer and NUL-terminates it past the
// logical length. The result is the buffer's logical contents.
type HwmString struct {
	name string
	buf  *hwm.Buffer
	need int
}

// NewHwmString returns a callback reading strings into buf.
// Returns nil if buf is nil.
func NewHwmString(name string, buf *hwm.Buffer) *HwmString {
	if buf == nil {
		return nil
	}
	if name == "" {
		name = "hwm-string"
	}
	return &HwmString{name: name, buf: buf}
}

func (cb *HwmString) Name() string { return cb.name }

func (cb *HwmString) Activate(input any) error {
	n, ok := input.(int)
	if !ok || n < 0 {
		return ErrInput
	}
	cb.buf.Reset()
	cb.need = n
	return nil
}

func (cb *HwmString) Process(buf []byte) Outcome {
	if cb.need == 0 {
		cb.buf.Terminate()
		return Success(cb.buf.Bytes(), buf)
	}
	if len(buf) == 0 {
		return Fail(ErrEOF)
	}

	take := min(cb.need, len(buf))
	cb.buf.Append(buf[:take])
	cb.need -= take
	if cb.need > 0 {
		return More()
	}

	cb.buf.Terminate()
	return Success(cb.buf.Bytes(), buf[take:])
}
