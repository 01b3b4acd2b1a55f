// Package push implements push-driven incremental parsing.
//
// A parser graph is assembled from Callback nodes and driven by a
// Parser, which delivers byte chunks of arbitrary size. A callback
// consumes zero or more bytes and reports an Outcome: success with a
// result and the unconsumed suffix, incomplete when it needs more
// bytes, or an error. A graph can suspend after any byte and resume
// when the next chunk arrives.
package push

import "errors"

// Callback is a single parser node in the graph.
//
// A callback must be activated before it can process bytes. After
// activation it owns the byte stream until it reports an Outcome other
// than INCOMPLETE. A callback may be activated many times in
// succession, but never concurrently.
//
// A callback never consumes more bytes than it needs: the unconsumed
// suffix of the input is handed back in the Outcome for whatever parses
// next. Results may reference the input chunk or the node's own storage,
// and stay valid only until the node's next activation; copy if needed.
type Callback interface {
	// Name returns a stable name used in diagnostics.
	Name() string

	// Activate prepares the callback to parse a new value from input.
	// It does not consume bytes.
	Activate(input any) error

	// Process consumes bytes from buf and reports the outcome.
	// An empty buf signals the end of the stream: a callback that
	// needs more bytes must fail, while a callback that happens to
	// be complete may succeed.
	Process(buf []byte) Outcome
}

// Outcome reports the result of a Process call.
type Outcome struct {
	Status Status // SUCCESS, INCOMPLETE, or an error status
	Result any    // parse result, valid iff Status is SUCCESS
	Rest   []byte // unconsumed suffix of the input, valid iff Status is SUCCESS
	Err    error  // valid iff Status is an error
}

// Success returns a successful Outcome carrying result and the
// unconsumed rest of the input.
func Success(result any, rest []byte) Outcome {
	return Outcome{Status: SUCCESS, Result: result, Rest: rest}
}

// More returns an incomplete Outcome: all input was consumed, and the
// same callback must be resumed with the next chunk.
func More() Outcome {
	return Outcome{Status: INCOMPLETE}
}

// Fail returns an error Outcome wrapping err.
func Fail(err error) Outcome {
	if errors.Is(err, ErrMemory) {
		return Outcome{Status: MEMORY_ERROR, Err: err}
	}
	return Outcome{Status: PARSE_ERROR, Err: err}
}

// Pair is a two-element tuple used by the pair combinators.
// Elements may themselves be pairs, forming a tree.
type Pair struct {
	First  any
	Second any
}
