package push

import (
	"fmt"
	"strconv"

	"github.com/puzpuzpuz/xsync/v4"
	"github.com/rs/zerolog"

	"github.com/pushfix/pushfix/json"
)

// Parser owns the root callback of a graph and drives it with
// externally delivered byte chunks.
//
// Use NewParser to get a new object, modify its Options, then call
// Activate() before submitting data. Bytes are consumed strictly in
// submission order; a single Submit call may drive many callbacks to
// completion before returning. Once the parser reports SUCCESS or an
// error, further submissions are ignored.
type Parser struct {
	*zerolog.Logger

	root   Callback
	status Status
	result any
	rest   []byte
	err    error

	Options Options // parser options; modify before Activate()
	Stats   Stats   // parse statistics

	// generic Key-Value store, always thread-safe
	KV *xsync.Map[string, any]
}

// Parser statistics
type Stats struct {
	Chunks  uint64 // submitted chunks, including the EOF signal
	Bytes   uint64 // submitted bytes
	Parsed  uint64 // completed parses
	Short   uint64 // chunks fully consumed with the parse still incomplete
	Garbled uint64 // parse errors
}

// NewParser returns a new Parser feeding bytes to root.
// Returns nil if root is nil.
func NewParser(root Callback) *Parser {
	if root == nil {
		return nil
	}

	p := &Parser{root: root}
	p.Options = DefaultOptions
	p.status = INCOMPLETE
	p.KV = xsync.NewMap[string, any]()

	l := zerolog.Nop()
	p.Logger = &l

	return p
}

// Activate applies Options and activates the root callback with input,
// resetting any previous parse. It does not consume bytes.
func (p *Parser) Activate(input any) error {
	if opts := &p.Options; opts.Logger != nil {
		p.Logger = opts.Logger
	} else {
		l := zerolog.Nop()
		p.Logger = &l
	}

	p.status = INCOMPLETE
	p.result, p.rest, p.err = nil, nil, nil

	if err := p.root.Activate(input); err != nil {
		p.status = PARSE_ERROR
		p.err = err
		return err
	}
	return nil
}

// Submit feeds a chunk of bytes to the parser and returns the resulting
// status. An empty chunk signals the end of the stream.
func (p *Parser) Submit(data []byte) Status {
	if p.status != INCOMPLETE {
		return p.status // already done
	}

	p.Stats.Chunks++
	p.Stats.Bytes += uint64(len(data))

	out := p.root.Process(data)
	switch out.Status {
	case SUCCESS:
		p.status = SUCCESS
		p.result = out.Result
		p.rest = out.Rest
		p.Stats.Parsed++
		p.Trace().Str("cb", p.root.Name()).Int("rest", len(out.Rest)).Msg("parse done")
	case INCOMPLETE:
		p.Stats.Short++
	default:
		p.status = out.Status
		p.err = out.Err
		p.Stats.Garbled++
		p.Trace().Str("cb", p.root.Name()).Err(out.Err).Msg("parse failed")
	}

	return p.status
}

// Eof signals the end of the stream. A parser still waiting for bytes
// reports a parse error (premature EOF).
func (p *Parser) Eof() Status {
	if st := p.Submit(nil); st != INCOMPLETE {
		return st
	}

	p.status = PARSE_ERROR
	p.err = ErrEOF
	p.Stats.Garbled++
	return p.status
}

// Status returns the current parser status.
func (p *Parser) Status() Status { return p.status }

// Result returns the root callback result after a successful parse.
func (p *Parser) Result() any { return p.result }

// Rest returns the bytes left unconsumed by a successful parse.
// The slice references the last submitted chunk.
func (p *Parser) Rest() []byte { return p.rest }

// Err returns the error after a failed parse, or nil.
func (p *Parser) Err() error { return p.err }

// Write implements io.Writer over Submit. It accepts chunks until the
// parse finishes; afterwards it returns ErrDone, or the parse error
// after a failure.
func (p *Parser) Write(src []byte) (int, error) {
	was := p.status
	switch st := p.Submit(src); {
	case st == INCOMPLETE:
		return len(src), nil
	case st == SUCCESS:
		if was == INCOMPLETE {
			return len(src), nil // this chunk finished the parse
		}
		return 0, ErrDone
	default:
		return len(src), fmt.Errorf("%s: %w", p.root.Name(), p.err)
	}
}

// KVFromJSON loads a JSON object of scalar values into the KV store.
func (p *Parser) KVFromJSON(src []byte) error {
	return json.ObjectEach(src, func(key, val []byte) error {
		p.KV.Store(string(key), json.SQ(val))
		return nil
	})
}

// KVToJSON appends a JSON object with the KV store contents to dst.
func (p *Parser) KVToJSON(dst []byte) []byte {
	dst = append(dst, '{')
	first := true
	p.KV.Range(func(key string, val any) bool {
		if !first {
			dst = append(dst, ',')
		}
		first = false
		dst = strconv.AppendQuote(dst, key)
		dst = append(dst, ':')
		switch v := val.(type) {
		case string:
			dst = strconv.AppendQuote(dst, v)
		default:
			dst = fmt.Appendf(dst, "%v", v)
		}
		return true
	})
	return append(dst, '}')
}

// ToJSON appends the statistics as a JSON object to dst.
func (s *Stats) ToJSON(dst []byte) []byte {
	dst = append(dst, `{"chunks":`...)
	dst = json.U64(dst, s.Chunks)
	dst = append(dst, `,"bytes":`...)
	dst = json.U64(dst, s.Bytes)
	dst = append(dst, `,"parsed":`...)
	dst = json.U64(dst, s.Parsed)
	dst = append(dst, `,"short":`...)
	dst = json.U64(dst, s.Short)
	dst = append(dst, `,"garbled":`...)
	dst = json.U64(dst, s.Garbled)
	return append(dst, '}')
}
