package push

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParserBasics(t *testing.T) {
	cb := NewFixed("root", 4)
	p := NewParser(cb)
	require.NotNil(t, p)
	require.NoError(t, p.Activate(nil))
	require.Equal(t, INCOMPLETE, p.Status())

	require.Equal(t, INCOMPLETE, p.Submit([]byte("ab")))
	require.Equal(t, SUCCESS, p.Submit([]byte("cdef")))

	require.Equal(t, []byte("abcd"), p.Result().([]byte))
	require.Equal(t, []byte("ef"), p.Rest())
	require.NoError(t, p.Err())

	// the parser is done: further submissions are ignored
	require.Equal(t, SUCCESS, p.Submit([]byte("xyz")))
	require.Equal(t, SUCCESS, p.Eof())

	require.EqualValues(t, 2, p.Stats.Chunks)
	require.EqualValues(t, 6, p.Stats.Bytes)
	require.EqualValues(t, 1, p.Stats.Parsed)
	require.EqualValues(t, 1, p.Stats.Short)
}

func TestParserPrematureEof(t *testing.T) {
	p := NewParser(NewFixed("root", 4))
	require.NoError(t, p.Activate(nil))

	require.Equal(t, INCOMPLETE, p.Submit([]byte("ab")))
	require.Equal(t, PARSE_ERROR, p.Eof())
	require.ErrorIs(t, p.Err(), ErrEOF)

	// error status is sticky
	require.Equal(t, PARSE_ERROR, p.Submit([]byte("cd")))
}

func TestParserNilRoot(t *testing.T) {
	require.Nil(t, NewParser(nil))
}

func TestParserReactivate(t *testing.T) {
	p := NewParser(NewFixed("root", 2))
	require.NoError(t, p.Activate(nil))
	require.Equal(t, SUCCESS, p.Submit([]byte("ab")))

	// a fresh activation starts a new parse
	require.NoError(t, p.Activate(nil))
	require.Equal(t, INCOMPLETE, p.Status())
	require.Equal(t, SUCCESS, p.Submit([]byte("cd")))
	require.Equal(t, []byte("cd"), p.Result().([]byte))
}

func TestParserActivateError(t *testing.T) {
	p := NewParser(NewSkip("root"))
	require.ErrorIs(t, p.Activate("not an int"), ErrInput)
	require.Equal(t, PARSE_ERROR, p.Status())
}

func TestParserWrite(t *testing.T) {
	p := NewParser(NewFixed("root", 4))
	require.NoError(t, p.Activate(nil))

	n, err := p.Write([]byte("ab"))
	require.NoError(t, err)
	require.Equal(t, 2, n)

	n, err = p.Write([]byte("cd"))
	require.NoError(t, err)
	require.Equal(t, 2, n)

	// parse finished: the writer is closed
	_, err = p.Write([]byte("ef"))
	require.ErrorIs(t, err, ErrDone)
}

func TestParserWriteError(t *testing.T) {
	p := NewParser(NewEof("root"))
	require.NoError(t, p.Activate(nil))

	_, err := p.Write([]byte("boom"))
	require.ErrorIs(t, err, ErrData)
}

func TestParserKV(t *testing.T) {
	p := NewParser(NewNoop(""))
	require.NoError(t, p.KVFromJSON([]byte(`{"peer":"left","mtu":1500}`)))

	v, ok := p.KV.Load("peer")
	require.True(t, ok)
	require.Equal(t, "left", v)

	p.KV.Delete("mtu")
	require.Equal(t, `{"peer":"left"}`, string(p.KVToJSON(nil)))
}

func TestStatsToJSON(t *testing.T) {
	s := Stats{Chunks: 2, Bytes: 6, Parsed: 1}
	require.Equal(t,
		`{"chunks":2,"bytes":6,"parsed":1,"short":0,"garbled":0}`,
		string(s.ToJSON(nil)))
}

func TestStatusStrings(t *testing.T) {
	require.Equal(t, "SUCCESS", SUCCESS.String())
	require.Equal(t, "PARSE_ERROR", PARSE_ERROR.String())
	require.Equal(t, "MEMORY_ERROR", StatusName[MEMORY_ERROR])

	st, err := StatusString("incomplete")
	require.NoError(t, err)
	require.Equal(t, INCOMPLETE, st)
}
