package json

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHex(t *testing.T) {
	require.Equal(t, `null`, string(Hex(nil, nil)))
	require.Equal(t, `""`, string(Hex(nil, []byte{})))
	require.Equal(t, `"0xdeadbeef"`, string(Hex(nil, []byte{0xde, 0xad, 0xbe, 0xef})))

	out, err := UnHex(nil, []byte(`"0xdeadbeef"`))
	require.NoError(t, err)
	require.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, out)
}

func TestNumbers(t *testing.T) {
	require.Equal(t, "300", string(U32(nil, 300)))
	require.Equal(t, "5000000000", string(U64(nil, 5_000_000_000)))

	v, err := UnU32([]byte("300"))
	require.NoError(t, err)
	require.Equal(t, uint32(300), v)
}

func TestQuotes(t *testing.T) {
	require.Equal(t, "ab", SQ([]byte(`"ab"`)))
	require.Equal(t, "ab", SQ([]byte(`ab`)))
	require.Equal(t, []byte("ab"), Q([]byte(`"ab"`)))
	require.Equal(t, "ab", S([]byte("ab")))
}

func TestObjectEach(t *testing.T) {
	got := map[string]string{}
	err := ObjectEach([]byte(`{"a":"1","b":"2"}`), func(key, val []byte) error {
		got[string(key)] = string(val)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, map[string]string{"a": "1", "b": "2"}, got)
}
