package classic

import (
	"testing"

	"github.com/stretchr/testify/require"

	"huffcodec/bitstream"
)

func encodeToBytes(t *testing.T, text string) []byte {
	t.Helper()
	w := bitstream.NewWriter()
	require.NoError(t, Encode(text, w))
	framed, err := w.Frame()
	require.NoError(t, err)
	return framed
}

func decodeBytes(t *testing.T, framed []byte) string {
	t.Helper()
	r, err := bitstream.NewReader(framed)
	require.NoError(t, err)
	text, err := Decode(r)
	require.NoError(t, err)
	return text
}

func TestRoundTripEmpty(t *testing.T) {
	framed := encodeToBytes(t, "")
	require.Equal(t, []byte{0x00}, framed)
	require.Equal(t, "", decodeBytes(t, framed))
}

func TestS3FramingExample(t *testing.T) {
	// See DESIGN.md's "Corrected worked example" note for the
	// derivation of these bytes.
	framed := encodeToBytes(t, "aaa")
	require.Equal(t, []byte{0x04, 0x80, 0xB0, 0x80}, framed)
	require.Equal(t, "aaa", decodeBytes(t, framed))
}

func TestRoundTripSingleRepeatedSymbol(t *testing.T) {
	framed := encodeToBytes(t, "zzzzzzzz")
	require.Equal(t, "zzzzzzzz", decodeBytes(t, framed))
}

func TestRoundTripMultipleSymbols(t *testing.T) {
	cases := []string{
		"abracadabra",
		"mississippi",
		"the quick brown fox jumps over the lazy dog",
		"aabbccddeeffgg",
	}
	for _, text := range cases {
		framed := encodeToBytes(t, text)
		require.Equal(t, text, decodeBytes(t, framed))
	}
}

func TestRoundTripUnicode(t *testing.T) {
	text := "héllo wörld 🙂🙂🙂"
	framed := encodeToBytes(t, text)
	require.Equal(t, text, decodeBytes(t, framed))
}

func TestRoundTripTwoSymbolAlphabet(t *testing.T) {
	framed := encodeToBytes(t, "ababababab")
	require.Equal(t, "ababababab", decodeBytes(t, framed))
}

func TestDecodeTruncatedTreeHeader(t *testing.T) {
	w := bitstream.NewWriter()
	require.NoError(t, w.WriteBit(false)) // claims an internal node, no children follow
	framed, err := w.Frame()
	require.NoError(t, err)

	r, err := bitstream.NewReader(framed)
	require.NoError(t, err)
	_, err = Decode(r)
	require.Error(t, err)
}
