package literal

import (
	"testing"

	"github.com/stretchr/testify/require"

	"huffcodec/bitstream"
)

func roundTrip(t *testing.T, c rune) rune {
	t.Helper()
	w := bitstream.NewWriter()
	require.NoError(t, Serialize(w, c))
	framed, err := w.Frame()
	require.NoError(t, err)

	r, err := bitstream.NewReader(framed)
	require.NoError(t, err)

	got, err := Deserialize(r)
	require.NoError(t, err)
	return got
}

func TestRoundTripASCII(t *testing.T) {
	require.Equal(t, 'a', roundTrip(t, 'a'))
}

func TestRoundTripTwoByteScalar(t *testing.T) {
	require.Equal(t, 'é', roundTrip(t, 'é'))
}

func TestRoundTripFourByteScalar(t *testing.T) {
	require.Equal(t, '🙂', roundTrip(t, '🙂'))
}

func TestDeserializeTruncatedLength(t *testing.T) {
	w := bitstream.NewWriter()
	require.NoError(t, w.WriteBits(0x02, 8)) // claims 2 bytes follow
	require.NoError(t, w.WriteBits(0xC3, 8)) // only 1 supplied
	framed, err := w.Frame()
	require.NoError(t, err)

	r, err := bitstream.NewReader(framed)
	require.NoError(t, err)

	_, err = Deserialize(r)
	require.ErrorIs(t, err, bitstream.ErrTruncatedStream)
}

func TestDeserializeInvalidUTF8(t *testing.T) {
	w := bitstream.NewWriter()
	require.NoError(t, w.WriteBits(0x01, 8))
	require.NoError(t, w.WriteBits(0xFF, 8)) // not valid UTF-8 on its own
	framed, err := w.Frame()
	require.NoError(t, err)

	r, err := bitstream.NewReader(framed)
	require.NoError(t, err)

	_, err = Deserialize(r)
	require.ErrorIs(t, err, ErrCorruptLiteral)
}
