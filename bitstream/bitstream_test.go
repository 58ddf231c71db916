package bitstream

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmptyFramesToSingleZeroByte(t *testing.T) {
	w := NewWriter()
	framed, err := w.Frame()
	require.NoError(t, err)
	require.Equal(t, []byte{0x00}, framed)

	r, err := NewReader(framed)
	require.NoError(t, err)
	require.False(t, r.HasMore())
	require.Equal(t, 0, r.Remaining())
}

func TestRoundTripArbitraryBits(t *testing.T) {
	bits := []bool{true, false, true, true, false, false, false, true, true, false}

	w := NewWriter()
	for _, b := range bits {
		require.NoError(t, w.WriteBit(b))
	}
	framed, err := w.Frame()
	require.NoError(t, err)

	r, err := NewReader(framed)
	require.NoError(t, err)
	require.Equal(t, len(bits), r.Remaining())

	for _, want := range bits {
		got, err := r.ReadBit()
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	require.False(t, r.HasMore())
}

func TestWriteBitsAndReadBits(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.WriteBits(0b101, 3))
	require.NoError(t, w.WriteBits(0xAB, 8))
	framed, err := w.Frame()
	require.NoError(t, err)

	r, err := NewReader(framed)
	require.NoError(t, err)

	v, err := r.ReadBits(3)
	require.NoError(t, err)
	require.Equal(t, uint64(0b101), v)

	v, err = r.ReadBits(8)
	require.NoError(t, err)
	require.Equal(t, uint64(0xAB), v)
}

func TestCorruptHeaderPadTooLarge(t *testing.T) {
	_, err := NewReader([]byte{8, 0xFF})
	require.ErrorIs(t, err, ErrCorruptHeader)
}

func TestCorruptHeaderEmptyInput(t *testing.T) {
	_, err := NewReader(nil)
	require.ErrorIs(t, err, ErrCorruptHeader)
}

func TestTruncatedStream(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.WriteBits(0b1, 1))
	framed, err := w.Frame()
	require.NoError(t, err)

	r, err := NewReader(framed)
	require.NoError(t, err)

	_, err = r.ReadBits(8)
	require.ErrorIs(t, err, ErrTruncatedStream)
}

func TestS2FramingExample(t *testing.T) {
	// Adaptive encoding of T = "aa": empty path to NYT, then the UTF-8
	// literal for 'a' (len=1, byte 0x61), then a single "1" bit for the
	// second 'a'. 17 logical bits, pad = 7: header 0x07, then the 17
	// payload bits followed by 7 zero pad bits pack to 0x01, 0x61, 0x80.
	w := NewWriter()
	require.NoError(t, w.WriteBits(0x01, 8)) // utf8 length of 'a'
	require.NoError(t, w.WriteBits('a', 8))  // utf8 byte of 'a'
	require.NoError(t, w.WriteBit(true))     // second 'a' -> path "1"

	framed, err := w.Frame()
	require.NoError(t, err)
	require.Equal(t, []byte{0x07, 0x01, 0x61, 0x80}, framed)

	r, err := NewReader(framed)
	require.NoError(t, err)
	require.Equal(t, 17, r.Remaining())
}
