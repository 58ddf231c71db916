// Package literal implements the in-band encoding of a previously unseen
// Unicode scalar: an 8-bit length field followed by that many UTF-8
// bytes. It is the only place in the codec family where bytes, rather
// than code-tree paths, are exposed to the bit layer.
package literal

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"huffcodec/bitstream"
)

// ErrCorruptLiteral is returned when the bytes read back do not decode as
// valid UTF-8.
var ErrCorruptLiteral = errors.New("literal: corrupt UTF-8 sequence")

// Serialize writes c as len(8) followed by len UTF-8 bytes (8 bits each).
func Serialize(w *bitstream.Writer, c rune) error {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], c)

	if err := w.WriteBits(uint64(n), 8); err != nil {
		return fmt.Errorf("literal: write length: %w", err)
	}
	for i := 0; i < n; i++ {
		if err := w.WriteBits(uint64(buf[i]), 8); err != nil {
			return fmt.Errorf("literal: write byte %d: %w", i, err)
		}
	}
	return nil
}

// Deserialize reads a length-prefixed UTF-8 scalar back. It surfaces
// bitstream.ErrTruncatedStream if the stream runs out mid-literal, and
// ErrCorruptLiteral if the bytes read are not valid UTF-8.
func Deserialize(r *bitstream.Reader) (rune, error) {
	length, err := r.ReadBits(8)
	if err != nil {
		return 0, fmt.Errorf("literal: read length: %w", err)
	}

	buf := make([]byte, length)
	for i := range buf {
		b, err := r.ReadBits(8)
		if err != nil {
			return 0, fmt.Errorf("literal: read byte %d: %w", i, err)
		}
		buf[i] = byte(b)
	}

	c, size := utf8.DecodeRune(buf)
	if c == utf8.RuneError && size <= 1 {
		return 0, ErrCorruptLiteral
	}
	return c, nil
}
