// Package static implements the fixed-table Huffman codec: both encoder
// and decoder share one baked-in frequency table, so no tree is ever
// transmitted. The space character is rewritten to a dedicated <sp>
// token with its own code. Characters absent from the table (or with a
// 0-frequency entry) still round-trip via an escape leaf followed by the
// UTF-8 literal codec.
package static

import (
	"fmt"
	"unicode/utf8"

	"huffcodec/bitstream"
	"huffcodec/huffman"
	"huffcodec/literal"
)

// spToken and escToken are sentinel keys standing in for the `<sp>` and
// `<ESC>` table entries; both lie outside the valid Unicode scalar range
// so they can never collide with an input rune.
const (
	spToken  rune = -1
	escToken rune = -2
)

// tableFrequencies is the baked-in frequency table, reproduced exactly.
// Zero-frequency entries are listed for documentation parity with the
// table but are excluded from the tree: a character with a 0-frequency
// entry routes through the escape exactly like any out-of-table
// character (see DESIGN.md's Open Question decision).
var tableFrequencies = map[rune]int{
	'a': 7, 'b': 1, 'c': 3, 'd': 4, 'e': 12, 'f': 1, 'g': 1, 'h': 1, 'i': 6,
	'j': 0, 'k': 0, 'l': 5, 'm': 3, 'n': 6, 'o': 5, 'p': 2, 'q': 0, 'r': 6,
	's': 6, 't': 6, 'u': 4, 'v': 1, 'w': 0, 'x': 0, 'y': 0, 'z': 0,
	'à': 0, 'é': 2, 'è': 0,
	',': 2, '-': 0, '.': 1, ';': 0, '!': 0, '?': 0, '\n': 0,
	spToken: 15,
}

// escapeWeight places <ESC> at maximum tree depth without ever starving
// a genuinely frequent character of a short code.
const escapeWeight = 1e-6

func buildTree() *huffman.Node {
	weights := map[rune]float64{escToken: escapeWeight}
	for symbol, freq := range tableFrequencies {
		if freq > 0 {
			weights[symbol] = float64(freq)
		}
	}
	return huffman.Build(weights)
}

var (
	tree  = buildTree()
	codes = huffman.CodeTable(tree)
)

// tokenFor maps an input rune to its table key: the space character
// becomes the <sp> token, everything else passes through unchanged.
func tokenFor(c rune) rune {
	if c == ' ' {
		return spToken
	}
	return c
}

// Encode writes text against the baked-in table, escaping any character
// absent from it (including zero-frequency table entries).
func Encode(text string, w *bitstream.Writer) error {
	for _, c := range text {
		key := tokenFor(c)
		if code, ok := codes[key]; ok {
			for _, bit := range code {
				if err := w.WriteBit(bit); err != nil {
					return fmt.Errorf("static: write code for %q: %w", c, err)
				}
			}
			continue
		}
		for _, bit := range codes[escToken] {
			if err := w.WriteBit(bit); err != nil {
				return fmt.Errorf("static: write escape code for %q: %w", c, err)
			}
		}
		if err := literal.Serialize(w, c); err != nil {
			return fmt.Errorf("static: write escaped literal for %q: %w", c, err)
		}
	}
	return nil
}

// CodeLengths reports the number of bits each character of text costs
// against the baked-in table, in order. Used by the CLI's -info trace.
func CodeLengths(text string) []int {
	lengths := make([]int, 0, len(text))
	for _, c := range text {
		key := tokenFor(c)
		if code, ok := codes[key]; ok {
			lengths = append(lengths, len(code))
			continue
		}
		lengths = append(lengths, len(codes[escToken])+8+8*utf8.RuneLen(c))
	}
	return lengths
}

// Decode reads code words against the baked-in tree until r is
// exhausted, resolving escape leaves via the UTF-8 literal codec and the
// <sp> token back to a space character.
func Decode(r *bitstream.Reader) (string, error) {
	var out []rune
	for r.HasMore() {
		cur := tree
		for !cur.IsLeaf {
			bit, err := r.ReadBit()
			if err != nil {
				return "", fmt.Errorf("static: read code: %w", err)
			}
			if bit {
				cur = cur.Right
			} else {
				cur = cur.Left
			}
		}
		switch cur.Symbol {
		case escToken:
			c, err := literal.Deserialize(r)
			if err != nil {
				return "", fmt.Errorf("static: read escaped literal: %w", err)
			}
			out = append(out, c)
		case spToken:
			out = append(out, ' ')
		default:
			out = append(out, cur.Symbol)
		}
	}
	return string(out), nil
}
