package adaptive

import (
	"fmt"
	"unicode/utf8"

	"huffcodec/bitstream"
	"huffcodec/literal"
)

// Encoder codes a stream of runes against a single growing Tree, emitting
// a symbol's current path if it has been seen before, or the NYT path
// followed by the raw literal on its first occurrence.
type Encoder struct {
	tree *Tree
}

// NewEncoder returns an Encoder starting from an empty tree.
func NewEncoder() *Encoder {
	return &Encoder{tree: NewTree()}
}

// Encode writes text's adaptive Huffman coding to w, one rune at a time.
func (e *Encoder) Encode(text string, w *bitstream.Writer) error {
	for _, c := range text {
		path, known := e.tree.PathToSymbol(c)
		if err := writePath(w, path); err != nil {
			return fmt.Errorf("adaptive: write path for %q: %w", c, err)
		}
		if !known {
			if err := literal.Serialize(w, c); err != nil {
				return fmt.Errorf("adaptive: write literal for %q: %w", c, err)
			}
		}
		e.tree.Update(c)
	}
	return nil
}

// CodeLengths reports the number of bits each character of text would
// cost on a fresh tree, in order, without producing any output. Used by
// the CLI's -info trace; it runs the same tree evolution Encode does,
// just without a bitstream.Writer attached.
func CodeLengths(text string) []int {
	tree := NewTree()
	lengths := make([]int, 0, len(text))
	for _, c := range text {
		path, known := tree.PathToSymbol(c)
		n := len(path)
		if !known {
			n += 8 + 8*utf8.RuneLen(c)
		}
		lengths = append(lengths, n)
		tree.Update(c)
	}
	return lengths
}

func writePath(w *bitstream.Writer, path []bool) error {
	for _, b := range path {
		if err := w.WriteBit(b); err != nil {
			return err
		}
	}
	return nil
}
