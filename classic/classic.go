// Package classic implements the two-pass Huffman codec: the encoder
// counts per-input symbol frequencies, builds a tree sized exactly to
// that input's alphabet, serializes the tree ahead of the coded data,
// and the decoder rebuilds the same tree from that header before
// walking the payload.
package classic

import (
	"fmt"

	"huffcodec/bitstream"
	"huffcodec/huffman"
	"huffcodec/literal"
)

// frequencies counts each rune's occurrences in text.
func frequencies(text string) map[rune]float64 {
	freq := make(map[rune]float64)
	for _, c := range text {
		freq[c]++
	}
	return freq
}

// codeTable wraps huffman.CodeTable with classic's single-symbol
// special case: a one-leaf tree gets the 1-bit code "0" rather than an
// empty path, since an empty code can't be counted by the framer's bit
// length alone (see DESIGN.md's corrected S3 worked example).
func codeTable(root *huffman.Node) map[rune][]bool {
	if root != nil && root.IsLeaf {
		return map[rune][]bool{root.Symbol: {false}}
	}
	return huffman.CodeTable(root)
}

// serializeTree writes root preorder: "1" + literal for a leaf, "0" +
// left + right for an internal node.
func serializeTree(w *bitstream.Writer, n *huffman.Node) error {
	if n.IsLeaf {
		if err := w.WriteBit(true); err != nil {
			return err
		}
		return literal.Serialize(w, n.Symbol)
	}
	if err := w.WriteBit(false); err != nil {
		return err
	}
	if err := serializeTree(w, n.Left); err != nil {
		return err
	}
	return serializeTree(w, n.Right)
}

// deserializeTree is the inverse of serializeTree.
func deserializeTree(r *bitstream.Reader) (*huffman.Node, error) {
	isLeaf, err := r.ReadBit()
	if err != nil {
		return nil, fmt.Errorf("classic: read tree tag: %w", err)
	}
	if isLeaf {
		symbol, err := literal.Deserialize(r)
		if err != nil {
			return nil, fmt.Errorf("classic: read tree leaf: %w", err)
		}
		return &huffman.Node{IsLeaf: true, Symbol: symbol}, nil
	}
	left, err := deserializeTree(r)
	if err != nil {
		return nil, err
	}
	right, err := deserializeTree(r)
	if err != nil {
		return nil, err
	}
	return &huffman.Node{Left: left, Right: right}, nil
}

// Encode counts text's per-rune frequencies, builds a tree sized to that
// alphabet, writes the serialized tree followed by each character's code
// word, in that order.
func Encode(text string, w *bitstream.Writer) error {
	if text == "" {
		return nil
	}

	root := huffman.Build(frequencies(text))
	if err := serializeTree(w, root); err != nil {
		return fmt.Errorf("classic: write tree: %w", err)
	}

	table := codeTable(root)
	for _, c := range text {
		for _, bit := range table[c] {
			if err := w.WriteBit(bit); err != nil {
				return fmt.Errorf("classic: write code for %q: %w", c, err)
			}
		}
	}
	return nil
}

// CodeLengths reports the number of code-word bits each character of
// text costs under the tree built for text, in order. Does not include
// the serialized tree header's own bit cost. Used by the CLI's -info
// trace.
func CodeLengths(text string) []int {
	if text == "" {
		return nil
	}
	table := codeTable(huffman.Build(frequencies(text)))

	lengths := make([]int, 0, len(text))
	for _, c := range text {
		lengths = append(lengths, len(table[c]))
	}
	return lengths
}

// Decode reads a tree header followed by code words until r is
// exhausted. A single-leaf tree is special-cased the same way Encode's
// codeTable is: one bit consumed (and ignored) per occurrence.
func Decode(r *bitstream.Reader) (string, error) {
	if !r.HasMore() {
		return "", nil
	}

	root, err := deserializeTree(r)
	if err != nil {
		return "", err
	}

	var out []rune
	if root.IsLeaf {
		for r.HasMore() {
			if _, err := r.ReadBit(); err != nil {
				return "", fmt.Errorf("classic: read code: %w", err)
			}
			out = append(out, root.Symbol)
		}
		return string(out), nil
	}

	for r.HasMore() {
		cur := root
		for !cur.IsLeaf {
			bit, err := r.ReadBit()
			if err != nil {
				return "", fmt.Errorf("classic: read code: %w", err)
			}
			if bit {
				cur = cur.Right
			} else {
				cur = cur.Left
			}
		}
		out = append(out, cur.Symbol)
	}
	return string(out), nil
}
