package adaptive

import (
	"fmt"
	"strings"

	"huffcodec/bitstream"
	"huffcodec/literal"
)

// Decoder is the mirror of Encoder: it walks the same growing tree, bit
// by bit, rebuilding it in lockstep with the encoder so no side channel
// is ever needed.
type Decoder struct {
	tree *Tree
}

// NewDecoder returns a Decoder starting from an empty tree.
func NewDecoder() *Decoder {
	return &Decoder{tree: NewTree()}
}

// Decode reads r to exhaustion and returns the text it encodes.
func (d *Decoder) Decode(r *bitstream.Reader) (string, error) {
	var sb strings.Builder
	for r.HasMore() {
		c, err := d.decodeOne(r)
		if err != nil {
			return "", err
		}
		sb.WriteRune(c)
	}
	return sb.String(), nil
}

// decodeOne walks from the tree root following one bit at a time until it
// reaches either the NYT node (read the literal that follows) or a
// symbol leaf, then applies Update exactly as Encode does.
func (d *Decoder) decodeOne(r *bitstream.Reader) (rune, error) {
	cur := d.tree.Root()
	for {
		if d.tree.IsNYT(cur) {
			c, err := literal.Deserialize(r)
			if err != nil {
				return 0, fmt.Errorf("adaptive: read literal: %w", err)
			}
			d.tree.Update(c)
			return c, nil
		}
		if cur.IsLeaf() {
			c := cur.Symbol()
			d.tree.Update(c)
			return c, nil
		}
		bit, err := r.ReadBit()
		if err != nil {
			return 0, fmt.Errorf("adaptive: read path bit: %w", err)
		}
		if bit {
			cur = cur.Right()
		} else {
			cur = cur.Left()
		}
	}
}
