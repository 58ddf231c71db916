// Command adaptive compresses and decompresses text with the FGK
// one-pass adaptive Huffman tree: no header is transmitted, and both
// sides rebuild the same tree incrementally as symbols flow.
package main

import (
	"huffcodec/adaptive"
	"huffcodec/bitstream"
	"huffcodec/internal/cli"
)

func main() {
	cli.Run(cli.Codec{
		Name: "adaptive",
		Encode: func(text string) ([]byte, error) {
			w := bitstream.NewWriter()
			if err := adaptive.NewEncoder().Encode(text, w); err != nil {
				return nil, err
			}
			return w.Frame()
		},
		Decode: func(framed []byte) (string, error) {
			r, err := bitstream.NewReader(framed)
			if err != nil {
				return "", err
			}
			return adaptive.NewDecoder().Decode(r)
		},
		CodeLengths: adaptive.CodeLengths,
	})
}
