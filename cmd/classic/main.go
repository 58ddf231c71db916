// Command classic compresses and decompresses text with a two-pass
// Huffman tree built from that input's own symbol frequencies and
// transmitted as a header ahead of the coded data.
package main

import (
	"huffcodec/bitstream"
	"huffcodec/classic"
	"huffcodec/internal/cli"
)

func main() {
	cli.Run(cli.Codec{
		Name: "classic",
		Encode: func(text string) ([]byte, error) {
			w := bitstream.NewWriter()
			if err := classic.Encode(text, w); err != nil {
				return nil, err
			}
			return w.Frame()
		},
		Decode: func(framed []byte) (string, error) {
			r, err := bitstream.NewReader(framed)
			if err != nil {
				return "", err
			}
			return classic.Decode(r)
		},
		CodeLengths: classic.CodeLengths,
	})
}
