// Command static compresses and decompresses text against the codec
// family's baked-in, fixed frequency table. No tree header is ever
// transmitted.
package main

import (
	"huffcodec/bitstream"
	"huffcodec/internal/cli"
	"huffcodec/static"
)

func main() {
	cli.Run(cli.Codec{
		Name: "static",
		Encode: func(text string) ([]byte, error) {
			w := bitstream.NewWriter()
			if err := static.Encode(text, w); err != nil {
				return nil, err
			}
			return w.Frame()
		},
		Decode: func(framed []byte) (string, error) {
			r, err := bitstream.NewReader(framed)
			if err != nil {
				return "", err
			}
			return static.Decode(r)
		},
		CodeLengths: static.CodeLengths,
	})
}
