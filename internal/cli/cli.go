// Package cli is the shared command-line scaffolding for the three codec
// binaries (cmd/static, cmd/classic, cmd/adaptive). It owns flag
// definitions, structured logging, version/profile flags, and the
// report/-info extras; each binary only supplies its codec's
// encode/decode functions.
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/blang/semver/v4"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/pkg/profile"
	"github.com/rs/zerolog"
)

// version is shared across all three binaries; they are built from the
// same module at the same tag.
const version = "0.3.0"

// Codec wires one variant's encode/decode pair (plus the optional -info
// trace) into the shared CLI driver.
type Codec struct {
	// Name identifies the variant in usage text, the version banner,
	// and the default output file extension.
	Name string
	// Encode compresses text into a framed byte stream.
	Encode func(text string) ([]byte, error)
	// Decode recovers text from a framed byte stream.
	Decode func(framed []byte) (string, error)
	// CodeLengths reports, in order, the number of bits each character
	// of text would cost. Optional; nil disables -info.
	CodeLengths func(text string) []int
}

func newLogger() zerolog.Logger {
	if isatty.IsTerminal(os.Stderr.Fd()) {
		return zerolog.New(zerolog.ConsoleWriter{Out: colorable.NewColorableStderr()}).
			With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}

func usage(name string) string {
	return fmt.Sprintf(
		"usage: %s -e INPUT [-o OUTPUT]   compress INPUT\n"+
			"       %s -d INPUT [-o OUTPUT]   decompress INPUT\n",
		name, name)
}

// Run parses flags and performs the requested compress/decompress
// operation. It exits the process on an error, for -version, and when no
// mode flag is given; otherwise it returns once the work is done.
func Run(codec Codec) {
	var (
		flagEncodeIn   = flag.String("e", "", "input file to compress")
		flagDecodeIn   = flag.String("d", "", "input file to decompress")
		flagOut        = flag.String("o", "", "output file")
		flagNoOut      = flag.Bool("no_out", false, "suppress writing the output file")
		flagReport     = flag.Bool("r", false, "report compression ratio")
		flagInfo       = flag.Bool("info", false, "print a per-character bit-cost trace to stdout")
		flagVersion    = flag.Bool("version", false, "report executable version")
		flagCPUProfile = flag.String("cpuprofile", "", "write a CPU profile to this file")
	)
	flag.Parse()

	log := newLogger()

	if *flagVersion {
		v := semver.MustParse(version)
		fmt.Printf("%s v%s\n", codec.Name, v)
		os.Exit(0)
	}

	if *flagCPUProfile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*flagCPUProfile)).Stop()
	}

	if *flagEncodeIn == "" && *flagDecodeIn == "" {
		fmt.Print(usage(codec.Name))
		os.Exit(0)
	}
	if *flagEncodeIn != "" && *flagDecodeIn != "" {
		log.Fatal().Msg("-e and -d are mutually exclusive")
	}
	if *flagOut != "" && *flagNoOut {
		log.Fatal().Msg("-o and -no_out are mutually exclusive")
	}

	decompressing := *flagDecodeIn != ""
	inPath := *flagEncodeIn
	if decompressing {
		inPath = *flagDecodeIn
	}

	in, err := os.ReadFile(inPath)
	if err != nil {
		log.Fatal().Err(err).Str("file", inPath).Msg("read input")
	}

	outPath := *flagOut
	if outPath == "" {
		if decompressing {
			outPath = inPath + ".decoded"
		} else {
			outPath = inPath + "." + codec.Name
		}
	}

	var payload []byte
	lenIn := len(in)
	if decompressing {
		text, err := codec.Decode(in)
		if err != nil {
			log.Fatal().Err(err).Msg("decode")
		}
		payload = []byte(text)
	} else {
		text := string(in)
		framed, err := codec.Encode(text)
		if err != nil {
			log.Fatal().Err(err).Msg("encode")
		}
		payload = framed
		if *flagInfo && codec.CodeLengths != nil {
			printInfo(text, codec.CodeLengths(text))
		}
	}
	lenOut := len(payload)

	if *flagNoOut {
		outPath = ""
	} else if err := os.WriteFile(outPath, payload, 0o600); err != nil {
		log.Fatal().Err(err).Str("file", outPath).Msg("write output")
	}

	if *flagReport {
		lenC, lenD := lenOut, lenIn
		if decompressing {
			lenC, lenD = lenIn, lenOut
		}
		if lenD == 0 {
			fmt.Printf("%dB -> %dB\n", lenC, lenD)
		} else {
			ratioPct := lenC * 100 / lenD
			fmt.Printf("%dB -> %dB compression ratio %d.%02d\n", lenC, lenD, ratioPct/100, ratioPct%100)
		}
	}
}

// printInfo writes a CSV trace of each character's bit cost to stdout,
// in the spirit of lzss/decompress.go's CompressionPhrases.ToCSV.
func printInfo(text string, lengths []int) {
	fmt.Println("index,char,bits")
	i := 0
	for _, c := range text {
		fmt.Printf("%d,%q,%d\n", i, c, lengths[i])
		i++
	}
}
