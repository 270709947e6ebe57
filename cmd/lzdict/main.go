// Command lzdict compresses standard input with the LZ77 dictionary coder
// and writes the result to standard output.
//
// The default bits format is the packed dictbits stream, which -d decodes.
// The text format prints the token sequence. The brotli, snappy and lz4
// formats wrap the dictionary matches in those container formats; use the
// standard tools to decompress them.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/andybalholm/brotli/matchfinder"
	"github.com/andybalholm/lzdict"
	"github.com/andybalholm/lzdict/brotli"
	"github.com/andybalholm/lzdict/dictbits"
	"github.com/andybalholm/lzdict/lz4"
	"github.com/andybalholm/lzdict/snappy"
)

var (
	decompress = flag.Bool("d", false, "decompress a bits stream")
	format     = flag.String("format", "bits", "output format: bits, text, brotli, snappy or lz4")
	search     = flag.Int("search", lzdict.DefaultSearchBuffer, "search window size")
	lookAhead  = flag.Int("lookahead", lzdict.DefaultLookAheadBuffer, "lookahead window size")
	unbounded  = flag.Bool("unbounded", false, "search the whole input with no length limit (bits and text only)")
	level      = flag.Int("level", 2, "brotli level (0-9)")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("lzdict: ")
	flag.Parse()

	in, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Fatal(err)
	}

	out := bufio.NewWriter(os.Stdout)
	if err := run(out, in); err != nil {
		log.Fatal(err)
	}
	if err := out.Flush(); err != nil {
		log.Fatal(err)
	}
}

func run(w io.Writer, in []byte) error {
	if *decompress {
		if *format != "bits" {
			return fmt.Errorf("-d only reads the bits format, not %s", *format)
		}
		d, err := dictbits.Unmarshal(in)
		if err != nil {
			return err
		}
		data, err := lzdict.Decode[byte](d)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}

	var mw *matchfinder.Writer
	switch *format {
	case "bits", "text":
		return writeDict(w, in)
	case "brotli":
		mw = brotli.NewWriter(w, *level)
	case "snappy":
		mw = snappy.NewWriter(w, *search, *lookAhead)
	case "lz4":
		mw = lz4.NewWriter(w, *search, *lookAhead)
	default:
		return fmt.Errorf("unknown format %q", *format)
	}

	if _, err := mw.Write(in); err != nil {
		return err
	}
	return mw.Close()
}

func writeDict(w io.Writer, in []byte) error {
	var d lzdict.Dict
	if *unbounded {
		d = lzdict.EncodeUnbounded(in)
	} else {
		d = lzdict.Encode(in, *search, *lookAhead)
	}

	if *format == "text" {
		_, err := fmt.Fprintln(w, d)
		return err
	}

	b, err := dictbits.Marshal(d)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}
