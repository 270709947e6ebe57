package brotli

import (
	"io"

	"github.com/andybalholm/brotli"
	"github.com/andybalholm/brotli/matchfinder"
	"github.com/andybalholm/lzdict"
)

// searchBuffers holds the search window for each compression level.
var searchBuffers = [...]int{64, 128, 255, 512, 1024, 2048, 4096, 8192, 16384, 32768}

// NewWriter returns a writer that compresses to w in brotli format, finding
// matches with the dictionary encoder. The level (0-9) selects how far back
// to search; levels outside this range are replaced with the closest level
// available.
func NewWriter(w io.Writer, level int) *matchfinder.Writer {
	if level < 0 {
		level = 0
	}
	if level > len(searchBuffers)-1 {
		level = len(searchBuffers) - 1
	}

	return &matchfinder.Writer{
		Dest: w,
		MatchFinder: lzdict.MatchFinder{
			SearchBuffer:    searchBuffers[level],
			LookAheadBuffer: lzdict.DefaultLookAheadBuffer,
		},
		Encoder:   &brotli.Encoder{},
		BlockSize: 1 << 16,
	}
}
