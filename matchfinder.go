package lzdict

import "github.com/andybalholm/brotli/matchfinder"

// DefaultMinLength is the shortest copy MatchFinder reports as a match when
// MinLength is zero. Most byte-oriented formats cannot encode shorter ones.
const DefaultMinLength = 4

// AppendMatches converts d to LZ77 matches, appends them to dst, and returns
// dst. Copies shorter than minLength are folded into the unmatched run
// around them, since their symbols are present in the source anyway.
//
// Match lengths and distances count symbols, so for byte formats d must have
// been encoded from bytes.
func (d Dict) AppendMatches(dst []matchfinder.Match, minLength int) []matchfinder.Match {
	if minLength < 1 {
		minLength = 1
	}

	unmatched := 0
	for _, t := range d {
		switch {
		case t.Distance > 0 && t.Length >= minLength:
			dst = append(dst, matchfinder.Match{
				Unmatched: unmatched,
				Length:    t.Length,
				Distance:  t.Distance,
			})
			unmatched = 0
		case t.Distance > 0:
			unmatched += t.Length
		}
		if t.HasSymbol() {
			unmatched++
		}
	}

	if unmatched > 0 {
		dst = append(dst, matchfinder.Match{
			Unmatched: unmatched,
		})
	}
	return dst
}

// MatchFinder is an implementation of the matchfinder.MatchFinder interface
// that runs the dictionary encoder over each block. Blocks are encoded
// independently; no match reaches into a previous block.
type MatchFinder struct {
	// SearchBuffer is how far back to look for a match.
	// The default is 255.
	SearchBuffer int

	// LookAheadBuffer limits the match length to LookAheadBuffer+1.
	// The default is 255.
	LookAheadBuffer int

	// MinLength is the shortest copy reported as a match.
	// The default is 4.
	MinLength int

	// Unbounded searches the whole block with no length limit,
	// ignoring SearchBuffer and LookAheadBuffer.
	Unbounded bool
}

func (MatchFinder) Reset() {}

// FindMatches looks for matches in src, appends them to dst, and returns dst.
func (q MatchFinder) FindMatches(dst []matchfinder.Match, src []byte) []matchfinder.Match {
	if len(src) == 0 {
		return dst
	}
	minLength := q.MinLength
	if minLength == 0 {
		minLength = DefaultMinLength
	}

	var d Dict
	if q.Unbounded {
		d = EncodeUnbounded(src)
	} else {
		d = Encode(src, q.SearchBuffer, q.LookAheadBuffer)
	}
	return d.AppendMatches(dst, minLength)
}
