// Package lzdict implements an LZ77 dictionary coder.
//
// The encoder turns a sequence of symbols into a Dict: an ordered list of
// tokens, each of which copies Length symbols from Distance symbols back in
// the output and then emits one literal symbol. A copy may be longer than its
// distance; it then wraps around over the last Distance symbols, so runs and
// short repeating patterns cost a single token.
//
// Two encoding modes are provided. EncodeUnbounded searches the whole prefix
// and lets a match run to the end of the input. Encode bounds both the search
// distance and the match length, which keeps every field small enough for a
// compact binary form (see package dictbits).
//
// A Dict can also be converted to the LZ77 match representation used by
// github.com/andybalholm/brotli/matchfinder, so the dictionary encoder can
// drive brotli, snappy and lz4 output (see MatchFinder).
package lzdict

// A Symbol is the unit of input: a byte or a Unicode code point.
type Symbol interface {
	~byte | ~rune
}

// NoSymbol marks a token whose copy reaches the end of the input, so no
// literal follows it. It is also the symbol of the single token that
// encodes empty input.
const NoSymbol rune = -1

// Default window sizes for Encode.
const (
	DefaultSearchBuffer    = 255
	DefaultLookAheadBuffer = 255
)

// MaxLength is the longest copy Decode accepts in a single token.
const MaxLength = 1 << 30

// A Token is one dictionary entry: copy Length symbols starting Distance
// symbols back, then emit Symbol. A Distance of 0 means a literal only.
type Token struct {
	Distance int
	Length   int
	Symbol   rune
}

// HasSymbol reports whether a literal follows the copied span.
func (t Token) HasSymbol() bool {
	return t.Symbol != NoSymbol
}

// IsLiteral reports whether t copies nothing.
func (t Token) IsLiteral() bool {
	return t.Distance == 0
}

// Len returns the number of symbols t adds to the output.
func (t Token) Len() int {
	n := 0
	if t.Distance > 0 {
		n = t.Length
	}
	if t.HasSymbol() {
		n++
	}
	return n
}

// A Dict is the token sequence produced by the encoder. Tokens are applied
// in order, and each distance is measured against the output reconstructed
// so far.
type Dict []Token

// Len returns the number of symbols d decodes to.
func (d Dict) Len() int {
	n := 0
	for _, t := range d {
		n += t.Len()
	}
	return n
}
