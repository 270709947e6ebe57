package dictbits

import (
	"fmt"
	"strings"

	"github.com/andybalholm/lzdict"
)

// Serialize returns the bit string for d, one '0' or '1' per bit.
func Serialize(d lzdict.Dict) (string, error) {
	size, err := Size(d)
	if err != nil {
		return "", err
	}
	var w textWriter
	w.Grow(size)
	if err := encode(&w, d); err != nil {
		return "", err
	}
	return w.String(), nil
}

// Deserialize parses a bit string produced by Serialize.
func Deserialize(s string) (lzdict.Dict, error) {
	r := textReader{s: s}
	d, rest, err := decode(&r, len(s))
	if err != nil {
		return nil, err
	}
	if rest != 0 {
		return nil, fmt.Errorf("%w: %d bits left after %d tokens", ErrTruncated, rest, len(d))
	}
	return d, nil
}

type textWriter struct {
	strings.Builder
}

func (w *textWriter) WriteBits(r uint64, n uint8) error {
	for i := int(n) - 1; i >= 0; i-- {
		w.WriteByte('0' + byte(r>>uint(i)&1))
	}
	return nil
}

type textReader struct {
	s   string
	pos int
}

func (r *textReader) ReadBits(n uint8) (uint64, error) {
	if len(r.s)-r.pos < int(n) {
		return 0, ErrTruncated
	}
	var v uint64
	for i := 0; i < int(n); i++ {
		switch c := r.s[r.pos]; c {
		case '0':
			v <<= 1
		case '1':
			v = v<<1 | 1
		default:
			return 0, fmt.Errorf("%w %q at offset %d", ErrInvalidBit, c, r.pos)
		}
		r.pos++
	}
	return v, nil
}
