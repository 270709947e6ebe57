package dictbits

import (
	"fmt"

	"github.com/andybalholm/lzdict"
)

// A bitWriter writes the low n bits of r, most significant first.
// *bitio.Writer implements it.
type bitWriter interface {
	WriteBits(r uint64, n uint8) error
}

// A bitReader reads n bits, most significant first.
// *bitio.Reader implements it.
type bitReader interface {
	ReadBits(n uint8) (uint64, error)
}

// encode writes the header and every token of d to w.
func encode(w bitWriter, d lzdict.Dict) error {
	width, err := Width(d)
	if err != nil {
		return err
	}
	if err := w.WriteBits(uint64(width), HeaderBits); err != nil {
		return err
	}

	fieldBits := uint8(8 * width)
	noSymbol := uint64(1)<<fieldBits - 1
	for _, t := range d {
		code := noSymbol
		if t.HasSymbol() {
			code = uint64(t.Symbol)
		}
		for _, v := range [fieldsPerToken]uint64{uint64(t.Distance), uint64(t.Length), code} {
			if err := w.WriteBits(v, fieldBits); err != nil {
				return err
			}
		}
	}
	return nil
}

// decode reads a header and as many whole tokens as fit in the n bits that
// r holds. It returns the number of bits left over after the last token.
func decode(r bitReader, n int) (d lzdict.Dict, rest int, err error) {
	if n < HeaderBits {
		return nil, 0, fmt.Errorf("%w: %d bits is shorter than the header", ErrTruncated, n)
	}
	header, err := r.ReadBits(HeaderBits)
	if err != nil {
		return nil, 0, err
	}
	n -= HeaderBits

	fieldBits := uint8(8 * header)
	if fieldBits == 0 {
		return nil, n, nil
	}
	tokenBits := fieldsPerToken * int(fieldBits)
	noSymbol := uint64(1)<<fieldBits - 1

	d = make(lzdict.Dict, 0, n/tokenBits)
	for ; n >= tokenBits; n -= tokenBits {
		var f [fieldsPerToken]uint64
		for i := range f {
			if f[i], err = r.ReadBits(fieldBits); err != nil {
				return nil, 0, err
			}
		}
		t := lzdict.Token{
			Distance: int(f[0]),
			Length:   int(f[1]),
			Symbol:   lzdict.NoSymbol,
		}
		if f[2] != noSymbol {
			t.Symbol = rune(f[2])
		}
		d = append(d, t)
	}
	return d, n, nil
}
