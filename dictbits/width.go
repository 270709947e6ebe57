package dictbits

import (
	"fmt"
	"math/bits"

	"github.com/andybalholm/lzdict"
)

const (
	// HeaderBits is the size of the width header.
	HeaderBits = 2

	// MaxWidth is the largest number of bytes per field the header can
	// express.
	MaxWidth = 1<<HeaderBits - 1

	fieldsPerToken = 3
)

// Width returns B, the number of bytes used for each field when d is
// serialized.
func Width(d lzdict.Dict) (int, error) {
	if len(d) == 0 {
		return 0, nil
	}

	var largest uint64
	for i, t := range d {
		if t.Distance < 0 || t.Length < 0 || (t.Symbol < 0 && t.HasSymbol()) {
			return 0, fmt.Errorf("%w: token %d is %v", ErrInvalidToken, i, t)
		}
		largest = max(largest, uint64(t.Distance), uint64(t.Length))
		if t.HasSymbol() {
			// The all-ones code is reserved for NoSymbol.
			largest = max(largest, uint64(t.Symbol)+1)
		}
	}

	w := (bits.Len64(largest) + 7) / 8
	if w == 0 {
		w = 1
	}
	if w > MaxWidth {
		return 0, fmt.Errorf("%w: value %d needs %d bytes, at most %d fit", ErrFieldOverflow, largest, w, MaxWidth)
	}
	return w, nil
}

// Size returns the length in bits of the serialized form of d.
func Size(d lzdict.Dict) (int, error) {
	w, err := Width(d)
	if err != nil {
		return 0, err
	}
	return HeaderBits + len(d)*fieldsPerToken*8*w, nil
}
