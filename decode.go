package lzdict

import "fmt"

// Decode reconstructs the symbols that d encodes.
//
// It returns ErrCorruptReference if a token refers back further than the
// output decoded so far or copies more than MaxLength symbols, and
// ErrSymbolRange if a literal does not fit S.
func Decode[S Symbol](d Dict) ([]S, error) {
	out := make([]S, 0, len(d))

	for n, t := range d {
		if t.Distance < 0 || t.Length < 0 || t.Distance > 0 && t.Length > MaxLength {
			return nil, fmt.Errorf("%w: token %d has distance %d, length %d", ErrCorruptReference, n, t.Distance, t.Length)
		}

		if t.Distance > 0 {
			if t.Distance > len(out) {
				return nil, fmt.Errorf("%w: token %d has distance %d with only %d symbols decoded", ErrCorruptReference, n, t.Distance, len(out))
			}
			offset := len(out) - t.Distance
			for j := 0; j < t.Length; j++ {
				out = append(out, out[offset+j%t.Distance])
			}
		}

		if t.HasSymbol() {
			s := S(t.Symbol)
			if t.Symbol < 0 || rune(s) != t.Symbol {
				return nil, fmt.Errorf("%w: token %d has symbol %#x", ErrSymbolRange, n, t.Symbol)
			}
			out = append(out, s)
		}
	}

	return out, nil
}

// DecodeString reconstructs the text that d encodes.
func DecodeString(d Dict) (string, error) {
	r, err := Decode[rune](d)
	if err != nil {
		return "", err
	}
	return string(r), nil
}
