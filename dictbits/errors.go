package dictbits

import "errors"

var (
	// ErrFieldOverflow is returned when a value needs more than MaxWidth
	// bytes, which the 2-bit header cannot express.
	ErrFieldOverflow = errors.New("dictbits: field width overflow")

	// ErrTruncated is returned when a stream ends inside the header or
	// inside a token.
	ErrTruncated = errors.New("dictbits: truncated stream")

	// ErrInvalidBit is returned when a bit string holds a character other
	// than '0' or '1'.
	ErrInvalidBit = errors.New("dictbits: invalid bit character")

	// ErrInvalidToken is returned when a token has a negative distance or
	// length, or a negative symbol other than lzdict.NoSymbol.
	ErrInvalidToken = errors.New("dictbits: invalid token")
)
