package lzdict

import "errors"

var (
	// ErrCorruptReference is returned when a token refers back past the
	// start of the output, or carries a negative distance or length.
	ErrCorruptReference = errors.New("lzdict: corrupt reference")

	// ErrSymbolRange is returned when a decoded symbol does not fit the
	// requested symbol type.
	ErrSymbolRange = errors.New("lzdict: symbol out of range")
)
