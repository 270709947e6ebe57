package lz4

import (
	"encoding/binary"

	"github.com/andybalholm/brotli/matchfinder"
)

const (
	minMatch    = 4
	maxDistance = 65535

	// A block must end with at least 5 literals, and the last match must
	// start at least 12 bytes before the end of the block.
	lastLiterals   = 5
	mfLimit        = 12
	maxRunInNibble = 15
)

// A BlockEncoder implements the matchfinder.Encoder interface, writing in the
// LZ4 block format. Matches the format cannot express (shorter than 4 bytes
// or further back than 65535) are written as literals.
type BlockEncoder struct{}

func (BlockEncoder) Reset() {}

func (BlockEncoder) Encode(dst []byte, src []byte, matches []matchfinder.Match, lastBlock bool) []byte {
	matches = fitMatches(matches)

	trailingLiterals := 0
	for len(matches) > 0 && (trailingLiterals < lastLiterals || trailingLiterals+matches[len(matches)-1].Length < mfLimit) {
		lastMatch := matches[len(matches)-1]
		matches = matches[:len(matches)-1]
		trailingLiterals += lastMatch.Unmatched + lastMatch.Length
	}

	pos := 0
	for _, m := range matches {
		dst = append(dst, nibble(m.Unmatched)<<4|nibble(m.Length-minMatch))
		if m.Unmatched >= maxRunInNibble {
			dst = appendInt(dst, m.Unmatched-maxRunInNibble)
		}
		dst = append(dst, src[pos:pos+m.Unmatched]...)

		dst = binary.LittleEndian.AppendUint16(dst, uint16(m.Distance))
		if m.Length-minMatch >= maxRunInNibble {
			dst = appendInt(dst, m.Length-minMatch-maxRunInNibble)
		}

		pos += m.Unmatched + m.Length
	}

	// The final sequence is literals only.
	dst = append(dst, nibble(trailingLiterals)<<4)
	if trailingLiterals >= maxRunInNibble {
		dst = appendInt(dst, trailingLiterals-maxRunInNibble)
	}
	return append(dst, src[pos:]...)
}

// fitMatches returns matches with every match LZ4 cannot encode merged into
// the literal run of the next one.
func fitMatches(matches []matchfinder.Match) []matchfinder.Match {
	fitted := make([]matchfinder.Match, 0, len(matches))
	carry := 0
	for _, m := range matches {
		if m.Length < minMatch || m.Distance < 1 || m.Distance > maxDistance {
			carry += m.Unmatched + m.Length
			continue
		}
		m.Unmatched += carry
		carry = 0
		fitted = append(fitted, m)
	}
	if carry > 0 {
		fitted = append(fitted, matchfinder.Match{Unmatched: carry})
	}
	return fitted
}

func nibble(n int) byte {
	if n >= maxRunInNibble {
		return maxRunInNibble
	}
	return byte(n)
}

// appendInt appends n to dst in LZ4's variable-length integer format.
func appendInt(dst []byte, n int) []byte {
	for n >= 255 {
		dst = append(dst, 255)
		n -= 255
	}
	return append(dst, byte(n))
}
