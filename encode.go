package lzdict

// EncodeUnbounded encodes data, searching the whole prefix at every position
// and letting matches run to the end of the input.
func EncodeUnbounded[S Symbol](data []S) Dict {
	return encode(data, func(i int) (int, int) {
		return 0, len(data) - i
	})
}

// Encode encodes data with a bounded search window and lookahead. No token
// refers back more than searchBuffer symbols, and no copy is longer than
// lookAheadBuffer+1 symbols. A window size that is zero or negative selects
// the default of 255.
func Encode[S Symbol](data []S, searchBuffer, lookAheadBuffer int) Dict {
	if searchBuffer <= 0 {
		searchBuffer = DefaultSearchBuffer
	}
	if lookAheadBuffer <= 0 {
		lookAheadBuffer = DefaultLookAheadBuffer
	}
	return encode(data, func(i int) (int, int) {
		return max(0, i-searchBuffer), min(lookAheadBuffer+1, len(data)-i)
	})
}

// EncodeString is EncodeUnbounded for text, with one symbol per code point.
func EncodeString(s string) Dict {
	return EncodeUnbounded([]rune(s))
}

// encode drives FindMatch over data. window returns the search limit and
// lookahead limit to use at position i.
func encode[S Symbol](data []S, window func(i int) (searchLimit, lookAheadLimit int)) Dict {
	if len(data) == 0 {
		return Dict{{Symbol: NoSymbol}}
	}

	d := make(Dict, 0, len(data)/4+1)
	d = append(d, Token{Symbol: rune(data[0])})

	for i := 1; i < len(data); {
		searchLimit, lookAheadLimit := window(i)
		distance, length := FindMatch(data, i, searchLimit, lookAheadLimit)
		if length == 0 {
			d = append(d, Token{Symbol: rune(data[i])})
			i++
			continue
		}

		next := NoSymbol
		if i+length < len(data) {
			next = rune(data[i+length])
		}
		d = append(d, Token{Distance: distance, Length: length, Symbol: next})
		i += length + 1
	}

	return d
}
