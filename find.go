package lzdict

// FindMatch looks for the longest earlier occurrence of the symbols starting
// at data[i]. Candidate sources are scanned from i-1 down to searchLimit, and
// a match is extended to at most lookAheadLimit symbols. The source span is
// read cyclically over the distance symbols starting at the source, so a
// match can be longer than its distance.
//
// Among matches of equal length the nearest one wins. If nothing matches,
// FindMatch returns (0, 0).
func FindMatch[S Symbol](data []S, i, searchLimit, lookAheadLimit int) (distance, length int) {
	if i < 0 || i >= len(data) {
		return 0, 0
	}
	if searchLimit < 0 {
		searchLimit = 0
	}
	if lookAheadLimit > len(data)-i {
		lookAheadLimit = len(data) - i
	}
	if lookAheadLimit < 1 {
		return 0, 0
	}

	for j := i - 1; j >= searchLimit; j-- {
		if data[j] != data[i] {
			continue
		}
		d := i - j
		k := 1
		for k < lookAheadLimit && data[i+k] == data[j+k%d] {
			k++
		}
		if k > length {
			distance, length = d, k
		}
	}
	return distance, length
}
