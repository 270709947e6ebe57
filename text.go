package lzdict

import (
	"strconv"
	"strings"
)

// String returns t as (distance,length,'symbol'). A missing symbol is
// written as ''.
func (t Token) String() string {
	return string(t.appendText(nil))
}

func (t Token) appendText(dst []byte) []byte {
	dst = append(dst, '(')
	dst = strconv.AppendInt(dst, int64(t.Distance), 10)
	dst = append(dst, ',')
	dst = strconv.AppendInt(dst, int64(t.Length), 10)
	dst = append(dst, ',')
	if t.HasSymbol() {
		dst = strconv.AppendQuoteRune(dst, t.Symbol)
	} else {
		dst = append(dst, "''"...)
	}
	return append(dst, ')')
}

// String returns a human-readable form of d, one token after another
// separated by spaces.
func (d Dict) String() string {
	var b strings.Builder
	var buf []byte
	for i, t := range d {
		if i > 0 {
			b.WriteByte(' ')
		}
		buf = t.appendText(buf[:0])
		b.Write(buf)
	}
	return b.String()
}
