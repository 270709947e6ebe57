// Package dictbits implements the fixed-width binary form of an lzdict.Dict.
//
// A stream starts with a 2-bit header holding B, the number of bytes per
// field. Each token follows as three fields of 8*B bits (distance, length,
// symbol code), most significant bit first, with no separators. B is the
// smallest width that holds every value in the Dict, so one large value
// widens every field in the stream.
//
// The all-ones value of the symbol field is reserved for lzdict.NoSymbol, so
// symbol codes are sized as code+1. A non-empty Dict always uses B >= 1, and
// the empty Dict is the bare header.
//
// Serialize and Deserialize use a text bit string of '0' and '1' characters.
// Marshal and Unmarshal pack the same bits into bytes, padding the last byte
// with zero bits.
package dictbits
