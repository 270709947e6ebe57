package dictbits

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/andybalholm/lzdict"
	"github.com/icza/bitio"
)

// Marshal returns the serialized form of d packed into bytes, most
// significant bit first. The last byte is padded with zero bits.
func Marshal(d lzdict.Dict) ([]byte, error) {
	size, err := Size(d)
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(make([]byte, 0, (size+7)/8))
	w := bitio.NewWriter(buf)
	if err := encode(w, d); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal parses bytes produced by Marshal. Up to 7 bits of zero padding
// may follow the last token; anything else left over is ErrTruncated.
func Unmarshal(b []byte) (lzdict.Dict, error) {
	r := bitio.NewReader(bytes.NewReader(b))
	d, rest, err := decode(r, 8*len(b))
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, fmt.Errorf("%w: %v", ErrTruncated, err)
	}
	if err != nil {
		return nil, err
	}

	if rest >= 8 {
		return nil, fmt.Errorf("%w: %d bits left after %d tokens", ErrTruncated, rest, len(d))
	}
	if rest > 0 {
		pad, err := r.ReadBits(uint8(rest))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTruncated, err)
		}
		if pad != 0 {
			return nil, fmt.Errorf("%w: nonzero padding after %d tokens", ErrTruncated, len(d))
		}
	}
	return d, nil
}
