package act

import (
	"encoding/binary"
	"errors"
	"image/color"
	"io"
	"io/ioutil"
)

// ErrTruncated is returned by Decode when the color count declared by a
// CS2 trailer exceeds the color data actually present.
var ErrTruncated = errors.New("act: truncated color data")

// Decode reads an Adobe Color Table from r and returns it as a palette.
// The whole input is consumed; an input sized for a trailing color count
// has that count honored over the 256 slots implied by the table itself.
func Decode(r io.Reader) (color.Palette, error) {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}

	count := len(b) / colorBytes
	if len(b) == countFileBytes || len(b) == cs2FileBytes {
		count = int(binary.BigEndian.Uint16(b[countOffset:]))
	}

	if count*colorBytes > len(b) {
		return nil, ErrTruncated
	}

	p := make(color.Palette, count)
	for i := range p {
		p[i] = color.RGBA{
			b[i*colorBytes+0],
			b[i*colorBytes+1],
			b[i*colorBytes+2],
			0xff,
		}
	}

	return p, nil
}
