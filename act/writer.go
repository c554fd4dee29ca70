package act

import (
	"encoding/binary"
	"image/color"
	"io"
)

type encoder struct {
	w io.Writer
}

func (e *encoder) encode(p color.Palette) error {
	retained := len(p)
	if retained > maxColors {
		retained = maxColors
	}

	var tmp [colorBytes]byte
	for _, c := range p[:retained] {
		r, g, b, _ := c.RGBA()

		tmp[0] = byte(r >> 8)
		tmp[1] = byte(g >> 8)
		tmp[2] = byte(b >> 8)

		if _, err := e.w.Write(tmp[:]); err != nil {
			return err
		}
	}

	// Pad the remaining slots with black
	tmp = [colorBytes]byte{}
	for i := retained; i < maxColors; i++ {
		if _, err := e.w.Write(tmp[:]); err != nil {
			return err
		}
	}

	// CS2 compatibility marker for partial palettes
	if len(p) > 0 && len(p) < maxColors {
		if err := binary.Write(e.w, binary.BigEndian, uint16(len(p))); err != nil {
			return err
		}
	}

	return nil
}

// Encode writes the palette p to w in Adobe Color Table format. Only the
// first 256 colors are written; any excess is dropped. Palettes of
// between 1 and 255 colors gain a trailing big-endian count so the
// padding slots can be told apart from real black entries on read.
func Encode(w io.Writer, p color.Palette) error {
	e := encoder{w: w}
	return e.encode(p)
}
