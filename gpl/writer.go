package gpl

import (
	"fmt"
	"image/color"
	"io"
)

// Encode writes the palette p to w in GIMP palette format under the
// given palette name and column hint. Zero columns leaves the grid width
// unspecified. Colors are written in input order, one per line.
func Encode(w io.Writer, p color.Palette, name string, columns int) error {
	if _, err := fmt.Fprintf(w, "%s\nName: %s\nColumns: %d\n#\n", magic, name, columns); err != nil {
		return err
	}

	for _, c := range p {
		r, g, b, _ := c.RGBA()

		if _, err := fmt.Fprintf(w, "%d %d %d\t%s\n", r>>8, g>>8, b>>8, colorLabel); err != nil {
			return err
		}
	}

	return nil
}
