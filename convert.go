package palette

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/palette/act"
	"github.com/bodgit/palette/gpl"
)

// ErrEmptyPalette is returned when a GIMP palette file yields no usable
// colors at all, which is distinct from the file merely being unreadable.
var ErrEmptyPalette = errors.New("palette: no valid colors found")

// GPLToACT converts the GIMP palette at in to an Adobe Color Table at
// out, returning the number of colors read. A source file with no usable
// colors returns ErrEmptyPalette and writes nothing.
func (c *Converter) GPLToACT(in, out string) (int, error) {
	f, err := os.Open(in)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	p, err := gpl.Decode(f)
	if err != nil {
		return 0, err
	}

	if len(p) == 0 {
		return 0, ErrEmptyPalette
	}

	w, err := os.Create(out)
	if err != nil {
		return 0, err
	}
	defer w.Close()

	if err := act.Encode(w, p); err != nil {
		return 0, err
	}

	c.logger.Printf("Converted %d colors from \"%s\" to \"%s\"\n", len(p), in, out)

	return len(p), nil
}

// ACTToGPL converts the Adobe Color Table at in to a GIMP palette at
// out. The palette is named after the output file and columns is passed
// through as the grid width hint.
func (c *Converter) ACTToGPL(in, out string, columns int) error {
	f, err := os.Open(in)
	if err != nil {
		return err
	}
	defer f.Close()

	p, err := act.Decode(f)
	if err != nil {
		return err
	}

	w, err := os.Create(out)
	if err != nil {
		return err
	}
	defer w.Close()

	if err := gpl.Encode(w, p, paletteName(out), columns); err != nil {
		return err
	}

	c.logger.Printf("Converted %d colors from \"%s\" to \"%s\"\n", len(p), in, out)

	return nil
}

func paletteName(file string) string {
	base := filepath.Base(file)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
