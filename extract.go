package palette

import (
	"errors"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/bodgit/palette/gpl"
	"github.com/ericpauley/go-quantize/quantize"
)

const maxExtractColors = 256

// Extract reduces the image at in to at most colors entries using median
// cut quantization and writes the result as a GIMP palette at out.
func (c *Converter) Extract(in, out string, colors int) error {
	if colors < 1 || colors > maxExtractColors {
		return errors.New("palette: color count out of range")
	}

	f, err := os.Open(in)
	if err != nil {
		return err
	}
	defer f.Close()

	m, _, err := image.Decode(f)
	if err != nil {
		return err
	}

	q := quantize.MedianCutQuantizer{}
	p := q.Quantize(make(color.Palette, 0, colors), m)

	w, err := os.Create(out)
	if err != nil {
		return err
	}
	defer w.Close()

	if err := gpl.Encode(w, p, paletteName(out), 0); err != nil {
		return err
	}

	c.logger.Printf("Extracted %d colors from \"%s\" to \"%s\"\n", len(p), in, out)

	return nil
}
