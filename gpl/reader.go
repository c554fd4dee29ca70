package gpl

import (
	"bufio"
	"image/color"
	"io"
	"strconv"
	"strings"
)

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func clamp(v int) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return uint8(v)
}

// parseLine harvests up to three bare decimal values from a data line.
// Anything else on the line, including signed or fractional numbers and
// the trailing label, is ignored.
func parseLine(line string) (color.RGBA, bool) {
	var channels [3]uint8

	n := 0
	for _, field := range strings.Fields(line) {
		if !isDigits(field) {
			continue
		}
		v, err := strconv.Atoi(field)
		if err != nil {
			return color.RGBA{}, false
		}
		channels[n] = clamp(v)
		if n++; n == len(channels) {
			break
		}
	}

	if n < len(channels) {
		return color.RGBA{}, false
	}

	return color.RGBA{channels[0], channels[1], channels[2], 0xff}, true
}

// Decode reads a GIMP palette from r and returns the colors in file
// order. Malformed lines are dropped rather than treated as fatal, so a
// file with no usable data lines decodes to an empty palette and a nil
// error; it is up to the caller whether that is acceptable.
func Decode(r io.Reader) (color.Palette, error) {
	var p color.Palette

	s := bufio.NewScanner(r)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if c, ok := parseLine(line); ok {
			p = append(p, c)
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}

	return p, nil
}
