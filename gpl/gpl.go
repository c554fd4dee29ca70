/*
Package gpl implements a GIMP palette decoder and encoder.

The format is line-oriented UTF-8 text: a "GIMP Palette" magic line,
"Name:" and "Columns:" header lines, a lone "#" separator and then one
color per line as three whitespace-separated decimal values followed by a
tab and a label. The decoder is deliberately lenient; it never parses the
header block, it only harvests any line carrying at least three bare
decimal values and drops everything else.
*/
package gpl

const (
	// Per-color label emitted by the encoder. The ACT format this
	// package round-trips with has no per-color names to preserve.
	colorLabel = "Untitled"

	magic = "GIMP Palette"
)
