/*
Package act implements an Adobe Color Table palette decoder and encoder.

The format is a fixed table of 256 color slots where each color is stored
as three raw bytes in R, G, B order, giving a 768 byte file. Palettes with
fewer than 256 significant colors may carry a big-endian 16-bit color
count after the table, optionally followed by a 16-bit transparency index
as written by Photoshop CS2, giving a 770 or 772 byte file in which the
count is authoritative. Files of any other size hold one color per 3
bytes with any trailing 1-2 bytes ignored.
*/
package act

const (
	maxColors  = 256
	colorBytes = 3
	tableBytes = maxColors * colorBytes

	countOffset = tableBytes

	// The full table plus a count, and plus a transparency index
	countFileBytes = tableBytes + 2
	cs2FileBytes   = tableBytes + 4
)
