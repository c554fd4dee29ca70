package act_test

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bodgit/palette/act"
)

func table(colors []color.RGBA, trailer []byte) []byte {
	b := make([]byte, 0, 772)
	for _, c := range colors {
		b = append(b, c.R, c.G, c.B)
	}
	for i := len(colors); i < 256; i++ {
		b = append(b, 0, 0, 0)
	}
	return append(b, trailer...)
}

func TestDecode(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input []byte
		want  color.Palette
		err   error
	}{
		{
			name:  "two colors",
			input: []byte{1, 2, 3, 4, 5, 6},
			want: color.Palette{
				color.RGBA{1, 2, 3, 0xff},
				color.RGBA{4, 5, 6, 0xff},
			},
		},
		{
			name:  "trailing bytes ignored",
			input: []byte{1, 2, 3, 4, 5, 6, 7, 8},
			want: color.Palette{
				color.RGBA{1, 2, 3, 0xff},
				color.RGBA{4, 5, 6, 0xff},
			},
		},
		{
			name: "full table",
			input: table([]color.RGBA{
				{10, 20, 30, 0xff},
			}, nil),
			want: append(color.Palette{
				color.RGBA{10, 20, 30, 0xff},
			}, blackPalette(255)...),
		},
		{
			name: "trailing count is authoritative",
			input: table([]color.RGBA{
				{1, 1, 1, 0xff},
				{2, 2, 2, 0xff},
				{3, 3, 3, 0xff},
			}, []byte{0x00, 0x02}),
			want: color.Palette{
				color.RGBA{1, 1, 1, 0xff},
				color.RGBA{2, 2, 2, 0xff},
			},
		},
		{
			name:  "count exceeds data",
			input: table(nil, []byte{0x01, 0x0a}),
			err:   act.ErrTruncated,
		},
		{
			name:  "trailing byte ignored on odd size",
			input: []byte{1, 2, 3, 4},
			want: color.Palette{
				color.RGBA{1, 2, 3, 0xff},
			},
		},
		{
			name:  "empty",
			input: nil,
			want:  color.Palette{},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			p, err := act.Decode(bytes.NewReader(tc.input))
			if tc.err != nil {
				assert.Equal(t, tc.err, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, p)
		})
	}
}

func TestDecodeCS2Count(t *testing.T) {
	// A 772 byte file geometrically implies 257 colors but the trailing
	// count wins
	b := table(nil, []byte{0x00, 0x0a, 0xff, 0xff})
	require.Len(t, b, 772)

	p, err := act.Decode(bytes.NewReader(b))
	require.NoError(t, err)
	assert.Len(t, p, 10)
}

func TestEncode(t *testing.T) {
	for _, tc := range []struct {
		name      string
		palette   color.Palette
		size      int
		trailer   []byte
		firstbyte byte
	}{
		{
			name:    "empty",
			palette: color.Palette{},
			size:    768,
		},
		{
			name: "partial",
			palette: color.Palette{
				color.RGBA{9, 8, 7, 0xff},
			},
			size:      770,
			trailer:   []byte{0x00, 0x01},
			firstbyte: 9,
		},
		{
			name:      "full",
			palette:   grayPalette(256),
			size:      768,
			firstbyte: 0,
		},
		{
			name:      "oversized",
			palette:   grayPalette(300),
			size:      768,
			firstbyte: 0,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			b := new(bytes.Buffer)
			require.NoError(t, act.Encode(b, tc.palette))
			assert.Len(t, b.Bytes(), tc.size)
			if tc.trailer != nil {
				assert.Equal(t, tc.trailer, b.Bytes()[768:])
			}
			if len(tc.palette) > 0 {
				assert.Equal(t, tc.firstbyte, b.Bytes()[0])
			}
		})
	}
}

func TestEncodeTruncates(t *testing.T) {
	b := new(bytes.Buffer)
	require.NoError(t, act.Encode(b, grayPalette(300)))

	// Slot 255 holds color 255, not color 299
	assert.Equal(t, byte(255), b.Bytes()[255*3])
}

func TestRoundTrip(t *testing.T) {
	want := grayPalette(100)

	b := new(bytes.Buffer)
	require.NoError(t, act.Encode(b, want))

	got, err := act.Decode(b)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func grayPalette(n int) color.Palette {
	p := make(color.Palette, n)
	for i := range p {
		v := uint8(i & 0xff)
		p[i] = color.RGBA{v, v, v, 0xff}
	}
	return p
}

func blackPalette(n int) color.Palette {
	p := make(color.Palette, n)
	for i := range p {
		p[i] = color.RGBA{0, 0, 0, 0xff}
	}
	return p
}
