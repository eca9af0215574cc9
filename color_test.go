package cellui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/cellui"
)

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want uint32
	}{
		{"white", cellui.ColorWhite},
		{"RED", cellui.ColorRed},
		{"  blue ", cellui.ColorBlue},
		{"#fff", cellui.RGBA(255, 255, 255, 255)},
		{"#ff8000", cellui.RGBA(255, 128, 0, 255)},
		{"#ff800080", cellui.RGBA(255, 128, 0, 128)},
		{"rgb(10, 20, 30)", cellui.RGBA(10, 20, 30, 255)},
		{"rgba(10, 20, 30, 40)", cellui.RGBA(10, 20, 30, 40)},
	}
	for _, tc := range cases {
		got, err := cellui.ParseColor(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestParseColorErrors(t *testing.T) {
	for _, in := range []string{
		"",
		"notacolor",
		"#zz0000",
		"#12345",
		"rgb(1,2)",
		"rgb(1,2,300)",
		"rgba(1,2,3,4,5)",
		"rgb(1,2,3",
	} {
		_, err := cellui.ParseColor(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestMustParseColorPanics(t *testing.T) {
	assert.Equal(t, cellui.ColorRed, cellui.MustParseColor("red"))
	assert.Panics(t, func() { cellui.MustParseColor("bogus") })
}

func TestPackedColorRoundTrip(t *testing.T) {
	c := cellui.RGBA(1, 2, 3, 4)
	r, g, b, a := cellui.UnpackRGBA(c)
	assert.Equal(t, uint8(1), r)
	assert.Equal(t, uint8(2), g)
	assert.Equal(t, uint8(3), b)
	assert.Equal(t, uint8(4), a)
}
