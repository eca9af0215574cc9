package cellui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// colorNames maps the small set of names theme files may use.
var colorNames = map[string]uint32{
	"black":   ColorBlack,
	"white":   ColorWhite,
	"red":     ColorRed,
	"green":   ColorGreen,
	"blue":    ColorBlue,
	"yellow":  ColorYellow,
	"cyan":    ColorCyan,
	"magenta": ColorMagenta,
	"gray":    ColorGray,
	"grey":    ColorGray,
}

// ParseColor parses a color string into a packed RGBA value. Accepted forms:
// "#rgb", "#rrggbb", "#rrggbbaa", "rgb(r,g,b)", "rgba(r,g,b,a)" with 0-255
// components, and the names in colorNames. Alpha defaults to 255.
func ParseColor(s string) (uint32, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return 0, fmt.Errorf("parse color: empty string")
	}

	if c, ok := colorNames[s]; ok {
		return c, nil
	}

	if strings.HasPrefix(s, "#") {
		if len(s) == 9 { // #rrggbbaa
			a, err := strconv.ParseUint(s[7:9], 16, 8)
			if err != nil {
				return 0, fmt.Errorf("parse color %q: %w", s, err)
			}
			c, err := colorful.Hex(s[:7])
			if err != nil {
				return 0, fmt.Errorf("parse color %q: %w", s, err)
			}
			return RGBA(uint8(c.R*255+0.5), uint8(c.G*255+0.5), uint8(c.B*255+0.5), uint8(a)), nil
		}
		c, err := colorful.Hex(s) // handles #rgb and #rrggbb
		if err != nil {
			return 0, fmt.Errorf("parse color %q: %w", s, err)
		}
		return RGBA(uint8(c.R*255+0.5), uint8(c.G*255+0.5), uint8(c.B*255+0.5), 255), nil
	}

	if strings.HasPrefix(s, "rgb(") || strings.HasPrefix(s, "rgba(") {
		open := strings.IndexByte(s, '(')
		if !strings.HasSuffix(s, ")") {
			return 0, fmt.Errorf("parse color %q: missing ')'", s)
		}
		parts := strings.Split(s[open+1:len(s)-1], ",")
		wantAlpha := strings.HasPrefix(s, "rgba(")
		want := 3
		if wantAlpha {
			want = 4
		}
		if len(parts) != want {
			return 0, fmt.Errorf("parse color %q: want %d components, got %d", s, want, len(parts))
		}
		var comps [4]uint8
		comps[3] = 255
		for i, p := range parts {
			v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
			if err != nil {
				return 0, fmt.Errorf("parse color %q: %w", s, err)
			}
			comps[i] = uint8(v)
		}
		return RGBA(comps[0], comps[1], comps[2], comps[3]), nil
	}

	return 0, fmt.Errorf("parse color %q: unrecognized format", s)
}

// MustParseColor is ParseColor for compile-time-known strings; it panics on
// a malformed literal.
func MustParseColor(s string) uint32 {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}
