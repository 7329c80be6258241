package colors

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Color is RGBA with each channel normalized to [0..1].
type Color [4]float32

var (
	White       = Color{1, 1, 1, 1}
	Black       = Color{0, 0, 0, 1}
	Red         = Color{1, 0, 0, 1}
	Green       = Color{0, 1, 0, 1}
	Blue        = Color{0, 0, 1, 1}
	Magenta     = Color{1, 0, 1, 1}
	Yellow      = Color{1, 1, 0, 1}
	Cyan        = Color{0, 1, 1, 1}
	Gray        = Color{0.5, 0.5, 0.5, 1}
	DarkGray    = Color{0.08, 0.10, 0.12, 1}
	Transparent = Color{}
)

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// Hex parses "#rrggbb" or "#rrggbbaa". The leading '#' is optional.
func Hex(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 && len(s) != 8 {
		return Color{}, fmt.Errorf("color %q: want 6 or 8 hex digits", s)
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	c := Color{0, 0, 0, 1}
	for i, v := range b {
		c[i] = float32(v) / 255
	}
	return c, nil
}

// String formats c as "#rrggbbaa".
func (c Color) String() string {
	var b [4]byte
	for i, v := range c {
		switch {
		case v <= 0:
			b[i] = 0
		case v >= 1:
			b[i] = 255
		default:
			b[i] = byte(v*255 + 0.5)
		}
	}
	return "#" + hex.EncodeToString(b[:])
}

func (c Color) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *Color) UnmarshalText(text []byte) error {
	v, err := Hex(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
