package style

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is a non-premultiplied 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

var (
	Transparent = Color{}
	Black       = Color{0, 0, 0, 255}
	White       = Color{255, 255, 255, 255}
)

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{r, g, b, 255}
}

// WithAlpha returns c with its alpha scaled by f in [0, 1].
func (c Color) WithAlpha(f float32) Color {
	if f >= 1 {
		return c
	}
	if f <= 0 {
		c.A = 0
		return c
	}
	c.A = uint8(float32(c.A)*f + 0.5)
	return c
}

// RGBA returns c as a premultiplied color.RGBA.
func (c Color) RGBA() color.RGBA {
	a := uint32(c.A)
	return color.RGBA{
		R: uint8((uint32(c.R)*a + 127) / 255),
		G: uint8((uint32(c.G)*a + 127) / 255),
		B: uint8((uint32(c.B)*a + 127) / 255),
		A: c.A,
	}
}

func (c Color) String() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

var namedColors = map[string]Color{
	"transparent": Transparent,
	"black":       Black,
	"white":       White,
	"red":         RGB(255, 0, 0),
	"green":       RGB(0, 128, 0),
	"lime":        RGB(0, 255, 0),
	"blue":        RGB(0, 0, 255),
	"yellow":      RGB(255, 255, 0),
	"cyan":        RGB(0, 255, 255),
	"aqua":        RGB(0, 255, 255),
	"magenta":     RGB(255, 0, 255),
	"fuchsia":     RGB(255, 0, 255),
	"gray":        RGB(128, 128, 128),
	"grey":        RGB(128, 128, 128),
	"silver":      RGB(192, 192, 192),
	"maroon":      RGB(128, 0, 0),
	"olive":       RGB(128, 128, 0),
	"navy":        RGB(0, 0, 128),
	"purple":      RGB(128, 0, 128),
	"teal":        RGB(0, 128, 128),
	"orange":      RGB(255, 165, 0),
	"pink":        RGB(255, 192, 203),
	"brown":       RGB(165, 42, 42),
}

// ParseColor parses hex (#rgb, #rgba, #rrggbb, #rrggbbaa), rgb()/rgba()
// and a small set of named colors.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") {
		return parseHex(s[1:])
	}
	if strings.HasPrefix(s, "rgb") {
		return parseRGBFunc(s)
	}
	return Color{}, fmt.Errorf("style: invalid color %q", s)
}

func parseHex(h string) (Color, error) {
	expand := func(b byte) string { return string([]byte{b, b}) }
	switch len(h) {
	case 3, 4:
		var full strings.Builder
		for i := 0; i < len(h); i++ {
			full.WriteString(expand(h[i]))
		}
		h = full.String()
	case 6, 8:
	default:
		return Color{}, fmt.Errorf("style: invalid hex color %q", h)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("style: invalid hex color %q", h)
	}
	if len(h) == 6 {
		return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
	}
	return Color{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
}

func parseRGBFunc(s string) (Color, error) {
	open, end := strings.IndexByte(s, '('), strings.LastIndexByte(s, ')')
	if open < 0 || end < open {
		return Color{}, fmt.Errorf("style: invalid color %q", s)
	}
	body := strings.NewReplacer(",", " ", "/", " ").Replace(s[open+1 : end])
	parts := strings.Fields(body)
	if len(parts) != 3 && len(parts) != 4 {
		return Color{}, fmt.Errorf("style: invalid color %q", s)
	}
	var ch [4]float64
	ch[3] = 1
	for i, p := range parts {
		pct := strings.HasSuffix(p, "%")
		v, err := strconv.ParseFloat(strings.TrimSuffix(p, "%"), 64)
		if err != nil {
			return Color{}, fmt.Errorf("style: invalid color %q", s)
		}
		switch {
		case pct && i < 3:
			v = v / 100 * 255
		case pct:
			v /= 100
		}
		ch[i] = v
	}
	clamp := func(v, hi float64) float64 { return max(0, min(hi, v)) }
	return Color{
		R: uint8(clamp(ch[0], 255) + 0.5),
		G: uint8(clamp(ch[1], 255) + 0.5),
		B: uint8(clamp(ch[2], 255) + 0.5),
		A: uint8(clamp(ch[3], 1)*255 + 0.5),
	}, nil
}

// UnmarshalText parses a color string.
func (c *Color) UnmarshalText(b []byte) error {
	v, err := ParseColor(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// MarshalText encodes c as hex.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// ColorInput is either a concrete color or currentColor.
type ColorInput struct {
	Value   Color
	Current bool
}

// CurrentColor refers to the element's resolved color property.
func CurrentColor() ColorInput {
	return ColorInput{Current: true}
}

// ColorOf wraps a concrete color.
func ColorOf(c Color) ColorInput {
	return ColorInput{Value: c}
}

// Resolve substitutes current for currentColor.
func (ci ColorInput) Resolve(current Color) Color {
	if ci.Current {
		return current
	}
	return ci.Value
}

// ParseColorInput accepts "currentColor" in addition to ParseColor syntax.
func ParseColorInput(s string) (ColorInput, error) {
	if strings.EqualFold(strings.TrimSpace(s), "currentcolor") {
		return CurrentColor(), nil
	}
	c, err := ParseColor(s)
	return ColorOf(c), err
}

// UnmarshalText parses a color or currentColor.
func (ci *ColorInput) UnmarshalText(b []byte) error {
	v, err := ParseColorInput(string(b))
	if err != nil {
		return err
	}
	*ci = v
	return nil
}

// MarshalText encodes ci.
func (ci ColorInput) MarshalText() ([]byte, error) {
	if ci.Current {
		return []byte("currentColor"), nil
	}
	return ci.Value.MarshalText()
}
