package tw

import (
	"strconv"
	"strings"

	"github.com/gogpu/nodeimg/style"
)

// containerSizes are the named widths of the container scale, in rem.
var containerSizes = map[string]float32{
	"3xs": 16, "2xs": 18, "xs": 20, "sm": 24, "md": 28, "lg": 32,
	"xl": 36, "2xl": 42, "3xl": 48, "4xl": 56, "5xl": 64, "6xl": 72, "7xl": 80,
}

func parseNumber(s string) (float32, bool) {
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, false
	}
	return float32(f), true
}

// parseFraction parses "a/b" as a percentage.
func parseFraction(s string) (float32, bool) {
	num, den, ok := strings.Cut(s, "/")
	if !ok {
		return 0, false
	}
	a, ok1 := parseNumber(num)
	b, ok2 := parseNumber(den)
	if !ok1 || !ok2 || b == 0 {
		return 0, false
	}
	return a / b * 100, true
}

func negate(l style.Length, neg bool) style.Length {
	if neg && !l.IsAuto() {
		l.Value = -l.Value
	}
	return l
}

// spacing parses a length on the spacing scale: a step count, a fraction,
// a keyword or an arbitrary value.
func spacing(v Value) (style.Length, bool) {
	if raw, ok := v.Arbitrary(); ok {
		l, err := style.ParseLength(raw)
		return negate(l, v.Negative), err == nil
	}
	if n, ok := parseNumber(v.Suffix); ok {
		return negate(style.Rem(n*Spacing), v.Negative), true
	}
	if p, ok := parseFraction(v.Suffix); ok {
		return negate(style.Percent(p), v.Negative), true
	}
	switch v.Suffix {
	case "auto":
		return style.Auto, !v.Negative
	case "px":
		return negate(style.Px(1), v.Negative), true
	case "full":
		return negate(style.Percent(100), v.Negative), true
	case "dvw", "svw", "lvw":
		return style.Vw(100), !v.Negative
	case "dvh", "svh", "lvh":
		return style.Vh(100), !v.Negative
	}
	if rem, ok := containerSizes[v.Suffix]; ok && !v.Negative {
		return style.Rem(rem), true
	}
	return style.Length{}, false
}

// color parses "current", "transparent", "black", "white", a palette
// entry such as "sky-500", or an arbitrary color. A "/NN" suffix sets the
// alpha as a percentage.
func color(v Value) (style.ColorInput, bool) {
	if v.Negative {
		return style.ColorInput{}, false
	}
	if raw, ok := v.Arbitrary(); ok {
		c, err := style.ParseColorInput(raw)
		return c, err == nil
	}
	name, alpha, hasAlpha := strings.Cut(v.Suffix, "/")
	var c style.Color
	switch name {
	case "current":
		return style.CurrentColor(), !hasAlpha
	case "transparent":
		c = style.Transparent
	case "black":
		c = style.Black
	case "white":
		c = style.White
	default:
		var ok bool
		if c, ok = paletteColor(name); !ok {
			return style.ColorInput{}, false
		}
	}
	if hasAlpha {
		pct, ok := parseNumber(alpha)
		if !ok {
			return style.ColorInput{}, false
		}
		c = c.WithAlpha(pct / 100)
	}
	return style.ColorOf(c), true
}

func paletteColor(name string) (style.Color, bool) {
	family, shade, ok := strings.Cut(name, "-")
	if !ok {
		return style.Color{}, false
	}
	row, ok := palette[family]
	if !ok {
		return style.Color{}, false
	}
	for i, s := range shades {
		if s == shade {
			rgb := row[i]
			return style.RGB(uint8(rgb>>16), uint8(rgb>>8), uint8(rgb)), true
		}
	}
	return style.Color{}, false
}

// number parses a plain or arbitrary number.
func number(v Value) (float32, bool) {
	s := v.Suffix
	if raw, ok := v.Arbitrary(); ok {
		s = raw
	}
	n, ok := parseNumber(s)
	if v.Negative {
		n = -n
	}
	return n, ok
}

// gridTracks parses a track count such as "3" or an arbitrary track list
// such as "[200px_1fr]".
func gridTracks(v Value) (style.GridTracks, bool) {
	if v.Negative {
		return nil, false
	}
	s := v.Suffix
	if raw, ok := v.Arbitrary(); ok {
		s = raw
	} else if _, err := strconv.Atoi(s); err != nil {
		return nil, false
	}
	g, err := style.ParseGridTracks(s)
	return g, err == nil
}

// percentage parses a number meant as a percentage and returns it as a
// factor: "50" is 0.5. Arbitrary values may carry a "%" sign.
func percentage(v Value) (float32, bool) {
	if raw, ok := v.Arbitrary(); ok {
		if pct, isPct := strings.CutSuffix(raw, "%"); isPct {
			n, ok := parseNumber(pct)
			return n / 100, ok
		}
		return number(v)
	}
	n, ok := number(v)
	return n / 100, ok
}

// anchors maps position utilities to anchors.
var anchors = map[string]style.Anchor{
	"center":       style.Center,
	"top":          {X: style.Percent(50), Y: style.Percent(0)},
	"bottom":       {X: style.Percent(50), Y: style.Percent(100)},
	"left":         {X: style.Percent(0), Y: style.Percent(50)},
	"right":        {X: style.Percent(100), Y: style.Percent(50)},
	"top-left":     style.TopLeft,
	"left-top":     style.TopLeft,
	"top-right":    {X: style.Percent(100), Y: style.Percent(0)},
	"right-top":    {X: style.Percent(100), Y: style.Percent(0)},
	"bottom-left":  {X: style.Percent(0), Y: style.Percent(100)},
	"left-bottom":  {X: style.Percent(0), Y: style.Percent(100)},
	"bottom-right": {X: style.Percent(100), Y: style.Percent(100)},
	"right-bottom": {X: style.Percent(100), Y: style.Percent(100)},
}

func anchor(v Value) (style.Anchor, bool) {
	if v.Negative {
		return style.Anchor{}, false
	}
	if raw, ok := v.Arbitrary(); ok {
		a, err := style.ParseAnchor(raw)
		return a, err == nil
	}
	a, ok := anchors[v.Suffix]
	return a, ok
}

// keyword maps the suffix through a fixed table.
func keyword[T any](table map[string]T) func(v Value) (T, bool) {
	return func(v Value) (T, bool) {
		t, ok := table[v.Suffix]
		return t, ok && !v.Negative
	}
}
