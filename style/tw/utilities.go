package tw

import (
	"slices"
	"strings"

	"github.com/gogpu/nodeimg/style"
)

func utility[T any](parse func(Value) (T, bool), set func(s *style.Style, v T)) PrefixFunc {
	return func(v Value) (Apply, bool) {
		t, ok := parse(v)
		if !ok {
			return nil, false
		}
		return func(s *style.Style) { set(s, t) }, true
	}
}

type edges uint8

const (
	top edges = 1 << iota
	right
	bottom
	left

	allEdges = top | right | bottom | left
	xEdges   = left | right
	yEdges   = top | bottom
)

func setEdges[T any](dst *style.Sides[style.Optional[T]], v T, e edges) {
	if e&top != 0 {
		dst.Top = style.Some(v)
	}
	if e&right != 0 {
		dst.Right = style.Some(v)
	}
	if e&bottom != 0 {
		dst.Bottom = style.Some(v)
	}
	if e&left != 0 {
		dst.Left = style.Some(v)
	}
}

type corners uint8

const (
	topLeft corners = 1 << iota
	topRight
	bottomRight
	bottomLeft
)

func setCorners(dst *style.Corners[style.Optional[style.Length]], v style.Length, c corners) {
	if c&topLeft != 0 {
		dst.TopLeft = style.Some(v)
	}
	if c&topRight != 0 {
		dst.TopRight = style.Some(v)
	}
	if c&bottomRight != 0 {
		dst.BottomRight = style.Some(v)
	}
	if c&bottomLeft != 0 {
		dst.BottomLeft = style.Some(v)
	}
}

func appendFilter(dst *style.Optional[[]style.Filter], f style.Filter) {
	prev, _ := dst.Get()
	*dst = style.Some(append(slices.Clone(prev), f))
}

var radii = map[string]style.Length{
	"none": style.Px(0), "xs": style.Rem(0.125), "sm": style.Rem(0.25), "md": style.Rem(0.375),
	"lg": style.Rem(0.5), "xl": style.Rem(0.75), "2xl": style.Rem(1), "3xl": style.Rem(1.5),
	"4xl": style.Rem(2), "full": style.Px(9999),
}

func radius(v Value) (style.Length, bool) {
	if l, ok := radii[v.Suffix]; ok && !v.Negative {
		return l, true
	}
	if raw, ok := v.Arbitrary(); ok {
		l, err := style.ParseLength(raw)
		return l, err == nil
	}
	return style.Length{}, false
}

func borderWidth(v Value) (style.Length, bool) {
	if raw, ok := v.Arbitrary(); ok {
		l, err := style.ParseLength(raw)
		return l, err == nil
	}
	n, ok := parseNumber(v.Suffix)
	return style.Px(n), ok && !v.Negative
}

type fontSize struct {
	size style.Length
	lead style.Optional[style.LineHeight]
}

func sized(rem, lead float32) fontSize {
	return fontSize{style.Rem(rem), style.Some(style.LineHeightFactor(lead))}
}

var fontSizes = map[string]fontSize{
	"xs":   sized(0.75, 1/0.75),
	"sm":   sized(0.875, 1.25/0.875),
	"base": sized(1, 1.5),
	"lg":   sized(1.125, 1.75/1.125),
	"xl":   sized(1.25, 1.75/1.25),
	"2xl":  sized(1.5, 2/1.5),
	"3xl":  sized(1.875, 2.25/1.875),
	"4xl":  sized(2.25, 2.5/2.25),
	"5xl":  sized(3, 1),
	"6xl":  sized(3.75, 1),
	"7xl":  sized(4.5, 1),
	"8xl":  sized(6, 1),
	"9xl":  sized(8, 1),
}

var leadings = map[string]float32{
	"none": 1, "tight": 1.25, "snug": 1.375, "normal": 1.5, "relaxed": 1.625, "loose": 2,
}

func lineHeight(v Value) (style.LineHeight, bool) {
	if v.Negative {
		return style.LineHeight{}, false
	}
	if f, ok := leadings[v.Suffix]; ok {
		return style.LineHeightFactor(f), true
	}
	if raw, ok := v.Arbitrary(); ok {
		if n, ok := parseNumber(raw); ok {
			return style.LineHeightFactor(n), true
		}
		l, err := style.ParseLength(raw)
		return style.LineHeightLength(l), err == nil
	}
	if n, ok := parseNumber(v.Suffix); ok {
		return style.LineHeightLength(style.Rem(n * Spacing)), true
	}
	return style.LineHeight{}, false
}

// textSize handles "text-lg" and "text-lg/7"; the part after the slash is
// a leading value that replaces the size's own.
func textSize(v Value) (fontSize, bool) {
	if v.Negative {
		return fontSize{}, false
	}
	if raw, ok := v.Arbitrary(); ok {
		l, err := style.ParseLength(raw)
		return fontSize{size: l}, err == nil
	}
	name, lead, hasLead := strings.Cut(v.Suffix, "/")
	fs, ok := fontSizes[name]
	if !ok || !hasLead {
		return fs, ok
	}
	lh, ok := lineHeight(Value{Suffix: lead})
	fs.lead = style.Some(lh)
	return fs, ok
}

var fontWeights = map[string]style.FontWeight{
	"thin": 100, "extralight": 200, "light": 300, "normal": 400, "medium": 500,
	"semibold": 600, "bold": 700, "extrabold": 800, "black": 900,
}

func fontWeight(v Value) (style.FontWeight, bool) {
	if v.Negative {
		return 0, false
	}
	if w, ok := fontWeights[v.Suffix]; ok {
		return w, true
	}
	if raw, ok := v.Arbitrary(); ok {
		v = Value{Suffix: raw}
	}
	n, ok := parseNumber(v.Suffix)
	if !ok || n < 1 || n > 1000 || n != float32(int(n)) {
		return 0, false
	}
	return style.FontWeight(n), true
}

var fontFamilies = map[string][]string{
	"sans":  {"ui-sans-serif", "system-ui", "sans-serif"},
	"serif": {"ui-serif", "serif"},
	"mono":  {"ui-monospace", "monospace"},
}

func fontFamily(v Value) ([]string, bool) {
	if f, ok := fontFamilies[v.Suffix]; ok && !v.Negative {
		return f, true
	}
	raw, ok := v.Arbitrary()
	if !ok {
		return nil, false
	}
	var out []string
	for _, f := range strings.Split(raw, ",") {
		if f = strings.Trim(strings.TrimSpace(f), `"'`); f != "" {
			out = append(out, f)
		}
	}
	return out, len(out) > 0
}
