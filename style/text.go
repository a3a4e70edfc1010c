package style

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultLineHeight is the multiplier used for line-height: normal.
const DefaultLineHeight = 1.2

// LineHeight is either normal, a unitless multiplier or a length.
type LineHeight struct {
	Normal bool
	Factor float32
	Length Length
}

// LineHeightNormal is the initial line-height.
var LineHeightNormal = LineHeight{Normal: true}

// LineHeightFactor returns a unitless line-height.
func LineHeightFactor(f float32) LineHeight { return LineHeight{Factor: f} }

// LineHeightLength returns an absolute line-height.
func LineHeightLength(l Length) LineHeight { return LineHeight{Length: l} }

// Resolve returns the line height in device pixels for fontSize.
func (lh LineHeight) Resolve(m Metrics, fontSize float32) float32 {
	switch {
	case lh.Normal:
		return fontSize * DefaultLineHeight
	case lh.Factor > 0:
		return fontSize * lh.Factor
	}
	return lh.Length.Resolve(m, fontSize)
}

// UnmarshalJSON accepts "normal", a number, or a length string.
func (lh *LineHeight) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) > 0 && s[0] == '"' {
		var err error
		if s, err = strconv.Unquote(s); err != nil {
			return err
		}
		if strings.EqualFold(s, "normal") {
			*lh = LineHeightNormal
			return nil
		}
		l, err := ParseLength(s)
		if err != nil {
			return err
		}
		*lh = LineHeightLength(l)
		return nil
	}
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return fmt.Errorf("style: invalid line-height %s", s)
	}
	*lh = LineHeightFactor(float32(f))
	return nil
}

// LineClamp limits the number of lines. Ellipsis, when non-empty, replaces
// the default "…" on truncated text.
type LineClamp struct {
	Count    int    `json:"count"`
	Ellipsis string `json:"ellipsis"`
}

// DecorationLine is a set of text-decoration-line flags.
type DecorationLine uint8

const (
	Underline DecorationLine = 1 << iota
	Overline
	LineThrough
)

// Has reports whether all flags in f are set.
func (d DecorationLine) Has(f DecorationLine) bool { return d&f == f }

// UnmarshalText parses a space-separated list such as "underline line-through".
func (d *DecorationLine) UnmarshalText(b []byte) error {
	var v DecorationLine
	for _, part := range strings.Fields(strings.ToLower(string(b))) {
		switch part {
		case "none":
		case "underline":
			v |= Underline
		case "overline":
			v |= Overline
		case "line-through":
			v |= LineThrough
		default:
			return fmt.Errorf("style: invalid text-decoration-line %q", part)
		}
	}
	*d = v
	return nil
}

// FontWeight is a numeric weight from 1 to 1000.
type FontWeight uint16

const (
	WeightNormal FontWeight = 400
	WeightBold   FontWeight = 700
)

// UnmarshalJSON accepts a number or "normal"/"bold".
func (w *FontWeight) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	switch strings.ToLower(s) {
	case "normal":
		*w = WeightNormal
		return nil
	case "bold":
		*w = WeightBold
		return nil
	}
	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil || v < 1 || v > 1000 {
		return fmt.Errorf("style: invalid font-weight %s", data)
	}
	*w = FontWeight(v)
	return nil
}
