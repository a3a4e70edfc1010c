// Package blend implements the W3C Compositing and Blending Level 1 blend
// modes on premultiplied colors, plus the plus-lighter and plus-darker
// compositing operators.
//
// References:
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// Mode is a mix-blend-mode.
type Mode uint8

const (
	Normal Mode = iota
	Multiply
	Screen
	Overlay
	Darken
	Lighten
	ColorDodge
	ColorBurn
	HardLight
	SoftLight
	Difference
	Exclusion
	Hue
	Saturation
	Color
	Luminosity
	PlusLighter
	PlusDarker
)

var modeNames = [...]string{
	Normal:      "normal",
	Multiply:    "multiply",
	Screen:      "screen",
	Overlay:     "overlay",
	Darken:      "darken",
	Lighten:     "lighten",
	ColorDodge:  "color-dodge",
	ColorBurn:   "color-burn",
	HardLight:   "hard-light",
	SoftLight:   "soft-light",
	Difference:  "difference",
	Exclusion:   "exclusion",
	Hue:         "hue",
	Saturation:  "saturation",
	Color:       "color",
	Luminosity:  "luminosity",
	PlusLighter: "plus-lighter",
	PlusDarker:  "plus-darker",
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "unknown"
}

// IsSeparable reports whether the mode operates on channels independently.
func (m Mode) IsSeparable() bool {
	return m < Hue || m > Luminosity
}

// RGBA is a premultiplied color with components in [0, 1].
type RGBA struct {
	R, G, B, A float32
}

// FromBytes converts a premultiplied 8-bit pixel.
func FromBytes(r, g, b, a uint8) RGBA {
	return RGBA{float32(r) / 255, float32(g) / 255, float32(b) / 255, float32(a) / 255}
}

// Bytes converts back to a premultiplied 8-bit pixel, rounding and clamping.
func (c RGBA) Bytes() (r, g, b, a uint8) {
	return unit8(c.R), unit8(c.G), unit8(c.B), unit8(c.A)
}

func unit8(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Composite blends src onto dst with mode m and returns the result.
//
// The general formula is
//
//	co = cs*(1-ab) + cb*(1-as) + as*ab*B(Cb, Cs)
//	ao = as + ab*(1-as)
//
// where lower case values are premultiplied and Cs, Cb are unpremultiplied.
func Composite(m Mode, src, dst RGBA) RGBA {
	if src.A <= 0 {
		return dst
	}
	switch m {
	case Normal:
		return SourceOver(src, dst)
	case PlusLighter:
		return RGBA{
			R: min(1, src.R+dst.R),
			G: min(1, src.G+dst.G),
			B: min(1, src.B+dst.B),
			A: min(1, src.A+dst.A),
		}
	case PlusDarker:
		a := min(1, src.A+dst.A)
		return RGBA{
			R: max(0, a-((dst.A-dst.R)+(src.A-src.R))),
			G: max(0, a-((dst.A-dst.G)+(src.A-src.G))),
			B: max(0, a-((dst.A-dst.B)+(src.A-src.B))),
			A: a,
		}
	}
	if dst.A <= 0 {
		return src
	}

	sr, sg, sb := src.R/src.A, src.G/src.A, src.B/src.A
	dr, dg, db := dst.R/dst.A, dst.G/dst.A, dst.B/dst.A

	var br, bg, bb float32
	if m.IsSeparable() {
		f := separable[m]
		br, bg, bb = f(dr, sr), f(dg, sg), f(db, sb)
	} else {
		br, bg, bb = nonSeparable(m, sr, sg, sb, dr, dg, db)
	}

	both := src.A * dst.A
	return RGBA{
		R: src.R*(1-dst.A) + dst.R*(1-src.A) + both*br,
		G: src.G*(1-dst.A) + dst.G*(1-src.A) + both*bg,
		B: src.B*(1-dst.A) + dst.B*(1-src.A) + both*bb,
		A: src.A + dst.A*(1-src.A),
	}
}

// SourceOver is Porter-Duff source-over on premultiplied colors.
func SourceOver(src, dst RGBA) RGBA {
	inv := 1 - src.A
	return RGBA{
		R: src.R + dst.R*inv,
		G: src.G + dst.G*inv,
		B: src.B + dst.B*inv,
		A: src.A + dst.A*inv,
	}
}
