package style

import (
	"math"

	"github.com/gogpu/nodeimg/geom"
)

// BoxShadow is one box-shadow entry.
type BoxShadow struct {
	Inset   bool       `json:"inset"`
	OffsetX Length     `json:"offsetX"`
	OffsetY Length     `json:"offsetY"`
	Blur    Length     `json:"blur"`
	Spread  Length     `json:"spread"`
	Color   ColorInput `json:"color"`
}

// TextShadow is one text-shadow entry.
type TextShadow struct {
	OffsetX Length     `json:"offsetX"`
	OffsetY Length     `json:"offsetY"`
	Blur    Length     `json:"blur"`
	Color   ColorInput `json:"color"`
}

// FilterKind is a CSS filter function.
type FilterKind uint8

const (
	FilterBlur FilterKind = iota
	FilterBrightness
	FilterContrast
	FilterGrayscale
	FilterHueRotate
	FilterInvert
	FilterOpacity
	FilterSaturate
	FilterSepia
)

var filterKindKeywords = keywords[FilterKind]{"filter", []string{
	"blur", "brightness", "contrast", "grayscale", "hue-rotate", "invert", "opacity", "saturate", "sepia",
}}

func (k FilterKind) String() string { return filterKindKeywords.name(k) }

// UnmarshalText parses a filter function name.
func (k *FilterKind) UnmarshalText(b []byte) error { return filterKindKeywords.unmarshal(k, b) }

// MarshalText encodes the function name.
func (k FilterKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Filter is one step of a filter or backdrop-filter pipeline. Amount is a
// factor (1 = 100%) or, for hue-rotate, degrees. Radius is used by blur.
type Filter struct {
	Kind   FilterKind `json:"kind"`
	Amount float32    `json:"amount"`
	Radius Length     `json:"radius"`
}

// Blur returns a blur(radius) filter.
func Blur(radius Length) Filter { return Filter{Kind: FilterBlur, Radius: radius} }

// FilterOf returns a filter function with an amount.
func FilterOf(kind FilterKind, amount float32) Filter { return Filter{Kind: kind, Amount: amount} }

// TransformKind is a transform function.
type TransformKind uint8

const (
	TransformTranslate TransformKind = iota
	TransformScale
	TransformRotate
	TransformSkew
	TransformMatrix
)

var transformKindKeywords = keywords[TransformKind]{"transform", []string{
	"translate", "scale", "rotate", "skew", "matrix",
}}

func (k TransformKind) String() string { return transformKindKeywords.name(k) }

// UnmarshalText parses a transform function name.
func (k *TransformKind) UnmarshalText(b []byte) error { return transformKindKeywords.unmarshal(k, b) }

// MarshalText encodes the function name.
func (k TransformKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// TransformOp is one function of a transform list.
//
//	translate: X, Y (percentages of the border box)
//	scale:     SX, SY
//	rotate:    Angle degrees
//	skew:      Angle (x) and AngleY degrees
//	matrix:    Matrix a, b, c, d, e, f as in CSS
type TransformOp struct {
	Kind   TransformKind `json:"kind"`
	X      Length        `json:"x"`
	Y      Length        `json:"y"`
	SX     float32       `json:"sx"`
	SY     float32       `json:"sy"`
	Angle  float32       `json:"angle"`
	AngleY float32       `json:"angleY"`
	Matrix [6]float32    `json:"matrix"`
}

// Translation is the translate property.
type Translation struct {
	X Length `json:"x"`
	Y Length `json:"y"`
}

// Scaling is the scale property.
type Scaling struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

func deg(a float32) float64 { return float64(a) * math.Pi / 180 }

// Affine converts one transform function for a box of the given size.
func (t TransformOp) Affine(m Metrics, box geom.Size) geom.Affine {
	switch t.Kind {
	case TransformTranslate:
		return geom.Translate(
			float64(t.X.Resolve(m, float32(box.W))),
			float64(t.Y.Resolve(m, float32(box.H))),
		)
	case TransformScale:
		return geom.Scale(float64(t.SX), float64(t.SY))
	case TransformRotate:
		return geom.Rotate(deg(t.Angle))
	case TransformSkew:
		return geom.Skew(deg(t.Angle), deg(t.AngleY))
	case TransformMatrix:
		mx := t.Matrix
		dpr := float64(m.DPR)
		if dpr == 0 {
			dpr = 1
		}
		return geom.Affine{
			A: float64(mx[0]), B: float64(mx[2]), C: float64(mx[4]) * dpr,
			D: float64(mx[1]), E: float64(mx[3]), F: float64(mx[5]) * dpr,
		}
	}
	return geom.Identity()
}

// ClipShape is the basic shape of a clip-path.
type ClipShape uint8

const (
	ClipInset ClipShape = iota
	ClipCircle
	ClipEllipse
	ClipPolygon
)

var clipShapeKeywords = keywords[ClipShape]{"clip-path", []string{"inset", "circle", "ellipse", "polygon"}}

func (k ClipShape) String() string { return clipShapeKeywords.name(k) }

// UnmarshalText parses a basic shape name.
func (k *ClipShape) UnmarshalText(b []byte) error { return clipShapeKeywords.unmarshal(k, b) }

// MarshalText encodes the shape name.
func (k ClipShape) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// ClipPath is a basic-shape clip-path in border-box coordinates.
//
//	inset:   Insets, Radius
//	circle:  RX (percentages of the box diagonal / sqrt 2), Center
//	ellipse: RX, RY, Center
//	polygon: Points, Rule
type ClipPath struct {
	Shape  ClipShape       `json:"shape"`
	Insets Sides[Length]   `json:"insets"`
	Radius Corners[Length] `json:"radius"`
	RX     Length          `json:"rx"`
	RY     Length          `json:"ry"`
	Center Anchor          `json:"center"`
	Points []Anchor        `json:"points"`
	Rule   FillRule        `json:"rule"`
}
