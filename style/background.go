package style

import (
	"fmt"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// Anchor is a 2D position inside a box: background-position,
// object-position, transform-origin and gradient centers.
type Anchor struct {
	X Length `json:"x"`
	Y Length `json:"y"`
}

// Center is the 50% 50% anchor.
var Center = Anchor{Percent(50), Percent(50)}

// TopLeft is the 0% 0% anchor.
var TopLeft = Anchor{Percent(0), Percent(0)}

var anchorKeywords = map[string]Length{
	"left":   Percent(0),
	"top":    Percent(0),
	"center": Percent(50),
	"right":  Percent(100),
	"bottom": Percent(100),
}

// ParseAnchor parses one or two keywords or lengths ("center", "left top",
// "25% 75%"). A single value sets X and centers Y, except for top and bottom.
func ParseAnchor(s string) (Anchor, error) {
	parts := strings.Fields(strings.ToLower(s))
	if len(parts) == 0 || len(parts) > 2 {
		return Anchor{}, fmt.Errorf("style: invalid position %q", s)
	}
	vals := make([]Length, len(parts))
	for i, p := range parts {
		if l, ok := anchorKeywords[p]; ok {
			vals[i] = l
			continue
		}
		l, err := ParseLength(p)
		if err != nil {
			return Anchor{}, err
		}
		vals[i] = l
	}
	if len(parts) == 1 {
		if parts[0] == "top" || parts[0] == "bottom" {
			return Anchor{Percent(50), vals[0]}, nil
		}
		return Anchor{vals[0], Percent(50)}, nil
	}
	if parts[0] == "top" || parts[0] == "bottom" || parts[1] == "left" || parts[1] == "right" {
		vals[0], vals[1] = vals[1], vals[0]
	}
	return Anchor{vals[0], vals[1]}, nil
}

// UnmarshalJSON accepts {"x":..,"y":..} or a position string.
func (a *Anchor) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		s, err := strconv.Unquote(string(data))
		if err != nil {
			return err
		}
		v, err := ParseAnchor(s)
		if err != nil {
			return err
		}
		*a = v
		return nil
	}
	type plain Anchor
	return json.Unmarshal(data, (*plain)(a))
}

// SizeKind selects how a background layer is sized.
type SizeKind uint8

const (
	SizeExplicit SizeKind = iota
	SizeCover
	SizeContain
)

// BackgroundSize is one layer's background-size. For SizeExplicit an auto
// Width or Height keeps the image's aspect ratio.
type BackgroundSize struct {
	Kind   SizeKind `json:"kind"`
	Width  Length   `json:"width"`
	Height Length   `json:"height"`
}

// SizeAuto is the initial background-size.
var SizeAuto = BackgroundSize{Kind: SizeExplicit, Width: Auto, Height: Auto}

// ParseBackgroundSize parses "cover", "contain", "auto" or one or two lengths.
func ParseBackgroundSize(s string) (BackgroundSize, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cover":
		return BackgroundSize{Kind: SizeCover}, nil
	case "contain":
		return BackgroundSize{Kind: SizeContain}, nil
	}
	parts := strings.Fields(s)
	if len(parts) == 0 || len(parts) > 2 {
		return BackgroundSize{}, fmt.Errorf("style: invalid background-size %q", s)
	}
	w, err := ParseLength(parts[0])
	if err != nil {
		return BackgroundSize{}, err
	}
	h := Auto
	if len(parts) == 2 {
		if h, err = ParseLength(parts[1]); err != nil {
			return BackgroundSize{}, err
		}
	}
	return BackgroundSize{Kind: SizeExplicit, Width: w, Height: h}, nil
}

// UnmarshalJSON accepts an object or a size string.
func (b *BackgroundSize) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		s, err := strconv.Unquote(string(data))
		if err != nil {
			return err
		}
		v, err := ParseBackgroundSize(s)
		if err != nil {
			return err
		}
		*b = v
		return nil
	}
	type plain BackgroundSize
	return json.Unmarshal(data, (*plain)(b))
}

// BackgroundImage is one image layer: URL, *LinearGradient,
// *RadialGradient, *ConicGradient or Noise.
type BackgroundImage interface {
	backgroundImage()
}

// URL references an image by network URI, data URI or persistent key.
type URL string

// ColorStop is a gradient stop. Position is a percentage or length along
// the gradient line; unset positions are distributed evenly.
type ColorStop struct {
	Color    ColorInput       `json:"color"`
	Position Optional[Length] `json:"position"`
}

// LinearGradient paints along a line at Angle degrees (0 points up,
// 90 points right).
type LinearGradient struct {
	Angle     float32     `json:"angle"`
	Stops     []ColorStop `json:"stops"`
	Repeating bool        `json:"repeating"`
}

// RadialShape is circle or ellipse.
type RadialShape uint8

const (
	Ellipse RadialShape = iota
	Circle
)

// RadialExtent picks the ending shape size.
type RadialExtent uint8

const (
	FarthestCorner RadialExtent = iota
	ClosestSide
	ClosestCorner
	FarthestSide
)

// RadialGradient paints outward from Center.
type RadialGradient struct {
	Shape     RadialShape  `json:"shape"`
	Extent    RadialExtent `json:"extent"`
	Center    Anchor       `json:"center"`
	Stops     []ColorStop  `json:"stops"`
	Repeating bool         `json:"repeating"`
}

// ConicGradient sweeps clockwise around Center starting at From degrees.
type ConicGradient struct {
	From      float32     `json:"from"`
	Center    Anchor      `json:"center"`
	Stops     []ColorStop `json:"stops"`
	Repeating bool        `json:"repeating"`
}

// Noise is a procedural grain layer: a deterministic per-pixel gray value
// from a 2D integer hash, drawn at Opacity.
type Noise struct {
	Seed    int32   `json:"seed"`
	Opacity float32 `json:"opacity"`
}

// DefaultNoiseOpacity is used when a noise layer leaves opacity unset.
const DefaultNoiseOpacity = 0.15

func (URL) backgroundImage()             {}
func (*LinearGradient) backgroundImage() {}
func (*RadialGradient) backgroundImage() {}
func (*ConicGradient) backgroundImage()  {}
func (Noise) backgroundImage()           {}

// Images is a list of image layers in paint order: the first is painted
// first and ends up at the bottom.
type Images []BackgroundImage

// UnmarshalJSON decodes layers tagged by "type": url, linear-gradient,
// radial-gradient, conic-gradient or noise. A bare string is a URL.
func (imgs *Images) UnmarshalJSON(data []byte) error {
	var raw []jsoniter.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(Images, 0, len(raw))
	for _, r := range raw {
		img, err := decodeImage(r)
		if err != nil {
			return err
		}
		out = append(out, img)
	}
	*imgs = out
	return nil
}

func decodeImage(data []byte) (BackgroundImage, error) {
	if len(data) > 0 && data[0] == '"' {
		var u string
		if err := json.Unmarshal(data, &u); err != nil {
			return nil, err
		}
		return URL(u), nil
	}
	var head struct {
		Type string `json:"type"`
		URL  string `json:"url"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, err
	}
	switch head.Type {
	case "url":
		return URL(head.URL), nil
	case "linear-gradient", "repeating-linear-gradient":
		g := &LinearGradient{Angle: 180}
		err := json.Unmarshal(data, g)
		g.Repeating = g.Repeating || strings.HasPrefix(head.Type, "repeating")
		return g, err
	case "radial-gradient", "repeating-radial-gradient":
		g := &RadialGradient{Center: Center}
		err := json.Unmarshal(data, g)
		g.Repeating = g.Repeating || strings.HasPrefix(head.Type, "repeating")
		return g, err
	case "conic-gradient", "repeating-conic-gradient":
		g := &ConicGradient{Center: Center}
		err := json.Unmarshal(data, g)
		g.Repeating = g.Repeating || strings.HasPrefix(head.Type, "repeating")
		return g, err
	case "noise", "noise-v1":
		n := Noise{Opacity: DefaultNoiseOpacity}
		err := json.Unmarshal(data, &n)
		return n, err
	}
	return nil, fmt.Errorf("style: unknown image type %q", head.Type)
}

// URLs returns the image references in imgs.
func (imgs Images) URLs() []string {
	var out []string
	for _, img := range imgs {
		if u, ok := img.(URL); ok {
			out = append(out, string(u))
		}
	}
	return out
}
