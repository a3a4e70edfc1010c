package canvas

import (
	"image/color"
	"math"
	"sort"

	"github.com/gogpu/nodeimg/geom"
	"github.com/gogpu/nodeimg/style"
)

// Paint colors the pixels of a filled region. At is called with the pixel
// center mapped into paint space and returns a premultiplied color.
type Paint interface {
	At(x, y float64) color.RGBA
}

// Solid is a single premultiplied color.
type Solid color.RGBA

// At returns s.
func (s Solid) At(_, _ float64) color.RGBA { return color.RGBA(s) }

// SolidOf converts a style color.
func SolidOf(c style.Color) Solid { return Solid(c.RGBA()) }

// extend selects how a gradient continues past its last stop.
type extend uint8

const (
	extendPad extend = iota
	extendRepeat
)

// stop is a resolved color stop. Offset is in gradient-line units, 0 at
// the start and 1 at the end; repeating gradients may end before 1.
type stop struct {
	Offset float64
	Color  style.Color
}

// stops is a sorted gradient ramp.
type stops struct {
	list   []stop
	extend extend
}

// resolveStops places CSS color stops on a gradient line of length
// length pixels. Unpositioned stops are spaced evenly between their
// positioned neighbours; positions never go backwards.
func resolveStops(in []style.ColorStop, length float64, current style.Color, m style.Metrics, repeating bool) stops {
	n := len(in)
	out := stops{list: make([]stop, n)}
	if repeating {
		out.extend = extendRepeat
	}
	if n == 0 {
		return out
	}
	set := make([]bool, n)
	for i, s := range in {
		out.list[i].Color = s.Color.Resolve(current)
		if pos, ok := s.Position.Get(); ok {
			set[i] = true
			if pos.IsPercent() {
				out.list[i].Offset = float64(pos.Value) / 100
			} else if length > 0 {
				out.list[i].Offset = float64(pos.Resolve(m, float32(length))) / length
			}
		}
	}
	if !set[0] {
		out.list[0].Offset, set[0] = 0, true
	}
	if !set[n-1] {
		out.list[n-1].Offset, set[n-1] = 1, true
	}
	for i := 1; i < n; i++ {
		if set[i] {
			out.list[i].Offset = math.Max(out.list[i].Offset, out.list[i-1].Offset)
			continue
		}
		j := i
		for !set[j] {
			j++
		}
		from, to := out.list[i-1].Offset, math.Max(out.list[j].Offset, out.list[i-1].Offset)
		for k := i; k < j; k++ {
			out.list[k].Offset = from + (to-from)*float64(k-i+1)/float64(j-i+1)
			set[k] = true
		}
	}
	return out
}

// at returns the premultiplied color at t along the gradient line.
func (s stops) at(t float64) color.RGBA {
	list := s.list
	switch len(list) {
	case 0:
		return color.RGBA{}
	case 1:
		return list[0].Color.RGBA()
	}
	if s.extend == extendRepeat {
		first, span := list[0].Offset, list[len(list)-1].Offset-list[0].Offset
		if span > 0 {
			t = first + math.Mod(t-first, span)
			if t < first {
				t += span
			}
		}
	}

	i := sort.Search(len(list), func(i int) bool { return list[i].Offset >= t })
	if i == 0 {
		return list[0].Color.RGBA()
	}
	if i >= len(list) {
		return list[len(list)-1].Color.RGBA()
	}
	a, b := list[i-1], list[i]
	if b.Offset == a.Offset {
		return b.Color.RGBA()
	}
	return mixPremul(a.Color.RGBA(), b.Color.RGBA(), (t-a.Offset)/(b.Offset-a.Offset))
}

// mixPremul interpolates in premultiplied sRGB, as CSS gradients do.
func mixPremul(a, b color.RGBA, t float64) color.RGBA {
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.RGBA{lerp(a.R, b.R), lerp(a.G, b.G), lerp(a.B, b.B), lerp(a.A, b.A)}
}

// LinearGradient paints along a line through a box.
type LinearGradient struct {
	start, dir geom.Point
	length     float64
	stops      stops
}

// NewLinearGradient places g in a box of size sz. The gradient line runs
// through the box center at g.Angle, long enough that the corners get the
// end colors.
func NewLinearGradient(g *style.LinearGradient, sz geom.Size, current style.Color, m style.Metrics) *LinearGradient {
	rad := float64(g.Angle) * math.Pi / 180
	sin, cos := math.Sincos(rad)
	length := math.Abs(sz.W*sin) + math.Abs(sz.H*cos)
	dir := geom.Pt(sin, -cos)
	c := geom.Pt(sz.W/2, sz.H/2)
	return &LinearGradient{
		start:  geom.Pt(c.X-dir.X*length/2, c.Y-dir.Y*length/2),
		dir:    dir,
		length: length,
		stops:  resolveStops(g.Stops, length, current, m, g.Repeating),
	}
}

// At projects (x, y) onto the gradient line.
func (g *LinearGradient) At(x, y float64) color.RGBA {
	if g.length == 0 {
		return g.stops.at(0)
	}
	t := ((x-g.start.X)*g.dir.X + (y-g.start.Y)*g.dir.Y) / g.length
	return g.stops.at(t)
}

// RadialGradient paints outward from a center along an ellipse.
type RadialGradient struct {
	center geom.Point
	rx, ry float64
	stops  stops
}

// NewRadialGradient places g in a box of size sz.
func NewRadialGradient(g *style.RadialGradient, sz geom.Size, current style.Color, m style.Metrics) *RadialGradient {
	cx := float64(g.Center.X.Resolve(m, float32(sz.W)))
	cy := float64(g.Center.Y.Resolve(m, float32(sz.H)))
	left, right := math.Abs(cx), math.Abs(sz.W-cx)
	top, bottom := math.Abs(cy), math.Abs(sz.H-cy)

	var rx, ry float64
	switch g.Extent {
	case style.ClosestSide:
		rx, ry = math.Min(left, right), math.Min(top, bottom)
	case style.FarthestSide:
		rx, ry = math.Max(left, right), math.Max(top, bottom)
	case style.ClosestCorner:
		rx, ry = math.Min(left, right)*math.Sqrt2, math.Min(top, bottom)*math.Sqrt2
	default:
		rx, ry = math.Max(left, right)*math.Sqrt2, math.Max(top, bottom)*math.Sqrt2
	}
	if g.Shape == style.Circle {
		switch g.Extent {
		case style.ClosestSide:
			r := math.Min(rx, ry)
			rx, ry = r, r
		case style.FarthestSide:
			r := math.Max(rx, ry)
			rx, ry = r, r
		case style.ClosestCorner:
			r := math.Hypot(math.Min(left, right), math.Min(top, bottom))
			rx, ry = r, r
		default:
			r := math.Hypot(math.Max(left, right), math.Max(top, bottom))
			rx, ry = r, r
		}
	}
	return &RadialGradient{
		center: geom.Pt(cx, cy),
		rx:     rx,
		ry:     ry,
		stops:  resolveStops(g.Stops, rx, current, m, g.Repeating),
	}
}

// At returns the color on the ellipse through (x, y).
func (g *RadialGradient) At(x, y float64) color.RGBA {
	if g.rx <= 0 || g.ry <= 0 {
		return g.stops.at(1)
	}
	dx, dy := (x-g.center.X)/g.rx, (y-g.center.Y)/g.ry
	return g.stops.at(math.Hypot(dx, dy))
}

// ConicGradient sweeps clockwise around a center.
type ConicGradient struct {
	center geom.Point
	from   float64
	stops  stops
}

// NewConicGradient places g in a box of size sz.
func NewConicGradient(g *style.ConicGradient, sz geom.Size, current style.Color, m style.Metrics) *ConicGradient {
	return &ConicGradient{
		center: geom.Pt(float64(g.Center.X.Resolve(m, float32(sz.W))), float64(g.Center.Y.Resolve(m, float32(sz.H)))),
		from:   float64(g.From) * math.Pi / 180,
		stops:  resolveStops(g.Stops, 2*math.Pi, current, m, g.Repeating),
	}
}

// At maps the angle of (x, y) around the center, 0 pointing up, to the
// gradient line.
func (g *ConicGradient) At(x, y float64) color.RGBA {
	dx, dy := x-g.center.X, y-g.center.Y
	if dx == 0 && dy == 0 {
		return g.stops.at(0)
	}
	a := math.Atan2(dx, -dy) - g.from
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return g.stops.at(a / (2 * math.Pi))
}

// Noise is a deterministic gray grain. Each device pixel gets a value from
// a 2D integer hash of its coordinates and the seed.
type Noise struct {
	seed    uint32
	opacity float32
}

// NewNoise returns the paint for a noise layer.
func NewNoise(n style.Noise) Noise {
	op := n.Opacity
	if op == 0 {
		op = style.DefaultNoiseOpacity
	}
	return Noise{seed: uint32(n.Seed), opacity: op}
}

// At returns the grain value at the pixel containing (x, y).
func (n Noise) At(x, y float64) color.RGBA {
	v := Hash2D(uint32(int32(math.Floor(x))), uint32(int32(math.Floor(y))), n.seed)
	a := uint8(min(max(float32(v)*n.opacity, 0), 255))
	// v is straight alpha gray; premultiply.
	g := uint8((uint32(v)*uint32(a) + 127) / 255)
	return color.RGBA{g, g, g, a}
}

// Hash2D mixes a coordinate pair and a seed into one byte.
func Hash2D(x, y, seed uint32) uint8 {
	h := seed + x*374761393
	h ^= h >> 13
	h *= 1274126177
	h ^= h >> 16
	h += y * 668265263
	h ^= h >> 13
	h *= 1274126177
	h ^= h >> 16
	return uint8(h)
}
