package canvas

import (
	"math"

	"github.com/gogpu/nodeimg/geom"
)

// flattenTolerance is the curve flattening tolerance in canvas pixels.
const flattenTolerance = 0.25

// Stroke returns the outline of p stroked with the given width, with
// round joins and caps. p is transformed by m first, so width is in
// canvas pixels and the result is in canvas space.
//
// Every piece is wound the same way so overlapping pieces union under
// the rasterizer's accumulation rule.
func Stroke(p *Path, m geom.Affine, width float64) *Path {
	if p.Empty() || width <= 0 {
		return nil
	}
	var q Path
	q.Append(p, m)
	contours, closed := q.Flatten(flattenTolerance)

	hw := width / 2
	out := &Path{}
	for i, pts := range contours {
		if closed[i] && len(pts) > 1 && pts[0] != pts[len(pts)-1] {
			pts = append(pts, pts[0])
		}
		for j := 0; j+1 < len(pts); j++ {
			segmentQuad(out, pts[j], pts[j+1], hw)
		}
		for _, pt := range pts {
			out.Ellipse(pt.X, pt.Y, hw, hw)
		}
	}
	return out
}

// segmentQuad adds the rectangle covering the segment a-b widened by hw on
// both sides, wound clockwise.
func segmentQuad(out *Path, a, b geom.Point, hw float64) {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	nx, ny := -dy/l*hw, dx/l*hw
	quad := []geom.Point{
		{X: a.X + nx, Y: a.Y + ny},
		{X: b.X + nx, Y: b.Y + ny},
		{X: b.X - nx, Y: b.Y - ny},
		{X: a.X - nx, Y: a.Y - ny},
	}
	if area(quad) < 0 {
		quad[1], quad[3] = quad[3], quad[1]
	}
	out.Polygon(quad)
}

// area returns the signed area of a polygon; positive is clockwise with y
// pointing down.
func area(pts []geom.Point) float64 {
	var s float64
	for i := range pts {
		p, q := pts[i], pts[(i+1)%len(pts)]
		s += p.X*q.Y - q.X*p.Y
	}
	return s / 2
}
