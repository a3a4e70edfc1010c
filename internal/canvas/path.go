package canvas

import (
	"image"
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/nodeimg/geom"
	"github.com/gogpu/nodeimg/internal/blend"
)

type verb uint8

const (
	moveTo verb = iota
	lineTo
	quadTo
	cubeTo
	closePath
)

// Path is a sequence of contours in some local space. Contours are filled
// with the non-zero rule.
type Path struct {
	verbs []verb
	pts   []geom.Point
}

// Empty reports whether p has no segments.
func (p *Path) Empty() bool { return p == nil || len(p.pts) == 0 }

// MoveTo starts a new contour.
func (p *Path) MoveTo(x, y float64) {
	p.verbs = append(p.verbs, moveTo)
	p.pts = append(p.pts, geom.Pt(x, y))
}

// LineTo adds a line segment.
func (p *Path) LineTo(x, y float64) {
	p.verbs = append(p.verbs, lineTo)
	p.pts = append(p.pts, geom.Pt(x, y))
}

// QuadTo adds a quadratic Bézier segment.
func (p *Path) QuadTo(cx, cy, x, y float64) {
	p.verbs = append(p.verbs, quadTo)
	p.pts = append(p.pts, geom.Pt(cx, cy), geom.Pt(x, y))
}

// CubeTo adds a cubic Bézier segment.
func (p *Path) CubeTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.verbs = append(p.verbs, cubeTo)
	p.pts = append(p.pts, geom.Pt(c1x, c1y), geom.Pt(c2x, c2y), geom.Pt(x, y))
}

// Close closes the current contour.
func (p *Path) Close() {
	p.verbs = append(p.verbs, closePath)
}

// Bounds returns the bounding box of the control points.
func (p *Path) Bounds() geom.Rect {
	if len(p.pts) == 0 {
		return geom.Rect{}
	}
	minX, minY := p.pts[0].X, p.pts[0].Y
	maxX, maxY := minX, minY
	for _, q := range p.pts[1:] {
		minX, maxX = math.Min(minX, q.X), math.Max(maxX, q.X)
		minY, maxY = math.Min(minY, q.Y), math.Max(maxY, q.Y)
	}
	return geom.Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// kappa places cubic control points for a quarter circle.
const kappa = 0.5522847498

// Radii holds the corner radii of a rounded rectangle, clockwise from
// the top-left corner.
type Radii [4]geom.Point

// IsZero reports whether every corner is square.
func (r Radii) IsZero() bool {
	for _, c := range r {
		if c.X > 0 && c.Y > 0 {
			return false
		}
	}
	return true
}

// Fit scales the radii down uniformly so adjacent corners do not overlap
// on a box of size w x h.
func (r Radii) Fit(w, h float64) Radii {
	f := 1.0
	check := func(sum, side float64) {
		if sum > side && sum > 0 {
			f = math.Min(f, side/sum)
		}
	}
	check(r[0].X+r[1].X, w)
	check(r[3].X+r[2].X, w)
	check(r[0].Y+r[3].Y, h)
	check(r[1].Y+r[2].Y, h)
	if f < 1 {
		for i := range r {
			r[i].X *= f
			r[i].Y *= f
		}
	}
	return r
}

// Shrink returns the radii of a rectangle inset by the given edges, as
// used for padding and content boxes.
func (r Radii) Shrink(top, right, bottom, left float64) Radii {
	sub := func(v, d float64) float64 { return math.Max(0, v-d) }
	return Radii{
		{X: sub(r[0].X, left), Y: sub(r[0].Y, top)},
		{X: sub(r[1].X, right), Y: sub(r[1].Y, top)},
		{X: sub(r[2].X, right), Y: sub(r[2].Y, bottom)},
		{X: sub(r[3].X, left), Y: sub(r[3].Y, bottom)},
	}
}

// Grow returns the radii of a rectangle outset by d, keeping square
// corners square.
func (r Radii) Grow(d float64) Radii {
	for i := range r {
		if r[i].X > 0 && r[i].Y > 0 {
			r[i].X = math.Max(0, r[i].X+d)
			r[i].Y = math.Max(0, r[i].Y+d)
		}
	}
	return r
}

// Rect adds a clockwise rectangle contour.
func (p *Path) Rect(r geom.Rect) {
	p.MoveTo(r.X, r.Y)
	p.LineTo(r.Right(), r.Y)
	p.LineTo(r.Right(), r.Bottom())
	p.LineTo(r.X, r.Bottom())
	p.Close()
}

// RoundRect adds a clockwise rounded rectangle contour.
func (p *Path) RoundRect(r geom.Rect, radii Radii) {
	if radii.IsZero() {
		p.Rect(r)
		return
	}
	radii = radii.Fit(r.W, r.H)
	tl, tr, br, bl := radii[0], radii[1], radii[2], radii[3]
	x0, y0, x1, y1 := r.X, r.Y, r.Right(), r.Bottom()

	p.MoveTo(x0+tl.X, y0)
	p.LineTo(x1-tr.X, y0)
	if tr.X > 0 && tr.Y > 0 {
		p.CubeTo(x1-tr.X*(1-kappa), y0, x1, y0+tr.Y*(1-kappa), x1, y0+tr.Y)
	}
	p.LineTo(x1, y1-br.Y)
	if br.X > 0 && br.Y > 0 {
		p.CubeTo(x1, y1-br.Y*(1-kappa), x1-br.X*(1-kappa), y1, x1-br.X, y1)
	}
	p.LineTo(x0+bl.X, y1)
	if bl.X > 0 && bl.Y > 0 {
		p.CubeTo(x0+bl.X*(1-kappa), y1, x0, y1-bl.Y*(1-kappa), x0, y1-bl.Y)
	}
	p.LineTo(x0, y0+tl.Y)
	if tl.X > 0 && tl.Y > 0 {
		p.CubeTo(x0, y0+tl.Y*(1-kappa), x0+tl.X*(1-kappa), y0, x0+tl.X, y0)
	}
	p.Close()
}

// Ellipse adds an ellipse contour.
func (p *Path) Ellipse(cx, cy, rx, ry float64) {
	if rx <= 0 || ry <= 0 {
		return
	}
	kx, ky := rx*kappa, ry*kappa
	p.MoveTo(cx+rx, cy)
	p.CubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	p.CubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	p.CubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	p.CubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	p.Close()
}

// Polygon adds a closed polygon contour.
func (p *Path) Polygon(pts []geom.Point) {
	if len(pts) < 3 {
		return
	}
	p.MoveTo(pts[0].X, pts[0].Y)
	for _, q := range pts[1:] {
		p.LineTo(q.X, q.Y)
	}
	p.Close()
}

// Append adds the contours of q transformed by m.
func (p *Path) Append(q *Path, m geom.Affine) {
	p.verbs = append(p.verbs, q.verbs...)
	for _, pt := range q.pts {
		p.pts = append(p.pts, m.Apply(pt))
	}
}

func (p *Path) rasterize(z *vector.Rasterizer, m geom.Affine) {
	f := func(q geom.Point) (float32, float32) {
		q = m.Apply(q)
		return float32(q.X), float32(q.Y)
	}
	i := 0
	for _, v := range p.verbs {
		switch v {
		case moveTo:
			z.MoveTo(f(p.pts[i]))
			i++
		case lineTo:
			z.LineTo(f(p.pts[i]))
			i++
		case quadTo:
			ax, ay := f(p.pts[i])
			bx, by := f(p.pts[i+1])
			z.QuadTo(ax, ay, bx, by)
			i += 2
		case cubeTo:
			ax, ay := f(p.pts[i])
			bx, by := f(p.pts[i+1])
			cx, cy := f(p.pts[i+2])
			z.CubeTo(ax, ay, bx, by, cx, cy)
			i += 3
		case closePath:
			z.ClosePath()
		}
	}
}

// Flatten returns the contours of p as polylines with curves subdivided
// to within tol. closed reports, per contour, whether it was closed.
func (p *Path) Flatten(tol float64) (contours [][]geom.Point, closed []bool) {
	var cur []geom.Point
	flush := func(c bool) {
		if len(cur) > 1 {
			contours = append(contours, cur)
			closed = append(closed, c)
		}
		cur = nil
	}
	i := 0
	for _, v := range p.verbs {
		switch v {
		case moveTo:
			flush(false)
			cur = append(cur, p.pts[i])
			i++
		case lineTo:
			cur = append(cur, p.pts[i])
			i++
		case quadTo:
			a := last(cur)
			c, b := p.pts[i], p.pts[i+1]
			n := segments(a, c, b, b, tol)
			for k := 1; k <= n; k++ {
				t := float64(k) / float64(n)
				u := 1 - t
				cur = append(cur, geom.Pt(u*u*a.X+2*u*t*c.X+t*t*b.X, u*u*a.Y+2*u*t*c.Y+t*t*b.Y))
			}
			i += 2
		case cubeTo:
			a := last(cur)
			c1, c2, b := p.pts[i], p.pts[i+1], p.pts[i+2]
			n := segments(a, c1, c2, b, tol)
			for k := 1; k <= n; k++ {
				t := float64(k) / float64(n)
				u := 1 - t
				cur = append(cur, geom.Pt(
					u*u*u*a.X+3*u*u*t*c1.X+3*u*t*t*c2.X+t*t*t*b.X,
					u*u*u*a.Y+3*u*u*t*c1.Y+3*u*t*t*c2.Y+t*t*t*b.Y,
				))
			}
			i += 3
		case closePath:
			flush(true)
		}
	}
	flush(false)
	return contours, closed
}

func last(pts []geom.Point) geom.Point {
	if len(pts) == 0 {
		return geom.Point{}
	}
	return pts[len(pts)-1]
}

// segments estimates how many line segments approximate a curve with the
// given control polygon to within tol.
func segments(a, b, c, d geom.Point, tol float64) int {
	l := math.Hypot(b.X-a.X, b.Y-a.Y) + math.Hypot(c.X-b.X, c.Y-b.Y) + math.Hypot(d.X-c.X, d.Y-c.Y)
	n := int(math.Ceil(math.Sqrt(l / math.Max(tol, 0.01))))
	return min(max(n, 1), 64)
}

// Intersect multiplies two masks over their overlap. It returns nil when
// they do not overlap.
func Intersect(a, b *image.Alpha) *image.Alpha {
	if a == nil || b == nil {
		return nil
	}
	r := a.Rect.Intersect(b.Rect)
	if r.Empty() {
		return nil
	}
	out := image.NewAlpha(r)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			out.Pix[out.PixOffset(x, y)] = blend.MulDiv255(a.Pix[a.PixOffset(x, y)], b.Pix[b.PixOffset(x, y)])
		}
	}
	return out
}

// Subtract removes b from a in place and returns a.
func Subtract(a, b *image.Alpha) *image.Alpha {
	if a == nil || b == nil {
		return a
	}
	r := a.Rect.Intersect(b.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			i := a.PixOffset(x, y)
			a.Pix[i] = blend.MulDiv255(a.Pix[i], 255-b.Pix[b.PixOffset(x, y)])
		}
	}
	return a
}

// Xor combines b into a in place with exclusive-or coverage, growing a
// to cover both. It is how even-odd fills are built from separately
// rasterized contours.
func Xor(a, b *image.Alpha) *image.Alpha {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	out := image.NewAlpha(a.Rect.Union(b.Rect))
	for y := out.Rect.Min.Y; y < out.Rect.Max.Y; y++ {
		for x := out.Rect.Min.X; x < out.Rect.Max.X; x++ {
			va, vb := int(a.AlphaAt(x, y).A), int(b.AlphaAt(x, y).A)
			out.Pix[out.PixOffset(x, y)] = uint8(va + vb - 2*va*vb/255)
		}
	}
	return out
}

// Shift moves m by (dx, dy) pixels.
func Shift(m *image.Alpha, dx, dy int) *image.Alpha {
	if m == nil {
		return nil
	}
	s := *m
	s.Rect = m.Rect.Add(image.Pt(dx, dy))
	return &s
}
