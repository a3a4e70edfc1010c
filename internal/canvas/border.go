package canvas

import (
	"image"

	"github.com/gogpu/nodeimg/geom"
	"github.com/gogpu/nodeimg/internal/blend"
	"github.com/gogpu/nodeimg/style"
)

// ResolveRadii resolves border-radius for a w x h border box. Percentages
// are of the width horizontally and of the height vertically.
func ResolveRadii(c style.Corners[style.Length], m style.Metrics, w, h float64) Radii {
	corner := func(l style.Length) geom.Point {
		return geom.Pt(float64(l.Resolve(m, float32(w))), float64(l.Resolve(m, float32(h))))
	}
	r := Radii{corner(c.TopLeft), corner(c.TopRight), corner(c.BottomRight), corner(c.BottomLeft)}
	return r.Fit(w, h)
}

// BorderWidths are resolved border widths in local pixels.
type BorderWidths struct {
	Top, Right, Bottom, Left float64
}

// IsZero reports whether no side has a border.
func (b BorderWidths) IsZero() bool {
	return b.Top <= 0 && b.Right <= 0 && b.Bottom <= 0 && b.Left <= 0
}

// Border paints the ring between the border box and the padding box. m
// maps the local border-box space to canvas pixels.
func (c *Canvas) Border(box geom.Rect, radii Radii, widths BorderWidths, colors style.Sides[style.Color], m geom.Affine) {
	if widths.IsZero() {
		return
	}
	var outer, inner Path
	outer.RoundRect(box, radii)
	innerBox := box.Inset(widths.Top, widths.Right, widths.Bottom, widths.Left)
	if !innerBox.Empty() {
		inner.RoundRect(innerBox, radii.Shrink(widths.Top, widths.Right, widths.Bottom, widths.Left))
	}

	ring := c.Mask(&outer, m)
	if ring == nil {
		return
	}
	ring = Subtract(ring, c.MaskIn(&inner, m, ring.Rect))

	if colors.Top == colors.Right && colors.Top == colors.Bottom && colors.Top == colors.Left {
		c.Fill(ring, SolidOf(colors.Top), m, blend.Normal, 1)
		return
	}

	// Each side owns the trapezoid between the diagonals through its outer
	// and inner corners.
	k := 1e9
	if s := widths.Left + widths.Right; s > 0 {
		k = min(k, box.W/s)
	}
	if s := widths.Top + widths.Bottom; s > 0 {
		k = min(k, box.H/s)
	}
	x0, y0, x1, y1 := box.X, box.Y, box.Right(), box.Bottom()
	tl := geom.Pt(x0+widths.Left*k, y0+widths.Top*k)
	tr := geom.Pt(x1-widths.Right*k, y0+widths.Top*k)
	br := geom.Pt(x1-widths.Right*k, y1-widths.Bottom*k)
	bl := geom.Pt(x0+widths.Left*k, y1-widths.Bottom*k)

	sides := []struct {
		width float64
		color style.Color
		quad  []geom.Point
	}{
		{widths.Top, colors.Top, []geom.Point{{X: x0, Y: y0}, {X: x1, Y: y0}, tr, tl}},
		{widths.Right, colors.Right, []geom.Point{{X: x1, Y: y0}, {X: x1, Y: y1}, br, tr}},
		{widths.Bottom, colors.Bottom, []geom.Point{{X: x1, Y: y1}, {X: x0, Y: y1}, bl, br}},
		{widths.Left, colors.Left, []geom.Point{{X: x0, Y: y1}, {X: x0, Y: y0}, tl, bl}},
	}
	for _, s := range sides {
		if s.width <= 0 || s.color.A == 0 {
			continue
		}
		var q Path
		q.Polygon(s.quad)
		part := Intersect(ring, c.MaskIn(&q, m, ring.Rect))
		c.Fill(part, SolidOf(s.color), m, blend.Normal, 1)
	}
}

// BoxMask rasterizes a rounded rectangle.
func (c *Canvas) BoxMask(r geom.Rect, radii Radii, m geom.Affine) *image.Alpha {
	var p Path
	p.RoundRect(r, radii)
	return c.Mask(&p, m)
}
