package canvas

import (
	"image"
	"math"

	"github.com/gogpu/nodeimg/geom"
	"github.com/gogpu/nodeimg/internal/blend"
	"github.com/gogpu/nodeimg/internal/filter"
	"github.com/gogpu/nodeimg/style"
)

// Shadow is a resolved box-shadow or text-shadow in local pixels.
type Shadow struct {
	Inset  bool
	Offset geom.Point
	Blur   float64
	Spread float64
	Color  style.Color
}

// sigma converts a CSS blur radius to a Gaussian standard deviation.
func sigma(blur float64) float64 { return blur / 3 }

// blurPad is how far a blurred mask can spread, in canvas pixels.
func blurPad(s float64) int {
	if s <= 0 {
		return 0
	}
	return filter.Extent(s)
}

// OutsetShadow paints an outset box shadow behind the box. The shadow is
// cut out where the box itself is, so translucent backgrounds do not show
// it through.
func (c *Canvas) OutsetShadow(sh Shadow, box geom.Rect, radii Radii, m geom.Affine) {
	if sh.Color.A == 0 {
		return
	}
	scale := m.ScaleFactor()
	s := sigma(sh.Blur) * scale
	pad := blurPad(s)

	shape := box.Outset(sh.Spread).Translate(sh.Offset)
	if shape.Empty() {
		return
	}
	var p Path
	p.RoundRect(shape, radii.Grow(sh.Spread))
	bounds := c.img.Rect.Inset(-pad)
	mask := c.MaskIn(&p, m, bounds)
	if mask == nil {
		return
	}
	if pad > 0 {
		mask = padAlpha(mask, pad, bounds)
		filter.BlurAlpha(mask, s)
	}
	var hole Path
	hole.RoundRect(box, radii)
	mask = Subtract(mask, c.MaskIn(&hole, m, mask.Rect))
	c.Fill(mask, SolidOf(sh.Color), m, blend.Normal, 1)
}

// InsetShadow paints an inset shadow inside the padding box.
func (c *Canvas) InsetShadow(sh Shadow, padding geom.Rect, radii Radii, m geom.Affine) {
	if sh.Color.A == 0 || padding.Empty() {
		return
	}
	scale := m.ScaleFactor()
	s := sigma(sh.Blur) * scale
	pad := blurPad(s)

	clip := c.BoxMask(padding, radii, m)
	if clip == nil {
		return
	}
	region := clip.Rect.Inset(-pad)

	// Everything around the padding box minus the spread-shrunk hole.
	var hole Path
	inner := padding.Inset(sh.Spread, sh.Spread, sh.Spread, sh.Spread).Translate(sh.Offset)
	if !inner.Empty() {
		hole.RoundRect(inner, radii.Shrink(sh.Spread, sh.Spread, sh.Spread, sh.Spread))
	}
	mask := image.NewAlpha(region)
	for i := range mask.Pix {
		mask.Pix[i] = 255
	}
	mask = Subtract(mask, c.MaskIn(&hole, m, region))
	if pad > 0 {
		filter.BlurAlpha(mask, s)
	}
	c.Fill(Intersect(mask, clip), SolidOf(sh.Color), m, blend.Normal, 1)
}

// ShadowMask blurs and offsets an existing coverage mask, as used for
// text shadows. offset is in canvas pixels.
func ShadowMask(m *image.Alpha, offset geom.Point, blur float64, bounds image.Rectangle) *image.Alpha {
	if m == nil {
		return nil
	}
	s := sigma(blur)
	pad := blurPad(s)
	out := padAlpha(m, pad, m.Rect.Inset(-pad))
	if pad > 0 {
		filter.BlurAlpha(out, s)
	}
	dx, dy := int(math.Round(offset.X)), int(math.Round(offset.Y))
	out = Shift(out, dx, dy)
	if !out.Rect.Overlaps(bounds) {
		return nil
	}
	return out
}

// padAlpha copies m into a larger transparent mask grown by pad on every
// side, limited to bounds.
func padAlpha(m *image.Alpha, pad int, bounds image.Rectangle) *image.Alpha {
	r := m.Rect.Inset(-pad).Intersect(bounds)
	out := image.NewAlpha(r)
	for y := m.Rect.Min.Y; y < m.Rect.Max.Y; y++ {
		if y < r.Min.Y || y >= r.Max.Y {
			continue
		}
		src := m.Pix[m.PixOffset(m.Rect.Min.X, y) : m.PixOffset(m.Rect.Min.X, y)+m.Rect.Dx()]
		copy(out.Pix[out.PixOffset(m.Rect.Min.X, y):], src)
	}
	return out
}
