package canvas

import (
	"image"
	"math"

	"github.com/gogpu/nodeimg/geom"
	"github.com/gogpu/nodeimg/internal/blend"
	"github.com/gogpu/nodeimg/internal/layout"
	"github.com/gogpu/nodeimg/internal/tree"
	"github.com/gogpu/nodeimg/node"
	"github.com/gogpu/nodeimg/style"
)

var (
	debugBorder  = style.RGB(255, 0, 0)
	debugContent = style.RGB(0, 0, 255)
)

// PaintTree paints a laid-out box tree onto c. The root border box is
// placed at the canvas origin.
func (c *Canvas) PaintTree(root *layout.Box) {
	c.paint(root, geom.Identity())
}

// paint draws b and its descendants. parent maps the parent's border-box
// space to canvas pixels.
func (c *Canvas) paint(b *layout.Box, parent geom.Affine) {
	ctx := &b.Node.Ctx
	s := &ctx.Style
	if s.Opacity == 0 {
		return
	}
	m := b.Transform(parent)
	if _, ok := m.Invert(); !ok {
		return
	}
	ctx.Transform = m

	border := b.BorderRect()
	radii := ResolveRadii(s.BorderRadius, ctx.Metrics, border.W, border.H)
	scale := m.ScaleFactor()

	if len(s.BackdropFilter) > 0 {
		c.Backdrop(s.BackdropFilter, c.BoxMask(border, radii, m), ctx.Metrics, scale)
	}

	target := c
	if s.IsIsolated() {
		target = c.Layer()
	}

	target.paintBox(b, m, radii)
	target.paintContent(b, m, radii)
	if ctx.Debug {
		target.debug(b, m)
	}
	target.paintChildren(b, m, radii)

	if target == c {
		return
	}
	target.ApplyFilters(s.Filter, ctx.Metrics, scale)
	mask := c.groupMask(b, m)
	if mask == nil && (s.ClipPath.IsSet() || len(s.MaskImage) > 0) {
		return
	}
	if target.dirty.Empty() {
		return
	}
	c.Composite(target.img.SubImage(target.dirty).(*image.RGBA), mask, blend.Mode(s.MixBlendMode), s.Opacity)
}

// paintBox draws the box decorations: outset shadows, background, inset
// shadows and border.
func (c *Canvas) paintBox(b *layout.Box, m geom.Affine, radii Radii) {
	ctx := &b.Node.Ctx
	s := &ctx.Style
	border := b.BorderRect()
	padding := b.PaddingRect()
	widths := BorderWidths{
		Top:    float64(b.Border.Top),
		Right:  float64(b.Border.Right),
		Bottom: float64(b.Border.Bottom),
		Left:   float64(b.Border.Left),
	}
	inner := radii.Shrink(widths.Top, widths.Right, widths.Bottom, widths.Left)
	shadows := c.shadows(ctx, s.BoxShadow)

	for _, sh := range shadows {
		if !sh.Inset {
			c.OutsetShadow(sh, border, radii, m)
		}
	}

	c.background(b, m, radii)

	for _, sh := range shadows {
		if sh.Inset {
			c.InsetShadow(sh, padding, inner, m)
		}
	}

	colors := style.Sides[style.Color]{
		Top:    ctx.Color(s.BorderColor.Top),
		Right:  ctx.Color(s.BorderColor.Right),
		Bottom: ctx.Color(s.BorderColor.Bottom),
		Left:   ctx.Color(s.BorderColor.Left),
	}
	c.Border(border, radii, widths, colors, m)
}

func (c *Canvas) shadows(ctx *tree.Context, in []style.BoxShadow) []Shadow {
	out := make([]Shadow, 0, len(in))
	for _, bs := range in {
		out = append(out, Shadow{
			Inset:  bs.Inset,
			Offset: geom.Pt(float64(ctx.Px(bs.OffsetX, 0)), float64(ctx.Px(bs.OffsetY, 0))),
			Blur:   float64(ctx.Px(bs.Blur, 0)),
			Spread: float64(ctx.Px(bs.Spread, 0)),
			Color:  ctx.Color(bs.Color),
		})
	}
	return out
}

// background paints background-color and the background image layers,
// clipped to the background-clip box.
func (c *Canvas) background(b *layout.Box, m geom.Affine, radii Radii) {
	ctx := &b.Node.Ctx
	s := &ctx.Style
	bg := ctx.Color(s.BackgroundColor)
	if bg.A == 0 && len(s.BackgroundImage) == 0 {
		return
	}

	clipBox, clipRadii := b.BorderRect(), radii
	switch s.BackgroundClip {
	case style.BackgroundClipPaddingBox:
		clipBox = b.PaddingRect()
		clipRadii = radii.Shrink(float64(b.Border.Top), float64(b.Border.Right), float64(b.Border.Bottom), float64(b.Border.Left))
	case style.BackgroundClipContentBox:
		clipBox = b.ContentRect()
		clipRadii = radii.Shrink(
			float64(b.Border.Top+b.Padding.Top), float64(b.Border.Right+b.Padding.Right),
			float64(b.Border.Bottom+b.Padding.Bottom), float64(b.Border.Left+b.Padding.Left),
		)
	}
	mask := c.BoxMask(clipBox, clipRadii, m)
	if mask == nil {
		return
	}
	if bg.A > 0 {
		c.Fill(mask, SolidOf(bg), m, blend.Normal, 1)
	}
	layers := Layers(s.BackgroundImage, s.BackgroundPosition, s.BackgroundSize, s.BackgroundRepeat)
	c.layers(ctx, layers, b.PaddingRect(), mask, m)
}

// layers fills mask with each image layer, bottom first, positioned
// inside area.
func (c *Canvas) layers(ctx *tree.Context, layers []Layer, area geom.Rect, mask *image.Alpha, m geom.Affine) {
	interp := Interpolator(ctx.Style.ImageRendering)
	source := func(url string) *image.RGBA {
		img, err := ctx.Global.Image(url)
		if err != nil {
			ctx.Global.Logger.Debug("nodeimg: background image skipped", "src", truncate(url), "err", err)
			return nil
		}
		return img.RGBA
	}
	for _, l := range layers {
		p := LayerPaint(l, area, ctx.CurrentColor, ctx.Metrics, source, interp)
		if p == nil {
			continue
		}
		space := m
		if _, ok := p.(Noise); ok {
			space = geom.Identity()
		}
		c.Fill(mask, p, space, blend.Normal, 1)
	}
}

// paintContent draws the replaced content of an image box and the lines
// of an inline root.
func (c *Canvas) paintContent(b *layout.Box, m geom.Affine, radii Radii) {
	ctx := &b.Node.Ctx
	s := &ctx.Style
	content := b.ContentRect()

	if b.Node.Kind == node.KindImage && b.Image != nil {
		inner := radii.Shrink(
			float64(b.Border.Top+b.Padding.Top), float64(b.Border.Right+b.Padding.Right),
			float64(b.Border.Bottom+b.Padding.Bottom), float64(b.Border.Left+b.Padding.Left),
		)
		clip := c.BoxMask(content, inner, m)
		if clip != nil {
			iw, ih := b.Image.Size()
			dpr := float64(ctx.Metrics.DPR)
			if dpr == 0 {
				dpr = 1
			}
			nat := geom.Size{W: float64(iw) * dpr, H: float64(ih) * dpr}
			dst := ObjectRect(content, nat, s.ObjectFit, s.ObjectPosition, ctx.Metrics)
			c.DrawImage(b.Image.RGBA, dst, m, Interpolator(s.ImageRendering), clip, blend.Normal, 1)
		}
	}

	if b.Text != nil {
		c.Text(ctx.Global.Text.Registry(), b.Text, m.Mul(geom.Translate(content.X, content.Y)))
	}
}

// paintChildren paints the children of b, clipped to the padding box when
// b hides its overflow.
func (c *Canvas) paintChildren(b *layout.Box, m geom.Affine, radii Radii) {
	if len(b.Children) == 0 {
		return
	}
	s := b.Node.Style()
	if s.Overflows() {
		clip := b.PaddingRect()
		inner := radii.Shrink(float64(b.Border.Top), float64(b.Border.Right), float64(b.Border.Bottom), float64(b.Border.Left))
		// A visible axis is unbounded.
		const far = 1 << 20
		if s.OverflowX == style.OverflowVisible {
			clip.X, clip.W = -far, 2*far
			inner = Radii{}
		}
		if s.OverflowY == style.OverflowVisible {
			clip.Y, clip.H = -far, 2*far
			inner = Radii{}
		}
		ok := c.PushClip(c.BoxMask(clip, inner, m))
		defer c.PopClip()
		if !ok {
			return
		}
	}
	for _, child := range b.Children {
		c.paint(child, m)
	}
}

// groupMask combines clip-path and mask-image into the mask the group is
// composited through. It returns nil when neither is set.
func (c *Canvas) groupMask(b *layout.Box, m geom.Affine) *image.Alpha {
	ctx := &b.Node.Ctx
	s := &ctx.Style
	var mask *image.Alpha
	if cp, ok := s.ClipPath.Get(); ok {
		mask = c.Mask(ClipPath(cp, b.BorderRect(), ctx.Metrics), m)
		if mask == nil {
			return nil
		}
	}
	if len(s.MaskImage) > 0 {
		area := c.BoxMask(b.BorderRect(), Radii{}, m)
		if area == nil {
			return nil
		}
		l := c.Layer()
		l.layers(ctx, Layers(s.MaskImage, s.MaskPosition, s.MaskSize, s.MaskRepeat), b.BorderRect(), area, m)
		alpha := image.NewAlpha(area.Rect)
		for y := area.Rect.Min.Y; y < area.Rect.Max.Y; y++ {
			for x := area.Rect.Min.X; x < area.Rect.Max.X; x++ {
				alpha.Pix[alpha.PixOffset(x, y)] = l.img.Pix[l.img.PixOffset(x, y)+3]
			}
		}
		if mask == nil {
			mask = alpha
		} else {
			mask = Intersect(mask, alpha)
		}
	}
	return mask
}

// ClipPath builds a clip-path shape for a border box.
func ClipPath(cp style.ClipPath, box geom.Rect, mt style.Metrics) *Path {
	px := func(l style.Length, base float64) float64 { return float64(l.Resolve(mt, float32(base))) }
	center := func() (float64, float64) {
		return box.X + px(cp.Center.X, box.W), box.Y + px(cp.Center.Y, box.H)
	}
	p := &Path{}
	switch cp.Shape {
	case style.ClipInset:
		r := box.Inset(px(cp.Insets.Top, box.H), px(cp.Insets.Right, box.W), px(cp.Insets.Bottom, box.H), px(cp.Insets.Left, box.W))
		if r.Empty() {
			return p
		}
		p.RoundRect(r, ResolveRadii(cp.Radius, mt, r.W, r.H))
	case style.ClipCircle:
		cx, cy := center()
		rad := px(cp.RX, math.Hypot(box.W, box.H)/math.Sqrt2)
		p.Ellipse(cx, cy, rad, rad)
	case style.ClipEllipse:
		cx, cy := center()
		p.Ellipse(cx, cy, px(cp.RX, box.W), px(cp.RY, box.H))
	case style.ClipPolygon:
		pts := make([]geom.Point, len(cp.Points))
		for i, a := range cp.Points {
			pts[i] = geom.Pt(box.X+px(a.X, box.W), box.Y+px(a.Y, box.H))
		}
		p.Polygon(pts)
	}
	return p
}

// debug outlines the border box in red and the content box in blue.
func (c *Canvas) debug(b *layout.Box, m geom.Affine) {
	one := 1 / math.Max(m.ScaleFactor(), 1e-6)
	w := BorderWidths{one, one, one, one}
	c.Border(b.BorderRect(), Radii{}, w, style.AllSides(debugBorder), m)
	c.Border(b.ContentRect(), Radii{}, w, style.AllSides(debugContent), m)
}

func truncate(s string) string {
	if len(s) > 64 {
		return s[:64] + "…"
	}
	return s
}
