package canvas

import (
	"image"
	"math"

	ot "github.com/go-text/typesetting/font/opentype"

	"github.com/gogpu/nodeimg/geom"
	"github.com/gogpu/nodeimg/internal/blend"
	"github.com/gogpu/nodeimg/internal/inline"
	"github.com/gogpu/nodeimg/style"
	"github.com/gogpu/nodeimg/text"
)

// GlyphPath returns the outlines of a glyph run in paragraph space.
func GlyphPath(reg *text.Registry, run inline.GlyphRun) *Path {
	p := &Path{}
	if run.Face == nil {
		return p
	}
	upem := float64(run.Face.Upem())
	if upem == 0 {
		return p
	}
	k := float64(run.Size) / upem
	for _, g := range run.Glyphs {
		o, ok := reg.Outline(run.Face, g.ID)
		if !ok {
			continue
		}
		ox, oy := float64(g.X), float64(g.Y)
		pt := func(s ot.SegmentPoint) (float64, float64) {
			return ox + float64(s.X)*k, oy - float64(s.Y)*k
		}
		for _, s := range o.Segments {
			switch s.Op {
			case ot.SegmentOpMoveTo:
				p.MoveTo(pt(s.Args[0]))
			case ot.SegmentOpLineTo:
				p.LineTo(pt(s.Args[0]))
			case ot.SegmentOpQuadTo:
				cx, cy := pt(s.Args[0])
				x, y := pt(s.Args[1])
				p.QuadTo(cx, cy, x, y)
			case ot.SegmentOpCubeTo:
				c1x, c1y := pt(s.Args[0])
				c2x, c2y := pt(s.Args[1])
				x, y := pt(s.Args[2])
				p.CubeTo(c1x, c1y, c2x, c2y, x, y)
			}
		}
	}
	return p
}

// Text paints the glyph fragments of an inline layout. m maps paragraph
// space to canvas pixels. Atomic inline boxes are skipped; they are
// painted as boxes of their own.
func (c *Canvas) Text(reg *text.Registry, lay *inline.Layout, m geom.Affine) {
	if lay == nil {
		return
	}
	scale := m.ScaleFactor()
	type glyphs struct {
		f    *inline.Fragment
		fill *image.Alpha
		path *Path
	}
	var runs []glyphs
	for i := range lay.Fragments {
		f := &lay.Fragments[i]
		if f.Box != nil || f.Ctx == nil {
			continue
		}
		p := GlyphPath(reg, f.Run)
		runs = append(runs, glyphs{f: f, fill: c.Mask(p, m), path: p})
	}

	// Shadows go under all of the text.
	for _, r := range runs {
		ctx := r.f.Ctx
		for _, ts := range ctx.Style.TextShadow {
			col := ctx.Color(ts.Color)
			if col.A == 0 || r.fill == nil {
				continue
			}
			off := geom.Pt(float64(ctx.Px(ts.OffsetX, 0)), float64(ctx.Px(ts.OffsetY, 0)))
			off = geom.Pt(m.A*off.X+m.B*off.Y, m.D*off.X+m.E*off.Y)
			blur := float64(ctx.Px(ts.Blur, 0)) * scale
			sm := ShadowMask(r.fill, off, blur, c.img.Rect)
			c.Fill(sm, SolidOf(col), m, blend.Normal, 1)
		}
	}

	for _, r := range runs {
		ctx := r.f.Ctx
		s := &ctx.Style
		var stroke *image.Alpha
		if w := float64(ctx.Px(s.TextStrokeWidth, 0)) * scale; w > 0 {
			stroke = c.Mask(Stroke(r.path, m, w), geom.Identity())
		}

		deco := s.TextDecorationLine
		under := c.decoration(r.f, deco&(style.Underline|style.Overline), m, r.path, r.fill, stroke)
		c.Fill(under, SolidOf(ctx.Color(s.TextDecorationColor)), m, blend.Normal, 1)

		c.Fill(r.fill, SolidOf(s.Color), m, blend.Normal, 1)
		if stroke != nil {
			c.Fill(stroke, SolidOf(ctx.Color(s.TextStrokeColor)), m, blend.Normal, 1)
		}

		through := c.decoration(r.f, deco&style.LineThrough, m, nil, nil, nil)
		c.Fill(through, SolidOf(ctx.Color(s.TextDecorationColor)), m, blend.Normal, 1)
	}
}

// decoration rasterizes the decoration lines of one fragment. Underlines
// skip the glyph ink when text-decoration-skip-ink is on.
func (c *Canvas) decoration(f *inline.Fragment, lines style.DecorationLine, m geom.Affine, glyphs *Path, fill, stroke *image.Alpha) *image.Alpha {
	if lines == 0 || f.W <= 0 {
		return nil
	}
	ctx := f.Ctx
	met := f.Metrics
	thick := float64(met.UnderlineThickness)
	if t := ctx.Style.TextDecorationThickness; !t.IsAuto() {
		thick = float64(ctx.Px(t, ctx.Style.FontSize))
	}
	thick = math.Max(thick, 1/math.Max(m.ScaleFactor(), 1e-6))

	var p Path
	x, w := float64(f.X), float64(f.W)
	base := float64(f.Baseline)
	if lines.Has(style.Underline) {
		p.Rect(geom.RectXYWH(x, base+float64(met.UnderlinePosition), w, thick))
	}
	if lines.Has(style.Overline) {
		p.Rect(geom.RectXYWH(x, base-float64(met.Ascent), w, thick))
	}
	if lines.Has(style.LineThrough) {
		st := thick
		if ctx.Style.TextDecorationThickness.IsAuto() && met.StrikeThickness > 0 {
			st = float64(met.StrikeThickness)
		}
		p.Rect(geom.RectXYWH(x, base-float64(met.StrikePosition)-st/2, w, st))
	}
	mask := c.Mask(&p, m)
	if mask == nil || !lines.Has(style.Underline) || !ctx.Style.TextDecorationSkipInk {
		return mask
	}
	if fill != nil {
		gap := Stroke(glyphs, m, 2*thick*m.ScaleFactor())
		mask = Subtract(mask, c.MaskIn(gap, geom.Identity(), mask.Rect))
		mask = Subtract(mask, fill)
	}
	return Subtract(mask, stroke)
}
