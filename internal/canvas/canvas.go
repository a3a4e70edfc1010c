// Package canvas is the compositing engine. It owns premultiplied RGBA
// pixel buffers, rasterizes paths to alpha masks, and paints positioned
// boxes: backgrounds, borders, shadows, images, text, masks, filters and
// blend modes.
//
// A Canvas carries a clip stack. Every fill and composite is multiplied by
// the clip on top of the stack, which is how overflow clipping, clip-path
// and mask-image constrain what a box paints.
package canvas

import (
	"image"
	"image/color"

	"golang.org/x/image/vector"

	"github.com/gogpu/nodeimg/geom"
	"github.com/gogpu/nodeimg/internal/blend"
)

// Canvas is a pixel buffer with a clip stack.
type Canvas struct {
	img   *image.RGBA
	clips []*image.Alpha
	// dirty bounds every pixel written since creation.
	dirty image.Rectangle
	ras   *vector.Rasterizer
}

// New returns a transparent canvas of the given size.
func New(w, h int) *Canvas {
	return &Canvas{
		img: image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0))),
		ras: &vector.Rasterizer{},
	}
}

// Image returns the canvas pixels. The buffer is premultiplied.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Bounds returns the canvas bounds.
func (c *Canvas) Bounds() image.Rectangle { return c.img.Rect }

// Layer returns a transparent canvas with the same bounds that shares the
// rasterizer scratch of c. It starts unclipped.
func (c *Canvas) Layer() *Canvas {
	return &Canvas{img: image.NewRGBA(c.img.Rect), ras: c.ras}
}

// Clip returns the effective clip, nil when unclipped.
func (c *Canvas) Clip() *image.Alpha {
	if len(c.clips) == 0 {
		return nil
	}
	return c.clips[len(c.clips)-1]
}

// PushClip intersects the clip with m. It reports false when nothing can
// be painted under the new clip; the clip is pushed either way and must be
// popped.
func (c *Canvas) PushClip(m *image.Alpha) bool {
	next := m
	if cur := c.Clip(); cur != nil {
		next = Intersect(cur, m)
	}
	if next == nil {
		next = &image.Alpha{}
	}
	c.clips = append(c.clips, next)
	return !next.Rect.Empty()
}

// PopClip restores the clip in effect before the last PushClip.
func (c *Canvas) PopClip() {
	if len(c.clips) > 0 {
		c.clips = c.clips[:len(c.clips)-1]
	}
}

// region limits r to the canvas and the clip.
func (c *Canvas) region(r image.Rectangle) image.Rectangle {
	r = r.Intersect(c.img.Rect)
	if clip := c.Clip(); clip != nil {
		r = r.Intersect(clip.Rect)
	}
	return r
}

func (c *Canvas) clipAt(x, y int) uint8 {
	clip := c.Clip()
	if clip == nil {
		return 255
	}
	return clip.Pix[clip.PixOffset(x, y)]
}

// Fill paints mask with p. space maps paint space to canvas pixels; it is
// ignored for solid paints.
func (c *Canvas) Fill(mask *image.Alpha, p Paint, space geom.Affine, mode blend.Mode, opacity float32) {
	if mask == nil || opacity <= 0 {
		return
	}
	r := c.region(mask.Rect)
	if r.Empty() {
		return
	}
	solid, isSolid := p.(Solid)
	inv, ok := space.Invert()
	if !isSolid && !ok {
		return
	}
	op := unit(opacity)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		mi := mask.PixOffset(r.Min.X, y)
		di := c.img.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x, mi, di = x+1, mi+1, di+4 {
			cov := blend.MulDiv255(blend.MulDiv255(mask.Pix[mi], c.clipAt(x, y)), op)
			if cov == 0 {
				continue
			}
			col := color.RGBA(solid)
			if !isSolid {
				pt := inv.Apply(geom.Pt(float64(x)+0.5, float64(y)+0.5))
				col = p.At(pt.X, pt.Y)
			}
			blend.Pixel(mode, c.img.Pix[di:di+4], col.R, col.G, col.B, col.A, cov)
		}
	}
	c.dirty = c.dirty.Union(r)
}

// Composite draws src onto c with mode and opacity. mask, when non-nil,
// further limits the source.
func (c *Canvas) Composite(src *image.RGBA, mask *image.Alpha, mode blend.Mode, opacity float32) {
	if src == nil || opacity <= 0 {
		return
	}
	r := c.region(src.Rect)
	if mask != nil {
		r = r.Intersect(mask.Rect)
	}
	if r.Empty() {
		return
	}
	op := unit(opacity)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		si := src.PixOffset(r.Min.X, y)
		di := c.img.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x, si, di = x+1, si+4, di+4 {
			if src.Pix[si+3] == 0 {
				continue
			}
			cov := blend.MulDiv255(c.clipAt(x, y), op)
			if mask != nil {
				cov = blend.MulDiv255(cov, mask.Pix[mask.PixOffset(x, y)])
			}
			if cov == 0 {
				continue
			}
			blend.Pixel(mode, c.img.Pix[di:di+4], src.Pix[si], src.Pix[si+1], src.Pix[si+2], src.Pix[si+3], cov)
		}
	}
	c.dirty = c.dirty.Union(r)
}

// CompositeLayer draws the painted part of l onto c.
func (c *Canvas) CompositeLayer(l *Canvas, mode blend.Mode, opacity float32) {
	if l.dirty.Empty() {
		return
	}
	c.Composite(l.img.SubImage(l.dirty).(*image.RGBA), nil, mode, opacity)
}

// Dirty returns the bounds of everything painted so far.
func (c *Canvas) Dirty() image.Rectangle { return c.dirty }

// Mask rasterizes p transformed by m, limited to the canvas bounds. It
// returns nil when the path covers no pixel of the canvas.
func (c *Canvas) Mask(p *Path, m geom.Affine) *image.Alpha {
	return c.MaskIn(p, m, c.img.Rect)
}

// MaskIn rasterizes p transformed by m, limited to bounds.
func (c *Canvas) MaskIn(p *Path, m geom.Affine, bounds image.Rectangle) *image.Alpha {
	if p.Empty() {
		return nil
	}
	r := m.Bounds(p.Bounds()).Pixels().Intersect(bounds)
	if r.Empty() {
		return nil
	}
	out := image.NewAlpha(r)
	c.ras.Reset(r.Dx(), r.Dy())
	p.rasterize(c.ras, geom.Translate(float64(-r.Min.X), float64(-r.Min.Y)).Mul(m))
	c.ras.Draw(out, r, image.Opaque, image.Point{})
	return out
}

func unit(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}
