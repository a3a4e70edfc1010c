package canvas

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/nodeimg/geom"
	"github.com/gogpu/nodeimg/internal/blend"
	"github.com/gogpu/nodeimg/style"
)

// Interpolator picks the resampling kernel for image-rendering.
func Interpolator(r style.ImageRendering) draw.Interpolator {
	switch r {
	case style.ImageRenderingPixelated:
		return draw.NearestNeighbor
	case style.ImageRenderingSmooth:
		return draw.CatmullRom
	}
	return draw.BiLinear
}

// ObjectRect places an image with natural size nat inside box according
// to object-fit and object-position.
func ObjectRect(box geom.Rect, nat geom.Size, fit style.ObjectFit, pos style.Anchor, m style.Metrics) geom.Rect {
	w, h := box.W, box.H
	if nat.W <= 0 || nat.H <= 0 {
		return box
	}
	contain := math.Min(w/nat.W, h/nat.H)
	switch fit {
	case style.ObjectFitContain:
		w, h = nat.W*contain, nat.H*contain
	case style.ObjectFitCover:
		s := math.Max(w/nat.W, h/nat.H)
		w, h = nat.W*s, nat.H*s
	case style.ObjectFitNone:
		w, h = nat.W, nat.H
	case style.ObjectFitScaleDown:
		if contain < 1 {
			w, h = nat.W*contain, nat.H*contain
		} else {
			w, h = nat.W, nat.H
		}
	}
	return geom.Rect{
		X: box.X + float64(pos.X.Resolve(m, float32(box.W-w))),
		Y: box.Y + float64(pos.Y.Resolve(m, float32(box.H-h))),
		W: w,
		H: h,
	}
}

// DrawImage draws src stretched over dst, a rectangle in the space m maps
// to canvas pixels. clip, when non-nil, limits the result further.
func (c *Canvas) DrawImage(src *image.RGBA, dst geom.Rect, m geom.Affine, interp draw.Interpolator, clip *image.Alpha, mode blend.Mode, opacity float32) {
	sb := src.Bounds()
	if sb.Empty() || dst.W <= 0 || dst.H <= 0 {
		return
	}
	s2d := m.Mul(geom.Translate(dst.X, dst.Y)).Mul(geom.Scale(dst.W/float64(sb.Dx()), dst.H/float64(sb.Dy())))
	r := s2d.Bounds(geom.RectXYWH(0, 0, float64(sb.Dx()), float64(sb.Dy()))).Pixels()
	r = c.region(r)
	if clip != nil {
		r = r.Intersect(clip.Rect)
	}
	if r.Empty() {
		return
	}

	tmp := image.NewRGBA(r)
	if t := s2d.Translation(); s2d.IsTranslation() && t.X == math.Trunc(t.X) && t.Y == math.Trunc(t.Y) {
		draw.Draw(tmp, r, src, sb.Min.Add(r.Min.Sub(image.Pt(int(t.X), int(t.Y)))), draw.Src)
	} else {
		aff := f64.Aff3{s2d.A, s2d.B, s2d.C, s2d.D, s2d.E, s2d.F}
		interp.Transform(tmp, aff, src, sb, draw.Src, nil)
	}
	c.Composite(tmp, clip, mode, opacity)
}

// Scaled resamples src to w x h pixels.
func Scaled(src *image.RGBA, w, h int, interp draw.Interpolator) *image.RGBA {
	if w <= 0 || h <= 0 {
		return nil
	}
	if src.Bounds().Dx() == w && src.Bounds().Dy() == h {
		return src
	}
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	interp.Scale(out, out.Rect, src, src.Bounds(), draw.Src, nil)
	return out
}
