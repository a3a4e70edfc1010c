package canvas

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"

	"github.com/gogpu/nodeimg/geom"
	"github.com/gogpu/nodeimg/style"
)

// Tile repeats a pre-rendered tile across paint space. A non-repeating
// axis shows the tile once.
type Tile struct {
	img              *image.RGBA
	origin           geom.Point
	w, h             float64
	repeatX, repeatY bool
}

// At returns the tile pixel covering (x, y).
func (t *Tile) At(x, y float64) color.RGBA {
	u, v := x-t.origin.X, y-t.origin.Y
	if t.repeatX {
		u = wrap(u, t.w)
	} else if u < 0 || u >= t.w {
		return color.RGBA{}
	}
	if t.repeatY {
		v = wrap(v, t.h)
	} else if v < 0 || v >= t.h {
		return color.RGBA{}
	}
	b := t.img.Rect
	px := min(int(u*float64(b.Dx())/t.w), b.Dx()-1)
	py := min(int(v*float64(b.Dy())/t.h), b.Dy()-1)
	return t.img.RGBAAt(b.Min.X+px, b.Min.Y+py)
}

func wrap(v, n float64) float64 {
	v = math.Mod(v, n)
	if v < 0 {
		v += n
	}
	return v
}

// Layer is one resolved background or mask layer.
type Layer struct {
	Image    style.BackgroundImage
	Position style.Anchor
	Size     style.BackgroundSize
	Repeat   style.BackgroundRepeat
}

// Layers pairs each image with its position, size and repeat values. A
// layer past the end of a shorter list takes that list's last value. The
// result keeps declaration order, which is bottom layer first.
func Layers(imgs style.Images, pos []style.Anchor, size []style.BackgroundSize, repeat []style.BackgroundRepeat) []Layer {
	out := make([]Layer, 0, len(imgs))
	for i := range imgs {
		l := Layer{Image: imgs[i], Position: style.TopLeft, Size: style.SizeAuto}
		if len(pos) > 0 {
			l.Position = pos[min(i, len(pos)-1)]
		}
		if len(size) > 0 {
			l.Size = size[min(i, len(size)-1)]
		}
		if len(repeat) > 0 {
			l.Repeat = repeat[min(i, len(repeat)-1)]
		}
		out = append(out, l)
	}
	return out
}

// ImageSource resolves URL layers to pixels; a nil result skips the layer.
type ImageSource func(url string) *image.RGBA

// LayerPaint builds the paint for one layer inside the positioning area
// area, in the same local space as area. dpr scales the natural size of
// URL images. It returns nil when the layer paints nothing.
func LayerPaint(l Layer, area geom.Rect, current style.Color, m style.Metrics, images ImageSource, interp draw.Interpolator) Paint {
	if n, ok := l.Image.(style.Noise); ok {
		return NewNoise(n)
	}

	var nat geom.Size
	var src *image.RGBA
	if u, ok := l.Image.(style.URL); ok {
		if images == nil {
			return nil
		}
		if src = images(string(u)); src == nil {
			return nil
		}
		dpr := float64(m.DPR)
		if dpr == 0 {
			dpr = 1
		}
		nat = geom.Size{W: float64(src.Rect.Dx()) * dpr, H: float64(src.Rect.Dy()) * dpr}
	}

	tw, th := tileSize(l.Size, area, nat, m)
	if tw < 0.5 || th < 0.5 {
		return nil
	}
	origin := geom.Pt(
		area.X+float64(l.Position.X.Resolve(m, float32(area.W-tw))),
		area.Y+float64(l.Position.Y.Resolve(m, float32(area.H-th))),
	)
	pw, ph := int(math.Ceil(tw)), int(math.Ceil(th))

	var tile *image.RGBA
	if src != nil {
		tile = Scaled(src, pw, ph, interp)
	} else {
		var p Paint
		sz := geom.Size{W: tw, H: th}
		switch g := l.Image.(type) {
		case *style.LinearGradient:
			p = NewLinearGradient(g, sz, current, m)
		case *style.RadialGradient:
			p = NewRadialGradient(g, sz, current, m)
		case *style.ConicGradient:
			p = NewConicGradient(g, sz, current, m)
		default:
			return nil
		}
		tile = render(p, pw, ph, tw/float64(pw), th/float64(ph))
	}
	return &Tile{
		img:     tile,
		origin:  origin,
		w:       tw,
		h:       th,
		repeatX: l.Repeat == style.BackgroundRepeatRepeat || l.Repeat == style.BackgroundRepeatRepeatX,
		repeatY: l.Repeat == style.BackgroundRepeatRepeat || l.Repeat == style.BackgroundRepeatRepeatY,
	}
}

// render samples p at pixel centers into a w x h image.
func render(p Paint, w, h int, sx, sy float64) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			out.SetRGBA(x, y, p.At((float64(x)+0.5)*sx, (float64(y)+0.5)*sy))
		}
	}
	return out
}

// tileSize resolves background-size. Gradients have no natural size and
// fill the area unless sized explicitly.
func tileSize(s style.BackgroundSize, area geom.Rect, nat geom.Size, m style.Metrics) (w, h float64) {
	hasNat := nat.W > 0 && nat.H > 0
	switch s.Kind {
	case style.SizeCover, style.SizeContain:
		if !hasNat {
			return area.W, area.H
		}
		sc := math.Max(area.W/nat.W, area.H/nat.H)
		if s.Kind == style.SizeContain {
			sc = math.Min(area.W/nat.W, area.H/nat.H)
		}
		return nat.W * sc, nat.H * sc
	}

	autoW, autoH := s.Width.IsAuto(), s.Height.IsAuto()
	if !autoW {
		w = float64(s.Width.Resolve(m, float32(area.W)))
	}
	if !autoH {
		h = float64(s.Height.Resolve(m, float32(area.H)))
	}
	switch {
	case autoW && autoH:
		if hasNat {
			return nat.W, nat.H
		}
		return area.W, area.H
	case autoW:
		if hasNat {
			return h * nat.W / nat.H, h
		}
		return area.W, h
	case autoH:
		if hasNat {
			return w, w * nat.H / nat.W
		}
		return w, area.H
	}
	return w, h
}
