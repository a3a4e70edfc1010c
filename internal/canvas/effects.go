package canvas

import (
	"image"

	"github.com/gogpu/nodeimg/internal/filter"
	"github.com/gogpu/nodeimg/style"
)

// ApplyFilters runs a filter list over the painted part of c, in order.
// scale converts blur radii from local to canvas pixels.
func (c *Canvas) ApplyFilters(fs []style.Filter, m style.Metrics, scale float64) {
	if len(fs) == 0 || c.dirty.Empty() {
		return
	}
	for _, f := range fs {
		if f.Kind == style.FilterBlur {
			s := float64(f.Radius.Resolve(m, 0)) * scale
			if s <= 0 {
				continue
			}
			// The blur spreads into transparent surroundings.
			c.dirty = c.dirty.Inset(-filter.Extent(s)).Intersect(c.img.Rect)
			filter.Blur(c.img.SubImage(c.dirty).(*image.RGBA), s)
			continue
		}
		mx := Matrix(f)
		mx.Apply(c.img.SubImage(c.dirty).(*image.RGBA))
	}
}

// Matrix returns the color matrix of a non-blur filter function.
func Matrix(f style.Filter) filter.Matrix {
	switch f.Kind {
	case style.FilterBrightness:
		return filter.Brightness(f.Amount)
	case style.FilterContrast:
		return filter.Contrast(f.Amount)
	case style.FilterGrayscale:
		return filter.Grayscale(min(f.Amount, 1))
	case style.FilterHueRotate:
		return filter.HueRotate(f.Amount)
	case style.FilterInvert:
		return filter.Invert(min(f.Amount, 1))
	case style.FilterOpacity:
		return filter.Opacity(min(f.Amount, 1))
	case style.FilterSaturate:
		return filter.Saturate(f.Amount)
	case style.FilterSepia:
		return filter.Sepia(min(f.Amount, 1))
	}
	return filter.Identity
}

// Backdrop filters what is already painted under mask, in place. Only
// pixels covered by the mask change; partial coverage mixes the filtered
// and original colors.
func (c *Canvas) Backdrop(fs []style.Filter, mask *image.Alpha, m style.Metrics, scale float64) {
	if len(fs) == 0 || mask == nil {
		return
	}
	r := mask.Rect.Intersect(c.img.Rect)
	if r.Empty() {
		return
	}
	// Blur samples beyond the mask.
	var pad int
	for _, f := range fs {
		if f.Kind == style.FilterBlur {
			pad += filter.Extent(float64(f.Radius.Resolve(m, 0)) * scale)
		}
	}
	src := r.Inset(-pad).Intersect(c.img.Rect)

	l := &Canvas{img: image.NewRGBA(src), dirty: src}
	for y := src.Min.Y; y < src.Max.Y; y++ {
		copy(l.img.Pix[l.img.PixOffset(src.Min.X, y):], c.img.Pix[c.img.PixOffset(src.Min.X, y):c.img.PixOffset(src.Max.X, y)])
	}
	l.ApplyFilters(fs, m, scale)

	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			cov := mask.Pix[mask.PixOffset(x, y)]
			cov = uint8(uint32(cov) * uint32(c.clipAt(x, y)) / 255)
			if cov == 0 {
				continue
			}
			di, si := c.img.PixOffset(x, y), l.img.PixOffset(x, y)
			for k := range 4 {
				d, s := uint32(c.img.Pix[di+k]), uint32(l.img.Pix[si+k])
				c.img.Pix[di+k] = uint8((s*uint32(cov) + d*(255-uint32(cov)) + 127) / 255)
			}
		}
	}
	c.dirty = c.dirty.Union(r)
}
