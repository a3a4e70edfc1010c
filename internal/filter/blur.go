package filter

import (
	"image"
	"sync"
)

// Above this sigma the blur switches from a direct Gaussian kernel to
// three running box passes.
const boxThreshold = 2.0

// Blur blurs a premultiplied RGBA image in place. Pixels outside the image
// are treated as transparent.
func Blur(img *image.RGBA, sigma float64) {
	b := img.Rect
	blurPlanes(img.Pix, img.Stride, b.Dx(), b.Dy(), 4, sigma)
}

// BlurAlpha blurs an alpha mask in place.
func BlurAlpha(m *image.Alpha, sigma float64) {
	b := m.Rect
	blurPlanes(m.Pix, m.Stride, b.Dx(), b.Dy(), 1, sigma)
}

func blurPlanes(pix []uint8, stride, w, h, ch int, sigma float64) {
	if sigma <= 0 || w <= 0 || h <= 0 {
		return
	}
	n := w * h * ch
	buf := getBuffer(n)
	defer putBuffer(buf)

	for y := 0; y < h; y++ {
		row := pix[y*stride : y*stride+w*ch]
		for i, v := range row {
			buf[y*w*ch+i] = float32(v)
		}
	}

	if sigma < boxThreshold {
		tmp := getBuffer(n)
		k := CachedGaussianKernel(sigma)
		convolveH(buf, tmp, w, h, ch, k)
		convolveV(tmp, buf, w, h, ch, k)
		putBuffer(tmp)
	} else {
		line := make([]float32, max(w, h)*ch)
		for _, r := range boxRadii(sigma) {
			boxH(buf, line, w, h, ch, r)
			boxV(buf, line, w, h, ch, r)
		}
	}

	for y := 0; y < h; y++ {
		row := pix[y*stride : y*stride+w*ch]
		for i := range row {
			row[i] = clampUint8(buf[y*w*ch+i])
		}
	}
}

func convolveH(src, dst []float32, w, h, ch int, k []float32) {
	half := len(k) / 2
	for y := 0; y < h; y++ {
		base := y * w * ch
		for x := 0; x < w; x++ {
			for c := 0; c < ch; c++ {
				var sum float32
				for i, kv := range k {
					sx := x + i - half
					if sx < 0 || sx >= w {
						continue
					}
					sum += src[base+sx*ch+c] * kv
				}
				dst[base+x*ch+c] = sum
			}
		}
	}
}

func convolveV(src, dst []float32, w, h, ch int, k []float32) {
	half := len(k) / 2
	rowLen := w * ch
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			for c := 0; c < ch; c++ {
				var sum float32
				for i, kv := range k {
					sy := y + i - half
					if sy < 0 || sy >= h {
						continue
					}
					sum += src[sy*rowLen+x*ch+c] * kv
				}
				dst[y*rowLen+x*ch+c] = sum
			}
		}
	}
}

// boxH runs a box blur of radius r over every row using a running sum.
func boxH(buf, line []float32, w, h, ch, r int) {
	if r <= 0 {
		return
	}
	norm := 1 / float32(2*r+1)
	rowLen := w * ch
	for y := 0; y < h; y++ {
		row := buf[y*rowLen : (y+1)*rowLen]
		copy(line, row)
		for c := 0; c < ch; c++ {
			var acc float32
			for j := 0; j <= r && j < w; j++ {
				acc += line[j*ch+c]
			}
			for x := 0; x < w; x++ {
				row[x*ch+c] = acc * norm
				if in := x + r + 1; in < w {
					acc += line[in*ch+c]
				}
				if out := x - r; out >= 0 {
					acc -= line[out*ch+c]
				}
			}
		}
	}
}

// boxV runs a box blur of radius r down every column.
func boxV(buf, line []float32, w, h, ch, r int) {
	if r <= 0 {
		return
	}
	norm := 1 / float32(2*r+1)
	rowLen := w * ch
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			copy(line[y*ch:y*ch+ch], buf[y*rowLen+x*ch:y*rowLen+x*ch+ch])
		}
		for c := 0; c < ch; c++ {
			var acc float32
			for j := 0; j <= r && j < h; j++ {
				acc += line[j*ch+c]
			}
			for y := 0; y < h; y++ {
				buf[y*rowLen+x*ch+c] = acc * norm
				if in := y + r + 1; in < h {
					acc += line[in*ch+c]
				}
				if out := y - r; out >= 0 {
					acc -= line[out*ch+c]
				}
			}
		}
	}
}

type floatBuffer struct {
	data []float32
}

var bufferPool = sync.Pool{
	New: func() any { return &floatBuffer{} },
}

func getBuffer(n int) []float32 {
	fb := bufferPool.Get().(*floatBuffer)
	if cap(fb.data) < n {
		return make([]float32, n)
	}
	buf := fb.data[:n]
	clear(buf)
	return buf
}

func putBuffer(buf []float32) {
	if cap(buf) > 16<<20 {
		return
	}
	bufferPool.Put(&floatBuffer{data: buf})
}

func clampUint8(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v + 0.5)
}
