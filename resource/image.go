package resource

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // register GIF
	_ "image/jpeg" // register JPEG
	_ "image/png"  // register PNG

	_ "golang.org/x/image/bmp" // register BMP
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // register TIFF
	_ "golang.org/x/image/webp" // register WebP
)

// Image is a decoded raster image. Pixels are premultiplied RGBA with the
// origin at (0, 0). An Image is immutable once decoded and may be shared
// between concurrent renders.
type Image struct {
	RGBA *image.RGBA
	// Format is the codec name reported by the decoder ("png", "jpeg", ...).
	Format string
}

// NewImage wraps an already decoded image, converting it to RGBA when needed.
func NewImage(img image.Image) *Image {
	return &Image{RGBA: toRGBA(img), Format: "memory"}
}

// Size returns the natural size in pixels.
func (i *Image) Size() (w, h int) {
	b := i.RGBA.Bounds()
	return b.Dx(), b.Dy()
}

// Decode decodes raster image bytes. SVG documents are recognized and
// rejected with ErrUnsupportedSource.
func Decode(data []byte) (*Image, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty data", ErrUnsupportedSource)
	}
	if isSVG(data) {
		return nil, fmt.Errorf("%w: svg", ErrUnsupportedSource)
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return &Image{RGBA: toRGBA(img), Format: format}, nil
}

func isSVG(data []byte) bool {
	head := data[:min(len(data), 512)]
	return bytes.Contains(head, []byte("<svg")) || bytes.HasPrefix(bytes.TrimSpace(head), []byte("<?xml"))
}

// toRGBA returns img as a zero-origin *image.RGBA, copying unless it
// already is one.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// Solid returns a w×h image filled with c, mostly useful in tests.
func Solid(w, h int, c color.Color) *Image {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return &Image{RGBA: dst, Format: "memory"}
}
