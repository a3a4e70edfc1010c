// Package encode writes rendered canvases as PNG, JPEG and WebP, and frame
// sequences as APNG or animated WebP.
package encode

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"strings"

	"github.com/HugoSmits86/nativewebp"
)

// Format is an output image format.
type Format int

const (
	PNG Format = iota
	JPEG
	WebP
)

// DefaultQuality is the JPEG quality used when none is given.
const DefaultQuality = 90

var (
	// ErrUnsupportedFormat is returned for an unknown format name, or for a
	// format that cannot carry an animation.
	ErrUnsupportedFormat = errors.New("encode: unsupported format")

	// ErrNoFrames is returned when an animation has no frames.
	ErrNoFrames = errors.New("encode: animation has no frames")
)

// String returns the lower-case format name.
func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case JPEG:
		return "jpeg"
	case WebP:
		return "webp"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Ext returns the usual file extension, with the leading dot.
func (f Format) Ext() string {
	if f == JPEG {
		return ".jpg"
	}
	return "." + f.String()
}

// ParseFormat maps a name or file extension to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.TrimPrefix(strings.ToLower(s), ".") {
	case "png", "apng":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	case "webp":
		return WebP, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Options configure a single encode.
type Options struct {
	// Quality is the JPEG quality in 1..100. Zero means DefaultQuality.
	// PNG and WebP output is lossless and ignores it.
	Quality int
}

func (o Options) quality() int {
	q := o.Quality
	if q == 0 {
		q = DefaultQuality
	}
	return min(max(q, 1), 100)
}

// Image writes img, holding premultiplied colors, to w.
func Image(w io.Writer, img *image.RGBA, f Format, o Options) error {
	switch f {
	case PNG:
		if err := png.Encode(w, Unpremultiply(img)); err != nil {
			return fmt.Errorf("encode: png: %w", err)
		}
	case JPEG:
		// JPEG has no alpha; the encoder composites over black.
		if err := jpeg.Encode(w, img, &jpeg.Options{Quality: o.quality()}); err != nil {
			return fmt.Errorf("encode: jpeg: %w", err)
		}
	case WebP:
		if err := nativewebp.Encode(w, Unpremultiply(img), nil); err != nil {
			return fmt.Errorf("encode: webp: %w", err)
		}
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}
	return nil
}

// Unpremultiply converts a premultiplied image to straight alpha. The
// result always starts at the origin.
func Unpremultiply(src *image.RGBA) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := range b.Dy() {
		s := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]
		d := dst.Pix[y*dst.Stride:]
		for x := range b.Dx() {
			i := x * 4
			a := uint32(s[i+3])
			switch a {
			case 0:
				// Fully transparent pixels stay zero.
			case 255:
				copy(d[i:i+4], s[i:i+4])
			default:
				d[i+0] = uint8(min((uint32(s[i+0])*255+a/2)/a, 255))
				d[i+1] = uint8(min((uint32(s[i+1])*255+a/2)/a, 255))
				d[i+2] = uint8(min((uint32(s[i+2])*255+a/2)/a, 255))
				d[i+3] = uint8(a)
			}
		}
	}
	return dst
}
