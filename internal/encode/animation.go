package encode

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"image"
	"image/draw"
	"io"

	"github.com/HugoSmits86/nativewebp"
)

// Frame is one image of an animation, shown for Duration milliseconds.
type Frame struct {
	Image    *image.RGBA
	Duration uint32
}

// Animation writes frames as an animated PNG or WebP. loops is the number
// of times to play the animation; zero loops forever. Frames smaller than
// the largest one are anchored at the top-left corner.
func Animation(w io.Writer, frames []Frame, f Format, loops uint16) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}
	imgs := canvasFrames(frames)
	switch f {
	case PNG:
		if err := writeAPNG(w, imgs, frames, loops); err != nil {
			return fmt.Errorf("encode: apng: %w", err)
		}
	case WebP:
		ani := &nativewebp.Animation{
			Images:    make([]image.Image, len(imgs)),
			Durations: make([]uint, len(imgs)),
			Disposals: make([]uint, len(imgs)),
			LoopCount: loops,
		}
		for i, img := range imgs {
			ani.Images[i] = img
			ani.Durations[i] = uint(frames[i].Duration)
			// Frames replace each other; nothing shows through.
			ani.Disposals[i] = 1
		}
		if err := nativewebp.EncodeAll(w, ani, nil); err != nil {
			return fmt.Errorf("encode: webp: %w", err)
		}
	default:
		return fmt.Errorf("%w: %v cannot animate", ErrUnsupportedFormat, f)
	}
	return nil
}

// canvasFrames unpremultiplies every frame onto a canvas of the largest
// frame size.
func canvasFrames(frames []Frame) []*image.NRGBA {
	var size image.Point
	for _, fr := range frames {
		b := fr.Image.Bounds()
		size.X = max(size.X, b.Dx())
		size.Y = max(size.Y, b.Dy())
	}
	out := make([]*image.NRGBA, len(frames))
	for i, fr := range frames {
		img := Unpremultiply(fr.Image)
		if img.Rect.Size() != size {
			full := image.NewNRGBA(image.Rectangle{Max: size})
			draw.Draw(full, img.Rect, img, image.Point{}, draw.Src)
			img = full
		}
		out[i] = img
	}
	return out
}

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

// APNG frame control values.
const (
	apngDisposeNone  = 0
	apngBlendSource  = 0
	pngColorTypeRGBA = 6
)

// writeAPNG writes 8-bit RGBA frames. The first frame doubles as the
// default image, so decoders without animation support show it.
func writeAPNG(w io.Writer, imgs []*image.NRGBA, frames []Frame, loops uint16) error {
	pw := &pngWriter{w: w}
	pw.write(pngSignature)

	size := imgs[0].Rect.Size()
	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:], uint32(size.X))
	binary.BigEndian.PutUint32(ihdr[4:], uint32(size.Y))
	ihdr[8] = 8
	ihdr[9] = pngColorTypeRGBA
	pw.chunk("IHDR", ihdr)

	actl := make([]byte, 8)
	binary.BigEndian.PutUint32(actl[0:], uint32(len(imgs)))
	binary.BigEndian.PutUint32(actl[4:], uint32(loops))
	pw.chunk("acTL", actl)

	var seq uint32
	for i, img := range imgs {
		num, den := apngDelay(frames[i].Duration)
		fctl := make([]byte, 26)
		binary.BigEndian.PutUint32(fctl[0:], seq)
		binary.BigEndian.PutUint32(fctl[4:], uint32(size.X))
		binary.BigEndian.PutUint32(fctl[8:], uint32(size.Y))
		// x and y offsets stay zero.
		binary.BigEndian.PutUint16(fctl[20:], num)
		binary.BigEndian.PutUint16(fctl[22:], den)
		fctl[24] = apngDisposeNone
		fctl[25] = apngBlendSource
		pw.chunk("fcTL", fctl)
		seq++

		data, err := compressRows(img)
		if err != nil {
			return err
		}
		if i == 0 {
			pw.chunk("IDAT", data)
			continue
		}
		fdat := make([]byte, 4+len(data))
		binary.BigEndian.PutUint32(fdat, seq)
		copy(fdat[4:], data)
		pw.chunk("fdAT", fdat)
		seq++
	}
	pw.chunk("IEND", nil)
	return pw.err
}

// apngDelay expresses ms as a fraction of a second that fits in two
// 16-bit fields.
func apngDelay(ms uint32) (num, den uint16) {
	switch {
	case ms <= 0xffff:
		return uint16(ms), 1000
	case ms/10 <= 0xffff:
		return uint16(ms / 10), 100
	default:
		return uint16(min(ms/1000, 0xffff)), 1
	}
}

// compressRows returns the zlib stream of img's scanlines, each prefixed
// with filter type 0.
func compressRows(img *image.NRGBA) ([]byte, error) {
	var buf bytes.Buffer
	zw, err := zlib.NewWriterLevel(&buf, zlib.BestSpeed)
	if err != nil {
		return nil, err
	}
	row := img.Rect.Dx() * 4
	for y := range img.Rect.Dy() {
		if _, err := zw.Write([]byte{0}); err != nil {
			return nil, err
		}
		if _, err := zw.Write(img.Pix[y*img.Stride : y*img.Stride+row]); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// pngWriter writes length-prefixed, CRC-terminated chunks and keeps the
// first error.
type pngWriter struct {
	w   io.Writer
	err error
}

func (p *pngWriter) write(b []byte) {
	if p.err != nil {
		return
	}
	_, p.err = p.w.Write(b)
}

func (p *pngWriter) chunk(name string, data []byte) {
	var hdr [8]byte
	binary.BigEndian.PutUint32(hdr[:4], uint32(len(data)))
	copy(hdr[4:], name)
	crc := crc32.NewIEEE()
	crc.Write(hdr[4:])
	crc.Write(data)
	var sum [4]byte
	binary.BigEndian.PutUint32(sum[:], crc.Sum32())
	p.write(hdr[:])
	p.write(data)
	p.write(sum[:])
}
