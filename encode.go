package nodeimg

import (
	"bytes"
	"encoding/base64"
	"image"
	"io"

	"github.com/gogpu/nodeimg/internal/encode"
)

// Format is an output image format.
type Format = encode.Format

// Output formats.
const (
	PNG  = encode.PNG
	JPEG = encode.JPEG
	WebP = encode.WebP
)

// ParseFormat maps a format name or file extension ("png", ".jpg",
// "webp") to a Format.
func ParseFormat(s string) (Format, error) {
	f, err := encode.ParseFormat(s)
	if err != nil {
		return 0, stageError(StageEncode, err)
	}
	return f, nil
}

// Encode writes img, as returned by Render, to w. PNG and WebP are
// lossless; JPEG has no alpha and is composited over black.
func Encode(w io.Writer, img *image.RGBA, format Format, opts ...EncodeOption) error {
	var o encode.Options
	for _, opt := range opts {
		opt(&o)
	}
	if err := encode.Image(w, img, format, o); err != nil {
		return stageError(StageEncode, err)
	}
	return nil
}

// ContentType returns the media type of format.
func ContentType(format Format) string {
	return "image/" + format.String()
}

// DataURL encodes img and returns it as a base64 data: URL.
func DataURL(img *image.RGBA, format Format, opts ...EncodeOption) (string, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, img, format, opts...); err != nil {
		return "", err
	}
	return "data:" + ContentType(format) + ";base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
