package resource

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"
)

// IsDataURI reports whether src uses the data: scheme.
func IsDataURI(src string) bool {
	return len(src) >= 5 && strings.EqualFold(src[:5], "data:")
}

// ParseDataURI returns the media type and payload of a data: URI.
// Base64 payloads are decoded; others are percent-decoded.
func ParseDataURI(src string) (mediaType string, data []byte, err error) {
	if !IsDataURI(src) {
		return "", nil, fmt.Errorf("%w: missing data: scheme", ErrMalformedDataURI)
	}
	header, payload, ok := strings.Cut(src[5:], ",")
	if !ok {
		return "", nil, fmt.Errorf("%w: missing comma", ErrMalformedDataURI)
	}

	isBase64 := false
	params := strings.Split(header, ";")
	mediaType = strings.TrimSpace(params[0])
	for _, p := range params[1:] {
		if strings.EqualFold(strings.TrimSpace(p), "base64") {
			isBase64 = true
		}
	}
	if mediaType == "" {
		mediaType = "text/plain"
	}

	if isBase64 {
		payload = strings.Map(func(r rune) rune {
			if r == ' ' || r == '\n' || r == '\r' || r == '\t' {
				return -1
			}
			return r
		}, payload)
		data, err = base64.StdEncoding.DecodeString(payload)
		if err != nil {
			// Some producers drop the padding.
			data, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
		}
		if err != nil {
			return "", nil, fmt.Errorf("%w: %v", ErrMalformedDataURI, err)
		}
		return mediaType, data, nil
	}

	unescaped, err := url.PathUnescape(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrMalformedDataURI, err)
	}
	return mediaType, []byte(unescaped), nil
}

// DecodeDataURI parses and decodes a data: URI image.
func DecodeDataURI(src string) (*Image, error) {
	_, data, err := ParseDataURI(src)
	if err != nil {
		return nil, err
	}
	img, err := Decode(data)
	if err != nil {
		return nil, &DecodeError{URI: src, Err: err}
	}
	return img, nil
}
