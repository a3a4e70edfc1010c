package resource

import (
	"errors"
	"fmt"
)

// Sentinel errors for image resolution.
var (
	// ErrUnknownSource is returned for a source that is neither a data URI,
	// a persistent key nor a fetchable URL.
	ErrUnknownSource = errors.New("resource: unknown image source")

	// ErrMalformedDataURI is returned for a data: URI that cannot be parsed.
	ErrMalformedDataURI = errors.New("resource: malformed data URI")

	// ErrUnsupportedSource is returned for image formats that cannot be
	// decoded, such as SVG.
	ErrUnsupportedSource = errors.New("resource: unsupported image source")
)

// DecodeError reports image bytes that could not be decoded.
type DecodeError struct {
	URI string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("resource: decode %s: %v", shorten(e.URI), e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// shorten keeps data URIs out of error messages.
func shorten(uri string) string {
	const limit = 64
	if len(uri) <= limit {
		return uri
	}
	return uri[:limit] + "..."
}
