package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for font loading.
var (
	// ErrUnsupportedFormat is returned for data that is not a TTF, OTF, TTC
	// or WOFF font, including WOFF2.
	ErrUnsupportedFormat = errors.New("text: unsupported font format")

	// ErrInvalidIndex is returned when a collection index is out of range.
	ErrInvalidIndex = errors.New("text: font index out of range")

	// ErrDecompress is returned when compressed font tables cannot be inflated.
	ErrDecompress = errors.New("text: font decompression failed")
)

// FontError reports a font that could not be loaded. Reason is one of the
// sentinel errors above, or the parser's error for malformed tables.
type FontError struct {
	Family string
	Reason error
}

func (e *FontError) Error() string {
	if e.Family == "" {
		return fmt.Sprintf("text: load font: %v", e.Reason)
	}
	return fmt.Sprintf("text: load font %q: %v", e.Family, e.Reason)
}

func (e *FontError) Unwrap() error {
	return e.Reason
}
