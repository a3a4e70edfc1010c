package style

import (
	"fmt"
	"strings"
)

// keywords maps an enum's values to their CSS keywords by index.
type keywords[T ~uint8] struct {
	property string
	names    []string
}

func (k keywords[T]) name(v T) string {
	if int(v) < len(k.names) {
		return k.names[v]
	}
	return "unknown"
}

func (k keywords[T]) parse(s string) (T, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range k.names {
		if n == s {
			return T(i), nil
		}
	}
	return 0, fmt.Errorf("style: invalid %s %q", k.property, s)
}

func (k keywords[T]) unmarshal(dst *T, b []byte) error {
	v, err := k.parse(string(b))
	if err != nil {
		return err
	}
	*dst = v
	return nil
}
