package tw

import (
	"strings"
	"sync"

	"github.com/gogpu/nodeimg/style"
)

// Apply writes one utility into a style patch.
type Apply func(s *style.Style)

// Value is the part of a token after its utility prefix.
type Value struct {
	// Suffix is the text after the prefix and its dash, e.g. "4" in "p-4".
	Suffix string
	// Negative is set for tokens written with a leading dash, e.g. "-mt-2".
	Negative bool
}

// Arbitrary returns the bracketed value of v with underscores turned into
// spaces, and whether v is bracketed.
func (v Value) Arbitrary() (string, bool) {
	s := v.Suffix
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return "", false
	}
	return strings.ReplaceAll(s[1:len(s)-1], "_", " "), true
}

// PrefixFunc parses the value of a prefixed utility. It reports false when
// the value is not meant for it, so the next parser registered for the same
// prefix can try.
type PrefixFunc func(v Value) (Apply, bool)

var registry = struct {
	sync.RWMutex
	fixed  map[string]Apply
	prefix map[string][]PrefixFunc
}{
	fixed:  make(map[string]Apply),
	prefix: make(map[string][]PrefixFunc),
}

// Register adds a parser for utilities starting with prefix followed by a
// dash. Parsers for the same prefix are tried in registration order.
func Register(prefix string, fn PrefixFunc) {
	registry.Lock()
	defer registry.Unlock()
	registry.prefix[prefix] = append(registry.prefix[prefix], fn)
}

// RegisterFixed adds a utility matched by its whole name.
func RegisterFixed(name string, fn Apply) {
	registry.Lock()
	defer registry.Unlock()
	registry.fixed[name] = fn
}

// lookup resolves a token without breakpoint or important markers. Fixed
// names win; otherwise the longest registered prefix ending at a dash is
// tried first.
func lookup(token string) (Apply, bool) {
	registry.RLock()
	defer registry.RUnlock()

	if fn, ok := registry.fixed[token]; ok {
		return fn, true
	}
	negative := false
	if rest, ok := strings.CutPrefix(token, "-"); ok {
		negative, token = true, rest
	}
	for i := len(token) - 1; i > 0; i-- {
		if token[i] != '-' {
			continue
		}
		for _, fn := range registry.prefix[token[:i]] {
			if apply, ok := fn(Value{Suffix: token[i+1:], Negative: negative}); ok {
				return apply, true
			}
		}
	}
	return nil, false
}
