// Package tw expands Tailwind-style utility classes into a style.Style
// patch. The expansion is the derived layer of a node, applied between its
// preset and its inline style.
//
// Tokens are whitespace separated. A token may carry a breakpoint prefix
// ("md:p-4"), which applies only when the viewport is at least that wide,
// and an important marker ("!p-4" or "p-4!"), which applies it after every
// unmarked token. Arbitrary values use brackets with underscores for
// spaces: "w-[120px]", "bg-[rgb(0_0_0_/_50%)]". A leading "-" negates
// length utilities: "-mt-2".
//
// Unknown tokens are ignored. New utilities can be added with Register and
// RegisterFixed.
package tw

import (
	"cmp"
	"slices"
	"strings"

	"github.com/gogpu/nodeimg/style"
)

// Spacing is the size of one step of the spacing scale, in rem.
const Spacing = 0.25

// Breakpoint is a minimum viewport width a token is conditional on.
type Breakpoint uint8

const (
	NoBreakpoint Breakpoint = iota
	SM
	MD
	LG
	XL
	XXL
)

var breakpointNames = [...]string{"", "sm", "md", "lg", "xl", "2xl"}

// breakpointRem holds the minimum widths in rem.
var breakpointRem = [...]float32{0, 40, 48, 64, 80, 96}

func (b Breakpoint) String() string {
	if int(b) < len(breakpointNames) {
		return breakpointNames[b]
	}
	return "unknown"
}

func parseBreakpoint(s string) (Breakpoint, bool) {
	for i, n := range breakpointNames {
		if i > 0 && strings.EqualFold(n, s) {
			return Breakpoint(i), true
		}
	}
	return NoBreakpoint, false
}

// Matches reports whether a viewport described by m is at least as wide as
// the breakpoint. A viewport without a definite width matches only
// NoBreakpoint.
func (b Breakpoint) Matches(m style.Metrics) bool {
	if b == NoBreakpoint {
		return true
	}
	if m.ViewportWidth <= 0 {
		return false
	}
	root, dpr := m.RootFontSize, m.DPR
	if root == 0 {
		root = style.DefaultFontSize
	}
	if dpr == 0 {
		dpr = 1
	}
	return m.ViewportWidth >= breakpointRem[b]*root*dpr
}

// Token is one parsed utility class.
type Token struct {
	Raw        string
	Breakpoint Breakpoint
	Important  bool
	apply      Apply
}

// Classes is a parsed class list in application order.
type Classes struct {
	tokens  []Token
	unknown []string
}

// Parse splits s into tokens and orders them for application: unmarked
// tokens before important ones and, within each group, unconditional
// tokens before breakpoint tokens in ascending width. Source order is kept
// otherwise, so a later token wins over an earlier one.
func Parse(s string) Classes {
	var c Classes
	for _, raw := range strings.Fields(s) {
		tok, ok := parseToken(raw)
		if !ok {
			c.unknown = append(c.unknown, raw)
			continue
		}
		c.tokens = append(c.tokens, tok)
	}
	slices.SortStableFunc(c.tokens, func(a, b Token) int {
		if a.Important != b.Important {
			if a.Important {
				return 1
			}
			return -1
		}
		return cmp.Compare(a.Breakpoint, b.Breakpoint)
	})
	return c
}

func parseToken(raw string) (Token, bool) {
	tok := Token{Raw: raw}
	s := raw
	if i := strings.IndexByte(s, ':'); i >= 0 && !strings.Contains(s[:i], "[") {
		bp, ok := parseBreakpoint(s[:i])
		if !ok {
			return tok, false
		}
		tok.Breakpoint = bp
		s = s[i+1:]
	}
	if rest, ok := strings.CutPrefix(s, "!"); ok {
		tok.Important, s = true, rest
	}
	if rest, ok := strings.CutSuffix(s, "!"); ok {
		tok.Important, s = true, rest
	}
	apply, ok := lookup(s)
	if !ok {
		return tok, false
	}
	tok.apply = apply
	return tok, true
}

// Tokens returns the recognized tokens in application order.
func (c Classes) Tokens() []Token {
	return c.tokens
}

// Unknown returns the tokens that matched no utility.
func (c Classes) Unknown() []string {
	return c.unknown
}

// Len returns the number of recognized tokens.
func (c Classes) Len() int {
	return len(c.tokens)
}

// Apply writes the tokens that match m into dst.
func (c Classes) Apply(dst *style.Style, m style.Metrics) {
	for _, t := range c.tokens {
		if t.Breakpoint.Matches(m) {
			t.apply(dst)
		}
	}
}

// Style returns the patch produced by the tokens that match m.
func (c Classes) Style(m style.Metrics) style.Style {
	var s style.Style
	c.Apply(&s, m)
	return s
}
