package inline

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gogpu/nodeimg/internal/tree"
	"github.com/gogpu/nodeimg/node"
	"github.com/gogpu/nodeimg/style"
)

// Item is one piece of inline content: a text run, or an atomic inline
// box when Box is set.
type Item struct {
	Text string
	Ctx  *tree.Context
	Box  *tree.Node
}

// Collect returns the inline items of an inline root in document order.
func Collect(root *tree.Node) []Item {
	if root.Kind == node.KindText {
		return []Item{{Text: root.Text, Ctx: &root.Ctx}}
	}
	var items []Item
	for _, c := range root.Children {
		collect(c, &items)
	}
	return items
}

func collect(n *tree.Node, items *[]Item) {
	switch n.Kind {
	case node.KindText:
		*items = append(*items, Item{Text: n.Text, Ctx: &n.Ctx})
	case node.KindImage:
		*items = append(*items, Item{Ctx: &n.Ctx, Box: n})
	default:
		for _, c := range n.Children {
			collect(c, items)
		}
	}
}

// Transform applies text-transform to s.
func Transform(s string, t style.TextTransform) string {
	switch t {
	case style.TextTransformUppercase:
		return cases.Upper(language.Und).String(s)
	case style.TextTransformLowercase:
		return cases.Lower(language.Und).String(s)
	case style.TextTransformCapitalize:
		return cases.Title(language.Und, cases.NoLower).String(s)
	}
	return s
}

// tabSpaces replaces a preserved tab.
const tabSpaces = "        "

// collapser applies white-space processing across the items of one
// paragraph so that a space ending one item suppresses a space starting
// the next.
type collapser struct {
	mode       style.WhiteSpace
	afterSpace bool
}

func newCollapser(mode style.WhiteSpace) *collapser {
	// Leading white space of a paragraph is dropped.
	return &collapser{mode: mode, afterSpace: true}
}

func (c *collapser) collapse(s string) string {
	switch c.mode {
	case style.WhiteSpacePre, style.WhiteSpacePreWrap:
		s = strings.ReplaceAll(s, "\r\n", "\n")
		s = strings.ReplaceAll(s, "\t", tabSpaces)
		if s != "" {
			c.afterSpace = false
		}
		return s
	}

	keepNewlines := c.mode == style.WhiteSpacePreLine
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\n' && keepNewlines:
			// Spaces before a preserved newline are removed.
			out := strings.TrimRight(b.String(), " ")
			b.Reset()
			b.WriteString(out)
			b.WriteRune('\n')
			c.afterSpace = true
		case r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f':
			if !c.afterSpace {
				b.WriteByte(' ')
				c.afterSpace = true
			}
		default:
			b.WriteRune(r)
			c.afterSpace = false
		}
	}
	return b.String()
}

// box marks an atomic inline in the paragraph text.
const boxRune = '\uFFFC'

func isSpace(r rune) bool {
	return r == ' ' || r == '\u00A0' || r == '\n' || r == '\t' || r == '\u3000'
}

// wraps reports whether soft wrap opportunities are honored.
func wraps(s *style.InheritedStyle) bool {
	if s.TextWrap == style.TextWrapNoWrap {
		return false
	}
	return s.WhiteSpace != style.WhiteSpaceNoWrap && s.WhiteSpace != style.WhiteSpacePre
}
