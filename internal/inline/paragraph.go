package inline

import (
	"github.com/gogpu/nodeimg/internal/tree"
	"github.com/gogpu/nodeimg/style"
	"github.com/gogpu/nodeimg/text"
)

// BoxSizer returns the outer (margin box) size of an atomic inline box.
type BoxSizer func(n *tree.Node) (w, h float32)

// span is a contiguous range of the paragraph text sharing one context.
type span struct {
	start, end int
	ctx        *tree.Context
	box        *tree.Node
	boxW, boxH float32

	runs       []text.Run
	metrics    text.Metrics
	lineHeight float32
}

func (s *span) isBox() bool { return s.box != nil }

// Paragraph is the shaped content of one inline root. It is built once
// and can be broken into lines at any number of widths.
type Paragraph struct {
	root  *tree.Node
	runes []rune
	spans []span

	// adv[i] is the advance attributed to rune i, spacing included. A
	// cluster's advance sits on its first rune.
	adv    []float32
	prefix []float32

	breaks    []text.Break
	graphemes []int
	dir       text.Dir

	strut text.Metrics
	// strutHeight is the root's own line height.
	strutHeight float32
}

// NewParagraph collects, transforms, collapses and shapes the content of
// root. sizer measures atomic inline boxes and may be nil when the
// paragraph holds none.
func NewParagraph(root *tree.Node, sizer BoxSizer) *Paragraph {
	rs := root.Style()
	p := &Paragraph{root: root}
	session := root.Ctx.Global.Text

	c := newCollapser(rs.WhiteSpace)
	for _, it := range Collect(root) {
		start := len(p.runes)
		if it.Box != nil {
			p.runes = append(p.runes, boxRune)
			s := span{start: start, end: start + 1, ctx: it.Ctx, box: it.Box}
			if sizer != nil {
				s.boxW, s.boxH = sizer(it.Box)
			}
			c.afterSpace = false
			p.spans = append(p.spans, s)
			continue
		}
		str := c.collapse(Transform(it.Text, it.Ctx.Style.TextTransform))
		if str == "" {
			continue
		}
		p.runes = append(p.runes, []rune(str)...)
		p.spans = append(p.spans, span{start: start, end: len(p.runes), ctx: it.Ctx})
	}
	p.trimTrailingSpace(rs.WhiteSpace)

	q := root.Ctx.TextQuery()
	if session != nil {
		p.strut = session.Metrics(q)
	} else {
		p.strut = text.Metrics{Ascent: q.Size * 0.8, Descent: q.Size * 0.2}
	}
	p.strutHeight = root.Ctx.LineHeight()

	p.adv = make([]float32, len(p.runes))
	for i := range p.spans {
		p.shape(&p.spans[i], session)
	}
	p.prefix = make([]float32, len(p.runes)+1)
	for i, a := range p.adv {
		p.prefix[i+1] = p.prefix[i] + a
	}

	p.dir = text.Direction(p.runes)
	p.graphemes = text.Graphemes(p.runes)
	p.breaks = p.opportunities(rs)
	return p
}

// trimTrailingSpace drops the collapsible space that ends the paragraph.
func (p *Paragraph) trimTrailingSpace(ws style.WhiteSpace) {
	if ws == style.WhiteSpacePre || ws == style.WhiteSpacePreWrap {
		return
	}
	for len(p.spans) > 0 {
		last := &p.spans[len(p.spans)-1]
		if last.isBox() || last.end == 0 || p.runes[last.end-1] != ' ' {
			return
		}
		last.end--
		p.runes = p.runes[:last.end]
		if last.end == last.start {
			p.spans = p.spans[:len(p.spans)-1]
		}
	}
}

func (p *Paragraph) shape(s *span, session *text.Session) {
	if s.isBox() {
		p.adv[s.start] = s.boxW
		return
	}
	ctx := s.ctx
	q := ctx.TextQuery()
	s.lineHeight = ctx.LineHeight()
	if session == nil {
		s.metrics = text.Metrics{Ascent: q.Size * 0.8, Descent: q.Size * 0.2}
		return
	}
	s.metrics = session.Metrics(q)

	letter := ctx.Px(ctx.Style.LetterSpacing, ctx.Style.FontSize)
	word := ctx.Px(ctx.Style.WordSpacing, ctx.Style.FontSize)
	s.runs = session.Shape(p.runes[s.start:s.end], q)
	for ri := range s.runs {
		r := &s.runs[ri]
		r.Start += s.start
		r.End += s.start
		for gi := range r.Glyphs {
			g := &r.Glyphs[gi]
			g.Cluster += s.start
			if p.runes[g.Cluster] == '\n' {
				g.Advance = 0
				continue
			}
			if letter != 0 {
				g.Advance += letter
			}
			if word != 0 && p.runes[g.Cluster] == ' ' {
				g.Advance += word
			}
			p.adv[g.Cluster] += g.Advance
		}
	}
}

// opportunities returns the offsets a line may end at.
func (p *Paragraph) opportunities(rs *style.InheritedStyle) []text.Break {
	uax := text.Breaks(p.runes)
	if !wraps(rs) {
		// Only forced breaks survive.
		out := uax[:0:0]
		for _, b := range uax {
			if b.Mandatory || b.Offset == len(p.runes) {
				out = append(out, b)
			}
		}
		return out
	}
	switch rs.WordBreak {
	case style.WordBreakBreakAll:
		return mergeBreaks(uax, p.graphemes)
	case style.WordBreakKeepAll:
		// Breaks between ideographs are dropped; spaces still break.
		out := uax[:0:0]
		for _, b := range uax {
			if b.Mandatory || b.Offset == len(p.runes) || (b.Offset > 0 && isSpace(p.runes[b.Offset-1])) {
				out = append(out, b)
			}
		}
		return out
	}
	return uax
}

// mergeBreaks adds a soft opportunity at every grapheme boundary.
func mergeBreaks(breaks []text.Break, graphemes []int) []text.Break {
	out := make([]text.Break, 0, len(breaks)+len(graphemes))
	i, j := 0, 0
	for i < len(breaks) || j < len(graphemes) {
		switch {
		case j == len(graphemes) || (i < len(breaks) && breaks[i].Offset <= graphemes[j]):
			if i < len(breaks) && j < len(graphemes) && breaks[i].Offset == graphemes[j] {
				j++
			}
			out = append(out, breaks[i])
			i++
		default:
			out = append(out, text.Break{Offset: graphemes[j]})
			j++
		}
	}
	return out
}

// emergency reports whether words may be split at any grapheme when they
// do not fit on a line by themselves.
func (p *Paragraph) emergency() bool {
	s := p.root.Style()
	return s.OverflowWrap != style.OverflowWrapNormal || s.WordBreak == style.WordBreakBreakWord
}

// width returns the advance of runes [from, to).
func (p *Paragraph) width(from, to int) float32 {
	return p.prefix[to] - p.prefix[from]
}

// hangingEnd returns the end of [from, to) without the trailing spaces
// and forced newline that hang past the line edge.
func (p *Paragraph) hangingEnd(from, to int) int {
	for to > from {
		switch p.runes[to-1] {
		case ' ', '\t', '\n':
			to--
			continue
		}
		break
	}
	return to
}

// Len returns the number of runes in the paragraph text.
func (p *Paragraph) Len() int { return len(p.runes) }

// Text returns the processed paragraph text, with U+FFFC standing in for
// atomic inline boxes.
func (p *Paragraph) Text() string { return string(p.runes) }

// spanAt returns the index of the span containing rune i.
func (p *Paragraph) spanAt(i int) int {
	lo, hi := 0, len(p.spans)
	for lo < hi {
		mid := (lo + hi) / 2
		if p.spans[mid].end <= i {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}
