package inline

import (
	"math"

	"github.com/go-text/typesetting/font"

	"github.com/gogpu/nodeimg/internal/tree"
	"github.com/gogpu/nodeimg/style"
	"github.com/gogpu/nodeimg/text"
)

// DefaultEllipsis ends truncated text unless line-clamp names another.
const DefaultEllipsis = "…"

// Glyph is a positioned glyph. X is the pen position of the glyph origin
// and Y its baseline, both in paragraph space.
type Glyph struct {
	ID   font.GID
	X, Y float32
}

// GlyphRun is a sequence of glyphs drawn with one face.
type GlyphRun struct {
	Face   *font.Face
	Size   float32
	Glyphs []Glyph
}

// Fragment is the part of one span that falls on one line: a run of
// glyphs, or an atomic inline box.
type Fragment struct {
	Ctx *tree.Context
	// Box is set for atomic inlines; the rectangle is its margin box.
	Box  *tree.Node
	Text string

	// X, Y, W, H is the fragment's content area in paragraph space.
	X, Y, W, H float32
	Baseline   float32
	Metrics    text.Metrics
	Run        GlyphRun
}

// Layout is a paragraph broken and placed at one width.
type Layout struct {
	Lines     []Line
	Fragments []Fragment
	// Width is the placement width; Height the summed line heights.
	Width, Height float32
	// Truncated reports that content was dropped by the height policy.
	Truncated bool
}

// Size returns the content size of the layout: the widest line, and the
// summed line heights, both rounded up.
func (l *Layout) Size() (w, h float32) {
	for i := range l.Lines {
		w = max(w, l.Lines[i].Width)
	}
	return ceil(w), ceil(l.Height)
}

// Measure breaks the paragraph without placing glyphs and returns its
// content size. The width never exceeds maxWidth.
func (p *Paragraph) Measure(maxWidth float32, limit MaxHeight) (w, h float32) {
	b := p.NewBreaker(maxWidth)
	b.Break(limit, p.lineMetrics)
	var width, height float32
	for _, l := range b.Lines() {
		width = max(width, l.Width)
		height += l.Height
	}
	return min(ceil(width), maxWidth), ceil(height)
}

// Layout breaks the paragraph at width and places every glyph. Ellipsis,
// balancing and alignment are applied.
func (p *Paragraph) Layout(width float32, limit MaxHeight) *Layout {
	b := p.NewBreaker(width)
	b.Break(limit, p.lineMetrics)
	truncated := !b.Done()

	if p.root.Style().TextWrap == style.TextWrapBalance && !truncated {
		b = p.balance(b, width, limit)
	}

	lay := &Layout{Lines: b.Lines(), Width: width, Truncated: truncated}
	if n := len(lay.Lines); n > 0 {
		last := &lay.Lines[n-1]
		if p.wantsEllipsis(truncated, last, width) {
			p.truncate(last, width)
			lay.Truncated = true
		}
	}

	var y float32
	for i := range lay.Lines {
		l := &lay.Lines[i]
		l.Y = y
		p.align(l, width)
		y += l.Height
	}
	lay.Height = y
	if math.IsInf(float64(width), 1) {
		lay.Width, _ = lay.Size()
	}
	for i := range lay.Lines {
		lay.Fragments = p.place(&lay.Lines[i], lay.Fragments)
	}
	return lay
}

// balance narrows the width as far as possible without adding lines.
func (p *Paragraph) balance(b *Breaker, width float32, limit MaxHeight) *Breaker {
	count := len(b.Lines())
	if count < 2 || math.IsInf(float64(width), 1) {
		return b
	}
	lo, hi := float32(0), width
	for range 12 {
		mid := (lo + hi) / 2
		t := p.NewBreaker(mid)
		t.Break(limit, p.lineMetrics)
		if t.Done() && len(t.Lines()) <= count {
			hi = mid
		} else {
			lo = mid
		}
	}
	t := p.NewBreaker(hi)
	t.Break(limit, p.lineMetrics)
	if !t.Done() || len(t.Lines()) > count {
		return b
	}
	return t
}

func (p *Paragraph) wantsEllipsis(truncated bool, last *Line, width float32) bool {
	s := p.root.Style()
	_, clamped := s.LineClamp.Get()
	if s.TextOverflow != style.TextOverflowEllipsis && !clamped {
		return false
	}
	return truncated || last.Width > width+tolerance
}

func (p *Paragraph) ellipsis() string {
	if clamp, ok := p.root.Style().LineClamp.Get(); ok && clamp.Ellipsis != "" {
		return clamp.Ellipsis
	}
	return DefaultEllipsis
}

// shapeEllipsis shapes the ellipsis string with the root's font.
func (p *Paragraph) shapeEllipsis() ([]text.Run, float32) {
	session := p.root.Ctx.Global.Text
	if session == nil {
		return nil, 0
	}
	runs := session.Shape([]rune(p.ellipsis()), p.root.Ctx.TextQuery())
	var w float32
	for _, r := range runs {
		w += r.Advance
	}
	return runs, w
}

// truncate shortens l by graphemes until its text plus the ellipsis fits.
func (p *Paragraph) truncate(l *Line, width float32) {
	_, ew := p.shapeEllipsis()
	end := l.Start
	for _, g := range p.graphemes {
		if g <= l.Start {
			continue
		}
		if g > l.ContentEnd {
			break
		}
		content := p.hangingEnd(l.Start, g)
		if p.width(l.Start, content)+ew > width+tolerance {
			break
		}
		end = g
	}
	l.ContentEnd = p.hangingEnd(l.Start, end)
	l.Width = p.width(l.Start, l.ContentEnd) + ew
	l.Ellipsis = true
	l.Forced = true
}

// align sets the line's start offset and justification gap.
func (p *Paragraph) align(l *Line, width float32) {
	if math.IsInf(float64(width), 1) {
		return
	}
	free := width - l.Width
	if free <= 0 {
		return
	}
	rtl := p.dir == text.RightToLeft
	switch p.root.Style().TextAlign {
	case style.TextAlignStart:
		if rtl {
			l.X = free
		}
	case style.TextAlignEnd:
		if !rtl {
			l.X = free
		}
	case style.TextAlignRight:
		l.X = free
	case style.TextAlignCenter:
		l.X = free / 2
	case style.TextAlignJustify:
		if l.Forced {
			if rtl {
				l.X = free
			}
			return
		}
		spaces := 0
		for _, r := range p.runes[l.Start:l.ContentEnd] {
			if r == ' ' {
				spaces++
			}
		}
		if spaces > 0 {
			l.gap = free / float32(spaces)
			l.Width = width
		}
	}
}

// lineMetrics computes the line box height from the root strut and the
// spans on the line.
func (p *Paragraph) lineMetrics(l *Line) {
	half := (p.strutHeight - p.strut.Height()) / 2
	above, below := p.strut.Ascent+half, p.strut.Descent+half
	var edge float32 // tallest top or bottom aligned span

	end := max(l.ContentEnd, l.Start)
	for i := p.spanAt(l.Start); i < len(p.spans) && p.spans[i].start < end; i++ {
		s := &p.spans[i]
		a, d := p.extent(s)
		switch s.ctx.Style.VerticalAlign {
		case style.VerticalAlignTop, style.VerticalAlignBottom:
			edge = max(edge, a+d)
			continue
		}
		shift := p.shift(s)
		above = max(above, a+shift)
		below = max(below, d-shift)
	}
	if h := above + below; edge > h {
		// Top/bottom aligned content grows the line away from its edge.
		below += edge - h
	}
	l.Ascent, l.Descent = above, below
	l.Height = above + below
}

// extent returns how far s reaches above and below its own baseline,
// half-leading included.
func (p *Paragraph) extent(s *span) (above, below float32) {
	if s.isBox() {
		return s.boxH, 0
	}
	half := (s.lineHeight - s.metrics.Height()) / 2
	return s.metrics.Ascent + half, s.metrics.Descent + half
}

// shift returns how far the baseline of s is raised above the root
// baseline.
func (p *Paragraph) shift(s *span) float32 {
	fs := s.ctx.Style.FontSize
	switch s.ctx.Style.VerticalAlign {
	case style.VerticalAlignSub:
		return -0.2 * fs
	case style.VerticalAlignSuper:
		return 0.34 * fs
	case style.VerticalAlignMiddle:
		if s.isBox() {
			return p.strut.XHeight/2 - s.boxH/2
		}
		return p.strut.XHeight/2 - (s.metrics.Ascent-s.metrics.Descent)/2
	case style.VerticalAlignTextTop:
		a, _ := p.extent(s)
		return p.strut.Ascent - a
	case style.VerticalAlignTextBottom:
		_, d := p.extent(s)
		return d - p.strut.Descent
	}
	return 0
}

// baseline returns the baseline of s on l in paragraph space.
func (p *Paragraph) baseline(s *span, l *Line) float32 {
	a, d := p.extent(s)
	switch s.ctx.Style.VerticalAlign {
	case style.VerticalAlignTop:
		return l.Y + a
	case style.VerticalAlignBottom:
		return l.Y + l.Height - d
	}
	return l.Y + l.Ascent - p.shift(s)
}

// segment is a glyph run or box clipped to one line.
type segment struct {
	span       *span
	run        *text.Run
	start, end int
}

// place appends the fragments of l to out in visual order.
func (p *Paragraph) place(l *Line, out []Fragment) []Fragment {
	var segs []segment
	for i := p.spanAt(l.Start); i < len(p.spans) && p.spans[i].start < l.ContentEnd; i++ {
		s := &p.spans[i]
		if s.isBox() {
			segs = append(segs, segment{span: s, start: s.start, end: s.end})
			continue
		}
		for ri := range s.runs {
			r := &s.runs[ri]
			a, e := max(r.Start, l.Start), min(r.End, l.ContentEnd)
			if a < e {
				segs = append(segs, segment{span: s, run: r, start: a, end: e})
			}
		}
	}
	if p.dir == text.RightToLeft {
		for i, j := 0, len(segs)-1; i < j; i, j = i+1, j-1 {
			segs[i], segs[j] = segs[j], segs[i]
		}
	}

	pen := l.X
	if l.Ellipsis && p.dir == text.RightToLeft {
		_, ew := p.shapeEllipsis()
		pen += ew
	}
	for _, sg := range segs {
		s := sg.span
		base := p.baseline(s, l)
		f := Fragment{
			Ctx:      s.ctx,
			Box:      s.box,
			Text:     string(p.runes[sg.start:sg.end]),
			X:        pen,
			Baseline: base,
			Metrics:  s.metrics,
		}
		if s.isBox() {
			f.W, f.H = s.boxW, s.boxH
			f.Y = base - s.boxH
			pen += s.boxW
			out = append(out, f)
			continue
		}
		f.Y = base - s.metrics.Ascent
		f.H = s.metrics.Height()
		f.Run = GlyphRun{Face: sg.run.Face, Size: sg.run.Size}
		for _, g := range sg.run.Glyphs {
			if g.Cluster < sg.start || g.Cluster >= sg.end {
				continue
			}
			if p.runes[g.Cluster] != '\n' {
				f.Run.Glyphs = append(f.Run.Glyphs, Glyph{ID: g.ID, X: pen + g.XOffset, Y: base - g.YOffset})
			}
			pen += g.Advance
			if l.gap != 0 && p.runes[g.Cluster] == ' ' {
				pen += l.gap
			}
		}
		f.W = pen - f.X
		out = append(out, f)
	}

	if l.Ellipsis {
		out = p.placeEllipsis(l, out, pen)
	}
	return out
}

func (p *Paragraph) placeEllipsis(l *Line, out []Fragment, pen float32) []Fragment {
	runs, _ := p.shapeEllipsis()
	ctx := &p.root.Ctx
	if i := p.spanAt(max(l.ContentEnd-1, l.Start)); i < len(p.spans) && !p.spans[i].isBox() {
		ctx = p.spans[i].ctx
	}
	if p.dir == text.RightToLeft {
		pen = l.X
	}
	base := l.Y + l.Ascent
	for _, r := range runs {
		f := Fragment{
			Ctx:      ctx,
			Text:     p.ellipsis(),
			X:        pen,
			Y:        base - r.Metrics.Ascent,
			H:        r.Metrics.Height(),
			W:        r.Advance,
			Baseline: base,
			Metrics:  r.Metrics,
			Run:      GlyphRun{Face: r.Face, Size: r.Size},
		}
		x := pen
		for _, g := range r.Glyphs {
			f.Run.Glyphs = append(f.Run.Glyphs, Glyph{ID: g.ID, X: x + g.XOffset, Y: base - g.YOffset})
			x += g.Advance
		}
		pen += r.Advance
		out = append(out, f)
	}
	return out
}

func ceil(v float32) float32 { return float32(math.Ceil(float64(v))) }
