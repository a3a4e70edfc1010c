package inline

import (
	"math"
	"sort"
)

// MaxHeight bounds how many lines a paragraph may produce. The zero value
// is unlimited.
type MaxHeight struct {
	height    float32
	lines     int
	hasHeight bool
	hasLines  bool
}

// Unlimited breaks every line.
var Unlimited = MaxHeight{}

// Lines stops after n lines.
func Lines(n int) MaxHeight { return MaxHeight{lines: max(n, 0), hasLines: true} }

// Absolute stops once the summed line height reaches h. A line that
// pushes the total past h is reverted.
func Absolute(h float32) MaxHeight { return MaxHeight{height: h, hasHeight: true} }

// Both applies Lines(n) and Absolute(h) together.
func Both(h float32, n int) MaxHeight {
	return MaxHeight{height: h, lines: max(n, 0), hasHeight: true, hasLines: true}
}

// Height returns the height bound, if any.
func (m MaxHeight) Height() (float32, bool) { return m.height, m.hasHeight }

// LineCount returns the line bound, if any.
func (m MaxHeight) LineCount() (int, bool) { return m.lines, m.hasLines }

func (m MaxHeight) limits() (h float32, n int) {
	h, n = float32(math.Inf(1)), math.MaxInt
	if m.hasHeight {
		h = m.height
	}
	if m.hasLines {
		n = m.lines
	}
	return h, n
}

// Line is one broken line of a paragraph.
type Line struct {
	// Start and End delimit the line's runes; End is the break offset.
	Start, End int
	// ContentEnd excludes hanging spaces and the forced newline.
	ContentEnd int
	// Width is the advance of [Start, ContentEnd).
	Width float32
	// Forced reports that the line ends at a mandatory break or at the end
	// of the paragraph.
	Forced bool

	// Filled in by line metrics. Ascent is the distance from the line top
	// to the baseline.
	Ascent, Descent float32
	Height          float32

	// Filled in by layout.
	X, Y     float32
	Ellipsis bool
	// gap is the extra advance given to each space by justification.
	gap float32
}

// Breaker breaks a paragraph into lines one at a time. Each committed line
// can be taken back with Revert, which restores the cursor to where the
// line began.
type Breaker struct {
	p     *Paragraph
	width float32
	pos   int
	lines []Line
}

// NewBreaker returns a breaker filling lines up to width. A width of
// +Inf only breaks at forced breaks.
func (p *Paragraph) NewBreaker(width float32) *Breaker {
	return &Breaker{p: p, width: width}
}

// Done reports whether all text has been placed.
func (b *Breaker) Done() bool { return b.pos >= len(b.p.runes) }

// Lines returns the committed lines.
func (b *Breaker) Lines() []Line { return b.lines }

// Last returns the most recently committed line.
func (b *Breaker) Last() *Line {
	if len(b.lines) == 0 {
		return nil
	}
	return &b.lines[len(b.lines)-1]
}

// Revert removes the last committed line.
func (b *Breaker) Revert() {
	if len(b.lines) == 0 {
		return
	}
	last := b.lines[len(b.lines)-1]
	b.lines = b.lines[:len(b.lines)-1]
	b.pos = last.Start
}

// tolerance absorbs float error when comparing advances with the width.
const tolerance = 0.01

// Next commits the next line and reports whether one was produced.
func (b *Breaker) Next() bool {
	p := b.p
	if b.Done() {
		return false
	}
	start := b.pos
	i := sort.Search(len(p.breaks), func(i int) bool { return p.breaks[i].Offset > start })

	end, forced := -1, false
	for ; i < len(p.breaks); i++ {
		br := p.breaks[i]
		w := p.width(start, p.hangingEnd(start, br.Offset))
		if w > b.width+tolerance {
			if end < 0 {
				// Nothing fits: overflow, or split the word when allowed.
				end, forced = br.Offset, br.Mandatory || br.Offset == len(p.runes)
				if p.emergency() {
					if g := b.splitWord(start, br.Offset); g < br.Offset {
						end, forced = g, false
					}
				}
			}
			break
		}
		end, forced = br.Offset, br.Mandatory || br.Offset == len(p.runes)
		if br.Mandatory {
			break
		}
	}
	if end < 0 {
		end, forced = len(p.runes), true
	}

	content := p.hangingEnd(start, end)
	b.lines = append(b.lines, Line{
		Start:      start,
		End:        end,
		ContentEnd: content,
		Width:      p.width(start, content),
		Forced:     forced,
	})
	b.pos = end
	return true
}

// splitWord returns the furthest grapheme boundary in (start, limit] that
// fits the width, and at least the first one.
func (b *Breaker) splitWord(start, limit int) int {
	p := b.p
	gs := p.graphemes
	i := sort.SearchInts(gs, start+1)
	best := -1
	for ; i < len(gs) && gs[i] <= limit; i++ {
		if best >= 0 && p.width(start, gs[i]) > b.width+tolerance {
			break
		}
		best = gs[i]
	}
	if best < 0 {
		return limit
	}
	return best
}

// Break runs the breaker under limit. Line heights come from measure,
// which is called for every committed line.
func (b *Breaker) Break(limit MaxHeight, measure func(*Line)) {
	maxH, maxN := limit.limits()
	var total float32
	for total < maxH && len(b.lines) < maxN && b.Next() {
		measure(b.Last())
		total += b.Last().Height
	}
	if total > maxH+tolerance {
		b.Revert()
	}
}
