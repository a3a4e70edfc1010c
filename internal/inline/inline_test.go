package inline

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/nodeimg/internal/tree"
	"github.com/gogpu/nodeimg/node"
	"github.com/gogpu/nodeimg/style"
	"github.com/gogpu/nodeimg/text"
)

var metrics = style.Metrics{RootFontSize: 16, DPR: 1, ViewportWidth: 800, ViewportHeight: 600}

var unbounded = float32(math.Inf(1))

func paragraph(t *testing.T, doc *node.Node, sizer BoxSizer) *Paragraph {
	t.Helper()
	reg := text.NewRegistry(nil)
	if err := reg.RegisterDefaults(); err != nil {
		t.Fatalf("RegisterDefaults() error = %v", err)
	}
	g := &tree.Globals{Text: reg.NewSession()}
	root := tree.Build(doc, tree.RootContext(g, metrics, false))
	return NewParagraph(root, sizer)
}

func inlined(n *node.Node) *node.Node {
	return n.WithPreset(style.Style{Display: style.Some(style.DisplayInline)})
}

const words = "one two three four five six"

func TestCollapse(t *testing.T) {
	tests := []struct {
		mode style.WhiteSpace
		in   string
		want string
	}{
		{style.WhiteSpaceNormal, "  a  \n b ", "a b "},
		{style.WhiteSpaceNoWrap, "a \t b", "a b"},
		{style.WhiteSpacePre, "a\tb\r\n", "a" + tabSpaces + "b\n"},
		{style.WhiteSpacePreWrap, "  a  ", "  a  "},
		{style.WhiteSpacePreLine, "a  \n  b", "a\nb"},
	}
	for _, tt := range tests {
		if got := newCollapser(tt.mode).collapse(tt.in); got != tt.want {
			t.Errorf("collapse(%v, %q) = %q, want %q", tt.mode, tt.in, got, tt.want)
		}
	}
}

func TestCollapseAcrossItems(t *testing.T) {
	c := newCollapser(style.WhiteSpaceNormal)
	got := c.collapse("a ") + c.collapse(" b")
	if got != "a b" {
		t.Errorf("collapsed items = %q, want %q", got, "a b")
	}
}

func TestTransform(t *testing.T) {
	tests := []struct {
		in   string
		tt   style.TextTransform
		want string
	}{
		{"straße", style.TextTransformUppercase, "STRASSE"},
		{"ABC", style.TextTransformLowercase, "abc"},
		{"hello wORLD", style.TextTransformCapitalize, "Hello WORLD"},
		{"As Is", style.TextTransformNone, "As Is"},
	}
	for _, tt := range tests {
		if got := Transform(tt.in, tt.tt); got != tt.want {
			t.Errorf("Transform(%q, %v) = %q, want %q", tt.in, tt.tt, got, tt.want)
		}
	}
}

func TestMergeBreaks(t *testing.T) {
	got := mergeBreaks(
		[]text.Break{{Offset: 3}, {Offset: 5, Mandatory: true}},
		[]int{1, 2, 3, 4, 5},
	)
	want := []text.Break{{Offset: 1}, {Offset: 2}, {Offset: 3}, {Offset: 4}, {Offset: 5, Mandatory: true}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mergeBreaks() mismatch (-want +got):\n%s", diff)
	}
}

func TestMaxHeightPolicies(t *testing.T) {
	p := paragraph(t, node.Text(words), nil)
	lh := p.strutHeight

	tests := []struct {
		name      string
		limit     MaxHeight
		wantLines int
	}{
		{"unlimited", Unlimited, 6},
		{"lines", Lines(2), 2},
		{"lines zero", Lines(0), 0},
		{"absolute reverts overshoot", Absolute(2.5 * lh), 2},
		{"absolute exact", Absolute(3 * lh), 3},
		{"absolute too short", Absolute(lh / 2), 0},
		{"both by lines", Both(10*lh, 3), 3},
		{"both by height", Both(1.5*lh, 4), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := p.NewBreaker(1)
			b.Break(tt.limit, p.lineMetrics)
			lines := b.Lines()
			if len(lines) != tt.wantLines {
				t.Fatalf("len(lines) = %d, want %d", len(lines), tt.wantLines)
			}
			var total float32
			for _, l := range lines {
				total += l.Height
			}
			if h, ok := tt.limit.Height(); ok && total > h+tolerance {
				t.Errorf("summed height %v exceeds %v", total, h)
			}
		})
	}
}

func TestBreakerRevert(t *testing.T) {
	p := paragraph(t, node.Text(words), nil)
	b := p.NewBreaker(1)
	b.Next()
	b.Next()
	second := *b.Last()

	b.Revert()
	if len(b.Lines()) != 1 {
		t.Fatalf("len(lines) after Revert = %d, want 1", len(b.Lines()))
	}
	if !b.Next() {
		t.Fatal("Next() after Revert produced no line")
	}
	if got := *b.Last(); got.Start != second.Start || got.End != second.End {
		t.Errorf("re-broken line = [%d,%d), want [%d,%d)", got.Start, got.End, second.Start, second.End)
	}
}

func TestBreakerEndsAtWords(t *testing.T) {
	p := paragraph(t, node.Text(words), nil)
	b := p.NewBreaker(1)
	b.Break(Unlimited, p.lineMetrics)

	var got []string
	for _, l := range b.Lines() {
		got = append(got, string(p.runes[l.Start:l.ContentEnd]))
	}
	want := []string{"one", "two", "three", "four", "five", "six"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
	if !b.Done() {
		t.Error("breaker not done after an unlimited break")
	}
}

func TestForcedBreaks(t *testing.T) {
	pre := style.Style{WhiteSpace: style.Some(style.WhiteSpacePre)}
	p := paragraph(t, node.Text("ab\ncd\n\nef").WithStyle(pre), nil)
	b := p.NewBreaker(unbounded)
	b.Break(Unlimited, p.lineMetrics)
	if n := len(b.Lines()); n != 4 {
		t.Errorf("len(lines) = %d, want 4", n)
	}

	// Collapsed text ignores the newline entirely.
	p = paragraph(t, node.Text("ab\ncd"), nil)
	b = p.NewBreaker(unbounded)
	b.Break(Unlimited, p.lineMetrics)
	if n := len(b.Lines()); n != 1 {
		t.Errorf("collapsed len(lines) = %d, want 1", n)
	}
}

func TestNoWrapKeepsOneLine(t *testing.T) {
	nowrap := style.Style{WhiteSpace: style.Some(style.WhiteSpaceNoWrap)}
	p := paragraph(t, node.Text(words).WithStyle(nowrap), nil)
	b := p.NewBreaker(10)
	b.Break(Unlimited, p.lineMetrics)
	if n := len(b.Lines()); n != 1 {
		t.Errorf("len(lines) = %d, want 1", n)
	}
}

func TestOverflowWrapSplitsWords(t *testing.T) {
	anywhere := style.Style{OverflowWrap: style.Some(style.OverflowWrapAnywhere)}
	p := paragraph(t, node.Text("aaaaaaaaaaaaaaaaaaaa").WithStyle(anywhere), nil)
	b := p.NewBreaker(30)
	b.Break(Unlimited, p.lineMetrics)
	if len(b.Lines()) < 2 {
		t.Fatalf("len(lines) = %d, want the word split", len(b.Lines()))
	}
	for i, l := range b.Lines() {
		if l.Width > 30+tolerance {
			t.Errorf("line %d width = %v, want <= 30", i, l.Width)
		}
	}

	p = paragraph(t, node.Text("aaaaaaaaaaaaaaaaaaaa"), nil)
	b = p.NewBreaker(30)
	b.Break(Unlimited, p.lineMetrics)
	if n := len(b.Lines()); n != 1 {
		t.Errorf("without overflow-wrap len(lines) = %d, want 1", n)
	}
}

func TestMeasure(t *testing.T) {
	p := paragraph(t, node.Text("hello world"), nil)

	w, h := p.Measure(unbounded, Unlimited)
	if w <= 0 || w != ceil(w) {
		t.Errorf("Measure() width = %v, want a positive whole number", w)
	}
	if want := ceil(p.strutHeight); h != want {
		t.Errorf("Measure() height = %v, want %v", h, want)
	}

	nw, nh := p.Measure(w/2, Unlimited)
	if nw > w/2 {
		t.Errorf("narrow width = %v, want <= %v", nw, w/2)
	}
	if nh <= h {
		t.Errorf("narrow height = %v, want more than one line", nh)
	}

	empty := paragraph(t, node.Text("   "), nil)
	if w, h := empty.Measure(100, Unlimited); w != 0 || h != 0 {
		t.Errorf("empty Measure() = %v x %v, want 0 x 0", w, h)
	}
}

func TestEllipsis(t *testing.T) {
	st := style.Style{
		WhiteSpace:   style.Some(style.WhiteSpaceNoWrap),
		TextOverflow: style.Some(style.TextOverflowEllipsis),
	}
	p := paragraph(t, node.Text("The quick brown fox jumps over the lazy dog").WithStyle(st), nil)
	lay := p.Layout(80, Unlimited)

	if len(lay.Lines) != 1 || !lay.Truncated {
		t.Fatalf("lines = %d, truncated = %v, want one truncated line", len(lay.Lines), lay.Truncated)
	}
	if w := lay.Lines[0].Width; w > 80+tolerance {
		t.Errorf("truncated width = %v, want <= 80", w)
	}
	last := lay.Fragments[len(lay.Fragments)-1]
	if last.Text != DefaultEllipsis {
		t.Errorf("last fragment = %q, want the ellipsis", last.Text)
	}
}

func TestLineClampEllipsis(t *testing.T) {
	st := style.Style{LineClamp: style.Some(style.LineClamp{Count: 2, Ellipsis: "..."})}
	p := paragraph(t, node.Text(words).WithStyle(st), nil)
	lay := p.Layout(60, Lines(2))

	if len(lay.Lines) != 2 {
		t.Fatalf("len(lines) = %d, want 2", len(lay.Lines))
	}
	if !lay.Lines[1].Ellipsis || lay.Lines[0].Ellipsis {
		t.Error("ellipsis should end the last line only")
	}
	if last := lay.Fragments[len(lay.Fragments)-1]; last.Text != "..." {
		t.Errorf("last fragment = %q, want custom ellipsis", last.Text)
	}
}

func TestAlignment(t *testing.T) {
	const width = 200
	tests := []struct {
		align style.TextAlign
		text  string
		want  func(free float32) float32
	}{
		{style.TextAlignStart, "hi", func(float32) float32 { return 0 }},
		{style.TextAlignLeft, "hi", func(float32) float32 { return 0 }},
		{style.TextAlignEnd, "hi", func(f float32) float32 { return f }},
		{style.TextAlignRight, "hi", func(f float32) float32 { return f }},
		{style.TextAlignCenter, "hi", func(f float32) float32 { return f / 2 }},
		{style.TextAlignStart, "שלום", func(f float32) float32 { return f }},
	}
	for _, tt := range tests {
		st := style.Style{TextAlign: style.Some(tt.align)}
		lay := paragraph(t, node.Text(tt.text).WithStyle(st), nil).Layout(width, Unlimited)
		l := lay.Lines[0]
		if want := tt.want(width - l.Width); math.Abs(float64(l.X-want)) > 1e-3 {
			t.Errorf("%v %q: line X = %v, want %v", tt.align, tt.text, l.X, want)
		}
	}
}

func TestJustify(t *testing.T) {
	st := style.Style{TextAlign: style.Some(style.TextAlignJustify)}
	p := paragraph(t, node.Text("aa bb cc dd ee ff gg").WithStyle(st), nil)
	lay := p.Layout(70, Unlimited)
	if len(lay.Lines) < 2 {
		t.Fatalf("len(lines) = %d, want at least 2", len(lay.Lines))
	}
	if w := lay.Lines[0].Width; w != 70 {
		t.Errorf("justified line width = %v, want 70", w)
	}
	last := lay.Lines[len(lay.Lines)-1]
	if last.X != 0 || last.gap != 0 {
		t.Errorf("last line X = %v gap = %v, want start aligned", last.X, last.gap)
	}
}

func TestBalance(t *testing.T) {
	const s = "aaa bbb ccc ddd eee fff ggg"
	greedy := paragraph(t, node.Text(s), nil).Layout(120, Unlimited)
	st := style.Style{TextWrap: style.Some(style.TextWrapBalance)}
	balanced := paragraph(t, node.Text(s).WithStyle(st), nil).Layout(120, Unlimited)

	if len(balanced.Lines) != len(greedy.Lines) {
		t.Errorf("balanced lines = %d, want %d", len(balanced.Lines), len(greedy.Lines))
	}
	gw, _ := greedy.Size()
	bw, _ := balanced.Size()
	if bw > gw+1 {
		t.Errorf("balanced width = %v, want <= greedy %v", bw, gw)
	}
}

func TestVerticalAlignSuper(t *testing.T) {
	block := style.Style{Display: style.Some(style.DisplayBlock)}
	super := style.Style{VerticalAlign: style.Some(style.VerticalAlignSuper)}
	doc := node.Container(
		inlined(node.Text("x")),
		inlined(node.Text("2")).WithStyle(super),
	).WithStyle(block)

	p := paragraph(t, doc, nil)
	lay := p.Layout(unbounded, Unlimited)
	if len(lay.Lines) != 1 || len(lay.Fragments) != 2 {
		t.Fatalf("lines = %d, fragments = %d, want 1 and 2", len(lay.Lines), len(lay.Fragments))
	}
	if h := lay.Lines[0].Height; h <= p.strutHeight {
		t.Errorf("line height = %v, want taller than %v", h, p.strutHeight)
	}
	base, raised := lay.Fragments[0].Baseline, lay.Fragments[1].Baseline
	if raised >= base {
		t.Errorf("superscript baseline %v not above %v", raised, base)
	}
}

func TestInlineBox(t *testing.T) {
	block := style.Style{Display: style.Some(style.DisplayBlock)}
	doc := node.Container(
		inlined(node.Text("icon ")),
		inlined(node.Image("logo")),
	).WithStyle(block)

	p := paragraph(t, doc, func(*tree.Node) (float32, float32) { return 30, 40 })
	lay := p.Layout(unbounded, Unlimited)
	if len(lay.Lines) != 1 {
		t.Fatalf("len(lines) = %d, want 1", len(lay.Lines))
	}
	if a := lay.Lines[0].Ascent; a < 40 {
		t.Errorf("line ascent = %v, want >= box height 40", a)
	}
	var box *Fragment
	for i := range lay.Fragments {
		if lay.Fragments[i].Box != nil {
			box = &lay.Fragments[i]
		}
	}
	if box == nil {
		t.Fatal("no fragment for the inline box")
	}
	if box.W != 30 || box.H != 40 {
		t.Errorf("box fragment = %vx%v, want 30x40", box.W, box.H)
	}
	if box.Y+box.H != box.Baseline {
		t.Errorf("box bottom %v, want on the baseline %v", box.Y+box.H, box.Baseline)
	}
}

func TestGlyphsFollowPen(t *testing.T) {
	p := paragraph(t, node.Text("abc"), nil)
	lay := p.Layout(unbounded, Unlimited)
	if len(lay.Fragments) != 1 {
		t.Fatalf("len(fragments) = %d, want 1", len(lay.Fragments))
	}
	glyphs := lay.Fragments[0].Run.Glyphs
	if len(glyphs) != 3 {
		t.Fatalf("len(glyphs) = %d, want 3", len(glyphs))
	}
	for i := 1; i < len(glyphs); i++ {
		if glyphs[i].X <= glyphs[i-1].X {
			t.Errorf("glyph %d x = %v, not after %v", i, glyphs[i].X, glyphs[i-1].X)
		}
	}
}
