package layout

import (
	"image"
	"testing"

	"github.com/gogpu/nodeimg/internal/tree"
	"github.com/gogpu/nodeimg/node"
	"github.com/gogpu/nodeimg/resource"
	"github.com/gogpu/nodeimg/style"
	"github.com/gogpu/nodeimg/text"
)

func solve(t *testing.T, doc *node.Node, m style.Metrics, vp Viewport, images map[string]*resource.Image) *Box {
	t.Helper()
	reg := text.NewRegistry(nil)
	if err := reg.RegisterDefaults(); err != nil {
		t.Fatalf("RegisterDefaults() error = %v", err)
	}
	g := &tree.Globals{Text: reg.NewSession(), Images: images}
	root := tree.Build(doc, tree.RootContext(g, m, false))
	box, err := Solve(root, vp)
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	return box
}

var metrics = style.Metrics{RootFontSize: 16, DPR: 1}

func sized(w, h float32) style.Style {
	return style.Style{Width: style.Some(style.Px(w)), Height: style.Some(style.Px(h))}
}

func TestFixedContainer(t *testing.T) {
	box := solve(t, node.Container().WithStyle(sized(100, 100)), metrics, Viewport{}, nil)
	if box.W != 100 || box.H != 100 {
		t.Errorf("size = %vx%v, want 100x100", box.W, box.H)
	}
}

func TestViewportWidthFillsRoot(t *testing.T) {
	box := solve(t, node.Container(), metrics, Viewport{Width: 320}, nil)
	if box.W != 320 {
		t.Errorf("W = %v, want 320", box.W)
	}
}

func TestRowGap(t *testing.T) {
	s := style.Style{ColumnGap: style.Some(style.Px(10))}
	doc := node.Container(
		node.Container().WithStyle(sized(20, 20)),
		node.Container().WithStyle(sized(20, 20)),
	).WithStyle(s)
	box := solve(t, doc, metrics, Viewport{}, nil)
	if got := box.Children[1].X; got != 30 {
		t.Errorf("second child X = %v, want 30", got)
	}
	if box.W != 50 {
		t.Errorf("container W = %v, want 50", box.W)
	}
}

func TestBlockStacksChildren(t *testing.T) {
	s := style.Style{Display: style.Some(style.DisplayBlock), Width: style.Some(style.Px(80))}
	doc := node.Container(
		node.Container().WithStyle(style.Style{Height: style.Some(style.Px(20))}),
		node.Container().WithStyle(style.Style{Height: style.Some(style.Px(30))}),
	).WithStyle(s)
	box := solve(t, doc, metrics, Viewport{}, nil)
	first, second := box.Children[0], box.Children[1]
	if first.W != 80 {
		t.Errorf("first child W = %v, want 80", first.W)
	}
	if second.Y != 20 {
		t.Errorf("second child Y = %v, want 20", second.Y)
	}
	if box.H != 50 {
		t.Errorf("container H = %v, want 50", box.H)
	}
}

func TestBoxRects(t *testing.T) {
	s := sized(100, 50)
	s.Padding = style.AllSides(style.Some(style.Px(10)))
	s.BorderWidth = style.AllSides(style.Some(style.Px(2)))
	box := solve(t, node.Container().WithStyle(s), metrics, Viewport{}, nil)

	content := box.ContentRect()
	if content.X != 12 || content.Y != 12 || content.W != 76 || content.H != 26 {
		t.Errorf("ContentRect() = %+v, want {12 12 76 26}", content)
	}
	padding := box.PaddingRect()
	if padding.W != 96 || padding.H != 46 {
		t.Errorf("PaddingRect() = %+v, want 96x46", padding)
	}
}

func TestContentBoxSizing(t *testing.T) {
	s := sized(100, 50)
	s.BoxSizing = style.Some(style.BoxSizingContentBox)
	s.Padding = style.AllSides(style.Some(style.Px(10)))
	box := solve(t, node.Container().WithStyle(s), metrics, Viewport{}, nil)
	if box.W != 120 || box.H != 70 {
		t.Errorf("size = %vx%v, want 120x70", box.W, box.H)
	}
}

func TestAbsolutePosition(t *testing.T) {
	child := sized(10, 10)
	child.Position = style.Some(style.PositionAbsolute)
	child.Inset.Left = style.Some(style.Px(5))
	child.Inset.Top = style.Some(style.Px(7))
	doc := node.Container(node.Container().WithStyle(child)).WithStyle(sized(100, 100))
	box := solve(t, doc, metrics, Viewport{}, nil)
	c := box.Children[0]
	if c.X != 5 || c.Y != 7 {
		t.Errorf("position = (%v, %v), want (5, 7)", c.X, c.Y)
	}
}

func TestImageNaturalSize(t *testing.T) {
	images := map[string]*resource.Image{
		"a.png": resource.NewImage(image.NewRGBA(image.Rect(0, 0, 10, 5))),
	}
	m := metrics
	m.DPR = 2
	box := solve(t, node.Container(node.Image("a.png")), m, Viewport{}, images)
	img := box.Children[0]
	if img.Image == nil {
		t.Fatal("image not resolved")
	}
	if img.W != 20 || img.H != 10 {
		t.Errorf("image size = %vx%v, want 20x10", img.W, img.H)
	}
}

func TestImageSizeOverride(t *testing.T) {
	images := map[string]*resource.Image{
		"a.png": resource.NewImage(image.NewRGBA(image.Rect(0, 0, 10, 5))),
	}
	box := solve(t, node.Container(node.Image("a.png").WithSize(40, 8)), metrics, Viewport{}, images)
	img := box.Children[0]
	if img.W != 40 || img.H != 8 {
		t.Errorf("image size = %vx%v, want 40x8", img.W, img.H)
	}
}

func TestMissingImageMeasuresZero(t *testing.T) {
	box := solve(t, node.Container(node.Image("missing.png")), metrics, Viewport{}, nil)
	img := box.Children[0]
	if img.Image != nil {
		t.Errorf("Image = %v, want nil", img.Image)
	}
	if img.W != 0 || img.H != 0 {
		t.Errorf("image size = %vx%v, want 0x0", img.W, img.H)
	}
}

func TestTextIsPlaced(t *testing.T) {
	s := style.Style{Width: style.Some(style.Px(120))}
	doc := node.Container(node.Text("one two three four five six seven eight")).WithStyle(s)
	box := solve(t, doc, metrics, Viewport{}, nil)
	txt := box.Children[0]
	if txt.Text == nil {
		t.Fatal("text layout missing")
	}
	if txt.W > 120 {
		t.Errorf("text W = %v, want <= 120", txt.W)
	}
	if len(txt.Text.Lines) < 2 {
		t.Errorf("lines = %d, want wrapped text", len(txt.Text.Lines))
	}
	if txt.H <= 0 || box.H != txt.H {
		t.Errorf("text H = %v, container H = %v", txt.H, box.H)
	}
}

func TestLineClampLimitsHeight(t *testing.T) {
	clamp := style.Style{LineClamp: style.Some(style.LineClamp{Count: 1})}
	free := node.Container(node.Text("one two three four five six seven eight")).
		WithStyle(style.Style{Width: style.Some(style.Px(60))})
	clamped := node.Container(node.Text("one two three four five six seven eight").WithStyle(clamp)).
		WithStyle(style.Style{Width: style.Some(style.Px(60))})

	fb := solve(t, free, metrics, Viewport{}, nil)
	cb := solve(t, clamped, metrics, Viewport{}, nil)
	if cb.H >= fb.H {
		t.Errorf("clamped H = %v, want less than unclamped %v", cb.H, fb.H)
	}
	if n := len(cb.Children[0].Text.Lines); n != 1 {
		t.Errorf("clamped lines = %d, want 1", n)
	}
}

func TestInlineImageBecomesChild(t *testing.T) {
	images := map[string]*resource.Image{
		"a.png": resource.NewImage(image.NewRGBA(image.Rect(0, 0, 12, 12))),
	}
	inline := style.Style{Display: style.Some(style.DisplayInline)}
	s := style.Style{Display: style.Some(style.DisplayBlock), Width: style.Some(style.Px(200))}
	doc := node.Container(
		node.Text("see").WithPreset(inline),
		node.Image("a.png").WithPreset(inline),
	).WithStyle(s)
	box := solve(t, doc, metrics, Viewport{}, images)
	if box.Text == nil {
		t.Fatal("inline root has no text layout")
	}
	if len(box.Children) != 1 {
		t.Fatalf("children = %d, want the atomic image only", len(box.Children))
	}
	img := box.Children[0]
	if img.Image == nil || img.W != 12 || img.H != 12 {
		t.Errorf("inline image = %vx%v (resolved %v), want 12x12", img.W, img.H, img.Image != nil)
	}
	if img.X <= 0 {
		t.Errorf("inline image X = %v, want after the text", img.X)
	}
}

func gridStyle(w float32, cols string) style.Style {
	tracks, err := style.ParseGridTracks(cols)
	if err != nil {
		panic(err)
	}
	return style.Style{
		Display:             style.Some(style.DisplayGrid),
		Width:               style.Some(style.Px(w)),
		GridTemplateColumns: style.Some(tracks),
	}
}

func TestGridAutoPlacement(t *testing.T) {
	s := gridStyle(320, "repeat(3, 1fr)")
	s.ColumnGap = style.Some(style.Px(10))
	s.RowGap = style.Some(style.Px(10))
	item := style.Style{Height: style.Some(style.Px(20))}
	var items []*node.Node
	for range 5 {
		items = append(items, node.Container().WithStyle(item))
	}
	box := solve(t, node.Container(items...).WithStyle(s), metrics, Viewport{}, nil)

	if len(box.Children) != 5 {
		t.Fatalf("children = %d, want 5", len(box.Children))
	}
	type rect struct{ x, y, w, h float32 }
	want := []rect{
		{0, 0, 100, 20}, {110, 0, 100, 20}, {220, 0, 100, 20},
		{0, 30, 100, 20}, {110, 30, 100, 20},
	}
	for i, c := range box.Children {
		got := rect{c.X, c.Y, c.W, c.H}
		if got != want[i] {
			t.Errorf("item %d = %+v, want %+v", i, got, want[i])
		}
		if c.Node == nil {
			t.Errorf("item %d has no render node", i)
		}
	}
	if box.H != 50 {
		t.Errorf("container H = %v, want 50", box.H)
	}
}

func TestGridTrackSizes(t *testing.T) {
	s := gridStyle(200, "50px 1fr 25%")
	doc := node.Container(
		node.Container().WithStyle(style.Style{Height: style.Some(style.Px(30))}),
		node.Container(),
		node.Container(),
	).WithStyle(s)
	box := solve(t, doc, metrics, Viewport{}, nil)

	tests := []struct {
		x, w float32
	}{
		{0, 50},
		{50, 100},
		{150, 50},
	}
	for i, tt := range tests {
		c := box.Children[i]
		if c.X != tt.x || c.W != tt.w {
			t.Errorf("item %d = x %v w %v, want x %v w %v", i, c.X, c.W, tt.x, tt.w)
		}
		// Items stretch to the tallest item of their row.
		if c.H != 30 {
			t.Errorf("item %d H = %v, want 30", i, c.H)
		}
	}
}

func TestGridRowTemplate(t *testing.T) {
	s := gridStyle(100, "1fr")
	s.GridTemplateRows = style.Some(style.GridTracks{style.Track(style.Px(40))})
	doc := node.Container(node.Container(), node.Container().WithStyle(sized(10, 15))).WithStyle(s)
	box := solve(t, doc, metrics, Viewport{}, nil)

	if got := box.Children[0].H; got != 40 {
		t.Errorf("explicit row H = %v, want 40", got)
	}
	second := box.Children[1]
	if second.Y != 40 || second.H != 15 {
		t.Errorf("implicit row item = y %v h %v, want y 40 h 15", second.Y, second.H)
	}
	if second.W != 10 {
		t.Errorf("fixed-width item W = %v, want 10", second.W)
	}
}

func TestGridAbsoluteChildIsNotPlaced(t *testing.T) {
	s := gridStyle(100, "repeat(2, 1fr)")
	abs := sized(10, 10)
	abs.Position = style.Some(style.PositionAbsolute)
	abs.Inset.Left = style.Some(style.Px(5))
	abs.Inset.Top = style.Some(style.Px(5))
	doc := node.Container(
		node.Container().WithStyle(style.Style{Height: style.Some(style.Px(20))}),
		node.Container().WithStyle(abs),
		node.Container().WithStyle(style.Style{Height: style.Some(style.Px(20))}),
	).WithStyle(s)
	box := solve(t, doc, metrics, Viewport{}, nil)

	if len(box.Children) != 3 {
		t.Fatalf("children = %d, want 3", len(box.Children))
	}
	var placed, positioned []*Box
	for _, c := range box.Children {
		if c.Node.Style().Position == style.PositionAbsolute {
			positioned = append(positioned, c)
		} else {
			placed = append(placed, c)
		}
	}
	if len(positioned) != 1 || positioned[0].X != 5 || positioned[0].Y != 5 {
		t.Fatalf("absolute child misplaced: %+v", positioned)
	}
	// The absolute child does not take a cell: both items share row one.
	if placed[1].X != 50 || placed[1].Y != 0 {
		t.Errorf("second item = (%v, %v), want (50, 0)", placed[1].X, placed[1].Y)
	}
}
