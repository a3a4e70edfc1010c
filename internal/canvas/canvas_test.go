package canvas

import (
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/nodeimg/geom"
	"github.com/gogpu/nodeimg/internal/blend"
	"github.com/gogpu/nodeimg/internal/layout"
	"github.com/gogpu/nodeimg/internal/tree"
	"github.com/gogpu/nodeimg/node"
	"github.com/gogpu/nodeimg/style"
	"github.com/gogpu/nodeimg/text"
)

var (
	red  = Solid{255, 0, 0, 255}
	blue = Solid{0, 0, 255, 255}
)

func rectMask(c *Canvas, x, y, w, h float64) *image.Alpha {
	var p Path
	p.Rect(geom.RectXYWH(x, y, w, h))
	return c.Mask(&p, geom.Identity())
}

func near(a, b color.RGBA, tol int) bool {
	d := func(x, y uint8) bool { v := int(x) - int(y); return v >= -tol && v <= tol }
	return d(a.R, b.R) && d(a.G, b.G) && d(a.B, b.B) && d(a.A, b.A)
}

func TestFillRect(t *testing.T) {
	c := New(10, 10)
	c.Fill(rectMask(c, 2, 2, 4, 4), red, geom.Identity(), blend.Normal, 1)

	if got := c.Image().RGBAAt(3, 3); !near(got, color.RGBA(red), 1) {
		t.Errorf("inside = %v, want %v", got, red)
	}
	if got := c.Image().RGBAAt(7, 7); got.A != 0 {
		t.Errorf("outside = %v, want transparent", got)
	}
	if d := c.Dirty(); d != image.Rect(2, 2, 6, 6) {
		t.Errorf("Dirty() = %v, want (2,2)-(6,6)", d)
	}
}

func TestMaskOutsideCanvas(t *testing.T) {
	c := New(10, 10)
	if m := rectMask(c, 20, 20, 5, 5); m != nil {
		t.Errorf("Mask() = %v, want nil", m.Rect)
	}
}

func TestClipStack(t *testing.T) {
	c := New(10, 10)
	if !c.PushClip(rectMask(c, 0, 0, 5, 10)) {
		t.Fatal("PushClip() = false, want true")
	}
	c.Fill(rectMask(c, 0, 0, 10, 10), red, geom.Identity(), blend.Normal, 1)
	c.PopClip()

	if got := c.Image().RGBAAt(2, 5); got.A == 0 {
		t.Error("clipped-in pixel not painted")
	}
	if got := c.Image().RGBAAt(7, 5); got.A != 0 {
		t.Errorf("clipped-out pixel = %v, want transparent", got)
	}
}

func TestNestedClipIntersects(t *testing.T) {
	c := New(10, 10)
	c.PushClip(rectMask(c, 0, 0, 5, 10))
	if c.PushClip(rectMask(c, 6, 0, 4, 10)) {
		t.Error("disjoint PushClip() = true, want false")
	}
	c.Fill(rectMask(c, 0, 0, 10, 10), red, geom.Identity(), blend.Normal, 1)
	c.PopClip()
	c.PopClip()
	if !c.Dirty().Empty() {
		t.Errorf("Dirty() = %v, want empty", c.Dirty())
	}
}

func TestGroupOpacityDoesNotDoubleDarken(t *testing.T) {
	c := New(10, 10)
	l := c.Layer()
	l.Fill(rectMask(l, 0, 0, 6, 10), red, geom.Identity(), blend.Normal, 1)
	l.Fill(rectMask(l, 4, 0, 6, 10), red, geom.Identity(), blend.Normal, 1)
	c.CompositeLayer(l, blend.Normal, 0.5)

	single := c.Image().RGBAAt(1, 5)
	overlap := c.Image().RGBAAt(5, 5)
	if single != overlap {
		t.Errorf("overlap = %v, single = %v, want equal", overlap, single)
	}
	if !near(single, color.RGBA{128, 0, 0, 128}, 1) {
		t.Errorf("single = %v, want half red", single)
	}
}

func TestSubtractAndIntersect(t *testing.T) {
	c := New(10, 10)
	a := rectMask(c, 0, 0, 10, 10)
	b := rectMask(c, 5, 0, 5, 10)
	if got := Intersect(a, b); got == nil || got.Rect != image.Rect(5, 0, 10, 10) {
		t.Errorf("Intersect().Rect = %v, want (5,0)-(10,10)", got)
	}
	Subtract(a, b)
	if a.AlphaAt(7, 5).A != 0 || a.AlphaAt(2, 5).A == 0 {
		t.Errorf("Subtract() left %v at 7 and %v at 2", a.AlphaAt(7, 5).A, a.AlphaAt(2, 5).A)
	}
}

func TestRadiiFit(t *testing.T) {
	r := Radii{{X: 60, Y: 60}, {X: 60, Y: 60}, {}, {}}.Fit(100, 100)
	if r[0].X != 50 || r[1].X != 50 {
		t.Errorf("Fit() = %v, want top radii of 50", r)
	}
}

func TestResolveStopsDistributesEvenly(t *testing.T) {
	in := []style.ColorStop{
		{Color: style.ColorOf(style.Black)},
		{Color: style.ColorOf(style.Black)},
		{Color: style.ColorOf(style.Black), Position: style.Some(style.Percent(80))},
		{Color: style.ColorOf(style.Black)},
	}
	s := resolveStops(in, 100, style.Black, style.Metrics{DPR: 1}, false)
	want := []float64{0, 0.4, 0.8, 1}
	for i, st := range s.list {
		if d := st.Offset - want[i]; d > 1e-9 || d < -1e-9 {
			t.Errorf("stop %d offset = %v, want %v", i, st.Offset, want[i])
		}
	}
}

func TestLinearGradientEnds(t *testing.T) {
	g := &style.LinearGradient{
		Angle: 180,
		Stops: []style.ColorStop{
			{Color: style.ColorOf(style.RGB(255, 0, 0))},
			{Color: style.ColorOf(style.RGB(0, 0, 255))},
		},
	}
	p := NewLinearGradient(g, geom.Size{W: 10, H: 100}, style.Black, style.Metrics{DPR: 1})
	if got := p.At(5, 0); !near(got, color.RGBA{255, 0, 0, 255}, 1) {
		t.Errorf("top = %v, want red", got)
	}
	if got := p.At(5, 100); !near(got, color.RGBA{0, 0, 255, 255}, 1) {
		t.Errorf("bottom = %v, want blue", got)
	}
	if got := p.At(5, 50); !near(got, color.RGBA{128, 0, 128, 255}, 1) {
		t.Errorf("middle = %v, want purple", got)
	}
}

func TestRepeatingGradientWraps(t *testing.T) {
	g := &style.LinearGradient{
		Angle: 90,
		Stops: []style.ColorStop{
			{Color: style.ColorOf(style.RGB(255, 0, 0)), Position: style.Some(style.Px(0))},
			{Color: style.ColorOf(style.RGB(0, 0, 255)), Position: style.Some(style.Px(10))},
		},
		Repeating: true,
	}
	p := NewLinearGradient(g, geom.Size{W: 100, H: 10}, style.Black, style.Metrics{DPR: 1})
	if a, b := p.At(2, 5), p.At(52, 5); a != b {
		t.Errorf("At(2) = %v, At(52) = %v, want equal", a, b)
	}
}

func TestNoiseIsDeterministic(t *testing.T) {
	n := NewNoise(style.Noise{Seed: 7})
	if n.opacity != style.DefaultNoiseOpacity {
		t.Errorf("opacity = %v, want default", n.opacity)
	}
	if a, b := n.At(3.2, 4.9), n.At(3.7, 4.1); a != b {
		t.Errorf("same pixel gave %v and %v", a, b)
	}
	if Hash2D(1, 2, 3) != Hash2D(1, 2, 3) {
		t.Error("Hash2D is not deterministic")
	}
	varied := false
	for x := range uint32(16) {
		if Hash2D(x, 0, 0) != Hash2D(0, 0, 0) {
			varied = true
		}
	}
	if !varied {
		t.Error("Hash2D does not vary with x")
	}
}

func TestObjectRect(t *testing.T) {
	box := geom.RectXYWH(0, 0, 100, 50)
	nat := geom.Size{W: 20, H: 20}
	m := style.Metrics{DPR: 1}
	tests := []struct {
		fit  style.ObjectFit
		want geom.Rect
	}{
		{style.ObjectFitFill, geom.RectXYWH(0, 0, 100, 50)},
		{style.ObjectFitContain, geom.RectXYWH(25, 0, 50, 50)},
		{style.ObjectFitCover, geom.RectXYWH(0, -25, 100, 100)},
		{style.ObjectFitNone, geom.RectXYWH(40, 15, 20, 20)},
		{style.ObjectFitScaleDown, geom.RectXYWH(40, 15, 20, 20)},
	}
	for _, tt := range tests {
		t.Run(tt.fit.String(), func(t *testing.T) {
			if got := ObjectRect(box, nat, tt.fit, style.Center, m); got != tt.want {
				t.Errorf("ObjectRect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBorderSideColors(t *testing.T) {
	c := New(20, 20)
	colors := style.Sides[style.Color]{
		Top:    style.RGB(255, 0, 0),
		Right:  style.RGB(0, 0, 255),
		Bottom: style.RGB(0, 0, 255),
		Left:   style.RGB(0, 0, 255),
	}
	c.Border(geom.RectXYWH(0, 0, 20, 20), Radii{}, BorderWidths{4, 4, 4, 4}, colors, geom.Identity())

	if got := c.Image().RGBAAt(10, 1); !near(got, color.RGBA(red), 2) {
		t.Errorf("top = %v, want red", got)
	}
	if got := c.Image().RGBAAt(1, 10); !near(got, color.RGBA(blue), 2) {
		t.Errorf("left = %v, want blue", got)
	}
	if got := c.Image().RGBAAt(10, 10); got.A != 0 {
		t.Errorf("inside = %v, want transparent", got)
	}
}

func TestStrokeCoversLine(t *testing.T) {
	var p Path
	p.MoveTo(2, 10)
	p.LineTo(18, 10)
	c := New(20, 20)
	m := c.Mask(Stroke(&p, geom.Identity(), 4), geom.Identity())
	if m == nil {
		t.Fatal("stroke mask is empty")
	}
	if m.AlphaAt(10, 10).A < 250 {
		t.Errorf("center coverage = %d, want full", m.AlphaAt(10, 10).A)
	}
	if m.AlphaAt(10, 15).A != 0 {
		t.Errorf("coverage away from the line = %d, want 0", m.AlphaAt(10, 15).A)
	}
}

func TestOutsetShadowStaysOutside(t *testing.T) {
	c := New(40, 40)
	sh := Shadow{Offset: geom.Pt(5, 0), Color: style.Black}
	c.OutsetShadow(sh, geom.RectXYWH(10, 10, 10, 10), Radii{}, geom.Identity())
	if got := c.Image().RGBAAt(22, 15); got.A == 0 {
		t.Error("no shadow to the right of the box")
	}
	if got := c.Image().RGBAAt(15, 15); got.A != 0 {
		t.Errorf("shadow under the box = %v, want cut out", got)
	}
}

func paintDoc(t *testing.T, doc *node.Node, w, h int) *Canvas {
	t.Helper()
	reg := text.NewRegistry(nil)
	if err := reg.RegisterDefaults(); err != nil {
		t.Fatalf("RegisterDefaults() error = %v", err)
	}
	g := &tree.Globals{Text: reg.NewSession()}
	root := tree.Build(doc, tree.RootContext(g, style.Metrics{RootFontSize: 16, DPR: 1}, false))
	box, err := layout.Solve(root, layout.Viewport{Width: float32(w), Height: float32(h)})
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	c := New(w, h)
	c.PaintTree(box)
	return c
}

func TestPaintTreeBackground(t *testing.T) {
	s := style.Style{
		Width:           style.Some(style.Px(20)),
		Height:          style.Some(style.Px(20)),
		BackgroundColor: style.Some(style.ColorOf(style.RGB(255, 0, 0))),
	}
	c := paintDoc(t, node.Container().WithStyle(s), 40, 40)
	if got := c.Image().RGBAAt(10, 10); !near(got, color.RGBA(red), 1) {
		t.Errorf("background = %v, want red", got)
	}
	if got := c.Image().RGBAAt(30, 30); got.A != 0 {
		t.Errorf("outside = %v, want transparent", got)
	}
}

func TestPaintTreeOverflowClips(t *testing.T) {
	child := style.Style{
		Width:           style.Some(style.Px(40)),
		Height:          style.Some(style.Px(40)),
		FlexShrink:      style.Some(float32(0)),
		BackgroundColor: style.Some(style.ColorOf(style.RGB(0, 0, 255))),
	}
	parent := style.Style{
		Width:     style.Some(style.Px(20)),
		Height:    style.Some(style.Px(20)),
		OverflowX: style.Some(style.OverflowHidden),
		OverflowY: style.Some(style.OverflowHidden),
	}
	c := paintDoc(t, node.Container(node.Container().WithStyle(child)).WithStyle(parent), 50, 50)
	if got := c.Image().RGBAAt(10, 10); !near(got, color.RGBA(blue), 1) {
		t.Errorf("inside = %v, want blue", got)
	}
	if got := c.Image().RGBAAt(30, 10); got.A != 0 {
		t.Errorf("overflow = %v, want clipped", got)
	}
}

func TestPaintTreeOpacityZeroSkips(t *testing.T) {
	s := style.Style{
		Width:           style.Some(style.Px(20)),
		Height:          style.Some(style.Px(20)),
		BackgroundColor: style.Some(style.ColorOf(style.RGB(255, 0, 0))),
		Opacity:         style.Some(float32(0)),
	}
	c := paintDoc(t, node.Container().WithStyle(s), 20, 20)
	if !c.Dirty().Empty() {
		t.Errorf("Dirty() = %v, want nothing painted", c.Dirty())
	}
}

// flat is a gradient layer of a single color.
func flat(c style.Color) style.BackgroundImage {
	return &style.LinearGradient{Stops: []style.ColorStop{{Color: style.ColorOf(c)}, {Color: style.ColorOf(c)}}}
}

func square(size float32) style.Style {
	return style.Style{Width: style.Some(style.Px(size)), Height: style.Some(style.Px(size))}
}

var green = color.RGBA{0, 255, 0, 255}

func TestBackgroundLayersPaintInDeclarationOrder(t *testing.T) {
	s := square(20)
	s.BackgroundImage = style.Some(style.Images{flat(style.RGB(255, 0, 0)), flat(style.RGB(0, 255, 0))})
	c := paintDoc(t, node.Container().WithStyle(s), 20, 20)
	if got := c.Image().RGBAAt(10, 10); !near(got, green, 1) {
		t.Errorf("pixel = %v, want the last layer (green) on top", got)
	}
}

func TestLayersKeepOrderAndReuseLastValue(t *testing.T) {
	imgs := style.Images{style.URL("a"), style.URL("b"), style.URL("c")}
	pos := []style.Anchor{style.TopLeft, style.Center}
	size := []style.BackgroundSize{{Kind: style.SizeCover}}
	got := Layers(imgs, pos, size, nil)
	if len(got) != 3 {
		t.Fatalf("len(Layers()) = %d, want 3", len(got))
	}
	for i, l := range got {
		if l.Image != imgs[i] {
			t.Errorf("layer %d image = %v, want %v", i, l.Image, imgs[i])
		}
		if l.Size.Kind != style.SizeCover {
			t.Errorf("layer %d size = %v, want cover", i, l.Size)
		}
	}
	if got[1].Position != style.Center || got[2].Position != style.Center {
		t.Errorf("positions = %v, %v, want center for layers past the list", got[1].Position, got[2].Position)
	}
	if got[0].Repeat != 0 {
		t.Errorf("repeat = %v, want the initial value", got[0].Repeat)
	}
}

func TestBoxShadowsPaintInDeclarationOrder(t *testing.T) {
	s := square(20)
	s.BoxShadow = style.Some([]style.BoxShadow{
		{OffsetX: style.Px(10), OffsetY: style.Px(10), Color: style.ColorOf(style.RGB(255, 0, 0))},
		{OffsetX: style.Px(10), OffsetY: style.Px(10), Color: style.ColorOf(style.RGB(0, 255, 0))},
	})
	c := paintDoc(t, node.Container().WithStyle(s), 40, 40)
	if got := c.Image().RGBAAt(25, 25); !near(got, green, 1) {
		t.Errorf("overlap = %v, want the last shadow (green) on top", got)
	}
}

func TestInsetShadow(t *testing.T) {
	s := square(20)
	s.BackgroundColor = style.Some(style.ColorOf(style.RGB(255, 255, 255)))
	s.BoxShadow = style.Some([]style.BoxShadow{
		{Inset: true, OffsetX: style.Px(5), OffsetY: style.Px(5), Color: style.ColorOf(style.RGB(255, 0, 0))},
		{Inset: true, OffsetX: style.Px(5), OffsetY: style.Px(5), Color: style.ColorOf(style.RGB(0, 255, 0))},
	})
	c := paintDoc(t, node.Container().WithStyle(s), 30, 30)
	if got := c.Image().RGBAAt(2, 2); !near(got, green, 1) {
		t.Errorf("shadowed corner = %v, want the last shadow (green)", got)
	}
	if got := c.Image().RGBAAt(15, 15); !near(got, color.RGBA{255, 255, 255, 255}, 1) {
		t.Errorf("center = %v, want the white background", got)
	}
	if got := c.Image().RGBAAt(25, 25); got.A != 0 {
		t.Errorf("outside = %v, want no shadow outside the box", got)
	}
}

func TestBackdropFilter(t *testing.T) {
	parent := square(40)
	parent.BackgroundColor = style.Some(style.ColorOf(style.RGB(255, 0, 0)))
	parent.AlignItems = style.Some(style.AlignItemsFlexStart)
	child := square(20)
	child.BackdropFilter = style.Some([]style.Filter{style.FilterOf(style.FilterInvert, 1)})
	c := paintDoc(t, node.Container(node.Container().WithStyle(child)).WithStyle(parent), 40, 40)

	if got := c.Image().RGBAAt(10, 10); !near(got, color.RGBA{0, 255, 255, 255}, 1) {
		t.Errorf("under the child = %v, want inverted red", got)
	}
	if got := c.Image().RGBAAt(30, 30); !near(got, color.RGBA(red), 1) {
		t.Errorf("beside the child = %v, want red", got)
	}
}

func TestFilterAppliesToGroup(t *testing.T) {
	s := square(20)
	s.BackgroundColor = style.Some(style.ColorOf(style.RGB(255, 0, 0)))
	s.Filter = style.Some([]style.Filter{style.FilterOf(style.FilterInvert, 1)})
	c := paintDoc(t, node.Container().WithStyle(s), 20, 20)
	if got := c.Image().RGBAAt(10, 10); !near(got, color.RGBA{0, 255, 255, 255}, 1) {
		t.Errorf("pixel = %v, want inverted red", got)
	}
}

func TestTextShadowsPaintInDeclarationOrder(t *testing.T) {
	s := style.Style{
		FontSize: style.Some(style.Px(32)),
		Color:    style.Some(style.ColorOf(style.Transparent)),
		TextShadow: style.Some([]style.TextShadow{
			{Color: style.ColorOf(style.RGB(255, 0, 0))},
			{Color: style.ColorOf(style.RGB(0, 255, 0))},
		}),
	}
	c := paintDoc(t, node.Text("H").WithStyle(s), 40, 40)

	solid := 0
	img := c.Image()
	for y := range 40 {
		for x := range 40 {
			px := img.RGBAAt(x, y)
			if px.A != 255 {
				continue
			}
			solid++
			if !near(px, green, 1) {
				t.Fatalf("pixel (%d,%d) = %v, want the last shadow (green)", x, y, px)
			}
		}
	}
	if solid == 0 {
		t.Error("no fully covered shadow pixels")
	}
}
