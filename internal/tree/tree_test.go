package tree

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/nodeimg/geom"
	"github.com/gogpu/nodeimg/node"
	"github.com/gogpu/nodeimg/resource"
	"github.com/gogpu/nodeimg/style"
)

var metrics = style.Metrics{RootFontSize: 16, DPR: 1, ViewportWidth: 800, ViewportHeight: 600}

func root() Context {
	return RootContext(&Globals{}, metrics, false)
}

func inline(n *node.Node) *node.Node {
	return n.WithPreset(style.Style{Display: style.Some(style.DisplayInline)})
}

func TestBuildInheritance(t *testing.T) {
	red := style.RGB(255, 0, 0)
	doc := node.Container(
		node.Text("child"),
	).WithStyle(style.Style{
		Color:    style.Some(style.ColorOf(red)),
		FontSize: style.Some(style.Px(20)),
		Width:    style.Some(style.Px(100)),
		Opacity:  style.Some(float32(0.5)),
	})

	n := Build(doc, root())
	child := n.Children[0]
	if child.Ctx.CurrentColor != red {
		t.Errorf("child color = %v, want inherited red", child.Ctx.CurrentColor)
	}
	if child.Ctx.Style.FontSize != 20 {
		t.Errorf("child font size = %v, want 20", child.Ctx.Style.FontSize)
	}
	if !child.Ctx.Style.Width.IsAuto() {
		t.Errorf("child width = %v, want auto (not inherited)", child.Ctx.Style.Width)
	}
	if child.Ctx.Opacity != 0.5 {
		t.Errorf("child accumulated opacity = %v, want 0.5", child.Ctx.Opacity)
	}
}

func TestBuildBlockifiesRootAndFlexChildren(t *testing.T) {
	r := Build(inline(node.Container(inline(node.Text("a")))), root())
	if r.IsInline() {
		t.Error("root stayed inline")
	}
	if !r.IsInlineRoot() {
		t.Error("blockified root with inline children is not an inline root")
	}

	n := Build(node.Container(inline(node.Text("a"))), root())
	if n.Children[0].IsInline() {
		t.Error("child of a flex container stayed inline")
	}
}

func TestBuildInlineRoot(t *testing.T) {
	block := style.Style{Display: style.Some(style.DisplayBlock)}
	doc := node.Container(
		inline(node.Text("a")),
		inline(node.Image("x")),
	).WithStyle(block)

	n := Build(doc, root())
	if !n.IsInlineRoot() {
		t.Error("block with only inline children is not an inline root")
	}
	if len(n.Children) != 2 {
		t.Errorf("len(children) = %d, want 2", len(n.Children))
	}
}

func TestBuildWrapsMixedChildren(t *testing.T) {
	block := style.Style{Display: style.Some(style.DisplayBlock)}
	doc := node.Container(
		inline(node.Text("a")),
		inline(node.Text("b")),
		node.Container(),
		inline(node.Text("c")),
	).WithStyle(block)

	n := Build(doc, root())
	if len(n.Children) != 3 {
		t.Fatalf("len(children) = %d, want 3", len(n.Children))
	}
	anon := n.Children[0]
	if !anon.Anonymous || len(anon.Children) != 2 || !anon.IsInlineRoot() {
		t.Errorf("first child = %+v, want an anonymous inline root around a and b", anon)
	}
	if last := n.Children[2]; last.Anonymous || last.IsInline() {
		t.Error("a single trailing inline child should be blockified, not wrapped")
	}
}

func TestBuildDropsDisplayNone(t *testing.T) {
	none := style.Style{Display: style.Some(style.DisplayNone)}
	doc := node.Container(node.Text("a"), node.Text("b").WithStyle(none))
	n := Build(doc, root())
	if len(n.Children) != 1 {
		t.Errorf("len(children) = %d, want 1", len(n.Children))
	}

	hidden := Build(node.Container().WithStyle(none), root())
	if hidden == nil || len(hidden.Children) != 0 {
		t.Error("hidden root should build to an empty box")
	}
}

func TestBuildTwicePanics(t *testing.T) {
	doc := node.Container()
	Build(doc, root())
	defer func() {
		if recover() == nil {
			t.Error("building a consumed document did not panic")
		}
	}()
	Build(doc, root())
}

func TestLocalTransform(t *testing.T) {
	rc := root()
	ctx := rc.child(&style.Style{
		Rotate:    style.Some(float32(90)),
		Translate: style.Some(style.Translation{X: style.Px(10), Y: style.Px(0)}),
	})
	m := ctx.LocalTransform(geom.Size{W: 100, H: 100})

	// Translate first, then rotate 90° about the center (50, 50).
	got := m.Apply(geom.Pt(0, 0))
	want := geom.Pt(100, 10)
	if math.Abs(got.X-want.X) > 1e-6 || math.Abs(got.Y-want.Y) > 1e-6 {
		t.Errorf("Apply(0,0) = %v, want %v", got, want)
	}

	if !rc.LocalTransform(geom.Size{W: 10, H: 10}).IsIdentity() {
		t.Error("untransformed node has a non-identity transform")
	}
}

func TestGlobalsImage(t *testing.T) {
	pinned := resource.Solid(2, 2, style.White.RGBA())
	store := resource.NewPersistentImageStore()
	store.PutImage("logo", pinned)
	fetched := resource.Solid(1, 1, style.Black.RGBA())
	g := &Globals{Images: map[string]*resource.Image{"https://x/a.png": fetched}, Store: store}

	if img, err := g.Image("logo"); err != nil || img != pinned {
		t.Errorf("Image(logo) = %v, %v", img, err)
	}
	if img, err := g.Image("https://x/a.png"); err != nil || img != fetched {
		t.Errorf("Image(fetched) = %v, %v", img, err)
	}
	if _, err := g.Image("https://x/missing.png"); !errors.Is(err, resource.ErrUnknownSource) {
		t.Errorf("Image(missing) error = %v, want ErrUnknownSource", err)
	}
	if _, err := g.Image("data:image/png;base64,@@"); !errors.Is(err, resource.ErrMalformedDataURI) {
		t.Errorf("Image(bad data URI) error = %v, want ErrMalformedDataURI", err)
	}
}
