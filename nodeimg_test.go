package nodeimg

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/nodeimg/node"
	"github.com/gogpu/nodeimg/resource"
	"github.com/gogpu/nodeimg/style"
)

var (
	red   = style.RGB(255, 0, 0)
	green = style.RGB(0, 255, 0)
)

func newGlobal(t *testing.T, opts ...GlobalOption) *GlobalContext {
	t.Helper()
	g, err := NewGlobalContext(opts...)
	if err != nil {
		t.Fatalf("NewGlobalContext() error = %v", err)
	}
	return g
}

func box(w, h float32, bg style.Color) style.Style {
	return style.Style{
		Width:           style.Some(style.Px(w)),
		Height:          style.Some(style.Px(h)),
		BackgroundColor: style.Some(style.ColorOf(bg)),
	}
}

func pngBytes(t *testing.T, w, h int, c color.NRGBA) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func near(a, b color.RGBA, tol int) bool {
	d := func(x, y uint8) bool { v := int(x) - int(y); return v >= -tol && v <= tol }
	return d(a.R, b.R) && d(a.G, b.G) && d(a.B, b.B) && d(a.A, b.A)
}

func TestRenderBackground(t *testing.T) {
	g := newGlobal(t)
	img, err := Render(context.Background(), node.Container().WithStyle(box(20, 10, red)), NewViewport(20, 10), g)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got := img.Bounds(); got != image.Rect(0, 0, 20, 10) {
		t.Errorf("bounds = %v, want 20x10", got)
	}
	if got := img.RGBAAt(10, 5); !near(got, color.RGBA{255, 0, 0, 255}, 1) {
		t.Errorf("pixel = %v, want red", got)
	}
}

func TestRenderFitContent(t *testing.T) {
	g := newGlobal(t)
	img, err := Render(context.Background(), node.Container().WithStyle(box(30, 12, red)), FitContent(), g)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got := img.Bounds(); got != image.Rect(0, 0, 30, 12) {
		t.Errorf("bounds = %v, want 30x12", got)
	}
}

func TestRenderDevicePixelRatio(t *testing.T) {
	g := newGlobal(t)
	img, err := Render(context.Background(), node.Container().WithStyle(box(10, 10, red)), FitContent().WithDevicePixelRatio(2), g)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got := img.Bounds(); got != image.Rect(0, 0, 20, 20) {
		t.Errorf("bounds = %v, want 20x20", got)
	}
}

func TestRenderInvalidViewport(t *testing.T) {
	g := newGlobal(t)
	tests := []struct {
		name string
		vp   Viewport
	}{
		{"zero width", Viewport{Width: style.Some[uint32](0)}},
		{"zero height", NewViewport(10, 0)},
		{"negative font size", NewViewport(10, 10).WithFontSize(-1)},
		{"negative ratio", NewViewport(10, 10).WithDevicePixelRatio(-2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Render(context.Background(), node.Container(), tt.vp, g)
			if !errors.Is(err, ErrInvalidViewport) {
				t.Fatalf("Render() error = %v, want ErrInvalidViewport", err)
			}
			var e *Error
			if !errors.As(err, &e) || e.Stage != StageViewport {
				t.Errorf("errors.As() = %v, want stage viewport", e)
			}
		})
	}
}

func TestPersistentImage(t *testing.T) {
	g := newGlobal(t)
	if err := g.PutPersistentImage("logo", pngBytes(t, 2, 2, color.NRGBA{G: 255, A: 255})); err != nil {
		t.Fatalf("PutPersistentImage() error = %v", err)
	}
	if keys := g.PersistentImageKeys(); len(keys) != 1 || keys[0] != "logo" {
		t.Errorf("keys = %v, want [logo]", keys)
	}
	root := node.Container(
		node.Image("logo").WithStyle(style.Style{
			Width:  style.Some(style.Px(10)),
			Height: style.Some(style.Px(10)),
		}),
	)
	img, err := Render(context.Background(), root, NewViewport(10, 10), g)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got := img.RGBAAt(5, 5); !near(got, color.RGBA{0, 255, 0, 255}, 2) {
		t.Errorf("pixel = %v, want green", got)
	}
}

func TestPutPersistentImageInvalid(t *testing.T) {
	g := newGlobal(t)
	err := g.PutPersistentImage("bad", []byte("not an image"))
	if !errors.Is(err, ErrImageResolve) {
		t.Errorf("PutPersistentImage() error = %v, want ErrImageResolve", err)
	}
	var de *resource.DecodeError
	if !errors.As(err, &de) {
		t.Errorf("error %v does not carry a DecodeError", err)
	}
}

func TestLoadFont(t *testing.T) {
	g := newGlobal(t, WithoutDefaultFont())
	if fams := g.Families(); len(fams) != 0 {
		t.Errorf("families = %v, want none", fams)
	}
	n, err := g.LoadFont(goregular.TTF, FontOptions{Family: "Body"})
	if err != nil {
		t.Fatalf("LoadFont() error = %v", err)
	}
	if n != 1 {
		t.Errorf("LoadFont() = %d faces, want 1", n)
	}
	if _, err := g.LoadFont([]byte("garbage"), FontOptions{}); !errors.Is(err, ErrFont) {
		t.Errorf("LoadFont(garbage) error = %v, want ErrFont", err)
	}
	if fams := g.Families(); len(fams) != 1 || fams[0] != "Body" {
		t.Errorf("families = %v, want [Body]", fams)
	}
}

func TestRenderMissingImageIsSoft(t *testing.T) {
	fetcher := resource.FetcherFunc(func(context.Context, string) ([]byte, error) {
		return nil, errors.New("boom")
	})
	g := newGlobal(t, WithFetcher(fetcher))
	root := node.Container(node.Image("https://example.com/a.png")).WithStyle(box(10, 10, red))
	if _, err := Render(context.Background(), root, NewViewport(10, 10), g); err != nil {
		t.Errorf("Render() error = %v, want nil", err)
	}
}

func TestRenderFetchTimeout(t *testing.T) {
	fetcher := resource.FetcherFunc(func(ctx context.Context, _ string) ([]byte, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})
	g := newGlobal(t, WithFetcher(fetcher), WithFetchTimeout(50*time.Millisecond))
	root := node.Container(node.Image("https://example.com/slow.png")).WithStyle(box(10, 10, red))

	start := time.Now()
	img, err := Render(context.Background(), root, NewViewport(10, 10), g)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if d := time.Since(start); d > 5*time.Second {
		t.Errorf("Render() took %v, want the fetch abandoned", d)
	}
	if got := img.RGBAAt(5, 5); !near(got, color.RGBA{255, 0, 0, 255}, 1) {
		t.Errorf("pixel = %v, want red background", got)
	}
}

func TestRenderCanceled(t *testing.T) {
	g := newGlobal(t, WithFetcher(resource.FetcherFunc(func(ctx context.Context, _ string) ([]byte, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	root := node.Container(node.Image("https://example.com/a.png"))
	if _, err := Render(ctx, root, NewViewport(10, 10), g); !errors.Is(err, context.Canceled) {
		t.Errorf("Render() error = %v, want context.Canceled", err)
	}
}

func TestImageCacheSharedAcrossRenders(t *testing.T) {
	var calls atomic.Int32
	data := pngBytes(t, 1, 1, color.NRGBA{B: 255, A: 255})
	fetcher := resource.FetcherFunc(func(context.Context, string) ([]byte, error) {
		calls.Add(1)
		return data, nil
	})
	g := newGlobal(t, WithFetcher(fetcher))
	for range 2 {
		root := node.Container(node.Image("https://example.com/b.png").WithSize(4, 4))
		if _, err := Render(context.Background(), root, NewViewport(4, 4), g); err != nil {
			t.Fatalf("Render() error = %v", err)
		}
	}
	if n := calls.Load(); n != 1 {
		t.Errorf("fetches = %d, want 1", n)
	}
	if s := g.CacheStats(); s.Hits == 0 {
		t.Errorf("cache hits = %d, want > 0", s.Hits)
	}
}

func TestMeasure(t *testing.T) {
	g := newGlobal(t)
	s := box(100, 50, red)
	s.Padding = style.AllSides(style.Some(style.Px(10)))
	root := node.Container(node.Text("Hi")).WithStyle(s)

	m, err := Measure(context.Background(), root, NewViewport(200, 100), g)
	if err != nil {
		t.Fatalf("Measure() error = %v", err)
	}
	if m.Width != 100 || m.Height != 50 {
		t.Errorf("root size = %vx%v, want 100x50", m.Width, m.Height)
	}
	if m.Transform != [6]float64{1, 0, 0, 1, 0, 0} {
		t.Errorf("root transform = %v, want identity", m.Transform)
	}
	if len(m.Children) != 1 {
		t.Fatalf("children = %d, want 1", len(m.Children))
	}
	child := m.Children[0]
	if child.Transform[4] != 10 || child.Transform[5] != 10 {
		t.Errorf("child translation = (%v, %v), want (10, 10)", child.Transform[4], child.Transform[5])
	}
	var text strings.Builder
	for _, r := range child.Runs {
		text.WriteString(r.Text)
		if r.Width <= 0 || r.Height <= 0 {
			t.Errorf("run %q size = %vx%v, want positive", r.Text, r.Width, r.Height)
		}
	}
	if text.String() != "Hi" {
		t.Errorf("runs text = %q, want Hi", text.String())
	}
}

func TestRenderAnimation(t *testing.T) {
	g := newGlobal(t)
	frames := []Frame{
		{Root: node.Container().WithStyle(box(8, 8, red)), Duration: 100},
		{Root: node.Container().WithStyle(box(8, 8, green)), Duration: 100},
		{Root: node.Container().WithStyle(box(8, 8, red)), Duration: 100},
	}
	var buf bytes.Buffer
	if err := RenderAnimation(context.Background(), &buf, frames, NewViewport(8, 8), g, PNG, WithFrameConcurrency(2)); err != nil {
		t.Fatalf("RenderAnimation() error = %v", err)
	}
	data := buf.Bytes()
	i := bytes.Index(data, []byte("acTL"))
	if i < 0 {
		t.Fatal("acTL chunk missing")
	}
	if n := binary.BigEndian.Uint32(data[i+4:]); n != 3 {
		t.Errorf("frames = %d, want 3", n)
	}
}

func TestRenderAnimationErrors(t *testing.T) {
	g := newGlobal(t)
	var buf bytes.Buffer
	if err := RenderAnimation(context.Background(), &buf, nil, NewViewport(8, 8), g, PNG); !errors.Is(err, ErrEncode) {
		t.Errorf("no frames error = %v, want ErrEncode", err)
	}
	frames := []Frame{{Root: node.Container(), Duration: 1}}
	if err := RenderAnimation(context.Background(), &buf, frames, NewViewport(8, 8), g, JPEG); !errors.Is(err, ErrEncode) {
		t.Errorf("jpeg error = %v, want ErrEncode", err)
	}
	if buf.Len() != 0 {
		t.Errorf("wrote %d bytes on failure", buf.Len())
	}
}

func TestEncode(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.SetRGBA(0, 0, color.RGBA{0, 0, 255, 255})
	var buf bytes.Buffer
	if err := Encode(&buf, img, PNG); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	got, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if r, g, b, _ := got.At(0, 0).RGBA(); r != 0 || g != 0 || b>>8 != 255 {
		t.Errorf("pixel = (%d,%d,%d), want blue", r>>8, g>>8, b>>8)
	}

	url, err := DataURL(img, WebP)
	if err != nil {
		t.Fatalf("DataURL() error = %v", err)
	}
	if !strings.HasPrefix(url, "data:image/webp;base64,") {
		t.Errorf("DataURL() = %.40q, want a webp data URL", url)
	}
	if err := Encode(&buf, img, Format(99)); !errors.Is(err, ErrEncode) {
		t.Errorf("Encode(Format(99)) error = %v, want ErrEncode", err)
	}
}

func TestErrorFormatting(t *testing.T) {
	err := stageError(StageLayout, errors.New("cycle"))
	if got, want := err.Error(), "nodeimg: layout failed: cycle"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if errors.Is(err, ErrEncode) {
		t.Error("layout error matches ErrEncode")
	}
	if !errors.Is(err, ErrLayout) {
		t.Error("layout error does not match ErrLayout")
	}
}

func TestRenderMaskZeroAlpha(t *testing.T) {
	g := newGlobal(t)
	none := style.ColorOf(style.Transparent)
	s := box(20, 20, red)
	s.MaskImage = style.Some(style.Images{&style.LinearGradient{Stops: []style.ColorStop{{Color: none}, {Color: none}}}})
	img, err := Render(context.Background(), node.Container().WithStyle(s), NewViewport(20, 20), g)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got := img.RGBAAt(10, 10); got != (color.RGBA{}) {
		t.Errorf("pixel = %v, want a fully masked box", got)
	}
}

func TestRenderDeterministic(t *testing.T) {
	g := newGlobal(t)
	card := box(1200, 630, style.RGB(30, 30, 60))
	card.BackgroundImage = style.Some(style.Images{
		&style.LinearGradient{Angle: 135, Stops: []style.ColorStop{
			{Color: style.ColorOf(style.RGB(255, 0, 128).WithAlpha(0.5))},
			{Color: style.ColorOf(style.RGB(0, 128, 255).WithAlpha(0.5))},
		}},
		style.Noise{Seed: 42},
	})
	card.Padding = style.AllSides(style.Some(style.Px(48)))
	title := style.Style{
		FontSize:   style.Some(style.Px(64)),
		Color:      style.Some(style.ColorOf(style.RGB(255, 255, 255))),
		TextShadow: style.Some([]style.TextShadow{{OffsetX: style.Px(2), OffsetY: style.Px(2), Blur: style.Px(4), Color: style.ColorOf(style.RGB(0, 0, 0))}}),
	}
	badge := box(120, 120, green)
	badge.BoxShadow = style.Some([]style.BoxShadow{{OffsetY: style.Px(8), Blur: style.Px(16), Color: style.ColorOf(style.Black.WithAlpha(0.5))}})
	badge.BorderRadius = style.AllCorners(style.Some(style.Px(24)))
	// Rendering consumes the node tree, so each run builds its own.
	encode := func() []byte {
		doc := node.Container(
			node.Text("Deterministic rendering").WithStyle(title),
			node.Container().WithStyle(badge),
		).WithStyle(card)
		img, err := Render(context.Background(), doc, NewViewport(1200, 630), g)
		if err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		var buf bytes.Buffer
		if err := Encode(&buf, img, PNG); err != nil {
			t.Fatalf("Encode() error = %v", err)
		}
		return buf.Bytes()
	}
	if a, b := encode(), encode(); !bytes.Equal(a, b) {
		t.Error("two renders of the same document differ")
	}
}

func TestRenderIsolationScopesBlend(t *testing.T) {
	g := newGlobal(t)
	render := func(isolate bool) color.RGBA {
		t.Helper()
		inner := box(20, 20, red)
		inner.MixBlendMode = style.Some(style.BlendModeMultiply)
		wrapper := style.Style{Width: style.Some(style.Px(20)), Height: style.Some(style.Px(20))}
		if isolate {
			wrapper.Isolation = style.Some(style.IsolationIsolate)
		}
		doc := node.Container(
			node.Container(node.Container().WithStyle(inner)).WithStyle(wrapper),
		).WithStyle(box(20, 20, green))
		img, err := Render(context.Background(), doc, NewViewport(20, 20), g)
		if err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		return img.RGBAAt(10, 10)
	}
	if got := render(false); !near(got, color.RGBA{0, 0, 0, 255}, 1) {
		t.Errorf("non-isolated multiply = %v, want black", got)
	}
	if got := render(true); !near(got, color.RGBA{255, 0, 0, 255}, 1) {
		t.Errorf("isolated multiply = %v, want red", got)
	}
}

func TestRenderGrid(t *testing.T) {
	g := newGlobal(t)
	s := style.Style{
		Display:             style.Some(style.DisplayGrid),
		Width:               style.Some(style.Px(40)),
		GridTemplateColumns: style.Some(style.GridTracks{style.Fr(1), style.Fr(1)}),
	}
	cell := func(c style.Color) *node.Node {
		return node.Container().WithStyle(style.Style{
			Height:          style.Some(style.Px(10)),
			BackgroundColor: style.Some(style.ColorOf(c)),
		})
	}
	doc := node.Container(cell(red), cell(green), cell(green), cell(red)).WithStyle(s)
	img, err := Render(context.Background(), doc, FitContent(), g)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got := img.Bounds(); got != image.Rect(0, 0, 40, 20) {
		t.Fatalf("bounds = %v, want 40x20", got)
	}
	tests := []struct {
		x, y int
		want color.RGBA
	}{
		{5, 5, color.RGBA{255, 0, 0, 255}},
		{25, 5, color.RGBA{0, 255, 0, 255}},
		{5, 15, color.RGBA{0, 255, 0, 255}},
		{25, 15, color.RGBA{255, 0, 0, 255}},
	}
	for _, tt := range tests {
		if got := img.RGBAAt(tt.x, tt.y); !near(got, tt.want, 1) {
			t.Errorf("pixel (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}
