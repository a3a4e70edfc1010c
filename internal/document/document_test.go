package document

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/nodeimg/node"
	"github.com/gogpu/nodeimg/style"
)

func kinds(n *node.Node) []string {
	var out []string
	n.Walk(func(n *node.Node) bool {
		out = append(out, n.Kind.String())
		return true
	})
	return out
}

func TestParseBareNode(t *testing.T) {
	doc, err := Parse([]byte(`{
		"style": {"width": 200, "backgroundColor": "red"},
		"children": [
			"Hello",
			{"type": "image", "src": "https://example.com/a.png", "width": 32, "height": 16},
			{"children": [{"text": "nested"}]}
		]
	}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if doc.Root == nil || doc.Frames != nil {
		t.Fatalf("Parse() = %+v, want a single root", doc)
	}
	want := []string{"container", "text", "image", "container", "text"}
	if diff := cmp.Diff(want, kinds(doc.Root)); diff != "" {
		t.Errorf("kinds mismatch (-want +got):\n%s", diff)
	}

	root := doc.Root
	if w, ok := root.Style.Width.Get(); !ok || w != style.Px(200) {
		t.Errorf("width = %v, %v; want 200px", w, ok)
	}
	if root.Children[0].Text != "Hello" {
		t.Errorf("text = %q, want Hello", root.Children[0].Text)
	}
	img := root.Children[1]
	if img.Src != "https://example.com/a.png" {
		t.Errorf("src = %q", img.Src)
	}
	if w, _ := img.Width.Get(); w != 32 {
		t.Errorf("image width = %v, want 32", w)
	}
	if h, _ := img.Height.Get(); h != 16 {
		t.Errorf("image height = %v, want 16", h)
	}
}

func TestParseDocument(t *testing.T) {
	doc, err := Parse([]byte(`{
		"viewport": {"width": 600, "fontSize": 20},
		"root": {"tw": "p-4", "children": ["x"]}
	}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if doc.Viewport.Width == nil || *doc.Viewport.Width != 600 {
		t.Errorf("viewport width = %v, want 600", doc.Viewport.Width)
	}
	if doc.Viewport.Height != nil {
		t.Errorf("viewport height = %v, want unset", *doc.Viewport.Height)
	}
	if doc.Viewport.FontSize == nil || *doc.Viewport.FontSize != 20 {
		t.Errorf("viewport font size = %v, want 20", doc.Viewport.FontSize)
	}
	if doc.Root.TW.Len() != 1 {
		t.Errorf("tw tokens = %d, want 1", doc.Root.TW.Len())
	}
}

func TestParseFrames(t *testing.T) {
	doc, err := Decode(strings.NewReader(`{
		"viewport": {"width": 10, "height": 10},
		"frames": [
			{"duration": 100, "root": {"children": []}},
			{"duration": 250, "root": {"text": "b"}}
		]
	}`))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(doc.Frames) != 2 {
		t.Fatalf("frames = %d, want 2", len(doc.Frames))
	}
	if doc.Frames[1].Duration != 250 || doc.Frames[1].Root.Kind != node.KindText {
		t.Errorf("frame 1 = %+v, want 250ms text", doc.Frames[1])
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"unknown type", `{"type": "video"}`, ErrUnknownType},
		{"nested unknown type", `{"children": [{"type": "svg"}]}`, ErrUnknownType},
		{"frame without root", `{"frames": [{"duration": 1}]}`, ErrNoRoot},
		{"empty frames", `{"frames": []}`, ErrNoRoot},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.in))
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseErrorNamesPath(t *testing.T) {
	_, err := Parse([]byte(`{"children": ["a", {"type": "svg"}]}`))
	if err == nil || !strings.Contains(err.Error(), "root.children[1]") {
		t.Errorf("error = %v, want the node path", err)
	}
}

func TestParseInvalidJSON(t *testing.T) {
	if _, err := Parse([]byte(`{"children": [`)); err == nil {
		t.Error("Parse() of truncated JSON succeeded")
	}
}
