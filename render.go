package nodeimg

import (
	"context"
	"image"

	"github.com/gogpu/nodeimg/geom"
	"github.com/gogpu/nodeimg/internal/canvas"
	"github.com/gogpu/nodeimg/internal/layout"
	"github.com/gogpu/nodeimg/internal/tree"
	"github.com/gogpu/nodeimg/node"
	"github.com/gogpu/nodeimg/resource"
)

// Render lays out root in vp and paints it. The result holds
// premultiplied colors; use Encode to write it out.
//
// Render first resolves every image the tree references: pinned keys and
// data URIs locally, network URLs through the context's cache and
// fetcher. Images that cannot be resolved are left out of the picture.
// Canceling ctx abandons the fetches and returns ctx's error.
//
// Render consumes the style layers of root; a tree renders once.
func Render(ctx context.Context, root *node.Node, vp Viewport, g *GlobalContext, opts ...RenderOption) (*image.RGBA, error) {
	var o renderOptions
	for _, opt := range opts {
		opt(&o)
	}
	if err := vp.Validate(); err != nil {
		return nil, err
	}
	images, err := g.resolve(ctx, vp, root)
	if err != nil {
		return nil, err
	}
	box, err := g.layout(root, vp, images, o.debug)
	if err != nil {
		return nil, err
	}
	return paint(box, vp), nil
}

// resolve runs the fetch phase for every tree.
func (g *GlobalContext) resolve(ctx context.Context, vp Viewport, roots ...*node.Node) (map[string]*resource.Image, error) {
	m := vp.metrics()
	var srcs []string
	for _, r := range roots {
		srcs = append(srcs, r.Sources(m)...)
	}
	images := g.coordinator.Resolve(ctx, srcs)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return images, nil
}

// layout resolves styles and solves the box tree.
func (g *GlobalContext) layout(root *node.Node, vp Viewport, images map[string]*resource.Image, debug bool) (*layout.Box, error) {
	globals := &tree.Globals{
		Text:   g.fonts.NewSession(),
		Images: images,
		Store:  g.store,
		Logger: Logger(),
	}
	rt := tree.Build(root, tree.RootContext(globals, vp.metrics(), debug))
	box, err := layout.Solve(rt, vp.layout())
	if err != nil {
		return nil, stageError(StageLayout, err)
	}
	return box, nil
}

func paint(box *layout.Box, vp Viewport) *image.RGBA {
	w, h := vp.canvasSize(box.W, box.H)
	c := canvas.New(w, h)
	c.PaintTree(box)
	return c.Image()
}

// MeasuredNode is the geometry of one box after layout.
type MeasuredNode struct {
	Width  float32 `json:"width"`
	Height float32 `json:"height"`
	// Transform maps the box's border-box space to output pixels, as the
	// six values a, b, c, d, e, f of a CSS matrix().
	Transform [6]float64     `json:"transform"`
	Children  []MeasuredNode `json:"children"`
	// Runs lists the placed text of an inline root.
	Runs []TextRun `json:"runs"`
}

// TextRun is one placed piece of text, in the border-box space of the
// node that lays it out.
type TextRun struct {
	Text   string  `json:"text"`
	X      float32 `json:"x"`
	Y      float32 `json:"y"`
	Width  float32 `json:"width"`
	Height float32 `json:"height"`
}

// Measure runs the render pipeline up to layout and returns the box
// geometry without painting. Like Render, it consumes root's styles.
func Measure(ctx context.Context, root *node.Node, vp Viewport, g *GlobalContext, opts ...RenderOption) (*MeasuredNode, error) {
	var o renderOptions
	for _, opt := range opts {
		opt(&o)
	}
	if err := vp.Validate(); err != nil {
		return nil, err
	}
	images, err := g.resolve(ctx, vp, root)
	if err != nil {
		return nil, err
	}
	box, err := g.layout(root, vp, images, o.debug)
	if err != nil {
		return nil, err
	}
	out := measured(box, geom.Identity())
	return &out, nil
}

func measured(b *layout.Box, parent geom.Affine) MeasuredNode {
	m := b.Transform(parent)
	out := MeasuredNode{
		Width:     b.W,
		Height:    b.H,
		Transform: [6]float64{m.A, m.D, m.B, m.E, m.C, m.F},
		Children:  make([]MeasuredNode, 0, len(b.Children)),
		Runs:      []TextRun{},
	}
	if b.Text != nil {
		content := b.ContentRect()
		for _, f := range b.Text.Fragments {
			if f.Box != nil || f.Text == "" {
				continue
			}
			out.Runs = append(out.Runs, TextRun{
				Text:   f.Text,
				X:      float32(content.X) + f.X,
				Y:      float32(content.Y) + f.Y,
				Width:  f.W,
				Height: f.H,
			})
		}
	}
	for _, c := range b.Children {
		out.Children = append(out.Children, measured(c, m))
	}
	return out
}
