package layout

import (
	"github.com/gogpu/nodeimg/geom"
	"github.com/gogpu/nodeimg/internal/inline"
	"github.com/gogpu/nodeimg/internal/tree"
	"github.com/gogpu/nodeimg/resource"
)

// Edges holds resolved per-edge widths in device pixels.
type Edges struct {
	Top, Right, Bottom, Left float32
}

// Box is one positioned box. The box tree is aligned 1:1 with the render
// tree, except that the children of an inline root are represented by
// Text, and only its atomic inline boxes appear as Children.
type Box struct {
	Node *tree.Node

	// X and Y locate the border box relative to the parent's border box.
	X, Y, W, H float32
	Margin     Edges
	Border     Edges
	Padding    Edges

	Children []*Box

	// Image is the resolved source of an image box; nil when it could not
	// be resolved.
	Image *resource.Image
	// Text is the placed line layout of an inline root.
	Text *inline.Layout
}

// BorderRect returns the border box in local coordinates.
func (b *Box) BorderRect() geom.Rect {
	return geom.RectXYWH(0, 0, float64(b.W), float64(b.H))
}

// PaddingRect returns the padding box in local coordinates.
func (b *Box) PaddingRect() geom.Rect {
	return b.BorderRect().Inset(float64(b.Border.Top), float64(b.Border.Right), float64(b.Border.Bottom), float64(b.Border.Left))
}

// ContentRect returns the content box in local coordinates.
func (b *Box) ContentRect() geom.Rect {
	return b.PaddingRect().Inset(float64(b.Padding.Top), float64(b.Padding.Right), float64(b.Padding.Bottom), float64(b.Padding.Left))
}

// Transform returns the transform from the box's local border-box space
// to canvas pixels, given the transform of its parent.
func (b *Box) Transform(parent geom.Affine) geom.Affine {
	m := parent.Mul(geom.Translate(float64(b.X), float64(b.Y)))
	return m.Mul(b.Node.Ctx.LocalTransform(geom.Size{W: float64(b.W), H: float64(b.H)}))
}

// Walk calls fn for b and its descendants in pre-order.
func (b *Box) Walk(fn func(*Box)) {
	fn(b)
	for _, c := range b.Children {
		c.Walk(fn)
	}
}
