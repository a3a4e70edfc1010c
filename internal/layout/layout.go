// Package layout bridges the render tree to the flexbox solver.
//
// Every render node becomes one solver node. Grid containers add
// anonymous row and cell nodes that are folded away again on extract.
// Inline roots and images are leaves with a measure callback: inline roots are measured by the inline
// text engine, images report their natural size. After the solve the
// solver tree is read back into a Box tree, and inline roots are laid out
// again at their final width to place glyphs.
package layout

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/kjk/flex"

	"github.com/gogpu/nodeimg/internal/inline"
	"github.com/gogpu/nodeimg/internal/tree"
	"github.com/gogpu/nodeimg/node"
	"github.com/gogpu/nodeimg/resource"
	"github.com/gogpu/nodeimg/style"
)

// ErrSolve reports that the solver could not lay out the tree.
var ErrSolve = errors.New("layout: solve failed")

// Viewport is the space the root is laid out in. A zero dimension is
// indefinite: the root takes its content size along that axis.
type Viewport struct {
	Width, Height float32
}

// entry is the solver-side context of one render node.
type entry struct {
	node  *tree.Node
	para  *inline.Paragraph
	image *resource.Image
}

type bridge struct {
	viewport Viewport
	config   *flex.Config
	images   map[*tree.Node]*resource.Image
}

// Solve lays out root in vp and returns the positioned box tree.
func Solve(root *tree.Node, vp Viewport) (box *Box, err error) {
	start := time.Now()
	b := &bridge{
		viewport: vp,
		config:   flex.NewConfig(),
		images:   make(map[*tree.Node]*resource.Image),
	}

	defer func() {
		if r := recover(); r != nil {
			box, err = nil, fmt.Errorf("%w: %v", ErrSolve, r)
		}
	}()

	fn := b.build(root)
	flex.CalculateLayout(fn, b.definite(vp.Width), b.definite(vp.Height), flex.DirectionLTR)
	box = b.extract(fn)

	root.Ctx.Global.Logger.Debug("layout solved", "nodes", countBoxes(box), "elapsed", time.Since(start))
	return box, nil
}

func (b *bridge) definite(v float32) float32 {
	if v <= 0 {
		return flex.Undefined
	}
	return v
}

func (b *bridge) build(n *tree.Node) *flex.Node {
	fn := flex.NewNodeWithConfig(b.config)
	e := &entry{node: n}
	fn.Context = e
	b.applyStyle(fn, n)

	switch {
	case n.Kind == node.KindImage:
		e.image = b.resolveImage(n)
		fn.SetMeasureFunc(b.measureImage(e))
	case n.IsInlineRoot():
		e.para = inline.NewParagraph(n, b.atomicSize)
		fn.NodeType = flex.NodeTypeText
		fn.SetMeasureFunc(b.measureInline(e))
	case n.Style().Display == style.DisplayGrid:
		b.buildGrid(fn, n)
	default:
		for i, c := range n.Children {
			child := b.build(c)
			if i > 0 {
				b.applyGap(child, n)
			}
			fn.InsertChild(child, i)
		}
	}
	return fn
}

// resolveImage returns the decoded source of n, or nil when it cannot be
// resolved. Each node is resolved once per solve.
func (b *bridge) resolveImage(n *tree.Node) *resource.Image {
	if img, ok := b.images[n]; ok {
		return img
	}
	img, err := n.Ctx.Global.Image(n.Src)
	if err != nil {
		n.Ctx.Global.Logger.Warn("image unresolved", "src", truncate(n.Src, 64), "err", err)
		img = nil
	}
	b.images[n] = img
	return img
}

// applyGap adds the container's gap in front of a non-first child. The
// solver has no gap support; between-line gaps of wrapping containers
// are not represented.
func (b *bridge) applyGap(child *flex.Node, parent *tree.Node) {
	s := parent.Style()
	ctx := &parent.Ctx
	row := s.Display == style.DisplayFlex && (s.FlexDirection == style.FlexDirectionRow || s.FlexDirection == style.FlexDirectionRowReverse)
	edge, gap := flex.EdgeTop, ctx.Px(s.RowGap, 0)
	if row {
		edge, gap = flex.EdgeLeft, ctx.Px(s.ColumnGap, 0)
	}
	if s.FlexDirection == style.FlexDirectionRowReverse && row {
		edge = flex.EdgeRight
	}
	if s.FlexDirection == style.FlexDirectionColumnReverse && !row && s.Display == style.DisplayFlex {
		edge = flex.EdgeBottom
	}
	if gap == 0 {
		return
	}
	m := child.StyleGetMargin(edge)
	if m.Unit == flex.UnitPoint {
		child.StyleSetMargin(edge, m.Value+gap)
	} else if m.Unit == flex.UnitUndefined {
		child.StyleSetMargin(edge, gap)
	}
}

// extract reads solver results back into boxes.
func (b *bridge) extract(fn *flex.Node) *Box {
	e := fn.Context.(*entry)
	box := &Box{
		Node:    e.node,
		X:       fn.LayoutGetLeft(),
		Y:       fn.LayoutGetTop(),
		W:       fn.LayoutGetWidth(),
		H:       fn.LayoutGetHeight(),
		Margin:  edges(fn.LayoutGetMargin),
		Border:  edges(fn.LayoutGetBorder),
		Padding: edges(fn.LayoutGetPadding),
		Image:   e.image,
	}
	box.Children = b.extractChildren(fn, 0, 0, nil)
	if e.para != nil {
		b.placeText(box, e)
	}
	return box
}

// extractChildren appends the boxes of the children of fn to out. The
// children of anonymous grid nodes are lifted into the enclosing box,
// offset by the anonymous node's position.
func (b *bridge) extractChildren(fn *flex.Node, dx, dy float32, out []*Box) []*Box {
	for _, c := range fn.Children {
		if c.Context.(*entry).node == nil {
			out = b.extractChildren(c, dx+c.LayoutGetLeft(), dy+c.LayoutGetTop(), out)
			continue
		}
		box := b.extract(c)
		box.X += dx
		box.Y += dy
		out = append(out, box)
	}
	return out
}

// placeText lays out an inline root at its final content width and adds
// its atomic inline boxes as children.
func (b *bridge) placeText(box *Box, e *entry) {
	content := box.ContentRect()
	w, h := float32(content.W), float32(content.H)
	lay := e.para.Layout(w, drawLimit(e.node, h))
	box.Text = lay

	for _, f := range lay.Fragments {
		if f.Box == nil {
			continue
		}
		n := f.Box
		m, bw, pad := b.boxEdges(n)
		child := &Box{
			Node:    n,
			X:       float32(content.X) + f.X + m.Left,
			Y:       float32(content.Y) + f.Y + m.Top,
			W:       f.W - m.Left - m.Right,
			H:       f.H - m.Top - m.Bottom,
			Margin:  m,
			Border:  bw,
			Padding: pad,
		}
		if n.Kind == node.KindImage {
			child.Image = b.resolveImage(n)
		}
		box.Children = append(box.Children, child)
	}
}

func edges(get func(flex.Edge) float32) Edges {
	return Edges{
		Top:    get(flex.EdgeTop),
		Right:  get(flex.EdgeRight),
		Bottom: get(flex.EdgeBottom),
		Left:   get(flex.EdgeLeft),
	}
}

func countBoxes(b *Box) int {
	n := 0
	b.Walk(func(*Box) { n++ })
	return n
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

var unbounded = float32(math.Inf(1))
