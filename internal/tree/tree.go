// Package tree resolves a node.Node document into the render tree the
// layout and paint passes work on.
//
// Resolution is a single top-down pass. Each node's style layers are
// consumed and replaced by a complete style.InheritedStyle, display types
// are normalized (flex children and the root are blockified, mixed inline
// and block children get anonymous block wrappers), and display:none
// subtrees are dropped.
package tree

import (
	"github.com/gogpu/nodeimg/node"
	"github.com/gogpu/nodeimg/style"
)

// Node is one box of the render tree.
type Node struct {
	Kind node.Kind
	// Anonymous marks a block box that wraps a run of inline siblings.
	Anonymous bool

	Ctx      Context
	Children []*Node

	Text string

	Src    string
	Width  style.Optional[float32]
	Height style.Optional[float32]
}

// Style returns the resolved style of n.
func (n *Node) Style() *style.InheritedStyle { return &n.Ctx.Style }

// IsInline reports whether n participates in its parent's inline
// formatting context.
func (n *Node) IsInline() bool { return n.Ctx.Style.Display == style.DisplayInline }

// IsInlineRoot reports whether n lays out its content as lines: a text
// node, or a block container whose children are all inline.
func (n *Node) IsInlineRoot() bool {
	if n.Kind == node.KindText {
		return true
	}
	if n.Ctx.Style.Display != style.DisplayBlock || len(n.Children) == 0 {
		return false
	}
	for _, c := range n.Children {
		if !c.IsInline() {
			return false
		}
	}
	return true
}

// Walk calls fn for n and its descendants in pre-order.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Build resolves root against the root context. The root's style layers
// are consumed; building the same document twice panics.
func Build(root *node.Node, rc Context) *Node {
	n := build(root, &rc)
	if n == nil {
		// A display:none root still produces an empty box.
		return &Node{Kind: node.KindContainer, Anonymous: true, Ctx: rc}
	}
	n.blockify()
	return n
}

func build(src *node.Node, parent *Context) *Node {
	s := src.TakeStyle(parent.Metrics)
	ctx := parent.child(&s)
	if ctx.Style.Display == style.DisplayNone {
		return nil
	}

	n := &Node{
		Kind:   src.Kind,
		Ctx:    ctx,
		Text:   src.Text,
		Src:    src.Src,
		Width:  src.Width,
		Height: src.Height,
	}
	if src.Kind != node.KindContainer {
		return n
	}

	children := make([]*Node, 0, len(src.Children))
	for _, c := range src.Children {
		if child := build(c, &n.Ctx); child != nil {
			children = append(children, child)
		}
	}
	src.Children = nil

	switch n.Ctx.Style.Display {
	case style.DisplayFlex, style.DisplayGrid:
		for _, c := range children {
			c.blockify()
		}
	case style.DisplayBlock:
		children = n.wrapInline(children)
	}
	n.Children = children
	return n
}

func (n *Node) blockify() {
	if n.Ctx.Style.Display == style.DisplayInline {
		n.Ctx.Style.Display = style.DisplayBlock
	}
}

// wrapInline groups runs of inline children into anonymous block boxes
// when inline and block children are mixed. A run of one is blockified
// instead of wrapped.
func (n *Node) wrapInline(children []*Node) []*Node {
	hasInline, hasBlock := false, false
	for _, c := range children {
		if c.IsInline() {
			hasInline = true
		} else {
			hasBlock = true
		}
	}
	if !hasInline || !hasBlock {
		return children
	}

	out := make([]*Node, 0, len(children))
	var group []*Node
	flush := func() {
		switch len(group) {
		case 0:
			return
		case 1:
			group[0].blockify()
			out = append(out, group[0])
		default:
			out = append(out, n.anonymous(group))
		}
		group = nil
	}
	for _, c := range children {
		if c.IsInline() {
			group = append(group, c)
			continue
		}
		flush()
		out = append(out, c)
	}
	flush()
	return out
}

// anonymous returns a block box around children that inherits n's text
// properties and paints nothing itself.
func (n *Node) anonymous(children []*Node) *Node {
	s := style.Style{Display: style.Some(style.DisplayBlock)}
	return &Node{Kind: node.KindContainer, Anonymous: true, Ctx: n.Ctx.child(&s), Children: children}
}
