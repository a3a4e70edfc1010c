// Package node defines the document tree a render consumes: containers,
// text and images, each carrying up to three style layers.
package node

import (
	"github.com/gogpu/nodeimg/style"
	"github.com/gogpu/nodeimg/style/tw"
)

// Kind selects the variant of a Node.
type Kind uint8

const (
	KindContainer Kind = iota
	KindText
	KindImage
)

func (k Kind) String() string {
	switch k {
	case KindContainer:
		return "container"
	case KindText:
		return "text"
	case KindImage:
		return "image"
	}
	return "unknown"
}

// Node is one element of the tree. Which fields are meaningful depends on
// Kind: Children for containers, Text for text, Src, Width and Height for
// images. A parent owns its children; nodes are not shared between trees.
//
// A node's style layers are applied lowest first: Preset, then the utility
// classes in TW, then Style. They are consumed by TakeStyle.
type Node struct {
	Kind Kind

	Preset *style.Style
	TW     tw.Classes
	Style  *style.Style

	Children []*Node

	Text string

	Src    string
	Width  style.Optional[float32]
	Height style.Optional[float32]

	taken bool
}

// Container returns a container holding children in order.
func Container(children ...*Node) *Node {
	return &Node{Kind: KindContainer, Children: children}
}

// Text returns a text node.
func Text(s string) *Node {
	return &Node{Kind: KindText, Text: s}
}

// Image returns an image node. src is a network URL, a data URI or the key
// of a persistent image.
func Image(src string) *Node {
	return &Node{Kind: KindImage, Src: src}
}

// WithStyle sets the inline style layer and returns n.
func (n *Node) WithStyle(s style.Style) *Node {
	n.Style = &s
	return n
}

// WithPreset sets the preset layer and returns n.
func (n *Node) WithPreset(s style.Style) *Node {
	n.Preset = &s
	return n
}

// WithTW parses utility classes into the derived layer and returns n.
func (n *Node) WithTW(classes string) *Node {
	n.TW = tw.Parse(classes)
	return n
}

// WithSize sets the intrinsic size override of an image node and returns n.
func (n *Node) WithSize(width, height float32) *Node {
	n.Width, n.Height = style.Some(width), style.Some(height)
	return n
}

// merged folds the three layers without consuming them.
func (n *Node) merged(m style.Metrics) style.Style {
	var s style.Style
	s.Merge(n.Preset)
	n.TW.Apply(&s, m)
	s.Merge(n.Style)
	return s
}

// TakeStyle merges the node's layers for the viewport described by m and
// releases them. Taking a node's style twice is a programming error and
// panics.
func (n *Node) TakeStyle(m style.Metrics) style.Style {
	if n.taken {
		panic("node: style of " + n.Kind.String() + " node taken twice")
	}
	s := n.merged(m)
	n.Preset, n.Style, n.TW = nil, nil, tw.Classes{}
	n.taken = true
	return s
}

// Walk calls fn for n and its descendants in pre-order. Returning false
// from fn skips the children of that node.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Count returns the number of nodes in the tree rooted at n.
func (n *Node) Count() int {
	total := 0
	n.Walk(func(*Node) bool {
		total++
		return true
	})
	return total
}

// Sources returns every image reference in the tree in first-seen order
// without duplicates: image node sources and background and mask image
// URLs. m selects which breakpoint utilities apply.
func (n *Node) Sources(m style.Metrics) []string {
	var out []string
	seen := make(map[string]struct{})
	add := func(src string) {
		if src == "" {
			return
		}
		if _, ok := seen[src]; ok {
			return
		}
		seen[src] = struct{}{}
		out = append(out, src)
	}
	n.Walk(func(n *Node) bool {
		if n.Kind == KindImage {
			add(n.Src)
		}
		if n.taken {
			return true
		}
		s := n.merged(m)
		if imgs, ok := s.BackgroundImage.Get(); ok {
			for _, u := range imgs.URLs() {
				add(u)
			}
		}
		if imgs, ok := s.MaskImage.Get(); ok {
			for _, u := range imgs.URLs() {
				add(u)
			}
		}
		return true
	})
	return out
}
