// Package document reads node trees from JSON files.
//
// A node is an object with a "type" of "container", "text" or "image".
// The type may be omitted when the node has "children", "text" or "src".
// Style layers go in "preset", "tw" and "style"; a bare string inside
// "children" is shorthand for a text node.
//
//	{
//	  "viewport": {"width": 600, "height": 315},
//	  "root": {
//	    "tw": "flex items-center justify-center bg-white",
//	    "children": ["Hello", {"src": "logo.png", "width": 64, "height": 64}]
//	  }
//	}
//
// An animation document lists "frames" instead of "root", each with a
// "duration" in milliseconds and a "root".
package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/gogpu/nodeimg/node"
	"github.com/gogpu/nodeimg/style"
	"github.com/gogpu/nodeimg/style/tw"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	// ErrUnknownType is returned for a node whose type is not recognized.
	ErrUnknownType = errors.New("document: unknown node type")

	// ErrNoRoot is returned when a document has neither a root nor frames.
	ErrNoRoot = errors.New("document: no root node")
)

// Viewport is the optional viewport a document asks for. Unset fields
// are nil.
type Viewport struct {
	Width            *uint32  `json:"width,omitempty"`
	Height           *uint32  `json:"height,omitempty"`
	FontSize         *float32 `json:"fontSize,omitempty"`
	DevicePixelRatio *float32 `json:"devicePixelRatio,omitempty"`
}

// Frame is one animation frame.
type Frame struct {
	Duration uint32
	Root     *node.Node
}

// Document is a decoded file. Exactly one of Root and Frames is set.
type Document struct {
	Viewport Viewport
	Root     *node.Node
	Frames   []Frame
}

type rawFrame struct {
	Duration uint32   `json:"duration"`
	Root     *rawNode `json:"root"`
}

type rawDocument struct {
	Viewport Viewport   `json:"viewport"`
	Root     *rawNode   `json:"root"`
	Frames   []rawFrame `json:"frames"`
}

// Decode reads a document. A file holding a bare node object is read as
// a document with that node as root.
func Decode(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("document: read: %w", err)
	}
	return Parse(data)
}

// Parse decodes a document from data.
func Parse(data []byte) (*Document, error) {
	var keys map[string]jsoniter.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return nil, fmt.Errorf("document: %w", err)
	}
	_, hasRoot := keys["root"]
	_, hasFrames := keys["frames"]
	if !hasRoot && !hasFrames {
		n, err := ParseNode(data)
		if err != nil {
			return nil, err
		}
		return &Document{Root: n}, nil
	}

	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("document: %w", err)
	}
	doc := &Document{Viewport: raw.Viewport}
	if raw.Root != nil {
		root, err := raw.Root.build("root")
		if err != nil {
			return nil, err
		}
		doc.Root = root
	}
	for i, f := range raw.Frames {
		if f.Root == nil {
			return nil, fmt.Errorf("%w in frame %d", ErrNoRoot, i)
		}
		root, err := f.Root.build(fmt.Sprintf("frames[%d].root", i))
		if err != nil {
			return nil, err
		}
		doc.Frames = append(doc.Frames, Frame{Duration: f.Duration, Root: root})
	}
	if doc.Root == nil && len(doc.Frames) == 0 {
		return nil, ErrNoRoot
	}
	return doc, nil
}

// ParseNode decodes a single node object.
func ParseNode(data []byte) (*node.Node, error) {
	var raw rawNode
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("document: %w", err)
	}
	return raw.build("root")
}

type rawNode struct {
	Type     string       `json:"type"`
	Preset   *style.Style `json:"preset"`
	TW       string       `json:"tw"`
	Style    *style.Style `json:"style"`
	Children []rawNode    `json:"children"`
	Text     *string      `json:"text"`
	Src      string       `json:"src"`
	Width    *float32     `json:"width"`
	Height   *float32     `json:"height"`
}

// UnmarshalJSON accepts a node object or a string of text.
func (r *rawNode) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = rawNode{Type: "text", Text: &s}
		return nil
	}
	type plain rawNode
	return json.Unmarshal(data, (*plain)(r))
}

func (r *rawNode) kind(path string) (node.Kind, error) {
	switch r.Type {
	case "container", "div":
		return node.KindContainer, nil
	case "text":
		return node.KindText, nil
	case "image", "img":
		return node.KindImage, nil
	case "":
		switch {
		case r.Text != nil:
			return node.KindText, nil
		case r.Src != "":
			return node.KindImage, nil
		}
		return node.KindContainer, nil
	}
	return 0, fmt.Errorf("%w %q at %s", ErrUnknownType, r.Type, path)
}

func (r *rawNode) build(path string) (*node.Node, error) {
	k, err := r.kind(path)
	if err != nil {
		return nil, err
	}
	n := &node.Node{Kind: k, Preset: r.Preset, Style: r.Style}
	if r.TW != "" {
		n.TW = tw.Parse(r.TW)
	}
	switch k {
	case node.KindText:
		if r.Text != nil {
			n.Text = *r.Text
		}
	case node.KindImage:
		n.Src = r.Src
		if r.Width != nil {
			n.Width = style.Some(*r.Width)
		}
		if r.Height != nil {
			n.Height = style.Some(*r.Height)
		}
	case node.KindContainer:
		n.Children = make([]*node.Node, 0, len(r.Children))
		for i := range r.Children {
			c, err := r.Children[i].build(fmt.Sprintf("%s.children[%d]", path, i))
			if err != nil {
				return nil, err
			}
			n.Children = append(n.Children, c)
		}
	}
	return n, nil
}
