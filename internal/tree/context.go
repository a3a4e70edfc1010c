package tree

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/nodeimg/geom"
	"github.com/gogpu/nodeimg/resource"
	"github.com/gogpu/nodeimg/style"
	"github.com/gogpu/nodeimg/text"
)

// Globals is the state shared by every node of one render. Images holds
// the sources resolved before layout; Store is consulted for persistent
// keys. Text is the render's shaping session and must not be shared
// between concurrent renders.
type Globals struct {
	Text   *text.Session
	Images map[string]*resource.Image
	Store  *resource.PersistentImageStore
	Logger *slog.Logger
}

// Image resolves src: data URIs are decoded in place, then the fetched
// set and the persistent store are consulted.
func (g *Globals) Image(src string) (*resource.Image, error) {
	if img, ok := g.Images[src]; ok {
		return img, nil
	}
	if resource.IsDataURI(src) {
		return resource.DecodeDataURI(src)
	}
	if g.Store != nil {
		if img, ok := g.Store.Get(src); ok {
			return img, nil
		}
	}
	return nil, fmt.Errorf("%w: %.64s", resource.ErrUnknownSource, src)
}

// Context is threaded through layout and paint for one node. It is a
// value; copying it is cheap and shares Global.
type Context struct {
	Global *Globals
	// Metrics has FontSize set to this node's font size.
	Metrics style.Metrics
	Style   style.InheritedStyle
	// Transform maps the node's local border-box space to canvas pixels.
	// It is filled in by the paint pass.
	Transform    geom.Affine
	CurrentColor style.Color
	// Opacity is the product of the opacities from the root down.
	Opacity float32
	Debug   bool
}

// RootContext returns the context the root node resolves against.
func RootContext(g *Globals, m style.Metrics, debug bool) Context {
	if g.Logger == nil {
		g.Logger = slog.New(slog.DiscardHandler)
	}
	s := style.Initial(m)
	return Context{
		Global:       g,
		Metrics:      s.Metrics(m),
		Style:        s,
		Transform:    geom.Identity(),
		CurrentColor: s.Color,
		Opacity:      1,
		Debug:        debug,
	}
}

func (c *Context) child(s *style.Style) Context {
	inh := style.Resolve(s, &c.Style, c.Metrics)
	return Context{
		Global:       c.Global,
		Metrics:      inh.Metrics(c.Metrics),
		Style:        inh,
		Transform:    c.Transform,
		CurrentColor: inh.Color,
		Opacity:      c.Opacity * inh.Opacity,
		Debug:        c.Debug,
	}
}

// Color resolves a color that may be currentColor.
func (c *Context) Color(ci style.ColorInput) style.Color {
	return ci.Resolve(c.CurrentColor)
}

// Px resolves l against base in device pixels.
func (c *Context) Px(l style.Length, base float32) float32 {
	return l.Resolve(c.Metrics, base)
}

// LineHeight returns the resolved line height in device pixels.
func (c *Context) LineHeight() float32 {
	return c.Style.LineHeight.Resolve(c.Metrics, c.Style.FontSize)
}

// LocalTransform returns the node's own transform for a border box of the
// given size, composed as transform, scale, rotate, translate about the
// transform origin.
func (c *Context) LocalTransform(size geom.Size) geom.Affine {
	s := &c.Style
	if len(s.Transform) == 0 && !s.Scale.IsSet() && !s.Rotate.IsSet() && !s.Translate.IsSet() {
		return geom.Identity()
	}
	origin := geom.Pt(
		float64(c.Px(s.TransformOrigin.X, float32(size.W))),
		float64(c.Px(s.TransformOrigin.Y, float32(size.H))),
	)

	m := geom.Identity()
	for _, op := range s.Transform {
		m = m.Mul(op.Affine(c.Metrics, size).About(origin))
	}
	if sc, ok := s.Scale.Get(); ok {
		m = m.Mul(geom.Scale(float64(sc.X), float64(sc.Y)).About(origin))
	}
	if deg, ok := s.Rotate.Get(); ok {
		m = m.Mul(style.TransformOp{Kind: style.TransformRotate, Angle: deg}.Affine(c.Metrics, size).About(origin))
	}
	if tr, ok := s.Translate.Get(); ok {
		m = m.Mul(geom.Translate(
			float64(c.Px(tr.X, float32(size.W))),
			float64(c.Px(tr.Y, float32(size.H))),
		))
	}
	return m
}

// TextQuery returns the font query for this node's text.
func (c *Context) TextQuery() text.Query {
	return text.Query{
		Families: c.Style.FontFamily,
		Weight:   c.Style.FontWeight,
		Style:    c.Style.FontStyle,
		Size:     c.Style.FontSize,
	}
}
