package layout

import (
	"github.com/kjk/flex"

	"github.com/gogpu/nodeimg/internal/inline"
	"github.com/gogpu/nodeimg/internal/tree"
	"github.com/gogpu/nodeimg/node"
	"github.com/gogpu/nodeimg/resource"
	"github.com/gogpu/nodeimg/style"
)

// measureInline sizes an inline root. An undefined width mode means
// max-content; otherwise the text wraps at the offered width. Height is
// limited by the viewport height and the line clamp.
func (b *bridge) measureInline(e *entry) flex.MeasureFunc {
	return func(_ *flex.Node, width float32, widthMode flex.MeasureMode, height float32, heightMode flex.MeasureMode) flex.Size {
		avail := width
		if widthMode == flex.MeasureModeUndefined || avail != avail {
			avail = unbounded
		}
		w, h := e.para.Measure(avail, b.measureLimit(e.node))
		if widthMode == flex.MeasureModeExactly {
			w = width
		}
		if heightMode == flex.MeasureModeExactly {
			h = height
		} else if heightMode == flex.MeasureModeAtMost && h > height {
			h = height
		}
		return flex.Size{Width: w, Height: h}
	}
}

// measureLimit is the height policy while sizing: only the viewport height
// and the line clamp are known before the solve.
func (b *bridge) measureLimit(n *tree.Node) inline.MaxHeight {
	clamp, clamped := n.Style().LineClamp.Get()
	switch {
	case b.viewport.Height > 0 && clamped:
		return inline.Both(b.viewport.Height, clamp.Count)
	case b.viewport.Height > 0:
		return inline.Absolute(b.viewport.Height)
	case clamped:
		return inline.Lines(clamp.Count)
	}
	return inline.Unlimited
}

// drawLimit is the height policy for the final layout of an inline root
// whose content box is h high.
func drawLimit(n *tree.Node, h float32) inline.MaxHeight {
	if clamp, ok := n.Style().LineClamp.Get(); ok {
		return inline.Both(h, clamp.Count)
	}
	return inline.Absolute(h)
}

// measureImage reports the natural size of an image in device pixels.
// Explicit node dimensions win; a single known dimension keeps the
// natural aspect ratio. An unresolved image measures zero.
func (b *bridge) measureImage(e *entry) flex.MeasureFunc {
	return func(_ *flex.Node, width float32, widthMode flex.MeasureMode, height float32, heightMode flex.MeasureMode) flex.Size {
		w, h := b.naturalSize(e.node, e.image)
		switch {
		case widthMode == flex.MeasureModeExactly && heightMode == flex.MeasureModeExactly:
			return flex.Size{Width: width, Height: height}
		case widthMode == flex.MeasureModeExactly:
			if w > 0 {
				h = h * width / w
			}
			w = width
		case heightMode == flex.MeasureModeExactly:
			if h > 0 {
				w = w * height / h
			}
			h = height
		}
		if widthMode == flex.MeasureModeAtMost && w > width {
			if w > 0 {
				h = h * width / w
			}
			w = width
		}
		return flex.Size{Width: w, Height: h}
	}
}

func (b *bridge) naturalSize(n *tree.Node, img *resource.Image) (w, h float32) {
	dpr := n.Ctx.Metrics.DPR
	if dpr == 0 {
		dpr = 1
	}
	if img != nil {
		iw, ih := img.Size()
		w, h = float32(iw)*dpr, float32(ih)*dpr
	}
	nw, hasW := n.Width.Get()
	nh, hasH := n.Height.Get()
	switch {
	case hasW && hasH:
		return nw * dpr, nh * dpr
	case hasW:
		if w > 0 {
			h = h * nw * dpr / w
		}
		w = nw * dpr
	case hasH:
		if h > 0 {
			w = w * nh * dpr / h
		}
		h = nh * dpr
	}
	return w, h
}

// atomicSize returns the margin box of an atomic inline. Its content is
// the image's natural size or, for containers, its own explicit size.
func (b *bridge) atomicSize(n *tree.Node) (w, h float32) {
	m, bw, p := b.boxEdges(n)
	s := n.Style()
	ctx := &n.Ctx

	var cw, ch float32
	if n.Kind == node.KindImage {
		cw, ch = b.naturalSize(n, b.resolveImage(n))
	}
	if !s.Width.IsAuto() && !s.Width.IsPercent() {
		cw = ctx.Px(s.Width, 0)
		if s.BoxSizing == style.BoxSizingBorderBox {
			cw = max(cw-p.Left-p.Right-bw.Left-bw.Right, 0)
		}
	}
	if !s.Height.IsAuto() && !s.Height.IsPercent() {
		ch = ctx.Px(s.Height, 0)
		if s.BoxSizing == style.BoxSizingBorderBox {
			ch = max(ch-p.Top-p.Bottom-bw.Top-bw.Bottom, 0)
		}
	}
	w = cw + m.Left + m.Right + bw.Left + bw.Right + p.Left + p.Right
	h = ch + m.Top + m.Bottom + bw.Top + bw.Bottom + p.Top + p.Bottom
	return w, h
}

// boxEdges resolves the fixed margin, border and padding of n. Percentages
// and auto count as zero inside a line.
func (b *bridge) boxEdges(n *tree.Node) (margin, border, padding Edges) {
	s := n.Style()
	ctx := &n.Ctx
	resolve := func(sides style.Sides[style.Length]) Edges {
		return Edges{
			Top:    b.fixed(ctx, sides.Top),
			Right:  b.fixed(ctx, sides.Right),
			Bottom: b.fixed(ctx, sides.Bottom),
			Left:   b.fixed(ctx, sides.Left),
		}
	}
	return resolve(s.Margin), resolve(s.BorderWidth), resolve(s.Padding)
}
