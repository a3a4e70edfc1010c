package layout

import (
	"github.com/kjk/flex"

	"github.com/gogpu/nodeimg/internal/tree"
	"github.com/gogpu/nodeimg/style"
)

// applyStyle translates the box-model properties of n into solver style.
func (b *bridge) applyStyle(fn *flex.Node, n *tree.Node) {
	s := n.Style()
	ctx := &n.Ctx

	if s.Display == style.DisplayFlex {
		fn.StyleSetFlexDirection(flexDirection(s.FlexDirection))
		fn.StyleSetFlexWrap(flexWrap(s.FlexWrap))
		fn.StyleSetJustifyContent(justify(s.JustifyContent))
		fn.StyleSetAlignItems(alignItems(s.AlignItems, flex.AlignStretch))
		fn.StyleSetAlignContent(alignContent(s.AlignContent))
	} else {
		// Blocks stack their children vertically at full width.
		fn.StyleSetFlexDirection(flex.FlexDirectionColumn)
		fn.StyleSetFlexWrap(flex.WrapNoWrap)
		fn.StyleSetJustifyContent(flex.JustifyFlexStart)
		fn.StyleSetAlignItems(flex.AlignStretch)
	}
	fn.StyleSetAlignSelf(alignItems(s.AlignSelf, flex.AlignAuto))
	fn.StyleSetFlexGrow(s.FlexGrow)
	fn.StyleSetFlexShrink(s.FlexShrink)
	setLength(ctx, s.FlexBasis, fn.StyleSetFlexBasis, fn.StyleSetFlexBasisPercent, func() { flex.NodeStyleSetFlexBasisAuto(fn) })

	if s.Position == style.PositionAbsolute {
		fn.StyleSetPositionType(flex.PositionTypeAbsolute)
	}
	setEdges(ctx, s.Inset, fn.StyleSetPosition, fn.StyleSetPositionPercent, nil)
	setEdges(ctx, s.Margin, fn.StyleSetMargin, fn.StyleSetMarginPercent, fn.StyleSetMarginAuto)
	setEdges(ctx, s.Padding, fn.StyleSetPadding, fn.StyleSetPaddingPercent, nil)
	for edge, l := range sideMap(s.BorderWidth) {
		fn.StyleSetBorder(edge, ctx.Px(l, 0))
	}

	// The solver sizes border boxes; content-box lengths grow by the
	// padding and border along their axis.
	var extraW, extraH float32
	if s.BoxSizing == style.BoxSizingContentBox {
		extraW = b.fixed(ctx, s.Padding.Left) + b.fixed(ctx, s.Padding.Right) + ctx.Px(s.BorderWidth.Left, 0) + ctx.Px(s.BorderWidth.Right, 0)
		extraH = b.fixed(ctx, s.Padding.Top) + b.fixed(ctx, s.Padding.Bottom) + ctx.Px(s.BorderWidth.Top, 0) + ctx.Px(s.BorderWidth.Bottom, 0)
	}
	w, h := s.Width, s.Height
	if wv, ok := n.Width.Get(); ok && w.IsAuto() {
		w = style.Px(wv)
	}
	if hv, ok := n.Height.Get(); ok && h.IsAuto() {
		h = style.Px(hv)
	}
	setSize(ctx, w, extraW, fn.StyleSetWidth, fn.StyleSetWidthPercent, fn.StyleSetWidthAuto)
	setSize(ctx, h, extraH, fn.StyleSetHeight, fn.StyleSetHeightPercent, fn.StyleSetHeightAuto)
	setSize(ctx, s.MinWidth, extraW, fn.StyleSetMinWidth, fn.StyleSetMinWidthPercent, nil)
	setSize(ctx, s.MinHeight, extraH, fn.StyleSetMinHeight, fn.StyleSetMinHeightPercent, nil)
	setSize(ctx, s.MaxWidth, extraW, fn.StyleSetMaxWidth, fn.StyleSetMaxWidthPercent, nil)
	setSize(ctx, s.MaxHeight, extraH, fn.StyleSetMaxHeight, fn.StyleSetMaxHeightPercent, nil)
	if s.AspectRatio > 0 {
		fn.StyleSetAspectRatio(s.AspectRatio)
	}

	if s.OverflowX != style.OverflowVisible || s.OverflowY != style.OverflowVisible {
		fn.StyleSetOverflow(flex.OverflowHidden)
	}
}

// fixed resolves a non-percentage length; percentages count as zero.
func (b *bridge) fixed(ctx *tree.Context, l style.Length) float32 {
	if l.IsPercent() {
		return 0
	}
	return ctx.Px(l, 0)
}

func setLength(ctx *tree.Context, l style.Length, px, pct func(float32), auto func()) {
	switch {
	case l.IsAuto():
		if auto != nil {
			auto()
		}
	case l.IsPercent():
		pct(l.Value)
	default:
		px(ctx.Px(l, 0))
	}
}

func setSize(ctx *tree.Context, l style.Length, extra float32, px, pct func(float32), auto func()) {
	setLength(ctx, l, func(v float32) { px(v + extra) }, pct, auto)
}

func setEdges(ctx *tree.Context, sides style.Sides[style.Length], px, pct func(flex.Edge, float32), auto func(flex.Edge)) {
	for edge, l := range sideMap(sides) {
		var autoFn func()
		if auto != nil {
			autoFn = func() { auto(edge) }
		}
		setLength(ctx, l,
			func(v float32) { px(edge, v) },
			func(v float32) { pct(edge, v) },
			autoFn,
		)
	}
}

func sideMap(s style.Sides[style.Length]) map[flex.Edge]style.Length {
	return map[flex.Edge]style.Length{
		flex.EdgeTop:    s.Top,
		flex.EdgeRight:  s.Right,
		flex.EdgeBottom: s.Bottom,
		flex.EdgeLeft:   s.Left,
	}
}

func flexDirection(d style.FlexDirection) flex.FlexDirection {
	switch d {
	case style.FlexDirectionColumn:
		return flex.FlexDirectionColumn
	case style.FlexDirectionRowReverse:
		return flex.FlexDirectionRowReverse
	case style.FlexDirectionColumnReverse:
		return flex.FlexDirectionColumnReverse
	}
	return flex.FlexDirectionRow
}

func flexWrap(w style.FlexWrap) flex.Wrap {
	switch w {
	case style.FlexWrapWrap:
		return flex.WrapWrap
	case style.FlexWrapWrapReverse:
		return flex.WrapWrapReverse
	}
	return flex.WrapNoWrap
}

func justify(j style.JustifyContent) flex.Justify {
	switch j {
	case style.JustifyContentEnd, style.JustifyContentFlexEnd:
		return flex.JustifyFlexEnd
	case style.JustifyContentCenter:
		return flex.JustifyCenter
	case style.JustifyContentSpaceBetween:
		return flex.JustifySpaceBetween
	case style.JustifyContentSpaceAround, style.JustifyContentSpaceEvenly:
		return flex.JustifySpaceAround
	}
	return flex.JustifyFlexStart
}

func alignItems(a style.AlignItems, normal flex.Align) flex.Align {
	switch a {
	case style.AlignItemsStart, style.AlignItemsFlexStart:
		return flex.AlignFlexStart
	case style.AlignItemsEnd, style.AlignItemsFlexEnd:
		return flex.AlignFlexEnd
	case style.AlignItemsCenter:
		return flex.AlignCenter
	case style.AlignItemsBaseline:
		return flex.AlignBaseline
	case style.AlignItemsStretch:
		return flex.AlignStretch
	}
	return normal
}

func alignContent(a style.JustifyContent) flex.Align {
	switch a {
	case style.JustifyContentStart, style.JustifyContentFlexStart:
		return flex.AlignFlexStart
	case style.JustifyContentEnd, style.JustifyContentFlexEnd:
		return flex.AlignFlexEnd
	case style.JustifyContentCenter:
		return flex.AlignCenter
	case style.JustifyContentSpaceBetween:
		return flex.AlignSpaceBetween
	case style.JustifyContentSpaceAround, style.JustifyContentSpaceEvenly:
		return flex.AlignSpaceAround
	}
	return flex.AlignStretch
}
