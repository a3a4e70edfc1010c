package layout

import (
	"github.com/kjk/flex"

	"github.com/gogpu/nodeimg/internal/tree"
	"github.com/gogpu/nodeimg/style"
)

// buildGrid lays out the children of a grid container. The solver has no
// grid algorithm, so the container becomes a column of anonymous row
// nodes, each holding one anonymous cell per column track. Items are
// auto-placed in document order, one per cell. Anonymous nodes carry an
// entry without a render node and are folded away by extract.
//
// Fixed and percentage tracks give every row the same column widths.
// Flexible tracks share what is left of the row after fixed tracks and
// gaps. Auto tracks are sized per row from their item.
func (b *bridge) buildGrid(fn *flex.Node, n *tree.Node) {
	s := n.Style()
	ctx := &n.Ctx
	cols := s.GridTemplateColumns
	if len(cols) == 0 {
		cols = style.GridTracks{style.Fr(1)}
	}
	colGap, rowGap := ctx.Px(s.ColumnGap, 0), ctx.Px(s.RowGap, 0)

	var row *flex.Node
	placed, rows := 0, 0
	for _, c := range n.Children {
		child := b.build(c)
		if c.Style().Position == style.PositionAbsolute {
			fn.InsertChild(child, len(fn.Children))
			continue
		}
		col := placed % len(cols)
		if col == 0 {
			row = b.gridRow(ctx, trackAt(s.GridTemplateRows, rows))
			if rows > 0 && rowGap > 0 {
				row.StyleSetMargin(flex.EdgeTop, rowGap)
			}
			fn.InsertChild(row, len(fn.Children))
			rows++
		}
		cell := b.gridCell(ctx, cols[col])
		if col > 0 && colGap > 0 {
			cell.StyleSetMargin(flex.EdgeLeft, colGap)
		}
		if c.Style().Width.IsAuto() {
			child.StyleSetFlexGrow(1)
		}
		cell.InsertChild(child, 0)
		row.InsertChild(cell, len(row.Children))
		placed++
	}
}

// trackAt returns the explicit track i, or auto for implicit tracks.
func trackAt(tracks style.GridTracks, i int) style.GridTrack {
	if i < len(tracks) {
		return tracks[i]
	}
	return style.Track(style.Auto)
}

func (b *bridge) gridRow(ctx *tree.Context, t style.GridTrack) *flex.Node {
	row := b.anonymous(flex.FlexDirectionRow)
	switch {
	case t.IsFlexible():
		row.StyleSetFlexGrow(t.Fr)
		row.StyleSetFlexShrink(1)
		row.StyleSetFlexBasis(0)
	default:
		row.StyleSetFlexShrink(0)
		setLength(ctx, t.Size, row.StyleSetHeight, row.StyleSetHeightPercent, nil)
	}
	return row
}

func (b *bridge) gridCell(ctx *tree.Context, t style.GridTrack) *flex.Node {
	cell := b.anonymous(flex.FlexDirectionRow)
	switch {
	case t.IsFlexible():
		cell.StyleSetFlexGrow(t.Fr)
		cell.StyleSetFlexShrink(1)
		cell.StyleSetFlexBasis(0)
		cell.StyleSetMinWidth(0)
	default:
		cell.StyleSetFlexShrink(0)
		setLength(ctx, t.Size, cell.StyleSetWidth, cell.StyleSetWidthPercent, nil)
	}
	return cell
}

// anonymous returns a solver node with no render node behind it. Its
// children stretch across the cross axis.
func (b *bridge) anonymous(dir flex.FlexDirection) *flex.Node {
	fn := flex.NewNodeWithConfig(b.config)
	fn.Context = &entry{}
	fn.StyleSetFlexDirection(dir)
	fn.StyleSetFlexWrap(flex.WrapNoWrap)
	fn.StyleSetAlignItems(flex.AlignStretch)
	return fn
}
