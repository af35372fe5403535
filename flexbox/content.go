// SPDX-License-Identifier: Unlicense OR MIT

package flexbox

import (
	"image"

	"gioui.org/layout"
	"gioui.org/op"

	"gioui.org/extra/host"
)

// Content positions the content of a child added with AddContainer
// inside the frame drawn by the child.
type Content struct {
	align layout.Direction

	set   bool
	inner image.Point
	size  image.Point
}

// Layout lays out w with the minimum constraints cleared and positions
// it within the minimum size of ctx according to the AlignContent of
// the container. The result covers at least the minimum size.
func (c *Content) Layout(ctx host.Context, w host.Widget) layout.Dimensions {
	gtx := ctx.Context
	inner := gtx.Constraints.Min
	macro := op.Record(gtx.Ops)
	gtx.Constraints.Min = image.Point{}
	dims := w(ctx.With(gtx))
	call := macro.Stop()
	sz := image.Pt(max(dims.Size.X, inner.X), max(dims.Size.Y, inner.Y))
	c.set = true
	c.inner = sz
	c.size = dims.Size
	p := c.align.Position(dims.Size, sz)
	defer op.Offset(p).Push(gtx.Ops).Pop()
	call.Add(gtx.Ops)
	return layout.Dimensions{
		Size:     sz,
		Baseline: dims.Baseline + sz.Y - dims.Size.Y - p.Y,
	}
}
