// SPDX-License-Identifier: Unlicense OR MIT

/*
Package dnd implements a vertical list whose items can be reordered by
dragging.

Each item lays out a Handle; dragging the handle lifts the item, which
then follows the pointer while the other items make room for it. On
release the list reports the move once, and the caller reorders its
data:

	if u, ok := list.Dropped(); ok {
		dnd.Shift(items, u.From, u.To)
	}
	list.Layout(gtx, len(items), func(gtx layout.Context, i int, h *dnd.Handle, dragging bool) layout.Dimensions {
		return h.Layout(gtx, material.Body1(th, items[i]).Layout)
	})
*/
package dnd

import (
	"image"

	"gioui.org/gesture"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
)

// inf is the height available to an item.
const inf = 1e6

// List is the state of a reorderable vertical list.
type List struct {
	drag    drag
	handles []*Handle
	// heights and tops are the item sizes and positions as last drawn.
	heights []int
	tops    []int
}

// Element lays out item i of a List. The item should lay out its
// handle with h.Layout. dragging is set for the item being dragged.
type Element func(gtx layout.Context, i int, h *Handle, dragging bool) layout.Dimensions

// Handle is the part of an item that starts a drag.
type Handle struct {
	drag  gesture.Drag
	list  *List
	index int
}

// Layout lays out w as the handle.
func (h *Handle) Layout(gtx layout.Context, w layout.Widget) layout.Dimensions {
	h.list.update(gtx, h)
	macro := op.Record(gtx.Ops)
	dims := w(gtx)
	call := macro.Stop()
	defer clip.Rect{Max: dims.Size}.Push(gtx.Ops).Pop()
	if h.list.drag.phase == Dragging && h.list.drag.from == h.index {
		pointer.CursorGrabbing.Add(gtx.Ops)
	} else {
		pointer.CursorGrab.Add(gtx.Ops)
	}
	h.drag.Add(gtx.Ops)
	call.Add(gtx.Ops)
	return dims
}

// Phase returns the state of the drag.
func (l *List) Phase() Phase {
	return l.drag.phase
}

// Dragging returns the move the list would report if the dragged item
// were released now.
func (l *List) Dragging() (Update, bool) {
	if l.drag.phase != Dragging {
		return Update{}, false
	}
	return Update{From: l.drag.from, To: l.drag.to}, true
}

// Dropped returns the move of the most recently released item. It
// reports a move once, and only until the next Layout.
func (l *List) Dropped() (Update, bool) {
	return l.drag.take()
}

func (l *List) update(gtx layout.Context, h *Handle) {
	for _, e := range h.drag.Events(gtx.Metric, gtx, gesture.Vertical) {
		switch e.Type {
		case pointer.Press:
			if l.drag.phase == Dragging {
				continue
			}
			top := 0
			if h.index < len(l.tops) {
				top = l.tops[h.index]
			}
			l.drag.start(h.index, float32(top), e.Position.Y)
		case pointer.Drag:
			if l.drag.phase == Dragging && l.drag.from == h.index {
				// Positions are relative to the handle as last drawn.
				y := l.drag.top + e.Position.Y
				l.drag.move(e.Position.Y)
				l.drag.to = insertion(l.heights, h.index, y)
			}
		case pointer.Release:
			if l.drag.phase == Dragging && l.drag.from == h.index {
				l.drag.release()
				op.InvalidateOp{}.Add(gtx.Ops)
			}
		case pointer.Cancel:
			if l.drag.from == h.index {
				l.drag.cancel()
			}
		}
	}
}

// Layout lays out n items from top to bottom.
func (l *List) Layout(gtx layout.Context, n int, el Element) layout.Dimensions {
	if l.drag.phase == Dropped {
		// Not picked up by Dropped during the previous frame.
		l.drag.phase = Idle
	}
	if l.drag.phase == Dragging && l.drag.from >= n {
		l.drag.cancel()
	}
	l.resize(n)

	// The dragged item moves first so that the others make room for
	// its new position in this frame.
	if l.drag.phase == Dragging {
		l.update(gtx, l.handles[l.drag.from])
	}

	cs := gtx.Constraints
	dragging := l.drag.phase == Dragging
	width := cs.Min.X
	y := 0
	slot := 0
	for i := 0; i < n; i++ {
		if dragging && i == l.drag.from {
			continue
		}
		if dragging && slot == l.drag.to {
			y += l.heights[l.drag.from]
		}
		slot++
		call, dims := l.element(gtx, i, el, false)
		l.place(gtx.Ops, call, i, y)
		y += dims.Size.Y
		width = max(width, dims.Size.X)
	}
	if dragging {
		i := l.drag.from
		if slot == l.drag.to {
			y += l.heights[i]
		}
		call, dims := l.element(gtx, i, el, true)
		width = max(width, dims.Size.X)
		// The lifted item stays within the list and is drawn above
		// everything else.
		top := int(l.drag.next + .5)
		top = max(min(top, y-dims.Size.Y), 0)
		l.drag.top = float32(top)
		l.drag.next = l.drag.top
		l.tops[i] = top
		macro := op.Record(gtx.Ops)
		op.Offset(image.Pt(0, top)).Add(gtx.Ops)
		call.Add(gtx.Ops)
		op.Defer(gtx.Ops, macro.Stop())
	}
	return layout.Dimensions{Size: cs.Constrain(image.Pt(width, y))}
}

// element records item i.
func (l *List) element(gtx layout.Context, i int, el Element, dragging bool) (op.CallOp, layout.Dimensions) {
	h := l.handles[i]
	h.list = l
	h.index = i
	gtx.Constraints.Min.Y = 0
	gtx.Constraints.Max.Y = inf
	macro := op.Record(gtx.Ops)
	dims := el(gtx, i, h, dragging)
	call := macro.Stop()
	l.heights[i] = dims.Size.Y
	return call, dims
}

func (l *List) place(ops *op.Ops, call op.CallOp, i, y int) {
	l.tops[i] = y
	defer op.Offset(image.Pt(0, y)).Push(ops).Pop()
	call.Add(ops)
}

func (l *List) resize(n int) {
	for len(l.handles) < n {
		l.handles = append(l.handles, new(Handle))
		l.heights = append(l.heights, 0)
		l.tops = append(l.tops, 0)
	}
	l.handles = l.handles[:n]
	l.heights = l.heights[:n]
	l.tops = l.tops[:n]
}
