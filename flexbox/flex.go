// SPDX-License-Identifier: Unlicense OR MIT

package flexbox

import (
	"image"
	"log"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/unit"

	"gioui.org/extra/host"
)

// Flex lays out children along an axis, distributing the main axis
// according to their Item hints. Flex does not wrap.
type Flex struct {
	// Direction is the main axis.
	Direction Direction
	// AlignItems is the cross-axis alignment of children without an
	// AlignSelf.
	AlignItems Align
	// AlignContent positions a child inside its cell when the child
	// is smaller than the cell.
	AlignContent layout.Direction
	// Gap is the space between adjacent children.
	Gap unit.Dp
	// ID identifies the container across frames. Containers must have
	// distinct IDs; a zero ID disables caching.
	ID host.ID
}

// Widget is implemented by widgets that adapt to the cell they are
// given, such as the styles returned by Button.
type Widget interface {
	// FlexLayout lays out the widget in a cell of the given size. The
	// cell is zero while the widget is being measured.
	FlexLayout(ctx host.Context, cell image.Point) layout.Dimensions
}

// Instance collects the children of a Flex during a frame.
type Instance struct {
	children []child
	rects    []image.Rectangle
}

type childKind uint8

const (
	kindSimple childKind = iota
	kindContainer
	kindWidget
)

type child struct {
	item      Item
	kind      childKind
	simple    host.Widget
	container func(ctx host.Context, c *Content) layout.Dimensions
	widget    Widget
	content   Content
}

// state is the part of a Flex that survives across frames.
type state struct {
	cache Cache
	// ops holds the recording of every child, so that a child that
	// panics half way cannot unbalance the operations of the frame.
	ops []*op.Ops
}

// Add a Gio widget. The widget is laid out with its minimum
// constraints cleared.
func (in *Instance) Add(item Item, w layout.Widget) {
	in.AddSimple(item, host.Lift(w))
}

// AddSimple adds a widget that receives the capability handle, for
// example to lay out a nested Flex.
func (in *Instance) AddSimple(item Item, w host.Widget) {
	in.children = append(in.children, child{item: item, kind: kindSimple, simple: w})
}

// AddContainer adds a widget that fills its cell, typically a frame or
// a background, and lays out its content through c. The content is
// positioned inside the frame according to Flex.AlignContent.
func (in *Instance) AddContainer(item Item, w func(ctx host.Context, c *Content) layout.Dimensions) {
	in.children = append(in.children, child{item: item, kind: kindContainer, container: w})
}

// AddWidget adds a widget that adapts to its cell.
func (in *Instance) AddWidget(item Item, w Widget) {
	in.children = append(in.children, child{item: item, kind: kindWidget, widget: w})
}

// Len returns the number of children added so far.
func (in *Instance) Len() int {
	return len(in.children)
}

// Rects returns the cells of the children, relative to the container,
// as computed by the most recent Layout.
func (in *Instance) Rects() []image.Rectangle {
	return in.rects
}

func (c *child) layout(ctx host.Context, cell image.Point) layout.Dimensions {
	switch c.kind {
	case kindContainer:
		return c.container(ctx, &c.content)
	case kindWidget:
		return c.widget.FlexLayout(ctx, cell)
	default:
		return c.simple(ctx)
	}
}

// Layout calls children to collect the children of the container and
// lays them out.
//
// Children without a cached size are measured in a hidden pass first.
// When that happens, or when a child turns out to have a different
// size than cached, Layout requests another frame so the next one can
// use the updated sizes.
func (f Flex) Layout(ctx host.Context, children func(in *Instance)) layout.Dimensions {
	st, persistent := f.state(ctx)
	defer st.cache.EndFrame()
	in := new(Instance)
	children(in)
	dims, dirty := f.layout(ctx, st, in)
	if dirty && persistent {
		ctx.RequestRepaint()
	}
	return dims
}

// Remeasure drops the cached sizes of the container, so that the next
// Layout measures every child again.
func (f Flex) Remeasure(ctx host.Context) {
	if st, ok := host.Get[*state](ctx.Memory, f.stateID()); ok {
		st.cache.Clear()
	}
}

func (f Flex) stateID() host.ID {
	return f.ID.With("flexbox")
}

func (f Flex) state(ctx host.Context) (*state, bool) {
	if f.ID == 0 || ctx.Memory == nil {
		return new(state), false
	}
	st := host.GetOrInsert(ctx.Memory, f.stateID(), func() *state {
		return new(state)
	})
	return st, true
}

func (st *state) childOps(i int) *op.Ops {
	for len(st.ops) <= i {
		st.ops = append(st.ops, new(op.Ops))
	}
	return st.ops[i]
}

func (f Flex) layout(ctx host.Context, st *state, in *Instance) (layout.Dimensions, bool) {
	gtx := ctx.Context
	axis := f.Direction
	cs := gtx.Constraints
	mainMin, mainMax := axis.Convert(cs.Min).X, axis.Convert(cs.Max).X
	crossMin, crossMax := axis.Convert(cs.Min).Y, axis.Convert(cs.Max).Y
	n := len(in.children)
	gap := gtx.Dp(f.Gap)
	dirty := false

	// Phase A: cached or measured intrinsic sizes.
	keys := make([]Key, n)
	sizes := make([]Size, n)
	failed := make([]bool, n)
	for i := range in.children {
		c := &in.children[i]
		keys[i] = c.item.key(i)
		if sz, ok := st.cache.Get(keys[i]); ok {
			sizes[i] = sz
			continue
		}
		stretch := c.item.align(f.AlignItems) == Stretch
		sz, ok := measure(ctx, axis, keys[i], c, stretch, crossMin, crossMax)
		if !ok {
			st.cache.Fail(keys[i])
			failed[i] = true
			continue
		}
		st.cache.Put(keys[i], sz)
		sizes[i] = sz
		dirty = true
	}

	// Phase B: allocate, align and draw.
	lines := make([]Line, n)
	for i := range in.children {
		intrinsic := sizes[i].Main
		if sizes[i].Fills {
			intrinsic = mainMax
		}
		lines[i] = in.children[i].item.line(gtx.Metric, intrinsic)
	}
	mains := Allocate(lines, mainMax, gap)
	cross := crossExtent(sizes, crossMin, crossMax)
	total := 0
	for _, m := range mains {
		total += m
	}
	if n > 1 {
		total += gap * (n - 1)
	}
	size := cs.Constrain(axis.Convert(image.Pt(max(total, mainMin), cross)))
	bounds := image.Rectangle{Max: size}
	defer clip.Rect(bounds).Push(gtx.Ops).Pop()

	in.rects = make([]image.Rectangle, n)
	mainOff := 0
	for i := range in.children {
		c := &in.children[i]
		a := c.item.align(f.AlignItems)
		off, crossSize := alignCross(a, sizes[i], cross)
		stretched := a == Stretch
		cell := axis.Convert(image.Pt(mains[i], crossSize))
		pos := axis.Convert(image.Pt(mainOff, off))
		in.rects[i] = image.Rectangle{Min: pos, Max: pos.Add(cell)}.Intersect(bounds)
		mainOff += mains[i] + gap

		// A stretched child gets its cross size exactly, also when the
		// stretch degraded to the size forced during measurement.
		ccs := layout.Constraints{Max: axis.Convert(image.Pt(mains[i], cross-off))}
		switch {
		case c.kind == kindContainer:
			ccs.Min = cell
		case stretched:
			ccs.Min = axis.Convert(image.Pt(0, crossSize))
		}
		if stretched {
			ccs.Max = cell
		}
		dims, call, ok := f.draw(ctx, st, keys[i], i, c, ccs, cell)
		if !ok {
			st.cache.Fail(keys[i])
			continue
		}
		rendered := dims.Size
		if rendered.X > ccs.Max.X {
			rendered.X = ccs.Max.X
		}
		if rendered.Y > ccs.Max.Y {
			rendered.Y = ccs.Max.Y
		}
		fit := image.Pt(min(rendered.X, cell.X), min(rendered.Y, cell.Y))
		trans := op.Offset(pos).Push(gtx.Ops)
		cl := clip.Rect{Max: cell}.Push(gtx.Ops)
		content := op.Offset(f.AlignContent.Position(fit, cell)).Push(gtx.Ops)
		call.Add(gtx.Ops)
		content.Pop()
		cl.Pop()
		trans.Pop()

		// A child whose measurement failed is measured again next frame.
		if failed[i] {
			continue
		}
		if st.cache.Put(keys[i], observed(axis, sizes[i], c, rendered, cell, stretched)) {
			dirty = true
		}
	}
	return layout.Dimensions{Size: size}, dirty
}

// draw records a child into its own operation list.
func (f Flex) draw(ctx host.Context, st *state, key Key, i int, c *child, cs layout.Constraints, cell image.Point) (dims layout.Dimensions, call op.CallOp, ok bool) {
	ops := st.childOps(i)
	ops.Reset()
	defer func() {
		if err := recover(); err != nil {
			log.Printf("flexbox: laying out child %v: %v", key, err)
			dims, call, ok = layout.Dimensions{}, op.CallOp{}, false
		}
	}()
	gtx := ctx.Context
	gtx.Ops = ops
	gtx.Constraints = cs
	c.content = Content{align: f.AlignContent}
	macro := op.Record(ops)
	dims = c.layout(ctx.With(gtx), cell)
	call = macro.Stop()
	return dims, call, true
}

// observed derives the size to cache for a child from the size it was
// drawn with. The cross size is taken unless the child was stretched.
// The main size is taken only when the child came out smaller than a
// cell at least as large as its cached size; a child squeezed below
// its cached size cannot tell its intrinsic size. A child that fills
// its cell keeps filling until it comes out smaller.
func observed(axis layout.Axis, prev Size, c *child, rendered, cell image.Point, stretched bool) Size {
	if c.kind == kindContainer && c.content.set {
		// The frame fills the cell; what counts is the content plus
		// the frame decorations.
		slack := c.content.inner.Sub(c.content.size)
		rendered = rendered.Sub(image.Pt(max(slack.X, 0), max(slack.Y, 0)))
	}
	r := axis.Convert(rendered)
	cl := axis.Convert(cell)
	sz := prev
	if !stretched {
		sz.Cross = r.Y
	}
	switch {
	case prev.Fills:
		if r.X < cl.X {
			sz.Main, sz.Fills = r.X, false
		}
	case r.X < cl.X && cl.X >= prev.Main:
		sz.Main = r.X
	}
	return sz
}
