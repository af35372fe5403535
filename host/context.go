// SPDX-License-Identifier: Unlicense OR MIT

package host

import (
	"sync"

	"gioui.org/layout"
	"gioui.org/op"
)

// Invalidator requests a new frame. It must be safe to call from any
// goroutine. *app.Window implements Invalidator.
type Invalidator interface {
	Invalidate()
}

// Context is the capability handle passed to the widgets of this
// module: the layout context of the current frame plus persistent
// memory and a handle to the window.
type Context struct {
	layout.Context
	// Memory persists values across frames. It may be nil, in which
	// case widgets fall back to per-frame state.
	Memory *Memory
	// Window is used to request frames from other goroutines. It may
	// be nil.
	Window Invalidator
}

// Widget is like layout.Widget, but receives a Context.
type Widget func(ctx Context) layout.Dimensions

// NewContext wraps gtx.
func NewContext(gtx layout.Context, mem *Memory, w Invalidator) Context {
	return Context{Context: gtx, Memory: mem, Window: w}
}

// With returns a copy of c with its layout context replaced by gtx.
func (c Context) With(gtx layout.Context) Context {
	c.Context = gtx
	return c
}

// RequestRepaint schedules another frame after the current one.
func (c Context) RequestRepaint() {
	if c.Ops == nil {
		return
	}
	op.InvalidateOp{}.Add(c.Ops)
}

// Lift adapts a layout.Widget to a Widget.
func Lift(w layout.Widget) Widget {
	return func(ctx Context) layout.Dimensions {
		return w(ctx.Context)
	}
}

var scratchOps = sync.Pool{
	New: func() interface{} { return new(op.Ops) },
}

// Hidden lays out w without producing visible output or delivering
// input events, and returns the dimensions w would have covered.
//
// w records into a scratch operation list, so a panic in w leaves the
// operation list of gtx balanced.
func Hidden(gtx layout.Context, w layout.Widget) layout.Dimensions {
	ops := scratchOps.Get().(*op.Ops)
	ops.Reset()
	defer scratchOps.Put(ops)
	gtx = gtx.Disabled()
	gtx.Ops = ops
	return w(gtx)
}
