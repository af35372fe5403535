// SPDX-License-Identifier: Unlicense OR MIT

package host

import (
	"image"
	"testing"

	"gioui.org/io/router"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
)

func TestHidden(t *testing.T) {
	var r router.Router
	ops := new(op.Ops)
	gtx := layout.Context{
		Ops:         ops,
		Constraints: layout.Exact(image.Pt(40, 30)),
		Queue:       &r,
	}
	var sawQueue bool
	dims := Hidden(gtx, func(gtx layout.Context) layout.Dimensions {
		sawQueue = gtx.Queue != nil
		defer clip.Rect{Max: gtx.Constraints.Min}.Push(gtx.Ops).Pop()
		op.InvalidateOp{}.Add(gtx.Ops)
		return layout.Dimensions{Size: gtx.Constraints.Min}
	})
	if got, want := dims.Size, image.Pt(40, 30); got != want {
		t.Errorf("Hidden size %v, want %v", got, want)
	}
	if sawQueue {
		t.Error("hidden widget received the event queue")
	}
	r.Frame(ops)
	if _, wakeup := r.WakeupTime(); wakeup {
		t.Error("hidden widget added operations to the frame")
	}
}

func TestHiddenPanic(t *testing.T) {
	gtx := layout.Context{Ops: new(op.Ops)}
	func() {
		defer func() { recover() }()
		Hidden(gtx, func(gtx layout.Context) layout.Dimensions {
			clip.Rect{Max: image.Pt(1, 1)}.Push(gtx.Ops)
			panic("boom")
		})
	}()
	// The frame's own stack is untouched.
	clip.Rect{Max: image.Pt(1, 1)}.Push(gtx.Ops).Pop()
}

type invalidator struct{ n int }

func (i *invalidator) Invalidate() { i.n++ }

func TestRequestRepaint(t *testing.T) {
	var r router.Router
	ops := new(op.Ops)
	ctx := NewContext(layout.Context{Ops: ops}, nil, new(invalidator))
	ctx.RequestRepaint()
	r.Frame(ops)
	if _, wakeup := r.WakeupTime(); !wakeup {
		t.Error("RequestRepaint did not schedule a frame")
	}
	// Without operations there is nothing to record into.
	Context{}.RequestRepaint()
}

func TestLift(t *testing.T) {
	gtx := layout.Context{Constraints: layout.Exact(image.Pt(3, 4))}
	var mem Memory
	ctx := NewContext(gtx, &mem, nil)
	w := Lift(func(gtx layout.Context) layout.Dimensions {
		return layout.Dimensions{Size: gtx.Constraints.Max}
	})
	if got := w(ctx).Size; got != image.Pt(3, 4) {
		t.Errorf("lifted widget size %v", got)
	}
	gtx.Constraints = layout.Exact(image.Pt(5, 6))
	if got := w(ctx.With(gtx)).Size; got != image.Pt(5, 6) {
		t.Errorf("With did not replace constraints: %v", got)
	}
	if ctx.With(gtx).Memory != &mem {
		t.Error("With dropped the memory")
	}
}
