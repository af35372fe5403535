// SPDX-License-Identifier: Unlicense OR MIT

/*
Package host binds the widgets in this module to the Gio toolkit.

Gio widgets receive a layout.Context and keep their state in values
owned by the caller. Some widgets here need a little more than that:
state that is keyed by a derived identity rather than held by the
caller, and a way to request a frame from another goroutine. Context
bundles those capabilities with the layout.Context so they are passed
down explicitly instead of living in globals.

A typical frame loop creates one Memory per window and wraps the
layout.Context of every frame:

	var mem host.Memory
	for e := range w.Events() {
		switch e := e.(type) {
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, e)
			ctx := host.NewContext(gtx, &mem, w)
			drawUI(ctx)
			mem.EndFrame()
			e.Frame(gtx.Ops)
		}
	}
*/
package host
