// SPDX-License-Identifier: Unlicense OR MIT

package flexbox

import (
	"image"
	"log"

	"gioui.org/layout"

	"gioui.org/extra/host"
)

// unbounded stands in for an infinite extent, as in layout.List.
const unbounded = 1e6

// measure lays out a child in a hidden pass with an unbounded main
// axis and returns its intrinsic size. A child that will be stretched
// is measured against the cross constraints of the container; other
// children get an unbounded cross axis too. A child that takes all of
// the unbounded main axis is marked Fills.
//
// A panic in the child is logged and reported as !ok.
func measure(ctx host.Context, axis layout.Axis, key Key, c *child, stretch bool, crossMin, crossMax int) (sz Size, ok bool) {
	defer func() {
		if err := recover(); err != nil {
			log.Printf("flexbox: measuring child %v: %v", key, err)
			sz, ok = Size{}, false
		}
	}()
	gtx := ctx.Context
	gtx.Constraints = layout.Constraints{
		Max: axis.Convert(image.Pt(unbounded, unbounded)),
	}
	if stretch {
		gtx.Constraints.Max = axis.Convert(image.Pt(unbounded, crossMax))
		if crossMin > 0 && crossMin == crossMax {
			gtx.Constraints.Min = axis.Convert(image.Pt(0, crossMin))
			sz.Forced = true
		}
	}
	dims := host.Hidden(gtx, func(gtx layout.Context) layout.Dimensions {
		return c.layout(ctx.With(gtx), image.Point{})
	})
	s := axis.Convert(dims.Size)
	sz.Main = max(s.X, 0)
	if sz.Main >= unbounded {
		sz.Main, sz.Fills = 0, true
	}
	sz.Cross = max(s.Y, 0)
	return sz, true
}
