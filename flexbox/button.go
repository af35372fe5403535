// SPDX-License-Identifier: Unlicense OR MIT

package flexbox

import (
	"image"

	"gioui.org/layout"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"gioui.org/extra/host"
)

// ButtonStyle is a material button that fills its cell, keeping its
// label centered.
type ButtonStyle struct {
	material.ButtonStyle
}

// Button returns a ButtonStyle for use with Instance.AddWidget.
func Button(th *material.Theme, button *widget.Clickable, txt string) ButtonStyle {
	return ButtonStyle{ButtonStyle: material.Button(th, button, txt)}
}

func (b ButtonStyle) FlexLayout(ctx host.Context, cell image.Point) layout.Dimensions {
	gtx := ctx.Context
	if cell != (image.Point{}) {
		gtx.Constraints = layout.Exact(gtx.Constraints.Constrain(cell))
	}
	return b.ButtonStyle.Layout(gtx)
}
