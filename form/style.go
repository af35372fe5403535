// SPDX-License-Identifier: Unlicense OR MIT

package form

import (
	"image/color"

	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget/material"
)

// Style is the look of form fields. The stroke colors correspond to
// the interaction states of a field.
type Style struct {
	// Inactive is the stroke of a field that is not interacted with.
	Inactive color.NRGBA
	// Hovered is the stroke while the pointer is over the field.
	Hovered color.NRGBA
	// Active is the stroke while the field is pressed.
	Active color.NRGBA
	// Open is the stroke while the field has the keyboard focus.
	Open color.NRGBA

	// ErrorColor replaces the strokes and the label color of a field
	// that shows an error, and colors the error message.
	ErrorColor color.NRGBA
	LabelColor color.NRGBA

	LabelSize    unit.Sp
	ErrorSize    unit.Sp
	CornerRadius unit.Dp
	BorderWidth  unit.Dp
	Inset        layout.Inset
}

// DefaultStyle derives a Style from a material theme.
func DefaultStyle(th *material.Theme) Style {
	return Style{
		Inactive:     withAlpha(th.Fg, 0x60),
		Hovered:      withAlpha(th.Fg, 0xa0),
		Active:       th.ContrastBg,
		Open:         th.ContrastBg,
		ErrorColor:   color.NRGBA{R: 0xb0, G: 0x00, B: 0x20, A: 0xff},
		LabelColor:   th.Fg,
		LabelSize:    th.TextSize,
		ErrorSize:    th.TextSize * 0.8,
		CornerRadius: 4,
		BorderWidth:  1,
		Inset:        layout.UniformInset(6),
	}
}

// withAlpha scales the alpha of c by a/255.
func withAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = uint8(uint32(c.A) * uint32(a) / 0xFF)
	return c
}
