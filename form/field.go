// SPDX-License-Identifier: Unlicense OR MIT

package form

import (
	"gioui.org/gesture"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"gioui.org/extra/host"
)

// FieldStyle lays out a labeled form field.
type FieldStyle struct {
	Style Style

	theme  *material.Theme
	form   *Form
	name   string
	label  string
	err    string
	errSet bool
}

// fieldState is the per-field state kept in memory.
type fieldState struct {
	// blurred is set once the field lost the focus.
	blurred bool
	focused bool
	// errored is set once the field showed an error. Its error row
	// stays reserved afterwards.
	errored bool
	lastErr string
	click   gesture.Click
}

func newFieldState() *fieldState {
	return new(fieldState)
}

// Field returns the style of the field name of f. The error of the
// field is taken from the current errors of f.
func Field(th *material.Theme, f *Form, name string) FieldStyle {
	s := FieldStyle{
		theme: th,
		form:  f,
		name:  name,
	}
	if f.Style != nil {
		s.Style = *f.Style
	} else {
		s.Style = DefaultStyle(th)
	}
	return s
}

// Label sets the text above the field.
func (s FieldStyle) Label(txt string) FieldStyle {
	s.label = txt
	return s
}

// Error sets the error of the field, overriding the errors of the form.
func (s FieldStyle) Error(err string) FieldStyle {
	s.err = err
	s.errSet = true
	return s
}

func (s FieldStyle) message() string {
	if s.errSet {
		return s.err
	}
	return s.form.errors[s.name]
}

// Layout lays out the field around content. w is the widget inside
// content that receives the focus.
func (s FieldStyle) Layout(ctx host.Context, w Focusable, content layout.Widget) layout.Dimensions {
	gtx := ctx.Context
	id := s.form.fieldID(s.name)
	st := host.GetOrInsert(ctx.Memory, id, newFieldState)
	err := s.message()
	shown := st.blurred && err != ""
	if shown {
		st.errored = true
		st.lastErr = err
	}
	wasFocused := w.Focused()

	dims := layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			if s.label == "" {
				return layout.Dimensions{}
			}
			l := material.Label(s.theme, s.Style.LabelSize, s.label)
			l.Color = s.Style.LabelColor
			if shown {
				l.Color = s.Style.ErrorColor
			}
			return layout.Inset{Bottom: 4}.Layout(gtx, l.Layout)
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return s.frame(gtx, st, wasFocused, shown, content)
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			if !st.errored {
				return layout.Dimensions{}
			}
			return s.errorRow(gtx, st, shown, err)
		}),
	)

	focused := w.Focused()
	if st.focused && !focused {
		st.blurred = true
	}
	st.focused = focused
	s.form.register(field{name: s.name, state: id, widget: w, err: err})
	return dims
}

// frame draws the stroke around content. The stroke follows the
// interaction state, or the error color while an error shows.
func (s FieldStyle) frame(gtx layout.Context, st *fieldState, focused, shown bool, content layout.Widget) layout.Dimensions {
	st.click.Events(gtx)
	c := s.Style.Inactive
	switch {
	case focused:
		c = s.Style.Open
	case st.click.Pressed():
		c = s.Style.Active
	case st.click.Hovered():
		c = s.Style.Hovered
	}
	if shown {
		c = s.Style.ErrorColor
	}
	border := widget.Border{
		Color:        c,
		CornerRadius: s.Style.CornerRadius,
		Width:        s.Style.BorderWidth,
	}
	macro := op.Record(gtx.Ops)
	dims := border.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return s.Style.Inset.Layout(gtx, content)
	})
	call := macro.Stop()
	defer clip.Rect{Max: dims.Size}.Push(gtx.Ops).Pop()
	st.click.Add(gtx.Ops)
	call.Add(gtx.Ops)
	return dims
}

// errorRow lays out the error message, or reserves its space when no
// error shows.
func (s FieldStyle) errorRow(gtx layout.Context, st *fieldState, shown bool, err string) layout.Dimensions {
	txt := err
	if txt == "" {
		txt = st.lastErr
	}
	l := material.Label(s.theme, s.Style.ErrorSize, txt)
	l.Color = s.Style.ErrorColor
	inset := layout.Inset{Top: unit.Dp(2)}
	if shown {
		return inset.Layout(gtx, l.Layout)
	}
	macro := op.Record(gtx.Ops)
	dims := inset.Layout(gtx, l.Layout)
	macro.Stop()
	return layout.Dimensions{Size: dims.Size}
}
