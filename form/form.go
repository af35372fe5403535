// SPDX-License-Identifier: Unlicense OR MIT

package form

import (
	"gioui.org/extra/host"
)

// Errors maps field names to validation messages. A field without an
// entry, or with an empty message, is valid.
type Errors map[string]string

// Focusable is a widget that can hold the keyboard focus, such as a
// widget.Editor or a widget.Clickable.
type Focusable interface {
	Focused() bool
	Focus()
}

// Form tracks the fields of a form across frames.
type Form struct {
	// ID identifies the form. Field state is stored under IDs derived
	// from it.
	ID host.ID
	// Style overrides the default style of the fields.
	Style *Style

	errors Errors
	fields []field
	begun  bool
}

// field is a registration of a field laid out during a frame.
type field struct {
	name   string
	state  host.ID
	widget Focusable
	err    string
}

// NewForm returns a form identified by id.
func NewForm(id host.ID) *Form {
	return &Form{ID: id}
}

// Begin starts a frame. The fields registered during the previous
// frame stay available until the first field of this frame is laid
// out, so ValidateAndSubmit may be called anywhere in the frame.
//
// Call Begin at the start of every frame. Without it a field laid out
// again replaces its earlier registration, but fields that are no
// longer laid out are never forgotten.
func (f *Form) Begin() {
	f.begun = true
}

// SetErrors replaces the current errors, for forms that validate on
// every frame.
func (f *Form) SetErrors(errs Errors) {
	f.errors = errs
}

// Errors returns the current errors.
func (f *Form) Errors() Errors {
	return f.errors
}

// ValidateAndSubmit runs validate. If it reports no errors,
// ValidateAndSubmit returns true. Otherwise every field is marked as
// visited so its error shows, the first field with an error is
// focused and false is returned.
func (f *Form) ValidateAndSubmit(ctx host.Context, validate func() Errors) bool {
	errs := validate()
	f.errors = errs
	if !hasErrors(errs) {
		return true
	}
	focused := false
	for _, fl := range f.fields {
		st := host.GetOrInsert(ctx.Memory, fl.state, newFieldState)
		st.blurred = true
		if !focused && errs[fl.name] != "" {
			fl.widget.Focus()
			focused = true
		}
	}
	ctx.RequestRepaint()
	return false
}

// Reset forgets the errors and which fields were visited, typically
// after a successful submit.
func (f *Form) Reset(ctx host.Context) {
	f.errors = nil
	for _, fl := range f.fields {
		ctx.Memory.Remove(fl.state)
	}
}

// Visited reports whether the named field has lost the focus since the
// last Reset, or a submit failed.
func (f *Form) Visited(ctx host.Context, name string) bool {
	st, ok := host.Get[*fieldState](ctx.Memory, f.fieldID(name))
	return ok && st.blurred
}

func (f *Form) fieldID(name string) host.ID {
	return f.ID.With("field", name)
}

func (f *Form) register(fl field) {
	if f.begun {
		f.fields = f.fields[:0]
		f.begun = false
	}
	for i := range f.fields {
		if f.fields[i].name == fl.name {
			f.fields[i] = fl
			return
		}
	}
	f.fields = append(f.fields, fl)
}

func hasErrors(errs Errors) bool {
	for _, msg := range errs {
		if msg != "" {
			return true
		}
	}
	return false
}
