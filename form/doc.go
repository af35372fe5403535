// SPDX-License-Identifier: Unlicense OR MIT

/*
Package form decorates input widgets with validation errors.

A Form collects the fields laid out during a frame. Each field wraps a
widget in a frame whose stroke turns to the error color once the field
has an error and the user has left it, and shows the error message
below it. Validation itself is up to the caller: it produces Errors,
a map from field names to messages.

	f.Begin()
	form.Field(th, f, "name").Label("Name").Layout(ctx, &nameEditor,
		material.Editor(th, &nameEditor, "").Layout)
	if submit.Clicked() && f.ValidateAndSubmit(ctx, validate) {
		save()
	}

Field state lives in the host.Memory of the context, keyed by the form
ID and the field name.
*/
package form
