// SPDX-License-Identifier: Unlicense OR MIT

/*
Package flexbox implements a single-line flexbox container for Gio.

A Flex lays out its children along a main axis. Each child carries an
Item hint with a basis, grow and shrink weights and optional main-axis
bounds; the container distributes the available main extent among the
children and aligns them on the cross axis.

Immediate mode widgets report their size only by being laid out, so the
container measures every child it has not seen before in a hidden pass,
remembers the result in a per-container Cache and lays the children out
at their final cells in the same frame. Frames after the first reuse
the cached sizes and do not measure again.

	flexbox.Flex{ID: host.NewID("toolbar"), Gap: 8}.Layout(ctx, func(in *flexbox.Instance) {
		in.Add(flexbox.NewItem(), material.Body1(th, "Name").Layout)
		in.AddWidget(flexbox.NewItem().Grow(1), flexbox.Button(th, &ok, "OK"))
	})

Cached sizes live in the host.Memory of the context under the container
ID. A container without an ID, or a context without Memory, measures
its children on every frame.
*/
package flexbox
