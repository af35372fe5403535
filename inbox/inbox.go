// SPDX-License-Identifier: Unlicense OR MIT

/*
Package inbox delivers values from other goroutines to the goroutine
running the frame loop.

A Sender queues values and requests a frame; the frame loop drains the
queue while laying out:

	in := inbox.New[string]()
	go func(s *inbox.Sender[string]) {
		s.Send(fetch())
	}(in.Sender())

	// In the frame loop.
	in.Replace(ctx, &status)

The window to invalidate is taken from the first host.Context passed to
Read or Replace. Values sent before that do not request a frame; use
NewWithWindow or SetWindow to avoid that.
*/
package inbox

import (
	"fmt"
	"sync"

	"gioui.org/extra/host"
)

// Inbox is the receiving end of a queue of values of type T.
type Inbox[T any] struct {
	state *state[T]
}

// Sender is the sending end of an Inbox. Senders are safe for
// concurrent use and may be copied.
type Sender[T any] struct {
	state *state[T]
}

// SendError is returned by Send when the Inbox is closed. It carries
// the value that was not delivered.
type SendError[T any] struct {
	Value T
}

func (e SendError[T]) Error() string {
	return fmt.Sprintf("inbox: send on closed inbox (%T)", e.Value)
}

type state[T any] struct {
	mu     sync.Mutex
	window host.Invalidator
	queue  []T
	closed bool
}

// New returns an empty Inbox.
func New[T any]() *Inbox[T] {
	return &Inbox[T]{state: new(state[T])}
}

// NewWithWindow returns an empty Inbox that requests frames from w.
func NewWithWindow[T any](w host.Invalidator) *Inbox[T] {
	in := New[T]()
	in.state.window = w
	return in
}

// Channel returns an Inbox and a Sender for it.
func Channel[T any]() (*Sender[T], *Inbox[T]) {
	in := New[T]()
	return in.Sender(), in
}

// SetWindow sets the window that is invalidated on every send.
func (in *Inbox[T]) SetWindow(w host.Invalidator) {
	in.state.mu.Lock()
	defer in.state.mu.Unlock()
	in.state.window = w
}

// Sender returns a Sender for the inbox.
func (in *Inbox[T]) Sender() *Sender[T] {
	return &Sender[T]{state: in.state}
}

// Read returns the queued values in the order they were sent and
// empties the queue.
func (in *Inbox[T]) Read(ctx host.Context) []T {
	in.capture(ctx)
	return in.ReadWithoutContext()
}

// ReadWithoutContext is like Read, but does not capture the window of a
// context.
func (in *Inbox[T]) ReadWithoutContext() []T {
	s := in.state
	s.mu.Lock()
	q := s.queue
	s.queue = nil
	s.mu.Unlock()
	return q
}

// Replace stores the most recently sent value in target and discards
// the others. It reports whether target was updated.
func (in *Inbox[T]) Replace(ctx host.Context, target *T) bool {
	in.capture(ctx)
	return in.ReplaceWithoutContext(target)
}

// ReplaceWithoutContext is like Replace, but does not capture the
// window of a context.
func (in *Inbox[T]) ReplaceWithoutContext(target *T) bool {
	q := in.ReadWithoutContext()
	if len(q) == 0 {
		return false
	}
	*target = q[len(q)-1]
	return true
}

// Close closes the inbox. Queued values are released and further sends
// fail.
func (in *Inbox[T]) Close() {
	s := in.state
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.queue = nil
	s.window = nil
}

func (in *Inbox[T]) capture(ctx host.Context) {
	if ctx.Window == nil {
		return
	}
	s := in.state
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.window == nil && !s.closed {
		s.window = ctx.Window
	}
}

// Send queues v and requests a frame. Send fails with a SendError if
// the inbox is closed.
func (s *Sender[T]) Send(v T) error {
	st := s.state
	st.mu.Lock()
	if st.closed {
		st.mu.Unlock()
		return SendError[T]{Value: v}
	}
	st.queue = append(st.queue, v)
	w := st.window
	st.mu.Unlock()
	if w != nil {
		w.Invalidate()
	}
	return nil
}
