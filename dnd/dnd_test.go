// SPDX-License-Identifier: Unlicense OR MIT

package dnd

import (
	"image"
	"reflect"
	"testing"

	"gioui.org/f32"
	"gioui.org/io/pointer"
	"gioui.org/io/router"
	"gioui.org/layout"
	"gioui.org/op"
)

func TestInsertion(t *testing.T) {
	heights := []int{20, 20, 20, 20}
	tests := []struct {
		from int
		y    float32
		want int
	}{
		{0, 0, 0},
		{0, 9, 0},
		{0, 11, 1},
		{0, 45, 2},
		{0, 100, 3},
		{3, 0, 0},
		{3, 31, 2},
		{1, 10, 0},
		{1, 10.5, 1},
	}
	for _, tc := range tests {
		if got := insertion(heights, tc.from, tc.y); got != tc.want {
			t.Errorf("insertion(from %d, y %v) = %d, want %d", tc.from, tc.y, got, tc.want)
		}
	}
}

func TestDragMachine(t *testing.T) {
	var d drag
	if _, ok := d.take(); ok {
		t.Fatal("idle machine reported a drop")
	}
	d.release()
	if d.phase != Idle {
		t.Fatalf("release while idle moved to %v", d.phase)
	}
	d.start(2, 40, 5)
	d.move(15)
	if d.next != 50 {
		t.Errorf("next = %v, want 50", d.next)
	}
	d.to = 0
	d.release()
	if d.phase != Dropped {
		t.Fatalf("phase %v after release, want Dropped", d.phase)
	}
	u, ok := d.take()
	if !ok || u != (Update{From: 2, To: 0}) {
		t.Errorf("take = %v, %v", u, ok)
	}
	if _, ok := d.take(); ok {
		t.Error("drop reported twice")
	}
	d.start(1, 0, 0)
	d.cancel()
	if _, ok := d.take(); ok || d.phase != Idle {
		t.Error("cancelled drag reported a drop")
	}
}

func TestShift(t *testing.T) {
	tests := []struct {
		from, to int
		want     []string
	}{
		{0, 2, []string{"b", "c", "a", "d"}},
		{3, 0, []string{"d", "a", "b", "c"}},
		{1, 1, []string{"a", "b", "c", "d"}},
		{2, 3, []string{"a", "b", "d", "c"}},
	}
	for _, tc := range tests {
		s := []string{"a", "b", "c", "d"}
		Shift(s, tc.from, tc.to)
		if !reflect.DeepEqual(s, tc.want) {
			t.Errorf("Shift(%d, %d) = %v, want %v", tc.from, tc.to, s, tc.want)
		}
	}
}

type listHarness struct {
	l     List
	r     router.Router
	ops   op.Ops
	drawn map[int]bool
}

func (h *listHarness) frame(t *testing.T) layout.Dimensions {
	t.Helper()
	h.ops.Reset()
	gtx := layout.Context{
		Ops:         &h.ops,
		Constraints: layout.Constraints{Max: image.Pt(100, 1000)},
		Queue:       &h.r,
	}
	h.drawn = make(map[int]bool)
	dims := h.l.Layout(gtx, 3, func(gtx layout.Context, i int, hd *Handle, dragging bool) layout.Dimensions {
		h.drawn[i] = dragging
		return hd.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return layout.Dimensions{Size: image.Pt(100, 20)}
		})
	})
	h.r.Frame(&h.ops)
	return dims
}

func (h *listHarness) pointer(typ pointer.Type, y float32) {
	h.r.Queue(pointer.Event{
		Type:     typ,
		Source:   pointer.Mouse,
		Buttons:  pointer.ButtonPrimary,
		Position: f32.Pt(50, y),
	})
}

func TestListDrag(t *testing.T) {
	h := new(listHarness)
	dims := h.frame(t)
	if got, want := dims.Size, image.Pt(100, 60); got != want {
		t.Fatalf("list size %v, want %v", got, want)
	}

	h.pointer(pointer.Press, 10)
	h.frame(t)
	if h.l.Phase() != Dragging {
		t.Fatalf("phase %v after press, want Dragging", h.l.Phase())
	}

	h.pointer(pointer.Move, 45)
	h.frame(t)
	u, ok := h.l.Dragging()
	if !ok || u != (Update{From: 0, To: 2}) {
		t.Errorf("Dragging = %v, %v; want 0->2", u, ok)
	}
	if !h.drawn[0] || h.drawn[1] {
		t.Errorf("dragging flags %v", h.drawn)
	}
	if want := []int{35, 0, 20}; !reflect.DeepEqual(h.l.tops, want) {
		t.Errorf("item positions %v, want %v", h.l.tops, want)
	}

	h.pointer(pointer.Release, 45)
	h.frame(t)
	if _, ok := h.l.Dragging(); ok {
		t.Error("still dragging after release")
	}
	u, ok = h.l.Dropped()
	if !ok || u != (Update{From: 0, To: 2}) {
		t.Errorf("Dropped = %v, %v; want 0->2", u, ok)
	}
	if _, ok := h.l.Dropped(); ok {
		t.Error("drop reported twice")
	}
}

func TestListUnclaimedDrop(t *testing.T) {
	h := new(listHarness)
	h.frame(t)
	h.pointer(pointer.Press, 30)
	h.frame(t)
	h.pointer(pointer.Move, 5)
	h.frame(t)
	if u, _ := h.l.Dragging(); u != (Update{From: 1, To: 0}) {
		t.Errorf("Dragging = %v, want 1->0", u)
	}
	h.pointer(pointer.Release, 5)
	h.frame(t)
	h.frame(t)
	if _, ok := h.l.Dropped(); ok {
		t.Error("drop survived a frame without Dropped")
	}
}

func TestListInsertionFollowsPointer(t *testing.T) {
	h := new(listHarness)
	h.frame(t)
	// Grab the first item near its top edge.
	h.pointer(pointer.Press, 2)
	h.frame(t)
	h.pointer(pointer.Move, 25)
	h.frame(t)
	// The pointer is past the center of the second item but not the
	// third, even though the lifted item's own center is.
	if u, _ := h.l.Dragging(); u != (Update{From: 0, To: 1}) {
		t.Errorf("Dragging = %v, want 0->1", u)
	}
	if want := []int{23, 0, 40}; !reflect.DeepEqual(h.l.tops, want) {
		t.Errorf("item positions %v, want %v", h.l.tops, want)
	}
}
