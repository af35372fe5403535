// SPDX-License-Identifier: Unlicense OR MIT

package dnd

import "fmt"

// Phase is the state of a drag.
type Phase uint8

const (
	// Idle means no item is dragged.
	Idle Phase = iota
	// Dragging means an item follows the pointer.
	Dragging
	// Dropped means an item was released and the resulting Update has
	// not been reported yet.
	Dropped
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "Idle"
	case Dragging:
		return "Dragging"
	case Dropped:
		return "Dropped"
	default:
		panic("unreachable")
	}
}

// Update describes a move of the item at index From to index To.
// Indices refer to the list before the move.
type Update struct {
	From, To int
}

func (u Update) String() string {
	return fmt.Sprintf("%d->%d", u.From, u.To)
}

// drag is the state machine of a List.
type drag struct {
	phase Phase
	from  int
	to    int
	// top is the position of the dragged item as last drawn, next
	// the position the pointer asks for.
	top, next float32
	// press is the pointer position relative to the handle at the
	// start of the drag.
	press float32
	drop  Update
}

func (d *drag) start(from int, top, press float32) {
	*d = drag{
		phase: Dragging,
		from:  from,
		to:    from,
		top:   top,
		next:  top,
		press: press,
	}
}

// move records a pointer position relative to the handle as it was
// last drawn.
func (d *drag) move(y float32) {
	if d.phase != Dragging {
		return
	}
	d.next = d.top + y - d.press
}

func (d *drag) release() {
	if d.phase != Dragging {
		return
	}
	d.phase = Dropped
	d.drop = Update{From: d.from, To: d.to}
}

func (d *drag) cancel() {
	if d.phase == Dragging {
		d.phase = Idle
	}
}

// take returns the pending update once.
func (d *drag) take() (Update, bool) {
	if d.phase != Dropped {
		return Update{}, false
	}
	d.phase = Idle
	return d.drop, true
}

// insertion returns the index the dragged item would take: the number
// of other items whose vertical center is above y. heights are the
// item heights; the dragged item is skipped.
func insertion(heights []int, from int, y float32) int {
	to := 0
	top := 0
	for i, h := range heights {
		if i == from {
			continue
		}
		if float32(top)+float32(h)/2 < y {
			to++
		}
		top += h
	}
	return to
}
