// SPDX-License-Identifier: Unlicense OR MIT

package flexbox

import (
	"math"

	"gioui.org/layout"
	"gioui.org/unit"

	"gioui.org/extra/host"
)

// Direction is the main axis of a container.
type Direction = layout.Axis

const (
	Horizontal = layout.Horizontal
	Vertical   = layout.Vertical
)

// Align is the alignment of children on the cross axis.
type Align uint8

const (
	Start Align = iota
	Center
	End
	// Stretch sizes the child to the cross extent of the container.
	Stretch
)

func (a Align) String() string {
	switch a {
	case Start:
		return "Start"
	case Center:
		return "Center"
	case End:
		return "End"
	case Stretch:
		return "Stretch"
	default:
		panic("unreachable")
	}
}

// Item describes how a child of a Flex is sized. The zero value has
// no basis, grow weight 0, shrink weight 1 and no main-axis bounds.
type Item struct {
	grow      float32
	shrink    float32
	shrinkSet bool

	basis    unit.Dp
	hasBasis bool
	minMain  unit.Dp
	maxMain  unit.Dp
	hasMax   bool

	alignSelf Align
	hasAlign  bool

	id    host.ID
	hasID bool
}

// NewItem returns the default Item.
func NewItem() Item {
	return Item{}
}

// Grow sets the share of surplus main-axis space the child receives.
func (it Item) Grow(g float32) Item {
	it.grow = g
	return it
}

// Shrink sets the share of a main-axis deficit the child absorbs. The
// deficit is distributed in proportion to shrink times basis.
func (it Item) Shrink(s float32) Item {
	it.shrink = s
	it.shrinkSet = true
	return it
}

// Basis sets the preferred main-axis size. Without a basis the
// measured size of the child is used.
func (it Item) Basis(b unit.Dp) Item {
	it.basis = b
	it.hasBasis = true
	return it
}

// MinMain sets the smallest main-axis size of the child.
func (it Item) MinMain(m unit.Dp) Item {
	it.minMain = m
	return it
}

// MaxMain sets the largest main-axis size of the child.
func (it Item) MaxMain(m unit.Dp) Item {
	it.maxMain = m
	it.hasMax = true
	return it
}

// AlignSelf overrides the container's AlignItems for this child.
func (it Item) AlignSelf(a Align) Item {
	it.alignSelf = a
	it.hasAlign = true
	return it
}

// ID gives the child a stable identity. Cached sizes follow the ID
// when children are reordered; without an ID they follow the position.
func (it Item) ID(id host.ID) Item {
	it.id = id
	it.hasID = true
	return it
}

func (it Item) align(def Align) Align {
	if it.hasAlign {
		return it.alignSelf
	}
	return def
}

func (it Item) key(index int) Key {
	if it.hasID {
		return Key{ID: it.id, Stable: true}
	}
	return Key{Index: index}
}

// line converts the hint to allocator input in pixels.
func (it Item) line(m unit.Metric, intrinsic int) Line {
	l := Line{
		Intrinsic: intrinsic,
		Grow:      weight(it.grow),
		Shrink:    1,
		Min:       m.Dp(it.minMain),
	}
	if it.shrinkSet {
		l.Shrink = weight(it.shrink)
	}
	if it.hasBasis {
		l.Basis = m.Dp(it.basis)
		l.HasBasis = true
	}
	if it.hasMax {
		l.Max = m.Dp(it.maxMain)
		l.HasMax = true
	}
	return l
}

// weight maps NaN, infinite and negative weights to zero.
func weight(w float32) float32 {
	f := float64(w)
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return w
}
