// SPDX-License-Identifier: Unlicense OR MIT

package flexbox

import (
	"math"
	"sort"
)

// Line is the allocator input for one child, in pixels.
type Line struct {
	// Basis is the preferred size, used when HasBasis is set.
	Basis    int
	HasBasis bool
	// Intrinsic is the measured size of the child.
	Intrinsic int
	Grow      float32
	Shrink    float32
	Min       int
	// Max bounds the size when HasMax is set.
	Max    int
	HasMax bool
}

// flexLine is the working state of a Line during allocation.
type flexLine struct {
	base   float64
	lo, hi float64
	grow   float64
	shrink float64
	size   float64
	frozen bool
}

// Allocate distributes avail pixels among lines separated by gap
// pixels and returns the main-axis size of every line.
//
// Each line starts from its basis, or its intrinsic size without one,
// clamped to its bounds. Surplus space is shared in proportion to the
// grow weights; a deficit in proportion to shrink weight times base.
// Lines that would leave their bounds are clamped and frozen and the
// remaining space is shared again among the others, at most once per
// line. Frozen lines are processed in index order.
//
// The result is rounded to whole pixels so that the total equals the
// rounded total of the exact sizes. Rounding hands out the missing
// pixels to the largest fractions first, lower indices winning ties.
//
// If avail is not positive, every size is zero.
func Allocate(lines []Line, avail, gap int) []int {
	n := len(lines)
	sizes := make([]int, n)
	if n == 0 || avail <= 0 {
		return sizes
	}
	target := float64(avail - gap*(n-1))

	fl := make([]flexLine, n)
	var sumBase float64
	for i, l := range lines {
		f := &fl[i]
		f.lo = float64(max(l.Min, 0))
		f.hi = math.Inf(+1)
		if l.HasMax {
			f.hi = math.Max(float64(l.Max), f.lo)
		}
		b := l.Intrinsic
		if l.HasBasis {
			b = l.Basis
		}
		f.base = clamp(float64(b), f.lo, f.hi)
		f.size = f.base
		f.grow = float64(weight(l.Grow))
		f.shrink = float64(weight(l.Shrink))
		sumBase += f.base
	}
	// The mode is fixed by the initial free space: growing lines only
	// hit their maximum, shrinking lines only their minimum, so the
	// sign of the remaining space never changes.
	growing := target-sumBase >= 0

	for round := 0; round <= n; round++ {
		free := target
		var total float64
		for i := range fl {
			f := &fl[i]
			if f.frozen {
				free -= f.size
				continue
			}
			free -= f.base
			total += f.factor(growing)
		}
		if total <= 0 || (growing && free <= 0) || (!growing && free >= 0) {
			for i := range fl {
				if f := &fl[i]; !f.frozen {
					f.size = f.base
				}
			}
			break
		}
		for i := range fl {
			f := &fl[i]
			if f.frozen {
				continue
			}
			f.size = f.base + free*f.factor(growing)/total
		}
		violated := false
		for i := range fl {
			f := &fl[i]
			if f.frozen {
				continue
			}
			switch {
			case f.size < f.lo:
				f.size = f.lo
			case f.size > f.hi:
				f.size = f.hi
			default:
				continue
			}
			f.frozen = true
			violated = true
		}
		if !violated {
			break
		}
	}
	round(fl, sizes)
	return sizes
}

// factor is the share weight of the line in the current mode.
func (f *flexLine) factor(growing bool) float64 {
	if growing {
		return f.grow
	}
	return f.shrink * f.base
}

// round converts the exact sizes of fl to whole pixels in sizes.
func round(fl []flexLine, sizes []int) {
	var exact float64
	var floors int
	fracs := make([]float64, len(fl))
	for i, f := range fl {
		exact += f.size
		whole := math.Floor(f.size)
		sizes[i] = int(whole)
		floors += sizes[i]
		// Quantize so that fractions differing only by floating point
		// noise tie, and the index decides.
		fracs[i] = math.Round((f.size - whole) * 1e6)
	}
	residual := int(math.Round(exact)) - floors
	order := make([]int, len(fl))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return fracs[order[a]] > fracs[order[b]]
	})
	for k := 0; k < residual && k < len(order); k++ {
		sizes[order[k]]++
	}
	// The first line absorbs whatever the fractions could not.
	if residual > len(order) {
		sizes[0] += residual - len(order)
	} else if residual < 0 {
		sizes[0] = max(sizes[0]+residual, 0)
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
