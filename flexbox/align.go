// SPDX-License-Identifier: Unlicense OR MIT

package flexbox

// alignCross returns the cross offset and size of a child with the
// given intrinsic size in a container with avail cross extent.
//
// Stretch applies only to sizes the child chose itself; a size forced
// by an exact constraint is aligned to the start.
func alignCross(a Align, intrinsic Size, avail int) (offset, size int) {
	size = min(max(intrinsic.Cross, 0), avail)
	switch a {
	case End:
		offset = avail - size
	case Center:
		offset = (avail - size) / 2
	case Stretch:
		if !intrinsic.Forced {
			size = avail
		}
	}
	return offset, size
}

// crossExtent is the cross size of a container: the largest child,
// but no less than lo and no more than hi.
func crossExtent(sizes []Size, lo, hi int) int {
	extent := lo
	for _, s := range sizes {
		if s.Cross > extent {
			extent = s.Cross
		}
	}
	if extent > hi {
		extent = hi
	}
	return extent
}
