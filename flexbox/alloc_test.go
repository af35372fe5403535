// SPDX-License-Identifier: Unlicense OR MIT

package flexbox

import (
	"math"
	"math/rand"
	"reflect"
	"testing"
)

func TestAllocate(t *testing.T) {
	grow := func(intrinsic int, g float32) Line {
		return Line{Intrinsic: intrinsic, Grow: g, Shrink: 1}
	}
	tests := []struct {
		name  string
		lines []Line
		avail int
		gap   int
		want  []int
	}{
		{
			name:  "equal grow",
			lines: []Line{grow(10, 1), grow(10, 1), grow(10, 1)},
			avail: 90,
			want:  []int{30, 30, 30},
		},
		{
			name:  "weighted grow rounds toward the first",
			lines: []Line{grow(10, 1), grow(10, 2), grow(10, 1)},
			avail: 100,
			want:  []int{28, 45, 27},
		},
		{
			name: "shrink weighted by basis",
			lines: []Line{
				{Basis: 50, HasBasis: true, Shrink: 1},
				{Basis: 50, HasBasis: true, Shrink: 1},
			},
			avail: 60,
			want:  []int{30, 30},
		},
		{
			name: "unequal shrink weighted by basis",
			lines: []Line{
				{Basis: 90, HasBasis: true, Shrink: 1},
				{Basis: 30, HasBasis: true, Shrink: 1},
			},
			avail: 80,
			want:  []int{60, 20},
		},
		{
			name:  "max leaves space unallocated",
			lines: []Line{{Grow: 1, Shrink: 1, Max: 20, HasMax: true}},
			avail: 100,
			want:  []int{20},
		},
		{
			name: "min absorbs surplus first",
			lines: []Line{
				{Intrinsic: 10, Grow: 1, Shrink: 1, Min: 40},
				grow(10, 1),
			},
			avail: 50,
			want:  []int{40, 10},
		},
		{
			name:  "gap counts against avail",
			lines: []Line{grow(0, 1), grow(0, 1), grow(0, 1)},
			avail: 100,
			gap:   10,
			want:  []int{27, 27, 26},
		},
		{
			name: "clamped line frees space for the others",
			lines: []Line{
				{Grow: 1, Shrink: 1, Max: 10, HasMax: true},
				grow(0, 1),
				grow(0, 1),
			},
			avail: 100,
			want:  []int{10, 45, 45},
		},
		{
			name: "shrink stops at min",
			lines: []Line{
				{Basis: 100, HasBasis: true, Shrink: 1},
				{Basis: 20, HasBasis: true, Shrink: 1, Min: 15},
			},
			avail: 60,
			want:  []int{45, 15},
		},
		{
			name:  "no grow keeps base",
			lines: []Line{grow(10, 0), grow(10, 0)},
			avail: 100,
			want:  []int{10, 10},
		},
		{
			name:  "no shrink keeps base",
			lines: []Line{{Intrinsic: 80}, {Intrinsic: 80}},
			avail: 100,
			want:  []int{80, 80},
		},
		{
			name:  "basis wins over intrinsic",
			lines: []Line{{Basis: 30, HasBasis: true, Intrinsic: 80, Shrink: 1}},
			avail: 100,
			want:  []int{30},
		},
		{
			name:  "min wins over max",
			lines: []Line{{Intrinsic: 5, Min: 20, Max: 10, HasMax: true}},
			avail: 100,
			want:  []int{20},
		},
		{
			name:  "nan grow is zero",
			lines: []Line{grow(0, float32(math.NaN())), grow(0, 1)},
			avail: 10,
			want:  []int{0, 10},
		},
		{
			name:  "negative grow is zero",
			lines: []Line{grow(0, -3), grow(0, 1)},
			avail: 10,
			want:  []int{0, 10},
		},
		{
			name:  "zero avail",
			lines: []Line{grow(10, 1), {Intrinsic: 10, Min: 5}},
			avail: 0,
			want:  []int{0, 0},
		},
		{
			name:  "negative avail",
			lines: []Line{grow(10, 1)},
			avail: -5,
			want:  []int{0},
		},
		{
			name:  "empty",
			avail: 100,
			want:  []int{},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Allocate(tc.lines, tc.avail, tc.gap)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Allocate = %v, want %v", got, tc.want)
			}
		})
	}
}

func randomLines(r *rand.Rand, n int, withMax bool) []Line {
	lines := make([]Line, n)
	for i := range lines {
		l := Line{
			Intrinsic: r.Intn(50),
			Grow:      float32(r.Intn(4)),
			Shrink:    float32(r.Intn(3)),
			Min:       r.Intn(10),
		}
		if r.Intn(3) == 0 {
			l.Basis = r.Intn(60)
			l.HasBasis = true
		}
		if withMax && r.Intn(3) == 0 {
			l.Max = l.Min + r.Intn(40)
			l.HasMax = true
		}
		lines[i] = l
	}
	return lines
}

func baseOf(l Line) int {
	b := l.Intrinsic
	if l.HasBasis {
		b = l.Basis
	}
	if b < l.Min {
		b = l.Min
	}
	if l.HasMax && b > l.Max && l.Max >= l.Min {
		b = l.Max
	}
	return b
}

func TestAllocateConservation(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		n := 1 + r.Intn(6)
		lines := randomLines(r, n, false)
		gap := r.Intn(5)
		var sumBase int
		var sumGrow float32
		for _, l := range lines {
			sumBase += baseOf(l)
			sumGrow += l.Grow
		}
		avail := sumBase + gap*(n-1) + 1 + r.Intn(200)
		if sumGrow == 0 {
			continue
		}
		sizes := Allocate(lines, avail, gap)
		total := 0
		for _, s := range sizes {
			total += s
		}
		if want := avail - gap*(n-1); total != want {
			t.Fatalf("lines %+v avail %d gap %d: total %d, want %d (sizes %v)", lines, avail, gap, total, want, sizes)
		}
	}
}

func TestAllocateBounds(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 500; i++ {
		n := 1 + r.Intn(6)
		lines := randomLines(r, n, true)
		avail := 1 + r.Intn(300)
		sizes := Allocate(lines, avail, r.Intn(4))
		for j, s := range sizes {
			l := lines[j]
			if s < l.Min {
				t.Fatalf("lines %+v avail %d: size[%d] = %d below min %d", lines, avail, j, s, l.Min)
			}
			if l.HasMax && l.Max >= l.Min && s > l.Max {
				t.Fatalf("lines %+v avail %d: size[%d] = %d above max %d", lines, avail, j, s, l.Max)
			}
		}
	}
}

func TestAllocateGrowMonotonic(t *testing.T) {
	lines := []Line{
		{Intrinsic: 13, Grow: 1, Shrink: 1},
		{Intrinsic: 7, Grow: 0, Shrink: 1},
		{Intrinsic: 21, Grow: 2, Shrink: 1, Max: 60, HasMax: true},
		{Intrinsic: 3, Grow: 1.5, Shrink: 1},
	}
	for _, avail := range []int{50, 97, 131, 200} {
		prev := -1
		for g := float32(0); g <= 6; g += 0.25 {
			lines[1].Grow = g
			s := Allocate(lines, avail, 3)[1]
			if s < prev {
				t.Fatalf("avail %d: grow %v gives size %d, less than %d", avail, g, s, prev)
			}
			prev = s
		}
	}
}

func TestAllocateDeterministic(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		lines := randomLines(r, 1+r.Intn(8), true)
		avail := r.Intn(400)
		a := Allocate(lines, avail, 2)
		b := Allocate(lines, avail, 2)
		if !reflect.DeepEqual(a, b) {
			t.Fatalf("Allocate not deterministic: %v != %v", a, b)
		}
	}
}
