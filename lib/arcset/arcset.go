/*Package arcset tracks excluded angular intervals on a circle and reduces
them to an exposed arc length.

The Lee-Richards integrator intersects one atom's circular cross-section
against each of its neighbors' cross-sections on a given slice; every
intersection buries some arc of the atom's circle behind a neighbor. This
package accumulates those excluded arcs and answers "how much of the circle
is left exposed" by a standard sorted-interval union, the same shape of
problem the reference implementation solves with an explicitly sorted
exclusion list per slice.
*/
package arcset

import (
	"math"
	"sort"
)

const twoPi = 2 * math.Pi

// Interval is a half-open excluded angular range [Lo, Hi) in radians, not
// necessarily normalized to [0, 2*pi).
type Interval struct {
	Lo, Hi float64
}

// Set accumulates excluded intervals on a single circle for a single slice.
// The zero value is an empty set (nothing excluded).
type Set struct {
	intervals []Interval
}

// Reset empties the set for reuse across slices, avoiding a reallocation
// per atom per slice in the integrator's hot loop.
func (s *Set) Reset() { s.intervals = s.intervals[:0] }

// Add excludes the arc [lo, hi), normalizing lo into [0, 2*pi) and
// splitting the interval into two pieces if it wraps past 2*pi.
func (s *Set) Add(lo, hi float64) {
	if hi-lo >= twoPi {
		// The whole circle is excluded; one full-turn interval suffices.
		s.intervals = append(s.intervals, Interval{0, twoPi})
		return
	}
	span := hi - lo
	lo = math.Mod(lo, twoPi)
	if lo < 0 {
		lo += twoPi
	}
	hi = lo + span
	if hi <= twoPi {
		s.intervals = append(s.intervals, Interval{lo, hi})
	} else {
		s.intervals = append(s.intervals, Interval{lo, twoPi})
		s.intervals = append(s.intervals, Interval{0, hi - twoPi})
	}
}

// FullyExcluded reports whether any single added interval already spans
// the full circle (the fully-buried case).
func (s *Set) FullyExcluded() bool {
	for _, iv := range s.intervals {
		if iv.Hi-iv.Lo >= twoPi {
			return true
		}
	}
	return false
}

// ExposedMeasure returns 2*pi minus the total length of the union of all
// excluded intervals, i.e. how much angular measure remains exposed.
func (s *Set) ExposedMeasure() float64 {
	if len(s.intervals) == 0 {
		return twoPi
	}
	if s.FullyExcluded() {
		return 0
	}

	sorted := make([]Interval, len(s.intervals))
	copy(sorted, s.intervals)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Lo < sorted[j].Lo })

	var union float64
	curLo, curHi := sorted[0].Lo, sorted[0].Hi
	for _, iv := range sorted[1:] {
		if iv.Lo > curHi {
			union += curHi - curLo
			curLo, curHi = iv.Lo, iv.Hi
			continue
		}
		if iv.Hi > curHi {
			curHi = iv.Hi
		}
	}
	union += curHi - curLo

	exposed := twoPi - union
	if exposed < 0 {
		exposed = 0
	}
	return exposed
}
