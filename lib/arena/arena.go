/*Package arena contains the coordinate arena: the columnar, read-only-after-
construction store of atom centers and radii that every other piece of the
sasa core is built on top of.
*/
package arena

import (
	"github.com/phil-mansfield/sasa/lib/sasaerr"
)

// Arena is a struct-of-arrays store of N atom centers and radii. Index i
// identifies the same atom across every field for the lifetime of the
// Arena; the Arena never reorders or removes atoms after New returns.
type Arena struct {
	x, y, z []float64
	r       []float64
}

// New builds an Arena from parallel xyz/radius arrays. It does not copy or
// retain the input slices' backing arrays beyond what it needs; callers
// should not mutate x, y, z, or r afterward.
func New(x, y, z, r []float64) (*Arena, error) {
	n := len(x)
	if n == 0 {
		return nil, sasaerr.New(sasaerr.InvalidInput, "atom set is empty")
	}
	if len(y) != n || len(z) != n || len(r) != n {
		return nil, sasaerr.New(
			sasaerr.InvalidInput,
			"coordinate arrays have mismatched lengths: x=%d y=%d z=%d r=%d",
			n, len(y), len(z), len(r),
		)
	}
	for i, ri := range r {
		if ri <= 0 {
			return nil, sasaerr.New(
				sasaerr.InvalidInput, "atom %d has non-positive radius %g", i, ri,
			)
		}
	}
	return &Arena{x: x, y: y, z: z, r: r}, nil
}

// Len returns the number of atoms in the arena.
func (a *Arena) Len() int { return len(a.x) }

// At returns the center and radius of atom i.
func (a *Arena) At(i int) (x, y, z, r float64) {
	return a.x[i], a.y[i], a.z[i], a.r[i]
}

// X, Y, Z, and R return the arena's underlying columnar arrays directly.
// Callers in the same module use these for tight inner loops; the slices
// must not be mutated.
func (a *Arena) X() []float64 { return a.x }
func (a *Arena) Y() []float64 { return a.y }
func (a *Arena) Z() []float64 { return a.z }
func (a *Arena) R() []float64 { return a.r }

// InflatedMaxRadius returns max(r[i]) + p across every atom, the quantity
// the cell grid uses to size its cells.
func (a *Arena) InflatedMaxRadius(p float64) float64 {
	max := 0.0
	for _, ri := range a.r {
		if ri+p > max {
			max = ri + p
		}
	}
	return max
}
