/*Package neighbor builds the per-atom neighbor list consumed by both SASA
integrators: for every pair of atoms whose probe-inflated spheres can touch,
it records the neighbor index and the xy-plane projection of the separation
vector, stored symmetrically at both endpoints.

The pair-finding traversal and the chunked per-atom growth policy are
translated from the FreeSASA nb.c source: cells are visited against their
forward neighbors (see package grid), an axis-aligned bounding check rejects
most non-contacts before the full squared distance is computed, and each
atom's neighbor arrays start with a capacity of one chunk and then grow by
append.
*/
package neighbor

import (
	"math"

	"github.com/phil-mansfield/sasa/lib/arena"
	"github.com/phil-mansfield/sasa/lib/grid"
)

// chunk is the initial capacity of a per-atom neighbor array, so the first
// chunk neighbors of an atom are appended without a reallocation; beyond
// that the arrays grow by append's own policy.
const chunk = 32

// List is the symmetric neighbor list: List.NB[i] are the neighbors of
// atom i, and for each k, List.NB[i][k] = j implies List.NB[j] contains i
// with the negated dx/dy pair.
type List struct {
	NB  [][]int32
	DX  [][]float64
	DY  [][]float64
	XYD [][]float64 // sqrt(dx^2 + dy^2), cached for the L&R inner loop
}

func newList(n int) *List {
	l := &List{
		NB:  make([][]int32, n),
		DX:  make([][]float64, n),
		DY:  make([][]float64, n),
		XYD: make([][]float64, n),
	}
	for i := range l.NB {
		l.NB[i] = make([]int32, 0, chunk)
		l.DX[i] = make([]float64, 0, chunk)
		l.DY[i] = make([]float64, 0, chunk)
		l.XYD[i] = make([]float64, 0, chunk)
	}
	return l
}

func (l *List) add(i, j int32, dx, dy float64) {
	xyd := math.Hypot(dx, dy)
	l.NB[i] = append(l.NB[i], j)
	l.DX[i] = append(l.DX[i], dx)
	l.DY[i] = append(l.DY[i], dy)
	l.XYD[i] = append(l.XYD[i], xyd)

	l.NB[j] = append(l.NB[j], i)
	l.DX[j] = append(l.DX[j], -dx)
	l.DY[j] = append(l.DY[j], -dy)
	l.XYD[j] = append(l.XYD[j], xyd)
}

// Contact reports whether atoms i and j are recorded as neighbors. It is a
// linear scan, matching the reference implementation's contact query; the
// core never calls this on a hot path, only tests and diagnostics do.
func (l *List) Contact(i, j int32) bool {
	for _, k := range l.NB[i] {
		if k == j {
			return true
		}
	}
	return false
}

// Build constructs the neighbor list for every atom in a, using cutoff
// ri+rj+2*p between atoms i and j (p is the probe radius already baked
// into g's cell size).
func Build(a *arena.Arena, g *grid.Grid, p float64) (*List, error) {
	n := a.Len()
	x, y, z, r := a.X(), a.Y(), a.Z(), a.R()
	l := newList(n)

	for ci := 0; ci < g.NumCells(); ci++ {
		atomsI := g.CellAtoms(ci)
		for _, cj := range g.ForwardNeighbors(ci) {
			atomsJ := g.CellAtoms(int(cj))
			for ii, i := range atomsI {
				start := 0
				if int(cj) == ci {
					start = ii + 1
				}
				for _, j := range atomsJ[start:] {
					dx := x[j] - x[i]
					dy := y[j] - y[i]
					dz := z[j] - z[i]
					cut := r[i] + r[j] + 2*p
					cut2 := cut * cut
					if dx*dx > cut2 || dy*dy > cut2 || dz*dz > cut2 {
						continue
					}
					d2 := dx*dx + dy*dy + dz*dz
					if d2 < cut2 {
						l.add(i, j, dx, dy)
					}
				}
			}
		}
	}

	return l, nil
}
