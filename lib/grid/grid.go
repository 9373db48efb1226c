/*Package grid implements the uniform spatial grid ("cell list") used to
enumerate candidate neighbor pairs in O(N) rather than O(N^2).

The cell edge is fixed so that any two atoms whose inflated spheres can
touch must lie in the same cell or a directly adjacent one. Each cell
precomputes its "forward" neighbor cells -- the half of the 27-neighborhood
(plus itself) whose offset vector has a non-negative component sum -- so
that traversing every cell against its forward neighbors visits each
unordered cell pair exactly once. This mirrors the cell-list construction
in the FreeSASA nb.c source this package was built from, translated from
pointer-linked cells into a flat, index-addressed array.
*/
package grid

import (
	"math"

	"github.com/phil-mansfield/sasa/lib/arena"
	"github.com/phil-mansfield/sasa/lib/sasaerr"
)

// Grid partitions an Arena's atoms into a uniform lattice of cubic cells.
type Grid struct {
	d                float64
	xmin, ymin, zmin float64
	nx, ny, nz       int
	cellAtoms        [][]int32
	cellNeighbors    [][]int32 // forward-neighbor cell indices, including self
}

// offsets is the 27-neighborhood offsets satisfying dix+diy+diz >= 0, with a
// tie-breaking rule on the zero-sum offsets: of each opposite pair such as
// (1,-1,0) and (-1,1,0), only the one whose first non-zero component is
// positive is kept. That leaves 14 offsets (self plus half of the other
// 26), the "forward" half of the full 27-cell neighborhood, so every
// unordered cell pair is covered exactly once.
var offsets = func() [][3]int {
	var out [][3]int
	for dz := -1; dz <= 1; dz++ {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				sum := dx + dy + dz
				if sum < 0 {
					continue
				}
				if sum == 0 && (dx < 0 || (dx == 0 && dy < 0)) {
					continue
				}
				out = append(out, [3]int{dx, dy, dz})
			}
		}
	}
	return out
}()

// New builds a Grid over a, with cells sized to guarantee that any pair of
// atoms whose spheres (inflated by probe p) could overlap lie in the same
// or an adjacent cell.
func New(a *arena.Arena, p float64) (*Grid, error) {
	n := a.Len()
	if n < 1 {
		return nil, sasaerr.New(sasaerr.InvalidInput, "cannot grid an empty atom set")
	}

	d := 2 * a.InflatedMaxRadius(p)
	if d <= 0 {
		return nil, sasaerr.New(sasaerr.InvalidInput, "non-positive cell size %g", d)
	}

	x, y, z := a.X(), a.Y(), a.Z()
	xmin, xmax := x[0], x[0]
	ymin, ymax := y[0], y[0]
	zmin, zmax := z[0], z[0]
	for i := 1; i < n; i++ {
		if x[i] < xmin {
			xmin = x[i]
		}
		if x[i] > xmax {
			xmax = x[i]
		}
		if y[i] < ymin {
			ymin = y[i]
		}
		if y[i] > ymax {
			ymax = y[i]
		}
		if z[i] < zmin {
			zmin = z[i]
		}
		if z[i] > zmax {
			zmax = z[i]
		}
	}
	// Expand by half a cell on every face so every atom falls strictly
	// inside the lattice's interior, never on a boundary cell edge.
	xmin -= d / 2
	ymin -= d / 2
	zmin -= d / 2
	xmax += d / 2
	ymax += d / 2
	zmax += d / 2

	nx := ceilDiv(xmax-xmin, d)
	ny := ceilDiv(ymax-ymin, d)
	nz := ceilDiv(zmax-zmin, d)
	ncell := nx * ny * nz

	g := &Grid{
		d: d, xmin: xmin, ymin: ymin, zmin: zmin,
		nx: nx, ny: ny, nz: nz,
		cellAtoms:     make([][]int32, ncell),
		cellNeighbors: make([][]int32, ncell),
	}

	for i := 0; i < n; i++ {
		ci := g.cellIndex(x[i], y[i], z[i])
		g.cellAtoms[ci] = append(g.cellAtoms[ci], int32(i))
	}

	for iz := 0; iz < nz; iz++ {
		for iy := 0; iy < ny; iy++ {
			for ix := 0; ix < nx; ix++ {
				ci := g.cellIndexCoord(ix, iy, iz)
				var nbs []int32
				for _, off := range offsets {
					jx, jy, jz := ix+off[0], iy+off[1], iz+off[2]
					if jx < 0 || jx >= nx || jy < 0 || jy >= ny || jz < 0 || jz >= nz {
						continue
					}
					nbs = append(nbs, int32(g.cellIndexCoord(jx, jy, jz)))
				}
				g.cellNeighbors[ci] = nbs
			}
		}
	}

	return g, nil
}

func ceilDiv(span, d float64) int {
	n := int(math.Ceil(span / d))
	if n < 1 {
		n = 1
	}
	return n
}

func (g *Grid) cellIndexCoord(ix, iy, iz int) int {
	return ix + g.nx*(iy+g.ny*iz)
}

func (g *Grid) cellIndex(x, y, z float64) int {
	ix := int((x - g.xmin) / g.d)
	iy := int((y - g.ymin) / g.d)
	iz := int((z - g.zmin) / g.d)
	if ix >= g.nx {
		ix = g.nx - 1
	}
	if iy >= g.ny {
		iy = g.ny - 1
	}
	if iz >= g.nz {
		iz = g.nz - 1
	}
	return g.cellIndexCoord(ix, iy, iz)
}

// NumCells returns the number of cells in the lattice.
func (g *Grid) NumCells() int { return len(g.cellAtoms) }

// CellAtoms returns the atom indices assigned to cell ci.
func (g *Grid) CellAtoms(ci int) []int32 { return g.cellAtoms[ci] }

// ForwardNeighbors returns the forward-neighbor cell indices of cell ci,
// including ci itself. Visiting every cell against its forward neighbors,
// with the ci==cj case starting its inner atom loop at the next atom,
// visits every unordered atom pair within one cell-width exactly once.
func (g *Grid) ForwardNeighbors(ci int) []int32 { return g.cellNeighbors[ci] }
