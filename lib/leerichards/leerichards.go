/*Package leerichards implements the Lee-Richards SASA algorithm: each
atom's probe-inflated sphere is swept by parallel slices along the z axis,
and on each slice the atom's circular cross-section has the arcs covered by
intersecting neighbor cross-sections removed analytically.
*/
package leerichards

import (
	"context"
	"math"

	"github.com/phil-mansfield/sasa/lib/arcset"
	"github.com/phil-mansfield/sasa/lib/arena"
	"github.com/phil-mansfield/sasa/lib/neighbor"
	"github.com/phil-mansfield/sasa/lib/sasaerr"
	"github.com/phil-mansfield/sasa/lib/threadpool"
)

// Compute runs Lee-Richards over every atom in a, using probe radius p,
// nominal slice thickness delta, and nThreads worker goroutines (nThreads
// == 1 runs sequentially). It writes one area value per atom into area,
// which must have length a.Len().
func Compute(ctx context.Context, a *arena.Arena, nb *neighbor.List, p, delta float64, nThreads int, area []float64) error {
	if delta <= 0 {
		return sasaerr.New(sasaerr.InvalidParam, "lr_delta must be > 0, got %g", delta)
	}
	if nThreads < 1 {
		return sasaerr.New(sasaerr.InvalidParam, "n_threads must be >= 1, got %d", nThreads)
	}

	n := a.Len()
	x, y, z, r := a.X(), a.Y(), a.Z(), a.R()

	worker := func(lo, hi int) bool {
		var ex arcset.Set
		for i := lo; i < hi; i++ {
			if i%256 == 0 && ctx != nil && ctx.Err() != nil {
				return false
			}
			area[i] = atomArea(i, x, y, z, r, p, delta, nb, &ex)
		}
		return true
	}

	if nThreads == 1 {
		if !worker(0, n) {
			return sasaerr.New(sasaerr.Cancelled, "lee-richards integration cancelled")
		}
		return nil
	}

	pool := threadpool.New(nThreads)
	defer pool.Close()
	if !pool.Run(n, worker) {
		return sasaerr.New(sasaerr.Cancelled, "lee-richards integration cancelled")
	}
	return nil
}

func atomArea(i int, x, y, z, r []float64, p, delta float64, nb *neighbor.List, ex *arcset.Set) float64 {
	ri := r[i] + p
	zi := z[i]

	nSlices := int(math.Ceil(2 * ri / delta))
	if nSlices < 1 {
		nSlices = 1
	}
	actualDelta := 2 * ri / float64(nSlices)

	nbIdx := nb.NB[i]
	dxs, dys, xyds := nb.DX[i], nb.DY[i], nb.XYD[i]

	var total float64
	for s := 0; s < nSlices; s++ {
		zOff := -ri + actualDelta*(float64(s)+0.5)
		rho := math.Sqrt(math.Max(0, ri*ri-zOff*zOff))
		if rho <= 0 {
			continue
		}
		zs := zi + zOff

		ex.Reset()
		buried := false
		for k, j := range nbIdx {
			rj := r[j] + p
			zOffJ := zs - z[j]
			if math.Abs(zOffJ) >= rj {
				continue
			}
			rhoJ := math.Sqrt(math.Max(0, rj*rj-zOffJ*zOffJ))
			if rhoJ <= 0 {
				continue
			}
			xyd := xyds[k]

			if xyd >= rho+rhoJ {
				continue // circles don't overlap on this slice
			}
			if xyd == 0 && rho == rhoJ {
				// The two cross-sections coincide exactly: two atoms with
				// identical centers and radii. Neither circle's boundary
				// determines the other, so split the exposed measure
				// evenly between them rather than favoring whichever atom
				// has the lower index.
				ex.Add(0, math.Pi)
				continue
			}
			if xyd <= math.Abs(rho-rhoJ) {
				if rhoJ > rho {
					buried = true
					break
				}
				continue // neighbor's circle sits entirely inside ours
			}

			cosHalf := (rho*rho + xyd*xyd - rhoJ*rhoJ) / (2 * rho * xyd)
			cosHalf = math.Max(-1, math.Min(1, cosHalf))
			halfWidth := math.Acos(cosHalf)
			center := math.Atan2(dys[k], dxs[k])
			ex.Add(center-halfWidth, center+halfWidth)
		}

		if buried {
			continue
		}
		exposed := ex.ExposedMeasure()
		total += exposed * ri * actualDelta
	}

	return total
}
