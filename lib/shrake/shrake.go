/*Package shrake implements the Shrake-Rupley SASA algorithm: a quadrature
point set is sampled on each atom's probe-inflated sphere, and the fraction
of points not buried inside a neighboring sphere gives that atom's exposed
area fraction.
*/
package shrake

import (
	"context"
	"math"

	"github.com/phil-mansfield/sasa/lib/arena"
	"github.com/phil-mansfield/sasa/lib/neighbor"
	"github.com/phil-mansfield/sasa/lib/sasaerr"
	"github.com/phil-mansfield/sasa/lib/threadpool"

	"gonum.org/v1/gonum/spatial/r3"
)

const fourPi = 4 * math.Pi

// Points generates a quasi-uniform point set of size m on the unit sphere
// using a golden-angle (Fibonacci) spiral, the standard low-discrepancy
// construction for this kind of Monte-Carlo quadrature.
func Points(m int) []r3.Vec {
	pts := make([]r3.Vec, m)
	goldenAngle := math.Pi * (3 - math.Sqrt(5))
	for k := 0; k < m; k++ {
		z := 1 - 2*float64(k)/float64(m-1)
		if m == 1 {
			z = 0
		}
		radius := math.Sqrt(math.Max(0, 1-z*z))
		theta := goldenAngle * float64(k)
		pts[k] = r3.Vec{X: radius * math.Cos(theta), Y: radius * math.Sin(theta), Z: z}
	}
	return pts
}

// acceptedPointCounts mirrors the reference implementation's enumerated set
// of valid sample sizes.
var acceptedPointCounts = map[int]bool{
	20: true, 50: true, 100: true, 200: true, 500: true,
	1000: true, 2000: true, 5000: true,
}

// ValidPointCount reports whether m is one of the accepted sample sizes.
func ValidPointCount(m int) bool { return acceptedPointCounts[m] }

// Compute runs Shrake-Rupley over every atom in a, using probe radius p, a
// unit-sphere sample set of m points, and nThreads worker goroutines
// (nThreads == 1 runs sequentially on the calling goroutine). It writes one
// area value per atom into area, which must have length a.Len().
func Compute(ctx context.Context, a *arena.Arena, nb *neighbor.List, p float64, m int, nThreads int, area []float64) error {
	if !ValidPointCount(m) {
		return sasaerr.New(sasaerr.InvalidParam, "sr_points %d is not one of the accepted sample sizes", m)
	}
	if nThreads < 1 {
		return sasaerr.New(sasaerr.InvalidParam, "n_threads must be >= 1, got %d", nThreads)
	}

	pts := Points(m)
	n := a.Len()
	x, y, z, r := a.X(), a.Y(), a.Z(), a.R()

	worker := func(lo, hi int) bool {
		for i := lo; i < hi; i++ {
			if i%256 == 0 && ctx != nil && ctx.Err() != nil {
				return false
			}
			area[i] = atomArea(i, x, y, z, r, p, pts, nb)
		}
		return true
	}

	if nThreads == 1 {
		if !worker(0, n) {
			return sasaerr.New(sasaerr.Cancelled, "shrake-rupley integration cancelled")
		}
		return nil
	}

	pool := threadpool.New(nThreads)
	defer pool.Close()
	if !pool.Run(n, worker) {
		return sasaerr.New(sasaerr.Cancelled, "shrake-rupley integration cancelled")
	}
	return nil
}

func atomArea(i int, x, y, z, r []float64, p float64, pts []r3.Vec, nb *neighbor.List) float64 {
	ri := r[i] + p
	xi, yi, zi := x[i], y[i], z[i]

	nbIdx := nb.NB[i]
	buried := 0
	for _, pt := range pts {
		px := xi + ri*pt.X
		py := yi + ri*pt.Y
		pz := zi + ri*pt.Z

		hidden := false
		for _, j := range nbIdx {
			rj := r[j] + p
			dx := px - x[j]
			dy := py - y[j]
			dz := pz - z[j]
			if dx*dx+dy*dy+dz*dz < rj*rj {
				hidden = true
				break
			}
		}
		if hidden {
			buried++
		}
	}

	exposedFrac := float64(len(pts)-buried) / float64(len(pts))
	return fourPi * ri * ri * exposedFrac
}
