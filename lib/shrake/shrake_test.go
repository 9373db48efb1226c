package shrake

import (
	"math"
	"testing"

	"github.com/phil-mansfield/sasa/lib/arena"
	"github.com/phil-mansfield/sasa/lib/eq"
	"github.com/phil-mansfield/sasa/lib/grid"
	"github.com/phil-mansfield/sasa/lib/neighbor"
)

func TestValidPointCount(t *testing.T) {
	table := []struct {
		m    int
		want bool
	}{
		{20, true}, {100, true}, {5000, true},
		{0, false}, {123, false}, {-1123, false}, {1123, false},
	}
	for _, test := range table {
		if got := ValidPointCount(test.m); got != test.want {
			t.Errorf("ValidPointCount(%d) = %v, want %v", test.m, got, test.want)
		}
	}
}

func TestPointsAreUnitLength(t *testing.T) {
	pts := Points(100)
	if len(pts) != 100 {
		t.Fatalf("Points(100) has length %d, want 100", len(pts))
	}
	for i, p := range pts {
		l := math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
		if math.Abs(l-1) > 1e-9 {
			t.Errorf("point %d has length %g, want 1", i, l)
		}
	}
}

func computeTotal(t *testing.T, x, y, z, r []float64, p float64, m, nThreads int) float64 {
	a, err := arena.New(x, y, z, r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g, err := grid.New(a, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	nb, err := neighbor.Build(a, g, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	area := make([]float64, a.Len())
	if err := Compute(nil, a, nb, p, m, nThreads, area); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var total float64
	for _, v := range area {
		total += v
	}
	return total
}

func TestSingleAtom(t *testing.T) {
	total := computeTotal(t, []float64{0}, []float64{0}, []float64{0}, []float64{2}, 0, 5000, 1)
	want := 4 * math.Pi * 4
	if !eq.FloatsRelErr(total, want, 1e-2) {
		t.Errorf("single-atom total = %g, want ~%g", total, want)
	}
}

func TestDisjointAtomsSumIndependently(t *testing.T) {
	total := computeTotal(t, []float64{0, 100}, []float64{0, 0}, []float64{0, 0}, []float64{1, 2}, 0, 5000, 1)
	want := 4*math.Pi*1*1 + 4*math.Pi*2*2
	if !eq.FloatsRelErr(total, want, 1e-2) {
		t.Errorf("disjoint-atom total = %g, want ~%g", total, want)
	}
}

func TestTwoSpheresAxisIndependent(t *testing.T) {
	centers := [][2][3]float64{
		{{0, 0, 0}, {2, 0, 0}},
		{{0, 0, 0}, {0, 2, 0}},
		{{0, 0, 0}, {0, 0, 2}},
	}
	var totals []float64
	for _, c := range centers {
		x := []float64{c[0][0], c[1][0]}
		y := []float64{c[0][1], c[1][1]}
		z := []float64{c[0][2], c[1][2]}
		r := []float64{1, 2}
		totals = append(totals, computeTotal(t, x, y, z, r, 0, 5000, 1))
	}
	for i := 1; i < len(totals); i++ {
		if !eq.FloatsRelErr(totals[i], totals[0], 1e-2) {
			t.Errorf("axis-%d total %g differs from axis-0 total %g by more than tolerance", i, totals[i], totals[0])
		}
	}
}

func TestSequentialMatchesParallel(t *testing.T) {
	x := []float64{0, 1.5, 3, -1.5, 4.5, -3}
	y := []float64{0, 0.5, -0.5, 1, 0, -1}
	z := []float64{0, 0.2, 0.1, -0.3, 0.2, 0}
	r := make([]float64, len(x))
	for i := range r {
		r[i] = 1.5
	}
	seq := computeTotal(t, x, y, z, r, 1.4, 500, 1)
	par := computeTotal(t, x, y, z, r, 1.4, 500, 4)
	if math.Abs(seq-par)/seq > 1e-9 {
		t.Errorf("sequential total %g and parallel total %g disagree", seq, par)
	}
}
