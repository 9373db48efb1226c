package arena

import (
	"testing"

	"github.com/phil-mansfield/sasa/lib/sasaerr"
)

func TestNew(t *testing.T) {
	a, err := New([]float64{0, 1}, []float64{0, 0}, []float64{0, 0}, []float64{1, 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Len() != 2 {
		t.Errorf("Len() = %d, want 2", a.Len())
	}
	x, y, z, r := a.At(1)
	if x != 1 || y != 0 || z != 0 || r != 2 {
		t.Errorf("At(1) = (%g,%g,%g,%g), want (1,0,0,2)", x, y, z, r)
	}
}

func TestNewRejectsEmpty(t *testing.T) {
	_, err := New(nil, nil, nil, nil)
	if !sasaerr.Is(err, sasaerr.InvalidInput) {
		t.Errorf("New(empty) error = %v, want InvalidInput", err)
	}
}

func TestNewRejectsMismatchedLengths(t *testing.T) {
	_, err := New([]float64{0, 1}, []float64{0}, []float64{0, 0}, []float64{1, 1})
	if !sasaerr.Is(err, sasaerr.InvalidInput) {
		t.Errorf("New(mismatched) error = %v, want InvalidInput", err)
	}
}

func TestNewRejectsNonPositiveRadius(t *testing.T) {
	table := [][]float64{
		{1, 0},
		{1, -1},
	}
	for _, r := range table {
		_, err := New([]float64{0, 1}, []float64{0, 0}, []float64{0, 0}, r)
		if !sasaerr.Is(err, sasaerr.InvalidInput) {
			t.Errorf("New(r=%v) error = %v, want InvalidInput", r, err)
		}
	}
}

func TestInflatedMaxRadius(t *testing.T) {
	a, err := New([]float64{0, 1, 2}, []float64{0, 0, 0}, []float64{0, 0, 0}, []float64{1, 3, 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := a.InflatedMaxRadius(0.5)
	want := 3.5
	if got != want {
		t.Errorf("InflatedMaxRadius(0.5) = %g, want %g", got, want)
	}
}
