package result

import (
	"math"
	"testing"

	"github.com/phil-mansfield/sasa/lib/classify"
)

func TestBuildTotalsInIndexOrder(t *testing.T) {
	area := []float64{1.5, 2.5, 3.0}
	class := []classify.Class{classify.Polar, classify.Apolar, classify.Polar}

	r := Build(area, class)
	if math.Abs(r.Total-7.0) > 1e-12 {
		t.Errorf("Total = %g, want 7.0", r.Total)
	}
	if math.Abs(r.ByClass[classify.Polar]-4.5) > 1e-12 {
		t.Errorf("ByClass[Polar] = %g, want 4.5", r.ByClass[classify.Polar])
	}
	if math.Abs(r.ByClass[classify.Apolar]-2.5) > 1e-12 {
		t.Errorf("ByClass[Apolar] = %g, want 2.5", r.ByClass[classify.Apolar])
	}
}

func TestBuildWithNilClass(t *testing.T) {
	area := []float64{1, 2, 3}
	r := Build(area, nil)
	if math.Abs(r.ByClass[classify.Unknown]-6) > 1e-12 {
		t.Errorf("ByClass[Unknown] = %g, want 6", r.ByClass[classify.Unknown])
	}
}

func TestPerResidue(t *testing.T) {
	area := []float64{1, 2, 3, 4}
	residue := []ResidueID{
		{Chain: "A", SeqNum: 1},
		{Chain: "A", SeqNum: 1},
		{Chain: "A", SeqNum: 2},
		{Chain: "B", SeqNum: 1},
	}
	byRes := PerResidue(area, residue)
	if byRes[ResidueID{Chain: "A", SeqNum: 1}] != 3 {
		t.Errorf("A:1 = %g, want 3", byRes[ResidueID{Chain: "A", SeqNum: 1}])
	}
	if byRes[ResidueID{Chain: "A", SeqNum: 2}] != 3 {
		t.Errorf("A:2 = %g, want 3", byRes[ResidueID{Chain: "A", SeqNum: 2}])
	}
	if byRes[ResidueID{Chain: "B", SeqNum: 1}] != 4 {
		t.Errorf("B:1 = %g, want 4", byRes[ResidueID{Chain: "B", SeqNum: 1}])
	}
}
