/*Package result aggregates per-atom SASA contributions into totals, by
classification, and by residue.
*/
package result

import (
	"github.com/phil-mansfield/sasa/lib/classify"

	"gonum.org/v1/gonum/floats"
)

// ResidueID identifies a residue by chain and sequence number; insertion
// code disambiguates residues that share a sequence number.
type ResidueID struct {
	Chain         string
	SeqNum        int
	InsertionCode byte
}

// Result is the per-atom and aggregate SASA output of a Compute call.
type Result struct {
	Area    []float64
	Total   float64
	ByClass map[classify.Class]float64
}

// Build sums area (in atom-index order, for determinism regardless of how
// many worker goroutines produced it) into a Result, grouping the
// by-classification subtotal using class, which must have the same length
// as area.
func Build(area []float64, class []classify.Class) *Result {
	r := &Result{
		Area:    area,
		Total:   floats.Sum(area),
		ByClass: make(map[classify.Class]float64, 3),
	}
	for i, a := range area {
		c := classify.Unknown
		if class != nil {
			c = class[i]
		}
		r.ByClass[c] += a
	}
	return r
}

// PerResidue sums area grouped by residue identity, given a parallel
// residue-id slice of the same length as area.
func PerResidue(area []float64, residue []ResidueID) map[ResidueID]float64 {
	out := make(map[ResidueID]float64)
	for i, a := range area {
		out[residue[i]] += a
	}
	return out
}
