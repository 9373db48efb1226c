/*Package sasa computes Solvent Accessible Surface Area for a set of atoms
using either the Shrake-Rupley or Lee-Richards algorithm.

Compute is the single public entry point. Everything upstream of it --
loading a structure file, classifying atoms, choosing parameters -- lives in
subpackages (lib/pdbio, lib/classify, lib/config) so that this package's
only job is the geometry.
*/
package sasa

import (
	"context"

	"github.com/phil-mansfield/sasa/lib/arena"
	"github.com/phil-mansfield/sasa/lib/classify"
	"github.com/phil-mansfield/sasa/lib/grid"
	"github.com/phil-mansfield/sasa/lib/leerichards"
	"github.com/phil-mansfield/sasa/lib/neighbor"
	"github.com/phil-mansfield/sasa/lib/result"
	"github.com/phil-mansfield/sasa/lib/sasaerr"
	"github.com/phil-mansfield/sasa/lib/shrake"
)

// Algorithm selects which SASA integrator Compute runs.
type Algorithm int

const (
	ShrakeRupley Algorithm = iota
	LeeRichards
)

func (a Algorithm) String() string {
	switch a {
	case ShrakeRupley:
		return "ShrakeRupley"
	case LeeRichards:
		return "LeeRichards"
	default:
		return "Unknown"
	}
}

// AtomSet is the input to Compute: N atoms with centers, radii, and
// classification/residue metadata supplied by an external loader. Class and
// Residue may be nil if the caller has no use for ByClass/PerResidue
// grouping; the chain is part of each ResidueID.
type AtomSet struct {
	X, Y, Z []float64
	R       []float64
	Class   []classify.Class
	Residue []result.ResidueID
}

// Len returns the number of atoms.
func (a AtomSet) Len() int { return len(a.X) }

// Params holds validated computation parameters. Use NewParams to obtain a
// Params with defaults, then the Set* methods to override fields; each
// setter rejects an invalid value with an InvalidParam error and leaves the
// previous value in place.
type Params struct {
	probeRadius float64
	srPoints    int
	lrDelta     float64
	nThreads    int
	algorithm   Algorithm
	ctx         context.Context
}

// NewParams returns a Params populated with the package defaults: probe
// radius 1.4, 100 Shrake-Rupley sample points, a Lee-Richards slice
// thickness of 0.25, a single thread, and the Shrake-Rupley algorithm.
func NewParams() Params {
	return Params{
		probeRadius: 1.4,
		srPoints:    100,
		lrDelta:     0.25,
		nThreads:    1,
		algorithm:   ShrakeRupley,
	}
}

func (p Params) ProbeRadius() float64     { return p.probeRadius }
func (p Params) SRPoints() int            { return p.srPoints }
func (p Params) LRDelta() float64         { return p.lrDelta }
func (p Params) NThreads() int            { return p.nThreads }
func (p Params) Algorithm() Algorithm     { return p.algorithm }
func (p Params) Context() context.Context { return p.ctx }

// SetAlgorithm sets the integrator Compute will run.
func (p Params) SetAlgorithm(a Algorithm) (Params, error) {
	if a != ShrakeRupley && a != LeeRichards {
		return p, sasaerr.New(sasaerr.InvalidParam, "unknown algorithm %d", a)
	}
	p.algorithm = a
	return p, nil
}

// SetProbeRadius sets the solvent probe radius; must be >= 0.
func (p Params) SetProbeRadius(r float64) (Params, error) {
	if r < 0 {
		return p, sasaerr.New(sasaerr.InvalidParam, "probe radius must be >= 0, got %g", r)
	}
	p.probeRadius = r
	return p, nil
}

// SetSRPoints sets the Shrake-Rupley sample count; must be one of the
// accepted enumerated sizes.
func (p Params) SetSRPoints(m int) (Params, error) {
	if !shrake.ValidPointCount(m) {
		return p, sasaerr.New(sasaerr.InvalidParam, "sr_points %d is not an accepted sample size", m)
	}
	p.srPoints = m
	return p, nil
}

// SetLRDelta sets the Lee-Richards slice thickness; must be > 0.
func (p Params) SetLRDelta(d float64) (Params, error) {
	if d <= 0 {
		return p, sasaerr.New(sasaerr.InvalidParam, "lr_delta must be > 0, got %g", d)
	}
	p.lrDelta = d
	return p, nil
}

// SetNThreads sets the worker-goroutine count used by the integrator; must
// be >= 1.
func (p Params) SetNThreads(n int) (Params, error) {
	if n < 1 {
		return p, sasaerr.New(sasaerr.InvalidParam, "n_threads must be >= 1, got %d", n)
	}
	p.nThreads = n
	return p, nil
}

// SetContext attaches a cancellation context; during integration Compute
// polls it once per block of 256 atom indices.
func (p Params) SetContext(ctx context.Context) Params {
	p.ctx = ctx
	return p
}

// Compute builds the neighbor list for atoms and runs the configured
// algorithm, returning a Result with one area value per atom plus totals.
func Compute(atoms AtomSet, params Params) (*result.Result, error) {
	a, err := arena.New(atoms.X, atoms.Y, atoms.Z, atoms.R)
	if err != nil {
		return nil, err
	}

	g, err := grid.New(a, params.probeRadius)
	if err != nil {
		return nil, err
	}

	nb, err := neighbor.Build(a, g, params.probeRadius)
	if err != nil {
		return nil, err
	}

	area := make([]float64, a.Len())
	switch params.algorithm {
	case ShrakeRupley:
		err = shrake.Compute(params.ctx, a, nb, params.probeRadius, params.srPoints, params.nThreads, area)
	case LeeRichards:
		err = leerichards.Compute(params.ctx, a, nb, params.probeRadius, params.lrDelta, params.nThreads, area)
	default:
		return nil, sasaerr.New(sasaerr.InvalidParam, "unknown algorithm %d", params.algorithm)
	}
	if err != nil {
		return nil, err
	}

	return result.Build(area, atoms.Class), nil
}
