/*Package config loads sasa run parameters from a gcfg-syntax config file,
with command-line flags able to override individual fields, and validates
the result into a sasa.Params before any geometry work begins.
*/
package config

import (
	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/sasa"
	"github.com/phil-mansfield/sasa/lib/sasaerr"
)

// RawConfig is the gcfg-decoded shape of a sasa config file:
//
//	[run]
//	algorithm = shrake-rupley
//	probe-radius = 1.4
//	sr-points = 100
//	lr-delta = 0.25
//	n-threads = 4
//	input = structure.pdb
type RawConfig struct {
	Run struct {
		Algorithm     string
		ProbeRadius   float64 `gcfg:"probe-radius"`
		SRPoints      int     `gcfg:"sr-points"`
		LRDelta       float64 `gcfg:"lr-delta"`
		NThreads      int     `gcfg:"n-threads"`
		Input         string
		IncludeHetatm bool `gcfg:"include-hetatm"`
	}
}

// ReadFile parses a gcfg config file at path into a RawConfig.
func ReadFile(path string) (*RawConfig, error) {
	cfg := &RawConfig{}
	cfg.Run.Algorithm = "shrake-rupley"
	cfg.Run.ProbeRadius = 1.4
	cfg.Run.SRPoints = 100
	cfg.Run.LRDelta = 0.25
	cfg.Run.NThreads = 1

	if err := gcfg.ReadFileInto(cfg, path); err != nil {
		return nil, sasaerr.New(sasaerr.InvalidInput, "cannot read config %s: %v", path, err)
	}
	return cfg, nil
}

// Params validates a RawConfig into a sasa.Params, applying each field
// through the corresponding Params setter so the same InvalidParam rules
// used by the public API govern config files too.
func (c *RawConfig) Params() (sasa.Params, error) {
	p := sasa.NewParams()
	var err error

	switch c.Run.Algorithm {
	case "shrake-rupley", "":
		p, err = p.SetAlgorithm(sasa.ShrakeRupley)
	case "lee-richards":
		p, err = p.SetAlgorithm(sasa.LeeRichards)
	default:
		return p, sasaerr.New(sasaerr.InvalidParam, "unknown algorithm %q", c.Run.Algorithm)
	}
	if err != nil {
		return p, err
	}

	if p, err = p.SetProbeRadius(c.Run.ProbeRadius); err != nil {
		return p, err
	}
	if p, err = p.SetSRPoints(c.Run.SRPoints); err != nil {
		return p, err
	}
	if p, err = p.SetLRDelta(c.Run.LRDelta); err != nil {
		return p, err
	}
	if p, err = p.SetNThreads(c.Run.NThreads); err != nil {
		return p, err
	}

	return p, nil
}
