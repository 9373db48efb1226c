package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/phil-mansfield/sasa"
	"github.com/phil-mansfield/sasa/lib/clifatal"
	"github.com/phil-mansfield/sasa/lib/config"
	"github.com/phil-mansfield/sasa/lib/pdbio"
	"github.com/phil-mansfield/sasa/lib/sasaerr"
)

func main() {
	configFile := flag.String("config", "", "gcfg config file with a [run] section")
	input := flag.String("input", "", "PDB file to load (overrides config)")
	algorithm := flag.String("algorithm", "", "shrake-rupley or lee-richards (overrides config)")
	nThreads := flag.Int("n-threads", 0, "worker goroutine count (overrides config; 0 means use config/default)")
	flag.Parse()

	cfg := &config.RawConfig{}
	cfg.Run.Algorithm = "shrake-rupley"
	cfg.Run.ProbeRadius = 1.4
	cfg.Run.SRPoints = 100
	cfg.Run.LRDelta = 0.25
	cfg.Run.NThreads = 1

	if *configFile != "" {
		loaded, err := config.ReadFile(*configFile)
		if err != nil {
			fatal(err)
		}
		cfg = loaded
	}
	if *input != "" {
		cfg.Run.Input = *input
	}
	if *algorithm != "" {
		cfg.Run.Algorithm = *algorithm
	}
	if *nThreads != 0 {
		cfg.Run.NThreads = *nThreads
	}

	if cfg.Run.Input == "" {
		fatal(sasaerr.New(sasaerr.InvalidParam, "no input PDB file given (use -input or a config file's run.input)"))
	}

	params, err := cfg.Params()
	if err != nil {
		fatal(err)
	}

	Run(cfg.Run.Input, params, cfg.Run.IncludeHetatm)
}

// Run loads path as a PDB file and computes and prints its SASA under
// params.
func Run(path string, params sasa.Params, includeHetatm bool) {
	loaderCfg := pdbio.DefaultConfig
	loaderCfg.IncludeHetatm = includeHetatm

	atoms, warnings, err := pdbio.LoadConfig(path, loaderCfg)
	if err != nil {
		fatal(err)
	}
	for _, w := range warnings {
		fmt.Fprintln(os.Stderr, "warning:", w)
	}

	res, err := sasa.Compute(sasa.AtomSet{
		X: atoms.X, Y: atoms.Y, Z: atoms.Z, R: atoms.R,
		Class: atoms.Class, Residue: atoms.Residue,
	}, params)
	if err != nil {
		fatal(err)
	}

	name := atoms.Name
	if name == "" {
		name = path
	}
	fmt.Printf("%s: total SASA = %.6f\n", name, res.Total)
	for class, area := range res.ByClass {
		fmt.Printf("  %s: %.6f\n", class, area)
	}
}

func fatal(err error) {
	clifatal.Report(err)
}
