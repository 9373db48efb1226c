package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/phil-mansfield/sasa"
)

func writeTemp(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "run.cfg")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestReadFileAppliesDefaults(t *testing.T) {
	path := writeTemp(t, "[run]\ninput = structure.pdb\n")
	cfg, err := ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Run.Algorithm != "shrake-rupley" {
		t.Errorf("Algorithm = %q, want shrake-rupley", cfg.Run.Algorithm)
	}
	if cfg.Run.ProbeRadius != 1.4 {
		t.Errorf("ProbeRadius = %g, want 1.4", cfg.Run.ProbeRadius)
	}
	if cfg.Run.Input != "structure.pdb" {
		t.Errorf("Input = %q, want structure.pdb", cfg.Run.Input)
	}
}

func TestReadFileOverridesDefaults(t *testing.T) {
	path := writeTemp(t, `[run]
algorithm = lee-richards
probe-radius = 1.2
sr-points = 500
lr-delta = 0.1
n-threads = 8
input = x.pdb
include-hetatm = true
`)
	cfg, err := ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Run.Algorithm != "lee-richards" {
		t.Errorf("Algorithm = %q, want lee-richards", cfg.Run.Algorithm)
	}
	if cfg.Run.SRPoints != 500 {
		t.Errorf("SRPoints = %d, want 500", cfg.Run.SRPoints)
	}
	if cfg.Run.NThreads != 8 {
		t.Errorf("NThreads = %d, want 8", cfg.Run.NThreads)
	}
	if !cfg.Run.IncludeHetatm {
		t.Errorf("IncludeHetatm = false, want true")
	}
}

func TestReadFileRejectsMissingPath(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.cfg")); err == nil {
		t.Errorf("expected an error for a missing config file")
	}
}

func TestParamsAppliesEachField(t *testing.T) {
	cfg := &RawConfig{}
	cfg.Run.Algorithm = "lee-richards"
	cfg.Run.ProbeRadius = 1.2
	cfg.Run.SRPoints = 100
	cfg.Run.LRDelta = 0.1
	cfg.Run.NThreads = 4

	p, err := cfg.Params()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Algorithm() != sasa.LeeRichards {
		t.Errorf("Algorithm = %v, want LeeRichards", p.Algorithm())
	}
	if p.ProbeRadius() != 1.2 {
		t.Errorf("ProbeRadius = %g, want 1.2", p.ProbeRadius())
	}
	if p.LRDelta() != 0.1 {
		t.Errorf("LRDelta = %g, want 0.1", p.LRDelta())
	}
	if p.NThreads() != 4 {
		t.Errorf("NThreads = %d, want 4", p.NThreads())
	}
}

func TestParamsRejectsUnknownAlgorithm(t *testing.T) {
	cfg := &RawConfig{}
	cfg.Run.Algorithm = "monte-carlo-v2"
	if _, err := cfg.Params(); err == nil {
		t.Errorf("expected an error for an unknown algorithm name")
	}
}

func TestParamsRejectsInvalidProbeRadius(t *testing.T) {
	cfg := &RawConfig{}
	cfg.Run.Algorithm = "shrake-rupley"
	cfg.Run.ProbeRadius = -1
	cfg.Run.SRPoints = 100
	cfg.Run.LRDelta = 0.25
	cfg.Run.NThreads = 1
	if _, err := cfg.Params(); err == nil {
		t.Errorf("expected an error for a negative probe radius")
	}
}
