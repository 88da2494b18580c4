package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/alexiusacademia/gobeam/internal/design"
)

func isolate(tst *testing.T) string {
	dir := tst.TempDir()
	tst.Setenv("HOME", dir)
	tst.Chdir(dir)
	return dir
}

func Test_config01(tst *testing.T) {
	chk.PrintTitle("config01. defaults")

	isolate(tst)
	c, err := Load("")
	if err != nil {
		tst.Errorf("Load failed:\n%v", err)
		return
	}
	if c.Source != "" {
		tst.Errorf("no file expected, got %q", c.Source)
	}
	chk.Int(tst, "elements", c.Analysis.Elements, 50)
	chk.Int(tst, "stations", c.Analysis.Stations, 100)
	chk.Int(tst, "max layers", c.Design.MaxLayers, design.DefaultMaxLayers)
	chk.Float64(tst, "φ flexure", 1e-15, c.Design.PhiFlexure, 0.9)
	chk.Float64(tst, "φ shear", 1e-15, c.Design.PhiShear, 0.75)
	chk.Float64(tst, "spacing", 1e-15, c.Design.MinClearSpacing, 25)
	chk.Int(tst, "catalog", len(c.Design.Catalog), len(design.DefaultCatalog))
	if c.LogLevel() != slog.LevelWarn {
		tst.Errorf("log level: got %v", c.LogLevel())
	}

	d, err := Default()
	if err != nil {
		tst.Errorf("Default failed:\n%v", err)
		return
	}
	chk.Int(tst, "default elements", d.Analysis.Elements, c.Analysis.Elements)
	chk.Float64(tst, "default φ torsion", 1e-15, d.Design.PhiTorsion, c.Design.PhiTorsion)
	chk.Int(tst, "default catalog", len(d.Design.Catalog), len(c.Design.Catalog))

	in := c.ApplyDesign(design.Input{PhiShear: 0.6})
	chk.Float64(tst, "kept φ shear", 1e-15, in.PhiShear, 0.6)
	chk.Float64(tst, "filled φ torsion", 1e-15, in.PhiTorsion, 0.75)
	chk.Int(tst, "filled catalog", len(in.Catalog), len(design.DefaultCatalog))
}

func Test_config02(tst *testing.T) {
	chk.PrintTitle("config02. file and environment overrides")

	dir := isolate(tst)
	file := filepath.Join(dir, "custom.yaml")
	yaml := `log:
  level: debug
analysis:
  elements: 80
design:
  max_layers: 2
  catalog:
    - diameter: 16
      area: 201
    - diameter: 25
      area: 491
`
	if err := os.WriteFile(file, []byte(yaml), 0o644); err != nil {
		tst.Fatal(err)
	}
	tst.Setenv("GOBEAM_ANALYSIS_STATIONS", "40")

	c, err := Load(file)
	if err != nil {
		tst.Errorf("Load failed:\n%v", err)
		return
	}
	chk.Int(tst, "elements", c.Analysis.Elements, 80)
	chk.Int(tst, "stations", c.Analysis.Stations, 40)
	chk.Int(tst, "max layers", c.Design.MaxLayers, 2)
	chk.Int(tst, "catalog", len(c.Design.Catalog), 2)
	chk.Float64(tst, "bar", 1e-15, c.Design.Catalog[1].Area, 491)
	if c.LogLevel() != slog.LevelDebug {
		tst.Errorf("log level: got %v", c.LogLevel())
	}

	opts := c.AnalysisOptions()
	chk.Int(tst, "options elements", opts.Elements, 80)
}

func Test_config03(tst *testing.T) {
	chk.PrintTitle("config03. search path, .env and errors")

	dir := isolate(tst)
	if err := os.WriteFile(filepath.Join(dir, "gobeam.yaml"), []byte("design:\n  max_layers: 3\n"), 0o644); err != nil {
		tst.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("GOBEAM_LOG_LEVEL=info\n"), 0o644); err != nil {
		tst.Fatal(err)
	}
	tst.Cleanup(func() { os.Unsetenv("GOBEAM_LOG_LEVEL") })

	c, err := Load("")
	if err != nil {
		tst.Errorf("Load failed:\n%v", err)
		return
	}
	chk.Int(tst, "max layers", c.Design.MaxLayers, 3)
	if c.LogLevel() != slog.LevelInfo {
		tst.Errorf("log level from .env: got %v", c.LogLevel())
	}

	if _, err = Load(filepath.Join(dir, "missing.yaml")); err == nil {
		tst.Errorf("missing explicit file accepted")
	}

	tst.Setenv("GOBEAM_DESIGN_PHI_SHEAR", "1.5")
	if _, err = Load(""); err == nil {
		tst.Errorf("φ above one accepted")
	}
}
