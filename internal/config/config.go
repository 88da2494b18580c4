// Package config loads the code parameters and defaults used by the
// command line tool.
//
// Values come, in increasing precedence, from built-in defaults, a
// gobeam.yaml file (working directory or $HOME/.config/gobeam, or an
// explicit path) and GOBEAM_* environment variables. A .env file in the
// working directory is loaded into the environment first.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/alexiusacademia/gobeam/internal/aci"
	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/design"
	"github.com/alexiusacademia/gobeam/internal/fem"
)

// EnvPrefix is prepended to environment variable names
const EnvPrefix = "GOBEAM"

// Log settings
type Log struct {
	Level string `mapstructure:"level"`
}

// Analysis settings
type Analysis struct {
	Elements int     `mapstructure:"elements"`
	Stations int     `mapstructure:"stations"`
	MaxCond  float64 `mapstructure:"max_cond"`
}

// Design settings
type Design struct {
	PhiFlexure      float64      `mapstructure:"phi_flexure"`
	PhiShear        float64      `mapstructure:"phi_shear"`
	PhiTorsion      float64      `mapstructure:"phi_torsion"`
	MinClearSpacing float64      `mapstructure:"min_clear_spacing"`
	MaxLayers       int          `mapstructure:"max_layers"`
	Catalog         []design.Bar `mapstructure:"catalog"`
}

// Config is the resolved configuration
type Config struct {
	Log      Log      `mapstructure:"log"`
	Analysis Analysis `mapstructure:"analysis"`
	Design   Design   `mapstructure:"design"`

	// Source is the configuration file that was read, empty if none
	Source string `mapstructure:"-"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "warn")

	v.SetDefault("analysis.elements", fem.DefaultElements)
	v.SetDefault("analysis.stations", beam.DefaultStations)
	v.SetDefault("analysis.max_cond", fem.DefaultMaxCond)

	v.SetDefault("design.phi_flexure", aci.PhiFlexure)
	v.SetDefault("design.phi_shear", aci.PhiShear)
	v.SetDefault("design.phi_torsion", aci.PhiTorsion)
	v.SetDefault("design.min_clear_spacing", aci.MinClearSpacing)
	v.SetDefault("design.max_layers", design.DefaultMaxLayers)

	catalog := make([]map[string]any, 0, len(design.DefaultCatalog))
	for _, bar := range design.DefaultCatalog {
		catalog = append(catalog, map[string]any{"diameter": bar.Diameter, "area": bar.Area})
	}
	v.SetDefault("design.catalog", catalog)
}

// Default returns the built-in configuration
func Default() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("config: defaults: %w", err)
	}
	return &c, nil
}

// Load resolves the configuration. An empty path searches the default
// locations and tolerates a missing file; an explicit path must exist.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("gobeam")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "gobeam"))
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	c.Source = v.ConfigFileUsed()
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) validate() error {
	if c.Analysis.Elements < 1 || c.Analysis.Stations < 1 {
		return fmt.Errorf("config: analysis.elements and analysis.stations must be at least 1")
	}
	if c.Design.MaxLayers < 1 {
		return fmt.Errorf("config: design.max_layers must be at least 1, got %d", c.Design.MaxLayers)
	}
	for _, phi := range []float64{c.Design.PhiFlexure, c.Design.PhiShear, c.Design.PhiTorsion} {
		if !(phi > 0 && phi <= 1) {
			return fmt.Errorf("config: strength reduction factors must lie in (0, 1], got %g", phi)
		}
	}
	for _, bar := range c.Design.Catalog {
		if !(bar.Diameter > 0) || !(bar.Area > 0) {
			return fmt.Errorf("config: catalog bar %v must have positive diameter and area", bar)
		}
	}
	return nil
}

// LogLevel parses Log.Level, falling back to warn
func (c *Config) LogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelWarn
	}
	return lvl
}

// AnalysisOptions returns the beam analysis options
func (c *Config) AnalysisOptions() beam.Options {
	return beam.Options{
		Stations: c.Analysis.Stations,
		Elements: c.Analysis.Elements,
		Solver:   fem.LUSolver{MaxCond: c.Analysis.MaxCond},
	}
}

// ApplyDesign fills the unset code parameters of a design input
func (c *Config) ApplyDesign(in design.Input) design.Input {
	if in.PhiFlexure == 0 {
		in.PhiFlexure = c.Design.PhiFlexure
	}
	if in.PhiShear == 0 {
		in.PhiShear = c.Design.PhiShear
	}
	if in.PhiTorsion == 0 {
		in.PhiTorsion = c.Design.PhiTorsion
	}
	if in.MinClearSpacing == 0 {
		in.MinClearSpacing = c.Design.MinClearSpacing
	}
	if in.MaxLayers == 0 {
		in.MaxLayers = c.Design.MaxLayers
	}
	if len(in.Catalog) == 0 && len(c.Design.Catalog) > 0 {
		in.Catalog = design.Catalog(c.Design.Catalog)
	}
	return in
}
