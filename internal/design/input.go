package design

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/alexiusacademia/gobeam/internal/aci"
)

var (
	ErrSectionTooSmall             = errors.New("section too small: increase dimensions or material strength")
	ErrCompressionSteelIneffective = errors.New("compression steel is not effective: neutral axis lies above it")
	ErrBarsDoNotFit                = errors.New("cannot fit bars in width")
	ErrShearTooHigh                = errors.New("shear too high: increase section dimensions")
	ErrTorsionTooHigh              = errors.New("torsion too high: increase section dimensions")
	ErrCapacityNotMet              = errors.New("provided reinforcement does not reach the design moment")
	ErrDepthNotConverged           = errors.New("effective depth of the selected bars does not converge")
)

// DefaultMaxLayers is the largest number of bar layers tried
const DefaultMaxLayers = 4

// StirrupLegs is the number of stirrup legs resisting shear
const StirrupLegs = 2

// Bar is a reinforcing bar size
type Bar struct {
	Diameter float64 `json:"diameter" mapstructure:"diameter"` // mm
	Area     float64 `json:"area" mapstructure:"area"`         // mm²
}

// Catalog is the list of available bar sizes
type Catalog []Bar

// DefaultCatalog holds the common metric bar sizes
var DefaultCatalog = Catalog{
	{10, 78.54},
	{12, 113.10},
	{16, 201.06},
	{20, 314.16},
	{25, 490.87},
	{28, 615.75},
	{32, 804.25},
	{36, 1017.88},
}

// Area returns the area of the bar with diameter db, falling back to the
// nominal circle area for sizes not in the catalog
func (c Catalog) Area(db float64) float64 {
	for _, b := range c {
		if b.Diameter == db {
			return b.Area
		}
	}
	return aci.BarArea(db)
}

// Descending returns a copy sorted from the largest diameter down
func (c Catalog) Descending() Catalog {
	out := append(Catalog(nil), c...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Diameter > out[j].Diameter })
	return out
}

// Input holds the design actions, section and code parameters. Lengths are
// in mm, stresses in MPa, moments in kN·m and forces in kN.
type Input struct {
	Fc        float64 `json:"fc"`
	Fy        float64 `json:"fy"`
	FyStirrup float64 `json:"fy_stirrup,omitempty"` // zero means Fy

	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Cover  float64 `json:"cover"` // clear cover to the stirrups

	StirrupDiameter        float64 `json:"stirrup_diameter"`
	BarDiameter            float64 `json:"bar_diameter"`
	CompressionBarDiameter float64 `json:"compression_bar_diameter,omitempty"` // zero means BarDiameter
	SideBarDiameter        float64 `json:"side_bar_diameter,omitempty"`        // zero means BarDiameter
	UseSideBars            bool    `json:"use_side_bars,omitempty"`
	Catalog                Catalog `json:"catalog,omitempty"`

	Mu float64 `json:"mu"`
	Vu float64 `json:"vu"`
	Tu float64 `json:"tu"`

	PhiFlexure      float64 `json:"phi_flexure,omitempty"`
	PhiShear        float64 `json:"phi_shear,omitempty"`
	PhiTorsion      float64 `json:"phi_torsion,omitempty"`
	MinClearSpacing float64 `json:"min_clear_spacing,omitempty"`
	MaxLayers       int     `json:"max_layers,omitempty"`
}

// WithDefaults fills the optional parameters left at zero
func (in Input) WithDefaults() Input {
	if in.FyStirrup == 0 {
		in.FyStirrup = in.Fy
	}
	if in.CompressionBarDiameter == 0 {
		in.CompressionBarDiameter = in.BarDiameter
	}
	if in.SideBarDiameter == 0 {
		in.SideBarDiameter = in.BarDiameter
	}
	if len(in.Catalog) == 0 {
		in.Catalog = DefaultCatalog
	}
	if in.PhiFlexure == 0 {
		in.PhiFlexure = aci.PhiFlexure
	}
	if in.PhiShear == 0 {
		in.PhiShear = aci.PhiShear
	}
	if in.PhiTorsion == 0 {
		in.PhiTorsion = aci.PhiTorsion
	}
	if in.MinClearSpacing == 0 {
		in.MinClearSpacing = aci.MinClearSpacing
	}
	if in.MaxLayers == 0 {
		in.MaxLayers = DefaultMaxLayers
	}
	return in
}

// ValidationError represents an invalid design input
type ValidationError struct {
	Field string
	msg   string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.msg
}

func invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, msg: fmt.Sprintf(format, args...)}
}

// Validate checks the input after defaults are applied
func (in Input) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"fc", in.Fc},
		{"fy", in.Fy},
		{"fy_stirrup", in.FyStirrup},
		{"width", in.Width},
		{"height", in.Height},
		{"bar_diameter", in.BarDiameter},
		{"compression_bar_diameter", in.CompressionBarDiameter},
		{"side_bar_diameter", in.SideBarDiameter},
	}
	for _, p := range positive {
		if !(p.v > 0) || math.IsInf(p.v, 0) {
			return invalid(p.name, "must be positive, got %g", p.v)
		}
	}
	nonNegative := []struct {
		name string
		v    float64
	}{
		{"cover", in.Cover},
		{"stirrup_diameter", in.StirrupDiameter},
		{"mu", in.Mu},
		{"vu", in.Vu},
		{"tu", in.Tu},
	}
	for _, p := range nonNegative {
		if p.v < 0 || math.IsNaN(p.v) {
			return invalid(p.name, "must not be negative, got %g", p.v)
		}
	}
	for _, phi := range []float64{in.PhiFlexure, in.PhiShear, in.PhiTorsion} {
		if !(phi > 0 && phi <= 1) {
			return invalid("phi", "strength reduction factors must lie in (0, 1], got %g", phi)
		}
	}
	if in.MaxLayers < 1 {
		return invalid("max_layers", "must be at least 1, got %d", in.MaxLayers)
	}
	for i, b := range in.Catalog {
		if !(b.Diameter > 0) || !(b.Area > 0) {
			return invalid(fmt.Sprintf("catalog[%d]", i), "diameter and area must be positive")
		}
	}
	if (in.Vu > 0 || in.Tu > 0) && in.StirrupDiameter <= 0 {
		return invalid("stirrup_diameter", "required when shear or torsion act")
	}
	return nil
}
