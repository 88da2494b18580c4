package design

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gobeam/internal/aci"
)

// EffectiveDepth returns d = h - cover - stirrup - bar/2 (mm)
func EffectiveDepth(h, cover, stirrup, bar float64) float64 {
	return h - cover - stirrup - bar/2
}

// Limits holds the reinforcement ratio limits and the corresponding steel
// areas for a section
type Limits struct {
	Beta1       float64 `json:"beta1"`
	RhoMin      float64 `json:"rho_min"`
	RhoMax      float64 `json:"rho_max"`
	RhoBalanced float64 `json:"rho_balanced"`
	AsMin       float64 `json:"as_min"` // mm²
	AsMax       float64 `json:"as_max"` // tension-controlled singly reinforced limit (mm²)
}

// SteelLimits evaluates the ratio limits for a b×d section
func SteelLimits(fc, fy, b, d float64) Limits {
	l := Limits{
		Beta1:       aci.Beta1(fc),
		RhoMin:      aci.RhoMin(fc, fy),
		RhoMax:      aci.RhoMax(fc, fy),
		RhoBalanced: aci.RhoBalanced(fc, fy),
	}
	l.AsMin = l.RhoMin * b * d
	l.AsMax = l.RhoMax * b * d
	return l
}

// RequiredSteel solves Mu = φ·As·fy·(d - As·fy/(1.7·f'c·b)) for the smaller
// root. Mu is in kN·m and the result in mm².
func RequiredSteel(mu, phi, fc, fy, b, d float64) (float64, error) {
	if mu == 0 {
		return 0, nil
	}
	k := fy * fy / (1.7 * fc * b)
	disc := fy*fy*d*d - 4*k*mu*1e6/phi
	if disc < 0 {
		return 0, fmt.Errorf("%w (Mu = %.2f kN·m exceeds the section's flexural capacity)", ErrSectionTooSmall, mu)
	}
	return (fy*d - math.Sqrt(disc)) / (2 * k), nil
}

// FlexureResult holds the flexural steel requirement
type FlexureResult struct {
	Limits
	EffectiveDepth float64 `json:"effective_depth"`
	AsCalculated   float64 `json:"as_calculated"` // from the moment demand alone
	AsRequired     float64 `json:"as_required"`   // tension steel to provide

	Doubly bool    `json:"doubly"`
	Mu1    float64 `json:"mu1,omitempty"` // moment carried by the concrete couple (kN·m)
	Mu2    float64 `json:"mu2,omitempty"` // moment carried by the steel couple (kN·m)

	AsCompression      float64 `json:"as_compression,omitempty"`       // mm²
	CompressionDepth   float64 `json:"compression_depth,omitempty"`    // d' (mm)
	CompressionStrain  float64 `json:"compression_strain,omitempty"`   // εs'
	CompressionStress  float64 `json:"compression_stress,omitempty"`   // fs' (MPa)
	CompressionYielded bool    `json:"compression_yielded,omitempty"`
}

// Flexure designs the tension steel and, when the demand exceeds the
// tension-controlled singly reinforced capacity, the compression steel
func Flexure(in Input, d float64) (FlexureResult, error) {
	r := FlexureResult{
		Limits:         SteelLimits(in.Fc, in.Fy, in.Width, d),
		EffectiveDepth: d,
	}
	as, err := RequiredSteel(in.Mu, in.PhiFlexure, in.Fc, in.Fy, in.Width, d)
	if err != nil {
		return r, err
	}
	r.AsCalculated = as

	if as <= r.AsMax {
		r.AsRequired = math.Max(as, r.AsMin)
		return r, nil
	}

	// concrete couple at the tension-controlled limit
	r.Doubly = true
	aMax := r.AsMax * in.Fy / (0.85 * in.Fc * in.Width)
	cMax := aMax / r.Beta1
	r.Mu1 = in.PhiFlexure * r.AsMax * in.Fy * (d - aMax/2) / 1e6
	r.Mu2 = in.Mu - r.Mu1

	// steel couple
	dc := in.Cover + in.StirrupDiameter + in.CompressionBarDiameter/2
	r.CompressionDepth = dc
	if dc >= cMax {
		return r, fmt.Errorf("%w (c = %.1f mm, d' = %.1f mm)", ErrCompressionSteelIneffective, cMax, dc)
	}
	r.CompressionStrain = aci.EpsilonCU * (cMax - dc) / cMax
	r.CompressionYielded = r.CompressionStrain >= in.Fy/aci.Es
	r.CompressionStress = math.Min(r.CompressionStrain*aci.Es, in.Fy)

	// compression bars inside the stress block displace concrete
	fsNet := r.CompressionStress
	if aMax >= dc {
		fsNet -= 0.85 * in.Fc
	}
	if fsNet <= 0 {
		return r, fmt.Errorf("%w (f's = %.1f MPa)", ErrCompressionSteelIneffective, r.CompressionStress)
	}

	as2 := r.Mu2 * 1e6 / (in.PhiFlexure * in.Fy * (d - dc))
	r.AsRequired = r.AsMax + as2
	r.AsCompression = as2 * in.Fy / fsNet
	return r, nil
}
