package design

import (
	"fmt"
	"math"
)

// TorsionResult holds the torsion reinforcement. Areas are in mm², lengths
// in mm and torques in kN·m.
type TorsionResult struct {
	Acp float64 `json:"acp"` // gross area
	Pcp float64 `json:"pcp"` // gross perimeter
	Aoh float64 `json:"aoh"` // area enclosed by the stirrup centreline
	Ph  float64 `json:"ph"`  // perimeter of the stirrup centreline

	Threshold   float64 `json:"threshold"` // φ·Tth
	Neglectable bool    `json:"neglectable"`

	AtOverS          float64 `json:"at_over_s"`        // one leg, mm²/mm
	StirrupLegArea   float64 `json:"stirrup_leg_area"` // mm²
	LegCount         int     `json:"leg_count"`
	Spacing          float64 `json:"spacing"`          // torsion alone
	CombinedSpacing  float64 `json:"combined_spacing"` // shear plus torsion
	LongitudinalArea float64 `json:"longitudinal_area"`
	PhiTn            float64 `json:"phi_tn"`
}

// DesignTorsion designs closed stirrups and longitudinal steel for Tu
// (ACI 318-19 22.7 and 9.6.4), combining the transverse demand with the
// shear design
func DesignTorsion(in Input, d float64, shear ShearResult) (TorsionResult, error) {
	b, h := in.Width, in.Height
	sqrtFc := math.Sqrt(in.Fc)
	off := 2*in.Cover + in.StirrupDiameter
	x1, y1 := b-off, h-off

	r := TorsionResult{
		Acp:            b * h,
		Pcp:            2 * (b + h),
		Aoh:            x1 * y1,
		Ph:             2 * (x1 + y1),
		StirrupLegArea: in.Catalog.Area(in.StirrupDiameter),
		LegCount:       StirrupLegs,
	}
	if x1 <= 0 || y1 <= 0 {
		return r, invalid("cover", "stirrups do not fit in the %gx%g mm section", b, h)
	}
	r.Threshold = in.PhiTorsion * 0.083 * sqrtFc * r.Acp * r.Acp / r.Pcp / 1e6
	if in.Tu < r.Threshold {
		r.Neglectable = true
		return r, nil
	}

	// cross-sectional limit for solid sections
	tu := in.Tu * 1e6
	vu := in.Vu * 1e3
	lhs := math.Hypot(vu/(b*d), tu*r.Ph/(1.7*r.Aoh*r.Aoh))
	rhs := in.PhiShear * (shear.Vc*1e3/(b*d) + 0.66*sqrtFc)
	if lhs > rhs {
		return r, fmt.Errorf("%w (%.2f MPa > %.2f MPa)", ErrTorsionTooHigh, lhs, rhs)
	}

	// Tn = 2·Ao·At·fyt/s with Ao = 0.85·Aoh and θ = 45°
	ao := 0.85 * r.Aoh
	r.AtOverS = tu / (in.PhiTorsion * 2 * ao * in.FyStirrup)

	sMax := math.Min(r.Ph/8, 300)
	r.Spacing = math.Min(r.StirrupLegArea/r.AtOverS, sMax)

	// shear legs plus two torsion legs per spacing
	avs := 0.0
	if shear.Vs > 0 {
		avs = shear.Vs * 1e3 / (in.FyStirrup * d)
	}
	need := math.Max(avs+2*r.AtOverS, minTransverseRatio(in.Fc, b, in.FyStirrup))
	r.CombinedSpacing = math.Min(2*r.StirrupLegArea/need, sMax)
	if shear.SpacingMax > 0 {
		r.CombinedSpacing = math.Min(r.CombinedSpacing, shear.SpacingMax)
	}

	atsMin := math.Max(r.AtOverS, 0.175*b/in.FyStirrup)
	al := r.AtOverS * r.Ph * in.FyStirrup / in.Fy
	alMin := 0.42*sqrtFc*r.Acp/in.Fy - atsMin*r.Ph*in.FyStirrup/in.Fy
	r.LongitudinalArea = math.Max(al, alMin)

	r.PhiTn = in.PhiTorsion * 2 * ao * r.StirrupLegArea * in.FyStirrup / r.CombinedSpacing / 1e6
	return r, nil
}
