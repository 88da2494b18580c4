package design

import (
	"fmt"
	"math"
)

// ShearResult holds the stirrup design. Forces are in kN, spacings in mm.
type ShearResult struct {
	Vc       float64 `json:"vc"`
	PhiVc    float64 `json:"phi_vc"`
	Vs       float64 `json:"vs"`
	VsMax    float64 `json:"vs_max"`
	Required bool    `json:"required"` // Vu > 0.5·φ·Vc

	Legs       int     `json:"legs"`
	Av         float64 `json:"av"`               // mm²
	SpacingReq float64 `json:"spacing_required"` // zero when Vc alone suffices
	SpacingMax float64 `json:"spacing_max"`
	SpacingMin float64 `json:"spacing_min_steel"` // largest spacing meeting Av,min
	Spacing    float64 `json:"spacing"`
	PhiVn      float64 `json:"phi_vn"`
}

// minTransverseRatio is Av,min/s per mm of spacing, ACI 318-19 9.6.3.4
func minTransverseRatio(fc, b, fyt float64) float64 {
	return math.Max(0.062*math.Sqrt(fc)*b, 0.35*b) / fyt
}

// maxStirrupSpacing returns the spacing limit of ACI 318-19 Table 9.7.6.2.2
func maxStirrupSpacing(fc, b, d, vs float64) float64 {
	if vs*1e3 > 0.33*math.Sqrt(fc)*b*d {
		return math.Min(d/4, 300)
	}
	return math.Min(d/2, 600)
}

// DesignShear designs two-leg vertical stirrups for Vu
func DesignShear(in Input, d float64) (ShearResult, error) {
	sqrtFc := math.Sqrt(in.Fc)
	r := ShearResult{
		Vc:    0.17 * sqrtFc * in.Width * d / 1e3,
		VsMax: 0.66 * sqrtFc * in.Width * d / 1e3,
		Legs:  StirrupLegs,
	}
	r.PhiVc = in.PhiShear * r.Vc
	r.PhiVn = r.PhiVc
	if in.StirrupDiameter > 0 {
		r.Av = float64(r.Legs) * in.Catalog.Area(in.StirrupDiameter)
	}
	r.SpacingMax = maxStirrupSpacing(in.Fc, in.Width, d, 0)
	if in.Vu <= 0.5*r.PhiVc {
		return r, nil
	}

	r.Required = true
	r.Vs = math.Max(in.Vu/in.PhiShear-r.Vc, 0)
	if r.Vs > r.VsMax {
		return r, fmt.Errorf("%w (Vs = %.1f kN > Vs,max = %.1f kN)", ErrShearTooHigh, r.Vs, r.VsMax)
	}

	r.SpacingMax = maxStirrupSpacing(in.Fc, in.Width, d, r.Vs)
	r.SpacingMin = r.Av / minTransverseRatio(in.Fc, in.Width, in.FyStirrup)
	r.Spacing = math.Min(r.SpacingMax, r.SpacingMin)
	if r.Vs > 0 {
		r.SpacingReq = r.Av * in.FyStirrup * d / (r.Vs * 1e3)
		r.Spacing = math.Min(r.Spacing, r.SpacingReq)
	}
	r.PhiVn = in.PhiShear * (r.Vc + r.Av*in.FyStirrup*d/r.Spacing/1e3)
	return r, nil
}
