// Package capacity evaluates the strength of a given reinforced section
// against a set of factored demands.
package capacity

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gobeam/internal/aci"
	"github.com/alexiusacademia/gobeam/internal/design"
)

// AxialFactor is the ACI 318-19 22.4.2.1 reduction for tied members
const AxialFactor = 0.80

// Input is a section with a supplied reinforcement configuration and the
// demands acting on it. Tension steel is given either as an area or as a
// ratio of b·d.
type Input struct {
	Fc        float64 `json:"fc"`
	Fy        float64 `json:"fy"`
	FyStirrup float64 `json:"fy_stirrup,omitempty"`

	Width           float64 `json:"width"`
	Height          float64 `json:"height"`
	Cover           float64 `json:"cover"`
	StirrupDiameter float64 `json:"stirrup_diameter"`
	BarDiameter     float64 `json:"bar_diameter"`

	As               float64 `json:"as,omitempty"`
	Rho              float64 `json:"rho,omitempty"` // used when As is zero
	AsCompression    float64 `json:"as_compression,omitempty"`
	CompressionDepth float64 `json:"compression_depth,omitempty"`
	StirrupLegs      int     `json:"stirrup_legs,omitempty"`
	StirrupSpacing   float64 `json:"stirrup_spacing,omitempty"` // zero means no stirrups

	Pu float64 `json:"pu"` // kN, compression positive
	Vu float64 `json:"vu"` // kN
	Mu float64 `json:"mu"` // kN·m
	Tu float64 `json:"tu"` // kN·m
}

// Ratios are demand/capacity ratios per action
type Ratios struct {
	Axial   float64 `json:"axial"`
	Shear   float64 `json:"shear"`
	Flexure float64 `json:"flexure"`
	Torsion float64 `json:"torsion"`
}

// Result holds the design strengths and utilisation
type Result struct {
	EffectiveDepth float64 `json:"effective_depth"`
	As             float64 `json:"as"`

	PhiPn float64 `json:"phi_pn"` // kN
	PhiVn float64 `json:"phi_vn"` // kN
	PhiMn float64 `json:"phi_mn"` // kN·m
	PhiTn float64 `json:"phi_tn"` // kN·m

	Flexure design.Capacity `json:"flexure"`
	Ratios  Ratios          `json:"ratios"`

	// Combined is the SRSS of the ratios clamped to [0, 1]; Utilisation is
	// the unclamped value
	Combined    float64 `json:"combined"`
	Utilisation float64 `json:"utilisation"`
	Adequate    bool    `json:"adequate"`
}

func (in Input) withDefaults() Input {
	if in.FyStirrup == 0 {
		in.FyStirrup = in.Fy
	}
	if in.StirrupLegs == 0 {
		in.StirrupLegs = design.StirrupLegs
	}
	return in
}

// Evaluate computes φPn, φVn, φMn and φTn for the section and compares
// them with the demands
func Evaluate(in Input) (*Result, error) {
	in = in.withDefaults()
	for _, v := range []float64{in.Fc, in.Fy, in.Width, in.Height} {
		if !(v > 0) {
			return nil, fmt.Errorf("capacity: f'c, fy, width and height must be positive")
		}
	}
	for _, v := range []float64{in.Pu, in.Vu, in.Mu, in.Tu, in.AsCompression, in.StirrupSpacing} {
		if v < 0 {
			return nil, fmt.Errorf("capacity: demands and reinforcement must not be negative")
		}
	}

	d := design.EffectiveDepth(in.Height, in.Cover, in.StirrupDiameter, in.BarDiameter)
	if d <= 0 {
		return nil, fmt.Errorf("capacity: effective depth %.1f mm is not positive", d)
	}
	r := &Result{EffectiveDepth: d, As: in.As}
	if r.As == 0 {
		r.As = in.Rho * in.Width * d
	}

	var err error
	r.Flexure, err = design.VerifyCapacity(design.Section{
		Width:            in.Width,
		Depth:            d,
		Fc:               in.Fc,
		Fy:               in.Fy,
		As:               r.As,
		AsCompression:    in.AsCompression,
		CompressionDepth: in.CompressionDepth,
	})
	if err != nil {
		return nil, fmt.Errorf("capacity: flexure: %w", err)
	}
	r.PhiMn = r.Flexure.PhiMn

	sqrtFc := math.Sqrt(in.Fc)
	ag := in.Width * in.Height
	ast := r.As + in.AsCompression
	r.PhiPn = aci.PhiCompression * AxialFactor * (0.85*in.Fc*(ag-ast) + in.Fy*ast) / 1e3

	legArea := aci.BarArea(in.StirrupDiameter)
	vc := 0.17 * sqrtFc * in.Width * d
	var vs float64
	if in.StirrupSpacing > 0 {
		vs = float64(in.StirrupLegs) * legArea * in.FyStirrup * d / in.StirrupSpacing
		vs = math.Min(vs, 0.66*sqrtFc*in.Width*d)
	}
	r.PhiVn = aci.PhiShear * (vc + vs) / 1e3

	// closed stirrups carry torsion; without them only the threshold remains
	off := 2*in.Cover + in.StirrupDiameter
	aoh := (in.Width - off) * (in.Height - off)
	if in.StirrupSpacing > 0 && aoh > 0 {
		r.PhiTn = aci.PhiTorsion * 2 * 0.85 * aoh * legArea * in.FyStirrup / in.StirrupSpacing / 1e6
	} else {
		pcp := 2 * (in.Width + in.Height)
		r.PhiTn = aci.PhiTorsion * 0.083 * sqrtFc * ag * ag / pcp / 1e6
	}

	r.Ratios = Ratios{
		Axial:   in.Pu / r.PhiPn,
		Shear:   in.Vu / r.PhiVn,
		Flexure: in.Mu / r.PhiMn,
		Torsion: in.Tu / r.PhiTn,
	}
	q := r.Ratios
	r.Utilisation = math.Sqrt(q.Axial*q.Axial + q.Shear*q.Shear + q.Flexure*q.Flexure + q.Torsion*q.Torsion)
	r.Combined = math.Min(math.Max(r.Utilisation, 0), 1)
	r.Adequate = r.Utilisation <= 1
	return r, nil
}
