// Package design implements the ACI 318-19 reinforcement design of a
// rectangular beam section for flexure, shear and torsion.
//
// Design runs the steps in order and aborts on the first failure:
//
//	effective depth → limits → required steel → flexure (singly/doubly)
//	→ bar selection → depth of the selected bars (redesign while deeper
//	than provided) → shear → torsion → capacity verification
//
// Each step is also exported for callers that need only part of it.
package design

import "fmt"

// Result is the outcome of a full design
type Result struct {
	Input          Input          `json:"input"`
	EffectiveDepth float64        `json:"effective_depth"`
	Flexure        FlexureResult  `json:"flexure"`
	Bars           BarLayout      `json:"bars"`
	Compression    *BarLayout     `json:"compression,omitempty"` // doubly reinforced only
	Shear          ShearResult    `json:"shear"`
	Torsion        *TorsionResult `json:"torsion,omitempty"` // only when Tu > 0
	Capacity       Capacity       `json:"capacity"`
	CapacityRatio  float64        `json:"capacity_ratio"` // φMn/Mu, zero without demand
}

// AsRequired returns the required tension steel (mm²)
func (o *Result) AsRequired() float64 { return o.Flexure.AsRequired }

// AsProvided returns the provided tension steel (mm²)
func (o *Result) AsProvided() float64 { return o.Bars.AsProvided }

// Adequate reports whether φMn covers Mu
func (o *Result) Adequate() bool {
	return o.Input.Mu == 0 || o.Capacity.PhiMn >= o.Input.Mu
}

// StepError reports the design step that failed
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("design: %s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

func fail(step string, err error) error {
	return &StepError{Step: step, Err: err}
}

// maxDepthIterations bounds the redesign at the depth of the selected bars
const maxDepthIterations = 10

// Design runs the complete design pipeline
func Design(in Input) (*Result, error) {
	in = in.WithDefaults()
	if err := in.Validate(); err != nil {
		return nil, fail("input", err)
	}

	d := EffectiveDepth(in.Height, in.Cover, in.StirrupDiameter, in.BarDiameter)
	if d <= 0 {
		return nil, fail("effective depth", invalid("height", "effective depth %.1f mm is not positive", d))
	}
	r := &Result{Input: in}
	if err := r.designFlexure(in, d); err != nil {
		return nil, err
	}
	d = r.EffectiveDepth

	var err error
	if r.Shear, err = DesignShear(in, d); err != nil {
		return nil, fail("shear", err)
	}
	if in.Tu > 0 {
		t, err := DesignTorsion(in, d, r.Shear)
		if err != nil {
			return nil, fail("torsion", err)
		}
		r.Torsion = &t
	}
	if err := r.verify(in); err != nil {
		return nil, err
	}
	return r, nil
}

// designFlexure sizes the flexural steel at depth d and repeats at the
// centroid depth of the selected bars until that depth is not shallower
// than the one designed for
func (o *Result) designFlexure(in Input, d float64) error {
	for range maxDepthIterations {
		f, err := Flexure(in, d)
		if err != nil {
			return fail("flexure", err)
		}
		bars, err := SelectBars(f.AsRequired, in)
		if err != nil {
			return fail("bar selection", err)
		}
		o.Flexure, o.Bars, o.Compression = f, bars, nil
		if f.Doubly {
			comp, err := CompressionBars(f.AsCompression, in)
			if err != nil {
				return fail("compression bars", err)
			}
			o.Compression = &comp
		}
		actual := TensionDepth(in, bars)
		if actual >= d-1e-9 {
			o.EffectiveDepth = actual
			return nil
		}
		d = actual
	}
	return fail("effective depth", fmt.Errorf("%w after %d redesigns (d = %.1f mm)",
		ErrDepthNotConverged, maxDepthIterations, d))
}

// verify checks the selected layout at its own depth. While φMn is short of
// Mu, compression bars are added one at a time.
func (o *Result) verify(in Input) error {
	for {
		sec := Section{
			Width: in.Width,
			Depth: o.EffectiveDepth,
			Fc:    in.Fc,
			Fy:    in.Fy,
			As:    o.Bars.AsProvided,
		}
		if o.Compression != nil {
			sec.AsCompression = o.Compression.AsProvided
			sec.CompressionDepth = CompressionDepth(in, *o.Compression)
		}
		c, err := VerifyCapacity(sec)
		if err != nil {
			return fail("capacity", err)
		}
		o.Capacity = c
		if c.PhiMn >= in.Mu {
			break
		}

		count := 2
		if o.Compression != nil {
			count = o.Compression.Count + 1
		}
		comp, err := compressionLayout(count, in)
		if err != nil {
			return fail("capacity", fmt.Errorf("%w (φMn = %.2f kN·m < Mu = %.2f kN·m): %v",
				ErrCapacityNotMet, c.PhiMn, in.Mu, err))
		}
		o.Compression = &comp
	}
	if in.Mu > 0 {
		o.CapacityRatio = o.Capacity.PhiMn / in.Mu
	}
	return nil
}
