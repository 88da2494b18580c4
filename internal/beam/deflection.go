package beam

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gobeam/internal/fem"
	"github.com/alexiusacademia/gobeam/internal/section"
)

// FlexuralRigidity returns EI in kN·m² for E in MPa and I in mm⁴
func FlexuralRigidity(e, i float64) float64 {
	return e * i * 1e-9
}

// Deflection evaluates the transverse deflection of a solved beam
type Deflection struct {
	beam *Beam
	ei   float64
	sol  *fem.Solution // nil for cantilevers
}

// SolveDeflection computes the elastic deflection of the beam. Cantilevers
// use closed-form superposition; every other configuration is solved with
// nelems Euler-Bernoulli elements (zero means fem.DefaultElements). A nil
// solver means fem.LUSolver.
func (b *Beam) SolveDeflection(props section.Properties, nelems int, solver fem.Solver) (*Deflection, error) {
	ei := FlexuralRigidity(b.Material.ElasticModulus, props.MomentOfInertia)
	o := &Deflection{beam: b, ei: ei}
	if b.IsCantilever() {
		return o, nil
	}

	model, err := fem.NewBeam(b.Length, ei, nelems)
	if err != nil {
		return nil, err
	}
	for _, s := range []Support{b.Start, b.End} {
		var err error
		switch s.Type {
		case Fixed:
			err = model.Restrain(s.Position, fem.Clamped)
		case Pin, Roller:
			err = model.Restrain(s.Position, fem.Pinned)
		}
		if err != nil {
			return nil, fmt.Errorf("deflection: %w", err)
		}
	}
	for _, l := range b.Loads {
		switch l := l.(type) {
		case PointLoad:
			model.AddPointLoad(l.Position, l.Magnitude)
		case DistributedLoad:
			model.AddDistributedLoad(l.Position, l.End(), l.Magnitude)
		case MomentLoad:
			model.AddMoment(l.Position, l.Signed())
		}
	}
	if o.sol, err = model.Solve(solver); err != nil {
		return nil, fmt.Errorf("deflection: %w", err)
	}
	return o, nil
}

// At returns the deflection at x in mm, downward positive
func (o *Deflection) At(x float64) float64 {
	if o.beam.outside(x) {
		return 0
	}
	if o.sol == nil {
		return o.cantilever(x) * 1e3
	}
	return o.sol.Deflection(x) * 1e3
}

// cantilever superposes the closed-form responses of every load on the
// same side of the fixed support as x. Distances are measured from the
// fixed support along the free arm.
func (o *Deflection) cantilever(x float64) float64 {
	b := o.beam
	xf := b.Start.Position
	if b.End.Type == Fixed {
		xf = b.End.Position
	}
	dir := 1.0
	if x < xf {
		dir = -1
	}
	s := math.Abs(x - xf)

	var v float64
	for _, l := range b.Loads {
		switch l := l.(type) {
		case PointLoad:
			if t := (l.Position - xf) * dir; t > 0 {
				v += l.Magnitude * pointInfluence(s, t)
			}
		case DistributedLoad:
			t1, t2 := (l.Position-xf)*dir, (l.End()-xf)*dir
			if t1 > t2 {
				t1, t2 = t2, t1
			}
			t1 = math.Max(t1, 0)
			if t2 > t1 {
				v += l.Magnitude * distributedInfluence(s, t1, t2)
			}
		case MomentLoad:
			// a clockwise couple turns an arm extending to the right downwards
			if t := (l.Position - xf) * dir; t > 0 {
				v += dir * l.Signed() * momentInfluence(s, t)
			}
		}
	}
	return v / o.ei
}

// pointInfluence is EI·v at s due to a unit force at t
func pointInfluence(s, t float64) float64 {
	if s <= t {
		return s * s * (3*t - s) / 6
	}
	return t * t * (3*s - t) / 6
}

// distributedInfluence integrates pointInfluence over t ∈ [t1, t2]
func distributedInfluence(s, t1, t2 float64) float64 {
	var v float64
	// loads inside s: ∫ t²(3s-t)/6 dt
	if hi := math.Min(t2, s); hi > t1 {
		f := func(t float64) float64 { return s*t*t*t - t*t*t*t/4 }
		v += (f(hi) - f(t1)) / 6
	}
	// loads beyond s: ∫ s²(3t-s)/6 dt
	if lo := math.Max(t1, s); t2 > lo {
		f := func(t float64) float64 { return s * s * (1.5*t*t - s*t) }
		v += (f(t2) - f(lo)) / 6
	}
	return v
}

// momentInfluence is EI·v at s due to a unit couple at t bending the arm
// towards positive v
func momentInfluence(s, t float64) float64 {
	if s <= t {
		return s * s / 2
	}
	return t * (2*s - t) / 2
}
