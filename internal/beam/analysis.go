package beam

import (
	"iter"
	"math"

	"github.com/alexiusacademia/gobeam/internal/fem"
	"github.com/alexiusacademia/gobeam/internal/section"
)

// DefaultStations is the number of intervals sampled along the beam
const DefaultStations = 100

// DiagramPoint holds the sampled results at one station
type DiagramPoint struct {
	Position        float64 `json:"position"`
	Shear           float64 `json:"shear"`
	Moment          float64 `json:"moment"`
	Torsion         float64 `json:"torsion"`
	Deflection      float64 `json:"deflection"`
	NormalStress    float64 `json:"normal_stress"`
	ShearStress     float64 `json:"shear_stress"`
	TorsionalStress float64 `json:"torsional_stress"`
	VonMisesStress  float64 `json:"von_mises_stress"`
}

// Options controls the discretisation of an analysis. Zero values select
// the defaults.
type Options struct {
	Stations int        // sampling intervals, N+1 points are produced
	Elements int        // finite elements for the deflection solve
	Solver   fem.Solver // linear solver, nil means LU
}

// Analysis is the result of a single analysis run. Reactions, section
// properties and the deflection solution are computed once and shared by
// every sampled station.
type Analysis struct {
	Beam       *Beam
	Section    section.Properties
	Reactions  Reactions
	deflection *Deflection
	stations   int
}

// Analyze validates the beam and solves it
func Analyze(b *Beam, opts Options) (*Analysis, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	props, err := section.Rectangle(b.Width, b.Height)
	if err != nil {
		return nil, err
	}
	r, err := b.Reactions()
	if err != nil {
		return nil, err
	}
	d, err := b.SolveDeflection(props, opts.Elements, opts.Solver)
	if err != nil {
		return nil, err
	}
	n := opts.Stations
	if n < 1 {
		n = DefaultStations
	}
	return &Analysis{
		Beam:       b,
		Section:    props,
		Reactions:  r,
		deflection: d,
		stations:   n,
	}, nil
}

// Point evaluates all results at x
func (o *Analysis) Point(x float64) DiagramPoint {
	v := o.Beam.Shear(o.Reactions, x)
	m := o.Beam.Moment(o.Reactions, x)
	t := o.Beam.Torsion(x)
	s := StressAt(o.Section, v, m, t)
	return DiagramPoint{
		Position:        x,
		Shear:           v,
		Moment:          m,
		Torsion:         t,
		Deflection:      o.deflection.At(x),
		NormalStress:    s.Normal,
		ShearStress:     s.Shear,
		TorsionalStress: s.Torsional,
		VonMisesStress:  s.VonMises,
	}
}

// Points yields the N+1 evenly spaced stations over [0, Length] in order
func (o *Analysis) Points() iter.Seq[DiagramPoint] {
	return func(yield func(DiagramPoint) bool) {
		L := o.Beam.Length
		for i := 0; i <= o.stations; i++ {
			x := float64(i) * L / float64(o.stations)
			if !yield(o.Point(x)) {
				return
			}
		}
	}
}

// Diagram collects Points
func (o *Analysis) Diagram() []DiagramPoint {
	pts := make([]DiagramPoint, 0, o.stations+1)
	for p := range o.Points() {
		pts = append(pts, p)
	}
	return pts
}

// Extreme is a peak value and where it occurs
type Extreme struct {
	Value    float64 `json:"value"`
	Position float64 `json:"position"`
}

// Extremes summarises the sampled diagram
type Extremes struct {
	Shear      Extreme `json:"shear"` // largest |V|
	MaxMoment  Extreme `json:"max_moment"`
	MinMoment  Extreme `json:"min_moment"`
	Deflection Extreme `json:"deflection"` // largest |δ|
	VonMises   Extreme `json:"von_mises"`
}

// Extremes scans the sampled stations
func (o *Analysis) Extremes() Extremes {
	var e Extremes
	first := true
	for p := range o.Points() {
		if first {
			e.MaxMoment = Extreme{p.Moment, p.Position}
			e.MinMoment = e.MaxMoment
			first = false
		}
		if math.Abs(p.Shear) > math.Abs(e.Shear.Value) {
			e.Shear = Extreme{p.Shear, p.Position}
		}
		if p.Moment > e.MaxMoment.Value {
			e.MaxMoment = Extreme{p.Moment, p.Position}
		}
		if p.Moment < e.MinMoment.Value {
			e.MinMoment = Extreme{p.Moment, p.Position}
		}
		if math.Abs(p.Deflection) > math.Abs(e.Deflection.Value) {
			e.Deflection = Extreme{p.Deflection, p.Position}
		}
		if p.VonMisesStress > e.VonMises.Value {
			e.VonMises = Extreme{p.VonMisesStress, p.Position}
		}
	}
	return e
}
