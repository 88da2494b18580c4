package beam

import (
	"fmt"
	"math"
	"sort"
)

// MinMagnitude is the smallest load magnitude accepted; anything smaller
// is treated as a zero load
const MinMagnitude = 1e-3

// positional tolerance (m)
const eps = 1e-9

// Geometry of a prismatic rectangular beam
type Geometry struct {
	Length float64 `json:"length"` // span length (m)
	Height float64 `json:"height"` // section depth h (mm)
	Width  float64 `json:"width"`  // section width b (mm)
}

// Material holds the elastic constants (MPa)
type Material struct {
	ElasticModulus   float64 `json:"elastic_modulus"`
	ShearModulus     float64 `json:"shear_modulus"`
	YieldStrength    float64 `json:"yield_strength,omitempty"`
	UltimateStrength float64 `json:"ultimate_strength,omitempty"`
}

// SupportType is the kind of restraint provided by a support
type SupportType string

const (
	Pin    SupportType = "pin"
	Roller SupportType = "roller"
	Fixed  SupportType = "fixed"
	Free   SupportType = "free"
)

// IsSimple reports whether the support restrains displacement only
func (t SupportType) IsSimple() bool {
	return t == Pin || t == Roller
}

func (t SupportType) valid() bool {
	switch t {
	case Pin, Roller, Fixed, Free:
		return true
	}
	return false
}

// Support is a support of given type at a position along the beam (m)
type Support struct {
	Type     SupportType `json:"type"`
	Position float64     `json:"position"`
}

// UDLMode selects how fixed-fixed reactions treat partial distributed loads
type UDLMode int

const (
	// ExactUDL integrates partial distributed loads exactly
	ExactUDL UDLMode = iota

	// CentroidUDL replaces a partial distributed load on a fixed-fixed span
	// by its resultant at the load centroid
	CentroidUDL
)

// Beam is a single-span prismatic beam with two supports and its loads.
// Start is support A and End is support B.
type Beam struct {
	Geometry
	Material Material
	Start    Support
	End      Support
	Loads    []Load

	UDLMode UDLMode
}

// New creates a beam and validates it
func New(geometry Geometry, material Material, start, end Support, loads ...Load) (*Beam, error) {
	b := &Beam{
		Geometry: geometry,
		Material: material,
		Start:    start,
		End:      end,
		Loads:    loads,
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// IsCantilever reports whether exactly one support is fixed and the other
// is free
func (b *Beam) IsCantilever() bool {
	return (b.Start.Type == Fixed && b.End.Type == Free) ||
		(b.Start.Type == Free && b.End.Type == Fixed)
}

// Span returns the distance between the supports
func (b *Beam) Span() float64 {
	return b.End.Position - b.Start.Position
}

// ValidationError represents an invalid beam input
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

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

// Validate checks geometry, material, supports and loads
func (b *Beam) Validate() error {
	if !positive(b.Length) {
		return invalid("geometry.length", "must be positive, got %g", b.Length)
	}
	if !positive(b.Height) {
		return invalid("geometry.height", "must be positive, got %g", b.Height)
	}
	if !positive(b.Width) {
		return invalid("geometry.width", "must be positive, got %g", b.Width)
	}
	if !positive(b.Material.ElasticModulus) {
		return invalid("material.elastic_modulus", "must be positive, got %g", b.Material.ElasticModulus)
	}
	if !positive(b.Material.ShearModulus) {
		return invalid("material.shear_modulus", "must be positive, got %g", b.Material.ShearModulus)
	}
	if b.Material.YieldStrength < 0 || b.Material.UltimateStrength < 0 {
		return invalid("material", "strengths must not be negative")
	}

	if !b.Start.Type.valid() {
		return invalid("supports.start.type", "unknown support type %q", b.Start.Type)
	}
	if !b.End.Type.valid() {
		return invalid("supports.end.type", "unknown support type %q", b.End.Type)
	}
	if b.Start.Position < 0 || b.Start.Position > b.Length {
		return invalid("supports.start.position", "%g is outside the beam [0, %g]", b.Start.Position, b.Length)
	}
	if b.End.Position < 0 || b.End.Position > b.Length {
		return invalid("supports.end.position", "%g is outside the beam [0, %g]", b.End.Position, b.Length)
	}
	if b.Start.Position >= b.End.Position {
		return invalid("supports", "start position %g must be less than end position %g", b.Start.Position, b.End.Position)
	}

	for i, l := range b.Loads {
		if l == nil {
			return invalid(fmt.Sprintf("loads[%d]", i), "missing load")
		}
		if err := l.validate(b.Length); err != nil {
			err.Field = fmt.Sprintf("loads[%d].%s", i, err.Field)
			return err
		}
	}
	return b.checkOverlap()
}

// checkOverlap rejects distributed loads sharing part of the beam
func (b *Beam) checkOverlap() error {
	type span struct {
		idx        int
		start, end float64
	}
	var spans []span
	for i, l := range b.Loads {
		if d, ok := l.(DistributedLoad); ok {
			spans = append(spans, span{i, d.Position, d.Position + d.Length})
		}
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })
	for i := 1; i < len(spans); i++ {
		if spans[i].start < spans[i-1].end-eps {
			return invalid(fmt.Sprintf("loads[%d]", spans[i].idx),
				"distributed load overlaps loads[%d] between %g and %g m",
				spans[i-1].idx, spans[i].start, math.Min(spans[i].end, spans[i-1].end))
		}
	}
	return nil
}
