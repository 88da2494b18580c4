package beam

import (
	"fmt"
	"math"
)

// LoadKind tags the variants of Load
type LoadKind string

const (
	PointKind       LoadKind = "point"
	DistributedKind LoadKind = "distributed"
	MomentKind      LoadKind = "moment"
	TorsionKind     LoadKind = "torsion"
)

// Direction is the sense of an applied moment or torque
type Direction string

const (
	Clockwise     Direction = "clockwise"
	Anticlockwise Direction = "anticlockwise"
)

// Sign returns +1 for clockwise and -1 for anticlockwise
func (d Direction) Sign() float64 {
	if d == Anticlockwise {
		return -1
	}
	return 1
}

// Load is one of PointLoad, DistributedLoad, MomentLoad or TorsionLoad.
// Algorithms dispatch on the concrete type with a single type switch.
type Load interface {
	Kind() LoadKind
	At() float64 // position of the load, or of its start for distributed loads
	validate(length float64) *ValidationError
}

// PointLoad is a concentrated transverse force (kN, downward positive)
type PointLoad struct {
	Position  float64
	Magnitude float64
}

// DistributedLoad is a uniform line load (kN/m, downward positive) over
// [Position, Position+Length]
type DistributedLoad struct {
	Position  float64
	Length    float64
	Magnitude float64
}

// MomentLoad is a concentrated couple in the plane of bending (kN·m)
type MomentLoad struct {
	Position  float64
	Magnitude float64
	Direction Direction
}

// TorsionLoad is a concentrated torque about the beam axis (kN·m)
type TorsionLoad struct {
	Position  float64
	Magnitude float64
	Direction Direction
}

func (PointLoad) Kind() LoadKind       { return PointKind }
func (DistributedLoad) Kind() LoadKind { return DistributedKind }
func (MomentLoad) Kind() LoadKind      { return MomentKind }
func (TorsionLoad) Kind() LoadKind     { return TorsionKind }

func (l PointLoad) At() float64       { return l.Position }
func (l DistributedLoad) At() float64 { return l.Position }
func (l MomentLoad) At() float64      { return l.Position }
func (l TorsionLoad) At() float64     { return l.Position }

// End returns the far end of the loaded length
func (l DistributedLoad) End() float64 { return l.Position + l.Length }

// Resultant returns the total force
func (l DistributedLoad) Resultant() float64 { return l.Magnitude * l.Length }

// Centroid returns the position of the resultant
func (l DistributedLoad) Centroid() float64 { return l.Position + l.Length/2 }

// Signed returns the magnitude signed by direction (clockwise positive)
func (l MomentLoad) Signed() float64 { return l.Direction.Sign() * l.Magnitude }

// Signed returns the magnitude signed by direction (clockwise positive)
func (l TorsionLoad) Signed() float64 { return l.Direction.Sign() * l.Magnitude }

func (l PointLoad) String() string {
	return fmt.Sprintf("point %g kN @ %g m", l.Magnitude, l.Position)
}

func (l DistributedLoad) String() string {
	return fmt.Sprintf("distributed %g kN/m @ %g..%g m", l.Magnitude, l.Position, l.End())
}

func (l MomentLoad) String() string {
	return fmt.Sprintf("moment %g kN·m %s @ %g m", l.Magnitude, l.Direction, l.Position)
}

func (l TorsionLoad) String() string {
	return fmt.Sprintf("torsion %g kN·m %s @ %g m", l.Magnitude, l.Direction, l.Position)
}

func validatePosition(pos, length float64) *ValidationError {
	if math.IsNaN(pos) || pos < 0 || pos > length+eps {
		return invalid("position", "%g is outside the beam [0, %g]", pos, length)
	}
	return nil
}

func validateMagnitude(mag float64) *ValidationError {
	if math.IsNaN(mag) || math.Abs(mag) < MinMagnitude {
		return invalid("magnitude", "must not be zero (|magnitude| >= %g), got %g", MinMagnitude, mag)
	}
	return nil
}

func validateDirection(d Direction) *ValidationError {
	if d != Clockwise && d != Anticlockwise {
		return invalid("direction", "must be %q or %q, got %q", Clockwise, Anticlockwise, d)
	}
	return nil
}

func (l PointLoad) validate(length float64) *ValidationError {
	if err := validatePosition(l.Position, length); err != nil {
		return err
	}
	return validateMagnitude(l.Magnitude)
}

func (l DistributedLoad) validate(length float64) *ValidationError {
	if err := validatePosition(l.Position, length); err != nil {
		return err
	}
	if !(l.Length > 0) {
		return invalid("length", "must be positive, got %g", l.Length)
	}
	if l.End() > length+eps {
		return invalid("length", "load ends at %g m, beyond the beam length %g m", l.End(), length)
	}
	return validateMagnitude(l.Magnitude)
}

func (l MomentLoad) validate(length float64) *ValidationError {
	if err := validatePosition(l.Position, length); err != nil {
		return err
	}
	if err := validateMagnitude(l.Magnitude); err != nil {
		return err
	}
	return validateDirection(l.Direction)
}

func (l TorsionLoad) validate(length float64) *ValidationError {
	if err := validatePosition(l.Position, length); err != nil {
		return err
	}
	if err := validateMagnitude(l.Magnitude); err != nil {
		return err
	}
	return validateDirection(l.Direction)
}
