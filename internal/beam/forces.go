package beam

import "math"

func (b *Beam) outside(x float64) bool {
	return x < -eps || x > b.Length+eps
}

// Shear returns the internal shear force at x (kN) from the left free body:
// reactions acting at or before x minus the loads at or before x
func (b *Beam) Shear(r Reactions, x float64) float64 {
	if b.outside(x) {
		return 0
	}
	var v float64
	if x >= b.Start.Position {
		v += r.ReactionA
	}
	if x >= b.End.Position {
		v += r.ReactionB
	}
	for _, l := range b.Loads {
		switch l := l.(type) {
		case PointLoad:
			if l.Position <= x {
				v -= l.Magnitude
			}
		case DistributedLoad:
			if x > l.Position {
				v -= l.Magnitude * (math.Min(x, l.End()) - l.Position)
			}
		}
	}
	return v
}

// Moment returns the internal bending moment at x (kN·m, sagging positive).
// The support couple at A acts from A onwards and the one at B only past B.
// Applied couples act strictly after their position.
func (b *Beam) Moment(r Reactions, x float64) float64 {
	if b.outside(x) {
		return 0
	}
	ca, cb := r.couples()
	var m float64
	if a := b.Start.Position; x >= a {
		m += r.ReactionA*(x-a) + ca
	}
	if e := b.End.Position; x >= e {
		m += r.ReactionB * (x - e)
		if x > e {
			m += cb
		}
	}
	for _, l := range b.Loads {
		switch l := l.(type) {
		case PointLoad:
			if l.Position <= x {
				m -= l.Magnitude * (x - l.Position)
			}
		case DistributedLoad:
			if x > l.Position {
				le := math.Min(x, l.End()) - l.Position
				m -= l.Magnitude * le * (x - l.Position - le/2)
			}
		case MomentLoad:
			if l.Position < x {
				m += l.Signed()
			}
		}
	}
	return m
}

// Torsion returns the internal torque at x (kN·m, clockwise positive) as the
// sum of torques applied strictly before x
func (b *Beam) Torsion(x float64) float64 {
	if b.outside(x) {
		return 0
	}
	var t float64
	for _, l := range b.Loads {
		if l, ok := l.(TorsionLoad); ok && l.Position < x {
			t += l.Signed()
		}
	}
	return t
}
