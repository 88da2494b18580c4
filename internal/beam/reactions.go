package beam

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnstable is returned when the supports cannot carry load, such as a
// pin or roller paired with a free end
var ErrUnstable = errors.New("unstable support configuration")

// Reactions holds the support reactions. Forces are upward positive (kN).
// MomentA and MomentB are the support couples (kN·m), MomentA clockwise on
// the beam at A and MomentB anticlockwise at B. Without overhang loads they
// equal the bending moment at each support (sagging positive; a fixed end
// under gravity load is negative). Loads on an overhang add their own
// moment about the support on top of the couple.
type Reactions struct {
	ReactionA float64 `json:"reaction_a"`
	ReactionB float64 `json:"reaction_b"`
	MomentA   float64 `json:"moment_a"`
	MomentB   float64 `json:"moment_b"`
}

// couples returns the support couples (clockwise positive) acting on the
// beam at A and B
func (r Reactions) couples() (ca, cb float64) {
	return r.MomentA, -r.MomentB
}

func (r Reactions) String() string {
	return fmt.Sprintf("RA=%.3f kN  RB=%.3f kN  MA=%.3f kN·m  MB=%.3f kN·m",
		r.ReactionA, r.ReactionB, r.MomentA, r.MomentB)
}

// configuration of the support pair
type configuration int

const (
	unstable configuration = iota
	unsupported
	simple
	fixedFixed
	proppedA // fixed at A, pin or roller at B
	proppedB // pin or roller at A, fixed at B
	cantileverA
	cantileverB
)

func (b *Beam) configuration() configuration {
	sa, sb := b.Start.Type, b.End.Type
	switch {
	case sa == Free && sb == Free:
		return unsupported
	case sa == Fixed && sb == Free:
		return cantileverA
	case sa == Free && sb == Fixed:
		return cantileverB
	case sa == Fixed && sb == Fixed:
		return fixedFixed
	case sa == Fixed && sb.IsSimple():
		return proppedA
	case sa.IsSimple() && sb == Fixed:
		return proppedB
	case sa.IsSimple() && sb.IsSimple():
		return simple
	}
	return unstable
}

// Reactions computes the support reactions. Statically indeterminate
// configurations are resolved with the compatibility conditions of a
// prismatic span.
func (b *Beam) Reactions() (Reactions, error) {
	switch c := b.configuration(); c {
	case unsupported:
		return Reactions{}, nil
	case unstable:
		return Reactions{}, fmt.Errorf("%w: %s support at A with %s support at B", ErrUnstable, b.Start.Type, b.End.Type)
	case cantileverA, cantileverB:
		return b.cantileverReactions(c == cantileverA), nil
	default:
		return b.spanReactions(c), nil
	}
}

func (b *Beam) cantileverReactions(fixedAtA bool) Reactions {
	xf := b.End.Position
	if fixedAtA {
		xf = b.Start.Position
	}

	// force sum and clockwise moment of the loads about the fixed support
	var P, M float64
	for _, l := range b.Loads {
		switch l := l.(type) {
		case PointLoad:
			P += l.Magnitude
			M += l.Magnitude * (l.Position - xf)
		case DistributedLoad:
			W := l.Resultant()
			P += W
			M += W * (l.Centroid() - xf)
		case MomentLoad:
			M += l.Signed()
		}
	}

	// the support couple balances M: C = -M
	if fixedAtA {
		return Reactions{ReactionA: P, MomentA: -M}
	}
	return Reactions{ReactionB: P, MomentB: M}
}

// spanIntegrals collects the load terms of the compatibility equations in
// local coordinates s ∈ [0, L] measured from support A. With Mₗ(s) the
// bending moment of the applied loads alone on a left free body,
//
//	I1 = ∫ Mₗ ds    I2 = ∫ (L-s)·Mₗ ds    Mend = Mₗ(L⁺)
type spanIntegrals struct {
	L    float64
	P    float64 // total downward force
	I1   float64
	I2   float64
	Mend float64
}

func (o *spanIntegrals) point(α, p float64) {
	β := o.L - α
	o.P += p
	o.I1 -= p * β * β / 2
	o.I2 -= p * β * β * β / 6
	o.Mend -= p * β
}

func (o *spanIntegrals) couple(α, m float64) {
	β := o.L - α
	o.I1 += m * β
	o.I2 += m * β * β / 2
	o.Mend += m
}

func (o *spanIntegrals) distributed(α1, α2, w float64) {
	b1, b2 := o.L-α1, o.L-α2
	W := w * (α2 - α1)
	o.P += W
	o.I1 -= w * (b1*b1*b1 - b2*b2*b2) / 6
	o.I2 -= w * (b1*b1*b1*b1 - b2*b2*b2*b2) / 24
	o.Mend -= W * (o.L - (α1+α2)/2)
}

// resultant adds a force at an arbitrary position; forces on the overhangs
// are carried to the adjacent support with their transfer couple
func (o *spanIntegrals) resultant(s, p float64) {
	switch {
	case s < 0:
		o.point(0, p)
		o.couple(0, p*s)
	case s > o.L:
		o.point(o.L, p)
		o.couple(o.L, p*(s-o.L))
	default:
		o.point(s, p)
	}
}

func (b *Beam) integrals(c configuration) spanIntegrals {
	a := b.Start.Position
	o := spanIntegrals{L: b.Span()}
	for _, l := range b.Loads {
		switch l := l.(type) {
		case PointLoad:
			o.resultant(l.Position-a, l.Magnitude)
		case MomentLoad:
			s := math.Min(math.Max(l.Position-a, 0), o.L)
			o.couple(s, l.Signed())
		case DistributedLoad:
			s1, s2 := l.Position-a, l.End()-a
			partial := s1 > eps || s2 < o.L-eps
			if c == fixedFixed && b.UDLMode == CentroidUDL && partial {
				o.resultant((s1+s2)/2, l.Resultant())
				continue
			}
			// overhang parts go through their resultants, the rest is
			// integrated exactly
			if lo := s1; lo < 0 {
				hi := math.Min(s2, 0)
				o.resultant((lo+hi)/2, l.Magnitude*(hi-lo))
			}
			if hi := s2; hi > o.L {
				lo := math.Max(s1, o.L)
				o.resultant((lo+hi)/2, l.Magnitude*(hi-lo))
			}
			if lo, hi := math.Max(s1, 0), math.Min(s2, o.L); hi > lo {
				o.distributed(lo, hi, l.Magnitude)
			}
		}
	}
	return o
}

func (b *Beam) spanReactions(c configuration) Reactions {
	o := b.integrals(c)
	L := o.L
	L3 := L * L * L

	// unknowns: force R at A and support couples CA, CB (clockwise);
	// RB follows from vertical equilibrium and CB from M(L⁺) = 0
	var R, CA float64
	switch c {
	case simple:
		R = -o.Mend / L
	case fixedFixed:
		// v(L) = 0 and θ(L) = 0 with v, θ clamped at A
		R = (12*o.I2 - 6*o.I1*L) / L3
		CA = -(R*L/2 + o.I1/L)
	case proppedA:
		// v(L) = 0 with v, θ clamped at A and M(L⁺) = 0
		R = 3 * (o.I2 - o.Mend*L*L/2) / L3
		CA = -o.Mend - R*L
	case proppedB:
		// v(0) = v(L) = θ(L) = 0 reduces to ∫ s·M ds = 0
		R = -3 * (L*o.I1 - o.I2) / L3
	}
	CB := -(R*L + CA + o.Mend)
	if c == simple || c == proppedA {
		CB = 0
	}
	return Reactions{
		ReactionA: R,
		ReactionB: o.P - R,
		MomentA:   CA,
		MomentB:   -CB,
	}
}

// Equilibrium returns the residual vertical force and the residual
// clockwise moment about x = 0 of the loads together with the reactions.
// Both vanish for a correct solution.
func (b *Beam) Equilibrium(r Reactions) (force, moment float64) {
	ca, cb := r.couples()
	force = -r.ReactionA - r.ReactionB
	moment = -r.ReactionA*b.Start.Position - r.ReactionB*b.End.Position + ca + cb
	for _, l := range b.Loads {
		switch l := l.(type) {
		case PointLoad:
			force += l.Magnitude
			moment += l.Magnitude * l.Position
		case DistributedLoad:
			force += l.Resultant()
			moment += l.Resultant() * l.Centroid()
		case MomentLoad:
			moment += l.Signed()
		}
	}
	return force, moment
}
