package design

import (
	"math"

	"github.com/alexiusacademia/gobeam/internal/aci"
)

// Section is a reinforced rectangular section to be checked in flexure
type Section struct {
	Width            float64 // b (mm)
	Depth            float64 // d (mm)
	Fc               float64 // MPa
	Fy               float64 // MPa
	As               float64 // tension steel (mm²)
	AsCompression    float64 // compression steel (mm²)
	CompressionDepth float64 // d' (mm)
}

// Capacity holds the flexural strength of a section
type Capacity struct {
	C        float64          `json:"c"` // neutral axis depth (mm)
	A        float64          `json:"a"` // stress block depth (mm)
	EpsilonT float64          `json:"epsilon_t"`
	Region   aci.StrainRegion `json:"region"`
	Phi      float64          `json:"phi"`

	Fs                 float64 `json:"fs"`  // tension steel stress (MPa)
	FsCompression      float64 `json:"fsc"` // compression steel stress (MPa)
	CompressionYielded bool    `json:"compression_yielded"`

	Cc float64 `json:"cc"` // concrete force (kN)
	Cs float64 `json:"cs"` // net compression steel force (kN)
	T  float64 `json:"t"`  // tension force (kN)

	Mn    float64 `json:"mn"`     // kN·m
	PhiMn float64 `json:"phi_mn"` // kN·m
}

// forces evaluates the internal forces (N) for a neutral axis depth c
func (s Section) forces(c, beta1 float64) (cc, cs, t, fs, fsc float64) {
	a := beta1 * c
	cc = 0.85 * s.Fc * s.Width * a

	εt := aci.EpsilonCU * (s.Depth - c) / c
	fs = math.Max(math.Min(εt*aci.Es, s.Fy), -s.Fy)
	t = s.As * fs

	if s.AsCompression > 0 {
		εsc := aci.EpsilonCU * (c - s.CompressionDepth) / c
		fsc = math.Max(math.Min(εsc*aci.Es, s.Fy), -s.Fy)
		net := fsc
		if a >= s.CompressionDepth {
			net -= 0.85 * s.Fc
		}
		cs = s.AsCompression * net
	}
	return
}

// VerifyCapacity locates the neutral axis from force equilibrium by
// bisection and evaluates φMn with φ from the net tensile strain
func VerifyCapacity(s Section) (Capacity, error) {
	if !(s.Width > 0) || !(s.Depth > 0) || !(s.Fc > 0) || !(s.Fy > 0) {
		return Capacity{}, invalid("section", "width, depth, fc and fy must be positive")
	}
	if !(s.As > 0) {
		return Capacity{}, invalid("as", "tension steel must be positive, got %g", s.As)
	}
	if s.AsCompression < 0 {
		return Capacity{}, invalid("as_compression", "must not be negative, got %g", s.AsCompression)
	}

	beta1 := aci.Beta1(s.Fc)
	residual := func(c float64) float64 {
		cc, cs, t, _, _ := s.forces(c, beta1)
		return cc + cs - t
	}

	// compression grows and tension falls with c
	lo, hi := 1e-6*s.Depth, s.Depth
	for residual(hi) < 0 {
		hi *= 2
	}
	for i := 0; i < 200 && hi-lo > 1e-12*s.Depth; i++ {
		mid := (lo + hi) / 2
		if residual(mid) < 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	c := (lo + hi) / 2

	cc, cs, t, fs, fsc := s.forces(c, beta1)
	r := Capacity{
		C:             c,
		A:             beta1 * c,
		EpsilonT:      aci.EpsilonCU * (s.Depth - c) / c,
		Fs:            fs,
		FsCompression: fsc,
		Cc:            cc / 1e3,
		Cs:            cs / 1e3,
		T:             t / 1e3,
	}
	r.CompressionYielded = s.AsCompression > 0 && fsc >= s.Fy
	r.Region = aci.Region(r.EpsilonT)
	r.Phi = aci.Phi(r.EpsilonT)
	r.Mn = (cc*(s.Depth-r.A/2) + cs*(s.Depth-s.CompressionDepth)) / 1e6
	r.PhiMn = r.Phi * r.Mn
	return r, nil
}
