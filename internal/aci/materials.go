package aci

import "math"

// ACI 318-19 material and strength constants

const (
	// Beta1 factors for equivalent rectangular stress block
	// Table 22.2.2.4.3
	Beta1Max = 0.85 // for f'c <= 28 MPa
	Beta1Min = 0.65 // minimum value

	// Strain limits
	EpsilonCU = 0.003 // Ultimate concrete strain (22.2.2.1)
	EpsilonTY = 0.002 // Compression-controlled strain limit (Table 21.2.2)
	EpsilonTC = 0.005 // Tension-controlled strain limit (Table 21.2.2)

	// Strength reduction factors (Table 21.2.1)
	PhiFlexure     = 0.90 // Tension-controlled sections
	PhiShear       = 0.75 // Shear
	PhiTorsion     = 0.75 // Torsion
	PhiCompression = 0.65 // Compression-controlled (tied)

	// Modulus of elasticity for steel (20.2.2.2)
	Es = 200000.0 // MPa

	// Minimum clear spacing between parallel bars in a layer (25.2.1)
	MinClearSpacing = 25.0 // mm
)

// Beta1 calculates the factor for equivalent rectangular stress block
// ACI 318-19 Table 22.2.2.4.3
func Beta1(fc float64) float64 {
	if fc <= 28 {
		return Beta1Max
	}
	// β1 = 0.85 - 0.05(f'c - 28)/7 for f'c > 28 MPa
	beta1 := Beta1Max - 0.05*(fc-28)/7
	return math.Max(beta1, Beta1Min)
}

// Phi calculates the strength reduction factor for moment based on the net
// tensile strain in the extreme tension steel.
// ACI 318-19 Table 21.2.2
func Phi(epsilonT float64) float64 {
	if epsilonT >= EpsilonTC {
		// Tension-controlled
		return PhiFlexure
	} else if epsilonT <= EpsilonTY {
		// Compression-controlled
		return PhiCompression
	}
	// Transition zone
	return PhiCompression + (PhiFlexure-PhiCompression)*(epsilonT-EpsilonTY)/(EpsilonTC-EpsilonTY)
}

// StrainRegion classifies a section by its net tensile strain
type StrainRegion string

const (
	TensionControlled     StrainRegion = "tension-controlled"
	Transition            StrainRegion = "transition"
	CompressionControlled StrainRegion = "compression-controlled"
)

// Region returns the strain region for the given net tensile strain
func Region(epsilonT float64) StrainRegion {
	switch {
	case epsilonT >= EpsilonTC:
		return TensionControlled
	case epsilonT <= EpsilonTY:
		return CompressionControlled
	default:
		return Transition
	}
}

// RhoMin calculates minimum reinforcement ratio
// ACI 318-19 9.6.1.2
func RhoMin(fc, fy float64) float64 {
	// ρmin = max(0.25√f'c / fy, 1.4/fy)
	rho1 := 0.25 * math.Sqrt(fc) / fy
	rho2 := 1.4 / fy
	return math.Max(rho1, rho2)
}

// RhoMax calculates maximum reinforcement ratio for a tension-controlled
// singly reinforced section (εt = 0.005)
func RhoMax(fc, fy float64) float64 {
	beta1 := Beta1(fc)
	// c/d = εcu / (εcu + εt) = 0.003 / (0.003 + 0.005) = 0.375
	return 0.85 * beta1 * (fc / fy) * (EpsilonCU / (EpsilonCU + EpsilonTC))
}

// RhoBalanced calculates balanced reinforcement ratio
func RhoBalanced(fc, fy float64) float64 {
	beta1 := Beta1(fc)
	epsilonY := fy / Es
	// c/d at balanced = εcu / (εcu + εy)
	cb := EpsilonCU / (EpsilonCU + epsilonY)
	return 0.85 * beta1 * (fc / fy) * cb
}

// BarArea returns the nominal area of a round bar of diameter db (mm²)
func BarArea(db float64) float64 {
	return math.Pi * db * db / 4
}
