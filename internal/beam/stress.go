package beam

import (
	"math"

	"github.com/alexiusacademia/gobeam/internal/section"
)

// Stress holds the combined stress state at the extreme fibre (MPa)
type Stress struct {
	Normal    float64 `json:"normal"`
	Shear     float64 `json:"shear"`
	Torsional float64 `json:"torsional"`
	VonMises  float64 `json:"von_mises"`
}

// StressAt converts the internal forces V (kN), M (kN·m) and T (kN·m) into
// stresses on a rectangular section. The shear stress is the maximum at
// the neutral axis.
func StressAt(p section.Properties, v, m, t float64) Stress {
	normal := m * 1e6 / p.SectionModulus
	shear := 3 * v * 1e3 / (2 * p.Width * p.Height)
	torsional := t * 1e6 * p.Height / (2 * p.TorsionalConstant)
	return Stress{
		Normal:    normal,
		Shear:     shear,
		Torsional: torsional,
		VonMises:  math.Sqrt(normal*normal + 3*(shear*shear+torsional*torsional)),
	}
}
