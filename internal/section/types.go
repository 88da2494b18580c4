package section

import (
	"errors"
	"fmt"
)

// ErrInvalidDimensions is returned when a section dimension is not positive
var ErrInvalidDimensions = errors.New("section dimensions must be positive")

// Properties holds the elastic properties of a solid rectangular section.
// All values are in millimetre units.
type Properties struct {
	Width  float64 // b (mm)
	Height float64 // h (mm)

	Area                 float64 // A = b·h (mm²)
	MomentOfInertia      float64 // I about the strong axis (mm⁴)
	SectionModulus       float64 // S = I/(h/2) (mm³)
	PolarMomentOfInertia float64 // Ip (mm⁴)
	TorsionalConstant    float64 // J, Saint-Venant (mm⁴)
}

func (p Properties) String() string {
	return fmt.Sprintf("%gx%g mm: A=%.4g I=%.4g S=%.4g J=%.4g", p.Width, p.Height,
		p.Area, p.MomentOfInertia, p.SectionModulus, p.TorsionalConstant)
}
