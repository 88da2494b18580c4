package section

import (
	"fmt"
	"math"
)

// Floor substitutes degenerate (non-positive) property values so that
// downstream divisions stay finite
const Floor = 1e-9

// Rectangle computes the properties of a b×h solid rectangle
func Rectangle(width, height float64) (Properties, error) {
	if !(width > 0) || !(height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return Properties{}, fmt.Errorf("%w: width=%.2f, height=%.2f", ErrInvalidDimensions, width, height)
	}

	props := Properties{Width: width, Height: height}
	props.Area = floor(width * height)
	props.MomentOfInertia = floor(width * math.Pow(height, 3) / 12)
	props.SectionModulus = floor(props.MomentOfInertia / (height / 2))

	// thin rectangle approximation
	props.PolarMomentOfInertia = floor(2 * props.MomentOfInertia)
	props.TorsionalConstant = floor(TorsionalConstant(width, height))

	return props, nil
}

// TorsionalConstant uses Roark's approximation for a solid rectangle:
//
//	J = a·b³·(1/3 − 0.21·(b/a)·(1 − (b/a)⁴/12)),  a = max(w,h), b = min(w,h)
func TorsionalConstant(width, height float64) float64 {
	a := math.Max(width, height)
	b := math.Min(width, height)
	if a <= 0 {
		return 0
	}
	r := b / a
	return a * math.Pow(b, 3) * (1.0/3 - 0.21*r*(1-math.Pow(r, 4)/12))
}

func floor(v float64) float64 {
	if v <= 0 || math.IsNaN(v) {
		return Floor
	}
	return v
}
