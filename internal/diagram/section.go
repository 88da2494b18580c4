package diagram

import "github.com/alexiusacademia/gobeam/internal/design"

// Point is a position on the section in mm, measured from the bottom-left
// corner
type Point struct {
	X float64
	Y float64
}

// SectionData describes a reinforced section for drawing
type SectionData struct {
	Width   float64 // mm
	Height  float64 // mm
	Cover   float64 // clear cover to stirrup (mm)
	Stirrup float64 // stirrup diameter (mm)

	Tension     design.BarLayout
	Compression *design.BarLayout

	// flexural state at nominal strength, zero when unknown
	Depth            float64 // d (mm)
	NeutralAxisDepth float64 // c (mm)
	StressBlockDepth float64 // a (mm)
	EpsilonT         float64
	Fy               float64
}

// FromDesign collects the drawing data of a design result
func FromDesign(r *design.Result) SectionData {
	return SectionData{
		Width:            r.Input.Width,
		Height:           r.Input.Height,
		Cover:            r.Input.Cover,
		Stirrup:          r.Input.StirrupDiameter,
		Tension:          r.Bars,
		Compression:      r.Compression,
		Depth:            r.EffectiveDepth,
		NeutralAxisDepth: r.Capacity.C,
		StressBlockDepth: r.Capacity.A,
		EpsilonT:         r.Capacity.EpsilonT,
		Fy:               r.Input.Fy,
	}
}

// layout places the bars of l in layers spread across the width inside the
// stirrups. Layers stack upward from the bottom or downward from the top.
func (s SectionData) layout(l design.BarLayout, top bool) []Point {
	if l.Count == 0 || l.PerLayer == 0 {
		return nil
	}
	inner := s.Cover + s.Stirrup
	x0 := inner + l.Diameter/2
	span := s.Width - 2*x0

	pts := make([]Point, 0, l.Count)
	left := l.Count
	for layer := 0; left > 0; layer++ {
		k := min(left, l.PerLayer)
		y := inner + l.Diameter/2 + float64(layer)*design.LayerPitch(l.Diameter)
		if top {
			y = s.Height - y
		}
		for i := 0; i < k; i++ {
			x := s.Width / 2
			if k > 1 {
				x = x0 + float64(i)*span/float64(k-1)
			}
			pts = append(pts, Point{x, y})
		}
		left -= k
	}
	return pts
}

// TensionBars returns the centres of the tension bars
func (s SectionData) TensionBars() []Point {
	return s.layout(s.Tension, false)
}

// CompressionBars returns the centres of the compression bars
func (s SectionData) CompressionBars() []Point {
	if s.Compression == nil {
		return nil
	}
	return s.layout(*s.Compression, true)
}

// SideBars returns the centres of the side bars at mid height
func (s SectionData) SideBars() []Point {
	if s.Tension.SideBars == 0 {
		return nil
	}
	x := s.Cover + s.Stirrup + s.Tension.SideDiameter/2
	return []Point{{x, s.Height / 2}, {s.Width - x, s.Height / 2}}
}
