package design

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gobeam/internal/aci"
)

// BarLayout is a selected arrangement of longitudinal bars
type BarLayout struct {
	Diameter     float64 `json:"diameter"`
	BarArea      float64 `json:"bar_area"`
	Count        int     `json:"count"`
	Layers       int     `json:"layers"`
	PerLayer     int     `json:"per_layer"` // bars in a full layer
	ClearSpacing float64 `json:"clear_spacing"`

	SideBars     int     `json:"side_bars,omitempty"`
	SideDiameter float64 `json:"side_diameter,omitempty"`
	SideBarArea  float64 `json:"side_bar_area,omitempty"`

	AsProvided float64 `json:"as_provided"`
}

func (o BarLayout) String() string {
	s := fmt.Sprintf("%d-Ø%gmm", o.Count, o.Diameter)
	if o.Layers > 1 {
		s += fmt.Sprintf(" in %d layers", o.Layers)
	}
	if o.SideBars > 0 {
		s += fmt.Sprintf(" + %d-Ø%gmm side", o.SideBars, o.SideDiameter)
	}
	return s
}

// AvailableWidth is the width inside the stirrups (mm)
func AvailableWidth(in Input) float64 {
	return in.Width - 2*in.Cover - 2*in.StirrupDiameter
}

// BarsPerLayer returns how many bars of diameter db fit in one layer and
// the clear spacing used
func BarsPerLayer(width, db, minSpacing float64) (int, float64) {
	s := math.Max(minSpacing, db)
	if width < db {
		return 0, s
	}
	return int(math.Floor((width + s) / (db + s))), s
}

// SelectBars finds the largest catalog bar whose required count fits the
// section width in at most MaxLayers layers. With UseSideBars two side bars
// are reserved and the main bars must fit a single layer.
func SelectBars(as float64, in Input) (BarLayout, error) {
	width := AvailableWidth(in)
	if in.UseSideBars {
		return selectWithSideBars(as, width, in)
	}
	for _, bar := range in.Catalog.Descending() {
		n, s := BarsPerLayer(width, bar.Diameter, in.MinClearSpacing)
		if n < 2 {
			continue
		}
		count := max(2, int(math.Ceil(as/bar.Area)))
		layers := (count + n - 1) / n
		if layers > in.MaxLayers {
			continue
		}
		return BarLayout{
			Diameter:     bar.Diameter,
			BarArea:      bar.Area,
			Count:        count,
			Layers:       layers,
			PerLayer:     min(n, count),
			ClearSpacing: s,
			AsProvided:   float64(count) * bar.Area,
		}, nil
	}
	return BarLayout{}, fmt.Errorf("%w: As = %.0f mm² in %.0f mm clear width, up to %d layers",
		ErrBarsDoNotFit, as, width, in.MaxLayers)
}

func selectWithSideBars(as, width float64, in Input) (BarLayout, error) {
	sideArea := in.Catalog.Area(in.SideBarDiameter)
	rest := math.Max(as-2*sideArea, 0)
	for _, bar := range in.Catalog.Descending() {
		n, s := BarsPerLayer(width, bar.Diameter, in.MinClearSpacing)
		count := max(2, int(math.Ceil(rest/bar.Area)))
		if count > n {
			continue
		}
		return BarLayout{
			Diameter:     bar.Diameter,
			BarArea:      bar.Area,
			Count:        count,
			Layers:       1,
			PerLayer:     count,
			ClearSpacing: s,
			SideBars:     2,
			SideDiameter: in.SideBarDiameter,
			SideBarArea:  sideArea,
			AsProvided:   float64(count)*bar.Area + 2*sideArea,
		}, nil
	}
	return BarLayout{}, fmt.Errorf("%w: As = %.0f mm² with 2 side bars in %.0f mm clear width",
		ErrBarsDoNotFit, as, width)
}

// CompressionBars chooses the number of compression bars of the input's
// compression bar size; at least two are always provided
func CompressionBars(as float64, in Input) (BarLayout, error) {
	area := in.Catalog.Area(in.CompressionBarDiameter)
	return compressionLayout(max(2, int(math.Ceil(as/area))), in)
}

func compressionLayout(count int, in Input) (BarLayout, error) {
	db := in.CompressionBarDiameter
	area := in.Catalog.Area(db)
	width := AvailableWidth(in)
	n, s := BarsPerLayer(width, db, in.MinClearSpacing)
	if n < 2 {
		return BarLayout{}, fmt.Errorf("%w: Ø%gmm compression bars in %.0f mm clear width",
			ErrBarsDoNotFit, db, width)
	}
	layers := (count + n - 1) / n
	if layers > in.MaxLayers {
		return BarLayout{}, fmt.Errorf("%w: %d-Ø%gmm compression bars in %.0f mm clear width, up to %d layers",
			ErrBarsDoNotFit, count, db, width, in.MaxLayers)
	}
	return BarLayout{
		Diameter:     db,
		BarArea:      area,
		Count:        count,
		Layers:       layers,
		PerLayer:     min(n, count),
		ClearSpacing: s,
		AsProvided:   float64(count) * area,
	}, nil
}

// LayerPitch is the centre distance between bar layers of diameter db,
// with a clear vertical spacing of the larger of 25 mm and db
func LayerPitch(db float64) float64 {
	return db + math.Max(aci.MinClearSpacing, db)
}

// layerOffset is the distance from the centre of the first layer to the
// centroid of the main bars
func (o BarLayout) layerOffset() float64 {
	if o.Count == 0 || o.PerLayer == 0 {
		return 0
	}
	var moment int
	left := o.Count
	for layer := 0; left > 0; layer++ {
		k := min(left, o.PerLayer)
		moment += k * layer
		left -= k
	}
	return float64(moment) / float64(o.Count) * LayerPitch(o.Diameter)
}

// TensionDepth returns d from the top fibre to the centroid of the tension
// steel of l. Side bars count at mid-height.
func TensionDepth(in Input, l BarLayout) float64 {
	main := in.Height - in.Cover - in.StirrupDiameter - l.Diameter/2 - l.layerOffset()
	mainArea := float64(l.Count) * l.BarArea
	side := float64(l.SideBars) * l.SideBarArea
	if side == 0 || mainArea+side == 0 {
		return main
	}
	return (mainArea*main + side*in.Height/2) / (mainArea + side)
}

// CompressionDepth returns d' from the top fibre to the centroid of the
// compression bars of l
func CompressionDepth(in Input, l BarLayout) float64 {
	return in.Cover + in.StirrupDiameter + l.Diameter/2 + l.layerOffset()
}
