package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/design"
)

func sectionData() SectionData {
	return SectionData{
		Width:   300,
		Height:  500,
		Cover:   40,
		Stirrup: 10,
		Tension: design.BarLayout{
			Diameter:     20,
			BarArea:      314.16,
			Count:        5,
			Layers:       2,
			PerLayer:     3,
			ClearSpacing: 25,
			AsProvided:   5 * 314.16,
		},
		Compression: &design.BarLayout{
			Diameter:   16,
			BarArea:    201.06,
			Count:      2,
			Layers:     1,
			PerLayer:   2,
			AsProvided: 2 * 201.06,
		},
		Depth:            427.5,
		NeutralAxisDepth: 120,
		StressBlockDepth: 102,
		EpsilonT:         0.0077,
		Fy:               420,
	}
}

func Test_section01(tst *testing.T) {
	chk.PrintTitle("section01. bar positions")

	s := sectionData()
	t := s.TensionBars()
	chk.Int(tst, "tension bars", len(t), 5)

	// first layer spans the width inside the stirrups
	chk.Float64(tst, "x first", 1e-12, t[0].X, 60)
	chk.Float64(tst, "x last", 1e-12, t[2].X, 240)
	chk.Float64(tst, "y layer 1", 1e-12, t[0].Y, 60)
	chk.Float64(tst, "y layer 2", 1e-12, t[3].Y, 60+20+25)

	c := s.CompressionBars()
	chk.Int(tst, "compression bars", len(c), 2)
	chk.Float64(tst, "y top", 1e-12, c[0].Y, 500-58)

	if len(s.SideBars()) != 0 {
		tst.Errorf("no side bars expected")
	}
	s.Tension.SideBars, s.Tension.SideDiameter = 2, 12
	chk.Int(tst, "side bars", len(s.SideBars()), 2)

	for _, p := range append(t, c...) {
		if p.X < 50 || p.X > 250 || p.Y < 50 || p.Y > 450 {
			tst.Errorf("bar at %v lies outside the stirrup", p)
		}
	}
}

func points() []beam.DiagramPoint {
	pts := make([]beam.DiagramPoint, 21)
	for i := range pts {
		x := 6 * float64(i) / 20
		pts[i] = beam.DiagramPoint{
			Position:       x,
			Shear:          15 - 5*x,
			Moment:         x * (15 - 2.5*x),
			Deflection:     x * (6 - x) / 3,
			VonMisesStress: x,
		}
	}
	return pts
}

func Test_ascii01(tst *testing.T) {
	chk.PrintTitle("ascii01. terminal output")

	g := Graph(points(), Moment, 60, 10)
	if !strings.Contains(g, "Moment (kN·m)") {
		tst.Errorf("graph caption missing:\n%s", g)
	}

	d := DrawSection(sectionData())
	for _, want := range []string{"N.A.", "5-Ø20mm in 2 layers", "Compression:"} {
		if !strings.Contains(d, want) {
			tst.Errorf("section drawing lacks %q:\n%s", want, d)
		}
	}

	box := SummaryBox("RESULT", []string{"As = 1571 mm²", "φMn = 230.1 kN·m"})
	lines := strings.Split(strings.TrimRight(box, "\n"), "\n")
	chk.Int(tst, "box lines", len(lines), 5)
	w := len([]rune(lines[0]))
	for _, l := range lines {
		chk.Int(tst, "box width", len([]rune(l)), w)
	}
}

func Test_image01(tst *testing.T) {
	chk.PrintTitle("image01. image export")

	dir := tst.TempDir()
	name, err := ExportBeamDiagrams(points(), []Quantity{Shear, Moment, Deflection}, filepath.Join(dir, "out", "beam.svg"))
	if err != nil {
		tst.Errorf("ExportBeamDiagrams failed:\n%v", err)
		return
	}
	if info, err := os.Stat(name); err != nil || info.Size() == 0 {
		tst.Errorf("beam diagram not written: %v", err)
	}

	name, err = ExportSection(sectionData(), filepath.Join(dir, "section"))
	if err != nil {
		tst.Errorf("ExportSection failed:\n%v", err)
		return
	}
	if filepath.Ext(name) != ".png" {
		tst.Errorf("default format should be png, got %q", name)
	}
	if _, err = os.Stat(name); err != nil {
		tst.Errorf("section not written: %v", err)
	}

	if _, err = ExportStrain(sectionData(), filepath.Join(dir, "strain.pdf")); err != nil {
		tst.Errorf("ExportStrain failed:\n%v", err)
	}
	if _, err = ExportBeamDiagrams(points()[:1], nil, filepath.Join(dir, "x.png")); err == nil {
		tst.Errorf("single station accepted")
	}
}
