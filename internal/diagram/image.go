package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	_ "gonum.org/v1/plot/vg/vgimg"
	_ "gonum.org/v1/plot/vg/vgpdf"
	_ "gonum.org/v1/plot/vg/vgsvg"

	"github.com/alexiusacademia/gobeam/internal/aci"
	"github.com/alexiusacademia/gobeam/internal/beam"
)

// Quantity is a result plotted along the beam
type Quantity string

const (
	Shear      Quantity = "shear"
	Moment     Quantity = "moment"
	Torsion    Quantity = "torsion"
	Deflection Quantity = "deflection"
	Stress     Quantity = "stress"
)

// Quantities lists every plottable quantity in display order
var Quantities = []Quantity{Shear, Moment, Torsion, Deflection, Stress}

// Title returns the axis label of q
func (q Quantity) Title() string {
	switch q {
	case Shear:
		return "Shear (kN)"
	case Moment:
		return "Moment (kN·m)"
	case Torsion:
		return "Torsion (kN·m)"
	case Deflection:
		return "Deflection (mm, downward +)"
	case Stress:
		return "Von Mises stress (MPa)"
	}
	return string(q)
}

func (q Quantity) value(p beam.DiagramPoint) float64 {
	switch q {
	case Shear:
		return p.Shear
	case Moment:
		return p.Moment
	case Torsion:
		return p.Torsion
	case Deflection:
		return p.Deflection
	case Stress:
		return p.VonMisesStress
	}
	return 0
}

// Values extracts q from the sampled points
func (q Quantity) Values(pts []beam.DiagramPoint) []float64 {
	out := make([]float64, len(pts))
	for i, p := range pts {
		out[i] = q.value(p)
	}
	return out
}

var (
	fillColor = color.RGBA{R: 100, G: 149, B: 237, A: 150}
	lineColor = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	barColor  = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	naColor   = color.RGBA{R: 255, A: 255}
)

// BeamPlot draws q along the beam as a filled curve about the axis
func BeamPlot(pts []beam.DiagramPoint, q Quantity) (*plot.Plot, error) {
	if len(pts) < 2 {
		return nil, fmt.Errorf("diagram: need at least two stations, got %d", len(pts))
	}
	p := plot.New()
	p.Title.Text = strings.ToUpper(string(q[:1])) + string(q[1:])
	p.X.Label.Text = "Position (m)"
	p.Y.Label.Text = q.Title()
	p.Add(plotter.NewGrid())

	curve := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		curve[i] = plotter.XY{X: pt.Position, Y: q.value(pt)}
	}
	// close the area back along the axis
	area := append(plotter.XYs{{X: pts[0].Position}}, curve...)
	area = append(area, plotter.XY{X: pts[len(pts)-1].Position})
	poly, err := plotter.NewPolygon(area)
	if err != nil {
		return nil, err
	}
	poly.Color = fillColor
	poly.LineStyle.Width = 0
	p.Add(poly)

	line, err := plotter.NewLine(curve)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = lineColor
	p.Add(line)

	axis, err := plotter.NewLine(plotter.XYs{{X: pts[0].Position}, {X: pts[len(pts)-1].Position}})
	if err != nil {
		return nil, err
	}
	axis.LineStyle.Color = color.Black
	p.Add(axis)
	return p, nil
}

// format returns the canvas format and the file name to write, defaulting
// to png
func format(filename string) (string, string) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".png", ".svg", ".pdf":
		return ext[1:], filename
	}
	return "png", filename + ".png"
}

func ensureDir(filename string) error {
	if dir := filepath.Dir(filename); dir != "" && dir != "." {
		return os.MkdirAll(dir, 0o755)
	}
	return nil
}

// ExportBeamDiagrams stacks the plots of the given quantities in one image.
// The format follows the file extension (png, svg or pdf). It returns the
// name of the written file.
func ExportBeamDiagrams(pts []beam.DiagramPoint, qs []Quantity, filename string) (string, error) {
	if len(qs) == 0 {
		qs = []Quantity{Shear, Moment, Deflection}
	}
	plots := make([][]*plot.Plot, len(qs))
	for i, q := range qs {
		p, err := BeamPlot(pts, q)
		if err != nil {
			return "", err
		}
		plots[i] = []*plot.Plot{p}
	}

	ext, filename := format(filename)
	width, height := 8*vg.Inch, 3*vg.Inch*vg.Length(len(qs))
	c, err := draw.NewFormattedCanvas(width, height, ext)
	if err != nil {
		return "", err
	}
	tiles := draw.Tiles{
		Rows: len(qs),
		Cols: 1,
		PadX: vg.Millimeter,
		PadY: 4 * vg.Millimeter,
	}
	canvases := plot.Align(plots, tiles, draw.New(c))
	for i := range plots {
		plots[i][0].Draw(canvases[i][0])
	}

	if err := ensureDir(filename); err != nil {
		return "", err
	}
	f, err := os.Create(filename)
	if err != nil {
		return "", err
	}
	if _, err = c.WriteTo(f); err != nil {
		f.Close()
		return "", err
	}
	return filename, f.Close()
}

func toXYs(pts []Point) plotter.XYs {
	xys := make(plotter.XYs, len(pts))
	for i, p := range pts {
		xys[i] = plotter.XY{X: p.X, Y: p.Y}
	}
	return xys
}

func addBars(p *plot.Plot, pts []Point, db float64) error {
	if len(pts) == 0 {
		return nil
	}
	s, err := plotter.NewScatter(toXYs(pts))
	if err != nil {
		return err
	}
	s.GlyphStyle.Color = barColor
	s.GlyphStyle.Radius = vg.Points(max(3, db/5))
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(s)
	return nil
}

func addLabel(p *plot.Plot, x, y float64, text string) error {
	l, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: x, Y: y}},
		Labels: []string{text},
	})
	if err != nil {
		return err
	}
	p.Add(l)
	return nil
}

// SectionPlot draws the section outline, stirrup, stress block, neutral
// axis and bar layout
func SectionPlot(data SectionData) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Beam Section"
	p.X.Label.Text = "Width (mm)"
	p.Y.Label.Text = "Height (mm)"

	outline, err := plotter.NewLine(plotter.XYs{
		{X: 0, Y: 0},
		{X: data.Width, Y: 0},
		{X: data.Width, Y: data.Height},
		{X: 0, Y: data.Height},
		{X: 0, Y: 0},
	})
	if err != nil {
		return nil, err
	}
	outline.LineStyle.Width = vg.Points(2)
	outline.LineStyle.Color = color.Black
	p.Add(outline)

	if data.Stirrup > 0 {
		o := data.Cover + data.Stirrup/2
		stirrup, err := plotter.NewLine(plotter.XYs{
			{X: o, Y: o},
			{X: data.Width - o, Y: o},
			{X: data.Width - o, Y: data.Height - o},
			{X: o, Y: data.Height - o},
			{X: o, Y: o},
		})
		if err != nil {
			return nil, err
		}
		stirrup.LineStyle.Color = color.Gray{Y: 90}
		stirrup.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		p.Add(stirrup)
	}

	if data.StressBlockDepth > 0 {
		block, err := plotter.NewPolygon(plotter.XYs{
			{X: 0, Y: data.Height},
			{X: data.Width, Y: data.Height},
			{X: data.Width, Y: data.Height - data.StressBlockDepth},
			{X: 0, Y: data.Height - data.StressBlockDepth},
		})
		if err != nil {
			return nil, err
		}
		block.Color = fillColor
		block.LineStyle.Color = lineColor
		p.Add(block)
		if err := addLabel(p, data.Width+10, data.Height-data.StressBlockDepth/2, fmt.Sprintf("a=%.1fmm", data.StressBlockDepth)); err != nil {
			return nil, err
		}
	}

	if data.NeutralAxisDepth > 0 {
		y := data.Height - data.NeutralAxisDepth
		na, err := plotter.NewLine(plotter.XYs{{X: -20, Y: y}, {X: data.Width + 20, Y: y}})
		if err != nil {
			return nil, err
		}
		na.LineStyle.Width = vg.Points(1.5)
		na.LineStyle.Color = naColor
		na.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
		p.Add(na)
		if err := addLabel(p, data.Width+30, y, "N.A."); err != nil {
			return nil, err
		}
	}

	if err := addBars(p, data.TensionBars(), data.Tension.Diameter); err != nil {
		return nil, err
	}
	if err := addBars(p, data.SideBars(), data.Tension.SideDiameter); err != nil {
		return nil, err
	}
	if data.Compression != nil {
		if err := addBars(p, data.CompressionBars(), data.Compression.Diameter); err != nil {
			return nil, err
		}
		if err := addLabel(p, data.Width/2, data.Height+15, data.Compression.String()); err != nil {
			return nil, err
		}
	}
	if data.Tension.Count > 0 {
		label := fmt.Sprintf("%s (As=%.0fmm²)", data.Tension, data.Tension.AsProvided)
		if err := addLabel(p, data.Width/2, -25, label); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// ExportSection writes the section drawing and returns the written file
// name
func ExportSection(data SectionData, filename string) (string, error) {
	p, err := SectionPlot(data)
	if err != nil {
		return "", err
	}
	_, filename = format(filename)
	if err := ensureDir(filename); err != nil {
		return "", err
	}
	return filename, p.Save(6*vg.Inch, 6*vg.Inch*vg.Length(data.Height/data.Width), filename)
}

// ExportStrain writes the linear strain profile at nominal flexural
// strength
func ExportStrain(data SectionData, filename string) (string, error) {
	if !(data.NeutralAxisDepth > 0) || !(data.Depth > 0) {
		return "", fmt.Errorf("diagram: strain profile needs the neutral axis and effective depth")
	}
	p := plot.New()
	p.Title.Text = "Strain Distribution"
	p.X.Label.Text = "Strain"
	p.Y.Label.Text = "Depth from top (mm)"
	p.Y.Min = data.Height
	p.Y.Max = 0

	key := plotter.XYs{
		{X: aci.EpsilonCU, Y: 0},
		{X: 0, Y: data.NeutralAxisDepth},
		{X: -data.EpsilonT, Y: data.Depth},
	}
	profile, err := plotter.NewLine(key)
	if err != nil {
		return "", err
	}
	profile.LineStyle.Width = vg.Points(2)
	profile.LineStyle.Color = color.RGBA{G: 100, A: 255}
	p.Add(profile)

	zero, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: 0, Y: data.Height}})
	if err != nil {
		return "", err
	}
	zero.LineStyle.Color = color.Gray{Y: 128}
	zero.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	p.Add(zero)

	if data.Fy > 0 {
		εy := data.Fy / aci.Es
		for _, x := range []float64{εy, -εy} {
			l, err := plotter.NewLine(plotter.XYs{{X: x, Y: 0}, {X: x, Y: data.Height}})
			if err != nil {
				return "", err
			}
			l.LineStyle.Color = color.RGBA{R: 255, G: 165, A: 255}
			l.LineStyle.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
			p.Add(l)
		}
	}

	marks, err := plotter.NewScatter(key)
	if err != nil {
		return "", err
	}
	marks.GlyphStyle.Color = naColor
	marks.GlyphStyle.Radius = vg.Points(4)
	p.Add(marks)

	_, filename = format(filename)
	if err := ensureDir(filename); err != nil {
		return "", err
	}
	return filename, p.Save(6*vg.Inch, 8*vg.Inch, filename)
}
