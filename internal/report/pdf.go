package report

import (
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/alexiusacademia/gobeam/internal/design"
)

// Header identifies a printed report
type Header struct {
	Title   string
	Project string
	Author  string
	Date    time.Time
}

type document struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

func newDocument(h Header) *document {
	if h.Title == "" {
		h.Title = "Beam Design Report"
	}
	if h.Date.IsZero() {
		h.Date = time.Now()
	}
	pdf := gofpdf.New("P", "mm", "A4", "")
	d := &document{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, d.tr(h.Title))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	if h.Project != "" {
		pdf.Cell(0, 6, d.tr("Project: "+h.Project))
		pdf.Ln(6)
	}
	if h.Author != "" {
		pdf.Cell(0, 6, d.tr("Author: "+h.Author))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, "Date: "+h.Date.Format("2006-01-02"))
	pdf.Ln(10)
	return d
}

func (d *document) section(title string) {
	d.pdf.Ln(2)
	d.pdf.SetFont("Helvetica", "B", 12)
	d.pdf.Cell(0, 8, d.tr(title))
	d.pdf.Ln(8)
	d.pdf.SetFont("Helvetica", "", 10)
}

// row prints a label, a value and a unit in three columns
func (d *document) row(label string, value float64, unit string) {
	d.pdf.CellFormat(80, 6, d.tr(label), "", 0, "L", false, 0, "")
	d.pdf.CellFormat(35, 6, fmt.Sprintf("%.2f", value), "", 0, "R", false, 0, "")
	d.pdf.CellFormat(0, 6, d.tr("  "+unit), "", 1, "L", false, 0, "")
}

func (d *document) text(s string) {
	d.pdf.MultiCell(0, 6, d.tr(s), "", "L", false)
}

// DesignReport writes the design steps and results to a PDF. A section
// drawing (png) is embedded when image is not empty.
func DesignReport(path string, h Header, r *design.Result, image string) error {
	d := newDocument(h)
	in := r.Input

	d.section("1. Input")
	d.row("Width b", in.Width, "mm")
	d.row("Height h", in.Height, "mm")
	d.row("Clear cover", in.Cover, "mm")
	d.row("Concrete strength f'c", in.Fc, "MPa")
	d.row("Steel yield strength fy", in.Fy, "MPa")
	d.row("Factored moment Mu", in.Mu, "kN·m")
	d.row("Factored shear Vu", in.Vu, "kN")
	d.row("Factored torsion Tu", in.Tu, "kN·m")

	f := r.Flexure
	d.section("2. Flexure (ACI 318-19 9.3, 22.2)")
	d.row("Effective depth d", r.EffectiveDepth, "mm")
	d.row("beta1", f.Beta1, "")
	d.row("As,min", f.AsMin, "mm²")
	d.row("As,max", f.AsMax, "mm²")
	d.row("As calculated", f.AsCalculated, "mm²")
	d.row("As required", f.AsRequired, "mm²")
	if f.Doubly {
		d.text("Section is doubly reinforced.")
		d.row("Mu1 (tension-controlled couple)", f.Mu1, "kN·m")
		d.row("Mu2 (compression steel couple)", f.Mu2, "kN·m")
		d.row("A's required", f.AsCompression, "mm²")
		d.row("f's", f.CompressionStress, "MPa")
	}

	d.section("3. Reinforcement")
	d.text(fmt.Sprintf("Tension: %s, As = %.0f mm²", r.Bars, r.Bars.AsProvided))
	if r.Compression != nil {
		d.text(fmt.Sprintf("Compression: %s, A's = %.0f mm²", r.Compression, r.Compression.AsProvided))
	}

	s := r.Shear
	d.section("4. Shear (ACI 318-19 22.5)")
	d.row("Vc", s.Vc, "kN")
	d.row("phi Vc", s.PhiVc, "kN")
	if s.Required {
		d.row("Vs required", s.Vs, "kN")
		d.row("Stirrup spacing", s.Spacing, "mm")
	} else {
		d.text("Vu does not exceed 0.5 phi Vc, stirrups are not required for shear.")
	}
	d.row("phi Vn", s.PhiVn, "kN")

	if t := r.Torsion; t != nil {
		d.section("5. Torsion (ACI 318-19 22.7)")
		d.row("Threshold torsion", t.Threshold, "kN·m")
		if t.Neglectable {
			d.text("Torsion may be neglected.")
		} else {
			d.row("At/s", t.AtOverS, "mm²/mm")
			d.row("Combined stirrup spacing", t.CombinedSpacing, "mm")
			d.row("Longitudinal torsion steel Al", t.LongitudinalArea, "mm²")
			d.row("phi Tn", t.PhiTn, "kN·m")
		}
	}

	c := r.Capacity
	d.section("6. Capacity")
	d.row("Neutral axis c", c.C, "mm")
	d.row("Net tensile strain", c.EpsilonT, "")
	d.row("phi", c.Phi, "")
	d.row("Mn", c.Mn, "kN·m")
	d.row("phi Mn", c.PhiMn, "kN·m")
	verdict := "ADEQUATE"
	if !r.Adequate() {
		verdict = "NOT ADEQUATE"
	}
	d.pdf.SetFont("Helvetica", "B", 11)
	d.text(fmt.Sprintf("phi Mn / Mu = %.3f  %s (%s)", r.CapacityRatio, verdict, c.Region))

	if image != "" {
		d.pdf.AddPage()
		d.section("Section")
		d.pdf.ImageOptions(image, 15, d.pdf.GetY(), 120, 0, false,
			gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}, 0, "")
	}

	if err := d.pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	return nil
}
