package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobeam/internal/design"
	"github.com/alexiusacademia/gobeam/internal/diagram"
	"github.com/alexiusacademia/gobeam/internal/report"
)

var (
	designIn design.Input

	// Output options
	designShowDiagram bool
	designExportFile  string
	designStrainFile  string
	designPDF         string
	designJSON        bool
)

var designCmd = &cobra.Command{
	Use:   "design",
	Short: "Design flexure, shear and torsion reinforcement of a rectangular beam",
	Long: `Calculate the reinforcement of a rectangular beam section for the
factored moment (Mu), shear (Vu) and torsion (Tu).

The design follows ACI 318-19 provisions:
  - 9.6.1.2: Minimum flexural reinforcement
  - 21.2: Strength reduction factors
  - 22.2: Equivalent rectangular stress block
  - 22.5: One-way shear strength
  - 22.7: Torsional strength
  - 25.2: Minimum bar spacing

When Mu exceeds the tension-controlled capacity of the singly reinforced
section, compression steel is added.

Examples:
  # Design a 300x500mm beam for Mu=150 kN·m and Vu=120 kN
  gobeam design -b 300 -H 500 --fc 28 --fy 420 --mu 150 --vu 120

  # With torsion, a section drawing and a PDF report
  gobeam design -b 300 -H 500 --mu 150 --vu 120 --tu 12 -o section.png --pdf design.pdf`,
	RunE: runDesign,
}

func init() {
	rootCmd.AddCommand(designCmd)

	f := designCmd.Flags()
	// Geometry flags
	f.Float64VarP(&designIn.Width, "width", "b", 0, "Beam width (mm) [required]")
	f.Float64VarP(&designIn.Height, "height", "H", 0, "Beam total depth (mm) [required]")
	f.Float64VarP(&designIn.Cover, "cover", "c", 40, "Clear cover to stirrups (mm)")
	f.Float64Var(&designIn.StirrupDiameter, "stirrup", 10, "Stirrup diameter (mm)")
	f.Float64Var(&designIn.BarDiameter, "bar", 20, "Assumed main bar diameter for d (mm)")
	f.Float64Var(&designIn.CompressionBarDiameter, "comp-bar", 0, "Compression bar diameter (mm), default --bar")
	f.BoolVar(&designIn.UseSideBars, "side-bars", false, "Provide two side bars and keep main bars in one layer")
	f.Float64Var(&designIn.SideBarDiameter, "side-bar", 0, "Side bar diameter (mm), default --bar")

	// Material flags
	f.Float64Var(&designIn.Fc, "fc", 28, "Concrete compressive strength f'c (MPa)")
	f.Float64Var(&designIn.Fy, "fy", 420, "Steel yield strength fy (MPa)")
	f.Float64Var(&designIn.FyStirrup, "fyt", 0, "Stirrup yield strength fyt (MPa), default --fy")

	// Loading flags
	f.Float64VarP(&designIn.Mu, "mu", "m", 0, "Factored moment Mu (kN·m) [required]")
	f.Float64Var(&designIn.Vu, "vu", 0, "Factored shear Vu (kN)")
	f.Float64Var(&designIn.Tu, "tu", 0, "Factored torsion Tu (kN·m)")

	designCmd.MarkFlagRequired("width")
	designCmd.MarkFlagRequired("height")
	designCmd.MarkFlagRequired("mu")

	// Diagram options
	f.BoolVar(&designShowDiagram, "diagram", false, "Show ASCII section diagram")
	f.StringVarP(&designExportFile, "output", "o", "", "Export section drawing to file (png, svg, pdf)")
	f.StringVar(&designStrainFile, "strain", "", "Export strain profile to file (png, svg, pdf)")
	f.StringVar(&designPDF, "pdf", "", "Write a PDF design report")
	f.BoolVar(&designJSON, "json", false, "Print the result as JSON")
}

func runDesign(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	in := cfg.ApplyDesign(designIn)

	r, err := design.Design(in)
	if err != nil {
		if !designJSON {
			failed(out, "design", err)
		}
		return err
	}
	slog.Debug("design finished", "bars", r.Bars.String(), "phiMn", r.Capacity.PhiMn)

	if designJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}
	printDesign(out, r)

	data := diagram.FromDesign(r)
	if designShowDiagram {
		fmt.Fprintln(out, diagram.DrawSection(data))
	}

	var image string
	if designExportFile != "" {
		name, err := diagram.ExportSection(data, designExportFile)
		if err != nil {
			return fmt.Errorf("exporting diagram: %w", err)
		}
		fmt.Fprintf(out, "Diagram exported to: %s\n", name)
		image = name
	}
	if designStrainFile != "" {
		name, err := diagram.ExportStrain(data, designStrainFile)
		if err != nil {
			return fmt.Errorf("exporting strain profile: %w", err)
		}
		fmt.Fprintf(out, "Strain profile exported to: %s\n", name)
	}
	if designPDF != "" {
		// only raster drawings can be embedded
		if !strings.HasSuffix(image, ".png") {
			image = ""
		}
		if err := report.DesignReport(designPDF, report.Header{}, r, image); err != nil {
			return err
		}
		fmt.Fprintf(out, "Report written to: %s\n", designPDF)
	}
	return nil
}

func printDesign(out io.Writer, r *design.Result) {
	in := r.Input
	title := "SINGLY REINFORCED BEAM DESIGN - ACI 318-19"
	if r.Flexure.Doubly {
		title = "DOUBLY REINFORCED BEAM DESIGN - ACI 318-19"
	}
	banner(out, title)

	heading(out, "Input data")
	w := table(out)
	fmt.Fprintf(w, "  Beam Width (b):\t%.0f mm\n", in.Width)
	fmt.Fprintf(w, "  Beam Depth (h):\t%.0f mm\n", in.Height)
	fmt.Fprintf(w, "  Effective Depth (d):\t%.1f mm\n", r.EffectiveDepth)
	fmt.Fprintf(w, "  Clear Cover:\t%.0f mm\n", in.Cover)
	fmt.Fprintf(w, "  f'c:\t%.1f MPa\n", in.Fc)
	fmt.Fprintf(w, "  fy / fyt:\t%.1f / %.1f MPa\n", in.Fy, in.FyStirrup)
	fmt.Fprintf(w, "  Mu / Vu / Tu:\t%.2f kN·m / %.2f kN / %.2f kN·m\n", in.Mu, in.Vu, in.Tu)
	w.Flush()
	fmt.Fprintln(out)

	f := r.Flexure
	heading(out, "Flexure")
	w = table(out)
	fmt.Fprintf(w, "  β1:\t%.3f\n", f.Beta1)
	fmt.Fprintf(w, "  ρ_min / ρ_max / ρ_bal:\t%.5f / %.5f / %.5f\n", f.RhoMin, f.RhoMax, f.RhoBalanced)
	fmt.Fprintf(w, "  As,min / As,max:\t%.1f / %.1f mm²\n", f.AsMin, f.AsMax)
	fmt.Fprintf(w, "  As calculated:\t%.1f mm²\n", f.AsCalculated)
	fmt.Fprintf(w, "  As required:\t%.1f mm²\n", f.AsRequired)
	if f.Doubly {
		fmt.Fprintf(w, "  Mu1 / Mu2:\t%.2f / %.2f kN·m\n", f.Mu1, f.Mu2)
		fmt.Fprintf(w, "  d':\t%.1f mm\n", f.CompressionDepth)
		fmt.Fprintf(w, "  ε's / f's:\t%.5f / %.1f MPa\n", f.CompressionStrain, f.CompressionStress)
		fmt.Fprintf(w, "  A's required:\t%.1f mm²\n", f.AsCompression)
	}
	w.Flush()
	fmt.Fprintln(out)

	heading(out, "Reinforcement")
	w = table(out)
	fmt.Fprintf(w, "  Tension bars:\t%s\t%.1f mm²\n", r.Bars, r.Bars.AsProvided)
	fmt.Fprintf(w, "  Bars per layer / clear spacing:\t%d / %.0f mm\n", r.Bars.PerLayer, r.Bars.ClearSpacing)
	if r.Compression != nil {
		fmt.Fprintf(w, "  Compression bars:\t%s\t%.1f mm²\n", r.Compression, r.Compression.AsProvided)
	}
	w.Flush()
	fmt.Fprintln(out)

	s := r.Shear
	heading(out, "Shear")
	w = table(out)
	fmt.Fprintf(w, "  Vc / φVc:\t%.2f / %.2f kN\n", s.Vc, s.PhiVc)
	if s.Required {
		fmt.Fprintf(w, "  Vs required / Vs,max:\t%.2f / %.2f kN\n", s.Vs, s.VsMax)
		fmt.Fprintf(w, "  s required:\t%.0f mm\n", s.SpacingReq)
	} else {
		fmt.Fprintf(w, "  Stirrups:\tnot required (Vu ≤ 0.5φVc)\n")
	}
	if s.Spacing > 0 {
		fmt.Fprintf(w, "  s max / s for Av,min:\t%.0f / %.0f mm\n", s.SpacingMax, s.SpacingMin)
		fmt.Fprintf(w, "  Spacing:\t%d-leg Ø%g @ %.0f mm\n", s.Legs, in.StirrupDiameter, s.Spacing)
	}
	fmt.Fprintf(w, "  φVn:\t%.2f kN %s\n", s.PhiVn, check(s.PhiVn >= in.Vu))
	w.Flush()
	fmt.Fprintln(out)

	if t := r.Torsion; t != nil {
		heading(out, "Torsion")
		w = table(out)
		fmt.Fprintf(w, "  Acp / pcp:\t%.0f mm² / %.0f mm\n", t.Acp, t.Pcp)
		fmt.Fprintf(w, "  Aoh / ph:\t%.0f mm² / %.0f mm\n", t.Aoh, t.Ph)
		fmt.Fprintf(w, "  φTth:\t%.2f kN·m\n", t.Threshold)
		if t.Neglectable {
			fmt.Fprintf(w, "  Torsion:\tneglected (Tu < φTth)\n")
		} else {
			fmt.Fprintf(w, "  At/s:\t%.4f mm²/mm\n", t.AtOverS)
			fmt.Fprintf(w, "  Spacing (torsion / combined):\t%.0f / %.0f mm\n", t.Spacing, t.CombinedSpacing)
			fmt.Fprintf(w, "  Al:\t%.1f mm²\n", t.LongitudinalArea)
			fmt.Fprintf(w, "  φTn:\t%.2f kN·m %s\n", t.PhiTn, check(t.PhiTn >= in.Tu))
		}
		w.Flush()
		fmt.Fprintln(out)
	}

	c := r.Capacity
	heading(out, "Capacity")
	w = table(out)
	fmt.Fprintf(w, "  Neutral axis (c) / a:\t%.2f / %.2f mm\n", c.C, c.A)
	fmt.Fprintf(w, "  Tensile strain (εt):\t%.5f\n", c.EpsilonT)
	fmt.Fprintf(w, "  Section status:\t%s\n", c.Region)
	fmt.Fprintf(w, "  φ:\t%.3f\n", c.Phi)
	fmt.Fprintf(w, "  Mn / φMn:\t%.2f / %.2f kN·m\n", c.Mn, c.PhiMn)
	w.Flush()
	fmt.Fprintln(out)

	heading(out, "Design result")
	if r.Adequate() {
		fmt.Fprintf(out, "  φMn = %.2f kN·m ≥ Mu = %.2f kN·m %s\n\n", c.PhiMn, in.Mu, check(true))
	} else {
		fmt.Fprintf(out, "  φMn = %.2f kN·m < Mu = %.2f kN·m %s\n\n", c.PhiMn, in.Mu, check(false))
	}
}
