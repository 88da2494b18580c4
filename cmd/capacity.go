package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobeam/internal/capacity"
)

var (
	capacityIn   capacity.Input
	capacityJSON bool
)

var capacityCmd = &cobra.Command{
	Use:   "capacity",
	Short: "Check a given reinforcement layout against factored demands",
	Long: `Evaluate the design strengths φPn, φVn, φMn and φTn of a rectangular
section with a supplied reinforcement configuration and compare them with
the factored demands.

Each action gets a demand/capacity ratio. The combined utilisation is the
square root of the sum of the squared ratios, reported clamped to [0, 1];
the section is adequate when the unclamped value does not exceed one.

Examples:
  gobeam capacity -b 300 -H 500 --as 1500 --spacing 200 --mu 120 --vu 80
  gobeam capacity -b 300 -H 500 --rho 0.01 --pu 100 --mu 90 --tu 5`,
	RunE: runCapacity,
}

func init() {
	rootCmd.AddCommand(capacityCmd)

	f := capacityCmd.Flags()
	f.Float64VarP(&capacityIn.Width, "width", "b", 0, "Beam width (mm) [required]")
	f.Float64VarP(&capacityIn.Height, "height", "H", 0, "Beam total depth (mm) [required]")
	f.Float64VarP(&capacityIn.Cover, "cover", "c", 40, "Clear cover to stirrups (mm)")
	f.Float64Var(&capacityIn.StirrupDiameter, "stirrup", 10, "Stirrup diameter (mm)")
	f.Float64Var(&capacityIn.BarDiameter, "bar", 20, "Main bar diameter (mm)")
	f.Float64Var(&capacityIn.Fc, "fc", 28, "Concrete compressive strength f'c (MPa)")
	f.Float64Var(&capacityIn.Fy, "fy", 420, "Steel yield strength fy (MPa)")
	f.Float64Var(&capacityIn.FyStirrup, "fyt", 0, "Stirrup yield strength fyt (MPa), default --fy")

	f.Float64Var(&capacityIn.As, "as", 0, "Tension steel area (mm²)")
	f.Float64Var(&capacityIn.Rho, "rho", 0, "Tension steel ratio As/(b·d), used when --as is not given")
	f.Float64Var(&capacityIn.AsCompression, "as-comp", 0, "Compression steel area (mm²)")
	f.Float64Var(&capacityIn.CompressionDepth, "d-comp", 0, "Depth to compression steel d' (mm)")
	f.IntVar(&capacityIn.StirrupLegs, "legs", 2, "Stirrup legs")
	f.Float64Var(&capacityIn.StirrupSpacing, "spacing", 0, "Stirrup spacing (mm), 0 for none")

	f.Float64Var(&capacityIn.Pu, "pu", 0, "Factored axial compression Pu (kN)")
	f.Float64Var(&capacityIn.Vu, "vu", 0, "Factored shear Vu (kN)")
	f.Float64VarP(&capacityIn.Mu, "mu", "m", 0, "Factored moment Mu (kN·m)")
	f.Float64Var(&capacityIn.Tu, "tu", 0, "Factored torsion Tu (kN·m)")
	f.BoolVar(&capacityJSON, "json", false, "Print the result as JSON")

	capacityCmd.MarkFlagRequired("width")
	capacityCmd.MarkFlagRequired("height")
	capacityCmd.MarkFlagsOneRequired("as", "rho")
}

func runCapacity(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	in := capacityIn

	r, err := capacity.Evaluate(in)
	if err != nil {
		if !capacityJSON {
			failed(out, "capacity check", err)
		}
		return err
	}
	if capacityJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	banner(out, "SECTION CAPACITY CHECK - ACI 318-19")

	heading(out, "Section")
	w := table(out)
	fmt.Fprintf(w, "  b x h:\t%.0f x %.0f mm\n", in.Width, in.Height)
	fmt.Fprintf(w, "  Effective depth (d):\t%.1f mm\n", r.EffectiveDepth)
	fmt.Fprintf(w, "  As / ρ:\t%.1f mm² / %.5f\n", r.As, r.As/(in.Width*r.EffectiveDepth))
	if in.AsCompression > 0 {
		fmt.Fprintf(w, "  A's @ d':\t%.1f mm² @ %.1f mm\n", in.AsCompression, in.CompressionDepth)
	}
	if in.StirrupSpacing > 0 {
		fmt.Fprintf(w, "  Stirrups:\t%d-leg Ø%g @ %.0f mm\n", in.StirrupLegs, in.StirrupDiameter, in.StirrupSpacing)
	}
	fmt.Fprintf(w, "  Flexure:\tc = %.1f mm, εt = %.5f, φ = %.3f (%s)\n",
		r.Flexure.C, r.Flexure.EpsilonT, r.Flexure.Phi, r.Flexure.Region)
	w.Flush()
	fmt.Fprintln(out)

	heading(out, "Demand / capacity")
	w = table(out)
	fmt.Fprintf(w, "  Action\tDemand\tCapacity\tRatio\n")
	fmt.Fprintf(w, "  ──────\t──────\t────────\t─────\n")
	fmt.Fprintf(w, "  Axial (kN)\t%.2f\t%.2f\t%.3f\n", in.Pu, r.PhiPn, r.Ratios.Axial)
	fmt.Fprintf(w, "  Shear (kN)\t%.2f\t%.2f\t%.3f\n", in.Vu, r.PhiVn, r.Ratios.Shear)
	fmt.Fprintf(w, "  Moment (kN·m)\t%.2f\t%.2f\t%.3f\n", in.Mu, r.PhiMn, r.Ratios.Flexure)
	fmt.Fprintf(w, "  Torsion (kN·m)\t%.2f\t%.2f\t%.3f\n", in.Tu, r.PhiTn, r.Ratios.Torsion)
	w.Flush()
	fmt.Fprintln(out)

	heading(out, "Result")
	status := "ADEQUATE"
	if !r.Adequate {
		status = "NOT ADEQUATE"
	}
	fmt.Fprintf(out, "  Combined utilisation (SRSS) = %.3f (unclamped %.3f)  %s %s\n\n",
		r.Combined, r.Utilisation, status, check(r.Adequate))
	return nil
}
