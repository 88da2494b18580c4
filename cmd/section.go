package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/section"
)

var (
	sectionWidth   float64
	sectionHeight  float64
	sectionModulus float64

	// optional internal forces for a stress check
	sectionShear   float64
	sectionMoment  float64
	sectionTorsion float64
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Elastic properties and stresses of a rectangular section",
	Long: `Calculate the elastic properties of a solid rectangular section:
area, moment of inertia, section modulus, polar moment and the
Saint-Venant torsional constant.

When internal forces are given, the extreme fibre stresses and the
von Mises stress are reported as well.

Examples:
  gobeam section -b 300 -H 500
  gobeam section -b 300 -H 500 --E 25000 --moment 120 --shear 80 --torsion 5`,
	RunE: runSection,
}

func init() {
	rootCmd.AddCommand(sectionCmd)

	f := sectionCmd.Flags()
	f.Float64VarP(&sectionWidth, "width", "b", 0, "Section width (mm) [required]")
	f.Float64VarP(&sectionHeight, "height", "H", 0, "Section height (mm) [required]")
	f.Float64Var(&sectionModulus, "E", 0, "Elastic modulus (MPa), reports EI when given")
	f.Float64Var(&sectionShear, "shear", 0, "Shear force V (kN)")
	f.Float64Var(&sectionMoment, "moment", 0, "Bending moment M (kN·m)")
	f.Float64Var(&sectionTorsion, "torsion", 0, "Torque T (kN·m)")

	sectionCmd.MarkFlagRequired("width")
	sectionCmd.MarkFlagRequired("height")
}

func runSection(cmd *cobra.Command, args []string) error {
	p, err := section.Rectangle(sectionWidth, sectionHeight)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	banner(out, "RECTANGULAR SECTION PROPERTIES")
	heading(out, "Properties")
	w := table(out)
	fmt.Fprintf(w, "  Width (b):\t%.1f mm\n", p.Width)
	fmt.Fprintf(w, "  Height (h):\t%.1f mm\n", p.Height)
	fmt.Fprintf(w, "  Area (A):\t%.4e mm²\n", p.Area)
	fmt.Fprintf(w, "  Moment of inertia (I):\t%.4e mm⁴\n", p.MomentOfInertia)
	fmt.Fprintf(w, "  Section modulus (S):\t%.4e mm³\n", p.SectionModulus)
	fmt.Fprintf(w, "  Polar moment (Ip):\t%.4e mm⁴\n", p.PolarMomentOfInertia)
	fmt.Fprintf(w, "  Torsional constant (J):\t%.4e mm⁴\n", p.TorsionalConstant)
	if sectionModulus > 0 {
		fmt.Fprintf(w, "  Flexural rigidity (EI):\t%.2f kN·m²\n", beam.FlexuralRigidity(sectionModulus, p.MomentOfInertia))
	}
	w.Flush()
	fmt.Fprintln(out)

	if sectionShear == 0 && sectionMoment == 0 && sectionTorsion == 0 {
		return nil
	}
	s := beam.StressAt(p, sectionShear, sectionMoment, sectionTorsion)
	heading(out, "Stresses")
	w = table(out)
	fmt.Fprintf(w, "  Normal (σ = M/S):\t%.3f MPa\n", s.Normal)
	fmt.Fprintf(w, "  Shear (τ = 3V/2A):\t%.3f MPa\n", s.Shear)
	fmt.Fprintf(w, "  Torsional (τt):\t%.3f MPa\n", s.Torsional)
	fmt.Fprintf(w, "  Von Mises:\t%.3f MPa\n", s.VonMises)
	w.Flush()
	fmt.Fprintln(out)
	return nil
}
