package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobeam/internal/aci"
)

var (
	// Unfactored effects, all in the same unit
	combineEffects aci.LoadEffects
	combineUnit    string

	// Options
	combineAll     bool
	combineGravity bool
)

var combineCmd = &cobra.Command{
	Use:     "combine",
	Aliases: []string{"moment"},
	Short:   "Calculate a factored effect using ACI 318-19 load combinations",
	Long: `Calculate the factored moment, shear or torque based on the ACI 318-19
Table 5.3.1 strength load combinations.

Provide unfactored effects from different load types and this command will
compute the factored effect for all applicable combinations.

Load Types:
  D  - Dead load
  L  - Live load
  Lr - Roof live load
  S  - Snow load
  R  - Rain load
  W  - Wind load
  E  - Earthquake load

Examples:
  # Simple gravity loads (dead + live)
  gobeam combine --dead 50 --live 30

  # With wind load, showing every combination
  gobeam combine --dead 50 --live 30 --wind 20 --all

  # Shears instead of moments
  gobeam combine --dead 40 --live 25 --unit kN`,
	RunE: runCombine,
}

func init() {
	rootCmd.AddCommand(combineCmd)

	f := combineCmd.Flags()
	f.Float64VarP(&combineEffects.Dead, "dead", "d", 0, "Effect of dead load")
	f.Float64VarP(&combineEffects.Live, "live", "l", 0, "Effect of live load")
	f.Float64VarP(&combineEffects.Roof, "roof", "r", 0, "Effect of roof live load")
	f.Float64VarP(&combineEffects.Snow, "snow", "s", 0, "Effect of snow load")
	f.Float64VarP(&combineEffects.Rain, "rain", "R", 0, "Effect of rain load")
	f.Float64VarP(&combineEffects.Wind, "wind", "w", 0, "Effect of wind load")
	f.Float64VarP(&combineEffects.Earthquake, "earthquake", "e", 0, "Effect of earthquake load")
	f.StringVarP(&combineUnit, "unit", "u", "kN·m", "Unit of the effects")

	f.BoolVarP(&combineAll, "all", "a", false, "Show all load combination results")
	f.BoolVarP(&combineGravity, "gravity", "g", false, "Use gravity combinations only (1.4D and 1.2D+1.6L)")
}

func runCombine(cmd *cobra.Command, args []string) error {
	if combineEffects.IsZero() {
		return errors.New("provide at least one unfactored effect, see 'gobeam combine --help'")
	}

	combinations := aci.LoadCombinations
	if combineGravity {
		combinations = aci.GravityCombinations
	}
	e := combineEffects
	out := cmd.OutOrStdout()

	banner(out, "ACI 318-19 FACTORED LOAD COMBINATIONS")

	heading(out, fmt.Sprintf("Unfactored effects (%s)", combineUnit))
	w := table(out)
	for _, v := range []struct {
		name  string
		value float64
	}{
		{"Dead Load (D)", e.Dead},
		{"Live Load (L)", e.Live},
		{"Roof Live Load (Lr)", e.Roof},
		{"Snow Load (S)", e.Snow},
		{"Rain Load (R)", e.Rain},
		{"Wind Load (W)", e.Wind},
		{"Earthquake Load (E)", e.Earthquake},
	} {
		if v.value != 0 {
			fmt.Fprintf(w, "  %s:\t%.2f\n", v.name, v.value)
		}
	}
	w.Flush()
	fmt.Fprintln(out)

	u, governing := aci.Governing(e, combinations)

	if combineAll {
		heading(out, "Load combinations (ACI 318-19 Table 5.3.1)")
		w = table(out)
		fmt.Fprintf(w, "  #\tCombination\tU (%s)\n", combineUnit)
		fmt.Fprintf(w, "  ─\t───────────\t─────────\n")
		for _, combo := range combinations {
			marker := ""
			if combo.ID == governing.ID {
				marker = " ← GOVERNS"
			}
			fmt.Fprintf(w, "  %s\t%s\t%.2f%s\n", combo.ID, combo.Description, combo.Factor(e), marker)
		}
		w.Flush()
		fmt.Fprintln(out)
	}

	heading(out, "Result")
	fmt.Fprintf(out, "  Governing Combination: %s (%s)\n\n", governing.ID, governing.Description)
	fmt.Fprintf(out, "  ╔═══════════════════════════════════╗\n")
	fmt.Fprintf(out, "  ║  FACTORED EFFECT U = %.2f %s\n", u, combineUnit)
	fmt.Fprintf(out, "  ╚═══════════════════════════════════╝\n\n")
	return nil
}
