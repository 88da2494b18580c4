package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/design"
	"github.com/alexiusacademia/gobeam/internal/diagram"
	"github.com/alexiusacademia/gobeam/internal/project"
	"github.com/alexiusacademia/gobeam/internal/report"
)

var (
	analyzeFile     string
	analyzeLoads    string
	analyzeStations int
	analyzeElements int

	analyzeGraph  bool
	analyzeShow   []string
	analyzeOutput string
	analyzeXLSX   string
	analyzeSave   string
	analyzeDesign bool
	analyzeJSON   bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a beam described in a project file",
	Long: `Compute the support reactions, shear, moment, torsion, deflection and
stress diagrams of a single-span beam.

The beam is defined in a JSON project file:
{
  "name": "B-1",
  "geometry": {"length": 6, "height": 500, "width": 300},
  "material": {"elastic_modulus": 25000, "shear_modulus": 10400},
  "supports": {
    "start": {"type": "pin", "position": 0},
    "end": {"type": "roller", "position": 6}
  },
  "loads": [
    {"type": "point", "position": 3, "magnitude": 20},
    {"type": "distributed", "position": 0, "length": 6, "magnitude": 5},
    {"type": "moment", "position": 4, "magnitude": 10, "direction": "clockwise"},
    {"type": "torsion", "position": 2, "magnitude": 2}
  ]
}

Support types are pin, roller, fixed and free. Positions are in m, section
sizes in mm, forces in kN and moduli in MPa.

Examples:
  gobeam analyze -f b1.json --graph
  gobeam analyze -f b1.json -o b1.svg --xlsx b1.xlsx --save b1.snapshot.json
  gobeam analyze -f b1.json --loads extra.xlsx --design`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	f := analyzeCmd.Flags()
	f.StringVarP(&analyzeFile, "file", "f", "", "Project file (JSON) [required]")
	f.StringVar(&analyzeLoads, "loads", "", "Additional loads from an xlsx sheet (type, position, magnitude, length, direction)")
	f.IntVar(&analyzeStations, "stations", 0, "Diagram intervals (default from config, 100)")
	f.IntVar(&analyzeElements, "elements", 0, "Finite elements for deflection (default from config, 50)")

	f.BoolVar(&analyzeGraph, "graph", false, "Plot diagrams in the terminal")
	f.StringSliceVar(&analyzeShow, "show", []string{"shear", "moment", "deflection"},
		"Diagrams to show: shear, moment, torsion, deflection, stress")
	f.StringVarP(&analyzeOutput, "output", "o", "", "Export diagrams to file (png, svg, pdf)")
	f.StringVar(&analyzeXLSX, "xlsx", "", "Export results to an xlsx workbook")
	f.StringVar(&analyzeSave, "save", "", "Save a JSON snapshot of the project and its results")
	f.BoolVar(&analyzeDesign, "design", false, "Design the section in the project's reinforcement block for the peak effects")
	f.BoolVar(&analyzeJSON, "json", false, "Print the snapshot as JSON instead of tables")

	analyzeCmd.MarkFlagRequired("file")
}

func parseShow(names []string) ([]diagram.Quantity, project.Display, error) {
	var qs []diagram.Quantity
	var d project.Display
	for _, n := range names {
		q := diagram.Quantity(strings.ToLower(strings.TrimSpace(n)))
		if !slices.Contains(diagram.Quantities, q) {
			return nil, d, fmt.Errorf("unknown diagram %q", n)
		}
		switch q {
		case diagram.Shear:
			d.Shear = true
		case diagram.Moment:
			d.Moment = true
		case diagram.Torsion:
			d.Torsion = true
		case diagram.Deflection:
			d.Deflection = true
		case diagram.Stress:
			d.Stress = true
		}
		qs = append(qs, q)
	}
	return qs, d, nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	qs, display, err := parseShow(analyzeShow)
	if err != nil {
		return err
	}

	p, err := project.Open(analyzeFile)
	if err != nil {
		return err
	}
	if analyzeLoads != "" {
		extra, err := project.ImportLoads(analyzeLoads)
		if err != nil {
			return err
		}
		slog.Debug("loads imported", "file", analyzeLoads, "count", len(extra))
		p.Loads = append(p.Loads, extra...)
	}

	opts := cfg.AnalysisOptions()
	if analyzeStations > 0 {
		opts.Stations = analyzeStations
	}
	if analyzeElements > 0 {
		opts.Elements = analyzeElements
	}

	var a *beam.Analysis
	b, err := p.Beam()
	if err == nil {
		start := time.Now()
		a, err = beam.Analyze(b, opts)
		slog.Debug("analysis finished", "project", p.Name, "elements", opts.Elements,
			"stations", opts.Stations, "elapsed", time.Since(start))
	}
	snap := project.NewSnapshot(p, a, err, display, time.Now())
	if err != nil {
		if !analyzeJSON {
			failed(out, "analysis", err)
		}
		return finishAnalysis(out, snap, qs, fmt.Errorf("analysis of %q failed: %w", p.Name, err))
	}

	var designErr error
	if analyzeDesign {
		snap.Design, designErr = designForPeaks(p, snap)
	}

	if !analyzeJSON {
		printAnalysis(out, b, a, snap)
		if analyzeGraph {
			printGraphs(out, snap.Diagram, qs)
		}
		if designErr != nil {
			failed(out, "design", designErr)
		} else if snap.Design != nil {
			printDesignSummary(out, snap.Design)
		}
	}
	return finishAnalysis(out, snap, qs, designErr)
}

// designForPeaks designs the project's section, taking unset demands from
// the analysis extremes
func designForPeaks(p *project.Project, snap *project.Snapshot) (*design.Result, error) {
	if p.Reinforcement == nil {
		return nil, fmt.Errorf("project %q has no reinforcement block", p.Name)
	}
	in := cfg.ApplyDesign(*p.Reinforcement)
	e := snap.Extremes
	if in.Mu == 0 {
		in.Mu = math.Max(math.Abs(e.MaxMoment.Value), math.Abs(e.MinMoment.Value))
	}
	if in.Vu == 0 {
		in.Vu = math.Abs(e.Shear.Value)
	}
	if in.Tu == 0 {
		for _, pt := range snap.Diagram {
			in.Tu = math.Max(in.Tu, math.Abs(pt.Torsion))
		}
	}
	if in.Width == 0 {
		in.Width = p.Geometry.Width
	}
	if in.Height == 0 {
		in.Height = p.Geometry.Height
	}
	slog.Debug("design demands", "mu", in.Mu, "vu", in.Vu, "tu", in.Tu)
	return design.Design(in)
}

// finishAnalysis writes the requested files and passes err through
func finishAnalysis(out io.Writer, snap *project.Snapshot, qs []diagram.Quantity, err error) error {
	if analyzeJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if jerr := enc.Encode(snap); jerr != nil {
			return jerr
		}
	}
	if analyzeSave != "" {
		if serr := snap.Save(analyzeSave); serr != nil {
			return serr
		}
		slog.Info("snapshot saved", "file", analyzeSave, "status", snap.Status)
	}
	if snap.Failed() {
		return err
	}
	if analyzeOutput != "" {
		name, xerr := diagram.ExportBeamDiagrams(snap.Diagram, qs, analyzeOutput)
		if xerr != nil {
			return fmt.Errorf("exporting diagrams: %w", xerr)
		}
		if !analyzeJSON {
			fmt.Fprintf(out, "Diagrams exported to: %s\n", name)
		}
	}
	if analyzeXLSX != "" {
		if xerr := report.Workbook(analyzeXLSX, snap); xerr != nil {
			return xerr
		}
		if !analyzeJSON {
			fmt.Fprintf(out, "Workbook exported to: %s\n", analyzeXLSX)
		}
	}
	return err
}

func printAnalysis(out io.Writer, b *beam.Beam, a *beam.Analysis, snap *project.Snapshot) {
	title := "BEAM ANALYSIS"
	if snap.Name != "" {
		title += " - " + snap.Name
	}
	banner(out, title)

	heading(out, "Input data")
	w := table(out)
	fmt.Fprintf(w, "  Length:\t%g m\n", b.Length)
	fmt.Fprintf(w, "  Section (b x h):\t%g x %g mm\n", b.Width, b.Height)
	fmt.Fprintf(w, "  E / G:\t%g / %g MPa\n", b.Material.ElasticModulus, b.Material.ShearModulus)
	fmt.Fprintf(w, "  Support A:\t%s @ %g m\n", b.Start.Type, b.Start.Position)
	fmt.Fprintf(w, "  Support B:\t%s @ %g m\n", b.End.Type, b.End.Position)
	for i, l := range b.Loads {
		fmt.Fprintf(w, "  Load %d:\t%v\n", i+1, l)
	}
	w.Flush()
	fmt.Fprintln(out)

	r := a.Reactions
	heading(out, "Reactions")
	w = table(out)
	fmt.Fprintf(w, "  Support\tReaction (kN)\tMoment (kN·m)\n")
	fmt.Fprintf(w, "  ───────\t─────────────\t─────────────\n")
	fmt.Fprintf(w, "  A\t%.3f\t%.3f\n", r.ReactionA, r.MomentA)
	fmt.Fprintf(w, "  B\t%.3f\t%.3f\n", r.ReactionB, r.MomentB)
	w.Flush()
	force, moment := b.Equilibrium(r)
	fmt.Fprintf(out, "  Equilibrium residual: ΣF = %.2e kN, ΣM = %.2e kN·m %s\n\n",
		force, moment, check(math.Abs(force) < 1e-6 && math.Abs(moment) < 1e-6))

	e := snap.Extremes
	heading(out, "Extremes")
	w = table(out)
	fmt.Fprintf(w, "  Max |V|:\t%.3f kN\t@ %.3f m\n", e.Shear.Value, e.Shear.Position)
	fmt.Fprintf(w, "  Max M:\t%.3f kN·m\t@ %.3f m\n", e.MaxMoment.Value, e.MaxMoment.Position)
	fmt.Fprintf(w, "  Min M:\t%.3f kN·m\t@ %.3f m\n", e.MinMoment.Value, e.MinMoment.Position)
	fmt.Fprintf(w, "  Max |δ|:\t%.3f mm\t@ %.3f m\n", e.Deflection.Value, e.Deflection.Position)
	fmt.Fprintf(w, "  Max σvm:\t%.3f MPa\t@ %.3f m\n", e.VonMises.Value, e.VonMises.Position)
	w.Flush()
	fmt.Fprintln(out)
}

func printGraphs(out io.Writer, pts []beam.DiagramPoint, qs []diagram.Quantity) {
	for _, q := range qs {
		heading(out, string(q)+" diagram")
		fmt.Fprintln(out, diagram.Graph(pts, q, 70, 12))
		fmt.Fprintln(out)
	}
}

func printDesignSummary(out io.Writer, r *design.Result) {
	lines := []string{
		fmt.Sprintf("Mu = %.2f kN·m, Vu = %.2f kN, Tu = %.2f kN·m", r.Input.Mu, r.Input.Vu, r.Input.Tu),
		fmt.Sprintf("As required = %.0f mm²", r.AsRequired()),
		fmt.Sprintf("Tension bars: %s (%.0f mm²)", r.Bars, r.AsProvided()),
	}
	if r.Compression != nil {
		lines = append(lines, fmt.Sprintf("Compression bars: %s", r.Compression))
	}
	if s := stirrupSpacing(r); s > 0 {
		lines = append(lines, fmt.Sprintf("Stirrups: Ø%g @ %.0f mm", r.Input.StirrupDiameter, s))
	} else {
		lines = append(lines, "Stirrups: not required")
	}
	lines = append(lines, fmt.Sprintf("φMn = %.2f kN·m %s", r.Capacity.PhiMn, check(r.Adequate())))
	fmt.Fprint(out, diagram.SummaryBox("SECTION DESIGN", lines))
	fmt.Fprintln(out)
}

// stirrupSpacing is the governing spacing of shear and torsion
func stirrupSpacing(r *design.Result) float64 {
	if r.Torsion != nil && !r.Torsion.Neglectable {
		return r.Torsion.CombinedSpacing
	}
	return r.Shear.Spacing
}
