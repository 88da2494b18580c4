// Package report writes analysis and design results as spreadsheets and
// printable documents.
package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gobeam/internal/project"
)

// Sheet names of the analysis workbook
const (
	SummarySheet   = "Summary"
	ReactionsSheet = "Reactions"
	DiagramSheet   = "Diagram"
)

var diagramHeader = []any{
	"x (m)", "V (kN)", "M (kN·m)", "T (kN·m)", "δ (mm)",
	"σ (MPa)", "τ (MPa)", "τt (MPa)", "σvm (MPa)",
}

// Workbook writes the results of an analysis snapshot to an xlsx file
func Workbook(path string, s *project.Snapshot) error {
	if s.Failed() || s.Reactions == nil {
		return fmt.Errorf("report: %q has no results: %s", s.Name, s.Error)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return err
	}
	for _, name := range []string{ReactionsSheet, DiagramSheet} {
		if _, err := f.NewSheet(name); err != nil {
			return err
		}
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	if err := writeSummary(f, s, bold); err != nil {
		return err
	}
	if err := writeReactions(f, s, bold); err != nil {
		return err
	}
	if err := writeDiagram(f, s); err != nil {
		return err
	}
	if err := addMomentChart(f, len(s.Diagram)); err != nil {
		return err
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func writeSummary(f *excelize.File, s *project.Snapshot, bold int) error {
	e := s.Extremes
	rows := [][]any{
		{"Project", s.Name},
		{"Length (m)", s.Geometry.Length},
		{"Section b x h (mm)", fmt.Sprintf("%g x %g", s.Geometry.Width, s.Geometry.Height)},
		{"Supports", fmt.Sprintf("%s @ %g m, %s @ %g m",
			s.Supports.Start.Type, s.Supports.Start.Position, s.Supports.End.Type, s.Supports.End.Position)},
		{"Loads", len(s.Loads)},
		{},
		{"Result", "Value", "Position (m)"},
	}
	if e != nil {
		rows = append(rows,
			[]any{"Max |V| (kN)", e.Shear.Value, e.Shear.Position},
			[]any{"Max M (kN·m)", e.MaxMoment.Value, e.MaxMoment.Position},
			[]any{"Min M (kN·m)", e.MinMoment.Value, e.MinMoment.Position},
			[]any{"Max |δ| (mm)", e.Deflection.Value, e.Deflection.Position},
			[]any{"Max σvm (MPa)", e.VonMises.Value, e.VonMises.Position},
		)
	}
	if err := writeRows(f, SummarySheet, rows); err != nil {
		return err
	}
	if err := f.SetColWidth(SummarySheet, "A", "A", 22); err != nil {
		return err
	}
	if err := f.SetCellStyle(SummarySheet, "A1", "A5", bold); err != nil {
		return err
	}
	return f.SetCellStyle(SummarySheet, "A7", "C7", bold)
}

func writeReactions(f *excelize.File, s *project.Snapshot, bold int) error {
	r := s.Reactions
	rows := [][]any{
		{"Support", "Type", "Position (m)", "Reaction (kN)", "Moment (kN·m)"},
		{"A", string(s.Supports.Start.Type), s.Supports.Start.Position, r.ReactionA, r.MomentA},
		{"B", string(s.Supports.End.Type), s.Supports.End.Position, r.ReactionB, r.MomentB},
	}
	if err := writeRows(f, ReactionsSheet, rows); err != nil {
		return err
	}
	return f.SetCellStyle(ReactionsSheet, "A1", "E1", bold)
}

func writeDiagram(f *excelize.File, s *project.Snapshot) error {
	sw, err := f.NewStreamWriter(DiagramSheet)
	if err != nil {
		return err
	}
	if err := sw.SetRow("A1", diagramHeader); err != nil {
		return err
	}
	for i, p := range s.Diagram {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		err = sw.SetRow(cell, []any{
			p.Position, p.Shear, p.Moment, p.Torsion, p.Deflection,
			p.NormalStress, p.ShearStress, p.TorsionalStress, p.VonMisesStress,
		})
		if err != nil {
			return err
		}
	}
	return sw.Flush()
}

func addMomentChart(f *excelize.File, n int) error {
	if n < 2 {
		return nil
	}
	last := n + 1
	series := func(col string) excelize.ChartSeries {
		return excelize.ChartSeries{
			Name:       fmt.Sprintf("%s!$%s$1", DiagramSheet, col),
			Categories: fmt.Sprintf("%s!$A$2:$A$%d", DiagramSheet, last),
			Values:     fmt.Sprintf("%s!$%s$2:$%s$%d", DiagramSheet, col, col, last),
		}
	}
	return f.AddChart(SummarySheet, "E2", &excelize.Chart{
		Type:   excelize.Line,
		Series: []excelize.ChartSeries{series("B"), series("C")},
		Title:  []excelize.RichTextRun{{Text: "Shear and moment"}},
	})
}
