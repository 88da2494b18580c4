package project

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gobeam/internal/beam"
)

// ImportLoads reads loads from the first sheet of an xlsx file. The first
// row is a header; the columns are type, position, magnitude, length and
// direction. Blank rows are skipped.
func ImportLoads(path string) ([]LoadSpec, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("project: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("project: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("project: %s: no load rows", path)
	}

	var loads []LoadSpec
	for i, row := range rows[1:] {
		if len(row) == 0 || strings.TrimSpace(strings.Join(row, "")) == "" {
			continue
		}
		s, err := parseLoadRow(row)
		if err != nil {
			return nil, fmt.Errorf("project: %s row %d: %w", path, i+2, err)
		}
		loads = append(loads, s)
	}
	return loads, nil
}

func parseLoadRow(row []string) (LoadSpec, error) {
	if len(row) < 3 {
		return LoadSpec{}, fmt.Errorf("expected type, position and magnitude")
	}
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}
	num := func(i int, name string) (float64, error) {
		if cell(i) == "" {
			return 0, nil
		}
		v, err := strconv.ParseFloat(cell(i), 64)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", name, err)
		}
		return v, nil
	}

	s := LoadSpec{
		Type:      beam.LoadKind(strings.ToLower(cell(0))),
		Direction: beam.Direction(strings.ToLower(cell(4))),
	}
	var err error
	if s.Position, err = num(1, "position"); err != nil {
		return s, err
	}
	if s.Magnitude, err = num(2, "magnitude"); err != nil {
		return s, err
	}
	if s.Length, err = num(3, "length"); err != nil {
		return s, err
	}
	if _, err = s.ToLoad(); err != nil {
		return s, err
	}
	return s, nil
}
