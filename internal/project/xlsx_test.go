package project

import (
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gobeam/internal/beam"
)

func sheet(tst *testing.T, rows [][]any) string {
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			tst.Fatal(err)
		}
	}
	path := filepath.Join(tst.TempDir(), "loads.xlsx")
	if err := f.SaveAs(path); err != nil {
		tst.Fatal(err)
	}
	return path
}

func Test_xlsx01(tst *testing.T) {
	chk.PrintTitle("xlsx01. import loads")

	path := sheet(tst, [][]any{
		{"type", "position", "magnitude", "length", "direction"},
		{"Point", 3, 10},
		{},
		{"distributed", 0, 5, 6},
		{"moment", 2, 4, "", "anticlockwise"},
	})
	loads, err := ImportLoads(path)
	if err != nil {
		tst.Errorf("ImportLoads failed:\n%v", err)
		return
	}
	chk.Int(tst, "loads", len(loads), 3)
	if loads[0].Type != beam.PointKind || loads[2].Direction != beam.Anticlockwise {
		tst.Errorf("unexpected loads %+v", loads)
	}
	chk.Float64(tst, "length", 1e-15, loads[1].Length, 6)

	bad := sheet(tst, [][]any{
		{"type", "position", "magnitude"},
		{"point", "three", 10},
	})
	if _, err = ImportLoads(bad); err == nil {
		tst.Errorf("non-numeric position accepted")
	}
}
