package report

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/design"
	"github.com/alexiusacademia/gobeam/internal/project"
)

func snapshot(tst *testing.T) *project.Snapshot {
	b, err := beam.New(
		beam.Geometry{Length: 6, Height: 500, Width: 300},
		beam.Material{ElasticModulus: 25000, ShearModulus: 10400},
		beam.Support{Type: beam.Pin, Position: 0},
		beam.Support{Type: beam.Roller, Position: 6},
		beam.PointLoad{Position: 3, Magnitude: 10},
	)
	if err != nil {
		tst.Fatal(err)
	}
	a, err := beam.Analyze(b, beam.Options{Stations: 20})
	if err != nil {
		tst.Fatal(err)
	}
	return project.NewSnapshot(project.FromBeam("B-1", b), a, nil, project.DefaultDisplay, time.Now())
}

func Test_workbook01(tst *testing.T) {
	chk.PrintTitle("workbook01. analysis workbook")

	path := filepath.Join(tst.TempDir(), "b1.xlsx")
	if err := Workbook(path, snapshot(tst)); err != nil {
		tst.Errorf("Workbook failed:\n%v", err)
		return
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		tst.Errorf("cannot reopen workbook:\n%v", err)
		return
	}
	defer f.Close()

	rows, err := f.GetRows(DiagramSheet)
	if err != nil {
		tst.Errorf("GetRows failed:\n%v", err)
		return
	}
	chk.Int(tst, "diagram rows", len(rows), 22)

	ra, _ := f.GetCellValue(ReactionsSheet, "D2")
	v, err := strconv.ParseFloat(ra, 64)
	if err != nil {
		tst.Errorf("reaction cell %q: %v", ra, err)
		return
	}
	chk.Float64(tst, "RA", 1e-9, v, 5)

	// midspan moment PL/4
	m, _ := f.GetCellValue(DiagramSheet, "C12")
	v, _ = strconv.ParseFloat(m, 64)
	chk.Float64(tst, "M mid", 1e-9, v, 15)

	failed := project.NewSnapshot(&project.Project{Name: "x"}, nil, errors.New("boom"), project.DefaultDisplay, time.Now())
	if err = Workbook(filepath.Join(tst.TempDir(), "x.xlsx"), failed); err == nil {
		tst.Errorf("failed snapshot exported")
	}
}

func Test_pdf01(tst *testing.T) {
	chk.PrintTitle("pdf01. design report")

	r, err := design.Design(design.Input{
		Fc:              28,
		Fy:              420,
		Width:           300,
		Height:          500,
		Cover:           40,
		StirrupDiameter: 10,
		BarDiameter:     20,
		Mu:              150,
		Vu:              120,
		Tu:              10,
	})
	if err != nil {
		tst.Errorf("Design failed:\n%v", err)
		return
	}
	path := filepath.Join(tst.TempDir(), "design.pdf")
	if err = DesignReport(path, Header{Project: "B-1", Author: "QA"}, r, ""); err != nil {
		tst.Errorf("DesignReport failed:\n%v", err)
		return
	}
	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 {
		tst.Errorf("report not written: %v", err)
	}
}
