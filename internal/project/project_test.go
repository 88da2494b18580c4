package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cpmech/gosl/chk"

	"github.com/alexiusacademia/gobeam/internal/beam"
)

const sample = `{
  "name": "B-1",
  "geometry": {"length": 6, "height": 500, "width": 300},
  "material": {"elastic_modulus": 25000, "shear_modulus": 10400},
  "supports": {
    "start": {"type": "pin", "position": 0},
    "end": {"type": "roller", "position": 6}
  },
  "loads": [
    {"type": "point", "position": 3, "magnitude": 10},
    {"type": "distributed", "position": 1, "length": 2, "magnitude": 4},
    {"type": "moment", "position": 4, "magnitude": 5},
    {"type": "torsion", "position": 2, "magnitude": 1.5, "direction": "anticlockwise"}
  ]
}`

func write(tst *testing.T, name, text string) string {
	path := filepath.Join(tst.TempDir(), name)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		tst.Fatal(err)
	}
	return path
}

func Test_project01(tst *testing.T) {
	chk.PrintTitle("project01. read project and build beam")

	p, err := Open(write(tst, "b1.json", sample))
	if err != nil {
		tst.Errorf("Open failed:\n%v", err)
		return
	}
	b, err := p.Beam()
	if err != nil {
		tst.Errorf("Beam failed:\n%v", err)
		return
	}
	chk.Int(tst, "loads", len(b.Loads), 4)

	m, ok := b.Loads[2].(beam.MomentLoad)
	if !ok || m.Direction != beam.Clockwise {
		tst.Errorf("moment load should default to clockwise, got %#v", b.Loads[2])
	}
	t, ok := b.Loads[3].(beam.TorsionLoad)
	if !ok || t.Direction != beam.Anticlockwise {
		tst.Errorf("torsion load direction lost, got %#v", b.Loads[3])
	}

	// write back and read again
	out := filepath.Join(tst.TempDir(), "copy.json")
	if err = FromBeam(p.Name, b).Save(out); err != nil {
		tst.Errorf("Save failed:\n%v", err)
		return
	}
	q, err := Open(out)
	if err != nil {
		tst.Errorf("Open failed:\n%v", err)
		return
	}
	b2, err := q.Beam()
	if err != nil {
		tst.Errorf("Beam failed:\n%v", err)
		return
	}
	for i := range b.Loads {
		if b.Loads[i] != b2.Loads[i] {
			tst.Errorf("load %d: %v != %v", i, b.Loads[i], b2.Loads[i])
		}
	}
}

func Test_project02(tst *testing.T) {
	chk.PrintTitle("project02. invalid projects")

	p, _ := Open(write(tst, "b1.json", sample))
	p.Loads = append(p.Loads, LoadSpec{Type: "snow", Position: 1, Magnitude: 1})
	if _, err := p.Beam(); err == nil {
		tst.Errorf("unknown load type accepted")
	}

	p, _ = Open(write(tst, "b1.json", sample))
	p.Loads[0].Position = 7
	_, err := p.Beam()
	var verr *beam.ValidationError
	if !errors.As(err, &verr) || verr.Field != "loads[0].position" {
		tst.Errorf("expected validation error on loads[0].position, got %v", err)
	}

	p, _ = Open(write(tst, "b1.json", sample))
	p.UDLMode = "approximate"
	if _, err = p.Beam(); err == nil {
		tst.Errorf("unknown udl mode accepted")
	}

	if _, err = Open(write(tst, "bad.json", "{")); err == nil {
		tst.Errorf("malformed json accepted")
	}
}

func Test_project03(tst *testing.T) {
	chk.PrintTitle("project03. snapshots")

	p, _ := Open(write(tst, "b1.json", sample))
	b, _ := p.Beam()
	a, err := beam.Analyze(b, beam.Options{Stations: 10})
	if err != nil {
		tst.Errorf("Analyze failed:\n%v", err)
		return
	}

	t0 := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	path := filepath.Join(tst.TempDir(), "snap.json")
	s := NewSnapshot(p, a, nil, DefaultDisplay, t0)
	if err = s.Save(path); err != nil {
		tst.Errorf("Save failed:\n%v", err)
		return
	}

	got, err := ReadSnapshot(path)
	if err != nil {
		tst.Errorf("ReadSnapshot failed:\n%v", err)
		return
	}
	if got.Failed() || got.Reactions == nil {
		tst.Errorf("expected ok snapshot with reactions, got status %q", got.Status)
		return
	}
	chk.Int(tst, "stations", len(got.Diagram), 11)
	chk.Float64(tst, "RA", 1e-12, got.Reactions.ReactionA, a.Reactions.ReactionA)

	// a failed re-run keeps the creation time and drops the results
	t1 := t0.Add(time.Hour)
	f := NewSnapshot(p, nil, errors.New("deflection: singular"), DefaultDisplay, t1)
	if err = f.Save(path); err != nil {
		tst.Errorf("Save failed:\n%v", err)
		return
	}
	got, _ = ReadSnapshot(path)
	if !got.Failed() || got.Error == "" || got.Reactions != nil || len(got.Diagram) != 0 {
		tst.Errorf("failed snapshot carries results: %+v", got)
	}
	if !got.CreatedAt.Equal(t0) || !got.UpdatedAt.Equal(t1) {
		tst.Errorf("timestamps: created %v updated %v", got.CreatedAt, got.UpdatedAt)
	}
}
