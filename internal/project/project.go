// Package project reads beam projects and writes analysis snapshots as JSON.
package project

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/design"
)

// LoadSpec is the tagged file form of a beam.Load
type LoadSpec struct {
	Type      beam.LoadKind  `json:"type"`
	Position  float64        `json:"position"`
	Magnitude float64        `json:"magnitude"`
	Length    float64        `json:"length,omitempty"`    // distributed only
	Direction beam.Direction `json:"direction,omitempty"` // moment and torsion, clockwise when empty
}

// Supports holds both supports
type Supports struct {
	Start beam.Support `json:"start"`
	End   beam.Support `json:"end"`
}

// Project is a beam with its loads and, optionally, the section design
// input
type Project struct {
	Name     string        `json:"name"`
	Geometry beam.Geometry `json:"geometry"`
	Material beam.Material `json:"material"`
	Supports Supports      `json:"supports"`
	Loads    []LoadSpec    `json:"loads"`

	// UDLMode is "exact" (default) or "centroid"
	UDLMode string `json:"udl_mode,omitempty"`

	Reinforcement *design.Input `json:"reinforcement,omitempty"`
}

// ToLoad converts the file entry to its beam.Load
func (s LoadSpec) ToLoad() (beam.Load, error) {
	dir := s.Direction
	if dir == "" {
		dir = beam.Clockwise
	}
	switch s.Type {
	case beam.PointKind:
		return beam.PointLoad{Position: s.Position, Magnitude: s.Magnitude}, nil
	case beam.DistributedKind:
		return beam.DistributedLoad{Position: s.Position, Length: s.Length, Magnitude: s.Magnitude}, nil
	case beam.MomentKind:
		return beam.MomentLoad{Position: s.Position, Magnitude: s.Magnitude, Direction: dir}, nil
	case beam.TorsionKind:
		return beam.TorsionLoad{Position: s.Position, Magnitude: s.Magnitude, Direction: dir}, nil
	}
	return nil, fmt.Errorf("unknown load type %q", s.Type)
}

// Spec converts a beam.Load to its file form
func Spec(l beam.Load) LoadSpec {
	switch l := l.(type) {
	case beam.PointLoad:
		return LoadSpec{Type: beam.PointKind, Position: l.Position, Magnitude: l.Magnitude}
	case beam.DistributedLoad:
		return LoadSpec{Type: beam.DistributedKind, Position: l.Position, Length: l.Length, Magnitude: l.Magnitude}
	case beam.MomentLoad:
		return LoadSpec{Type: beam.MomentKind, Position: l.Position, Magnitude: l.Magnitude, Direction: l.Direction}
	case beam.TorsionLoad:
		return LoadSpec{Type: beam.TorsionKind, Position: l.Position, Magnitude: l.Magnitude, Direction: l.Direction}
	}
	return LoadSpec{}
}

// FromBeam builds a project from a beam
func FromBeam(name string, b *beam.Beam) *Project {
	p := &Project{
		Name:     name,
		Geometry: b.Geometry,
		Material: b.Material,
		Supports: Supports{Start: b.Start, End: b.End},
	}
	for _, l := range b.Loads {
		p.Loads = append(p.Loads, Spec(l))
	}
	if b.UDLMode == beam.CentroidUDL {
		p.UDLMode = "centroid"
	}
	return p
}

// Beam builds and validates the beam described by the project
func (p *Project) Beam() (*beam.Beam, error) {
	loads := make([]beam.Load, 0, len(p.Loads))
	for i, s := range p.Loads {
		l, err := s.ToLoad()
		if err != nil {
			return nil, fmt.Errorf("project: loads[%d]: %w", i, err)
		}
		loads = append(loads, l)
	}
	b, err := beam.New(p.Geometry, p.Material, p.Supports.Start, p.Supports.End, loads...)
	if err != nil {
		return nil, err
	}
	switch p.UDLMode {
	case "", "exact":
	case "centroid":
		b.UDLMode = beam.CentroidUDL
	default:
		return nil, fmt.Errorf("project: unknown udl_mode %q", p.UDLMode)
	}
	return b, nil
}

// Open reads a project file
func Open(path string) (*Project, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("project: %w", err)
	}
	var p Project
	if err := json.Unmarshal(buf, &p); err != nil {
		return nil, fmt.Errorf("project: %s: %w", path, err)
	}
	return &p, nil
}

func writeJSON(path string, v any) error {
	buf, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(buf, '\n'), 0o644)
}

// Save writes the project file
func (p *Project) Save(path string) error {
	if err := writeJSON(path, p); err != nil {
		return fmt.Errorf("project: %w", err)
	}
	return nil
}
