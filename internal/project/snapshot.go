package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/design"
)

// Status of a snapshot
type Status string

const (
	StatusOK     Status = "ok"
	StatusFailed Status = "failed"
)

// Display selects the diagrams shown for the project
type Display struct {
	Shear      bool `json:"shear"`
	Moment     bool `json:"moment"`
	Torsion    bool `json:"torsion"`
	Deflection bool `json:"deflection"`
	Stress     bool `json:"stress"`
}

// DefaultDisplay shows shear, moment and deflection
var DefaultDisplay = Display{Shear: true, Moment: true, Deflection: true}

// Snapshot is a project together with its computed results. A failed
// analysis keeps the error and carries no results.
type Snapshot struct {
	Project

	Status    Status              `json:"status"`
	Error     string              `json:"error,omitempty"`
	Reactions *beam.Reactions     `json:"reactions,omitempty"`
	Extremes  *beam.Extremes      `json:"extremes,omitempty"`
	Diagram   []beam.DiagramPoint `json:"diagram,omitempty"`
	Design    *design.Result      `json:"design,omitempty"`

	Display   Display   `json:"display"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewSnapshot records the outcome of analysing p. When err is non-nil the
// snapshot is marked failed and a is ignored.
func NewSnapshot(p *Project, a *beam.Analysis, err error, display Display, now time.Time) *Snapshot {
	s := &Snapshot{
		Project:   *p,
		Display:   display,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err != nil {
		s.Status = StatusFailed
		s.Error = err.Error()
		return s
	}
	s.Status = StatusOK
	r := a.Reactions
	e := a.Extremes()
	s.Reactions = &r
	s.Extremes = &e
	s.Diagram = a.Diagram()
	return s
}

// Failed reports whether the analysis failed
func (s *Snapshot) Failed() bool { return s.Status == StatusFailed }

// ReadSnapshot reads a snapshot file
func ReadSnapshot(path string) (*Snapshot, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	var s Snapshot
	if err := json.Unmarshal(buf, &s); err != nil {
		return nil, fmt.Errorf("snapshot: %s: %w", path, err)
	}
	return &s, nil
}

// Save writes the snapshot. An existing snapshot at path keeps its
// creation time.
func (s *Snapshot) Save(path string) error {
	prev, err := ReadSnapshot(path)
	switch {
	case err == nil && !prev.CreatedAt.IsZero():
		s.CreatedAt = prev.CreatedAt
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return err
	}
	if err := writeJSON(path, s); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	return nil
}
