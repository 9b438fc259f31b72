// Package models defines the progress-tracking data model shared by the
// store, the repositories and the CLI.
package models

import (
	"fmt"
	"math"
	"strings"

	"github.com/dmitrijs2005/gophfit/internal/common"
	"github.com/dmitrijs2005/gophfit/internal/timex"
)

// ProgressEntry is one recorded set of an exercise on a day.
type ProgressEntry struct {
	// ID is an opaque, unique identifier; it never changes after creation.
	ID string `json:"id"`

	// UserID owns the entry.
	UserID string `json:"userId"`

	ExerciseName string    `json:"exerciseName"`
	Date         timex.Day `json:"date"`

	// Weight in kilograms, >= 0.
	Weight float64 `json:"weight"`

	// Reps and Sets are both >= 1.
	Reps int `json:"reps"`
	Sets int `json:"sets"`

	// Notes is optional free text; nil means absent.
	Notes *string `json:"notes,omitempty"`
}

// Volume is weight × reps × sets.
func (e ProgressEntry) Volume() float64 {
	return e.Weight * float64(e.Reps) * float64(e.Sets)
}

// NoteText returns the note or "" when absent.
func (e ProgressEntry) NoteText() string {
	if e.Notes == nil {
		return ""
	}
	return *e.Notes
}

// Validate checks the invariants of a well-formed entry. Errors wrap
// common.ErrValidation.
func (e ProgressEntry) Validate() error {
	switch {
	case strings.TrimSpace(e.ID) == "":
		return fmt.Errorf("%w: entry id is required", common.ErrValidation)
	case strings.TrimSpace(e.ExerciseName) == "":
		return fmt.Errorf("%w: exercise name is required", common.ErrValidation)
	case e.Date.IsZero():
		return fmt.Errorf("%w: date is required", common.ErrValidation)
	case math.IsNaN(e.Weight) || e.Weight < 0:
		return fmt.Errorf("%w: weight must be >= 0, got %v", common.ErrValidation, e.Weight)
	case e.Reps < 1:
		return fmt.Errorf("%w: reps must be >= 1, got %d", common.ErrValidation, e.Reps)
	case e.Sets < 1:
		return fmt.Errorf("%w: sets must be >= 1, got %d", common.ErrValidation, e.Sets)
	}
	return nil
}

// Note is a helper for building optional notes.
func Note(s string) *string {
	return &s
}
