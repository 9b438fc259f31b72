package models

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gophfit/internal/common"
	"github.com/dmitrijs2005/gophfit/internal/timex"
)

func validEntry() ProgressEntry {
	return ProgressEntry{
		ID:           "e1",
		UserID:       "u1",
		ExerciseName: "Bench Press",
		Date:         timex.MustParseDay("2024-05-01"),
		Weight:       80,
		Reps:         10,
		Sets:         4,
	}
}

func TestProgressEntry_Volume(t *testing.T) {
	assert.Equal(t, 3200.0, validEntry().Volume())

	e := validEntry()
	e.Weight = 0
	assert.Equal(t, 0.0, e.Volume())
}

func TestProgressEntry_NoteText(t *testing.T) {
	e := validEntry()
	assert.Equal(t, "", e.NoteText())

	e.Notes = Note("felt strong")
	assert.Equal(t, "felt strong", e.NoteText())
}

func TestProgressEntry_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(e *ProgressEntry)
		wantErr string
	}{
		{"valid", func(e *ProgressEntry) {}, ""},
		{"zero weight ok", func(e *ProgressEntry) { e.Weight = 0 }, ""},
		{"missing id", func(e *ProgressEntry) { e.ID = " " }, "entry id"},
		{"blank exercise", func(e *ProgressEntry) { e.ExerciseName = "  " }, "exercise name"},
		{"no date", func(e *ProgressEntry) { e.Date = timex.Day{} }, "date"},
		{"negative weight", func(e *ProgressEntry) { e.Weight = -1 }, "weight"},
		{"NaN weight", func(e *ProgressEntry) { e.Weight = math.NaN() }, "weight"},
		{"zero reps", func(e *ProgressEntry) { e.Reps = 0 }, "reps"},
		{"zero sets", func(e *ProgressEntry) { e.Sets = 0 }, "sets"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validEntry()
			tt.mutate(&e)
			err := e.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, common.ErrValidation))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestEmptyDefaults(t *testing.T) {
	day := timex.MustParseDay("2024-05-01")

	n := EmptyNutrientSnapshot(day)
	assert.True(t, n.Date.Equal(day))
	assert.Equal(t, float64(DefaultCalorieGoal), n.CalorieGoal)
	assert.Zero(t, n.Calories)

	s := EmptyStrengthSeries("Squat")
	assert.Equal(t, "Squat", s.ExerciseName)
	assert.NotNil(t, s.Points)
	assert.Empty(t, s.Points)
}
