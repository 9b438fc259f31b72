package progress

import (
	"context"
	"errors"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/gophfit/internal/common"
	"github.com/dmitrijs2005/gophfit/internal/timex"
	"github.com/dmitrijs2005/gophfit/internal/tracker/models"
)

// MissingIdentityMessage is stored in the error cell when an operation that
// needs a user id is called without one.
const MissingIdentityMessage = "user id is required"

// Load fetches the entries, the nutrient snapshot for the day and the
// exercise names for userID, then commits all three together. A nil date
// keeps the current date.
func (s *Store) Load(ctx context.Context, userID string, date *timex.Day) {
	if !s.requireIdentity(ctx, userID) {
		return
	}

	s.mu.Lock()
	if date != nil && !date.IsZero() {
		s.st.currentDate = *date
	}
	day := s.st.currentDate
	s.st.userID = userID
	s.st.loading = true
	s.st.err = ""
	s.commitLocked(ChangeDate | ChangeStatus)
	s.mu.Unlock()

	var (
		entries   []models.ProgressEntry
		nutrients models.NutrientSnapshot
		exercises []string
	)

	// Each fetch recovers into its own default, so Wait never reports an error.
	var g errgroup.Group
	g.Go(func() error {
		entries = s.fetchEntries(ctx, userID)
		return nil
	})
	g.Go(func() error {
		nutrients = s.fetchNutrients(ctx, userID, day)
		return nil
	})
	g.Go(func() error {
		exercises = s.fetchExercises(ctx, userID)
		return nil
	})
	_ = g.Wait()

	s.mu.Lock()
	s.st.entries = entries
	s.st.nutrients = &nutrients
	s.st.exercises = exercises
	s.st.currentPage = 1
	s.st.loading = false
	s.commitLocked(ChangeEntries | ChangeNutrients | ChangeExercises | ChangePage | ChangeStatus)
	s.mu.Unlock()

	s.log.Debug(ctx, "progress loaded",
		"user_id", userID,
		"date", day.String(),
		"entries", len(entries),
		"exercises", len(exercises),
	)
}

// Refresh reloads userID's data for the current date.
func (s *Store) Refresh(ctx context.Context, userID string) {
	day := s.CurrentDate()
	s.Load(ctx, userID, &day)
}

// SetDate changes the current date without loading.
func (s *Store) SetDate(day timex.Day) {
	if day.IsZero() {
		return
	}
	s.mu.Lock()
	s.st.currentDate = day
	s.commitLocked(ChangeDate)
	s.mu.Unlock()
}

// PreviousDay moves the current date back one day and loads it.
func (s *Store) PreviousDay(ctx context.Context, userID string) {
	day := s.CurrentDate().AddDays(-1)
	s.Load(ctx, userID, &day)
}

// NextDay moves the current date forward one day and loads it.
func (s *Store) NextDay(ctx context.Context, userID string) {
	day := s.CurrentDate().AddDays(1)
	s.Load(ctx, userID, &day)
}

// LoadStrengthProgress selects exercise and fetches its strength series. On
// failure the series is empty for that exercise.
func (s *Store) LoadStrengthProgress(ctx context.Context, userID, exercise string) {
	if !s.requireIdentity(ctx, userID) {
		return
	}

	s.mu.Lock()
	name := exercise
	s.st.selectedExercise = &name
	s.st.loading = true
	s.commitLocked(ChangeSelection | ChangeStatus)
	s.mu.Unlock()

	series, err := s.source.FetchStrengthSeries(ctx, userID, exercise)
	if err != nil {
		s.logFetchError(ctx, "strength series", userID, err)
		series = models.EmptyStrengthSeries(exercise)
	}
	if series.Points == nil {
		series.Points = []models.StrengthPoint{}
	}
	if series.ExerciseName == "" {
		series.ExerciseName = exercise
	}

	s.mu.Lock()
	s.st.strength = &series
	s.st.loading = false
	s.commitLocked(ChangeStrength | ChangeStatus)
	s.mu.Unlock()
}

func (s *Store) requireIdentity(ctx context.Context, userID string) bool {
	if userID != "" {
		return true
	}
	s.mu.Lock()
	s.st.err = MissingIdentityMessage
	s.commitLocked(ChangeStatus)
	s.mu.Unlock()

	s.log.Warn(ctx, "operation requires a user id")
	return false
}

func (s *Store) fetchEntries(ctx context.Context, userID string) []models.ProgressEntry {
	entries, err := s.source.FetchEntries(ctx, userID)
	if err != nil {
		s.logFetchError(ctx, "entries", userID, err)
		return []models.ProgressEntry{}
	}
	if entries == nil {
		return []models.ProgressEntry{}
	}
	return slices.Clip(slices.Clone(entries))
}

func (s *Store) fetchNutrients(ctx context.Context, userID string, day timex.Day) models.NutrientSnapshot {
	snap, err := s.source.FetchNutrientSnapshot(ctx, userID, day)
	if err != nil {
		s.logFetchError(ctx, "nutrient snapshot", userID, err)
		return models.EmptyNutrientSnapshot(day)
	}
	if snap.Date.IsZero() {
		snap.Date = day
	}
	return snap
}

func (s *Store) fetchExercises(ctx context.Context, userID string) []string {
	names, err := s.source.FetchExerciseNames(ctx, userID)
	if err != nil {
		s.logFetchError(ctx, "exercise names", userID, err)
		return []string{}
	}
	if names == nil {
		return []string{}
	}
	return slices.Clip(slices.Clone(names))
}

func (s *Store) logFetchError(ctx context.Context, what, userID string, err error) {
	if errors.Is(err, common.ErrNotFound) {
		s.log.Info(ctx, what+" not found, using default", "user_id", userID)
		return
	}
	s.log.Warn(ctx, what+" fetch failed, using default", "user_id", userID, "err", err)
}
