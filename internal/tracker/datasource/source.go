package datasource

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophfit/internal/logging"
	"github.com/dmitrijs2005/gophfit/internal/timex"
	"github.com/dmitrijs2005/gophfit/internal/tracker/models"
	"github.com/dmitrijs2005/gophfit/internal/tracker/progress"
)

var (
	_ progress.Source = (*SQLSource)(nil)
	_ progress.Pager  = (*SQLSource)(nil)
)

// SQLSource serves the progress store from the database. It satisfies both
// progress.Source and progress.Pager.
type SQLSource struct {
	db      *Database
	timeout time.Duration
	log     logging.Logger
}

// NewSQLSource returns a source whose queries each get at most timeout.
// A non-positive timeout disables the limit.
func NewSQLSource(db *Database, timeout time.Duration, log logging.Logger) *SQLSource {
	if log == nil {
		log = logging.Discard()
	}
	return &SQLSource{db: db, timeout: timeout, log: log}
}

func (s *SQLSource) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *SQLSource) FetchEntries(ctx context.Context, userID string) ([]models.ProgressEntry, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	list, err := s.db.Entries(s.db.DB).ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch entries: %w", err)
	}
	s.log.Debug(ctx, "entries fetched", "user_id", userID, "count", len(list))
	return list, nil
}

// FetchNutrientSnapshot returns an error wrapping common.ErrNotFound when no
// snapshot was logged for day.
func (s *SQLSource) FetchNutrientSnapshot(ctx context.Context, userID string, day timex.Day) (models.NutrientSnapshot, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	snap, err := s.db.Nutrition(s.db.DB).Get(ctx, userID, day)
	if err != nil {
		return models.NutrientSnapshot{}, fmt.Errorf("fetch nutrients: %w", err)
	}
	return *snap, nil
}

func (s *SQLSource) FetchExerciseNames(ctx context.Context, userID string) ([]string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	names, err := s.db.Exercises(s.db.DB).List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch exercises: %w", err)
	}
	return names, nil
}

func (s *SQLSource) FetchStrengthSeries(ctx context.Context, userID, exercise string) (models.StrengthSeries, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	points, err := s.db.Entries(s.db.DB).StrengthSeries(ctx, userID, exercise)
	if err != nil {
		return models.StrengthSeries{}, fmt.Errorf("fetch strength series: %w", err)
	}
	return models.StrengthSeries{ExerciseName: exercise, Points: points}, nil
}

// FetchEntriesPage reads one extra row to learn whether another page exists.
func (s *SQLSource) FetchEntriesPage(ctx context.Context, userID string, page, size int) ([]models.ProgressEntry, bool, error) {
	if page < 1 || size < 1 {
		return []models.ProgressEntry{}, false, nil
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	list, err := s.db.Entries(s.db.DB).ListPage(ctx, userID, size+1, (page-1)*size)
	if err != nil {
		return nil, false, fmt.Errorf("fetch entries page %d: %w", page, err)
	}
	more := len(list) > size
	if more {
		list = list[:size]
	}
	return list, more, nil
}
