package progress

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/gophfit/internal/timex"
	"github.com/dmitrijs2005/gophfit/internal/tracker/models"
)

// ---- fake source ----

type fakeSource struct {
	mu sync.Mutex

	Entries    []models.ProgressEntry
	EntriesErr error

	Nutrients    models.NutrientSnapshot
	NutrientsErr error

	Exercises    []string
	ExercisesErr error

	Strength    models.StrengthSeries
	StrengthErr error

	// blocks FetchEntries until closed when non-nil
	EntriesGate chan struct{}

	LastUser string
	LastDay  timex.Day
	Calls    int
}

func (f *fakeSource) FetchEntries(ctx context.Context, userID string) ([]models.ProgressEntry, error) {
	if f.EntriesGate != nil {
		<-f.EntriesGate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastUser = userID
	f.Calls++
	return f.Entries, f.EntriesErr
}

func (f *fakeSource) FetchNutrientSnapshot(ctx context.Context, userID string, day timex.Day) (models.NutrientSnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastDay = day
	return f.Nutrients, f.NutrientsErr
}

func (f *fakeSource) FetchExerciseNames(ctx context.Context, userID string) ([]string, error) {
	return f.Exercises, f.ExercisesErr
}

func (f *fakeSource) FetchStrengthSeries(ctx context.Context, userID, exercise string) (models.StrengthSeries, error) {
	return f.Strength, f.StrengthErr
}

// ---- fake pager ----

type fakePager struct {
	mu    sync.Mutex
	pages map[int][]models.ProgressEntry
	more  map[int]bool
	err   error
	calls []int
	// closed before each fetch returns when non-nil
	gate chan struct{}
}

func (p *fakePager) FetchEntriesPage(ctx context.Context, userID string, page, size int) ([]models.ProgressEntry, bool, error) {
	p.mu.Lock()
	gate := p.gate
	p.mu.Unlock()
	if gate != nil {
		<-gate
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, page)
	if p.err != nil {
		return nil, false, p.err
	}
	return p.pages[page], p.more[page], nil
}

// ---- recording notifier ----

type recordingNotifier struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (n *recordingNotifier) NotifySuccess(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, msg)
}

func (n *recordingNotifier) NotifyError(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, msg)
}

func (n *recordingNotifier) Successes() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.successes...)
}

func (n *recordingNotifier) Errors() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.errors...)
}

// ---- helpers ----

func entry(id, exercise string, weight float64, reps, sets int) models.ProgressEntry {
	return models.ProgressEntry{
		ID:           id,
		UserID:       "u1",
		ExerciseName: exercise,
		Date:         timex.NewDay(2024, 3, 1),
		Weight:       weight,
		Reps:         reps,
		Sets:         sets,
	}
}

func manyEntries(n int) []models.ProgressEntry {
	out := make([]models.ProgressEntry, n)
	for i := range out {
		out[i] = entry(fmt.Sprintf("e%02d", i+1), "Squat", float64(50+i), 5, 3)
	}
	return out
}

func ids(entries []models.ProgressEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}
