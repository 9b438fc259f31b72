package services

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gophfit/internal/common"
	"github.com/dmitrijs2005/gophfit/internal/logging"
	"github.com/dmitrijs2005/gophfit/internal/timex"
	"github.com/dmitrijs2005/gophfit/internal/tracker/datasource"
	"github.com/dmitrijs2005/gophfit/internal/tracker/models"
)

// ---- fake store ----

type fakeStore struct {
	mu        sync.Mutex
	day       timex.Day
	added     []models.ProgressEntry
	updated   []models.ProgressEntry
	removed   []string
	exercises []string
	refreshes []string
}

func (f *fakeStore) Add(e models.ProgressEntry) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.added = append(f.added, e)
}

func (f *fakeStore) Update(e models.ProgressEntry) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updated = append(f.updated, e)
}

func (f *fakeStore) Remove(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removed = append(f.removed, id)
}

func (f *fakeStore) AddExercise(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.exercises = append(f.exercises, name)
}

func (f *fakeStore) CurrentDate() timex.Day { return f.day }

func (f *fakeStore) Refresh(_ context.Context, userID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.refreshes = append(f.refreshes, userID)
}

// ---- recording notifier ----

type recorder struct {
	successes []string
	errors    []string
}

func (r *recorder) NotifySuccess(msg string) { r.successes = append(r.successes, msg) }
func (r *recorder) NotifyError(msg string)   { r.errors = append(r.errors, msg) }

// ---- helpers ----

type fixture struct {
	db       *datasource.Database
	store    *fakeStore
	notifier *recorder
	progress ProgressService
	food     NutritionService
}

func setup(t *testing.T) *fixture {
	t.Helper()
	db, err := datasource.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "fit.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	f := &fixture{
		db:       db,
		store:    &fakeStore{day: timex.MustParseDay("2024-03-15")},
		notifier: &recorder{},
	}
	f.progress = NewProgressService(db, f.store, f.notifier, logging.Discard())
	f.food = NewNutritionService(db, f.store, f.notifier, logging.Discard())
	return f
}

// ---- progress ----

func TestRecord_PersistsThenUpdatesStore(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	e, err := f.progress.Record(ctx, "u1", RecordInput{
		ExerciseName: "  Squat ",
		Weight:       100,
		Reps:         5,
		Sets:         3,
		Notes:        "  felt strong ",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, e.ID)
	assert.Equal(t, "Squat", e.ExerciseName)
	assert.Equal(t, f.store.day, e.Date)
	require.NotNil(t, e.Notes)
	assert.Equal(t, "felt strong", *e.Notes)

	stored, err := f.db.Entries(f.db.Conn()).GetByID(ctx, "u1", e.ID)
	require.NoError(t, err)
	assert.Equal(t, 100.0, stored.Weight)

	names, err := f.db.Exercises(f.db.Conn()).List(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Squat"}, names)

	require.Len(t, f.store.added, 1)
	assert.Equal(t, e.ID, f.store.added[0].ID)
	assert.Equal(t, []string{"Squat"}, f.store.exercises)
	assert.Empty(t, f.notifier.errors)
}

func TestRecord_ValidationFailureLeavesStoreUntouched(t *testing.T) {
	f := setup(t)

	_, err := f.progress.Record(context.Background(), "u1", RecordInput{ExerciseName: "Squat", Weight: 100, Reps: 0, Sets: 3})

	require.ErrorIs(t, err, common.ErrValidation)
	assert.Empty(t, f.store.added)
	require.Len(t, f.notifier.errors, 1)
	assert.Contains(t, f.notifier.errors[0], "reps must be >= 1")
}

func TestRecord_RequiresIdentity(t *testing.T) {
	f := setup(t)

	_, err := f.progress.Record(context.Background(), "", RecordInput{ExerciseName: "Squat", Reps: 1, Sets: 1})

	require.ErrorIs(t, err, common.ErrNoIdentity)
	assert.Equal(t, []string{"Could not record progress: not logged in"}, f.notifier.errors)
}

func TestRecord_StorageFailureLeavesStoreUntouched(t *testing.T) {
	f := setup(t)
	require.NoError(t, f.db.Close())

	_, err := f.progress.Record(context.Background(), "u1", RecordInput{ExerciseName: "Squat", Weight: 1, Reps: 1, Sets: 1})

	require.Error(t, err)
	assert.Empty(t, f.store.added)
	assert.Equal(t, []string{"Could not record progress: storage error"}, f.notifier.errors)
}

func TestEdit(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	e, err := f.progress.Record(ctx, "u1", RecordInput{ExerciseName: "Squat", Weight: 100, Reps: 5, Sets: 3})
	require.NoError(t, err)

	e.Weight = 110
	require.NoError(t, f.progress.Edit(ctx, "u1", e))

	stored, err := f.db.Entries(f.db.Conn()).GetByID(ctx, "u1", e.ID)
	require.NoError(t, err)
	assert.Equal(t, 110.0, stored.Weight)
	require.Len(t, f.store.updated, 1)
	assert.Contains(t, f.notifier.successes, "Entry updated")

	// another user cannot edit it
	err = f.progress.Edit(ctx, "u2", e)
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.Len(t, f.store.updated, 1)

	// unknown ids are not created by an edit
	e.ID = "missing"
	err = f.progress.Edit(ctx, "u1", e)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestDelete(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	e, err := f.progress.Record(ctx, "u1", RecordInput{ExerciseName: "Squat", Weight: 100, Reps: 5, Sets: 3})
	require.NoError(t, err)

	require.NoError(t, f.progress.Delete(ctx, "u1", e.ID))
	assert.Equal(t, []string{e.ID}, f.store.removed)

	err = f.progress.Delete(ctx, "u1", e.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.Equal(t, []string{e.ID}, f.store.removed)
	assert.Contains(t, f.notifier.errors, "Could not remove entry: entry not found")
}

func TestAddExercise(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	require.NoError(t, f.progress.AddExercise(ctx, "u1", " Deadlift "))
	assert.Equal(t, []string{"Deadlift"}, f.store.exercises)

	err := f.progress.AddExercise(ctx, "u1", "  ")
	assert.ErrorIs(t, err, common.ErrValidation)
	assert.Equal(t, []string{"Deadlift"}, f.store.exercises)
}

// ---- nutrition ----

func TestLogMeal_AccumulatesAndRefreshesShownDay(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	snap, err := f.food.LogMeal(ctx, "u1", timex.Day{}, Meal{Calories: 600, Protein: 40})
	require.NoError(t, err)
	assert.Equal(t, 600.0, snap.Calories)
	assert.Equal(t, float64(models.DefaultCalorieGoal), snap.CalorieGoal)

	snap, err = f.food.LogMeal(ctx, "u1", f.store.day, Meal{Calories: 400, Protein: 10, Water: 500})
	require.NoError(t, err)
	assert.Equal(t, 1000.0, snap.Calories)
	assert.Equal(t, 50.0, snap.Protein)
	assert.Equal(t, 500.0, snap.Water)

	stored, err := f.db.Nutrition(f.db.Conn()).Get(ctx, "u1", f.store.day)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, stored.Calories)

	assert.Equal(t, []string{"u1", "u1"}, f.store.refreshes)
	assert.Equal(t, []string{"Meal logged", "Meal logged"}, f.notifier.successes)
}

func TestLogMeal_OtherDayDoesNotRefresh(t *testing.T) {
	f := setup(t)

	_, err := f.food.LogMeal(context.Background(), "u1", f.store.day.AddDays(-1), Meal{Calories: 100})
	require.NoError(t, err)
	assert.Empty(t, f.store.refreshes)
}

func TestLogMeal_Invalid(t *testing.T) {
	f := setup(t)

	_, err := f.food.LogMeal(context.Background(), "u1", timex.Day{}, Meal{Calories: -5})
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = f.food.LogMeal(context.Background(), "", timex.Day{}, Meal{Calories: 5})
	assert.ErrorIs(t, err, common.ErrNoIdentity)
	assert.Len(t, f.notifier.errors, 2)
}

func TestSetGoal(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	_, err := f.food.LogMeal(ctx, "u1", timex.Day{}, Meal{Calories: 1100})
	require.NoError(t, err)

	require.NoError(t, f.food.SetGoal(ctx, "u1", timex.Day{}, 2200))

	stored, err := f.db.Nutrition(f.db.Conn()).Get(ctx, "u1", f.store.day)
	require.NoError(t, err)
	assert.Equal(t, 2200.0, stored.CalorieGoal)
	assert.Equal(t, 1100.0, stored.Calories)

	assert.ErrorIs(t, f.food.SetGoal(ctx, "u1", timex.Day{}, -1), common.ErrValidation)
}
