package progress

import (
	"context"

	"github.com/dmitrijs2005/gophfit/internal/timex"
	"github.com/dmitrijs2005/gophfit/internal/tracker/models"
)

// Source is the data-access collaborator the store loads from. Timeouts and
// retries are the implementation's concern.
type Source interface {
	FetchEntries(ctx context.Context, userID string) ([]models.ProgressEntry, error)
	FetchNutrientSnapshot(ctx context.Context, userID string, day timex.Day) (models.NutrientSnapshot, error)
	FetchExerciseNames(ctx context.Context, userID string) ([]string, error)
	FetchStrengthSeries(ctx context.Context, userID, exercise string) (models.StrengthSeries, error)
}

// Pager fetches one page of a user's unfiltered entries for infinite
// browsing. page is 1-based. more reports whether entries exist past the
// returned page.
type Pager interface {
	FetchEntriesPage(ctx context.Context, userID string, page, size int) (entries []models.ProgressEntry, more bool, err error)
}

// Notifier receives user-facing outcome messages. Implementations must not
// block.
type Notifier interface {
	NotifySuccess(msg string)
	NotifyError(msg string)
}

type nopNotifier struct{}

func (nopNotifier) NotifySuccess(string) {}
func (nopNotifier) NotifyError(string)   {}
