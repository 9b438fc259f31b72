package entries

import (
	"context"

	"github.com/dmitrijs2005/gophfit/internal/tracker/models"
)

// Repository describes storage operations for progress entries. Every
// operation is scoped to a user.
type Repository interface {
	// CreateOrUpdate inserts an entry or replaces the one with the same id.
	CreateOrUpdate(ctx context.Context, e *models.ProgressEntry) error

	// GetByID returns one entry or common.ErrNotFound.
	GetByID(ctx context.Context, userID, id string) (*models.ProgressEntry, error)

	// ListByUser returns all of a user's entries, newest first.
	ListByUser(ctx context.Context, userID string) ([]models.ProgressEntry, error)

	// ListPage returns up to limit entries starting at offset, in ListByUser order.
	ListPage(ctx context.Context, userID string, limit, offset int) ([]models.ProgressEntry, error)

	// DeleteByID removes an entry; common.ErrNotFound when nothing matched.
	DeleteByID(ctx context.Context, userID, id string) error

	// StrengthSeries aggregates one exercise per day, oldest day first.
	StrengthSeries(ctx context.Context, userID, exercise string) ([]models.StrengthPoint, error)
}
