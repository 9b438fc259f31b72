package services

import (
	"context"

	"github.com/dmitrijs2005/gophfit/internal/dbx"
	"github.com/dmitrijs2005/gophfit/internal/timex"
	"github.com/dmitrijs2005/gophfit/internal/tracker/models"
	"github.com/dmitrijs2005/gophfit/internal/tracker/repositories/entries"
	"github.com/dmitrijs2005/gophfit/internal/tracker/repositories/exercises"
	"github.com/dmitrijs2005/gophfit/internal/tracker/repositories/nutrition"
)

// Storage vends repositories and transactions; *datasource.Database
// satisfies it.
type Storage interface {
	Conn() dbx.DBTX
	Entries(db dbx.DBTX) entries.Repository
	Nutrition(db dbx.DBTX) nutrition.Repository
	Exercises(db dbx.DBTX) exercises.Repository
	WithTx(ctx context.Context, fn func(ctx context.Context, tx dbx.DBTX) error) error
}

// Store is the part of *progress.Store the services update.
type Store interface {
	Add(e models.ProgressEntry)
	Update(e models.ProgressEntry)
	Remove(id string)
	AddExercise(name string)
	CurrentDate() timex.Day
	Refresh(ctx context.Context, userID string)
}

// Notifier receives user-facing outcome messages.
type Notifier interface {
	NotifySuccess(msg string)
	NotifyError(msg string)
}
