package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/gophfit/internal/common"
	"github.com/dmitrijs2005/gophfit/internal/dbx"
	"github.com/dmitrijs2005/gophfit/internal/logging"
	"github.com/dmitrijs2005/gophfit/internal/timex"
	"github.com/dmitrijs2005/gophfit/internal/tracker/models"
)

// RecordInput is a new entry as typed by the user. A zero Date means the
// store's current date.
type RecordInput struct {
	ExerciseName string
	Date         timex.Day
	Weight       float64
	Reps         int
	Sets         int
	Notes        string
}

type ProgressService interface {
	Record(ctx context.Context, userID string, in RecordInput) (models.ProgressEntry, error)
	Edit(ctx context.Context, userID string, e models.ProgressEntry) error
	Delete(ctx context.Context, userID, id string) error
	AddExercise(ctx context.Context, userID, name string) error
}

type progressService struct {
	storage  Storage
	store    Store
	notifier Notifier
	log      logging.Logger
	newID    func() string
}

func NewProgressService(storage Storage, store Store, notifier Notifier, log logging.Logger) ProgressService {
	return &progressService{
		storage:  storage,
		store:    store,
		notifier: notifier,
		log:      log,
		newID:    uuid.NewString,
	}
}

func (s *progressService) Record(ctx context.Context, userID string, in RecordInput) (models.ProgressEntry, error) {
	if userID == "" {
		return models.ProgressEntry{}, s.fail(ctx, "Could not record progress", common.ErrNoIdentity)
	}

	e := models.ProgressEntry{
		ID:           s.newID(),
		UserID:       userID,
		ExerciseName: strings.TrimSpace(in.ExerciseName),
		Date:         in.Date,
		Weight:       in.Weight,
		Reps:         in.Reps,
		Sets:         in.Sets,
	}
	if e.Date.IsZero() {
		e.Date = s.store.CurrentDate()
	}
	if note := strings.TrimSpace(in.Notes); note != "" {
		e.Notes = models.Note(note)
	}
	if err := e.Validate(); err != nil {
		return models.ProgressEntry{}, s.fail(ctx, "Could not record progress", err)
	}

	err := s.storage.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.storage.Entries(tx).CreateOrUpdate(ctx, &e); err != nil {
			return err
		}
		return s.storage.Exercises(tx).Add(ctx, userID, e.ExerciseName)
	})
	if err != nil {
		return models.ProgressEntry{}, s.fail(ctx, "Could not record progress", err)
	}

	s.store.Add(e)
	s.store.AddExercise(e.ExerciseName)
	s.log.Info(ctx, "progress recorded", "user_id", userID, "entry_id", e.ID, "exercise", e.ExerciseName)
	return e, nil
}

func (s *progressService) Edit(ctx context.Context, userID string, e models.ProgressEntry) error {
	if userID == "" {
		return s.fail(ctx, "Could not update entry", common.ErrNoIdentity)
	}
	e.UserID = userID
	e.ExerciseName = strings.TrimSpace(e.ExerciseName)
	if err := e.Validate(); err != nil {
		return s.fail(ctx, "Could not update entry", err)
	}

	repo := s.storage.Entries(s.storage.Conn())
	if _, err := repo.GetByID(ctx, userID, e.ID); err != nil {
		return s.fail(ctx, "Could not update entry", err)
	}
	if err := repo.CreateOrUpdate(ctx, &e); err != nil {
		return s.fail(ctx, "Could not update entry", err)
	}

	s.store.Update(e)
	s.notifier.NotifySuccess("Entry updated")
	return nil
}

func (s *progressService) Delete(ctx context.Context, userID, id string) error {
	if userID == "" {
		return s.fail(ctx, "Could not remove entry", common.ErrNoIdentity)
	}
	if err := s.storage.Entries(s.storage.Conn()).DeleteByID(ctx, userID, id); err != nil {
		return s.fail(ctx, "Could not remove entry", err)
	}

	s.store.Remove(id)
	return nil
}

func (s *progressService) AddExercise(ctx context.Context, userID, name string) error {
	name = strings.TrimSpace(name)
	if userID == "" {
		return s.fail(ctx, "Could not add exercise", common.ErrNoIdentity)
	}
	if name == "" {
		return s.fail(ctx, "Could not add exercise", fmt.Errorf("%w: exercise name is required", common.ErrValidation))
	}
	if err := s.storage.Exercises(s.storage.Conn()).Add(ctx, userID, name); err != nil {
		return s.fail(ctx, "Could not add exercise", err)
	}

	s.store.AddExercise(name)
	return nil
}

// fail reports err to the user and returns it wrapped with action.
func (s *progressService) fail(ctx context.Context, action string, err error) error {
	s.notifier.NotifyError(action + ": " + reason(err))
	if !errors.Is(err, common.ErrValidation) && !errors.Is(err, common.ErrNotFound) {
		s.log.Error(ctx, strings.ToLower(action), "err", err)
	}
	return fmt.Errorf("%s: %w", strings.ToLower(action), err)
}

// reason turns err into a short message for the user.
func reason(err error) string {
	switch {
	case errors.Is(err, common.ErrNoIdentity):
		return "not logged in"
	case errors.Is(err, common.ErrNotFound):
		return "entry not found"
	case errors.Is(err, common.ErrValidation):
		return err.Error()
	default:
		return "storage error"
	}
}
