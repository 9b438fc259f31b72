package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/dmitrijs2005/gophfit/internal/common"
	"github.com/dmitrijs2005/gophfit/internal/dbx"
	"github.com/dmitrijs2005/gophfit/internal/logging"
	"github.com/dmitrijs2005/gophfit/internal/timex"
	"github.com/dmitrijs2005/gophfit/internal/tracker/models"
)

// Meal is one intake added on top of a day's running totals.
type Meal struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
	Fiber    float64
	Water    float64
}

func (m Meal) validate() error {
	for _, v := range []float64{m.Calories, m.Protein, m.Carbs, m.Fat, m.Fiber, m.Water} {
		if math.IsNaN(v) || v < 0 {
			return fmt.Errorf("%w: meal values must be >= 0", common.ErrValidation)
		}
	}
	return nil
}

type NutritionService interface {
	// LogMeal adds m to the user's totals for day (the store's current date
	// when zero) and returns the updated snapshot.
	LogMeal(ctx context.Context, userID string, day timex.Day, m Meal) (models.NutrientSnapshot, error)
	// SetGoal sets the calorie goal for day.
	SetGoal(ctx context.Context, userID string, day timex.Day, goal float64) error
}

type nutritionService struct {
	storage  Storage
	store    Store
	notifier Notifier
	log      logging.Logger
}

func NewNutritionService(storage Storage, store Store, notifier Notifier, log logging.Logger) NutritionService {
	return &nutritionService{storage: storage, store: store, notifier: notifier, log: log}
}

func (s *nutritionService) LogMeal(ctx context.Context, userID string, day timex.Day, m Meal) (models.NutrientSnapshot, error) {
	if userID == "" {
		return models.NutrientSnapshot{}, s.fail(ctx, common.ErrNoIdentity)
	}
	if err := m.validate(); err != nil {
		return models.NutrientSnapshot{}, s.fail(ctx, err)
	}
	if day.IsZero() {
		day = s.store.CurrentDate()
	}

	var snap models.NutrientSnapshot
	err := s.storage.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		snap, err = s.current(ctx, tx, userID, day)
		if err != nil {
			return err
		}
		snap.Calories += m.Calories
		snap.Protein += m.Protein
		snap.Carbs += m.Carbs
		snap.Fat += m.Fat
		snap.Fiber += m.Fiber
		snap.Water += m.Water
		return s.storage.Nutrition(tx).Upsert(ctx, userID, &snap)
	})
	if err != nil {
		return models.NutrientSnapshot{}, s.fail(ctx, err)
	}

	s.notifier.NotifySuccess("Meal logged")
	s.refreshIfShown(ctx, userID, day)
	return snap, nil
}

func (s *nutritionService) SetGoal(ctx context.Context, userID string, day timex.Day, goal float64) error {
	if userID == "" {
		return s.fail(ctx, common.ErrNoIdentity)
	}
	if math.IsNaN(goal) || goal < 0 {
		return s.fail(ctx, fmt.Errorf("%w: calorie goal must be >= 0", common.ErrValidation))
	}
	if day.IsZero() {
		day = s.store.CurrentDate()
	}

	err := s.storage.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		snap, err := s.current(ctx, tx, userID, day)
		if err != nil {
			return err
		}
		snap.CalorieGoal = goal
		return s.storage.Nutrition(tx).Upsert(ctx, userID, &snap)
	})
	if err != nil {
		return s.fail(ctx, err)
	}

	s.notifier.NotifySuccess("Calorie goal updated")
	s.refreshIfShown(ctx, userID, day)
	return nil
}

// current returns the stored snapshot for day or an empty one.
func (s *nutritionService) current(ctx context.Context, tx dbx.DBTX, userID string, day timex.Day) (models.NutrientSnapshot, error) {
	existing, err := s.storage.Nutrition(tx).Get(ctx, userID, day)
	if errors.Is(err, common.ErrNotFound) {
		return models.EmptyNutrientSnapshot(day), nil
	}
	if err != nil {
		return models.NutrientSnapshot{}, err
	}
	return *existing, nil
}

func (s *nutritionService) refreshIfShown(ctx context.Context, userID string, day timex.Day) {
	if s.store.CurrentDate().Equal(day) {
		s.store.Refresh(ctx, userID)
	}
}

func (s *nutritionService) fail(ctx context.Context, err error) error {
	s.notifier.NotifyError("Could not log nutrition: " + reason(err))
	if !errors.Is(err, common.ErrValidation) && !errors.Is(err, common.ErrNoIdentity) {
		s.log.Error(ctx, "log nutrition", "err", err)
	}
	return fmt.Errorf("log nutrition: %w", err)
}
