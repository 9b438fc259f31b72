// Package nutrition persists one nutrient snapshot per user and day.
package nutrition

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophfit/internal/common"
	"github.com/dmitrijs2005/gophfit/internal/dbx"
	"github.com/dmitrijs2005/gophfit/internal/timex"
	"github.com/dmitrijs2005/gophfit/internal/tracker/models"
)

type Repository interface {
	// Get returns the snapshot for day or common.ErrNotFound.
	Get(ctx context.Context, userID string, day timex.Day) (*models.NutrientSnapshot, error)
	// Upsert stores s as the user's snapshot for s.Date.
	Upsert(ctx context.Context, userID string, s *models.NutrientSnapshot) error
}

type SQLRepository struct {
	db      dbx.DBTX
	dialect dbx.Dialect
}

func NewRepository(db dbx.DBTX, d dbx.Dialect) *SQLRepository {
	return &SQLRepository{db: db, dialect: d}
}

func (r *SQLRepository) Get(ctx context.Context, userID string, day timex.Day) (*models.NutrientSnapshot, error) {
	query := r.dialect.Rebind(`SELECT log_date, protein, carbs, fat, fiber, water, calories, calorie_goal
		FROM nutrient_logs WHERE user_id = ? AND log_date = ?`)

	s := &models.NutrientSnapshot{}
	err := r.db.QueryRowContext(ctx, query, userID, day).
		Scan(&s.Date, &s.Protein, &s.Carbs, &s.Fat, &s.Fiber, &s.Water, &s.Calories, &s.CalorieGoal)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("nutrients for %s: %w", day, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get nutrients: %w", err)
	}
	return s, nil
}

func (r *SQLRepository) Upsert(ctx context.Context, userID string, s *models.NutrientSnapshot) error {
	query := r.dialect.Rebind(`INSERT INTO nutrient_logs
			(user_id, log_date, protein, carbs, fat, fiber, water, calories, calorie_goal)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id, log_date) DO UPDATE SET
			protein = excluded.protein,
			carbs = excluded.carbs,
			fat = excluded.fat,
			fiber = excluded.fiber,
			water = excluded.water,
			calories = excluded.calories,
			calorie_goal = excluded.calorie_goal`)

	_, err := r.db.ExecContext(ctx, query,
		userID, s.Date, s.Protein, s.Carbs, s.Fat, s.Fiber, s.Water, s.Calories, s.CalorieGoal)
	if err != nil {
		return fmt.Errorf("failed to upsert nutrients: %w", err)
	}
	return nil
}
