// Package exercises persists the per-user catalog of exercise names.
package exercises

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophfit/internal/dbx"
)

type Repository interface {
	// Add stores name; adding an existing name is not an error.
	Add(ctx context.Context, userID, name string) error
	// List returns the user's exercise names in alphabetical order.
	List(ctx context.Context, userID string) ([]string, error)
}

type SQLRepository struct {
	db      dbx.DBTX
	dialect dbx.Dialect
}

func NewRepository(db dbx.DBTX, d dbx.Dialect) *SQLRepository {
	return &SQLRepository{db: db, dialect: d}
}

func (r *SQLRepository) Add(ctx context.Context, userID, name string) error {
	query := r.dialect.Rebind(`INSERT INTO exercises (user_id, name) VALUES (?, ?)
		ON CONFLICT (user_id, name) DO NOTHING`)
	if _, err := r.db.ExecContext(ctx, query, userID, name); err != nil {
		return fmt.Errorf("failed to add exercise: %w", err)
	}
	return nil
}

func (r *SQLRepository) List(ctx context.Context, userID string) ([]string, error) {
	query := r.dialect.Rebind(`SELECT name FROM exercises WHERE user_id = ? ORDER BY name`)
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select exercises: %w", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan exercise: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return names, nil
}
