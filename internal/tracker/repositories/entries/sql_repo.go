package entries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophfit/internal/common"
	"github.com/dmitrijs2005/gophfit/internal/dbx"
	"github.com/dmitrijs2005/gophfit/internal/tracker/models"
)

// SQLRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLRepository struct {
	db      dbx.DBTX
	dialect dbx.Dialect
}

// NewSQLiteRepository returns a repository speaking SQLite.
func NewSQLiteRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db, dialect: dbx.SQLite}
}

// NewPostgresRepository returns a repository speaking PostgreSQL.
func NewPostgresRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db, dialect: dbx.Postgres}
}

// NewRepository returns a repository for dialect d.
func NewRepository(db dbx.DBTX, d dbx.Dialect) *SQLRepository {
	return &SQLRepository{db: db, dialect: d}
}

const selectColumns = `SELECT id, user_id, exercise_name, entry_date, weight, reps, sets, notes FROM progress_entries`

// CreateOrUpdate upserts an entry by id.
func (r *SQLRepository) CreateOrUpdate(ctx context.Context, e *models.ProgressEntry) error {
	query := r.dialect.Rebind(`INSERT INTO progress_entries (id, user_id, exercise_name, entry_date, weight, reps, sets, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			exercise_name = excluded.exercise_name,
			entry_date = excluded.entry_date,
			weight = excluded.weight,
			reps = excluded.reps,
			sets = excluded.sets,
			notes = excluded.notes
		WHERE progress_entries.user_id = excluded.user_id`)

	res, err := r.db.ExecContext(ctx, query,
		e.ID, e.UserID, e.ExerciseName, e.Date, e.Weight, e.Reps, e.Sets, nullString(e.Notes))
	if err != nil {
		return fmt.Errorf("failed to upsert entry: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra == 0 {
		// the id exists but belongs to another user
		return fmt.Errorf("upsert entry %s: %w", e.ID, common.ErrNotFound)
	}
	return nil
}

func (r *SQLRepository) GetByID(ctx context.Context, userID, id string) (*models.ProgressEntry, error) {
	query := r.dialect.Rebind(selectColumns + ` WHERE user_id = ? AND id = ?`)
	row := r.db.QueryRowContext(ctx, query, userID, id)

	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("entry %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	return &e, nil
}

func (r *SQLRepository) ListByUser(ctx context.Context, userID string) ([]models.ProgressEntry, error) {
	query := r.dialect.Rebind(selectColumns + ` WHERE user_id = ? ORDER BY entry_date DESC, id`)
	return r.list(ctx, query, userID)
}

func (r *SQLRepository) ListPage(ctx context.Context, userID string, limit, offset int) ([]models.ProgressEntry, error) {
	query := r.dialect.Rebind(selectColumns + ` WHERE user_id = ? ORDER BY entry_date DESC, id LIMIT ? OFFSET ?`)
	return r.list(ctx, query, userID, limit, offset)
}

func (r *SQLRepository) list(ctx context.Context, query string, args ...any) ([]models.ProgressEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select entries: %w", err)
	}
	defer rows.Close()

	result := []models.ProgressEntry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLRepository) DeleteByID(ctx context.Context, userID, id string) error {
	query := r.dialect.Rebind(`DELETE FROM progress_entries WHERE user_id = ? AND id = ?`)
	res, err := r.db.ExecContext(ctx, query, userID, id)
	if err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra == 0 {
		return fmt.Errorf("entry %s: %w", id, common.ErrNotFound)
	}
	return nil
}

func (r *SQLRepository) StrengthSeries(ctx context.Context, userID, exercise string) ([]models.StrengthPoint, error) {
	query := r.dialect.Rebind(`SELECT entry_date, MAX(weight), SUM(weight * reps * sets)
		FROM progress_entries
		WHERE user_id = ? AND exercise_name = ?
		GROUP BY entry_date
		ORDER BY entry_date`)

	rows, err := r.db.QueryContext(ctx, query, userID, exercise)
	if err != nil {
		return nil, fmt.Errorf("failed to select strength series: %w", err)
	}
	defer rows.Close()

	points := []models.StrengthPoint{}
	for rows.Next() {
		var p models.StrengthPoint
		if err := rows.Scan(&p.Date, &p.MaxWeight, &p.TotalVolume); err != nil {
			return nil, fmt.Errorf("failed to scan strength point: %w", err)
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return points, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (models.ProgressEntry, error) {
	var (
		e     models.ProgressEntry
		notes sql.NullString
	)
	if err := s.Scan(&e.ID, &e.UserID, &e.ExerciseName, &e.Date, &e.Weight, &e.Reps, &e.Sets, &notes); err != nil {
		return models.ProgressEntry{}, err
	}
	if notes.Valid {
		e.Notes = models.Note(notes.String)
	}
	return e, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
