package datasource

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/gophfit/internal/dbx"
	"github.com/dmitrijs2005/gophfit/internal/filex"
	"github.com/dmitrijs2005/gophfit/internal/tracker/migrations"
	"github.com/dmitrijs2005/gophfit/internal/tracker/repositories/entries"
	"github.com/dmitrijs2005/gophfit/internal/tracker/repositories/exercises"
	"github.com/dmitrijs2005/gophfit/internal/tracker/repositories/metadata"
	"github.com/dmitrijs2005/gophfit/internal/tracker/repositories/nutrition"
)

// Database is an open connection pool plus the dialect its SQL speaks. It
// vends repositories bound to either the pool or a transaction.
type Database struct {
	DB      *sql.DB
	Dialect dbx.Dialect
}

// DialectFor picks the dialect for dsn.
func DialectFor(dsn string) dbx.Dialect {
	lower := strings.ToLower(strings.TrimSpace(dsn))
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return dbx.Postgres
	}
	return dbx.SQLite
}

// Open connects to dsn and verifies the connection.
func Open(ctx context.Context, dsn string) (*Database, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("open database: empty dsn")
	}
	d := DialectFor(dsn)
	if d == dbx.SQLite && isFilePath(dsn) {
		if _, err := filex.EnsureParentDir(dsn); err != nil {
			return nil, fmt.Errorf("open %s database: %w", d, err)
		}
	}

	db, err := sql.Open(d.DriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", d, err)
	}
	if d == dbx.SQLite {
		// a single writer avoids SQLITE_BUSY between pooled connections
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s database: %w", d, err)
	}
	return &Database{DB: db, Dialect: d}, nil
}

// isFilePath reports whether a sqlite dsn is a plain path rather than a URI
// or an in-memory database.
func isFilePath(dsn string) bool {
	return !strings.HasPrefix(dsn, "file:") && !strings.Contains(dsn, ":memory:")
}

// InitDatabase opens dsn and applies pending migrations.
func InitDatabase(ctx context.Context, dsn string) (*Database, error) {
	db, err := Open(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := migrations.Up(ctx, db.DB, db.Dialect); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// Conn returns the pool as a DBTX for repositories used outside a transaction.
func (d *Database) Conn() dbx.DBTX {
	return d.DB
}

func (d *Database) Close() error {
	return d.DB.Close()
}

// Entries returns an entries.Repository bound to the provided DBTX.
func (d *Database) Entries(db dbx.DBTX) entries.Repository {
	return entries.NewRepository(db, d.Dialect)
}

// Nutrition returns a nutrition.Repository bound to the provided DBTX.
func (d *Database) Nutrition(db dbx.DBTX) nutrition.Repository {
	return nutrition.NewRepository(db, d.Dialect)
}

// Exercises returns an exercises.Repository bound to the provided DBTX.
func (d *Database) Exercises(db dbx.DBTX) exercises.Repository {
	return exercises.NewRepository(db, d.Dialect)
}

// Metadata returns a metadata.Repository bound to the provided DBTX.
func (d *Database) Metadata(db dbx.DBTX) metadata.Repository {
	return metadata.NewRepository(db, d.Dialect)
}

// WithTx runs fn inside a transaction on the pool.
func (d *Database) WithTx(ctx context.Context, fn func(ctx context.Context, tx dbx.DBTX) error) error {
	return dbx.WithTx(ctx, d.DB, nil, fn)
}
