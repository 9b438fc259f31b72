// Package entries persists progress entries.
//
// One SQL implementation serves both backends: queries are written with '?'
// placeholders and rebound for PostgreSQL through dbx.Dialect. The repository
// works on a dbx.DBTX, so it can run inside dbx.WithTx.
//
// Errors: a missing row is reported as common.ErrNotFound; driver errors are
// wrapped with a short description of the failed operation.
package entries
