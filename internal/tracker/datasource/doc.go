// Package datasource opens the tracker database and adapts its repositories
// to the progress store's Source and Pager interfaces.
//
// The backend is picked from the DSN: postgres:// and postgresql:// URLs use
// the pgx driver, anything else is treated as a SQLite path or URI and
// opened with modernc.org/sqlite. Migrations run on open.
//
// Every query issued through SQLSource is bounded by the configured query
// timeout.
package datasource
