// Package config loads runtime configuration for the gophfit CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Environment variables prefixed with GOPHFIT_.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-d string     database DSN (file path / "file:" URI for SQLite, postgres:// for PostgreSQL)
//	-s string     secret used to sign session tokens
//	-t duration   session lifetime (e.g. 720h)
//	-q duration   per-query timeout (e.g. 5s)
//	-p int        infinite scroll page size
//	-l string     log level: debug, info, warn, error
//
// # JSON schema
//
// Durations use timex.Duration, so they may be strings like "5s" or integer
// nanoseconds:
//
//	{
//	  "database_dsn": "gophfit.db",
//	  "secret_key": "change-me",
//	  "session_ttl": "720h",
//	  "query_timeout": "5s",
//	  "infinite_page_size": 10,
//	  "log_level": "info",
//	  "log_format": "text"
//	}
package config
