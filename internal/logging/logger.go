// Package logging defines the structured-logging interface used across the
// tracker and a log/slog backed implementation.
package logging

import "context"

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Warn(ctx, "entries fetch failed", "user_id", id, "err", err)
type Logger interface {
	// Debug logs verbose diagnostics (state transitions, cursor moves).
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs a recovered failure or an unusual condition.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs a failure that could not be recovered locally.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}
