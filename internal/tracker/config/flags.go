package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/gophfit/internal/flagx"
)

// parseFlags populates Config fields from command-line flags. Only the flags
// handled here are passed to the FlagSet, see flagx.FilterArgs.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, "-d", "-s", "-t", "-q", "-p", "-l")

	fs := flag.NewFlagSet("gophfit", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.SecretKey, "s", cfg.SecretKey, "session signing secret")
	fs.DurationVar(&cfg.SessionTTL, "t", cfg.SessionTTL, "session lifetime")
	fs.DurationVar(&cfg.QueryTimeout, "q", cfg.QueryTimeout, "per-query timeout")
	fs.IntVar(&cfg.InfinitePageSize, "p", cfg.InfinitePageSize, "infinite scroll page size")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	if cfg.InfinitePageSize <= 0 {
		return fmt.Errorf("parse flags: page size must be positive, got %d", cfg.InfinitePageSize)
	}
	return nil
}
