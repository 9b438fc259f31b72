package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the gophfit CLI.
type Config struct {
	DatabaseDSN      string        `env:"GOPHFIT_DATABASE_DSN"`
	SecretKey        string        `env:"GOPHFIT_SECRET_KEY"`
	SessionTTL       time.Duration `env:"GOPHFIT_SESSION_TTL"`
	QueryTimeout     time.Duration `env:"GOPHFIT_QUERY_TIMEOUT"`
	InfinitePageSize int           `env:"GOPHFIT_INFINITE_PAGE_SIZE"`
	LogLevel         string        `env:"GOPHFIT_LOG_LEVEL"`
	LogFormat        string        `env:"GOPHFIT_LOG_FORMAT"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "gophfit.db"
	c.SecretKey = "gophfit-local-secret"
	c.SessionTTL = 30 * 24 * time.Hour
	c.QueryTimeout = 5 * time.Second
	c.InfinitePageSize = 10
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// LoadConfig builds a Config from defaults, the JSON file, the environment
// and the process arguments, in that order.
func LoadConfig() (*Config, error) {
	return Load(os.Args[1:])
}

// Load is LoadConfig with explicit arguments (without the program name).
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
