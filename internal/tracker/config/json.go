package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/gophfit/internal/flagx"
	"github.com/dmitrijs2005/gophfit/internal/timex"
)

// JSONConfig is a DTO used exclusively for JSON unmarshalling. Pointer and
// zero-valued fields that are absent from the file leave Config untouched.
type JSONConfig struct {
	DatabaseDSN      string          `json:"database_dsn"`
	SecretKey        string          `json:"secret_key"`
	SessionTTL       *timex.Duration `json:"session_ttl"`
	QueryTimeout     *timex.Duration `json:"query_timeout"`
	InfinitePageSize int             `json:"infinite_page_size"`
	LogLevel         string          `json:"log_level"`
	LogFormat        string          `json:"log_format"`
}

// parseJSON overlays cfg with the file named by -c / -config, if any.
func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigFile(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var jc JSONConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.SecretKey != "" {
		cfg.SecretKey = jc.SecretKey
	}
	if jc.SessionTTL != nil {
		cfg.SessionTTL = jc.SessionTTL.Duration
	}
	if jc.QueryTimeout != nil {
		cfg.QueryTimeout = jc.QueryTimeout.Duration
	}
	if jc.InfinitePageSize > 0 {
		cfg.InfinitePageSize = jc.InfinitePageSize
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.LogFormat != "" {
		cfg.LogFormat = jc.LogFormat
	}
	return nil
}
