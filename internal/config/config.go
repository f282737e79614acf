// File path: internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config controls the assistant service: where it listens, where uploaded
// documents are persisted, and the shape of composed answers.
type Config struct {
	Addr            string
	DocsPath        string
	KnowledgePath   string
	IntentsPath     string
	HistoryLimit    int
	ShutdownTimeout time.Duration
}

// DefaultConfig returns the baseline configuration used when no overrides
// are supplied. Empty knowledge and intent paths select the embedded tables.
func DefaultConfig() Config {
	return Config{
		Addr:            ":8085",
		DocsPath:        filepath.Join("data", "documents.jsonl"),
		HistoryLimit:    5,
		ShutdownTimeout: 10 * time.Second,
	}
}

// Load builds a Config from defaults and VVASSIST_* environment variables.
func Load() (Config, error) {
	cfg := DefaultConfig()
	if value := strings.TrimSpace(os.Getenv("VVASSIST_ADDR")); value != "" {
		cfg.Addr = value
	}
	if value := strings.TrimSpace(os.Getenv("VVASSIST_DOCS_PATH")); value != "" {
		cfg.DocsPath = value
	}
	if value := strings.TrimSpace(os.Getenv("VVASSIST_KNOWLEDGE_PATH")); value != "" {
		cfg.KnowledgePath = value
	}
	if value := strings.TrimSpace(os.Getenv("VVASSIST_INTENTS_PATH")); value != "" {
		cfg.IntentsPath = value
	}
	if value := strings.TrimSpace(os.Getenv("VVASSIST_HISTORY_LIMIT")); value != "" {
		limit, err := strconv.Atoi(value)
		if err != nil {
			return Config{}, fmt.Errorf("parse VVASSIST_HISTORY_LIMIT: %w", err)
		}
		cfg.HistoryLimit = limit
	}
	if value := strings.TrimSpace(os.Getenv("VVASSIST_SHUTDOWN_TIMEOUT")); value != "" {
		dur, err := time.ParseDuration(value)
		if err != nil {
			return Config{}, fmt.Errorf("parse VVASSIST_SHUTDOWN_TIMEOUT: %w", err)
		}
		cfg.ShutdownTimeout = dur
	}
	return applyDefaults(cfg), nil
}

func applyDefaults(cfg Config) Config {
	defaults := DefaultConfig()
	if strings.TrimSpace(cfg.Addr) == "" {
		cfg.Addr = defaults.Addr
	}
	if strings.TrimSpace(cfg.DocsPath) == "" {
		cfg.DocsPath = defaults.DocsPath
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = defaults.HistoryLimit
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaults.ShutdownTimeout
	}
	return cfg
}
