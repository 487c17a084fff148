package types

import (
	"errors"
	"fmt"
)

// Config holds the settings for one interactive session.
type Config struct {
	Database      string `json:"database" yaml:"database"`
	HistoryFile   string `json:"history_file" yaml:"history_file,omitempty"`
	HistoryLength int    `json:"history_length" yaml:"history_length"`
	Prompt        string `json:"prompt" yaml:"prompt"`
	LogLevel      string `json:"log_level" yaml:"log_level"`
}

// MemoryDatabase is the path that selects a transient in-memory store.
const MemoryDatabase = ":memory:"

// Defaults applied when neither config.yaml nor the environment sets a key.
const (
	DefaultHistoryLength = 1000
	DefaultPrompt        = "gamedb> "
	DefaultLogLevel      = "warn"
)

// Config validation errors.
var (
	ErrDatabaseEmpty        = errors.New("database must not be empty")
	ErrHistoryLengthInvalid = errors.New("history length must not be negative")
	ErrLogLevelUnknown      = errors.New("unknown log level")
)

// knownLogLevels lists the levels that Validate accepts.
var knownLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// DefaultConfig returns a Config populated with the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Database:      MemoryDatabase,
		HistoryLength: DefaultHistoryLength,
		Prompt:        DefaultPrompt,
		LogLevel:      DefaultLogLevel,
	}
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.Database == "" {
		return ErrDatabaseEmpty
	}
	if c.HistoryLength < 0 {
		return ErrHistoryLengthInvalid
	}
	if !knownLogLevels[c.LogLevel] {
		return fmt.Errorf("%w: %q", ErrLogLevelUnknown, c.LogLevel)
	}
	return nil
}

// InMemory reports whether the session uses a transient database.
func (c Config) InMemory() bool {
	return c.Database == MemoryDatabase
}
