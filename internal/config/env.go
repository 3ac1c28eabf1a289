package config

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/caarlos0/env/v11"
)

// Config holds settings read from the environment. Command-line flags
// override them.
type Config struct {
	// DataPath is the CSV file or SQLite database holding the records.
	DataPath string `env:"FEVERTRACK_DATA" envDefault:"health_log.csv"`

	// Backend is "csv", "sqlite" or "memory".
	Backend string `env:"FEVERTRACK_BACKEND" envDefault:"csv"`

	// RosterPath is an optional .yaml, .yml or .cue roster file.
	RosterPath string `env:"FEVERTRACK_ROSTER"`

	// Delimiter separates CSV fields. "tab" and `\t` mean a tab character.
	Delimiter string `env:"FEVERTRACK_DELIMITER" envDefault:","`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load returns the Config for the current environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseDelimiter converts a delimiter setting to a single rune.
func ParseDelimiter(s string) (rune, error) {
	switch strings.ToLower(s) {
	case "":
		return ',', nil
	case "tab", `\t`:
		return '\t', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("delimiter %q must be a single character", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
