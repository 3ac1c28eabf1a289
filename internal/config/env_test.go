package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "health_log.csv", cfg.DataPath)
	assert.Equal(t, "csv", cfg.Backend)
	assert.Equal(t, "", cfg.RosterPath)
	assert.Equal(t, ",", cfg.Delimiter)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("FEVERTRACK_DATA", "/var/lib/fevertrack/health.db")
	t.Setenv("FEVERTRACK_BACKEND", "sqlite")
	t.Setenv("FEVERTRACK_ROSTER", "roster.cue")
	t.Setenv("FEVERTRACK_DELIMITER", "tab")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Config{
		DataPath:   "/var/lib/fevertrack/health.db",
		Backend:    "sqlite",
		RosterPath: "roster.cue",
		Delimiter:  "tab",
	}, cfg)
}

type envTestConfig struct {
	Limit int `env:"FEVERTRACK_TEST_LIMIT" envDefault:"5"`
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("FEVERTRACK_TEST_LIMIT", "not-an-int")

	err := ParseEnv(&cfg)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "parse env:"), err.Error())
}

func TestParseDelimiter(t *testing.T) {
	tests := map[string]rune{
		"":    ',',
		",":   ',',
		";":   ';',
		"tab": '\t',
		"TAB": '\t',
		`\t`:  '\t',
		"\t":  '\t',
		"|":   '|',
	}
	for in, want := range tests {
		got, err := ParseDelimiter(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
	}

	_, err := ParseDelimiter(";;")
	assert.Error(t, err)
}
