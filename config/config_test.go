package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urbanmove/journeyquery/config"
	"github.com/urbanmove/journeyquery/journey"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
logLevel: debug
query:
  maxWalkDistance: 3500
  timeRatioPrune: false
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 3500.0, cfg.Query.MaxWalkDistance)
	assert.False(t, cfg.Query.TimeRatioPrune)
	// untouched keys keep their defaults
	assert.Equal(t, journey.PERSON_SPEED, cfg.Query.WalkSpeed)
	assert.Equal(t, 120.0, cfg.Query.BoardSlack)
}

func TestLoadRejectsBadLevel(t *testing.T) {
	path := writeConfig(t, "logLevel: verbose\n")
	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsBadValues(t *testing.T) {
	path := writeConfig(t, `
query:
  walkSpeed: 0
`)
	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestOptionsTranslation(t *testing.T) {
	cfg := config.Default()
	cfg.Query.MaxWalkDistance = 1500
	cfg.Query.WalkSpeed = 1.3
	cfg.Query.BoardSlack = 60

	opt := cfg.Options()
	assert.Equal(t, 1500.0, opt.MaxWalkDistance)
	assert.Equal(t, 1.3, opt.SpeedUpperBound)
	assert.Equal(t, 60.0, opt.BoardSlack)
	// snap distance 0 keeps the graph default
	assert.Greater(t, opt.MaxSnapDistance, 0.0)
}

func TestSetupLogging(t *testing.T) {
	cfg := config.Default()
	assert.NoError(t, cfg.SetupLogging())

	cfg.LogLevel = "verbose"
	assert.Error(t, cfg.SetupLogging())
}
