package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)

	assert.Equal(t, 6, cfg.Game.MaxAttempts)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "wordle.log", cfg.Log.File)
	assert.Nil(t, cfg.Words)
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
game {
  max_attempts = 4
}

words {
  answers_file = "/tmp/answers.txt"
  guesses_file = "/tmp/guesses.txt"
}

log {
  level = "debug"
  file  = "debug.log"
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Game.MaxAttempts)
	require.NotNil(t, cfg.Words)
	assert.Equal(t, "/tmp/answers.txt", cfg.Words.AnswersFile)
	assert.Equal(t, "/tmp/guesses.txt", cfg.Words.GuessesFile)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "debug.log", cfg.Log.File)
}

func TestLoadPartialConfigInheritsDefaults(t *testing.T) {
	path := writeConfig(t, `
log {
  level = "debug"
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 6, cfg.Game.MaxAttempts)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "wordle.log", cfg.Log.File, "missing attributes fall back")
}

func TestLoadInvalidHCL(t *testing.T) {
	path := writeConfig(t, `game { max_attempts = `)

	_, err := Load(path)
	assert.Error(t, err)
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wordle.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
