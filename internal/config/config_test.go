package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Defaults fill missing keys", func(t *testing.T) {
		// Given: a config file with only the log level
		path := writeConfig(t, "log-level: debug\n")

		// When: the config is loaded
		conf, err := Load(path)

		// Then: the rest comes from the defaults
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, 3, conf.Board.Size)
		assert.Equal(t, 3, conf.Board.WinningSequenceLength)
		assert.Equal(t, ModeRandom, conf.Match.Mode)
		assert.Equal(t, 1, conf.Match.Games)
		assert.Zero(t, conf.Match.Seed)
		assert.Equal(t, 10000, conf.Match.MaxAttempts)
	})

	t.Run("Reads every section", func(t *testing.T) {
		path := writeConfig(t, `
log-level: info
board:
  size: 5
  winning-sequence-length: 4
match:
  mode: console
  games: 3
  seed: 42
  max-attempts: 50
`)

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, &Config{
			LogLevel: "info",
			Board:    Board{Size: 5, WinningSequenceLength: 4},
			Match:    Match{Mode: ModeConsole, Games: 3, Seed: 42, MaxAttempts: 50},
		}, conf)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		path := writeConfig(t, "board:\n  size: 5\n")
		t.Setenv("BOARD_SIZE", "7")

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, 7, conf.Board.Size)
	})

	t.Run("Unknown mode is rejected", func(t *testing.T) {
		path := writeConfig(t, "match:\n  mode: network\n")

		_, err := Load(path)

		require.ErrorIs(t, err, ErrUnknownMode)
	})

	t.Run("Missing file is an error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		require.Error(t, err)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("Panics on an invalid config", func(t *testing.T) {
		path := writeConfig(t, "match:\n  games: -1\n")

		assert.Panics(t, func() { MustLoad(path) })
	})

	t.Run("Returns the config", func(t *testing.T) {
		path := writeConfig(t, "board:\n  size: 4\n")

		assert.Equal(t, 4, MustLoad(path).Board.Size)
	})
}

func TestConfig_Validate(t *testing.T) {
	conf := &Config{Match: Match{Mode: ModeRandom, Games: 0}}

	require.ErrorIs(t, conf.Validate(), ErrInvalidGames)

	conf.Match.Games = 2
	require.NoError(t, conf.Validate())
}
