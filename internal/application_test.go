package application

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
)

func testConfig(mode string, games int) *config.Config {
	return &config.Config{
		LogLevel: "info",
		Board:    config.Board{Size: 3, WinningSequenceLength: 3},
		Match:    config.Match{Mode: mode, Games: games, Seed: 17, MaxAttempts: 10000},
	}
}

func countResults(out string) int {
	return strings.Count(out, " wins!\n") + strings.Count(out, "It's a draw!\n")
}

func TestRun(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("Random mode plays every game", func(t *testing.T) {
		// Given: a random match of four games
		var out bytes.Buffer
		conf := testConfig(config.ModeRandom, 4)

		// When: the application runs
		err := Run(ctx, logger, conf, IO{In: strings.NewReader(""), Out: &out})

		// Then: four results are announced
		require.NoError(t, err)
		assert.Equal(t, 4, countResults(out.String()))
	})

	t.Run("Same seed replays the same games", func(t *testing.T) {
		var first, second bytes.Buffer
		conf := testConfig(config.ModeRandom, 3)

		require.NoError(t, Run(ctx, logger, conf, IO{Out: &first}))
		require.NoError(t, Run(ctx, logger, conf, IO{Out: &second}))

		assert.Equal(t, first.String(), second.String())
	})

	t.Run("Console mode reads moves from input", func(t *testing.T) {
		// Given: moves for a top-row win, including one occupied cell
		var out bytes.Buffer
		input := "0 0\n0 0\n1 0\n0 1\n1 1\n0 2\n"
		conf := testConfig(config.ModeConsole, 1)

		// When: the application runs
		err := Run(ctx, logger, conf, IO{In: strings.NewReader(input), Out: &out})

		// Then: the first mover wins on the top row
		require.NoError(t, err)
		assert.Equal(t, 1, countResults(out.String()))
		assert.Contains(t, out.String(), " wins!\n")
	})

	t.Run("Console mode stops quietly when input ends", func(t *testing.T) {
		var out bytes.Buffer
		conf := testConfig(config.ModeConsole, 2)

		err := Run(ctx, logger, conf, IO{In: strings.NewReader("1 1\n"), Out: &out})

		require.NoError(t, err)
		assert.Zero(t, countResults(out.String()))
	})

	t.Run("Unknown mode", func(t *testing.T) {
		err := Run(ctx, logger, testConfig("network", 1), IO{Out: io.Discard})

		require.ErrorIs(t, err, ErrUnknownMode)
	})
}
