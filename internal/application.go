package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/random"
	"github.com/rocketscienceinc/tictactoe-engine/internal/render"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

var ErrUnknownMode = errors.New("unknown match mode")

// IO holds the streams the application talks to.
type IO struct {
	In  io.Reader
	Out io.Writer
}

// RunApp - runs the application until the configured games are over or a
// termination signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return Run(ctx, logger, conf, IO{In: os.Stdin, Out: os.Stdout})
}

// Run plays conf.Match.Games games with the players selected by conf.Match.Mode.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, streams IO) error {
	log := logger.With("component", "app")

	src, seed, err := random.NewFromSeed(conf.Match.Seed)
	if err != nil {
		return fmt.Errorf("could not create random source: %w", err)
	}

	var source service.MoveSource
	switch conf.Match.Mode {
	case config.ModeRandom:
		source = service.NewRandomPlayer(src)
	case config.ModeConsole:
		source = service.NewConsolePlayer(streams.In, streams.Out)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, conf.Match.Mode)
	}

	console := render.NewConsole(streams.Out)
	newGame := func() usecase.Game {
		return tictactoe.Start(conf.Board.Size, conf.Board.WinningSequenceLength,
			tictactoe.WithRandom(src),
			tictactoe.WithPresenter(console),
			tictactoe.WithLogger(logger),
		)
	}

	log.Info("Starting match",
		"mode", conf.Match.Mode,
		"games", conf.Match.Games,
		"board_size", conf.Board.Size,
		"winning_sequence_length", conf.Board.WinningSequenceLength,
		"seed", seed,
	)

	match := usecase.NewMatch(logger, source, conf.Match.MaxAttempts)
	summary, err := match.PlayMany(ctx, conf.Match.Games, newGame)
	if errors.Is(err, context.Canceled) || errors.Is(err, service.ErrInputClosed) {
		log.Info("Match stopped", "reason", err, "games", summary.Games)
		return nil
	}

	if err != nil {
		return fmt.Errorf("match failed: %w", err)
	}

	log.Info("Match finished",
		"games", summary.Games,
		"cross_wins", summary.Wins[entity.Cross],
		"circle_wins", summary.Wins[entity.Circle],
		"draws", summary.Draws,
	)

	return nil
}
