package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var ErrTooManyAttempts = errors.New("too many move attempts")

// Game is the engine surface a match needs.
type Game interface {
	Move(row, col int) error
	IsGameOver() bool
	Winner() (entity.Cell, error)
	Board() entity.Board
}

type moveSource interface {
	NextMove(ctx context.Context, board entity.Board) (row, col int, err error)
}

type Result struct {
	Winner   entity.Cell
	Moves    int
	Rejected int
}

type Summary struct {
	Games int
	Wins  map[entity.Cell]int
	Draws int
}

type Match struct {
	logger *slog.Logger

	source      moveSource
	maxAttempts int
}

// NewMatch creates a driver that asks source for moves. A maxAttempts of zero
// or less means no limit.
func NewMatch(logger *slog.Logger, source moveSource, maxAttempts int) *Match {
	return &Match{
		logger:      logger.With("component", "match"),
		source:      source,
		maxAttempts: maxAttempts,
	}
}

// Play drives game until it is over. Moves rejected with
// apperror.ErrInvalidArgument are counted and retried; any other error ends
// the match.
func (that *Match) Play(ctx context.Context, game Game) (*Result, error) {
	log := that.logger.With("method", "Play")

	result := &Result{}
	for attempts := 0; !game.IsGameOver(); attempts++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("match interrupted: %w", err)
		}

		if that.maxAttempts > 0 && attempts >= that.maxAttempts {
			return nil, fmt.Errorf("%w: %d", ErrTooManyAttempts, attempts)
		}

		row, col, err := that.source.NextMove(ctx, game.Board())
		if err == nil {
			err = game.Move(row, col)
		}

		if errors.Is(err, apperror.ErrInvalidArgument) {
			result.Rejected++
			log.Debug("move rejected", "row", row, "col", col, "error", err)
			continue
		}

		if err != nil {
			return nil, fmt.Errorf("failed to make move: %w", err)
		}

		result.Moves++
	}

	winner, err := game.Winner()
	if err != nil {
		return nil, fmt.Errorf("failed to get winner: %w", err)
	}
	result.Winner = winner

	log.Info("match finished", "winner", winner.Name(), "moves", result.Moves, "rejected", result.Rejected)

	return result, nil
}

// PlayMany plays n games created by newGame, one after another.
func (that *Match) PlayMany(ctx context.Context, n int, newGame func() Game) (*Summary, error) {
	summary := &Summary{Wins: map[entity.Cell]int{}}

	for i := range n {
		result, err := that.Play(ctx, newGame())
		if err != nil {
			return summary, fmt.Errorf("game %d: %w", i+1, err)
		}

		summary.Games++
		if result.Winner == entity.Draw {
			summary.Draws++
		} else {
			summary.Wins[result.Winner]++
		}
	}

	return summary, nil
}
