package service

import (
	"context"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/random"
)

// RandomPlayer picks uniformly random coordinates on the board, occupied
// cells included.
type RandomPlayer struct {
	random random.Source
}

func NewRandomPlayer(src random.Source) *RandomPlayer {
	return &RandomPlayer{random: src}
}

func (that *RandomPlayer) NextMove(ctx context.Context, board entity.Board) (int, int, error) {
	if err := ctx.Err(); err != nil {
		return 0, 0, err
	}

	size := board.Size()
	if size == 0 {
		return 0, 0, ErrEmptyBoard
	}

	return that.random.IntN(size), that.random.IntN(size), nil
}
