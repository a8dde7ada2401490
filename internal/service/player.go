package service

import (
	"context"
	"errors"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var (
	ErrEmptyBoard  = errors.New("board has no cells")
	ErrInputClosed = errors.New("input closed")
)

// MoveSource proposes the next move for the current board. Proposals may be
// illegal; the engine is the one that accepts or rejects them.
type MoveSource interface {
	NextMove(ctx context.Context, board entity.Board) (row, col int, err error)
}
