package apperror

import (
	"errors"
	"fmt"
)

// Error kinds. Every concrete error below wraps exactly one of them.
var (
	ErrInvalidState    = errors.New("invalid state")
	ErrInvalidArgument = errors.New("invalid argument")
)

var (
	ErrGameFinished    = fmt.Errorf("%w: game is already finished", ErrInvalidState)
	ErrGameNotFinished = fmt.Errorf("%w: game is not finished", ErrInvalidState)
	ErrCellOccupied    = fmt.Errorf("%w: cell is already occupied", ErrInvalidArgument)
	ErrInvalidCell     = fmt.Errorf("%w: invalid cell index", ErrInvalidArgument)
)
