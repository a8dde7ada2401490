package service

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// ConsolePlayer reads moves typed as "row col", one per line.
type ConsolePlayer struct {
	scanner *bufio.Scanner
	prompt  io.Writer
}

func NewConsolePlayer(in io.Reader, prompt io.Writer) *ConsolePlayer {
	return &ConsolePlayer{
		scanner: bufio.NewScanner(in),
		prompt:  prompt,
	}
}

// NextMove blocks on the next input line. A malformed line is reported as
// apperror.ErrInvalidArgument so the caller can ask again.
func (that *ConsolePlayer) NextMove(ctx context.Context, board entity.Board) (int, int, error) {
	if err := ctx.Err(); err != nil {
		return 0, 0, err
	}

	fmt.Fprintf(that.prompt, "move (row col, 0-%d): ", board.Size()-1)

	if !that.scanner.Scan() {
		if err := that.scanner.Err(); err != nil {
			return 0, 0, fmt.Errorf("read move: %w", err)
		}
		return 0, 0, ErrInputClosed
	}

	return parseMove(that.scanner.Text())
}

func parseMove(line string) (int, int, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: expected \"row col\", got %q", apperror.ErrInvalidArgument, line)
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: row %q", apperror.ErrInvalidArgument, fields[0])
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: col %q", apperror.ErrInvalidArgument, fields[1])
	}

	return row, col, nil
}
