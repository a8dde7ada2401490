package tictactoe

import "github.com/rocketscienceinc/tictactoe-engine/internal/entity"

type direction struct {
	rowStep, colStep int
}

var (
	horizontal   = direction{rowStep: 0, colStep: 1}
	vertical     = direction{rowStep: 1, colStep: 0}
	diagonal     = direction{rowStep: 1, colStep: 1}
	antiDiagonal = direction{rowStep: -1, colStep: 1}

	directions = []direction{horizontal, vertical, diagonal, antiDiagonal}
)

// isWinningMove checks every line through (row, col). Any run that did not
// pass through the new mark already existed and would have ended the game
// earlier, so these four lines are the only ones that can hold a new win.
func (that *Engine) isWinningMove(row, col int) bool {
	for _, dir := range directions {
		startRow, startCol := lineStart(that.board, row, col, dir)
		if isSequenceWin(that.board, startRow, startCol, dir, that.winningSequenceLength) {
			return true
		}
	}

	return false
}

// lineStart walks backwards from (row, col) to the first cell of its line.
func lineStart(board entity.Board, row, col int, dir direction) (int, int) {
	for board.Contains(row-dir.rowStep, col-dir.colStep) {
		row -= dir.rowStep
		col -= dir.colStep
	}

	return row, col
}

// isSequenceWin scans from (startRow, startCol) in dir while on the board.
// The run counter restarts at 1 on every change of mark or on an empty
// cell, and is only compared with length when a run is extended, so a
// length below 2 never wins.
func isSequenceWin(board entity.Board, startRow, startCol int, dir direction, length int) bool {
	count := 0
	last := entity.Empty

	for row, col := startRow, startCol; board.Contains(row, col); row, col = row+dir.rowStep, col+dir.colStep {
		cell := board[row][col]
		if cell != entity.Empty && cell == last {
			count++

			if count == length {
				return true
			}

			continue
		}

		count = 1
		last = cell
	}

	return false
}
