package entity

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

// Board is a square grid indexed as board[row][col].
type Board [][]Cell

// NewBoard allocates a size x size board filled with Empty.
// A negative size yields an empty board.
func NewBoard(size int) Board {
	if size < 0 {
		size = 0
	}

	// Empty is the zero Cell, so fresh rows need no fill.
	board := make(Board, size)
	for row := range board {
		board[row] = make([]Cell, size)
	}

	return board
}

func (that Board) Size() int {
	return len(that)
}

// Contains reports whether (row, col) lies on the board.
func (that Board) Contains(row, col int) bool {
	return row >= 0 && row < len(that) && col >= 0 && col < len(that[row])
}

// IsFull reports whether no Empty cell remains.
func (that Board) IsFull() bool {
	for _, row := range that {
		for _, cell := range row {
			if cell == Empty {
				return false
			}
		}
	}

	return true
}

// Clone returns a deep copy of the board.
func (that Board) Clone() Board {
	board := make(Board, len(that))
	for row := range that {
		board[row] = append([]Cell(nil), that[row]...)
	}

	return board
}
