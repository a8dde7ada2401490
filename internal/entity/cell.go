package entity

// Cell is a value held by a board cell or reported as a game result.
// Draw is a result only and never stored on a board.
type Cell int

const (
	Empty Cell = iota
	Cross
	Circle
	Draw
)

type cellInfo struct {
	symbol rune
	name   string
}

var cells = map[Cell]cellInfo{
	Circle: {symbol: 'O', name: "round"},
	Cross:  {symbol: 'X', name: "cross"},
	Empty:  {symbol: '-', name: "empty"},
	Draw:   {symbol: 'D', name: "draw"},
}

// Symbol returns the single character used to display the cell.
func (that Cell) Symbol() rune {
	if info, ok := cells[that]; ok {
		return info.symbol
	}
	return '?'
}

// Name returns the human readable name of the cell.
func (that Cell) Name() string {
	if info, ok := cells[that]; ok {
		return info.name
	}
	return "unknown"
}

func (that Cell) String() string {
	return string(that.Symbol())
}

// IsMark reports whether the cell is a player mark.
func (that Cell) IsMark() bool {
	return that == Cross || that == Circle
}

// Opponent returns the other player mark. Non-mark values are returned as is.
func (that Cell) Opponent() Cell {
	switch that {
	case Cross:
		return Circle
	case Circle:
		return Cross
	default:
		return that
	}
}
