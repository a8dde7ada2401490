package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Console prints boards and results as plain text.
type Console struct {
	out io.Writer
}

func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

// DrawBoard prints one row per line, each symbol followed by a space.
func (that *Console) DrawBoard(board entity.Board) {
	w := bufio.NewWriter(that.out)
	for _, row := range board {
		for _, cell := range row {
			fmt.Fprintf(w, "%c ", cell.Symbol())
		}
		fmt.Fprintln(w)
	}
	_ = w.Flush()
}

func (that *Console) AnnounceWinner(mark entity.Cell) {
	fmt.Fprintf(that.out, "Player %s (%c) wins!\n", mark.Name(), mark.Symbol())
}

func (that *Console) AnnounceDraw() {
	fmt.Fprintln(that.out, "It's a draw!")
}
