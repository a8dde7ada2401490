package tictactoe

import (
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/random"
)

const (
	DefaultBoardSize             = 3
	DefaultWinningSequenceLength = 3
)

// presenter receives the final board and the result when a game ends.
type presenter interface {
	DrawBoard(board entity.Board)
	AnnounceWinner(mark entity.Cell)
	AnnounceDraw()
}

// Engine owns the board of a single game and enforces its rules.
// It is not safe for concurrent use.
type Engine struct {
	logger    *slog.Logger
	presenter presenter

	board                 entity.Board
	currentPlayer         entity.Cell
	winningSequenceLength int
	gameOver              bool
	moves                 int
	lastMark              entity.Cell
}

type settings struct {
	logger      *slog.Logger
	presenter   presenter
	random      random.Source
	firstPlayer entity.Cell
}

type Option func(*settings)

// WithRandom sets the source used to pick the starting player.
func WithRandom(src random.Source) Option {
	return func(s *settings) {
		s.random = src
	}
}

// WithPresenter sets the collaborator notified at game over.
func WithPresenter(p presenter) Option {
	return func(s *settings) {
		s.presenter = p
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithFirstPlayer forces the starting mark instead of drawing it at random.
// Values other than Cross and Circle are ignored.
func WithFirstPlayer(mark entity.Cell) Option {
	return func(s *settings) {
		if mark.IsMark() {
			s.firstPlayer = mark
		}
	}
}

// Start creates a game on an empty boardSize x boardSize board. Neither
// argument is validated: a sequence longer than the board gives a game that
// can only end in a draw.
func Start(boardSize, winningSequenceLength int, opts ...Option) *Engine {
	s := settings{firstPlayer: entity.Empty}
	for _, opt := range opts {
		opt(&s)
	}

	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if s.presenter == nil {
		s.presenter = nopPresenter{}
	}

	currentPlayer := s.firstPlayer
	if !currentPlayer.IsMark() {
		if s.random == nil {
			s.random = random.NewDefault()
		}
		currentPlayer = randomPlayer(s.random)
	}

	return &Engine{
		logger:                s.logger.With("component", "tictactoe"),
		presenter:             s.presenter,
		board:                 entity.NewBoard(boardSize),
		currentPlayer:         currentPlayer,
		winningSequenceLength: winningSequenceLength,
	}
}

// StartDefault creates a 3x3 game won by three in a row.
func StartDefault(opts ...Option) *Engine {
	return Start(DefaultBoardSize, DefaultWinningSequenceLength, opts...)
}

func randomPlayer(src random.Source) entity.Cell {
	if src.IntN(2) == 0 {
		return entity.Cross
	}
	return entity.Circle
}

// Move places the current player's mark at (row, col).
//
// It fails with apperror.ErrGameFinished once the game is over, and with
// apperror.ErrInvalidCell or apperror.ErrCellOccupied when the target is off
// the board or taken. A rejected move changes nothing.
func (that *Engine) Move(row, col int) error {
	if that.gameOver {
		return apperror.ErrGameFinished
	}

	if !that.board.Contains(row, col) {
		return apperror.ErrInvalidCell
	}

	if that.board[row][col] != entity.Empty {
		return apperror.ErrCellOccupied
	}

	mark := that.currentPlayer
	that.board[row][col] = mark
	that.moves++
	that.lastMark = mark

	that.logger.Debug("move accepted", "mark", mark.Name(), "row", row, "col", col, "move", that.moves)

	if that.isWinningMove(row, col) {
		that.gameOver = true

		that.logger.Info("game over", "winner", mark.Name(), "moves", that.moves)
		that.presenter.DrawBoard(that.Board())
		that.presenter.AnnounceWinner(mark)

		return nil
	}

	that.currentPlayer = that.currentPlayer.Opponent()

	if that.board.IsFull() {
		that.gameOver = true

		that.logger.Info("game over", "winner", entity.Draw.Name(), "moves", that.moves)
		that.presenter.DrawBoard(that.Board())
		that.presenter.AnnounceDraw()
	}

	return nil
}

func (that *Engine) IsGameOver() bool {
	return that.gameOver
}

// Winner returns the mark of the winning player, or entity.Draw.
//
// A full board is always reported as entity.Draw, even when the move that
// filled it also completed a winning run.
func (that *Engine) Winner() (entity.Cell, error) {
	if !that.gameOver {
		return entity.Empty, apperror.ErrGameNotFinished
	}

	if that.board.IsFull() {
		return entity.Draw, nil
	}

	// A game that is over on a non-full board was won by the last move.
	return that.lastMark, nil
}

// Board returns a copy of the grid.
func (that *Engine) Board() entity.Board {
	return that.board.Clone()
}

// CurrentPlayer returns the mark that moves next, or the winning mark once
// the game has been won.
func (that *Engine) CurrentPlayer() entity.Cell {
	return that.currentPlayer
}

func (that *Engine) Size() int {
	return that.board.Size()
}

func (that *Engine) WinningSequenceLength() int {
	return that.winningSequenceLength
}

// Moves returns the number of accepted moves.
func (that *Engine) Moves() int {
	return that.moves
}

func (that *Engine) Status() string {
	if that.gameOver {
		return entity.StatusFinished
	}
	return entity.StatusOngoing
}

type nopPresenter struct{}

func (nopPresenter) DrawBoard(entity.Board)    {}
func (nopPresenter) AnnounceWinner(entity.Cell) {}
func (nopPresenter) AnnounceDraw()              {}
