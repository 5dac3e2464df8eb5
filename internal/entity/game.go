package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
)

type position struct {
	row, col int
}

// Game owns a board together with the turn and outcome state.
type Game struct {
	board   Board
	turn    Cell
	outcome Outcome
	moves   int
}

func NewGame() *Game {
	return &Game{
		board:   NewBoard(),
		turn:    CellX,
		outcome: InPlay(),
	}
}

// Board returns a copy of the game board.
func (that *Game) Board() Board {
	return that.board
}

// Turn is the mark to move next. After the game ends it stays on the last mover.
func (that *Game) Turn() Cell {
	return that.turn
}

func (that *Game) Outcome() Outcome {
	return that.outcome
}

func (that *Game) Moves() int {
	return that.moves
}

func (that *Game) IsFinished() bool {
	return that.outcome.IsTerminal()
}

func (that *Game) ConfirmInPlay() error {
	switch that.outcome.Status {
	case StatusInPlay:
		return nil
	case StatusWin, StatusDraw:
		return apperror.ErrGameOver
	default:
		return fmt.Errorf("%w: %d", ErrUnknownOutcome, that.outcome.Status)
	}
}

// PlayMove - places the current mark at (row, col), evaluates the outcome and passes the turn.
// On error nothing is changed.
func (that *Game) PlayMove(row, col int) error {
	if err := that.ConfirmInPlay(); err != nil {
		return err
	}

	next, err := that.turn.Opponent()
	if err != nil {
		return err
	}

	if err = that.board.PlacePiece(row, col, that.turn); err != nil {
		return err
	}

	that.moves++

	switch {
	case that.completesLine(row, col):
		that.outcome = Win(that.turn)
	case that.board.IsFull():
		that.outcome = Draw()
	default:
		that.turn = next
	}

	return nil
}

// completesLine checks only the lines passing through the last placed cell.
func (that *Game) completesLine(row, col int) bool {
	mark := that.board.grid[row][col]

	for _, line := range linesThrough(row, col) {
		complete := true
		for _, pos := range line {
			if that.board.grid[pos.row][pos.col] != mark {
				complete = false
				break
			}
		}

		if complete {
			return true
		}
	}

	return false
}

func linesThrough(row, col int) [][Size]position {
	var rowLine, colLine, mainDiag, antiDiag [Size]position
	for i := 0; i < Size; i++ {
		rowLine[i] = position{row, i}
		colLine[i] = position{i, col}
		mainDiag[i] = position{i, i}
		antiDiag[i] = position{i, Size - 1 - i}
	}

	lines := make([][Size]position, 0, 4)
	lines = append(lines, rowLine, colLine)

	if row == col {
		lines = append(lines, mainDiag)
	}

	if row+col == Size-1 {
		lines = append(lines, antiDiag)
	}

	return lines
}
