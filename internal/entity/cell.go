package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
)

// Cell is the content of a single board position.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellX
	CellO
)

func (that Cell) String() string {
	switch that {
	case CellX:
		return "X"
	case CellO:
		return "O"
	case CellEmpty:
		return " "
	default:
		return fmt.Sprintf("Cell(%d)", uint8(that))
	}
}

// IsMark reports whether the cell value can be placed by a player.
func (that Cell) IsMark() bool {
	switch that {
	case CellX, CellO:
		return true
	case CellEmpty:
		return false
	default:
		return false
	}
}

// Opponent returns the other player's mark.
func (that Cell) Opponent() (Cell, error) {
	switch that {
	case CellX:
		return CellO, nil
	case CellO:
		return CellX, nil
	case CellEmpty:
		return CellEmpty, fmt.Errorf("%w: empty cell has no opponent", apperror.ErrInvalidMark)
	default:
		return CellEmpty, fmt.Errorf("%w: %s", apperror.ErrInvalidMark, that)
	}
}

type Status uint8

const (
	StatusInPlay Status = iota
	StatusWin
	StatusDraw
)

var ErrUnknownOutcome = errors.New("unknown game outcome")

// Outcome is the classification of a game. Winner is only meaningful for StatusWin.
type Outcome struct {
	Status Status
	Winner Cell
}

func InPlay() Outcome {
	return Outcome{Status: StatusInPlay}
}

func Win(mark Cell) Outcome {
	return Outcome{Status: StatusWin, Winner: mark}
}

func Draw() Outcome {
	return Outcome{Status: StatusDraw}
}

// IsTerminal reports whether no further moves are accepted.
func (that Outcome) IsTerminal() bool {
	switch that.Status {
	case StatusWin, StatusDraw:
		return true
	case StatusInPlay:
		return false
	default:
		return false
	}
}

func (that Outcome) String() string {
	switch that.Status {
	case StatusInPlay:
		return "in play"
	case StatusWin:
		return that.Winner.String() + " wins"
	case StatusDraw:
		return "draw"
	default:
		return fmt.Sprintf("Outcome(%d)", uint8(that.Status))
	}
}
