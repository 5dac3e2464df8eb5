package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
)

const Size = 3

const (
	cellDelimiter = " | "
	rowDivider    = "---------"
)

// Board is a fixed 3x3 grid. The zero value is an empty board.
type Board struct {
	grid [Size][Size]Cell
}

func NewBoard() Board {
	return Board{}
}

// PlacePiece puts mark on an empty cell. A rejected call leaves the grid untouched.
func (that *Board) PlacePiece(row, col int, mark Cell) error {
	if !inBounds(row, col) {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrOutOfBounds, row, col)
	}

	if !mark.IsMark() {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidMark, mark.String())
	}

	if that.grid[row][col] != CellEmpty {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrAlreadyOccupied, row, col)
	}

	that.grid[row][col] = mark

	return nil
}

func (that Board) Cell(row, col int) (Cell, error) {
	if !inBounds(row, col) {
		return CellEmpty, fmt.Errorf("%w: row %d, col %d", apperror.ErrOutOfBounds, row, col)
	}

	return that.grid[row][col], nil
}

// Grid returns a copy of the cells, rows first.
func (that Board) Grid() [Size][Size]Cell {
	return that.grid
}

func (that Board) IsFull() bool {
	for _, row := range that.grid {
		for _, cell := range row {
			if cell == CellEmpty {
				return false
			}
		}
	}

	return true
}

// Render - returns the board as text, one line per row with divider lines between rows.
func (that Board) Render() string {
	rows := make([]string, 0, Size)
	for _, row := range that.grid {
		cells := make([]string, 0, Size)
		for _, cell := range row {
			cells = append(cells, cell.String())
		}
		rows = append(rows, strings.Join(cells, cellDelimiter))
	}

	return strings.Join(rows, "\n"+rowDivider+"\n")
}

func inBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}
