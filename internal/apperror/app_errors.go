package apperror

import "errors"

var (
	ErrOutOfBounds     = errors.New("position out of bounds")
	ErrAlreadyOccupied = errors.New("position already occupied")
	ErrGameOver        = errors.New("game is already over")
	ErrInvalidMark     = errors.New("invalid mark")
	ErrNoActiveGame    = errors.New("no active game")
)
