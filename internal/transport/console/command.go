package console

import (
	"errors"
	"strconv"
	"strings"
)

var ErrMalformedMove = errors.New("move must be two non-negative integers in the form row,col")

type commandKind int

const (
	commandInvalid commandKind = iota
	commandPlay
	commandHelp
	commandExit
	commandMove
)

type command struct {
	kind     commandKind
	row, col int
}

// parseCommand - turns one input line into a command. Lines containing a comma are moves.
func parseCommand(line string) (command, error) {
	line = strings.TrimSpace(line)

	switch line {
	case "play":
		return command{kind: commandPlay}, nil
	case "help":
		return command{kind: commandHelp}, nil
	case "exit":
		return command{kind: commandExit}, nil
	}

	if !strings.Contains(line, ",") {
		return command{kind: commandInvalid}, nil
	}

	row, col, err := parseMove(line)
	if err != nil {
		return command{kind: commandInvalid}, err
	}

	return command{kind: commandMove, row: row, col: col}, nil
}

func parseMove(line string) (int, int, error) {
	parts := strings.Split(line, ",")
	if len(parts) != 2 {
		return 0, 0, ErrMalformedMove
	}

	coords := make([]int, 0, len(parts))
	for _, part := range parts {
		value, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || value < 0 {
			return 0, 0, ErrMalformedMove
		}
		coords = append(coords, value)
	}

	return coords[0], coords[1], nil
}
