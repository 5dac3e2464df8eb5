package console

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/config"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/testing/suite"
)

const emptyBoard = "  |   |  \n---------\n  |   |  \n---------\n  |   |  "

var errStorageDown = errors.New("storage down")

func run(t *testing.T, input string) string {
	t.Helper()

	ctx, st := suite.New(t)
	console := New(st.Logger, st.GameManager, config.Console{NoColor: true})

	var out bytes.Buffer
	err := console.Start(ctx, strings.NewReader(input), &out)
	require.NoError(t, err)

	return out.String()
}

func TestConsole_Start(t *testing.T) {
	t.Run("Prints help on start", func(t *testing.T) {
		// When: the console starts with no input
		output := run(t, "")

		// Then: the help message is printed
		assert.Contains(t, output, helpMessage)
	})

	t.Run("Displays the board on play", func(t *testing.T) {
		output := run(t, "play\nexit\n")

		assert.Contains(t, output, "New game started.")
		assert.Contains(t, output, emptyBoard)
		assert.Contains(t, output, "Player X's turn")
	})

	t.Run("Exit stops reading", func(t *testing.T) {
		// When: commands follow exit
		output := run(t, "exit\nplay\n")

		// Then: the console stops at exit
		assert.Contains(t, output, exitMessage)
		assert.NotContains(t, output, "New game started.")
	})

	t.Run("Invalid command", func(t *testing.T) {
		output := run(t, "unknown\nexit\n")

		assert.Contains(t, output, invalidMessage)
	})

	t.Run("Help command", func(t *testing.T) {
		output := run(t, "help\nexit\n")

		assert.Equal(t, 2, strings.Count(output, helpMessage))
	})

	t.Run("Move without a game", func(t *testing.T) {
		output := run(t, "1,1\nexit\n")

		assert.Contains(t, output, "No active game. Type 'play' to start.")
	})

	t.Run("Malformed move never reaches the game", func(t *testing.T) {
		// When: a malformed move is followed by a valid one
		output := run(t, "play\n1,x\n-1,0\n1,1\nexit\n")

		// Then: both malformed lines are rejected and X still makes the first move
		assert.Equal(t, 2, strings.Count(output, "Invalid move: use row,col with numbers from 0 to 2"))
		assert.Contains(t, output, "  |   |  \n---------\n  | X |  \n---------\n  |   |  ")
		assert.Contains(t, output, "Player O's turn")
	})

	t.Run("Engine errors are reported", func(t *testing.T) {
		output := run(t, "play\n3,0\n0,0\n0,0\nexit\n")

		assert.Contains(t, output, "Position out of bounds")
		assert.Contains(t, output, "Position already occupied")
	})

	t.Run("Win and game over", func(t *testing.T) {
		// When: X completes the top row and a sixth move is attempted
		output := run(t, "play\n0,0\n1,0\n0,1\n1,1\n0,2\n2,2\nexit\n")

		// Then: X is announced and the extra move is refused
		assert.Contains(t, output, "X | X | X\n---------\nO | O |  \n---------\n  |   |  ")
		assert.Contains(t, output, "Player X wins!")
		assert.Contains(t, output, "Game is over. Type 'play' to start a new game.")
	})

	t.Run("Draw", func(t *testing.T) {
		output := run(t, "play\n0,0\n0,1\n0,2\n1,1\n1,0\n1,2\n2,1\n2,0\n2,2\nexit\n")

		assert.Contains(t, output, "It's a draw!")
	})

	t.Run("Play restarts a finished game", func(t *testing.T) {
		output := run(t, "play\n0,0\n1,0\n0,1\n1,1\n0,2\nplay\n2,2\nexit\n")

		assert.Contains(t, output, "Player X wins!")
		assert.Contains(t, output, "  |   |  \n---------\n  |   |  \n---------\n  |   | X")
	})

	t.Run("Writes the prompt before each line", func(t *testing.T) {
		ctx, st := suite.New(t)
		console := New(st.Logger, st.GameManager, config.Console{Prompt: "ttt> ", NoColor: true})

		var out bytes.Buffer
		require.NoError(t, console.Start(ctx, strings.NewReader("help\nexit\n"), &out))

		assert.Equal(t, 2, strings.Count(out.String(), "ttt> "))
	})

	t.Run("Stops on cancelled context", func(t *testing.T) {
		_, st := suite.New(t)
		console := New(st.Logger, st.GameManager, config.Console{NoColor: true})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var out bytes.Buffer
		err := console.Start(ctx, strings.NewReader("play\n"), &out)

		require.NoError(t, err)
		assert.NotContains(t, out.String(), "New game started.")
	})
}

type failingUseCase struct{}

func (failingUseCase) NewGame(context.Context) (entity.Game, error) {
	return entity.Game{}, errStorageDown
}

func (failingUseCase) MakeTurn(context.Context, int, int) (entity.Game, error) {
	return entity.Game{}, errStorageDown
}

func TestConsole_Start_UnexpectedErrors(t *testing.T) {
	t.Run("Play", func(t *testing.T) {
		ctx, st := suite.New(t)
		console := New(st.Logger, failingUseCase{}, config.Console{NoColor: true})

		err := console.Start(ctx, strings.NewReader("play\n"), &bytes.Buffer{})

		require.ErrorIs(t, err, errStorageDown)
	})

	t.Run("Move", func(t *testing.T) {
		ctx, st := suite.New(t)
		console := New(st.Logger, failingUseCase{}, config.Console{NoColor: true})

		err := console.Start(ctx, strings.NewReader("1,1\n"), &bytes.Buffer{})

		require.ErrorIs(t, err, errStorageDown)
	})
}

func TestErrorMessage(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("failed to make turn: %w", apperror.ErrOutOfBounds), "Position out of bounds"},
		{fmt.Errorf("failed to make turn: %w", apperror.ErrAlreadyOccupied), "Position already occupied"},
		{apperror.ErrGameOver, "Game is over. Type 'play' to start a new game."},
		{apperror.ErrNoActiveGame, "No active game. Type 'play' to start."},
		{ErrMalformedMove, "Invalid move: use row,col with numbers from 0 to 2"},
		{errStorageDown, ""},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, errorMessage(c.err), c.err.Error())
	}
}
