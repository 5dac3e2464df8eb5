package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/config"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

const helpMessage = `-----------------------
Welcome to Tic Tac Toe!
-----------------------

Available commands:
- play: Start a new game
- row,col: Place your mark, rows and columns are numbered 0 to 2 (e.g. 1,2)
- help: Display this help message
- exit: Exit the game
`

const (
	exitMessage    = "Exiting game..."
	invalidMessage = "Invalid command"
)

type gameUseCase interface {
	NewGame(ctx context.Context) (entity.Game, error)
	MakeTurn(ctx context.Context, row, col int) (entity.Game, error)
}

type Console struct {
	logger      *slog.Logger
	gameUseCase gameUseCase

	prompt  string
	noColor bool
}

func New(logger *slog.Logger, gameUseCase gameUseCase, conf config.Console) *Console {
	return &Console{
		logger:      logger.With("component", "console"),
		gameUseCase: gameUseCase,
		prompt:      conf.Prompt,
		noColor:     conf.NoColor,
	}
}

// Start - reads commands from in line by line until exit, EOF or ctx cancellation.
func (that *Console) Start(ctx context.Context, in io.Reader, out io.Writer) error {
	log := that.logger.With("method", "Start")

	w := that.newWriter(out)
	w.println(helpMessage)

	scanner := bufio.NewScanner(in)
	for {
		w.print(that.prompt)
		if w.err != nil {
			return fmt.Errorf("failed to write output: %w", w.err)
		}

		if !scanner.Scan() {
			break
		}

		if err := ctx.Err(); err != nil {
			log.Info("console stopped", "reason", err)
			return nil
		}

		cmd, err := parseCommand(scanner.Text())
		if err != nil {
			w.println(errorMessage(err))
			continue
		}

		done, err := that.handle(ctx, w, cmd)
		if err != nil {
			return err
		}

		if done {
			break
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	if w.err != nil {
		return fmt.Errorf("failed to write output: %w", w.err)
	}

	log.Info("console closed")

	return nil
}

// handle runs a single command and reports whether the console should stop.
func (that *Console) handle(ctx context.Context, w *writer, cmd command) (bool, error) {
	switch cmd.kind {
	case commandPlay:
		game, err := that.gameUseCase.NewGame(ctx)
		if err != nil {
			return false, fmt.Errorf("failed to start game: %w", err)
		}

		w.println("New game started.")
		that.printGame(w, game)
	case commandMove:
		game, err := that.gameUseCase.MakeTurn(ctx, cmd.row, cmd.col)
		if err != nil {
			msg := errorMessage(err)
			if msg == "" {
				return false, fmt.Errorf("failed to make turn: %w", err)
			}

			w.println(msg)
			return false, nil
		}

		that.printGame(w, game)
	case commandHelp:
		w.println(helpMessage)
	case commandExit:
		w.println(exitMessage)
		return true, nil
	case commandInvalid:
		w.println(invalidMessage)
	default:
		return false, fmt.Errorf("unknown command kind %d", cmd.kind)
	}

	return false, nil
}

func (that *Console) printGame(w *writer, game entity.Game) {
	w.println(game.Board().Render())

	outcome := game.Outcome()
	switch outcome.Status {
	case entity.StatusInPlay:
		w.println(fmt.Sprintf("Player %s's turn", game.Turn()))
	case entity.StatusWin:
		w.println(w.highlight(fmt.Sprintf("Player %s wins!", outcome.Winner), "2"))
	case entity.StatusDraw:
		w.println(w.highlight("It's a draw!", "3"))
	default:
		w.println(w.highlight(outcome.String(), "1"))
	}
}

// errorMessage translates known errors into text for the player. Unknown errors map to "".
func errorMessage(err error) string {
	switch {
	case errors.Is(err, apperror.ErrOutOfBounds):
		return "Position out of bounds"
	case errors.Is(err, apperror.ErrAlreadyOccupied):
		return "Position already occupied"
	case errors.Is(err, apperror.ErrGameOver):
		return "Game is over. Type 'play' to start a new game."
	case errors.Is(err, apperror.ErrNoActiveGame):
		return "No active game. Type 'play' to start."
	case errors.Is(err, ErrMalformedMove):
		return "Invalid move: use row,col with numbers from 0 to 2"
	default:
		return ""
	}
}

type writer struct {
	out    io.Writer
	output *termenv.Output
	err    error
}

func (that *Console) newWriter(out io.Writer) *writer {
	output := termenv.NewOutput(out)
	if that.noColor {
		output = termenv.NewOutput(out, termenv.WithProfile(termenv.Ascii))
	}

	return &writer{out: out, output: output}
}

func (that *writer) print(s string) {
	if that.err != nil {
		return
	}
	_, that.err = io.WriteString(that.out, s)
}

func (that *writer) println(s string) {
	that.print(s + "\n")
}

func (that *writer) highlight(s, color string) string {
	return that.output.String(s).Foreground(that.output.Color(color)).Bold().String()
}
