package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/pkg"
)

// GameManager serializes every access to the current game behind a single lock.
type GameManager struct {
	logger *slog.Logger

	mu     sync.Mutex
	gameID string
	game   *entity.Game
}

func NewGameManager(logger *slog.Logger) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),
	}
}

// NewGame - drops the current game, if any, and starts a new one.
func (that *GameManager) NewGame(ctx context.Context) (entity.Game, error) {
	if err := ctx.Err(); err != nil {
		return entity.Game{}, err
	}

	gameID, err := pkg.GenerateGameID()
	if err != nil {
		return entity.Game{}, fmt.Errorf("failed to create game: %w", err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if that.game != nil && !that.game.IsFinished() {
		that.logger.Info("game abandoned", "gameID", that.gameID, "moves", that.game.Moves())
	}

	that.gameID = gameID
	that.game = entity.NewGame()

	that.logger.Info("game started", "gameID", gameID)

	return *that.game, nil
}

// MakeTurn - plays the current player's mark at (row, col) and returns the resulting game.
func (that *GameManager) MakeTurn(ctx context.Context, row, col int) (entity.Game, error) {
	if err := ctx.Err(); err != nil {
		return entity.Game{}, err
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if that.game == nil {
		return entity.Game{}, apperror.ErrNoActiveGame
	}

	log := that.logger.With("gameID", that.gameID)

	mark := that.game.Turn()
	if err := that.game.PlayMove(row, col); err != nil {
		log.Debug("move rejected", "mark", mark.String(), "row", row, "col", col, "error", err)

		return *that.game, fmt.Errorf("failed to make turn: %w", err)
	}

	log.Debug("move played", "mark", mark.String(), "row", row, "col", col)

	outcome := that.game.Outcome()
	switch outcome.Status {
	case entity.StatusWin:
		log.Info("game finished", "winner", outcome.Winner.String(), "moves", that.game.Moves())
	case entity.StatusDraw:
		log.Info("game finished", "winner", "none", "moves", that.game.Moves())
	case entity.StatusInPlay:
	default:
		return *that.game, fmt.Errorf("%w: %d", entity.ErrUnknownOutcome, outcome.Status)
	}

	return *that.game, nil
}

// CurrentGame returns a copy of the game being played.
func (that *GameManager) CurrentGame(ctx context.Context) (entity.Game, error) {
	if err := ctx.Err(); err != nil {
		return entity.Game{}, err
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if that.game == nil {
		return entity.Game{}, apperror.ErrNoActiveGame
	}

	return *that.game, nil
}

func (that *GameManager) GameID() string {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.gameID
}
