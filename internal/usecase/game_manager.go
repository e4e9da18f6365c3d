package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	UpdateByID(ctx context.Context, id string, update func(game *entity.Game) error) (*entity.Game, error)
}

type bot interface {
	MakeTurn(game *entity.Game) error
}

type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo
	bot      bot
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, bot bot) *GameManager {
	return &GameManager{
		logger: logger.With("component", "gameManager"),

		gameRepo: gameRepo,
		bot:      bot,
	}
}

// NewGame starts a session and plays the computer's opening move.
func (that *GameManager) NewGame(ctx context.Context) (*entity.Game, error) {
	game := entity.NewGame(uuid.NewString())

	if err := that.bot.MakeTurn(game); err != nil {
		return nil, fmt.Errorf("bot failed to make first turn: %w", err)
	}

	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game created", "gameID", game.ID)

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// MakeTurn applies the human's move and, unless that ended the game, the computer's reply.
// Both moves are stored atomically; a game finished by them is removed from storage and
// its final state is only in the returned game.
func (that *GameManager) MakeTurn(ctx context.Context, id string, move tictactoe.Move) (*entity.Game, error) {
	game, err := that.gameRepo.UpdateByID(ctx, id, func(game *entity.Game) error {
		if err := game.MakeTurn(tictactoe.Human, move); err != nil {
			return fmt.Errorf("failed to make turn: %w", err)
		}

		if game.IsFinished() {
			return nil
		}

		if err := that.bot.MakeTurn(game); err != nil {
			return fmt.Errorf("bot failed to make turn: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	if game.IsFinished() {
		that.logger.Info("game finished", "gameID", game.ID, "outcome", game.Outcome.String())
	}

	return game, nil
}
