package service

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type BotService interface {
	MakeTurn(game *entity.Game) error
}

type botService struct {
	logger     *slog.Logger
	engineOpts []minimax.Option
}

// NewBotService returns a bot that plays the computer's turn with minimax search.
// exhaustive disables alpha-beta pruning.
func NewBotService(logger *slog.Logger, exhaustive bool) BotService {
	var opts []minimax.Option
	if exhaustive {
		opts = append(opts, minimax.WithoutPruning())
	}

	return &botService{
		logger:     logger.With("component", "bot"),
		engineOpts: opts,
	}
}

func (that *botService) MakeTurn(game *entity.Game) error {
	log := that.logger.With("method", "MakeTurn", "gameID", game.ID)

	// one engine per search so concurrent games never share statistics
	engine := minimax.New(that.engineOpts...)

	move, err := engine.FindBestMove(&game.Board)
	if err != nil {
		return fmt.Errorf("failed to find best move: %w", err)
	}

	stats := engine.Stats()
	log.Debug("search finished",
		"move", move.String(),
		"pruning", engine.Pruning(),
		"nodes", stats.Nodes,
		"cutoffs", stats.Cutoffs,
		"maxDepth", stats.MaxDepth,
	)

	if err = game.MakeTurn(tictactoe.Computer, move); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	return nil
}
