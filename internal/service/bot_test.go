package service

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestBotService_MakeTurn(t *testing.T) {
	t.Run("Opens the game in the first cell", func(t *testing.T) {
		// Given: a new game
		game := entity.NewGame("123")
		bot := NewBotService(newTestLogger(), false)

		// When: the bot takes its turn
		err := bot.MakeTurn(game)

		// Then: the computer holds (0, 0) and the human is to move
		require.NoError(t, err)
		assert.Equal(t, tictactoe.Computer, game.Board[0][0])
		assert.Equal(t, &tictactoe.Move{Row: 0, Col: 0}, game.LastMove)
		assert.Equal(t, entity.TurnHuman, game.Turn)
	})

	t.Run("Takes the win", func(t *testing.T) {
		// Given: the computer can complete row 0
		game := entity.NewGame("123")
		game.Board = tictactoe.Board{
			{tictactoe.Computer, tictactoe.Computer, tictactoe.Empty},
			{tictactoe.Human, tictactoe.Human, tictactoe.Empty},
			{tictactoe.Empty, tictactoe.Empty, tictactoe.Empty},
		}

		// When: the exhaustive bot takes its turn
		err := NewBotService(newTestLogger(), true).MakeTurn(game)

		// Then: the game is finished with a computer win
		require.NoError(t, err)
		assert.Equal(t, tictactoe.ComputerWins, game.Outcome)
		assert.True(t, game.IsFinished())
	})

	t.Run("Refuses to move when it is not its turn", func(t *testing.T) {
		// Given: a game where the human is to move
		game := entity.NewGame("123")
		game.Turn = entity.TurnHuman

		// When: the bot takes its turn
		err := NewBotService(newTestLogger(), false).MakeTurn(game)

		// Then: ErrNotYourTurn is returned and the board is untouched
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, tictactoe.Board{}, game.Board)
	})

	t.Run("Full board has no legal move", func(t *testing.T) {
		// Given: a game on a full board
		game := entity.NewGame("123")
		game.Board = tictactoe.Board{
			{tictactoe.Computer, tictactoe.Human, tictactoe.Computer},
			{tictactoe.Computer, tictactoe.Human, tictactoe.Human},
			{tictactoe.Human, tictactoe.Computer, tictactoe.Computer},
		}

		// When: the bot takes its turn
		err := NewBotService(newTestLogger(), false).MakeTurn(game)

		// Then: ErrNoLegalMove is returned
		require.ErrorIs(t, err, apperror.ErrNoLegalMove)
	})
}
