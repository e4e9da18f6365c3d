package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	TurnComputer = "computer"
	TurnHuman    = "human"
	TurnNone     = ""
)

// Game is one human-vs-computer session. The computer always moves first.
type Game struct {
	ID       string            `json:"id"`
	Board    tictactoe.Board   `json:"board"`
	Turn     string            `json:"turn"`
	Outcome  tictactoe.Outcome `json:"outcome"`
	Status   string            `json:"status"`
	LastMove *tictactoe.Move   `json:"last_move,omitempty"`
}

func NewGame(id string) *Game {
	return &Game{
		ID:      id,
		Turn:    TurnComputer,
		Outcome: tictactoe.InProgress,
		Status:  StatusOngoing,
	}
}

// MakeTurn applies move for mark, enforcing turn alternation, then refreshes the outcome.
func (that *Game) MakeTurn(mark tictactoe.Cell, move tictactoe.Move) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.Turn != turnOf(mark) {
		return apperror.ErrNotYourTurn
	}

	if err := that.Board.ApplyMove(move, mark); err != nil {
		return fmt.Errorf("failed to apply move: %w", err)
	}

	that.LastMove = &move
	that.Turn = turnOf(mark.Opponent())
	that.UpdateGameState()

	return nil
}

func (that *Game) UpdateGameState() {
	that.Outcome = that.Board.Evaluate()
	if that.Outcome.IsTerminal() {
		that.Status = StatusFinished
		that.Turn = TurnNone
		return
	}

	that.Status = StatusOngoing
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsComputerTurn() bool {
	return that.Turn == TurnComputer
}

func turnOf(mark tictactoe.Cell) string {
	switch mark {
	case tictactoe.Computer:
		return TurnComputer
	case tictactoe.Human:
		return TurnHuman
	default:
		return TurnNone
	}
}
