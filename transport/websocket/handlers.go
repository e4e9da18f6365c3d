package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

const (
	ActionNewGame = "game:new"
	ActionGetGame = "game:get"
	ActionTurn    = "game:turn"
	ActionError   = "error"
)

var (
	ErrUnknownAction  = errors.New("unknown action")
	ErrInvalidPayload = errors.New("invalid payload")
	ErrMissingGameID  = errors.New("game_id is required")
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// RequestPayload keeps coordinates as pointers so an omitted one is told apart from 0.
type RequestPayload struct {
	GameID string `json:"game_id,omitempty"`
	Row    *int   `json:"row,omitempty"`
	Col    *int   `json:"col,omitempty"`
}

type ResponsePayload struct {
	Game  *entity.Game `json:"game,omitempty"`
	Error string       `json:"error,omitempty"`
}

func (that *Server) process(ctx context.Context, message *Message) Message {
	handle, ok := that.handlers[message.Action]
	if !ok {
		return newResponse(ActionError, ResponsePayload{Error: fmt.Sprintf("%s: %q", ErrUnknownAction, message.Action)})
	}

	var payload RequestPayload
	if len(message.Payload) > 0 {
		if err := json.Unmarshal(message.Payload, &payload); err != nil {
			return newResponse(message.Action, ResponsePayload{Error: ErrInvalidPayload.Error()})
		}
	}

	game, err := handle(ctx, &payload)
	if err != nil {
		return newResponse(message.Action, ResponsePayload{Error: that.publicError(message.Action, err)})
	}

	return newResponse(message.Action, ResponsePayload{Game: game})
}

func (that *Server) handleNewGame(ctx context.Context, _ *RequestPayload) (*entity.Game, error) {
	return that.uGame.NewGame(ctx)
}

func (that *Server) handleGetGame(ctx context.Context, payload *RequestPayload) (*entity.Game, error) {
	if payload.GameID == "" {
		return nil, ErrMissingGameID
	}

	return that.uGame.GetGame(ctx, payload.GameID)
}

func (that *Server) handleGameTurn(ctx context.Context, payload *RequestPayload) (*entity.Game, error) {
	if payload.GameID == "" {
		return nil, ErrMissingGameID
	}

	if payload.Row == nil || payload.Col == nil {
		return nil, fmt.Errorf("%w: row and col are required", ErrInvalidPayload)
	}

	move := tictactoe.Move{Row: *payload.Row, Col: *payload.Col}

	return that.uGame.MakeTurn(ctx, payload.GameID, move)
}

// publicError keeps domain errors readable and hides everything else.
func (that *Server) publicError(action string, err error) string {
	switch {
	case errors.Is(err, apperror.ErrInvalidMove),
		errors.Is(err, apperror.ErrGameFinished),
		errors.Is(err, apperror.ErrNotYourTurn),
		errors.Is(err, apperror.ErrGameNotFound),
		errors.Is(err, apperror.ErrGameConflict),
		errors.Is(err, ErrInvalidPayload),
		errors.Is(err, ErrMissingGameID):
		return err.Error()
	default:
		that.logger.Error("action failed", "action", action, "error", err)
		return "internal server error"
	}
}

func newResponse(action string, payload ResponsePayload) Message {
	return Message{
		Action:  action,
		Payload: mustMarshal(payload),
	}
}

func mustMarshal(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}

	return b
}
