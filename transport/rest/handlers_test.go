package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type fakeGames struct {
	games map[string]*entity.Game
	err   error
}

func (that *fakeGames) NewGame(_ context.Context) (*entity.Game, error) {
	if that.err != nil {
		return nil, that.err
	}

	game := entity.NewGame("new")
	if err := game.MakeTurn(tictactoe.Computer, tictactoe.Move{Row: 0, Col: 0}); err != nil {
		return nil, err
	}

	return game, nil
}

func (that *fakeGames) GetGame(_ context.Context, id string) (*entity.Game, error) {
	game, ok := that.games[id]
	if !ok {
		return nil, fmt.Errorf("failed to get game: %w", apperror.ErrGameNotFound)
	}

	return game, nil
}

func (that *fakeGames) MakeTurn(ctx context.Context, id string, move tictactoe.Move) (*entity.Game, error) {
	if that.err != nil {
		return nil, that.err
	}

	game, err := that.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = game.MakeTurn(tictactoe.Human, move); err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	return game, nil
}

func newTestServer(t *testing.T, games *fakeGames) *httptest.Server {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	srv := httptest.NewServer(New(logger, games).Router())
	t.Cleanup(srv.Close)

	return srv
}

func humanToMove(t *testing.T, id string) *entity.Game {
	t.Helper()

	game := entity.NewGame(id)
	require.NoError(t, game.MakeTurn(tictactoe.Computer, tictactoe.Move{Row: 0, Col: 0}))

	return game
}

func decodeGame(t *testing.T, resp *http.Response) *entity.Game {
	t.Helper()

	var game entity.Game
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&game))

	return &game
}

func TestPing(t *testing.T) {
	srv := newTestServer(t, &fakeGames{})

	resp, err := http.Get(srv.URL + "/ping")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "pong", string(body))
}

func TestHandlers_NewGame(t *testing.T) {
	t.Run("Returns the created game", func(t *testing.T) {
		// Given: a server
		srv := newTestServer(t, &fakeGames{})

		// When: creating a game
		resp, err := http.Post(srv.URL+"/games", "application/json", nil)
		require.NoError(t, err)
		defer resp.Body.Close()

		// Then: the game is returned with the computer's opening move
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		game := decodeGame(t, resp)
		assert.Equal(t, "new", game.ID)
		assert.Equal(t, tictactoe.Computer, game.Board[0][0])
		assert.Equal(t, entity.TurnHuman, game.Turn)
	})

	t.Run("Hides internal errors", func(t *testing.T) {
		// Given: a use case that fails
		srv := newTestServer(t, &fakeGames{err: errors.New("redis down")})

		// When: creating a game
		resp, err := http.Post(srv.URL+"/games", "application/json", nil)
		require.NoError(t, err)
		defer resp.Body.Close()

		// Then: a generic 500 is returned
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		var body errorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "internal server error", body.Error)
	})
}

func TestHandlers_GetGame(t *testing.T) {
	t.Run("Returns a stored game", func(t *testing.T) {
		// Given: a stored game
		srv := newTestServer(t, &fakeGames{games: map[string]*entity.Game{"abc": humanToMove(t, "abc")}})

		// When: fetching it
		resp, err := http.Get(srv.URL + "/games/abc")
		require.NoError(t, err)
		defer resp.Body.Close()

		// Then: it is returned as JSON
		require.Equal(t, http.StatusOK, resp.StatusCode)
		game := decodeGame(t, resp)
		assert.Equal(t, "abc", game.ID)
		assert.Equal(t, tictactoe.InProgress, game.Outcome)
	})

	t.Run("Unknown game is 404", func(t *testing.T) {
		// Given: no stored games
		srv := newTestServer(t, &fakeGames{})

		// When: fetching an unknown game
		resp, err := http.Get(srv.URL + "/games/missing")
		require.NoError(t, err)
		defer resp.Body.Close()

		// Then: 404 is returned
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestHandlers_Turn(t *testing.T) {
	cases := []struct {
		name   string
		body   string
		status int
	}{
		{name: "Valid move", body: `{"row":1,"col":1}`, status: http.StatusOK},
		{name: "Occupied cell", body: `{"row":0,"col":0}`, status: http.StatusBadRequest},
		{name: "Out of range", body: `{"row":3,"col":0}`, status: http.StatusBadRequest},
		{name: "Malformed body", body: `{"row":`, status: http.StatusBadRequest},
		{name: "Unknown field", body: `{"cell":4}`, status: http.StatusBadRequest},
		{name: "Empty object", body: `{}`, status: http.StatusBadRequest},
		{name: "Missing column", body: `{"row":1}`, status: http.StatusBadRequest},
		{name: "Missing row", body: `{"col":1}`, status: http.StatusBadRequest},
		{name: "Explicit zero row", body: `{"row":0,"col":1}`, status: http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// Given: a stored game where the human is to move
			srv := newTestServer(t, &fakeGames{games: map[string]*entity.Game{"abc": humanToMove(t, "abc")}})

			// When: posting the move
			resp, err := http.Post(srv.URL+"/games/abc/turn", "application/json", strings.NewReader(tc.body))
			require.NoError(t, err)
			defer resp.Body.Close()

			// Then: the expected status is returned
			assert.Equal(t, tc.status, resp.StatusCode)
		})
	}

	t.Run("Missing coordinate leaves the board untouched", func(t *testing.T) {
		// Given: a stored game where only the computer has moved
		game := humanToMove(t, "abc")
		srv := newTestServer(t, &fakeGames{games: map[string]*entity.Game{"abc": game}})

		// When: posting a turn without a column
		resp, err := http.Post(srv.URL+"/games/abc/turn", "application/json", strings.NewReader(`{"row":1}`))
		require.NoError(t, err)
		defer resp.Body.Close()

		// Then: 400 is returned and no mark is placed
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Len(t, game.Board.EmptyCells(), 8)
		assert.Equal(t, entity.TurnHuman, game.Turn)
	})

	t.Run("Concurrent update is 409", func(t *testing.T) {
		// Given: a use case that lost a race on the stored game
		srv := newTestServer(t, &fakeGames{err: fmt.Errorf("failed to make turn: %w", apperror.ErrGameConflict)})

		// When: posting a move
		resp, err := http.Post(srv.URL+"/games/abc/turn", "application/json", strings.NewReader(`{"row":1,"col":1}`))
		require.NoError(t, err)
		defer resp.Body.Close()

		// Then: 409 is returned
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("Finished game is 409", func(t *testing.T) {
		// Given: a finished game
		game := entity.NewGame("abc")
		game.Board = tictactoe.Board{
			{tictactoe.Computer, tictactoe.Computer, tictactoe.Computer},
			{tictactoe.Human, tictactoe.Human, tictactoe.Empty},
			{tictactoe.Empty, tictactoe.Empty, tictactoe.Empty},
		}
		game.UpdateGameState()
		srv := newTestServer(t, &fakeGames{games: map[string]*entity.Game{"abc": game}})

		// When: posting a move
		resp, err := http.Post(srv.URL+"/games/abc/turn", "application/json", strings.NewReader(`{"row":1,"col":2}`))
		require.NoError(t, err)
		defer resp.Body.Close()

		// Then: 409 is returned with the reason
		assert.Equal(t, http.StatusConflict, resp.StatusCode)

		var body errorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Contains(t, body.Error, apperror.ErrGameFinished.Error())
	})
}
