package websocket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	ws "github.com/gorilla/websocket"
	"github.com/samber/lo"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

const (
	pingInterval    = 30 * time.Second
	pongWait        = 2 * pingInterval
	writeWait       = 10 * time.Second
	maxMessageSize  = 1 << 10
	shutdownTimeout = 5 * time.Second
)

type uGame interface {
	NewGame(ctx context.Context) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	MakeTurn(ctx context.Context, id string, move tictactoe.Move) (*entity.Game, error)
}

type handler func(ctx context.Context, payload *RequestPayload) (*entity.Game, error)

type Server struct {
	logger   *slog.Logger
	uGame    uGame
	upgrader ws.Upgrader

	handlers map[string]handler
}

// New builds the WebSocket server. Browsers may connect from the server's own origin, or
// only from allowedOrigins when that is set. Clients that send no Origin header are accepted.
func New(logger *slog.Logger, uGame uGame, allowedOrigins []string) *Server {
	server := &Server{
		logger: logger.With("component", "websocket"),
		uGame:  uGame,
		upgrader: ws.Upgrader{
			CheckOrigin: checkOrigin(allowedOrigins),
		},

		handlers: make(map[string]handler),
	}

	server.handlers[ActionNewGame] = server.handleNewGame
	server.handlers[ActionGetGame] = server.handleGetGame
	server.handlers[ActionTurn] = server.handleGameTurn

	return server
}

// checkOrigin returns nil for an empty list, which keeps gorilla's same-origin check.
func checkOrigin(allowedOrigins []string) func(*http.Request) bool {
	if len(allowedOrigins) == 0 {
		return nil
	}

	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}

		return lo.ContainsBy(allowedOrigins, func(allowed string) bool {
			return strings.EqualFold(allowed, origin)
		})
	}
}

func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", that.serveWS)

	return mux
}

// Start - starts WebSocket server and stops it when ctx is canceled.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           that.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "serveWS", "remote", r.RemoteAddr)

	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn("failed to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	go that.keepAlive(ctx, conn)

	for {
		var message Message
		if err = conn.ReadJSON(&message); err != nil {
			if ws.IsUnexpectedCloseError(err, ws.CloseNormalClosure, ws.CloseGoingAway) {
				log.Warn("connection closed", "error", err)
			}
			return
		}

		response := that.process(ctx, &message)

		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err = conn.WriteJSON(response); err != nil {
			log.Error("failed to write message", "error", err)
			return
		}
	}
}

// keepAlive pings the client; WriteControl may run alongside the reader loop's writes.
func (that *Server) keepAlive(ctx context.Context, conn *ws.Conn) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := conn.WriteControl(ws.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}
