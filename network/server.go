package network

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/luca-patrignani/spidertaire/application"
	"github.com/luca-patrignani/spidertaire/domain/spider"
)

const (
	outboxSize   = 32
	writeTimeout = 5 * time.Second
)

// Server exposes a GameOrchestrator over websocket.
type Server struct {
	orchestrator *application.GameOrchestrator
	logger       *slog.Logger
}

// NewServer creates a Server. A nil logger means slog.Default().
func NewServer(orchestrator *application.GameOrchestrator, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		orchestrator: orchestrator,
		logger:       logger,
	}
}

// Handler returns the HTTP routes of the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.HandleWS)
	mux.HandleFunc("GET /state", s.handleState)
	return mux
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.orchestrator.View()); err != nil {
		s.logger.Warn("failed to write state", "remote", r.RemoteAddr, "error", err)
	}
}

// HandleWS upgrades the request and serves one client until it disconnects.
func (s *Server) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		s.logger.Error("websocket accept failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	defer conn.CloseNow()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	logger := s.logger.With("remote", r.RemoteAddr)
	logger.Info("client connected")

	outbox := make(chan WsMessage, outboxSize)
	send := func(msgType MessageType, payload any) {
		msg, err := NewWsMessage(msgType, payload)
		if err != nil {
			logger.Error("failed to encode message", "type", msgType, "error", err)
			return
		}
		select {
		case outbox <- msg:
		default:
			// The client stopped reading: drop it rather than block the game.
			logger.Warn("client too slow, disconnecting")
			cancel()
		}
	}

	unsubscribe := s.orchestrator.Subscribe(func(view spider.View) {
		send(MsgTypeState, StateMessage{View: view})
	})
	defer unsubscribe()

	go s.writeLoop(ctx, cancel, conn, outbox, logger)

	for {
		var msg WsMessage
		if err := wsjson.Read(ctx, conn, &msg); err != nil {
			switch websocket.CloseStatus(err) {
			case websocket.StatusNormalClosure, websocket.StatusGoingAway:
				logger.Info("client disconnected")
			default:
				if ctx.Err() == nil {
					logger.Warn("read failed", "error", err)
				}
			}
			return
		}
		if err := s.handleMessage(msg); err != nil {
			send(MsgTypeError, ErrorMessage{Message: err.Error()})
		}
	}
}

func (s *Server) writeLoop(ctx context.Context, cancel context.CancelFunc, conn *websocket.Conn, outbox <-chan WsMessage, logger *slog.Logger) {
	defer cancel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-outbox:
			writeCtx, done := context.WithTimeout(ctx, writeTimeout)
			err := wsjson.Write(writeCtx, conn, msg)
			done()
			if err != nil {
				if ctx.Err() == nil {
					logger.Warn("write failed", "type", msg.Type, "error", err)
				}
				return
			}
		}
	}
}

// handleMessage executes a client message. The new state reaches every
// client through the subscription, so only failures are returned.
func (s *Server) handleMessage(msg WsMessage) error {
	parsed, err := msg.Parse()
	if err != nil {
		return err
	}
	switch m := parsed.(type) {
	case *spider.Action:
		_, err := s.orchestrator.Submit(*m)
		return err
	case *NewGameMessage:
		_, err := s.orchestrator.NewGame(s.orchestrator.Difficulty())
		return err
	default:
		return fmt.Errorf("unexpected message type from client: %s", msg.Type)
	}
}

// Run serves s on addr and blocks until ctx is canceled. An empty addr listens
// on a random local port. If started is not nil it receives the bound address.
func Run(ctx context.Context, addr string, s *Server, started chan<- string) error {
	if addr == "" {
		addr = "127.0.0.1:0"
	}
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info("server started", "address", listener.Addr().String())
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()
	if started != nil {
		started <- listener.Addr().String()
	}

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	// Graceful shutdown with 5 second timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	s.logger.Info("shutting down server")
	return srv.Shutdown(shutdownCtx)
}
