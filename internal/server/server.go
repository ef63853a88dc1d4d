// Package server exposes declaration checking over a websocket.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"vardecl/internal/diagfmt"
	"vardecl/internal/driver"
	"vardecl/internal/source"
)

const (
	readTimeout  = 120 * time.Second
	writeTimeout = 10 * time.Second
	maxMessage   = 1 << 20
)

// Server routes /healthz and /ws. Every request is analyzed on its own;
// the server keeps no state between them.
type Server struct {
	logger   *slog.Logger
	upgrader websocket.Upgrader
	mux      *http.ServeMux
}

// New builds the handler. A nil logger discards logs.
func New(logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// локальный инструмент: любые origin
			CheckOrigin: func(*http.Request) bool { return true },
		},
		mux: http.NewServeMux(),
	}
	s.mux.HandleFunc("GET /healthz", s.handleHealth)
	s.mux.HandleFunc("GET /ws", s.handleWS)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	s.logger.Info("websocket connection established", "remote", conn.RemoteAddr().String())
	conn.SetReadLimit(maxMessage)
	_ = conn.SetReadDeadline(time.Now().Add(readTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(readTimeout))
	})

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Error("websocket read error", "error", err)
			} else {
				s.logger.Info("websocket connection closed")
			}
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(readTimeout))

		resp := s.dispatch(msg)
		_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteJSON(resp); err != nil {
			s.logger.Error("websocket write error", "id", resp.ID, "error", err)
			return
		}
	}
}

// dispatch answers one message.
func (s *Server) dispatch(msg Message) Response {
	id := uuid.New().String()
	log := s.logger.With("id", id, "type", msg.Type)

	switch msg.Type {
	case "ping":
		return Response{Type: "pong", ID: id}

	case "check", "tokenize":
		var payload SourcePayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			log.Warn("invalid payload", "error", err)
			return problem(id, "invalid_payload", "payload must be {\"source\": \"...\"}")
		}
		if payload.Name == "" {
			payload.Name = "<ws>"
		}
		if msg.Type == "tokenize" {
			res := driver.TokenizeString(payload.Name, payload.Source)
			log.Info("tokenized", "tokens", len(res.Tokens))
			return Response{Type: "tokens", ID: id, Payload: diagfmt.Tokens(res.Tokens)}
		}

		res := driver.CheckString(payload.Name, payload.Source, 1)
		log.Info("checked", "accepted", res.Accepted(), "symbols", len(res.Table))
		return Response{Type: "result", ID: id, Payload: resultPayload(res)}
	}

	log.Warn("unknown message type")
	return problem(id, "unknown_type", "unknown message type: "+msg.Type)
}

func problem(id, code, message string) Response {
	return Response{Type: "error", ID: id, Payload: ProblemPayload{Code: code, Message: message}}
}

func resultPayload(res *driver.CheckResult) ResultPayload {
	if res.Accepted() {
		return ResultPayload{Accepted: true, Symbols: diagfmt.Symbols(res.Table)}
	}
	e := res.Err
	before, lexeme, after := source.Split(res.File.Text(), e.Pos(), e.Len())
	out := &ErrorPayload{
		Kind:     e.Kind().String(),
		Code:     e.Code().ID(),
		Message:  e.Message(),
		Position: e.Pos(),
		Length:   e.Len(),
		Before:   before,
		Lexeme:   lexeme,
		After:    after,
	}
	if first, ok := e.Related(); ok {
		out.Related = &RelatedPayload{Position: first.Pos, Length: first.Len()}
	}
	return ResultPayload{Error: out}
}
