// Package api declares the HTTP contract and route registration for the QA
// endpoint. The pipeline itself lives in internal/app; this layer only maps
// a question string in and a Response out.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/aferrando/golbot/internal/domain/model"
)

// Answerer is the single dependency the HTTP handlers need.
type Answerer interface {
	Answer(ctx context.Context, question string) model.Response
}

// Server wires HTTP routes for the QA API.
type Server struct {
	chatHandler   *ChatHandler
	healthHandler *HealthHandler
	allowedOrigin string
}

// Option applies a configuration option to the Server.
type Option func(*Server)

// WithAllowedOrigin sets the origin allowed by the CORS middleware.
func WithAllowedOrigin(origin string) Option {
	return func(s *Server) {
		if origin != "" {
			s.allowedOrigin = origin
		}
	}
}

// NewServer creates the API server with all handlers.
func NewServer(deps Answerer, opts ...Option) *Server {
	s := &Server{
		chatHandler:   NewChatHandler(deps),
		healthHandler: NewHealthHandler(),
		allowedOrigin: "http://localhost:5173",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/chat", CORSMiddleware(s.allowedOrigin, MetricsMiddleware(s.chatHandler.HandleChat, "chat")))
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
}

// chatRequest mirrors the wire schema for POST /chat.
type chatRequest struct {
	Question string `json:"question"`
}

func (r chatRequest) validate() error {
	if strings.TrimSpace(r.Question) == "" {
		return errors.New("missing question")
	}
	return nil
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
