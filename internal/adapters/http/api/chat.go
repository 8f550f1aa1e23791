package api

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/aferrando/golbot/pkg/logger"
)

// ChatHandler handles question answering requests.
type ChatHandler struct {
	deps Answerer
	log  logger.Logger
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(deps Answerer) *ChatHandler {
	return &ChatHandler{deps: deps, log: logger.Named("chat")}
}

// HandleChat handles POST /chat. The pipeline never fails a question, so
// the only error paths here are transport-level: wrong method or bad JSON.
func (h *ChatHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err)
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err)
		return
	}

	requestID := uuid.NewString()
	h.log.Info(r.Context(), "answering question",
		logger.String("request_id", requestID),
		logger.Int("question_len", len(req.Question)))

	resp := h.deps.Answer(r.Context(), req.Question)

	h.log.Debug(r.Context(), "question answered",
		logger.String("request_id", requestID),
		logger.Int("sources", len(resp.Sources)))
	writeJSON(w, http.StatusOK, resp)
}
