package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jwebster45206/adventure-engine/pkg/contract"
	"github.com/jwebster45206/adventure-engine/pkg/engine"
)

// PlayHandler runs engine turns.
//
// POST /v1/play
//
// The engine reports session and title problems inside the response
// body (error session id plus the invalid-command flag), so a
// well-formed request always gets 200. Only malformed JSON and wrong
// methods produce HTTP errors.
type PlayHandler struct {
	engine *engine.Engine
	logger *slog.Logger
}

func NewPlayHandler(eng *engine.Engine, logger *slog.Logger) *PlayHandler {
	return &PlayHandler{engine: eng, logger: logger}
}

func (h *PlayHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		h.logger.Warn("Method not allowed for play endpoint", "method", r.Method)
		writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed. Supported methods: POST")
		return
	}

	var req contract.PlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid play request body", "error", err)
		writeError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp := h.engine.Play(r.Context(), &req)

	h.logger.Debug("Play turn processed",
		"session_id", resp.SessionID,
		"invalid_command", resp.InvalidCommand)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("Failed to encode play response", "error", err)
	}
}
