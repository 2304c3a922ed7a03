package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jwebster45206/adventure-engine/pkg/engine"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, logger *slog.Logger, status int, msg string) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(ErrorResponse{Error: msg}); err != nil {
		logger.Error("Failed to encode error response", "error", err)
	}
}

// TitlesHandler serves the playable title list.
//
// GET /v1/titles
type TitlesHandler struct {
	engine *engine.Engine
	logger *slog.Logger
}

func NewTitlesHandler(eng *engine.Engine, logger *slog.Logger) *TitlesHandler {
	return &TitlesHandler{engine: eng, logger: logger}
}

func (h *TitlesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet {
		h.logger.Warn("Method not allowed for titles endpoint", "method", r.Method)
		writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed. Supported methods: GET")
		return
	}

	titles := h.engine.ListTitles()
	if err := json.NewEncoder(w).Encode(titles); err != nil {
		h.logger.Error("Failed to encode titles response", "error", err)
	}
}
