package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/adventure-engine/pkg/contract"
	"github.com/jwebster45206/adventure-engine/pkg/engine"
	"github.com/jwebster45206/adventure-engine/pkg/storage"
	"github.com/jwebster45206/adventure-engine/pkg/titles"
)

const handlerTitleJSON = `{
  "id": "mini",
  "name": "Mini Quest",
  "version": "1.0.0",
  "description": "Two rooms.",
  "help": "Go east.",
  "start_room": 1,
  "exit_room": 2,
  "max_health": 10,
  "health_step": 1,
  "levels": {"1": "Ground"},
  "rooms": [
    {"number": 1, "name": "Hall", "description": "A hall.",
     "x": 0, "y": 0, "level": 1, "char": "H", "exits": {"east": 2}},
    {"number": 2, "name": "Exit", "description": "Daylight.",
     "x": 1, "y": 0, "level": 1, "char": "X", "exits": {"west": 1}}
  ],
  "items": [],
  "monsters": [],
  "messages": []
}`

func newTestEngine(t *testing.T) *engine.Engine {
	t.Helper()
	p, err := titles.Load([]byte(handlerTitleJSON))
	require.NoError(t, err)
	reg := titles.NewRegistry()
	require.NoError(t, reg.Register(p))
	return engine.New(storage.NewMockStore(), reg, slog.Default())
}

func TestTitlesHandler(t *testing.T) {
	h := NewTitlesHandler(newTestEngine(t), slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/v1/titles", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var got []contract.TitleInfo
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, "mini", got[0].ID)
}

func TestTitlesHandlerMethodNotAllowed(t *testing.T) {
	h := NewTitlesHandler(newTestEngine(t), slog.Default())

	req := httptest.NewRequest(http.MethodPost, "/v1/titles", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	var errResp ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&errResp))
	assert.Contains(t, errResp.Error, "Method not allowed")
}

func TestPlayHandlerNewSession(t *testing.T) {
	h := NewPlayHandler(newTestEngine(t), slog.Default())

	body := `{"title_id": "mini"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/play", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp contract.PlayResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.NotEqual(t, contract.ErrorSessionID, resp.SessionID)
	assert.Equal(t, "Hall", resp.RoomName)
	assert.False(t, resp.InvalidCommand)
}

func TestPlayHandlerUnknownSession(t *testing.T) {
	h := NewPlayHandler(newTestEngine(t), slog.Default())

	body := `{"session_id": "ghost", "command": "go east"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/play", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "engine-level errors ride a 200")

	var resp contract.PlayResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, contract.ErrorSessionID, resp.SessionID)
	assert.True(t, resp.InvalidCommand)
}

func TestPlayHandlerBadBody(t *testing.T) {
	h := NewPlayHandler(newTestEngine(t), slog.Default())

	req := httptest.NewRequest(http.MethodPost, "/v1/play", strings.NewReader("{not json"))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlayHandlerMethodNotAllowed(t *testing.T) {
	h := NewPlayHandler(newTestEngine(t), slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/v1/play", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestHealthHandler(t *testing.T) {
	h := NewHealthHandler(newTestEngine(t), slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "adventure-engine", resp.Service)
	assert.Equal(t, float64(1), resp.Components["titles"])
}
