package engine

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/adventure-engine/pkg/contract"
	"github.com/jwebster45206/adventure-engine/pkg/storage"
	"github.com/jwebster45206/adventure-engine/pkg/titles"
)

const engineTitleJSON = `{
  "id": "mini",
  "name": "Mini Quest",
  "version": "1.0.0",
  "description": "Two rooms and a door.",
  "help": "Go east to win.",
  "start_room": 1,
  "exit_room": 2,
  "max_health": 10,
  "health_step": 1,
  "levels": {"1": "Ground"},
  "rooms": [
    {"number": 1, "name": "Hall", "description": "A stone hall.",
     "x": 0, "y": 0, "level": 1, "char": "H", "exits": {"east": 2}},
    {"number": 2, "name": "Exit", "description": "Daylight at last.", "points": 5,
     "x": 1, "y": 0, "level": 1, "char": "X", "exits": {"west": 1}}
  ],
  "items": [
    {"name": "lamp", "description": "A brass lamp.", "room": 1,
     "action": {"verb": "", "kind": ""}}
  ],
  "monsters": [],
  "messages": []
}`

// A wolf lives in the starting room and always appears.
const lairTitleJSON = `{
  "id": "lair",
  "name": "Wolf Lair",
  "version": "1.0.0",
  "description": "One room, one wolf.",
  "help": "Good luck.",
  "start_room": 1,
  "exit_room": 0,
  "max_health": 10,
  "health_step": 1,
  "levels": {"1": "Den"},
  "rooms": [
    {"number": 1, "name": "Den", "description": "A low stone den.",
     "x": 0, "y": 0, "level": 1, "char": "D", "exits": {}}
  ],
  "items": [
    {"name": "spear", "description": "A flint spear.", "room": 1,
     "action": {"verb": "", "kind": ""}}
  ],
  "monsters": [
    {"key": "wolf", "name": "Grey Wolf",
     "description": "A grey wolf pads out of the dark.",
     "room": 1, "weapon": "spear", "hits": 1,
     "can_harm": true, "hit_chance": 0.5, "damage": 2, "appear_chance": 1.0}
  ],
  "messages": []
}`

func newTestEngine(t *testing.T) (*Engine, *storage.MockStore) {
	t.Helper()
	p, err := titles.Load([]byte(engineTitleJSON))
	require.NoError(t, err)
	reg := titles.NewRegistry()
	require.NoError(t, reg.Register(p))

	store := storage.NewMockStore()
	return New(store, reg, slog.Default()), store
}

func startSession(t *testing.T, e *Engine) *contract.PlayResponse {
	t.Helper()
	resp := e.Play(context.Background(), &contract.PlayRequest{TitleID: "mini"})
	require.NotEqual(t, contract.ErrorSessionID, resp.SessionID)
	return resp
}

func TestListTitles(t *testing.T) {
	e, _ := newTestEngine(t)

	list := e.ListTitles()
	require.Len(t, list, 1)
	assert.Equal(t, "mini", list[0].ID)
	assert.Equal(t, "Mini Quest", list[0].Name)
	assert.Equal(t, "1.0.0", list[0].Version)
}

func TestPlayCreatesSession(t *testing.T) {
	e, _ := newTestEngine(t)

	resp := startSession(t, e)
	assert.False(t, resp.InvalidCommand)
	assert.Contains(t, resp.WelcomeText, "Welcome to Mini Quest!")
	assert.Contains(t, resp.WelcomeText, "Go east to win.")
	assert.Equal(t, "Hall", resp.RoomName)
	assert.Contains(t, resp.CommandResponse, "A stone hall.")
	assert.Contains(t, resp.CommandResponse, "You can go east.")
	assert.Contains(t, resp.ItemsInRoom, "lamp")
	assert.Equal(t, "Great", resp.HealthBand)
	assert.False(t, resp.GameCompleted)
	assert.NotEmpty(t, resp.MapText)
	require.NotNil(t, resp.Map)
	assert.Equal(t, 1, resp.Map.VisitedRoomCount)
	require.Len(t, resp.Titles, 1, "new sessions carry the title list")
}

func TestPlayCreateRollsStartRoomMonsters(t *testing.T) {
	p, err := titles.Load([]byte(lairTitleJSON))
	require.NoError(t, err)
	reg := titles.NewRegistry()
	require.NoError(t, reg.Register(p))
	store := storage.NewMockStore()
	e := New(store, reg, slog.Default())

	resp := e.Play(context.Background(), &contract.PlayRequest{TitleID: "lair"})
	require.NotEqual(t, contract.ErrorSessionID, resp.SessionID)
	assert.Contains(t, resp.CommandResponse, "A grey wolf pads out of the dark.")

	entry, err := store.Get(context.Background(), resp.SessionID)
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.True(t, entry.Instance.Monsters[0].Present, "the roll is persisted with the session")
}

func TestPlayUnknownTitle(t *testing.T) {
	e, _ := newTestEngine(t)

	resp := e.Play(context.Background(), &contract.PlayRequest{TitleID: "nope"})
	assert.Equal(t, contract.ErrorSessionID, resp.SessionID)
	assert.True(t, resp.InvalidCommand)
	assert.NotEmpty(t, resp.Titles, "error response still lists what is playable")
}

func TestPlayUnknownSession(t *testing.T) {
	e, _ := newTestEngine(t)

	resp := e.Play(context.Background(), &contract.PlayRequest{SessionID: "ghost", Command: "go east"})
	assert.Equal(t, contract.ErrorSessionID, resp.SessionID)
	assert.True(t, resp.InvalidCommand)
}

func TestPlayBlockedMove(t *testing.T) {
	e, _ := newTestEngine(t)
	sid := startSession(t, e).SessionID

	resp := e.Play(context.Background(), &contract.PlayRequest{SessionID: sid, Command: "go north"})
	assert.False(t, resp.InvalidCommand, "in-world rejection is not an engine error")
	assert.Equal(t, "Hall", resp.RoomName, "blocked move goes nowhere")
	assert.Contains(t, resp.CommandResponse, "north")
	assert.Equal(t, 0, resp.Points)
}

func TestPlayWinning(t *testing.T) {
	e, _ := newTestEngine(t)
	sid := startSession(t, e).SessionID

	resp := e.Play(context.Background(), &contract.PlayRequest{SessionID: sid, Command: "go east"})
	assert.False(t, resp.InvalidCommand)
	assert.True(t, resp.GameCompleted)
	assert.Equal(t, "Exit", resp.RoomName)
	assert.Equal(t, 5, resp.Points)
	assert.Equal(t, 2, resp.Map.VisitedRoomCount)
}

func TestPlayAttrition(t *testing.T) {
	e, store := newTestEngine(t)
	sid := startSession(t, e).SessionID

	e.Play(context.Background(), &contract.PlayRequest{SessionID: sid, Command: "look"})
	entry, err := store.Get(context.Background(), sid)
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, 9, entry.Instance.Player.Health, "every turn costs the health step")
	assert.Equal(t, 1, entry.Instance.Player.Turns)
}

func TestPlayDeath(t *testing.T) {
	e, store := newTestEngine(t)
	sid := startSession(t, e).SessionID

	entry, err := store.Get(context.Background(), sid)
	require.NoError(t, err)
	entry.Instance.Player.Health = 1

	resp := e.Play(context.Background(), &contract.PlayRequest{SessionID: sid, Command: "look"})
	assert.True(t, resp.PlayerDead)
	assert.Equal(t, "Dead", resp.HealthBand)
	assert.Contains(t, resp.CommandResponse, "You have died")
	assert.False(t, resp.InvalidCommand)
}

func TestPlayUtilityVerbs(t *testing.T) {
	e, _ := newTestEngine(t)
	sid := startSession(t, e).SessionID

	ctx := context.Background()

	resp := e.Play(ctx, &contract.PlayRequest{SessionID: sid, Command: "help"})
	assert.Equal(t, "Go east to win.", resp.CommandResponse)

	resp = e.Play(ctx, &contract.PlayRequest{SessionID: sid, Command: "points"})
	assert.Contains(t, resp.CommandResponse, "0 points")

	resp = e.Play(ctx, &contract.PlayRequest{SessionID: sid, Command: "map"})
	assert.Equal(t, resp.MapText, resp.CommandResponse, "map verb echoes the rendered level")
}

func TestPlayUnknownCommand(t *testing.T) {
	e, _ := newTestEngine(t)
	sid := startSession(t, e).SessionID

	resp := e.Play(context.Background(), &contract.PlayRequest{SessionID: sid, Command: "frobnicate lamp"})
	assert.False(t, resp.InvalidCommand, "gibberish is an in-world miss")
	assert.NotEmpty(t, resp.CommandResponse)
}

func TestPlayStoreFailure(t *testing.T) {
	e, store := newTestEngine(t)
	store.GetFunc = func(ctx context.Context, id string) (*storage.Entry, error) {
		return nil, fmt.Errorf("redis down")
	}

	resp := e.Play(context.Background(), &contract.PlayRequest{SessionID: "any", Command: "look"})
	assert.Equal(t, contract.ErrorSessionID, resp.SessionID)
	assert.True(t, resp.InvalidCommand)
}

func TestPlayRecoversFromPanic(t *testing.T) {
	e, store := newTestEngine(t)
	store.GetFunc = func(ctx context.Context, id string) (*storage.Entry, error) {
		return &storage.Entry{}, nil // nil Instance blows up the pipeline
	}

	resp := e.Play(context.Background(), &contract.PlayRequest{SessionID: "any", Command: "look"})
	assert.Equal(t, contract.ErrorSessionID, resp.SessionID)
	assert.True(t, resp.InvalidCommand)
}

func TestPlayEchoesDisplayFlags(t *testing.T) {
	e, _ := newTestEngine(t)
	sid := startSession(t, e).SessionID

	resp := e.Play(context.Background(), &contract.PlayRequest{
		SessionID: sid,
		Command:   "look",
		Display:   contract.DisplayFlags{Color: true, Theme: "dark"},
	})
	assert.True(t, resp.Display.Color)
	assert.Equal(t, "dark", resp.Display.Theme)
}
