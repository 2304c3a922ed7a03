// Package engine is the session-facing surface: it owns the session
// store, creates game instances from the title registry, and runs the
// per-turn command pipeline.
package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jwebster45206/adventure-engine/pkg/contract"
	"github.com/jwebster45206/adventure-engine/pkg/game"
	"github.com/jwebster45206/adventure-engine/pkg/gamemap"
	"github.com/jwebster45206/adventure-engine/pkg/storage"
	"github.com/jwebster45206/adventure-engine/pkg/titles"
)

// Engine orchestrates sessions over a store and a title registry.
// Methods are safe for concurrent use; per-session state lives in the
// store, never on the Engine.
type Engine struct {
	store    storage.Store
	registry *titles.Registry
	logger   *slog.Logger
}

func New(store storage.Store, registry *titles.Registry, logger *slog.Logger) *Engine {
	return &Engine{store: store, registry: registry, logger: logger}
}

// ListTitles returns the playable titles in registration order.
func (e *Engine) ListTitles() []contract.TitleInfo {
	providers := e.registry.List()
	out := make([]contract.TitleInfo, 0, len(providers))
	for _, p := range providers {
		cat := p.Catalog()
		out = append(out, contract.TitleInfo{
			ID:          cat.ID(),
			Name:        cat.Name(),
			Version:     cat.Version(),
			Description: cat.Description(),
		})
	}
	return out
}

// Play runs one engine turn. An empty SessionID starts a new session
// for the request's title; otherwise the session is loaded and the
// command processed against it. A session that cannot be found, a
// title that does not exist, or an internal fault all come back as the
// error session id with InvalidCommand set; in-world rejections do
// not.
func (e *Engine) Play(ctx context.Context, req *contract.PlayRequest) (resp *contract.PlayResponse) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("Engine fault", "panic", r, "session_id", req.SessionID)
			resp = faultResponse("A strange force scrambles the world. Try again.")
		}
	}()

	if req.SessionID == "" {
		return e.create(ctx, req)
	}
	return e.resume(ctx, req)
}

func (e *Engine) create(ctx context.Context, req *contract.PlayRequest) *contract.PlayResponse {
	provider, ok := e.registry.Get(req.TitleID)
	if !ok {
		e.logger.Warn("Unknown title requested", "title_id", req.TitleID)
		resp := faultResponse(fmt.Sprintf("No such title: %s", req.TitleID))
		resp.Titles = e.ListTitles()
		return resp
	}

	id := uuid.NewString()
	in := game.NewInstance(id, provider)
	m := gamemap.New(provider.Catalog(), in.World)
	m.UpdatePlayerPosition(in.Player.Room)
	in.ClaimRoom()
	m.UpdateRoomItems(in.Player.Room, in.RoomItemsText() != "")

	// Presence is rolled on every room entry, the starting room
	// included.
	firstLook := in.DescribeRoom()
	if appeared := in.CheckMonsters(); appeared != "" {
		firstLook += "\n" + appeared
	}

	entry := &storage.Entry{Instance: in, Map: m, Display: req.Display}
	if err := e.store.Create(ctx, id, entry); err != nil {
		e.logger.Error("Failed to create session", "session_id", id, "error", err)
		return faultResponse("The session could not be created.")
	}
	e.logger.Info("Session created", "session_id", id, "title_id", in.TitleID)

	resp := e.buildResponse(entry, firstLook)
	resp.WelcomeText = welcomeText(in)
	resp.Titles = e.ListTitles()
	return resp
}

func (e *Engine) resume(ctx context.Context, req *contract.PlayRequest) *contract.PlayResponse {
	entry, err := e.store.Get(ctx, req.SessionID)
	if err != nil {
		e.logger.Error("Failed to load session", "session_id", req.SessionID, "error", err)
		return faultResponse("The session could not be loaded.")
	}
	if entry == nil {
		return faultResponse("Unknown or expired session.")
	}

	entry.Display = req.Display
	text := e.processTurn(entry, req.Command)

	if err := e.store.Put(ctx, req.SessionID, entry); err != nil {
		e.logger.Error("Failed to save session", "session_id", req.SessionID, "error", err)
		return faultResponse("The session could not be saved.")
	}
	return e.buildResponse(entry, text)
}

// processTurn runs the command pipeline against a loaded session and
// returns the narrative for the turn. All turns advance the clock,
// including in-world rejections.
func (e *Engine) processTurn(entry *storage.Entry, command string) string {
	in := entry.Instance
	m := entry.Map

	roomBefore := in.Player.Room
	deadBefore := in.Player.Dead

	cmd := game.Parse(command)
	result := e.dispatch(entry, cmd)

	in.Player.Turns++
	in.ApplyTurnAttrition()

	text := result.Message
	if in.Player.Room != roomBefore {
		m.UpdatePlayerPosition(in.Player.Room)
		m.UpdateRoomItems(roomBefore, len(in.World.ItemsInRoom(roomBefore)) > 0)
		if appeared := in.CheckMonsters(); appeared != "" {
			text += "\n" + appeared
		}
	}
	m.UpdateRoomItems(in.Player.Room, in.RoomItemsText() != "")

	if !deadBefore && in.Player.Dead {
		text += "\nEverything goes dark. You have died."
	}
	return text
}

// dispatch routes a parsed command to its resolver.
func (e *Engine) dispatch(entry *storage.Entry, cmd game.CommandState) game.CommandState {
	in := entry.Instance

	if !cmd.Valid {
		if cmd.Message == "" {
			cmd.Message = in.Message("Unknown", cmd.Verb)
		}
		return cmd
	}

	switch cmd.Verb {
	case "go":
		return in.Move(cmd)
	case "attack":
		return in.Attack(cmd)
	case "map":
		cmd.Message = entry.Map.Render(entry.Map.CurrentLevel)
		return cmd
	case "help":
		cmd.Message = in.Help
		return cmd
	case "points":
		cmd.Message = fmt.Sprintf("You have %d points.", in.Player.Points)
		return cmd
	default:
		return in.ResolveItem(cmd)
	}
}

func (e *Engine) buildResponse(entry *storage.Entry, text string) *contract.PlayResponse {
	in := entry.Instance
	resp := &contract.PlayResponse{
		SessionID:       in.SessionID,
		TitleName:       in.TitleName,
		ItemsInRoom:     in.RoomItemsText(),
		HealthBand:      in.HealthBand(),
		Points:          in.Player.Points,
		CommandResponse: text,
		Map:             entry.Map.Data(),
		MapText:         entry.Map.Render(entry.Map.CurrentLevel),
		GameCompleted:   in.ExitRoom != 0 && in.Player.Room == in.ExitRoom,
		PlayerDead:      in.Player.Dead,
		Display:         entry.Display,
	}
	if room := in.CurrentRoom(); room != nil {
		resp.RoomName = room.Name
		resp.RoomDescription = room.Description
	}
	return resp
}

func welcomeText(in *game.Instance) string {
	text := fmt.Sprintf("Welcome to %s!", in.TitleName)
	if in.Help != "" {
		text += "\n" + in.Help
	}
	return text
}

func faultResponse(text string) *contract.PlayResponse {
	return &contract.PlayResponse{
		SessionID:       contract.ErrorSessionID,
		CommandResponse: text,
		InvalidCommand:  true,
	}
}
