// Package contract defines the request/response types of the two
// engine operations. The contract is in-process but shaped as if
// remote: every field is JSON-serializable.
package contract

// ErrorSessionID is returned in place of a session id when the
// session is unknown, expired, or the engine faulted.
const ErrorSessionID = "-1"

// TitleInfo describes one playable title.
type TitleInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
}

// DisplayFlags are UI preferences carried on every request. The
// engine treats them as opaque and echoes them back.
type DisplayFlags struct {
	Color    bool   `json:"color,omitempty"`
	WideMap  bool   `json:"wide_map,omitempty"`
	Theme    string `json:"theme,omitempty"`
	Verbose  bool   `json:"verbose,omitempty"`
	PaneMode string `json:"pane_mode,omitempty"`
}

// PlayRequest starts or continues a game session. An empty SessionID
// creates a new session for TitleID; otherwise TitleID is ignored.
type PlayRequest struct {
	SessionID string       `json:"session_id,omitempty"`
	TitleID   string       `json:"title_id,omitempty"`
	Command   string       `json:"command,omitempty"`
	Display   DisplayFlags `json:"display,omitempty"`
}

// PlayResponse is the full result of one engine turn.
type PlayResponse struct {
	SessionID       string       `json:"session_id"`
	TitleName       string       `json:"title_name,omitempty"`
	RoomName        string       `json:"room_name,omitempty"`
	RoomDescription string       `json:"room_description,omitempty"`
	ItemsInRoom     string       `json:"items_in_room,omitempty"`
	HealthBand      string       `json:"health_band,omitempty"`
	Points          int          `json:"points"`
	CommandResponse string       `json:"command_response,omitempty"`
	WelcomeText     string       `json:"welcome_text,omitempty"` // new sessions only
	Map             *MapData     `json:"map,omitempty"`
	MapText         string       `json:"map_text,omitempty"` // rendered current level
	GameCompleted   bool         `json:"game_completed"`
	PlayerDead      bool         `json:"player_dead"`
	InvalidCommand  bool         `json:"invalid_command"` // engine-level rejection only
	Titles          []TitleInfo  `json:"titles,omitempty"` // new sessions only
	Display         DisplayFlags `json:"display,omitempty"`
}

// Position is a room's fixed map coordinate within its level.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// RoomConnection is one discovered exit: both ends are visited rooms.
type RoomConnection struct {
	Direction  string `json:"direction"`
	TargetRoom int    `json:"target_room"`
	Discovered bool   `json:"discovered"`
}

// MapRoom is the projection of one discovered room.
type MapRoom struct {
	Number            int              `json:"number"`
	Name              string           `json:"name"`
	Level             int              `json:"level"`
	Position          Position         `json:"position"`
	DisplayChar       string           `json:"display_char"`
	HasItems          bool             `json:"has_items"`
	IsCurrentLocation bool             `json:"is_current_location"`
	Connections       []RoomConnection `json:"connections,omitempty"`
}

// RenderConfig carries everything a UI needs to draw the map itself.
type RenderConfig struct {
	TitleName   string         `json:"title_name"`
	RoomChars   map[int]string `json:"room_chars"`
	LevelNames  map[int]string `json:"level_names"`
	DefaultChar string         `json:"default_char"`
	PlayerChar  string         `json:"player_char"`
	ItemChar    string         `json:"item_char"`
}

// MapData is the per-session map projection included in responses.
type MapData struct {
	CurrentRoom      int          `json:"current_room"`
	CurrentLevel     int          `json:"current_level"`
	CurrentLevelName string       `json:"current_level_name"`
	VisitedRoomCount int          `json:"visited_room_count"`
	Rooms            []MapRoom    `json:"rooms"`
	Config           RenderConfig `json:"config"`
}
