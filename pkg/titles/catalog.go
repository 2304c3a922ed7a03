// Package titles registers the playable titles and their static
// content. Adding a title means dropping a JSON file into data/ and
// registering it; nothing in the engine switches on title ids.
package titles

import "github.com/jwebster45206/adventure-engine/pkg/world"

// ReservedRoom is a room number no title may use. It was a sentinel
// in a previous generation of the content format and old tooling may
// still treat it specially.
const ReservedRoom = 99

// RoomPos is a room's fixed position on the map grid and the level
// it belongs to. Immutable for the life of a title.
type RoomPos struct {
	X     int
	Y     int
	Level int
}

// Catalog is the per-title configuration: display metadata, starting
// conditions, health constants, and the room position/character
// tables used by the map renderer.
type Catalog interface {
	ID() string
	Name() string
	Version() string
	Description() string
	Help() string

	StartRoom() int
	// ExitRoom is the room that completes the game, or 0 if the
	// title has no win condition.
	ExitRoom() int

	MaxHealth() int
	HealthStep() int
	AllowOverheal() bool

	Position(room int) (RoomPos, bool)
	DisplayChar(room int) string
	LevelName(level int) string
	Levels() []int

	// RoomChars and LevelNames return copies of the full tables for
	// the map projection's rendering config.
	RoomChars() map[int]string
	LevelNames() map[int]string
}

// Provider supplies a title's configuration and a fresh mutable copy
// of its content.
type Provider interface {
	Catalog() Catalog
	// Content returns a deep copy of the world definition. Sessions
	// never share mutable state.
	Content() *world.Definition
}
