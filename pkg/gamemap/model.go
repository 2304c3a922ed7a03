// Package gamemap tracks which rooms a session has discovered and
// renders the discovered portion of a level as ASCII art.
package gamemap

import (
	"sort"

	"github.com/jwebster45206/adventure-engine/pkg/contract"
	"github.com/jwebster45206/adventure-engine/pkg/titles"
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

// Map glyphs. Title-independent; room display characters come from
// the title catalog.
const (
	DefaultRoomChar = "#"
	PlayerChar      = "@"
	ItemChar        = "*"
	cornerChar      = '+'
	hWallChar       = '-'
	vWallChar       = '|'
	pathChar        = '.'
	upChar          = '^'
	downChar        = 'v'
)

// Cell is the cached per-room map state: fixed position and display
// character plus the mutable discovery flags.
type Cell struct {
	Room     int    `json:"room"`
	Name     string `json:"name"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Level    int    `json:"level"`
	Char     string `json:"char"`
	Visited  bool   `json:"visited"`
	Current  bool   `json:"current"`
	HasItems bool   `json:"has_items"`
	Exits    [6]int `json:"exits"` // raw targets copied at construction, 0 = none
}

// Model is one session's map state. It is created alongside the game
// instance and mutated in lock-step with the player's room.
type Model struct {
	TitleName    string         `json:"title_name"`
	Rooms        map[int]*Cell  `json:"rooms"`
	CurrentRoom  int            `json:"current_room"`
	CurrentLevel int            `json:"current_level"`
	RoomChars    map[int]string `json:"room_chars"`
	LevelNames   map[int]string `json:"level_names"`
}

// New builds the map model for a title: one cell per room, nothing
// visited yet. Positions, characters and exit targets are copied so
// the model never reads shared title state afterward.
func New(cat titles.Catalog, def *world.Definition) *Model {
	m := &Model{
		TitleName:  cat.Name(),
		Rooms:      make(map[int]*Cell, len(def.Rooms)),
		RoomChars:  cat.RoomChars(),
		LevelNames: cat.LevelNames(),
	}
	for _, r := range def.Rooms {
		pos, _ := cat.Position(r.Number)
		ch := cat.DisplayChar(r.Number)
		if ch == "" {
			ch = DefaultRoomChar
		}
		cell := &Cell{
			Room:  r.Number,
			Name:  r.Name,
			X:     pos.X,
			Y:     pos.Y,
			Level: pos.Level,
			Char:  ch,
		}
		for _, d := range world.Directions() {
			if target, ok := r.Exit(d).Room(); ok {
				cell.Exits[d] = target
			}
		}
		m.Rooms[r.Number] = cell
	}
	return m
}

// UpdatePlayerPosition moves the current-room marker and records the
// new room as visited. The visited set only ever grows.
func (m *Model) UpdatePlayerPosition(room int) {
	if prev, ok := m.Rooms[m.CurrentRoom]; ok {
		prev.Current = false
	}
	cell, ok := m.Rooms[room]
	if !ok {
		return
	}
	cell.Visited = true
	cell.Current = true
	m.CurrentRoom = room
	m.CurrentLevel = cell.Level
}

// UpdateRoomItems sets the items-visible flag driving the item
// indicator glyph.
func (m *Model) UpdateRoomItems(room int, hasItems bool) {
	if cell, ok := m.Rooms[room]; ok {
		cell.HasItems = hasItems
	}
}

// VisitedCount returns the number of discovered rooms across all
// levels.
func (m *Model) VisitedCount() int {
	n := 0
	for _, c := range m.Rooms {
		if c.Visited {
			n++
		}
	}
	return n
}

// visitedOnLevel returns the discovered cells of one level, ordered
// by room number for deterministic rendering.
func (m *Model) visitedOnLevel(level int) []*Cell {
	var out []*Cell
	for _, c := range m.Rooms {
		if c.Visited && c.Level == level {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Room < out[j].Room })
	return out
}

// Data projects the model into the response shape: discovered rooms
// with their discovered connections, plus the rendering config a UI
// needs to draw the map itself.
func (m *Model) Data() *contract.MapData {
	data := &contract.MapData{
		CurrentRoom:      m.CurrentRoom,
		CurrentLevel:     m.CurrentLevel,
		CurrentLevelName: m.LevelNames[m.CurrentLevel],
		VisitedRoomCount: m.VisitedCount(),
		Config: contract.RenderConfig{
			TitleName:   m.TitleName,
			RoomChars:   m.RoomChars,
			LevelNames:  m.LevelNames,
			DefaultChar: DefaultRoomChar,
			PlayerChar:  PlayerChar,
			ItemChar:    ItemChar,
		},
	}

	numbers := make([]int, 0, len(m.Rooms))
	for n, c := range m.Rooms {
		if c.Visited {
			numbers = append(numbers, n)
		}
	}
	sort.Ints(numbers)

	for _, n := range numbers {
		c := m.Rooms[n]
		room := contract.MapRoom{
			Number:            c.Room,
			Name:              c.Name,
			Level:             c.Level,
			Position:          contract.Position{X: c.X, Y: c.Y},
			DisplayChar:       c.Char,
			HasItems:          c.HasItems,
			IsCurrentLocation: c.Current,
		}
		for _, d := range world.Directions() {
			target := c.Exits[d]
			if target == 0 {
				continue
			}
			if tc, ok := m.Rooms[target]; ok && tc.Visited {
				room.Connections = append(room.Connections, contract.RoomConnection{
					Direction:  d.String(),
					TargetRoom: target,
					Discovered: true,
				})
			}
		}
		data.Rooms = append(data.Rooms, room)
	}
	return data
}
