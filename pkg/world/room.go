package world

import (
	"encoding/json"
	"fmt"
)

// ExitRef optionally references the room an exit leads to.
// The zero value means there is no exit in that direction.
type ExitRef struct {
	room int
	ok   bool
}

// ExitTo returns an ExitRef leading to room n.
func ExitTo(n int) ExitRef {
	return ExitRef{room: n, ok: true}
}

// NoExit is the absent exit.
func NoExit() ExitRef {
	return ExitRef{}
}

// Room returns the target room number and whether the exit exists.
func (e ExitRef) Room() (int, bool) {
	return e.room, e.ok
}

// Exists reports whether the exit leads anywhere.
func (e ExitRef) Exists() bool {
	return e.ok
}

// MarshalJSON serializes the exit as its target room number, with 0
// meaning no exit. Room numbers are always positive.
func (e ExitRef) MarshalJSON() ([]byte, error) {
	if !e.ok {
		return []byte("0"), nil
	}
	return json.Marshal(e.room)
}

func (e *ExitRef) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("failed to unmarshal exit: %w", err)
	}
	if n == 0 {
		*e = ExitRef{}
		return nil
	}
	*e = ExitRef{room: n, ok: true}
	return nil
}

// Room is one location in a title's world graph.
type Room struct {
	Number      int        `json:"number"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Points      int        `json:"points,omitempty"` // awarded once on first claim
	Exits       [6]ExitRef `json:"exits"`
}

// Exit returns the exit in the given direction.
func (r *Room) Exit(d Direction) ExitRef {
	return r.Exits[d]
}

// SetExit replaces the exit in the given direction. Used by unlock
// effects to reroute the graph mid-game.
func (r *Room) SetExit(d Direction, e ExitRef) {
	r.Exits[d] = e
}

// ExitDirections returns the directions that lead somewhere, in
// north/south/east/west/up/down order.
func (r *Room) ExitDirections() []Direction {
	var out []Direction
	for _, d := range Directions() {
		if r.Exits[d].Exists() {
			out = append(out, d)
		}
	}
	return out
}
