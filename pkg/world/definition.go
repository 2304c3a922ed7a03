package world

import "strings"

// Definition is the full static content of one title: room graph,
// item table, monster table and flavor messages. Each session gets
// its own mutable copy via Clone.
type Definition struct {
	Rooms    []*Room   `json:"rooms"`
	Items    []*Item   `json:"items"`
	Monsters []Monster `json:"monsters"`
	Messages []Message `json:"messages"`
}

// Clone returns a deep copy. Rooms and items are mutable at runtime
// (exits reroute, items move), so the copy shares nothing with the
// source.
func (d *Definition) Clone() *Definition {
	out := &Definition{
		Rooms:    make([]*Room, len(d.Rooms)),
		Items:    make([]*Item, len(d.Items)),
		Monsters: make([]Monster, len(d.Monsters)),
		Messages: make([]Message, len(d.Messages)),
	}
	for i, r := range d.Rooms {
		rc := *r
		out.Rooms[i] = &rc
	}
	for i, it := range d.Items {
		ic := *it
		if it.Action.Unlock != nil {
			uc := *it.Action.Unlock
			ic.Action.Unlock = &uc
		}
		out.Items[i] = &ic
	}
	copy(out.Monsters, d.Monsters)
	copy(out.Messages, d.Messages)
	return out
}

// Room returns the room with the given number, or nil.
func (d *Definition) Room(n int) *Room {
	for _, r := range d.Rooms {
		if r.Number == n {
			return r
		}
	}
	return nil
}

// FindItem returns the item with the given name (case-insensitive),
// or nil.
func (d *Definition) FindItem(name string) *Item {
	for _, it := range d.Items {
		if strings.EqualFold(it.Name, name) {
			return it
		}
	}
	return nil
}

// ItemsInRoom returns the names of items located in room n.
func (d *Definition) ItemsInRoom(n int) []string {
	var out []string
	for _, it := range d.Items {
		if it.Location.InRoom(n) {
			out = append(out, it.Name)
		}
	}
	return out
}

// CarriedItems returns the names of items in the player's inventory.
func (d *Definition) CarriedItems() []string {
	var out []string
	for _, it := range d.Items {
		if it.Location.IsCarried() {
			out = append(out, it.Name)
		}
	}
	return out
}

// MessagesByTag returns all message templates for a tag.
func (d *Definition) MessagesByTag(tag string) []string {
	var out []string
	for _, m := range d.Messages {
		if m.Tag == tag {
			out = append(out, m.Text)
		}
	}
	return out
}
