package world

// LocationKind tags where an item currently is.
type LocationKind string

const (
	// LocInRoom means the item sits in a room.
	LocInRoom LocationKind = "room"
	// LocCarried means the item is in the player's inventory.
	LocCarried LocationKind = "carried"
	// LocWorn means the item is worn or follows the player as a companion.
	LocWorn LocationKind = "worn"
)

// Location is the tagged current position of an item. Room is only
// meaningful when Kind is LocInRoom.
type Location struct {
	Kind LocationKind `json:"kind"`
	Room int          `json:"room,omitempty"`
}

// RoomLocation places an item in room n.
func RoomLocation(n int) Location {
	return Location{Kind: LocInRoom, Room: n}
}

// CarriedLocation places an item in the player's inventory.
func CarriedLocation() Location {
	return Location{Kind: LocCarried}
}

// WornLocation marks an item as a worn or companion object.
func WornLocation() Location {
	return Location{Kind: LocWorn}
}

// InRoom reports whether the item is in room n.
func (l Location) InRoom(n int) bool {
	return l.Kind == LocInRoom && l.Room == n
}

// IsCarried reports whether the item is in the inventory.
func (l Location) IsCarried() bool {
	return l.Kind == LocCarried
}

// IsWorn reports whether the item is worn or a companion.
func (l Location) IsWorn() bool {
	return l.Kind == LocWorn
}

// ActionKind is the effect class an item produces when its verb is used.
type ActionKind string

const (
	ActionHealth   ActionKind = "health"   // signed delta to player health
	ActionFortune  ActionKind = "fortune"  // draws a random fortune string
	ActionUnlock   ActionKind = "unlock"   // reroutes a room exit
	ActionTeleport ActionKind = "teleport" // relocates the player
	ActionFollow   ActionKind = "follow"   // item becomes a companion
)

// UnlockSpec describes an exit reroute: after the unlock, the given
// room's exit in Direction leads to Target.
type UnlockSpec struct {
	Room      int       `json:"room"`
	Direction Direction `json:"direction"`
	Target    int       `json:"target"`
}

// ItemAction is the single interaction an item responds to.
type ItemAction struct {
	Verb   string      `json:"verb"`
	Kind   ActionKind  `json:"kind,omitempty"`
	Value  int         `json:"value,omitempty"`  // health delta, teleport target, or companion home room
	Unlock *UnlockSpec `json:"unlock,omitempty"` // set only for ActionUnlock
}

// Item is an object the player can interact with.
type Item struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Location    Location   `json:"location"`
	Action      ItemAction `json:"action"`
	Points      int        `json:"points,omitempty"` // awarded once on first successful use
}

// Pettable reports whether the item is a creature that responds to
// "pet". Pettable items cannot be picked up.
func (i *Item) Pettable() bool {
	return i.Action.Verb == "pet"
}
