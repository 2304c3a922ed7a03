package game

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/adventure-engine/pkg/titles"
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

// Three rooms: Hall -> Cave to the east; the Vault only opens after
// the key reroutes Hall's south exit.
const testTitleJSON = `{
  "id": "trial",
  "name": "Trial Grounds",
  "version": "1.0.0",
  "description": "A tiny proving ground.",
  "help": "Try: go east, get sword, attack ogre.",
  "start_room": 1,
  "exit_room": 3,
  "max_health": 50,
  "health_step": 1,
  "allow_overheal": false,
  "levels": {"1": "Ground"},
  "rooms": [
    {"number": 1, "name": "Hall", "description": "A stone hall.",
     "x": 0, "y": 0, "level": 1, "char": "H", "exits": {"east": 2}},
    {"number": 2, "name": "Cave", "description": "A damp cave.", "points": 5,
     "x": 1, "y": 0, "level": 1, "char": "C", "exits": {"west": 1}},
    {"number": 3, "name": "Vault", "description": "The hidden vault.", "points": 10,
     "x": 0, "y": 1, "level": 1, "char": "V", "exits": {"north": 1}}
  ],
  "items": [
    {"name": "lamp", "description": "A brass lamp.", "room": 1,
     "action": {"verb": "", "kind": ""}},
    {"name": "sword", "description": "A sharp sword.", "room": 1,
     "action": {"verb": "", "kind": ""}},
    {"name": "bread", "description": "A loaf of bread.", "room": 1, "points": 2,
     "action": {"verb": "eat", "kind": "health", "value": 10}},
    {"name": "toadstool", "description": "A spotted toadstool.", "room": 1,
     "action": {"verb": "eat", "kind": "health", "value": -10}},
    {"name": "scroll", "description": "A curling scroll.", "room": 1, "points": 1,
     "action": {"verb": "read", "kind": "fortune"}},
    {"name": "beacon", "description": "A humming beacon.", "room": 1, "points": 1,
     "action": {"verb": "activate", "kind": "teleport", "value": 2}},
    {"name": "vault key", "description": "A heavy iron key.", "room": 2, "points": 3,
     "action": {"verb": "use", "kind": "unlock",
                "unlock": {"room": 1, "direction": "south", "target": 3}}},
    {"name": "cat", "description": "A small grey cat.", "room": 2, "points": 4,
     "action": {"verb": "pet", "kind": "follow", "value": 2}}
  ],
  "monsters": [
    {"key": "ogre", "name": "Ogre", "description": "An ogre blocks the cave!",
     "room": 2, "weapon": "sword", "hits": 2,
     "can_harm": true, "hit_chance": 1.0, "damage": 5, "appear_chance": 1.0}
  ],
  "messages": [
    {"tag": "Blocked", "text": "No way {0}!"}
  ]
}`

func newTestInstance(t *testing.T) *Instance {
	t.Helper()
	p, err := titles.Load([]byte(testTitleJSON))
	require.NoError(t, err)
	in := NewInstance("test-session", p)
	in.SetRand(rand.New(rand.NewPCG(1, 2)))
	return in
}

// carry moves a named item straight into the inventory.
func carry(t *testing.T, in *Instance, name string) {
	t.Helper()
	it := in.World.FindItem(name)
	require.NotNil(t, it, "fixture item %s missing", name)
	it.Location = world.CarriedLocation()
}
