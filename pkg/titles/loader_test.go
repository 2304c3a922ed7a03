package titles

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/adventure-engine/pkg/world"
)

func baseTitle() map[string]any {
	return map[string]any{
		"id":          "trial",
		"name":        "Trial Grounds",
		"version":     "1.0.0",
		"description": "A tiny proving ground.",
		"help":        "Try: go east.",
		"start_room":  1,
		"exit_room":   2,
		"max_health":  50,
		"health_step": 1,
		"levels":      map[string]string{"1": "Ground"},
		"rooms": []map[string]any{
			{
				"number": 1, "name": "Hall", "description": "A hall.",
				"x": 0, "y": 0, "level": 1, "char": "H",
				"exits": map[string]int{"east": 2},
			},
			{
				"number": 2, "name": "Cave", "description": "A cave.", "points": 5,
				"x": 1, "y": 0, "level": 1, "char": "C",
				"exits": map[string]int{"west": 1},
			},
		},
		"items": []map[string]any{
			{
				"name": "sword", "description": "A sharp sword.", "room": 1,
				"action": map[string]any{"verb": "", "kind": ""},
			},
		},
		"monsters": []map[string]any{
			{
				"key": "ogre", "name": "Ogre", "description": "An ogre!",
				"room": 2, "weapon": "sword", "hits": 2,
				"can_harm": true, "hit_chance": 0.5, "damage": 5, "appear_chance": 1.0,
			},
		},
		"messages": []map[string]string{
			{"tag": "Blocked", "text": "No way {0}."},
		},
	}
}

func loadTitle(t *testing.T, title map[string]any) (Provider, error) {
	t.Helper()
	data, err := json.Marshal(title)
	require.NoError(t, err)
	return Load(data)
}

func TestLoadValidTitle(t *testing.T) {
	p, err := loadTitle(t, baseTitle())
	require.NoError(t, err)

	cat := p.Catalog()
	assert.Equal(t, "trial", cat.ID())
	assert.Equal(t, "Trial Grounds", cat.Name())
	assert.Equal(t, 1, cat.StartRoom())
	assert.Equal(t, 2, cat.ExitRoom())
	assert.Equal(t, 50, cat.MaxHealth())
	assert.Equal(t, "Ground", cat.LevelName(1))
	assert.Equal(t, []int{1}, cat.Levels())
	assert.Equal(t, "H", cat.DisplayChar(1))

	pos, ok := cat.Position(2)
	require.True(t, ok)
	assert.Equal(t, RoomPos{X: 1, Y: 0, Level: 1}, pos)

	def := p.Content()
	require.NotNil(t, def.Room(1))
	target, ok := def.Room(1).Exit(world.East).Room()
	require.True(t, ok)
	assert.Equal(t, 2, target)
	require.Len(t, def.Monsters, 1)
	assert.Equal(t, "ogre", def.Monsters[0].Key)
}

func TestLoadContentIsolation(t *testing.T) {
	p, err := loadTitle(t, baseTitle())
	require.NoError(t, err)

	first := p.Content()
	first.Room(1).SetExit(world.North, world.ExitTo(2))
	first.FindItem("sword").Location = world.CarriedLocation()

	second := p.Content()
	assert.False(t, second.Room(1).Exit(world.North).Exists())
	assert.True(t, second.FindItem("sword").Location.InRoom(1))
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(title map[string]any)
		wantErr string
	}{
		{
			"missing id",
			func(m map[string]any) { m["id"] = "" },
			"no id",
		},
		{
			"reserved room number",
			func(m map[string]any) {
				rooms := m["rooms"].([]map[string]any)
				rooms[1]["number"] = ReservedRoom
				rooms[0]["exits"] = map[string]int{"east": ReservedRoom}
				m["exit_room"] = ReservedRoom
			},
			"reserved",
		},
		{
			"duplicate room number",
			func(m map[string]any) {
				rooms := m["rooms"].([]map[string]any)
				rooms[1]["number"] = 1
				rooms[0]["exits"] = map[string]int{}
				m["exit_room"] = 1
				m["items"] = []map[string]any{}
				m["monsters"] = []map[string]any{}
			},
			"duplicate",
		},
		{
			"dangling exit",
			func(m map[string]any) {
				rooms := m["rooms"].([]map[string]any)
				rooms[0]["exits"] = map[string]int{"east": 42}
			},
			"undefined room",
		},
		{
			"unknown exit direction",
			func(m map[string]any) {
				rooms := m["rooms"].([]map[string]any)
				rooms[0]["exits"] = map[string]int{"sideways": 2}
			},
			"unknown direction",
		},
		{
			"undefined level",
			func(m map[string]any) {
				rooms := m["rooms"].([]map[string]any)
				rooms[1]["level"] = 3
			},
			"undefined level",
		},
		{
			"missing display char",
			func(m map[string]any) {
				rooms := m["rooms"].([]map[string]any)
				rooms[0]["char"] = ""
			},
			"no display char",
		},
		{
			"start room undefined",
			func(m map[string]any) { m["start_room"] = 9 },
			"start room",
		},
		{
			"exit room undefined",
			func(m map[string]any) { m["exit_room"] = 9 },
			"exit room",
		},
		{
			"item in undefined room",
			func(m map[string]any) {
				items := m["items"].([]map[string]any)
				items[0]["room"] = 9
			},
			"undefined room",
		},
		{
			"unknown action kind",
			func(m map[string]any) {
				items := m["items"].([]map[string]any)
				items[0]["action"] = map[string]any{"verb": "use", "kind": "explode"}
			},
			"unknown action kind",
		},
		{
			"unlock without spec",
			func(m map[string]any) {
				items := m["items"].([]map[string]any)
				items[0]["action"] = map[string]any{"verb": "use", "kind": "unlock"}
			},
			"unlock",
		},
		{
			"teleport to undefined room",
			func(m map[string]any) {
				items := m["items"].([]map[string]any)
				items[0]["action"] = map[string]any{"verb": "activate", "kind": "teleport", "value": 42}
			},
			"teleport",
		},
		{
			"monster home undefined",
			func(m map[string]any) {
				monsters := m["monsters"].([]map[string]any)
				monsters[0]["room"] = 42
			},
			"home room",
		},
		{
			"monster weapon not an item",
			func(m map[string]any) {
				monsters := m["monsters"].([]map[string]any)
				monsters[0]["weapon"] = "banana"
			},
			"weapon",
		},
		{
			"monster needs hits",
			func(m map[string]any) {
				monsters := m["monsters"].([]map[string]any)
				monsters[0]["hits"] = 0
			},
			"hit",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			title := baseTitle()
			tc.mutate(title)
			_, err := loadTitle(t, title)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
