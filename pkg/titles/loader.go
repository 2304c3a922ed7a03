package titles

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/jwebster45206/adventure-engine/pkg/world"
)

// titleFile is the on-disk JSON schema for one title.
type titleFile struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Version       string            `json:"version"`
	Description   string            `json:"description"`
	Help          string            `json:"help"`
	StartRoom     int               `json:"start_room"`
	ExitRoom      int               `json:"exit_room"`
	MaxHealth     int               `json:"max_health"`
	HealthStep    int               `json:"health_step"`
	AllowOverheal bool              `json:"allow_overheal"`
	Levels        map[string]string `json:"levels"`
	Rooms         []roomFile        `json:"rooms"`
	Items         []itemFile        `json:"items"`
	Monsters      []world.Monster   `json:"monsters"`
	Messages      []world.Message   `json:"messages"`
}

type roomFile struct {
	Number      int            `json:"number"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Points      int            `json:"points"`
	X           int            `json:"x"`
	Y           int            `json:"y"`
	Level       int            `json:"level"`
	Char        string         `json:"char"`
	Exits       map[string]int `json:"exits"`
}

type itemFile struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Room        int        `json:"room"`
	Points      int        `json:"points"`
	Action      actionFile `json:"action"`
}

type actionFile struct {
	Verb   string      `json:"verb"`
	Kind   string      `json:"kind"`
	Value  int         `json:"value"`
	Unlock *unlockFile `json:"unlock"`
}

type unlockFile struct {
	Room      int    `json:"room"`
	Direction string `json:"direction"`
	Target    int    `json:"target"`
}

// title implements Catalog and Provider for a loaded titleFile.
type title struct {
	meta      titleFile
	positions map[int]RoomPos
	chars     map[int]string
	levels    map[int]string
	def       *world.Definition
}

var _ Catalog = (*title)(nil)
var _ Provider = (*title)(nil)

// Load parses and validates one title from JSON.
func Load(data []byte) (Provider, error) {
	var tf titleFile
	if err := json.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("failed to unmarshal title: %w", err)
	}

	t := &title{
		meta:      tf,
		positions: make(map[int]RoomPos),
		chars:     make(map[int]string),
		levels:    make(map[int]string),
	}

	for k, v := range tf.Levels {
		n, err := strconv.Atoi(k)
		if err != nil {
			return nil, fmt.Errorf("title %s: bad level key %q: %w", tf.ID, k, err)
		}
		t.levels[n] = v
	}

	def, err := t.buildDefinition()
	if err != nil {
		return nil, err
	}
	t.def = def

	if err := t.validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *title) buildDefinition() (*world.Definition, error) {
	def := &world.Definition{
		Monsters: t.meta.Monsters,
		Messages: t.meta.Messages,
	}

	for _, rf := range t.meta.Rooms {
		r := &world.Room{
			Number:      rf.Number,
			Name:        rf.Name,
			Description: rf.Description,
			Points:      rf.Points,
		}
		for name, target := range rf.Exits {
			d, ok := world.ParseDirection(name)
			if !ok {
				return nil, fmt.Errorf("title %s: room %d: unknown direction %q", t.meta.ID, rf.Number, name)
			}
			r.SetExit(d, world.ExitTo(target))
		}
		def.Rooms = append(def.Rooms, r)
		t.positions[rf.Number] = RoomPos{X: rf.X, Y: rf.Y, Level: rf.Level}
		t.chars[rf.Number] = rf.Char
	}

	for _, itf := range t.meta.Items {
		action := world.ItemAction{
			Verb:  itf.Action.Verb,
			Kind:  world.ActionKind(itf.Action.Kind),
			Value: itf.Action.Value,
		}
		if itf.Action.Unlock != nil {
			d, ok := world.ParseDirection(itf.Action.Unlock.Direction)
			if !ok {
				return nil, fmt.Errorf("title %s: item %q: unknown unlock direction %q",
					t.meta.ID, itf.Name, itf.Action.Unlock.Direction)
			}
			action.Unlock = &world.UnlockSpec{
				Room:      itf.Action.Unlock.Room,
				Direction: d,
				Target:    itf.Action.Unlock.Target,
			}
		}
		def.Items = append(def.Items, &world.Item{
			Name:        itf.Name,
			Description: itf.Description,
			Location:    world.RoomLocation(itf.Room),
			Action:      action,
			Points:      itf.Points,
		})
	}

	return def, nil
}

func (t *title) validate() error {
	id := t.meta.ID
	if id == "" {
		return fmt.Errorf("title has no id")
	}
	if t.meta.Name == "" {
		return fmt.Errorf("title %s has no name", id)
	}
	if t.meta.MaxHealth <= 0 {
		return fmt.Errorf("title %s: max_health must be positive", id)
	}
	if t.meta.HealthStep < 0 {
		return fmt.Errorf("title %s: health_step must not be negative", id)
	}

	seen := make(map[int]bool)
	for _, r := range t.def.Rooms {
		if r.Number == ReservedRoom {
			return fmt.Errorf("title %s: room number %d is reserved", id, ReservedRoom)
		}
		if r.Number <= 0 {
			return fmt.Errorf("title %s: room number %d must be positive", id, r.Number)
		}
		if seen[r.Number] {
			return fmt.Errorf("title %s: duplicate room number %d", id, r.Number)
		}
		seen[r.Number] = true

		pos := t.positions[r.Number]
		if _, ok := t.levels[pos.Level]; !ok {
			return fmt.Errorf("title %s: room %d references undefined level %d", id, r.Number, pos.Level)
		}
		if t.chars[r.Number] == "" {
			return fmt.Errorf("title %s: room %d has no display char", id, r.Number)
		}
	}

	for _, r := range t.def.Rooms {
		for _, d := range r.ExitDirections() {
			target, _ := r.Exit(d).Room()
			if !seen[target] {
				return fmt.Errorf("title %s: room %d exit %s leads to undefined room %d", id, r.Number, d, target)
			}
		}
	}

	if !seen[t.meta.StartRoom] {
		return fmt.Errorf("title %s: start room %d is not defined", id, t.meta.StartRoom)
	}
	if t.meta.ExitRoom != 0 && !seen[t.meta.ExitRoom] {
		return fmt.Errorf("title %s: exit room %d is not defined", id, t.meta.ExitRoom)
	}

	for _, it := range t.def.Items {
		if !seen[it.Location.Room] {
			return fmt.Errorf("title %s: item %q starts in undefined room %d", id, it.Name, it.Location.Room)
		}
		switch it.Action.Kind {
		case "", world.ActionHealth, world.ActionFortune, world.ActionTeleport, world.ActionFollow:
		case world.ActionUnlock:
			u := it.Action.Unlock
			if u == nil {
				return fmt.Errorf("title %s: item %q: unlock action without unlock spec", id, it.Name)
			}
			if !seen[u.Room] || !seen[u.Target] {
				return fmt.Errorf("title %s: item %q: unlock references undefined room", id, it.Name)
			}
		default:
			return fmt.Errorf("title %s: item %q: unknown action kind %q", id, it.Name, it.Action.Kind)
		}
		if it.Action.Kind == world.ActionTeleport && !seen[it.Action.Value] {
			return fmt.Errorf("title %s: item %q: teleport to undefined room %d", id, it.Name, it.Action.Value)
		}
		if it.Action.Kind == world.ActionFollow && !seen[it.Action.Value] {
			return fmt.Errorf("title %s: item %q: companion home room %d is not defined", id, it.Name, it.Action.Value)
		}
	}

	for _, m := range t.def.Monsters {
		if m.Key == "" {
			return fmt.Errorf("title %s: monster with empty key", id)
		}
		if !seen[m.HomeRoom] {
			return fmt.Errorf("title %s: monster %q home room %d is not defined", id, m.Key, m.HomeRoom)
		}
		if m.Weapon != "" && t.def.FindItem(m.Weapon) == nil {
			return fmt.Errorf("title %s: monster %q weapon %q is not a defined item", id, m.Key, m.Weapon)
		}
		if m.HitsToKill <= 0 {
			return fmt.Errorf("title %s: monster %q needs at least one hit to kill", id, m.Key)
		}
	}

	return nil
}

// Catalog implementation

func (t *title) ID() string          { return t.meta.ID }
func (t *title) Name() string        { return t.meta.Name }
func (t *title) Version() string     { return t.meta.Version }
func (t *title) Description() string { return t.meta.Description }
func (t *title) Help() string        { return t.meta.Help }
func (t *title) StartRoom() int      { return t.meta.StartRoom }
func (t *title) ExitRoom() int       { return t.meta.ExitRoom }
func (t *title) MaxHealth() int      { return t.meta.MaxHealth }
func (t *title) HealthStep() int     { return t.meta.HealthStep }
func (t *title) AllowOverheal() bool { return t.meta.AllowOverheal }

func (t *title) Position(room int) (RoomPos, bool) {
	p, ok := t.positions[room]
	return p, ok
}

func (t *title) DisplayChar(room int) string {
	return t.chars[room]
}

func (t *title) LevelName(level int) string {
	return t.levels[level]
}

func (t *title) Levels() []int {
	out := slices.Collect(maps.Keys(t.levels))
	slices.Sort(out)
	return out
}

func (t *title) RoomChars() map[int]string {
	return maps.Clone(t.chars)
}

func (t *title) LevelNames() map[int]string {
	return maps.Clone(t.levels)
}

// Provider implementation

func (t *title) Catalog() Catalog { return t }

func (t *title) Content() *world.Definition {
	return t.def.Clone()
}
