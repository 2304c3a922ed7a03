package game

import (
	"strings"

	"github.com/jwebster45206/d20"

	"github.com/jwebster45206/adventure-engine/pkg/textutil"
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

// MonsterState is a monster definition plus its per-session encounter
// state. The d20 actor holds the authoritative hit points; HitsLeft
// mirrors it so the actor can be rebuilt after a restore from storage.
type MonsterState struct {
	world.Monster
	Present  bool `json:"present"`
	HitsLeft int  `json:"hits_left"`

	actor *d20.Actor
}

func newMonsterState(m world.Monster) *MonsterState {
	return &MonsterState{Monster: m, HitsLeft: m.HitsToKill}
}

// combatActor lazily rebuilds the d20 actor from the persisted
// HitsLeft mirror. Once built, the actor is the source of truth.
func (m *MonsterState) combatActor() *d20.Actor {
	if m.actor != nil {
		return m.actor
	}
	actor, err := d20.NewActor(m.Key).
		WithHP(m.HitsToKill).
		Build()
	if err != nil {
		return nil
	}
	if m.HitsLeft != m.HitsToKill {
		_ = actor.SetHP(m.HitsLeft)
	}
	m.actor = actor
	return m.actor
}

// Strike lands one blow. Returns true if the monster is destroyed.
func (m *MonsterState) Strike() bool {
	a := m.combatActor()
	if a == nil {
		m.HitsLeft--
	} else {
		a.SubHP(1)
		m.HitsLeft = a.HP()
	}
	if m.HitsLeft <= 0 {
		m.HitsLeft = 0
		m.Present = false
		return true
	}
	return false
}

// Defeated reports whether the monster has been destroyed.
func (m *MonsterState) Defeated() bool {
	if a := m.combatActor(); a != nil {
		return a.IsKnockedOut()
	}
	return m.HitsLeft <= 0
}

// Matches reports whether the player's word refers to this monster.
func (m *MonsterState) Matches(name string) bool {
	if name == "" {
		return false
	}
	if strings.EqualFold(m.Key, name) {
		return true
	}
	return strings.Contains(strings.ToLower(m.Name), strings.ToLower(name))
}

// CheckMonsters re-rolls monster presence for the player's current
// room. Called on every room entry. Returns the description text of
// whatever appeared, one monster per line.
func (in *Instance) CheckMonsters() string {
	var lines []string
	for _, m := range in.Monsters {
		if m.HomeRoom != in.Player.Room || m.Defeated() {
			continue
		}
		if in.Rand().Float64() < m.AppearChance {
			m.Present = true
			lines = append(lines, m.Description)
		} else {
			m.Present = false
		}
	}
	return strings.Join(lines, "\n")
}

// PresentMonster returns the monster currently present in the
// player's room matching name, or nil.
func (in *Instance) PresentMonster(name string) *MonsterState {
	for _, m := range in.Monsters {
		if m.Present && !m.Defeated() && m.HomeRoom == in.Player.Room && m.Matches(name) {
			return m
		}
	}
	return nil
}

// Attack resolves "attack <monster>". The monster's required weapon
// must be in the inventory; anything else the player carries glances
// off. A surviving monster that can harm the player counter-attacks
// per its hit probability.
func (in *Instance) Attack(cmd CommandState) CommandState {
	if in.Player.Dead {
		cmd.Valid = false
		cmd.Message = in.Message(world.MsgDead, "fight")
		return cmd
	}

	target := cmd.Modifier
	if target == "" {
		cmd.Valid = false
		cmd.Message = in.Message(world.MsgAttackNobody, "foe")
		return cmd
	}

	m := in.PresentMonster(target)
	if m == nil {
		cmd.Valid = false
		cmd.Message = in.Message(world.MsgAttackNobody, target)
		return cmd
	}

	// Monster names are title-cased in narrative no matter how the
	// title author wrote them.
	name := textutil.TitleCase(m.Name)

	weapon := in.World.FindItem(m.Weapon)
	if weapon == nil || !weapon.Location.IsCarried() {
		cmd.Valid = false
		if len(in.World.CarriedItems()) == 0 {
			cmd.Message = in.Message(world.MsgAttackNoWeapon, name)
		} else {
			cmd.Message = in.Message(world.MsgAttackWrong, name)
		}
		cmd.Message += in.counterAttack(m)
		return cmd
	}

	cmd.Valid = true
	if m.Strike() {
		cmd.Message = in.Message(world.MsgAttackKill, name)
		return cmd
	}
	cmd.Message = in.Message(world.MsgAttackHit, name) + in.counterAttack(m)
	return cmd
}

// counterAttack rolls the monster's response to an exchange it
// survived. Returns "" or a newline-prefixed narrative.
func (in *Instance) counterAttack(m *MonsterState) string {
	if m.Defeated() || !m.CanHarm {
		return ""
	}
	if in.Rand().Float64() < m.HitChance {
		in.ApplyHealthDelta(-m.Damage)
		return "\n" + in.Message(world.MsgMonsterHits, textutil.TitleCase(m.Name))
	}
	return "\n" + in.Message(world.MsgMonsterMisses, textutil.TitleCase(m.Name))
}
