package game

import (
	"math/rand/v2"
	"time"

	"github.com/jwebster45206/adventure-engine/pkg/titles"
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

// Player is the per-session player state.
type Player struct {
	Name      string `json:"name,omitempty"`
	Room      int    `json:"room"`
	Health    int    `json:"health"`
	MaxHealth int    `json:"max_health"`
	Turns     int    `json:"turns"`
	Verbose   bool   `json:"verbose,omitempty"`
	Points    int    `json:"points"`
	Dead      bool   `json:"dead"`
}

// Instance is one live game: a session's private copy of a title's
// world plus the player and encounter state. Instances are owned by
// the session store and never shared between sessions.
type Instance struct {
	TitleID       string `json:"title_id"`
	TitleName     string `json:"title_name"`
	SessionID     string `json:"session_id"`
	Help          string `json:"help,omitempty"`
	StartRoom     int    `json:"start_room"`
	ExitRoom      int    `json:"exit_room"` // 0 = no win condition
	MaxHealth     int    `json:"max_health"`
	HealthStep    int    `json:"health_step"`
	AllowOverheal bool   `json:"allow_overheal"`

	World    *world.Definition `json:"world"`
	Player   Player            `json:"player"`
	Monsters []*MonsterState   `json:"monsters"`

	// Milestones records names already credited for points so that
	// revisits and reuse never double-award.
	Milestones map[string]bool `json:"milestones"`

	rng *rand.Rand
}

// NewInstance builds a fresh instance for a session. The provider's
// content is deep-copied; the instance shares no mutable state with
// the registry or other sessions.
func NewInstance(sessionID string, p titles.Provider) *Instance {
	cat := p.Catalog()
	def := p.Content()

	in := &Instance{
		TitleID:       cat.ID(),
		TitleName:     cat.Name(),
		SessionID:     sessionID,
		Help:          cat.Help(),
		StartRoom:     cat.StartRoom(),
		ExitRoom:      cat.ExitRoom(),
		MaxHealth:     cat.MaxHealth(),
		HealthStep:    cat.HealthStep(),
		AllowOverheal: cat.AllowOverheal(),
		World:         def,
		Player: Player{
			Room:      cat.StartRoom(),
			Health:    cat.MaxHealth(),
			MaxHealth: cat.MaxHealth(),
		},
		Milestones: make(map[string]bool),
	}

	for _, m := range def.Monsters {
		in.Monsters = append(in.Monsters, newMonsterState(m))
	}
	return in
}

// Rand returns the instance's random source, seeding it on first use.
// Sessions restored from storage are reseeded here.
func (in *Instance) Rand() *rand.Rand {
	if in.rng == nil {
		now := uint64(time.Now().UnixNano())
		in.rng = rand.New(rand.NewPCG(now, now^0x9e3779b97f4a7c15))
	}
	return in.rng
}

// SetRand replaces the random source. Tests use this for
// deterministic rolls.
func (in *Instance) SetRand(r *rand.Rand) {
	in.rng = r
}

// CurrentRoom returns the room the player is in.
func (in *Instance) CurrentRoom() *world.Room {
	return in.World.Room(in.Player.Room)
}

// Message draws a flavor message for a tag, choosing randomly when a
// title carries several, and substitutes value for the placeholder.
// Missing tags fall back to a built-in default so a sparse message
// table can never produce an empty response.
func (in *Instance) Message(tag, value string) string {
	templates := in.World.MessagesByTag(tag)
	if len(templates) == 0 {
		return world.Fill(fallbackMessage(tag), value)
	}
	t := templates[in.Rand().IntN(len(templates))]
	return world.Fill(t, value)
}

// AwardPoints credits points for a named milestone exactly once.
// Returns true if the award was applied.
func (in *Instance) AwardPoints(name string, points int) bool {
	if in.Milestones[name] {
		return false
	}
	in.Milestones[name] = true
	in.Player.Points += points
	return true
}

// ClaimRoom awards the current room's points on first claim.
func (in *Instance) ClaimRoom() {
	room := in.CurrentRoom()
	if room == nil || room.Points == 0 {
		return
	}
	in.AwardPoints(room.Name, room.Points)
}

// fallbackMessage supplies defaults for tags a title omits.
func fallbackMessage(tag string) string {
	switch tag {
	case world.MsgBlocked:
		return "You cannot go {0}."
	case world.MsgDead:
		return "You are dead. The dead do not {0}."
	case world.MsgWrongWay:
		return "Wrong Way!"
	case world.MsgInvEmpty:
		return "[Empty]"
	case world.MsgLookNothing:
		return "You see nothing special."
	case world.MsgLookNotHere:
		return "You see no {0} here."
	case world.MsgNotCarried:
		return "You are not holding a {0}."
	case world.MsgWrongVerb:
		return "The {0} does not respond to that."
	case world.MsgGetFailed:
		return "There is no {0} here."
	case world.MsgGetAlive:
		return "The {0} dodges your grasp."
	case world.MsgGetSuccess:
		return "You take the {0}."
	case world.MsgDropFailed:
		return "You are not carrying a {0}."
	case world.MsgDropSuccess:
		return "You set down the {0}."
	case world.MsgPetFailed:
		return "There is no {0} here to pet."
	case world.MsgPetSuccess:
		return "The {0} follows you now."
	case world.MsgShooFailed:
		return "No {0} is following you."
	case world.MsgShooSuccess:
		return "The {0} heads home."
	case world.MsgHealthUp:
		return "The {0} did you good."
	case world.MsgHealthDown:
		return "The {0} hurt you."
	case world.MsgHealthOver:
		return "You could not feel any better. The {0} is wasted."
	case world.MsgFortune:
		return "The {0} reveals your fortune:"
	case world.MsgFortuneText:
		return "The future is unwritten."
	case world.MsgUnlock:
		return "Something has opened."
	case world.MsgTeleport:
		return "The world folds around you."
	case world.MsgFollow:
		return "The {0} follows you."
	case world.MsgAttackNobody:
		return "There is no {0} here to attack."
	case world.MsgAttackNoWeapon:
		return "You have nothing that can harm the {0}."
	case world.MsgAttackWrong:
		return "Your attack has no effect on the {0}."
	case world.MsgAttackHit:
		return "You strike the {0}!"
	case world.MsgAttackKill:
		return "The {0} is destroyed!"
	case world.MsgMonsterHits:
		return "The {0} strikes you!"
	case world.MsgMonsterMisses:
		return "The {0} misses you."
	default:
		return "Nothing happens."
	}
}
