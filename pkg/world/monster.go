package world

// Monster is the static definition of a creature that can appear in
// its home room. Mutable encounter state lives in the game instance.
type Monster struct {
	Key          string  `json:"key"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	HomeRoom     int     `json:"room"`
	Weapon       string  `json:"weapon"` // item name that can defeat it
	HitsToKill   int     `json:"hits"`
	CanHarm      bool    `json:"can_harm"`
	HitChance    float64 `json:"hit_chance"`    // 0..1, per counter-attack
	Damage       int     `json:"damage"`        // health lost per successful counter-attack
	AppearChance float64 `json:"appear_chance"` // 0..1, rolled on each room entry
}
