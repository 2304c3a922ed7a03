package game

// Health band labels returned by HealthBand.
const (
	BandGreat    = "Great"
	BandOkay     = "Okay"
	BandBad      = "Bad"
	BandHorrible = "Horrible"
	BandDead     = "Dead"
)

// ApplyTurnAttrition charges the per-turn health step. Every
// processed command costs the player, independent of any item effects
// applied the same turn.
func (in *Instance) ApplyTurnAttrition() {
	if in.Player.Dead {
		return
	}
	in.Player.Health -= in.HealthStep
	in.checkDeath()
}

// ApplyHealthDelta applies a signed health change from an item or a
// monster. Positive deltas clamp to max health unless the title
// allows overheal.
func (in *Instance) ApplyHealthDelta(delta int) {
	in.Player.Health += delta
	if delta > 0 && !in.AllowOverheal && in.Player.Health > in.Player.MaxHealth {
		in.Player.Health = in.Player.MaxHealth
	}
	in.checkDeath()
}

func (in *Instance) checkDeath() {
	if in.Player.Health < 1 {
		in.Player.Dead = true
	}
}

// HealthBand maps the health ratio to a display label. The label is
// "Dead" exactly when health is below 1; the dead flag is the
// authoritative check, the band is presentation.
func (in *Instance) HealthBand() string {
	if in.Player.Health < 1 {
		return BandDead
	}
	ratio := float64(in.Player.Health) / float64(in.Player.MaxHealth)
	switch {
	case ratio >= 0.7:
		return BandGreat
	case ratio >= 0.5:
		return BandOkay
	case ratio >= 0.3:
		return BandBad
	default:
		return BandHorrible
	}
}
