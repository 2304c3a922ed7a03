package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyTurnAttrition(t *testing.T) {
	in := newTestInstance(t)

	in.ApplyTurnAttrition()
	assert.Equal(t, 49, in.Player.Health)
	assert.False(t, in.Player.Dead)

	in.Player.Health = 1
	in.ApplyTurnAttrition()
	assert.Equal(t, 0, in.Player.Health)
	assert.True(t, in.Player.Dead)

	// Attrition stops once dead.
	in.ApplyTurnAttrition()
	assert.Equal(t, 0, in.Player.Health)
}

func TestApplyHealthDeltaClamp(t *testing.T) {
	in := newTestInstance(t)

	in.ApplyHealthDelta(10)
	assert.Equal(t, 50, in.Player.Health, "heal clamps at max")

	in.AllowOverheal = true
	in.ApplyHealthDelta(10)
	assert.Equal(t, 60, in.Player.Health, "overheal allowed by title config")

	in.ApplyHealthDelta(-60)
	assert.Equal(t, 0, in.Player.Health)
	assert.True(t, in.Player.Dead)
}

func TestHealthBand(t *testing.T) {
	tests := []struct {
		health int
		want   string
	}{
		{50, BandGreat},
		{35, BandGreat},
		{34, BandOkay},
		{25, BandOkay},
		{24, BandBad},
		{15, BandBad},
		{14, BandHorrible},
		{1, BandHorrible},
		{0, BandDead},
		{-5, BandDead},
	}

	for _, tc := range tests {
		in := newTestInstance(t)
		in.Player.Health = tc.health
		assert.Equal(t, tc.want, in.HealthBand(), "health %d", tc.health)
	}
}
