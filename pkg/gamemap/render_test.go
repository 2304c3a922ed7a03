package gamemap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderEmptyLevel(t *testing.T) {
	m := newTestModel(t)
	assert.Empty(t, m.Render(1))

	m.UpdatePlayerPosition(1)
	assert.Empty(t, m.Render(2), "no discovery on the upper level yet")
}

func TestRenderSingleRoom(t *testing.T) {
	m := newTestModel(t)
	m.UpdatePlayerPosition(1)

	want := strings.Join([]string{
		"+--+",
		"|@ |",
		"+--+",
	}, "\n")
	assert.Equal(t, want, m.Render(1))
}

func TestRenderAdjacentRoomsShareBorder(t *testing.T) {
	m := newTestModel(t)
	m.UpdatePlayerPosition(1)
	m.UpdatePlayerPosition(2)
	m.UpdateRoomItems(2, true)

	want := strings.Join([]string{
		"+--+--+",
		"|A |@*|",
		"+--+--+",
	}, "\n")
	assert.Equal(t, want, m.Render(1))
}

func TestRenderGapConnection(t *testing.T) {
	m := newTestModel(t)
	m.UpdatePlayerPosition(1)
	m.UpdatePlayerPosition(3)

	want := strings.Join([]string{
		"+--+",
		"|A |",
		"+--+",
		" .",
		"+--+",
		"|@ |",
		"+--+",
	}, "\n")
	assert.Equal(t, want, m.Render(1))
}

func TestRenderUpMarker(t *testing.T) {
	m := newTestModel(t)
	m.UpdatePlayerPosition(1)
	m.UpdatePlayerPosition(7)
	m.UpdatePlayerPosition(6)

	want := strings.Join([]string{
		"+--+",
		"|A |^",
		"+--+--+",
		"   |D |",
		"   +--+",
	}, "\n")
	assert.Equal(t, want, m.Render(1))
}

func TestRenderDownMarker(t *testing.T) {
	m := newTestModel(t)
	m.UpdatePlayerPosition(7)
	m.UpdatePlayerPosition(6)
	m.UpdatePlayerPosition(8)

	want := strings.Join([]string{
		"+--+",
		"|E |",
		"+--+",
		" v",
		"+--+",
		"|@ |",
		"+--+",
	}, "\n")
	assert.Equal(t, want, m.Render(2))
}

func TestRenderBoxesOverwriteConnections(t *testing.T) {
	m := newTestModel(t)
	m.UpdatePlayerPosition(1)
	m.UpdatePlayerPosition(3)

	// Every box border cell must carry box glyphs, never path dots.
	for _, line := range strings.Split(m.Render(1), "\n") {
		assert.NotContains(t, line, "+.")
		assert.NotContains(t, line, ".+")
		assert.NotContains(t, line, "|.")
	}
}
