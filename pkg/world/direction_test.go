package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDirection(t *testing.T) {
	tests := []struct {
		input string
		want  Direction
		ok    bool
	}{
		{"north", North, true},
		{"n", North, true},
		{"nor", North, true},
		{"NORTH", North, true},
		{" south ", South, true},
		{"sou", South, true},
		{"east", East, true},
		{"e", East, true},
		{"eas", East, true},
		{"west", West, true},
		{"wes", West, true},
		{"up", Up, true},
		{"u", Up, true},
		{"down", Down, true},
		{"dow", Down, true},
		{"d", Down, true},
		{"", North, false},
		{"sideways", North, false},
		{"nord", North, false},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, ok := ParseDirection(tc.input)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestDirectionString(t *testing.T) {
	for _, d := range Directions() {
		parsed, ok := ParseDirection(d.String())
		assert.True(t, ok)
		assert.Equal(t, d, parsed)
	}
}
