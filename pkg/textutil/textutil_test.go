package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinList(t *testing.T) {
	tests := []struct {
		name  string
		words []string
		want  string
	}{
		{"empty", nil, ""},
		{"one", []string{"lamp"}, "lamp"},
		{"two", []string{"lamp", "key"}, "lamp and key"},
		{"three", []string{"lamp", "key", "bread"}, "lamp, key and bread"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, JoinList(tc.words))
		})
	}
}

func TestPathText(t *testing.T) {
	assert.Equal(t, "There is no way out.", PathText(nil))
	assert.Equal(t, "You can go north.", PathText([]string{"north"}))
	assert.Equal(t, "You can go north and down.", PathText([]string{"north", "down"}))
	assert.Equal(t, "You can go north, east and down.", PathText([]string{"north", "east", "down"}))
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Rusty Key", TitleCase("rusty key"))
	assert.Equal(t, "Barn Cat", TitleCase("barn cat"))
}
