package game

import (
	"strings"

	"github.com/jwebster45206/adventure-engine/pkg/world"
)

// CommandState is the parsed form of one player input, consumed by
// every resolver. Valid=false with a message is an in-world
// rejection, not an engine error.
type CommandState struct {
	Verb     string `json:"verb"`
	Modifier string `json:"modifier"`
	Raw      string `json:"raw"`
	Valid    bool   `json:"valid"`
	Message  string `json:"message,omitempty"`
}

// verbSynonyms maps alternate spellings onto canonical verbs before
// dispatch.
var verbSynonyms = map[string]string{
	"take":      "get",
	"grab":      "get",
	"pick":      "get",
	"examine":   "look",
	"l":         "look",
	"fight":     "attack",
	"kill":      "attack",
	"hit":       "attack",
	"inventory": "inv",
	"i":         "inv",
	"wear":      "pet",
	"release":   "shoo",
	"score":     "points",
	"walk":      "go",
	"move":      "go",
}

// knownVerbs is the full canonical command set.
var knownVerbs = map[string]bool{
	"go":       true,
	"get":      true,
	"drop":     true,
	"pet":      true,
	"shoo":     true,
	"inv":      true,
	"look":     true,
	"use":      true,
	"eat":      true,
	"read":     true,
	"wave":     true,
	"throw":    true,
	"activate": true,
	"attack":   true,
	"map":      true,
	"help":     true,
	"points":   true,
}

// Parse tokenizes raw input into verb and modifier (extra tokens are
// dropped), applies the synonym table, and converts direction words
// and abbreviations into a canonical "go <direction>" command.
func Parse(raw string) CommandState {
	cmd := CommandState{Raw: raw}

	fields := strings.Fields(strings.ToLower(strings.TrimSpace(raw)))
	if len(fields) == 0 {
		return cmd
	}

	verb := fields[0]
	if len(fields) > 1 {
		cmd.Modifier = fields[1]
	}
	if canonical, ok := verbSynonyms[verb]; ok {
		verb = canonical
	}

	if verb == "go" {
		d, ok := world.ParseDirection(cmd.Modifier)
		if !ok {
			cmd.Verb = verb
			cmd.Message = "Wrong Way!"
			return cmd
		}
		cmd.Verb = verb
		cmd.Modifier = d.String()
		cmd.Valid = true
		return cmd
	}

	if knownVerbs[verb] {
		cmd.Verb = verb
		cmd.Valid = true
		return cmd
	}

	// Bare direction words and abbreviations become "go <direction>".
	if d, ok := world.ParseDirection(verb); ok {
		cmd.Verb = "go"
		cmd.Modifier = d.String()
		cmd.Valid = true
		return cmd
	}

	// Short unknown tokens read like a botched direction.
	if len(verb) <= 3 {
		cmd.Verb = verb
		cmd.Message = "Wrong Way!"
		return cmd
	}

	cmd.Verb = verb
	return cmd
}
