// Package textutil holds small helpers for composing narrative text.
package textutil

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.AmericanEnglish)

// TitleCase capitalizes a name for display ("rusty key" -> "Rusty Key").
func TitleCase(s string) string {
	return titleCaser.String(s)
}

// JoinList joins words with comma/"and" grammar: one word stands
// alone, two or more end with "and {last}".
func JoinList(words []string) string {
	switch len(words) {
	case 0:
		return ""
	case 1:
		return words[0]
	case 2:
		return words[0] + " and " + words[1]
	default:
		return strings.Join(words[:len(words)-1], ", ") + " and " + words[len(words)-1]
	}
}

// PathText composes the "You can go ..." sentence for a room's open
// directions. Empty input yields the trapped message.
func PathText(directions []string) string {
	if len(directions) == 0 {
		return "There is no way out."
	}
	return "You can go " + JoinList(directions) + "."
}
