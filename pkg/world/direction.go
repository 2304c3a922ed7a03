package world

import "strings"

// Direction is one of the six exits a room may have.
type Direction int

const (
	North Direction = iota
	South
	East
	West
	Up
	Down
)

// Directions lists all six directions in rendering order.
func Directions() [6]Direction {
	return [6]Direction{North, South, East, West, Up, Down}
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// ParseDirection resolves a direction name or abbreviation.
// Accepts the full name, the first letter, and the three-letter
// short form ("nor", "sou", "eas", "wes", "dow"). "up" is its own
// abbreviation.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "north", "nor", "n":
		return North, true
	case "south", "sou", "s":
		return South, true
	case "east", "eas", "e":
		return East, true
	case "west", "wes", "w":
		return West, true
	case "up", "u":
		return Up, true
	case "down", "dow", "d":
		return Down, true
	default:
		return North, false
	}
}
