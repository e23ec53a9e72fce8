package dial

import "fmt"

// Direction identifies one of the four nudge directions a rotary controller
// can emit. The zero value DirectionNone means "no direction supplied" and is
// only valid where a direction is optional (see ActionFocus).
type Direction uint8

const (
	// DirectionNone represents the absence of a direction (zero value).
	DirectionNone Direction = iota

	// Left nudges toward the left edge of the window.
	Left
	// Right nudges toward the right edge of the window.
	Right
	// Up nudges toward the top edge of the window.
	Up
	// Down nudges toward the bottom edge of the window.
	Down
)

// directions lists the four navigable directions in a stable order.
var directions = [4]Direction{Left, Right, Up, Down}

// Opposite returns the direction that undoes this one: left and right
// swap, up and down swap. Panics on DirectionNone or any other value.
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	case Down:
		return Up
	}
	panic(fmt.Sprintf("dial: direction %d has no opposite", d))
}

// IsValid returns true for the four navigable directions.
func (d Direction) IsValid() bool {
	switch d {
	case Left, Right, Up, Down:
		return true
	}
	return false
}

// String returns the lowercase name of the direction, matching the names
// accepted by ParseDirection.
func (d Direction) String() string {
	switch d {
	case DirectionNone:
		return "none"
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return fmt.Sprintf("direction(%d)", uint8(d))
}

// ParseDirection converts a lowercase direction name to a Direction.
// Returns an error for anything other than "left", "right", "up", "down".
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	}
	return DirectionNone, fmt.Errorf("unknown direction %q", s)
}
