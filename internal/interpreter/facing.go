package interpreter

import "strings"

// Facing is one of the four compass directions the robot can point in.
type Facing int

const (
	North Facing = iota
	East
	South
	West
)

var facingNames = [...]string{"NORTH", "EAST", "SOUTH", "WEST"}

func (f Facing) String() string {
	if f < North || f > West {
		return "?"
	}
	return facingNames[f]
}

// ParseFacing matches a direction name case-insensitively.
func ParseFacing(s string) (Facing, bool) {
	for i, name := range facingNames {
		if strings.EqualFold(s, name) {
			return Facing(i), true
		}
	}
	return North, false
}

// Left rotates 90 degrees counter-clockwise: NORTH -> WEST -> SOUTH -> EAST -> NORTH.
func (f Facing) Left() Facing { return (f + 3) % 4 }

// Right rotates 90 degrees clockwise.
func (f Facing) Right() Facing { return (f + 1) % 4 }

// Delta is the unit displacement of one forward move in this facing.
func (f Facing) Delta() (dx, dy int) {
	switch f {
	case North:
		return 0, 1
	case South:
		return 0, -1
	case East:
		return 1, 0
	case West:
		return -1, 0
	}
	return 0, 0
}

// Glyph is the single-character symbol used by the table renderer.
func (f Facing) Glyph() string {
	switch f {
	case North:
		return "^"
	case South:
		return "v"
	case East:
		return ">"
	case West:
		return "<"
	}
	return "?"
}
