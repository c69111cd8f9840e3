package walker

import (
	"fmt"

	"taxicab/internal/route"
)

// Heading is the compass direction the walker faces. The constants run
// clockwise, so a right turn is +1 and a left turn is -1 modulo 4.
type Heading int

const (
	North Heading = iota
	East
	South
	West
)

var headingNames = [...]string{North: "North", East: "East", South: "South", West: "West"}

// unit vectors, north is +y
var headingSteps = [...]Position{
	North: {0, 1},
	East:  {1, 0},
	South: {0, -1},
	West:  {-1, 0},
}

func (h Heading) valid() bool {
	return h >= North && h <= West
}

func (h Heading) String() string {
	if !h.valid() {
		return fmt.Sprintf("Heading(%d)", int(h))
	}
	return headingNames[h]
}

// Turn returns the heading after a quarter turn. Like Step, it panics on a
// heading outside North..West.
func (h Heading) Turn(t route.Turn) Heading {
	h.mustBeValid()
	switch t {
	case route.TurnLeft:
		return (h + 3) % 4
	case route.TurnRight:
		return (h + 1) % 4
	}
	panic(fmt.Sprintf("walker: unknown turn %v", t))
}

// Step is the unit vector for h.
func (h Heading) Step() Position {
	h.mustBeValid()
	return headingSteps[h]
}

func (h Heading) mustBeValid() {
	if !h.valid() {
		panic(fmt.Sprintf("walker: invalid heading %v", h))
	}
}
