package world

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Coord is a 1-based (x, y) tile position. x is the column, y the row.
type Coord struct {
	X int
	Y int
}

// CoordSet is a set of coordinates
type CoordSet = mapset.Set[Coord]

// NewCoordSet creates a set holding the given coordinates
func NewCoordSet(coords ...Coord) CoordSet {
	s := mapset.New[Coord]()
	for _, c := range coords {
		s.Put(c)
	}
	return s
}

// String renders the coordinate as "x, y"
func (c Coord) String() string {
	return fmt.Sprintf("%d, %d", c.X, c.Y)
}

// Step returns the coordinate one tile away in the given direction
func (c Coord) Step(dir Direction) Coord {
	dx, dy := dir.Delta()
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Manhattan returns the Manhattan distance between two coordinates
func Manhattan(a, b Coord) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// IsAdjacent returns true if a and b are orthogonal neighbours
func IsAdjacent(a, b Coord) bool {
	return Manhattan(a, b) == 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
