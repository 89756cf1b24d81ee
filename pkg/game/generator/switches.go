package generator

import (
	"darkpath/pkg/engine/world"
)

// placeSwitches turns every plain Path tile next to start into an unlit
// switch and returns the converted tiles in N, S, E, W order. Holes and
// the exit are left alone.
func placeSwitches(grid *world.Grid, start world.Coord) []world.Coord {
	var placed []world.Coord
	for _, n := range grid.Neighbors4(start) {
		if grid.Get(n) == world.Path {
			grid.Set(n, world.SwitchOff)
			placed = append(placed, n)
		}
	}
	return placed
}
