package generator

import (
	"darkpath/pkg/engine/world"
)

// pathDegree returns how many of c's orthogonal neighbours are walkable.
// Distinct paths never touch, so for a carved tile this is its degree
// within its own path.
func pathDegree(grid *world.Grid, c world.Coord) int {
	degree := 0
	for _, n := range grid.Neighbors4(c) {
		if grid.Get(n) != world.Hole {
			degree++
		}
	}
	return degree
}

// boundaryTiles returns the members with at most one path neighbour, in member order
func boundaryTiles(grid *world.Grid, members []world.Coord) []world.Coord {
	var boundary []world.Coord
	for _, c := range members {
		if pathDegree(grid, c) <= 1 {
			boundary = append(boundary, c)
		}
	}
	return boundary
}

// selectEndpoints picks the pair of boundary tiles furthest apart by
// Manhattan distance. Pairs are ordered and include a tile with itself,
// so a single-tile path yields that tile for both ends. The first
// maximum found wins.
func selectEndpoints(grid *world.Grid, members []world.Coord) (start, exit world.Coord, err error) {
	boundary := boundaryTiles(grid, members)
	if len(boundary) == 0 {
		return start, exit, ErrNoBoundaryTiles
	}

	best := -1
	for _, a := range boundary {
		for _, b := range boundary {
			if d := world.Manhattan(a, b); d > best {
				best = d
				start, exit = a, b
			}
		}
	}
	return start, exit, nil
}
