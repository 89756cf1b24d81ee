package generator

import (
	"darkpath/pkg/engine/world"
	"darkpath/pkg/game/paths"
)

// carveResult is the outcome of trying to carve a single candidate tile
type carveResult int

const (
	carved carveResult = iota
	rejectedLoop
	rejectedComplexity
)

// carveStats counts the outcomes of a carving run
type carveStats struct {
	candidates         int
	accepted           int
	rejectedLoop       int
	rejectedComplexity int
}

// carver turns holes into path tiles one random candidate at a time until
// no candidates remain. Paths only ever grow by merging, and a candidate
// is refused if it would touch the same path twice or push the merged
// path past the complexity limit.
type carver struct {
	grid     *world.Grid
	registry *paths.Registry
	limit    float64
	rng      Rand
	stats    carveStats
}

func newCarver(grid *world.Grid, limit float64, rng Rand) *carver {
	return &carver{
		grid:     grid,
		registry: paths.NewRegistry(grid),
		limit:    limit,
		rng:      rng,
	}
}

// candidates returns every interior Hole in row-major order. The outer
// ring is never a candidate.
func (c *carver) candidates() []world.Coord {
	var out []world.Coord
	size := c.grid.Size()
	for y := 2; y <= size-1; y++ {
		for x := 2; x <= size-1; x++ {
			pos := world.Coord{X: x, Y: y}
			if c.grid.Get(pos) == world.Hole {
				out = append(out, pos)
			}
		}
	}
	return out
}

// run carves until the candidate set is exhausted
func (c *carver) run() {
	pending := c.candidates()
	c.stats.candidates = len(pending)

	for len(pending) > 0 {
		i := c.rng.Intn(len(pending))
		pos := pending[i]

		// swap-remove; order of the remaining candidates does not matter
		last := len(pending) - 1
		pending[i] = pending[last]
		pending = pending[:last]

		switch c.tryCarve(pos) {
		case carved:
			c.stats.accepted++
		case rejectedLoop:
			c.stats.rejectedLoop++
		case rejectedComplexity:
			c.stats.rejectedComplexity++
		}
	}
}

// neighborPaths returns the path IDs of pos's orthogonal neighbours in
// N, S, E, W order. Out-of-bounds and non-path neighbours are None.
func (c *carver) neighborPaths(pos world.Coord) [4]paths.ID {
	var ids [4]paths.ID
	for i, dir := range world.AllDirections() {
		ids[i] = c.registry.At(pos.Step(dir))
	}
	return ids
}

// tryCarve attempts to turn pos into a path tile, merging every path it touches.
func (c *carver) tryCarve(pos world.Coord) carveResult {
	ids := c.neighborPaths(pos)

	// Touching one path at two points would close a loop.
	distinct := make([]paths.ID, 0, len(ids))
	for _, id := range ids {
		if id == paths.None {
			continue
		}
		for _, seen := range distinct {
			if seen == id {
				return rejectedLoop
			}
		}
		distinct = append(distinct, id)
	}

	complexity := 0
	for _, id := range distinct {
		complexity += c.registry.Len(id)
	}
	if float64(complexity) > c.limit {
		return rejectedComplexity
	}

	merged := c.registry.NewPath(pos)
	for _, id := range distinct {
		c.registry.Append(id, merged)
	}
	return carved
}
