package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"darkpath/pkg/engine/world"
)

// gridFromRows builds a grid from rows of tile digits
func gridFromRows(t *testing.T, rows ...string) *world.Grid {
	t.Helper()
	b, err := world.BoardFromRows(rows, world.Coord{X: 1, Y: 1})
	require.NoError(t, err)
	return b.Grid()
}

func TestBoundaryTiles_Leaves(t *testing.T) {
	grid := gridFromRows(t,
		"00000",
		"01110",
		"00100",
		"00100",
		"00000",
	)
	members := []world.Coord{{X: 3, Y: 2}, {X: 2, Y: 2}, {X: 4, Y: 2}, {X: 3, Y: 3}, {X: 3, Y: 4}}
	boundary := boundaryTiles(grid, members)
	assert.Equal(t, []world.Coord{{X: 2, Y: 2}, {X: 4, Y: 2}, {X: 3, Y: 4}}, boundary)
}

func TestSelectEndpoints_FurthestPair(t *testing.T) {
	grid := gridFromRows(t,
		"0000000",
		"0111110",
		"0000010",
		"0000010",
		"0000000",
		"0000000",
		"0000000",
	)
	members := []world.Coord{
		{X: 2, Y: 2}, {X: 3, Y: 2}, {X: 4, Y: 2}, {X: 5, Y: 2}, {X: 6, Y: 2},
		{X: 6, Y: 3}, {X: 6, Y: 4},
	}
	start, exit, err := selectEndpoints(grid, members)
	require.NoError(t, err)
	assert.Equal(t, world.Coord{X: 2, Y: 2}, start)
	assert.Equal(t, world.Coord{X: 6, Y: 4}, exit)
}

func TestSelectEndpoints_FirstMaximumWins(t *testing.T) {
	// a plus sign: every pair of tips is 4 apart, so the first pair enumerated wins
	grid := gridFromRows(t,
		"0000000",
		"0001000",
		"0001000",
		"0111110",
		"0001000",
		"0001000",
		"0000000",
	)
	members := []world.Coord{
		{X: 4, Y: 4},
		{X: 4, Y: 2}, {X: 4, Y: 3},
		{X: 2, Y: 4}, {X: 3, Y: 4},
		{X: 6, Y: 4}, {X: 5, Y: 4},
		{X: 4, Y: 6}, {X: 4, Y: 5},
	}
	start, exit, err := selectEndpoints(grid, members)
	require.NoError(t, err)
	assert.Equal(t, world.Coord{X: 4, Y: 2}, start)
	assert.Equal(t, world.Coord{X: 2, Y: 4}, exit)

	// same input, same answer
	start2, exit2, err := selectEndpoints(grid, members)
	require.NoError(t, err)
	assert.Equal(t, start, start2)
	assert.Equal(t, exit, exit2)
}

func TestSelectEndpoints_SingleTile(t *testing.T) {
	grid := gridFromRows(t, "000", "010", "000")
	start, exit, err := selectEndpoints(grid, []world.Coord{{X: 2, Y: 2}})
	require.NoError(t, err)
	assert.Equal(t, world.Coord{X: 2, Y: 2}, start)
	assert.Equal(t, start, exit)
}

func TestSelectEndpoints_NoBoundary(t *testing.T) {
	// a closed ring has no tile of degree one or less
	grid := gridFromRows(t,
		"00000",
		"01110",
		"01010",
		"01110",
		"00000",
	)
	var members []world.Coord
	grid.ForEachTile(func(c world.Coord, kind world.TileKind) {
		if kind == world.Path {
			members = append(members, c)
		}
	})
	_, _, err := selectEndpoints(grid, members)
	assert.ErrorIs(t, err, ErrNoBoundaryTiles)

	_, _, err = selectEndpoints(grid, nil)
	assert.ErrorIs(t, err, ErrNoBoundaryTiles)
}
