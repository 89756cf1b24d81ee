package world

import (
	"errors"
	"fmt"
)

var (
	// ErrNilGrid is returned when a board is built without a grid
	ErrNilGrid = errors.New("world: nil grid")

	// ErrStartOutOfBounds is returned when a board's start coordinate is not on the grid
	ErrStartOutOfBounds = errors.New("world: start outside grid")
)

// Board is a finished, read-only puzzle board: a tile grid plus the
// player's start coordinate. The exit and the switches are encoded in
// the tiles themselves.
type Board struct {
	grid  *Grid
	start Coord
}

// NewBoard creates a board from a copy of grid, so later writes to grid
// do not leak into the board.
func NewBoard(grid *Grid, start Coord) (*Board, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	if !grid.IsValidPosition(start) {
		return nil, fmt.Errorf("%w: %v on %dx%d", ErrStartOutOfBounds, start, grid.size, grid.size)
	}
	return &Board{grid: grid.Clone(), start: start}, nil
}

// BoardFromRows builds a board from rows of tile digits (row 1 first).
// Every row must have exactly len(rows) digits.
func BoardFromRows(rows []string, start Coord) (*Board, error) {
	grid, err := NewGrid(len(rows))
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != grid.size {
			return nil, fmt.Errorf("world: row %d has %d tiles, want %d", i+1, len(row), grid.size)
		}
		for j := 0; j < len(row); j++ {
			kind, err := ParseTileKind(row[j])
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", i+1, j+1, err)
			}
			grid.Set(Coord{X: j + 1, Y: i + 1}, kind)
		}
	}
	return NewBoard(grid, start)
}

// Size returns the width (and height) of the board
func (b *Board) Size() int {
	return b.grid.size
}

// Start returns the start coordinate
func (b *Board) Start() Coord {
	return b.start
}

// Tile returns the tile at 1-based (x, y)
func (b *Board) Tile(x, y int) TileKind {
	return b.grid.Get(Coord{X: x, Y: y})
}

// At returns the tile at c
func (b *Board) At(c Coord) TileKind {
	return b.grid.Get(c)
}

// Exit returns the first Exit tile in row-major order
func (b *Board) Exit() (Coord, bool) {
	var exit Coord
	found := false
	b.grid.ForEachTile(func(c Coord, kind TileKind) {
		if !found && kind == Exit {
			exit = c
			found = true
		}
	})
	return exit, found
}

// Switches returns every switch tile (either state) in row-major order
func (b *Board) Switches() []Coord {
	var switches []Coord
	b.grid.ForEachTile(func(c Coord, kind TileKind) {
		if kind.IsSwitch() {
			switches = append(switches, c)
		}
	})
	return switches
}

// ForEachTile iterates over all tiles in row-major order
func (b *Board) ForEachTile(fn func(c Coord, kind TileKind)) {
	b.grid.ForEachTile(fn)
}

// Neighbors4 returns the in-bounds orthogonal neighbours of c in N, S, E, W order
func (b *Board) Neighbors4(c Coord) []Coord {
	return b.grid.Neighbors4(c)
}

// Count returns the number of tiles of the given kind
func (b *Board) Count(kind TileKind) int {
	return b.grid.Count(kind)
}

// Grid returns a copy of the board's tiles
func (b *Board) Grid() *Grid {
	return b.grid.Clone()
}

// Equal reports whether two boards have the same tiles and start
func (b *Board) Equal(other *Board) bool {
	if b == nil || other == nil {
		return b == other
	}
	if b.start != other.start || b.grid.size != other.grid.size {
		return false
	}
	for i, k := range b.grid.tiles {
		if other.grid.tiles[i] != k {
			return false
		}
	}
	return true
}
