package world

import (
	"errors"
	"fmt"
)

// MinSize is the smallest grid that still has an interior tile.
const MinSize = 3

// ErrInvalidSize is returned when a grid is too small to have any interior tile
var ErrInvalidSize = errors.New("world: grid size too small")

// Grid is a fixed-size square matrix of tile kinds addressed by 1-based coordinates
type Grid struct {
	tiles []TileKind
	size  int
}

// NewGrid creates a size×size grid filled with Hole tiles
func NewGrid(size int) (*Grid, error) {
	if size < MinSize {
		return nil, fmt.Errorf("%w: %d (minimum %d)", ErrInvalidSize, size, MinSize)
	}
	return &Grid{
		tiles: make([]TileKind, size*size),
		size:  size,
	}, nil
}

// Size returns the width (and height) of the grid
func (g *Grid) Size() int {
	return g.size
}

// IsValidPosition checks if a coordinate is within grid bounds
func (g *Grid) IsValidPosition(c Coord) bool {
	return c.X >= 1 && c.X <= g.size && c.Y >= 1 && c.Y <= g.size
}

// IsPlayablePosition checks if a coordinate is within the interior (not on the perimeter).
// Only interior tiles are ever carved, which keeps a 1-tile ring of holes around every board.
func (g *Grid) IsPlayablePosition(c Coord) bool {
	return c.X >= 2 && c.X <= g.size-1 && c.Y >= 2 && c.Y <= g.size-1
}

// IsOnPerimeter checks if a coordinate is on the outer ring of the grid
func (g *Grid) IsOnPerimeter(c Coord) bool {
	return g.IsValidPosition(c) && !g.IsPlayablePosition(c)
}

func (g *Grid) index(c Coord) int {
	return (c.Y-1)*g.size + (c.X - 1)
}

// Index returns the row-major 0-based offset of c, or -1 when out of bounds
func (g *Grid) Index(c Coord) int {
	if !g.IsValidPosition(c) {
		return -1
	}
	return g.index(c)
}

// Get returns the tile at c. Everything outside the grid reads as Hole.
func (g *Grid) Get(c Coord) TileKind {
	if !g.IsValidPosition(c) {
		return Hole
	}
	return g.tiles[g.index(c)]
}

// Set writes the tile at c. Returns false if c is out of bounds.
func (g *Grid) Set(c Coord, kind TileKind) bool {
	if !g.IsValidPosition(c) {
		return false
	}
	g.tiles[g.index(c)] = kind
	return true
}

// Neighbors4 returns the in-bounds orthogonal neighbours of c in N, S, E, W order
func (g *Grid) Neighbors4(c Coord) []Coord {
	neighbors := make([]Coord, 0, 4)
	for _, dir := range AllDirections() {
		n := c.Step(dir)
		if g.IsValidPosition(n) {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

// ForEachTile iterates over all tiles in row-major order
func (g *Grid) ForEachTile(fn func(c Coord, kind TileKind)) {
	for y := 1; y <= g.size; y++ {
		for x := 1; x <= g.size; x++ {
			c := Coord{X: x, Y: y}
			fn(c, g.tiles[g.index(c)])
		}
	}
}

// Count returns the number of tiles of the given kind
func (g *Grid) Count(kind TileKind) int {
	n := 0
	for _, k := range g.tiles {
		if k == kind {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	tiles := make([]TileKind, len(g.tiles))
	copy(tiles, g.tiles)
	return &Grid{tiles: tiles, size: g.size}
}
