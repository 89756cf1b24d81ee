package devtools

import (
	"darkpath/pkg/engine/world"
)

// DevBoard returns a hard-coded size×size developer board that shows every
// tile kind: a serpentine path filling the interior, with the start in the
// top-left corner flanked by one lit and one unlit switch and the exit at
// the far end of the serpentine. Sizes below 5 are raised to 5.
func DevBoard(size int) *world.Board {
	if size < 5 {
		size = 5
	}
	grid, _ := world.NewGrid(size)

	// Serpentine over every other interior row, joined at alternating ends.
	var last world.Coord
	for y := 2; y <= size-1; y += 2 {
		leftToRight := (y/2)%2 == 1
		for i := 0; i < size-2; i++ {
			x := 2 + i
			if !leftToRight {
				x = size - 1 - i
			}
			last = world.Coord{X: x, Y: y}
			grid.Set(last, world.Path)
		}
		if y+2 <= size-1 {
			grid.Set(world.Coord{X: last.X, Y: y + 1}, world.Path)
		}
	}

	start := world.Coord{X: 2, Y: 2}
	grid.Set(last, world.Exit)
	grid.Set(world.Coord{X: 3, Y: 2}, world.SwitchOff)
	grid.Set(world.Coord{X: 2, Y: 3}, world.SwitchOn)

	b, _ := world.NewBoard(grid, start)
	return b
}
