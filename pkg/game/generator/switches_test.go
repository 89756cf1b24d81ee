package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"darkpath/pkg/engine/world"
)

func TestPlaceSwitches(t *testing.T) {
	cases := []struct {
		name   string
		rows   []string
		start  world.Coord
		placed []world.Coord
		after  []string
	}{
		{
			name:   "all four neighbours",
			rows:   []string{"00000", "00100", "01110", "00100", "00000"},
			start:  world.Coord{X: 3, Y: 3},
			placed: []world.Coord{{X: 3, Y: 2}, {X: 3, Y: 4}, {X: 4, Y: 3}, {X: 2, Y: 3}},
			after:  []string{"00000", "00200", "02120", "00200", "00000"},
		},
		{
			name:   "exit next to start is kept",
			rows:   []string{"00000", "01400", "01000", "00000", "00000"},
			start:  world.Coord{X: 2, Y: 2},
			placed: []world.Coord{{X: 2, Y: 3}},
			after:  []string{"00000", "01400", "02000", "00000", "00000"},
		},
		{
			name:   "only two steps away",
			rows:   []string{"00000", "01110", "00000", "00000", "00000"},
			start:  world.Coord{X: 2, Y: 2},
			placed: []world.Coord{{X: 3, Y: 2}},
			after:  []string{"00000", "01210", "00000", "00000", "00000"},
		},
		{
			name:  "isolated start",
			rows:  []string{"000", "010", "000"},
			start: world.Coord{X: 2, Y: 2},
			after: []string{"000", "010", "000"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			grid := gridFromRows(t, tc.rows...)
			placed := placeSwitches(grid, tc.start)
			assert.Equal(t, tc.placed, placed)
			assert.Equal(t, gridFromRows(t, tc.after...), grid)
		})
	}
}
