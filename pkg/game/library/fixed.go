package library

import (
	"fmt"

	"darkpath/pkg/engine/world"
	"darkpath/pkg/game/generator"
)

type fixedBoard struct {
	rows  []string
	start world.Coord
}

// Hand-authored opening boards. Digits: 0 hole, 1 path, 2 unlit switch, 4 exit.
var fixedBoards = []fixedBoard{
	{
		rows: []string{
			"00000",
			"01240",
			"00000",
			"00000",
			"00000",
		},
		start: world.Coord{X: 2, Y: 2},
	},
	{
		rows: []string{
			"00000",
			"01200",
			"02000",
			"01140",
			"00000",
		},
		start: world.Coord{X: 2, Y: 2},
	},
	{
		rows: []string{
			"0000000",
			"0111110",
			"0100010",
			"0121010",
			"0002010",
			"0000040",
			"0000000",
		},
		start: world.Coord{X: 4, Y: 4},
	},
}

// Fixed holds the hand-authored boards, served as library indices 1..len(Fixed)
var Fixed []*world.Board

func init() {
	Fixed = make([]*world.Board, len(fixedBoards))
	for i, fb := range fixedBoards {
		b, err := world.BoardFromRows(fb.rows, fb.start)
		if err != nil {
			panic(fmt.Sprintf("library: fixed board %d: %v", i+1, err))
		}
		if err := generator.Validate(b); err != nil {
			panic(fmt.Sprintf("library: fixed board %d: %v", i+1, err))
		}
		Fixed[i] = b
	}
}
