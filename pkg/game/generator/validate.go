package generator

import (
	"errors"
	"fmt"

	"github.com/spakin/disjoint"

	"darkpath/pkg/engine/world"
)

// ErrInvalidBoard is returned when a board breaks one of the published board rules
var ErrInvalidBoard = errors.New("generator: invalid board")

// Validate checks a board for the rules every playable board follows:
// the outer ring is all holes, the start is walkable, there is exactly one
// exit, every switch sits next to the start and the exit can be reached
// from the start.
func Validate(b *world.Board) error {
	if b == nil {
		return fmt.Errorf("%w: nil board", ErrInvalidBoard)
	}

	var perimeterErr error
	exits := 0
	b.ForEachTile(func(c world.Coord, kind world.TileKind) {
		if kind == world.Exit {
			exits++
		}
		onRing := c.X == 1 || c.Y == 1 || c.X == b.Size() || c.Y == b.Size()
		if perimeterErr == nil && onRing && kind != world.Hole {
			perimeterErr = fmt.Errorf("%w: %s tile on perimeter at %v", ErrInvalidBoard, kind, c)
		}
	})
	if perimeterErr != nil {
		return perimeterErr
	}

	start := b.Start()
	if !b.At(start).IsWalkable() {
		return fmt.Errorf("%w: start %v is a hole", ErrInvalidBoard, start)
	}
	if exits != 1 {
		return fmt.Errorf("%w: %d exit tiles, want 1", ErrInvalidBoard, exits)
	}

	nextToStart := world.NewCoordSet(b.Neighbors4(start)...)
	for _, s := range b.Switches() {
		if !nextToStart.Has(s) {
			return fmt.Errorf("%w: switch %v not adjacent to start %v", ErrInvalidBoard, s, start)
		}
	}

	exit, _ := b.Exit()
	if !connected(b, start, exit) {
		return fmt.Errorf("%w: exit %v unreachable from start %v", ErrInvalidBoard, exit, start)
	}
	return nil
}

// connected reports whether a and b are joined by walkable tiles
func connected(b *world.Board, a, c world.Coord) bool {
	size := b.Size()
	sets := make([]*disjoint.Element, size*size)
	at := func(p world.Coord) *disjoint.Element {
		return sets[(p.Y-1)*size+(p.X-1)]
	}

	b.ForEachTile(func(p world.Coord, kind world.TileKind) {
		if kind.IsWalkable() {
			sets[(p.Y-1)*size+(p.X-1)] = disjoint.NewElement()
		}
	})

	// Joining each tile with its east and south neighbours covers every edge once.
	b.ForEachTile(func(p world.Coord, kind world.TileKind) {
		if !kind.IsWalkable() {
			return
		}
		for _, dir := range []world.Direction{world.East, world.South} {
			n := p.Step(dir)
			if n.X > size || n.Y > size || !b.At(n).IsWalkable() {
				continue
			}
			if at(p).Find() != at(n).Find() {
				disjoint.Union(at(p), at(n))
			}
		}
	})

	ea, ec := at(a), at(c)
	return ea != nil && ec != nil && ea.Find() == ec.Find()
}
