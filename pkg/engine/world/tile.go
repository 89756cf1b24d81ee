// Package world provides the square tile grid primitives shared by the
// board generator and anything that consumes a finished board.
package world

import "fmt"

// TileKind is the semantic role of one grid cell.
type TileKind int

// Tile kinds. The numeric values double as the digits of the plain text
// board format, so do not reorder them.
const (
	Hole TileKind = iota
	Path
	SwitchOff
	SwitchOn
	Exit
)

// String returns the name of the tile kind
func (k TileKind) String() string {
	switch k {
	case Hole:
		return "Hole"
	case Path:
		return "Path"
	case SwitchOff:
		return "SwitchOff"
	case SwitchOn:
		return "SwitchOn"
	case Exit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// IsValid returns true if k is one of the known tile kinds
func (k TileKind) IsValid() bool {
	return k >= Hole && k <= Exit
}

// IsWalkable returns true for every tile a player can stand on
func (k TileKind) IsWalkable() bool {
	return k.IsValid() && k != Hole
}

// IsSwitch returns true for both switch states
func (k TileKind) IsSwitch() bool {
	return k == SwitchOff || k == SwitchOn
}

// Digit returns the single character used for k in the text board format.
func (k TileKind) Digit() byte {
	return byte('0' + k)
}

// ParseTileKind converts a text board digit back into a tile kind.
func ParseTileKind(b byte) (TileKind, error) {
	k := TileKind(b) - '0'
	if !k.IsValid() {
		return Hole, fmt.Errorf("world: unknown tile digit %q", b)
	}
	return k, nil
}
