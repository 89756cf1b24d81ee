// Package paths tracks which carved tiles belong to which path while a
// board is being generated.
//
// Paths live in an arena indexed by ID. Merging a path into another
// empties (retires) the old entry but never removes it, so an ID handed
// out once stays valid for the whole run and is never reused.
package paths

import (
	"fmt"

	"darkpath/pkg/engine/world"
)

// ID identifies a path for the lifetime of one registry
type ID int

// None is the ID of tiles that belong to no path
const None ID = 0

// Registry maps path IDs to their member tiles and tiles back to their path.
// It is bound to a single grid and is the only thing that writes Path tiles
// into it during carving, so the two views always agree.
type Registry struct {
	grid    *world.Grid
	members [][]world.Coord // index = ID; slot 0 stays empty
	owner   []ID            // index = grid.Index(c)
}

// NewRegistry creates an empty registry for grid
func NewRegistry(grid *world.Grid) *Registry {
	return &Registry{
		grid:    grid,
		members: make([][]world.Coord, 1),
		owner:   make([]ID, grid.Size()*grid.Size()),
	}
}

// NewPath allocates the next unused ID with seed as its only member and
// marks seed as a Path tile. Claiming a tile that is already on a path
// is a programming error.
func (r *Registry) NewPath(seed world.Coord) ID {
	idx := r.grid.Index(seed)
	if idx < 0 {
		panic(fmt.Sprintf("paths: seed %v outside grid", seed))
	}
	if r.owner[idx] != None {
		panic(fmt.Sprintf("paths: seed %v already on path %d", seed, r.owner[idx]))
	}

	id := ID(len(r.members))
	r.members = append(r.members, []world.Coord{seed})
	r.owner[idx] = id
	r.grid.Set(seed, world.Path)
	return id
}

// Append moves every member of old onto the end of dst and retires old.
func (r *Registry) Append(old, dst ID) {
	if !r.valid(old) || !r.valid(dst) || old == dst {
		panic(fmt.Sprintf("paths: cannot append %d to %d", old, dst))
	}
	for _, c := range r.members[old] {
		r.owner[r.grid.Index(c)] = dst
	}
	r.members[dst] = append(r.members[dst], r.members[old]...)
	r.members[old] = nil
}

// Len returns the number of tiles on the path; 0 for retired or unknown IDs
func (r *Registry) Len(id ID) int {
	if !r.valid(id) {
		return 0
	}
	return len(r.members[id])
}

// Members returns a copy of the path's tiles in the order they joined it
func (r *Registry) Members(id ID) []world.Coord {
	if !r.valid(id) {
		return nil
	}
	out := make([]world.Coord, len(r.members[id]))
	copy(out, r.members[id])
	return out
}

// At returns the path the tile at c belongs to, or None
func (r *Registry) At(c world.Coord) ID {
	idx := r.grid.Index(c)
	if idx < 0 {
		return None
	}
	return r.owner[idx]
}

// Live returns the IDs of all non-retired paths in allocation order
func (r *Registry) Live() []ID {
	var live []ID
	for id := 1; id < len(r.members); id++ {
		if len(r.members[id]) > 0 {
			live = append(live, ID(id))
		}
	}
	return live
}

// Allocated returns how many IDs have been handed out, retired ones included
func (r *Registry) Allocated() int {
	return len(r.members) - 1
}

func (r *Registry) valid(id ID) bool {
	return id > None && int(id) < len(r.members)
}
