// Package generator builds puzzle boards: it carves a random path network
// into an all-hole grid, keeps the longest path that fits the complexity
// limit, places the start and exit at its far ends and surrounds the start
// with light switches.
package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"darkpath/pkg/engine/world"
	"darkpath/pkg/game/paths"
)

var (
	// ErrInvalidSize is returned for boards too small to have an interior tile
	ErrInvalidSize = world.ErrInvalidSize

	// ErrNoQualifyingPath is returned when no carved path fits the complexity limit
	ErrNoQualifyingPath = errors.New("generator: no path within complexity limit")

	// ErrNoBoundaryTiles is returned when the chosen path has no endpoint candidates
	ErrNoBoundaryTiles = errors.New("generator: chosen path has no boundary tiles")
)

// Rand is the randomness a generator draws from. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// BoardGenerator is an interface for board generation algorithms
type BoardGenerator interface {
	Generate(size int, complexityLimit float64) (*world.Board, error)
	Name() string
}

// Options configures a PathCarving generator
type Options struct {
	// Rand is the random source. Nil means a time-seeded math/rand source.
	Rand Rand

	// Logger receives generation diagnostics. Nil means the logrus standard logger.
	Logger logrus.FieldLogger
}

// PathCarving generates boards by randomised path carving with merge bookkeeping
type PathCarving struct {
	rng Rand
	log logrus.FieldLogger
}

// DefaultGenerator is the process-wide board generator
var DefaultGenerator BoardGenerator = New(Options{})

// New creates a PathCarving generator
func New(opts Options) *PathCarving {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &PathCarving{rng: rng, log: log}
}

// NewSeeded creates a PathCarving generator with a reproducible random source
func NewSeeded(seed int64, log logrus.FieldLogger) *PathCarving {
	return New(Options{Rand: rand.New(rand.NewSource(seed)), Logger: log})
}

// Name returns the name of this generator
func (g *PathCarving) Name() string {
	return "Path Carving"
}

// Generate creates a size×size board whose solution path has at most
// complexityLimit tiles. Fractional limits behave like their floor.
func (g *PathCarving) Generate(size int, complexityLimit float64) (*world.Board, error) {
	grid, err := world.NewGrid(size)
	if err != nil {
		return nil, err
	}

	c := newCarver(grid, complexityLimit, g.rng)
	c.run()

	fields := logrus.Fields{
		"size":                size,
		"complexity_limit":    complexityLimit,
		"candidates":          c.stats.candidates,
		"accepted":            c.stats.accepted,
		"rejected_loop":       c.stats.rejectedLoop,
		"rejected_complexity": c.stats.rejectedComplexity,
		"paths_allocated":     c.registry.Allocated(),
	}

	chosen, err := selectPath(c.registry, complexityLimit)
	if err != nil {
		g.log.WithFields(fields).Debug("no qualifying path")
		return nil, err
	}
	members := c.registry.Members(chosen)

	start, exit, err := selectEndpoints(grid, members)
	if err != nil {
		return nil, err
	}
	grid.Set(exit, world.Exit)
	switches := placeSwitches(grid, start)

	board, err := world.NewBoard(grid, start)
	if err != nil {
		return nil, err
	}
	if err := Validate(board); err != nil {
		return nil, fmt.Errorf("generated board failed validation: %w", err)
	}

	fields["path_length"] = len(members)
	fields["start"] = start.String()
	fields["exit"] = exit.String()
	fields["switches"] = len(switches)
	g.log.WithFields(fields).Debug("board generated")

	return board, nil
}

// selectPath returns the longest live path whose length is within limit.
// Equal lengths keep allocation order, so the earlier path wins.
func selectPath(registry *paths.Registry, limit float64) (paths.ID, error) {
	live := registry.Live()
	sort.SliceStable(live, func(i, j int) bool {
		return registry.Len(live[i]) > registry.Len(live[j])
	})
	for _, id := range live {
		if float64(registry.Len(id)) <= limit {
			return id, nil
		}
	}
	return paths.None, fmt.Errorf("%w: limit %v, %d live paths", ErrNoQualifyingPath, limit, len(live))
}
