// Package library holds the ordered set of boards a play session walks
// through: a few hand-authored boards first, then procedurally generated
// boards that grow in size and complexity with their index.
package library

import (
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"darkpath/pkg/engine/world"
	"darkpath/pkg/game/generator"
)

// ErrIndexOutOfRange is returned for board indices outside 1..Len()
var ErrIndexOutOfRange = errors.New("library: board index out of range")

// Config describes how the generated part of the library scales
type Config struct {
	TotalBoards    int     // Fixed and generated boards together
	BaseSize       int     // Size of the first generated board
	SizeStep       int     // Size added per generated board
	MaxSize        int     // Cap on generated board size
	BaseComplexity float64 // Complexity limit of the first generated board
	ComplexityStep float64 // Complexity added per generated board
	MaxAttempts    int     // Generation attempts per board before giving up
}

// DefaultConfig returns the configuration used by Default
func DefaultConfig() Config {
	return Config{
		TotalBoards:    20,
		BaseSize:       6,
		SizeStep:       1,
		MaxSize:        24,
		BaseComplexity: 8,
		ComplexityStep: 3,
		MaxAttempts:    10,
	}
}

// Library serves boards by 1-based index, generating them on first use
type Library struct {
	mu     sync.Mutex
	cfg    Config
	gen    generator.BoardGenerator
	log    logrus.FieldLogger
	boards map[int]*world.Board
}

// New creates a library backed by gen. A nil logger means the logrus standard logger.
func New(gen generator.BoardGenerator, cfg Config, log logrus.FieldLogger) (*Library, error) {
	if gen == nil {
		return nil, errors.New("library: nil generator")
	}
	if cfg.TotalBoards < 1 {
		return nil, fmt.Errorf("library: TotalBoards must be positive, got %d", cfg.TotalBoards)
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Library{
		cfg:    cfg,
		gen:    gen,
		log:    log,
		boards: make(map[int]*world.Board),
	}, nil
}

var (
	defaultOnce    sync.Once
	defaultLibrary *Library
)

// Default returns the process-wide library, built on first call from
// generator.DefaultGenerator and DefaultConfig.
func Default() *Library {
	defaultOnce.Do(func() {
		lib, err := New(generator.DefaultGenerator, DefaultConfig(), nil)
		if err != nil {
			panic(err)
		}
		defaultLibrary = lib
	})
	return defaultLibrary
}

// Len returns the number of boards in the library
func (l *Library) Len() int {
	return l.cfg.TotalBoards
}

// IsFixed returns true if index refers to a hand-authored board
func (l *Library) IsFixed(index int) bool {
	return index >= 1 && index <= len(Fixed) && index <= l.cfg.TotalBoards
}

// Next returns the index after index, or 0 if index is the last board
func (l *Library) Next(index int) int {
	if index <= 0 || index >= l.cfg.TotalBoards {
		return 0
	}
	return index + 1
}

// Params returns the size and complexity limit used to generate the board
// at index. Hand-authored boards report their own size and path length.
func (l *Library) Params(index int) (size int, complexity float64) {
	if l.IsFixed(index) {
		b := Fixed[index-1]
		return b.Size(), float64(b.Size()*b.Size() - b.Count(world.Hole))
	}
	n := index - len(Fixed) - 1
	if n < 0 {
		n = 0
	}
	size = l.cfg.BaseSize + n*l.cfg.SizeStep
	if l.cfg.MaxSize > 0 && size > l.cfg.MaxSize {
		size = l.cfg.MaxSize
	}
	complexity = l.cfg.BaseComplexity + float64(n)*l.cfg.ComplexityStep
	return size, complexity
}

// Get returns the board at index (1-based). Generated boards are built on
// first request and cached.
func (l *Library) Get(index int) (*world.Board, error) {
	if index < 1 || index > l.cfg.TotalBoards {
		return nil, fmt.Errorf("%w: %d (have 1..%d)", ErrIndexOutOfRange, index, l.cfg.TotalBoards)
	}
	if l.IsFixed(index) {
		return Fixed[index-1], nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if b, ok := l.boards[index]; ok {
		return b, nil
	}

	size, complexity := l.Params(index)
	fields := logrus.Fields{"index": index, "size": size, "complexity": complexity}

	var lastErr error
	for attempt := 1; attempt <= l.cfg.MaxAttempts; attempt++ {
		b, err := l.gen.Generate(size, complexity)
		if err == nil {
			l.log.WithFields(fields).WithField("attempts", attempt).Info("library board generated")
			l.boards[index] = b
			return b, nil
		}
		lastErr = err
		l.log.WithFields(fields).WithField("attempt", attempt).WithError(err).Warn("board generation failed")
	}
	return nil, fmt.Errorf("library: board %d after %d attempts: %w", index, l.cfg.MaxAttempts, lastErr)
}

// All returns every board in index order, generating as needed
func (l *Library) All() ([]*world.Board, error) {
	boards := make([]*world.Board, 0, l.cfg.TotalBoards)
	for i := 1; i <= l.cfg.TotalBoards; i++ {
		b, err := l.Get(i)
		if err != nil {
			return boards, err
		}
		boards = append(boards, b)
	}
	return boards, nil
}
