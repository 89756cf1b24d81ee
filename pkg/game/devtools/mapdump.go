// Package devtools provides developer tools for testing and debugging boards.
package devtools

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"darkpath/pkg/engine/world"
)

// DefaultDumpFilename is where DumpBoardToFile writes when no path is given
const DefaultDumpFilename = "board.txt"

const startPrefix = "start:"

// ErrMalformedDump is returned when text cannot be parsed back into a board
var ErrMalformedDump = errors.New("devtools: malformed board text")

// WriteBoard writes one digit per tile, one row per line, then a "start: x, y" line.
func WriteBoard(w io.Writer, b *world.Board) error {
	bw := bufio.NewWriter(w)
	row := make([]byte, 0, b.Size())
	for y := 1; y <= b.Size(); y++ {
		row = row[:0]
		for x := 1; x <= b.Size(); x++ {
			row = append(row, b.Tile(x, y).Digit())
		}
		bw.Write(row)
		bw.WriteByte('\n')
	}
	fmt.Fprintf(bw, "%s %d, %d\n", startPrefix, b.Start().X, b.Start().Y)
	return bw.Flush()
}

// FormatBoard returns the text form written by WriteBoard
func FormatBoard(b *world.Board) string {
	var sb strings.Builder
	_ = WriteBoard(&sb, b)
	return sb.String()
}

// ParseBoard reads the text form produced by FormatBoard. Blank lines are ignored.
func ParseBoard(text string) (*world.Board, error) {
	var rows []string
	var start world.Coord
	haveStart := false

	for n, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if haveStart {
			return nil, fmt.Errorf("%w: line %d after start trailer", ErrMalformedDump, n+1)
		}
		if strings.HasPrefix(line, startPrefix) {
			c, err := parseStart(strings.TrimPrefix(line, startPrefix))
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedDump, n+1, err)
			}
			start = c
			haveStart = true
			continue
		}
		rows = append(rows, line)
	}
	if !haveStart {
		return nil, fmt.Errorf("%w: missing %q trailer", ErrMalformedDump, startPrefix)
	}

	b, err := world.BoardFromRows(rows, start)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDump, err)
	}
	return b, nil
}

// LoadBoardFile reads a file holding the text form of a single board
func LoadBoardFile(path string) (*world.Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseBoard(string(data))
}

func parseStart(s string) (world.Coord, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return world.Coord{}, fmt.Errorf("want \"x, y\", got %q", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return world.Coord{}, err
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return world.Coord{}, err
	}
	return world.Coord{X: x, Y: y}, nil
}

// DumpMeta is the extra context written at the top of a board dump
type DumpMeta struct {
	Index      int
	Seed       int64
	Complexity float64
}

// DumpBoardToFile writes a debug dump of b: metadata, legend, digit map and
// the coordinates of the start, exit and switches. Returns the absolute
// path written.
func DumpBoardToFile(b *world.Board, path string, meta DumpMeta) (string, error) {
	if b == nil {
		return "", fmt.Errorf("no board")
	}
	if path == "" {
		path = DefaultDumpFilename
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	start := b.Start()
	exit, hasExit := b.Exit()

	// --- Metadata ---
	fmt.Fprintln(f, "=== BOARD DUMP ===")
	fmt.Fprintln(f, "")
	fmt.Fprintln(f, "--- Metadata ---")
	fmt.Fprintf(f, "index: %d\n", meta.Index)
	fmt.Fprintf(f, "seed: %d\n", meta.Seed)
	fmt.Fprintf(f, "complexity_limit: %v\n", meta.Complexity)
	fmt.Fprintf(f, "size: %d\n", b.Size())
	fmt.Fprintf(f, "coordinate_system: x,y (1-based, x=column, y=row)\n")
	fmt.Fprintf(f, "walkable_tiles: %d\n", b.Size()*b.Size()-b.Count(world.Hole))
	fmt.Fprintln(f, "")

	// --- Legend ---
	fmt.Fprintln(f, "--- Legend (tile digits) ---")
	fmt.Fprintln(f, "0 = hole  1 = path  2 = switch (off)  3 = switch (on)  4 = exit")
	fmt.Fprintln(f, "")

	// --- Tiles ---
	fmt.Fprintln(f, "Start:")
	fmt.Fprintf(f, "  x: %d y: %d\n", start.X, start.Y)
	fmt.Fprintln(f, "Exit:")
	if hasExit {
		fmt.Fprintf(f, "  x: %d y: %d distance_from_start: %d\n", exit.X, exit.Y, world.Manhattan(start, exit))
	} else {
		fmt.Fprintln(f, "  (none)")
	}
	fmt.Fprintln(f, "Switches:")
	for _, s := range b.Switches() {
		fmt.Fprintf(f, "  x: %d y: %d kind: %s\n", s.X, s.Y, b.At(s))
	}
	fmt.Fprintln(f, "")

	// --- Map ---
	fmt.Fprintln(f, "--- Map ---")
	if err := WriteBoard(f, b); err != nil {
		return absPath, err
	}
	fmt.Fprintln(f, "")
	fmt.Fprintln(f, "=== END BOARD DUMP ===")

	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}
