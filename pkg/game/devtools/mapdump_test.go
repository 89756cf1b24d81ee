package devtools

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"darkpath/pkg/engine/world"
	"darkpath/pkg/game/generator"
)

func TestFormatBoard(t *testing.T) {
	b, err := world.BoardFromRows([]string{
		"00000",
		"04010",
		"01020",
		"01110",
		"00000",
	}, world.Coord{X: 4, Y: 2})
	require.NoError(t, err)

	want := "00000\n04010\n01020\n01110\n00000\nstart: 4, 2\n"
	assert.Equal(t, want, FormatBoard(b))
}

func TestParseBoard_RoundTrip(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	for seed := int64(1); seed <= 10; seed++ {
		b, err := generator.NewSeeded(seed, log).Generate(12, 30)
		if err != nil {
			continue
		}
		parsed, err := ParseBoard(FormatBoard(b))
		require.NoError(t, err)
		assert.True(t, b.Equal(parsed), "seed %d: round trip changed the board", seed)
	}
}

func TestParseBoard_DevBoard(t *testing.T) {
	b := DevBoard(9)
	parsed, err := ParseBoard(FormatBoard(b))
	require.NoError(t, err)
	assert.True(t, b.Equal(parsed))
}

func TestParseBoard_Errors(t *testing.T) {
	cases := map[string]string{
		"missing trailer":  "000\n010\n000\n",
		"bad trailer":      "000\n010\n000\nstart: 2\n",
		"non-numeric":      "000\n010\n000\nstart: a, 2\n",
		"ragged":           "000\n0100\n000\nstart: 2, 2\n",
		"bad digit":        "000\n0z0\n000\nstart: 2, 2\n",
		"start off grid":   "000\n010\n000\nstart: 7, 2\n",
		"text after start": "000\n010\n000\nstart: 2, 2\n000\n",
	}
	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseBoard(text)
			assert.ErrorIs(t, err, ErrMalformedDump)
		})
	}
}

func TestDumpBoardToFile(t *testing.T) {
	b := DevBoard(7)
	path := filepath.Join(t.TempDir(), "dump.txt")

	written, err := DumpBoardToFile(b, path, DumpMeta{Index: 4, Seed: 99, Complexity: 12})
	require.NoError(t, err)
	assert.Equal(t, path, written)

	data, err := os.ReadFile(written)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "seed: 99")
	assert.Contains(t, text, "size: 7")
	assert.Contains(t, text, FormatBoard(b))
	assert.True(t, strings.HasSuffix(text, "=== END BOARD DUMP ===\n"))
}

func TestLoadBoardFile(t *testing.T) {
	b := DevBoard(6)
	path := filepath.Join(t.TempDir(), "board.txt")
	require.NoError(t, os.WriteFile(path, []byte(FormatBoard(b)), 0o644))

	loaded, err := LoadBoardFile(path)
	require.NoError(t, err)
	assert.True(t, b.Equal(loaded))

	_, err = LoadBoardFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestDevBoard_IsValid(t *testing.T) {
	for _, size := range []int{3, 5, 6, 9, 14} {
		b := DevBoard(size)
		assert.NoError(t, generator.Validate(b), "size %d", size)
		assert.Equal(t, 1, b.Count(world.SwitchOn))
		assert.Equal(t, 1, b.Count(world.SwitchOff))
	}
}
