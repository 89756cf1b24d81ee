package renderer

import (
	"strings"
	"testing"

	"darkpath/pkg/engine/world"
)

func mustBoard(t *testing.T, rows []string, start world.Coord) *world.Board {
	t.Helper()
	b, err := world.BoardFromRows(rows, start)
	if err != nil {
		t.Fatalf("BoardFromRows: %v", err)
	}
	return b
}

func TestRender_Plain(t *testing.T) {
	b := mustBoard(t, []string{
		"00000",
		"01240",
		"00300",
		"00000",
		"00000",
	}, world.Coord{X: 2, Y: 2})

	var sb strings.Builder
	if err := New(false).Render(&sb, b); err != nil {
		t.Fatalf("Render: %v", err)
	}

	want := strings.Join([]string{
		" ▒▒▒ ",
		"▒@◇△▒",
		" ▒◆▒ ",
		"  ▒  ",
		"     ",
	}, "\n") + "\n"
	if sb.String() != want {
		t.Errorf("Render =\n%s\nwant\n%s", sb.String(), want)
	}
}

func TestRender_ColorAddsEscapes(t *testing.T) {
	b := mustBoard(t, []string{"000", "010", "000"}, world.Coord{X: 2, Y: 2})
	r := New(true)
	tile := r.RenderTile(b, world.Coord{X: 2, Y: 2})
	if !strings.Contains(tile, PlayerIcon) {
		t.Errorf("RenderTile = %q, want it to contain %q", tile, PlayerIcon)
	}
}

func TestIcon(t *testing.T) {
	cases := map[world.TileKind]string{
		world.Hole:      IconVoid,
		world.Path:      IconPath,
		world.SwitchOff: IconSwitchOff,
		world.SwitchOn:  IconSwitchOn,
		world.Exit:      IconExit,
		world.TileKind(9): IconUnknownTile,
	}
	for kind, want := range cases {
		if got := Icon(kind); got != want {
			t.Errorf("Icon(%v) = %q, want %q", kind, got, want)
		}
	}
}

func TestFormatText(t *testing.T) {
	r := New(false)
	got := r.FormatText("GT{Board} %d at COORD{%d, %d}", 3, 4, 2)
	if got != "Board 3 at 4, 2" {
		t.Errorf("FormatText = %q", got)
	}
	if got := r.FormatText("NOPE{x}"); !strings.HasPrefix(got, "ERROR") {
		t.Errorf("FormatText(unknown) = %q, want error text", got)
	}
}

func TestLegend_ListsEveryIcon(t *testing.T) {
	legend := New(false).Legend()
	for _, icon := range []string{PlayerIcon, IconPath, IconSwitchOff, IconSwitchOn, IconExit} {
		if !strings.Contains(legend, icon) {
			t.Errorf("Legend %q missing %q", legend, icon)
		}
	}
}
