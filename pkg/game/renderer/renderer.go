// Package renderer draws boards as coloured text for the terminal preview.
package renderer

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"darkpath/pkg/engine/world"
)

// Icon constants for board tiles
const (
	PlayerIcon      = "@"
	IconVoid        = " "
	IconWall        = "▒"
	IconPath        = "○"
	IconSwitchOff   = "◇"
	IconSwitchOn    = "◆"
	IconExit        = "△"
	IconUnknownTile = "?"
)

// dynamicGet is used for runtime translation key lookups from markup.
// A function variable keeps go vet from flagging the non-constant format string.
var dynamicGet = gotext.Get

var markup = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:.]+)}`)

// TextRenderer renders boards and messages to a text stream
type TextRenderer struct {
	useColor bool

	colorWall      color.Style
	colorPath      color.Style
	colorSwitchOff color.Style
	colorSwitchOn  color.Style
	colorExit      color.Style
	colorPlayer    color.Style
	colorAction    color.Style
	colorCoord     color.Style
	colorDenied    color.Style
}

// New creates a text renderer. With useColor false every string is plain.
func New(useColor bool) *TextRenderer {
	return &TextRenderer{
		useColor:       useColor,
		colorWall:      color.Style{color.FgGray},
		colorPath:      color.Style{color.FgGray, color.OpBold},
		colorSwitchOff: color.Style{color.FgYellow},
		colorSwitchOn:  color.Style{color.FgYellow, color.OpBold},
		colorExit:      color.Style{color.FgGreen},
		colorPlayer:    color.Style{color.FgGreen, color.BgBlack, color.OpBold},
		colorAction:    color.Style{color.FgMagenta},
		colorCoord:     color.Style{color.FgBlue},
		colorDenied:    color.Style{color.FgRed, color.OpBold},
	}
}

func (r *TextRenderer) paint(style color.Style, s string) string {
	if !r.useColor {
		return s
	}
	return style.Sprint(s)
}

// Icon returns the uncoloured icon for a tile kind
func Icon(kind world.TileKind) string {
	switch kind {
	case world.Hole:
		return IconVoid
	case world.Path:
		return IconPath
	case world.SwitchOff:
		return IconSwitchOff
	case world.SwitchOn:
		return IconSwitchOn
	case world.Exit:
		return IconExit
	default:
		return IconUnknownTile
	}
}

// RenderTile returns the coloured icon for the tile at c
func (r *TextRenderer) RenderTile(b *world.Board, c world.Coord) string {
	if c == b.Start() {
		return r.paint(r.colorPlayer, PlayerIcon)
	}

	kind := b.At(c)
	switch kind {
	case world.Hole:
		// Holes bordering the walkable network render as walls so the
		// outline of the board is visible.
		if hasWalkableNeighbor(b, c) {
			return r.paint(r.colorWall, IconWall)
		}
		return IconVoid
	case world.Path:
		return r.paint(r.colorPath, IconPath)
	case world.SwitchOff:
		return r.paint(r.colorSwitchOff, IconSwitchOff)
	case world.SwitchOn:
		return r.paint(r.colorSwitchOn, IconSwitchOn)
	case world.Exit:
		return r.paint(r.colorExit, IconExit)
	default:
		return r.paint(r.colorDenied, IconUnknownTile)
	}
}

func hasWalkableNeighbor(b *world.Board, c world.Coord) bool {
	for _, n := range b.Neighbors4(c) {
		if b.At(n).IsWalkable() {
			return true
		}
	}
	return false
}

// Render writes the board, one row per line
func (r *TextRenderer) Render(w io.Writer, b *world.Board) error {
	var sb strings.Builder
	for y := 1; y <= b.Size(); y++ {
		for x := 1; x <= b.Size(); x++ {
			sb.WriteString(r.RenderTile(b, world.Coord{X: x, Y: y}))
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// Legend returns a one-line key for the icons
func (r *TextRenderer) Legend() string {
	entries := []string{
		r.paint(r.colorPlayer, PlayerIcon) + " " + gotext.Get("start"),
		r.paint(r.colorPath, IconPath) + " " + gotext.Get("path"),
		r.paint(r.colorSwitchOff, IconSwitchOff) + " " + gotext.Get("switch (off)"),
		r.paint(r.colorSwitchOn, IconSwitchOn) + " " + gotext.Get("switch (on)"),
		r.paint(r.colorExit, IconExit) + " " + gotext.Get("exit"),
	}
	return strings.Join(entries, "  ")
}

// FormatText formats a message with the markup system:
// GT{key} translates, ACTION{text} and COORD{text} highlight, DENIED{text} warns.
func (r *TextRenderer) FormatText(msg string, a ...any) string {
	ret := fmt.Sprintf(msg, a...)

	for _, match := range markup.FindAllStringSubmatch(ret, -1) {
		function := match[1]
		operand := match[2]

		var val string
		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "ACTION":
			val = r.paint(r.colorAction, operand)
		case "COORD":
			val = r.paint(r.colorCoord, operand)
		case "DENIED":
			val = r.paint(r.colorDenied, operand)
		default:
			val = fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
		}

		ret = strings.Replace(ret, match[0], val, 1)
	}

	return ret
}
