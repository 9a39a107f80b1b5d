package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}

	return tcell.NewHexColor(int32(rgb)), nil
}

// MustParseHexColor converts a hex color string to tcell.Color, panicking on error.
func MustParseHexColor(hex string) tcell.Color {
	color, err := ParseHexColor(hex)
	if err != nil {
		panic(err)
	}
	return color
}

// ColorHex returns the theme's hex color for a palette key such as "room",
// "corridor" or "wall". Keys the theme does not define fall back to the
// standard palette.
func (t *ThemeDef) ColorHex(key string) (string, bool) {
	if hex, ok := t.Colors[key]; ok {
		return hex, true
	}
	hex, ok := standardPalette[key]
	return hex, ok
}

// Color returns the tcell color for a palette key, or tcell.ColorDefault when
// neither the theme nor the standard palette defines it.
func (t *ThemeDef) Color(key string) tcell.Color {
	hex, ok := t.ColorHex(key)
	if !ok {
		return tcell.ColorDefault
	}
	color, err := ParseHexColor(hex)
	if err != nil {
		return tcell.ColorDefault
	}
	return color
}

// standardPalette colors cell types that themes leave unset.
var standardPalette = map[string]string{
	"room":           "#e8e8e8",
	"corridor":       "#d0d0d0",
	"wall":           "#555555",
	"door":           "#8b5a2b",
	"locked-door":    "#b22222",
	"secret":         "#6a6a6a",
	"secret-door":    "#7a6a5a",
	"water":          "#3a7bd5",
	"pillar":         "#777777",
	"treasure":       "#ffd700",
	"monster":        "#d03030",
	"key":            "#f0c040",
	"tomb":           "#8a7b6c",
	"altar":          "#a3927d",
	"portal":         "#5a3696",
	"void":           "#1a1a2e",
	"crypt":          "#6e6258",
	"dark-room":      "#3a3a5e",
	"dark-corridor":  "#282840",
	"crypt-corridor": "#9a8f84",
	"stairs-up":      "#c0c0ff",
	"stairs-down":    "#8080c0",
	"entrance":       "#40c040",
	"exit":           "#40a0c0",
	"lava":           "#ff4500",
	"acid":           "#7fff00",
	"vault":          "#c9a227",
}
