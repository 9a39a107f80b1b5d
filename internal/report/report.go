// Package report renders generated dungeons as text for terminals and logs.
package report

import (
	"bufio"
	"cmp"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/gookit/color"
	"golang.org/x/term"

	"github.com/samdwyer/dungeongen/internal/dungeon"
	"github.com/samdwyer/dungeongen/internal/gamedata"
	"github.com/samdwyer/dungeongen/internal/population"
	"github.com/samdwyer/dungeongen/internal/world"
)

// Terminal fallbacks when the size cannot be read.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// topTreasures is how many of the richest finds the summary lists.
const topTreasures = 5

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// TerminalSize returns the terminal size of f, or the defaults.
func TerminalSize(f *os.File) (width, height int) {
	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// Dump writes the grid one row per line. With a theme, every cell is
// coloured from the theme palette; a nil theme writes plain runes.
func Dump(w io.Writer, d *dungeon.Dungeon, theme *gamedata.ThemeDef) error {
	bw := bufio.NewWriter(w)
	styles := make(map[world.CellType]color.RGBColor)

	for y := 0; y < d.Grid.Height; y++ {
		for x := 0; x < d.Grid.Width; x++ {
			c := d.Grid.Cells[y][x]
			r := c.Type.Rune()
			if c.Trap != nil && c.Type.IsFloor() {
				r = '!'
			}
			if theme == nil {
				bw.WriteRune(r)
				continue
			}
			style, ok := styles[c.Type]
			if !ok {
				hex, _ := theme.ColorHex(c.Type.String())
				if hex == "" {
					hex = "#ffffff"
				}
				style = color.HEX(hex)
				styles[c.Type] = style
			}
			bw.WriteString(style.Sprint(string(r)))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Summary writes localized statistics about d.
func Summary(w io.Writer, d *dungeon.Dungeon, tr *Translator) error {
	var sb strings.Builder
	line := func(key string, vars ...any) {
		sb.WriteString(tr.Tr(key, vars...))
		sb.WriteByte('\n')
	}

	line("SUMMARY_TITLE", d.ID.String())
	line("SUMMARY_SEED", d.Seed)
	line("SUMMARY_LAYOUT", string(d.MapType), d.Type, d.Width, d.Height)
	line("SUMMARY_ROOMS", len(d.Rooms))
	line("SUMMARY_MONSTERS", len(d.Monsters))
	line("SUMMARY_TREASURES", len(d.Treasures), d.TotalTreasureValue())
	line("SUMMARY_LOCKS", d.Doors.DoorCount())
	line("SUMMARY_TRAPS", len(d.Traps))
	if v := d.Vault; v != nil {
		line("SUMMARY_VAULT", v.Size, v.Size, v.X, v.Y)
	} else {
		line("SUMMARY_NO_VAULT")
	}

	if counts := designationCounts(d.Rooms); len(counts) > 0 {
		line("SUMMARY_DESIGNATIONS")
		names := make([]string, 0, len(counts))
		for name := range counts {
			names = append(names, name)
		}
		slices.Sort(names)
		for _, name := range names {
			line("SUMMARY_DESIGNATION_LINE", name, counts[name])
		}
	}

	if len(d.Treasures) > 0 {
		line("SUMMARY_TOP_TREASURE")
		richest := slices.Clone(d.Treasures)
		slices.SortStableFunc(richest, func(a, b population.TreasurePlacement) int {
			return cmp.Compare(b.Treasure.Value, a.Treasure.Value)
		})
		for _, t := range richest[:min(topTreasures, len(richest))] {
			line("SUMMARY_TREASURE_LINE", t.Treasure.DisplayName(), t.Pos.X, t.Pos.Y, t.Treasure.TotalValueGP())
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func designationCounts(rooms []world.Room) map[string]int {
	counts := make(map[string]int)
	for _, r := range rooms {
		if r.Designation != "" {
			counts[r.Designation]++
		}
	}
	return counts
}
