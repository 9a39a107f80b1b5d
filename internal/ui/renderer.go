package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeongen/internal/gamedata"
	"github.com/samdwyer/dungeongen/internal/world"
)

// StatusLines is the number of rows reserved below the map.
const StatusLines = 2

// trapRune marks an armed trap on open floor.
const trapRune = '!'

// Renderer handles drawing a dungeon grid to the screen.
type Renderer struct {
	screen *Screen
	styles map[world.CellType]tcell.Style
	theme  *gamedata.ThemeDef
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen, styles: make(map[world.CellType]tcell.Style)}
}

// Viewport returns the number of grid columns and rows that fit on screen.
func (r *Renderer) Viewport() (cols, rows int) {
	w, h := r.screen.Size()
	return w, max(0, h-StatusLines)
}

// Render draws grid starting at the (offsetX, offsetY) cell, coloured from
// theme, followed by the status lines.
func (r *Renderer) Render(grid *world.Grid, theme *gamedata.ThemeDef, offsetX, offsetY int, status ...string) {
	r.screen.Clear()

	cols, rows := r.Viewport()
	for sy := 0; sy < rows; sy++ {
		y := offsetY + sy
		if y >= grid.Height {
			break
		}
		for sx := 0; sx < cols; sx++ {
			x := offsetX + sx
			if x >= grid.Width {
				break
			}
			c := grid.Cells[y][x]
			ch := c.Type.Rune()
			if c.Trap != nil && c.Type.IsFloor() {
				ch = trapRune
			}
			r.screen.SetContent(sx, sy, ch, r.cellStyle(theme, c.Type))
		}
	}

	for i, msg := range status {
		if i >= StatusLines {
			break
		}
		r.RenderMessage(msg, rows+i)
	}

	r.screen.Show()
}

// cellStyle returns the cached style for a cell type under theme.
func (r *Renderer) cellStyle(theme *gamedata.ThemeDef, t world.CellType) tcell.Style {
	if theme != r.theme {
		r.theme = theme
		r.styles = make(map[world.CellType]tcell.Style)
	}
	if style, ok := r.styles[t]; ok {
		return style
	}

	style := tcell.StyleDefault
	if theme != nil {
		style = style.Foreground(theme.Color(t.String()))
	}
	switch t {
	case world.CellMonster, world.CellTreasure, world.CellKey, world.CellLockedDoor:
		style = style.Bold(true)
	}
	r.styles[t] = style
	return style
}

// RenderMessage displays a message on row y.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	i := 0
	for _, ch := range msg {
		r.screen.SetContent(i, y, ch, style)
		i++
	}
}
