package world

import "strings"

// Grid is a fixed-size, row-major array of cells.
type Grid struct {
	Width  int
	Height int
	Cells  [][]Cell
}

// NewGrid creates a grid with every cell set to fill.
func NewGrid(width, height int, fill CellType) *Grid {
	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
		for x := range cells[y] {
			cells[y][x] = NewCell(fill)
		}
	}

	return &Grid{
		Width:  width,
		Height: height,
		Cells:  cells,
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([][]Cell, g.Height)
	for y := range cells {
		cells[y] = make([]Cell, g.Width)
		for x := range cells[y] {
			cells[y][x] = g.Cells[y][x].clone()
		}
	}
	return &Grid{Width: g.Width, Height: g.Height, Cells: cells}
}

// InBounds reports whether (x, y) lies on the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// IsInterior reports whether (x, y) lies inside the one-cell border.
func (g *Grid) IsInterior(x, y int) bool {
	return x > 0 && x < g.Width-1 && y > 0 && y < g.Height-1
}

// At returns the cell at the given position. Out-of-bounds reads return a wall.
func (g *Grid) At(x, y int) Cell {
	if !g.InBounds(x, y) {
		return NewCell(CellWall)
	}
	return g.Cells[y][x]
}

// Type returns the type of the cell at the given position.
func (g *Grid) Type(x, y int) CellType {
	return g.At(x, y).Type
}

// Set replaces the cell at (x, y) with a fresh cell of type t.
func (g *Grid) Set(x, y int, t CellType) {
	if g.InBounds(x, y) {
		g.Cells[y][x] = NewCell(t)
	}
}

// SetCell stores c at (x, y).
func (g *Grid) SetCell(x, y int, c Cell) {
	if g.InBounds(x, y) {
		g.Cells[y][x] = c
	}
}

// IsPassable returns true if the given position can be walked on.
func (g *Grid) IsPassable(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return !g.Cells[y][x].Blocked
}

// ForEachCell calls fn for every cell in row-major order.
func (g *Grid) ForEachCell(fn func(x, y int, c *Cell)) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			fn(x, y, &g.Cells[y][x])
		}
	}
}

// WallNeighbors counts walls in the 8-neighbourhood. Off-grid positions count as wall.
func (g *Grid) WallNeighbors(x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if !g.InBounds(nx, ny) || g.Cells[ny][nx].Type == CellWall {
				count++
			}
		}
	}
	return count
}

// NeighborsOfType counts on-grid cells of type t in the 8-neighbourhood.
func (g *Grid) NeighborsOfType(x, y int, t CellType) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if g.InBounds(nx, ny) && g.Cells[ny][nx].Type == t {
				count++
			}
		}
	}
	return count
}

// Count returns the number of cells of type t.
func (g *Grid) Count(t CellType) int {
	n := 0
	for y := range g.Cells {
		for x := range g.Cells[y] {
			if g.Cells[y][x].Type == t {
				n++
			}
		}
	}
	return n
}

// Equal reports whether both grids have the same size, types and flags.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.Width != other.Width || g.Height != other.Height {
		return false
	}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			a, b := g.Cells[y][x], other.Cells[y][x]
			if a.Type != b.Type || a.Blocked != b.Blocked || a.KeyID != b.KeyID ||
				a.MonsterID != b.MonsterID || a.Discovered != b.Discovered || (a.Trap == nil) != (b.Trap == nil) {
				return false
			}
		}
	}
	return true
}

// String renders the grid as one line of runes per row.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			sb.WriteRune(g.Cells[y][x].Type.Rune())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
