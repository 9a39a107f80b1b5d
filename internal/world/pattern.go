package world

import (
	"fmt"
	"math"
)

// Shape selects the footprint of a stamped room pattern.
type Shape int

const (
	ShapeRectangular Shape = iota
	ShapeCircular
	ShapeDiamond
	ShapeCross
)

// minPatternSize is the smallest pattern side.
const minPatternSize = 5

var shapeNames = [...]string{"rectangular", "circular", "diamond", "cross"}

// String returns the shape name.
func (s Shape) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return fmt.Sprintf("Shape(%d)", int(s))
	}
	return shapeNames[s]
}

// CreateRoomPattern builds an independent buffer, at least 5x5, with the
// shape's footprint set to cellType and everything else wall.
func CreateRoomPattern(width, height int, shape Shape, cellType CellType) *Grid {
	width = max(width, minPatternSize)
	height = max(height, minPatternSize)

	p := NewGrid(width, height, CellWall)
	cx, cy := width/2, height/2

	var inside func(x, y int) bool
	switch shape {
	case ShapeCircular:
		radius := float64(min(cx, cy) - 1)
		inside = func(x, y int) bool {
			dx, dy := float64(x-cx), float64(y-cy)
			return math.Sqrt(dx*dx+dy*dy) <= radius
		}
	case ShapeDiamond:
		radius := min(cx, cy) - 1
		inside = func(x, y int) bool {
			return abs(x-cx)+abs(y-cy) <= radius
		}
	case ShapeCross:
		arm := max(1, min(width, height)/3)
		inside = func(x, y int) bool {
			return abs(y-cy) <= arm || abs(x-cx) <= arm
		}
	default:
		inside = func(int, int) bool { return true }
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if inside(x, y) {
				p.Cells[y][x] = NewCell(cellType)
			}
		}
	}
	return p
}

// protectedFromPatterns lists cell types a pattern may never overwrite.
var protectedFromPatterns = map[CellType]bool{
	CellStairsUp:   true,
	CellStairsDown: true,
	CellDoor:       true,
	CellEntrance:   true,
	CellExit:       true,
}

// PlaceRoomPattern copies the non-wall cells of pattern onto g with its
// top-left corner at (x, y). Placement needs a one-cell margin on every side
// and fails without modifying g if a protected cell would be overwritten.
func PlaceRoomPattern(g *Grid, x, y int, pattern *Grid) bool {
	if x < 1 || y < 1 || x+pattern.Width > g.Width-1 || y+pattern.Height > g.Height-1 {
		return false
	}

	for py := 0; py < pattern.Height; py++ {
		for px := 0; px < pattern.Width; px++ {
			if pattern.Cells[py][px].Type == CellWall {
				continue
			}
			if protectedFromPatterns[g.Cells[y+py][x+px].Type] {
				return false
			}
		}
	}

	for py := 0; py < pattern.Height; py++ {
		for px := 0; px < pattern.Width; px++ {
			if c := pattern.Cells[py][px]; c.Type != CellWall {
				g.Cells[y+py][x+px] = c.clone()
			}
		}
	}
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
