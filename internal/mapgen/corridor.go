package mapgen

import (
	"github.com/samdwyer/dungeongen/internal/rng"
	"github.com/samdwyer/dungeongen/internal/world"
)

// corridorCarver writes corridor cells. onlyWalls restricts carving to cells
// that are still wall; thickness widens the corridor down or to the right.
type corridorCarver struct {
	grid      *world.Grid
	thickness int
	onlyWalls bool
}

func (c corridorCarver) carve(x, y int) {
	if !c.grid.InBounds(x, y) {
		return
	}
	if c.onlyWalls && c.grid.Cells[y][x].Type != world.CellWall {
		return
	}
	c.grid.Set(x, y, world.CellCorridor)
}

// horizontal carves from x1 to x2 along row y.
func (c corridorCarver) horizontal(x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		for w := 0; w < c.thickness; w++ {
			c.carve(x, y+w)
		}
	}
}

// vertical carves from y1 to y2 along column x.
func (c corridorCarver) vertical(y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		for w := 0; w < c.thickness; w++ {
			c.carve(x+w, y)
		}
	}
}

// connect joins the centres of two rooms with an L-shaped corridor. A draw
// above 0.5 goes horizontal first.
func (c corridorCarver) connect(r rng.Source, a, b world.Room) {
	x1, y1 := a.Center()
	x2, y2 := b.Center()

	if r.Next() > 0.5 {
		c.horizontal(x1, x2, y1)
		c.vertical(y1, y2, x2)
	} else {
		c.vertical(y1, y2, x1)
		c.horizontal(x1, x2, y2)
	}
}
