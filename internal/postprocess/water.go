package postprocess

import (
	"github.com/samdwyer/dungeongen/internal/rng"
	"github.com/samdwyer/dungeongen/internal/world"
)

const waterSmoothPasses = 2

// AddWater seeds water into open interior cells with probability coverage,
// then grows and shrinks the pools over two snapshot passes.
func AddWater(g *world.Grid, r rng.Source, coverage float64) *world.Grid {
	out := g.Clone()

	for y := 1; y < out.Height-1; y++ {
		for x := 1; x < out.Width-1; x++ {
			if !acceptsWater(out.Cells[y][x].Type) {
				continue
			}
			if r.Next() < coverage {
				out.Set(x, y, world.CellWater)
			}
		}
	}

	for i := 0; i < waterSmoothPasses; i++ {
		next := out.Clone()
		for y := 1; y < out.Height-1; y++ {
			for x := 1; x < out.Width-1; x++ {
				water := out.NeighborsOfType(x, y, world.CellWater)
				t := out.Cells[y][x].Type
				switch {
				case t == world.CellWater:
					if water < 3 {
						next.Set(x, y, world.CellCorridor)
					}
				case acceptsWater(t):
					if water > 4 {
						next.Set(x, y, world.CellWater)
					}
				}
			}
		}
		out = next
	}

	return out
}

func acceptsWater(t world.CellType) bool {
	return t != world.CellWall && t != world.CellDoor
}
