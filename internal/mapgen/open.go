package mapgen

import (
	"github.com/samdwyer/dungeongen/internal/rng"
	"github.com/samdwyer/dungeongen/internal/world"
)

// DefaultPillarFrequency is the per-cell pillar chance for open-plan maps.
const DefaultPillarFrequency = 0.1

// OpenPlan makes the interior one open room inside a wall border and
// scatters pillars at least two cells in from the edge.
func OpenPlan(width, height int, r rng.Source, pillarFrequency float64) *world.Grid {
	g := world.NewGrid(width, height, world.CellRoom)

	for x := 0; x < width; x++ {
		g.Set(x, 0, world.CellWall)
		g.Set(x, height-1, world.CellWall)
	}
	for y := 0; y < height; y++ {
		g.Set(0, y, world.CellWall)
		g.Set(width-1, y, world.CellWall)
	}

	for y := 2; y < height-2; y++ {
		for x := 2; x < width-2; x++ {
			if r.Next() < pillarFrequency {
				g.Set(x, y, world.CellPillar)
			}
		}
	}
	return g
}
