package postprocess

import (
	"github.com/samdwyer/dungeongen/internal/rng"
	"github.com/samdwyer/dungeongen/internal/world"
)

// DefaultColumnFrequency is the per-cell pillar chance.
const DefaultColumnFrequency = 0.02

// AddColumns turns interior room and corridor cells into pillars with
// independent probability frequency.
func AddColumns(g *world.Grid, r rng.Source, frequency float64) *world.Grid {
	out := g.Clone()
	for y := 1; y < out.Height-1; y++ {
		for x := 1; x < out.Width-1; x++ {
			if !out.Cells[y][x].Type.IsFloor() {
				continue
			}
			if r.Next() < frequency {
				out.Set(x, y, world.CellPillar)
			}
		}
	}
	return out
}
