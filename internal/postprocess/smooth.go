// Package postprocess holds grid-to-grid passes applied after synthesis.
// Every pass returns a new grid and leaves its input untouched.
package postprocess

import "github.com/samdwyer/dungeongen/internal/world"

// Default smoothing parameters.
const (
	DefaultBirthLimit = 4
	DefaultDeathLimit = 3
)

// Smooth runs a cellular automaton over the whole grid. In each pass a wall
// with fewer than deathLimit wall neighbours erodes to corridor and a
// non-wall cell with more than birthLimit wall neighbours becomes wall.
// Neighbours are read from the previous pass, and off-grid counts as wall.
func Smooth(g *world.Grid, iterations, birthLimit, deathLimit int) *world.Grid {
	current := g.Clone()
	for i := 0; i < iterations; i++ {
		next := current.Clone()
		for y := 0; y < current.Height; y++ {
			for x := 0; x < current.Width; x++ {
				walls := current.WallNeighbors(x, y)
				if current.Cells[y][x].Type == world.CellWall {
					if walls < deathLimit {
						next.Set(x, y, world.CellCorridor)
					}
				} else if walls > birthLimit {
					next.Set(x, y, world.CellWall)
				}
			}
		}
		current = next
	}
	return current
}
