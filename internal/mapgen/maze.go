// Package mapgen synthesizes initial dungeon layouts.
package mapgen

import (
	"github.com/samdwyer/dungeongen/internal/rng"
	"github.com/samdwyer/dungeongen/internal/world"
)

// mazeSteps are the two-cell moves in up, right, down, left order.
var mazeSteps = [...]world.Point{{X: 0, Y: -2}, {X: 2, Y: 0}, {X: 0, Y: 2}, {X: -2, Y: 0}}

// Maze carves a perfect maze with an iterative recursive backtracker
// starting at (1,1). Every corridor cell is reachable and there are no loops.
func Maze(width, height int, r rng.Source) *world.Grid {
	g := world.NewGrid(width, height, world.CellWall)
	if width < 2 || height < 2 {
		return g
	}

	g.Set(1, 1, world.CellCorridor)
	stack := []world.Point{{X: 1, Y: 1}}
	neighbors := make([]world.Point, 0, len(mazeSteps))

	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		neighbors = neighbors[:0]
		for _, step := range mazeSteps {
			nx, ny := cur.X+step.X, cur.Y+step.Y
			if g.InBounds(nx, ny) && g.Cells[ny][nx].Type == world.CellWall {
				neighbors = append(neighbors, step)
			}
		}

		if len(neighbors) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		step := neighbors[rng.Intn(r, len(neighbors))]
		g.Set(cur.X+step.X/2, cur.Y+step.Y/2, world.CellCorridor)
		next := world.Point{X: cur.X + step.X, Y: cur.Y + step.Y}
		g.Set(next.X, next.Y, world.CellCorridor)
		stack = append(stack, next)
	}

	return g
}
