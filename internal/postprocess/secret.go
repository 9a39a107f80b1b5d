package postprocess

import (
	"github.com/samdwyer/dungeongen/internal/rng"
	"github.com/samdwyer/dungeongen/internal/world"
)

const secretJitterChance = 0.2

// SecretPassage carves a meandering hidden corridor from start to end.
// Each step moves along the axis with the larger remaining distance; one
// step in five is followed by a random cardinal step. The walk is clamped
// to the interior and gives up after 4*(width+height) steps, in which case
// the last reached cell becomes the far door. Returns the new grid and the
// far endpoint actually used.
func SecretPassage(g *world.Grid, r rng.Source, start, end world.Point) (*world.Grid, world.Point) {
	out := g.Clone()
	maxSteps := 4 * (g.Width + g.Height)

	x, y := start.X, start.Y
	path := make([]world.Point, 0, abs(end.X-x)+abs(end.Y-y))

	for steps := 0; (x != end.X || y != end.Y) && steps < maxSteps; steps++ {
		path = append(path, world.Point{X: x, Y: y})

		dx, dy := end.X-x, end.Y-y
		if abs(dx) > abs(dy) {
			x += sign(dx)
		} else {
			y += sign(dy)
		}

		if r.Next() < secretJitterChance {
			switch rng.Intn(r, 4) {
			case 0:
				y--
			case 1:
				x++
			case 2:
				y++
			case 3:
				x--
			}
		}

		x = max(1, min(g.Width-2, x))
		y = max(1, min(g.Height-2, y))
	}

	for _, p := range path {
		if out.InBounds(p.X, p.Y) {
			out.Cells[p.Y][p.X] = world.Cell{Type: world.CellSecret}
		}
	}

	far := world.Point{X: x, Y: y}
	for _, p := range [...]world.Point{start, far} {
		if out.InBounds(p.X, p.Y) {
			out.Cells[p.Y][p.X] = world.Cell{Type: world.CellSecretDoor}
		}
	}

	return out, far
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	if v > 0 {
		return 1
	}
	return -1
}
