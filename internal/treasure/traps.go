package treasure

import (
	"math"

	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/dungeongen/internal/gamedata"
	"github.com/samdwyer/dungeongen/internal/rng"
	"github.com/samdwyer/dungeongen/internal/world"
)

// DefaultTrapDensity is used when AddTraps is given a non-positive density.
const DefaultTrapDensity = 3.0

// TrapPlacement records where a trap was set.
type TrapPlacement struct {
	Pos  world.Point
	Trap world.Trap
}

// AddTraps arms floor(density*len(rooms)/3) cells, favouring corridor
// chokepoints and topping up with cells just outside room edges when
// chokepoints are scarce. Cells holding a monster, treasure, key or trap are
// skipped, as are cells for which occupied (may be nil) reports true.
func AddTraps(g *world.Grid, rooms []world.Room, r rng.Source, density float64, traps []gamedata.TrapDef, occupied func(world.Point) bool) (*world.Grid, []TrapPlacement) {
	out := g.Clone()
	if len(rooms) == 0 || len(traps) == 0 {
		return out, nil
	}
	if density <= 0 {
		density = DefaultTrapDensity
	}
	count := int(math.Floor(density * float64(len(rooms)) / 3))

	candidates := chokepoints(out)
	if len(candidates) < count*2 {
		candidates = append(candidates, roomThresholds(out, rooms)...)
	}
	rng.Shuffle(r, candidates)

	seen := mapset.New[world.Point]()
	var placed []TrapPlacement
	for _, p := range candidates {
		if len(placed) >= count {
			break
		}
		if seen.Has(p) || !trappable(out.At(p.X, p.Y)) || (occupied != nil && occupied(p)) {
			continue
		}
		seen.Put(p)

		def, _ := rng.Select(r, traps)
		trap := world.Trap{
			Name:        def.Name,
			Danger:      def.Danger,
			Description: def.Description,
			DetectionDC: def.DetectionDC,
			DisarmDC:    def.DisarmDC,
		}
		cell := out.Cells[p.Y][p.X]
		cell.Trap = &trap
		out.SetCell(p.X, p.Y, cell)
		placed = append(placed, TrapPlacement{Pos: p, Trap: trap})
	}
	return out, placed
}

// chokepoints returns interior corridor cells with exactly two open
// orthogonal neighbours.
func chokepoints(g *world.Grid) []world.Point {
	var points []world.Point
	for y := 1; y < g.Height-1; y++ {
		for x := 1; x < g.Width-1; x++ {
			t := g.Type(x, y)
			if t != world.CellCorridor && t != world.CellCryptCorridor {
				continue
			}
			open := 0
			for _, d := range [][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}} {
				if !g.At(x+d[0], y+d[1]).Blocked {
					open++
				}
			}
			if open == 2 {
				points = append(points, world.Point{X: x, Y: y})
			}
		}
	}
	return points
}

// roomThresholds returns open cells bordering each room's bounding box.
func roomThresholds(g *world.Grid, rooms []world.Room) []world.Point {
	var points []world.Point
	open := func(x, y int) {
		if !g.At(x, y).Blocked {
			points = append(points, world.Point{X: x, Y: y})
		}
	}
	for _, room := range rooms {
		for x := room.X; x < room.X+room.Width; x++ {
			if room.Y > 1 {
				open(x, room.Y-1)
			}
			if room.Y+room.Height < g.Height-1 {
				open(x, room.Y+room.Height)
			}
		}
		for y := room.Y; y < room.Y+room.Height; y++ {
			if room.X > 1 {
				open(room.X-1, y)
			}
			if room.X+room.Width < g.Width-1 {
				open(room.X+room.Width, y)
			}
		}
	}
	return points
}

func trappable(c world.Cell) bool {
	if c.Blocked || c.Trap != nil {
		return false
	}
	switch c.Type {
	case world.CellMonster, world.CellTreasure, world.CellKey:
		return false
	}
	return true
}
