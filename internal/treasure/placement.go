package treasure

import (
	"cmp"
	"math"
	"slices"

	"github.com/samdwyer/dungeongen/internal/gamedata"
	"github.com/samdwyer/dungeongen/internal/rng"
	"github.com/samdwyer/dungeongen/internal/world"
)

const (
	roomPlacementTries = 20
	valuableThreshold  = 500
	largeRoomPool      = 3
)

// Placement is a treasure at a grid position.
type Placement struct {
	Pos      world.Point
	Treasure Treasure
}

// RoomOptions tune PlaceInRooms.
type RoomOptions struct {
	Density float64
	Level   int
	Theme   *gamedata.ThemeDef
}

// PlaceInRooms distributes sanitized treasure across room interiors. Higher
// densities add placements and boost value; treasure worth more than 500
// goes to one of the three largest rooms. occupied reports cells already
// holding an entity; a placement that finds no free cell is dropped.
func (g *Generator) PlaceInRooms(grid *world.Grid, rooms []world.Room, r rng.Source, opts RoomOptions, occupied func(world.Point) bool) []Placement {
	d := opts.Density
	if d <= 0 || len(rooms) == 0 {
		return nil
	}
	level := max(opts.Level, 1)

	scaled := d
	valueBoost := 1.0
	if d > 3 {
		scaled = 3 + (d-3)*0.5
		valueBoost = 1 + (d-3)*0.2
	}
	base := math.Ceil(float64(len(rooms)) * 0.7)
	count := max(1, int(math.Floor(base*scaled)))
	hoardChance := min(0.5, 0.1+d*0.05)

	bySize := slices.Clone(rooms)
	slices.SortStableFunc(bySize, func(a, b world.Room) int {
		return cmp.Compare(b.Area(), a.Area())
	})

	taken := func(p world.Point) bool {
		return occupied != nil && occupied(p)
	}

	var placed []Placement
	for i := 0; i < count; i++ {
		var t Treasure
		if r.Next() < hoardChance {
			t = g.Hoard(float64(level)*15*valueBoost, r, opts.Theme)
		} else {
			t = g.Generate(int(math.Floor(float64(level)*valueBoost)), r, opts.Theme)
		}
		t = Sanitize(&t, level)

		var room world.Room
		if t.Value > valuableThreshold && len(rooms) > 2 {
			room = bySize[r.NextInt(0, min(largeRoomPool, len(rooms)))]
		} else {
			room, _ = rng.Select(r, rooms)
		}

		for i := 0; i < roomPlacementTries; i++ {
			p := world.Point{
				X: r.NextInt(room.X+1, room.X+room.Width-2),
				Y: r.NextInt(room.Y+1, room.Y+room.Height-2),
			}
			if grid.At(p.X, p.Y).Blocked || taken(p) || placedAt(placed, p) {
				continue
			}
			placed = append(placed, Placement{Pos: p, Treasure: t})
			break
		}
	}
	return placed
}

func placedAt(placed []Placement, p world.Point) bool {
	for _, pl := range placed {
		if pl.Pos == p {
			return true
		}
	}
	return false
}
