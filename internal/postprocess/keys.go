package postprocess

import (
	"fmt"

	"github.com/samdwyer/dungeongen/internal/rng"
	"github.com/samdwyer/dungeongen/internal/world"
)

const keyPlacementTries = 10

// Lock pairs a locked door with the key that opens it.
type Lock struct {
	KeyID      string
	LockedRoom int
	KeyRoom    int
	Door       world.Point
	Key        world.Point
}

// KeyID returns the key identifier for a locked room index.
func KeyID(room int) string {
	return fmt.Sprintf("key-%d", room)
}

// KeysAndPuzzles locks rooms with probability lockRatio and hides each key in
// an earlier room. A locked room only takes a key room with a strictly
// smaller index that holds no other key, so visiting rooms in index order
// always finds a key before its door. Locks that cannot get both a door and a
// key are dropped, leaving exactly one key per locked door.
//
// Rooms already locked on g, and rooms already holding a key, are left out,
// so repeated passes never duplicate a key id. Doors and keys only go on
// cells without a monster or treasure and for which occupied (may be nil)
// reports false.
func KeysAndPuzzles(g *world.Grid, rooms []world.Room, r rng.Source, lockRatio float64, occupied func(world.Point) bool) (*world.Grid, []Lock) {
	out := g.Clone()
	if len(rooms) < 2 {
		return out, nil
	}
	free := func(p world.Point) bool {
		switch out.Cells[p.Y][p.X].Type {
		case world.CellLockedDoor, world.CellKey, world.CellMonster, world.CellTreasure:
			return false
		}
		return occupied == nil || !occupied(p)
	}

	type pairing struct{ locked, key int }
	var pairs []pairing
	locked, used := existingLocks(out, rooms)

	for i := 1; i < len(rooms); i++ {
		if r.Next() >= lockRatio || locked[KeyID(i)] {
			continue
		}
		keyRoom := pickKeyRoom(r, i, used)
		if keyRoom < 0 {
			continue
		}
		used[keyRoom] = true
		pairs = append(pairs, pairing{locked: i, key: keyRoom})
	}

	type placedDoor struct {
		pairing
		at       world.Point
		previous world.Cell
	}
	var doors []placedDoor

	for _, p := range pairs {
		room := rooms[p.locked]
		var d world.Point
		switch rng.Intn(r, 4) {
		case 0:
			d = world.Point{X: room.X + rng.Intn(r, room.Width), Y: room.Y}
		case 1:
			d = world.Point{X: room.X + room.Width - 1, Y: room.Y + rng.Intn(r, room.Height)}
		case 2:
			d = world.Point{X: room.X + rng.Intn(r, room.Width), Y: room.Y + room.Height - 1}
		default:
			d = world.Point{X: room.X, Y: room.Y + rng.Intn(r, room.Height)}
		}

		if !out.InBounds(d.X, d.Y) || !free(d) {
			continue
		}

		previous := out.Cells[d.Y][d.X]
		out.Cells[d.Y][d.X] = world.Cell{Type: world.CellLockedDoor, Blocked: true, KeyID: KeyID(p.locked)}
		doors = append(doors, placedDoor{pairing: p, at: d, previous: previous})
	}

	locks := make([]Lock, 0, len(doors))
	for _, d := range doors {
		key, ok := placeKey(out, r, rooms[d.key], free)
		if !ok {
			out.Cells[d.at.Y][d.at.X] = d.previous
			continue
		}
		id := KeyID(d.locked)
		out.Cells[key.Y][key.X] = world.Cell{Type: world.CellKey, KeyID: id}
		locks = append(locks, Lock{
			KeyID:      id,
			LockedRoom: d.locked,
			KeyRoom:    d.key,
			Door:       d.at,
			Key:        key,
		})
	}

	return out, locks
}

// existingLocks returns the key ids already issued on g, from locked doors
// or loose keys, and the indexes of rooms already holding a key.
func existingLocks(g *world.Grid, rooms []world.Room) (map[string]bool, map[int]bool) {
	locked := make(map[string]bool)
	used := make(map[int]bool)
	g.ForEachCell(func(x, y int, c *world.Cell) {
		switch c.Type {
		case world.CellLockedDoor:
			locked[c.KeyID] = true
		case world.CellKey:
			locked[c.KeyID] = true
			for i, room := range rooms {
				if room.Contains(x, y) {
					used[i] = true
				}
			}
		}
	})
	return locked, used
}

// pickKeyRoom draws a free room index below limit, falling back to the
// lowest free index once the draws are exhausted. Returns -1 when every
// earlier room already holds a key.
func pickKeyRoom(r rng.Source, limit int, used map[int]bool) int {
	for attempt := 0; attempt < 4*limit; attempt++ {
		if idx := rng.Intn(r, limit); !used[idx] {
			return idx
		}
	}
	for idx := 0; idx < limit; idx++ {
		if !used[idx] {
			return idx
		}
	}
	return -1
}

// placeKey finds a free room or corridor cell inside room, first by random
// draws and then by a row-major scan.
func placeKey(g *world.Grid, r rng.Source, room world.Room, free func(world.Point) bool) (world.Point, bool) {
	usable := func(p world.Point) bool {
		return g.InBounds(p.X, p.Y) && g.Cells[p.Y][p.X].Type.IsFloor() && free(p)
	}
	for i := 0; i < keyPlacementTries; i++ {
		p := world.Point{X: room.X + rng.Intn(r, room.Width), Y: room.Y + rng.Intn(r, room.Height)}
		if usable(p) {
			return p, true
		}
	}
	for y := room.Y; y < room.Y+room.Height; y++ {
		for x := room.X; x < room.X+room.Width; x++ {
			if p := (world.Point{X: x, Y: y}); usable(p) {
				return p, true
			}
		}
	}
	return world.Point{}, false
}
