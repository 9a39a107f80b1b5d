package treasure

import (
	"github.com/samdwyer/dungeongen/internal/rng"
	"github.com/samdwyer/dungeongen/internal/world"
)

const vaultAttempts = 100

// Vault describes a stamped treasure vault.
type Vault struct {
	X, Y     int
	Size     int
	Door     world.Point
	Corridor []world.Point
}

// Room returns the vault's footprint.
func (v Vault) Room() world.Room {
	return world.Room{X: v.X, Y: v.Y, Width: v.Size, Height: v.Size, RoomType: "vault"}
}

// CreateVault stamps a square vault of 5 to 8 cells with a door on one side
// and a short corridor leading away from it. It returns a nil vault and the
// unchanged grid when no location clear of protected terrain and entities is
// found within 100 attempts. occupied, when non-nil, reports extra cells the
// vault must leave alone.
func CreateVault(g *world.Grid, r rng.Source, occupied func(world.Point) bool) (*world.Grid, *Vault) {
	if occupied == nil {
		occupied = func(world.Point) bool { return false }
	}
	size := r.NextInt(5, 9)
	maxX, maxY := g.Width-size-3, g.Height-size-3
	if maxX <= 3 || maxY <= 3 {
		return g.Clone(), nil
	}

	for i := 0; i < vaultAttempts; i++ {
		x := r.NextInt(3, maxX)
		y := r.NextInt(3, maxY)
		if !vaultSiteClear(g, x, y, size, occupied) {
			continue
		}

		out := g.Clone()
		pattern := world.CreateRoomPattern(size, size, world.ShapeRectangular, world.CellVault)
		if !world.PlaceRoomPattern(out, x, y, pattern) {
			continue
		}

		side := []world.Point{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}
		dir, _ := rng.Select(r, side)
		door := vaultDoor(x, y, size, dir)

		out.Set(door.X, door.Y, world.CellDoor)

		v := &Vault{X: x, Y: y, Size: size, Door: door}
		length := r.NextInt(2, 5)
		cur := door
		for i := 0; i < length; i++ {
			cur = world.Point{X: cur.X + dir.X, Y: cur.Y + dir.Y}
			if !out.IsInterior(cur.X, cur.Y) || vaultProtected(out.Type(cur.X, cur.Y)) || occupied(cur) {
				continue
			}
			out.Set(cur.X, cur.Y, world.CellCorridor)
			v.Corridor = append(v.Corridor, cur)
		}
		return out, v
	}
	return g.Clone(), nil
}

func vaultDoor(x, y, size int, dir world.Point) world.Point {
	mid := size / 2
	switch {
	case dir.Y < 0:
		return world.Point{X: x + mid, Y: y - 1}
	case dir.X > 0:
		return world.Point{X: x + size, Y: y + mid}
	case dir.Y > 0:
		return world.Point{X: x + mid, Y: y + size}
	default:
		return world.Point{X: x - 1, Y: y + mid}
	}
}

// vaultSiteClear checks the vault footprint plus a one-cell ring.
func vaultSiteClear(g *world.Grid, x, y, size int, occupied func(world.Point) bool) bool {
	for dy := -1; dy <= size; dy++ {
		for dx := -1; dx <= size; dx++ {
			cx, cy := x+dx, y+dy
			if !g.InBounds(cx, cy) || occupied(world.Point{X: cx, Y: cy}) {
				return false
			}
			switch g.Type(cx, cy) {
			case world.CellStairsUp, world.CellStairsDown, world.CellTomb, world.CellAltar,
				world.CellWater, world.CellLava, world.CellAcid,
				world.CellMonster, world.CellTreasure, world.CellKey, world.CellLockedDoor:
				return false
			}
		}
	}
	return true
}

func vaultProtected(t world.CellType) bool {
	switch t {
	case world.CellStairsUp, world.CellStairsDown, world.CellTomb, world.CellAltar,
		world.CellMonster, world.CellTreasure, world.CellKey, world.CellLockedDoor, world.CellVault:
		return true
	}
	return false
}
