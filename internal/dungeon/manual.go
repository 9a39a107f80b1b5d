package dungeon

import (
	"fmt"

	"github.com/samdwyer/dungeongen/internal/population"
	"github.com/samdwyer/dungeongen/internal/postprocess"
	"github.com/samdwyer/dungeongen/internal/treasure"
	"github.com/samdwyer/dungeongen/internal/world"
)

// The operations below edit the last generated dungeon in place and continue
// the generator's random stream. Each returns ErrNoGrid before Generate.

func (g *Generator) current(op string) (*Dungeon, error) {
	if g.dungeon == nil || g.dungeon.Grid == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrNoGrid)
	}
	return g.dungeon, nil
}

// setGrid swaps in a new grid version and keeps dependent state in step.
func (g *Generator) setGrid(d *Dungeon, grid *world.Grid) {
	d.Grid = grid
	d.Doors.Sync(grid)
	g.populator.SetGrid(grid)
}

// PlaceRoomPattern stamps a width x height pattern of shape at (x, y).
// It reports false when the pattern does not fit, would overwrite a
// protected cell or would cover a monster or treasure.
func (g *Generator) PlaceRoomPattern(x, y, width, height int, shape world.Shape, cellType world.CellType) (bool, error) {
	d, err := g.current("place room pattern")
	if err != nil {
		return false, err
	}
	grid := d.Grid.Clone()
	pattern := world.CreateRoomPattern(width, height, shape, cellType)
	if g.coversEntity(x, y, pattern) || !world.PlaceRoomPattern(grid, x, y, pattern) {
		return false, nil
	}
	g.setGrid(d, grid)
	return true, nil
}

// coversEntity reports whether a non-wall cell of pattern placed at (x, y)
// lands on a spawned monster or treasure.
func (g *Generator) coversEntity(x, y int, pattern *world.Grid) bool {
	covered := false
	pattern.ForEachCell(func(px, py int, c *world.Cell) {
		if c.Type != world.CellWall && g.populator.Occupied(world.Point{X: x + px, Y: y + py}) {
			covered = true
		}
	})
	return covered
}

// CreateVault stamps a treasure vault. It returns nil when no site
// is free.
func (g *Generator) CreateVault() (*treasure.Vault, error) {
	d, err := g.current("create vault")
	if err != nil {
		return nil, err
	}
	grid, vault := treasure.CreateVault(d.Grid, g.random, g.populator.Occupied)
	if vault == nil {
		return nil, nil
	}
	g.setGrid(d, grid)
	d.Traps = liveTraps(grid, d.Traps)
	d.Vault = vault
	return vault, nil
}

// CreateSecretPassage carves a hidden corridor between two points and
// returns the far endpoint actually reached.
func (g *Generator) CreateSecretPassage(start, end world.Point) (world.Point, error) {
	d, err := g.current("create secret passage")
	if err != nil {
		return world.Point{}, err
	}
	grid, reached := postprocess.SecretPassage(d.Grid, g.random, start, end)
	g.setGrid(d, grid)
	return reached, nil
}

// AddKeysAndPuzzles locks rooms with probability lockRatio and hides their
// keys in earlier rooms.
func (g *Generator) AddKeysAndPuzzles(lockRatio float64) ([]postprocess.Lock, error) {
	d, err := g.current("add keys and puzzles")
	if err != nil {
		return nil, err
	}
	grid, locks := postprocess.KeysAndPuzzles(d.Grid, d.Rooms, g.random, lockRatio, g.populator.Occupied)
	g.setGrid(d, grid)
	d.Locks = append(d.Locks, locks...)
	return locks, nil
}

// AddTraps arms corridor chokepoints and room thresholds.
func (g *Generator) AddTraps(density float64) ([]treasure.TrapPlacement, error) {
	d, err := g.current("add traps")
	if err != nil {
		return nil, err
	}
	grid, traps := treasure.AddTraps(d.Grid, d.Rooms, g.random, density, g.catalog.Treasure.Traps, g.populator.Occupied)
	g.setGrid(d, grid)
	d.Traps = append(d.Traps, traps...)
	return traps, nil
}

// PopulateMonsters spawns floor(rooms*density*1.5) extra monsters on free
// cells. The grid is left unchanged.
func (g *Generator) PopulateMonsters(density float64) ([]population.MonsterPlacement, error) {
	d, err := g.current("populate monsters")
	if err != nil {
		return nil, err
	}
	added := g.populator.PopulateMonsters(density)
	d.Monsters = append(d.Monsters, added...)
	d.rebuildEntities()
	return added, nil
}

// PopulateTreasure spawns floor(rooms*density*0.7) extra treasures on free
// cells. The grid is left unchanged.
func (g *Generator) PopulateTreasure(density float64) ([]population.TreasurePlacement, error) {
	d, err := g.current("populate treasure")
	if err != nil {
		return nil, err
	}
	added := g.populator.PopulateTreasure(density)
	d.Treasures = append(d.Treasures, added...)
	d.rebuildEntities()
	return added, nil
}

// AddRoomTreasure distributes treasure across room interiors, sending the
// most valuable finds to the largest rooms.
func (g *Generator) AddRoomTreasure(density float64) ([]population.TreasurePlacement, error) {
	d, err := g.current("add room treasure")
	if err != nil {
		return nil, err
	}
	placed := g.treasures.PlaceInRooms(d.Grid, d.Rooms, g.random, treasure.RoomOptions{
		Density: density,
		Level:   g.opts.DungeonLevel,
		Theme:   g.theme,
	}, g.populator.Occupied)

	added := make([]population.TreasurePlacement, 0, len(placed))
	for _, p := range placed {
		added = append(added, population.TreasurePlacement{Pos: p.Pos, Treasure: p.Treasure})
	}
	g.populator.Track(nil, added)
	d.Treasures = append(d.Treasures, added...)
	d.rebuildEntities()
	return added, nil
}

// Unlock opens the locked door at p when keyID matches its key.
func (g *Generator) Unlock(p world.Point, keyID string) (bool, error) {
	d, err := g.current("unlock")
	if err != nil {
		return false, err
	}
	grid := d.Grid.Clone()
	if !d.Doors.Unlock(grid, p, keyID) {
		return false, nil
	}
	g.setGrid(d, grid)
	return true, nil
}
