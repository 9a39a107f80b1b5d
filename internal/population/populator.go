package population

import (
	"math"

	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/dungeongen/internal/gamedata"
	"github.com/samdwyer/dungeongen/internal/rng"
	"github.com/samdwyer/dungeongen/internal/treasure"
	"github.com/samdwyer/dungeongen/internal/world"
)

const (
	roomAttempts     = 10
	anywhereAttempts = 20

	monsterRoomPreference  = 0.7
	treasureRoomPreference = 0.8
)

// Config wires a Populator to a finished grid and its catalogs.
type Config struct {
	Grid      *world.Grid
	Rooms     []world.Room
	Random    rng.Source
	Monsters  *MonsterResolver
	Items     *ItemResolver
	Generator *treasure.Generator
	Theme     *gamedata.ThemeDef
	Level     int
}

// Populator tracks placed entities and adds more without double occupancy.
// It is not safe for concurrent use.
type Populator struct {
	cfg        Config
	monsters   []MonsterPlacement
	treasures  []TreasurePlacement
	monsterAt  mapset.Set[world.Point]
	treasureAt mapset.Set[world.Point]
}

// NewPopulator creates a populator with no placements.
func NewPopulator(cfg Config) *Populator {
	cfg.Level = max(cfg.Level, 1)
	return &Populator{
		cfg:        cfg,
		monsterAt:  mapset.New[world.Point](),
		treasureAt: mapset.New[world.Point](),
	}
}

// Track registers placements made elsewhere, such as by scattering.
func (p *Populator) Track(monsters []MonsterPlacement, treasures []TreasurePlacement) {
	for _, m := range monsters {
		p.addMonster(m)
	}
	for _, t := range treasures {
		p.addTreasure(t)
	}
}

// SetGrid points the populator at a newer version of the grid.
func (p *Populator) SetGrid(g *world.Grid) {
	p.cfg.Grid = g
}

func (p *Populator) addMonster(m MonsterPlacement) {
	p.monsters = append(p.monsters, m)
	p.monsterAt.Put(m.Pos)
}

func (p *Populator) addTreasure(t TreasurePlacement) {
	p.treasures = append(p.treasures, t)
	p.treasureAt.Put(t.Pos)
}

// MonsterAt reports whether a monster occupies pos.
func (p *Populator) MonsterAt(pos world.Point) bool {
	return p.monsterAt.Has(pos)
}

// TreasureAt reports whether treasure occupies pos.
func (p *Populator) TreasureAt(pos world.Point) bool {
	return p.treasureAt.Has(pos)
}

// Occupied reports whether any entity occupies pos.
func (p *Populator) Occupied(pos world.Point) bool {
	return p.MonsterAt(pos) || p.TreasureAt(pos)
}

// Monsters returns every tracked monster in placement order.
func (p *Populator) Monsters() []MonsterPlacement {
	return p.monsters
}

// spawnable rejects blocked, entrance, exit and water cells and any cell
// already holding an entity.
func (p *Populator) spawnable(pos world.Point) bool {
	g := p.cfg.Grid
	if !g.InBounds(pos.X, pos.Y) {
		return false
	}
	c := g.At(pos.X, pos.Y)
	if c.Blocked {
		return false
	}
	switch c.Type {
	case world.CellEntrance, world.CellExit, world.CellWater:
		return false
	}
	return !p.Occupied(pos)
}

// findSpot looks for a spawnable cell, first inside a random room when the
// preference roll succeeds, then anywhere in the interior.
func (p *Populator) findSpot(roomPreference float64) (world.Point, bool, bool) {
	r := p.cfg.Random
	rooms := p.cfg.Rooms

	if len(rooms) > 0 && r.Next() < roomPreference {
		for i := 0; i < roomAttempts; i++ {
			room := rooms[r.NextInt(0, len(rooms))]
			pos := world.Point{
				X: r.NextInt(room.X, room.X+room.Width),
				Y: r.NextInt(room.Y, room.Y+room.Height),
			}
			if p.spawnable(pos) {
				return pos, true, true
			}
		}
	}

	g := p.cfg.Grid
	for i := 0; i < anywhereAttempts; i++ {
		pos := world.Point{X: r.NextInt(1, g.Width-1), Y: r.NextInt(1, g.Height-1)}
		if p.spawnable(pos) {
			return pos, false, true
		}
	}
	return world.Point{}, false, false
}

// PopulateMonsters adds floor(rooms*density*1.5) monsters. Placements that
// find no free cell are skipped.
func (p *Populator) PopulateMonsters(density float64) []MonsterPlacement {
	count := int(math.Floor(float64(len(p.cfg.Rooms)) * density * 1.5))
	var added []MonsterPlacement
	for i := 0; i < count; i++ {
		pos, _, ok := p.findSpot(monsterRoomPreference)
		if !ok {
			continue
		}
		id := p.cfg.Random.NextInt(0, MaxMonsterID)
		monster, ok := p.cfg.Monsters.Resolve(id)
		if !ok {
			continue
		}
		m := MonsterPlacement{Pos: pos, ID: id, Monster: monster}
		p.addMonster(m)
		added = append(added, m)
	}
	return added
}

var (
	roomTreasureKinds = []treasure.Kind{
		treasure.KindCoins, treasure.KindGems, treasure.KindItem, treasure.KindMagical, treasure.KindHoard,
	}
	corridorTreasureKinds = []treasure.Kind{treasure.KindCoins, treasure.KindGems, treasure.KindItem}
)

// PopulateTreasure adds floor(rooms*density*0.7) treasures. Room placements
// may be hoards; placements outside rooms stick to simpler kinds.
func (p *Populator) PopulateTreasure(density float64) []TreasurePlacement {
	count := int(math.Floor(float64(len(p.cfg.Rooms)) * density * 0.7))
	r := p.cfg.Random
	var added []TreasurePlacement
	for i := 0; i < count; i++ {
		pos, inRoom, ok := p.findSpot(treasureRoomPreference)
		if !ok {
			continue
		}

		kinds := corridorTreasureKinds
		if inRoom {
			kinds = roomTreasureKinds
		}
		kind, _ := rng.Select(r, kinds)
		t := p.cfg.Generator.ByKind(kind, p.cfg.Level, r, p.cfg.Theme)
		t = treasure.Sanitize(&t, p.cfg.Level)

		tp := TreasurePlacement{Pos: pos, Treasure: t}
		if kind == treasure.KindItem && p.cfg.Items != nil {
			tp.Item = p.cfg.Items.Resolve(r.NextInt(ItemIDBase, ItemIDBase+1000))
		}
		p.addTreasure(tp)
		added = append(added, tp)
	}
	return added
}
