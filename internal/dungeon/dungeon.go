// Package dungeon composes grid synthesis, post-processing, population and
// decoration into a single seeded generation run.
package dungeon

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/samdwyer/dungeongen/internal/gamedata"
	"github.com/samdwyer/dungeongen/internal/population"
	"github.com/samdwyer/dungeongen/internal/postprocess"
	"github.com/samdwyer/dungeongen/internal/treasure"
	"github.com/samdwyer/dungeongen/internal/world"
)

var (
	// ErrNoGrid is returned by manual operations called before Generate.
	ErrNoGrid = errors.New("dungeon has not been generated")
	// ErrUnknownMapType is returned for an unrecognised map type.
	ErrUnknownMapType = errors.New("unknown map type")
)

// idNamespace roots the name-based UUIDs so equal seeds give equal IDs.
var idNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("dungeongen"))

// EntityKind tags an Entity.
type EntityKind string

const (
	EntityMonster  EntityKind = "monster"
	EntityTreasure EntityKind = "treasure"
)

// Entity is the renderer-facing view of a monster or treasure.
type Entity struct {
	ID          uuid.UUID
	Row, Col    int
	Kind        EntityKind
	DisplayName string
	Monster     *gamedata.MonsterDef
	Treasure    *treasure.Treasure
	Item        *gamedata.ItemDef
}

// Dungeon is the result of a generation run.
type Dungeon struct {
	ID      uuid.UUID
	Grid    *world.Grid
	Width   int
	Height  int
	Seed    int64
	Type    string
	MapType MapType

	Rooms     []world.Room
	Monsters  []population.MonsterPlacement
	Treasures []population.TreasurePlacement
	Entities  []Entity

	Doors *world.DoorSystem
	Locks []postprocess.Lock
	Traps []treasure.TrapPlacement
	Vault *treasure.Vault
}

func newDungeonID(opts Options) uuid.UUID {
	name := fmt.Sprintf("%d/%s/%s/%dx%d", opts.Seed, opts.DungeonType, opts.MapType, opts.Width, opts.Height)
	return uuid.NewSHA1(idNamespace, []byte(name))
}

// MonsterAt returns the monster placed at (x, y), if any.
func (d *Dungeon) MonsterAt(x, y int) (population.MonsterPlacement, bool) {
	for _, m := range d.Monsters {
		if m.Pos.X == x && m.Pos.Y == y {
			return m, true
		}
	}
	return population.MonsterPlacement{}, false
}

// TreasureAt returns the treasure placed at (x, y), if any.
func (d *Dungeon) TreasureAt(x, y int) (population.TreasurePlacement, bool) {
	for _, t := range d.Treasures {
		if t.Pos.X == x && t.Pos.Y == y {
			return t, true
		}
	}
	return population.TreasurePlacement{}, false
}

// TotalTreasureValue sums the value of every placed treasure.
func (d *Dungeon) TotalTreasureValue() int {
	total := 0
	for _, t := range d.Treasures {
		total += t.Treasure.Value
	}
	return total
}

// rebuildEntities regenerates Entities from Monsters and Treasures, monsters
// first, each in placement order.
func (d *Dungeon) rebuildEntities() {
	entities := make([]Entity, 0, len(d.Monsters)+len(d.Treasures))
	for _, m := range d.Monsters {
		name := "Unknown Monster"
		if m.Monster != nil {
			name = m.Monster.Name
		}
		entities = append(entities, Entity{
			ID:          d.entityID(EntityMonster, m.Pos),
			Row:         m.Pos.Y,
			Col:         m.Pos.X,
			Kind:        EntityMonster,
			DisplayName: name,
			Monster:     m.Monster,
		})
	}
	for i := range d.Treasures {
		t := &d.Treasures[i]
		entities = append(entities, Entity{
			ID:          d.entityID(EntityTreasure, t.Pos),
			Row:         t.Pos.Y,
			Col:         t.Pos.X,
			Kind:        EntityTreasure,
			DisplayName: t.Treasure.DisplayName(),
			Treasure:    &t.Treasure,
			Item:        t.Item,
		})
	}
	d.Entities = entities
}

func (d *Dungeon) entityID(kind EntityKind, p world.Point) uuid.UUID {
	return uuid.NewSHA1(d.ID, []byte(fmt.Sprintf("%s/%d/%d", kind, p.X, p.Y)))
}
