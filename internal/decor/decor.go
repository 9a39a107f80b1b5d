// Package decor assigns thematic roles to rooms and dresses them with
// features, decorations, traps and theme colours.
package decor

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/dungeongen/internal/gamedata"
	"github.com/samdwyer/dungeongen/internal/rng"
	"github.com/samdwyer/dungeongen/internal/world"
)

// FallbackRoomType is chosen when the type roll lands past every weight.
const FallbackRoomType = "utility"

// RoomTrapChance is the chance that a trapped designation arms its room.
const RoomTrapChance = 0.5

// Decorator dresses rooms using the designation and theme catalogs. Every
// draw goes through the supplied random source.
type Decorator struct {
	designations *gamedata.DesignationRegistry
	universal    []string
	traps        []gamedata.TrapDef
}

// New creates a decorator over the loaded catalog.
func New(catalog *gamedata.Catalog) *Decorator {
	return &Decorator{
		designations: catalog.Designations,
		universal:    catalog.Themes.UniversalDecorations(),
		traps:        catalog.Treasure.Traps,
	}
}

// AssignDesignation draws a room type from the type weights, picks one of its
// designations uniformly and copies the designation's metadata onto room.
func (d *Decorator) AssignDesignation(room world.Room, r rng.Source, theme *gamedata.ThemeDef) world.Room {
	roll := r.Next()
	roomType := FallbackRoomType
	cumulative := 0.0
	for _, w := range d.designations.TypeWeights(theme) {
		cumulative += w.Weight
		if roll < cumulative {
			roomType = w.Type
			break
		}
	}

	def, ok := rng.Select(r, d.designations.ByType(roomType))
	if !ok {
		return room
	}

	room.Designation = def.ID
	room.RoomType = def.Type
	room.Features = append([]string(nil), def.Features...)
	room.DecorationChance = def.DecorationChance
	room.LootTable = def.LootTable
	return room
}

// Decorate rolls the room's decoration chance and on success adds one to
// three of its designation's features. Trapped designations arm the room
// half of the time.
func (d *Decorator) Decorate(room world.Room, r rng.Source) world.Room {
	def := d.designations.Get(room.Designation)
	if def == nil {
		return room
	}

	if r.Next() < def.DecorationChance {
		room.Decorations = nil
		room.Decorations = addUnique(room.Decorations, r, def.Features, rng.Intn(r, 3)+1)
	}

	if def.Traps && r.Next() < RoomTrapChance {
		trap := world.Trap{Name: "Room Trap"}
		if t, ok := rng.Select(r, d.traps); ok {
			trap = world.Trap{
				Name:        t.Name,
				Danger:      t.Danger,
				Description: t.Description,
				DetectionDC: t.DetectionDC,
				DisarmDC:    t.DisarmDC,
			}
		}
		room.Trap = &trap
	}
	return room
}

// ApplyTheme styles the room with the theme's floor and wall colours. When
// the decoration roll succeeds it adds one to three designation features and
// one to four theme decorations to whatever the room already holds.
func (d *Decorator) ApplyTheme(room world.Room, r rng.Source, theme *gamedata.ThemeDef) world.Room {
	if theme == nil {
		return room
	}

	floor, _ := theme.ColorHex("room")
	wall, _ := theme.ColorHex("wall")
	room.Style = &world.RoomStyle{Floor: floor, Wall: wall}

	def := d.designations.Get(room.Designation)
	if def == nil {
		return room
	}

	if r.Next() < def.DecorationChance {
		decorations := append([]string(nil), room.Decorations...)
		decorations = addUnique(decorations, r, def.Features, rng.Intn(r, 3)+1)
		decorations = addUnique(decorations, r, theme.Decorations, rng.Intn(r, 4)+1)
		room.Decorations = decorations
	}
	return room
}

// ThemeDecorations draws count decorations from the universal list plus the
// theme's room decorations, dropping repeats.
func (d *Decorator) ThemeDecorations(r rng.Source, theme *gamedata.ThemeDef, count int) []string {
	if theme == nil {
		return nil
	}
	pool := append(append([]string(nil), d.universal...), theme.RoomDecorations...)
	return addUnique(nil, r, pool, count)
}

// Rooms assigns, decorates and themes every room in order.
func (d *Decorator) Rooms(rooms []world.Room, r rng.Source, theme *gamedata.ThemeDef) []world.Room {
	out := make([]world.Room, len(rooms))
	for i, room := range rooms {
		room = d.AssignDesignation(room, r, theme)
		room = d.Decorate(room, r)
		out[i] = d.ApplyTheme(room, r, theme)
	}
	return out
}

// addUnique makes n draws from pool and appends those not already present.
func addUnique(dst []string, r rng.Source, pool []string, n int) []string {
	seen := mapset.New[string]()
	for _, s := range dst {
		seen.Put(s)
	}
	for i := 0; i < n; i++ {
		s, ok := rng.Select(r, pool)
		if !ok {
			return dst
		}
		if seen.Has(s) {
			continue
		}
		seen.Put(s)
		dst = append(dst, s)
	}
	return dst
}
