package dungeon

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/dungeongen/internal/decor"
	"github.com/samdwyer/dungeongen/internal/gamedata"
	"github.com/samdwyer/dungeongen/internal/logger"
	"github.com/samdwyer/dungeongen/internal/mapgen"
	"github.com/samdwyer/dungeongen/internal/population"
	"github.com/samdwyer/dungeongen/internal/postprocess"
	"github.com/samdwyer/dungeongen/internal/rng"
	"github.com/samdwyer/dungeongen/internal/telemetry"
	"github.com/samdwyer/dungeongen/internal/treasure"
	"github.com/samdwyer/dungeongen/internal/world"
)

// Generator owns one random source and the dungeon it last produced.
// It is not safe for concurrent use.
type Generator struct {
	opts      Options
	catalog   *gamedata.Catalog
	theme     *gamedata.ThemeDef
	monsters  *population.MonsterResolver
	items     *population.ItemResolver
	treasures *treasure.Generator
	decorator *decor.Decorator

	random    *rng.Random
	dungeon   *Dungeon
	populator *population.Populator
}

// New creates a generator. A nil catalog loads the embedded data.
func New(opts Options, catalog *gamedata.Catalog) (*Generator, error) {
	opts = opts.normalized()
	if _, err := ParseMapType(string(opts.MapType)); err != nil {
		return nil, err
	}

	if catalog == nil {
		var err error
		if catalog, err = gamedata.LoadCatalog(); err != nil {
			return nil, fmt.Errorf("loading catalog: %w", err)
		}
	}
	theme, err := catalog.Themes.Get(opts.DungeonType)
	if err != nil {
		return nil, err
	}

	return &Generator{
		opts:      opts,
		catalog:   catalog,
		theme:     theme,
		monsters:  population.NewMonsterResolver(catalog.Monsters, theme),
		items:     population.NewItemResolver(catalog.Items, theme),
		treasures: treasure.NewGenerator(catalog.Treasure),
		decorator: decor.New(catalog),
		random:    rng.New(opts.Seed),
	}, nil
}

// Options returns the resolved options, including the seed actually used.
func (g *Generator) Options() Options {
	return g.opts
}

// Theme returns the theme named by DungeonType.
func (g *Generator) Theme() *gamedata.ThemeDef {
	return g.theme
}

// Dungeon returns the most recently generated dungeon, or nil.
func (g *Generator) Dungeon() *Dungeon {
	return g.dungeon
}

// Generate runs the full pipeline. The random source is reseeded first, so
// equal options always give an identical dungeon. ctx carries tracing only.
func (g *Generator) Generate(ctx context.Context) (*Dungeon, error) {
	tracer := telemetry.Tracer("dungeon")
	ctx, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	start := time.Now()
	g.random = rng.New(g.opts.Seed)
	span.SetAttributes(
		attribute.Int("dungeon.width", g.opts.Width),
		attribute.Int("dungeon.height", g.opts.Height),
		attribute.Int64("dungeon.seed", g.opts.Seed),
		attribute.String("dungeon.map_type", string(g.opts.MapType)),
		attribute.String("dungeon.type", g.opts.DungeonType),
	)

	layout, err := g.synthesize(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "synthesis failed")
		logger.Warning("dungeon synthesis failed", "seed", g.opts.Seed, "map_type", g.opts.MapType, "error", err)
		return nil, err
	}

	d := &Dungeon{
		ID:      newDungeonID(g.opts),
		Width:   g.opts.Width,
		Height:  g.opts.Height,
		Seed:    g.opts.Seed,
		Type:    g.opts.DungeonType,
		MapType: g.opts.MapType,
		Doors:   world.NewDoorSystem(),
	}
	g.postprocess(ctx, d, layout)
	g.populate(ctx, d)
	g.decorate(ctx, d)
	d.Doors.Sync(d.Grid)
	d.rebuildEntities()

	g.dungeon = d
	g.populator = population.NewPopulator(population.Config{
		Grid:      d.Grid,
		Rooms:     d.Rooms,
		Random:    g.random,
		Monsters:  g.monsters,
		Items:     g.items,
		Generator: g.treasures,
		Theme:     g.theme,
		Level:     g.opts.DungeonLevel,
	})
	g.populator.Track(d.Monsters, d.Treasures)

	elapsed := time.Since(start)
	span.SetAttributes(
		attribute.Int("dungeon.rooms", len(d.Rooms)),
		attribute.Int("dungeon.monsters", len(d.Monsters)),
		attribute.Int("dungeon.treasures", len(d.Treasures)),
		attribute.Int64("dungeon.generation_ms", elapsed.Milliseconds()),
	)
	logger.Info("dungeon generated",
		"id", d.ID.String(),
		"seed", d.Seed,
		"map_type", d.MapType,
		"rooms", len(d.Rooms),
		"monsters", len(d.Monsters),
		"treasures", len(d.Treasures),
		"duration", elapsed,
	)
	return d, nil
}

// synthesize builds the base grid for the configured map type.
func (g *Generator) synthesize(ctx context.Context) (mapgen.Layout, error) {
	_, span := telemetry.Tracer("dungeon").Start(ctx, "dungeon.synthesize")
	defer span.End()

	o := g.opts
	var layout mapgen.Layout
	switch o.MapType {
	case MapMaze:
		layout.Grid = mapgen.Maze(o.Width, o.Height, g.random)
	case MapRooms:
		var err error
		layout, err = mapgen.RoomsAndCorridors(o.Width, o.Height, g.random, o.roomOptions())
		if err != nil {
			return mapgen.Layout{}, fmt.Errorf("synthesizing rooms: %w", err)
		}
	case MapCave:
		layout.Grid = mapgen.Cave(o.Width, o.Height, g.random, o.caveOptions())
	case MapOpen:
		layout.Grid = mapgen.OpenPlan(o.Width, o.Height, g.random, o.pillarFrequency())
	case MapModular:
		layout = mapgen.Modular(o.Width, o.Height, g.random, o.modularOptions())
	default:
		return mapgen.Layout{}, fmt.Errorf("%q: %w", o.MapType, ErrUnknownMapType)
	}

	span.SetAttributes(attribute.Int("dungeon.supplied_rooms", len(layout.Rooms)))
	logger.Debugf("synthesized %s map %dx%d with %d supplied rooms", o.MapType, o.Width, o.Height, len(layout.Rooms))
	return layout, nil
}

// postprocess runs smoothing, water, room extraction, secret passages and
// keys in that order.
func (g *Generator) postprocess(ctx context.Context, d *Dungeon, layout mapgen.Layout) {
	_, span := telemetry.Tracer("dungeon").Start(ctx, "dungeon.postprocess")
	defer span.End()

	o := g.opts
	grid := layout.Grid
	if o.SmoothIterations > 0 {
		grid = postprocess.Smooth(grid, o.SmoothIterations, postprocess.DefaultBirthLimit, postprocess.DefaultDeathLimit)
	}
	if o.WaterPools > 0 {
		grid = postprocess.AddWater(grid, g.random, o.WaterPools/100)
	}

	rooms := layout.Rooms
	if len(rooms) == 0 {
		rooms = world.FindRooms(grid)
	}

	if o.SecretPassages > 0 && len(rooms) >= 2 {
		for i := 0; i < o.SecretPassages; i++ {
			a := rng.Intn(g.random, len(rooms))
			b := rng.Intn(g.random, len(rooms)-1)
			if b >= a {
				b++
			}
			ax, ay := rooms[a].Center()
			bx, by := rooms[b].Center()
			grid, _ = postprocess.SecretPassage(grid, g.random, world.Point{X: ax, Y: ay}, world.Point{X: bx, Y: by})
		}
	}

	if o.LockRatio > 0 {
		grid, d.Locks = postprocess.KeysAndPuzzles(grid, rooms, g.random, o.LockRatio, nil)
	}

	d.Grid = grid
	d.Rooms = rooms
	d.Doors.Sync(grid)

	span.SetAttributes(
		attribute.Int("dungeon.rooms", len(rooms)),
		attribute.Int("dungeon.locks", len(d.Locks)),
	)
	logger.Debugf("post-processing found %d rooms, %d locks", len(rooms), len(d.Locks))
}

// populate scatters monsters, then treasure, over room and corridor cells.
func (g *Generator) populate(ctx context.Context, d *Dungeon) {
	_, span := telemetry.Tracer("dungeon").Start(ctx, "dungeon.populate")
	defer span.End()

	o := g.opts
	d.Grid, d.Monsters = population.ScatterMonsters(d.Grid, g.random, o.MonsterDensity*population.MonsterCellChance, g.monsters)
	d.Grid, d.Treasures = population.ScatterTreasure(d.Grid, g.random, population.TreasureScatter{
		Probability: o.TreasureDensity * population.TreasureCellChance,
		Level:       o.DungeonLevel,
		Generator:   g.treasures,
		Items:       g.items,
		Theme:       g.theme,
	})

	span.SetAttributes(
		attribute.Int("dungeon.monsters", len(d.Monsters)),
		attribute.Int("dungeon.treasures", len(d.Treasures)),
	)
	logger.Debugf("populated %d monsters and %d treasures", len(d.Monsters), len(d.Treasures))
}

// decorate adds columns, traps, the vault and room designations.
func (g *Generator) decorate(ctx context.Context, d *Dungeon) {
	_, span := telemetry.Tracer("dungeon").Start(ctx, "dungeon.decorate")
	defer span.End()

	o := g.opts
	if (o.MapType == MapOpen || o.MapType == MapModular) && o.ColumnFrequency > 0 {
		d.Grid = postprocess.AddColumns(d.Grid, g.random, o.ColumnFrequency)
	}

	if o.TrapDensity > 0 {
		d.Grid, d.Traps = treasure.AddTraps(d.Grid, d.Rooms, g.random, o.TrapDensity, g.catalog.Treasure.Traps, nil)
	}

	if o.TreasureVault {
		d.Grid, d.Vault = treasure.CreateVault(d.Grid, g.random, nil)
		if d.Vault == nil {
			logger.Warning("no room for a treasure vault", "seed", o.Seed, "width", o.Width, "height", o.Height)
		} else {
			d.Traps = liveTraps(d.Grid, d.Traps)
		}
	}

	if o.Decorate {
		d.Rooms = g.decorator.Rooms(d.Rooms, g.random, g.theme)
	}

	span.SetAttributes(
		attribute.Int("dungeon.traps", len(d.Traps)),
		attribute.Bool("dungeon.vault", d.Vault != nil),
	)
}

// liveTraps drops placements whose cell no longer carries a trap.
func liveTraps(g *world.Grid, traps []treasure.TrapPlacement) []treasure.TrapPlacement {
	kept := traps[:0]
	for _, t := range traps {
		if g.At(t.Pos.X, t.Pos.Y).Trap != nil {
			kept = append(kept, t)
		}
	}
	return kept
}
