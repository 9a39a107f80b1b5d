// Package viewer runs an interactive terminal browser over generated dungeons.
package viewer

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeongen/internal/dungeon"
	"github.com/samdwyer/dungeongen/internal/gamedata"
	"github.com/samdwyer/dungeongen/internal/logger"
	"github.com/samdwyer/dungeongen/internal/report"
	"github.com/samdwyer/dungeongen/internal/telemetry"
	"github.com/samdwyer/dungeongen/internal/ui"
)

// scrollStep is how many cells a shifted arrow key scrolls.
const scrollStep = 10

// Viewer holds the state of an interactive session.
type Viewer struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	opts     dungeon.Options
	catalog  *gamedata.Catalog
	tr       *report.Translator

	gen     *dungeon.Generator
	dungeon *dungeon.Dungeon
	offsetX int
	offsetY int
	running bool
}

// New creates a viewer that draws dungeons generated from opts onto screen.
func New(screen *ui.Screen, opts dungeon.Options, catalog *gamedata.Catalog, tr *report.Translator) *Viewer {
	return &Viewer{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		opts:     opts,
		catalog:  catalog,
		tr:       tr,
		running:  true,
	}
}

// Dungeon returns the dungeon currently on screen.
func (v *Viewer) Dungeon() *dungeon.Dungeon {
	return v.dungeon
}

// Offset returns the grid cell drawn in the top-left corner.
func (v *Viewer) Offset() (x, y int) {
	return v.offsetX, v.offsetY
}

// Run generates the first dungeon and processes input until the user quits.
func (v *Viewer) Run(ctx context.Context) error {
	defer v.screen.Close()

	if err := v.generate(ctx, v.opts); err != nil {
		return err
	}

	for v.running {
		v.render()
		v.handleInput(ctx)
	}
	return nil
}

// generate builds a dungeon from opts and resets the viewport.
func (v *Viewer) generate(ctx context.Context, opts dungeon.Options) error {
	gen, err := dungeon.New(opts, v.catalog)
	if err != nil {
		return err
	}
	d, err := gen.Generate(ctx)
	if err != nil {
		return err
	}

	v.gen = gen
	v.opts = gen.Options()
	v.dungeon = d
	v.offsetX, v.offsetY = 0, 0
	return nil
}

// regenerate replaces the current dungeon with the next seed.
func (v *Viewer) regenerate(ctx context.Context) {
	ctx, span := telemetry.Tracer("viewer").Start(ctx, "viewer.regenerate")
	defer span.End()

	opts := v.opts
	opts.Seed++
	span.SetAttributes(attribute.Int64("dungeon.seed", opts.Seed))

	if err := v.generate(ctx, opts); err != nil {
		logger.Warning("regeneration failed", "seed", opts.Seed, "error", err)
		span.RecordError(err)
	}
}

func (v *Viewer) render() {
	d := v.dungeon
	status := v.tr.Tr("VIEWER_STATUS", d.Seed, fmt.Sprintf("%s/%s", d.MapType, d.Type),
		len(d.Rooms), len(d.Monsters), len(d.Treasures))
	v.renderer.Render(d.Grid, v.gen.Theme(), v.offsetX, v.offsetY, status, v.tr.Tr("VIEWER_HELP"))
}

// handleInput processes a single input event.
func (v *Viewer) handleInput(ctx context.Context) {
	ev := v.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		v.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		v.scroll(0, 0)
		v.screen.Sync()
	case nil:
		v.running = false
	}
}

// handleKeyEvent processes keyboard input.
func (v *Viewer) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	step := 1
	if ev.Modifiers()&tcell.ModShift != 0 {
		step = scrollStep
	}

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		v.running = false

	case tcell.KeyUp:
		v.scroll(0, -step)
	case tcell.KeyDown:
		v.scroll(0, step)
	case tcell.KeyLeft:
		v.scroll(-step, 0)
	case tcell.KeyRight:
		v.scroll(step, 0)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			v.running = false
		case 'r', 'R':
			v.regenerate(ctx)
		}
	}
}

// scroll moves the viewport, keeping it within the grid.
func (v *Viewer) scroll(dx, dy int) {
	cols, rows := v.renderer.Viewport()
	v.offsetX = clamp(v.offsetX+dx, 0, max(0, v.dungeon.Width-cols))
	v.offsetY = clamp(v.offsetY+dy, 0, max(0, v.dungeon.Height-rows))
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
