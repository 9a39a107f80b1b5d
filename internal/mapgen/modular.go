package mapgen

import (
	"math"

	"github.com/samdwyer/dungeongen/internal/rng"
	"github.com/samdwyer/dungeongen/internal/world"
)

// ModularOptions configures modular generation.
type ModularOptions struct {
	// Modules are pre-built patterns. When empty, DefaultModules are drawn.
	Modules []*world.Grid
	// ModuleCount is the number of default modules to draw.
	ModuleCount int
	// MinModuleSize and ModuleSpread give default module sides in
	// [MinModuleSize, MinModuleSize+ModuleSpread).
	MinModuleSize int
	ModuleSpread  int
}

// DefaultModularOptions returns four modules with sides between 5 and 10.
func DefaultModularOptions() ModularOptions {
	return ModularOptions{ModuleCount: 4, MinModuleSize: 5, ModuleSpread: 6}
}

var defaultModuleShapes = [...]world.Shape{
	world.ShapeRectangular,
	world.ShapeCircular,
	world.ShapeDiamond,
	world.ShapeCross,
}

// DefaultModules draws count room patterns cycling through the four shapes.
func DefaultModules(r rng.Source, count, minSize, spread int) []*world.Grid {
	modules := make([]*world.Grid, 0, count)
	for i := 0; i < count; i++ {
		w := rng.Intn(r, spread) + minSize
		h := rng.Intn(r, spread) + minSize
		modules = append(modules, world.CreateRoomPattern(w, h, defaultModuleShapes[i%len(defaultModuleShapes)], world.CellRoom))
	}
	return modules
}

// Modular lays room modules out on a square grid of layout cells, centring
// each module on its cell's lower-right anchor, and joins placed modules in
// order with single-width L corridors. The placed rectangles are returned as
// the layout's rooms.
func Modular(width, height int, r rng.Source, opts ModularOptions) Layout {
	g := world.NewGrid(width, height, world.CellWall)

	modules := opts.Modules
	if len(modules) == 0 {
		modules = DefaultModules(r, opts.ModuleCount, opts.MinModuleSize, opts.ModuleSpread)
	}
	if len(modules) == 0 {
		return Layout{Grid: g, Rooms: []world.Room{}}
	}

	side := int(math.Ceil(math.Sqrt(float64(len(modules)))))
	cellW := width / (side + 1)
	cellH := height / (side + 1)

	placed := make([]world.Room, 0, len(modules))
	for i, m := range modules {
		gx, gy := i%side, i/side
		x := (gx+1)*cellW - m.Width/2
		y := (gy+1)*cellH - m.Height/2

		if world.PlaceRoomPattern(g, x, y, m) {
			placed = append(placed, world.Room{X: x, Y: y, Width: m.Width, Height: m.Height})
		}
	}

	carver := corridorCarver{grid: g, thickness: 1}
	for i := 0; i < len(placed)-1; i++ {
		carver.connect(r, placed[i], placed[i+1])
	}

	return Layout{Grid: g, Rooms: placed}
}
