package mapgen

import (
	"github.com/samdwyer/dungeongen/internal/postprocess"
	"github.com/samdwyer/dungeongen/internal/rng"
	"github.com/samdwyer/dungeongen/internal/world"
)

// CaveOptions configures cellular automata caves.
type CaveOptions struct {
	InitialDensity float64
	Iterations     int
	BirthLimit     int
	DeathLimit     int
}

// DefaultCaveOptions returns the standard cave settings.
func DefaultCaveOptions() CaveOptions {
	return CaveOptions{
		InitialDensity: 0.45,
		Iterations:     4,
		BirthLimit:     5,
		DeathLimit:     4,
	}
}

// Cave fills the grid with random wall or corridor cells and smooths the
// noise into organic caverns.
func Cave(width, height int, r rng.Source, opts CaveOptions) *world.Grid {
	g := world.NewGrid(width, height, world.CellWall)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if r.Next() >= opts.InitialDensity {
				g.Set(x, y, world.CellCorridor)
			}
		}
	}
	return postprocess.Smooth(g, opts.Iterations, opts.BirthLimit, opts.DeathLimit)
}
