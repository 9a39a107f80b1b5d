package mapgen

import (
	"errors"
	"fmt"

	"github.com/samdwyer/dungeongen/internal/rng"
	"github.com/samdwyer/dungeongen/internal/world"
)

// ErrInsufficientRooms is returned when too few rooms fit after every retry.
var ErrInsufficientRooms = errors.New("could not place the minimum number of rooms")

// MaxRoomRetries bounds full regeneration attempts.
const MaxRoomRetries = 50

// RoomOptions configures rooms-and-corridors generation.
type RoomOptions struct {
	MinRooms       int
	MaxRooms       int
	MinRoomSize    int
	MaxRoomSize    int
	CorridorWidth  int
	RoomSpacing    int
	RemoveDeadEnds bool
}

// DefaultRoomOptions returns the standard rooms-and-corridors settings.
func DefaultRoomOptions() RoomOptions {
	return RoomOptions{
		MinRooms:       10,
		MaxRooms:       15,
		MinRoomSize:    3,
		MaxRoomSize:    8,
		CorridorWidth:  1,
		RoomSpacing:    1,
		RemoveDeadEnds: true,
	}
}

// Layout is a synthesized grid together with the rooms it was built from.
type Layout struct {
	Grid  *world.Grid
	Rooms []world.Room
}

// RoomsAndCorridors scatters non-overlapping rectangular rooms, joins
// consecutive rooms with L-shaped corridors and optionally prunes dead ends.
// The whole layout is regenerated, on the same source, until at least
// MinRooms fit or MaxRoomRetries is reached.
func RoomsAndCorridors(width, height int, r rng.Source, opts RoomOptions) (Layout, error) {
	opts.MaxRoomSize = min(opts.MaxRoomSize, width-3, height-3)
	opts.MinRoomSize = max(1, min(opts.MinRoomSize, opts.MaxRoomSize))
	if opts.MaxRoomSize < 1 {
		return Layout{}, fmt.Errorf("%dx%d grid: %w", width, height, ErrInsufficientRooms)
	}
	opts.CorridorWidth = max(1, opts.CorridorWidth)

	for attempt := 0; attempt < MaxRoomRetries; attempt++ {
		g := world.NewGrid(width, height, world.CellWall)
		rooms := placeRooms(g, r, opts)
		if len(rooms) < opts.MinRooms {
			continue
		}

		carver := corridorCarver{grid: g, thickness: opts.CorridorWidth, onlyWalls: true}
		for i := 0; i < len(rooms)-1; i++ {
			carver.connect(r, rooms[i], rooms[i+1])
		}

		if opts.RemoveDeadEnds {
			removeDeadEnds(g)
		}
		return Layout{Grid: g, Rooms: rooms}, nil
	}

	return Layout{}, fmt.Errorf("%d rooms required after %d attempts: %w", opts.MinRooms, MaxRoomRetries, ErrInsufficientRooms)
}

// placeRooms makes MaxRooms*2 placement attempts and carves accepted rooms.
func placeRooms(g *world.Grid, r rng.Source, opts RoomOptions) []world.Room {
	rooms := make([]world.Room, 0, opts.MaxRooms)
	span := opts.MaxRoomSize - opts.MinRoomSize + 1

	for i := 0; i < opts.MaxRooms*2 && len(rooms) < opts.MaxRooms; i++ {
		w := rng.Intn(r, span) + opts.MinRoomSize
		h := rng.Intn(r, span) + opts.MinRoomSize
		x := rng.Intn(r, g.Width-w-2) + 1
		y := rng.Intn(r, g.Height-h-2) + 1

		candidate := world.Room{X: x, Y: y, Width: w, Height: h}
		overlaps := false
		for _, other := range rooms {
			if candidate.TooClose(other, opts.RoomSpacing) {
				overlaps = true
				break
			}
		}
		if overlaps {
			continue
		}

		for ry := y; ry < y+h; ry++ {
			for rx := x; rx < x+w; rx++ {
				g.Set(rx, ry, world.CellRoom)
			}
		}
		rooms = append(rooms, candidate)
	}

	return rooms
}

// removeDeadEnds walls up corridor cells with three or more orthogonal wall
// neighbours until none remain.
func removeDeadEnds(g *world.Grid) {
	for changed := true; changed; {
		changed = false
		for y := 1; y < g.Height-1; y++ {
			for x := 1; x < g.Width-1; x++ {
				if g.Cells[y][x].Type != world.CellCorridor {
					continue
				}
				walls := 0
				for _, n := range [...]world.Point{{X: x, Y: y - 1}, {X: x, Y: y + 1}, {X: x - 1, Y: y}, {X: x + 1, Y: y}} {
					if g.Cells[n.Y][n.X].Type == world.CellWall {
						walls++
					}
				}
				if walls >= 3 {
					g.Set(x, y, world.CellWall)
					changed = true
				}
			}
		}
	}
}
