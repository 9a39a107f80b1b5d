package mapgen

import (
	"errors"
	"testing"

	"github.com/samdwyer/dungeongen/internal/rng"
	"github.com/samdwyer/dungeongen/internal/world"
)

func corridorGraph(g *world.Grid) (nodes, edges int) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.Cells[y][x].Type != world.CellCorridor {
				continue
			}
			nodes++
			if x+1 < g.Width && g.Cells[y][x+1].Type == world.CellCorridor {
				edges++
			}
			if y+1 < g.Height && g.Cells[y+1][x].Type == world.CellCorridor {
				edges++
			}
		}
	}
	return nodes, edges
}

func reachable(g *world.Grid, start world.Point, open func(world.CellType) bool) int {
	seen := map[world.Point]bool{start: true}
	queue := []world.Point{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, n := range []world.Point{{X: p.X + 1, Y: p.Y}, {X: p.X - 1, Y: p.Y}, {X: p.X, Y: p.Y + 1}, {X: p.X, Y: p.Y - 1}} {
			if g.InBounds(n.X, n.Y) && !seen[n] && open(g.Cells[n.Y][n.X].Type) {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	return len(seen)
}

func TestMazeIsPerfect(t *testing.T) {
	sizes := []struct{ w, h int }{{10, 10}, {21, 15}, {50, 50}, {31, 12}}

	for _, s := range sizes {
		g := Maze(s.w, s.h, rng.New(42))
		nodes, edges := corridorGraph(g)

		if nodes == 0 {
			t.Fatalf("%dx%d: no corridors carved", s.w, s.h)
		}
		if edges != nodes-1 {
			t.Errorf("%dx%d: %d corridor cells with %d edges, want a tree", s.w, s.h, nodes, edges)
		}
		isCorridor := func(t world.CellType) bool { return t == world.CellCorridor }
		if got := reachable(g, world.Point{X: 1, Y: 1}, isCorridor); got != nodes {
			t.Errorf("%dx%d: reached %d of %d corridor cells", s.w, s.h, got, nodes)
		}
	}
}

func TestMazeReproducibility(t *testing.T) {
	a := Maze(25, 25, rng.New(12345))
	b := Maze(25, 25, rng.New(12345))
	if !a.Equal(b) {
		t.Error("mazes with the same seed differ")
	}

	c := Maze(25, 25, rng.New(54321))
	if a.Equal(c) {
		t.Error("mazes with different seeds should not be identical")
	}
}

func TestRoomsDoNotOverlap(t *testing.T) {
	opts := DefaultRoomOptions()
	opts.MinRooms = 4

	for seed := int64(1); seed <= 20; seed++ {
		layout, err := RoomsAndCorridors(60, 40, rng.New(seed), opts)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		rooms := layout.Rooms
		if len(rooms) < opts.MinRooms || len(rooms) > opts.MaxRooms {
			t.Errorf("seed %d: %d rooms outside [%d,%d]", seed, len(rooms), opts.MinRooms, opts.MaxRooms)
		}
		for i := range rooms {
			for j := i + 1; j < len(rooms); j++ {
				if rooms[i].TooClose(rooms[j], opts.RoomSpacing) {
					t.Errorf("seed %d: rooms %d and %d overlap with spacing", seed, i, j)
				}
			}
		}
	}
}

func TestRoomsAreCarvedAndDeadEndsPruned(t *testing.T) {
	opts := DefaultRoomOptions()
	opts.MinRooms = 3

	layout, err := RoomsAndCorridors(50, 50, rng.New(7), opts)
	if err != nil {
		t.Fatal(err)
	}
	g := layout.Grid

	for i, r := range layout.Rooms {
		x, y := r.Center()
		if g.Type(x, y) != world.CellRoom {
			t.Errorf("room %d centre is %v", i, g.Type(x, y))
		}
	}

	for y := 1; y < g.Height-1; y++ {
		for x := 1; x < g.Width-1; x++ {
			if g.Type(x, y) != world.CellCorridor {
				continue
			}
			walls := 0
			for _, p := range []world.Point{{X: x, Y: y - 1}, {X: x, Y: y + 1}, {X: x - 1, Y: y}, {X: x + 1, Y: y}} {
				if g.Type(p.X, p.Y) == world.CellWall {
					walls++
				}
			}
			if walls >= 3 {
				t.Errorf("dead end left at (%d,%d)", x, y)
			}
		}
	}
}

func TestRoomsInsufficient(t *testing.T) {
	opts := DefaultRoomOptions()
	opts.MinRooms = 30
	opts.MaxRooms = 30

	_, err := RoomsAndCorridors(12, 12, rng.New(1), opts)
	if !errors.Is(err, ErrInsufficientRooms) {
		t.Fatalf("err = %v, want ErrInsufficientRooms", err)
	}
}

func TestCaveReproducibleAndMixed(t *testing.T) {
	a := Cave(40, 30, rng.New(9), DefaultCaveOptions())
	b := Cave(40, 30, rng.New(9), DefaultCaveOptions())
	if !a.Equal(b) {
		t.Fatal("caves with the same seed differ")
	}
	if a.Count(world.CellWall) == 0 || a.Count(world.CellCorridor) == 0 {
		t.Error("cave should contain both walls and corridors")
	}
}

func TestOpenPlanBorder(t *testing.T) {
	g := OpenPlan(20, 20, rng.New(3), 0.3)

	for i := 0; i < 20; i++ {
		for _, p := range []world.Point{{X: i, Y: 0}, {X: i, Y: 19}, {X: 0, Y: i}, {X: 19, Y: i}} {
			if g.Type(p.X, p.Y) != world.CellWall {
				t.Fatalf("border cell (%d,%d) = %v", p.X, p.Y, g.Type(p.X, p.Y))
			}
		}
	}

	if g.Count(world.CellPillar) == 0 {
		t.Fatal("expected pillars at 30% frequency")
	}
	g.ForEachCell(func(x, y int, c *world.Cell) {
		if c.Type == world.CellPillar && (x < 2 || y < 2 || x > 17 || y > 17) {
			t.Errorf("pillar at (%d,%d) outside the inner area", x, y)
		}
	})
}

func TestModularPlacesRooms(t *testing.T) {
	layout := Modular(50, 50, rng.New(11), DefaultModularOptions())

	if len(layout.Rooms) == 0 {
		t.Fatal("no modules placed")
	}
	for i, r := range layout.Rooms {
		if r.X < 1 || r.Y < 1 || r.X+r.Width > 49 || r.Y+r.Height > 49 {
			t.Errorf("module %d at %+v breaks the margin", i, r.Bounds())
		}
		x, y := r.Center()
		if got := layout.Grid.Type(x, y); got != world.CellRoom && got != world.CellCorridor {
			t.Errorf("module %d centre is %v", i, got)
		}
	}
}

func TestModularUsesSuppliedModules(t *testing.T) {
	modules := []*world.Grid{
		world.CreateRoomPattern(6, 6, world.ShapeRectangular, world.CellRoom),
		world.CreateRoomPattern(6, 6, world.ShapeRectangular, world.CellRoom),
		world.CreateRoomPattern(6, 6, world.ShapeRectangular, world.CellRoom),
		world.CreateRoomPattern(6, 6, world.ShapeRectangular, world.CellRoom),
		world.CreateRoomPattern(6, 6, world.ShapeRectangular, world.CellRoom),
	}
	layout := Modular(60, 60, rng.New(2), ModularOptions{Modules: modules})
	if len(layout.Rooms) != 5 {
		t.Errorf("placed %d modules, want 5 on a 3x3 layout", len(layout.Rooms))
	}
}

func TestAllAlgorithmsFillGrid(t *testing.T) {
	r := rng.New(100)
	rooms := DefaultRoomOptions()
	rooms.MinRooms = 1
	rooms.MaxRooms = 3

	roomLayout, err := RoomsAndCorridors(10, 10, r, rooms)
	if err != nil {
		t.Fatalf("rooms on 10x10: %v", err)
	}

	grids := map[string]*world.Grid{
		"maze":    Maze(10, 10, r),
		"rooms":   roomLayout.Grid,
		"cave":    Cave(10, 10, r, DefaultCaveOptions()),
		"open":    OpenPlan(10, 10, r, DefaultPillarFrequency),
		"modular": Modular(10, 10, r, DefaultModularOptions()).Grid,
	}

	for name, g := range grids {
		if g.Width != 10 || g.Height != 10 || len(g.Cells) != 10 {
			t.Errorf("%s: wrong dimensions", name)
			continue
		}
		for y := range g.Cells {
			if len(g.Cells[y]) != 10 {
				t.Errorf("%s: row %d has %d cells", name, y, len(g.Cells[y]))
			}
			for x := range g.Cells[y] {
				if g.Cells[y][x].Type.String() == "" {
					t.Errorf("%s: cell (%d,%d) has no type", name, x, y)
				}
			}
		}
	}
}
