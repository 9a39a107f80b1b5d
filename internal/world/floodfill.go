package world

import "github.com/zyedidia/generic/mapset"

// minRoomDimension is the smallest width and height kept as a room.
const minRoomDimension = 3

// FindRooms recovers room rectangles by flood filling interior room and
// corridor cells. Regions only grow through cells of the same type, and
// regions narrower than three cells in either direction are discarded.
func FindRooms(g *Grid) []Room {
	rooms := make([]Room, 0)
	visited := mapset.New[Point]()

	for y := 1; y < g.Height-1; y++ {
		for x := 1; x < g.Width-1; x++ {
			start := Point{X: x, Y: y}
			t := g.Cells[y][x].Type
			if visited.Has(start) || !t.IsFloor() {
				continue
			}

			minX, minY, maxX, maxY := x, y, x, y
			queue := []Point{start}
			visited.Put(start)

			for len(queue) > 0 {
				p := queue[0]
				queue = queue[1:]

				minX, maxX = min(minX, p.X), max(maxX, p.X)
				minY, maxY = min(minY, p.Y), max(maxY, p.Y)

				for _, n := range [...]Point{{p.X, p.Y - 1}, {p.X + 1, p.Y}, {p.X, p.Y + 1}, {p.X - 1, p.Y}} {
					if !g.IsInterior(n.X, n.Y) || visited.Has(n) || g.Cells[n.Y][n.X].Type != t {
						continue
					}
					visited.Put(n)
					queue = append(queue, n)
				}
			}

			w, h := maxX-minX+1, maxY-minY+1
			if w >= minRoomDimension && h >= minRoomDimension {
				rooms = append(rooms, Room{X: minX, Y: minY, Width: w, Height: h})
			}
		}
	}

	return rooms
}
