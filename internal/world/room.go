package world

// Room is a rectangular region of the dungeon plus any designation metadata
// attached after extraction.
type Room struct {
	X, Y          int // Top-left corner position
	Width, Height int // Dimensions of the room

	Designation      string
	RoomType         string
	Features         []string
	DecorationChance float64
	LootTable        string
	Decorations      []string
	Style            *RoomStyle
	Trap             *Trap
}

// RoomStyle holds the theme colours applied to a room.
type RoomStyle struct {
	Floor string
	Wall  string
}

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// Center returns the center coordinates of the room.
func (r Room) Center() (int, int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Area returns width times height.
func (r Room) Area() int {
	return r.Width * r.Height
}

// Contains returns true if the given point is inside the room.
func (r Room) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// TooClose reports whether r, grown by spacing on every side, touches other.
// Edges are inclusive, so rooms exactly spacing apart are still rejected.
func (r Room) TooClose(other Room, spacing int) bool {
	return r.X-spacing <= other.X+other.Width &&
		r.X+r.Width+spacing >= other.X &&
		r.Y-spacing <= other.Y+other.Height &&
		r.Y+r.Height+spacing >= other.Y
}

// Bounds returns the room's rectangle without metadata.
func (r Room) Bounds() Room {
	return Room{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}
