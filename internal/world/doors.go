package world

// DoorSystem tracks locked doors and the keys that open them.
type DoorSystem struct {
	doors map[Point]string
	keys  map[Point]string
}

// NewDoorSystem creates an empty door registry.
func NewDoorSystem() *DoorSystem {
	return &DoorSystem{
		doors: make(map[Point]string),
		keys:  make(map[Point]string),
	}
}

// AddLockedDoor registers a door at p opened by keyID.
func (d *DoorSystem) AddLockedDoor(p Point, keyID string) {
	d.doors[p] = keyID
}

// AddKey registers a key with keyID lying at p.
func (d *DoorSystem) AddKey(p Point, keyID string) {
	d.keys[p] = keyID
}

// IsLocked reports whether a locked door is registered at p.
func (d *DoorSystem) IsLocked(p Point) bool {
	_, ok := d.doors[p]
	return ok
}

// KeyAt returns the key lying at p, if any.
func (d *DoorSystem) KeyAt(p Point) (string, bool) {
	id, ok := d.keys[p]
	return id, ok
}

// DoorCount returns the number of locked doors.
func (d *DoorSystem) DoorCount() int {
	return len(d.doors)
}

// Unlock opens the door at p when keyID matches. The grid cell becomes an
// ordinary, passable door.
func (d *DoorSystem) Unlock(g *Grid, p Point, keyID string) bool {
	want, ok := d.doors[p]
	if !ok || want != keyID {
		return false
	}
	delete(d.doors, p)
	if g != nil && g.InBounds(p.X, p.Y) {
		g.Cells[p.Y][p.X] = NewCell(CellDoor)
	}
	return true
}

// Lock turns the cell at p into a locked door opened by keyID and registers
// it. Walls and out-of-bounds points cannot be locked.
func (d *DoorSystem) Lock(g *Grid, p Point, keyID string) bool {
	if !g.InBounds(p.X, p.Y) || g.Cells[p.Y][p.X].Type == CellWall {
		return false
	}
	cell := NewCell(CellLockedDoor)
	cell.KeyID = keyID
	g.Cells[p.Y][p.X] = cell
	d.AddLockedDoor(p, keyID)
	return true
}

// Sync rebuilds the registry from locked-door and key cells on g.
func (d *DoorSystem) Sync(g *Grid) {
	clear(d.doors)
	clear(d.keys)
	g.ForEachCell(func(x, y int, c *Cell) {
		switch c.Type {
		case CellLockedDoor:
			d.AddLockedDoor(Point{x, y}, c.KeyID)
		case CellKey:
			d.AddKey(Point{x, y}, c.KeyID)
		}
	})
}
