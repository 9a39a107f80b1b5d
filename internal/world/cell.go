// Package world provides the dungeon grid model and map utilities.
package world

import "fmt"

// CellType identifies what occupies a grid cell.
type CellType int

const (
	CellWall CellType = iota
	CellRoom
	CellCorridor
	CellDoor
	CellLockedDoor
	CellSecret
	CellSecretDoor
	CellWater
	CellPillar
	CellTreasure
	CellMonster
	CellKey
	CellTomb
	CellAltar
	CellPortal
	CellVoid
	CellCrypt
	CellDarkRoom
	CellDarkCorridor
	CellCryptCorridor
	CellStairsUp
	CellStairsDown
	CellEntrance
	CellExit
	CellLava
	CellAcid
	CellVault
)

var cellTypeNames = [...]string{
	CellWall:          "wall",
	CellRoom:          "room",
	CellCorridor:      "corridor",
	CellDoor:          "door",
	CellLockedDoor:    "locked-door",
	CellSecret:        "secret",
	CellSecretDoor:    "secret-door",
	CellWater:         "water",
	CellPillar:        "pillar",
	CellTreasure:      "treasure",
	CellMonster:       "monster",
	CellKey:           "key",
	CellTomb:          "tomb",
	CellAltar:         "altar",
	CellPortal:        "portal",
	CellVoid:          "void",
	CellCrypt:         "crypt",
	CellDarkRoom:      "dark-room",
	CellDarkCorridor:  "dark-corridor",
	CellCryptCorridor: "crypt-corridor",
	CellStairsUp:      "stairs-up",
	CellStairsDown:    "stairs-down",
	CellEntrance:      "entrance",
	CellExit:          "exit",
	CellLava:          "lava",
	CellAcid:          "acid",
	CellVault:         "vault",
}

var cellTypeRunes = [...]rune{
	CellWall:          '#',
	CellRoom:          '.',
	CellCorridor:      ',',
	CellDoor:          '+',
	CellLockedDoor:    'L',
	CellSecret:        's',
	CellSecretDoor:    'S',
	CellWater:         '~',
	CellPillar:        'O',
	CellTreasure:      '$',
	CellMonster:       'M',
	CellKey:           'k',
	CellTomb:          't',
	CellAltar:         '_',
	CellPortal:        '*',
	CellVoid:          ' ',
	CellCrypt:         'c',
	CellDarkRoom:      ':',
	CellDarkCorridor:  ';',
	CellCryptCorridor: '-',
	CellStairsUp:      '<',
	CellStairsDown:    '>',
	CellEntrance:      'E',
	CellExit:          'X',
	CellLava:          '^',
	CellAcid:          '%',
	CellVault:         'V',
}

// String returns the cell type's canonical name.
func (t CellType) String() string {
	if t < 0 || int(t) >= len(cellTypeNames) {
		return fmt.Sprintf("CellType(%d)", int(t))
	}
	return cellTypeNames[t]
}

// Rune returns the cell type's display character.
func (t CellType) Rune() rune {
	if t < 0 || int(t) >= len(cellTypeRunes) {
		return '?'
	}
	return cellTypeRunes[t]
}

// ParseCellType converts a canonical name back into a CellType.
func ParseCellType(name string) (CellType, error) {
	for i, n := range cellTypeNames {
		if n == name {
			return CellType(i), nil
		}
	}
	return CellWall, fmt.Errorf("unknown cell type %q", name)
}

// Blocking reports whether cells of this type are impassable by default.
func (t CellType) Blocking() bool {
	switch t {
	case CellWall, CellPillar, CellWater, CellLockedDoor, CellLava, CellAcid, CellVoid:
		return true
	default:
		return false
	}
}

// IsFloor reports whether the type is open room or corridor floor.
func (t CellType) IsFloor() bool {
	return t == CellRoom || t == CellCorridor
}

// Trap is a hazard attached to a cell or a room.
type Trap struct {
	Name        string
	Danger      string
	Description string
	DetectionDC int
	DisarmDC    int
	Discovered  bool
	Triggered   bool
}

// Cell is one grid unit.
type Cell struct {
	Type       CellType
	Blocked    bool
	Trap       *Trap
	Feature    string
	RoomID     int // 1-based; 0 when unassigned
	MonsterID  int // valid when Type is CellMonster
	KeyID      string
	Discovered bool
}

// NewCell returns a cell of type t with Blocked derived from the type.
func NewCell(t CellType) Cell {
	return Cell{Type: t, Blocked: t.Blocking()}
}

func (c Cell) clone() Cell {
	if c.Trap != nil {
		trap := *c.Trap
		c.Trap = &trap
	}
	return c
}
