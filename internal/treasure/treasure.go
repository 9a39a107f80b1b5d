// Package treasure generates value-bearing loot records, places them in
// dungeon rooms, and adds traps and treasure vaults to a grid.
package treasure

import (
	"fmt"
	"strings"
)

// Category tags the kind of content a Treasure record holds.
type Category int

const (
	CategoryCoins Category = iota
	CategoryGems
	CategoryValuables
	CategoryMagical
	CategoryIngredients
	CategoryHoard
)

var categoryNames = [...]string{"coins", "gems", "valuables", "magical", "ingredients", "hoard"}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// Denomination values in copper pieces.
const (
	CopperValue   = 1
	SilverValue   = 10
	GoldValue     = 100
	PlatinumValue = 1000
)

// Coins counts pieces of each denomination.
type Coins struct {
	PP int
	GP int
	SP int
	CP int
}

// Value returns the coins' worth in copper.
func (c Coins) Value() int {
	return c.PP*PlatinumValue + c.GP*GoldValue + c.SP*SilverValue + c.CP*CopperValue
}

// Empty reports whether no denomination holds any coins.
func (c Coins) Empty() bool {
	return c.PP == 0 && c.GP == 0 && c.SP == 0 && c.CP == 0
}

// Piece is a counted loot table entry such as a gem or a valuable.
type Piece struct {
	Name      string
	Quantity  int
	ValueEach int
	Value     int
}

func newPiece(name string, quantity, valueEach int) Piece {
	return Piece{Name: name, Quantity: quantity, ValueEach: valueEach, Value: quantity * valueEach}
}

// Treasure is one loot record. Which content fields are set depends on
// Category; a hoard may fill all of them. Value and TotalValue are equal
// once the record has passed through Sanitize.
type Treasure struct {
	Category   Category
	Coins      Coins
	Gems       []Piece
	Items      []Piece
	Valuables  []Piece
	Magical    []Piece
	Value      int
	TotalValue int
}

// Clone returns a deep copy of t.
func (t Treasure) Clone() Treasure {
	c := t
	c.Gems = clonePieces(t.Gems)
	c.Items = clonePieces(t.Items)
	c.Valuables = clonePieces(t.Valuables)
	c.Magical = clonePieces(t.Magical)
	return c
}

func clonePieces(p []Piece) []Piece {
	if p == nil {
		return nil
	}
	out := make([]Piece, len(p))
	copy(out, p)
	return out
}

// HasContent reports whether the record holds any coins or pieces.
func (t Treasure) HasContent() bool {
	return !t.Coins.Empty() || len(t.Gems) > 0 || len(t.Items) > 0 ||
		len(t.Valuables) > 0 || len(t.Magical) > 0
}

// worth returns the record's canonical value, preferring TotalValue.
func (t Treasure) worth() int {
	if t.TotalValue != 0 {
		return t.TotalValue
	}
	return t.Value
}

// DisplayName labels a treasure by how much it is worth.
func (t Treasure) DisplayName() string {
	value := t.worth()
	switch {
	case value > 1000:
		return "Treasure Chest"
	case value > 500:
		return "Valuable Treasure"
	case value > 200:
		return "Treasure Pile"
	case value > 50:
		return "Small Cache"
	default:
		return "Meager Findings"
	}
}

// TotalValueGP formats the value for display.
func (t Treasure) TotalValueGP() string {
	return fmt.Sprintf("%d gp", t.worth())
}

// Contents lists the record's coins and pieces as human-readable lines.
func (t Treasure) Contents() []string {
	var lines []string
	for _, d := range []struct {
		n    int
		name string
	}{
		{t.Coins.PP, "Platinum Pieces"},
		{t.Coins.GP, "Gold Pieces"},
		{t.Coins.SP, "Silver Pieces"},
		{t.Coins.CP, "Copper Pieces"},
	} {
		if d.n > 0 {
			lines = append(lines, fmt.Sprintf("%d %s", d.n, d.name))
		}
	}
	for _, group := range [][]Piece{t.Gems, t.Items, t.Valuables, t.Magical} {
		for _, p := range group {
			if p.Quantity > 1 {
				lines = append(lines, fmt.Sprintf("%d x %s", p.Quantity, p.Name))
			} else {
				lines = append(lines, p.Name)
			}
		}
	}
	return lines
}

// String summarizes the treasure on one line.
func (t Treasure) String() string {
	return fmt.Sprintf("%s (%s): %s", t.DisplayName(), t.TotalValueGP(), strings.Join(t.Contents(), ", "))
}
