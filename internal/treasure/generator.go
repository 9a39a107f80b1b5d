package treasure

import (
	"math"

	"github.com/samdwyer/dungeongen/internal/gamedata"
	"github.com/samdwyer/dungeongen/internal/rng"
)

// Kind selects one of the single-category generators used when scattering
// treasure cell by cell.
type Kind int

const (
	KindCoins Kind = iota
	KindGems
	KindItem
	KindMagical
	KindHoard
)

// KindCount is the number of per-cell kinds drawn during scattering. Hoards
// are only produced by explicit dispatch.
const KindCount = 4

// DefaultHoardBase is the hoard base value for themes that do not set one.
const DefaultHoardBase = 300

// standardWeights are used when no theme is supplied.
var standardWeights = gamedata.CategoryWeights{
	Coins: 0.4, Gems: 0.25, Valuables: 0.15, Magical: 0.1, Ingredients: 0.1,
}

// Generator draws treasure records from a set of loot tables.
type Generator struct {
	tables map[string][]gamedata.TreasureEntry
}

// NewGenerator creates a generator over the loot tables of file.
func NewGenerator(file gamedata.TreasureFile) *Generator {
	return &Generator{tables: file.Tables}
}

// Coins produces a single-denomination coin treasure. Platinum needs level 5.
func (g *Generator) Coins(level int, r rng.Source) Treasure {
	base := float64(5 * level)
	mult := 0.5 + r.Next()*2.5
	total := max(1, int(math.Floor(base*mult)))

	t := Treasure{Category: CategoryCoins}
	switch {
	case level >= 5 && r.Next() < 0.2:
		t.Coins.PP = r.NextInt(1, 1+level/5)
	case level >= 3 || r.Next() < 0.5:
		t.Coins.GP = r.NextInt(1, total)
	case level >= 1 || r.Next() < 0.7:
		t.Coins.SP = r.NextInt(1, total*2)
	default:
		t.Coins.CP = r.NextInt(5, total*5)
	}
	t.TotalValue = t.Coins.Value()
	return t
}

// Gems produces one gem entry worth at most 50 per level. Cheap gems may
// come in pairs.
func (g *Generator) Gems(level int, r rng.Source) Treasure {
	candidates := atMost(g.tables[gamedata.TableGems], 50*level)
	if len(candidates) == 0 {
		return g.Coins(level, r)
	}

	gem := pickWeighted(candidates, r)
	quantity := 1
	if gem.Value < 50 {
		quantity = r.NextInt(1, 3)
	}

	p := newPiece(gem.Name, quantity, gem.Value)
	return Treasure{Category: CategoryGems, Gems: []Piece{p}, TotalValue: p.Value}
}

// Item produces one entry from table worth at most 100 per level. Unknown
// tables fall back to valuables.
func (g *Generator) Item(level int, r rng.Source, table string) Treasure {
	entries, ok := g.tables[table]
	if !ok {
		table = gamedata.TableValuables
		entries = g.tables[table]
	}

	candidates := atMost(entries, 100*level)
	if len(candidates) == 0 {
		return g.Coins(level, r)
	}

	item := pickWeighted(candidates, r)
	p := newPiece(item.Name, 1, item.Value)
	category := CategoryValuables
	if table == gamedata.TableIngredients {
		category = CategoryIngredients
	}
	return Treasure{Category: category, Items: []Piece{p}, TotalValue: p.Value}
}

// Magical produces one magical item worth at most 150 per level. Below level
// 3 it usually yields gems instead.
func (g *Generator) Magical(level int, r rng.Source) Treasure {
	if level < 3 && r.Next() > 0.3 {
		return g.Gems(level, r)
	}

	candidates := atMost(g.tables[gamedata.TableMagical], 150*level)
	if len(candidates) == 0 {
		return g.Gems(level, r)
	}

	item := pickWeighted(candidates, r)
	p := newPiece(item.Name, 1, item.Value)
	return Treasure{Category: CategoryMagical, Magical: []Piece{p}, TotalValue: p.Value}
}

// ByKind dispatches to the generator for kind at the given level.
func (g *Generator) ByKind(kind Kind, level int, r rng.Source, theme *gamedata.ThemeDef) Treasure {
	switch kind {
	case KindGems:
		return g.Gems(level, r)
	case KindItem:
		return g.Item(level, r, gamedata.TableValuables)
	case KindMagical:
		return g.Magical(level, r)
	case KindHoard:
		return g.Hoard(0, r, theme)
	default:
		return g.Coins(level, r)
	}
}

// Generate picks a category using the theme's treasure weights and produces
// a treasure of that category. The result always carries a value.
func (g *Generator) Generate(level int, r rng.Source, theme *gamedata.ThemeDef) Treasure {
	weights := standardWeights
	if theme != nil {
		weights = theme.TreasureWeights
	}

	roll := r.Next()
	cumulative := 0.0
	category := CategoryCoins
	for _, w := range []struct {
		c Category
		w float64
	}{
		{CategoryCoins, weights.Coins},
		{CategoryGems, weights.Gems},
		{CategoryValuables, weights.Valuables},
		{CategoryMagical, weights.Magical},
		{CategoryIngredients, weights.Ingredients},
	} {
		cumulative += w.w
		if roll <= cumulative {
			category = w.c
			break
		}
	}

	var t Treasure
	switch category {
	case CategoryGems:
		t = g.Gems(level, r)
	case CategoryValuables:
		t = g.Item(level, r, gamedata.TableValuables)
	case CategoryMagical:
		t = g.Magical(level, r)
	case CategoryIngredients:
		t = g.Item(level, r, gamedata.TableIngredients)
	default:
		t = g.Coins(level, r)
	}

	if t.Value == 0 {
		t.Value = t.TotalValue
	}
	if t.TotalValue == 0 {
		t.TotalValue = t.Value
	}
	if t.Value == 0 {
		t.Value = level * 5
		t.TotalValue = t.Value
	}
	return t
}

func atMost(entries []gamedata.TreasureEntry, ceiling int) []gamedata.TreasureEntry {
	var out []gamedata.TreasureEntry
	for _, e := range entries {
		if e.Value <= ceiling {
			out = append(out, e)
		}
	}
	return out
}

// pickWeighted selects an entry with probability proportional to its rarity.
// A roll left over by rounding falls back to a uniform pick.
func pickWeighted(entries []gamedata.TreasureEntry, r rng.Source) gamedata.TreasureEntry {
	total := 0.0
	for _, e := range entries {
		total += e.Rarity
	}

	roll := r.Next() * total
	for _, e := range entries {
		roll -= e.Rarity
		if roll <= 0 {
			return e
		}
	}

	e, _ := rng.Select(r, entries)
	return e
}
