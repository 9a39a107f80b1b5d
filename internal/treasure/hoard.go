package treasure

import (
	"math"

	"github.com/samdwyer/dungeongen/internal/gamedata"
	"github.com/samdwyer/dungeongen/internal/rng"
)

const hoardGemAttempts = 3

// Hoard produces a multi-category bundle. A base of zero or less takes the
// theme's hoard base. The target value is split into coin, gem, valuable and
// magical shares which are filled greedily, so TotalValue is the sum of what
// was actually placed and may fall short of the target.
func (g *Generator) Hoard(base float64, r rng.Source, theme *gamedata.ThemeDef) Treasure {
	if base <= 0 {
		base = DefaultHoardBase
		if theme != nil && theme.HoardBase > 0 {
			base = float64(theme.HoardBase)
		}
	}

	total := math.Floor(base * (0.5 + r.Next()*2.0))

	coinRatio := 0.4 + r.Next()*0.2
	gemRatio := 0.1 + r.Next()*0.2
	valuableRatio := 0.1 + r.Next()*0.15
	magicalRatio := 1 - coinRatio - gemRatio - valuableRatio

	t := Treasure{Category: CategoryHoard}
	t.Coins = hoardCoins(int(math.Floor(total*coinRatio)), r)
	t.Gems = g.hoardGems(int(math.Floor(total*gemRatio)), r)
	t.Valuables = g.hoardValuables(int(math.Floor(total*valuableRatio)), r)
	t.Magical = g.hoardMagical(int(math.Floor(total*magicalRatio)), r)

	t.TotalValue = t.Coins.Value()
	for _, group := range [][]Piece{t.Gems, t.Valuables, t.Magical} {
		for _, p := range group {
			t.TotalValue += p.Value
		}
	}
	return t
}

// hoardCoins fills value from the largest denomination down.
func hoardCoins(value int, r rng.Source) Coins {
	var c Coins
	if value <= 0 {
		return c
	}

	remaining := value
	if remaining >= PlatinumValue && r.Next() < 0.5 {
		c.PP = min(remaining/PlatinumValue, r.NextInt(1, 10))
		remaining -= c.PP * PlatinumValue
	}
	if remaining >= GoldValue {
		c.GP = min(remaining/GoldValue, r.NextInt(1, 50))
		remaining -= c.GP * GoldValue
	}
	if remaining >= SilverValue {
		c.SP = min(remaining/SilverValue, r.NextInt(1, 100))
		remaining -= c.SP * SilverValue
	}
	if remaining > 0 {
		c.CP = min(remaining, r.NextInt(1, 200))
	}
	return c
}

func (g *Generator) hoardGems(value int, r rng.Source) []Piece {
	if value <= 10 {
		return nil
	}

	available := shuffled(g.tables[gamedata.TableGems], r)
	var gems []Piece
	remaining := value
	for attempts := hoardGemAttempts; remaining > 0 && attempts > 0 && len(available) > 0; attempts-- {
		affordable := atMost(available, remaining)
		if len(affordable) == 0 {
			continue
		}

		gem, _ := rng.Select(r, affordable)
		amount := max(1, r.NextInt(1, min(5, remaining/gem.Value)))
		gems = append(gems, newPiece(gem.Name, amount, gem.Value))
		remaining -= amount * gem.Value
	}
	return gems
}

func (g *Generator) hoardValuables(value int, r rng.Source) []Piece {
	if value <= 20 {
		return nil
	}

	available := shuffled(atMost(g.tables[gamedata.TableValuables], value), r)
	first, ok := rng.Select(r, available)
	if !ok {
		return nil
	}
	valuables := []Piece{newPiece(first.Name, 1, first.Value)}

	remaining := value - first.Value
	if remaining > 20 {
		if second, ok := rng.Select(r, atMost(available, remaining)); ok {
			valuables = append(valuables, newPiece(second.Name, 1, second.Value))
		}
	}
	return valuables
}

func (g *Generator) hoardMagical(value int, r rng.Source) []Piece {
	if value <= 50 || r.Next() >= 0.3 {
		return nil
	}

	available := shuffled(atMost(g.tables[gamedata.TableMagical], value), r)
	item, ok := rng.Select(r, available)
	if !ok {
		return nil
	}
	return []Piece{newPiece(item.Name, 1, item.Value)}
}

func shuffled(entries []gamedata.TreasureEntry, r rng.Source) []gamedata.TreasureEntry {
	out := make([]gamedata.TreasureEntry, len(entries))
	copy(out, entries)
	rng.Shuffle(r, out)
	return out
}
