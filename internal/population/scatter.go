// Package population places monsters and treasure on a finished grid.
package population

import (
	"github.com/samdwyer/dungeongen/internal/gamedata"
	"github.com/samdwyer/dungeongen/internal/rng"
	"github.com/samdwyer/dungeongen/internal/treasure"
	"github.com/samdwyer/dungeongen/internal/world"
)

// Per-cell probabilities at density 1.
const (
	MonsterCellChance  = 0.03
	TreasureCellChance = 0.05
)

// tierCutoffs is the cumulative size distribution: 20% tiny, 20% small,
// 30% medium, 20% large, 10% huge.
var tierCutoffs = [gamedata.TierCount - 1]float64{0.2, 0.4, 0.7, 0.9}

// MonsterPlacement is a resolved monster at a grid position.
type MonsterPlacement struct {
	Pos     world.Point
	ID      int
	Monster *gamedata.MonsterDef
}

// TreasurePlacement is a sanitized treasure at a grid position. Item is set
// for item treasure that was matched to a catalog item.
type TreasurePlacement struct {
	Pos      world.Point
	Treasure treasure.Treasure
	Item     *gamedata.ItemDef
}

// RandomMonsterID draws a tier from the size distribution and an offset
// within its band.
func RandomMonsterID(r rng.Source) int {
	die := r.Next()
	tier := len(tierCutoffs)
	for i, cut := range tierCutoffs {
		if die < cut {
			tier = i
			break
		}
	}
	return tier*TierBand + rng.Intn(r, TierBand)
}

func scatterable(t world.CellType) bool {
	return t == world.CellRoom || t == world.CellCorridor
}

// ScatterMonsters runs a Bernoulli trial with probability p on every interior
// room and corridor cell. Successful cells become monster cells.
func ScatterMonsters(g *world.Grid, r rng.Source, p float64, monsters *MonsterResolver) (*world.Grid, []MonsterPlacement) {
	out := g.Clone()
	var placed []MonsterPlacement
	for y := 1; y < out.Height-1; y++ {
		for x := 1; x < out.Width-1; x++ {
			if !scatterable(out.Type(x, y)) || r.Next() >= p {
				continue
			}
			id := RandomMonsterID(r)
			monster, _ := monsters.Resolve(id)

			cell := world.NewCell(world.CellMonster)
			cell.MonsterID = id
			out.SetCell(x, y, cell)
			placed = append(placed, MonsterPlacement{Pos: world.Point{X: x, Y: y}, ID: id, Monster: monster})
		}
	}
	return out, placed
}

// TreasureScatter configures ScatterTreasure.
type TreasureScatter struct {
	Probability float64
	Level       int
	Generator   *treasure.Generator
	Items       *ItemResolver
	Theme       *gamedata.ThemeDef
}

// ScatterTreasure runs a Bernoulli trial on every interior room and corridor
// cell; monster cells are no longer eligible. Each success draws one of the
// four single-category kinds. A result without any value is regenerated by
// explicit dispatch, and every record is sanitized.
func ScatterTreasure(g *world.Grid, r rng.Source, opts TreasureScatter) (*world.Grid, []TreasurePlacement) {
	out := g.Clone()
	level := max(opts.Level, 1)
	var placed []TreasurePlacement
	for y := 1; y < out.Height-1; y++ {
		for x := 1; x < out.Width-1; x++ {
			if !scatterable(out.Type(x, y)) || r.Next() >= opts.Probability {
				continue
			}

			kind := treasure.Kind(rng.Intn(r, treasure.KindCount))
			t := opts.Generator.ByKind(kind, level, r, opts.Theme)
			if t.Value == 0 && t.TotalValue == 0 {
				kind, _ = rng.Select(r, []treasure.Kind{
					treasure.KindCoins, treasure.KindGems, treasure.KindItem, treasure.KindMagical, treasure.KindHoard,
				})
				t = opts.Generator.ByKind(kind, level, r, opts.Theme)
			}
			t = treasure.Sanitize(&t, level)

			tp := TreasurePlacement{Pos: world.Point{X: x, Y: y}, Treasure: t}
			if kind == treasure.KindItem && opts.Items != nil {
				tp.Item = opts.Items.Resolve(r.NextInt(ItemIDBase, ItemIDBase+1000))
			}

			out.Set(x, y, world.CellTreasure)
			placed = append(placed, tp)
		}
	}
	return out, placed
}
