package population

import (
	"strings"

	"github.com/samdwyer/dungeongen/internal/gamedata"
)

// Monster IDs span [0, MaxMonsterID) in 100-wide bands, one per tier.
const (
	TierBand     = 100
	MaxMonsterID = TierBand * gamedata.TierCount
)

// Item IDs produced for item treasure fall in [ItemIDBase, ItemIDBase+1000).
const ItemIDBase = 1000

// TierForID returns the size tier encoded in a monster ID.
func TierForID(id int) (gamedata.Tier, bool) {
	if id < 0 || id >= MaxMonsterID {
		return 0, false
	}
	return gamedata.Tier(id / TierBand), true
}

// MonsterResolver maps monster IDs onto a bestiary, optionally narrowed to a
// theme's keywords.
type MonsterResolver struct {
	all    *gamedata.MonsterCatalog
	themed *gamedata.MonsterCatalog
}

// NewMonsterResolver creates a resolver over catalog. A theme with monster
// keywords restricts resolution to matching names.
func NewMonsterResolver(catalog *gamedata.MonsterCatalog, theme *gamedata.ThemeDef) *MonsterResolver {
	res := &MonsterResolver{all: catalog, themed: catalog}
	if theme != nil && len(theme.MonsterKeywords) > 0 {
		res.themed = catalog.FilterByKeywords(theme.MonsterKeywords)
	}
	return res
}

// Resolve returns the monster for id. The offset within the tier band indexes
// the tier's list modulo its length. When the theme leaves a tier empty, the
// first monster of the unfiltered tier stands in.
func (m *MonsterResolver) Resolve(id int) (*gamedata.MonsterDef, bool) {
	tier, ok := TierForID(id)
	if !ok {
		return nil, false
	}

	list := m.themed.Tier(tier)
	if len(list) == 0 {
		list = m.all.Tier(tier)
		if len(list) == 0 {
			return nil, false
		}
		return &list[0], true
	}
	return &list[(id-int(tier)*TierBand)%len(list)], true
}

// ItemResolver substitutes catalog items for numeric item IDs.
type ItemResolver struct {
	items  []gamedata.ItemDef
	themed []gamedata.ItemDef
}

// NewItemResolver creates a resolver over catalog, preferring the theme's
// item filter when it matches anything.
func NewItemResolver(catalog *gamedata.ItemCatalog, theme *gamedata.ThemeDef) *ItemResolver {
	res := &ItemResolver{items: catalog.All()}
	if theme != nil && theme.ItemFilter != nil {
		res.themed = filterItems(res.items, theme.ItemFilter)
	}
	return res
}

func filterItems(items []gamedata.ItemDef, f *gamedata.ItemFilterDef) []gamedata.ItemDef {
	desc := strings.ToLower(f.DescriptionKeyword)
	var out []gamedata.ItemDef
	for _, item := range items {
		switch {
		case containsString(f.IDs, item.ID),
			desc != "" && strings.Contains(strings.ToLower(item.Description), desc),
			f.CategoryKeyword != "" && strings.Contains(item.Category, f.CategoryKeyword):
			out = append(out, item)
		}
	}
	return out
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// Resolve returns the item for itemID, or nil when the catalog is empty.
func (r *ItemResolver) Resolve(itemID int) *gamedata.ItemDef {
	if len(r.themed) > 0 {
		return &r.themed[mod(itemID, len(r.themed))]
	}
	if len(r.items) == 0 {
		return nil
	}
	return &r.items[mod(itemID-ItemIDBase, len(r.items))]
}

func mod(a, n int) int {
	return ((a % n) + n) % n
}
