package gamedata

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownTheme is returned when a theme id is not in the registry.
var ErrUnknownTheme = errors.New("unknown theme")

// DefaultThemeID is the theme used when none is configured.
const DefaultThemeID = "standard"

// =============================================================================
// MonsterCatalog
// =============================================================================

// MonsterCatalog holds the bestiary grouped by size tier.
type MonsterCatalog struct {
	tiers [TierCount][]MonsterDef
}

// NewMonsterCatalog creates a catalog from tier-keyed monster lists.
// Unknown tier keys are rejected.
func NewMonsterCatalog(tiers map[string][]MonsterDef) (*MonsterCatalog, error) {
	catalog := &MonsterCatalog{}
	for key, monsters := range tiers {
		tier, ok := ParseTier(key)
		if !ok {
			return nil, fmt.Errorf("unknown monster tier %q", key)
		}
		catalog.tiers[tier] = monsters
	}
	return catalog, nil
}

// ParseTier converts a catalog key into a Tier.
func ParseTier(s string) (Tier, bool) {
	for i, name := range tierNames {
		if name == s {
			return Tier(i), true
		}
	}
	return 0, false
}

// LoadMonsterCatalog loads and creates a catalog from the embedded monsters.json.
func LoadMonsterCatalog() (*MonsterCatalog, error) {
	file, err := LoadMonsters()
	if err != nil {
		return nil, err
	}
	catalog, err := NewMonsterCatalog(file.Tiers)
	if err != nil {
		return nil, err
	}
	for _, tier := range Tiers() {
		if len(catalog.tiers[tier]) == 0 {
			return nil, fmt.Errorf("no %s monsters loaded from monsters.json", tier)
		}
	}
	return catalog, nil
}

// MustLoadMonsterCatalog loads a catalog, panicking on error.
func MustLoadMonsterCatalog() *MonsterCatalog {
	catalog, err := LoadMonsterCatalog()
	if err != nil {
		panic(err)
	}
	return catalog
}

// Tier returns the monsters of one size tier, in catalog order.
func (c *MonsterCatalog) Tier(t Tier) []MonsterDef {
	if t < 0 || t >= TierCount {
		return nil
	}
	return c.tiers[t]
}

// FilterByKeywords returns a catalog holding only monsters whose names contain
// one of the keywords, case-insensitively. Tiers with no match stay empty.
func (c *MonsterCatalog) FilterByKeywords(keywords []string) *MonsterCatalog {
	lowered := make([]string, len(keywords))
	for i, k := range keywords {
		lowered[i] = strings.ToLower(k)
	}

	filtered := &MonsterCatalog{}
	for t := range c.tiers {
		for _, m := range c.tiers[t] {
			name := strings.ToLower(m.Name)
			for _, k := range lowered {
				if strings.Contains(name, k) {
					filtered.tiers[t] = append(filtered.tiers[t], m)
					break
				}
			}
		}
	}
	return filtered
}

// GetByName returns the monster with the given name, or nil if not found.
func (c *MonsterCatalog) GetByName(name string) *MonsterDef {
	for t := range c.tiers {
		for i := range c.tiers[t] {
			if c.tiers[t][i].Name == name {
				return &c.tiers[t][i]
			}
		}
	}
	return nil
}

// Count returns the number of monsters across all tiers.
func (c *MonsterCatalog) Count() int {
	n := 0
	for t := range c.tiers {
		n += len(c.tiers[t])
	}
	return n
}

// =============================================================================
// ItemCatalog
// =============================================================================

// ItemCatalog holds loaded item definitions in catalog order.
type ItemCatalog struct {
	items []ItemDef
	byID  map[string]*ItemDef
}

// NewItemCatalog creates a catalog from loaded item definitions.
func NewItemCatalog(items []ItemDef) *ItemCatalog {
	catalog := &ItemCatalog{
		items: items,
		byID:  make(map[string]*ItemDef, len(items)),
	}
	for i := range items {
		catalog.byID[items[i].ID] = &items[i]
	}
	return catalog
}

// LoadItemCatalog loads and creates a catalog from the embedded items.json.
func LoadItemCatalog() (*ItemCatalog, error) {
	items, err := LoadItems()
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errors.New("no items loaded from items.json")
	}
	return NewItemCatalog(items), nil
}

// GetByID returns the item with the given string id, or nil if not found.
func (c *ItemCatalog) GetByID(id string) *ItemDef {
	return c.byID[id]
}

// All returns all item definitions.
func (c *ItemCatalog) All() []ItemDef {
	return c.items
}

// Count returns the number of items in the catalog.
func (c *ItemCatalog) Count() int {
	return len(c.items)
}

// =============================================================================
// ThemeRegistry
// =============================================================================

// ThemeRegistry holds dungeon themes keyed by id.
type ThemeRegistry struct {
	themes    map[string]*ThemeDef
	order     []string
	universal []string
}

// NewThemeRegistry creates a registry from a loaded themes file.
func NewThemeRegistry(file ThemesFile) *ThemeRegistry {
	registry := &ThemeRegistry{
		themes:    make(map[string]*ThemeDef, len(file.Themes)),
		universal: file.UniversalDecorations,
	}
	for i := range file.Themes {
		id := file.Themes[i].ID
		registry.themes[id] = &file.Themes[i]
		registry.order = append(registry.order, id)
	}
	return registry
}

// LoadThemeRegistry loads and creates a registry from the embedded themes.json.
func LoadThemeRegistry() (*ThemeRegistry, error) {
	file, err := LoadThemes()
	if err != nil {
		return nil, err
	}
	registry := NewThemeRegistry(file)
	if _, err := registry.Get(DefaultThemeID); err != nil {
		return nil, fmt.Errorf("themes.json: %w", err)
	}
	return registry, nil
}

// Get returns the theme with the given id.
func (r *ThemeRegistry) Get(id string) (*ThemeDef, error) {
	theme, ok := r.themes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, id)
	}
	return theme, nil
}

// IDs returns the theme ids in file order.
func (r *ThemeRegistry) IDs() []string {
	return r.order
}

// UniversalDecorations returns decorations shared by every theme.
func (r *ThemeRegistry) UniversalDecorations() []string {
	return r.universal
}

// =============================================================================
// DesignationRegistry
// =============================================================================

// DesignationRegistry groups room designations by type.
type DesignationRegistry struct {
	byType      map[string][]DesignationDef
	byID        map[string]*DesignationDef
	weights     []TypeWeight
	themeWeight float64
}

// NewDesignationRegistry creates a registry from a loaded designations file.
func NewDesignationRegistry(file DesignationsFile) *DesignationRegistry {
	registry := &DesignationRegistry{
		byType:      make(map[string][]DesignationDef),
		byID:        make(map[string]*DesignationDef, len(file.Designations)),
		weights:     file.TypeWeights,
		themeWeight: file.ThemeWeight,
	}
	for i, d := range file.Designations {
		registry.byType[d.Type] = append(registry.byType[d.Type], d)
		registry.byID[d.ID] = &file.Designations[i]
	}
	return registry
}

// LoadDesignationRegistry loads and creates a registry from the embedded designations.json.
func LoadDesignationRegistry() (*DesignationRegistry, error) {
	file, err := LoadDesignations()
	if err != nil {
		return nil, err
	}
	if len(file.Designations) == 0 {
		return nil, errors.New("no designations loaded from designations.json")
	}
	return NewDesignationRegistry(file), nil
}

// Get returns the designation with the given id, or nil if not found.
func (r *DesignationRegistry) Get(id string) *DesignationDef {
	return r.byID[id]
}

// ByType returns the designations of one room type.
func (r *DesignationRegistry) ByType(roomType string) []DesignationDef {
	return r.byType[roomType]
}

// TypeWeights returns the room type weights for a theme. A theme with its own
// designation type adds that type at the theme weight.
func (r *DesignationRegistry) TypeWeights(theme *ThemeDef) []TypeWeight {
	weights := make([]TypeWeight, len(r.weights), len(r.weights)+1)
	copy(weights, r.weights)
	if theme != nil && theme.DesignationType != "" && len(r.byType[theme.DesignationType]) > 0 {
		weights = append(weights, TypeWeight{Type: theme.DesignationType, Weight: r.themeWeight})
	}
	return weights
}

// =============================================================================
// Catalog
// =============================================================================

// Catalog bundles every data set generation reads.
type Catalog struct {
	Monsters     *MonsterCatalog
	Items        *ItemCatalog
	Treasure     TreasureFile
	Themes       *ThemeRegistry
	Designations *DesignationRegistry
}

// LoadCatalog loads every embedded data set.
func LoadCatalog() (*Catalog, error) {
	monsters, err := LoadMonsterCatalog()
	if err != nil {
		return nil, err
	}
	items, err := LoadItemCatalog()
	if err != nil {
		return nil, err
	}
	treasure, err := LoadTreasure()
	if err != nil {
		return nil, err
	}
	themes, err := LoadThemeRegistry()
	if err != nil {
		return nil, err
	}
	designations, err := LoadDesignationRegistry()
	if err != nil {
		return nil, err
	}
	return &Catalog{
		Monsters:     monsters,
		Items:        items,
		Treasure:     treasure,
		Themes:       themes,
		Designations: designations,
	}, nil
}

// MustLoadCatalog loads every embedded data set, panicking on error.
func MustLoadCatalog() *Catalog {
	catalog, err := LoadCatalog()
	if err != nil {
		panic(err)
	}
	return catalog
}
