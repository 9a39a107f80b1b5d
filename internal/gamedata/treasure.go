package gamedata

// TreasureEntry is one row of a loot table. Rarity is a relative weight.
type TreasureEntry struct {
	Name   string  `json:"name"`
	Value  int     `json:"value"`
	Rarity float64 `json:"rarity"`
}

// TrapDef defines a trap type.
type TrapDef struct {
	Name        string `json:"name"`
	Danger      string `json:"danger"`
	Description string `json:"description"`
	DetectionDC int    `json:"detectionDC"`
	DisarmDC    int    `json:"disarmDC"`
}

// Loot table names used by the treasure generator.
const (
	TableCoins       = "coins"
	TableGems        = "gems"
	TableValuables   = "valuables"
	TableMagical     = "magical"
	TableIngredients = "ingredients"
	TableLegendary   = "legendary"
	TableFood        = "food"
	TableCrafting    = "crafting"
)

// TreasureFile represents the structure of treasure.json.
type TreasureFile struct {
	Tables map[string][]TreasureEntry `json:"tables"`
	Traps  []TrapDef                  `json:"traps"`
}

// LoadTreasure loads loot tables and trap types from the embedded treasure.json file.
func LoadTreasure() (TreasureFile, error) {
	return Load[TreasureFile]("treasure.json")
}
