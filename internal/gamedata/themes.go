package gamedata

// CategoryWeights are the relative chances of each treasure category.
type CategoryWeights struct {
	Coins       float64 `json:"coins"`
	Gems        float64 `json:"gems"`
	Valuables   float64 `json:"valuables"`
	Magical     float64 `json:"magical"`
	Ingredients float64 `json:"ingredients"`
}

// ItemFilterDef selects the items a themed dungeon prefers.
type ItemFilterDef struct {
	IDs                []string `json:"ids"`
	DescriptionKeyword string   `json:"descriptionKeyword"`
	CategoryKeyword    string   `json:"categoryKeyword"`
}

// ThemeDef defines a dungeon theme loaded from JSON.
type ThemeDef struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	DesignationType string            `json:"designationType"`
	Colors          map[string]string `json:"colors"`
	Decorations     []string          `json:"decorations"`
	RoomDecorations []string          `json:"roomDecorations"`
	MonsterKeywords []string          `json:"monsterKeywords"`
	ItemFilter      *ItemFilterDef    `json:"itemFilter"`
	TreasureWeights CategoryWeights   `json:"treasureWeights"`
	HoardBase       int               `json:"hoardBase"`
}

// ThemesFile represents the structure of themes.json.
type ThemesFile struct {
	Themes               []ThemeDef `json:"themes"`
	UniversalDecorations []string   `json:"universalDecorations"`
}

// LoadThemes loads theme definitions from the embedded themes.json file.
func LoadThemes() (ThemesFile, error) {
	return Load[ThemesFile]("themes.json")
}
