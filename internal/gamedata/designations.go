package gamedata

// DesignationDef defines a thematic room role.
type DesignationDef struct {
	ID               string   `json:"id"`
	Type             string   `json:"type"`
	Features         []string `json:"features"`
	Traps            bool     `json:"traps"`
	DecorationChance float64  `json:"decorationChance"`
	LootTable        string   `json:"lootTable"`
}

// TypeWeight is the relative chance of a designation type.
type TypeWeight struct {
	Type   string  `json:"type"`
	Weight float64 `json:"weight"`
}

// DesignationsFile represents the structure of designations.json.
type DesignationsFile struct {
	Designations []DesignationDef `json:"designations"`
	TypeWeights  []TypeWeight     `json:"typeWeights"`
	ThemeWeight  float64          `json:"themeWeight"`
}

// LoadDesignations loads room designations from the embedded designations.json file.
func LoadDesignations() (DesignationsFile, error) {
	return Load[DesignationsFile]("designations.json")
}
