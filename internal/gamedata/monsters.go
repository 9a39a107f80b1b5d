package gamedata

import "fmt"

// Tier is a monster size band. Monster IDs are partitioned into 100-wide
// bands, one per tier, in this order.
type Tier int

const (
	TierTiny Tier = iota
	TierSmall
	TierMedium
	TierLarge
	TierHuge
)

// TierCount is the number of size tiers.
const TierCount = 5

var tierNames = [TierCount]string{"tiny", "small", "medium", "large", "huge"}

// String returns the tier's catalog key.
func (t Tier) String() string {
	if t < 0 || t >= TierCount {
		return fmt.Sprintf("Tier(%d)", int(t))
	}
	return tierNames[t]
}

// Tiers lists every tier from smallest to largest.
func Tiers() []Tier {
	return []Tier{TierTiny, TierSmall, TierMedium, TierLarge, TierHuge}
}

// AbilityScores are the six standard ability scores.
type AbilityScores struct {
	Str int `json:"str"`
	Dex int `json:"dex"`
	Con int `json:"con"`
	Int int `json:"int"`
	Wis int `json:"wis"`
	Cha int `json:"cha"`
}

// AttackDef is one attack in a stat block.
type AttackDef struct {
	Name       string `json:"name"`
	ToHit      int    `json:"toHit"`
	Damage     string `json:"damage"`
	DamageType string `json:"damageType"`
}

// MonsterDef defines a bestiary entry loaded from JSON.
type MonsterDef struct {
	Name            string         `json:"name"`
	Type            string         `json:"type"`
	Size            string         `json:"size"`
	ChallengeRating float64        `json:"challengeRating"`
	HitPoints       int            `json:"hitPoints"`
	ArmorClass      int            `json:"armorClass"`
	Speed           map[string]int `json:"speed"`
	Abilities       AbilityScores  `json:"abilities"`
	Attacks         []AttackDef    `json:"attacks"`
	TokenSize       int            `json:"tokenSize"`
}

// MonstersFile represents the structure of monsters.json.
type MonstersFile struct {
	Tiers map[string][]MonsterDef `json:"tiers"`
}

// LoadMonsters loads the tiered bestiary from the embedded monsters.json file.
func LoadMonsters() (MonstersFile, error) {
	return Load[MonstersFile]("monsters.json")
}
