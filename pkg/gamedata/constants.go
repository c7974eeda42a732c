package gamedata

import "strings"

// Drop type codes used by RewardDisplay.DropType.
const (
	DropFirstClear    = 1
	DropFixedOrRare   = 2
	DropUncommon      = 3
	DropChance        = 4
	DropFirstClearOri = 8
)

// professionNames translates the enum-like profession codes of
// character_table.json to the class names shown in game.
var professionNames = map[string]string{
	"CASTER":  "Caster",
	"TANK":    "Defender",
	"WARRIOR": "Guard",
	"MEDIC":   "Medic",
	"SNIPER":  "Sniper",
	"SPECIAL": "Specialist",
	"SUPPORT": "Supporter",
	"TOKEN":   "Token",
	"TRAP":    "Trap",
	"PIONEER": "Vanguard",
}

// ProfessionName returns the in-game class name for a profession code.
// Unknown codes fall back to the code itself.
func ProfessionName(code string) string {
	if name, ok := professionNames[code]; ok {
		return name
	}
	return code
}

// DropTypeLabel returns the human label for a drop type code. Items above
// rarity 1 promote the fixed label of code 2 to "Rare", matching the way the
// game presents material drops.
func DropTypeLabel(dropType, itemRarity int) string {
	switch dropType {
	case DropFirstClear, DropFirstClearOri:
		return "First Clear"
	case DropFixedOrRare:
		if itemRarity > 1 {
			return "Rare"
		}
		return "Fixed"
	case DropUncommon:
		return "Uncommon"
	case DropChance:
		return "Chance Drop"
	}
	return "Unknown"
}

// RecruitTags is the fixed allowlist of tags selectable on the recruitment
// screen. Queries are validated against it case-insensitively.
var RecruitTags = []string{
	"Starter",
	"Senior Operator",
	"Top Operator",
	"Melee",
	"Ranged",
	"Guard",
	"Medic",
	"Vanguard",
	"Caster",
	"Sniper",
	"Defender",
	"Supporter",
	"Specialist",
	"Healing",
	"Support",
	"DPS",
	"AoE",
	"Slow",
	"Survival",
	"Defense",
	"Debuff",
	"Shift",
	"Crowd Control",
	"Nuker",
	"Summon",
	"Fast-Redeploy",
	"DP-Recovery",
	"Robot",
}

// IsRecruitTag reports whether tag is in the allowlist, ignoring case.
func IsRecruitTag(tag string) bool {
	_, ok := CanonicalRecruitTag(tag)
	return ok
}

// CanonicalRecruitTag returns the allowlist spelling of a tag, matching
// case-insensitively.
func CanonicalRecruitTag(tag string) (string, bool) {
	for _, t := range RecruitTags {
		if strings.EqualFold(t, tag) {
			return t, true
		}
	}
	return "", false
}

// TipCategories is the closed set of tip categories in tip_table.json.
var TipCategories = []string{"BATTLE", "BUILDING", "GACHA", "MISC"}

// IsTipCategory reports whether category names a known tip category,
// ignoring case.
func IsTipCategory(category string) bool {
	for _, c := range TipCategories {
		if strings.EqualFold(c, category) {
			return true
		}
	}
	return false
}

// unlockStateLabels maps UnlockCondition.CompleteState codes to short labels.
var unlockStateLabels = map[int]string{
	1: "Play",
	2: "Clear",
	3: "Full Clear",
}

// UnlockStateLabel returns a short label for an unlock completion state.
func UnlockStateLabel(state int) string {
	if label, ok := unlockStateLabels[state]; ok {
		return label
	}
	return "Clear"
}
