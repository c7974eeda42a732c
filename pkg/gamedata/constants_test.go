package gamedata

import "testing"

func TestProfessionName(t *testing.T) {
	testCases := []struct {
		code string
		want string
	}{
		{"CASTER", "Caster"},
		{"TANK", "Defender"},
		{"WARRIOR", "Guard"},
		{"SPECIAL", "Specialist"},
		{"SUPPORT", "Supporter"},
		{"PIONEER", "Vanguard"},
		{"SOMETHING_NEW", "SOMETHING_NEW"},
	}
	for _, tc := range testCases {
		if got := ProfessionName(tc.code); got != tc.want {
			t.Errorf("ProfessionName(%q) = %q, want %q", tc.code, got, tc.want)
		}
	}
}

func TestDropTypeLabel(t *testing.T) {
	testCases := []struct {
		dropType    int
		itemRarity  int
		want        string
		description string
	}{
		{DropFirstClear, 0, "First Clear", "first clear"},
		{DropFirstClearOri, 4, "First Clear", "first clear prime currency"},
		{DropFixedOrRare, 1, "Fixed", "fixed drop for common item"},
		{DropFixedOrRare, 2, "Rare", "code 2 promotes to rare above rarity 1"},
		{DropUncommon, 0, "Uncommon", "uncommon"},
		{DropChance, 0, "Chance Drop", "chance"},
		{42, 0, "Unknown", "unknown code"},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			if got := DropTypeLabel(tc.dropType, tc.itemRarity); got != tc.want {
				t.Errorf("DropTypeLabel(%d, %d) = %q, want %q", tc.dropType, tc.itemRarity, got, tc.want)
			}
		})
	}
}

func TestCanonicalRecruitTag(t *testing.T) {
	got, ok := CanonicalRecruitTag("top operator")
	if !ok || got != "Top Operator" {
		t.Errorf("CanonicalRecruitTag(top operator) = %q, %v", got, ok)
	}
	if _, ok := CanonicalRecruitTag("archer"); ok {
		t.Error("CanonicalRecruitTag(archer) accepted an unknown tag")
	}
	if !IsRecruitTag("DP-RECOVERY") {
		t.Error("IsRecruitTag is not case-insensitive")
	}
}

func TestTipCategories(t *testing.T) {
	if !IsTipCategory("battle") || !IsTipCategory("MISC") {
		t.Error("known categories rejected")
	}
	if IsTipCategory("weather") {
		t.Error("unknown category accepted")
	}
}

func TestUnlockStateLabel(t *testing.T) {
	if got := UnlockStateLabel(2); got != "Clear" {
		t.Errorf("UnlockStateLabel(2) = %q", got)
	}
	if got := UnlockStateLabel(99); got != "Clear" {
		t.Errorf("UnlockStateLabel(99) = %q, want the Clear fallback", got)
	}
}
