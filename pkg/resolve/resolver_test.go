package resolve

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/roguetea/arkdex/internal/gametest"
	"github.com/roguetea/arkdex/pkg/gamedata"
)

func newTestResolver(t *testing.T, opts ...Option) (*Resolver, *gamedata.Cache) {
	t.Helper()
	cache := gamedata.New(gametest.WriteTables(t))
	return New(cache, opts...), cache
}

func TestOperatorResolution(t *testing.T) {
	r, _ := newTestResolver(t)

	testCases := []struct {
		query       string
		wantID      string
		description string
	}{
		{"Amiya", "char_002_amiya", "exact name"},
		{"amiya", "char_002_amiya", "case-insensitive name"},
		{"char_123_fang", "char_123_fang", "internal id"},
		{"amya", "char_002_amiya", "misspelled name"},
		{"schwartz", "char_340_shwaz", "misspelled appellation"},
		{"  Fang  ", "char_123_fang", "surrounding whitespace"},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			op, err := r.Operator(tc.query)
			if err != nil {
				t.Fatalf("Operator(%q): %v", tc.query, err)
			}
			if op.ID != tc.wantID {
				t.Errorf("Operator(%q) = %s, want %s", tc.query, op.ID, tc.wantID)
			}
		})
	}
}

func TestOperatorMissingQuery(t *testing.T) {
	r, _ := newTestResolver(t)

	for _, q := range []string{"", "   ", "\t\n"} {
		if _, err := r.Operator(q); !errors.Is(err, ErrMissingQuery) {
			t.Errorf("Operator(%q): got %v, want ErrMissingQuery", q, err)
		}
	}
}

func TestResolutionIsIdempotent(t *testing.T) {
	r, _ := newTestResolver(t)

	first, err := r.Operator("speter")
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		op, err := r.Operator("speter")
		if err != nil {
			t.Fatal(err)
		}
		if op.ID != first.ID {
			t.Fatalf("repeat query resolved %s, first run resolved %s", op.ID, first.ID)
		}
	}
}

func TestOperatorSkinsJoin(t *testing.T) {
	r, _ := newTestResolver(t)

	op, skins, err := r.OperatorSkins("amiya")
	if err != nil {
		t.Fatal(err)
	}
	if op.ID != "char_002_amiya" {
		t.Fatalf("resolved %s, want char_002_amiya", op.ID)
	}
	if len(skins) != 2 {
		t.Fatalf("got %d skins, want 2", len(skins))
	}
	for _, s := range skins {
		if s.CharID != op.PrefabKey() {
			t.Errorf("skin %s joined to %s, want %s", s.SkinID, s.CharID, op.PrefabKey())
		}
	}

	// Operators without skins yield an empty list, not an error.
	_, none, err := r.OperatorSkins("fang")
	if err != nil {
		t.Fatal(err)
	}
	if len(none) != 0 {
		t.Errorf("Fang has %d skins, want 0", len(none))
	}
}

func TestOperatorSkillsJoin(t *testing.T) {
	r, _ := newTestResolver(t)

	op, skills, err := r.OperatorSkills("amiya")
	if err != nil {
		t.Fatal(err)
	}
	if op.ID != "char_002_amiya" {
		t.Fatalf("resolved %s, want char_002_amiya", op.ID)
	}
	if len(skills) != 1 {
		t.Fatalf("got %d skills, want 1", len(skills))
	}
	sk := skills[0]
	if sk.Instance.SkillID != "skchr_amiya_1" {
		t.Errorf("instance id = %s", sk.Instance.SkillID)
	}
	if sk.Definition == nil || sk.Definition.Levels[0].Name != "Tactical Chant" {
		t.Errorf("definition not joined: %+v", sk.Definition)
	}
}

func TestItemResolution(t *testing.T) {
	r, _ := newTestResolver(t)

	item, err := r.Item("orirock")
	if err != nil {
		t.Fatal(err)
	}
	if item.ItemID != "30012" {
		t.Errorf("Item(orirock) = %s, want 30012", item.ItemID)
	}

	byID, err := r.Item("4002")
	if err != nil {
		t.Fatal(err)
	}
	if byID.Name != "Originite Prime" {
		t.Errorf("Item(4002) = %s", byID.Name)
	}
}

func TestFurnitureAndEnemyResolution(t *testing.T) {
	r, _ := newTestResolver(t)

	f, err := r.Furniture("rustic table")
	if err != nil {
		t.Fatal(err)
	}
	if f.ID != "furn_0001" {
		t.Errorf("Furniture = %s, want furn_0001", f.ID)
	}

	e, err := r.Enemy("originium slug")
	if err != nil {
		t.Fatal(err)
	}
	if e.EnemyID != "enemy_1000_gopro" {
		t.Errorf("Enemy = %s, want enemy_1000_gopro", e.EnemyID)
	}
}

func TestStageResolution(t *testing.T) {
	r, _ := newTestResolver(t)

	testCases := []struct {
		query         string
		wantID        string
		wantChallenge bool
		description   string
	}{
		{"0-1", "main_00-01", false, "code lookup"},
		{"1-7", "main_01-07", false, "code stays on the base stage"},
		{"1-7 +cm", "hard_01-07", true, "challenge directive redirects"},
		{"+cm 1-7", "hard_01-07", true, "directive position does not matter"},
		{"1-7 +foo", "main_01-07", false, "unknown directive ignored"},
		{"0-1 +cm", "main_00-01", false, "challenge request without variant falls back"},
		{"misty memory", "main_01-07", false, "name lookup"},
		{"hard_01-07", "hard_01-07", false, "challenge variant reachable by id"},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			stage, challenge, err := r.Stage(tc.query)
			if err != nil {
				t.Fatalf("Stage(%q): %v", tc.query, err)
			}
			if stage.StageID != tc.wantID {
				t.Errorf("Stage(%q) = %s, want %s", tc.query, stage.StageID, tc.wantID)
			}
			if challenge != tc.wantChallenge {
				t.Errorf("Stage(%q) challenge = %v, want %v", tc.query, challenge, tc.wantChallenge)
			}
		})
	}
}

func TestStageMissingQuery(t *testing.T) {
	r, _ := newTestResolver(t)

	// A query that is nothing but directives has no text to score.
	if _, _, err := r.Stage("+cm"); !errors.Is(err, ErrMissingQuery) {
		t.Errorf("Stage(+cm): got %v, want ErrMissingQuery", err)
	}
}

func TestTip(t *testing.T) {
	r, _ := newTestResolver(t, WithRand(rand.New(rand.NewSource(7))))

	tip, err := r.Tip("battle")
	if err != nil {
		t.Fatal(err)
	}
	if tip.Category != "BATTLE" {
		t.Errorf("Tip(battle) category = %s", tip.Category)
	}

	any, err := r.Tip("")
	if err != nil {
		t.Fatal(err)
	}
	if any.Tip == "" {
		t.Error("Tip returned an empty tip")
	}

	if _, err := r.Tip("weather"); !errors.Is(err, ErrInvalidCategory) {
		t.Errorf("Tip(weather): got %v, want ErrInvalidCategory", err)
	}
}

func TestSuggest(t *testing.T) {
	r, _ := newTestResolver(t)

	keys, err := r.Suggest("operators", "ami", 10)
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, k := range keys {
		if k == "amiya" {
			found = true
		}
	}
	if !found {
		t.Errorf("Suggest(operators, ami) = %v, want to include amiya", keys)
	}

	limited, err := r.Suggest("operators", "", 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(limited) > 2 {
		t.Errorf("Suggest limit not honored: got %d keys", len(limited))
	}

	if _, err := r.Suggest("planets", "x", 5); err == nil {
		t.Error("Suggest accepted an unknown kind")
	}
}
