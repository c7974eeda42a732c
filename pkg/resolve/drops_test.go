package resolve

import (
	"errors"
	"testing"

	"github.com/roguetea/arkdex/pkg/gamedata"
)

func TestStagesWithItem(t *testing.T) {
	r, _ := newTestResolver(t)

	drops, err := r.StagesWithItem("30012")
	if err != nil {
		t.Fatal(err)
	}
	// Ascending stage-key order: hard_01-07, main_00-01, main_01-07.
	wantIDs := []string{"hard_01-07", "main_00-01", "main_01-07"}
	if len(drops) != len(wantIDs) {
		t.Fatalf("got %d drops, want %d", len(drops), len(wantIDs))
	}
	for i, want := range wantIDs {
		if drops[i].Stage.StageID != want {
			t.Errorf("drops[%d] = %s, want %s", i, drops[i].Stage.StageID, want)
		}
	}
	if drops[1].DropType != gamedata.DropUncommon {
		t.Errorf("main_00-01 drop type = %d, want %d", drops[1].DropType, gamedata.DropUncommon)
	}
}

func TestStagesWithItemMissingID(t *testing.T) {
	r, _ := newTestResolver(t)

	if _, err := r.StagesWithItem("  "); !errors.Is(err, ErrMissingQuery) {
		t.Errorf("got %v, want ErrMissingQuery", err)
	}
}

func TestStagesWithItemUnknownID(t *testing.T) {
	r, _ := newTestResolver(t)

	drops, err := r.StagesWithItem("999999")
	if err != nil {
		t.Fatal(err)
	}
	if len(drops) != 0 {
		t.Errorf("unknown item dropped in %d stages, want 0", len(drops))
	}
}

func TestFarmableStagesExcludesChanceDrops(t *testing.T) {
	r, _ := newTestResolver(t)

	// Pure Gold only appears as a chance drop of 1-7.
	all, err := r.StagesWithItem("3003")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 1 || all[0].DropType != gamedata.DropChance {
		t.Fatalf("fixture drift: %+v", all)
	}

	farmable, err := r.FarmableStages("3003")
	if err != nil {
		t.Fatal(err)
	}
	if len(farmable) != 0 {
		t.Errorf("chance-only item reported %d farmable stages, want 0", len(farmable))
	}

	cubes, err := r.FarmableStages("30012")
	if err != nil {
		t.Fatal(err)
	}
	if len(cubes) != 3 {
		t.Errorf("got %d farmable stages for 30012, want 3", len(cubes))
	}
}
