package gamedata

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"

	"github.com/roguetea/arkdex/internal/gametest"
)

func TestTablesLoadOnce(t *testing.T) {
	cache := New(gametest.WriteTables(t))

	for i := 0; i < 3; i++ {
		if _, err := cache.Operators(); err != nil {
			t.Fatalf("Operators: %v", err)
		}
		if _, err := cache.Items(); err != nil {
			t.Fatalf("Items: %v", err)
		}
	}

	if got := cache.LoadCount("operators"); got != 1 {
		t.Errorf("operator table loaded %d times, want 1", got)
	}
	if got := cache.LoadCount("items"); got != 1 {
		t.Errorf("item table loaded %d times, want 1", got)
	}
	if got := cache.LoadCount("stages"); got != 0 {
		t.Errorf("stage table loaded %d times before first access, want 0", got)
	}
}

func TestConcurrentFirstAccessLoadsOnce(t *testing.T) {
	cache := New(gametest.WriteTables(t))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := cache.Stages(); err != nil {
				t.Errorf("Stages: %v", err)
			}
		}()
	}
	wg.Wait()

	if got := cache.LoadCount("stages"); got != 1 {
		t.Errorf("stage table loaded %d times under concurrency, want 1", got)
	}
}

func TestMissingFileIsUnavailable(t *testing.T) {
	cache := New(t.TempDir())

	if _, err := cache.Operators(); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Operators with missing file: got %v, want ErrUnavailable", err)
	}
}

func TestMalformedFileIsUnavailable(t *testing.T) {
	dir := gametest.WriteTables(t)
	path := filepath.Join(dir, "character_table.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	cache := New(dir)
	if _, err := cache.Operators(); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Operators with malformed file: got %v, want ErrUnavailable", err)
	}

	// The failure is cached like a success: no retry within the process.
	if _, err := cache.Operators(); !errors.Is(err, ErrUnavailable) {
		t.Errorf("second call: got %v, want ErrUnavailable", err)
	}
	if got := cache.LoadCount("operators"); got != 1 {
		t.Errorf("operator table loaded %d times, want 1", got)
	}
}

func TestOperatorsAscendingKeyOrder(t *testing.T) {
	cache := New(gametest.WriteTables(t))

	ops, err := cache.Operators()
	if err != nil {
		t.Fatal(err)
	}
	if len(ops) == 0 {
		t.Fatal("no operators loaded")
	}
	ids := make([]string, len(ops))
	for i, op := range ops {
		ids[i] = op.ID
	}
	if !sort.StringsAreSorted(ids) {
		t.Errorf("operator ids not in ascending order: %v", ids)
	}
}

func TestByIDLookups(t *testing.T) {
	cache := New(gametest.WriteTables(t))

	op, err := cache.OperatorByID("char_002_amiya")
	if err != nil {
		t.Fatal(err)
	}
	if op == nil || op.Name != "Amiya" {
		t.Errorf("OperatorByID(char_002_amiya) = %+v, want Amiya", op)
	}

	missing, err := cache.OperatorByID("char_999_nobody")
	if err != nil {
		t.Fatal(err)
	}
	if missing != nil {
		t.Errorf("unknown id returned %+v, want nil", missing)
	}

	item, err := cache.ItemByID("4002")
	if err != nil {
		t.Fatal(err)
	}
	if item == nil || item.Name != "Originite Prime" {
		t.Errorf("ItemByID(4002) = %+v, want Originite Prime", item)
	}
}

func TestPrefabKey(t *testing.T) {
	cache := New(gametest.WriteTables(t))

	op, err := cache.OperatorByID("char_002_amiya")
	if err != nil {
		t.Fatal(err)
	}
	if got := op.PrefabKey(); got != "char_002_amiya" {
		t.Errorf("PrefabKey() = %q, want char_002_amiya", got)
	}

	token, err := cache.OperatorByID("token_10012_wall")
	if err != nil {
		t.Fatal(err)
	}
	if got := token.PrefabKey(); got != "" {
		t.Errorf("PrefabKey() for phaseless record = %q, want empty", got)
	}
}
