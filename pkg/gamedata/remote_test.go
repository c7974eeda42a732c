package gamedata

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/roguetea/arkdex/internal/gametest"
)

func TestHiddenOperatorsCachedAfterSuccess(t *testing.T) {
	srv, calls := gametest.RecruitServer(t, http.StatusOK, gametest.DefaultRecruitBody)
	cache := New(gametest.WriteTables(t), WithRecruitURL(srv.URL))

	hidden, err := cache.HiddenOperators()
	if err != nil {
		t.Fatal(err)
	}
	if !hidden["Amiya"] || !hidden["Rangers"] {
		t.Errorf("hidden map missing expected flags: %v", hidden)
	}
	if hidden["Fang"] {
		t.Error("Fang flagged hidden, want visible")
	}

	if _, err := cache.HiddenOperators(); err != nil {
		t.Fatal(err)
	}
	if *calls != 1 {
		t.Errorf("remote fetched %d times after success, want 1", *calls)
	}
}

func TestHiddenOperatorsFailureDegradesAndRetries(t *testing.T) {
	fails := 2
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if fails > 0 {
			fails--
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(gametest.DefaultRecruitBody))
	}))
	defer srv.Close()

	cache := New(gametest.WriteTables(t), WithRecruitURL(srv.URL))

	// Failed fetches yield an empty map, not an error.
	for i := 0; i < 2; i++ {
		hidden, err := cache.HiddenOperators()
		if err != nil {
			t.Fatalf("call %d: %v", i+1, err)
		}
		if len(hidden) != 0 {
			t.Fatalf("call %d: got %d entries during outage, want 0", i+1, len(hidden))
		}
	}

	// Failures are not cached: the next call fetches again and succeeds.
	hidden, err := cache.HiddenOperators()
	if err != nil {
		t.Fatal(err)
	}
	if !hidden["Amiya"] {
		t.Errorf("hidden map after recovery: %v", hidden)
	}
	if got := cache.LoadCount("recruit"); got != 3 {
		t.Errorf("recruit fetched %d times, want 3", got)
	}
}
