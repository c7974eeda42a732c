package server

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/roguetea/arkdex/internal/gametest"
	"github.com/roguetea/arkdex/pkg/config"
	"github.com/roguetea/arkdex/pkg/gamedata"
	"github.com/roguetea/arkdex/pkg/resolve"
)

// runServer feeds the encoded requests through a buffer-backed server and
// returns every decoded response after the ready signal.
func runServer(t *testing.T, cache *gamedata.Cache, requests []LookupRequest) []map[string]interface{} {
	t.Helper()

	var in bytes.Buffer
	enc := msgpack.NewEncoder(&in)
	for _, req := range requests {
		if err := enc.Encode(req); err != nil {
			t.Fatalf("encoding request: %v", err)
		}
	}

	var out bytes.Buffer
	srv := NewServerIO(cache, resolve.New(cache), config.DefaultConfig(), &in, &out)
	if err := srv.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	dec := msgpack.NewDecoder(&out)
	var ready map[string]interface{}
	if err := dec.Decode(&ready); err != nil {
		t.Fatalf("decoding ready signal: %v", err)
	}
	if ready["status"] != "ready" {
		t.Fatalf("first message = %v, want ready signal", ready)
	}

	var responses []map[string]interface{}
	for range requests {
		var resp map[string]interface{}
		if err := dec.Decode(&resp); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		responses = append(responses, resp)
	}
	return responses
}

func newTestCache(t *testing.T) *gamedata.Cache {
	t.Helper()
	srv, _ := gametest.RecruitServer(t, http.StatusOK, gametest.DefaultRecruitBody)
	return gamedata.New(gametest.WriteTables(t), gamedata.WithRecruitURL(srv.URL))
}

func title(t *testing.T, resp map[string]interface{}) string {
	t.Helper()
	msgs, ok := resp["msgs"].([]interface{})
	if !ok || len(msgs) == 0 {
		t.Fatalf("response carries no messages: %v", resp)
	}
	first, ok := msgs[0].(map[string]interface{})
	if !ok {
		t.Fatalf("message shape: %v", msgs[0])
	}
	s, _ := first["t"].(string)
	return s
}

func errCode(resp map[string]interface{}) (int, bool) {
	if _, isErr := resp["e"]; !isErr {
		return 0, false
	}
	switch c := resp["c"].(type) {
	case int8:
		return int(c), true
	case int16:
		return int(c), true
	case int32:
		return int(c), true
	case int64:
		return int(c), true
	case uint16:
		return int(c), true
	case uint32:
		return int(c), true
	case uint64:
		return int(c), true
	}
	return 0, true
}

func TestOperatorLookupRoundTrip(t *testing.T) {
	responses := runServer(t, newTestCache(t), []LookupRequest{
		{ID: "r1", Cmd: "operator", Query: "amya"},
	})

	resp := responses[0]
	if resp["id"] != "r1" {
		t.Errorf("id = %v", resp["id"])
	}
	if got := title(t, resp); got != "Amiya" {
		t.Errorf("title = %q, want Amiya", got)
	}
}

func TestStageLookupWithDirective(t *testing.T) {
	responses := runServer(t, newTestCache(t), []LookupRequest{
		{ID: "r1", Cmd: "stage", Query: "1-7 +cm"},
	})

	got := title(t, responses[0])
	want := "[1-7] Misty Memory (Boss Stage) (Challenge Mode)"
	if got != want {
		t.Errorf("title = %q, want %q", got, want)
	}
}

func TestErrorCodes(t *testing.T) {
	testCases := []struct {
		request     LookupRequest
		wantCode    int
		description string
	}{
		{LookupRequest{ID: "e1", Cmd: "operator", Query: ""}, 400, "missing query"},
		{LookupRequest{ID: "e2", Cmd: "tip", Category: "weather"}, 400, "invalid tip category"},
		{LookupRequest{ID: "e3", Cmd: "recruit", Tags: []string{"archer"}}, 400, "invalid tag"},
		{LookupRequest{ID: "e4", Cmd: "recruit"}, 400, "missing tags"},
		{LookupRequest{ID: "e5", Cmd: "recruit", Tags: []string{"robot"}}, 404, "no matching operators"},
		{LookupRequest{ID: "e6", Cmd: "teleport", Query: "x"}, 400, "unknown command"},
	}

	cache := newTestCache(t)
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			responses := runServer(t, cache, []LookupRequest{tc.request})
			code, isErr := errCode(responses[0])
			if !isErr {
				t.Fatalf("got a success response: %v", responses[0])
			}
			if code != tc.wantCode {
				t.Errorf("code = %d, want %d", code, tc.wantCode)
			}
		})
	}
}

func TestUnavailableDataIs503(t *testing.T) {
	// A cache over an empty directory fails every table load.
	cache := gamedata.New(t.TempDir())
	responses := runServer(t, cache, []LookupRequest{
		{ID: "r1", Cmd: "operator", Query: "amiya"},
	})

	code, isErr := errCode(responses[0])
	if !isErr || code != 503 {
		t.Errorf("response = %v, want error code 503", responses[0])
	}
	// Internal detail stays in the log, not on the wire.
	if msg, _ := responses[0]["e"].(string); msg != "Game data unavailable" {
		t.Errorf("error message = %q", msg)
	}
}

func TestQueryLengthLimit(t *testing.T) {
	long := make([]byte, config.DefaultConfig().Server.MaxQueryLen+1)
	for i := range long {
		long[i] = 'a'
	}
	responses := runServer(t, newTestCache(t), []LookupRequest{
		{ID: "r1", Cmd: "operator", Query: string(long)},
	})

	code, isErr := errCode(responses[0])
	if !isErr || code != 400 {
		t.Errorf("response = %v, want error code 400", responses[0])
	}
}

func TestHealth(t *testing.T) {
	responses := runServer(t, newTestCache(t), []LookupRequest{
		{ID: "h1", Cmd: "health"},
	})

	if responses[0]["status"] != "ok" {
		t.Errorf("health response = %v", responses[0])
	}
}

func TestRecruitRoundTrip(t *testing.T) {
	responses := runServer(t, newTestCache(t), []LookupRequest{
		{ID: "r1", Cmd: "recruit", Tags: []string{"vanguard"}},
	})

	got := title(t, responses[0])
	if got != "Operators matching: vanguard" {
		t.Errorf("title = %q", got)
	}
}

func TestRequestsAnsweredInOrder(t *testing.T) {
	responses := runServer(t, newTestCache(t), []LookupRequest{
		{ID: "a", Cmd: "operator", Query: "fang"},
		{ID: "b", Cmd: "item", Query: "pure gold"},
		{ID: "c", Cmd: "health"},
	})

	wantIDs := []string{"a", "b", "c"}
	for i, want := range wantIDs {
		if responses[i]["id"] != want {
			t.Errorf("responses[%d].id = %v, want %s", i, responses[i]["id"], want)
		}
	}
}
