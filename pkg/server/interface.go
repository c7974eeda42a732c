/*
Package server implements msgpack IPC for game-data lookups.

The server speaks binary msgpack over stdin/stdout on a request/response
model: clients write one encoded LookupRequest after another, the server
answers each with a LookupResponse or a LookupError. Every message carries
an ID field the client echoes to correlate answers.

A lookup request names a command and its input:

	{"id": "req_001", "cmd": "stage", "q": "4-7 +cm"}
	{"id": "req_002", "cmd": "recruit", "tags": ["melee", "guard"]}
	{"id": "req_003", "cmd": "tip", "cat": "battle"}

The response carries the formatted message(s) for the matched record, with
timing data:

	{"id": "req_001", "msgs": [{"t": "[4-7] ...", ...}], "c": 1, "t": 2}

# Commands

operator, skins, skills, stage, item, furniture, enemy take a free-text
query in "q": a name, an id or a stage code, matched fuzzily against the
loaded tables. Stage queries may carry a "+cm" token to request the
challenge-mode variant. recruit and combos take 1 to 5 recruitment tags in
"tags". tip takes an optional category in "cat". health answers with a
status map without touching the data tables.

Errors use stable codes so clients can branch without parsing text:
400 for invalid input, 404 when nothing matches a structural filter,
503 when a data table cannot be loaded, 500 for anything else.
*/
package server

import "github.com/roguetea/arkdex/pkg/render"

// LookupRequest - one lookup command from the client
type LookupRequest struct {
	ID       string   `msgpack:"id"`
	Cmd      string   `msgpack:"cmd"`
	Query    string   `msgpack:"q,omitempty"`
	Tags     []string `msgpack:"tags,omitempty"`
	Category string   `msgpack:"cat,omitempty"`
}

// LookupResponse - formatted answer for one request
type LookupResponse struct {
	ID        string           `msgpack:"id"`
	Messages  []render.Message `msgpack:"msgs"`
	Count     int              `msgpack:"c"`
	TimeTaken int64            `msgpack:"t"`
}

// StatusResponse - readiness and health answers
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
}

// LookupError holds basic error information for failed requests
type LookupError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
