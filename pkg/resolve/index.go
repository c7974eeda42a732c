package resolve

import (
	"errors"
	"strings"

	"github.com/tchap/go-patricia/v2/patricia"
)

var errStopVisit = errors.New("stop visit")

// exactIndex maps normalized key fields to record positions for the
// exact-match fast path. Duplicate keys keep the first inserted position,
// which matches the fuzzy scan's tie-break (records arrive in ascending
// table-key order).
type exactIndex struct {
	trie *patricia.Trie
}

func newExactIndex() *exactIndex {
	return &exactIndex{trie: patricia.NewTrie()}
}

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func (ix *exactIndex) add(key string, pos int) {
	key = normalizeKey(key)
	if key == "" {
		return
	}
	if ix.trie.Get(patricia.Prefix(key)) == nil {
		ix.trie.Insert(patricia.Prefix(key), pos)
	}
}

// lookup returns the position stored for an exactly matching key.
func (ix *exactIndex) lookup(query string) (int, bool) {
	item := ix.trie.Get(patricia.Prefix(normalizeKey(query)))
	if item == nil {
		return 0, false
	}
	pos, ok := item.(int)
	return pos, ok
}

// prefixMatches collects up to limit keys starting with prefix, in trie
// order. Used for debug suggestions and near-miss hints.
func (ix *exactIndex) prefixMatches(prefix string, limit int) []string {
	var out []string
	prefix = normalizeKey(prefix)
	_ = ix.trie.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, _ patricia.Item) error {
		if len(out) >= limit {
			return errStopVisit
		}
		out = append(out, string(p))
		return nil
	})
	return out
}
