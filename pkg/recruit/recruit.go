/*
Package recruit answers recruitment tag queries against the operator table.

Unlike the fuzzy lookups, tag queries are set-membership filters: an operator
matches when its derived tag set (declared tags plus tags synthesized from
position, class and rarity) intersects the query set. Operators flagged
hidden by the remote recruitment dataset are never returned, and top-tier
operators only appear when "Top Operator" itself was queried; a tag
combination that cannot include them should not recommend them.
*/
package recruit

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/roguetea/arkdex/internal/utils"
	"github.com/roguetea/arkdex/pkg/gamedata"
)

// MaxQueryTags caps a tag query at the recruitment screen's selection limit.
const MaxQueryTags = 5

const (
	seniorTag = "Senior Operator"
	topTag    = "Top Operator"
)

var (
	// ErrMissingTags flags an empty tag query.
	ErrMissingTags = errors.New("missing tags")

	// ErrInvalidTag flags a tag outside the recruitment allowlist. The
	// wrapped message lists the valid tags and, when possible, a near miss.
	ErrInvalidTag = errors.New("invalid tag")

	// ErrNoMatch flags a query no recruitable operator satisfies.
	ErrNoMatch = errors.New("no matching operators")
)

// Match is one recruitable operator together with its full derived tag set.
type Match struct {
	Operator *gamedata.Operator
	Tags     []string
}

// Combo is the result group for one tag subset: the operators guaranteed to
// match every tag in it.
type Combo struct {
	Tags      []string
	Operators []Match
}

// DeriveTags returns an operator's declared tags extended with the tags the
// recruitment screen synthesizes: Title-cased position, translated class
// name, and the rarity tags for tiers 4 and 5.
func DeriveTags(op *gamedata.Operator) []string {
	tags := make([]string, 0, len(op.TagList)+3)
	tags = append(tags, op.TagList...)
	if op.Position != "" {
		tags = append(tags, utils.TitleCase(op.Position))
	}
	tags = append(tags, gamedata.ProfessionName(op.Profession))
	if op.Rarity == 4 {
		tags = append(tags, seniorTag)
	}
	if op.Rarity == 5 {
		tags = append(tags, topTag)
	}
	return tags
}

// tagTrie indexes the allowlist for near-miss hints on invalid tags.
var (
	tagTrieOnce sync.Once
	tagTrie     *patricia.Trie
)

func nearTag(tag string) string {
	tagTrieOnce.Do(func() {
		tagTrie = patricia.NewTrie()
		for _, t := range gamedata.RecruitTags {
			tagTrie.Insert(patricia.Prefix(strings.ToLower(t)), t)
		}
	})
	// Longest prefix of the bad tag that still reaches a known tag.
	for end := len(tag); end > 1; end-- {
		var hit string
		_ = tagTrie.VisitSubtree(patricia.Prefix(tag[:end]), func(_ patricia.Prefix, item patricia.Item) error {
			hit = item.(string)
			return errors.New("first hit only")
		})
		if hit != "" {
			return hit
		}
	}
	return ""
}

// normalizeTags validates a raw tag query and returns the lowercase tag set.
func normalizeTags(raw []string) (map[string]bool, error) {
	tags := make(map[string]bool, len(raw))
	for _, t := range raw {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if !gamedata.IsRecruitTag(t) {
			msg := fmt.Sprintf("%q is not a recruitment tag", t)
			if hint := nearTag(t); hint != "" {
				msg += fmt.Sprintf(" (did you mean %q?)", hint)
			}
			return nil, fmt.Errorf("%w: %s. Valid tags: %s",
				ErrInvalidTag, msg, strings.Join(gamedata.RecruitTags, ", "))
		}
		tags[t] = true
	}
	if len(tags) == 0 {
		return nil, fmt.Errorf("%w: provide 1 to %d recruitment tags", ErrMissingTags, MaxQueryTags)
	}
	if len(tags) > MaxQueryTags {
		return nil, fmt.Errorf("%w: at most %d tags per query", ErrInvalidTag, MaxQueryTags)
	}
	return tags, nil
}

// recruitable reports whether an operator belongs to the recruitment pool at
// all. Summon tokens and trap devices share the character table but are
// never recruitable.
func recruitable(op *gamedata.Operator, hidden map[string]bool) bool {
	if op.Profession == "TOKEN" || op.Profession == "TRAP" {
		return false
	}
	return !hidden[op.Name]
}

// matches returns the operator's derived tags when the operator satisfies
// the query set under the top-operator gate, or nil.
func matches(op *gamedata.Operator, query map[string]bool, requireAll bool) []string {
	derived := DeriveTags(op)
	isTop := op.Rarity == 5
	if isTop && !query[strings.ToLower(topTag)] {
		return nil
	}
	hit := make(map[string]bool, len(query))
	for _, t := range derived {
		if lt := strings.ToLower(t); query[lt] {
			hit[lt] = true
		}
	}
	if requireAll && len(hit) < len(query) {
		return nil
	}
	if len(hit) == 0 {
		return nil
	}
	return derived
}

// Search returns every recruitable operator whose derived tag set intersects
// the query tags, in ascending character-id order.
func Search(cache *gamedata.Cache, tags []string) ([]Match, error) {
	query, err := normalizeTags(tags)
	if err != nil {
		return nil, err
	}
	ops, err := cache.Operators()
	if err != nil {
		return nil, err
	}
	hidden, err := cache.HiddenOperators()
	if err != nil {
		return nil, err
	}
	var out []Match
	for _, op := range ops {
		if !recruitable(op, hidden) {
			continue
		}
		if derived := matches(op, query, false); derived != nil {
			out = append(out, Match{Operator: op, Tags: derived})
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no recruitable operator carries those tags", ErrNoMatch)
	}
	return out, nil
}

// Combinations evaluates every non-empty subset of the query tags up to size
// 3 and reports, largest subsets first, the operators matching all tags of
// each subset. Subsets nobody matches are omitted. The most specific
// guaranteed combination therefore comes first.
func Combinations(cache *gamedata.Cache, tags []string) ([]Combo, error) {
	query, err := normalizeTags(tags)
	if err != nil {
		return nil, err
	}
	ops, err := cache.Operators()
	if err != nil {
		return nil, err
	}
	hidden, err := cache.HiddenOperators()
	if err != nil {
		return nil, err
	}

	// Stable tag order for subset generation.
	ordered := make([]string, 0, len(query))
	for _, t := range gamedata.RecruitTags {
		if query[strings.ToLower(t)] {
			ordered = append(ordered, strings.ToLower(t))
		}
	}

	var combos []Combo
	for size := 3; size >= 1; size-- {
		if size > len(ordered) {
			continue
		}
		for _, subset := range subsets(ordered, size) {
			sub := make(map[string]bool, len(subset))
			canonical := make([]string, 0, len(subset))
			for _, t := range subset {
				sub[t] = true
				name, _ := gamedata.CanonicalRecruitTag(t)
				canonical = append(canonical, name)
			}
			var group []Match
			for _, op := range ops {
				if !recruitable(op, hidden) {
					continue
				}
				if derived := matches(op, sub, true); derived != nil {
					group = append(group, Match{Operator: op, Tags: derived})
				}
			}
			if len(group) > 0 {
				combos = append(combos, Combo{Tags: canonical, Operators: group})
			}
		}
	}
	if len(combos) == 0 {
		return nil, fmt.Errorf("%w: no combination of those tags is guaranteed", ErrNoMatch)
	}
	return combos, nil
}

// subsets enumerates the size-k subsets of tags in lexicographic index
// order.
func subsets(tags []string, k int) [][]string {
	var out [][]string
	var walk func(start int, cur []string)
	walk = func(start int, cur []string) {
		if len(cur) == k {
			out = append(out, append([]string(nil), cur...))
			return
		}
		for i := start; i < len(tags); i++ {
			walk(i+1, append(cur, tags[i]))
		}
	}
	walk(0, nil)
	return out
}
