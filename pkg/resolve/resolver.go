/*
Package resolve turns noisy free-text queries into game records.

Every lookup follows the same contract: take the candidate key fields of each
record in a table, score them against the query with Ratio, and return the
single best-scoring record. A non-empty table always produces a match, however
poor: there is no similarity floor, so nonsense input yields the least-bad
record rather than an error. Ties break toward the record with the smallest
table key, because tables iterate in ascending key order.

An exact-match index (patricia trie over the normalized key fields) short
circuits the fuzzy scan for queries that hit a key verbatim.

Resolution is side-effect free and reads only the immutable Cache snapshots,
so a Resolver is safe for concurrent use.
*/
package resolve

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/roguetea/arkdex/pkg/gamedata"
)

// challengePrefix starts control tokens in stage queries ("+cm").
const challengePrefix = "+"

// Resolver answers entity lookups against a Cache.
type Resolver struct {
	cache *gamedata.Cache

	mu      sync.Mutex
	rng     *rand.Rand
	indexes map[string]*exactIndex
}

// Option adjusts a Resolver at construction time.
type Option func(*Resolver)

// WithRand overrides the RNG used by Tip. Tests pass a seeded source.
func WithRand(rng *rand.Rand) Option {
	return func(r *Resolver) { r.rng = rng }
}

// New creates a Resolver over the given cache.
func New(cache *gamedata.Cache, opts ...Option) *Resolver {
	r := &Resolver{
		cache:   cache,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		indexes: make(map[string]*exactIndex),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// cleanQuery trims a raw query and rejects blank input.
func cleanQuery(raw string) (string, error) {
	q := strings.TrimSpace(raw)
	if q == "" {
		return "", fmt.Errorf("%w: provide a name, id or code", ErrMissingQuery)
	}
	return q, nil
}

// best returns the record whose candidate fields score highest against the
// already-lowercased query. Strictly-greater comparison keeps the first
// (smallest-key) record on ties.
func best[T any](records []*T, query string, fields func(*T) []string) *T {
	var top *T
	topScore := -1
	for _, rec := range records {
		for _, f := range fields(rec) {
			if f == "" {
				continue
			}
			if s := Ratio(query, strings.ToLower(f)); s > topScore {
				topScore = s
				top = rec
			}
		}
	}
	return top
}

// index returns the memoized exact index for a table, building it on first
// use from the key fields of each record.
func index[T any](r *Resolver, kind string, records []*T, fields func(*T) []string) *exactIndex {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ix, ok := r.indexes[kind]; ok {
		return ix
	}
	ix := newExactIndex()
	for i, rec := range records {
		for _, f := range fields(rec) {
			ix.add(f, i)
		}
	}
	r.indexes[kind] = ix
	log.Debugf("Built %s exact index", kind)
	return ix
}

// resolveIn runs the shared exact-then-fuzzy resolution for one table.
func resolveIn[T any](r *Resolver, kind, query string, records []*T, fields func(*T) []string) (*T, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s table is empty", ErrNoResult, kind)
	}
	q := strings.ToLower(query)
	if pos, ok := index(r, kind, records, fields).lookup(q); ok {
		return records[pos], nil
	}
	return best(records, q, fields), nil
}

func operatorFields(op *gamedata.Operator) []string {
	return []string{op.ID, op.Name, op.Appellation}
}

// Operator resolves a query against the operator table by internal id,
// display name or appellation.
func (r *Resolver) Operator(query string) (*gamedata.Operator, error) {
	q, err := cleanQuery(query)
	if err != nil {
		return nil, err
	}
	ops, err := r.cache.Operators()
	if err != nil {
		return nil, err
	}
	return resolveIn(r, "operators", q, ops, operatorFields)
}

// OperatorSkins resolves an operator, then joins the skin table on the
// operator's base prefab key. The skin list may be empty for records without
// a visual identity (tokens, traps).
func (r *Resolver) OperatorSkins(query string) (*gamedata.Operator, []*gamedata.Skin, error) {
	op, err := r.Operator(query)
	if err != nil {
		return nil, nil, err
	}
	skins, err := r.cache.Skins()
	if err != nil {
		return nil, nil, err
	}
	key := op.PrefabKey()
	if key == "" {
		return op, nil, nil
	}
	var owned []*gamedata.Skin
	for _, s := range skins {
		if s.CharID == key {
			owned = append(owned, s)
		}
	}
	return op, owned, nil
}

// SkillInfo pairs the instance-level skill reference carried by an operator
// with the definition-level record from the skill table. Definition is nil
// when the table has no entry for the referenced id.
type SkillInfo struct {
	Instance   gamedata.OperatorSkill
	Definition *gamedata.Skill
}

// OperatorSkills resolves an operator, then joins each of its skill
// references against the skill table, preserving the operator's own order.
func (r *Resolver) OperatorSkills(query string) (*gamedata.Operator, []SkillInfo, error) {
	op, err := r.Operator(query)
	if err != nil {
		return nil, nil, err
	}
	skills := make([]SkillInfo, 0, len(op.Skills))
	for _, ref := range op.Skills {
		def, err := r.cache.SkillByID(ref.SkillID)
		if err != nil {
			return nil, nil, err
		}
		if def == nil {
			log.Warnf("Operator %s references unknown skill %s", op.ID, ref.SkillID)
		}
		skills = append(skills, SkillInfo{Instance: ref, Definition: def})
	}
	return op, skills, nil
}

func itemFields(it *gamedata.Item) []string {
	return []string{it.Name, it.ItemID}
}

// Item resolves a query against the item table by display name or item id.
func (r *Resolver) Item(query string) (*gamedata.Item, error) {
	q, err := cleanQuery(query)
	if err != nil {
		return nil, err
	}
	items, err := r.cache.Items()
	if err != nil {
		return nil, err
	}
	return resolveIn(r, "items", q, items, itemFields)
}

func furnitureFields(f *gamedata.Furniture) []string {
	return []string{f.Name, f.ID}
}

// Furniture resolves a query against the furniture table by name or id.
func (r *Resolver) Furniture(query string) (*gamedata.Furniture, error) {
	q, err := cleanQuery(query)
	if err != nil {
		return nil, err
	}
	furns, err := r.cache.Furnitures()
	if err != nil {
		return nil, err
	}
	return resolveIn(r, "furniture", q, furns, furnitureFields)
}

func enemyFields(e *gamedata.Enemy) []string {
	return []string{e.Name, e.EnemyID}
}

// Enemy resolves a query against the enemy handbook by name or id.
func (r *Resolver) Enemy(query string) (*gamedata.Enemy, error) {
	q, err := cleanQuery(query)
	if err != nil {
		return nil, err
	}
	enemies, err := r.cache.Enemies()
	if err != nil {
		return nil, err
	}
	return resolveIn(r, "enemies", q, enemies, enemyFields)
}

func stageFields(s *gamedata.Stage) []string {
	// Challenge variants share code and name with their base stage. Keying
	// them only by id keeps plain queries on the base stage; "+cm" is the
	// way in.
	if s.Difficulty == "FOUR_STAR" {
		return []string{s.StageID}
	}
	return []string{s.StageID, s.Code, s.Name}
}

// parseStageQuery strips control tokens from a stage query before scoring.
// "+cm" requests the challenge-mode variant; other "+" tokens are ignored.
func parseStageQuery(raw string) (query string, challenge bool) {
	var kept []string
	for _, tok := range strings.Fields(raw) {
		if !strings.HasPrefix(tok, challengePrefix) {
			kept = append(kept, tok)
			continue
		}
		if strings.EqualFold(tok, "+cm") {
			challenge = true
		} else {
			log.Debugf("Ignoring unknown stage directive %q", tok)
		}
	}
	return strings.Join(kept, " "), challenge
}

// Stage resolves a query against the stage table by stage id, short code or
// display name. A "+cm" token redirects to the matched stage's challenge-mode
// variant when one exists; the redirect is a single level, challenge variants
// never chain. The returned bool reports whether the redirect happened.
func (r *Resolver) Stage(query string) (*gamedata.Stage, bool, error) {
	text, challenge := parseStageQuery(query)
	q, err := cleanQuery(text)
	if err != nil {
		return nil, false, err
	}
	stages, err := r.cache.Stages()
	if err != nil {
		return nil, false, err
	}
	stage, err := resolveIn(r, "stages", q, stages, stageFields)
	if err != nil {
		return nil, false, err
	}
	if !challenge || stage.HardStagedID == "" {
		return stage, false, nil
	}
	hard, err := r.cache.StageByID(stage.HardStagedID)
	if err != nil {
		return nil, false, err
	}
	if hard == nil {
		log.Warnf("Stage %s references missing challenge variant %s", stage.StageID, stage.HardStagedID)
		return stage, false, nil
	}
	return hard, true, nil
}

// Tip returns a uniformly random tip, optionally filtered to one category
// (case-insensitive). An unknown category is rejected with the valid options.
func (r *Resolver) Tip(category string) (*gamedata.Tip, error) {
	category = strings.TrimSpace(category)
	if category != "" && !gamedata.IsTipCategory(category) {
		return nil, fmt.Errorf("%w: category must be one of %s",
			ErrInvalidCategory, strings.ToLower(strings.Join(gamedata.TipCategories, ", ")))
	}
	tips, err := r.cache.Tips()
	if err != nil {
		return nil, err
	}
	pool := tips
	if category != "" {
		pool = nil
		for _, t := range tips {
			if strings.EqualFold(t.Category, category) {
				pool = append(pool, t)
			}
		}
	}
	if len(pool) == 0 {
		return nil, fmt.Errorf("%w: no tips in that category", ErrNoResult)
	}
	r.mu.Lock()
	pick := r.rng.Intn(len(pool))
	r.mu.Unlock()
	tip := pool[pick]
	return &tip, nil
}

// Suggest lists up to limit known keys of a table starting with prefix.
// Debug aid for the CLI; kinds match the resolver methods (operators, items,
// stages, furniture, enemies).
func (r *Resolver) Suggest(kind, prefix string, limit int) ([]string, error) {
	switch kind {
	case "operators":
		ops, err := r.cache.Operators()
		if err != nil {
			return nil, err
		}
		return index(r, kind, ops, operatorFields).prefixMatches(prefix, limit), nil
	case "items":
		items, err := r.cache.Items()
		if err != nil {
			return nil, err
		}
		return index(r, kind, items, itemFields).prefixMatches(prefix, limit), nil
	case "stages":
		stages, err := r.cache.Stages()
		if err != nil {
			return nil, err
		}
		return index(r, kind, stages, stageFields).prefixMatches(prefix, limit), nil
	case "furniture":
		furns, err := r.cache.Furnitures()
		if err != nil {
			return nil, err
		}
		return index(r, kind, furns, furnitureFields).prefixMatches(prefix, limit), nil
	case "enemies":
		enemies, err := r.cache.Enemies()
		if err != nil {
			return nil, err
		}
		return index(r, kind, enemies, enemyFields).prefixMatches(prefix, limit), nil
	}
	return nil, fmt.Errorf("unknown suggestion kind %q", kind)
}
