/*
Package gamedata loads the game's reference tables into typed in-memory
snapshots cached for the lifetime of the process.

Every table is parsed from a static JSON file under a single data directory,
except the recruitment dataset which is fetched from a remote endpoint. A
table is read at most once: the first accessor call parses and caches it, all
later calls return the cached snapshot. Records are never mutated after load,
so the snapshots can be shared between any number of concurrent lookups
without synchronization.

Accessors return records in ascending table-key order (byte order). Lookup
layers rely on that order to break score ties deterministically, so it is part
of the contract, not an implementation detail.
*/
package gamedata

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
)

// Table source file names under the data directory.
const (
	operatorFile  = "character_table.json"
	skinFile      = "skin_table.json"
	skillFile     = "skill_table.json"
	itemFile      = "item_table.json"
	stageFile     = "stage_table.json"
	buildingFile  = "building_data.json"
	enemyFile     = "enemy_handbook_table.json"
	tipFile       = "tip_table.json"
	defaultFetchT = 10 * time.Second
)

// DefaultRecruitURL is the remote recruitment dataset: a JSON array of
// {name, hidden} objects flagging operators outside the recruitment pool.
const DefaultRecruitURL = "https://raw.githubusercontent.com/Aceship/AN-EN-Tags/master/json/akhr.json"

// ErrUnavailable marks a table that could not be read or parsed. Callers
// surface it as a generic failure instead of guessing at partial data.
var ErrUnavailable = errors.New("game data unavailable")

// lazy guards the one-time load of a table. The sync.Once guarantees at most
// one load even when unloaded tables are hit by concurrent queries.
type lazy[T any] struct {
	once  sync.Once
	loads atomic.Int32
	v     T
	err   error
}

func (l *lazy[T]) get(load func() (T, error)) (T, error) {
	l.once.Do(func() {
		l.loads.Add(1)
		l.v, l.err = load()
	})
	return l.v, l.err
}

// recordSet is a parsed table: records in ascending key order plus the
// key-indexed map they came from.
type recordSet[T any] struct {
	list []*T
	byID map[string]*T
}

func newRecordSet[T any](m map[string]*T, claim func(id string, rec *T)) recordSet[T] {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	rs := recordSet[T]{list: make([]*T, 0, len(m)), byID: m}
	for _, k := range keys {
		rec := m[k]
		if claim != nil {
			claim(k, rec)
		}
		rs.list = append(rs.list, rec)
	}
	return rs
}

// Cache is the process-wide snapshot store for all reference tables.
// Construct one with New and share it; a fresh Cache per test gives full
// isolation.
type Cache struct {
	dir        string
	recruitURL string
	client     *http.Client

	operators lazy[recordSet[Operator]]
	skins     lazy[recordSet[Skin]]
	skills    lazy[recordSet[Skill]]
	items     lazy[recordSet[Item]]
	stages    lazy[recordSet[Stage]]
	furniture lazy[recordSet[Furniture]]
	enemies   lazy[recordSet[Enemy]]
	tips      lazy[[]Tip]

	hiddenMu    sync.Mutex
	hidden      map[string]bool
	hiddenLoads atomic.Int32
}

// Option adjusts a Cache at construction time.
type Option func(*Cache)

// WithRecruitURL overrides the remote recruitment dataset endpoint.
func WithRecruitURL(url string) Option {
	return func(c *Cache) { c.recruitURL = url }
}

// WithHTTPClient overrides the HTTP client used for the remote fetch.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Cache) { c.client = client }
}

// WithTimeout sets the remote fetch timeout on the default client.
func WithTimeout(d time.Duration) Option {
	return func(c *Cache) { c.client.Timeout = d }
}

// New creates a Cache over the given data directory. Nothing is read until
// the first accessor call.
func New(dir string, opts ...Option) *Cache {
	c := &Cache{
		dir:        dir,
		recruitURL: DefaultRecruitURL,
		client:     &http.Client{Timeout: defaultFetchT},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// readTable reads and parses one table file into v.
func (c *Cache) readTable(name string, v any) error {
	path := filepath.Join(c.dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: reading %s: %v", ErrUnavailable, path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: parsing %s: %v", ErrUnavailable, path, err)
	}
	return nil
}

// Operators returns every operator record in ascending character-id order.
func (c *Cache) Operators() ([]*Operator, error) {
	set, err := c.operators.get(c.loadOperators)
	if err != nil {
		return nil, err
	}
	return set.list, nil
}

// OperatorByID returns the operator with the given character id, or nil when
// the id is unknown.
func (c *Cache) OperatorByID(id string) (*Operator, error) {
	set, err := c.operators.get(c.loadOperators)
	if err != nil {
		return nil, err
	}
	return set.byID[id], nil
}

func (c *Cache) loadOperators() (recordSet[Operator], error) {
	var table map[string]*Operator
	if err := c.readTable(operatorFile, &table); err != nil {
		return recordSet[Operator]{}, err
	}
	log.Debugf("Loaded %d operator records", len(table))
	return newRecordSet(table, func(id string, op *Operator) { op.ID = id }), nil
}

// Skins returns every skin record in ascending skin-key order.
func (c *Cache) Skins() ([]*Skin, error) {
	set, err := c.skins.get(c.loadSkins)
	if err != nil {
		return nil, err
	}
	return set.list, nil
}

func (c *Cache) loadSkins() (recordSet[Skin], error) {
	var table skinTable
	if err := c.readTable(skinFile, &table); err != nil {
		return recordSet[Skin]{}, err
	}
	log.Debugf("Loaded %d skin records", len(table.CharSkins))
	return newRecordSet(table.CharSkins, nil), nil
}

// SkillByID returns the skill definition for a skill id, or nil when unknown.
func (c *Cache) SkillByID(id string) (*Skill, error) {
	set, err := c.skills.get(c.loadSkills)
	if err != nil {
		return nil, err
	}
	return set.byID[id], nil
}

func (c *Cache) loadSkills() (recordSet[Skill], error) {
	var table map[string]*Skill
	if err := c.readTable(skillFile, &table); err != nil {
		return recordSet[Skill]{}, err
	}
	log.Debugf("Loaded %d skill records", len(table))
	return newRecordSet(table, func(id string, s *Skill) {
		if s.SkillID == "" {
			s.SkillID = id
		}
	}), nil
}

// Items returns every item record in ascending item-id order.
func (c *Cache) Items() ([]*Item, error) {
	set, err := c.items.get(c.loadItems)
	if err != nil {
		return nil, err
	}
	return set.list, nil
}

// ItemByID returns the item with the given id, or nil when unknown.
func (c *Cache) ItemByID(id string) (*Item, error) {
	set, err := c.items.get(c.loadItems)
	if err != nil {
		return nil, err
	}
	return set.byID[id], nil
}

func (c *Cache) loadItems() (recordSet[Item], error) {
	var table itemTable
	if err := c.readTable(itemFile, &table); err != nil {
		return recordSet[Item]{}, err
	}
	log.Debugf("Loaded %d item records", len(table.Items))
	return newRecordSet(table.Items, nil), nil
}

// Stages returns every stage record in ascending stage-key order.
func (c *Cache) Stages() ([]*Stage, error) {
	set, err := c.stages.get(c.loadStages)
	if err != nil {
		return nil, err
	}
	return set.list, nil
}

// StageByID returns the stage with the given stage id, or nil when unknown.
func (c *Cache) StageByID(id string) (*Stage, error) {
	set, err := c.stages.get(c.loadStages)
	if err != nil {
		return nil, err
	}
	return set.byID[id], nil
}

func (c *Cache) loadStages() (recordSet[Stage], error) {
	var table stageTable
	if err := c.readTable(stageFile, &table); err != nil {
		return recordSet[Stage]{}, err
	}
	log.Debugf("Loaded %d stage records", len(table.Stages))
	return newRecordSet(table.Stages, nil), nil
}

// Furnitures returns every furniture record in ascending id order.
func (c *Cache) Furnitures() ([]*Furniture, error) {
	set, err := c.furniture.get(c.loadFurniture)
	if err != nil {
		return nil, err
	}
	return set.list, nil
}

// FurnitureByID returns the furniture with the given id, or nil when unknown.
func (c *Cache) FurnitureByID(id string) (*Furniture, error) {
	set, err := c.furniture.get(c.loadFurniture)
	if err != nil {
		return nil, err
	}
	return set.byID[id], nil
}

func (c *Cache) loadFurniture() (recordSet[Furniture], error) {
	var table buildingData
	if err := c.readTable(buildingFile, &table); err != nil {
		return recordSet[Furniture]{}, err
	}
	log.Debugf("Loaded %d furniture records", len(table.CustomData.Furnitures))
	return newRecordSet(table.CustomData.Furnitures, nil), nil
}

// Enemies returns every enemy handbook record in ascending enemy-id order.
func (c *Cache) Enemies() ([]*Enemy, error) {
	set, err := c.enemies.get(c.loadEnemies)
	if err != nil {
		return nil, err
	}
	return set.list, nil
}

func (c *Cache) loadEnemies() (recordSet[Enemy], error) {
	var table map[string]*Enemy
	if err := c.readTable(enemyFile, &table); err != nil {
		return recordSet[Enemy]{}, err
	}
	log.Debugf("Loaded %d enemy records", len(table))
	return newRecordSet(table, func(id string, e *Enemy) {
		if e.EnemyID == "" {
			e.EnemyID = id
		}
	}), nil
}

// Tips returns every tip record in source order.
func (c *Cache) Tips() ([]Tip, error) {
	return c.tips.get(c.loadTips)
}

func (c *Cache) loadTips() ([]Tip, error) {
	var table tipTable
	if err := c.readTable(tipFile, &table); err != nil {
		return nil, err
	}
	log.Debugf("Loaded %d tip records", len(table.Tips))
	return table.Tips, nil
}

// LoadCount reports how many load operations have run for a table kind.
// Kinds: operators, skins, skills, items, stages, furniture, enemies, tips,
// recruit. Exists so tests can observe the load-once guarantee.
func (c *Cache) LoadCount(kind string) int {
	switch kind {
	case "operators":
		return int(c.operators.loads.Load())
	case "skins":
		return int(c.skins.loads.Load())
	case "skills":
		return int(c.skills.loads.Load())
	case "items":
		return int(c.items.loads.Load())
	case "stages":
		return int(c.stages.loads.Load())
	case "furniture":
		return int(c.furniture.loads.Load())
	case "enemies":
		return int(c.enemies.loads.Load())
	case "tips":
		return int(c.tips.loads.Load())
	case "recruit":
		return int(c.hiddenLoads.Load())
	}
	return 0
}
