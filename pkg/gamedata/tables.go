package gamedata

// Record types for the game's reference tables. Each struct mirrors the shape
// of one excel table entry; fields the lookup layer never touches are left out.
// All records are read-only snapshots once loaded; callers must not mutate
// them or the slices returned by the Cache accessors.

// Operator is one entry of character_table.json, keyed by the internal
// character id (e.g. "char_002_amiya").
type Operator struct {
	ID          string          `json:"-"`
	Name        string          `json:"name"`
	Appellation string          `json:"appellation"`
	Description string          `json:"description"`
	Position    string          `json:"position"`
	TagList     []string        `json:"tagList"`
	Rarity      int             `json:"rarity"`
	Profession  string          `json:"profession"`
	Phases      []Phase         `json:"phases"`
	Skills      []OperatorSkill `json:"skills"`
}

// PrefabKey returns the visual identity of the operator's base phase, which
// joins against the skin table. Empty when the record carries no phases
// (tokens and traps).
func (o *Operator) PrefabKey() string {
	if len(o.Phases) == 0 {
		return ""
	}
	return o.Phases[0].CharacterPrefabKey
}

// Phase is one promotion stage of an operator.
type Phase struct {
	CharacterPrefabKey string `json:"characterPrefabKey"`
	RangeID            string `json:"rangeId"`
	MaxLevel           int    `json:"maxLevel"`
}

// OperatorSkill is the instance-level skill reference embedded in an operator
// record. The definition lives in skill_table.json under the same id; both
// sides are needed for a complete skill answer.
type OperatorSkill struct {
	SkillID           string `json:"skillId"`
	OverridePrefabKey string `json:"overridePrefabKey"`
}

// Skin is one entry of skin_table.json's charSkins map.
type Skin struct {
	SkinID      string      `json:"skinId"`
	CharID      string      `json:"charId"`
	PortraitID  string      `json:"portraitId"`
	DisplaySkin DisplaySkin `json:"displaySkin"`
}

// DisplaySkin carries the presentation fields of a skin. Most of these may be
// null in the source data and decode to the empty string.
type DisplaySkin struct {
	SkinName       string `json:"skinName"`
	ModelName      string `json:"modelName"`
	DrawerName     string `json:"drawerName"`
	SkinGroupName  string `json:"skinGroupName"`
	Content        string `json:"content"`
	Dialog         string `json:"dialog"`
	Usage          string `json:"usage"`
	Description    string `json:"description"`
	ObtainApproach string `json:"obtainApproach"`
}

// Skill is the definition-level record from skill_table.json.
type Skill struct {
	SkillID string       `json:"skillId"`
	IconID  string       `json:"iconId"`
	Levels  []SkillLevel `json:"levels"`
}

// SkillLevel is one level of a skill definition.
type SkillLevel struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	SkillType   int     `json:"skillType"`
	Duration    float64 `json:"duration"`
	SpData      SpData  `json:"spData"`
}

// SpData holds the SP economy of a skill level.
type SpData struct {
	SpType int `json:"spType"`
	SpCost int `json:"spCost"`
	InitSp int `json:"initSp"`
}

// Item is one entry of item_table.json's items map.
type Item struct {
	ItemID              string            `json:"itemId"`
	Name                string            `json:"name"`
	Description         string            `json:"description"`
	Rarity              int               `json:"rarity"`
	IconID              string            `json:"iconId"`
	Usage               string            `json:"usage"`
	ObtainApproach      string            `json:"obtainApproach"`
	BuildingProductList []BuildingProduct `json:"buildingProductList"`
}

// BuildingProduct names a base facility that can produce an item.
type BuildingProduct struct {
	RoomType  string `json:"roomType"`
	FormulaID string `json:"formulaId"`
}

// Stage is one entry of stage_table.json's stages map.
type Stage struct {
	StageID            string            `json:"stageId"`
	Code               string            `json:"code"`
	Name               string            `json:"name"`
	Description        string            `json:"description"`
	Difficulty         string            `json:"difficulty"`
	DangerLevel        string            `json:"dangerLevel"`
	HardStagedID       string            `json:"hardStagedId"`
	BossMark           bool              `json:"bossMark"`
	ApCost             int               `json:"apCost"`
	ApFailReturn       int               `json:"apFailReturn"`
	PracticeTicketCost int               `json:"practiceTicketCost"`
	ExpGain            int               `json:"expGain"`
	GoldGain           int               `json:"goldGain"`
	CompleteFavor      int               `json:"completeFavor"`
	PassFavor          int               `json:"passFavor"`
	SlProgress         int               `json:"slProgress"`
	UnlockCondition    []UnlockCondition `json:"unlockCondition"`
	StageDropInfo      StageDropInfo     `json:"stageDropInfo"`
}

// UnlockCondition references another stage that gates this one.
type UnlockCondition struct {
	StageID       string `json:"stageId"`
	CompleteState int    `json:"completeState"`
}

// StageDropInfo holds the two reward lists of a stage. displayRewards is the
// curated list shown on the stage screen, displayDetailRewards the full one.
type StageDropInfo struct {
	DisplayRewards       []RewardDisplay `json:"displayRewards"`
	DisplayDetailRewards []RewardDisplay `json:"displayDetailRewards"`
}

// RewardDisplay is a single reward entry: an item (or furniture/ticket)
// reference plus the drop type code, see DropTypeLabel.
type RewardDisplay struct {
	Type     string `json:"type"`
	ID       string `json:"id"`
	DropType int    `json:"dropType"`
}

// Furniture is one entry of building_data.json's customData.furnitures map.
type Furniture struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Usage          string `json:"usage"`
	Description    string `json:"description"`
	ObtainApproach string `json:"obtainApproach"`
	Rarity         int    `json:"rarity"`
	Type           string `json:"type"`
	Location       string `json:"location"`
	Category       string `json:"category"`
	Width          int    `json:"width"`
	Depth          int    `json:"depth"`
	Height         int    `json:"height"`
	Comfort        int    `json:"comfort"`
}

// Enemy is one entry of enemy_handbook_table.json.
type Enemy struct {
	EnemyID     string `json:"enemyId"`
	EnemyIndex  string `json:"enemyIndex"`
	Name        string `json:"name"`
	EnemyRace   string `json:"enemyRace"`
	AttackType  string `json:"attackType"`
	Ability     string `json:"ability"`
	Endure      string `json:"endure"`
	Attack      string `json:"attack"`
	Defence     string `json:"defence"`
	Resistance  string `json:"resistance"`
	Description string `json:"description"`
}

// Tip is one entry of tip_table.json's tips list.
type Tip struct {
	Tip      string `json:"tip"`
	Category string `json:"category"`
}

// RecruitEntry is one element of the remote recruitment dataset: an operator
// name plus whether it is hidden from the standard recruitment pool.
type RecruitEntry struct {
	Name   string `json:"name"`
	Hidden bool   `json:"hidden"`
}

// Wrapper shapes of the table files that nest their records.

type skinTable struct {
	CharSkins map[string]*Skin `json:"charSkins"`
}

type itemTable struct {
	Items map[string]*Item `json:"items"`
}

type stageTable struct {
	Stages map[string]*Stage `json:"stages"`
}

type buildingData struct {
	CustomData struct {
		Furnitures map[string]*Furniture `json:"furnitures"`
	} `json:"customData"`
}

type tipTable struct {
	Tips []Tip `json:"tips"`
}
