// Package gametest writes small game-data table fixtures for package tests.
package gametest

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

// DefaultRecruitBody mirrors the remote recruitment dataset: Amiya and
// Rangers exist in the character table but are outside the recruitment pool.
const DefaultRecruitBody = `[
	{"name": "Amiya", "hidden": true},
	{"name": "Rangers", "hidden": true},
	{"name": "Fang", "hidden": false},
	{"name": "Specter", "hidden": false},
	{"name": "Schwarz", "hidden": false}
]`

// WriteTables creates a temp data directory populated with every table file
// the cache knows, holding a handful of consistent records.
func WriteTables(t testing.TB) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range tableFixtures {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("writing fixture %s: %v", name, err)
		}
	}
	return dir
}

// RecruitServer serves body on every request and counts the calls it got.
func RecruitServer(t testing.TB, status int, body string) (*httptest.Server, *int) {
	t.Helper()
	calls := new(int)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		*calls++
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, calls
}

var tableFixtures = map[string]string{
	"character_table.json": `{
		"char_002_amiya": {
			"name": "Amiya",
			"appellation": "Amiya",
			"description": "Deals <@ba.kw>Arts damage</>",
			"position": "RANGED",
			"tagList": ["DPS"],
			"rarity": 4,
			"profession": "CASTER",
			"phases": [{"characterPrefabKey": "char_002_amiya", "maxLevel": 50}],
			"skills": [{"skillId": "skchr_amiya_1"}]
		},
		"char_123_fang": {
			"name": "Fang",
			"appellation": "",
			"description": "Blocks enemies",
			"position": "MELEE",
			"tagList": ["DP-Recovery"],
			"rarity": 2,
			"profession": "PIONEER",
			"phases": [{"characterPrefabKey": "char_123_fang", "maxLevel": 40}],
			"skills": [{"skillId": "skchr_fang_1"}]
		},
		"char_143_ghost": {
			"name": "Specter",
			"appellation": "Specter",
			"description": "Cuts things",
			"position": "MELEE",
			"tagList": ["Survival", "DPS"],
			"rarity": 4,
			"profession": "WARRIOR",
			"phases": [{"characterPrefabKey": "char_143_ghost", "maxLevel": 50}],
			"skills": []
		},
		"char_340_shwaz": {
			"name": "Schwarz",
			"appellation": "Schwarz",
			"description": "Hits very hard",
			"position": "RANGED",
			"tagList": ["DPS"],
			"rarity": 5,
			"profession": "SNIPER",
			"phases": [{"characterPrefabKey": "char_340_shwaz", "maxLevel": 50}],
			"skills": []
		},
		"char_503_rang": {
			"name": "Rangers",
			"appellation": "Rangers",
			"description": "Shoots drones",
			"position": "RANGED",
			"tagList": ["DPS", "Support"],
			"rarity": 2,
			"profession": "SNIPER",
			"phases": [{"characterPrefabKey": "char_503_rang", "maxLevel": 40}],
			"skills": []
		},
		"token_10012_wall": {
			"name": "Wall",
			"appellation": "",
			"description": "A deployable wall",
			"position": "MELEE",
			"tagList": null,
			"rarity": 0,
			"profession": "TOKEN",
			"phases": [],
			"skills": []
		}
	}`,

	"skin_table.json": `{
		"charSkins": {
			"char_002_amiya#1": {
				"skinId": "char_002_amiya#1",
				"charId": "char_002_amiya",
				"portraitId": "char_002_amiya_1+",
				"displaySkin": {
					"skinName": "Fresh Fastener",
					"modelName": "Amiya",
					"drawerName": "Infukun",
					"skinGroupName": "EPOQUE",
					"content": "<color name=#0098dc>A light spring coat.</color>",
					"dialog": "Shall we go, Doctor?",
					"usage": "Outfit for Amiya.",
					"description": "",
					"obtainApproach": "Outfit Store"
				}
			},
			"char_002_amiya#2": {
				"skinId": "char_002_amiya#2",
				"charId": "char_002_amiya",
				"portraitId": "char_002_amiya_2",
				"displaySkin": {
					"skinName": "Newsgirl",
					"modelName": "Amiya",
					"drawerName": "Infukun",
					"skinGroupName": "TEST COLLECTION",
					"content": "Hot off the press.",
					"dialog": "",
					"usage": "",
					"description": "",
					"obtainApproach": ""
				}
			}
		}
	}`,

	"skill_table.json": `{
		"skchr_amiya_1": {
			"skillId": "skchr_amiya_1",
			"iconId": null,
			"levels": [{
				"name": "Tactical Chant",
				"description": "ATK <@ba.vup>+30%</>",
				"skillType": 1,
				"duration": 20,
				"spData": {"spType": 1, "spCost": 30, "initSp": 15}
			}]
		},
		"skchr_fang_1": {
			"skillId": "skchr_fang_1",
			"iconId": null,
			"levels": [{
				"name": "Charge",
				"description": "Gain DP",
				"skillType": 1,
				"duration": 0,
				"spData": {"spType": 1, "spCost": 25, "initSp": 10}
			}]
		}
	}`,

	"item_table.json": `{
		"items": {
			"30012": {
				"itemId": "30012",
				"name": "Orirock Cube",
				"description": "A common mineral.",
				"rarity": 1,
				"iconId": "MTL_SL_RKT2",
				"usage": "Material for crafting.",
				"obtainApproach": "Stage drop",
				"buildingProductList": [{"roomType": "WORKSHOP", "formulaId": "1"}]
			},
			"3003": {
				"itemId": "3003",
				"name": "Pure Gold",
				"description": "Shiny.",
				"rarity": 3,
				"iconId": "GOLD_SHD",
				"usage": "Trading post material.",
				"obtainApproach": "Base production",
				"buildingProductList": []
			},
			"4002": {
				"itemId": "4002",
				"name": "Originite Prime",
				"description": "Premium currency.",
				"rarity": 4,
				"iconId": "AP_GAMEPLAY",
				"usage": "Restores sanity.",
				"obtainApproach": "First clears",
				"buildingProductList": []
			}
		}
	}`,

	"stage_table.json": `{
		"stages": {
			"main_00-01": {
				"stageId": "main_00-01",
				"code": "0-1",
				"name": "Explosion",
				"description": "The first operation.",
				"difficulty": "NORMAL",
				"dangerLevel": "Lv.1",
				"hardStagedId": "",
				"bossMark": false,
				"apCost": 6,
				"apFailReturn": 3,
				"practiceTicketCost": -1,
				"expGain": 60,
				"goldGain": 60,
				"completeFavor": 2,
				"passFavor": 1,
				"slProgress": 1,
				"unlockCondition": [],
				"stageDropInfo": {
					"displayRewards": [{"type": "ITEM", "id": "30012", "dropType": 2}],
					"displayDetailRewards": [{"type": "ITEM", "id": "30012", "dropType": 3}]
				}
			},
			"main_01-07": {
				"stageId": "main_01-07",
				"code": "1-7",
				"name": "Misty Memory",
				"description": "Fog everywhere <@lv.item><Enemy Level></>",
				"difficulty": "NORMAL",
				"dangerLevel": "Lv.12",
				"hardStagedId": "hard_01-07",
				"bossMark": true,
				"apCost": 9,
				"apFailReturn": 4,
				"practiceTicketCost": 1,
				"expGain": 120,
				"goldGain": 120,
				"completeFavor": 5,
				"passFavor": 2,
				"slProgress": 4,
				"unlockCondition": [{"stageId": "main_00-01", "completeState": 2}],
				"stageDropInfo": {
					"displayRewards": [
						{"type": "ITEM", "id": "4002", "dropType": 8},
						{"type": "TKT_RECRUIT", "id": "char_123_fang", "dropType": 1},
						{"type": "FURN", "id": "furn_0001", "dropType": 1},
						{"type": "ITEM", "id": "30012", "dropType": 2},
						{"type": "ITEM", "id": "3003", "dropType": 3}
					],
					"displayDetailRewards": [
						{"type": "ITEM", "id": "30012", "dropType": 2},
						{"type": "ITEM", "id": "3003", "dropType": 4}
					]
				}
			},
			"hard_01-07": {
				"stageId": "hard_01-07",
				"code": "1-7",
				"name": "Misty Memory",
				"description": "Fog everywhere, but worse",
				"difficulty": "FOUR_STAR",
				"dangerLevel": "Lv.30",
				"hardStagedId": "",
				"bossMark": true,
				"apCost": 9,
				"apFailReturn": 4,
				"practiceTicketCost": -1,
				"expGain": 0,
				"goldGain": 0,
				"completeFavor": 0,
				"passFavor": 0,
				"slProgress": 0,
				"unlockCondition": [{"stageId": "main_01-07", "completeState": 2}],
				"stageDropInfo": {
					"displayRewards": [],
					"displayDetailRewards": [{"type": "ITEM", "id": "30012", "dropType": 2}]
				}
			}
		}
	}`,

	"building_data.json": `{
		"customData": {
			"furnitures": {
				"furn_0001": {
					"id": "furn_0001",
					"name": "Rustic Table",
					"usage": "A table.",
					"description": "Sturdy.",
					"obtainApproach": "Furniture Store",
					"rarity": 2,
					"type": "FURNITURE",
					"location": "NONE",
					"category": "TABLE",
					"width": 2,
					"depth": 2,
					"height": 1,
					"comfort": 100
				}
			}
		}
	}`,

	"enemy_handbook_table.json": `{
		"enemy_1000_gopro": {
			"enemyId": "enemy_1000_gopro",
			"enemyIndex": "B1",
			"name": "Originium Slug",
			"enemyRace": "Infected Creature",
			"attackType": "Melee",
			"ability": "",
			"endure": "D",
			"attack": "D",
			"defence": "D",
			"resistance": "D",
			"description": "A small creature."
		}
	}`,

	"tip_table.json": `{
		"tips": [
			{"tip": "Mind your Sanity", "category": "BATTLE"},
			{"tip": "Keep your base running", "category": "BUILDING"}
		]
	}`,
}
