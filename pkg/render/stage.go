package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/roguetea/arkdex/pkg/gamedata"
)

// Stage formats a stage record: header, costs and gains, unlock requirements
// and the reward lists grouped the way the stage screen groups them.
// Reward entries reference other tables (items, recruit tickets, furniture),
// so formatting needs the cache.
func Stage(cache *gamedata.Cache, stage *gamedata.Stage, challenge bool) (Message, error) {
	title := fmt.Sprintf("[%s] %s", stage.Code, stage.Name)
	if stage.BossMark {
		title += " (Boss Stage)"
	}
	if challenge {
		title += " (Challenge Mode)"
	}
	msg := Message{Title: title}

	desc := collapseRichTags(stage.Description)
	if stage.DangerLevel != "" {
		desc = fmt.Sprintf("Recommended Operator Lv. **[%s]**\n%s", stage.DangerLevel, desc)
	}
	msg.Description = desc

	practice := stage.PracticeTicketCost
	if practice < 0 {
		practice = 0
	}
	details := fmt.Sprintf(
		"• Sanity Cost : %d (Retreat refund : %d)\n• Practice Ticket Cost : %d\n• EXP Gain : %d\n• LMD Gain : %d\n• Favor Gain : %d (2 stars : %d)",
		stage.ApCost, stage.ApFailReturn, practice,
		stage.ExpGain, stage.GoldGain, stage.CompleteFavor, stage.PassFavor)
	if stage.SlProgress > 0 {
		details += fmt.Sprintf("\n• Storyline progress : %d%%", stage.SlProgress)
	}
	msg.addField("Details", details)

	if unlocks, err := unlockLines(cache, stage); err != nil {
		return Message{}, err
	} else if unlocks != "" {
		msg.addField("Unlock Requirements", unlocks)
	}

	first, err := firstClearLines(cache, stage)
	if err != nil {
		return Message{}, err
	}
	msg.addField("First Clear", first)

	regular, err := itemLines(cache, stage.StageDropInfo.DisplayRewards, gamedata.DropFixedOrRare)
	if err != nil {
		return Message{}, err
	}
	msg.addField("Regular Drops", regular)

	special, err := itemLines(cache, stage.StageDropInfo.DisplayRewards, gamedata.DropUncommon)
	if err != nil {
		return Message{}, err
	}
	msg.addField("Special Drops", special)

	extra, err := itemLines(cache, stage.StageDropInfo.DisplayDetailRewards, gamedata.DropChance)
	if err != nil {
		return Message{}, err
	}
	msg.addField("Extra Drops (Small Chance)", extra)

	return msg, nil
}

// unlockLines formats the stages gating this one, resolving their codes.
func unlockLines(cache *gamedata.Cache, stage *gamedata.Stage) (string, error) {
	var lines []string
	for _, cond := range stage.UnlockCondition {
		ref, err := cache.StageByID(cond.StageID)
		if err != nil {
			return "", err
		}
		label := cond.StageID
		if ref != nil {
			label = fmt.Sprintf("[%s] %s", ref.Code, ref.Name)
		}
		lines = append(lines, fmt.Sprintf("• %s : %s", gamedata.UnlockStateLabel(cond.CompleteState), label))
	}
	return strings.Join(lines, "\n"), nil
}

// firstClearLines collects one-time rewards: prime currency (type 8), then
// regular first-clear items, then recruit tickets and furniture, which live
// in their own tables.
func firstClearLines(cache *gamedata.Cache, stage *gamedata.Stage) (string, error) {
	var lines []string
	rewards := stage.StageDropInfo.DisplayRewards
	for _, r := range rewards {
		if r.DropType != gamedata.DropFirstClearOri {
			continue
		}
		line, err := itemLine(cache, r.ID)
		if err != nil {
			return "", err
		}
		lines = append(lines, line)
	}
	for _, r := range rewards {
		if r.DropType != gamedata.DropFirstClear || r.Type == "TKT_RECRUIT" || r.Type == "FURN" {
			continue
		}
		line, err := itemLine(cache, r.ID)
		if err != nil {
			return "", err
		}
		lines = append(lines, line)
	}
	for _, r := range rewards {
		if r.DropType != gamedata.DropFirstClear || r.Type != "TKT_RECRUIT" {
			continue
		}
		op, err := cache.OperatorByID(r.ID)
		if err != nil {
			return "", err
		}
		if op == nil {
			log.Warnf("Stage %s first-clear reward references unknown operator %s", stage.StageID, r.ID)
			continue
		}
		lines = append(lines, fmt.Sprintf("• %s", op.Name))
	}
	for _, r := range rewards {
		if r.DropType != gamedata.DropFirstClear || r.Type != "FURN" {
			continue
		}
		furn, err := cache.FurnitureByID(r.ID)
		if err != nil {
			return "", err
		}
		if furn == nil {
			log.Warnf("Stage %s first-clear reward references unknown furniture %s", stage.StageID, r.ID)
			continue
		}
		lines = append(lines, fmt.Sprintf("• %s", furn.Name))
	}
	return strings.Join(lines, "\n"), nil
}

// itemLines formats the item rewards of one drop type group.
func itemLines(cache *gamedata.Cache, rewards []gamedata.RewardDisplay, dropType int) (string, error) {
	var lines []string
	for _, r := range rewards {
		if r.DropType != dropType {
			continue
		}
		line, err := itemLine(cache, r.ID)
		if err != nil {
			return "", err
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}

func itemLine(cache *gamedata.Cache, itemID string) (string, error) {
	item, err := cache.ItemByID(itemID)
	if err != nil {
		return "", err
	}
	if item == nil {
		return fmt.Sprintf("• `%s`", itemID), nil
	}
	return fmt.Sprintf("• %s (`%s`)", item.Name, item.ItemID), nil
}
