package render

import (
	"fmt"
	"strings"

	"github.com/roguetea/arkdex/internal/utils"
	"github.com/roguetea/arkdex/pkg/gamedata"
	"github.com/roguetea/arkdex/pkg/resolve"
)

// originiteID is the paid currency; it technically appears in every stage's
// first-clear list, so its farming section is noise and gets skipped.
const originiteID = "4002"

// Item formats an item with the stages that drop it. Chance drops are
// already filtered out of drops by the resolver's FarmableStages.
func Item(item *gamedata.Item, drops []resolve.StageDrop) Message {
	var desc strings.Builder
	if item.Usage != "" {
		fmt.Fprintf(&desc, "%s\n", item.Usage)
	}
	if item.Description != "" {
		fmt.Fprintf(&desc, "_%s_\n", item.Description)
	}
	fmt.Fprintf(&desc, "**Rarity** : %s\n", stars(item.Rarity))
	if item.ObtainApproach != "" {
		fmt.Fprintf(&desc, "**How to obtain** : %s", item.ObtainApproach)
	}
	msg := Message{
		Title:       fmt.Sprintf("%s (`%s`)", item.Name, item.ItemID),
		Description: strings.TrimRight(desc.String(), "\n"),
		Thumbnail:   itemIconURL(item.IconID),
	}

	if item.ItemID != originiteID {
		var lines []string
		for _, d := range drops {
			mark := ""
			if d.Stage.Difficulty == "FOUR_STAR" {
				mark = " (Challenge Mode)"
			}
			lines = append(lines, fmt.Sprintf("• **[%s]** %s%s [%s]",
				d.Stage.Code, d.Stage.Name, mark,
				gamedata.DropTypeLabel(d.DropType, item.Rarity)))
		}
		msg.addField("Stages", strings.Join(lines, "\n"))
	}

	var rooms []string
	for _, p := range item.BuildingProductList {
		rooms = append(rooms, fmt.Sprintf("• %s", utils.TitleCase(p.RoomType)))
	}
	msg.addField("Base Production", strings.Join(rooms, "\n"))
	return msg
}

// Furniture formats a furniture record with its placement measurements.
func Furniture(f *gamedata.Furniture) Message {
	var desc strings.Builder
	if f.Usage != "" {
		fmt.Fprintf(&desc, "%s\n", f.Usage)
	}
	if f.Description != "" {
		fmt.Fprintf(&desc, "_%s_\n", f.Description)
	}
	fmt.Fprintf(&desc, "**Rarity** : %s\n", stars(f.Rarity))
	if f.ObtainApproach != "" {
		fmt.Fprintf(&desc, "**How to obtain** : %s", f.ObtainApproach)
	}
	msg := Message{
		Title:       f.Name,
		Description: strings.TrimRight(desc.String(), "\n"),
		Thumbnail:   furnitureIconURL(f.ID),
	}
	msg.addField("Details", fmt.Sprintf("• Type : %s\n• Location : %s\n• Category : %s",
		utils.TitleCase(f.Type), utils.TitleCase(f.Location), utils.TitleCase(f.Category)))
	msg.addField("Measurements", fmt.Sprintf("• Width : %d\n• Depth : %d\n• Height : %d\n• Ambience : %d",
		f.Width, f.Depth, f.Height, f.Comfort))
	return msg
}

// Enemy formats an enemy handbook entry.
func Enemy(e *gamedata.Enemy) Message {
	title := e.Name
	if e.EnemyIndex != "" {
		title = fmt.Sprintf("[%s] %s", e.EnemyIndex, e.Name)
	}
	msg := Message{
		Title:       title,
		Description: collapseRichTags(e.Description),
	}
	var details strings.Builder
	if e.EnemyRace != "" {
		fmt.Fprintf(&details, "• Race : %s\n", e.EnemyRace)
	}
	if e.AttackType != "" {
		fmt.Fprintf(&details, "• Attack Type : %s\n", e.AttackType)
	}
	if e.Ability != "" {
		fmt.Fprintf(&details, "• Ability : %s\n", collapseRichTags(e.Ability))
	}
	msg.addField("Details", strings.TrimRight(details.String(), "\n"))
	msg.addField("Combat Grades", fmt.Sprintf("• Endurance : %s\n• Attack : %s\n• Defense : %s\n• Arts Resistance : %s",
		grade(e.Endure), grade(e.Attack), grade(e.Defence), grade(e.Resistance)))
	return msg
}

func grade(g string) string {
	if g == "" {
		return "-"
	}
	return g
}

// Tip formats a loading-screen tip.
func Tip(t *gamedata.Tip) Message {
	return Message{Description: fmt.Sprintf("**[%s]** %s.", t.Category, t.Tip)}
}
