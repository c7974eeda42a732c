package render

import (
	"fmt"
	"strings"

	"github.com/roguetea/arkdex/internal/utils"
	"github.com/roguetea/arkdex/pkg/gamedata"
	"github.com/roguetea/arkdex/pkg/resolve"
)

// Operator formats an operator's identity card.
func Operator(op *gamedata.Operator) Message {
	title := op.Name
	if op.Appellation != "" && op.Appellation != op.Name {
		title = fmt.Sprintf("%s (%s)", op.Name, op.Appellation)
	}
	msg := Message{
		Title:       title,
		Description: collapseRichTags(op.Description),
		Thumbnail:   avatarURL(op.ID),
	}
	details := fmt.Sprintf("• Class : %s\n• Position : %s\n• Rarity : %s",
		gamedata.ProfessionName(op.Profession),
		utils.TitleCase(op.Position),
		stars(op.Rarity))
	msg.addField("Details", details)
	if len(op.TagList) > 0 {
		msg.addField("Tags", strings.Join(op.TagList, ", "))
	}
	return msg
}

// Skin formats a single skin with its color directive applied. One message
// per skin so front ends can paginate them.
func Skin(skin *gamedata.Skin) Message {
	ds := skin.DisplaySkin
	name := ds.SkinName
	if name == "" {
		name = ds.ModelName
	}
	color, content := parseColorDirective(ds.Content)
	if content == "" {
		content = "No description available"
	}
	msg := Message{
		Title:       fmt.Sprintf("%s (%s)", name, ds.SkinGroupName),
		Description: content,
		Color:       color,
		Image:       skinImageURL(skin.PortraitID),
		Thumbnail:   skinThumbURL(skin.PortraitID, ds.ModelName),
	}
	var details strings.Builder
	fmt.Fprintf(&details, "• Model : %s\n• Design : %s\n", ds.ModelName, ds.DrawerName)
	if ds.Dialog != "" && !strings.Contains(content, ds.Dialog) {
		fmt.Fprintf(&details, "• Dialog : %s\n", ds.Dialog)
	}
	if ds.Usage != "" {
		fmt.Fprintf(&details, "• Usage : %s\n", ds.Usage)
	}
	if ds.Description != "" {
		fmt.Fprintf(&details, "• Description : %s\n", ds.Description)
	}
	if ds.ObtainApproach != "" {
		fmt.Fprintf(&details, "• How to obtain : %s\n", ds.ObtainApproach)
	}
	msg.addField("Details", details.String())
	return msg
}

// Skins formats every skin of an operator, in table order.
func Skins(op *gamedata.Operator, skins []*gamedata.Skin) []Message {
	msgs := make([]Message, 0, len(skins))
	for _, s := range skins {
		msgs = append(msgs, Skin(s))
	}
	if len(msgs) == 0 {
		msgs = append(msgs, Message{
			Title:       op.Name,
			Description: "No skins available",
		})
	}
	return msgs
}

// spTypeLabels maps skill SP charge types to display text.
var spTypeLabels = map[int]string{
	1: "Auto Recovery",
	2: "Offensive Recovery",
	4: "Defensive Recovery",
	8: "Passive",
}

// Skills formats an operator's skills, instance order preserved, using the
// definition-level data for names and SP economy.
func Skills(op *gamedata.Operator, skills []resolve.SkillInfo) Message {
	msg := Message{
		Title:     fmt.Sprintf("%s - Skills", op.Name),
		Thumbnail: avatarURL(op.ID),
	}
	if len(skills) == 0 {
		msg.Description = "No skills available"
		return msg
	}
	for i, sk := range skills {
		if sk.Definition == nil || len(sk.Definition.Levels) == 0 {
			msg.addField(fmt.Sprintf("Skill %d", i+1), fmt.Sprintf("`%s` (no data)", sk.Instance.SkillID))
			continue
		}
		lv := sk.Definition.Levels[0]
		var detail strings.Builder
		if label, ok := spTypeLabels[lv.SpData.SpType]; ok {
			fmt.Fprintf(&detail, "• Charge : %s\n", label)
		}
		fmt.Fprintf(&detail, "• SP Cost : %d (Initial : %d)\n", lv.SpData.SpCost, lv.SpData.InitSp)
		if lv.Duration > 0 {
			fmt.Fprintf(&detail, "• Duration : %.0fs\n", lv.Duration)
		}
		fmt.Fprintf(&detail, "%s", collapseRichTags(lv.Description))
		msg.addField(fmt.Sprintf("%d. %s", i+1, lv.Name), detail.String())
	}
	return msg
}
