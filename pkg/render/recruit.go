package render

import (
	"fmt"
	"strings"

	"github.com/roguetea/arkdex/pkg/recruit"
)

// RecruitMatches formats a plain tag search: one line per operator with its
// full derived tag set.
func RecruitMatches(tags []string, matches []recruit.Match) Message {
	msg := Message{
		Title: fmt.Sprintf("Operators matching: %s", strings.Join(tags, ", ")),
	}
	var lines []string
	for _, m := range matches {
		lines = append(lines, fmt.Sprintf("• %s %s - %s",
			stars(m.Operator.Rarity), m.Operator.Name, strings.Join(m.Tags, ", ")))
	}
	msg.Description = strings.Join(lines, "\n")
	return msg
}

// Combos formats the tag-combination search: one message per subset, most
// specific combination first, so front ends can paginate them in the order
// they arrive.
func Combos(combos []recruit.Combo) []Message {
	msgs := make([]Message, 0, len(combos))
	for _, c := range combos {
		var lines []string
		for _, m := range c.Operators {
			lines = append(lines, fmt.Sprintf("• %s %s", stars(m.Operator.Rarity), m.Operator.Name))
		}
		msgs = append(msgs, Message{
			Title:       strings.Join(c.Tags, " + "),
			Description: strings.Join(lines, "\n"),
		})
	}
	return msgs
}
