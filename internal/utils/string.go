package utils

import "strings"

// TitleCase uppercases the first letter of each space- or dash-separated word
// and lowercases the rest, turning enum-like codes ("MELEE", "ROOM_TYPE")
// into display text.
func TitleCase(s string) string {
	s = strings.ToLower(strings.ReplaceAll(s, "_", " "))
	var b strings.Builder
	b.Grow(len(s))
	upperNext := true
	for _, r := range s {
		switch {
		case r == ' ' || r == '-':
			upperNext = true
			b.WriteRune(r)
		case upperNext:
			b.WriteRune(toUpper(r))
			upperNext = false
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func toUpper(r rune) rune {
	if 'a' <= r && r <= 'z' {
		return r - 'a' + 'A'
	}
	return r
}
