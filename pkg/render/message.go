/*
Package render formats resolved game records into display messages.

A Message is transport-neutral: the IPC server ships it to chat front ends as
is, and the CLI mode prints a styled plain-text rendition. Formatting rules
(reward grouping, rarity stars, the color directive in skin descriptions)
follow the in-game presentation.
*/
package render

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// assetBase is the community mirror for game image assets.
const assetBase = "https://raw.githubusercontent.com/Aceship/AN-EN-Tags/master/img"

// Field is one titled section of a message.
type Field struct {
	Name  string `json:"name" msgpack:"n"`
	Value string `json:"value" msgpack:"v"`
}

// Message is a formatted lookup answer.
type Message struct {
	Title       string  `json:"title,omitempty" msgpack:"t,omitempty"`
	Description string  `json:"description,omitempty" msgpack:"d,omitempty"`
	Color       int     `json:"color,omitempty" msgpack:"col,omitempty"`
	Fields      []Field `json:"fields,omitempty" msgpack:"f,omitempty"`
	Image       string  `json:"image,omitempty" msgpack:"img,omitempty"`
	Thumbnail   string  `json:"thumbnail,omitempty" msgpack:"th,omitempty"`
}

func (m *Message) addField(name, value string) {
	if value == "" {
		return
	}
	m.Fields = append(m.Fields, Field{Name: name, Value: value})
}

// colorDirective is the embedded color markup some skin descriptions carry:
// <color name=#70919f>text</color>.
var colorDirective = regexp.MustCompile(`(?s)^<color name=(#[0-9a-f]{6})>(.*)</color>`)

// parseColorDirective splits a leading color directive off rich content,
// returning the color as an RGB int and the inner text. Content without a
// directive comes back unchanged with color 0.
func parseColorDirective(content string) (int, string) {
	m := colorDirective.FindStringSubmatch(content)
	if m == nil {
		return 0, content
	}
	c, err := strconv.ParseInt(strings.TrimPrefix(m[1], "#"), 16, 32)
	if err != nil {
		return 0, content
	}
	return int(c), m[2]
}

// richTag matches the game's inline rich-text spans, e.g.
// <@lv.item><Enemy Level></>.
var richTag = regexp.MustCompile(`(?s)<@.+?>(<?[^>]*>?)</>`)

// collapseRichTags rewrites rich-text spans as bold markers.
func collapseRichTags(s string) string {
	return richTag.ReplaceAllString(s, "**$1**")
}

// stars renders a 0-indexed rarity tier as its in-game star count.
func stars(rarity int) string {
	if rarity < 0 {
		rarity = 0
	}
	return strings.Repeat("☆", rarity+1)
}

// escapePortraitID applies the asset mirror's file naming quirks: "+" becomes
// "a", and "#" becomes "b" only for the Amiya model, otherwise it is dropped.
func escapePortraitID(portraitID, modelName string) string {
	id := strings.ReplaceAll(portraitID, "+", "a")
	if modelName == "Amiya" {
		id = strings.ReplaceAll(id, "#", "b")
	} else {
		id = strings.ReplaceAll(id, "#", "")
	}
	return id
}

func avatarURL(charID string) string {
	return fmt.Sprintf("%s/avatars/%s.png", assetBase, url.PathEscape(charID))
}

func itemIconURL(iconID string) string {
	return fmt.Sprintf("%s/items/%s.png", assetBase, url.PathEscape(iconID))
}

func furnitureIconURL(id string) string {
	return fmt.Sprintf("%s/furniture/%s.png", assetBase, url.PathEscape(id))
}

func skinImageURL(portraitID string) string {
	return fmt.Sprintf("%s/characters/%s.png", assetBase, url.PathEscape(portraitID))
}

func skinThumbURL(portraitID, modelName string) string {
	return fmt.Sprintf("%s/portraits/%s.png", assetBase, url.PathEscape(escapePortraitID(portraitID, modelName)))
}
