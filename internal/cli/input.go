// Package cli provides a simple interactive input loop for debugging lookups in real-time
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/roguetea/arkdex/internal/logger"
	"github.com/roguetea/arkdex/pkg/gamedata"
	"github.com/roguetea/arkdex/pkg/recruit"
	"github.com/roguetea/arkdex/pkg/render"
	"github.com/roguetea/arkdex/pkg/resolve"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75"))
	fieldStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	faintStyle = lipgloss.NewStyle().Faint(true)
)

// InputHandler handles CLI input for testing lookups against loaded tables
type InputHandler struct {
	cache        *gamedata.Cache
	resolver     *resolve.Resolver
	logger       *log.Logger
	maxQueryLen  int
	suggestLimit int
}

// NewInputHandler creates a new CLI input handler
func NewInputHandler(cache *gamedata.Cache, resolver *resolve.Resolver, maxQueryLen, suggestLimit int) *InputHandler {
	return &InputHandler{
		cache:        cache,
		resolver:     resolver,
		logger:       logger.New("cli"),
		maxQueryLen:  maxQueryLen,
		suggestLimit: suggestLimit,
	}
}

// Start begins the CLI input loop
func (h *InputHandler) Start() error {
	h.logger.Print("Arkdex CLI")
	reader := bufio.NewReader(os.Stdin)
	h.logger.Print("enter '<command> <query>' to look something up (Ctrl+C to exit):")
	h.logger.Print("commands: operator skins skills stage item furniture enemy tip recruit combos suggest")

	for {
		h.logger.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		h.handleInput(line)
	}
}

// handleInput parses one command line and prints the rendered result
func (h *InputHandler) handleInput(line string) {
	cmd, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	if len(rest) > h.maxQueryLen {
		h.logger.Errorf("Query too long: %d characters (max %d)", len(rest), h.maxQueryLen)
		return
	}

	start := time.Now()
	msgs, err := h.dispatch(cmd, rest)
	elapsed := time.Since(start)

	if err != nil {
		h.logger.Errorf("%v", err)
		return
	}
	h.logger.Debugf("Took %v for '%s'", elapsed, line)

	for _, msg := range msgs {
		printMessage(msg)
	}
}

func (h *InputHandler) dispatch(cmd, query string) ([]render.Message, error) {
	switch cmd {
	case "operator":
		op, err := h.resolver.Operator(query)
		if err != nil {
			return nil, err
		}
		return []render.Message{render.Operator(op)}, nil
	case "skins":
		op, skins, err := h.resolver.OperatorSkins(query)
		if err != nil {
			return nil, err
		}
		return render.Skins(op, skins), nil
	case "skills":
		op, skills, err := h.resolver.OperatorSkills(query)
		if err != nil {
			return nil, err
		}
		return []render.Message{render.Skills(op, skills)}, nil
	case "stage":
		stage, challenge, err := h.resolver.Stage(query)
		if err != nil {
			return nil, err
		}
		msg, err := render.Stage(h.cache, stage, challenge)
		if err != nil {
			return nil, err
		}
		return []render.Message{msg}, nil
	case "item":
		item, err := h.resolver.Item(query)
		if err != nil {
			return nil, err
		}
		drops, err := h.resolver.FarmableStages(item.ItemID)
		if err != nil {
			return nil, err
		}
		return []render.Message{render.Item(item, drops)}, nil
	case "furniture":
		f, err := h.resolver.Furniture(query)
		if err != nil {
			return nil, err
		}
		return []render.Message{render.Furniture(f)}, nil
	case "enemy":
		e, err := h.resolver.Enemy(query)
		if err != nil {
			return nil, err
		}
		return []render.Message{render.Enemy(e)}, nil
	case "tip":
		tip, err := h.resolver.Tip(query)
		if err != nil {
			return nil, err
		}
		return []render.Message{render.Tip(tip)}, nil
	case "recruit":
		tags := splitTags(query)
		matches, err := recruit.Search(h.cache, tags)
		if err != nil {
			return nil, err
		}
		return []render.Message{render.RecruitMatches(tags, matches)}, nil
	case "combos":
		combos, err := recruit.Combinations(h.cache, splitTags(query))
		if err != nil {
			return nil, err
		}
		return render.Combos(combos), nil
	case "suggest":
		kind, prefix, _ := strings.Cut(query, " ")
		keys, err := h.resolver.Suggest(kind, strings.TrimSpace(prefix), h.suggestLimit)
		if err != nil {
			return nil, err
		}
		h.logger.Printf("Found %d known keys:", len(keys))
		for i, k := range keys {
			h.logger.Printf("%2d. %s", i+1, k)
		}
		return nil, nil
	}
	return nil, fmt.Errorf("unknown command %q", cmd)
}

// splitTags accepts both comma and space separated tag lists; multi-word
// tags like "top operator" need the comma form.
func splitTags(query string) []string {
	var sep string
	if strings.Contains(query, ",") {
		sep = ","
	} else {
		sep = " "
	}
	var tags []string
	for _, t := range strings.Split(query, sep) {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// printMessage renders one message for the terminal
func printMessage(msg render.Message) {
	if msg.Title != "" {
		fmt.Println(titleStyle.Render(msg.Title))
	}
	if msg.Description != "" {
		fmt.Println(msg.Description)
	}
	for _, f := range msg.Fields {
		fmt.Println(fieldStyle.Render(f.Name))
		fmt.Println(f.Value)
	}
	if msg.Image != "" {
		fmt.Println(faintStyle.Render(msg.Image))
	}
	fmt.Println()
}
