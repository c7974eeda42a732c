// Copyright 2026 The Arkdex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the game-data lookup server and CLI application.

Arkdex answers free-text queries about Arknights game entities (operators,
skins, skills, stages, items, furniture, enemies, loading-screen tips and
recruitment tags) against the published data tables. It can operate as a
MessagePack IPC server for integration with chat bots, or as a CLI
application for testing and debugging.

Tables are parsed lazily: the first query against a table loads it, later
queries reuse the cached snapshot. Queries that miss every key exactly fall
back to fuzzy scoring, so misspelled names still resolve to the closest
record.

# Usage

Start the server with default settings:

	arkdex

Use a custom data directory and enable debug mode:

	arkdex -data /path/to/gamedata/excel -d

Run in CLI mode for interactive testing:

	arkdex -c -limit 10

The data directory should contain the JSON table files published with the
game data (character_table.json, stage_table.json, item_table.json, ...).

# Configuration

Runtime configuration is managed through a TOML file covering data sources,
server parameters and CLI defaults:

	[data]
	dir = "ArknightsData/en-US/gamedata/excel"
	recruit_url = "https://..."
	fetch_timeout_secs = 10

	[server]
	max_query_len = 60
	max_messages = 24

The config file is automatically created with defaults if it doesn't exist.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. Lookup requests
are processed synchronously with timing information included in responses.

Send a lookup request:

	{"id": "req1", "cmd": "operator", "q": "amya"}

Receive the formatted messages for the best match:

	{"id": "req1", "msgs": [{"t": "Amiya (Amiya)", ...}], "c": 1, "t": 2}

See pkg/server for the full command list and the error code contract.

# CLI Mode

CLI mode provides an interactive interface for testing lookups. It reads
"<command> <query>" lines from stdin and prints the formatted answer:

	> operator exusia
	> stage 4-7 +cm
	> recruit melee, guard

This mode is primarily intended for development; the same resolution logic
runs in both modes.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/roguetea/arkdex/internal/cli"
	"github.com/roguetea/arkdex/internal/logger"
	"github.com/roguetea/arkdex/pkg/config"
	"github.com/roguetea/arkdex/pkg/gamedata"
	"github.com/roguetea/arkdex/pkg/resolve"
	"github.com/roguetea/arkdex/pkg/server"
)

const (
	Version = "0.3.0"
	AppName = "arkdex"
	gh      = "https://github.com/roguetea/arkdex"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main calls other packages to initialize the server or CLI inputs.
// main() does not implement logic for them and only manages the flow.
func main() {
	sigHandler()
	defaultConfig := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	dataDir := flag.String("data", "", "Directory containing the game data JSON tables (overrides config)")
	configPath := flag.String("config", "", "Path to a custom config.toml")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	limit := flag.Int("limit", defaultConfig.CLI.SuggestLimit, "Number of keys the CLI suggest command lists")

	flag.Parse()

	if *showVersion {
		showVersionInfo()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	appConfig, activePath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
		os.Exit(1)
	}
	if activePath != "" {
		log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(activePath))
	}

	resolvedDataDir := appConfig.Data.Dir
	if *dataDir != "" {
		resolvedDataDir = *dataDir
	}
	log.Debugf("Using data dir at: %s", resolvedDataDir)

	cache := gamedata.New(resolvedDataDir,
		gamedata.WithRecruitURL(appConfig.Data.RecruitURL),
		gamedata.WithTimeout(time.Duration(appConfig.Data.FetchTimeoutSecs)*time.Second),
	)
	resolver := resolve.New(cache)

	// CLI would be mainly used for testing and dbg purposes.
	// Any new features or changes should be tested in CLI mode first.
	if *cliMode {
		log.SetReportTimestamp(false)
		log.Debug("Input info:",
			"maxQueryLen", appConfig.Server.MaxQueryLen,
			"suggestLimit", *limit)

		inputHandler := cli.NewInputHandler(cache, resolver, appConfig.Server.MaxQueryLen, *limit)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
			os.Exit(1)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(cache, resolver, appConfig)

	showStartupInfo(resolvedDataDir)

	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}

// showVersionInfo prints the styled version banner.
func showVersionInfo() {
	banner := logger.NewWithConfig("", log.InfoLevel, false, false, log.TextFormatter)

	styles := log.DefaultStyles()

	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["version"] = lipgloss.NewStyle().
		Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})

	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

	banner.SetStyles(styles)

	banner.Print("")
	banner.Print("[ Arkdex ] Looks up game entities from noisy queries!")
	banner.Print("", "version", Version)
	banner.Print("")
	banner.Print("use -h or --help to see available options")
	banner.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(dataDir string) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	println("==========")
	println("  Arkdex  ")
	println("==========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Info("init: OK")
	log.Infof("data dir: ( %s )", dataDir)
	log.Info("status: ready")
	println("==========")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
