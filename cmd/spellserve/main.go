// Copyright 2025 The SpellServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the spelling correction server and CLI [DBG] application.

Note: This is a BETA release. APIs and functionality may rapidly change.

SpellServe provides fast single word spelling correction using a BK-tree over
an approximate edit distance, with frequency weighted confidence ranking. It
can operate as a MessagePack IPC server for integration with text editors, or
as a CLI application for testing and debugging.

The engine builds its index once at startup from a ranked word list. Words are
scored by their rank in the list, a small set of technical terms gets a score
boost, and repeated lookups are served from a bounded FIFO result cache.

# Usage

Start the server with default settings:

	spellserve

Use a custom word list and enable debug mode:

	spellserve -dict /path/to/ranked.txt -d

Run in CLI mode for interactive testing:

	spellserve -c -limit 5 -algo sift

The word list is a plain text file with one word per line, ordered from most
to least frequent. Lines starting with '#' and any columns after the first
are ignored, so frequency count files work unchanged. Without -dict the
embedded default list is used.

# Configuration

Runtime configuration is managed through a TOML file that supports engine
parameters, server limits, and CLI defaults:

	[engine]
	dictionary_size = 10000
	max_edit_distance = 2
	cache_size = 1000
	distance_algorithm = "sift"

	[server]
	max_limit = 24
	max_word_len = 60

The config file is automatically created with defaults if it doesn't exist.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. Correction requests
are processed synchronously with microsecond timing information included in
responses.

Send a correction request:

	{"id": "req1", "op": "correct", "w": "helo", "l": 5}

Receive suggestions with confidence ranking:

	{"id": "req1", "s": [{"w": "hello", "d": 1.5, "cf": 0.85}, {"w": "help", "d": 1.0, "cf": 0.50}], "c": 2, "t": 145}

Prefix completions and engine management use the same envelope:

	{"id": "req2", "op": "complete", "w": "hel", "l": 10}
	{"id": "adm1", "op": "stats"}
	{"id": "adm2", "op": "clear"}

# Server Mode

The default mode starts a MessagePack IPC server that processes correction
requests from stdin and writes responses to stdout. This design enables
integration with text editors and other applications through process
communication.

	srv := server.NewServer(corrector, config)
	err := srv.Start()

The server automatically handles request parsing, validation, and response
formatting. Limits for word length and result counts come from the TOML
config.

# CLI Mode

CLI mode provides an interactive interface for testing and debugging
correction functionality. It reads words from stdin and displays suggestions
with distance and confidence information, plus slash commands for
completions, engine counters and cache management.

	inputHandler := cli.NewInputHandler(corrector, maxLen, limit, noFilter)
	err := inputHandler.Start()

This mode is primarily intended for development and testing new features
before deploying to server mode. It supports the same filtering logic as the
server but with human-readable output.

# Correction Engine

The core correction functionality is provided by the spell package, which
implements BK-tree lookup with confidence ranking and result caching.

	corrector := spell.New(source, spell.Options{})
	suggestions := corrector.Corrections("helo")

Exact dictionary hits short-circuit the tree walk and report full confidence.
Everything else is ranked by a blend of word frequency and distance to the
query.

# Command Line Flags

The following flags control application behavior:

	-version
	    Show current version
	-d  Enable debug mode with detailed logging
	-c  Run in CLI mode instead of server mode
	-dict string
	    Path to a ranked word list file (embedded list if empty)
	-words int
	    Maximum number of words to load (use 0 for all words)
	-maxdist int
	    Maximum edit distance for candidate matches
	-cache int
	    Result cache capacity in entries
	-algo string
	    Distance algorithm: sift, levenshtein, damerau, osa
	-limit int
	    Number of suggestions to return (default from config)
	-maxlen int
	    Maximum word length accepted in CLI mode
	-no-filter
	    Disable input filtering for debugging
	-config string
	    Custom config file path

The application automatically resolves word list and config paths relative to
the executable location, supporting both development and production
deployments.

# Input Handling

Input filtering removes numeric, symbol-heavy and repetitive inputs by
default to keep corrections relevant, though this can be disabled for
debugging purposes. Lookups are cached, so repeating a query returns the
previously ranked suggestions without touching the tree.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spellserve/spellserve/internal/cli"
	"github.com/spellserve/spellserve/internal/logger"
	"github.com/spellserve/spellserve/internal/utils"
	"github.com/spellserve/spellserve/pkg/config"
	"github.com/spellserve/spellserve/pkg/dictionary"
	"github.com/spellserve/spellserve/pkg/server"
	"github.com/spellserve/spellserve/pkg/spell"
)

const (
	Version = "0.4.0-beta"
	AppName = "spellserve"
	gh      = "https://github.com/spellserve/spellserve"
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

// buildReport records dictionary and index sizes during engine construction.
type buildReport struct {
	words int
	nodes int
}

func (r *buildReport) DictionaryLoaded(words int) {
	r.words = words
	log.Debugf("Dictionary loaded: %d words", words)
}

func (r *buildReport) IndexBuilt(nodes int) {
	r.nodes = nodes
	log.Debugf("Index built: %d nodes", nodes)
}

// main calls other packages to initialize the server or CLI inputs.
// main() does not implement logic for them and only manages the flow.
func main() {
	sigHandler()
	defaultConfig := config.DefaultConfig()

	// custom Flags
	showVersion := flag.Bool("version", false, "Show current version")
	dictPath := flag.String("dict", "", "Path to a ranked word list file (embedded list if empty)")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	wordLimit := flag.Int("words", defaultConfig.Engine.DictionarySize, "Maximum number of words to load (use 0 for all words)")
	maxDist := flag.Int("maxdist", defaultConfig.Engine.MaxEditDistance, "Maximum edit distance for candidate matches")
	cacheSize := flag.Int("cache", defaultConfig.Engine.CacheSize, "Result cache capacity in entries")
	algo := flag.String("algo", defaultConfig.Engine.DistanceAlgorithm, "Distance algorithm: sift, levenshtein, damerau, osa")
	limit := flag.Int("limit", defaultConfig.CLI.DefaultLimit, "Number of suggestions to return")
	maxLen := flag.Int("maxlen", defaultConfig.CLI.DefaultMaxLen, "Maximum word length accepted in CLI mode")
	noFilter := flag.Bool("no-filter", defaultConfig.CLI.DefaultNoFilter, "Disable input filtering (DBG only) - checks all raw inputs (numbers, symbols, etc)")
	configFile := flag.String("config", "", "Custom config file path")

	flag.Parse()

	if *showVersion {
		banner := logger.NewPlain()

		styles := log.DefaultStyles()
		styles.Values["version"] = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}).
			Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})
		styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
		banner.SetStyles(styles)

		banner.Print("")
		banner.Print("[ SpellServe ] Serves really Fast spelling corrections!")
		banner.Print("", "version", Version)
		banner.Print("")
		banner.Print("use -h or --help to see available options")
		banner.Print("Github Repo", "gh", gh)

		os.Exit(0)
	}

	// Initialize path resolver for robust path handling
	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		log.Fatalf("Failed to initialize path resolver: %v", err)
		log.Print("Either env is not set or system is not supported")
		os.Exit(1)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	// Pathfinder for the word list
	var src dictionary.Source
	if *dictPath != "" {
		resolvedPath, err := pathResolver.GetWordListPath(*dictPath)
		if err != nil {
			log.Warnf("Word list not found at %s, using the embedded list", *dictPath)
			src = dictionary.DefaultSource{}
		} else {
			log.Debugf("Using word list at: %s", resolvedPath)
			src = dictionary.FileSource{Path: resolvedPath}
		}
	} else {
		log.Debug("No word list specified, using the embedded list")
		src = dictionary.DefaultSource{}
	}

	log.Debugf("Init corrector: words=[%d], maxDist=[%d], cache=[%d], algo=[%s]",
		*wordLimit, *maxDist, *cacheSize, *algo)

	report := &buildReport{}
	corrector := spell.New(src, spell.Options{
		DictionarySize:  *wordLimit,
		MaxEditDistance: *maxDist,
		CacheSize:       *cacheSize,
		Algorithm:       *algo,
		Listener:        report,
	})

	// CLI would be mainly used for testing and dbg purposes.
	// Any new features or changes should be tested in CLI mode first.
	if *cliMode {
		log.SetReportTimestamp(false)
		log.Debug("Input info:",
			"maxLen", *maxLen,
			"limit", *limit,
			"noFilter", *noFilter)

		inputHandler := cli.NewInputHandler(corrector, *maxLen, *limit, *noFilter)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
			os.Exit(1)
		}
		return
	}

	log.Debug("spawning IPC")
	appConfig, configPath, err := config.LoadConfigWithPriority(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
		os.Exit(1)
	}
	if configPath != "" {
		log.Debugf("Using config file: (%s)", configPath)
	}
	srv := server.NewServer(corrector, appConfig)

	showStartupInfo(report)

	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(report *buildReport) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	println("============")
	println(" SpellServe ")
	println("============")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Info("init: OK")
	log.Infof("dictionary: [ %d ] words", report.words)
	log.Infof("index: [ %d ] nodes", report.nodes)
	log.Info("status: ready")
	println("============")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
