// Copyright 2026 The TextGuard Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the text integrity server and CLI [DBG] application.

TextGuard analyzes user-submitted text for a campus community platform:
obfuscated profanity detection across Tagalog and English, spelling and
grammar checking with a bounded quality score, and deterministic
auto-correction. It can operate as a MessagePack IPC server for integration
with a host application, or as a CLI for testing and debugging.

All dictionaries are compiled into the binary; the engine needs no data
directory and is ready as soon as the process starts. Every analysis call is
a pure function of its input, so a single engine serves all requests.

# Usage

Start the server with default settings:

	textguard

Enable debug logging:

	textguard -d

Run in CLI mode for interactive testing:

	textguard -c

# Configuration

Runtime configuration is managed through a TOML file:

	[server]
	max_text_len = 20000
	report_stats = true

	[censor]
	mask = "*"

	[cli]
	default_command = "analyze"
	show_issues = true

The config file is automatically created with defaults if it doesn't exist,
at ~/.config/textguard/config.toml (falling back to the executable's
directory when no home is available).

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. Requests are
processed synchronously with microsecond timing information included in
responses.

Send a scan request:

	{"id": "req1", "op": "scan", "t": "free pizza sa friday"}

Receive the result:

	{"id": "req1", "hit": false, "m": [], "lang": "", "t": 120}

Supported ops are analyze, scan, censor, severity, autocorrect and health.
See the server package for the full message shapes.

# Server Mode

The default mode starts a MessagePack IPC server that processes analysis
requests from stdin and writes responses to stdout. This design enables
integration with host applications through process communication without a
network listener.

	srv := server.NewServer(eng, appConfig)
	err := srv.Start()

Because stdout carries the protocol, all logging goes to stderr.

# CLI Mode

CLI mode provides an interactive interface for testing and debugging the
analyzers. It reads lines from stdin and prints results in human-readable
form. Lines may carry a command prefix (scan:, censor:, severity:, fix:);
bare lines run the configured default command.

	inputHandler := cli.NewInputHandler(eng, appConfig)
	err := inputHandler.Start()

This mode is primarily intended for development: tune a dictionary or a
grammar rule, then check its effect on real sentences without an IPC client.

# Command Line Flags

The following flags control application behavior:

	-version
	    Show current version
	-d  Enable debug mode with detailed logging
	-c  Run in CLI mode instead of server mode
	-config string
	    Path to the TOML config file (default is resolved automatically)
	-mask string
	    Censor mask character, overriding the config value
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/campuslink/textguard/internal/cli"
	"github.com/campuslink/textguard/pkg/config"
	"github.com/campuslink/textguard/pkg/engine"
	"github.com/campuslink/textguard/pkg/server"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.6.0"
	AppName = "textguard"
	gh      = "https://github.com/campuslink/textguard"
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

	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	configPathFlag := flag.String("config", "", "Path to the TOML config file")
	maskFlag := flag.String("mask", "", "Censor mask character, overriding the config value")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	configPath := *configPathFlag
	if configPath == "" {
		var err error
		configPath, err = config.GetDefaultConfigPath()
		if err != nil {
			log.Fatalf("Failed to determine config path: (%v)", err)
		}
	}
	log.Debugf("Using config file: (%s)", configPath)

	appConfig, err := config.InitConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *maskFlag != "" {
		appConfig.Censor.Mask = *maskFlag
	}

	eng := engine.New()
	eng.SetMask(appConfig.MaskRune())
	log.Debug("Engine init done", "stats", eng.Stats())

	// CLI would be mainly used for testing and dbg purposes.
	// Any new rules or dictionary entries should be tested in CLI mode first.
	if *cliMode {
		log.SetReportTimestamp(false)
		inputHandler := cli.NewInputHandler(eng, appConfig)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(eng, appConfig)

	showStartupInfo(eng)

	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// printVersion displays the styled version banner.
func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()

	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["version"] = lipgloss.NewStyle().
		Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})

	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ TextGuard ] Keeps community text clean and readable!")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process.
// Everything goes to stderr: stdout belongs to the IPC protocol.
func showStartupInfo(eng *engine.Engine) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	stats := eng.Stats()
	fmt.Fprintln(os.Stderr, "===========")
	fmt.Fprintln(os.Stderr, " TextGuard ")
	fmt.Fprintln(os.Stderr, "===========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Info("init: OK")
	log.Infof("dictionaries: tl=%d en=%d whitelist=%d",
		stats["tagalogWords"], stats["englishWords"], stats["whitelist"])
	log.Info("status: ready")
	fmt.Fprintln(os.Stderr, "===========")
	fmt.Fprintln(os.Stderr, "Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
