// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessduel-go/internal/config"
)

var (
	// Game options
	startFEN    = flag.String("fen", "", "Start position in FEN (default: standard position)")
	autoRestart = flag.Bool("restart", false, "Start a new game after each game over, once both sides are ready")

	// Dispatch options
	workers    = flag.Int("workers", 2, "Number of move dispatch workers")
	bufferSize = flag.Int("queue", 16, "Move dispatch queue capacity")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput = flag.Bool("J", false, "Write events as JSON lines instead of board diagrams")
	eventsFile = flag.String("events", "", "Also write every event as JSON lines to this file")
	whiteView  = flag.Bool("whiteview", false, "Always draw White at the bottom")
	hints      = flag.Bool("hints", false, "List the legal moves after an invalid move")
	noCoords   = flag.Bool("nocoords", false, "Omit rank and file labels around the board")

	// Logging
	logFile = flag.String("l", "", "Write diagnostics to log file (default: stderr)")
	verbose = flag.Bool("v", false, "Log every dispatched move")
	quiet   = flag.Bool("s", false, "Silent mode (no diagnostics)")

	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags copies command-line flags onto cfg.
func applyFlags(cfg *config.Config) {
	applyGameFlags(cfg)
	applyDispatchFlags(cfg)
	applyOutputFlags(cfg)

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
}

func applyGameFlags(cfg *config.Config) {
	cfg.Game.StartFEN = *startFEN
	cfg.Game.AutoRestart = *autoRestart
}

func applyDispatchFlags(cfg *config.Config) {
	cfg.Dispatch.Workers = *workers
	cfg.Dispatch.BufferSize = *bufferSize
}

func applyOutputFlags(cfg *config.Config) {
	if *jsonOutput {
		cfg.Output.Format = config.JSON
	}
	if *whiteView {
		cfg.Output.Perspective = config.PerspectiveWhite
	}
	cfg.Output.ShowHints = *hints
	cfg.Output.Coordinates = !*noCoords
}
