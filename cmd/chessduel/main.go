// chessduel runs a two-player game of chess-like duel at one terminal.
package main

import (
	stderrors "errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessduel-go/internal/chess"
	"github.com/lgbarn/chessduel-go/internal/config"
	"github.com/lgbarn/chessduel-go/internal/console"
	"github.com/lgbarn/chessduel-go/internal/errors"
	"github.com/lgbarn/chessduel-go/internal/game"
	"github.com/lgbarn/chessduel-go/internal/output"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessduel-go version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	setupLogFile(cfg)
	setupOutputFile(cfg)
	events := setupEventsFile()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if err := run(cfg, os.Stdin, events); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessduel [options]\n\n")
	fmt.Fprintf(os.Stderr, "Two players share one terminal. Lines speak for the side to move;\n")
	fmt.Fprintf(os.Stderr, "prefix a line with white: or black: to speak for a side. Type ? in\n")
	fmt.Fprintf(os.Stderr, "game for the command list.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

// setupEventsFile opens the JSON event stream, if requested.
func setupEventsFile() io.Writer {
	if *eventsFile == "" {
		return nil
	}
	file, err := os.Create(*eventsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating events file %s: %v\n", *eventsFile, err)
		os.Exit(1)
	}
	return file
}

// run plays games with both sides driven from in until input ends, a
// player exits, or, without auto-restart, the first game is over. A
// non-nil events writer receives every event as JSON as well.
func run(cfg *config.Config, in io.Reader, events io.Writer) error {
	g, err := game.New(cfg)
	if err != nil {
		return err
	}
	defer g.Close()

	out := output.NewSyncWriter(cfg.OutputFile)
	if events != nil {
		events = output.NewSyncWriter(events)
	}
	newVis := func(w io.Writer, side chess.Side) game.Visualizer {
		v := output.NewVisualizer(w, side, cfg.Output)
		if events == nil {
			return v
		}
		return output.NewTee(v, output.NewJSONVisualizer(events, side))
	}

	hot, err := console.NewHotseat(g, [2]io.Writer{out, out}, newVis)
	if err != nil {
		return err
	}

	inputDone := make(chan error, 1)
	go func() {
		inputDone <- hot.Run(in)
		g.Close()
	}()

	for {
		if err := g.Run(); err != nil {
			if stderrors.Is(err, errors.ErrPoolClosed) {
				return <-inputDone
			}
			return err
		}
		if !cfg.Game.AutoRestart {
			return nil
		}
		fmt.Fprintln(out, "Press enter when both sides are ready for the next game.")
		select {
		case <-hot.Ready():
		case err := <-inputDone:
			return err
		}
	}
}
