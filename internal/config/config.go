// Package config provides configuration for chessduel.
package config

import (
	"io"
	"os"
)

// Config holds all program configuration.
type Config struct {
	Game     GameConfig
	Dispatch DispatchConfig
	Output   OutputConfig

	Verbosity int // 0=nothing, 1=run start/end, 2=running commentary

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Game:       *NewGameConfig(),
		Dispatch:   *NewDispatchConfig(),
		Output:     *NewOutputConfig(),
		Verbosity:  1,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the stream visualizers render to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the stream diagnostics are written to.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.Dispatch.Validate(); err != nil {
		return err
	}
	return c.Output.Validate()
}
