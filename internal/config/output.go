package config

import (
	"fmt"

	"github.com/lgbarn/chessduel-go/internal/errors"
)

// OutputFormat selects how visualizers render events.
type OutputFormat int

const (
	Text OutputFormat = iota // Board diagrams and plain notices
	JSON                     // One JSON object per event
)

// String returns the flag spelling of the format.
func (f OutputFormat) String() string {
	switch f {
	case Text:
		return "text"
	case JSON:
		return "json"
	default:
		return fmt.Sprintf("OutputFormat(%d)", int(f))
	}
}

// ParseOutputFormat converts a flag value into an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch s {
	case "text", "":
		return Text, nil
	case "json":
		return JSON, nil
	default:
		return Text, fmt.Errorf("unknown output format %q: %w", s, errors.ErrInvalidConfig)
	}
}

// Perspective selects which side of the board is drawn at the bottom.
type Perspective int

const (
	PerspectiveOwn   Perspective = iota // Each side sees its own pieces at the bottom
	PerspectiveWhite                    // White is always at the bottom
)

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format specifies how events are rendered.
	Format OutputFormat

	// Perspective controls board orientation in text diagrams.
	Perspective Perspective

	// ShowHints lists the legal destinations after an invalid move.
	ShowHints bool

	// Coordinates labels files and ranks around text diagrams.
	Coordinates bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:      Text,
		Perspective: PerspectiveOwn,
		Coordinates: true,
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if o.Format != Text && o.Format != JSON {
		return fmt.Errorf("output format %v: %w", o.Format, errors.ErrInvalidConfig)
	}
	if o.Perspective != PerspectiveOwn && o.Perspective != PerspectiveWhite {
		return fmt.Errorf("perspective %d: %w", int(o.Perspective), errors.ErrInvalidConfig)
	}
	return nil
}
