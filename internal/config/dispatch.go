package config

import (
	"fmt"

	"github.com/lgbarn/chessduel-go/internal/errors"
)

// DispatchConfig sizes the pool that carries move submissions from the
// joysticks to the engine.
type DispatchConfig struct {
	// Workers is the number of goroutines processing submissions.
	Workers int

	// BufferSize is the capacity of the submission queue. Submissions that
	// find it full are dropped.
	BufferSize int
}

// NewDispatchConfig creates a DispatchConfig with default values.
func NewDispatchConfig() *DispatchConfig {
	return &DispatchConfig{
		Workers:    2,
		BufferSize: 16,
	}
}

// Validate checks that the dispatch configuration is usable.
func (d *DispatchConfig) Validate() error {
	if d.Workers < 1 {
		return fmt.Errorf("dispatch workers (%d) must be at least 1: %w",
			d.Workers, errors.ErrInvalidConfig)
	}
	if d.BufferSize < 1 {
		return fmt.Errorf("dispatch buffer size (%d) must be at least 1: %w",
			d.BufferSize, errors.ErrInvalidConfig)
	}
	return nil
}
