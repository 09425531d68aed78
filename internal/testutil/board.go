package testutil

import (
	"testing"

	"github.com/lgbarn/chessduel-go/internal/chess"
	"github.com/lgbarn/chessduel-go/internal/engine"
)

// MustSnapshot parses a FEN (or bare placement field) and fails the test on
// error.
func MustSnapshot(t *testing.T, fen string) chess.Snapshot {
	t.Helper()
	s, err := engine.SnapshotFromFEN(fen)
	if err != nil {
		t.Fatalf("SnapshotFromFEN(%q): %v", fen, err)
	}
	return s
}

// Sq parses a square name such as "e4".
func Sq(t *testing.T, name string) chess.Coordinate {
	t.Helper()
	c, ok := chess.ParsePosition(name)
	if !ok {
		t.Fatalf("ParsePosition(%q) failed", name)
	}
	return c
}
