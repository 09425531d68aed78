// Package output provides visualizers that render engine events as text
// diagrams or JSON.
package output

import (
	"io"
	"sync"

	"github.com/lgbarn/chessduel-go/internal/chess"
	"github.com/lgbarn/chessduel-go/internal/config"
	"github.com/lgbarn/chessduel-go/internal/game"
)

// NewVisualizer returns the visualizer for side in the configured format.
func NewVisualizer(w io.Writer, side chess.Side, cfg config.OutputConfig) game.Visualizer {
	switch cfg.Format {
	case config.JSON:
		return NewJSONVisualizer(w, side)
	default:
		return NewTextVisualizer(w, side, cfg)
	}
}

// SyncWriter serializes writes to w so that several visualizers can share
// one stream without interleaving inside a line.
type SyncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

// NewSyncWriter wraps w.
func NewSyncWriter(w io.Writer) *SyncWriter {
	return &SyncWriter{w: w}
}

func (s *SyncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

// Tee fans one side's events out to several visualizers, in order.
type Tee struct {
	vs []game.Visualizer
}

// NewTee creates a Tee. Nil visualizers are skipped.
func NewTee(vs ...game.Visualizer) *Tee {
	t := &Tee{}
	for _, v := range vs {
		if v != nil {
			t.vs = append(t.vs, v)
		}
	}
	return t
}

func (t *Tee) OnInvalidMove(src, dest chess.Coordinate, piece chess.Piece) {
	for _, v := range t.vs {
		v.OnInvalidMove(src, dest, piece)
	}
}

// OnBoardUpdated gives each visualizer its own copy of board.
func (t *Tee) OnBoardUpdated(board chess.Snapshot) {
	for _, v := range t.vs {
		v.OnBoardUpdated(board.Clone())
	}
}

func (t *Tee) OnTurnChanged(side chess.Side) {
	for _, v := range t.vs {
		v.OnTurnChanged(side)
	}
}

func (t *Tee) OnGameOver(winner chess.Side) {
	for _, v := range t.vs {
		v.OnGameOver(winner)
	}
}

func (t *Tee) OnMessage(text string) {
	for _, v := range t.vs {
		v.OnMessage(text)
	}
}

func (t *Tee) OnPromotionPrompt(at chess.Coordinate) {
	for _, v := range t.vs {
		v.OnPromotionPrompt(at)
	}
}

func (t *Tee) OnTranslocationOffer(king chess.Coordinate) {
	for _, v := range t.vs {
		v.OnTranslocationOffer(king)
	}
}
