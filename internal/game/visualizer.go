package game

import (
	"sync"

	"github.com/lgbarn/chessduel-go/internal/chess"
)

// Visualizer receives engine events for one side. Callbacks are
// notifications: they must not call back into the engine synchronously,
// apart from answering a prompt through the side's Joystick.
type Visualizer interface {
	OnInvalidMove(src, dest chess.Coordinate, piece chess.Piece)
	OnBoardUpdated(board chess.Snapshot)
	OnTurnChanged(side chess.Side)
	OnGameOver(winner chess.Side)
	OnMessage(text string)
	// OnPromotionPrompt expects a ChoosePromotion from the same side.
	OnPromotionPrompt(at chess.Coordinate)
	// OnTranslocationOffer expects a DecideTranslocation from the same side.
	OnTranslocationOffer(king chess.Coordinate)
}

// slot holds one side's replaceable visualizer. Deliveries share the read
// lock; replacement takes the write lock.
type slot struct {
	mu sync.RWMutex
	v  Visualizer
}

func (s *slot) set(v Visualizer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v = v
}

// deliver calls fn with the current visualizer. It reports false if none is
// attached.
func (s *slot) deliver(fn func(Visualizer)) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.v == nil {
		return false
	}
	fn(s.v)
	return true
}
