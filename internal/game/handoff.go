package game

import (
	"sync"

	"github.com/lgbarn/chessduel-go/internal/chess"
)

// handoff is a single-slot exchange between a blocked commit and the side
// expected to answer it. The slot is armed before the prompt goes out, so an
// answer arriving during delivery is kept.
type handoff[T any] struct {
	mu   sync.Mutex
	side chess.Side
	ch   chan T
}

// arm opens the slot for side and returns the channel the answer arrives on.
func (h *handoff[T]) arm(side chess.Side) <-chan T {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.side = side
	h.ch = make(chan T, 1)
	return h.ch
}

// offer hands v over if the slot is armed for side. Only the first answer
// is taken.
func (h *handoff[T]) offer(side chess.Side, v T) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.ch == nil || h.side != side {
		return false
	}
	h.ch <- v
	h.ch = nil
	return true
}

func (h *handoff[T]) disarm() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.ch = nil
}
