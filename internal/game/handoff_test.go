package game

import (
	"sync"
	"testing"

	"github.com/lgbarn/chessduel-go/internal/chess"
	"github.com/lgbarn/chessduel-go/internal/testutil"
)

func TestHandoff(t *testing.T) {
	var h handoff[chess.Kind]

	testutil.AssertFalse(t, h.offer(chess.White, chess.Queen), "offer before arm")

	answer := h.arm(chess.White)
	testutil.AssertFalse(t, h.offer(chess.Black, chess.Rook), "offer from the wrong side")
	testutil.AssertTrue(t, h.offer(chess.White, chess.Knight))
	testutil.AssertFalse(t, h.offer(chess.White, chess.Queen), "second answer")
	testutil.AssertEqual(t, <-answer, chess.Knight)

	h.arm(chess.Black)
	h.disarm()
	testutil.AssertFalse(t, h.offer(chess.Black, chess.Bishop), "offer after disarm")
}

func TestHandoffConcurrentOffers(t *testing.T) {
	var h handoff[bool]
	answer := h.arm(chess.White)

	var wg sync.WaitGroup
	var mu sync.Mutex
	taken := 0
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(accept bool) {
			defer wg.Done()
			if h.offer(chess.White, accept) {
				mu.Lock()
				taken++
				mu.Unlock()
			}
		}(i%2 == 0)
	}
	wg.Wait()
	testutil.AssertEqual(t, taken, 1)
	<-answer
}

func TestSlot(t *testing.T) {
	var s slot
	testutil.AssertFalse(t, s.deliver(func(Visualizer) { t.Error("delivered to an empty slot") }))

	rec := testutil.NewRecorder()
	s.set(rec)
	testutil.AssertTrue(t, s.deliver(func(v Visualizer) { v.OnMessage("hi") }))
	testutil.AssertEqual(t, rec.Count(testutil.Message), 1)

	s.set(nil)
	testutil.AssertFalse(t, s.deliver(func(v Visualizer) { v.OnMessage("gone") }))
	testutil.AssertEqual(t, rec.Count(testutil.Message), 1)
}
