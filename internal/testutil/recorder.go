package testutil

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/lgbarn/chessduel-go/internal/chess"
)

// EventKind names a visualizer callback.
type EventKind string

// Recorded callback kinds.
const (
	InvalidMove        EventKind = "invalid"
	BoardUpdated       EventKind = "board"
	TurnChanged        EventKind = "turn"
	GameOver           EventKind = "gameover"
	Message            EventKind = "message"
	PromotionPrompt    EventKind = "promotion"
	TranslocationOffer EventKind = "translocation"
)

// Event is one recorded callback. Only the fields relevant to Kind are set.
type Event struct {
	Kind  EventKind
	Src   chess.Coordinate
	Dest  chess.Coordinate
	At    chess.Coordinate
	Piece chess.Piece
	Board chess.Snapshot
	Side  chess.Side
	Text  string
}

func (e Event) String() string {
	switch e.Kind {
	case InvalidMove:
		return fmt.Sprintf("%s %v-%v %v", e.Kind, e.Src, e.Dest, e.Piece)
	case TurnChanged, GameOver:
		return fmt.Sprintf("%s %v", e.Kind, e.Side)
	case Message:
		return fmt.Sprintf("%s %q", e.Kind, e.Text)
	case PromotionPrompt, TranslocationOffer:
		return fmt.Sprintf("%s %v", e.Kind, e.At)
	}
	return string(e.Kind)
}

// Recorder is a visualizer that keeps every callback it receives. Tests
// read the events back in order with Next and WaitFor.
//
// OnPrompt, if set, runs synchronously inside OnPromotionPrompt and
// OnTranslocationOffer, which lets a test answer a prompt the way an
// interactive visualizer would.
type Recorder struct {
	OnPrompt func(Event)

	mu     sync.Mutex
	events []Event
	read   int
	notify chan struct{}
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{notify: make(chan struct{}, 1)}
}

func (r *Recorder) record(e Event) {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
	select {
	case r.notify <- struct{}{}:
	default:
	}
}

func (r *Recorder) OnInvalidMove(src, dest chess.Coordinate, piece chess.Piece) {
	r.record(Event{Kind: InvalidMove, Src: src, Dest: dest, Piece: piece})
}

func (r *Recorder) OnBoardUpdated(board chess.Snapshot) {
	r.record(Event{Kind: BoardUpdated, Board: board})
}

func (r *Recorder) OnTurnChanged(side chess.Side) {
	r.record(Event{Kind: TurnChanged, Side: side})
}

func (r *Recorder) OnGameOver(winner chess.Side) {
	r.record(Event{Kind: GameOver, Side: winner})
}

func (r *Recorder) OnMessage(text string) {
	r.record(Event{Kind: Message, Text: text})
}

func (r *Recorder) OnPromotionPrompt(at chess.Coordinate) {
	e := Event{Kind: PromotionPrompt, At: at}
	r.record(e)
	if r.OnPrompt != nil {
		r.OnPrompt(e)
	}
}

func (r *Recorder) OnTranslocationOffer(king chess.Coordinate) {
	e := Event{Kind: TranslocationOffer, At: king}
	r.record(e)
	if r.OnPrompt != nil {
		r.OnPrompt(e)
	}
}

// Events returns a copy of everything recorded so far.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Next returns the next unread event, waiting up to timeout for one.
func (r *Recorder) Next(timeout time.Duration) (Event, bool) {
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	for {
		r.mu.Lock()
		if r.read < len(r.events) {
			e := r.events[r.read]
			r.read++
			r.mu.Unlock()
			return e, true
		}
		r.mu.Unlock()
		select {
		case <-r.notify:
		case <-deadline.C:
			return Event{}, false
		}
	}
}

// WaitFor skips unread events until one of kind arrives and returns it. The
// test fails if none arrives within timeout.
func (r *Recorder) WaitFor(t *testing.T, kind EventKind, timeout time.Duration) Event {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for {
		left := time.Until(deadline)
		if left <= 0 {
			t.Fatalf("timed out waiting for %s event; recorded: %v", kind, r.Events())
		}
		e, ok := r.Next(left)
		if !ok {
			t.Fatalf("timed out waiting for %s event; recorded: %v", kind, r.Events())
		}
		if e.Kind == kind {
			return e
		}
	}
}

// AssertQuiet fails if an unread event of kind arrives within d.
func (r *Recorder) AssertQuiet(t *testing.T, kind EventKind, d time.Duration) {
	t.Helper()
	deadline := time.Now().Add(d)
	for {
		left := time.Until(deadline)
		if left <= 0 {
			return
		}
		e, ok := r.Next(left)
		if !ok {
			return
		}
		if e.Kind == kind {
			t.Fatalf("unexpected %v", e)
		}
	}
}

// Count returns how many events of kind have been recorded in total.
func (r *Recorder) Count(kind EventKind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
