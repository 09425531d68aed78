package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/lgbarn/chessduel-go/internal/chess"
	"github.com/lgbarn/chessduel-go/internal/errors"
	"github.com/lgbarn/chessduel-go/internal/game"
)

// VisualizerFunc builds the visualizer that renders side's events to w.
type VisualizerFunc func(w io.Writer, side chess.Side) game.Visualizer

var seatPrefixes = []struct {
	prefix string
	side   chess.Side
}{
	{"white:", chess.White},
	{"black:", chess.Black},
	{"w:", chess.White},
	{"b:", chess.Black},
}

// Hotseat runs both sides of a game from one line stream. A line prefixed
// with white: or black: speaks for that side; other lines speak for the
// side to move. Between games both seats must be ready before the next
// game starts, and switch swaps which output shows which side.
type Hotseat struct {
	g        *game.Game
	newVis   VisualizerFunc
	sessions [2]*Session

	mu    sync.Mutex
	outs  [2]io.Writer // indexed by side
	ready [2]bool
	start chan struct{}
}

// NewHotseat attaches a visualizer per side, rendering White to outs[0] and
// Black to outs[1].
func NewHotseat(g *game.Game, outs [2]io.Writer, newVis VisualizerFunc) (*Hotseat, error) {
	h := &Hotseat{g: g, newVis: newVis, start: make(chan struct{}, 1)}
	h.outs[chess.White], h.outs[chess.Black] = outs[0], outs[1]
	for _, side := range chess.Sides {
		js, err := g.Joystick(side)
		if err != nil {
			return nil, err
		}
		h.sessions[side] = NewSession(js, g, h.outs[side])
	}
	if err := h.attach(); err != nil {
		return nil, err
	}
	return h, nil
}

// attach installs visualizers for the current seating. Callers hold mu or
// own h exclusively.
func (h *Hotseat) attach() error {
	for _, side := range chess.Sides {
		if err := h.g.SetVisualizer(side, h.newVis(h.outs[side], side)); err != nil {
			return err
		}
	}
	return nil
}

// Ready delivers once both seats have confirmed the next game.
func (h *Hotseat) Ready() <-chan struct{} {
	return h.start
}

// Run reads lines from r until exit or end of input.
func (h *Hotseat) Run(r io.Reader) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if h.Exec(sc.Text()) {
			return nil
		}
	}
	return sc.Err()
}

// Exec handles one input line. It reports true when the line asks to exit.
func (h *Hotseat) Exec(line string) bool {
	side, rest, seated := h.route(line)
	out := h.out(side)

	cmd, err := ParseCommand(rest)
	if err != nil {
		fmt.Fprintln(out, err)
		return false
	}

	switch cmd.Op {
	case OpExit:
		return true
	case OpSwitch:
		if err := h.Switch(); err != nil {
			fmt.Fprintln(out, "Sides can only be switched between games.")
		} else {
			fmt.Fprintln(out, "Sides switched, ready status cancelled.")
		}
	case OpReady:
		if h.g.IsRunning() {
			return false
		}
		if seated {
			h.markReady(side)
		} else {
			h.markReady(chess.White)
			h.markReady(chess.Black)
		}
	default:
		h.sessions[side].Exec(cmd)
	}
	return false
}

// route picks the side a line speaks for and strips its seat prefix.
func (h *Hotseat) route(line string) (chess.Side, string, bool) {
	trimmed := strings.TrimSpace(line)
	lower := strings.ToLower(trimmed)
	for _, p := range seatPrefixes {
		if strings.HasPrefix(lower, p.prefix) {
			return p.side, strings.TrimSpace(trimmed[len(p.prefix):]), true
		}
	}
	return h.g.Turn(), trimmed, false
}

func (h *Hotseat) out(side chess.Side) io.Writer {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.outs[side]
}

func (h *Hotseat) markReady(side chess.Side) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.ready[side] {
		fmt.Fprintf(h.outs[side], "%v is already ready.\n", side)
		return
	}
	h.ready[side] = true
	fmt.Fprintf(h.outs[side], "%v is ready.\n", side)
	if h.ready[chess.White] && h.ready[chess.Black] {
		h.ready = [2]bool{}
		select {
		case h.start <- struct{}{}:
		default:
		}
	}
}

// Switch swaps the outputs of the two sides and cancels readiness. It
// fails while a game is running.
func (h *Hotseat) Switch() error {
	if h.g.IsRunning() {
		return errors.ErrGameRunning
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.outs[chess.White], h.outs[chess.Black] = h.outs[chess.Black], h.outs[chess.White]
	for _, side := range chess.Sides {
		h.sessions[side].out = h.outs[side]
	}
	h.ready = [2]bool{}
	return h.attach()
}
