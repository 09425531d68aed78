package game

import (
	"github.com/lgbarn/chessduel-go/internal/chess"
	"github.com/lgbarn/chessduel-go/internal/errors"
	"github.com/lgbarn/chessduel-go/internal/worker"
)

// Joystick is one side's input handle. Every method returns immediately;
// outcomes arrive through the side's Visualizer.
type Joystick interface {
	// Move submits a move. Out-of-turn submissions are dropped silently;
	// invalid ones produce OnInvalidMove.
	Move(src, dest chess.Coordinate)
	// Resign ends the run in favour of the opponent.
	Resign()
	// SendMessage relays text to the opponent's visualizer.
	SendMessage(text string)
	// ChoosePromotion answers a pending promotion prompt. Kings, pawns and
	// answers with no prompt pending are ignored.
	ChoosePromotion(kind chess.Kind)
	// DecideTranslocation answers a pending translocation offer.
	DecideTranslocation(accept bool)
}

type joystick struct {
	g    *Game
	side chess.Side
}

func (j *joystick) Move(src, dest chess.Coordinate) {
	g := j.g
	in := worker.Intent{Side: j.side, Src: src, Dest: dest}
	if !g.IsRunning() {
		g.logf(2, "%v\n", g.moveError(in, chess.Piece{}, errors.ErrGameNotRunning))
		return
	}
	if j.side != g.Turn() {
		g.logf(2, "%v\n", g.moveError(in, chess.Piece{}, errors.ErrOutOfTurn))
		return
	}
	in.Stamp = g.stamp.Load()
	if !g.pool.TrySubmit(in) {
		g.logf(1, "%v move %v-%v dropped: dispatch queue full or closed\n", j.side, src, dest)
	}
}

func (j *joystick) Resign() {
	// Run installs cur before setting running.
	if !j.g.IsRunning() {
		return
	}
	j.g.cur.Load().end(j.side.Opposite(), endResign)
}

func (j *joystick) SendMessage(text string) {
	to := j.side.Opposite()
	if !j.g.visualizers[to].deliver(func(v Visualizer) { v.OnMessage(text) }) {
		j.g.logf(1, "message from %v dropped: no visualizer for %v\n", j.side, to)
	}
}

func (j *joystick) ChoosePromotion(kind chess.Kind) {
	if !kind.Promotable() {
		j.g.logf(2, "%v promotion to %v ignored\n", j.side, kind)
		return
	}
	if !j.g.promotion.offer(j.side, kind) {
		j.g.logf(2, "%v promotion to %v ignored: no prompt pending\n", j.side, kind)
	}
}

func (j *joystick) DecideTranslocation(accept bool) {
	if !j.g.translocation.offer(j.side, accept) {
		j.g.logf(2, "%v translocation decision ignored: no offer pending\n", j.side)
	}
}
