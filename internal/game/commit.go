package game

import (
	"github.com/lgbarn/chessduel-go/internal/chess"
	"github.com/lgbarn/chessduel-go/internal/engine"
	"github.com/lgbarn/chessduel-go/internal/errors"
	"github.com/lgbarn/chessduel-go/internal/worker"
)

// effects is everything a validated move does besides relocating the mover.
type effects struct {
	victim        chess.Coordinate // en-passant capture square
	hasVictim     bool
	doubleStep    bool
	translocation *engine.Translocation
	promoteTo     chess.Kind // Empty keeps the pawn
}

// commit is the dispatch pool's process function. It validates the intent
// against the turn snapshot, resolves prompts and applies the move. Commits
// are serialized on mu; prompts block only the committing worker.
func (g *Game) commit(in worker.Intent) worker.Result {
	g.mu.Lock()
	defer g.mu.Unlock()

	r := g.cur.Load()
	if r == nil || r.ended() || !g.waiting || in.Side != g.turn || in.Stamp != g.stamp.Load() {
		return worker.Result{Intent: in, Verdict: worker.Discarded, Err: g.moveError(in, chess.Piece{}, errors.ErrOutOfTurn)}
	}

	snap := g.snapshot
	piece := snap.At(in.Src)
	if err := validate(snap, in, piece); err != nil {
		moveErr := g.moveError(in, piece, err)
		g.logf(2, "%v\n", moveErr)
		if !g.visualizers[in.Side].deliver(func(v Visualizer) { v.OnInvalidMove(in.Src, in.Dest, piece) }) {
			g.logf(1, "no visualizer for %v: %v\n", in.Side, moveErr)
		}
		return worker.Result{Intent: in, Verdict: worker.Rejected, Err: moveErr}
	}

	fx := effects{doubleStep: engine.IsDoubleStep(snap, in.Src, in.Dest)}
	fx.victim, fx.hasVictim = engine.EnPassantVictim(snap, in.Src, in.Dest)

	if plan, ok := engine.PlanTranslocation(snap, in.Src, in.Dest); ok && !g.translocated[in.Side] {
		accept, live := g.askTranslocation(r, in.Side, plan.King)
		if !live {
			return worker.Result{Intent: in, Verdict: worker.Discarded, Err: g.moveError(in, piece, errors.ErrGameNotRunning)}
		}
		if accept {
			fx.translocation = &plan
		}
	}

	if engine.ReachesFarRank(piece, in.Dest) {
		kind, live := g.askPromotion(r, in.Side, in.Src)
		if !live {
			return worker.Result{Intent: in, Verdict: worker.Discarded, Err: g.moveError(in, piece, errors.ErrGameNotRunning)}
		}
		fx.promoteTo = kind
	}

	if r.ended() {
		return worker.Result{Intent: in, Verdict: worker.Discarded, Err: g.moveError(in, piece, errors.ErrGameNotRunning)}
	}

	captured := g.apply(in, piece, fx)
	g.waiting = false
	if captured.Kind == chess.King {
		r.end(in.Side, endCapture)
	} else {
		select {
		case g.committed <- struct{}{}:
		default:
		}
	}
	return worker.Result{Intent: in, Verdict: worker.Accepted}
}

// validate checks a move against the turn snapshot.
func validate(snap chess.Snapshot, in worker.Intent, piece chess.Piece) error {
	switch {
	case !in.Src.OnBoard() || !in.Dest.OnBoard():
		return errors.ErrOffBoard
	case piece.IsEmpty():
		return errors.ErrEmptySquare
	case piece.Side != in.Side:
		return errors.ErrWrongOwner
	case !engine.IsMoveValid(snap, in.Src, in.Dest):
		return errors.ErrIllegalMove
	}
	return nil
}

func (g *Game) moveError(in worker.Intent, piece chess.Piece, err error) *errors.MoveError {
	return &errors.MoveError{Err: err, Side: in.Side, Src: in.Src, Dest: in.Dest, Piece: piece}
}

// askTranslocation offers a translocation and waits for the decision. A side
// without a visualizer declines. live is false if the run ended meanwhile.
func (g *Game) askTranslocation(r *run, side chess.Side, king chess.Coordinate) (accept, live bool) {
	answer := g.translocation.arm(side)
	defer g.translocation.disarm()

	if !g.visualizers[side].deliver(func(v Visualizer) { v.OnTranslocationOffer(king) }) {
		g.logf(1, "no visualizer for %v, translocation declined\n", side)
		return false, true
	}
	select {
	case accept = <-answer:
		g.logf(2, "%v translocation accepted=%v\n", side, accept)
		return accept, true
	case <-r.done:
		return false, false
	}
}

// askPromotion prompts for a promotion kind and waits for it. A side
// without a visualizer keeps its pawn. live is false if the run ended
// meanwhile.
func (g *Game) askPromotion(r *run, side chess.Side, at chess.Coordinate) (kind chess.Kind, live bool) {
	answer := g.promotion.arm(side)
	defer g.promotion.disarm()

	if !g.visualizers[side].deliver(func(v Visualizer) { v.OnPromotionPrompt(at) }) {
		g.logf(1, "no visualizer for %v, promotion cancelled\n", side)
		return chess.Empty, true
	}
	select {
	case kind = <-answer:
		g.logf(2, "%v promotes to %v\n", side, kind)
		return kind, true
	case <-r.done:
		return chess.Empty, false
	}
}

// apply performs a validated move on the live board and returns whatever it
// captured. Callers hold mu.
func (g *Game) apply(in worker.Intent, piece chess.Piece, fx effects) chess.Piece {
	// Any move ends the previous double step's window.
	if g.epSet {
		g.board.Update(g.epSlot, func(p *chess.Piece) { p.EnPassant = false })
		g.epSet = false
	}

	var captured chess.Piece
	if fx.hasVictim {
		captured = g.board.Capture(fx.victim)
	}
	if c := g.board.Move(in.Src, in.Dest); !c.IsEmpty() {
		captured = c
	}
	g.board.Update(in.Dest, func(p *chess.Piece) {
		p.Moved = true
		p.EnPassant = fx.doubleStep
	})
	if fx.doubleStep {
		g.epSlot, g.epSet = in.Dest, true
	}

	if fx.promoteTo != chess.Empty {
		promoted := chess.NewPiece(piece.Side, fx.promoteTo)
		promoted.Moved = true
		g.board.Promote(in.Dest, promoted)
	}

	if t := fx.translocation; t != nil {
		g.board.Move(t.King, t.KingTo)
		g.board.Update(t.KingTo, func(p *chess.Piece) { p.Moved = true })
		g.translocated[in.Side] = true
	}

	g.logf(2, "%v %v-%v\n", g.board.Get(in.Dest), in.Src, in.Dest)
	return captured
}
