// Package game runs a two-player match: it owns the board and turn state,
// accepts intents from one Joystick per side and reports to one Visualizer
// per side.
package game

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chessduel-go/internal/chess"
	"github.com/lgbarn/chessduel-go/internal/config"
	"github.com/lgbarn/chessduel-go/internal/engine"
	"github.com/lgbarn/chessduel-go/internal/errors"
	"github.com/lgbarn/chessduel-go/internal/worker"
)

// endReason records why a run stopped.
type endReason int

const (
	endCapture endReason = iota + 1
	endResign
	endClosed
)

// run is the lifetime of one game. done closes exactly once, after winner
// and reason are set.
type run struct {
	done   chan struct{}
	once   sync.Once
	winner chess.Side
	reason endReason
}

func newRun() *run {
	return &run{done: make(chan struct{})}
}

// end finishes the run. The first caller decides the outcome.
func (r *run) end(winner chess.Side, reason endReason) bool {
	fired := false
	r.once.Do(func() {
		r.winner = winner
		r.reason = reason
		close(r.done)
		fired = true
	})
	return fired
}

func (r *run) ended() bool {
	select {
	case <-r.done:
		return true
	default:
		return false
	}
}

// Game is the authoritative engine. Create one with New, attach
// visualizers, hand out joysticks and call Run once per game.
type Game struct {
	cfg       *config.Config
	start     chess.Snapshot
	startSide chess.Side

	board       *chess.Board
	pool        *worker.Pool
	visualizers [2]slot

	promotion     handoff[chess.Kind]
	translocation handoff[bool]

	// observe, if set, sees every dispatch result.
	observe func(worker.Result)
	drained chan struct{}

	// startMu orders run installation: cur is stored before running is set.
	startMu sync.Mutex
	running atomic.Bool
	closed  atomic.Bool
	toMove  atomic.Int32
	stamp   atomic.Uint64
	cur     atomic.Pointer[run]

	logMu sync.Mutex

	// mu serializes commits and guards the turn state below.
	mu           sync.Mutex
	turn         chess.Side
	waiting      bool
	snapshot     chess.Snapshot
	epSlot       chess.Coordinate
	epSet        bool
	translocated [2]bool
	committed    chan struct{}
}

// New creates a game from cfg and starts its dispatch pool. A nil cfg uses
// defaults.
func New(cfg *config.Config) (*Game, error) {
	return newGame(cfg, nil)
}

func newGame(cfg *config.Config, observe func(worker.Result)) (*Game, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	start, startSide := engine.InitialSnapshot(), chess.White
	if cfg.Game.StartFEN != "" {
		pos, err := engine.ParseFEN(cfg.Game.StartFEN)
		if err != nil {
			return nil, errors.Wrap(err, "start position")
		}
		start, startSide = pos.Board, pos.ToMove
	}

	g := &Game{
		cfg:       cfg,
		start:     start,
		startSide: startSide,
		board:     chess.NewBoardFromSnapshot(start),
		observe:   observe,
		drained:   make(chan struct{}),
		turn:      startSide,
		committed: make(chan struct{}, 1),
	}
	g.toMove.Store(int32(startSide))
	g.pool = worker.NewPool(g.commit,
		worker.WithWorkers(cfg.Dispatch.Workers),
		worker.WithBufferSize(cfg.Dispatch.BufferSize))
	g.pool.Start()
	g.logf(2, "dispatch pool started with %d workers\n", g.pool.NumWorkers())
	go g.drain()
	return g, nil
}

// drain consumes dispatch results until the pool closes.
func (g *Game) drain() {
	defer close(g.drained)
	for res := range g.pool.Results() {
		if res.Err != nil {
			g.logf(2, "dispatch #%d %s: %v\n", res.Intent.Index, res.Verdict, res.Err)
		} else {
			g.logf(2, "dispatch #%d %s: %v %v-%v\n", res.Intent.Index, res.Verdict,
				res.Intent.Side, res.Intent.Src, res.Intent.Dest)
		}
		if g.observe != nil {
			g.observe(res)
		}
	}
}

// Close ends any run in progress without a winner and stops the dispatch
// pool. The game cannot be run again.
func (g *Game) Close() {
	if !g.closed.CompareAndSwap(false, true) {
		return
	}
	if r := g.cur.Load(); r != nil {
		r.end(chess.White, endClosed)
	}
	// Queued intents belong to the ended run.
	g.pool.Stop()
	g.pool.Close()
	<-g.drained
}

// SetVisualizer attaches v to side, replacing any previous visualizer. A nil
// v detaches.
func (g *Game) SetVisualizer(side chess.Side, v Visualizer) error {
	if !side.Valid() {
		return errors.Wrapf(errors.ErrUnknownSide, "set visualizer for %d", int(side))
	}
	g.visualizers[side].set(v)
	return nil
}

// Joystick returns the input handle for side.
func (g *Game) Joystick(side chess.Side) (Joystick, error) {
	if !side.Valid() {
		return nil, errors.Wrapf(errors.ErrUnknownSide, "joystick for %d", int(side))
	}
	return &joystick{g: g, side: side}, nil
}

// Snapshot returns a copy of the live board.
func (g *Game) Snapshot() chess.Snapshot {
	return g.board.Snapshot()
}

// Turn returns the side to move.
func (g *Game) Turn() chess.Side {
	return chess.Side(g.toMove.Load())
}

// IsRunning reports whether a run is in progress.
func (g *Game) IsRunning() bool {
	return g.running.Load()
}

// Run plays one game to the end and returns once the game-over notice has
// been delivered. It returns ErrGameRunning if a run is already in progress.
func (g *Game) Run() error {
	if g.closed.Load() {
		return errors.Wrap(errors.ErrPoolClosed, "run")
	}
	g.startMu.Lock()
	if g.running.Load() {
		g.startMu.Unlock()
		return errors.ErrGameRunning
	}
	r := newRun()
	g.cur.Store(r)
	g.running.Store(true)
	g.startMu.Unlock()
	defer g.running.Store(false)

	snap, turn := g.reset(r)
	g.logf(1, "game started, %v to move\n", turn)
	g.publishBoard(snap)
	g.publishTurn(turn)

	for {
		select {
		case <-g.committed:
			snap, turn := g.advance()
			g.publishBoard(snap)
			g.publishTurn(turn)
		case <-r.done:
			g.finish(r)
			return nil
		}
	}
}

// reset restores the start position and opens the turn for the first side.
func (g *Game) reset(r *run) (chess.Snapshot, chess.Side) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.board.Load(g.start)
	g.turn = g.startSide
	g.epSlot, g.epSet = enPassantSlot(g.start, g.startSide)
	g.translocated = [2]bool{}
	select {
	case <-g.committed:
	default:
	}
	if g.closed.Load() {
		r.end(g.turn, endClosed)
	}
	g.openTurn()
	return g.snapshot, g.turn
}

// enPassantSlot finds the pawn a start position leaves open to en passant.
// Only a pawn of the side that just moved can be vulnerable.
func enPassantSlot(s chess.Snapshot, toMove chess.Side) (chess.Coordinate, bool) {
	for _, c := range s.Find(toMove.Opposite(), chess.Pawn) {
		if s.At(c).EnPassant {
			return c, true
		}
	}
	return chess.Coordinate{}, false
}

// advance flips the side to move after a commit.
func (g *Game) advance() (chess.Snapshot, chess.Side) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.turn = g.turn.Opposite()
	g.openTurn()
	return g.snapshot, g.turn
}

// openTurn takes the validation snapshot and starts accepting a move.
// Callers hold mu.
func (g *Game) openTurn() {
	g.snapshot = g.board.Snapshot()
	g.waiting = true
	g.toMove.Store(int32(g.turn))
	g.stamp.Add(1)
}

// finish publishes the outcome of an ended run.
func (g *Game) finish(r *run) {
	g.mu.Lock()
	g.waiting = false
	g.stamp.Add(1)
	snap := g.board.Snapshot()
	g.mu.Unlock()

	switch r.reason {
	case endClosed:
		g.logf(1, "game closed\n")
		return
	case endCapture:
		g.logf(1, "king captured, %v wins with %d pieces left on the board\n", r.winner, g.board.Len())
		g.publishBoard(snap)
	case endResign:
		g.logf(1, "%v resigned, %v wins\n", r.winner.Opposite(), r.winner)
	}
	for _, side := range chess.Sides {
		g.visualizers[side].deliver(func(v Visualizer) { v.OnGameOver(r.winner) })
	}
}

func (g *Game) publishBoard(snap chess.Snapshot) {
	for _, side := range chess.Sides {
		g.visualizers[side].deliver(func(v Visualizer) { v.OnBoardUpdated(snap.Clone()) })
	}
}

func (g *Game) publishTurn(turn chess.Side) {
	for _, side := range chess.Sides {
		g.visualizers[side].deliver(func(v Visualizer) { v.OnTurnChanged(turn) })
	}
}

// logf writes to the log stream when verbosity is at least level.
func (g *Game) logf(level int, format string, args ...interface{}) {
	if g.cfg.Verbosity < level || g.cfg.LogFile == nil {
		return
	}
	g.logMu.Lock()
	defer g.logMu.Unlock()
	fmt.Fprintf(g.cfg.LogFile, format, args...)
}
