package console

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/lgbarn/chessduel-go/internal/chess"
	"github.com/lgbarn/chessduel-go/internal/config"
	"github.com/lgbarn/chessduel-go/internal/game"
	"github.com/lgbarn/chessduel-go/internal/testutil"
)

const wait = 2 * time.Second

type seat struct {
	w    io.Writer
	side chess.Side
	rec  *testutil.Recorder
}

type fixture struct {
	g          *game.Game
	h          *Hotseat
	white      bytes.Buffer
	black      bytes.Buffer
	seats      []seat
	rec        [2]*testutil.Recorder
	runResults chan error
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	g, err := game.New(config.NewConfigBuilder().WithVerbosity(0).Build())
	testutil.AssertNoError(t, err)
	t.Cleanup(g.Close)

	f := &fixture{g: g, runResults: make(chan error, 1)}
	newVis := func(w io.Writer, side chess.Side) game.Visualizer {
		rec := testutil.NewRecorder()
		f.seats = append(f.seats, seat{w: w, side: side, rec: rec})
		f.rec[side] = rec
		return rec
	}
	f.h, err = NewHotseat(g, [2]io.Writer{&f.white, &f.black}, newVis)
	testutil.AssertNoError(t, err)
	return f
}

func (f *fixture) run(t *testing.T) {
	t.Helper()
	go func() { f.runResults <- f.g.Run() }()
	for _, side := range chess.Sides {
		f.rec[side].WaitFor(t, testutil.TurnChanged, wait)
	}
}

func (f *fixture) ended(t *testing.T) {
	t.Helper()
	select {
	case err := <-f.runResults:
		testutil.AssertNoError(t, err)
	case <-time.After(wait):
		t.Fatal("Run did not return")
	}
}

func TestHotseatRoutesToSideToMove(t *testing.T) {
	f := newFixture(t)
	f.run(t)

	f.h.Exec("move e2 e4")
	testutil.AssertEqual(t, f.rec[chess.White].WaitFor(t, testutil.TurnChanged, wait).Side, chess.Black)

	f.h.Exec("fen")
	testutil.AssertContains(t, f.black.String(), "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	testutil.AssertEqual(t, f.white.Len(), 0)

	f.h.Exec("move e7 e5")
	testutil.AssertEqual(t, f.rec[chess.White].WaitFor(t, testutil.TurnChanged, wait).Side, chess.White)
	testutil.AssertEqual(t, f.g.Snapshot().At(chess.C(4, 4)), chess.Piece{Kind: chess.Pawn, Side: chess.Black, Moved: true, EnPassant: true})
}

func TestHotseatSeatPrefixes(t *testing.T) {
	f := newFixture(t)
	f.run(t)

	f.h.Exec("B: say hello there")
	testutil.AssertEqual(t, f.rec[chess.White].WaitFor(t, testutil.Message, wait).Text, "hello there")

	f.h.Exec("black: hint b8")
	testutil.AssertEqual(t, f.black.String(), "Moves from B8: A6 C6\n")

	f.h.Exec("w: move e9 e4")
	testutil.AssertContains(t, f.white.String(), "expected a square such as e2, got e9")

	f.h.Exec("white: quit")
	for _, side := range chess.Sides {
		testutil.AssertEqual(t, f.rec[side].WaitFor(t, testutil.GameOver, wait).Side, chess.Black)
	}
	f.ended(t)
}

func TestHotseatReadyAndSwitch(t *testing.T) {
	f := newFixture(t)
	f.run(t)

	f.h.Exec("switch")
	testutil.AssertContains(t, f.white.String(), "only be switched between games")
	f.h.Exec("w: quit")
	f.ended(t)

	f.h.Exec("w:")
	f.h.Exec("w:")
	testutil.AssertContains(t, f.white.String(), "White is ready.")
	testutil.AssertContains(t, f.white.String(), "White is already ready.")
	select {
	case <-f.h.Ready():
		t.Fatal("ready with only one seat confirmed")
	default:
	}

	// Switching cancels readiness and swaps outputs.
	f.h.Exec("switch")
	last := f.seats[len(f.seats)-2:]
	testutil.AssertTrue(t, last[0].w == io.Writer(&f.black) && last[0].side == chess.White, "White now renders to the second output")
	testutil.AssertTrue(t, last[1].w == io.Writer(&f.white) && last[1].side == chess.Black, "Black now renders to the first output")

	f.h.Exec("b:")
	select {
	case <-f.h.Ready():
		t.Fatal("switch should cancel readiness")
	default:
	}
	f.h.Exec("w:")
	select {
	case <-f.h.Ready():
	case <-time.After(wait):
		t.Fatal("both seats ready but no start signal")
	}

	// An unprefixed empty line readies both seats.
	f.h.Exec("")
	select {
	case <-f.h.Ready():
	case <-time.After(wait):
		t.Fatal("empty line should ready both seats")
	}
}

func TestHotseatRunStopsAtExit(t *testing.T) {
	f := newFixture(t)
	err := f.h.Run(strings.NewReader("?\nexit\nw: say unreachable\n"))
	testutil.AssertNoError(t, err)
	testutil.AssertContains(t, f.white.String(), "move <from> <to>")
	testutil.AssertEqual(t, f.rec[chess.Black].Count(testutil.Message), 0)
}
