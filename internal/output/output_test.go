package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lgbarn/chessduel-go/internal/chess"
	"github.com/lgbarn/chessduel-go/internal/config"
	"github.com/lgbarn/chessduel-go/internal/engine"
	"github.com/lgbarn/chessduel-go/internal/testutil"
)

func TestRenderBoard(t *testing.T) {
	board := testutil.MustSnapshot(t, "4k3/8/8/8/8/8/8/R3K3")

	tests := []struct {
		name        string
		flip        bool
		coordinates bool
		first, last string
	}{
		{"white view", false, true, "8 . . . . k . . .", "  a b c d e f g h"},
		{"black view", true, true, "1 . . . K . . . R", "  h g f e d c b a"},
		{"bare", false, false, ". . . . k . . .", "R . . . K . . ."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := strings.Split(strings.TrimSuffix(RenderBoard(board, tt.flip, tt.coordinates), "\n"), "\n")
			testutil.AssertEqual(t, lines[0], tt.first)
			testutil.AssertEqual(t, lines[len(lines)-1], tt.last)
		})
	}
}

func TestTextVisualizerPerspective(t *testing.T) {
	board := engine.InitialSnapshot()
	tests := []struct {
		name        string
		side        chess.Side
		perspective config.Perspective
		top         string
	}{
		{"white own", chess.White, config.PerspectiveOwn, "8 r n b q k b n r"},
		{"black own", chess.Black, config.PerspectiveOwn, "1 R N B K Q B N R"},
		{"black fixed white", chess.Black, config.PerspectiveWhite, "8 r n b q k b n r"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := *config.NewOutputConfig()
			cfg.Perspective = tt.perspective
			v := NewTextVisualizer(&buf, tt.side, cfg)
			v.OnBoardUpdated(board)
			testutil.AssertTrue(t, strings.HasPrefix(buf.String(), tt.top+"\n"), "got:\n%s", buf.String())
		})
	}
}

func TestTextVisualizerNotices(t *testing.T) {
	var buf bytes.Buffer
	cfg := *config.NewOutputConfig()
	cfg.ShowHints = true
	v := NewTextVisualizer(&buf, chess.White, cfg)

	v.OnBoardUpdated(engine.InitialSnapshot())
	buf.Reset()

	v.OnTurnChanged(chess.White)
	v.OnTurnChanged(chess.Black)
	v.OnInvalidMove(chess.C(6, 0), chess.C(6, 2), chess.NewPiece(chess.White, chess.Knight))
	v.OnMessage("hello")
	v.OnPromotionPrompt(chess.C(0, 6))
	v.OnTranslocationOffer(chess.C(4, 0))
	v.OnGameOver(chess.Black)

	out := buf.String()
	for _, want := range []string{
		"White to move (you).",
		"Black to move.",
		"Invalid move G1-G3 (White Knight).",
		"Moves from G1: F3 H3",
		"<Black> hello",
		"Pawn on A7 promotes.",
		"Translocate the king on E1?",
		"Game over: Black wins, you lose.",
	} {
		testutil.AssertContains(t, out, want)
	}
}

func TestWriteHint(t *testing.T) {
	var buf bytes.Buffer
	board := engine.InitialSnapshot()

	WriteHint(&buf, chess.C(4, 1), engine.Destinations(board, chess.C(4, 1)).Sorted())
	testutil.AssertEqual(t, buf.String(), "Moves from E2: E3 E4\n")

	buf.Reset()
	WriteHint(&buf, chess.C(4, 3), engine.Destinations(board, chess.C(4, 3)).Sorted())
	testutil.AssertEqual(t, buf.String(), "No moves from E4.\n")
}

func TestTextVisualizerInvalidMoveHints(t *testing.T) {
	var buf bytes.Buffer
	v := NewTextVisualizer(&buf, chess.White, *config.NewOutputConfig())
	pawn := chess.NewPiece(chess.White, chess.Pawn)

	// No board received yet, so no hint even when enabled.
	cfg := *config.NewOutputConfig()
	cfg.ShowHints = true
	hinting := NewTextVisualizer(&buf, chess.White, cfg)
	hinting.OnInvalidMove(chess.C(4, 1), chess.C(4, 4), pawn)
	testutil.AssertNotContains(t, buf.String(), "Moves from")

	hinting.OnBoardUpdated(engine.InitialSnapshot())
	buf.Reset()
	hinting.OnInvalidMove(chess.C(4, 1), chess.C(4, 4), pawn)
	testutil.AssertContains(t, buf.String(), "Moves from E2: E3 E4")

	// Hints are off by default.
	v.OnBoardUpdated(engine.InitialSnapshot())
	buf.Reset()
	v.OnInvalidMove(chess.C(4, 1), chess.C(4, 4), pawn)
	testutil.AssertNotContains(t, buf.String(), "Moves from")
}

func TestLineWriterWraps(t *testing.T) {
	var buf bytes.Buffer
	lw := newLineWriter(&buf, 10)
	for _, s := range []string{"aaaa", "bbbb", "cccc"} {
		lw.Write(s)
	}
	lw.NewLine()
	testutil.AssertEqual(t, buf.String(), "aaaa bbbb\ncccc\n")
}

func TestTeeClonesBoards(t *testing.T) {
	a, b := testutil.NewRecorder(), testutil.NewRecorder()
	tee := NewTee(a, nil, b)

	tee.OnBoardUpdated(engine.InitialSnapshot())
	tee.OnGameOver(chess.White)

	ea, eb := a.Events(), b.Events()
	testutil.AssertEqual(t, len(ea), 2)
	testutil.AssertEqual(t, len(eb), 2)
	delete(ea[0].Board, chess.C(4, 0))
	testutil.AssertEqual(t, eb[0].Board.At(chess.C(4, 0)), chess.NewPiece(chess.White, chess.King))
	testutil.AssertEqual(t, eb[1].Side, chess.White)
}

func TestNewVisualizerFormat(t *testing.T) {
	cfg := *config.NewOutputConfig()
	_, ok := NewVisualizer(&bytes.Buffer{}, chess.White, cfg).(*TextVisualizer)
	testutil.AssertTrue(t, ok, "text format")

	cfg.Format = config.JSON
	_, ok = NewVisualizer(&bytes.Buffer{}, chess.White, cfg).(*JSONVisualizer)
	testutil.AssertTrue(t, ok, "json format")
}
