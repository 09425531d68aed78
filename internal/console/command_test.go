package console

import (
	stderrors "errors"
	"testing"

	"github.com/lgbarn/chessduel-go/internal/chess"
	"github.com/lgbarn/chessduel-go/internal/errors"
	"github.com/lgbarn/chessduel-go/internal/testutil"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line string
		want Command
	}{
		{"", Command{Op: OpReady}},
		{"   ", Command{Op: OpReady}},
		{"?", Command{Op: OpHelp}},
		{"HELP", Command{Op: OpHelp}},
		{"move e2 e4", Command{Op: OpMove, Src: chess.C(4, 1), Dest: chess.C(4, 3)}},
		{"Move 2E 4E", Command{Op: OpMove, Src: chess.C(4, 1), Dest: chess.C(4, 3)}},
		{"mv  g1   f3", Command{Op: OpMove, Src: chess.C(6, 0), Dest: chess.C(5, 2)}},
		{"ascend Queen", Command{Op: OpAscend, Kind: chess.Queen}},
		{"ascend n", Command{Op: OpAscend, Kind: chess.Knight}},
		{"yes", Command{Op: OpYes}},
		{"no", Command{Op: OpNo}},
		{"say  good  game ", Command{Op: OpSay, Text: "good  game"}},
		{"quit", Command{Op: OpQuit}},
		{"exit", Command{Op: OpExit}},
		{"switch", Command{Op: OpSwitch}},
		{"fen", Command{Op: OpFEN}},
		{"hint b1", Command{Op: OpHint, Src: chess.C(1, 0)}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := ParseCommand(tt.line)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestParseCommandErrors(t *testing.T) {
	tests := []struct {
		line   string
		column int
		got    string
	}{
		{"dance", 1, "dance"},
		{"move e2", 8, ""},
		{"move e9 e4", 6, "e9"},
		{"move e2 zz", 9, "zz"},
		{"ascend king", 8, "king"},
		{"ascend pawn", 8, "pawn"},
		{"ascend dragon", 8, "dragon"},
		{"say", 4, ""},
		{"hint", 5, ""},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			_, err := ParseCommand(tt.line)
			testutil.AssertErrorIs(t, err, errors.ErrParseFailure)
			var pe *errors.ParseError
			testutil.AssertTrue(t, stderrors.As(err, &pe), "want *ParseError, got %T", err)
			testutil.AssertEqual(t, pe.Column, tt.column)
			testutil.AssertEqual(t, pe.Got, tt.got)
		})
	}
}

func TestTokenize(t *testing.T) {
	got := tokenize(" move  e2\te4")
	want := []token{{"move", 2}, {"e2", 8}, {"e4", 11}}
	testutil.AssertEqual(t, len(got), len(want))
	for i := range want {
		if i < len(got) && got[i] != want[i] {
			t.Errorf("token %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}
