package console

import (
	"fmt"
	"io"

	"github.com/lgbarn/chessduel-go/internal/chess"
	"github.com/lgbarn/chessduel-go/internal/engine"
	"github.com/lgbarn/chessduel-go/internal/game"
	"github.com/lgbarn/chessduel-go/internal/output"
)

// Position is the read side of a game that sessions report on.
type Position interface {
	Snapshot() chess.Snapshot
	Turn() chess.Side
	IsRunning() bool
}

// Session forwards one side's commands to its joystick. Replies to local
// queries (help, fen, hint) are written to out.
type Session struct {
	js  game.Joystick
	pos Position
	out io.Writer
}

// NewSession creates a session driving js.
func NewSession(js game.Joystick, pos Position, out io.Writer) *Session {
	return &Session{js: js, pos: pos, out: out}
}

// Exec performs cmd. Lobby commands (ready, switch, exit) are left to the
// caller and ignored here.
func (s *Session) Exec(cmd Command) {
	switch cmd.Op {
	case OpMove:
		s.js.Move(cmd.Src, cmd.Dest)
	case OpAscend:
		s.js.ChoosePromotion(cmd.Kind)
	case OpYes:
		s.js.DecideTranslocation(true)
	case OpNo:
		s.js.DecideTranslocation(false)
	case OpSay:
		s.js.SendMessage(cmd.Text)
	case OpQuit:
		if !s.pos.IsRunning() {
			fmt.Fprintln(s.out, "No game in progress.")
			return
		}
		s.js.Resign()
	case OpFEN:
		fmt.Fprintln(s.out, engine.FEN(s.pos.Snapshot(), s.pos.Turn()))
	case OpHint:
		output.WriteHint(s.out, cmd.Src, engine.Destinations(s.pos.Snapshot(), cmd.Src).Sorted())
	case OpHelp:
		fmt.Fprint(s.out, helpText)
	}
}
