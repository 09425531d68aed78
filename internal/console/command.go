// Package console drives a game from lines of text: it parses commands,
// forwards them to a side's joystick and runs hotseat play for two sides
// sharing one input stream.
package console

import (
	"strings"
	"unicode"

	"github.com/lgbarn/chessduel-go/internal/chess"
	"github.com/lgbarn/chessduel-go/internal/errors"
)

// Op identifies a console command.
type Op int

const (
	OpReady  Op = iota // Empty line: ready for the next game
	OpHelp             // ? or help
	OpMove             // move <from> <to>
	OpAscend           // ascend <kind>
	OpYes              // Accept a translocation
	OpNo               // Decline a translocation
	OpSay              // say <text>
	OpQuit             // Resign the current game
	OpExit             // Leave the console
	OpSwitch           // Swap sides between games
	OpFEN              // Print the position as FEN
	OpHint             // hint <square>
)

// Command is one parsed console line.
type Command struct {
	Op   Op
	Src  chess.Coordinate
	Dest chess.Coordinate
	Kind chess.Kind
	Text string
}

var simpleOps = map[string]Op{
	"?":      OpHelp,
	"help":   OpHelp,
	"yes":    OpYes,
	"y":      OpYes,
	"no":     OpNo,
	"n":      OpNo,
	"quit":   OpQuit,
	"resign": OpQuit,
	"exit":   OpExit,
	"switch": OpSwitch,
	"fen":    OpFEN,
}

// token is a word and the 1-based column it starts at.
type token struct {
	text string
	col  int
}

func tokenize(line string) []token {
	var toks []token
	start := -1
	for i, r := range line {
		if unicode.IsSpace(r) {
			if start >= 0 {
				toks = append(toks, token{line[start:i], start + 1})
				start = -1
			}
		} else if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		toks = append(toks, token{line[start:], start + 1})
	}
	return toks
}

// ParseCommand parses one console line. Verbs are case-insensitive.
func ParseCommand(line string) (Command, error) {
	toks := tokenize(line)
	if len(toks) == 0 {
		return Command{Op: OpReady}, nil
	}
	verb := strings.ToLower(toks[0].text)
	args := toks[1:]

	if op, ok := simpleOps[verb]; ok {
		return Command{Op: op}, nil
	}

	switch verb {
	case "move", "mv":
		if len(args) < 2 {
			return Command{}, parseError(line, len(line)+1, "move <from> <to>", "")
		}
		src, err := parseSquare(line, args[0])
		if err != nil {
			return Command{}, err
		}
		dest, err := parseSquare(line, args[1])
		if err != nil {
			return Command{}, err
		}
		return Command{Op: OpMove, Src: src, Dest: dest}, nil

	case "ascend", "promote":
		const want = "queen, rook, bishop or knight"
		if len(args) < 1 {
			return Command{}, parseError(line, len(line)+1, want, "")
		}
		kind, ok := chess.ParseKind(args[0].text)
		if !ok || !kind.Promotable() {
			return Command{}, parseError(line, args[0].col, want, args[0].text)
		}
		return Command{Op: OpAscend, Kind: kind}, nil

	case "say":
		if len(args) == 0 {
			return Command{}, parseError(line, len(line)+1, "a message", "")
		}
		return Command{Op: OpSay, Text: strings.TrimSpace(line[args[0].col-1:])}, nil

	case "hint":
		if len(args) < 1 {
			return Command{}, parseError(line, len(line)+1, "hint <square>", "")
		}
		src, err := parseSquare(line, args[0])
		if err != nil {
			return Command{}, err
		}
		return Command{Op: OpHint, Src: src}, nil
	}

	return Command{}, parseError(line, toks[0].col, "a command (? for help)", toks[0].text)
}

func parseSquare(line string, tok token) (chess.Coordinate, error) {
	c, ok := chess.ParsePosition(tok.text)
	if !ok {
		return chess.Coordinate{}, parseError(line, tok.col, "a square such as e2", tok.text)
	}
	return c, nil
}

func parseError(line string, col int, expected, got string) error {
	return &errors.ParseError{
		Err:      errors.ErrParseFailure,
		Input:    line,
		Column:   col,
		Expected: expected,
		Got:      got,
	}
}

const helpText = `commands:
  <enter>              ready for the next game
  ? | help             show this help
  move <from> <to>     move a piece, e.g. move e2 e4
  ascend <kind>        promote a pawn: queen, rook, bishop or knight
  yes | no             accept or decline a translocation
  say <message>        send a message to your opponent
  hint <square>        list the moves of the piece on a square
  fen                  print the position
  quit                 resign the current game
  switch               swap sides between games
  exit                 leave
hotseat: prefix a line with white: or black: (w: / b:) to speak for a side
`
