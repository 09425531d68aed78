package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chessduel-go/internal/chess"
	"github.com/lgbarn/chessduel-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenKinds maps lowercase FEN letters to kinds.
var fenKinds = map[rune]chess.Kind{
	'p': chess.Pawn,
	'n': chess.Knight,
	'b': chess.Bishop,
	'r': chess.Rook,
	'q': chess.Queen,
	'k': chess.King,
}

// Position is a parsed FEN: the board and the side to move.
type Position struct {
	Board  chess.Snapshot
	ToMove chess.Side
}

// ParseFEN parses a FEN string. Only the placement field is required; the
// side to move defaults to White. Move flags are derived rather than stored:
// pawns off their starting rank and kings or rooks off their home squares
// are marked as moved, the castling field (when given) marks home-square
// kings and rooks without rights as moved, and an en-passant target flags
// the pawn that just passed it.
func ParseFEN(fen string) (Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return Position{}, &errors.ParseError{Err: errors.ErrInvalidFEN, Expected: "piece placement"}
	}

	board, err := parsePlacement(fen, parts[0])
	if err != nil {
		return Position{}, err
	}

	pos := Position{Board: board, ToMove: chess.White}
	if len(parts) >= 2 {
		switch parts[1] {
		case "w":
			pos.ToMove = chess.White
		case "b":
			pos.ToMove = chess.Black
		default:
			return Position{}, &errors.ParseError{
				Err: errors.ErrInvalidFEN, Input: fen, Expected: "w or b", Got: parts[1],
			}
		}
	}

	markMoved(board)
	if len(parts) >= 3 {
		applyCastlingField(board, parts[2])
	}
	if len(parts) >= 4 {
		if err := applyEnPassantField(board, pos.ToMove, fen, parts[3]); err != nil {
			return Position{}, err
		}
	}
	return pos, nil
}

// SnapshotFromFEN parses a FEN string and returns just its board.
func SnapshotFromFEN(fen string) (chess.Snapshot, error) {
	pos, err := ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return pos.Board, nil
}

// parsePlacement parses the piece placement field of a FEN string.
func parsePlacement(fen, placement string) (chess.Snapshot, error) {
	board := chess.Snapshot{}
	x, y := 0, chess.BoardSize-1

	for i, c := range placement {
		switch {
		case c == '/':
			if x != chess.BoardSize {
				return nil, &errors.ParseError{
					Err: errors.ErrInvalidFEN, Input: fen, Column: i + 1, Expected: "8 files per rank",
				}
			}
			y--
			x = 0
		case c >= '1' && c <= '8':
			x += int(c - '0')
		default:
			kind, ok := fenKinds[unicode.ToLower(c)]
			if !ok {
				return nil, &errors.ParseError{
					Err: errors.ErrInvalidFEN, Input: fen, Column: i + 1, Got: fmt.Sprintf("%q", c),
				}
			}
			side := chess.White
			if unicode.IsLower(c) {
				side = chess.Black
			}
			board[chess.C(x, y)] = chess.NewPiece(side, kind)
			x++
		}
		if x > chess.BoardSize || y < 0 {
			return nil, &errors.ParseError{
				Err: errors.ErrInvalidFEN, Input: fen, Column: i + 1, Got: "position out of bounds",
			}
		}
	}
	if y != 0 || x != chess.BoardSize {
		return nil, &errors.ParseError{Err: errors.ErrInvalidFEN, Input: fen, Expected: "8 ranks"}
	}
	return board, nil
}

// markMoved flags every piece that cannot still be on its starting square.
func markMoved(board chess.Snapshot) {
	for c, p := range board {
		switch p.Kind {
		case chess.Pawn:
			p.Moved = c.Y != p.Side.PawnRank()
		case chess.King:
			p.Moved = c != chess.C(4, p.Side.HomeRank())
		case chess.Rook:
			home := c.Y == p.Side.HomeRank() && (c.X == 0 || c.X == chess.BoardSize-1)
			p.Moved = !home
		}
		board[c] = p
	}
}

// applyCastlingField marks home-square kings and rooks as moved when the
// castling field grants them nothing.
func applyCastlingField(board chess.Snapshot, field string) {
	for _, side := range chess.Sides {
		kingSide, queenSide := 'K', 'Q'
		if side == chess.Black {
			kingSide, queenSide = 'k', 'q'
		}
		short := strings.ContainsRune(field, kingSide)
		long := strings.ContainsRune(field, queenSide)

		rank := side.HomeRank()
		setMoved(board, chess.C(chess.BoardSize-1, rank), chess.Rook, side, !short)
		setMoved(board, chess.C(0, rank), chess.Rook, side, !long)
		setMoved(board, chess.C(4, rank), chess.King, side, !short && !long)
	}
}

func setMoved(board chess.Snapshot, c chess.Coordinate, kind chess.Kind, side chess.Side, moved bool) {
	p := board.At(c)
	if p.Kind != kind || p.Side != side || !moved {
		return
	}
	p.Moved = true
	board[c] = p
}

// applyEnPassantField flags the pawn standing just past the target square.
// Only the side that just moved can have made the double step.
func applyEnPassantField(board chess.Snapshot, toMove chess.Side, fen, field string) error {
	if field == "-" {
		return nil
	}
	target, ok := chess.ParsePosition(field)
	if !ok {
		return &errors.ParseError{
			Err: errors.ErrInvalidFEN, Input: fen, Expected: "en passant square", Got: field,
		}
	}
	side := toMove.Opposite()
	at := target.Add(chess.C(0, side.Forward()))
	p := board.At(at)
	if p.Kind == chess.Pawn && p.Side == side && target.Y == side.PawnRank()+side.Forward() {
		p.EnPassant = true
		board[at] = p
	}
	return nil
}

// FEN converts a snapshot and side to move to a FEN string. Castling rights
// are reported for unmoved kings with unmoved corner rooks; the clocks are
// always "0 1".
func FEN(s chess.Snapshot, toMove chess.Side) string {
	var sb strings.Builder

	sb.WriteString(Placement(s))
	sb.WriteByte(' ')
	if toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	writeCastling(&sb, s)
	sb.WriteByte(' ')
	writeEnPassant(&sb, s)
	sb.WriteString(" 0 1")

	return sb.String()
}

// Placement returns the piece placement field for s.
func Placement(s chess.Snapshot) string {
	var sb strings.Builder
	for y := chess.BoardSize - 1; y >= 0; y-- {
		emptyCount := 0
		for x := 0; x < chess.BoardSize; x++ {
			p := s.At(chess.C(x, y))
			if p.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(p.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if y > 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// writeCastling writes the castling availability to the builder.
func writeCastling(sb *strings.Builder, s chess.Snapshot) {
	unmoved := func(c chess.Coordinate, kind chess.Kind, side chess.Side) bool {
		p := s.At(c)
		return p.Kind == kind && p.Side == side && !p.Moved
	}

	written := false
	for _, side := range chess.Sides {
		rank := side.HomeRank()
		if !unmoved(chess.C(4, rank), chess.King, side) {
			continue
		}
		short, long := byte('K'), byte('Q')
		if side == chess.Black {
			short, long = 'k', 'q'
		}
		if unmoved(chess.C(chess.BoardSize-1, rank), chess.Rook, side) {
			sb.WriteByte(short)
			written = true
		}
		if unmoved(chess.C(0, rank), chess.Rook, side) {
			sb.WriteByte(long)
			written = true
		}
	}
	if !written {
		sb.WriteByte('-')
	}
}

// writeEnPassant writes the square behind the vulnerable pawn, if any.
func writeEnPassant(sb *strings.Builder, s chess.Snapshot) {
	for _, c := range s.Squares() {
		if p := s[c]; p.Kind == chess.Pawn && p.EnPassant {
			target := c.Minus(chess.C(0, p.Side.Forward()))
			sb.WriteString(strings.ToLower(target.String()))
			return
		}
	}
	sb.WriteByte('-')
}

// InitialSnapshot returns the standard starting position.
func InitialSnapshot() chess.Snapshot {
	return chess.NewInitialBoard().Snapshot()
}
