// Package engine provides per-kind movement rules, special-move planning and
// FEN notation over board snapshots. Nothing here mutates a board.
package engine

import "github.com/lgbarn/chessduel-go/internal/chess"

// Movability classifies a square relative to a moving side.
type Movability int

const (
	MovEmpty  Movability = iota // nothing there
	MovEnemy                    // capturable, blocks further travel
	MovFriend                   // blocks travel, not capturable
)

// String returns the name of the classification.
func (m Movability) String() string {
	switch m {
	case MovEmpty:
		return "empty"
	case MovEnemy:
		return "enemy"
	case MovFriend:
		return "friend"
	default:
		return "unknown"
	}
}

// MovabilityOf classifies c for a piece of the given side.
func MovabilityOf(s chess.Snapshot, c chess.Coordinate, side chess.Side) Movability {
	p := s.At(c)
	switch {
	case p.IsEmpty():
		return MovEmpty
	case p.Side == side:
		return MovFriend
	default:
		return MovEnemy
	}
}

// Rule answers movement questions for one kind of piece of one side.
type Rule interface {
	// IsMoveValid checks a single src to dest transition.
	IsMoveValid(s chess.Snapshot, src, dest chess.Coordinate) bool
	// ValidDestinations lists every legal destination from src inside the
	// bound spanned by corners a and b, clipped to the board.
	ValidDestinations(s chess.Snapshot, src, a, b chess.Coordinate) chess.CoordSet
}

// RuleFor returns the rule for p, or nil for the empty piece.
func RuleFor(p chess.Piece) Rule {
	switch p.Kind {
	case chess.King:
		return kingRule{p.Side}
	case chess.Queen:
		return queenRule{p.Side}
	case chess.Knight:
		return knightRule{p.Side}
	case chess.Rook:
		return rookRule{p.Side}
	case chess.Bishop:
		return bishopRule{p.Side}
	case chess.Pawn:
		return pawnRule{p.Side}
	default:
		return nil
	}
}

// IsMoveValid is a convenience for RuleFor(s.At(src)).IsMoveValid.
func IsMoveValid(s chess.Snapshot, src, dest chess.Coordinate) bool {
	r := RuleFor(s.At(src))
	return r != nil && r.IsMoveValid(s, src, dest)
}

// Destinations lists every legal destination of the piece at src over the
// whole board.
func Destinations(s chess.Snapshot, src chess.Coordinate) chess.CoordSet {
	r := RuleFor(s.At(src))
	if r == nil {
		return chess.CoordSet{}
	}
	return r.ValidDestinations(s, src, chess.C(0, 0), chess.C(chess.BoardSize-1, chess.BoardSize-1))
}

var (
	orthogonal = []chess.Coordinate{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}}
	diagonal   = []chess.Coordinate{{X: 1, Y: 1}, {X: 1, Y: -1}, {X: -1, Y: 1}, {X: -1, Y: -1}}
	adjacent   = append(append([]chess.Coordinate{}, orthogonal...), diagonal...)
	knightHops = []chess.Coordinate{
		{X: 1, Y: 2}, {X: 2, Y: 1}, {X: 2, Y: -1}, {X: 1, Y: -2},
		{X: -1, Y: -2}, {X: -2, Y: -1}, {X: -2, Y: 1}, {X: -1, Y: 2},
	}
)

type kingRule struct{ side chess.Side }

func (r kingRule) IsMoveValid(s chess.Snapshot, src, dest chess.Coordinate) bool {
	if !landable(s, src, dest, r.side) {
		return false
	}
	d := dest.Minus(src)
	return max(abs(d.X), abs(d.Y)) == 1
}

func (r kingRule) ValidDestinations(s chess.Snapshot, src, a, b chess.Coordinate) chess.CoordSet {
	return hops(s, src, clip(a, b), r.side, adjacent)
}

type knightRule struct{ side chess.Side }

func (r knightRule) IsMoveValid(s chess.Snapshot, src, dest chess.Coordinate) bool {
	if !landable(s, src, dest, r.side) {
		return false
	}
	d := dest.Minus(src)
	dx, dy := abs(d.X), abs(d.Y)
	return dx+dy == 3 && abs(dx-dy) == 1
}

func (r knightRule) ValidDestinations(s chess.Snapshot, src, a, b chess.Coordinate) chess.CoordSet {
	return hops(s, src, clip(a, b), r.side, knightHops)
}

type rookRule struct{ side chess.Side }

func (r rookRule) IsMoveValid(s chess.Snapshot, src, dest chess.Coordinate) bool {
	if !landable(s, src, dest, r.side) {
		return false
	}
	d := dest.Minus(src)
	if (d.X == 0) == (d.Y == 0) {
		return false
	}
	return pathClear(s, src, dest)
}

func (r rookRule) ValidDestinations(s chess.Snapshot, src, a, b chess.Coordinate) chess.CoordSet {
	return rays(s, src, clip(a, b), r.side, orthogonal)
}

type bishopRule struct{ side chess.Side }

func (r bishopRule) IsMoveValid(s chess.Snapshot, src, dest chess.Coordinate) bool {
	if !landable(s, src, dest, r.side) {
		return false
	}
	d := dest.Minus(src)
	if abs(d.X) != abs(d.Y) {
		return false
	}
	return pathClear(s, src, dest)
}

func (r bishopRule) ValidDestinations(s chess.Snapshot, src, a, b chess.Coordinate) chess.CoordSet {
	return rays(s, src, clip(a, b), r.side, diagonal)
}

// queenRule is the union of the rook and bishop rules.
type queenRule struct{ side chess.Side }

func (r queenRule) IsMoveValid(s chess.Snapshot, src, dest chess.Coordinate) bool {
	return rookRule(r).IsMoveValid(s, src, dest) || bishopRule(r).IsMoveValid(s, src, dest)
}

func (r queenRule) ValidDestinations(s chess.Snapshot, src, a, b chess.Coordinate) chess.CoordSet {
	out := rookRule(r).ValidDestinations(s, src, a, b)
	out.Union(bishopRule(r).ValidDestinations(s, src, a, b))
	return out
}
