package engine

import "github.com/lgbarn/chessduel-go/internal/chess"

// Translocation is a rook move that may carry its king along: the rook lands
// next to the king and, if accepted, the king jumps to the square the rook
// just passed over.
type Translocation struct {
	Rook   chess.Coordinate
	RookTo chess.Coordinate
	King   chess.Coordinate
	KingTo chess.Coordinate
}

// PlanTranslocation reports whether moving the piece at src to dest earns a
// translocation offer. The mover must be an unmoved rook travelling at least
// two squares along one axis, legally, to stop directly in front of its own
// unmoved king. Whether the side has already used its translocation is the
// caller's concern.
func PlanTranslocation(s chess.Snapshot, src, dest chess.Coordinate) (Translocation, bool) {
	rook := s.At(src)
	if rook.Kind != chess.Rook || rook.Moved {
		return Translocation{}, false
	}
	d := dest.Minus(src)
	if (d.X == 0) == (d.Y == 0) || max(abs(d.X), abs(d.Y)) < 2 {
		return Translocation{}, false
	}
	if !(rookRule{rook.Side}).IsMoveValid(s, src, dest) {
		return Translocation{}, false
	}

	step := direction(src, dest)
	kingAt := dest.Add(step)
	king := s.At(kingAt)
	if king.Kind != chess.King || king.Side != rook.Side || king.Moved {
		return Translocation{}, false
	}

	return Translocation{
		Rook:   src,
		RookTo: dest,
		King:   kingAt,
		KingTo: dest.Minus(step),
	}, true
}
