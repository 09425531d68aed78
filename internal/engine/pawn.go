package engine

import "github.com/lgbarn/chessduel-go/internal/chess"

type pawnRule struct{ side chess.Side }

// pawnWindow is the square envelope a pawn may advance within: one square
// around it once it has moved, two before, clipped to the board.
func pawnWindow(src chess.Coordinate, moved bool) chess.Bound {
	reach := 2
	if moved {
		reach = 1
	}
	return chess.NewBound(chess.C(-reach, -reach), chess.C(reach, reach)).
		Add(src).
		And(chess.BoardBound)
}

func (r pawnRule) IsMoveValid(s chess.Snapshot, src, dest chess.Coordinate) bool {
	if !dest.OnBoard() || dest == src {
		return false
	}
	d := dest.Minus(src)
	fwd := r.side.Forward()

	switch {
	case d.X == 0:
		if d.Y*fwd <= 0 || !pawnWindow(src, s.At(src).Moved).IsIn(dest) {
			return false
		}
		// Advances never capture, so the destination must be empty too.
		step := chess.C(0, fwd)
		for c := src.Add(step); ; c = c.Add(step) {
			if !s.At(c).IsEmpty() {
				return false
			}
			if c == dest {
				return true
			}
		}
	case abs(d.X) == 1 && d.Y == fwd:
		switch MovabilityOf(s, dest, r.side) {
		case MovEnemy:
			return true
		case MovEmpty:
			_, ok := EnPassantVictim(s, src, dest)
			return ok
		}
	}
	return false
}

func (r pawnRule) ValidDestinations(s chess.Snapshot, src, a, b chess.Coordinate) chess.CoordSet {
	bound := clip(a, b)
	fwd := r.side.Forward()
	candidates := []chess.Coordinate{
		src.Add(chess.C(0, fwd)),
		src.Add(chess.C(0, 2*fwd)),
		src.Add(chess.C(-1, fwd)),
		src.Add(chess.C(1, fwd)),
	}

	out := chess.CoordSet{}
	for _, c := range candidates {
		if bound.IsIn(c) && r.IsMoveValid(s, src, c) {
			out.Add(c)
		}
	}
	return out
}

// EnPassantVictim returns the square of the pawn an en-passant capture from
// src to dest would remove. It reports false unless src holds a pawn making a
// forward diagonal step onto an empty square beside an enemy pawn that is
// flagged as vulnerable.
func EnPassantVictim(s chess.Snapshot, src, dest chess.Coordinate) (chess.Coordinate, bool) {
	mover := s.At(src)
	if mover.Kind != chess.Pawn {
		return chess.Coordinate{}, false
	}
	d := dest.Minus(src)
	if abs(d.X) != 1 || d.Y != mover.Side.Forward() || !s.At(dest).IsEmpty() {
		return chess.Coordinate{}, false
	}
	beside := chess.C(src.X+d.X, src.Y)
	victim := s.At(beside)
	if victim.Kind != chess.Pawn || victim.Side == mover.Side || !victim.EnPassant {
		return chess.Coordinate{}, false
	}
	return beside, true
}

// IsDoubleStep reports whether moving the piece at src to dest is a pawn's
// two-square first advance.
func IsDoubleStep(s chess.Snapshot, src, dest chess.Coordinate) bool {
	p := s.At(src)
	d := dest.Minus(src)
	return p.Kind == chess.Pawn && d.X == 0 && d.Y == 2*p.Side.Forward()
}

// ReachesFarRank reports whether p landing on dest must be promoted.
func ReachesFarRank(p chess.Piece, dest chess.Coordinate) bool {
	return p.Kind == chess.Pawn && dest.Y == p.Side.FarRank()
}
