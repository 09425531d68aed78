package engine

import "github.com/lgbarn/chessduel-go/internal/chess"

// landable reports whether a piece of side may finish on dest: on the board,
// not its own square, and not held by a friend.
func landable(s chess.Snapshot, src, dest chess.Coordinate, side chess.Side) bool {
	return dest.OnBoard() && dest != src && MovabilityOf(s, dest, side) != MovFriend
}

// clip builds the bound spanned by a and b, intersected with the board.
func clip(a, b chess.Coordinate) chess.Bound {
	return chess.NewBound(a, b).And(chess.BoardBound)
}

// pathClear reports whether every square strictly between src and dest is
// empty. src and dest must share a rank, a file or a diagonal.
func pathClear(s chess.Snapshot, src, dest chess.Coordinate) bool {
	step := direction(src, dest)
	for c := src.Add(step); c != dest; c = c.Add(step) {
		if !s.At(c).IsEmpty() {
			return false
		}
	}
	return true
}

// direction returns the unit step from src toward dest.
func direction(src, dest chess.Coordinate) chess.Coordinate {
	d := dest.Minus(src)
	return chess.C(sign(d.X), sign(d.Y))
}

// rays walks outward from src along each step until leaving the board or
// hitting a piece, keeping the squares that fall inside bound. An enemy
// piece ends the ray and is included.
func rays(s chess.Snapshot, src chess.Coordinate, bound chess.Bound, side chess.Side, steps []chess.Coordinate) chess.CoordSet {
	out := chess.CoordSet{}
	for _, step := range steps {
		for c := src.Add(step); c.OnBoard(); c = c.Add(step) {
			m := MovabilityOf(s, c, side)
			if m == MovFriend {
				break
			}
			if bound.IsIn(c) {
				out.Add(c)
			}
			if m == MovEnemy {
				break
			}
		}
	}
	return out
}

// hops adds each src+offset that lies in the bound and is not friendly.
func hops(s chess.Snapshot, src chess.Coordinate, bound chess.Bound, side chess.Side, offsets []chess.Coordinate) chess.CoordSet {
	out := chess.CoordSet{}
	for _, off := range offsets {
		c := src.Add(off)
		if bound.IsIn(c) && MovabilityOf(s, c, side) != MovFriend {
			out.Add(c)
		}
	}
	return out
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
