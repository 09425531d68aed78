package chess

import (
	"sort"
	"strconv"

	"golang.org/x/exp/maps"
)

// BoardSize is the number of files and ranks.
const BoardSize = 8

// Coordinate is a 0-based (file, rank) pair. No bounds are enforced here;
// callers clip with a Bound.
type Coordinate struct {
	X int
	Y int
}

// C is shorthand for Coordinate{X: x, Y: y}.
func C(x, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

// Add returns c + o.
func (c Coordinate) Add(o Coordinate) Coordinate {
	return Coordinate{X: c.X + o.X, Y: c.Y + o.Y}
}

// Minus returns c - o.
func (c Coordinate) Minus(o Coordinate) Coordinate {
	return Coordinate{X: c.X - o.X, Y: c.Y - o.Y}
}

// Invert returns -c.
func (c Coordinate) Invert() Coordinate {
	return Coordinate{X: -c.X, Y: -c.Y}
}

// OnBoard reports whether c lies inside the 8x8 play area.
func (c Coordinate) OnBoard() bool {
	return BoardBound.IsIn(c)
}

// String returns the algebraic name ("E4") for on-board coordinates and
// "(x,y)" otherwise.
func (c Coordinate) String() string {
	if !c.OnBoard() {
		return "(" + strconv.Itoa(c.X) + "," + strconv.Itoa(c.Y) + ")"
	}
	return string([]byte{byte('A' + c.X), byte('1' + c.Y)})
}

// Bound is an inclusive axis-aligned rectangle.
type Bound struct {
	MinX, MaxX int
	MinY, MaxY int
}

// BoardBound covers the whole 8x8 play area.
var BoardBound = NewBound(C(0, 0), C(BoardSize-1, BoardSize-1))

// NewBound builds a Bound from two opposite corners given in any order.
func NewBound(a, b Coordinate) Bound {
	return Bound{
		MinX: min(a.X, b.X), MaxX: max(a.X, b.X),
		MinY: min(a.Y, b.Y), MaxY: max(a.Y, b.Y),
	}
}

// IsIn reports whether c lies inside the bound.
func (b Bound) IsIn(c Coordinate) bool {
	return b.IsXIn(c.X) && b.IsYIn(c.Y)
}

// IsXIn reports whether x lies inside the bound's file range.
func (b Bound) IsXIn(x int) bool {
	return x >= b.MinX && x <= b.MaxX
}

// IsYIn reports whether y lies inside the bound's rank range.
func (b Bound) IsYIn(y int) bool {
	return y >= b.MinY && y <= b.MaxY
}

// And returns the intersection of two bounds. The result may be empty
// (Min > Max on an axis), in which case IsIn is always false.
func (b Bound) And(o Bound) Bound {
	return Bound{
		MinX: max(b.MinX, o.MinX), MaxX: min(b.MaxX, o.MaxX),
		MinY: max(b.MinY, o.MinY), MaxY: min(b.MaxY, o.MaxY),
	}
}

// Or returns the smallest bound covering both bounds.
func (b Bound) Or(o Bound) Bound {
	return Bound{
		MinX: min(b.MinX, o.MinX), MaxX: max(b.MaxX, o.MaxX),
		MinY: min(b.MinY, o.MinY), MaxY: max(b.MaxY, o.MaxY),
	}
}

// Add translates both corners by c.
func (b Bound) Add(c Coordinate) Bound {
	return Bound{
		MinX: b.MinX + c.X, MaxX: b.MaxX + c.X,
		MinY: b.MinY + c.Y, MaxY: b.MaxY + c.Y,
	}
}

// CoordSet is a set of coordinates.
type CoordSet map[Coordinate]struct{}

// Add inserts c.
func (s CoordSet) Add(c Coordinate) {
	s[c] = struct{}{}
}

// Has reports whether c is in the set.
func (s CoordSet) Has(c Coordinate) bool {
	_, ok := s[c]
	return ok
}

// Union adds every member of o to s.
func (s CoordSet) Union(o CoordSet) {
	for c := range o {
		s[c] = struct{}{}
	}
}

// Sorted returns the members ordered by rank, then file.
func (s CoordSet) Sorted() []Coordinate {
	out := maps.Keys(s)
	SortCoordinates(out)
	return out
}

// SortCoordinates orders coordinates by rank, then file.
func SortCoordinates(cs []Coordinate) {
	sort.Slice(cs, func(i, j int) bool {
		if cs[i].Y != cs[j].Y {
			return cs[i].Y < cs[j].Y
		}
		return cs[i].X < cs[j].X
	})
}

// ParsePosition converts a two-character token such as "e4", "E4" or
// "4e" into a coordinate. File and rank may come in either order.
func ParsePosition(token string) (Coordinate, bool) {
	if len(token) != 2 {
		return Coordinate{}, false
	}
	a, b := token[0], token[1]
	if x, ok := fileIndex(a); ok {
		if y, ok := rankIndex(b); ok {
			return C(x, y), true
		}
		return Coordinate{}, false
	}
	if x, ok := fileIndex(b); ok {
		if y, ok := rankIndex(a); ok {
			return C(x, y), true
		}
	}
	return Coordinate{}, false
}

func fileIndex(c byte) (int, bool) {
	switch {
	case c >= 'a' && c <= 'h':
		return int(c - 'a'), true
	case c >= 'A' && c <= 'H':
		return int(c - 'A'), true
	}
	return 0, false
}

func rankIndex(c byte) (int, bool) {
	if c >= '1' && c <= '8' {
		return int(c - '1'), true
	}
	return 0, false
}
