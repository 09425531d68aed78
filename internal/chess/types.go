// Package chess provides core board types: sides, piece kinds, per-square
// piece records, coordinates, bounds, and the board itself.
package chess

import (
	"fmt"
	"strings"
)

// Side represents one of the two players.
type Side int

const (
	Black Side = iota
	White
)

// Sides lists both sides in a fixed order, useful for fan-out loops.
var Sides = [2]Side{White, Black}

// String returns the string representation of a side.
func (s Side) String() string {
	switch s {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// Valid reports whether s is Black or White.
func (s Side) Valid() bool {
	return s == Black || s == White
}

// Opposite returns the opposite side.
func (s Side) Opposite() Side {
	if s == White {
		return Black
	}
	return White
}

// Forward returns +1 for White, -1 for Black (the side's "up" axis).
func (s Side) Forward() int {
	if s == White {
		return 1
	}
	return -1
}

// HomeRank returns the back rank a side starts on.
func (s Side) HomeRank() int {
	if s == White {
		return 0
	}
	return BoardSize - 1
}

// PawnRank returns the rank a side's pawns start on.
func (s Side) PawnRank() int {
	return s.HomeRank() + s.Forward()
}

// FarRank returns the rank on which this side's pawns promote.
func (s Side) FarRank() int {
	return s.Opposite().HomeRank()
}

// Kind represents a piece kind. The zero value Empty means "no piece".
type Kind int

const (
	Empty Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single uppercase letter for a kind.
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Promotable reports whether a pawn may become this kind.
func (k Kind) Promotable() bool {
	switch k {
	case Knight, Bishop, Rook, Queen:
		return true
	default:
		return false
	}
}

// Piece is the record stored for an occupied square.
//
// Moved is set once the occupant has moved. EnPassant is only ever set on
// a pawn, for the single turn after its double step.
type Piece struct {
	Kind      Kind
	Side      Side
	Moved     bool
	EnPassant bool
}

// NewPiece returns an unmoved piece of the given kind and side.
func NewPiece(side Side, kind Kind) Piece {
	return Piece{Kind: kind, Side: side}
}

// IsEmpty reports whether p is the zero "no piece" record.
func (p Piece) IsEmpty() bool {
	return p.Kind == Empty
}

// String returns e.g. "White Knight".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Side.String() + " " + p.Kind.String()
}

// Letter returns the FEN letter: uppercase for White, lowercase for Black.
func (p Piece) Letter() byte {
	l := p.Kind.Letter()
	if p.Side == Black && l >= 'A' && l <= 'Z' {
		l += 'a' - 'A'
	}
	return l
}

// ParseKind converts a kind name or letter, case-insensitive.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "p", "pawn":
		return Pawn, true
	case "n", "knight", "kt":
		return Knight, true
	case "b", "bishop", "bp":
		return Bishop, true
	case "r", "rook", "rk":
		return Rook, true
	case "q", "queen", "qu":
		return Queen, true
	case "k", "king", "kg":
		return King, true
	default:
		return Empty, false
	}
}
