package chess

import (
	"sync"

	"golang.org/x/exp/maps"
)

// Snapshot is a copy of the board's occupied squares. Records are held by
// value, so a snapshot never changes after it is taken.
type Snapshot map[Coordinate]Piece

// At returns the piece at c, or the zero Piece if the square is empty.
func (s Snapshot) At(c Coordinate) Piece {
	return s[c]
}

// Clone returns an independent copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	out := make(Snapshot, len(s))
	for c, p := range s {
		out[c] = p
	}
	return out
}

// Squares returns the occupied coordinates ordered by rank, then file.
func (s Snapshot) Squares() []Coordinate {
	out := maps.Keys(s)
	SortCoordinates(out)
	return out
}

// Find returns the coordinates of every piece matching kind and side.
func (s Snapshot) Find(side Side, kind Kind) []Coordinate {
	var out []Coordinate
	for _, c := range s.Squares() {
		if p := s[c]; p.Kind == kind && p.Side == side {
			out = append(out, c)
		}
	}
	return out
}

// Board maps occupied coordinates to piece records. It is safe for
// concurrent use; no operation validates legality.
type Board struct {
	mu   sync.RWMutex
	grid map[Coordinate]Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{grid: make(map[Coordinate]Piece)}
}

// NewBoardFromSnapshot creates a board holding a copy of s.
func NewBoardFromSnapshot(s Snapshot) *Board {
	return &Board{grid: s.Clone()}
}

// NewInitialBoard creates a board set up in the standard start position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition clears the board and places both sides' pieces.
func (b *Board) SetupInitialPosition() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.grid = make(map[Coordinate]Piece, 32)
	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for _, side := range Sides {
		for x, kind := range backRank {
			b.grid[C(x, side.HomeRank())] = NewPiece(side, kind)
			b.grid[C(x, side.PawnRank())] = NewPiece(side, Pawn)
		}
	}
}

// Load replaces the board's contents with a copy of s.
func (b *Board) Load(s Snapshot) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.grid = s.Clone()
}

// Snapshot returns a copy of the occupied squares.
func (b *Board) Snapshot() Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make(Snapshot, len(b.grid))
	for c, p := range b.grid {
		out[c] = p
	}
	return out
}

// Get returns the piece at c, or the zero Piece.
func (b *Board) Get(c Coordinate) Piece {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.grid[c]
}

// Len returns the number of occupied squares.
func (b *Board) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.grid)
}

// Place puts p on c, replacing any occupant. Placing the zero Piece or
// placing off the board is a no-op.
func (b *Board) Place(c Coordinate, p Piece) {
	if p.IsEmpty() || !c.OnBoard() {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.grid[c] = p
}

// Move relocates the piece at src to dest, overwriting any occupant there.
// It returns the overwritten piece (zero if dest was empty). Moving from an
// empty square or onto an off-board square does nothing.
func (b *Board) Move(src, dest Coordinate) Piece {
	b.mu.Lock()
	defer b.mu.Unlock()
	p, ok := b.grid[src]
	if !ok || !dest.OnBoard() {
		return Piece{}
	}
	captured := b.grid[dest]
	delete(b.grid, src)
	b.grid[dest] = p
	return captured
}

// Capture removes the piece at c and returns it.
func (b *Board) Capture(c Coordinate) Piece {
	b.mu.Lock()
	defer b.mu.Unlock()
	p := b.grid[c]
	delete(b.grid, c)
	return p
}

// Promote replaces the occupant of c with p in place. The square must be
// occupied.
func (b *Board) Promote(c Coordinate, p Piece) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.grid[c]; !ok || p.IsEmpty() {
		return false
	}
	b.grid[c] = p
	return true
}

// Update applies fn to the record at c. It reports false if c is empty.
func (b *Board) Update(c Coordinate, fn func(p *Piece)) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	p, ok := b.grid[c]
	if !ok {
		return false
	}
	fn(&p)
	b.grid[c] = p
	return true
}
