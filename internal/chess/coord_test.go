package chess

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCoordinateArithmetic(t *testing.T) {
	a := C(3, 4)
	b := C(1, -2)

	if got := a.Add(b); got != C(4, 2) {
		t.Errorf("Add = %v; want (4,2)", got)
	}
	if got := a.Minus(b); got != C(2, 6) {
		t.Errorf("Minus = %v; want (2,6)", got)
	}
	if got := b.Invert(); got != C(-1, 2) {
		t.Errorf("Invert = %v; want (-1,2)", got)
	}
}

func TestCoordinateString(t *testing.T) {
	tests := []struct {
		c    Coordinate
		want string
	}{
		{C(0, 0), "A1"},
		{C(4, 3), "E4"},
		{C(7, 7), "H8"},
		{C(8, 0), "(8,0)"},
		{C(-1, 3), "(-1,3)"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("%#v.String() = %q; want %q", tt.c, got, tt.want)
		}
	}
}

func TestNewBoundNormalizesCorners(t *testing.T) {
	got := NewBound(C(5, 1), C(2, 6))
	want := Bound{MinX: 2, MaxX: 5, MinY: 1, MaxY: 6}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("NewBound mismatch (-want +got):\n%s", diff)
	}
}

func TestBoundMembership(t *testing.T) {
	b := NewBound(C(1, 1), C(3, 3))

	tests := []struct {
		name string
		c    Coordinate
		want bool
	}{
		{"corner min", C(1, 1), true},
		{"corner max", C(3, 3), true},
		{"inside", C(2, 2), true},
		{"left of", C(0, 2), false},
		{"above", C(2, 4), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.IsIn(tt.c); got != tt.want {
				t.Errorf("IsIn(%v) = %v; want %v", tt.c, got, tt.want)
			}
		})
	}

	if !b.IsXIn(3) || b.IsXIn(4) {
		t.Error("IsXIn boundaries wrong")
	}
	if !b.IsYIn(1) || b.IsYIn(0) {
		t.Error("IsYIn boundaries wrong")
	}
}

func TestBoundAndOrAdd(t *testing.T) {
	window := NewBound(C(-1, -1), C(1, 1))

	// A pawn window anchored on a corner square is clipped by the board.
	anchored := window.Add(C(0, 0)).And(BoardBound)
	want := Bound{MinX: 0, MaxX: 1, MinY: 0, MaxY: 1}
	if diff := cmp.Diff(want, anchored); diff != "" {
		t.Errorf("And mismatch (-want +got):\n%s", diff)
	}

	union := NewBound(C(0, 0), C(1, 1)).Or(NewBound(C(5, 6), C(6, 7)))
	want = Bound{MinX: 0, MaxX: 6, MinY: 0, MaxY: 7}
	if diff := cmp.Diff(want, union); diff != "" {
		t.Errorf("Or mismatch (-want +got):\n%s", diff)
	}

	disjoint := NewBound(C(0, 0), C(1, 1)).And(NewBound(C(3, 3), C(4, 4)))
	if disjoint.IsIn(C(1, 1)) || disjoint.IsIn(C(3, 3)) {
		t.Error("empty intersection should contain nothing")
	}
}

func TestParsePosition(t *testing.T) {
	tests := []struct {
		token string
		want  Coordinate
		ok    bool
	}{
		{"a1", C(0, 0), true},
		{"H8", C(7, 7), true},
		{"e4", C(4, 3), true},
		{"4e", C(4, 3), true},
		{"4E", C(4, 3), true},
		{"i1", Coordinate{}, false},
		{"a9", Coordinate{}, false},
		{"a0", Coordinate{}, false},
		{"e", Coordinate{}, false},
		{"e44", Coordinate{}, false},
		{"44", Coordinate{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, ok := ParsePosition(tt.token)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ParsePosition(%q) = %v, %v; want %v, %v", tt.token, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestCoordSetSorted(t *testing.T) {
	s := CoordSet{}
	s.Add(C(3, 2))
	s.Add(C(0, 5))
	s.Add(C(1, 2))
	s.Add(C(1, 2))

	want := []Coordinate{C(1, 2), C(3, 2), C(0, 5)}
	if diff := cmp.Diff(want, s.Sorted()); diff != "" {
		t.Errorf("Sorted mismatch (-want +got):\n%s", diff)
	}
	if !s.Has(C(0, 5)) || s.Has(C(5, 0)) {
		t.Error("Has reports wrong membership")
	}
}
