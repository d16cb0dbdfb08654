package board

import (
	"errors"
	"testing"
)

func TestToSANBasic(t *testing.T) {
	pos := NewPosition()

	tests := []struct {
		move Move
		want string
	}{
		{NewMove(E2, E4), "e4"},
		{NewMove(G1, F3), "Nf3"},
	}

	for _, tc := range tests {
		got := tc.move.ToSAN(pos)
		if got != tc.want {
			t.Errorf("ToSAN(%v) = %q, want %q", tc.move, got, tc.want)
		}
	}
}

func TestToSANCastling(t *testing.T) {
	pos, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("Failed to parse FEN: %v", err)
	}

	tests := []struct {
		move Move
		want string
	}{
		{NewCastling(E1, G1), "O-O"},
		{NewCastling(E1, C1), "O-O-O"},
	}

	for _, tc := range tests {
		got := tc.move.ToSAN(pos)
		if got != tc.want {
			t.Errorf("ToSAN(%v) = %q, want %q", tc.move, got, tc.want)
		}
	}
}

func TestToSANCheckAndMate(t *testing.T) {
	// White rook delivers checkmate on the back rank.
	pos, err := ParseFEN("7k/6pp/8/8/8/8/8/R6K w - - 0 1")
	if err != nil {
		t.Fatalf("Failed to parse FEN: %v", err)
	}

	m := NewMove(A1, A8)
	got := m.ToSAN(pos)
	if got != "Ra8#" {
		t.Errorf("ToSAN(%v) = %q, want %q", m, got, "Ra8#")
	}
}

func TestToSANDisambiguation(t *testing.T) {
	// Knights on a1 and c1 can both reach b3; different files disambiguate.
	pos, err := ParseFEN("4k3/8/8/8/8/8/8/N1N1K3 w - - 0 1")
	if err != nil {
		t.Fatalf("Failed to parse FEN: %v", err)
	}

	got := NewMove(A1, B3).ToSAN(pos)
	if got != "Nab3" {
		t.Errorf("ToSAN(a1b3) = %q, want %q", got, "Nab3")
	}
}

func TestParseSANRejectsUnreachableSquare(t *testing.T) {
	pos := NewPosition()

	if _, err := ParseSAN("Nf6", pos); !errors.Is(err, ErrBadMove) {
		t.Errorf("ParseSAN(%q) = %v, want ErrBadMove (no legal move reaches f6 from the start position)", "Nf6", err)
	}
}

func TestParseSANRoundTrip(t *testing.T) {
	pos := NewPosition()

	moves := pos.GenerateLegalMoves()
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		san := m.ToSAN(pos)
		parsed, err := ParseSAN(san, pos)
		if err != nil {
			t.Fatalf("ParseSAN(%q) returned error: %v", san, err)
		}
		if parsed != m {
			t.Errorf("ParseSAN(%q) = %v, want %v", san, parsed, m)
		}
	}
}
