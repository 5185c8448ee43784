package chesscore

import "testing"

func TestToSANOpeningMoves(t *testing.T) {
	p := StartPosition()
	m := NewMove(SquareE2, SquareE4, KindNormal)
	if got := p.ToSAN(m); got != "e4" {
		t.Errorf("ToSAN(e2e4) = %q, want e4", got)
	}
}

func TestToSANDisambiguation(t *testing.T) {
	// Two white knights, on a1 and c1, can both reach b3; set up via FEN
	// directly.
	p, err := FromFEN("4k3/8/8/8/8/8/8/N1N1K3 w - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	var mb3, md3 Move
	for _, m := range GenerateLegal(p).Slice() {
		if m.Source() == SquareA1 && m.Target() == SquareB3 {
			mb3 = m
		}
		if m.Source() == SquareC1 && m.Target() == SquareB3 {
			md3 = m
		}
	}
	if mb3 == NoMove || md3 == NoMove {
		t.Fatalf("expected both knights to reach b3")
	}
	sanA := p.ToSAN(mb3)
	sanC := p.ToSAN(md3)
	if sanA == sanC {
		t.Errorf("ambiguous knight moves to b3 must disambiguate: got %q and %q", sanA, sanC)
	}
}

func TestToMoveRoundTrip(t *testing.T) {
	p := StartPosition()
	for _, s := range []string{"e4", "Nf3", "e2e4", "g1f3"} {
		m, err := ToMove(p, s)
		if err != nil {
			t.Errorf("ToMove(%q): %v", s, err)
			continue
		}
		if back := p.ToSAN(m); back == "" {
			t.Errorf("ToSAN for move parsed from %q produced empty string", s)
		}
	}
}

func TestToMoveCastlingSAN(t *testing.T) {
	p, err := FromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	m, err := ToMove(p, "O-O")
	if err != nil {
		t.Fatalf("ToMove(O-O): %v", err)
	}
	if m.Kind() != KindCastle {
		t.Errorf("expected a castle move, got kind %v", m.Kind())
	}
	if got := p.ToSAN(m); got != "O-O" {
		t.Errorf("ToSAN(castle) = %q, want O-O", got)
	}
}

func TestToMoveNullMove(t *testing.T) {
	p := StartPosition()
	for _, s := range []string{"Z0", "--", "0000"} {
		m, err := ToMove(p, s)
		if err != nil {
			t.Fatalf("ToMove(%q): %v", s, err)
		}
		if !m.IsNull() {
			t.Errorf("ToMove(%q) should produce the null move", s)
		}
	}
}

func TestSANMateSuffix(t *testing.T) {
	// Fool's mate final position: 1. f3 e5 2. g4 Qh4#
	p := StartPosition()
	for _, s := range []string{"f3", "e5", "g4", "Qh4"} {
		m, err := ToMove(p, s)
		if err != nil {
			t.Fatalf("ToMove(%q): %v", s, err)
		}
		if s == "Qh4" {
			if san := p.ToSAN(m); san != "Qh4#" {
				t.Errorf("ToSAN(final move) = %q, want Qh4#", san)
			}
		}
		p = p.DoMove(m, true)
	}
	if !p.IsMate() {
		t.Fatalf("expected checkmate after fool's mate line")
	}
}
