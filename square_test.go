package chesscore

import "testing"

func TestSquareFromString(t *testing.T) {
	cases := []struct {
		in   string
		want Square
	}{
		{"a1", SquareA1},
		{"h8", SquareH8},
		{"e4", SquareE4},
	}
	for _, c := range cases {
		got, err := SquareFromString(c.in)
		if err != nil {
			t.Fatalf("SquareFromString(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("SquareFromString(%q) = %v, want %v", c.in, got, c.want)
		}
		if got.String() != c.in {
			t.Errorf("%v.String() = %q, want %q", got, got.String(), c.in)
		}
	}
}

func TestSquareFromStringInvalid(t *testing.T) {
	for _, s := range []string{"", "a", "i1", "a9", "z9"} {
		if _, err := SquareFromString(s); err == nil {
			t.Errorf("SquareFromString(%q): expected error", s)
		}
	}
}

func TestSquareMirror(t *testing.T) {
	if SquareA1.MirrorVertically() != SquareA8 {
		t.Errorf("a1 mirrored vertically should be a8")
	}
	if SquareA1.MirrorHorizontally() != SquareH1 {
		t.Errorf("a1 mirrored horizontally should be h1")
	}
}

func TestSquareUpDown(t *testing.T) {
	if SquareE4.Up(White) != SquareE5 {
		t.Errorf("e4 up for white should be e5")
	}
	if SquareE4.Up(Black) != SquareE3 {
		t.Errorf("e4 up for black should be e3")
	}
	if SquareE5.Down(White) != SquareE4 {
		t.Errorf("Down should invert Up")
	}
}

func TestSquareDistance(t *testing.T) {
	if d := SquareA1.ChebyshevDistance(SquareH8); d != 7 {
		t.Errorf("ChebyshevDistance(a1,h8) = %d, want 7", d)
	}
	if d := SquareA1.ManhattanDistance(SquareH8); d != 14 {
		t.Errorf("ManhattanDistance(a1,h8) = %d, want 14", d)
	}
}

func TestSquareOnEdge(t *testing.T) {
	if !SquareA1.OnEdge() {
		t.Errorf("a1 should be on the edge")
	}
	if SquareE4.OnEdge() {
		t.Errorf("e4 should not be on the edge")
	}
}
