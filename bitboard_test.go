package chesscore

import "testing"

func TestBitboardSetClearHas(t *testing.T) {
	var bb Bitboard
	bb = bb.Set(SquareE4)
	if !bb.Has(SquareE4) {
		t.Fatalf("expected e4 set")
	}
	bb = bb.Clear(SquareE4)
	if bb.Has(SquareE4) {
		t.Fatalf("expected e4 cleared")
	}
}

func TestBitboardPopcountAndPop(t *testing.T) {
	bb := SquareA1.Bitboard() | SquareH8.Bitboard() | SquareE4.Bitboard()
	if bb.Popcount() != 3 {
		t.Fatalf("Popcount() = %d, want 3", bb.Popcount())
	}
	var seen []Square
	for bb != 0 {
		seen = append(seen, Pop(&bb))
	}
	if len(seen) != 3 || seen[0] != SquareA1 || seen[1] != SquareE4 || seen[2] != SquareH8 {
		t.Fatalf("Pop() order = %v, want ascending index order", seen)
	}
	if bb != 0 {
		t.Fatalf("bitboard should be empty after popping all squares")
	}
}

func TestBitboardMirrorVertically(t *testing.T) {
	bb := SquareA1.Bitboard()
	want := SquareA8.Bitboard()
	if got := bb.MirrorVertically(); got != want {
		t.Fatalf("MirrorVertically(a1) = %v, want a8", got)
	}
}

func TestBitboardMirrorHorizontally(t *testing.T) {
	bb := SquareA1.Bitboard()
	want := SquareH1.Bitboard()
	if got := bb.MirrorHorizontally(); got != want {
		t.Fatalf("MirrorHorizontally(a1) = %v, want h1", got)
	}
}

func TestBitboardShifts(t *testing.T) {
	bb := SquareA1.Bitboard()
	if got := bb.Up(White); got != SquareA2.Bitboard() {
		t.Fatalf("Up(white) from a1 = %v, want a2", got)
	}
	rightShifted := SquareA4.Bitboard().Right()
	if rightShifted != SquareB4.Bitboard() {
		t.Fatalf("Right() from a4 = %v, want b4", rightShifted)
	}
	// h-file squares must fall off rather than wrap to the a-file.
	if got := SquareH4.Bitboard().Right(); got != 0 {
		t.Fatalf("Right() from h4 should fall off the board, got %v", got)
	}
}

func TestFileAndRankMask(t *testing.T) {
	if FileMask(SquareA1).Popcount() != 8 {
		t.Fatalf("file mask should contain 8 squares")
	}
	if !FileMask(SquareA1).Has(SquareA8) {
		t.Fatalf("a-file mask should contain a8")
	}
	if !RankMask(SquareE4).Has(SquareA4) || !RankMask(SquareE4).Has(SquareH4) {
		t.Fatalf("rank 4 mask should span a4..h4")
	}
}
