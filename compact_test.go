package chesscore

import "testing"

func TestEncodeDecodeMovesRoundTrip(t *testing.T) {
	start := StartPosition()
	var moves []Move
	cur := start
	for _, s := range []string{"e4", "e5", "Nf3", "Nc6", "Bb5", "a6"} {
		m, err := ToMove(cur, s)
		if err != nil {
			t.Fatalf("ToMove(%q): %v", s, err)
		}
		moves = append(moves, m)
		cur = cur.DoMove(m, true)
	}

	data, err := EncodeMoves(start, moves)
	if err != nil {
		t.Fatalf("EncodeMoves: %v", err)
	}
	decoded, err := DecodeMoves(start, data, len(moves))
	if err != nil {
		t.Fatalf("DecodeMoves: %v", err)
	}
	if len(decoded) != len(moves) {
		t.Fatalf("decoded %d moves, want %d", len(decoded), len(moves))
	}
	for i, m := range moves {
		if decoded[i] != m {
			t.Errorf("move %d = %v, want %v", i, decoded[i], m)
		}
	}
}

func TestEncodeMovesRejectsIllegalMove(t *testing.T) {
	start := StartPosition()
	illegal := NewMove(SquareE2, SquareE5, KindNormal)
	if _, err := EncodeMoves(start, []Move{illegal}); err == nil {
		t.Errorf("expected an error encoding an illegal move")
	}
}

func TestDecodeMovesRejectsTruncatedData(t *testing.T) {
	if _, err := DecodeMoves(StartPosition(), nil, 3); err == nil {
		t.Errorf("expected an error decoding from empty data")
	}
}

func TestMoveIndexCodesAreUnambiguous(t *testing.T) {
	// A prefix code must not have any code be a prefix of another.
	for i, ci := range moveIndexCodes {
		for j, cj := range moveIndexCodes {
			if i == j || ci == "" || cj == "" {
				continue
			}
			if len(ci) < len(cj) && cj[:len(ci)] == ci {
				t.Fatalf("code %q (index %d) is a prefix of %q (index %d)", ci, i, cj, j)
			}
		}
	}
}
