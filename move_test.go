package chesscore

import "testing"

func TestMovePacking(t *testing.T) {
	m := NewMove(SquareE2, SquareE4, KindNormal)
	if m.Source() != SquareE2 {
		t.Errorf("Source() = %v, want e2", m.Source())
	}
	if m.Target() != SquareE4 {
		t.Errorf("Target() = %v, want e4", m.Target())
	}
	if m.Kind() != KindNormal {
		t.Errorf("Kind() = %v, want normal", m.Kind())
	}
	if m.String() != "e2e4" {
		t.Errorf("String() = %q, want e2e4", m.String())
	}
}

func TestMovePromotionString(t *testing.T) {
	m := NewMove(SquareE7, SquareE8, KindPromoQueen)
	if got := m.String(); got != "e7e8q" {
		t.Errorf("String() = %q, want e7e8q", got)
	}
}

func TestMoveKindPredicates(t *testing.T) {
	if !KindPromoQueenCapture.IsPromotion() {
		t.Errorf("promo-queen-capture should be a promotion")
	}
	if !KindPromoQueenCapture.IsCapture() {
		t.Errorf("promo-queen-capture should be a capture")
	}
	if KindCastle.IsCapture() {
		t.Errorf("castle should not be a capture")
	}
	if KindNormal.IsPromotion() {
		t.Errorf("normal move should not be a promotion")
	}
}

func TestNoMoveIsNull(t *testing.T) {
	if !NoMove.IsNull() {
		t.Errorf("NoMove should be null")
	}
	if NoMove.String() != "0000" {
		t.Errorf("NoMove.String() = %q, want 0000", NoMove.String())
	}
}

func TestIsPseudoLegalRejectsForeignSource(t *testing.T) {
	p := StartPosition()
	// Black pawn move attempted while white is to move.
	m := NewMove(SquareE7, SquareE5, KindNormal)
	if p.IsPseudoLegal(m) {
		t.Errorf("moving black's pawn on white's turn should not be pseudo-legal")
	}
}

func TestIsPseudoLegalAcceptsOpeningPush(t *testing.T) {
	p := StartPosition()
	m := NewMove(SquareE2, SquareE4, KindNormal)
	if !p.IsPseudoLegal(m) {
		t.Errorf("e2e4 should be pseudo-legal from the start position")
	}
}
