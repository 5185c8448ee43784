// movegen.go implements pseudo-legal generation by piece, the legal-move
// filter, and an exhaustive 16-bit-scan path kept as a correctness oracle
// to cross-check the piece-wise generator against. Castling generation is
// Chess960-aware via rookSource, DoMove returns a new Position value rather
// than mutating in place, and moves carry an explicit MoveKind tag instead
// of a separate move-type-plus-promotion-piece pair.

package chesscore

// MaxMoves bounds a single position's pseudo-legal move count, covering
// extreme Chess960 positions.
const MaxMoves = 320

// MoveList is a fixed-capacity move buffer; generators stop silently once
// full rather than growing, to stay allocation-free.
type MoveList struct {
	Moves [MaxMoves]Move
	Count int
}

func (l *MoveList) push(m Move) {
	if l.Count < MaxMoves {
		l.Moves[l.Count] = m
		l.Count++
	}
}

// Slice returns the populated prefix of l.Moves.
func (l MoveList) Slice() []Move { return l.Moves[:l.Count] }

// GeneratePseudoLegal fills and returns a MoveList of every pseudo-legal
// move in p for the side to move.
func GeneratePseudoLegal(p Position) MoveList {
	var l MoveList
	genPawnMoves(p, &l)
	for _, piece := range [4]Piece{Knight, Bishop, Rook, Queen} {
		genPieceMoves(p, piece, &l)
	}
	genKingMoves(p, &l)
	genCastling(p, &l)
	return l
}

// GenerateLegal filters GeneratePseudoLegal down to moves that do not leave
// the mover's own king in check.
func GenerateLegal(p Position) MoveList {
	pseudo := GeneratePseudoLegal(p)
	var l MoveList
	us := p.us
	for _, m := range pseudo.Slice() {
		if !p.DoMove(m, false).InCheck(us) {
			l.push(m)
		}
	}
	return l
}

// GenerateLegalExhaustive enumerates all 65536 possible 16-bit move words
// and keeps those that pass IsPseudoLegal and do not leave the king in
// check. Perft with either generator must agree exactly; this path exists
// purely to test that agreement, not for production use.
func GenerateLegalExhaustive(p Position) MoveList {
	var l MoveList
	us := p.us
	for w := 0; w < 1<<16; w++ {
		m := Move(w)
		if !p.IsPseudoLegal(m) {
			continue
		}
		if !p.DoMove(m, false).InCheck(us) {
			l.push(m)
		}
	}
	return l
}

func genPawnMoves(p Position, l *MoveList) {
	us := p.us
	enemy := us.Opposite()
	occ := p.Occupancy()
	enemies := p.colors[enemy]
	promoRank := promotionRank(us)
	pawns := p.ColoredPieceBB(us, Pawn)

	pushPromotions := func(source, target Square, capture bool) {
		if capture {
			l.push(NewMove(source, target, KindPromoKnightCapture))
			l.push(NewMove(source, target, KindPromoBishopCapture))
			l.push(NewMove(source, target, KindPromoRookCapture))
			l.push(NewMove(source, target, KindPromoQueenCapture))
		} else {
			l.push(NewMove(source, target, KindPromoKnight))
			l.push(NewMove(source, target, KindPromoBishop))
			l.push(NewMove(source, target, KindPromoRook))
			l.push(NewMove(source, target, KindPromoQueen))
		}
	}

	for bb := pawns; bb != 0; {
		source := Pop(&bb)
		single := source.Up(us)

		if !occ.Has(single) {
			if single.Rank() == promoRank {
				pushPromotions(source, single, false)
			} else {
				l.push(NewMove(source, single, KindNormal))
				startRank := 1
				if us == Black {
					startRank = 6
				}
				if source.Rank() == startRank {
					double := single.Up(us)
					if !occ.Has(double) {
						l.push(NewMove(source, double, KindNormal))
					}
				}
			}
		}

		for bb2 := PawnAttacks(us, source); bb2 != 0; {
			target := Pop(&bb2)
			switch {
			case enemies.Has(target):
				if target.Rank() == promoRank {
					pushPromotions(source, target, true)
				} else {
					l.push(NewMove(source, target, KindCapture))
				}
			case target == p.enPassantTarget:
				l.push(NewMove(source, target, KindEnPassant))
			}
		}
	}
}

func genPieceMoves(p Position, piece Piece, l *MoveList) {
	us := p.us
	occ := p.Occupancy()
	own := p.colors[us]
	enemies := p.colors[us.Opposite()]
	for bb := p.ColoredPieceBB(us, piece); bb != 0; {
		source := Pop(&bb)
		attacks := AttacksFrom(piece, source, occ) &^ own
		for bb2 := attacks & enemies; bb2 != 0; {
			l.push(NewMove(source, Pop(&bb2), KindCapture))
		}
		for bb2 := attacks &^ enemies; bb2 != 0; {
			l.push(NewMove(source, Pop(&bb2), KindNormal))
		}
	}
}

func genKingMoves(p Position, l *MoveList) {
	us := p.us
	own := p.colors[us]
	enemies := p.colors[us.Opposite()]
	source := p.KingSquare(us)
	attacks := KingAttacks(source) &^ own
	for bb := attacks & enemies; bb != 0; {
		l.push(NewMove(source, Pop(&bb), KindCapture))
	}
	for bb := attacks &^ enemies; bb != 0; {
		l.push(NewMove(source, Pop(&bb), KindNormal))
	}
}

func genCastling(p Position, l *MoveList) {
	us := p.us
	source := p.KingSquare(us)
	for _, side := range [2]CastlingSide{Queenside, Kingside} {
		rookSq := p.rookSource[us][side]
		if rookSq == NoSquare {
			continue
		}
		kingTarget, rookTarget := CastlingKingTarget(us, side), CastlingRookTarget(us, side)
		blockMask := CastlingBlockMask(source, kingTarget, rookSq, rookTarget)
		if blockMask&p.Occupancy() != 0 {
			continue
		}
		checkMask := CastlingCheckMask(source, kingTarget)
		attacked := false
		for bb := checkMask; bb != 0; {
			if p.IsAttacked(us, Pop(&bb)) {
				attacked = true
				break
			}
		}
		if attacked {
			continue
		}
		l.push(NewMove(source, rookSq, KindCastle))
	}
}
