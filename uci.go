// uci.go implements UCI long algebraic move notation: four or five
// characters (source, target, optional promotion letter), with classical
// castling translated to its king-to-c/g target and Chess960 castling left
// as king-to-rook-square. Parsing matches against the legal move list, the
// same approach san.go uses for SAN disambiguation.

package chesscore

import "strings"

// ToUCI renders m in long algebraic notation. Classical castling (p is not
// Chess960) emits the king's classical c/g destination instead of the raw
// rook-square encoding; Chess960 castling emits the raw king-source to
// rook-square word.
func (p Position) ToUCI(m Move) string {
	if m.IsNull() {
		return "0000"
	}
	source := m.Source()
	target := m.Target()
	if m.Kind() == KindCastle && !p.IsChess960() {
		us := p.us
		side := Queenside
		if target.File() > source.File() {
			side = Kingside
		}
		target = CastlingKingTarget(us, side)
	}
	var b strings.Builder
	b.Grow(5)
	b.WriteString(source.String())
	b.WriteString(target.String())
	if promo := m.Kind().PromotionPiece(); promo != NoPiece {
		b.WriteByte(promo.String()[0])
	}
	return b.String()
}

// ParseUCI matches s against p's legal moves and returns the matching Move.
// Returns an IllegalMove error if no legal move matches.
func ParseUCI(p Position, s string) (Move, error) {
	if s == "0000" || s == "--" {
		return NoMove, nil
	}
	if len(s) != 4 && len(s) != 5 {
		return NoMove, newError(ParseFormat, s, "UCI move must be 4 or 5 characters")
	}
	source, err := SquareFromString(s[0:2])
	if err != nil {
		return NoMove, err
	}
	target, err := SquareFromString(s[2:4])
	if err != nil {
		return NoMove, err
	}
	promo := NoPiece
	if len(s) == 5 {
		cp, ok := pieceFromLetter(s[4])
		if !ok {
			return NoMove, newError(ParseContent, s, "invalid promotion letter")
		}
		promo = cp.Piece
	}

	classicalCastleTarget := NoSquare
	if source == p.KingSquare(p.us) && !p.IsChess960() {
		for _, side := range [2]CastlingSide{Queenside, Kingside} {
			if p.rookSource[p.us][side] != NoSquare && CastlingKingTarget(p.us, side) == target {
				classicalCastleTarget = p.rookSource[p.us][side]
			}
		}
	}

	for _, m := range GenerateLegal(p).Slice() {
		if m.Source() != source {
			continue
		}
		wantTarget := target
		if m.Kind() == KindCastle && classicalCastleTarget != NoSquare {
			wantTarget = classicalCastleTarget
		}
		if m.Target() != wantTarget {
			continue
		}
		if m.Kind().PromotionPiece() != promo {
			continue
		}
		return m, nil
	}
	return NoMove, newError(IllegalMove, s, "no legal move matches this UCI string")
}
