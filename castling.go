// castling.go implements Chess960-capable castling tables: fixed king/rook
// target squares per color/side, plus block-sensitive and check-sensitive
// square masks computed from whatever rookSource a position actually holds,
// generalizing beyond the classical a/h rook squares to an arbitrary
// home-rank rook square.

package chesscore

// CastlingSide distinguishes the two castling directions.
type CastlingSide uint8

const (
	Queenside CastlingSide = iota
	Kingside
)

func (s CastlingSide) String() string {
	if s == Kingside {
		return "kingside"
	}
	return "queenside"
}

// homeRank returns the back rank (0-based) for color us.
func homeRank(us Color) int {
	if us == White {
		return 0
	}
	return 7
}

// castlingKingTarget[color][side] is the classical king destination: c-file
// for queenside, g-file for kingside, always on the home rank.
var castlingKingTarget [2][2]Square

// castlingRookTarget[color][side] is the classical rook destination: d-file
// for queenside, f-file for kingside.
var castlingRookTarget [2][2]Square

func init() {
	for _, us := range [2]Color{White, Black} {
		r := homeRank(us)
		castlingKingTarget[us][Queenside] = RankFile(r, 2)
		castlingKingTarget[us][Kingside] = RankFile(r, 6)
		castlingRookTarget[us][Queenside] = RankFile(r, 3)
		castlingRookTarget[us][Kingside] = RankFile(r, 5)
	}
}

// CastlingKingTarget returns the king's destination square for a castle of
// the given color and side.
func CastlingKingTarget(us Color, side CastlingSide) Square { return castlingKingTarget[us][side] }

// CastlingRookTarget returns the rook's destination square for a castle of
// the given color and side.
func CastlingRookTarget(us Color, side CastlingSide) Square { return castlingRookTarget[us][side] }

// closedRankSpan returns every square on a's rank between a and b inclusive.
// a and b must share a rank.
func closedRankSpan(a, b Square) Bitboard {
	lo, hi := a.File(), b.File()
	if lo > hi {
		lo, hi = hi, lo
	}
	var mask Bitboard
	rank := a.Rank()
	for f := lo; f <= hi; f++ {
		mask = mask.Set(RankFile(rank, f))
	}
	return mask
}

// CastlingBlockMask returns the squares that must be empty (other than the
// castling king and rook themselves) for a castle with the given source and
// target squares to be pseudo-legal.
func CastlingBlockMask(kingSource, kingTarget, rookSource, rookTarget Square) Bitboard {
	mask := closedRankSpan(kingSource, kingTarget) | closedRankSpan(rookSource, rookTarget)
	return mask &^ (kingSource.Bitboard() | rookSource.Bitboard())
}

// CastlingCheckMask returns the squares the king must not be attacked on
// (including its source and target) for a castle to be pseudo-legal.
func CastlingCheckMask(kingSource, kingTarget Square) Bitboard {
	return closedRankSpan(kingSource, kingTarget)
}
