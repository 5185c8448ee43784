// move.go implements the packed 16-bit Move word: source (6 bits), target
// (6 bits), kind (4 bits), with a NoMove sentinel and combined
// promotion-capture kinds folded into the single kind tag rather than a
// separate promotion-piece field.

package chesscore

// MoveKind tags what doMove must do with source/target beyond the bare
// relocation: a capture, a castle (target is the rook's square), an
// en-passant capture, or one of eight promotion flavours.
type MoveKind uint8

const (
	KindNone MoveKind = iota
	KindNormal
	KindCapture
	KindCastle
	KindEnPassant
	KindPromoKnight
	KindPromoBishop
	KindPromoRook
	KindPromoQueen
	KindPromoKnightCapture
	KindPromoBishopCapture
	KindPromoRookCapture
	KindPromoQueenCapture
)

// IsPromotion reports whether k is one of the eight promotion kinds.
func (k MoveKind) IsPromotion() bool { return k >= KindPromoKnight && k <= KindPromoQueenCapture }

// IsCapture reports whether k removes an enemy piece (including en-passant
// and promotion-captures, but not castling).
func (k MoveKind) IsCapture() bool {
	switch k {
	case KindCapture, KindEnPassant, KindPromoKnightCapture, KindPromoBishopCapture, KindPromoRookCapture, KindPromoQueenCapture:
		return true
	default:
		return false
	}
}

// PromotionPiece returns the piece a promotion kind produces, or NoPiece.
func (k MoveKind) PromotionPiece() Piece {
	switch k {
	case KindPromoKnight, KindPromoKnightCapture:
		return Knight
	case KindPromoBishop, KindPromoBishopCapture:
		return Bishop
	case KindPromoRook, KindPromoRookCapture:
		return Rook
	case KindPromoQueen, KindPromoQueenCapture:
		return Queen
	default:
		return NoPiece
	}
}

func (k MoveKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindNormal:
		return "normal"
	case KindCapture:
		return "capture"
	case KindCastle:
		return "castle"
	case KindEnPassant:
		return "en-passant"
	case KindPromoKnight:
		return "promo-knight"
	case KindPromoBishop:
		return "promo-bishop"
	case KindPromoRook:
		return "promo-rook"
	case KindPromoQueen:
		return "promo-queen"
	case KindPromoKnightCapture:
		return "promo-knight-capture"
	case KindPromoBishopCapture:
		return "promo-bishop-capture"
	case KindPromoRookCapture:
		return "promo-rook-capture"
	case KindPromoQueenCapture:
		return "promo-queen-capture"
	default:
		return "invalid"
	}
}

// Move packs source (bits 0-5), target (bits 6-11), kind (bits 12-15) into a
// single 16-bit word. Move equality is bit equality.
type Move uint16

// NoMove is the null-move sentinel: kind none, source and target both a1.
// It is only a legal argument to DoMove when allowNullMove is set.
const NoMove Move = 0

// NewMove packs a non-promotion move.
func NewMove(source, target Square, kind MoveKind) Move {
	return Move(uint16(source) | uint16(target)<<6 | uint16(kind)<<12)
}

// Source returns the move's source square.
func (m Move) Source() Square { return Square(m & 0x3F) }

// Target returns the move's target square. For castling this is the
// rook's square, the Chess960 king-takes-own-rook convention.
func (m Move) Target() Square { return Square((m >> 6) & 0x3F) }

// Kind returns the move's kind tag.
func (m Move) Kind() MoveKind { return MoveKind((m >> 12) & 0xF) }

// IsNull reports whether m is the null-move sentinel.
func (m Move) IsNull() bool { return m.Kind() == KindNone }

func (m Move) String() string {
	if m.IsNull() {
		return "0000"
	}
	s := m.Source().String() + m.Target().String()
	if p := m.Kind().PromotionPiece(); p != NoPiece {
		s += p.String()
	}
	return s
}

// IsPseudoLegal is a total function over arbitrary 16-bit words that
// returns true exactly when DoMove would be safe to call and the move is
// rule-permissible except possibly leaving the mover's own king in check.
// It reuses the same castling path/attack masks and pawn double-push rank
// checks the move generator builds moves from, but as a standalone checker
// over untrusted input rather than a generator that only emits moves it
// already knows are well-formed.
func (p Position) IsPseudoLegal(m Move) bool {
	kind := m.Kind()
	if kind == KindNone || kind > KindPromoQueenCapture {
		return false
	}
	source, target := m.Source(), m.Target()
	us := p.us
	enemy := us.Opposite()

	moved := p.PieceAt(source)
	if moved == NoPiece || !p.colors[us].Has(source) {
		return false
	}

	if kind == KindCastle {
		return p.isPseudoLegalCastle(m)
	}

	if target == source {
		return false
	}
	if p.colors[us].Has(target) {
		return false
	}

	occupied := p.colors[enemy].Has(target)
	switch kind {
	case KindEnPassant:
		if moved != Pawn || target != p.enPassantTarget || occupied {
			return false
		}
	case KindCapture, KindPromoKnightCapture, KindPromoBishopCapture, KindPromoRookCapture, KindPromoQueenCapture:
		if !occupied {
			return false
		}
	default:
		if occupied {
			return false
		}
	}

	if kind.IsPromotion() != (moved == Pawn && target.Rank() == promotionRank(us)) {
		return false
	}

	if moved == Pawn {
		return p.isPseudoLegalPawnMove(us, source, target, kind)
	}

	if AttacksFrom(moved, source, p.Occupancy())&target.Bitboard() == 0 {
		return false
	}
	return true
}

func promotionRank(us Color) int {
	if us == White {
		return 7
	}
	return 0
}

func (p Position) isPseudoLegalPawnMove(us Color, source, target Square, kind MoveKind) bool {
	df := target.File() - source.File()
	isDiagonal := df == 1 || df == -1
	isEnPassant := kind == KindEnPassant

	if isDiagonal {
		if kind != KindEnPassant && !kind.IsCapture() {
			return false
		}
		return PawnAttacks(us, source).Has(target)
	}
	if isEnPassant {
		return false
	}
	if target.File() != source.File() {
		return false
	}
	single := source.Up(us)
	if target == single {
		return !p.Occupancy().Has(target)
	}
	startRank := 1
	if us == Black {
		startRank = 6
	}
	if source.Rank() != startRank {
		return false
	}
	if target != single.Up(us) {
		return false
	}
	return !p.Occupancy().Has(single) && !p.Occupancy().Has(target)
}

func (p Position) isPseudoLegalCastle(m Move) bool {
	source, target := m.Source(), m.Target()
	us := p.us
	if source != p.KingSquare(us) {
		return false
	}
	var side CastlingSide
	found := false
	for _, s := range [2]CastlingSide{Queenside, Kingside} {
		if p.rookSource[us][s] == target {
			side, found = s, true
			break
		}
	}
	if !found {
		return false
	}
	kingTarget, rookTarget := CastlingKingTarget(us, side), CastlingRookTarget(us, side)
	blockMask := CastlingBlockMask(source, kingTarget, target, rookTarget)
	if blockMask&p.Occupancy() != 0 {
		return false
	}
	checkMask := CastlingCheckMask(source, kingTarget)
	for bb := checkMask; bb != 0; {
		if p.IsAttacked(us, Pop(&bb)) {
			return false
		}
	}
	return true
}
