// position.go defines Position, a value-semantics chessboard state: every
// mutator takes a value receiver and returns a new Position rather than
// mutating in place, so no Position is ever altered after it has been
// observed. Castling rights are tracked as a rookSource[color][side] array
// instead of a 4-bit field, so Chess960 rook squares are representable.

package chesscore

import "github.com/corvidchess/chesscore/clog"

var log = clog.Get("chesscore")

// Position is an immutable chessboard snapshot. Treat every field as
// read-only; construct a changed Position via DoMove/DoNullMove or the FEN
// parser rather than mutating a Position in place.
type Position struct {
	pieces          [PieceArraySize]Bitboard // union over colors
	colors          [2]Bitboard
	enPassantTarget Square
	rookSource      [2][2]Square // [color][side], NoSquare if lost
	us              Color
	halfmovesPlayed int
	halfmoveClock   int
	zobristKey      uint64
	pawnKey         uint64
}

// StartPosition returns the classical chess starting position.
func StartPosition() Position {
	p, err := FromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err != nil {
		panic("chesscore: classical start FEN failed to parse: " + err.Error())
	}
	return p
}

// PieceAt returns the piece occupying sq, or NoPiece if it's empty.
func (p Position) PieceAt(sq Square) Piece {
	bb := sq.Bitboard()
	for piece := Pawn; piece <= King; piece++ {
		if p.pieces[piece]&bb != 0 {
			return piece
		}
	}
	return NoPiece
}

// ColoredPieceAt returns the ColoredPiece occupying sq, or NoColoredPiece.
func (p Position) ColoredPieceAt(sq Square) ColoredPiece {
	piece := p.PieceAt(sq)
	if piece == NoPiece {
		return NoColoredPiece
	}
	us := White
	if p.colors[Black].Has(sq) {
		us = Black
	}
	return NewColoredPiece(us, piece)
}

// PieceBB returns the union-of-colors bitboard for piece.
func (p Position) PieceBB(piece Piece) Bitboard { return p.pieces[piece] }

// ColorBB returns the bitboard of every square occupied by us.
func (p Position) ColorBB(us Color) Bitboard { return p.colors[us] }

// ColoredPieceBB returns the bitboard of piece owned by us.
func (p Position) ColoredPieceBB(us Color, piece Piece) Bitboard {
	return p.pieces[piece] & p.colors[us]
}

// Occupancy returns every occupied square.
func (p Position) Occupancy() Bitboard { return p.colors[White] | p.colors[Black] }

// SideToMove returns the color to move.
func (p Position) SideToMove() Color { return p.us }

// EnPassantTarget returns the stored en-passant capture-destination square,
// or NoSquare.
func (p Position) EnPassantTarget() Square { return p.enPassantTarget }

// HalfmoveClock returns the number of halfmoves since the last pawn move or
// capture.
func (p Position) HalfmoveClock() int { return p.halfmoveClock }

// HalfmovesPlayed returns the total number of halfmoves played from the
// classical start (or the FEN's declared starting ply).
func (p Position) HalfmovesPlayed() int { return p.halfmovesPlayed }

// FullmoveNumber derives the conventional 1-based fullmove counter.
func (p Position) FullmoveNumber() int { return p.halfmovesPlayed/2 + 1 }

// ZobristKey returns the position's full Zobrist key.
func (p Position) ZobristKey() uint64 { return p.zobristKey }

// PawnKey returns the position's pawn-only Zobrist key.
func (p Position) PawnKey() uint64 { return p.pawnKey }

// RookSource returns the home-rank rook square backing a castling right, or
// NoSquare if that right has been lost.
func (p Position) RookSource(us Color, side CastlingSide) Square { return p.rookSource[us][side] }

// KingSquare returns the square of us's king.
func (p Position) KingSquare(us Color) Square {
	return (p.pieces[King] & p.colors[us]).AsSquare()
}

// IsChess960 reports whether p requires Shredder-FEN castling notation: any
// king is off the classical e-file with rights, or any rookSource is
// neither lost nor on the classical a/h file.
func (p Position) IsChess960() bool {
	for _, us := range [2]Color{White, Black} {
		for _, side := range [2]CastlingSide{Queenside, Kingside} {
			src := p.rookSource[us][side]
			if src == NoSquare {
				continue
			}
			classical := RankFile(homeRank(us), 0)
			if side == Kingside {
				classical = RankFile(homeRank(us), 7)
			}
			if src != classical {
				return true
			}
			if p.KingSquare(us) != RankFile(homeRank(us), 4) {
				return true
			}
		}
	}
	return false
}

// attacksFrom returns the squares a piece of kind `piece` standing on sq
// attacks, given the current occupancy. Pawns need a color, since their
// attack set isn't symmetric; use PawnAttacks directly for those.
func (p Position) attacksFrom(piece Piece, sq Square) Bitboard {
	return AttacksFrom(piece, sq, p.Occupancy())
}

// attackers returns every square holding an attackerColor piece that
// attacks target, found via the backward-ray trick: ask "which squares can
// reach target as shape X", then intersect with where X actually sits.
func (p Position) attackers(attackerColor Color, target Square) Bitboard {
	occ := p.Occupancy()
	var result Bitboard
	result |= KnightAttacks(target) & p.ColoredPieceBB(attackerColor, Knight)
	result |= KingAttacks(target) & p.ColoredPieceBB(attackerColor, King)
	result |= BishopAttacks(target, occ) & (p.ColoredPieceBB(attackerColor, Bishop) | p.ColoredPieceBB(attackerColor, Queen))
	result |= RookAttacks(target, occ) & (p.ColoredPieceBB(attackerColor, Rook) | p.ColoredPieceBB(attackerColor, Queen))
	// Pawn attackers: a pawn attacks target the same way target's color
	// would capture from target, so query with the defender's color.
	result |= PawnAttacks(attackerColor.Opposite(), target) & p.ColoredPieceBB(attackerColor, Pawn)
	return result
}

// IsAttacked reports whether any opposite-colored piece attacks target.
func (p Position) IsAttacked(us Color, target Square) bool {
	return p.attackers(us.Opposite(), target) != 0
}

// InCheck reports whether us's king is currently attacked.
func (p Position) InCheck(us Color) bool {
	return p.IsAttacked(us, p.KingSquare(us))
}

func (p *Position) place(us Color, piece Piece, sq Square) {
	bb := sq.Bitboard()
	p.pieces[piece] |= bb
	p.colors[us] |= bb
	k := pieceSquareKeys[us][piece][sq]
	p.zobristKey ^= k
	if piece == Pawn {
		p.pawnKey ^= k
	}
}

func (p *Position) remove(us Color, piece Piece, sq Square) {
	bb := sq.Bitboard()
	p.pieces[piece] &^= bb
	p.colors[us] &^= bb
	k := pieceSquareKeys[us][piece][sq]
	p.zobristKey ^= k
	if piece == Pawn {
		p.pawnKey ^= k
	}
}

func (p *Position) dropCastlingRight(us Color, side CastlingSide) {
	if p.rookSource[us][side] == NoSquare {
		return
	}
	p.zobristKey ^= rookSourceKeys[p.rookSource[us][side]]
	p.rookSource[us][side] = NoSquare
}

// DoMove returns the Position resulting from playing m against p. Precondition:
// p.IsPseudoLegal(m) holds (or m == NoMove and allowNullMove is true, in
// which case DoNullMove is used instead). Violating the precondition is a
// programming error and panics.
func (p Position) DoMove(m Move, allowNullMove bool) Position {
	if m == NoMove {
		if allowNullMove {
			return p.DoNullMove()
		}
		panic("chesscore: DoMove called with NoMove and allowNullMove=false")
	}
	if !p.IsPseudoLegal(m) {
		panic("chesscore: DoMove called with a move that is not pseudo-legal: " + m.String())
	}

	next := p
	us := p.us
	enemy := us.Opposite()
	source, target, kind := m.Source(), m.Target(), m.Kind()
	moved := p.PieceAt(source)

	// Step 1: clear old en-passant, compute the new one.
	if next.enPassantTarget != NoSquare {
		next.zobristKey ^= enPassantKeys[next.enPassantTarget.File()]
		next.enPassantTarget = NoSquare
	}
	if moved == Pawn {
		var doublePushTarget Square
		isDouble := false
		if us == White && source.Rank() == 1 && target.Rank() == 3 {
			doublePushTarget, isDouble = source.Up(us), true
		} else if us == Black && source.Rank() == 6 && target.Rank() == 4 {
			doublePushTarget, isDouble = source.Up(us), true
		}
		if isDouble {
			next.enPassantTarget = doublePushTarget
			next.zobristKey ^= enPassantKeys[doublePushTarget.File()]
		}
	}

	// Step 2: castling-right bookkeeping.
	if moved == King {
		next.dropCastlingRight(us, Queenside)
		next.dropCastlingRight(us, Kingside)
	}
	for _, side := range [2]CastlingSide{Queenside, Kingside} {
		if next.rookSource[us][side] == source {
			next.dropCastlingRight(us, side)
		}
		if next.rookSource[enemy][side] == target {
			next.dropCastlingRight(enemy, side)
		}
	}

	switch {
	case kind == KindEnPassant:
		capturedSq := target.Down(us)
		next.remove(enemy, Pawn, capturedSq)
		next.remove(us, Pawn, source)
		next.place(us, Pawn, target)
	case kind.IsCapture():
		captured := next.PieceAt(target)
		next.remove(enemy, captured, target)
		fallthrough
	case kind == KindNormal:
		if kind.IsPromotion() {
			next.remove(us, Pawn, source)
			next.place(us, kind.PromotionPiece(), target)
		} else {
			next.remove(us, moved, source)
			next.place(us, moved, target)
		}
	case kind == KindCastle:
		side := Queenside
		if target.File() > source.File() {
			side = Kingside
		}
		rookSq := target
		next.remove(us, King, source)
		next.remove(us, Rook, rookSq)
		next.place(us, King, CastlingKingTarget(us, side))
		next.place(us, Rook, CastlingRookTarget(us, side))
	case kind.IsPromotion():
		// Quiet promotion. Promotion-captures never reach this case: they
		// fall through from the capture case into the KindNormal branch.
		next.remove(us, Pawn, source)
		next.place(us, kind.PromotionPiece(), target)
	}

	next.halfmovesPlayed++
	if moved == Pawn || kind.IsCapture() {
		next.halfmoveClock = 0
	} else {
		next.halfmoveClock++
	}

	next.us = enemy
	next.zobristKey ^= sideToMoveKey[White] ^ sideToMoveKey[Black]

	if !zobristKeysAreOk(next) {
		panic("chesscore: zobrist key mismatch after DoMove")
	}
	return next
}

// DoNullMove returns the Position after passing the turn: clears
// en-passant, flips side to move, and advances the clocks. Only meaningful
// where the notation layer allows "--"/"Z0"/"0000" during PGN/SAN replay.
func (p Position) DoNullMove() Position {
	next := p
	if next.enPassantTarget != NoSquare {
		next.zobristKey ^= enPassantKeys[next.enPassantTarget.File()]
		next.enPassantTarget = NoSquare
	}
	next.halfmovesPlayed++
	next.halfmoveClock++
	next.us = p.us.Opposite()
	next.zobristKey ^= sideToMoveKey[White] ^ sideToMoveKey[Black]
	return next
}

// MirrorVertically flips every bitboard top-to-bottom and, when swapColors
// is true, swaps the two colors' bitboards and rookSources so the position
// represents the same game from the opponent's perspective.
func (p Position) MirrorVertically(swapColors bool) Position {
	next := p
	for piece := Pawn; piece <= King; piece++ {
		next.pieces[piece] = next.pieces[piece].MirrorVertically()
	}
	whiteBB, blackBB := p.colors[White].MirrorVertically(), p.colors[Black].MirrorVertically()
	if swapColors {
		next.colors[White], next.colors[Black] = blackBB, whiteBB
		next.rookSource[White], next.rookSource[Black] = p.rookSource[Black], p.rookSource[White]
		for c := range next.rookSource {
			for s, sq := range next.rookSource[c] {
				if sq != NoSquare {
					next.rookSource[c][s] = sq.MirrorVertically()
				}
			}
		}
		next.us = p.us.Opposite()
		if next.us == White {
			next.halfmovesPlayed++
		} else {
			next.halfmovesPlayed--
		}
	} else {
		next.colors[White], next.colors[Black] = whiteBB, blackBB
		for c := range next.rookSource {
			for s, sq := range next.rookSource[c] {
				if sq != NoSquare {
					next.rookSource[c][s] = sq.MirrorVertically()
				}
			}
		}
	}
	if next.enPassantTarget != NoSquare {
		next.enPassantTarget = next.enPassantTarget.MirrorVertically()
	}
	next.zobristKey, next.pawnKey = calculateZobristKeys(next)
	return next
}

// MirrorHorizontally flips every bitboard left-to-right and swaps each
// color's queenside/kingside rookSources, preserving castling semantics.
func (p Position) MirrorHorizontally() Position {
	next := p
	for piece := Pawn; piece <= King; piece++ {
		next.pieces[piece] = next.pieces[piece].MirrorHorizontally()
	}
	next.colors[White] = p.colors[White].MirrorHorizontally()
	next.colors[Black] = p.colors[Black].MirrorHorizontally()
	for c := range next.rookSource {
		q, k := p.rookSource[c][Queenside], p.rookSource[c][Kingside]
		if q != NoSquare {
			q = q.MirrorHorizontally()
		}
		if k != NoSquare {
			k = k.MirrorHorizontally()
		}
		// After a horizontal flip the square that used to be closer to the
		// a-file is now closer to the h-file, so queenside/kingside swap.
		next.rookSource[c][Queenside], next.rookSource[c][Kingside] = k, q
	}
	if next.enPassantTarget != NoSquare {
		next.enPassantTarget = next.enPassantTarget.MirrorHorizontally()
	}
	next.zobristKey, next.pawnKey = calculateZobristKeys(next)
	return next
}

// RepetitionEqual reports whether p and other are repetition-equal: piece
// bitboards, color bitboards, rookSources, side-to-move, and
// enPassantTarget all match. Halfmove counters are ignored.
func (p Position) RepetitionEqual(other Position) bool {
	if p.us != other.us || p.enPassantTarget != other.enPassantTarget {
		return false
	}
	if p.colors != other.colors || p.pieces != other.pieces {
		return false
	}
	return p.rookSource == other.rookSource
}
