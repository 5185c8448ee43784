// fen.go implements FEN parsing/emission, including Shredder-FEN castling
// for Chess960 and an intentional en-passant parse/emit asymmetry: a target
// square is only ever emitted when a pawn could legally capture there, but
// parsing tolerates and records whatever the input states. Field count is
// tolerant (4-6 fields), failures return errors rather than panicking, and
// castling rights are tracked per rook-source square rather than a 4-bit
// field, to support Chess960.

package chesscore

import (
	"strconv"
	"strings"
)

// FromFEN parses a FEN string (4 to 6 whitespace-separated fields; missing
// halfmove/fullmove default to 0 and 1) into a Position.
func FromFEN(fen string) (Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 || len(fields) > 6 {
		return Position{}, newError(ParseFormat, fen, "FEN must have 4 to 6 fields")
	}

	var p Position
	p.enPassantTarget = NoSquare

	if err := parsePlacement(&p, fields[0]); err != nil {
		return Position{}, err
	}

	switch fields[1] {
	case "w", "W":
		p.us = White
	case "b", "B":
		p.us = Black
	default:
		return Position{}, newError(ParseContent, fields[1], "active color must be w or b")
	}

	if err := parseCastling(&p, fields[2]); err != nil {
		return Position{}, err
	}

	if fields[3] != "-" {
		sq, err := SquareFromString(fields[3])
		if err != nil {
			return Position{}, err
		}
		if sq.Rank() != 2 && sq.Rank() != 5 {
			return Position{}, newError(ParseContent, fields[3], "en-passant square must be on rank 3 or 6")
		}
		p.enPassantTarget = sq
	}

	halfmove, fullmove := 0, 1
	if len(fields) >= 5 {
		v, err := strconv.Atoi(fields[4])
		if err != nil {
			return Position{}, newError(ParseFormat, fields[4], "halfmove clock must be an integer")
		}
		halfmove = v
	}
	if len(fields) == 6 {
		v, err := strconv.Atoi(fields[5])
		if err != nil {
			return Position{}, newError(ParseFormat, fields[5], "fullmove number must be an integer")
		}
		fullmove = v
	}
	p.halfmoveClock = halfmove
	active := 0
	if p.us == Black {
		active = 1
	}
	p.halfmovesPlayed = (fullmove-1)*2 + active

	if kingCount(p, White) != 1 || kingCount(p, Black) != 1 {
		log.Warningf("FEN %q: expected exactly one king per color", fen)
	}

	p.zobristKey, p.pawnKey = calculateZobristKeys(p)
	return p, nil
}

func kingCount(p Position, us Color) int {
	return p.ColoredPieceBB(us, King).Popcount()
}

func parsePlacement(p *Position, field string) error {
	rank, file := 7, 0
	for i := 0; i < len(field); i++ {
		c := field[i]
		switch {
		case c == '/':
			if file != 8 {
				return newError(ParseFormat, field, "rank separator in the wrong place")
			}
			rank--
			file = 0
		case c >= '1' && c <= '8':
			file += int(c - '0')
		case c == '0':
			// Tolerated non-standard empty marker; contributes no squares.
		default:
			cp, ok := pieceFromLetter(c)
			if !ok {
				return newError(ParseContent, field, "unknown piece letter in placement field")
			}
			if rank < 0 || file > 7 {
				return newError(ParseFormat, field, "piece placement overruns the board")
			}
			sq := RankFile(rank, file)
			p.pieces[cp.Piece] = p.pieces[cp.Piece].Set(sq)
			p.colors[cp.Color] = p.colors[cp.Color].Set(sq)
			file++
		}
	}
	return nil
}

func parseCastling(p *Position, field string) error {
	p.rookSource[White][Queenside] = NoSquare
	p.rookSource[White][Kingside] = NoSquare
	p.rookSource[Black][Queenside] = NoSquare
	p.rookSource[Black][Kingside] = NoSquare
	if field == "-" {
		return nil
	}
	for i := 0; i < len(field); i++ {
		c := field[i]
		us := White
		l := c
		if c >= 'a' && c <= 'z' {
			us = Black
		} else {
			l = c + ('a' - 'A')
		}
		kingSq := p.KingSquare(us)
		switch l {
		case 'k':
			p.rookSource[us][Kingside] = outermostRook(*p, us, kingSq, true)
		case 'q':
			p.rookSource[us][Queenside] = outermostRook(*p, us, kingSq, false)
		default:
			if l < 'a' || l > 'h' {
				return newError(ParseContent, field, "invalid castling character")
			}
			rookSq := RankFile(homeRank(us), int(l-'a'))
			side := Queenside
			if rookSq > kingSq {
				side = Kingside
			}
			p.rookSource[us][side] = rookSq
		}
	}
	return nil
}

// outermostRook implements the legacy K/Q/k/q meaning: the rook furthest
// from the king on the requested side of the home rank.
func outermostRook(p Position, us Color, kingSq Square, kingside bool) Square {
	rank := homeRank(us)
	rooks := p.ColoredPieceBB(us, Rook) & RankMask(RankFile(rank, 0))
	best := NoSquare
	for bb := rooks; bb != 0; {
		sq := Pop(&bb)
		if kingside && sq > kingSq {
			if best == NoSquare || sq > best {
				best = sq
			}
		} else if !kingside && sq < kingSq {
			if best == NoSquare || sq < best {
				best = sq
			}
		}
	}
	return best
}

// ToFEN emits p as a FEN string. alwaysShowEnPassant forces the en-passant
// field to the stored square even when no legal capture exists now;
// otherwise the field is "-" unless a legal en-passant capture exists in p.
func (p Position) ToFEN(alwaysShowEnPassant bool) string {
	var b strings.Builder
	b.Grow(72)
	b.WriteString(serializePlacement(p))
	b.WriteByte(' ')
	b.WriteString(p.us.String())
	b.WriteByte(' ')
	b.WriteString(p.castlingField())
	b.WriteByte(' ')
	b.WriteString(p.enPassantField(alwaysShowEnPassant))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(p.halfmoveClock))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(p.FullmoveNumber()))
	return b.String()
}

func serializePlacement(p Position) string {
	var b strings.Builder
	b.Grow(72)
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			cp := p.ColoredPieceAt(RankFile(rank, file))
			if cp.Piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteByte('0' + byte(empty))
				empty = 0
			}
			b.WriteByte(cp.Symbol())
		}
		if empty > 0 {
			b.WriteByte('0' + byte(empty))
		}
		if rank != 0 {
			b.WriteByte('/')
		}
	}
	return b.String()
}

func (p Position) castlingField() string {
	if p.rookSource[White][Queenside] == NoSquare && p.rookSource[White][Kingside] == NoSquare &&
		p.rookSource[Black][Queenside] == NoSquare && p.rookSource[Black][Kingside] == NoSquare {
		return "-"
	}
	shredder := p.IsChess960()
	var b strings.Builder
	writeSide := func(us Color, side CastlingSide, classicalLetter byte) {
		sq := p.rookSource[us][side]
		if sq == NoSquare {
			return
		}
		var c byte
		if shredder {
			c = byte('a' + sq.File())
		} else {
			c = classicalLetter
		}
		if us == White {
			b.WriteByte(c - ('a' - 'A'))
		} else {
			b.WriteByte(c)
		}
	}
	writeSide(White, Kingside, 'k')
	writeSide(White, Queenside, 'q')
	writeSide(Black, Kingside, 'k')
	writeSide(Black, Queenside, 'q')
	return b.String()
}

func (p Position) enPassantField(always bool) string {
	if p.enPassantTarget == NoSquare {
		return "-"
	}
	if always || p.hasLegalEnPassantCapture() {
		return p.enPassantTarget.String()
	}
	return "-"
}

func (p Position) hasLegalEnPassantCapture() bool {
	for _, m := range GenerateLegal(p).Slice() {
		if m.Kind() == KindEnPassant {
			return true
		}
	}
	return false
}
