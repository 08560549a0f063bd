/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package types

// Move bit layout within enc (low to high):
//
//	bits  0- 5  from square       (6 bits, 0..63)
//	bits  6-11  to square          (6 bits, 0..63)
//	bits 12-15  moving piece       (4 bits, Piece code)
//	bits 16-19  captured piece     (4 bits, Piece code, PieceNone if none;
//	                                 for en passant this is the captured
//	                                 pawn's code, not PieceNone, even though
//	                                 it does not sit on the "to" square)
//	bits 20-22  promotion type     (3 bits, PieceType, PtNone if none)
//	bit     23  en passant flag
//	bit     24  castle flag
//	bit     25  legal flag (set by the move generator when it can tell the
//	            move does not leave the mover's own king in check)
const (
	moveFromShift   = 0
	moveToShift     = 6
	movePieceShift  = 12
	moveCaptShift   = 16
	movePromoShift  = 20
	moveEpBit       = 1 << 23
	moveCastleBit   = 1 << 24
	moveLegalBit    = 1 << 25
	moveSquareMask  = 0x3f
	movePieceMask   = 0xf
	movePromoMask   = 0x7
)

// Move is a packed move encoding plus a separate ordering score. The score
// is never part of move identity: two Moves with equal enc and differing
// Score still compare equal via == on the enc-relevant fields through
// Equals, though Go's built-in == also compares Score (see Equals).
type Move struct {
	enc   uint32
	Score Value
}

// MoveNone is the zero move, never a legal move (from==to==a1).
var MoveNone = Move{}

// NewMove builds a quiet or capturing move.
func NewMove(from, to Square, piece, captured Piece, promo PieceType) Move {
	enc := uint32(from)<<moveFromShift |
		uint32(to)<<moveToShift |
		uint32(piece)<<movePieceShift |
		uint32(captured)<<moveCaptShift |
		uint32(promo)<<movePromoShift
	return Move{enc: enc}
}

// NewEnPassantMove builds an en passant capture; captured is the enemy
// pawn's piece code, which does not reside on the "to" square.
func NewEnPassantMove(from, to Square, piece, captured Piece) Move {
	m := NewMove(from, to, piece, captured, PtNone)
	m.enc |= moveEpBit
	return m
}

// NewCastleMove builds a castling move; from/to are the king's origin and
// destination squares (e1g1, e1c1, e8g8, e8c8).
func NewCastleMove(from, to Square, king Piece) Move {
	m := NewMove(from, to, king, PieceNone, PtNone)
	m.enc |= moveCastleBit
	return m
}

func (m Move) From() Square { return Square(m.enc >> moveFromShift & moveSquareMask) }
func (m Move) To() Square   { return Square(m.enc >> moveToShift & moveSquareMask) }

// MovingPiece is the piece code making the move.
func (m Move) MovingPiece() Piece { return Piece(m.enc >> movePieceShift & movePieceMask) }

// CapturedPiece is the piece code removed by the move, or PieceNone for a
// quiet move.
func (m Move) CapturedPiece() Piece { return Piece(m.enc >> moveCaptShift & movePieceMask) }

// PromotionType is the piece type a pawn promotes to, or PtNone.
func (m Move) PromotionType() PieceType { return PieceType(m.enc >> movePromoShift & movePromoMask) }

func (m Move) IsCapture() bool    { return m.CapturedPiece() != PieceNone }
func (m Move) IsPromotion() bool  { return m.PromotionType() != PtNone }
func (m Move) IsEnPassant() bool  { return m.enc&moveEpBit != 0 }
func (m Move) IsCastle() bool     { return m.enc&moveCastleBit != 0 }
func (m Move) IsLegal() bool      { return m.enc&moveLegalBit != 0 }

// WithLegal returns a copy of m with the legal flag set, used by the move
// generator once it has verified the move does not self-check.
func (m Move) WithLegal() Move {
	m.enc |= moveLegalBit
	return m
}

// IsValid reports whether m is anything other than the zero move.
func (m Move) IsValid() bool {
	return m != MoveNone
}

// Equals compares two moves ignoring the ordering Score.
func (m Move) Equals(other Move) bool {
	return m.enc == other.enc
}

// StringUci renders the move in long algebraic notation as used on the
// wire (spec.md §6): "e2e4", "e7e8q" for promotions.
func (m Move) StringUci() string {
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += m.PromotionType().String()
	}
	return s
}

func (m Move) String() string {
	return m.StringUci()
}
