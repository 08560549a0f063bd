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

package position

import (
	"github.com/evanphx/corvid/assert"
	"github.com/evanphx/corvid/internal/types"
)

// Make applies m optimistically, then verifies the mover's king is not
// left in check; on failure it reverts and returns false. Callers must
// not call Unmake after a false return (nothing to undo). Make/Unmake are
// exact inverses (spec.md §4.B, §8).
func (p *Position) Make(m types.Move) bool {
	mover := p.stm()
	from, to := m.From(), m.To()
	piece := m.MovingPiece()
	captured := m.CapturedPiece()
	promo := m.PromotionType()

	if assert.DEBUG {
		assert.Assert(m.IsValid(), "Position.Make: invalid move %s", m.StringUci())
		assert.Assert(p.board[from] == piece, "Position.Make: no %s on %s for move %s", piece.String(), from.String(), m.StringUci())
		assert.Assert(piece.ColorOf() == mover, "Position.Make: moving piece %s does not belong to side to move", piece.String())
		assert.Assert(captured.TypeOf() != types.King, "Position.Make: move %s captures a king", m.StringUci())
	}

	rec := undoRecord{
		move:          m,
		prevZobrist:   p.zobrist,
		prevEpSquare:  p.epSquare,
		prevHmcr:      p.hmcr,
		prevCastle:    p.castleLostAt,
		prevKingSq:    p.kingSquare,
		prevMsWeight:  p.msWeight,
		prevEvalEarly: p.evalEarly,
		prevEvalEnd:   p.evalEnd,
	}

	p.toggleEpKey(p.epSquare)
	p.epSquare = types.SqNone

	switch {
	case m.IsCastle():
		rookFrom, rookTo := CastleRookSquares(mover, to)
		if assert.DEBUG {
			assert.Assert(p.board[rookFrom] == types.MakePiece(mover, types.Rook), "Position.Make: castling %s but no rook on %s", m.StringUci(), rookFrom.String())
		}
		p.movePiece(piece, from, to)
		p.movePiece(types.MakePiece(mover, types.Rook), rookFrom, rookTo)
	case m.IsEnPassant():
		capSq := types.SquareOf(to.FileOf(), from.RankOf())
		p.removePiece(captured, capSq)
		p.movePiece(piece, from, to)
	default:
		if captured != types.PieceNone {
			p.removePiece(captured, to)
		}
		p.removePiece(piece, from)
		final := piece
		if promo != types.PtNone {
			final = types.MakePiece(mover, promo)
		}
		p.putPiece(final, to)
	}

	p.updateCastlingRights(mover, piece, from, captured, to)

	if piece.TypeOf() == types.Pawn || captured != types.PieceNone {
		p.hmcr = 0
	} else {
		p.hmcr++
	}

	if piece.TypeOf() == types.Pawn && types.Distance(from, to) == 2 {
		p.epSquare = types.SquareOf(from.FileOf(), (from.RankOf()+to.RankOf())/2)
		p.toggleEpKey(p.epSquare)
	}

	p.ply++
	p.toggleSideKey()

	rec.zobrist = p.zobrist
	rec.epSquare = p.epSquare
	rec.hmcr = p.hmcr
	p.hist = append(p.hist, rec)

	if p.InCheck(mover) {
		p.Unmake(m)
		return false
	}
	return true
}

// updateCastlingRights applies the "losing" transitions of spec.md §4.B
// step 6: king moves, rook moves from home, and captures landing on the
// opponent's home rook square.
func (p *Position) updateCastlingRights(mover types.Color, piece types.Piece, from types.Square, captured types.Piece, to types.Square) {
	atPly := p.ply
	if piece.TypeOf() == types.King {
		p.loseCastlingRight(mover, types.KingSide, atPly)
		p.loseCastlingRight(mover, types.QueenSide, atPly)
	}
	if piece.TypeOf() == types.Rook {
		if from == homeRookSquare(mover, types.KingSide) {
			p.loseCastlingRight(mover, types.KingSide, atPly)
		} else if from == homeRookSquare(mover, types.QueenSide) {
			p.loseCastlingRight(mover, types.QueenSide, atPly)
		}
	}
	if captured.TypeOf() == types.Rook {
		opp := mover.Flip()
		if to == homeRookSquare(opp, types.KingSide) {
			p.loseCastlingRight(opp, types.KingSide, atPly)
		} else if to == homeRookSquare(opp, types.QueenSide) {
			p.loseCastlingRight(opp, types.QueenSide, atPly)
		}
	}
}

func homeRookSquare(c types.Color, side types.CastlingSide) types.Square {
	sq := types.SqH1
	if side == types.QueenSide {
		sq = types.SqA1
	}
	if c == types.Black {
		sq += 56
	}
	return sq
}

// CastleRookSquares returns the rook's from/to squares for the castling
// move whose king lands on kingTo. Exported so move-ordering heuristics
// can price the rook's displacement without duplicating this geometry.
func CastleRookSquares(c types.Color, kingTo types.Square) (from, to types.Square) {
	if kingTo.FileOf() == types.SqG1.FileOf() {
		from, to = types.SqH1, types.SqF1
	} else {
		from, to = types.SqA1, types.SqD1
	}
	if c == types.Black {
		from += 56
		to += 56
	}
	return
}

// Unmake reverses the last successful Make(m). m must be the move that
// was just made; the caller is responsible for the LIFO discipline (no
// Position-level guard is kept, matching the teacher's single-history-
// stack convention).
func (p *Position) Unmake(m types.Move) {
	if assert.DEBUG {
		assert.Assert(len(p.hist) > 0, "Position.Unmake: no history to undo for move %s", m.StringUci())
	}
	rec := p.hist[len(p.hist)-1]
	p.hist = p.hist[:len(p.hist)-1]

	p.ply--
	mover := p.stm()

	from, to := m.From(), m.To()
	piece := m.MovingPiece()
	captured := m.CapturedPiece()
	promo := m.PromotionType()

	switch {
	case m.IsCastle():
		rookFrom, rookTo := CastleRookSquares(mover, to)
		p.movePiece(types.MakePiece(mover, types.Rook), rookTo, rookFrom)
		p.movePiece(piece, to, from)
	case m.IsEnPassant():
		capSq := types.SquareOf(to.FileOf(), from.RankOf())
		p.movePiece(piece, to, from)
		p.putPiece(captured, capSq)
	default:
		final := piece
		if promo != types.PtNone {
			final = types.MakePiece(mover, promo)
		}
		p.removePiece(final, to)
		p.putPiece(piece, from)
		if captured != types.PieceNone {
			p.putPiece(captured, to)
		}
	}

	p.zobrist = rec.prevZobrist
	p.epSquare = rec.prevEpSquare
	p.hmcr = rec.prevHmcr
	p.castleLostAt = rec.prevCastle
	p.kingSquare = rec.prevKingSq
	p.msWeight = rec.prevMsWeight
	p.evalEarly = rec.prevEvalEarly
	p.evalEnd = rec.prevEvalEnd
}
