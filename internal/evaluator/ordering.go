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

package evaluator

import (
	"github.com/evanphx/corvid/internal/position"
	"github.com/evanphx/corvid/internal/tables"
	"github.com/evanphx/corvid/internal/types"
)

// signedPsq returns table[pc][sq] from White's perspective, negated for
// Black, mirroring how Position accumulates eval_early/eval_end.
func signedPsq(table *[types.PieceLength][types.SqLength]types.Value, pc types.Piece, sq types.Square) types.Value {
	v := table[pc][sq]
	if pc.ColorOf() == types.Black {
		return -v
	}
	return v
}

// OrderingScore computes the heuristic move-ordering score spec.md §4.F
// prescribes: the tapered piece-square delta a make of m would produce,
// from the side-to-move's perspective, without mutating pos. It mirrors
// the bookkeeping Position.Make applies piece by piece (moving piece,
// capture removal, en-passant's off-square victim, the rook's leg of a
// castle) but only sums deltas instead of touching board state.
func (e *Evaluator) OrderingScore(pos *position.Position, m types.Move) types.Value {
	mover := m.MovingPiece().ColorOf()
	from, to := m.From(), m.To()
	piece := m.MovingPiece()
	captured := m.CapturedPiece()
	promo := m.PromotionType()

	final := piece
	if promo != types.PtNone {
		final = types.MakePiece(mover, promo)
	}

	deltaEarly := signedPsq(&tables.PsqEarly, final, to) - signedPsq(&tables.PsqEarly, piece, from)
	deltaEnd := signedPsq(&tables.PsqEnd, final, to) - signedPsq(&tables.PsqEnd, piece, from)

	switch {
	case m.IsEnPassant():
		capSq := types.SquareOf(to.FileOf(), from.RankOf())
		deltaEarly -= signedPsq(&tables.PsqEarly, captured, capSq)
		deltaEnd -= signedPsq(&tables.PsqEnd, captured, capSq)
	case captured != types.PieceNone:
		deltaEarly -= signedPsq(&tables.PsqEarly, captured, to)
		deltaEnd -= signedPsq(&tables.PsqEnd, captured, to)
	}

	if m.IsCastle() {
		rookFrom, rookTo := position.CastleRookSquares(mover, to)
		rook := types.MakePiece(mover, types.Rook)
		deltaEarly += signedPsq(&tables.PsqEarly, rook, rookTo) - signedPsq(&tables.PsqEarly, rook, rookFrom)
		deltaEnd += signedPsq(&tables.PsqEnd, rook, rookTo) - signedPsq(&tables.PsqEnd, rook, rookFrom)
	}

	w := pos.MsWeight()
	blended := types.Value((int(w)*int(deltaEarly) + int(128-w)*int(deltaEnd)) / 128)
	return blended * types.Value(pos.SideToMove())
}
