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
	"github.com/evanphx/corvid/internal/tables"
	"github.com/evanphx/corvid/internal/types"
)

// putPiece places pc on sq (must currently be empty) and folds in every
// piece of incremental state: counts, king square, zobrist, psqt
// accumulators, stage weight.
func (p *Position) putPiece(pc types.Piece, sq types.Square) {
	p.board[sq] = pc
	p.pieceCount[pc]++
	p.sideTotal[pc.ColorOf()]++
	if pc.TypeOf() == types.King {
		p.kingSquare[pc.ColorOf()] = sq
	}
	p.zobrist ^= tables.ZobPiece[pc][sq]
	p.evalEarly += psqSigned(pc, sq, tables.PsqEarly)
	p.evalEnd += psqSigned(pc, sq, tables.PsqEnd)
	p.msWeight += pc.TypeOf().StageWeight()
}

// removePiece clears sq (must hold pc) and reverses every effect putPiece
// would have had.
func (p *Position) removePiece(pc types.Piece, sq types.Square) {
	p.board[sq] = types.PieceNone
	p.pieceCount[pc]--
	p.sideTotal[pc.ColorOf()]--
	p.zobrist ^= tables.ZobPiece[pc][sq]
	p.evalEarly -= psqSigned(pc, sq, tables.PsqEarly)
	p.evalEnd -= psqSigned(pc, sq, tables.PsqEnd)
	p.msWeight -= pc.TypeOf().StageWeight()
}

// movePiece relocates pc from one empty-afterwards square to an
// empty-beforehand square without touching counts or stage weight.
func (p *Position) movePiece(pc types.Piece, from, to types.Square) {
	p.removePiece(pc, from)
	p.putPiece(pc, to)
}

// psqSigned returns the piece-square value from the first mover's
// perspective: positive contributions for White, negated for Black, so
// evalEarly/evalEnd can be summed directly (spec.md §4.D).
func psqSigned(pc types.Piece, sq types.Square, table [types.PieceLength][types.SqLength]types.Value) types.Value {
	v := table[pc][sq]
	if pc.ColorOf() == types.Black {
		return -v
	}
	return v
}

func (p *Position) toggleSideKey() {
	p.zobrist ^= tables.ZobSide
}

func (p *Position) toggleCastleKey(c types.Color, side types.CastlingSide) {
	p.zobrist ^= tables.ZobCastling[types.CastlingBit(c, side)]
}

func (p *Position) toggleEpKey(sq types.Square) {
	if sq == types.SqNone {
		return
	}
	p.zobrist ^= tables.ZobEpFile[sq.FileOf()]
}

// loseCastlingRight records the right as lost at the given ply and XORs
// out its zobrist contribution, unless it was already lost.
func (p *Position) loseCastlingRight(c types.Color, side types.CastlingSide, atPly int) {
	if p.castleLostAt[c][side] != sentinelNotLost {
		return
	}
	p.castleLostAt[c][side] = atPly
	p.toggleCastleKey(c, side)
}

// clearBoard resets every field to the empty-position zero value.
func (p *Position) clearBoard() {
	*p = Position{}
	p.kingSquare = [2]types.Square{types.SqNone, types.SqNone}
	p.epSquare = types.SqNone
	p.castleLostAt = [2][2]int{
		{sentinelNotLost, sentinelNotLost},
		{sentinelNotLost, sentinelNotLost},
	}
}
