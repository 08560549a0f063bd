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

package movegen

import (
	"github.com/evanphx/corvid/internal/moveslice"
	"github.com/evanphx/corvid/internal/position"
	"github.com/evanphx/corvid/internal/tables"
	"github.com/evanphx/corvid/internal/types"
)

func allowed(restrict *[64]bool, sq types.Square) bool {
	return restrict == nil || restrict[sq]
}

func appendWithLegal(ms *moveslice.MoveSlice, m types.Move, pinned bool) {
	if !pinned {
		m = m.WithLegal()
	}
	ms.PushBack(m)
}

var promoTypes = [4]types.PieceType{types.Queen, types.Rook, types.Bishop, types.Knight}

func generatePawnMoves(pos *position.Position, mover types.Color, sq types.Square, ms *moveslice.MoveSlice, restrict *[64]bool, capturesOnly bool, pinned bool) {
	piece := types.MakePiece(mover, types.Pawn)
	fwd := types.North
	startRank, promoRank := 1, 7
	if mover == types.Black {
		fwd = types.South
		startRank, promoRank = 6, 0
	}

	if one, ok := tables.Step(sq, fwd); ok && pos.PieceOn(one) == types.PieceNone {
		if allowed(restrict, one) {
			emitPawnTarget(ms, sq, one, piece, types.PieceNone, promoRank, capturesOnly, pinned)
		}
		if sq.RankOf() == startRank {
			if two, ok2 := tables.Step(one, fwd); ok2 && pos.PieceOn(two) == types.PieceNone {
				if !capturesOnly && allowed(restrict, two) {
					appendWithLegal(ms, types.NewMove(sq, two, piece, types.PieceNone, types.PtNone), pinned)
				}
			}
		}
	}

	var capDirs [2]types.Direction
	if mover == types.White {
		capDirs = [2]types.Direction{types.NorthWest, types.NorthEast}
	} else {
		capDirs = [2]types.Direction{types.SouthWest, types.SouthEast}
	}
	for _, d := range capDirs {
		t, ok := tables.Step(sq, d)
		if !ok {
			continue
		}
		target := pos.PieceOn(t)
		if target == types.PieceNone || target.ColorOf() == mover {
			continue
		}
		if !allowed(restrict, t) {
			continue
		}
		emitPawnTarget(ms, sq, t, piece, target, promoRank, false, pinned)
	}
}

func emitPawnTarget(ms *moveslice.MoveSlice, from, to types.Square, piece, captured types.Piece, promoRank int, capturesOnly bool, pinned bool) {
	if to.RankOf() == promoRank {
		for _, pt := range promoTypes {
			appendWithLegal(ms, types.NewMove(from, to, piece, captured, pt), pinned)
		}
		return
	}
	if capturesOnly && captured == types.PieceNone {
		return
	}
	appendWithLegal(ms, types.NewMove(from, to, piece, captured, types.PtNone), pinned)
}

func generateEnPassant(pos *position.Position, mover types.Color, ms *moveslice.MoveSlice) {
	ep := pos.EpSquare()
	if ep == types.SqNone {
		return
	}
	piece := types.MakePiece(mover, types.Pawn)
	var fromDirs [2]types.Direction
	if mover == types.White {
		fromDirs = [2]types.Direction{types.SouthWest, types.SouthEast}
	} else {
		fromDirs = [2]types.Direction{types.NorthWest, types.NorthEast}
	}
	for _, d := range fromDirs {
		from, ok := tables.Step(ep, d)
		if !ok || pos.PieceOn(from) != piece {
			continue
		}
		capSq := types.SquareOf(ep.FileOf(), from.RankOf())
		ms.PushBack(types.NewEnPassantMove(from, ep, piece, pos.PieceOn(capSq)))
	}
}

func generateKnightMoves(pos *position.Position, sq types.Square, ms *moveslice.MoveSlice, restrict *[64]bool, capturesOnly bool, pinned bool) {
	piece := pos.PieceOn(sq)
	mover := piece.ColorOf()
	for _, t := range tables.KnightTargets[sq] {
		target := pos.PieceOn(t)
		if target != types.PieceNone && target.ColorOf() == mover {
			continue
		}
		if capturesOnly && target == types.PieceNone {
			continue
		}
		if !allowed(restrict, t) {
			continue
		}
		appendWithLegal(ms, types.NewMove(sq, t, piece, target, types.PtNone), pinned)
	}
}

func generateSliderMoves(pos *position.Position, sq types.Square, ms *moveslice.MoveSlice, dirIdx []int, restrict *[64]bool, capturesOnly bool, pinned bool) {
	piece := pos.PieceOn(sq)
	mover := piece.ColorOf()
	for _, di := range dirIdx {
		limit := tables.RayLimit[sq][di]
		if limit == 0 {
			continue
		}
		d := types.Directions[di]
		cur := sq
		for step := 0; step < limit; step++ {
			cur = cur.To(d)
			target := pos.PieceOn(cur)
			if target == types.PieceNone {
				if !capturesOnly && allowed(restrict, cur) {
					appendWithLegal(ms, types.NewMove(sq, cur, piece, types.PieceNone, types.PtNone), pinned)
				}
				continue
			}
			if target.ColorOf() != mover && allowed(restrict, cur) {
				appendWithLegal(ms, types.NewMove(sq, cur, piece, target, types.PtNone), pinned)
			}
			break
		}
	}
}

func generateKingMoves(pos *position.Position, mover types.Color, ms *moveslice.MoveSlice, info *threatInfo, capturesOnly bool) {
	sq := pos.KingSquare(mover)
	piece := types.MakePiece(mover, types.King)
	for _, t := range tables.KingTargets[sq] {
		target := pos.PieceOn(t)
		if target != types.PieceNone && target.ColorOf() == mover {
			continue
		}
		if info.checks >= 2 && info.blockOrCapture[t] {
			continue
		}
		if info.checks == 0 && capturesOnly && target == types.PieceNone {
			continue
		}
		ms.PushBack(types.NewMove(sq, t, piece, target, types.PtNone))
	}
}

func generateCastling(pos *position.Position, mover types.Color, ms *moveslice.MoveSlice) {
	kingSq := types.SqE1
	if mover == types.Black {
		kingSq = types.SqE8
	}
	king := types.MakePiece(mover, types.King)
	enemy := mover.Flip()

	if pos.HasCastlingRight(mover, types.KingSide) {
		f := kingSq.To(types.East)
		g := f.To(types.East)
		if pos.PieceOn(f) == types.PieceNone && pos.PieceOn(g) == types.PieceNone &&
			!pos.IsAttacked(kingSq, enemy) && !pos.IsAttacked(f, enemy) && !pos.IsAttacked(g, enemy) {
			ms.PushBack(types.NewCastleMove(kingSq, g, king))
		}
	}
	if pos.HasCastlingRight(mover, types.QueenSide) {
		d := kingSq.To(types.West)
		c := d.To(types.West)
		b := c.To(types.West)
		if pos.PieceOn(d) == types.PieceNone && pos.PieceOn(c) == types.PieceNone && pos.PieceOn(b) == types.PieceNone &&
			!pos.IsAttacked(kingSq, enemy) && !pos.IsAttacked(d, enemy) && !pos.IsAttacked(c, enemy) {
			ms.PushBack(types.NewCastleMove(kingSq, c, king))
		}
	}
}
