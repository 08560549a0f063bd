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

// Package movegen produces pseudo-legal moves from a Position: a single
// ray/knight/pawn scan from the king classifies the position as
// not-in-check, single check or double check, and a "definitely legal"
// flag is set wherever that classification proves it without needing a
// trial make (spec.md §4.C).
package movegen

import (
	"github.com/evanphx/corvid/internal/moveslice"
	"github.com/evanphx/corvid/internal/position"
	"github.com/evanphx/corvid/internal/tables"
	"github.com/evanphx/corvid/internal/types"
)

var rookDirIdx = [4]int{0, 1, 2, 3}
var bishopDirIdx = [4]int{4, 5, 6, 7}

func isRookDir(di int) bool {
	return di == rookDirIdx[0] || di == rookDirIdx[1] || di == rookDirIdx[2] || di == rookDirIdx[3]
}

// threatInfo is the result of the single 8-ray-plus-knight-plus-pawn scan
// from the mover's king.
type threatInfo struct {
	checks         int
	blockOrCapture [64]bool
	pinned         [64]bool
}

func scanThreats(pos *position.Position, mover types.Color) threatInfo {
	var info threatInfo
	king := pos.KingSquare(mover)
	enemy := mover.Flip()

	for di := 0; di < 8; di++ {
		limit := tables.RayLimit[king][di]
		if limit == 0 {
			continue
		}
		d := types.Directions[di]
		rookLike := isRookDir(di)
		cur := king
		firstOwn := types.SqNone
		for step := 0; step < limit; step++ {
			cur = cur.To(d)
			pc := pos.PieceOn(cur)
			if pc == types.PieceNone {
				continue
			}
			if pc.ColorOf() == mover {
				if firstOwn == types.SqNone {
					firstOwn = cur
					continue
				}
				break
			}
			attacks := false
			if rookLike {
				attacks = pc.TypeOf() == types.Rook || pc.TypeOf() == types.Queen
			} else {
				attacks = pc.TypeOf() == types.Bishop || pc.TypeOf() == types.Queen
			}
			if !attacks {
				break
			}
			if firstOwn != types.SqNone {
				info.pinned[firstOwn] = true
			} else if info.checks < 2 {
				info.checks++
				c2 := king
				for s2 := 0; s2 <= step; s2++ {
					c2 = c2.To(d)
					info.blockOrCapture[c2] = true
				}
			}
			break
		}
	}

	knightPc := types.MakePiece(enemy, types.Knight)
	for _, t := range tables.KnightTargets[king] {
		if pos.PieceOn(t) == knightPc && info.checks < 2 {
			info.checks++
			info.blockOrCapture[t] = true
		}
	}

	pawnPc := types.MakePiece(enemy, types.Pawn)
	var pawnBackDirs [2]types.Direction
	if mover == types.White {
		pawnBackDirs = [2]types.Direction{types.SouthWest, types.SouthEast}
	} else {
		pawnBackDirs = [2]types.Direction{types.NorthWest, types.NorthEast}
	}
	for _, d := range pawnBackDirs {
		if s, ok := tables.Step(king, d); ok && pos.PieceOn(s) == pawnPc && info.checks < 2 {
			info.checks++
			info.blockOrCapture[s] = true
		}
	}

	return info
}

// Generate appends every pseudo-legal move in the current position to ms
// (capturesOnly restricts to captures/promotions unless the side to move
// is in check, in which case all check-escapes are emitted regardless of
// capture status). Returns whether the side to move is in check.
func Generate(pos *position.Position, ms *moveslice.MoveSlice, capturesOnly bool) bool {
	mover := pos.StmColor()
	info := scanThreats(pos, mover)

	if info.checks >= 2 {
		generateKingMoves(pos, mover, ms, &info, false)
		return true
	}

	generateEnPassant(pos, mover, ms)

	var restrict *[64]bool
	if info.checks == 1 {
		restrict = &info.blockOrCapture
	}

	generateKingMoves(pos, mover, ms, &info, capturesOnly && info.checks == 0)

	for sq := types.SqA1; sq <= types.SqH8; sq++ {
		pc := pos.PieceOn(sq)
		if pc == types.PieceNone || pc.ColorOf() != mover {
			continue
		}
		pinned := info.pinned[sq]
		switch pc.TypeOf() {
		case types.Pawn:
			generatePawnMoves(pos, mover, sq, ms, restrict, capturesOnly && info.checks == 0, pinned)
		case types.Knight:
			generateKnightMoves(pos, sq, ms, restrict, capturesOnly && info.checks == 0, pinned)
		case types.Bishop:
			generateSliderMoves(pos, sq, ms, bishopDirIdx[:], restrict, capturesOnly && info.checks == 0, pinned)
		case types.Rook:
			generateSliderMoves(pos, sq, ms, rookDirIdx[:], restrict, capturesOnly && info.checks == 0, pinned)
		case types.Queen:
			generateSliderMoves(pos, sq, ms, []int{0, 1, 2, 3, 4, 5, 6, 7}, restrict, capturesOnly && info.checks == 0, pinned)
		}
	}

	if info.checks == 0 && !capturesOnly {
		generateCastling(pos, mover, ms)
	}

	return info.checks > 0
}
