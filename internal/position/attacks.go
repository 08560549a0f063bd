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

// rookDirs/bishopDirs index into types.Directions ({N,S,E,W,NE,SW,NW,SE}).
var rookDirs = [4]int{0, 1, 2, 3}
var bishopDirs = [4]int{4, 5, 6, 7}

// IsAttacked reports whether sq is attacked by any piece of side by, by
// scanning pawn attack squares, knight targets, and the eight rays from
// sq until a blocker is found (spec.md §4.B in_check / §4.C castling
// legality share this scan).
func (p *Position) IsAttacked(sq types.Square, by types.Color) bool {
	// Pawns: an attacking pawn of `by` stands one diagonal step "behind"
	// sq from by's forward direction.
	if by == types.White {
		if s, ok := tables.Step(sq, types.SouthWest); ok && p.board[s] == types.WhitePawn {
			return true
		}
		if s, ok := tables.Step(sq, types.SouthEast); ok && p.board[s] == types.WhitePawn {
			return true
		}
	} else {
		if s, ok := tables.Step(sq, types.NorthWest); ok && p.board[s] == types.BlackPawn {
			return true
		}
		if s, ok := tables.Step(sq, types.NorthEast); ok && p.board[s] == types.BlackPawn {
			return true
		}
	}

	knight := types.MakePiece(by, types.Knight)
	for _, t := range tables.KnightTargets[sq] {
		if p.board[t] == knight {
			return true
		}
	}

	king := types.MakePiece(by, types.King)
	for _, t := range tables.KingTargets[sq] {
		if p.board[t] == king {
			return true
		}
	}

	bishop := types.MakePiece(by, types.Bishop)
	rook := types.MakePiece(by, types.Rook)
	queen := types.MakePiece(by, types.Queen)

	for di := 0; di < 8; di++ {
		limit := tables.RayLimit[sq][di]
		if limit == 0 {
			continue
		}
		d := types.Directions[di]
		cur := sq
		for step := 0; step < limit; step++ {
			cur = cur.To(d)
			pc := p.board[cur]
			if pc == types.PieceNone {
				continue
			}
			if pc.ColorOf() == by {
				isRookDir := di == rookDirs[0] || di == rookDirs[1] || di == rookDirs[2] || di == rookDirs[3]
				if isRookDir && (pc == rook || pc == queen) {
					return true
				}
				if !isRookDir && (pc == bishop || pc == queen) {
					return true
				}
			}
			break
		}
	}

	return false
}

// InCheck reports whether side's king is currently attacked.
func (p *Position) InCheck(side types.Color) bool {
	return p.IsAttacked(p.kingSquare[side], side.Flip())
}

// InCheckStm reports whether the side to move is in check.
func (p *Position) InCheckStm() bool {
	return p.InCheck(p.stm())
}
