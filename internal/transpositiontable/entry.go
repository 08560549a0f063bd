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

package transpositiontable

import (
	"github.com/evanphx/corvid/internal/tables"
	"github.com/evanphx/corvid/internal/types"
)

// Entry is one 2^20-table slot, bit-packed per spec.md §4.E:
//
//	word: bits  0-23  key fragment (upper 24 bits of the 64-bit zobrist hash)
//	      bits 24-28  depth (5 bits, 0..31)
//	      bits 29-31  bound kind (3 bits, types.BoundKind)
//	eval: 16-bit evaluation, clamped to int16 range
//	move: 16-bit best-move hint, 6-bit start + 6-bit target (no promotion)
//
// A zero word (key fragment 0, depth 0, BoundNone) is indistinguishable
// from an empty slot; Lookup treats it as a miss, matching the spec's "a
// slot is a hit iff its packed word is non-zero and the key fragment
// matches" rule.
type Entry struct {
	word uint32
	eval int16
	move uint16
}

const (
	keyFragBits  = 24
	keyFragMask  = 1<<keyFragBits - 1
	depthShift   = keyFragBits
	depthMask    = 0x1f
	boundShift   = keyFragBits + 5
	boundMask    = 0x7
	moveSquareSz = 6
	moveSqMask   = 1<<moveSquareSz - 1
)

func keyFragment(hash tables.Key) uint32 {
	return uint32(hash>>40) & keyFragMask
}

func packWord(frag uint32, depth int, kind types.BoundKind) uint32 {
	return frag | uint32(depth&depthMask)<<depthShift | uint32(kind&boundMask)<<boundShift
}

func (e Entry) keyFrag() uint32       { return e.word & keyFragMask }
func (e Entry) Depth() int            { return int(e.word >> depthShift & depthMask) }
func (e Entry) Kind() types.BoundKind { return types.BoundKind(e.word >> boundShift & boundMask) }
func (e Entry) Eval() types.Value     { return types.Value(e.eval) }

// Move decodes the 12-bit start/target hint into a quiet Move. Callers
// that need a promotion type must re-derive it themselves (spec.md §4.E:
// "promotion type not stored; if the best move was a promotion, the
// search re-derives it").
func (e Entry) Move() types.Move {
	if e.move == 0 {
		return types.MoveNone
	}
	from := types.Square(e.move >> moveSquareSz & moveSqMask)
	to := types.Square(e.move & moveSqMask)
	return types.NewMove(from, to, types.PieceNone, types.PieceNone, types.PtNone)
}

func packMove(m types.Move) uint16 {
	if !m.IsValid() {
		return 0
	}
	return uint16(m.From())<<moveSquareSz | uint16(m.To())
}
