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

// CastlingSide distinguishes king-side from queen-side castling, matching
// the side index of Position.castle_lost_at[side][CastlingSide].
type CastlingSide int8

const (
	KingSide  CastlingSide = 0
	QueenSide CastlingSide = 1
)

// CastlingRights is a 4-bit mask (WhiteOO, WhiteOOO, BlackOO, BlackOOO)
// used to index the zobrist castling-rights key table; it is derived from
// Position.castleLostAt rather than stored redundantly.
type CastlingRights uint8

const (
	CastlingNone     CastlingRights = 0
	CastlingWhiteOO  CastlingRights = 1 << 0
	CastlingWhiteOOO CastlingRights = 1 << 1
	CastlingBlackOO  CastlingRights = 1 << 2
	CastlingBlackOOO CastlingRights = 1 << 3

	CastlingRightsLength = 16
)

// CastlingBit returns the mask bit for the given side/castling-side combination.
func CastlingBit(c Color, side CastlingSide) CastlingRights {
	switch {
	case c == White && side == KingSide:
		return CastlingWhiteOO
	case c == White && side == QueenSide:
		return CastlingWhiteOOO
	case c == Black && side == KingSide:
		return CastlingBlackOO
	default:
		return CastlingBlackOOO
	}
}

func (cr CastlingRights) Has(bit CastlingRights) bool {
	return cr&bit != 0
}

func (cr CastlingRights) String() string {
	if cr == CastlingNone {
		return "-"
	}
	s := ""
	if cr.Has(CastlingWhiteOO) {
		s += "K"
	}
	if cr.Has(CastlingWhiteOOO) {
		s += "Q"
	}
	if cr.Has(CastlingBlackOO) {
		s += "k"
	}
	if cr.Has(CastlingBlackOOO) {
		s += "q"
	}
	return s
}
