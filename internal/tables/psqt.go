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

package tables

import "github.com/evanphx/corvid/internal/types"

// PsqEarly[piece][square] and PsqEnd[piece][square] are the tapered
// piece-square tables, each entry the piece's material value plus its
// placement bonus, that the evaluator blends by Position.MsWeight (spec.md
// §4.A/§4.D): eval = (w*early + (128-w)*end) / 128.
var (
	PsqEarly [types.PieceLength][types.SqLength]types.Value
	PsqEnd   [types.PieceLength][types.SqLength]types.Value
)

// White tables are written rank 8 down to rank 1, matching how they read
// on a printed board; index 63-sq flips them onto the SqA1=0 mailbox
// orientation. Black reuses the same tables unflipped, since a square
// good for a White piece near its own back rank is good for a Black
// piece near rank 8 symmetrically.
var (
	pawnEarly = [64]types.Value{
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 5, 5, 5, 5, 5, 5, 0,
		5, 5, 10, 30, 30, 10, 5, 5,
		0, 0, 0, 30, 30, 0, 0, 0,
		5, -5, -10, 0, 0, -10, -5, 5,
		5, 10, 10, -30, -30, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
	}
	pawnEnd = [64]types.Value{
		0, 0, 0, 0, 0, 0, 0, 0,
		90, 90, 90, 90, 90, 90, 90, 90,
		40, 50, 50, 60, 60, 50, 50, 40,
		20, 30, 30, 40, 40, 30, 30, 20,
		10, 10, 20, 20, 20, 10, 10, 10,
		5, 10, 10, 10, 10, 10, 10, 5,
		5, 10, 10, 10, 10, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
	}
	knightEarly = [64]types.Value{
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-50, -25, -20, -30, -30, -20, -25, -50,
	}
	knightEnd = [64]types.Value{
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-50, -40, -20, -30, -30, -20, -40, -50,
	}
	bishopEarly = [64]types.Value{
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-20, -10, -40, -10, -10, -40, -10, -20,
	}
	bishopEnd = [64]types.Value{
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	}
	rookEarly = [64]types.Value{
		5, 5, 5, 5, 5, 5, 5, 5,
		10, 10, 10, 10, 10, 10, 10, 10,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		-15, -10, 15, 15, 15, 15, -10, -15,
	}
	rookEnd = [64]types.Value{
		5, 5, 5, 5, 5, 5, 5, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
	}
	queenEarly = [64]types.Value{
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-5, 0, 2, 2, 2, 2, 0, -5,
		-5, 0, 5, 5, 5, 5, 0, -5,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20,
	}
	queenEnd = [64]types.Value{
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-5, 0, 5, 5, 5, 5, 0, -5,
		-5, 0, 5, 5, 5, 5, 0, -5,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20,
	}
	kingEarly = [64]types.Value{
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-10, -20, -20, -30, -30, -30, -20, -10,
		0, 0, -20, -20, -20, -20, 0, 0,
		20, 50, 0, -20, -20, 0, 50, 20,
	}
	kingEnd = [64]types.Value{
		-50, -30, -30, -20, -20, -30, -30, -50,
		-30, -20, -10, 0, 0, -10, -20, -30,
		-30, -10, 20, 30, 30, 20, -10, -30,
		-30, -10, 30, 40, 40, 30, -10, -30,
		-30, -10, 30, 40, 40, 30, -10, -30,
		-30, -10, 20, 30, 30, 20, -10, -30,
		-30, -30, 0, 0, 0, 0, -30, -30,
		-50, -30, -30, -30, -30, -30, -30, -50,
	}
)

func init() {
	for sq := types.SqA1; sq <= types.SqH8; sq++ {
		flip := 63 - sq
		PsqEarly[types.WhitePawn][sq], PsqEnd[types.WhitePawn][sq] = pawnEarly[flip], pawnEnd[flip]
		PsqEarly[types.WhiteKnight][sq], PsqEnd[types.WhiteKnight][sq] = knightEarly[flip], knightEnd[flip]
		PsqEarly[types.WhiteBishop][sq], PsqEnd[types.WhiteBishop][sq] = bishopEarly[flip], bishopEnd[flip]
		PsqEarly[types.WhiteRook][sq], PsqEnd[types.WhiteRook][sq] = rookEarly[flip], rookEnd[flip]
		PsqEarly[types.WhiteQueen][sq], PsqEnd[types.WhiteQueen][sq] = queenEarly[flip], queenEnd[flip]
		PsqEarly[types.WhiteKing][sq], PsqEnd[types.WhiteKing][sq] = kingEarly[flip], kingEnd[flip]

		PsqEarly[types.BlackPawn][sq], PsqEnd[types.BlackPawn][sq] = pawnEarly[sq], pawnEnd[sq]
		PsqEarly[types.BlackKnight][sq], PsqEnd[types.BlackKnight][sq] = knightEarly[sq], knightEnd[sq]
		PsqEarly[types.BlackBishop][sq], PsqEnd[types.BlackBishop][sq] = bishopEarly[sq], bishopEnd[sq]
		PsqEarly[types.BlackRook][sq], PsqEnd[types.BlackRook][sq] = rookEarly[sq], rookEnd[sq]
		PsqEarly[types.BlackQueen][sq], PsqEnd[types.BlackQueen][sq] = queenEarly[sq], queenEnd[sq]
		PsqEarly[types.BlackKing][sq], PsqEnd[types.BlackKing][sq] = kingEarly[sq], kingEnd[sq]
	}
	// Fold each piece's material value into both tables, so the
	// accumulators carry material as well as placement.
	for pc := types.PieceNone; pc < types.PieceLength; pc++ {
		v := pc.TypeOf().Value()
		for sq := types.SqA1; sq <= types.SqH8; sq++ {
			PsqEarly[pc][sq] += v
			PsqEnd[pc][sq] += v
		}
	}
}
