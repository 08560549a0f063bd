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

import (
	"math/rand"

	"github.com/evanphx/corvid/internal/types"
)

// Key is a zobrist hash value.
type Key uint64

// ZobPiece[piece][square] XORs in or out a piece standing on a square.
var ZobPiece [types.PieceLength][types.SqLength]Key

// ZobCastling[rights] holds one key per single castling right, at the
// index types.CastlingBit gives it (1, 2, 4, 8); each held right is
// XORed in separately.
var ZobCastling [types.CastlingRightsLength]Key

// ZobEpFile[file] XORs in the en passant file, 0..7.
var ZobEpFile [8]Key

// ZobSide XORs in whenever it is Black to move.
var ZobSide Key

func init() {
	// Fixed seed: zobrist keys must be stable across runs within a single
	// build so a transposition table entry written by one search is valid
	// to read back by another.
	r := rand.New(rand.NewSource(1070372))
	for pc := types.PieceNone; pc < types.PieceLength; pc++ {
		for sq := types.SqA1; sq <= types.SqH8; sq++ {
			ZobPiece[pc][sq] = Key(r.Uint64())
		}
	}
	for cr := 0; cr < types.CastlingRightsLength; cr++ {
		ZobCastling[cr] = Key(r.Uint64())
	}
	for f := 0; f < 8; f++ {
		ZobEpFile[f] = Key(r.Uint64())
	}
	ZobSide = Key(r.Uint64())
}
