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

// Package tables holds every lookup table the engine precomputes once at
// process start: knight/king jump targets, the per-square/per-direction
// ray-scan limits used by the move generator's pin and check detector,
// zobrist hash keys, and the tapered piece-square tables used by the
// evaluator. Nothing here depends on Position; it is pure data, computed
// once in init() and read many times.
package tables

import "github.com/evanphx/corvid/internal/types"

// KnightTargets[sq] lists the squares a knight on sq attacks.
var KnightTargets [64][]types.Square

// KingTargets[sq] lists the squares a king on sq attacks (not including
// castling, which the move generator handles separately).
var KingTargets [64][]types.Square

// RayLimit[sq][dir] is the number of steps a slider on sq can take in
// Directions[dir] before leaving the board, 0 if the first step already
// leaves it. The move generator and the pin/check scanner both stop
// walking a ray at this limit instead of checking IsValid() every step.
var RayLimit [64][8]int

var knightDeltas = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingDeltas = [8][2]int{
	{0, 1}, {1, 1}, {1, 0}, {1, -1},
	{0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
}

func init() {
	initJumpTargets()
	initRayLimit()
}

func initJumpTargets() {
	for sq := types.SqA1; sq <= types.SqH8; sq++ {
		f, r := sq.FileOf(), sq.RankOf()
		for _, d := range knightDeltas {
			nf, nr := f+d[0], r+d[1]
			if nf >= 0 && nf < 8 && nr >= 0 && nr < 8 {
				KnightTargets[sq] = append(KnightTargets[sq], types.SquareOf(nf, nr))
			}
		}
		for _, d := range kingDeltas {
			nf, nr := f+d[0], r+d[1]
			if nf >= 0 && nf < 8 && nr >= 0 && nr < 8 {
				KingTargets[sq] = append(KingTargets[sq], types.SquareOf(nf, nr))
			}
		}
	}
}

func initRayLimit() {
	for sq := types.SqA1; sq <= types.SqH8; sq++ {
		f, r := sq.FileOf(), sq.RankOf()
		for di, d := range types.Directions {
			df, dr := directionDelta(d)
			steps := 0
			nf, nr := f, r
			for {
				nf += df
				nr += dr
				if nf < 0 || nf > 7 || nr < 0 || nr > 7 {
					break
				}
				steps++
			}
			RayLimit[sq][di] = steps
		}
	}
}

// Step moves one square from sq in direction d, reporting false if doing so
// would wrap around a board edge (e.g. h-file stepping East).
func Step(sq types.Square, d types.Direction) (types.Square, bool) {
	f, r := sq.FileOf(), sq.RankOf()
	df, dr := directionDelta(d)
	nf, nr := f+df, r+dr
	if nf < 0 || nf > 7 || nr < 0 || nr > 7 {
		return types.SqNone, false
	}
	return types.SquareOf(nf, nr), true
}

func directionDelta(d types.Direction) (int, int) {
	switch d {
	case types.North:
		return 0, 1
	case types.South:
		return 0, -1
	case types.East:
		return 1, 0
	case types.West:
		return -1, 0
	case types.NorthEast:
		return 1, 1
	case types.SouthWest:
		return -1, -1
	case types.NorthWest:
		return -1, 1
	case types.SouthEast:
		return 1, -1
	default:
		return 0, 0
	}
}
