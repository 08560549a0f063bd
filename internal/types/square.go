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

import (
	"fmt"

	"github.com/evanphx/corvid/internal/util"
)

// Square is a mailbox index 0..63, rank*8+file, SqA1 = 0, SqH8 = 63.
type Square int8

const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA8
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	SqNone Square = -1

	SqLength = 64
)

// Direction is a ray step in terms of mailbox index delta. The eight
// compass directions used by sliding pieces and the check/pin scanner.
type Direction int8

const (
	North     Direction = 8
	South     Direction = -8
	East      Direction = 1
	West      Direction = -1
	NorthEast Direction = 9
	SouthWest Direction = -9
	NorthWest Direction = 7
	SouthEast Direction = -7
)

// Directions lists the eight rays in a fixed order; used to index
// RAY_LIMIT and to iterate pin/check scans deterministically.
var Directions = [8]Direction{North, South, East, West, NorthEast, SouthWest, NorthWest, SouthEast}

// SquareOf builds a square from file (0..7) and rank (0..7).
func SquareOf(file, rank int) Square {
	return Square(rank*8 + file)
}

// FileOf returns the file 0..7 (a..h) of the square.
func (sq Square) FileOf() int {
	return int(sq) & 7
}

// RankOf returns the rank 0..7 (1..8) of the square.
func (sq Square) RankOf() int {
	return int(sq) >> 3
}

// IsValid reports whether sq is one of the 64 board squares.
func (sq Square) IsValid() bool {
	return sq >= SqA1 && sq <= SqH8
}

// To steps one square in the given direction without wrapping detection;
// callers are expected to have validated the step stays on the board
// (e.g. via RAY_LIMIT) before calling this for sliding generation.
func (sq Square) To(d Direction) Square {
	return sq + Square(d)
}

// Distance returns the Chebyshev distance between two squares, used for
// pawn double-push detection.
func Distance(a, b Square) int {
	df := util.Abs(a.FileOf() - b.FileOf())
	dr := util.Abs(a.RankOf() - b.RankOf())
	return util.Max(df, dr)
}

// String returns algebraic notation, e.g. "e4", or "-" for SqNone.
func (sq Square) String() string {
	if sq == SqNone {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+sq.FileOf(), '1'+sq.RankOf())
}

// SquareFromString parses algebraic notation ("e4") into a Square.
// Returns SqNone, false on malformed input.
func SquareFromString(s string) (Square, bool) {
	if s == "-" {
		return SqNone, true
	}
	if len(s) != 2 {
		return SqNone, false
	}
	file := s[0]
	rank := s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return SqNone, false
	}
	return SquareOf(int(file-'a'), int(rank-'1')), true
}
