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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/evanphx/corvid/internal/types"
)

func TestKnightTargetsCornerAndCenter(t *testing.T) {
	assert.Len(t, KnightTargets[types.SqA1], 2)
	assert.Len(t, KnightTargets[types.SqD4], 8)
}

func TestKingTargetsCornerAndCenter(t *testing.T) {
	assert.Len(t, KingTargets[types.SqA1], 3)
	assert.Len(t, KingTargets[types.SqD4], 8)
}

func TestRayLimitCorner(t *testing.T) {
	for di, d := range types.Directions {
		switch d {
		case types.North, types.East, types.NorthEast:
			assert.Equal(t, 7, RayLimit[types.SqA1][di])
		default:
			assert.Equal(t, 0, RayLimit[types.SqA1][di])
		}
	}
}

func TestZobristKeysAreDistinct(t *testing.T) {
	assert.NotEqual(t, ZobPiece[types.WhitePawn][types.SqE4], ZobPiece[types.BlackPawn][types.SqE4])
	assert.NotEqual(t, Key(0), ZobSide)
}

func TestPsqTablesAreSymmetric(t *testing.T) {
	// A White knight on d4 and a Black knight on d5 occupy mirrored squares
	// and should value identically in the early table.
	assert.Equal(t, PsqEarly[types.WhiteKnight][types.SqD4], PsqEarly[types.BlackKnight][types.SqD5])
}
