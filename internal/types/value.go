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

// Value is a centipawn evaluation or search score.
type Value int32

const (
	// ValueZero is a neutral/draw score.
	ValueZero Value = 0

	// ValueDraw is returned for draw positions (material, 50-move,
	// repetition uses Contempt instead, see config.Settings.Search.Contempt).
	ValueDraw Value = 0

	// ValueInfinite is used as the +-infinity search window bound.
	ValueInfinite Value = 32000

	// ValueNA marks "no value" / sentinel, distinct from any real score.
	ValueNA Value = -32001

	// MaxDepth is the hard iterative-deepening depth cap (spec.md §4.F).
	MaxDepth = 32

	// ValueCheckMate is the mate score at ply 0; mates further from the
	// root are reported as ValueCheckMate - ply so shorter mates sort
	// higher.
	ValueCheckMate Value = 30000

	// ValueCheckMateThreshold marks the boundary above which a value is
	// considered a provable mate score (spec.md's "MAX_EVAL - MAX_DEPTH").
	ValueCheckMateThreshold = ValueCheckMate - MaxDepth
)

// IsCheckMateValue reports whether v encodes a forced mate.
func (v Value) IsCheckMateValue() bool {
	return v >= ValueCheckMateThreshold || v <= -ValueCheckMateThreshold
}

// IsValid reports whether v is a usable (non-sentinel) score.
func (v Value) IsValid() bool {
	return v != ValueNA
}
