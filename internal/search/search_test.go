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

package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evanphx/corvid/internal/movegen"
	"github.com/evanphx/corvid/internal/moveslice"
	"github.com/evanphx/corvid/internal/position"
	"github.com/evanphx/corvid/internal/transpositiontable"
	"github.com/evanphx/corvid/internal/types"
)

func moveSliceFor(pos *position.Position) *moveslice.MoveSlice {
	ms := moveslice.NewMoveSlice(64)
	movegen.Generate(pos, ms, false)
	return ms
}

func TestBestMoveFromStartingPositionIsALegalOpeningMove(t *testing.T) {
	pos := position.NewPosition()
	s := NewSearch(transpositiontable.New())

	m := s.BestMove(pos, time.Now().Add(100*time.Millisecond))
	require.True(t, m.IsValid())
	assert.True(t, pos.Make(m))
}

func TestBestMoveFindsMateInOne(t *testing.T) {
	pos, err := position.NewPositionFen("7k/5Q2/5K2/8/8/8/8/8 w - - 0 1")
	require.NoError(t, err)
	s := NewSearch(transpositiontable.New())

	m := s.BestMove(pos, time.Now().Add(500*time.Millisecond))
	require.True(t, m.IsValid())
	assert.True(t, pos.Make(m))
	assert.True(t, pos.InCheckStm())

	ms := moveSliceFor(pos)
	legal := 0
	for i := 0; i < ms.Len(); i++ {
		if pos.Make(ms.At(i)) {
			legal++
			pos.Unmake(ms.At(i))
		}
	}
	assert.Equal(t, 0, legal, "mate leaves the side to move with no legal replies")
}

func TestBestMoveReturnsNoneWithoutLegalMoves(t *testing.T) {
	// Stalemate position from spec.md §8 scenario 4: Black to move has no
	// legal reply.
	pos, err := position.NewPositionFen("4k3/4P3/4K3/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)
	s := NewSearch(transpositiontable.New())

	m := s.BestMove(pos, time.Now().Add(50*time.Millisecond))
	assert.False(t, m.IsValid())
}

func TestValueToTTRoundTrips(t *testing.T) {
	mateIn3 := types.ValueCheckMate - 3
	stored := valueToTT(mateIn3, 5)
	assert.Equal(t, mateIn3, valueFromTT(stored, 5))
}

func TestValueToTTLeavesNonMateScoresUntouched(t *testing.T) {
	assert.Equal(t, types.Value(37), valueToTT(37, 9))
	assert.Equal(t, types.Value(37), valueFromTT(37, 9))
}

func TestOrderMovesBringsHintToFront(t *testing.T) {
	pos := position.NewPosition()
	ms := moveSliceFor(pos)
	defer ms.Clear()

	hint := ms.At(ms.Len() - 1)
	hinted := orderMoves(ms, 0, ms.Len(), hint)
	require.True(t, hinted)
	assert.True(t, ms.At(0).Equals(hint))
}

func TestOrderMovesReportsNoHintWhenAbsent(t *testing.T) {
	pos := position.NewPosition()
	ms := moveSliceFor(pos)
	defer ms.Clear()

	hinted := orderMoves(ms, 0, ms.Len(), types.MoveNone)
	assert.False(t, hinted)
}
