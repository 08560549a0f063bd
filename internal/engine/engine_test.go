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

package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadStartingPositionHas20LegalMoves(t *testing.T) {
	e := New()
	e.LoadStartingPosition()
	assert.Len(t, e.LegalMoves(), 20)
	assert.Equal(t, 1, e.SideToMove())
	assert.False(t, e.InCheck())
}

func TestLoadFenRejectsMalformedInput(t *testing.T) {
	e := New()
	err := e.LoadFen("not a fen")
	assert.Error(t, err)
}

func TestInsufficientMaterialIsGameOver(t *testing.T) {
	e := New()
	require.NoError(t, e.LoadFen("k7/8/K7/8/8/8/8/8 w - - 0 1"))
	result, over := e.GameOver()
	assert.True(t, over)
	assert.Equal(t, 0, result)
}

func TestStalemateIsGameOver(t *testing.T) {
	e := New()
	require.NoError(t, e.LoadFen("4k3/4P3/4K3/8/8/8/8/8 b - - 0 1"))
	result, over := e.GameOver()
	assert.True(t, over)
	assert.Equal(t, 0, result)
}

func TestFiftyMoveRuleFiresAtHalfmove100(t *testing.T) {
	e := New()
	require.NoError(t, e.LoadFen("8/8/8/8/k7/8/K7/8 w - - 99 50"))
	legal := e.LegalMoves()
	require.NotEmpty(t, legal)
	// K vs K is already game over by material, so InputMove would refuse;
	// make the move on the position directly to reach halfmove 100.
	require.True(t, e.pos.Make(legal[0]))
	assert.True(t, e.pos.IsDraw50())

	result, over := e.GameOver()
	assert.True(t, over)
	assert.Equal(t, 0, result)
}

func TestInputMoveSequenceReproducesExpectedFen(t *testing.T) {
	e := New()
	e.LoadStartingPosition()

	for _, uci := range []string{"e2e4", "e7e5", "g1f3", "b8c6", "f1b5"} {
		require.NoError(t, e.InputMoveUci(uci))
	}

	assert.Equal(t, "r1bqkbnr/pppp1ppp/2n5/1B2p3/4P3/5N2/PPPP1PPP/RNBQK2R b KQkq - 3 3", e.Fen())
}

func TestInputMoveRejectsIllegalMove(t *testing.T) {
	e := New()
	e.LoadStartingPosition()
	err := e.InputMoveUci("e2e5")
	require.Error(t, err)
	_, ok := err.(*IllegalMoveError)
	assert.True(t, ok)
}

func TestBestMoveRefusesTerminalPosition(t *testing.T) {
	e := New()
	require.NoError(t, e.LoadFen("4k3/4P3/4K3/8/8/8/8/8 b - - 0 1"))
	_, err := e.BestMove(50 * time.Millisecond)
	assert.Error(t, err)
}

func TestBestMoveFromStartReturnsAPlayableMove(t *testing.T) {
	e := New()
	e.LoadStartingPosition()
	m, err := e.BestMove(100 * time.Millisecond)
	require.NoError(t, err)
	assert.NoError(t, e.InputMove(m))
}
