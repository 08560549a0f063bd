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

package movegen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evanphx/corvid/internal/movegen"
	"github.com/evanphx/corvid/internal/moveslice"
	"github.com/evanphx/corvid/internal/position"
)

// perft counts leaf nodes at depth using the explicit base+cursor move
// stack the search driver also uses, per spec.md §9's "view into the
// stack" design note: the callee appends from ms.Len() and the caller
// truncates back once it is done consuming them.
func perft(pos *position.Position, ms *moveslice.MoveSlice, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	base := ms.Len()
	movegen.Generate(pos, ms, false)
	end := ms.Len()

	var nodes uint64
	for i := base; i < end; i++ {
		m := ms.At(i)
		if m.IsLegal() {
			pos.Make(m)
			nodes += perft(pos, ms, depth-1)
			pos.Unmake(m)
		} else if pos.Make(m) {
			nodes += perft(pos, ms, depth-1)
			pos.Unmake(m)
		}
	}
	ms.Truncate(base)
	return nodes
}

func TestPerftStandardPositions(t *testing.T) {
	cases := []struct {
		name  string
		fen   string
		depth int
		nodes uint64
	}{
		{"startpos", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", 5, 4865609},
		{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 4, 4085603},
		{"endgame-rook", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 5, 674624},
		{"promotion-heavy", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2pP/R2Q1RK1 w kq - 0 1", 4, 422333},
		{"tactical-1", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", 4, 2103487},
		{"tactical-2", "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10", 4, 3894594},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pos, err := position.NewPositionFen(tc.fen)
			require.NoError(t, err)
			ms := moveslice.NewMoveSlice(256)
			assert.Equal(t, tc.nodes, perft(pos, ms, tc.depth))
		})
	}
}

func TestGenerateReportsCheck(t *testing.T) {
	pos, err := position.NewPositionFen("7k/5Q2/5K2/8/8/8/8/8 w - - 0 1")
	require.NoError(t, err)
	ms := moveslice.NewMoveSlice(64)
	inCheck := movegen.Generate(pos, ms, false)
	assert.False(t, inCheck)
	assert.Positive(t, ms.Len())
}

func TestGenerateStalemateHasNoLegalMoves(t *testing.T) {
	pos, err := position.NewPositionFen("4k3/4P3/4K3/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)
	ms := moveslice.NewMoveSlice(64)
	inCheck := movegen.Generate(pos, ms, false)
	require.False(t, inCheck)

	legalCount := 0
	for i := 0; i < ms.Len(); i++ {
		m := ms.At(i)
		if m.IsLegal() {
			legalCount++
			continue
		}
		if pos.Make(m) {
			legalCount++
			pos.Unmake(m)
		}
	}
	assert.Zero(t, legalCount)
}

func TestGenerateCapturesOnlyIsSubsetWhenNotInCheck(t *testing.T) {
	pos, err := position.NewPositionFen("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	all := moveslice.NewMoveSlice(256)
	movegen.Generate(pos, all, false)
	caps := moveslice.NewMoveSlice(256)
	movegen.Generate(pos, caps, true)

	allSet := make(map[string]bool, all.Len())
	for i := 0; i < all.Len(); i++ {
		allSet[all.At(i).StringUci()] = true
	}
	for i := 0; i < caps.Len(); i++ {
		assert.True(t, allSet[caps.At(i).StringUci()])
	}
	assert.LessOrEqual(t, caps.Len(), all.Len())
}

func TestCastlingMovesGenerated(t *testing.T) {
	pos, err := position.NewPositionFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	ms := moveslice.NewMoveSlice(64)
	movegen.Generate(pos, ms, false)

	found := map[string]bool{}
	for i := 0; i < ms.Len(); i++ {
		m := ms.At(i)
		if m.IsCastle() {
			found[m.StringUci()] = true
		}
	}
	assert.True(t, found["e1g1"])
	assert.True(t, found["e1c1"])
}
