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

package position_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evanphx/corvid/internal/movegen"
	"github.com/evanphx/corvid/internal/moveslice"
	"github.com/evanphx/corvid/internal/position"
	"github.com/evanphx/corvid/internal/tables"
	"github.com/evanphx/corvid/internal/types"
)

// recomputeZobrist rebuilds the hash from scratch by walking the board,
// independent of Position's incrementally maintained accumulator, per
// spec.md §8's "recompute_zobrist(pos) == pos.zobrist" structural
// invariant.
func recomputeZobrist(p *position.Position) tables.Key {
	var key tables.Key
	for sq := types.SqA1; sq <= types.SqH8; sq++ {
		pc := p.PieceOn(sq)
		if pc != types.PieceNone {
			key ^= tables.ZobPiece[pc][sq]
		}
	}
	if p.StmColor() == types.Black {
		key ^= tables.ZobSide
	}
	for c := types.White; c <= types.Black; c++ {
		for _, side := range []types.CastlingSide{types.KingSide, types.QueenSide} {
			if p.HasCastlingRight(c, side) {
				key ^= tables.ZobCastling[types.CastlingBit(c, side)]
			}
		}
	}
	if p.EpSquare() != types.SqNone {
		key ^= tables.ZobEpFile[p.EpSquare().FileOf()]
	}
	return key
}

func psqSigned(pc types.Piece, sq types.Square, table [types.PieceLength][types.SqLength]types.Value) types.Value {
	v := table[pc][sq]
	if pc.ColorOf() == types.Black {
		return -v
	}
	return v
}

// recomputeEval rebuilds the tapered accumulators from scratch, per
// spec.md §8's "recompute_eval_accumulators(pos) == (eval_early, eval_end)".
func recomputeEval(p *position.Position) (early, end types.Value) {
	for sq := types.SqA1; sq <= types.SqH8; sq++ {
		pc := p.PieceOn(sq)
		if pc == types.PieceNone {
			continue
		}
		early += psqSigned(pc, sq, tables.PsqEarly)
		end += psqSigned(pc, sq, tables.PsqEnd)
	}
	return
}

func recomputePieceCounts(p *position.Position) [types.PieceLength]int {
	var counts [types.PieceLength]int
	for sq := types.SqA1; sq <= types.SqH8; sq++ {
		counts[p.PieceOn(sq)]++
	}
	return counts
}

func assertInvariants(t *testing.T, p *position.Position) {
	t.Helper()
	assert.Equal(t, recomputeZobrist(p), p.Zobrist(), "zobrist drifted from a from-scratch recompute")
	wantEarly, wantEnd := recomputeEval(p)
	assert.Equal(t, wantEarly, p.EvalEarly(), "eval_early drifted")
	assert.Equal(t, wantEnd, p.EvalEnd(), "eval_end drifted")

	counts := recomputePieceCounts(p)
	for pc := types.PieceNone; pc < types.PieceLength; pc++ {
		assert.Equal(t, counts[pc], p.PieceCount(pc), "piece_count[%d] drifted", pc)
	}

	for c := types.White; c <= types.Black; c++ {
		king := types.MakePiece(c, types.King)
		assert.Equal(t, king, p.PieceOn(p.KingSquare(c)), "king_square[%v] does not point at a king", c)
		assert.Equal(t, 1, counts[king], "exactly one king expected for %v", c)
	}
}

func TestStartingPositionInvariants(t *testing.T) {
	p := position.NewPosition()
	assertInvariants(t, p)
	assert.Equal(t, 1, p.SideToMove())
	assert.Equal(t, position.StartFen, p.Fen())
}

func TestLoadFenRejectsMalformedInput(t *testing.T) {
	cases := map[string]string{
		"too few fields":        "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR",
		"bad piece character":   "rnbqkbnx/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"rank total != 8":       "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",
		"bad side to move":      "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"bad en passant square": "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9 0 1",
		"bad halfmove clock":    "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - x 1",
		"bad fullmove number":   "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 x",
		"two kings one side":    "rnbqkknr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
	}
	for name, fen := range cases {
		_, err := position.NewPositionFen(fen)
		require.Error(t, err, name)
		var invalid *position.InvalidFenError
		assert.ErrorAs(t, err, &invalid, name)
	}
}

// TestCastlingRightsDroppedWhenGeometricallyImpossible covers spec.md
// §4.B: castling letters present in the FEN string but incompatible with
// where the king/rook actually sit are silently dropped, not rejected.
func TestCastlingRightsDroppedWhenGeometricallyImpossible(t *testing.T) {
	// White king already moved off e1; "KQ" in the FEN is impossible.
	p, err := position.NewPositionFen("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQ1K1R w KQkq - 0 1")
	require.NoError(t, err)
	assert.False(t, p.HasCastlingRight(types.White, types.KingSide))
	assert.False(t, p.HasCastlingRight(types.White, types.QueenSide))
	assert.True(t, p.HasCastlingRight(types.Black, types.KingSide))
	assert.True(t, p.HasCastlingRight(types.Black, types.QueenSide))
}

// makeUnmakeRoundTrip applies every pseudo-legal move in pos one at a
// time and verifies Make/Unmake are exact inverses (spec.md §8:
// "make(m); unmake(m) restores byte-identical Position state, for every
// legal m"). Moves Make itself rejects (left king in check) are skipped,
// since Make has already unmade them before returning false.
func makeUnmakeRoundTrip(t *testing.T, fen string) {
	t.Helper()
	pos, err := position.NewPositionFen(fen)
	require.NoError(t, err)

	ms := moveslice.NewMoveSlice(256)
	movegen.Generate(pos, ms, false)

	for i := 0; i < ms.Len(); i++ {
		m := ms.At(i)
		before := pos.Clone()

		if !pos.Make(m) {
			continue
		}
		assertInvariants(t, pos)
		pos.Unmake(m)

		assert.True(t, reflect.DeepEqual(before, pos), "position not byte-identical after make/unmake of %s", m.StringUci())
	}
}

func TestMakeUnmakeRoundTripFromStart(t *testing.T) {
	makeUnmakeRoundTrip(t, position.StartFen)
}

func TestMakeUnmakeRoundTripKiwipete(t *testing.T) {
	makeUnmakeRoundTrip(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
}

func TestMakeUnmakeRoundTripEnPassant(t *testing.T) {
	makeUnmakeRoundTrip(t, "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3")
}

func TestMakeUnmakeRoundTripPromotion(t *testing.T) {
	makeUnmakeRoundTrip(t, "4k3/P5p1/8/8/8/8/p5P1/4K3 w - - 0 1")
}

func TestFenRoundTrip(t *testing.T) {
	fens := []string{
		position.StartFen,
		"r1bqkbnr/pppp1ppp/2n5/1B2p3/4P3/5N2/PPPP1PPP/RNBQK2R b KQkq - 3 3",
		"k7/8/K7/8/8/8/8/8 w - - 0 1",
		"4k3/4P3/4K3/8/8/8/8/8 b - - 0 1",
		"8/8/8/8/k7/8/K7/8 w - - 99 50",
	}
	for _, fen := range fens {
		p, err := position.NewPositionFen(fen)
		require.NoError(t, err, fen)
		assert.Equal(t, fen, p.Fen(), "fen did not round-trip")
	}
}

func TestDrawDetection(t *testing.T) {
	t.Run("insufficient material king vs king", func(t *testing.T) {
		p, err := position.NewPositionFen("k7/8/K7/8/8/8/8/8 w - - 0 1")
		require.NoError(t, err)
		assert.True(t, p.IsDrawMaterial())
		assert.True(t, p.IsDraw())
	})

	t.Run("fifty move rule at halfmove 100", func(t *testing.T) {
		p, err := position.NewPositionFen("8/8/8/8/k7/8/K7/8 w - - 99 50")
		require.NoError(t, err)
		assert.False(t, p.IsDraw50())

		ms := moveslice.NewMoveSlice(64)
		movegen.Generate(p, ms, false)
		require.Greater(t, ms.Len(), 0)
		// Moves are pseudo-legal: play the first one Make accepts.
		made := false
		for i := 0; i < ms.Len() && !made; i++ {
			made = p.Make(ms.At(i))
		}
		require.True(t, made)
		assert.True(t, p.IsDraw50())
	})

	t.Run("K+B vs K+N is not flagged insufficient", func(t *testing.T) {
		p, err := position.NewPositionFen("8/8/4k3/8/3nK3/8/3B4/8 w - - 0 1")
		require.NoError(t, err)
		assert.False(t, p.IsDrawMaterial())
	})
}
