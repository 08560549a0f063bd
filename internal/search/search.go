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

// Package search implements iterative-deepening negamax with alpha-beta
// pruning, a capture-only quiescence extension, and transposition-table-
// guided move ordering (spec.md §4.F). The recursive search never checks
// the wall clock itself; only the root loop does, at iteration and
// root-move boundaries (spec.md §5).
package search

import (
	"time"

	"github.com/op/go-logging"
	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/evanphx/corvid/internal/config"
	"github.com/evanphx/corvid/internal/evaluator"
	myLogging "github.com/evanphx/corvid/internal/logging"
	"github.com/evanphx/corvid/internal/movegen"
	"github.com/evanphx/corvid/internal/moveslice"
	"github.com/evanphx/corvid/internal/position"
	"github.com/evanphx/corvid/internal/transpositiontable"
	"github.com/evanphx/corvid/internal/types"
	"github.com/evanphx/corvid/internal/util"
)

var out = message.NewPrinter(language.English)

// moveStackCapacity is the spec's suggested move-stack size: ≤218 legal
// moves per position times a depth margin (spec.md §4.G).
const moveStackCapacity = 1500

// Statistics tracks per-search node counts, reported after best_move
// returns, grounded on the teacher's Statistics struct.
type Statistics struct {
	NodesVisited   uint64
	TTHits         uint64
	TTCutoffs      uint64
	QuiescenceHits uint64
}

// Search owns the move stack and evaluator a single search run needs. It
// is not safe for concurrent BestMove calls against the same instance;
// running holds that guarantee (spec.md §5: "the engine is non-
// reentrant: only one search may be active against a given position
// instance").
type Search struct {
	log  *logging.Logger
	tt   *transpositiontable.Table
	eval *evaluator.Evaluator

	running *semaphore.Weighted
	moves   *moveslice.MoveSlice
	stats   Statistics
}

// NewSearch builds a Search sharing tt (owned by the caller, long-lived
// across searches per spec.md §4.G).
func NewSearch(tt *transpositiontable.Table) *Search {
	return &Search{
		log:     myLogging.GetLog(),
		tt:      tt,
		eval:    evaluator.NewEvaluator(),
		running: semaphore.NewWeighted(1),
		moves:   moveslice.NewMoveSlice(moveStackCapacity),
	}
}

// Stats returns the node-count statistics of the most recently completed
// BestMove call.
func (s *Search) Stats() Statistics { return s.stats }

func (s *Search) String() string {
	return out.Sprintf("nodes %d, tt hits %d, tt cutoffs %d, quiescence nodes %d",
		s.stats.NodesVisited, s.stats.TTHits, s.stats.TTCutoffs, s.stats.QuiescenceHits)
}

// BestMove runs iterative deepening against pos until deadline, returning
// the strongest move found (spec.md §4.F). Callers must have already
// excluded terminal positions (see internal/engine); BestMove returns
// types.MoveNone if pos has no legal move, the caller's responsibility to
// have already excluded.
func (s *Search) BestMove(pos *position.Position, deadline time.Time) types.Move {
	if !s.running.TryAcquire(1) {
		s.log.Error("BestMove called while a search is already running")
		return types.MoveNone
	}
	defer s.running.Release(1)

	s.stats = Statistics{}
	searchStart := time.Now()
	base := s.moves.Len()
	movegen.Generate(pos, s.moves, false)
	end := s.moves.Len()
	defer s.moves.Truncate(base)
	if end == base {
		return types.MoveNone
	}

	for i := base; i < end; i++ {
		m := s.moves.At(i)
		m.Score = s.eval.OrderingScore(pos, m)
		s.moves.Set(i, m)
	}
	s.moves.SortByScoreDesc(base)

	var best types.Move
	var lastIteration time.Duration
	for depth := 0; depth <= types.MaxDepth; depth++ {
		iterStart := time.Now()
		cutoff := deadline.Add(-time.Duration(float64(lastIteration) * 1.25))
		if time.Now().After(cutoff) {
			break
		}

		for i := base; i < end; i++ {
			m := s.moves.At(i)
			m.Score = -types.ValueInfinite
			s.moves.Set(i, m)
		}

		alpha := -types.ValueInfinite
		searchedAny := false
		for i := base; i < end; i++ {
			if time.Now().After(cutoff) {
				break
			}
			m := s.moves.At(i)
			if !pos.Make(m) {
				continue
			}
			searchedAny = true
			value := -s.negamax(pos, 1, depth-1, -types.ValueInfinite, -alpha)
			pos.Unmake(m)
			m.Score = value
			s.moves.Set(i, m)
			if value > alpha {
				alpha = value
			}
		}

		if !searchedAny {
			break
		}
		s.moves.SortByScoreDesc(base)
		best = s.moves.At(base)
		lastIteration = time.Since(iterStart)
		if best.Score.IsCheckMateValue() {
			break
		}
	}
	s.log.Debugf("nps %d", util.Nps(s.stats.NodesVisited, time.Since(searchStart)))
	return best
}

// valueToTT shifts a mate score so it is independent of the ply it was
// found at, grounded on the teacher's valueToTT (internal/search/
// alphabeta.go): a mate further from the root is a smaller magnitude, so
// storing "plies to mate from here" rather than "plies to mate from the
// root" keeps a TT hit valid when probed from a different ply.
func valueToTT(v types.Value, ply int) types.Value {
	if !v.IsCheckMateValue() {
		return v
	}
	if v > 0 {
		return v + types.Value(ply)
	}
	return v - types.Value(ply)
}

// valueFromTT is valueToTT's inverse, applied when reading a stored mate
// score back at the probing ply.
func valueFromTT(v types.Value, ply int) types.Value {
	if !v.IsCheckMateValue() {
		return v
	}
	if v > 0 {
		return v - types.Value(ply)
	}
	return v + types.Value(ply)
}

// orderMoves brings the TT hint (if it names a move present in
// [base,end)) to the front, then leaves the remainder for SelectMax to
// pick off one at a time (spec.md §4.F: "the TT hint first ... then
// selection-sort by heuristic score").
func orderMoves(ms *moveslice.MoveSlice, base, end int, hint types.Move) (hinted bool) {
	if !hint.IsValid() {
		return false
	}
	for i := base; i < end; i++ {
		m := ms.At(i)
		if m.From() == hint.From() && m.To() == hint.To() {
			if i != base {
				atBase := ms.At(base)
				ms.Set(base, m)
				ms.Set(i, atBase)
			}
			return true
		}
	}
	return false
}

// negamax is the recursive alpha-beta search (spec.md §4.F).
func (s *Search) negamax(pos *position.Position, ply, depth int, alpha, beta types.Value) types.Value {
	s.stats.NodesVisited++

	if pos.IsDraw50() || pos.IsDrawMaterial() {
		return 0
	}
	if pos.RepetitionOccurred() {
		return types.Value(config.Settings.Search.Contempt)
	}

	hash := pos.Zobrist()
	var ttMove types.Move
	if entry, hit := s.tt.Lookup(hash); hit {
		s.stats.TTHits++
		ttMove = entry.Move()
		if entry.Depth() >= depth {
			v := valueFromTT(entry.Eval(), ply)
			switch entry.Kind() {
			case types.BoundExact:
				return v
			case types.BoundLower:
				if v > alpha {
					alpha = v
				}
			case types.BoundUpper:
				if v < beta {
					beta = v
				}
			}
			if alpha >= beta {
				s.stats.TTCutoffs++
				return v
			}
		}
	}

	if depth <= 0 {
		return s.quiescence(pos, ply, alpha, beta)
	}

	alphaOrig := alpha
	base := s.moves.Len()
	movegen.Generate(pos, s.moves, false)
	end := s.moves.Len()
	defer s.moves.Truncate(base)

	hinted := orderMoves(s.moves, base, end, ttMove)
	for i := base; i < end; i++ {
		m := s.moves.At(i)
		m.Score = s.eval.OrderingScore(pos, m)
		s.moves.Set(i, m)
	}

	var bestValue = -types.ValueInfinite
	var bestMove types.Move
	legalMoves := 0
	for i := base; i < end; i++ {
		if !(hinted && i == base) {
			s.moves.SelectMax(i)
		}
		m := s.moves.At(i)
		if !pos.Make(m) {
			continue
		}
		legalMoves++
		value := -s.negamax(pos, ply+1, depth-1, -beta, -alpha)
		pos.Unmake(m)

		if value > bestValue {
			bestValue = value
			bestMove = m
		}
		if value > alpha {
			alpha = value
		}
		if alpha >= beta {
			s.tt.Store(hash, depth, valueToTT(beta, ply), types.BoundLower, m)
			return beta
		}
	}

	if legalMoves == 0 {
		if pos.InCheckStm() {
			return -(types.ValueCheckMate - types.Value(ply))
		}
		return 0
	}

	kind := types.BoundUpper
	if bestValue > alphaOrig {
		kind = types.BoundExact
	}
	s.tt.Store(hash, depth, valueToTT(bestValue, ply), kind, bestMove)
	return bestValue
}

// quiescence extends the search past the nominal depth with captures and
// check evasions only, to avoid the horizon effect (spec.md §4.F).
func (s *Search) quiescence(pos *position.Position, ply int, alpha, beta types.Value) types.Value {
	s.stats.NodesVisited++
	s.stats.QuiescenceHits++

	if ply > types.MaxDepth {
		return s.eval.Evaluate(pos)
	}

	base := s.moves.Len()
	inCheck := movegen.Generate(pos, s.moves, true)
	end := s.moves.Len()
	defer s.moves.Truncate(base)

	var bestValue types.Value
	if !inCheck {
		standPat := s.eval.Evaluate(pos)
		if standPat >= beta {
			return standPat
		}
		if standPat > alpha {
			alpha = standPat
		}
		bestValue = standPat
	} else {
		bestValue = -types.ValueInfinite
	}

	var ttMove types.Move
	if entry, hit := s.tt.Lookup(pos.Zobrist()); hit {
		ttMove = entry.Move()
	}
	hinted := orderMoves(s.moves, base, end, ttMove)
	for i := base; i < end; i++ {
		m := s.moves.At(i)
		m.Score = s.eval.OrderingScore(pos, m)
		s.moves.Set(i, m)
	}

	legalMoves := 0
	for i := base; i < end; i++ {
		if !(hinted && i == base) {
			s.moves.SelectMax(i)
		}
		m := s.moves.At(i)
		if !pos.Make(m) {
			continue
		}
		legalMoves++

		var value types.Value
		if pos.IsDrawMaterial() {
			value = 0
		} else {
			value = -s.quiescence(pos, ply+1, -beta, -alpha)
		}
		pos.Unmake(m)

		if value > bestValue {
			bestValue = value
		}
		if value > alpha {
			alpha = value
		}
		if alpha >= beta {
			return beta
		}
	}

	if inCheck && legalMoves == 0 {
		return -(types.ValueCheckMate - types.Value(ply))
	}
	return bestValue
}
