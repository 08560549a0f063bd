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

// Package engine is the external-facing driver (spec.md §4.G, §6): it
// owns the Position, the long-lived transposition table and the search,
// and exposes the small operation set a UI or test harness drives the
// engine through. It is the only package outside internal/search that
// uses golang.org/x/sync/semaphore, guarding against a second search
// starting while one is in flight (spec.md §5).
package engine

import (
	"time"

	"github.com/op/go-logging"
	"golang.org/x/sync/semaphore"

	myLogging "github.com/evanphx/corvid/internal/logging"
	"github.com/evanphx/corvid/internal/movegen"
	"github.com/evanphx/corvid/internal/moveslice"
	"github.com/evanphx/corvid/internal/position"
	"github.com/evanphx/corvid/internal/search"
	"github.com/evanphx/corvid/internal/transpositiontable"
	"github.com/evanphx/corvid/internal/types"
	"github.com/evanphx/corvid/internal/util"
)

// legalMovesCapacity bounds a single-position legal-move list, well above
// the 218-move theoretical maximum.
const legalMovesCapacity = 256

// Engine is the driver: Position plus the long-lived search state around
// it (spec.md §4.G: "Owns the move stack buffer ..., the TT ..., and the
// deadline clock").
type Engine struct {
	log *logging.Logger

	pos    *position.Position
	tt     *transpositiontable.Table
	search *search.Search

	busy *semaphore.Weighted
}

// New creates an Engine at the standard starting position.
func New() *Engine {
	tt := transpositiontable.New()
	return &Engine{
		log:    myLogging.GetLog(),
		pos:    position.NewPosition(),
		tt:     tt,
		search: search.NewSearch(tt),
		busy:   semaphore.NewWeighted(1),
	}
}

// LoadStartingPosition resets to the standard opening array and clears
// the transposition table (spec.md §5: "TT ... cleared on load_fen and
// when a new game starts").
func (e *Engine) LoadStartingPosition() {
	e.pos = position.NewPosition()
	e.tt.Clear()
	e.log.Debug(util.GcWithStats())
}

// LoadFen replaces the current position from fen, clearing the
// transposition table. Returns *position.InvalidFenError on malformed
// input, leaving the engine's previous position untouched.
func (e *Engine) LoadFen(fen string) error {
	pos, err := position.NewPositionFen(fen)
	if err != nil {
		return err
	}
	e.pos = pos
	e.tt.Clear()
	return nil
}

// Fen returns the canonical FEN of the current position.
func (e *Engine) Fen() string {
	return e.pos.Fen()
}

// SideToMove returns +1 for the first mover, -1 otherwise.
func (e *Engine) SideToMove() int {
	return e.pos.SideToMove()
}

// InCheck reports whether the side to move is in check.
func (e *Engine) InCheck() bool {
	return e.pos.InCheckStm()
}

// LegalMoves returns every legal move from the current position:
// pseudo-legal moves already proved legal by the generator, plus every
// remaining pseudo-legal move that survives a trial make/unmake
// (spec.md §8: "the set of legal moves equals the set of pseudo-legal
// moves that survive trial-make without leaving the mover in check").
func (e *Engine) LegalMoves() []types.Move {
	ms := moveslice.NewMoveSlice(legalMovesCapacity)
	movegen.Generate(e.pos, ms, false)

	legal := make([]types.Move, 0, ms.Len())
	for i := 0; i < ms.Len(); i++ {
		m := ms.At(i)
		if m.IsLegal() {
			legal = append(legal, m)
			continue
		}
		if e.pos.Make(m) {
			e.pos.Unmake(m)
			legal = append(legal, m)
		}
	}
	return legal
}

// GameOver reports the game's result from the first mover's perspective,
// or (0, false) while the game continues: +1 first-mover win (Black
// checkmated), -1 second-mover win, 0 draw (no legal move without check,
// or any of the three draw conditions), per spec.md §6.
func (e *Engine) GameOver() (result int, over bool) {
	if e.pos.IsDraw() {
		return 0, true
	}
	if len(e.LegalMoves()) > 0 {
		return 0, false
	}
	if e.pos.InCheckStm() {
		// The side to move is checkmated: the other side won.
		return -e.pos.SideToMove(), true
	}
	return 0, true
}

// InputMove advances the position by m, returning *IllegalMoveError if m
// is not in the current legal set or the game has already ended
// (spec.md §7). m is identified by (start, target, promotion) only, per
// the wire Move shape of spec.md §6 — the caller need not fill in the
// moving/captured piece or flag bits the generator uses internally.
func (e *Engine) InputMove(m types.Move) error {
	if _, over := e.GameOver(); over {
		return &IllegalMoveError{Move: m, Reason: "game already over"}
	}
	for _, legal := range e.LegalMoves() {
		if legal.From() == m.From() && legal.To() == m.To() && legal.PromotionType() == m.PromotionType() {
			if !e.pos.Make(legal) {
				return &IllegalMoveError{Move: m, Reason: "rejected by make"}
			}
			return nil
		}
	}
	return &IllegalMoveError{Move: m, Reason: "not a legal move"}
}

// InputMoveUci parses long algebraic notation ("e2e4", "e7e8q") and plays
// it as InputMove would, grounded on the teacher's GetMoveFromUci: match
// against the generated legal set rather than trusting the wire move's
// own flags.
func (e *Engine) InputMoveUci(uci string) error {
	if _, over := e.GameOver(); over {
		return &IllegalMoveError{Reason: "game already over"}
	}
	from, to, promo, ok := parseUciMove(uci)
	if !ok {
		return &IllegalMoveError{Reason: "malformed uci move: " + uci}
	}
	for _, legal := range e.LegalMoves() {
		if legal.From() == from && legal.To() == to && legal.PromotionType() == promo {
			if !e.pos.Make(legal) {
				return &IllegalMoveError{Move: legal, Reason: "rejected by make"}
			}
			return nil
		}
	}
	return &IllegalMoveError{Reason: "not a legal move: " + uci}
}

// BestMove searches for thinkTime and returns the move the engine
// believes strongest. Refuses to search a terminal position, per
// spec.md §8 ("searching a terminal position ... refuses to search").
func (e *Engine) BestMove(thinkTime time.Duration) (types.Move, error) {
	if !e.busy.TryAcquire(1) {
		return types.MoveNone, &IllegalMoveError{Reason: "search already running"}
	}
	defer e.busy.Release(1)

	if _, over := e.GameOver(); over {
		return types.MoveNone, &IllegalMoveError{Reason: "position is already game over"}
	}
	deadline := time.Now().Add(thinkTime)
	return e.search.BestMove(e.pos, deadline), nil
}
