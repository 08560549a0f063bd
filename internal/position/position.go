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

// Package position holds the mailbox board representation and its
// incrementally maintained derived state: piece counts, king squares,
// Zobrist hash, tapered evaluation accumulators, castling/en-passant
// rights and repetition history. Position is mutated only through
// Make/Unmake, which are exact inverses.
package position

import (
	"github.com/evanphx/corvid/internal/tables"
	"github.com/evanphx/corvid/internal/types"
)

// StartFen is the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// sentinelNotLost marks a castling right as still available in
// castleLostAt; any non-negative value means "lost at this ply".
const sentinelNotLost = -1

// undoRecord is the per-ply snapshot Make pushes and Unmake pops. Its
// zobrist/epSquare/hmcr fields double as the spec's compact repetition
// history record (the "new" hash/ep/halfmove-clock after the move); the
// prev* fields are the extra state Unmake needs to reverse the move
// exactly, grounded on the teacher's historyState (zobristKey, move,
// fromPiece, capturedPiece, castlingRights, enpassantSquare,
// halfMoveClock) push-per-ply pattern.
type undoRecord struct {
	move   types.Move
	zobrist       tables.Key
	epSquare      types.Square
	hmcr          int
	prevZobrist   tables.Key
	prevEpSquare  types.Square
	prevHmcr      int
	prevCastle    [2][2]int
	prevKingSq    [2]types.Square
	prevMsWeight  int
	prevEvalEarly types.Value
	prevEvalEnd   types.Value
}

// Position is the engine's board state.
type Position struct {
	board      [64]types.Piece
	kingSquare [2]types.Square
	pieceCount [types.PieceLength]int
	sideTotal  [2]int

	zobrist tables.Key

	// castleLostAt[side][KingSide|QueenSide] is the ply the right was lost,
	// or sentinelNotLost while it is still available.
	castleLostAt [2][2]int

	ply      int
	epSquare types.Square
	hmcr     int

	msWeight  int
	evalEarly types.Value
	evalEnd   types.Value

	hist []undoRecord
}

// NewPosition returns the standard starting position.
func NewPosition() *Position {
	pos, err := NewPositionFen(StartFen)
	if err != nil {
		panic(err)
	}
	return pos
}

// NewPositionFen builds a Position from a FEN string, or returns an
// *InvalidFenError.
func NewPositionFen(fen string) (*Position, error) {
	pos := &Position{}
	if err := pos.loadFen(fen); err != nil {
		return nil, err
	}
	return pos, nil
}

// SideToMove returns +1 for the first mover (White), -1 otherwise,
// matching spec.md's side_to_move() contract.
func (p *Position) SideToMove() int {
	return p.stm().Sign()
}

func (p *Position) stm() types.Color {
	return types.Color(p.ply & 1)
}

// StmColor returns the side to move as a types.Color, for packages that
// need the color rather than SideToMove's sign convention.
func (p *Position) StmColor() types.Color {
	return p.stm()
}

// Ply returns the total halfmove count since the game start.
func (p *Position) Ply() int { return p.ply }

// PieceOn returns the piece code on sq, PieceNone if empty.
func (p *Position) PieceOn(sq types.Square) types.Piece { return p.board[sq] }

// KingSquare returns the square of c's king.
func (p *Position) KingSquare(c types.Color) types.Square { return p.kingSquare[c] }

// EpSquare returns the current en-passant target square, or SqNone.
func (p *Position) EpSquare() types.Square { return p.epSquare }

// HalfmoveClock returns halfmoves since the last pawn move or capture.
func (p *Position) HalfmoveClock() int { return p.hmcr }

// Zobrist returns the current 64-bit position hash.
func (p *Position) Zobrist() tables.Key { return p.zobrist }

// MsWeight returns the tapering weight in [0,128].
func (p *Position) MsWeight() int { return p.msWeight }

// EvalEarly and EvalEnd are the raw piece-square accumulators (first
// mover's perspective).
func (p *Position) EvalEarly() types.Value { return p.evalEarly }
func (p *Position) EvalEnd() types.Value   { return p.evalEnd }

// Evaluate returns the tapered static evaluation from the first mover's
// perspective (spec.md §4.D).
func (p *Position) Evaluate() types.Value {
	return types.Value((int(p.msWeight)*int(p.evalEarly) + int(128-p.msWeight)*int(p.evalEnd)) / 128)
}

// HasCastlingRight reports whether side still has the given castling right.
func (p *Position) HasCastlingRight(c types.Color, side types.CastlingSide) bool {
	return p.castleLostAt[c][side] == sentinelNotLost
}

// PieceCount returns the number of pieces with the given code on the board.
func (p *Position) PieceCount(pc types.Piece) int { return p.pieceCount[pc] }

// Clone returns a deep copy (search itself uses make/unmake in place;
// Clone exists for tests and tools that want an independent scratch
// position).
func (p *Position) Clone() *Position {
	c := *p
	c.hist = make([]undoRecord, len(p.hist))
	copy(c.hist, p.hist)
	return &c
}
