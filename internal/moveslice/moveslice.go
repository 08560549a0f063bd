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

// Package moveslice provides the growable move buffer the search driver
// owns and reuses across calls. Each recursive search node notes the
// current Len() as its base, writes its moves from there onward via
// PushBack, and Truncates back to that base before returning — zero allocation once
// the backing array has grown to its high-water mark (spec.md §5).
package moveslice

import (
	"fmt"
	"strings"

	"github.com/evanphx/corvid/internal/types"
)

// MoveSlice is a slice of Move with stack-like helpers.
type MoveSlice []types.Move

// NewMoveSlice creates an empty slice with the given capacity.
func NewMoveSlice(capacity int) *MoveSlice {
	moves := make([]types.Move, 0, capacity)
	return (*MoveSlice)(&moves)
}

func (ms *MoveSlice) Len() int { return len(*ms) }
func (ms *MoveSlice) Cap() int { return cap(*ms) }

// PushBack appends a move at the end of the slice.
func (ms *MoveSlice) PushBack(m types.Move) {
	*ms = append(*ms, m)
}

// At returns the move at index i.
func (ms *MoveSlice) At(i int) types.Move { return (*ms)[i] }

// Set overwrites the move at index i.
func (ms *MoveSlice) Set(i int, m types.Move) { (*ms)[i] = m }

// Truncate shrinks the slice to length n, retaining capacity. Used by a
// caller to drop a callee's moves once it is done consuming them.
func (ms *MoveSlice) Truncate(n int) {
	*ms = (*ms)[:n]
}

// Clear empties the slice while retaining capacity.
func (ms *MoveSlice) Clear() {
	*ms = (*ms)[:0]
}

// Clone deep-copies the slice.
func (ms *MoveSlice) Clone() *MoveSlice {
	dest := make([]types.Move, ms.Len())
	copy(dest, *ms)
	return (*MoveSlice)(&dest)
}

// SortByScoreDesc performs a stable insertion sort on Move.Score,
// descending. Move lists are small (≤218) and mostly pre-ordered, so
// insertion sort beats a general-purpose sort in practice, matching the
// teacher's rationale for moveslice.Sort.
func (ms *MoveSlice) SortByScoreDesc(from int) {
	s := (*ms)[from:]
	for i := 1; i < len(s); i++ {
		tmp := s[i]
		j := i
		for j > 0 && tmp.Score > s[j-1].Score {
			s[j] = s[j-1]
			j--
		}
		s[j] = tmp
	}
}

// SelectMax finds the index in [from, len) with the highest Score and
// swaps it into position from, implementing the selection-sort ordering
// spec.md §4.F requires for main and quiescence search ("iterate them in
// selection-sort order (finding the current maximum on each step rather
// than pre-sorting)").
func (ms *MoveSlice) SelectMax(from int) {
	s := *ms
	best := from
	for i := from + 1; i < len(s); i++ {
		if s[i].Score > s[best].Score {
			best = i
		}
	}
	s[from], s[best] = s[best], s[from]
}

func (ms *MoveSlice) String() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("MoveSlice[%d]{ ", ms.Len()))
	for i, m := range *ms {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(m.String())
	}
	b.WriteString(" }")
	return b.String()
}

// StringUci renders the slice as a space-separated list of long
// algebraic moves, for external logging (spec.md §6).
func (ms *MoveSlice) StringUci() string {
	var b strings.Builder
	for i, m := range *ms {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(m.StringUci())
	}
	return b.String()
}
