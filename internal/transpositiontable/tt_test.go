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

package transpositiontable

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/evanphx/corvid/internal/tables"
	"github.com/evanphx/corvid/internal/types"
)

func TestNewIsEmpty(t *testing.T) {
	tt := New()
	assert.Equal(t, Capacity, len(tt.slots))
	_, hit := tt.Lookup(tables.Key(12345))
	assert.False(t, hit)
}

func TestStoreThenLookupHits(t *testing.T) {
	tt := New()
	hash := tables.Key(0xABCDEF0123456789)
	m := types.NewMove(types.SqE2, types.SqE4, types.WhitePawn, types.PieceNone, types.PtNone)
	tt.Store(hash, 6, 123, types.BoundExact, m)

	e, hit := tt.Lookup(hash)
	assert.True(t, hit)
	assert.Equal(t, 6, e.Depth())
	assert.Equal(t, types.BoundExact, e.Kind())
	assert.EqualValues(t, 123, e.Eval())
	assert.Equal(t, types.SqE2, e.Move().From())
	assert.Equal(t, types.SqE4, e.Move().To())
}

func TestLookupMissOnKeyFragmentMismatch(t *testing.T) {
	tt := New()
	hash := tables.Key(0x1111111111111111)
	tt.Store(hash, 3, 0, types.BoundExact, types.MoveNone)

	// Same index (low 20 bits), different upper 24 bits: must miss.
	collidingHash := hash ^ (tables.Key(1) << 63)
	_, hit := tt.Lookup(collidingHash)
	assert.False(t, hit)
}

func TestStoreAlwaysReplaces(t *testing.T) {
	tt := New()
	hash := tables.Key(42)
	tt.Store(hash, 10, 50, types.BoundExact, types.MoveNone)
	// A shallower store at the same slot still overwrites (always-replace).
	tt.Store(hash, 1, -50, types.BoundLower, types.MoveNone)

	e, hit := tt.Lookup(hash)
	assert.True(t, hit)
	assert.Equal(t, 1, e.Depth())
	assert.Equal(t, types.BoundLower, e.Kind())
}

func TestClearRemovesAllEntries(t *testing.T) {
	tt := New()
	hash := tables.Key(999)
	tt.Store(hash, 4, 1, types.BoundUpper, types.MoveNone)
	tt.Clear()
	_, hit := tt.Lookup(hash)
	assert.False(t, hit)
}
