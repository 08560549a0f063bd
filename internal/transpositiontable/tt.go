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

// Package transpositiontable implements the fixed-capacity, always-replace
// hash table the search consults for move ordering and alpha-beta cutoffs
// (spec.md §4.E). Unlike the teacher's resizable, age-aware, quality-
// replacement table, capacity is pinned at 2^20 slots and Store always
// overwrites: the spec pins only this behaviour, leaving quality-based
// replacement as an allowed-but-untested extension.
package transpositiontable

import (
	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/evanphx/corvid/internal/logging"
	"github.com/evanphx/corvid/internal/tables"
	"github.com/evanphx/corvid/internal/types"
	"github.com/evanphx/corvid/internal/util"
)

var out = message.NewPrinter(language.English)

// Capacity is the spec's fixed slot count, 2^20 (spec.md §4.E).
const Capacity = 1 << 20

const indexMask = Capacity - 1

// Table is the fixed-size transposition table. The zero value is not
// usable; construct with New.
type Table struct {
	log   *logging.Logger
	slots []Entry

	puts   uint64
	hits   uint64
	misses uint64
}

// New allocates a Table at the spec's fixed capacity.
func New() *Table {
	return &Table{
		log:   myLogging.GetLog(),
		slots: make([]Entry, Capacity),
	}
}

func index(hash tables.Key) uint64 {
	return uint64(hash) & indexMask
}

// Lookup returns the slot for hash and whether it is a hit: its packed
// word is non-zero and its key fragment matches the upper 24 bits of
// hash (spec.md §4.E). A 24-bit fragment gives roughly one false
// positive per 16M lookups; the search verifies the returned bound
// against its own window rather than trusting a hit blindly.
func (t *Table) Lookup(hash tables.Key) (Entry, bool) {
	e := t.slots[index(hash)]
	if e.word == 0 || e.keyFrag() != keyFragment(hash) {
		t.misses++
		return Entry{}, false
	}
	t.hits++
	return e, true
}

// Store writes depth/eval/kind/bestMove at hash's slot, overwriting
// whatever was there unconditionally (spec.md §4.E: "Policy: always
// replace").
func (t *Table) Store(hash tables.Key, depth int, eval types.Value, kind types.BoundKind, bestMove types.Move) {
	t.puts++
	t.slots[index(hash)] = Entry{
		word: packWord(keyFragment(hash), depth, kind),
		eval: clampEval(eval),
		move: packMove(bestMove),
	}
}

func clampEval(v types.Value) int16 {
	switch {
	case v > 32767:
		return 32767
	case v < -32768:
		return -32768
	default:
		return int16(v)
	}
}

// Clear zeroes every slot, used on FEN reload and new-game per spec.md §5.
func (t *Table) Clear() {
	t.log.Debug(util.MemStat())
	for i := range t.slots {
		t.slots[i] = Entry{}
	}
	t.puts, t.hits, t.misses = 0, 0, 0
}

// Hashfull returns how full the table looks in permill, sampling the
// first 1000 slots as the teacher's Hashfull approximates for UCI.
func (t *Table) Hashfull() int {
	used := 0
	n := util.Min(1000, len(t.slots))
	for i := 0; i < n; i++ {
		if t.slots[i].word != 0 {
			used++
		}
	}
	return used
}

// String reports usage statistics, grounded on the teacher's TtTable.String.
func (t *Table) String() string {
	return out.Sprintf("TT: capacity %d permill-full %d puts %d hits %d (%d%%) misses %d",
		Capacity, t.Hashfull(), t.puts, t.hits, (t.hits*100)/(1+t.hits+t.misses), t.misses)
}
