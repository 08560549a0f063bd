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

// Package evaluator wraps Position's incrementally maintained material and
// piece-square accumulators into the blended static score the search
// driver calls at every node. No mobility, king-safety or pawn-structure
// terms are computed here: the accumulators Position already maintains on
// every make/unmake are the entire evaluation (SPEC_FULL §4.D).
package evaluator

import (
	"strings"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/evanphx/corvid/internal/logging"
	"github.com/evanphx/corvid/internal/position"
	"github.com/evanphx/corvid/internal/types"
)

var out = message.NewPrinter(language.English)

// Evaluator applies the tapered material/piece-square blend to a Position.
// It holds no per-evaluation state of its own; everything it reads is
// already maintained incrementally by Position's make/unmake.
type Evaluator struct {
	log *logging.Logger
}

// NewEvaluator creates an Evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{log: myLogging.GetLog()}
}

// Evaluate returns the static evaluation from the side-to-move's
// perspective: insufficient material is a hard draw, otherwise it is
// Position's own tapered blend flipped to the mover's sign.
func (e *Evaluator) Evaluate(pos *position.Position) types.Value {
	if pos.IsDrawMaterial() {
		return 0
	}
	return pos.Evaluate() * types.Value(pos.SideToMove())
}

// Report renders a human-readable breakdown for debugging sessions, grounded on the teacher's Evaluator.Report.
func (e *Evaluator) Report(pos *position.Position) string {
	var report strings.Builder
	report.WriteString("Evaluation Report\n")
	report.WriteString("=============================================\n")
	report.WriteString(out.Sprintf("Position: %s\n", pos.Fen()))
	report.WriteString(pos.StringBoard())
	report.WriteString(out.Sprintf("MsWeight (tapering)  : %d/128\n", pos.MsWeight()))
	report.WriteString(out.Sprintf("Eval early           : %d\n", pos.EvalEarly()))
	report.WriteString(out.Sprintf("Eval end             : %d\n", pos.EvalEnd()))
	report.WriteString(out.Sprintf("Eval value (mover's view): %d\n", e.Evaluate(pos)))
	return report.String()
}
