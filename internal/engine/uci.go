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
	"regexp"
	"strings"

	"github.com/evanphx/corvid/internal/types"
)

// regexUciMove matches the wire move format of spec.md §6: from-square,
// to-square, optional promotion letter in {n,b,r,q}, grounded on the
// teacher's movegen.GetMoveFromUci pattern.
var regexUciMove = regexp.MustCompile(`^([a-h][1-8])([a-h][1-8])([nbrqNBRQ])?$`)

func parseUciMove(uci string) (from, to types.Square, promo types.PieceType, ok bool) {
	matches := regexUciMove.FindStringSubmatch(uci)
	if matches == nil {
		return types.SqNone, types.SqNone, types.PtNone, false
	}
	from, okFrom := types.SquareFromString(matches[1])
	to, okTo := types.SquareFromString(matches[2])
	if !okFrom || !okTo {
		return types.SqNone, types.SqNone, types.PtNone, false
	}
	promo = types.PtNone
	if matches[3] != "" {
		switch strings.ToLower(matches[3]) {
		case "n":
			promo = types.Knight
		case "b":
			promo = types.Bishop
		case "r":
			promo = types.Rook
		case "q":
			promo = types.Queen
		}
	}
	return from, to, promo, true
}
