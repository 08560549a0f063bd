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

package types

// PieceType is the 3-bit type part of a Piece code.
type PieceType int8

const (
	PtNone PieceType = 0
	Pawn   PieceType = 1
	Knight PieceType = 2
	Bishop PieceType = 3
	Rook   PieceType = 4
	Queen  PieceType = 5
	King   PieceType = 6

	PtLength = 7
)

func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "p"
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Rook:
		return "r"
	case Queen:
		return "q"
	case King:
		return "k"
	default:
		return "-"
	}
}

// Value returns the static material value for the piece type. King has no
// material value (its presence is mandatory, not counted).
func (pt PieceType) Value() Value {
	switch pt {
	case Pawn:
		return 100
	case Knight:
		return 320
	case Bishop:
		return 330
	case Rook:
		return 500
	case Queen:
		return 900
	default:
		return 0
	}
}

// StageWeight is the per-piece contribution to Position.msWeight (STAGE_W
// in spec.md §4.A): pawn 0, knight/bishop 6, rook 11, queen 18.
func (pt PieceType) StageWeight() int {
	switch pt {
	case Knight, Bishop:
		return 6
	case Rook:
		return 11
	case Queen:
		return 18
	default:
		return 0
	}
}

// Piece is the spec's 4-bit piece code: bit 3 is the side, bits 0-2 the
// type. Zero means empty.
type Piece int8

const PieceNone Piece = 0

const (
	WhitePawn Piece = Piece(Pawn)
	WhiteKnight Piece = Piece(Knight)
	WhiteBishop Piece = Piece(Bishop)
	WhiteRook Piece = Piece(Rook)
	WhiteQueen Piece = Piece(Queen)
	WhiteKing Piece = Piece(King)

	sideBase = Piece(1 << 3)

	BlackPawn   = WhitePawn + sideBase
	BlackKnight = WhiteKnight + sideBase
	BlackBishop = WhiteBishop + sideBase
	BlackRook   = WhiteRook + sideBase
	BlackQueen  = WhiteQueen + sideBase
	BlackKing   = WhiteKing + sideBase

	// PieceLength is the size of any [Piece]-indexed array; piece codes
	// run 0..15 even though only 13 are ever populated (no "pawn-less"
	// gaps, but codes 7, 8 and 15 are unused bit patterns).
	PieceLength = 16
)

// MakePiece builds a piece code by adding the type to the side's base, per
// spec.md §3.
func MakePiece(c Color, pt PieceType) Piece {
	if c == Black {
		return Piece(pt) + sideBase
	}
	return Piece(pt)
}

// ColorOf recovers the side from a piece code: code >> 3.
func (p Piece) ColorOf() Color {
	return Color(p >> 3)
}

// TypeOf recovers the 3-bit type from a piece code.
func (p Piece) TypeOf() PieceType {
	return PieceType(p & 0b0111)
}

// Char returns the FEN character for the piece: uppercase for White,
// lowercase for Black, "." for an empty square.
func (p Piece) Char() string {
	if p == PieceNone {
		return "."
	}
	s := p.TypeOf().String()
	if p.ColorOf() == White {
		return string(s[0] - 'a' + 'A')
	}
	return s
}

// PieceFromChar parses a single FEN piece letter, returning PieceNone for
// any character that isn't a recognized piece letter.
func PieceFromChar(c byte) Piece {
	var color Color
	if c >= 'a' && c <= 'z' {
		color = Black
	} else if c >= 'A' && c <= 'Z' {
		color = White
		c = c - 'A' + 'a'
	} else {
		return PieceNone
	}
	var pt PieceType
	switch c {
	case 'p':
		pt = Pawn
	case 'n':
		pt = Knight
	case 'b':
		pt = Bishop
	case 'r':
		pt = Rook
	case 'q':
		pt = Queen
	case 'k':
		pt = King
	default:
		return PieceNone
	}
	return MakePiece(color, pt)
}

func (p Piece) String() string {
	return p.Char()
}
