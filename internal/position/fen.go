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

package position

import (
	"strconv"
	"strings"

	"github.com/evanphx/corvid/internal/types"
)

var validFenPiecePattern = "0123456789pPnNbBrRqQkK/"

// loadFen parses the six standard FEN fields into a freshly cleared
// Position. Castling rights that are syntactically present but
// geometrically impossible (no king/rook on the expected home squares)
// are silently dropped rather than rejected, per spec.md §4.B.
func (p *Position) loadFen(fen string) error {
	fen = strings.TrimSpace(fen)
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return invalidFen("too few fields", fen)
	}

	p.clearBoard()

	if err := p.setupPieces(fields[0], fen); err != nil {
		return err
	}

	switch fields[1] {
	case "w":
		p.ply = 0
	case "b":
		p.ply = 1
	default:
		return invalidFen("bad side to move", fen)
	}
	if p.stm() == types.Black {
		p.toggleSideKey()
	}

	if err := p.setupCastling(fields[2], fen); err != nil {
		return err
	}

	if err := p.setupEnPassant(fields[3], fen); err != nil {
		return err
	}

	hmcr := 0
	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return invalidFen("bad halfmove clock", fen)
		}
		hmcr = n
	}
	p.hmcr = hmcr

	fullmove := 1
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return invalidFen("bad fullmove number", fen)
		}
		fullmove = n
	}
	p.ply += (fullmove - 1) * 2

	p.hist = append(p.hist, undoRecord{
		zobrist:  p.zobrist,
		epSquare: p.epSquare,
		hmcr:     p.hmcr,
	})

	return nil
}

func (p *Position) setupPieces(ranks, fen string) error {
	for _, r := range ranks {
		if !strings.ContainsRune(validFenPiecePattern, r) {
			return invalidFen("bad piece character", fen)
		}
	}

	rows := strings.Split(ranks, "/")
	if len(rows) != 8 {
		return invalidFen("rank total != 8", fen)
	}

	whiteKings, blackKings := 0, 0
	for i, row := range rows {
		rank := 7 - i
		file := 0
		for _, ch := range row {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			if file > 7 {
				return invalidFen("rank overflow", fen)
			}
			pc := types.PieceFromChar(byte(ch))
			if pc == types.PieceNone {
				return invalidFen("bad piece character", fen)
			}
			sq := types.SquareOf(file, rank)
			p.putPiece(pc, sq)
			if pc.TypeOf() == types.King {
				if pc.ColorOf() == types.White {
					whiteKings++
				} else {
					blackKings++
				}
			}
			file++
		}
		if file != 8 {
			return invalidFen("rank does not total 8 files", fen)
		}
	}
	if whiteKings != 1 || blackKings != 1 {
		return invalidFen("must have exactly one king per side", fen)
	}
	return nil
}

func (p *Position) setupCastling(field, fen string) error {
	if field != "-" {
		for _, ch := range field {
			if !strings.ContainsRune("KQkq", ch) {
				return invalidFen("bad castling rights character", fen)
			}
		}
	}
	// Fold in the zobrist key for every right that is both requested and
	// geometrically possible; anything else is silently dropped, recorded
	// as lost at ply 0.
	grant := func(c types.Color, side types.CastlingSide, letter rune) {
		if strings.ContainsRune(field, letter) && p.canCastle(c, side) {
			p.toggleCastleKey(c, side)
		} else {
			p.castleLostAt[c][side] = 0
		}
	}
	grant(types.White, types.KingSide, 'K')
	grant(types.White, types.QueenSide, 'Q')
	grant(types.Black, types.KingSide, 'k')
	grant(types.Black, types.QueenSide, 'q')
	return nil
}

// canCastle checks the geometric precondition for a castling right: king
// and rook both on their home squares.
func (p *Position) canCastle(c types.Color, side types.CastlingSide) bool {
	kingHome := types.SqE1
	rookHome := types.SqH1
	if side == types.QueenSide {
		rookHome = types.SqA1
	}
	if c == types.Black {
		kingHome += 56
		rookHome += 56
	}
	return p.board[kingHome] == types.MakePiece(c, types.King) &&
		p.board[rookHome] == types.MakePiece(c, types.Rook)
}

func (p *Position) setupEnPassant(field, fen string) error {
	if field == "-" {
		p.epSquare = types.SqNone
		return nil
	}
	sq, ok := types.SquareFromString(field)
	if !ok {
		return invalidFen("bad en passant square", fen)
	}
	p.epSquare = sq
	p.toggleEpKey(sq)
	return nil
}

// Fen renders the canonical six-field FEN for the current position.
func (p *Position) Fen() string {
	var b strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			pc := p.board[types.SquareOf(file, rank)]
			if pc == types.PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteString(pc.Char())
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			b.WriteByte('/')
		}
	}

	b.WriteByte(' ')
	b.WriteString(p.stm().String())

	b.WriteByte(' ')
	castling := ""
	if p.HasCastlingRight(types.White, types.KingSide) {
		castling += "K"
	}
	if p.HasCastlingRight(types.White, types.QueenSide) {
		castling += "Q"
	}
	if p.HasCastlingRight(types.Black, types.KingSide) {
		castling += "k"
	}
	if p.HasCastlingRight(types.Black, types.QueenSide) {
		castling += "q"
	}
	if castling == "" {
		castling = "-"
	}
	b.WriteString(castling)

	b.WriteByte(' ')
	b.WriteString(p.epSquare.String())

	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(p.hmcr))

	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(p.ply/2 + 1))

	return b.String()
}
