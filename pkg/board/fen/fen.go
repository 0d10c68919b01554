// Package fen reads and writes chess positions in Forsyth-Edwards Notation.
package fen

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/corvidchess/corvid/pkg/board"
)

// Initial is the FEN of the standard starting position.
const Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Decode parses a six-field FEN record into a Board, which records the side to move.
//
// Example: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
func Decode(fen string) (*board.Board, error) {
	parts := strings.Fields(strings.TrimSpace(fen))
	if len(parts) != 6 {
		return nil, fmt.Errorf("invalid number of sections in FEN: %q", fen)
	}

	placements, err := decodePlacement(parts[0])
	if err != nil {
		return nil, fmt.Errorf("invalid FEN %q: %w", fen, err)
	}

	turn, ok := parseColor(parts[1])
	if !ok {
		return nil, fmt.Errorf("invalid active color in FEN: %q", fen)
	}

	castling, ok := parseCastling(parts[2])
	if !ok {
		return nil, fmt.Errorf("invalid castling in FEN: %q", fen)
	}

	var ep board.Square
	hasEP := false
	if parts[3] != "-" {
		sq, err := board.ParseSquareStr(parts[3])
		if err != nil {
			return nil, fmt.Errorf("invalid en passant in FEN %q: %w", fen, err)
		}
		ep, hasEP = sq, true
	}

	halfmove, err := strconv.Atoi(parts[4])
	if err != nil || halfmove < 0 {
		return nil, fmt.Errorf("invalid halfmove clock in FEN: %q", fen)
	}

	fullmove, err := strconv.Atoi(parts[5])
	if err != nil || fullmove < 1 {
		return nil, fmt.Errorf("invalid fullmove number in FEN: %q", fen)
	}

	b, err := board.NewBoard(placements, turn, castling, ep, hasEP, halfmove, fullmove)
	if err != nil {
		return nil, fmt.Errorf("invalid FEN %q: %w", fen, err)
	}
	return b, nil
}

// decodePlacement parses the first FEN field, rank 8 down to rank 1, file a through h
// within each rank.
func decodePlacement(field string) ([]board.Placement, error) {
	ranks := strings.Split(field, "/")
	if len(ranks) != int(board.NumRanks) {
		return nil, fmt.Errorf("invalid number of ranks: %q", field)
	}

	var placements []board.Placement
	for i, rankStr := range ranks {
		r := board.Rank8 - board.Rank(i)
		f := board.FileA
		for _, ch := range rankStr {
			switch {
			case unicode.IsDigit(ch):
				f += board.File(ch - '0')
			case unicode.IsLetter(ch):
				p, ok := board.ParsePiece(ch)
				if !ok {
					return nil, fmt.Errorf("invalid piece %q", ch)
				}
				if !f.IsValid() {
					return nil, fmt.Errorf("rank overflow: %q", rankStr)
				}
				placements = append(placements, board.Placement{Square: board.NewSquare(f, r), Piece: p})
				f++
			default:
				return nil, fmt.Errorf("invalid character %q", ch)
			}
		}
		if f != board.NumFiles {
			return nil, fmt.Errorf("invalid number of squares in rank: %q", rankStr)
		}
	}
	return placements, nil
}

// Encode renders b and the active color as a FEN record.
func Encode(b *board.Board, turn board.Color) string {
	var sb strings.Builder
	for r := board.Rank8; ; r-- {
		blanks := 0
		for f := board.ZeroFile; f < board.NumFiles; f++ {
			p, ok := b.PieceAt(board.NewSquare(f, r))
			if !ok {
				blanks++
				continue
			}
			if blanks > 0 {
				sb.WriteString(strconv.Itoa(blanks))
				blanks = 0
			}
			sb.WriteString(p.String())
		}
		if blanks > 0 {
			sb.WriteString(strconv.Itoa(blanks))
		}
		if r == board.Rank1 {
			break
		}
		sb.WriteRune('/')
	}

	ep := "-"
	if sq, ok := b.EnPassant(); ok {
		ep = sq.String()
	}

	return fmt.Sprintf("%v %v %v %v %v %v", sb.String(), turn, b.Castling(), ep, b.HalfmoveClock(), b.FullmoveNumber())
}

func parseCastling(str string) (board.Castling, bool) {
	if str == "-" {
		return board.NoCastling, true
	}

	var c board.Castling
	for _, r := range str {
		switch r {
		case 'K':
			c |= board.WhiteKingSideCastle
		case 'Q':
			c |= board.WhiteQueenSideCastle
		case 'k':
			c |= board.BlackKingSideCastle
		case 'q':
			c |= board.BlackQueenSideCastle
		default:
			return 0, false
		}
	}
	return c, true
}

func parseColor(str string) (board.Color, bool) {
	switch str {
	case "w", "W":
		return board.White, true
	case "b", "B":
		return board.Black, true
	default:
		return 0, false
	}
}
