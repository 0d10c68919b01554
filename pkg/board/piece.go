package board

import "strings"

// PieceType represents a chess piece kind (King, Pawn, etc), with no color. 3 bits.
type PieceType uint8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// NumPieceTypes is the number of real (non-empty) piece types.
const NumPieceTypes = 6

func ParsePieceType(r rune) (PieceType, bool) {
	switch r {
	case 'p', 'P':
		return Pawn, true
	case 'n', 'N':
		return Knight, true
	case 'b', 'B':
		return Bishop, true
	case 'r', 'R':
		return Rook, true
	case 'q', 'Q':
		return Queen, true
	case 'k', 'K':
		return King, true
	default:
		return NoPieceType, false
	}
}

func (p PieceType) IsValid() bool {
	return Pawn <= p && p <= King
}

func (p PieceType) String() string {
	switch p {
	case NoPieceType:
		return " "
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
		return "?"
	}
}

// Piece is a (PieceType, Color) pair with a lossless FEN character mapping.
type Piece struct {
	Type  PieceType
	Color Color
}

func NewPiece(t PieceType, c Color) Piece {
	return Piece{Type: t, Color: c}
}

// ParsePiece maps a FEN piece character (uppercase White, lowercase Black) to a Piece.
func ParsePiece(r rune) (Piece, bool) {
	t, ok := ParsePieceType(r)
	if !ok {
		return Piece{}, false
	}
	c := White
	if r >= 'a' && r <= 'z' {
		c = Black
	}
	return Piece{Type: t, Color: c}, true
}

// String renders the FEN piece character: uppercase for White, lowercase for Black.
func (p Piece) String() string {
	s := p.Type.String()
	if p.Color == White {
		return strings.ToUpper(s)
	}
	return s
}
