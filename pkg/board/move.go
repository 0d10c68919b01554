package board

import "fmt"

// MoveKind tags the semantics of a Move beyond its endpoints.
type MoveKind uint8

const (
	Quiet MoveKind = iota
	DoublePawnPush
	KingsideCastle
	QueensideCastle
	Capture
	EnPassant
	Promotion
	CapturePromotion
)

func (k MoveKind) String() string {
	switch k {
	case Quiet:
		return "quiet"
	case DoublePawnPush:
		return "double-push"
	case KingsideCastle:
		return "O-O"
	case QueensideCastle:
		return "O-O-O"
	case Capture:
		return "capture"
	case EnPassant:
		return "en-passant"
	case Promotion:
		return "promotion"
	case CapturePromotion:
		return "capture-promotion"
	default:
		return "?"
	}
}

// IsCapture reports whether the move removes an opponent piece from the board, either
// directly or via en passant.
func (k MoveKind) IsCapture() bool {
	return k == Capture || k == EnPassant || k == CapturePromotion
}

// IsPromotion reports whether the move promotes a pawn.
func (k MoveKind) IsPromotion() bool {
	return k == Promotion || k == CapturePromotion
}

// IsCastle reports whether the move is a castling move.
func (k MoveKind) IsCastle() bool {
	return k == KingsideCastle || k == QueensideCastle
}

// Move is a packed 32-bit move: from (6 bits), to (6 bits), kind (4 bits), captured piece
// type (4 bits, NoPieceType if none), promotion piece type (3 bits, NoPieceType if none).
// A packed word rather than a tagged record is used so that move lists and the
// transposition table's best-move field are cheap to copy and compare; every public
// accessor below is a pure function of the packed bits.
type Move uint32

const (
	moveToShift        = 0
	moveFromShift      = 6
	moveKindShift      = 12
	moveCapturedShift  = 16
	movePromotionShift = 20

	moveSquareMask = 0x3f
	moveKindMask   = 0xf
	movePieceMask  = 0xf
)

// NoMove is the zero value, used as a sentinel for "no move" (e.g. an empty TT entry).
const NoMove Move = 0

func NewMove(from, to Square, kind MoveKind, captured, promotion PieceType) Move {
	return Move(uint32(to&moveSquareMask)<<moveToShift |
		uint32(from&moveSquareMask)<<moveFromShift |
		uint32(kind&moveKindMask)<<moveKindShift |
		uint32(captured&movePieceMask)<<moveCapturedShift |
		uint32(promotion&movePieceMask)<<movePromotionShift)
}

func (m Move) To() Square {
	return Square(m>>moveToShift) & moveSquareMask
}

func (m Move) From() Square {
	return Square(m>>moveFromShift) & moveSquareMask
}

func (m Move) Kind() MoveKind {
	return MoveKind(m>>moveKindShift) & moveKindMask
}

func (m Move) Captured() PieceType {
	return PieceType(m>>moveCapturedShift) & movePieceMask
}

func (m Move) Promotion() PieceType {
	return PieceType(m>>movePromotionShift) & movePieceMask
}

func (m Move) IsCapture() bool {
	return m.Kind().IsCapture()
}

func (m Move) IsPromotion() bool {
	return m.Kind().IsPromotion()
}

func (m Move) IsQuiet() bool {
	return !m.IsCapture() && !m.IsPromotion()
}

func (m Move) IsZero() bool {
	return m == NoMove
}

// ToUCI renders the move in UCI long-algebraic form, e.g. "e2e4", "e7e8q".
func (m Move) ToUCI() string {
	if m.IsPromotion() {
		return fmt.Sprintf("%v%v%v", m.From(), m.To(), promotionUCIChar(m.Promotion()))
	}
	return fmt.Sprintf("%v%v", m.From(), m.To())
}

func (m Move) String() string {
	return m.ToUCI()
}

func promotionUCIChar(t PieceType) string {
	switch t {
	case Queen:
		return "q"
	case Rook:
		return "r"
	case Bishop:
		return "b"
	case Knight:
		return "n"
	default:
		return ""
	}
}

// ParsePromotionChar maps a UCI promotion suffix character to a piece type. A missing
// suffix is handled by the caller: engine.Engine.Move treats a promotion without a suffix
// as a queen promotion.
func ParsePromotionChar(r rune) (PieceType, bool) {
	switch r {
	case 'q', 'Q':
		return Queen, true
	case 'r', 'R':
		return Rook, true
	case 'b', 'B':
		return Bishop, true
	case 'n', 'N':
		return Knight, true
	default:
		return NoPieceType, false
	}
}

// ParseUCIMove parses a long-algebraic UCI move token ("e2e4", "e7e8q") into its
// endpoints and an optional promotion piece. It does not know the board, so it cannot
// determine move kind (capture, castle, en passant); callers match the result against a
// generated legal-move list by (from, to, promotion) to recover the full Move.
func ParseUCIMove(s string) (from, to Square, promotion PieceType, err error) {
	if len(s) < 4 || len(s) > 5 {
		return 0, 0, 0, fmt.Errorf("invalid UCI move: %q", s)
	}
	r := []rune(s)
	from, err = ParseSquare(r[0], r[1])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid UCI move %q: %w", s, err)
	}
	to, err = ParseSquare(r[2], r[3])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid UCI move %q: %w", s, err)
	}
	if len(r) == 5 {
		p, ok := ParsePromotionChar(r[4])
		if !ok {
			return 0, 0, 0, fmt.Errorf("invalid UCI move %q: bad promotion suffix", s)
		}
		return from, to, p, nil
	}
	return from, to, NoPieceType, nil
}
