package eval

import "github.com/corvidchess/corvid/pkg/board"

// PieceValue is the static material value of a piece type, in centipawns. The king has
// no material value: it is never captured and never traded.
func PieceValue(t board.PieceType) board.Score {
	switch t {
	case board.Pawn:
		return 100
	case board.Knight:
		return 320
	case board.Bishop:
		return 330
	case board.Rook:
		return 500
	case board.Queen:
		return 900
	default:
		return 0
	}
}

// Material returns the White-minus-Black material balance of b, in centipawns.
func Material(b *board.Board) board.Score {
	var score board.Score
	for t := board.Pawn; t <= board.Queen; t++ {
		diff := b.Pieces(board.White, t).PopCount() - b.Pieces(board.Black, t).PopCount()
		score += board.Score(diff) * PieceValue(t)
	}
	return score
}
