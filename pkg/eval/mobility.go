package eval

import "github.com/corvidchess/corvid/pkg/board"

func mobilityWeight(t board.PieceType) board.Score {
	switch t {
	case board.Knight:
		return 4
	case board.Bishop:
		return 5
	case board.Rook:
		return 2
	case board.Queen:
		return 1
	default:
		return 0
	}
}

// Mobility scores, for each knight/bishop/rook/queen, the count of squares it attacks
// that aren't occupied by a friendly piece, weighted by piece type. White minus Black.
func Mobility(b *board.Board) board.Score {
	occ := b.AllOccupancy()

	var score board.Score
	for _, c := range [2]Color{board.White, board.Black} {
		unit := board.Score(1)
		if c == board.Black {
			unit = -1
		}
		own := b.Occupancy(c)

		for t := board.Knight; t <= board.Queen; t++ {
			pieces := b.Pieces(c, t)
			for pieces != board.EmptyBitboard {
				var sq board.Square
				sq, pieces = pieces.PopLSB()
				destinations := board.Attackboard(t, sq, occ) &^ own
				score += unit * mobilityWeight(t) * board.Score(destinations.PopCount())
			}
		}
	}
	return score
}
