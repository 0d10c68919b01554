package eval

import "github.com/corvidchess/corvid/pkg/board"

const (
	centerPawnBonus   board.Score = 15
	centerRingBonus   board.Score = 5
	centerAttackBonus board.Score = 2
)

var centerFour = board.BitMask(board.D4) | board.BitMask(board.E4) | board.BitMask(board.D5) | board.BitMask(board.E5)

var centerRing = board.BitMask(board.C3) | board.BitMask(board.D3) | board.BitMask(board.E3) | board.BitMask(board.F3) |
	board.BitMask(board.C4) | board.BitMask(board.F4) |
	board.BitMask(board.C5) | board.BitMask(board.F5) |
	board.BitMask(board.C6) | board.BitMask(board.D6) | board.BitMask(board.E6) | board.BitMask(board.F6)

// CenterControl scores pawn occupation of the central four squares and the ring around
// them, plus a small bonus for every piece attacking one of the central four squares.
// White minus Black.
func CenterControl(b *board.Board) board.Score {
	occ := b.AllOccupancy()

	var score board.Score
	for _, c := range [2]Color{board.White, board.Black} {
		unit := board.Score(1)
		if c == board.Black {
			unit = -1
		}

		pawns := b.Pieces(c, board.Pawn)
		score += unit * centerPawnBonus * board.Score((pawns & centerFour).PopCount())
		score += unit * centerRingBonus * board.Score((pawns & centerRing).PopCount())

		for t := board.Knight; t <= board.Queen; t++ {
			pieces := b.Pieces(c, t)
			for pieces != board.EmptyBitboard {
				var sq board.Square
				sq, pieces = pieces.PopLSB()
				if board.Attackboard(t, sq, occ)&centerFour != board.EmptyBitboard {
					score += unit * centerAttackBonus
				}
			}
		}
	}
	return score
}
