package eval

import "github.com/corvidchess/corvid/pkg/board"

const (
	doubledPawnPenalty  board.Score = -10
	isolatedPawnPenalty board.Score = -15
	passedPawnBase      board.Score = 10
	connectedPassedBonus board.Score = 15
)

type Color = board.Color

func ranksUpTo(r board.Rank) board.Bitboard {
	var mask board.Bitboard
	for i := board.ZeroRank; i <= r; i++ {
		mask |= board.BitRank(i)
	}
	return mask
}

func ranksFrom(r board.Rank) board.Bitboard {
	var mask board.Bitboard
	for i := r; i < board.NumRanks; i++ {
		mask |= board.BitRank(i)
	}
	return mask
}

// passedPawnMask returns the squares on sq's file and the two adjacent files, forward of
// sq from c's perspective -- the zone that must be free of opposing pawns for sq to
// count as passed.
func passedPawnMask(c Color, sq board.Square) board.Bitboard {
	files := board.BitFile(sq.File())
	if f := sq.File(); f > board.FileA {
		files |= board.BitFile(f - 1)
	}
	if f := sq.File(); f < board.FileH {
		files |= board.BitFile(f + 1)
	}
	if c == board.White {
		return files &^ ranksUpTo(sq.Rank())
	}
	return files &^ ranksFrom(sq.Rank())
}

// adjacentFileMask returns the files immediately left and right of sq's file.
func adjacentFileMask(sq board.Square) board.Bitboard {
	var mask board.Bitboard
	if f := sq.File(); f > board.FileA {
		mask |= board.BitFile(f - 1)
	}
	if f := sq.File(); f < board.FileH {
		mask |= board.BitFile(f + 1)
	}
	return mask
}

// rankDistance returns how many ranks sq has advanced from c's own back rank.
func rankDistance(c Color, sq board.Square) int {
	if c == board.White {
		return int(sq.Rank())
	}
	return int(board.Rank7 - sq.Rank() + 1)
}

// PawnStructure scores doubled, isolated, passed, and connected-passed pawns for b,
// White minus Black.
func PawnStructure(b *board.Board) board.Score {
	var score board.Score
	for _, c := range [2]Color{board.White, board.Black} {
		unit := board.Score(1)
		if c == board.Black {
			unit = -1
		}

		pawns := b.Pieces(c, board.Pawn)
		oppPawns := b.Pieces(c.Opponent(), board.Pawn)

		for file := board.ZeroFile; file < board.NumFiles; file++ {
			onFile := pawns & board.BitFile(file)
			if onFile.PopCount() > 1 {
				score += unit * doubledPawnPenalty * board.Score(onFile.PopCount()-1)
			}
		}

		passed := board.EmptyBitboard
		remaining := pawns
		for remaining != board.EmptyBitboard {
			var sq board.Square
			sq, remaining = remaining.PopLSB()

			if adjacentFileMask(sq)&pawns == board.EmptyBitboard {
				score += unit * isolatedPawnPenalty
			}

			if passedPawnMask(c, sq)&oppPawns == board.EmptyBitboard {
				score += unit * passedPawnBase * board.Score(rankDistance(c, sq))
				passed |= board.BitMask(sq)
			}
		}

		remaining = passed
		for remaining != board.EmptyBitboard {
			var sq board.Square
			sq, remaining = remaining.PopLSB()
			if adjacentFileMask(sq)&passed != board.EmptyBitboard {
				score += unit * connectedPassedBonus
			}
		}
	}
	return score
}
