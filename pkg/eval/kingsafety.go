package eval

import "github.com/corvidchess/corvid/pkg/board"

const (
	pawnShieldBonus  board.Score = 10
	semiOpenPenalty  board.Score = -15
	openFilePenalty  board.Score = -25
)

// shieldZone returns the two ranks directly ahead of the king, on the king's file and
// its neighbors -- the squares friendly pawns should occupy to shelter the king.
func shieldZone(c Color, kingSq board.Square) board.Bitboard {
	files := board.BitFile(kingSq.File()) | adjacentFileMask(kingSq)

	var ranks board.Bitboard
	r := int(kingSq.Rank())
	if c == board.White {
		for _, dr := range [2]int{1, 2} {
			if r+dr <= int(board.Rank8) {
				ranks |= board.BitRank(board.Rank(r + dr))
			}
		}
	} else {
		for _, dr := range [2]int{1, 2} {
			if r-dr >= int(board.Rank1) {
				ranks |= board.BitRank(board.Rank(r - dr))
			}
		}
	}
	return files & ranks
}

// KingSafety scores pawn shelter around each king and penalizes semi-open and open
// files near it, blended by the phase: the full score at TaperedMax, tapering linearly
// to half the score at phase 0. The term is not reduced to zero in the endgame.
func KingSafety(b *board.Board, taperedPhase int) board.Score {
	var score board.Score
	for _, c := range [2]Color{board.White, board.Black} {
		unit := board.Score(1)
		if c == board.Black {
			unit = -1
		}

		kingSq := b.KingSquare(c)
		shield := shieldZone(c, kingSq)
		ownPawns := b.Pieces(c, board.Pawn)
		oppPawns := b.Pieces(c.Opponent(), board.Pawn)

		score += unit * pawnShieldBonus * board.Score((shield&ownPawns).PopCount())

		kingFiles := board.BitFile(kingSq.File()) | adjacentFileMask(kingSq)
		for file := board.ZeroFile; file < board.NumFiles; file++ {
			fileMask := board.BitFile(file)
			if fileMask&kingFiles == board.EmptyBitboard {
				continue
			}
			hasOwn := fileMask&ownPawns != board.EmptyBitboard
			hasOpp := fileMask&oppPawns != board.EmptyBitboard
			switch {
			case !hasOwn && !hasOpp:
				score += unit * openFilePenalty
			case !hasOwn:
				score += unit * semiOpenPenalty
			}
		}
	}
	return Taper(score, score/2, taperedPhase)
}
