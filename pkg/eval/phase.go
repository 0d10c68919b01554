package eval

import "github.com/corvidchess/corvid/pkg/board"

// MaxPhase is the game-phase value with every minor and major piece still on the board:
// knight and bishop weigh 1 each, rook 2, queen 4 -- 4*1 + 4*1 + 4*2 + 2*4 = 24.
const MaxPhase = 24

// TaperedMax is the top of the tapered-phase scale [0, 256], where 256 means the middlegame weights
// apply fully and 0 means the endgame weights apply fully.
const TaperedMax = 256

func pieceWeight(t board.PieceType) int {
	switch t {
	case board.Knight, board.Bishop:
		return 1
	case board.Rook:
		return 2
	case board.Queen:
		return 4
	default:
		return 0
	}
}

// Phase returns the raw game-phase value [0, MaxPhase] for b, counting every
// knight/bishop/rook/queen still on the board for either color.
func Phase(b *board.Board) int {
	phase := 0
	for _, c := range [2]board.Color{board.White, board.Black} {
		for t := board.Knight; t <= board.Queen; t++ {
			phase += b.Pieces(c, t).PopCount() * pieceWeight(t)
		}
	}
	if phase > MaxPhase {
		phase = MaxPhase
	}
	return phase
}

// TaperedPhase rescales Phase to [0, TaperedMax], used directly as the blend weight
// between middlegame and endgame component scores.
func TaperedPhase(b *board.Board) int {
	return Phase(b) * TaperedMax / MaxPhase
}

// Taper blends a middlegame and an endgame score by the tapered phase: taperedPhase=256
// returns mg in full, 0 returns eg in full.
func Taper(mg, eg board.Score, taperedPhase int) board.Score {
	return (mg*board.Score(taperedPhase) + eg*board.Score(TaperedMax-taperedPhase)) / TaperedMax
}
