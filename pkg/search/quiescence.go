package search

import (
	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/eval"
)

// qsDepthLimit bounds how many plies quiescence search extends beyond the leaf that
// invoked it, per spec §4.12.
const qsDepthLimit = 8

// quiescence resolves captures and promotions at a leaf to avoid the horizon effect:
// stand-pat first, then only explore captures/promotions, ordered by MVV-LVA. Grounded
// on the teacher's runQuiescence.search (pkg/search/quiescence.go), rebuilt on
// board.Game/board.Score and bounded by qsDepthLimit instead of running until quiet.
func (r *run) quiescence(alpha, beta board.Score, qdepth int) board.Score {
	r.nodes++
	if r.nodes%1024 == 0 && r.stopped() {
		return alpha
	}
	if ply := r.g.Ply(); ply > r.selDepth {
		r.selDepth = ply
	}

	standPat := r.eval.Evaluate(r.g.Board())
	if standPat >= beta {
		return beta
	}
	if alpha < standPat {
		alpha = standPat
	}
	if qdepth >= qsDepthLimit {
		return alpha
	}

	var list board.MoveList
	r.g.GenerateLegalMoves(&list)

	b := r.g.Board()
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if !m.IsCapture() && !m.IsPromotion() {
			list.SetScore(i, -1)
			continue
		}
		mover, _ := b.PieceAt(m.From())
		victim := eval.PieceValue(m.Captured())
		attacker := eval.PieceValue(mover.Type)
		s := int32(10*victim - attacker)
		if m.IsPromotion() {
			s += promotionScore
			if m.Promotion() == board.Queen {
				s += queenPromoBonus
			}
		}
		list.SetScore(i, s)
	}

	for i := 0; i < list.Len(); i++ {
		m := list.SelectBest(i)
		if !m.IsCapture() && !m.IsPromotion() {
			break // remaining entries are the negatively-scored quiet moves
		}

		r.g.Make(m)
		score := -r.quiescence(-beta, -alpha, qdepth+1)
		r.g.Unmake()

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}
