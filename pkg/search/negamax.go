package search

import (
	"context"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// nullMoveReduction (R) is the depth reduction applied to the verification search after
// a null move, per spec §4.7 step 4.
const nullMoveReduction = 3

// lmrThreshold is the move-count, per spec §4.7 step 7, after which quiet late moves at
// depth >= 3 are first searched at a reduced depth.
const lmrThreshold = 4

// run holds all per-search mutable state: the game being searched (mutated in place via
// Make/Unmake, restored before returning), the transposition table, move-ordering
// tables, node accounting and the cooperative stop signal. One run is used for an entire
// iterative-deepening session so killers/history/TT persist and improve across depths,
// per the teacher's single long-lived runAlphaBeta idiom generalized to an explicit
// struct shared by negamax and quiescence. ctx is cancelled by Searcher.process via
// contextx.WithQuitCancel once Handle.Halt is called, exactly as the teacher's
// runAlphaBeta.search checks contextx.IsCancelled rather than polling a flag directly.
type run struct {
	ctx  context.Context
	g    *board.Game
	eval eval.Evaluator
	tt   TranspositionTable
	age  uint16

	order orderingState

	nodes    uint64
	selDepth int

	nodeLimit uint64
}

func (r *run) stopped() bool {
	if contextx.IsCancelled(r.ctx) {
		return true
	}
	if r.nodeLimit > 0 && r.nodes >= r.nodeLimit {
		return true
	}
	return false
}

// negamax implements alpha-beta search with null-move pruning, late-move reductions,
// transposition-table cutoffs and move ordering, following the step sequence in spec
// §4.7 exactly. Scores are always from the perspective of the side to move at this
// node (negamax convention): a child's score is negated before being compared at the
// parent. Grounded on the teacher's runAlphaBeta.search (pkg/search/alphabeta.go).
func (r *run) negamax(depth int, alpha, beta board.Score, canNullMove bool) board.Score {
	ply := r.g.Ply()

	r.nodes++
	if ply >= MaxPly {
		return r.eval.Evaluate(r.g.Board())
	}
	if r.nodes%1024 == 0 && r.stopped() {
		return alpha
	}

	if depth <= 0 {
		return r.quiescence(alpha, beta, 0)
	}

	hash := r.g.Hash()
	ttMove := board.NoMove
	if e, ok := r.tt.Read(hash); ok {
		ttMove = e.Move
		if e.Depth >= depth {
			switch e.Bound {
			case ExactBound:
				return e.Score
			case LowerBound:
				if e.Score >= beta {
					return e.Score
				}
			case UpperBound:
				if e.Score <= alpha {
					return e.Score
				}
			}
		}
	}

	b := r.g.Board()
	inCheck := b.InCheck(b.Turn())

	if canNullMove && !inCheck && depth > nullMoveReduction+1 && hasNonPawnMaterial(b, b.Turn()) {
		r.g.MakeNull()
		score := -r.negamax(depth-1-nullMoveReduction, -beta, -beta+1, false)
		r.g.UnmakeNull()
		if score >= beta {
			return beta
		}
	}

	var list board.MoveList
	r.g.GenerateLegalMoves(&list)
	if list.Len() == 0 {
		if inCheck {
			return -board.MateScore + board.Score(ply)
		}
		return 0
	}

	scoreMoves(b, &list, &r.order, ttMove, ply, depth)

	side := b.Turn()
	origAlpha := alpha
	var best board.Move

	for i := 0; i < list.Len(); i++ {
		m := list.SelectBest(i)

		r.g.Make(m)

		var score board.Score
		if i >= lmrThreshold && depth >= 3 && m.IsQuiet() && !inCheck && !r.g.Board().InCheck(side.Opponent()) {
			score = -r.negamax(depth-2, -alpha-1, -alpha, true)
			if score > alpha {
				score = -r.negamax(depth-1, -beta, -alpha, true)
			}
		} else {
			score = -r.negamax(depth-1, -beta, -alpha, true)
		}

		r.g.Unmake()

		if r.stopped() {
			return alpha
		}

		if score > alpha {
			alpha = score
			best = m
		}
		if alpha >= beta {
			r.order.recordCutoff(side, m, ply, depth)
			r.tt.Write(hash, Entry{Bound: LowerBound, Depth: depth, Score: alpha, Move: m}, r.age)
			return beta
		}
	}

	bound := UpperBound
	if alpha > origAlpha {
		bound = ExactBound
	}
	r.tt.Write(hash, Entry{Bound: bound, Depth: depth, Score: alpha, Move: best}, r.age)
	return alpha
}

// hasNonPawnMaterial reports whether c has at least one knight, bishop, rook or queen --
// the null-move precondition in spec §4.7 step 4, which guards against zugzwang
// positions (bare king and pawns) where passing is never actually safe.
func hasNonPawnMaterial(b *board.Board, c board.Color) bool {
	for t := board.Knight; t <= board.Queen; t++ {
		if b.Pieces(c, t) != board.EmptyBitboard {
			return true
		}
	}
	return false
}
