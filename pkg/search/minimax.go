package search

import (
	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/eval"
)

// Minimax implements plain negamax without alpha-beta pruning, quiescence, or a
// transposition table: it visits every node of the full-width tree up to depth. It
// exists purely as a correctness/performance comparator for Searcher -- tests assert
// Searcher never visits more nodes than Minimax for the same position, depth and
// evaluator. Grounded on the teacher's Minimax (pkg/search/minimax.go).
type Minimax struct {
	Eval eval.Evaluator
}

// Search runs plain negamax to depth and returns the node count, score, and principal
// variation.
func (m Minimax) Search(g *board.Game, depth int) (uint64, board.Score, []board.Move) {
	run := &runMinimax{eval: m.Eval, g: g}
	score, pv := run.search(depth)
	return run.nodes, score, pv
}

type runMinimax struct {
	eval  eval.Evaluator
	g     *board.Game
	nodes uint64
}

func (m *runMinimax) search(depth int) (board.Score, []board.Move) {
	m.nodes++

	if depth == 0 {
		return m.eval.Evaluate(m.g.Board()), nil
	}

	var list board.MoveList
	m.g.GenerateLegalMoves(&list)
	if list.Len() == 0 {
		if m.g.Board().InCheck(m.g.Board().Turn()) {
			return -board.MateScore + board.Score(m.g.Ply()), nil
		}
		return 0, nil
	}

	best := board.MinScore
	var pv []board.Move
	for i := 0; i < list.Len(); i++ {
		move := list.At(i)

		m.g.Make(move)
		score, rem := m.search(depth - 1)
		m.g.Unmake()

		score = -score
		if score > best {
			best = score
			pv = append([]board.Move{move}, rem...)
		}
	}
	return best, pv
}
