// Package search implements alpha-beta game-tree search over a board.Game: iterative
// deepening, quiescence search, a transposition table, and the move-ordering heuristics
// that make alpha-beta pruning effective in practice.
package search

import (
	"fmt"
	"strings"
	"time"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/seekerror/stdlib/pkg/lang"
)

// ErrHalted indicates a search was stopped before it ran to completion.
var ErrHalted = fmt.Errorf("search halted")

// MaxPly bounds search recursion depth, independent of MaxGamePlies: a guard against
// the search ever exceeding the fixed per-ply killer-move array negamax keeps.
const MaxPly = 127

// PV is the principal variation produced by one completed iterative-deepening
// iteration.
type PV struct {
	Depth    int
	SelDepth int
	Moves    []board.Move
	Score    board.Score
	Nodes    uint64
	Time     time.Duration
	HashFull float64
}

func (p PV) String() string {
	parts := make([]string, len(p.Moves))
	for i, m := range p.Moves {
		parts[i] = m.String()
	}
	return fmt.Sprintf("depth=%v seldepth=%v score=%v nodes=%v time=%v pv=%v", p.Depth, p.SelDepth, p.Score, p.Nodes, p.Time, strings.Join(parts, " "))
}

// BestMove returns the first move of the principal variation, if any.
func (p PV) BestMove() (board.Move, bool) {
	if len(p.Moves) == 0 {
		return board.NoMove, false
	}
	return p.Moves[0], true
}

// PonderMove returns the second move of the principal variation (the reply the engine
// expects, per the UCI "ponder" convention), if any.
func (p PV) PonderMove() (board.Move, bool) {
	if len(p.Moves) < 2 {
		return board.NoMove, false
	}
	return p.Moves[1], true
}

// Limits bounds one search: an absent Optional means that dimension is unconstrained.
// NodeLimit and MoveTime are absolute; a UCI-level TimeControl is converted to a
// MoveTime budget by AllocateTime before the search starts. Grounded on the teacher's
// searchctl.Options (pkg/search/searchctl/launcher.go), which uses the same
// lang.Optional[T] fields for "may be absent" search parameters.
type Limits struct {
	Depth     lang.Optional[int]
	NodeLimit lang.Optional[uint64]
	MoveTime  lang.Optional[time.Duration]
	Infinite  bool
}

func (l Limits) String() string {
	var parts []string
	if v, ok := l.Depth.V(); ok {
		parts = append(parts, fmt.Sprintf("depth=%v", v))
	}
	if v, ok := l.NodeLimit.V(); ok {
		parts = append(parts, fmt.Sprintf("nodes=%v", v))
	}
	if v, ok := l.MoveTime.V(); ok {
		parts = append(parts, fmt.Sprintf("movetime=%v", v))
	}
	if l.Infinite {
		parts = append(parts, "infinite")
	}
	return fmt.Sprintf("[%v]", strings.Join(parts, ", "))
}
