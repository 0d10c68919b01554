package search

import (
	"context"
	"sync"
	"time"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/contextx"
	"github.com/seekerror/stdlib/pkg/util/iox"
)

// Searcher drives iterative deepening over a board.Game to find the best move under a
// set of Limits. One Searcher instance owns one TranspositionTable and the
// move-ordering tables (killers, history) across the whole game, so they keep improving
// from move to move -- grounded on the teacher's Iterative harness
// (pkg/search/searchctl/iterative.go), rebuilt around board.Game/board.Score and an
// explicit Handle/Launch split per spec §5's single cooperative stop signal.
type Searcher struct {
	tt    TranspositionTable
	eval  eval.Evaluator
	order orderingState
	age   uint16
}

// NewSearcher constructs a Searcher with the given evaluator and table size in bytes.
func NewSearcher(ctx context.Context, ev eval.Evaluator, ttSizeBytes uint64) *Searcher {
	return &Searcher{
		tt:   NewTranspositionTable(ctx, ttSizeBytes),
		eval: ev,
	}
}

// Handle lets the engine stop a running search and retrieve its best-completed result.
type Handle interface {
	// Halt stops the search, if running, and returns the best PV completed so far.
	// Idempotent.
	Halt() PV
}

// handle's init/quit signals are iox.AsyncCloser, grounded on the teacher's
// searchctl.handle (pkg/search/searchctl/iterative.go): Halt blocks until the first
// iteration has produced a PV, then closes quit, which contextx.WithQuitCancel below
// turns into ctx cancellation for the whole run without threading a stop channel through
// every negamax/quiescence frame.
type handle struct {
	init, quit iox.AsyncCloser

	mu sync.Mutex
	pv PV
}

func newHandle() *handle {
	return &handle{init: iox.NewAsyncCloser(), quit: iox.NewAsyncCloser()}
}

func (h *handle) markInitialized() {
	h.init.Close()
}

func (h *handle) Halt() PV {
	<-h.init.Closed()
	h.quit.Close()

	h.mu.Lock()
	defer h.mu.Unlock()
	return h.pv
}

// Launch starts an iterative-deepening search of g (the game's current position; the
// search mutates and restores g via Make/Unmake but leaves it unchanged once the
// returned channel closes) and streams a PV after every completed depth. The channel
// closes when the search stops, whether by exhausting Limits.Depth, the soft time
// target, or Halt.
func (s *Searcher) Launch(ctx context.Context, g *board.Game, limits Limits) (Handle, <-chan PV) {
	out := make(chan PV, 1)
	h := newHandle()

	go s.process(ctx, g, limits, h, out)

	return h, out
}

func (s *Searcher) process(ctx context.Context, g *board.Game, limits Limits, h *handle, out chan PV) {
	defer h.markInitialized()
	defer close(out)

	wctx, cancel := contextx.WithQuitCancel(ctx, h.quit.Closed())
	defer cancel()

	nodeLimit, _ := limits.NodeLimit.V()

	s.age++
	r := &run{ctx: wctx, g: g, eval: s.eval, tt: s.tt, age: s.age, order: s.order, nodeLimit: nodeLimit}

	moveTime, haveMoveTime := limits.MoveTime.V()
	useSoft := haveMoveTime && moveTime > 0 && !limits.Infinite

	maxDepth := MaxPly
	if v, ok := limits.Depth.V(); ok && v > 0 {
		maxDepth = v
	}

	searchStart := time.Now()

	for depth := 1; depth <= maxDepth; depth++ {
		if h.quit.IsClosed() {
			break
		}

		depthStart := time.Now()
		r.nodes = 0
		r.selDepth = depth

		score := r.negamax(depth, -board.MaxScore, board.MaxScore, true)
		elapsed := time.Since(depthStart)

		if h.quit.IsClosed() && depth > 1 {
			break // partial iteration: keep the previous completed result
		}

		pv := PV{
			Depth:    depth,
			SelDepth: r.selDepth,
			Moves:    reconstructPV(g, s.tt, depth),
			Score:    score,
			Nodes:    r.nodes,
			Time:     elapsed,
			HashFull: s.tt.Used(),
		}
		logw.Debugf(ctx, "searched %v: %v", g.Board(), pv)

		h.mu.Lock()
		h.pv = pv
		h.mu.Unlock()

		select {
		case <-out:
		default:
		}
		out <- pv
		h.markInitialized()

		if mateIn, ok := score.MateIn(); ok && abs(mateIn) <= depth {
			break // forced mate found within full search width: no deeper iteration needed
		}
		if useSoft && time.Since(searchStart) >= moveTime {
			break
		}
	}

	s.order = r.order
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// reconstructPV walks the transposition table from the root, following each position's
// stored best move, up to depth plies or until a position has no stored move. This
// avoids threading a PV slice through every negamax frame: the TT already has the
// information, since every node that raises alpha writes its best move.
func reconstructPV(g *board.Game, tt TranspositionTable, depth int) []board.Move {
	var pv []board.Move
	made := 0
	defer func() {
		for ; made > 0; made-- {
			g.Unmake()
		}
	}()

	for i := 0; i < depth; i++ {
		e, ok := tt.Read(g.Hash())
		if !ok || e.Move == board.NoMove {
			break
		}

		var list board.MoveList
		g.GenerateLegalMoves(&list)

		full, found := matchMove(&list, e.Move)
		if !found {
			break
		}

		pv = append(pv, full)
		g.Make(full)
		made++
	}
	return pv
}

// matchMove finds the legal move in list matching the TT's reconstructed (from, to,
// promotion) triple, recovering the Kind/Captured bits the table doesn't store.
func matchMove(list *board.MoveList, partial board.Move) (board.Move, bool) {
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if m.From() == partial.From() && m.To() == partial.To() && m.Promotion() == partial.Promotion() {
			return m, true
		}
	}
	return board.NoMove, false
}
