package search_test

import (
	"context"
	"testing"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/board/fen"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/stretchr/testify/require"
)

// kiwipete is the standard perft fixture with a rich mix of quiets, captures and
// castling rights, used to exercise move ordering against more than the opening book.
const kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

// finalPV drains a Searcher's stream and returns the last PV emitted, i.e. the deepest
// completed iteration.
func finalPV(t *testing.T, ch <-chan search.PV) search.PV {
	t.Helper()
	var last search.PV
	for pv := range ch {
		last = pv
	}
	return last
}

func TestAlphaBetaNeverVisitsMoreNodesThanMinimax(t *testing.T) {
	b, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	const depth = 3
	ev := eval.MaterialOnly{}

	mm := search.Minimax{Eval: ev}
	g := board.NewGame(b, board.NewZobristTable(board.ZobristSeed))
	mmNodes, _, _ := mm.Search(g, depth)

	s := search.NewSearcher(context.Background(), ev, 1<<20)
	g2 := board.NewGame(b, board.NewZobristTable(board.ZobristSeed))
	_, ch := s.Launch(context.Background(), g2, search.Limits{Depth: lang.Some(depth)})
	pv := finalPV(t, ch)

	require.Equal(t, depth, pv.Depth)
	require.LessOrEqual(t, pv.Nodes, mmNodes, "alpha-beta must never out-search plain negamax at the same depth")
}

func TestMinimaxFindsMateInOne(t *testing.T) {
	b, err := fen.Decode("6k1/5ppp/8/8/8/8/5PPP/3R2K1 w - - 0 1")
	require.NoError(t, err)
	g := board.NewGame(b, board.NewZobristTable(board.ZobristSeed))

	mm := search.Minimax{Eval: eval.MaterialOnly{}}
	_, score, pv := mm.Search(g, 2)

	require.NotEmpty(t, pv)
	mateIn, ok := score.MateIn()
	require.True(t, ok)
	require.Equal(t, 1, mateIn)
	require.Equal(t, board.D1, pv[0].From())
	require.Equal(t, board.D8, pv[0].To())
}

func TestKiwipeteLegalMoveCountAtRoot(t *testing.T) {
	b, err := fen.Decode(kiwipete)
	require.NoError(t, err)
	g := board.NewGame(b, board.NewZobristTable(board.ZobristSeed))

	var list board.MoveList
	g.GenerateLegalMoves(&list)
	require.Equal(t, 48, list.Len(), "kiwipete is a standard perft fixture with 48 root moves")
}

func TestSearcherFindsMateInOne(t *testing.T) {
	b, err := fen.Decode("6k1/5ppp/8/8/8/8/5PPP/3R2K1 w - - 0 1")
	require.NoError(t, err)
	g := board.NewGame(b, board.NewZobristTable(board.ZobristSeed))

	s := search.NewSearcher(context.Background(), eval.MaterialOnly{}, 1<<20)
	_, ch := s.Launch(context.Background(), g, search.Limits{Depth: lang.Some(4)})
	pv := finalPV(t, ch)

	best, ok := pv.BestMove()
	require.True(t, ok)
	require.Equal(t, board.D1, best.From())
	require.Equal(t, board.D8, best.To())
	mateIn, ok := pv.Score.MateIn()
	require.True(t, ok)
	require.Equal(t, 1, mateIn)
}
