package search_test

import (
	"testing"
	"time"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/board/fen"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGame(t *testing.T, position string) *board.Game {
	t.Helper()
	b, err := fen.Decode(position)
	require.NoError(t, err)
	return board.NewGame(b, board.NewZobristTable(board.ZobristSeed))
}

func TestPVBestAndPonderMove(t *testing.T) {
	m1 := board.NewMove(board.E2, board.E4, board.DoublePawnPush, board.NoPieceType, board.NoPieceType)
	m2 := board.NewMove(board.E7, board.E5, board.DoublePawnPush, board.NoPieceType, board.NoPieceType)

	empty := search.PV{}
	_, ok := empty.BestMove()
	assert.False(t, ok)
	_, ok = empty.PonderMove()
	assert.False(t, ok)

	one := search.PV{Moves: []board.Move{m1}}
	best, ok := one.BestMove()
	assert.True(t, ok)
	assert.Equal(t, m1, best)
	_, ok = one.PonderMove()
	assert.False(t, ok)

	two := search.PV{Moves: []board.Move{m1, m2}}
	best, ok = two.BestMove()
	assert.True(t, ok)
	assert.Equal(t, m1, best)
	ponder, ok := two.PonderMove()
	assert.True(t, ok)
	assert.Equal(t, m2, ponder)
}

func TestLimitsString(t *testing.T) {
	l := search.Limits{Depth: lang.Some(6), NodeLimit: lang.Some(uint64(1000)), MoveTime: lang.Some(500 * time.Millisecond)}
	s := l.String()
	assert.Contains(t, s, "depth=6")
	assert.Contains(t, s, "nodes=1000")
	assert.Contains(t, s, "movetime=500ms")
}

func TestLimitsStringInfinite(t *testing.T) {
	l := search.Limits{Infinite: true}
	assert.Contains(t, l.String(), "infinite")
}
