package board_test

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func moveStrings(list *board.MoveList) []string {
	var out []string
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		out = append(out, m.ToUCI()+":"+m.Kind().String())
	}
	return out
}

func TestPseudoLegalPawnMoves(t *testing.T) {
	b, err := board.NewBoard([]board.Placement{
		{Square: board.E1, Piece: board.NewPiece(board.King, board.White)},
		{Square: board.E8, Piece: board.NewPiece(board.King, board.Black)},
		{Square: board.E2, Piece: board.NewPiece(board.Pawn, board.White)},
		{Square: board.G5, Piece: board.NewPiece(board.Pawn, board.White)},
		{Square: board.F6, Piece: board.NewPiece(board.Pawn, board.Black)},
	}, board.White, board.NoCastling, 0, false, 0, 1)
	require.NoError(t, err)

	var list board.MoveList
	b.GeneratePseudoLegalMoves(&list)
	actual := moveStrings(&list)

	assert.Contains(t, actual, "e2e3:quiet")
	assert.Contains(t, actual, "e2e4:double-push")
	assert.Contains(t, actual, "g5g6:quiet")
	assert.Contains(t, actual, "g5f6:capture")
}

func TestPseudoLegalPromotion(t *testing.T) {
	b, err := board.NewBoard([]board.Placement{
		{Square: board.E1, Piece: board.NewPiece(board.King, board.White)},
		{Square: board.E8, Piece: board.NewPiece(board.King, board.Black)},
		{Square: board.D7, Piece: board.NewPiece(board.Pawn, board.White)},
	}, board.White, board.NoCastling, 0, false, 0, 1)
	require.NoError(t, err)

	var list board.MoveList
	b.GeneratePseudoLegalMoves(&list)
	actual := moveStrings(&list)

	assert.Contains(t, actual, "d7d8q:promotion")
	assert.Contains(t, actual, "d7d8r:promotion")
	assert.Contains(t, actual, "d7d8b:promotion")
	assert.Contains(t, actual, "d7d8n:promotion")
}

func TestPseudoLegalEnPassant(t *testing.T) {
	b, err := board.NewBoard([]board.Placement{
		{Square: board.E1, Piece: board.NewPiece(board.King, board.White)},
		{Square: board.E8, Piece: board.NewPiece(board.King, board.Black)},
		{Square: board.E5, Piece: board.NewPiece(board.Pawn, board.White)},
		{Square: board.D5, Piece: board.NewPiece(board.Pawn, board.Black)},
	}, board.White, board.NoCastling, board.D6, true, 0, 1)
	require.NoError(t, err)

	var list board.MoveList
	b.GeneratePseudoLegalMoves(&list)
	actual := moveStrings(&list)

	assert.Contains(t, actual, "e5d6:en-passant")
}

func TestPseudoLegalCastling(t *testing.T) {
	b, err := board.NewBoard([]board.Placement{
		{Square: board.E1, Piece: board.NewPiece(board.King, board.White)},
		{Square: board.H1, Piece: board.NewPiece(board.Rook, board.White)},
		{Square: board.A1, Piece: board.NewPiece(board.Rook, board.White)},
		{Square: board.E8, Piece: board.NewPiece(board.King, board.Black)},
	}, board.White, board.FullCastingRights, 0, false, 0, 1)
	require.NoError(t, err)

	var list board.MoveList
	b.GeneratePseudoLegalMoves(&list)
	actual := moveStrings(&list)

	assert.Contains(t, actual, "e1g1:O-O")
	assert.Contains(t, actual, "e1c1:O-O-O")
}

func TestPseudoLegalCastlingBlockedThroughCheck(t *testing.T) {
	b, err := board.NewBoard([]board.Placement{
		{Square: board.E1, Piece: board.NewPiece(board.King, board.White)},
		{Square: board.H1, Piece: board.NewPiece(board.Rook, board.White)},
		{Square: board.A1, Piece: board.NewPiece(board.Rook, board.White)},
		{Square: board.E8, Piece: board.NewPiece(board.King, board.Black)},
		{Square: board.F8, Piece: board.NewPiece(board.Rook, board.Black)},
	}, board.White, board.FullCastingRights, 0, false, 0, 1)
	require.NoError(t, err)

	var list board.MoveList
	b.GeneratePseudoLegalMoves(&list)
	actual := moveStrings(&list)

	assert.NotContains(t, actual, "e1g1:O-O")
	assert.Contains(t, actual, "e1c1:O-O-O")
}

func TestPseudoLegalKnightAndSlider(t *testing.T) {
	b, err := board.NewBoard([]board.Placement{
		{Square: board.E1, Piece: board.NewPiece(board.King, board.White)},
		{Square: board.E8, Piece: board.NewPiece(board.King, board.Black)},
		{Square: board.A3, Piece: board.NewPiece(board.Knight, board.White)},
		{Square: board.B1, Piece: board.NewPiece(board.Rook, board.Black)},
		{Square: board.C2, Piece: board.NewPiece(board.Queen, board.Black)},
	}, board.White, board.NoCastling, 0, false, 0, 1)
	require.NoError(t, err)

	var list board.MoveList
	b.GeneratePseudoLegalMoves(&list)
	actual := moveStrings(&list)

	assert.Contains(t, actual, "a3b1:capture")
	assert.Contains(t, actual, "a3c2:capture")
	assert.Contains(t, actual, "a3c4:quiet")
	assert.Contains(t, actual, "a3b5:quiet")
}

func TestLegalMovesExcludesSelfCheck(t *testing.T) {
	b, err := board.NewBoard([]board.Placement{
		{Square: board.E1, Piece: board.NewPiece(board.King, board.White)},
		{Square: board.E2, Piece: board.NewPiece(board.Rook, board.White)},
		{Square: board.E8, Piece: board.NewPiece(board.Rook, board.Black)},
		{Square: board.A8, Piece: board.NewPiece(board.King, board.Black)},
	}, board.White, board.NoCastling, 0, false, 0, 1)
	require.NoError(t, err)

	z := board.NewZobristTable(board.ZobristSeed)
	g := board.NewGame(b, z)

	var list board.MoveList
	g.GenerateLegalMoves(&list)

	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if m.From() != board.E2 {
			continue
		}
		assert.Equal(t, board.FileE, m.To().File(), "pinned rook may only move along the e-file")
	}
}
