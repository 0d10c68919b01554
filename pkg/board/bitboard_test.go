package board_test

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestBitboardPopCount(t *testing.T) {
	tests := []struct {
		bb       board.Bitboard
		expected int
	}{
		{board.EmptyBitboard, 0},
		{board.BitMask(board.G4), 1},
		{board.BitMask(board.G3) | board.BitMask(board.G4), 2},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.bb.PopCount())
	}
}

func TestBitboardString(t *testing.T) {
	assert.Equal(t, "--------/--------/--------/--------/--------/--------/--------/--------", board.EmptyBitboard.String())
	assert.Equal(t, "--------/--------/--------/--------/--------/--------/--------/-------X", board.BitMask(board.A1).String())
	assert.Equal(t, "X-------/--------/--------/--------/--------/--------/--------/--------", board.BitMask(board.H8).String())
}

func squaresOf(bb board.Bitboard) map[board.Square]bool {
	out := map[board.Square]bool{}
	for sq := board.ZeroSquare; sq < board.NumSquares; sq++ {
		if bb.IsSet(sq) {
			out[sq] = true
		}
	}
	return out
}

func TestKingAttackboard(t *testing.T) {
	tests := []struct {
		sq       board.Square
		expected []board.Square
	}{
		{board.H1, []board.Square{board.G1, board.G2, board.H2}},
		{board.D1, []board.Square{board.C1, board.E1, board.C2, board.D2, board.E2}},
		{board.A8, []board.Square{board.A7, board.B7, board.B8}},
	}

	for _, tt := range tests {
		actual := squaresOf(board.KingAttackboard(tt.sq))
		assert.Len(t, actual, len(tt.expected))
		for _, sq := range tt.expected {
			assert.True(t, actual[sq], "expected %v in king attacks of %v", sq, tt.sq)
		}
	}
}

func TestKnightAttackboard(t *testing.T) {
	tests := []struct {
		sq       board.Square
		expected []board.Square
	}{
		{board.D4, []board.Square{board.B3, board.B5, board.C2, board.C6, board.E2, board.E6, board.F3, board.F5}},
		{board.A1, []board.Square{board.B3, board.C2}},
		{board.H8, []board.Square{board.F7, board.G6}},
	}

	for _, tt := range tests {
		actual := squaresOf(board.KnightAttackboard(tt.sq))
		assert.Len(t, actual, len(tt.expected))
		for _, sq := range tt.expected {
			assert.True(t, actual[sq], "expected %v in knight attacks of %v", sq, tt.sq)
		}
	}
}

func TestRookAttackboardObstruction(t *testing.T) {
	occ := board.BitMask(board.D6) | board.BitMask(board.B4) | board.BitMask(board.F4)
	actual := squaresOf(board.RookAttackboard(board.D4, occ))

	expected := []board.Square{
		board.D1, board.D2, board.D3, board.D5, board.D6, // blocked at D6, inclusive
		board.C4, board.B4, // blocked at B4, inclusive
		board.E4, board.F4, // blocked at F4, inclusive
	}
	assert.Len(t, actual, len(expected))
	for _, sq := range expected {
		assert.True(t, actual[sq], "expected %v in rook attacks", sq)
	}
}

func TestBishopAttackboardObstruction(t *testing.T) {
	occ := board.BitMask(board.F6) | board.BitMask(board.B2)
	actual := squaresOf(board.BishopAttackboard(board.D4, occ))

	expected := []board.Square{
		board.E5, board.F6, // blocked at F6, inclusive
		board.C5, board.B6, board.A7,
		board.C3, board.B2, // blocked at B2, inclusive
		board.E3, board.F2, board.G1,
	}
	assert.Len(t, actual, len(expected))
	for _, sq := range expected {
		assert.True(t, actual[sq], "expected %v in bishop attacks", sq)
	}
}

func TestPawnCaptureboard(t *testing.T) {
	white := squaresOf(board.PawnCaptureboard(board.White, board.BitMask(board.E4)))
	assert.Len(t, white, 2)
	assert.True(t, white[board.D5])
	assert.True(t, white[board.F5])

	black := squaresOf(board.PawnCaptureboard(board.Black, board.BitMask(board.E4)))
	assert.Len(t, black, 2)
	assert.True(t, black[board.D3])
	assert.True(t, black[board.F3])

	edge := squaresOf(board.PawnCaptureboard(board.White, board.BitMask(board.A4)))
	assert.Len(t, edge, 1)
	assert.True(t, edge[board.B5])
}
