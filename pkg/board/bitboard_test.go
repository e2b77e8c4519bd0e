package board_test

import (
	"testing"

	"github.com/fathomchess/morlock/pkg/board"
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

func TestBitboardLSBMSB(t *testing.T) {
	bb := board.BitMask(board.C2) | board.BitMask(board.F6) | board.BitMask(board.A1)
	assert.Equal(t, board.A1, bb.LSB())
	assert.Equal(t, board.F6, bb.MSB())

	sq, rest := bb.PopLSB()
	assert.Equal(t, board.A1, sq)
	assert.Equal(t, 2, rest.PopCount())
	assert.False(t, rest.IsSet(board.A1))
}

func TestKingAttackboard(t *testing.T) {
	tests := []struct {
		sq       board.Square
		expected []board.Square
	}{
		{board.H1, []board.Square{board.G1, board.G2, board.H2}},
		{board.A1, []board.Square{board.A2, board.B1, board.B2}},
		{board.D3, []board.Square{board.C2, board.C3, board.C4, board.D2, board.D4, board.E2, board.E3, board.E4}},
		{board.A8, []board.Square{board.A7, board.B7, board.B8}},
	}

	for _, tt := range tests {
		bb := board.KingAttackboard(tt.sq)
		assert.Equal(t, len(tt.expected), bb.PopCount(), "square %v", tt.sq)
		for _, sq := range tt.expected {
			assert.True(t, bb.IsSet(sq), "expected %v attacked from %v", sq, tt.sq)
		}
	}
}

func TestKnightAttackboard(t *testing.T) {
	tests := []struct {
		sq       board.Square
		expected []board.Square
	}{
		{board.A1, []board.Square{board.B3, board.C2}},
		{board.D3, []board.Square{board.B2, board.B4, board.C1, board.C5, board.E1, board.E5, board.F2, board.F4}},
		{board.H8, []board.Square{board.F7, board.G6}},
	}

	for _, tt := range tests {
		bb := board.KnightAttackboard(tt.sq)
		assert.Equal(t, len(tt.expected), bb.PopCount(), "square %v", tt.sq)
		for _, sq := range tt.expected {
			assert.True(t, bb.IsSet(sq), "expected %v attacked from %v", sq, tt.sq)
		}
	}
}

func TestRookAttackboardBlocked(t *testing.T) {
	occ := board.BitMask(board.D5) | board.BitMask(board.B3) | board.BitMask(board.F3)
	bb := board.RookAttackboard(occ, board.D3)

	// Blocked north at d5 (inclusive), blocked west at b3 (inclusive), blocked east at f3
	// (inclusive), open south to d1.
	assert.True(t, bb.IsSet(board.D4))
	assert.True(t, bb.IsSet(board.D5))
	assert.False(t, bb.IsSet(board.D6))
	assert.True(t, bb.IsSet(board.C3))
	assert.True(t, bb.IsSet(board.B3))
	assert.False(t, bb.IsSet(board.A3))
	assert.True(t, bb.IsSet(board.E3))
	assert.True(t, bb.IsSet(board.F3))
	assert.False(t, bb.IsSet(board.G3))
	assert.True(t, bb.IsSet(board.D1))
}

func TestBishopAttackboardBlocked(t *testing.T) {
	occ := board.BitMask(board.F5) | board.BitMask(board.B1)
	bb := board.BishopAttackboard(occ, board.D3)

	assert.True(t, bb.IsSet(board.E4))
	assert.True(t, bb.IsSet(board.F5))
	assert.False(t, bb.IsSet(board.G6))
	assert.True(t, bb.IsSet(board.C2))
	assert.True(t, bb.IsSet(board.B1))
	assert.True(t, bb.IsSet(board.E2))
	assert.True(t, bb.IsSet(board.F1))
	assert.True(t, bb.IsSet(board.C4))
	assert.True(t, bb.IsSet(board.B5))
	assert.True(t, bb.IsSet(board.A6))
}

func TestPawnCaptureboard(t *testing.T) {
	pawns := board.BitMask(board.A2) | board.BitMask(board.D4)
	bb := board.PawnCaptureboard(board.White, pawns)
	assert.True(t, bb.IsSet(board.B3))
	assert.True(t, bb.IsSet(board.C5))
	assert.True(t, bb.IsSet(board.E5))
	assert.False(t, bb.IsSet(board.A3)) // no wrap from the a-file

	bb = board.PawnCaptureboard(board.Black, pawns)
	assert.True(t, bb.IsSet(board.B1))
	assert.True(t, bb.IsSet(board.C3))
	assert.True(t, bb.IsSet(board.E3))
}

func TestRayBetween(t *testing.T) {
	assert.Equal(t, 2, board.RayBetween(board.A1, board.D1).PopCount())
	assert.True(t, board.RayBetween(board.A1, board.D1).IsSet(board.B1))
	assert.True(t, board.RayBetween(board.A1, board.D1).IsSet(board.C1))
	assert.Equal(t, board.EmptyBitboard, board.RayBetween(board.A1, board.B2))
	assert.Equal(t, board.EmptyBitboard, board.RayBetween(board.A1, board.H2))
}
