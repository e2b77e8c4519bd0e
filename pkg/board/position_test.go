package board_test

import (
	"testing"

	"github.com/fathomchess/morlock/pkg/board"
	"github.com/fathomchess/morlock/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func legalMoves(pos *board.Position) *board.MoveList {
	pseudo := board.NewMoveListBuffer(64)
	board.GeneratePseudoLegalMoves(pos, pseudo)
	legal := board.NewMoveListBuffer(64)
	board.GenerateLegalMoves(pos, pseudo, legal)
	return legal
}

func TestMakeUnmakeRoundTrip(t *testing.T) {
	// Every legal move from the Kiwipete position, made and unmade, must restore the position's
	// FEN exactly (spec §8: "unmake(make(p, m)) == p").
	pos, err := fen.Decode("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	before := fen.Encode(pos)

	legal := legalMoves(pos)
	require.Greater(t, legal.Len(), 0)

	for i := 0; i < legal.Len(); i++ {
		m := legal.At(i)
		pos.MakeMove(m)
		pos.UnmakeMove()
		assert.Equal(t, before, fen.Encode(pos), "move %v did not round-trip", m)
	}
}

func TestMakeMoveUpdatesMailboxAndBitboards(t *testing.T) {
	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	m := board.NewMove(board.E2, board.E4, board.Normal)
	pos.MakeMove(m)

	c, piece, ok := pos.At(board.E4)
	require.True(t, ok)
	assert.Equal(t, board.White, c)
	assert.Equal(t, board.Pawn, piece)
	assert.True(t, pos.IsEmpty(board.E2))
	assert.True(t, pos.PieceBB(board.White, board.Pawn).IsSet(board.E4))
	assert.False(t, pos.PieceBB(board.White, board.Pawn).IsSet(board.E2))

	ep, ok := pos.EnPassant()
	assert.True(t, ok)
	assert.Equal(t, board.E3, ep)
}

func TestEnPassantCapture(t *testing.T) {
	pos, err := fen.Decode("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	require.NoError(t, err)

	m := board.NewMove(board.E5, board.D6, board.EnPassant)
	pos.MakeMove(m)

	assert.True(t, pos.IsEmpty(board.D5))
	assert.True(t, pos.IsEmpty(board.E5))
	_, piece, ok := pos.At(board.D6)
	require.True(t, ok)
	assert.Equal(t, board.Pawn, piece)

	pos.UnmakeMove()
	_, piece, ok = pos.At(board.D5)
	require.True(t, ok)
	assert.Equal(t, board.Pawn, piece)
	assert.True(t, pos.IsEmpty(board.D6))
}

func TestCastlingMovesRook(t *testing.T) {
	pos, err := fen.Decode("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	pos.MakeMove(board.NewMove(board.E1, board.G1, board.Castling))
	_, piece, ok := pos.At(board.F1)
	require.True(t, ok)
	assert.Equal(t, board.Rook, piece)
	assert.True(t, pos.IsEmpty(board.H1))

	pos.UnmakeMove()
	assert.True(t, pos.IsEmpty(board.F1))
	_, piece, ok = pos.At(board.H1)
	require.True(t, ok)
	assert.Equal(t, board.Rook, piece)
}

func TestCastlingRightsLostOnRookCapture(t *testing.T) {
	// A rook captured on its home square loses the right even though the king never moved.
	pos, err := fen.Decode("4k3/8/8/8/8/8/6b1/R3K2R b KQ - 0 1")
	require.NoError(t, err)

	pos.MakeMove(board.NewMove(board.G2, board.H1, board.Normal))
	assert.False(t, pos.Castling().IsAllowed(board.WhiteKingSideCastle))
	assert.True(t, pos.Castling().IsAllowed(board.WhiteQueenSideCastle))
}

func TestExactlyOneKingPerSide(t *testing.T) {
	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)
	assert.Equal(t, 1, pos.PieceBB(board.White, board.King).PopCount())
	assert.Equal(t, 1, pos.PieceBB(board.Black, board.King).PopCount())
}

func TestInvalidPositionRejected(t *testing.T) {
	_, err := fen.Decode("8/8/8/8/8/8/8/8 w - - 0 1") // no kings at all
	assert.Error(t, err)
}
