package ordering_test

import (
	"testing"

	"github.com/fathomchess/morlock/pkg/board"
	"github.com/fathomchess/morlock/pkg/board/fen"
	"github.com/fathomchess/morlock/pkg/ordering"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashMoveFirst(t *testing.T) {
	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	pseudo := board.NewMoveListBuffer(64)
	board.GeneratePseudoLegalMoves(pos, pseudo)

	hash := board.NewMove(board.G1, board.F3, board.Normal)
	list := ordering.New(pos, pseudo, hash, 0, nil, nil)

	first, ok := list.Next()
	require.True(t, ok)
	assert.Equal(t, hash, first)
}

func TestCapturesBeforeQuietMoves(t *testing.T) {
	pos, err := fen.Decode("4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	pseudo := board.NewMoveListBuffer(64)
	board.GeneratePseudoLegalMoves(pos, pseudo)

	list := ordering.New(pos, pseudo, board.ZeroMove, 0, nil, nil)
	first, ok := list.Next()
	require.True(t, ok)
	assert.Equal(t, board.E4, first.From())
	assert.Equal(t, board.D5, first.To())
}

func TestKillerOutranksOtherQuietMoves(t *testing.T) {
	pos, err := fen.Decode("4k3/8/8/8/8/8/8/R3K3 w Q - 0 1")
	require.NoError(t, err)

	pseudo := board.NewMoveListBuffer(64)
	board.GeneratePseudoLegalMoves(pos, pseudo)

	killer := board.NewMove(board.A1, board.A5, board.Normal)
	killers := ordering.NewKillers(4)
	killers.Record(0, killer)

	list := ordering.New(pos, pseudo, board.ZeroMove, 0, killers, nil)
	first, ok := list.Next()
	require.True(t, ok)
	assert.Equal(t, killer, first)
}
