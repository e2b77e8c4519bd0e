package mcts_test

import (
	"testing"

	"github.com/fathomchess/morlock/pkg/board"
	"github.com/fathomchess/morlock/pkg/board/fen"
	"github.com/fathomchess/morlock/pkg/mcts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBoard(t *testing.T, f string) *board.Board {
	t.Helper()
	pos, err := fen.Decode(f)
	require.NoError(t, err)
	return board.NewBoard(board.NewZobristTable(1), pos)
}

func TestSearchReturnsLegalMove(t *testing.T) {
	b := newBoard(t, fen.Initial)
	cfg := mcts.Config{MaxDepth: 6, Iterations: 200, ExplorationConstant: 1.414}

	m, ok := mcts.Search(b, cfg, nil)
	require.True(t, ok)

	legal := b.LegalMoves()
	found := false
	for i := 0; i < legal.Len(); i++ {
		if legal.At(i) == m {
			found = true
			break
		}
	}
	assert.True(t, found, "search must return a root-legal move")
}

func TestSearchNoLegalMoveReturnsFalse(t *testing.T) {
	b := newBoard(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1") // stalemate
	_, ok := mcts.Search(b, mcts.Config{MaxDepth: 4, Iterations: 50, ExplorationConstant: 1.414}, nil)
	assert.False(t, ok)
}

func TestSearchTakesFreeQueenOverRandomPlay(t *testing.T) {
	// White to move can capture a hanging queen with no compensation; MCTS with enough
	// iterations should strongly prefer it over the field of otherwise-even quiet moves.
	b := newBoard(t, "4k3/8/8/3q4/8/8/8/3RK3 w - - 0 1")
	cfg := mcts.Config{MaxDepth: 8, Iterations: 3000, ExplorationConstant: 1.414}

	m, ok := mcts.Search(b, cfg, nil)
	require.True(t, ok)

	take, err := board.ParseMove("d1d5")
	require.NoError(t, err)
	assert.Equal(t, take.From(), m.From())
	assert.Equal(t, take.To(), m.To())
}

func TestSearchRespectsStop(t *testing.T) {
	b := newBoard(t, fen.Initial)
	calls := 0
	stop := func() bool {
		calls++
		return calls > 2
	}
	m, ok := mcts.Search(b, mcts.Config{MaxDepth: 6, Iterations: 100000, ExplorationConstant: 1.414}, stop)
	require.True(t, ok)
	assert.NotEqual(t, board.ZeroMove, m)
}
