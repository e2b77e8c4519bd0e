package player_test

import (
	"context"
	"testing"
	"time"

	"github.com/fathomchess/morlock/pkg/board"
	"github.com/fathomchess/morlock/pkg/board/fen"
	"github.com/fathomchess/morlock/pkg/eval"
	"github.com/fathomchess/morlock/pkg/mcts"
	"github.com/fathomchess/morlock/pkg/player"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBoard(t *testing.T, f string) *board.Board {
	t.Helper()
	pos, err := fen.Decode(f)
	require.NoError(t, err)
	return board.NewBoard(board.NewZobristTable(1), pos)
}

func assertLegal(t *testing.T, b *board.Board, m board.Move) {
	t.Helper()
	legal := b.LegalMoves()
	for i := 0; i < legal.Len(); i++ {
		if legal.At(i) == m {
			return
		}
	}
	t.Fatalf("%v is not a legal move in %v", m, b.Position())
}

func TestNegamaxPlayerReturnsLegalMove(t *testing.T) {
	b := newBoard(t, fen.Initial)
	p := player.NewNegamaxPlayer("bot", eval.Standard{}, player.Easy)

	m, ok := p.RequestMove(context.Background(), b)
	require.True(t, ok)
	assertLegal(t, b, m)
}

func TestNegamaxPlayerFindsMateInOne(t *testing.T) {
	b := newBoard(t, "r1bqkb1r/pppp1ppp/2n2n2/4p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR w KQkq - 4 4")
	p := player.NewNegamaxPlayer("bot", eval.Standard{}, player.Hard)

	m, ok := p.RequestMove(context.Background(), b)
	require.True(t, ok)

	best, err := board.ParseMove("h5f7")
	require.NoError(t, err)
	assert.Equal(t, best.From(), m.From())
	assert.Equal(t, best.To(), m.To())
}

func TestNegamaxPlayerNoLegalMoveReturnsFalse(t *testing.T) {
	b := newBoard(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1") // stalemate
	p := player.NewNegamaxPlayer("bot", eval.Standard{}, player.Easy)

	_, ok := p.RequestMove(context.Background(), b)
	assert.False(t, ok)
}

func TestNegamaxPlayerCancelReturnsBestSoFar(t *testing.T) {
	b := newBoard(t, fen.Initial)
	p := player.NewNegamaxPlayer("bot", eval.Standard{}, player.Expert)

	ctx := context.Background()
	go func() {
		time.Sleep(time.Millisecond)
		p.Cancel()
	}()

	m, ok := p.RequestMove(ctx, b)
	require.True(t, ok)
	assertLegal(t, b, m)
}

func TestMCTSPlayerReturnsLegalMove(t *testing.T) {
	b := newBoard(t, fen.Initial)
	p := player.NewMCTSPlayer("bot", mcts.Config{MaxDepth: 6, Iterations: 200, ExplorationConstant: 1.414})

	m, ok := p.RequestMove(context.Background(), b)
	require.True(t, ok)
	assertLegal(t, b, m)
}

func TestMCTSPlayerNoLegalMoveReturnsFalse(t *testing.T) {
	b := newBoard(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1") // stalemate
	p := player.NewMCTSPlayer("bot", mcts.Config{MaxDepth: 4, Iterations: 50, ExplorationConstant: 1.414})

	_, ok := p.RequestMove(context.Background(), b)
	assert.False(t, ok)
}

func TestHumanPlayerParsesAndValidatesMoves(t *testing.T) {
	b := newBoard(t, fen.Initial)
	in := make(chan string, 4)
	p := player.NewHumanPlayer("alice", in)

	in <- "not a move"
	in <- "e2e5" // illegal: pawn can't jump three ranks
	in <- "e2e4" // legal

	m, ok := p.RequestMove(context.Background(), b)
	require.True(t, ok)
	assertLegal(t, b, m)

	best, err := board.ParseMove("e2e4")
	require.NoError(t, err)
	assert.Equal(t, best, m)
}

func TestHumanPlayerCancelReturnsFallbackMove(t *testing.T) {
	b := newBoard(t, fen.Initial)
	in := make(chan string)
	p := player.NewHumanPlayer("alice", in)

	ctx := context.Background()
	go func() {
		time.Sleep(time.Millisecond)
		p.Cancel()
	}()

	m, ok := p.RequestMove(ctx, b)
	require.True(t, ok)
	assertLegal(t, b, m)
}

func TestHumanPlayerNoLegalMoveReturnsFalse(t *testing.T) {
	b := newBoard(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1") // stalemate
	p := player.NewHumanPlayer("alice", make(chan string))

	_, ok := p.RequestMove(context.Background(), b)
	assert.False(t, ok)
}

func TestDifficultyPresetsMatchSpecTable(t *testing.T) {
	tests := []struct {
		d            player.Difficulty
		depth        uint
		hasDeadline  bool
		wantDeadline time.Duration
	}{
		{player.Easy, 2, false, 0},
		{player.Medium, 4, false, 0},
		{player.Hard, 6, false, 0},
		{player.Expert, 8, true, 5 * time.Second},
	}
	for _, tt := range tests {
		depth, deadline := tt.d.DepthAndDeadline()
		assert.Equal(t, tt.depth, depth)
		if tt.hasDeadline {
			assert.Equal(t, tt.wantDeadline, deadline)
		} else {
			assert.Zero(t, deadline)
		}
	}
}
