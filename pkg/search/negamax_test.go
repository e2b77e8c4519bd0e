package search_test

import (
	"context"
	"testing"

	"github.com/fathomchess/morlock/pkg/board"
	"github.com/fathomchess/morlock/pkg/board/fen"
	"github.com/fathomchess/morlock/pkg/eval"
	"github.com/fathomchess/morlock/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBoard(t *testing.T, f string) *board.Board {
	t.Helper()
	pos, err := fen.Decode(f)
	require.NoError(t, err)
	return board.NewBoard(board.NewZobristTable(1), pos)
}

func TestNegamaxFindsMateInOne(t *testing.T) {
	// White to move, Qh5-f7# is mate in one against the scholar's-mate setup.
	b := newBoard(t, "r1bqkb1r/pppp1ppp/2n2n2/4p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR w KQkq - 4 4")

	n := search.NewNegamax(eval.Standard{})
	tt := search.NewTranspositionTable(context.Background(), 1<<20)
	sctx := &search.Context{Alpha: eval.NegInfScore, Beta: eval.InfScore, TT: tt}

	_, score, moves, err := n.Search(context.Background(), sctx, b, 3)
	require.NoError(t, err)
	require.NotEmpty(t, moves)

	d, isMate := score.MateDistance()
	assert.True(t, isMate)
	assert.Equal(t, 1, d)

	best, err := board.ParseMove("h5f7")
	require.NoError(t, err)
	assert.Equal(t, best.From(), moves[0].From())
	assert.Equal(t, best.To(), moves[0].To())
}

func TestNegamaxPrefersShorterMate(t *testing.T) {
	// Fool's mate position one ply before Black delivers mate: Black to move has Qd8h4#.
	b := newBoard(t, "rnbqkbnr/pppp1ppp/8/4p3/6P1/5P2/PPPPP2P/RNBQKBNR b KQkq - 0 2")

	n := search.NewNegamax(eval.Standard{})
	tt := search.NewTranspositionTable(context.Background(), 1<<20)
	sctx := &search.Context{Alpha: eval.NegInfScore, Beta: eval.InfScore, TT: tt}

	_, score, moves, err := n.Search(context.Background(), sctx, b, 3)
	require.NoError(t, err)
	require.NotEmpty(t, moves)

	d, isMate := score.MateDistance()
	assert.True(t, isMate)
	assert.Equal(t, 1, d)
}

func TestNegamaxReturnsHaltedWhenCancelled(t *testing.T) {
	b := newBoard(t, fen.Initial)

	n := search.NewNegamax(eval.Standard{})
	tt := search.NewTranspositionTable(context.Background(), 1<<16)
	sctx := &search.Context{Alpha: eval.NegInfScore, Beta: eval.InfScore, TT: tt}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, score, moves, err := n.Search(ctx, sctx, b, 4)
	assert.Equal(t, search.ErrHalted, err)
	assert.True(t, score.IsInvalid())
	assert.Nil(t, moves)
}

func TestTranspositionTableRoundTrip(t *testing.T) {
	ctx := context.Background()
	tt := search.NewTranspositionTable(ctx, 0x1000)

	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)
	hash := board.NewZobristTable(1).Hash(pos)

	_, _, _, _, ok := tt.Read(hash)
	assert.False(t, ok)

	m := board.NewMove(board.E2, board.E4, board.Normal)
	ok = tt.Write(hash, search.ExactBound, 1, 0, 4, eval.Score(35), m)
	assert.True(t, ok)

	bound, depth, score, move, ok := tt.Read(hash)
	require.True(t, ok)
	assert.Equal(t, search.ExactBound, bound)
	assert.Equal(t, 4, depth)
	assert.Equal(t, eval.Score(35), score)
	assert.Equal(t, m, move)

	// Shallower entry from the same search age does not replace a deeper one.
	replaced := tt.Write(hash, search.ExactBound, 1, 0, 2, eval.Score(10), m)
	assert.False(t, replaced)

	// A new search age always replaces, regardless of depth.
	replaced = tt.Write(hash, search.ExactBound, 2, 0, 1, eval.Score(10), m)
	assert.True(t, replaced)
}

func TestQuiescenceFindsWinningCapture(t *testing.T) {
	pos, err := fen.Decode("4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	b := board.NewBoard(board.NewZobristTable(1), pos)

	q := search.Quiescence{Eval: eval.Standard{}}
	sctx := &search.Context{Alpha: eval.NegInfScore, Beta: eval.InfScore}

	_, score := q.Search(context.Background(), sctx, b)
	assert.Greater(t, int(score), 0)
}
