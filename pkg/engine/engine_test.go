package engine_test

import (
	"context"
	"testing"

	"github.com/fathomchess/morlock/pkg/board"
	"github.com/fathomchess/morlock/pkg/board/fen"
	"github.com/fathomchess/morlock/pkg/engine"
	"github.com/fathomchess/morlock/pkg/eval"
	"github.com/fathomchess/morlock/pkg/search"
	"github.com/fathomchess/morlock/pkg/search/searchctl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scholarsMateSetup = "r1bqkb1r/pppp1ppp/2n2n2/4p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR w KQkq - 4 4"

func newEngine(t *testing.T, opts engine.Options) *engine.Engine {
	t.Helper()
	return engine.New(context.Background(), "test", "suite", eval.Standard{}, engine.WithOptions(opts))
}

func TestEngineResetAndPosition(t *testing.T) {
	e := newEngine(t, engine.Options{Depth: 2})
	assert.Equal(t, fen.Initial, e.Position())

	require.NoError(t, e.Reset(context.Background(), scholarsMateSetup))
	assert.Equal(t, scholarsMateSetup, e.Position())
}

func TestEngineMoveAndTakeBack(t *testing.T) {
	e := newEngine(t, engine.Options{Depth: 2})

	require.NoError(t, e.Move(context.Background(), "e2e4"))
	assert.NotEqual(t, fen.Initial, e.Position())

	require.NoError(t, e.TakeBack(context.Background()))
	assert.Equal(t, fen.Initial, e.Position())

	assert.Error(t, e.TakeBack(context.Background()))
}

func TestEngineMoveRejectsIllegalMove(t *testing.T) {
	e := newEngine(t, engine.Options{Depth: 2})
	assert.Error(t, e.Move(context.Background(), "e2e5"))
}

func TestEngineAnalyzeFindsMateInOne(t *testing.T) {
	e := newEngine(t, engine.Options{Depth: 3, Hash: 1})
	require.NoError(t, e.Reset(context.Background(), scholarsMateSetup))

	out, err := e.Analyze(context.Background(), searchctl.Options{})
	require.NoError(t, err)

	var last search.PV
	for pv := range out {
		last = pv
	}

	require.NotEmpty(t, last.Moves)
	best, err := board.ParseMove("h5f7")
	require.NoError(t, err)
	assert.Equal(t, best.From(), last.Moves[0].From())
	assert.Equal(t, best.To(), last.Moves[0].To())
}

func TestEngineAnalyzeRejectsConcurrentSearch(t *testing.T) {
	e := newEngine(t, engine.Options{Depth: 6})

	_, err := e.Analyze(context.Background(), searchctl.Options{})
	require.NoError(t, err)

	_, err = e.Analyze(context.Background(), searchctl.Options{})
	assert.Error(t, err)

	_, err = e.Halt(context.Background())
	assert.NoError(t, err)
}

func TestEngineHaltWithNoActiveSearchErrors(t *testing.T) {
	e := newEngine(t, engine.Options{Depth: 2})
	_, err := e.Halt(context.Background())
	assert.Error(t, err)
}

func TestEngineSetNoiseUpdatesOptions(t *testing.T) {
	e := newEngine(t, engine.Options{Depth: 2})
	e.SetNoise(50)
	assert.Equal(t, uint(50), e.Options().Noise)
}
