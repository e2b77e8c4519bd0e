// Package search contains the game-tree search: negamax with alpha-beta pruning, principal
// variation search, null-move pruning and a quiescence leaf search, plus the transposition
// table and move-ordering state shared across an iterative-deepening run (spec §4.9-§4.11).
package search

import (
	"context"
	"errors"

	"github.com/fathomchess/morlock/pkg/board"
	"github.com/fathomchess/morlock/pkg/eval"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// ErrHalted is returned by Search when ctx was cancelled before the search completed.
var ErrHalted = errors.New("search halted")

// Context carries the per-call parameters a Search needs beyond the board and depth: the
// alpha-beta window and the shared transposition table. Separate from context.Context, which
// only carries cancellation. Evaluation noise (spec §7 "Noisy evaluator for varied difficulty")
// is applied by wrapping the Evaluator passed to Negamax/Quiescence, not threaded through here.
type Context struct {
	Alpha, Beta eval.Score
	TT          TranspositionTable
	// Age distinguishes successive iterative-deepening searches in the transposition table's
	// replacement policy (spec §4.9).
	Age uint8
}

// Search implements a fixed-depth game-tree search from the current position of b, returning the
// node count, the score relative to the side to move, and the principal variation. Returns
// ErrHalted if ctx is cancelled before completion; any returned score and moves are then a
// possibly-incomplete best-effort, not meant to be trusted.
type Search interface {
	Search(ctx context.Context, sctx *Context, b *board.Board, depth int) (uint64, eval.Score, []board.Move, error)
}

func isCancelled(ctx context.Context) bool {
	return contextx.IsCancelled(ctx)
}
