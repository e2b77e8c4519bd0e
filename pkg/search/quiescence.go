package search

import (
	"context"
	"sort"

	"github.com/fathomchess/morlock/pkg/board"
	"github.com/fathomchess/morlock/pkg/eval"
)

// QuiescenceMaxPly bounds how deep the quiescence search can recurse past the nominal leaf,
// guarding against runaway capture chains (spec §4.11: "16-ply hard cap").
const QuiescenceMaxPly = 16

// deltaMargin is added to a capture's material gain before comparing it against alpha; a
// capture that cannot close the gap even with this much slack is pruned without being searched
// (spec §4.11 "delta pruning").
const deltaMargin = eval.Score(200)

// Quiescence extends a leaf node with captures and queen promotions only, until the position is
// "quiet" (spec §4.11). Negamax calls it to score a node at depth 0.
type Quiescence struct {
	Eval eval.Evaluator
}

// Search returns the quiescence score for the current position of b, from the perspective of
// the side to move.
func (q Quiescence) Search(ctx context.Context, sctx *Context, b *board.Board) (uint64, eval.Score) {
	var nodes uint64
	score := q.search(ctx, b, sctx.Alpha, sctx.Beta, 0, &nodes)
	return nodes, score
}

func (q Quiescence) search(ctx context.Context, b *board.Board, alpha, beta eval.Score, qply int, nodes *uint64) eval.Score {
	*nodes++
	if isCancelled(ctx) {
		return eval.InvalidScore
	}
	if b.IsFiftyMoveDraw() {
		return eval.ZeroScore
	}

	pos := b.Position()
	standPat := q.Eval.Evaluate(pos)
	if standPat > alpha {
		alpha = standPat
	}
	if alpha >= beta {
		return alpha
	}
	if qply >= QuiescenceMaxPly {
		return alpha
	}

	pseudo := board.NewMoveListBuffer(64)
	board.GeneratePseudoLegalMoves(pos, pseudo)
	filter := board.NewLegalityFilter(pos)

	type candidate struct {
		m    board.Move
		gain eval.Score
	}
	var candidates []candidate
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i)
		gain, isTactical := tacticalGain(pos, m)
		if !isTactical {
			continue
		}
		if standPat+gain+deltaMargin <= alpha {
			continue // delta pruning: even the best case can't raise alpha
		}
		if !filter.IsLegal(pos, m) {
			continue
		}
		candidates = append(candidates, candidate{m, gain})
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].gain > candidates[j].gain })

	for _, c := range candidates {
		b.PushKnownLegalMove(c.m)
		score := q.search(ctx, b, beta.Negate(), alpha.Negate(), qply+1, nodes).IncrementMateDistance().Negate()
		b.PopMove()

		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			return alpha
		}
	}

	return alpha
}

// tacticalGain reports whether m is worth exploring in quiescence (a capture or a queen
// promotion) and the material it wins, used for delta pruning and move ordering.
func tacticalGain(pos *board.Position, m board.Move) (eval.Score, bool) {
	if m.IsPromotion() {
		if m.Promotion() != board.Queen {
			return 0, false
		}
		return eval.NominalValue(board.Queen) - eval.NominalValue(board.Pawn), true
	}
	if m.IsEnPassant() {
		return eval.NominalValue(board.Pawn), true
	}
	_, victim, ok := pos.At(m.To())
	if !ok {
		return 0, false
	}
	return eval.NominalValue(victim), true
}
