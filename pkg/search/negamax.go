package search

import (
	"context"

	"github.com/fathomchess/morlock/pkg/board"
	"github.com/fathomchess/morlock/pkg/eval"
	"github.com/fathomchess/morlock/pkg/ordering"
)

// nullMoveReduction is the depth reduction R in null-move pruning: the null-move subtree is
// searched R plies shallower than a real move would be (spec §4.10).
const nullMoveReduction = 2

// nullMoveMinDepth is the shallowest depth at which null-move pruning is attempted; below it the
// reduced search would be negative or unhelpfully shallow.
const nullMoveMinDepth = 3

// Negamax implements negamax with alpha-beta pruning, principal variation search and null-move
// pruning, bottoming out in a Quiescence search at depth 0 (spec §4.10). Killers and History are
// shared across the whole iterative-deepening run so later, deeper iterations benefit from move
// ordering learned at shallower ones.
type Negamax struct {
	Quiescence Quiescence
	Killers    *ordering.Killers
	History    *ordering.History
}

// NewNegamax returns a Negamax ready for an iterative-deepening run against e, with fresh killer
// and history tables.
func NewNegamax(e eval.Evaluator) *Negamax {
	return &Negamax{
		Quiescence: Quiescence{Eval: e},
		Killers:    ordering.NewKillers(128),
		History:    ordering.NewHistory(),
	}
}

// Search implements the Search interface.
func (n *Negamax) Search(ctx context.Context, sctx *Context, b *board.Board, depth int) (uint64, eval.Score, []board.Move, error) {
	alpha, beta := sctx.Alpha, sctx.Beta
	if alpha.IsInvalid() {
		alpha = eval.NegInfScore
	}
	if beta.IsInvalid() {
		beta = eval.InfScore
	}

	var nodes uint64
	score, pv := n.search(ctx, sctx, b, depth, alpha, beta, 0, &nodes)
	if isCancelled(ctx) {
		return nodes, eval.InvalidScore, nil, ErrHalted
	}
	return nodes, score, pv, nil
}

// search returns the score and principal variation for the current position of b, from the
// perspective of the side to move, to the given depth.
func (n *Negamax) search(ctx context.Context, sctx *Context, b *board.Board, depth, alpha, beta, ply int, nodes *uint64) (eval.Score, []board.Move) {
	if isCancelled(ctx) {
		return eval.InvalidScore, nil
	}
	if ply > 0 && b.IsFiftyMoveDraw() {
		return eval.ZeroScore, nil
	}

	// Mate-distance pruning (spec §4.10): a shorter mate can never be found than one already
	// reachable at this ply, so alpha/beta can be tightened to the best and worst mate scores
	// possible here before doing any other work.
	if mating := eval.MateScore - eval.Score(ply); mating < beta {
		beta = mating
		if alpha >= beta {
			return beta, nil
		}
	}
	if mated := -eval.MateScore + eval.Score(ply); mated > alpha {
		alpha = mated
		if alpha >= beta {
			return alpha, nil
		}
	}

	pos := b.Position()
	hash := b.Hash()

	var hashMove board.Move
	if bound, d, score, move, ok := sctx.TT.Read(hash); ok {
		hashMove = move
		if d >= depth {
			adjusted := score.FromTranspositionTable(ply)
			switch bound {
			case ExactBound:
				return adjusted, nil
			case LowerBound:
				if adjusted >= beta {
					return adjusted, nil
				}
				alpha = eval.Max(alpha, adjusted)
			case UpperBound:
				if adjusted <= alpha {
					return adjusted, nil
				}
				beta = eval.Min(beta, adjusted)
			}
		}
	}

	if depth <= 0 {
		qnodes, score := n.Quiescence.Search(ctx, &Context{Alpha: alpha, Beta: beta}, b)
		*nodes += qnodes + 1
		return score, nil
	}
	*nodes++

	inCheck := pos.IsChecked(pos.Turn())

	if ply > 0 && depth >= nullMoveMinDepth && !inCheck && hasNonPawnMaterial(pos, pos.Turn()) {
		b.PushNullMove()
		nscore, _ := n.search(ctx, sctx, b, depth-1-nullMoveReduction, beta.Negate(), beta.Negate()+1, ply+1, nodes)
		b.PopNullMove()

		if !nscore.IsInvalid() {
			nscore = nscore.Negate()
			if nscore >= beta {
				return beta, nil
			}
		}
	}

	pseudo := board.NewMoveListBuffer(64)
	board.GeneratePseudoLegalMoves(pos, pseudo)
	legal := board.NewMoveListBuffer(64)
	board.GenerateLegalMoves(pos, pseudo, legal)

	if legal.Len() == 0 {
		if inCheck {
			return -eval.MateScore + eval.Score(ply), nil
		}
		return eval.ZeroScore, nil
	}

	ordered := ordering.New(pos, legal, hashMove, ply, n.Killers, n.History)

	bound := UpperBound
	var bestMove board.Move
	var pv []board.Move
	first := true

	for {
		m, ok := ordered.Next()
		if !ok {
			break
		}
		_, attacker, _ := pos.At(m.From())
		quiet := isQuiet(pos, m)

		b.PushKnownLegalMove(m)

		var score eval.Score
		var rem []board.Move
		if first {
			score, rem = n.search(ctx, sctx, b, depth-1, beta.Negate(), alpha.Negate(), ply+1, nodes)
		} else {
			score, rem = n.search(ctx, sctx, b, depth-1, alpha.Negate()-1, alpha.Negate(), ply+1, nodes)
			if !score.IsInvalid() {
				if negated := score.Negate(); negated > alpha && negated < beta {
					score, rem = n.search(ctx, sctx, b, depth-1, beta.Negate(), alpha.Negate(), ply+1, nodes)
				}
			}
		}
		b.PopMove()

		if score.IsInvalid() {
			return eval.InvalidScore, nil
		}
		score = score.Negate()
		first = false

		if score > alpha {
			alpha = score
			bestMove = m
			pv = append([]board.Move{m}, rem...)
			bound = ExactBound
		}
		if alpha >= beta {
			bound = LowerBound
			if quiet {
				n.Killers.Record(ply, m)
				n.History.Record(attacker, m.To(), depth)
			}
			break
		}
	}

	sctx.TT.Write(hash, bound, sctx.Age, ply, depth, alpha.ToTranspositionTable(ply), bestMove)
	return alpha, pv
}

// isQuiet reports whether m is neither a capture nor a promotion, the class of move eligible to
// be recorded as a killer (spec §4.8).
func isQuiet(pos *board.Position, m board.Move) bool {
	if m.IsPromotion() || m.IsEnPassant() {
		return false
	}
	_, _, captured := pos.At(m.To())
	return !captured
}

// hasNonPawnMaterial reports whether c has any piece beyond pawns and the king, the usual guard
// against null-move pruning miscarrying in zugzwang-prone king-and-pawn endgames.
func hasNonPawnMaterial(pos *board.Position, c board.Color) bool {
	return pos.PieceBB(c, board.Knight)|pos.PieceBB(c, board.Bishop)|pos.PieceBB(c, board.Rook)|pos.PieceBB(c, board.Queen) != 0
}
