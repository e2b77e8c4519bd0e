package mcts

import (
	"math"
	"math/rand"

	"github.com/fathomchess/morlock/pkg/board"
	"github.com/fathomchess/morlock/pkg/eval"
)

// worker owns one private tree and one Board it threads moves onto during selection/expansion/
// simulation, popping back to the root position between iterations. No state is shared with
// other workers until the aggregation step at join (spec §4.12).
type worker struct {
	tree  *tree
	board *board.Board
	rng   *rand.Rand
	cfg   Config
}

func newWorker(root *board.Board, cfg Config, seed int64) *worker {
	return &worker{
		tree:  newTree(root),
		board: root.Fork(),
		rng:   rand.New(rand.NewSource(seed)),
		cfg:   cfg,
	}
}

// iterate runs one selection/expansion/simulation/backpropagation cycle, leaving w.board back at
// the root position when it returns.
func (w *worker) iterate() {
	leaf, pushed := w.selectLeaf()

	if !w.tree.nodes[leaf].terminal && len(w.tree.nodes[leaf].untried) > 0 {
		leaf = w.expand(leaf)
		pushed++
	}

	result := w.simulate(leaf)
	w.backprop(leaf, result)

	for i := 0; i < pushed; i++ {
		w.board.PopMove()
	}
}

// selectLeaf descends from the root, maximising UCT at each step, pushing the chosen move onto
// w.board, until it reaches a node that is terminal or not fully expanded. Returns that node and
// how many moves were pushed to reach it.
func (w *worker) selectLeaf() (nodeIndex, int) {
	idx := nodeIndex(0)
	pushed := 0

	for {
		n := &w.tree.nodes[idx]
		if n.terminal || len(n.untried) > 0 {
			return idx, pushed
		}

		best := noNode
		bestUCT := math.Inf(-1)
		for c := n.firstChild; c != noNode; c = w.tree.nodes[c].nextSibling {
			cn := &w.tree.nodes[c]
			uct := cn.wins/float64(cn.visits) + w.cfg.ExplorationConstant*math.Sqrt(math.Log(float64(n.visits))/float64(cn.visits))
			if uct > bestUCT {
				bestUCT, best = uct, c
			}
		}

		w.board.PushKnownLegalMove(w.tree.nodes[best].move)
		idx = best
		pushed++
	}
}

// expand creates one new child of idx by playing an untried move, pushing it onto w.board.
func (w *worker) expand(idx nodeIndex) nodeIndex {
	n := &w.tree.nodes[idx]
	last := len(n.untried) - 1
	m := n.untried[last]
	n.untried = n.untried[:last]

	w.board.PushKnownLegalMove(m)
	untried := legalMoves(w.board.Position())
	return w.tree.alloc(idx, m, untried, len(untried) == 0)
}

// simulate plays uniformly random legal moves from w.board's current position (the node just
// selected/expanded) until terminal or the depth cap, then returns a score in {-1, 0, +1} from
// the perspective of the side to move at that node (spec §4.12). w.board is restored to that
// same position before returning.
func (w *worker) simulate(leaf nodeIndex) float64 {
	if w.tree.nodes[leaf].terminal {
		return w.terminalResult()
	}

	pov := w.board.Position().Turn()
	pushed := 0
	defer func() {
		for i := 0; i < pushed; i++ {
			w.board.PopMove()
		}
	}()

	for depth := 0; depth < w.cfg.MaxDepth; depth++ {
		moves := legalMoves(w.board.Position())
		if len(moves) == 0 {
			break
		}
		w.board.PushKnownLegalMove(moves[w.rng.Intn(len(moves))])
		pushed++
	}

	moves := legalMoves(w.board.Position())
	if len(moves) == 0 {
		return w.terminalResult()
	}
	return materialSign(w.board.Position(), pov)
}

// terminalResult scores a position with no legal moves: checkmate is a loss for the side to
// move there, stalemate (and any other non-mate terminal) is a draw.
func (w *worker) terminalResult() float64 {
	pos := w.board.Position()
	if pos.IsChecked(pos.Turn()) {
		return -1
	}
	return 0
}

// materialSign returns the sign of pov's material advantage over its opponent, the cheap cutoff
// evaluation spec §4.12 calls for instead of a full static evaluation.
func materialSign(pos *board.Position, pov board.Color) float64 {
	diff := materialTotal(pos, pov) - materialTotal(pos, pov.Opponent())
	switch {
	case diff > 0:
		return 1
	case diff < 0:
		return -1
	default:
		return 0
	}
}

func materialTotal(pos *board.Position, c board.Color) eval.Score {
	var total eval.Score
	for p := board.Pawn; p <= board.Queen; p++ {
		total += eval.Score(pos.PieceBB(c, p).PopCount()) * eval.NominalValue(p)
	}
	return total
}

// backprop walks from leaf to the tree root. result is from the perspective of the side to move
// at leaf, so leaf is credited with its negation (the side that played the move into leaf) and
// the sign flips again at every step up to reflect the alternating side to move (spec §4.12).
func (w *worker) backprop(leaf nodeIndex, result float64) {
	idx := leaf
	r := -result
	for idx != noNode {
		n := &w.tree.nodes[idx]
		n.visits++
		n.wins += r
		idx = n.parent
		r = -r
	}
}
