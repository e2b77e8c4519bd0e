package mcts

import "github.com/fathomchess/morlock/pkg/board"

// nodeIndex is an arena handle into a tree's node slice. Using integer handles instead of
// pointers avoids an owning-pointer cycle between parent and child and keeps a whole tree in one
// contiguous, cache-friendly allocation that a worker can drop in one go at the end of a search
// (spec §8 "arena allocation indexed by integer handles").
type nodeIndex int32

const noNode nodeIndex = -1

// node is one MCTS tree node. wins are from the perspective of the side that played move, i.e.
// the side to move at the parent, so selection at the parent maximises its own win rate.
type node struct {
	move        board.Move
	parent      nodeIndex
	firstChild  nodeIndex
	nextSibling nodeIndex

	untried  []board.Move
	visits   int
	wins     float64
	terminal bool
}

// tree is one worker's private arena, rooted at index 0.
type tree struct {
	nodes []node
}

// newTree builds a tree whose root holds every legal move from root's current position as
// untried.
func newTree(root *board.Board) *tree {
	untried := legalMoves(root.Position())
	return &tree{nodes: []node{{
		parent:      noNode,
		firstChild:  noNode,
		nextSibling: noNode,
		untried:     untried,
		terminal:    len(untried) == 0,
	}}}
}

// alloc appends a new node and links it as a child of parent.
func (t *tree) alloc(parent nodeIndex, move board.Move, untried []board.Move, terminal bool) nodeIndex {
	idx := nodeIndex(len(t.nodes))
	t.nodes = append(t.nodes, node{
		move:        move,
		parent:      parent,
		firstChild:  noNode,
		nextSibling: noNode,
		untried:     untried,
		terminal:    terminal,
	})

	p := &t.nodes[parent]
	t.nodes[idx].nextSibling = p.firstChild
	p.firstChild = idx
	return idx
}

// legalMoves returns the legal moves available in pos.
func legalMoves(pos *board.Position) []board.Move {
	pseudo := board.NewMoveListBuffer(64)
	board.GeneratePseudoLegalMoves(pos, pseudo)
	legal := board.NewMoveListBuffer(64)
	board.GenerateLegalMoves(pos, pseudo, legal)

	moves := make([]board.Move, legal.Len())
	for i := range moves {
		moves[i] = legal.At(i)
	}
	return moves
}
