package search

import (
	"fmt"
	"strings"
	"time"

	"github.com/fathomchess/morlock/pkg/board"
	"github.com/fathomchess/morlock/pkg/eval"
)

// PV represents the principal variation found by one iterative-deepening depth.
type PV struct {
	Depth int           // depth of search
	Moves []board.Move  // principal variation, root move first
	Score eval.Score    // evaluation at depth, relative to the side to move at the root
	Nodes uint64        // interior/leaf nodes searched
	Time  time.Duration // wall-clock time taken by this depth
	Hash  float64       // transposition table utilization [0;1]
}

func (p PV) String() string {
	return fmt.Sprintf("depth=%v score=%v nodes=%v time=%v hash=%v%% pv=%v", p.Depth, p.Score, p.Nodes, p.Time, int(100*p.Hash), formatMoves(p.Moves))
}

func formatMoves(moves []board.Move) string {
	var sb strings.Builder
	for i, m := range moves {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(m.String())
	}
	return sb.String()
}
