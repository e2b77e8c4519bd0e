// Package mcts implements root-parallel Monte Carlo tree search: classical UCT selection with
// random playouts, one independent tree per worker, aggregated once at join (spec §4.12).
package mcts

import (
	"math"
	"runtime"
	"sync"

	"github.com/fathomchess/morlock/pkg/board"
)

// Config configures one MCTS search (spec §4.12/§6 "MCTS configuration").
type Config struct {
	MaxDepth            int     // playout cap
	Iterations          int     // total iterations across all workers
	ExplorationConstant float64 // UCT c
}

// DefaultConfig matches spec §6's default MCTS configuration.
var DefaultConfig = Config{MaxDepth: 12, Iterations: 5000, ExplorationConstant: math.Sqrt2}

// aggregate holds one root move's combined (visits, total score) across every worker.
type aggregate struct {
	visits int
	score  float64
}

// Search runs cfg.Iterations of root-parallel MCTS from the current position of root, spread
// across T = runtime.GOMAXPROCS(0) workers (spec §5 "T = available hardware parallelism"), and
// returns the root-legal move with the highest aggregate visit count, ties broken by total
// score. stop, if non-nil, is polled periodically so a cancelled search still returns the best
// move found so far; returns ok=false only when root has no legal move at all.
func Search(root *board.Board, cfg Config, stop func() bool) (m board.Move, ok bool) {
	roots := legalMoves(root.Position())
	if len(roots) == 0 {
		return board.ZeroMove, false
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > cfg.Iterations {
		workers = cfg.Iterations
	}
	if workers < 1 {
		workers = 1
	}

	results := make(map[board.Move]*aggregate, len(roots))
	for _, rm := range roots {
		results[rm] = &aggregate{}
	}

	var mu sync.Mutex
	var wg sync.WaitGroup

	base, remainder := cfg.Iterations/workers, cfg.Iterations%workers
	for i := 0; i < workers; i++ {
		n := base
		if i < remainder {
			n++
		}

		wg.Add(1)
		go func(n int, seed int64) {
			defer wg.Done()

			w := newWorker(root, cfg, seed)
			for j := 0; j < n; j++ {
				if j%64 == 0 && stop != nil && stop() {
					break
				}
				w.iterate()
			}

			mu.Lock()
			defer mu.Unlock()
			for c := w.tree.nodes[0].firstChild; c != noNode; c = w.tree.nodes[c].nextSibling {
				cn := w.tree.nodes[c]
				if a, ok := results[cn.move]; ok {
					a.visits += cn.visits
					a.score += cn.wins
				}
			}
		}(n, int64(i)+1)
	}
	wg.Wait()

	var best board.Move
	var bestAgg *aggregate
	for mv, a := range results {
		if bestAgg == nil || a.visits > bestAgg.visits || (a.visits == bestAgg.visits && a.score > bestAgg.score) {
			best, bestAgg = mv, a
		}
	}
	if bestAgg == nil || bestAgg.visits == 0 {
		return roots[0], true // spec §7: no iteration expanded a child, return any legal move
	}
	return best, true
}
