// Package player wraps the engine's two search strategies behind the uniform move-producer
// protocol the host application drives: Negamax at a fixed difficulty preset, and MCTS at a
// fixed iteration budget (spec §6 "Player protocol").
package player

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fathomchess/morlock/pkg/board"
	"github.com/fathomchess/morlock/pkg/eval"
	"github.com/fathomchess/morlock/pkg/mcts"
	"github.com/fathomchess/morlock/pkg/search"
	"github.com/fathomchess/morlock/pkg/search/searchctl"
	"github.com/seekerror/stdlib/pkg/lang"
)

// Player is the uniform move-producer interface the host application drives (spec §6). A single
// Player is used for one side for the life of a game; RequestMove is not expected to be called
// concurrently with itself, but Cancel may be called from any goroutine at any time.
type Player interface {
	// RequestMove blocks until a move is found, the position has none, or ctx/Cancel ends the
	// search early. A cancelled search still returns the best move found so far, or an arbitrary
	// legal move if no iteration completed; only a position with zero legal moves returns ok=false.
	RequestMove(ctx context.Context, b *board.Board) (m board.Move, ok bool)

	// Cancel signals the in-flight RequestMove, if any, to return its best-so-far as soon as
	// possible. Idempotent; a no-op if no search is running.
	Cancel()

	// Name returns a human-readable label for the player (spec §6).
	Name() string
}

// Difficulty is a Negamax difficulty preset (spec §6 "Difficulty presets").
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

// DepthAndDeadline returns the preset's search depth and wall-clock deadline (zero means no
// deadline), per spec §6's difficulty preset table.
func (d Difficulty) DepthAndDeadline() (uint, time.Duration) {
	switch d {
	case Easy:
		return 2, 0
	case Medium:
		return 4, 0
	case Hard:
		return 6, 0
	case Expert:
		return 8, 5 * time.Second
	default:
		return 4, 0
	}
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	case Expert:
		return "expert"
	default:
		return fmt.Sprintf("difficulty(%d)", int(d))
	}
}

// cancellation is embedded by both player implementations to give Cancel a context to act on,
// guarded by a mutex since Cancel may race an in-flight RequestMove starting or finishing.
type cancellation struct {
	mu     sync.Mutex
	cancel context.CancelFunc
}

// begin derives a cancellable context from ctx (plus an optional deadline) and records its
// cancel func so a concurrent Cancel() call can reach it.
func (c *cancellation) begin(ctx context.Context, deadline time.Duration) context.Context {
	var cctx context.Context
	var cancel context.CancelFunc
	if deadline > 0 {
		cctx, cancel = context.WithTimeout(ctx, deadline)
	} else {
		cctx, cancel = context.WithCancel(ctx)
	}

	c.mu.Lock()
	c.cancel = cancel
	c.mu.Unlock()

	return cctx
}

func (c *cancellation) end() {
	c.mu.Lock()
	cancel := c.cancel
	c.cancel = nil
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// Cancel implements Player.
func (c *cancellation) Cancel() {
	c.mu.Lock()
	cancel := c.cancel
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// NegamaxPlayer drives iterative-deepening Negamax to a fixed difficulty preset (spec §6). Its
// transposition table, killer table and history table persist across moves within a game, so
// later moves benefit from earlier search's move-ordering data.
type NegamaxPlayer struct {
	cancellation

	name       string
	difficulty Difficulty
	launcher   searchctl.Launcher
	tt         search.TranspositionTable
}

// NewNegamaxPlayer returns a NegamaxPlayer searching with e (wrapped in noise beforehand by the
// caller, if any) at the given difficulty preset.
func NewNegamaxPlayer(name string, e eval.Evaluator, difficulty Difficulty) *NegamaxPlayer {
	return &NegamaxPlayer{
		name:       name,
		difficulty: difficulty,
		launcher:   &searchctl.Iterative{Root: search.NewNegamax(e)},
		tt:         search.NewTranspositionTable(context.Background(), 32<<20),
	}
}

func (p *NegamaxPlayer) Name() string {
	return fmt.Sprintf("%v (Negamax/%v)", p.name, p.difficulty)
}

// RequestMove implements Player.
func (p *NegamaxPlayer) RequestMove(ctx context.Context, b *board.Board) (board.Move, bool) {
	depth, deadline := p.difficulty.DepthAndDeadline()

	cctx := p.begin(ctx, deadline)
	defer p.end()

	opt := searchctl.Options{DepthLimit: lang.Some(depth)}
	handle, out := p.launcher.Launch(cctx, b.Fork(), p.tt, opt)

	var last search.PV
	for pv := range out {
		last = pv
	}
	handle.Halt()

	if len(last.Moves) > 0 {
		return last.Moves[0], true
	}
	return anyLegalMove(b)
}

// MCTSPlayer drives root-parallel MCTS at a fixed configuration (spec §6, §4.12).
type MCTSPlayer struct {
	cancellation

	name string
	cfg  mcts.Config
}

// NewMCTSPlayer returns an MCTSPlayer using cfg (mcts.DefaultConfig if the zero value).
func NewMCTSPlayer(name string, cfg mcts.Config) *MCTSPlayer {
	if cfg == (mcts.Config{}) {
		cfg = mcts.DefaultConfig
	}
	return &MCTSPlayer{name: name, cfg: cfg}
}

func (p *MCTSPlayer) Name() string {
	return fmt.Sprintf("%v (MCTS)", p.name)
}

// RequestMove implements Player.
func (p *MCTSPlayer) RequestMove(ctx context.Context, b *board.Board) (board.Move, bool) {
	cctx := p.begin(ctx, 0)
	defer p.end()

	stop := func() bool {
		select {
		case <-cctx.Done():
			return true
		default:
			return false
		}
	}
	return mcts.Search(b, p.cfg, stop)
}

// anyLegalMove returns an arbitrary legal move from b's current position, the fallback spec §7
// requires when a search is cancelled before a single iteration completes.
func anyLegalMove(b *board.Board) (board.Move, bool) {
	legal := b.LegalMoves()
	if legal.Len() == 0 {
		return board.ZeroMove, false
	}
	return legal.At(0), true
}

// HumanPlayer reads UCI-style move strings (e.g. "e2e4", "a7a8q") from a line channel, typically
// engine.ReadStdinLines, retrying on parse errors or illegal moves instead of failing the game.
type HumanPlayer struct {
	cancellation

	name string
	in   <-chan string
}

// NewHumanPlayer returns a HumanPlayer that reads its moves from in.
func NewHumanPlayer(name string, in <-chan string) *HumanPlayer {
	return &HumanPlayer{name: name, in: in}
}

func (p *HumanPlayer) Name() string {
	return fmt.Sprintf("%v (human)", p.name)
}

// RequestMove implements Player. It blocks on in until a legal move arrives, ctx is cancelled, or
// in is closed (no further input possible).
func (p *HumanPlayer) RequestMove(ctx context.Context, b *board.Board) (board.Move, bool) {
	cctx := p.begin(ctx, 0)
	defer p.end()

	legal := b.LegalMoves()
	if legal.Len() == 0 {
		return board.ZeroMove, false
	}

	for {
		select {
		case <-cctx.Done():
			return anyLegalMove(b)
		case line, ok := <-p.in:
			if !ok {
				return anyLegalMove(b)
			}
			candidate, err := board.ParseMove(line)
			if err != nil {
				continue
			}
			for i := 0; i < legal.Len(); i++ {
				if m := legal.At(i); candidate.Equals(m) {
					return m, true
				}
			}
		}
	}
}
