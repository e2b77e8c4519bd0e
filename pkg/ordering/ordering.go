// Package ordering ranks pseudo-legal moves for alpha-beta search: the hash move first, then
// captures by MVV-LVA, then promotions, then killer moves, with the history heuristic breaking
// ties among remaining quiet moves (spec §4.8).
package ordering

import (
	"container/heap"

	"github.com/fathomchess/morlock/pkg/board"
	"github.com/fathomchess/morlock/pkg/eval"
)

// Priority is the move ranking key; higher values are explored first.
type Priority int32

const (
	hashMoveBand   Priority = 1_000_000
	captureBand    Priority = 500_000
	promotionBand  Priority = 400_000
	killerBand     Priority = 300_000
	killerBandTwo  Priority = 299_999
	historyBand    Priority = 0
)

// List is a priority queue over a move buffer, built fresh at each search node.
type List struct {
	h moveHeap
}

// MaxKillers is the number of killer-move slots kept per ply (spec §4.8: "2 non-capture moves
// per ply-depth").
const MaxKillers = 2

// Killers holds, for every ply, up to MaxKillers quiet moves that have caused a beta cutoff.
type Killers struct {
	slots [][MaxKillers]board.Move
}

// NewKillers allocates killer slots for maxPly plies.
func NewKillers(maxPly int) *Killers {
	return &Killers{slots: make([][MaxKillers]board.Move, maxPly)}
}

// Record registers m as a new killer at ply, displacing the oldest slot. A capture is never
// recorded: MVV-LVA already orders captures ahead of quiet moves.
func (k *Killers) Record(ply int, m board.Move) {
	k.grow(ply)
	if k.slots[ply][0] == m {
		return
	}
	k.slots[ply][1] = k.slots[ply][0]
	k.slots[ply][0] = m
}

func (k *Killers) grow(ply int) {
	for ply >= len(k.slots) {
		k.slots = append(k.slots, [MaxKillers]board.Move{})
	}
}

func (k *Killers) at(ply int) [MaxKillers]board.Move {
	if ply >= len(k.slots) {
		return [MaxKillers]board.Move{}
	}
	return k.slots[ply]
}

// History counts, for every (piece, destination square), how often a quiet move there has
// caused a beta cutoff, weighted by the remaining depth (spec §4.8: "history[piece][to]
// incremented by depth²"). Used only to break ties among quiet moves that are not killers.
type History struct {
	counts [board.NumPieces][64]int32
}

// NewHistory returns an empty history table.
func NewHistory() *History {
	return &History{}
}

// Record credits a cutoff at the given search depth to a (piece, to) quiet move.
func (h *History) Record(piece board.Piece, to board.Square, depth int) {
	h.counts[piece][to] += int32(depth * depth)
}

func (h *History) at(piece board.Piece, to board.Square) int32 {
	return h.counts[piece][to]
}

// New builds a priority list over moves, a pseudo-legal buffer for pos, ranked per spec §4.8.
// hash is the transposition table's best move for this position (board.ZeroMove if none).
// killers and history may be nil, in which case those bands are skipped.
func New(pos *board.Position, moves *board.MoveList, hash board.Move, ply int, killers *Killers, history *History) *List {
	n := moves.Len()
	h := make(moveHeap, n)

	var ks [MaxKillers]board.Move
	if killers != nil {
		ks = killers.at(ply)
	}

	for i := 0; i < n; i++ {
		m := moves.At(i)
		h[i] = elm{m: m, pri: score(pos, m, hash, ks, history)}
	}
	heap.Init(&h)
	return &List{h: h}
}

// Next pops the highest-priority remaining move. Returns ok=false once exhausted.
func (l *List) Next() (board.Move, bool) {
	if l.h.Len() == 0 {
		return board.ZeroMove, false
	}
	top := heap.Pop(&l.h).(elm)
	return top.m, true
}

// Len returns the number of moves not yet popped.
func (l *List) Len() int {
	return l.h.Len()
}

func score(pos *board.Position, m board.Move, hash board.Move, killers [MaxKillers]board.Move, history *History) Priority {
	if hash != board.ZeroMove && m == hash {
		return hashMoveBand
	}

	_, attacker, _ := pos.At(m.From())

	if _, victim, ok := capturedPiece(pos, m); ok {
		return captureBand + Priority(10*eval.NominalValue(victim)-eval.NominalValue(attacker))
	}

	if m.IsPromotion() {
		bonus := Priority(0)
		if m.Promotion() == board.Queen {
			bonus = 1000
		}
		return promotionBand + bonus
	}

	if m == killers[0] {
		return killerBand
	}
	if m == killers[1] {
		return killerBandTwo
	}

	if history != nil {
		return historyBand + Priority(history.at(attacker, m.To()))
	}
	return historyBand
}

// capturedPiece returns the captured piece for m, if any, including en passant (whose victim
// sits behind the destination square rather than on it).
func capturedPiece(pos *board.Position, m board.Move) (board.Color, board.Piece, bool) {
	if m.IsEnPassant() {
		sq := board.NewSquare(m.To().File(), m.From().Rank())
		return pos.At(sq)
	}
	return pos.At(m.To())
}

type elm struct {
	m   board.Move
	pri Priority
}

type moveHeap []elm

func (h moveHeap) Len() int            { return len(h) }
func (h moveHeap) Less(i, j int) bool  { return h[i].pri > h[j].pri }
func (h moveHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *moveHeap) Push(x interface{}) { *h = append(*h, x.(elm)) }
func (h *moveHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
