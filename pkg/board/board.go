// Package board contains the chess board representation and move-generation primitives.
package board

import "fmt"

const (
	repetitionDrawCount = 3
	fiftyMoveHalfPlies  = 100
)

// entry records one ply of game history: the resulting position's hash (recomputed from scratch
// by ZobristTable.Hash on every push, not maintained incrementally) and whether that move reset
// the halfmove clock (a pawn move or capture), which also resets repetition bookkeeping since no
// earlier position can recur once an irreversible move has been made.
type entry struct {
	hash       ZobristHash
	irreversible bool
}

// Board wraps a Position with the game-level bookkeeping a single Position can't track on its
// own: a Zobrist-hash history for repetition detection and the terminal Result once the game
// ends. Not safe for concurrent use; MCTS workers and search recursion each get their own cloned
// Board (spec §4.12, §5).
type Board struct {
	zt     *ZobristTable
	pos    *Position
	result Result

	history []entry
}

// NewBoard wraps pos for play, computing its initial hash.
func NewBoard(zt *ZobristTable, pos *Position) *Board {
	return &Board{
		zt:      zt,
		pos:     pos,
		history: []entry{{hash: zt.Hash(pos)}},
	}
}

// Fork returns an independent copy that can be mutated (via Push/Pop) without affecting the
// original, sharing no state with it (spec §4.2 "the engine receives clones").
func (b *Board) Fork() *Board {
	return &Board{
		zt:      b.zt,
		pos:     b.pos.Clone(),
		result:  b.result,
		history: append([]entry(nil), b.history...),
	}
}

// Position returns the current position.
func (b *Board) Position() *Position {
	return b.pos
}

// Turn returns the side to move.
func (b *Board) Turn() Color {
	return b.pos.Turn()
}

// Result returns the current terminal result, or ResultInProgress if the game continues.
func (b *Board) Result() Result {
	return b.result
}

// LegalMoves returns the legal moves available in the current position.
func (b *Board) LegalMoves() *MoveList {
	pseudo := NewMoveListBuffer(64)
	GeneratePseudoLegalMoves(b.pos, pseudo)
	legal := NewMoveListBuffer(64)
	GenerateLegalMoves(b.pos, pseudo, legal)
	return legal
}

// PushMove plays a legal move, updating history and the terminal result. Returns false if m is
// not among the current legal moves.
func (b *Board) PushMove(m Move) bool {
	if b.result != ResultInProgress {
		return false
	}

	legal := b.LegalMoves()
	found := false
	for i := 0; i < legal.Len(); i++ {
		if legal.At(i) == m {
			found = true
			break
		}
	}
	if !found {
		return false
	}

	irreversible := b.isIrreversible(m)
	b.pos.MakeMove(m)
	b.history = append(b.history, entry{hash: b.zt.Hash(b.pos), irreversible: irreversible})

	b.result = b.computeResult()
	return true
}

// PopMove reverses the last move played via PushMove. Returns false if there is no move to undo.
func (b *Board) PopMove() bool {
	if len(b.history) <= 1 {
		return false
	}
	b.pos.UnmakeMove()
	b.history = b.history[:len(b.history)-1]
	b.result = ResultInProgress
	return true
}

// Hash returns the Zobrist hash of the current position.
func (b *Board) Hash() ZobristHash {
	return b.history[len(b.history)-1].hash
}

// Ply returns the number of moves played since NewBoard, i.e. the search depth from the root.
func (b *Board) Ply() int {
	return len(b.history) - 1
}

// IsRepetitionOrFiftyMoveDraw reports a draw by the fifty-move rule or threefold repetition,
// without the (more expensive) checkmate/stalemate/material checks Terminal also makes. For a
// host querying draw status outside search; search itself only consults IsFiftyMoveDraw (repetition
// is tracked here for host queries but deliberately not enforced mid-search).
func (b *Board) IsRepetitionOrFiftyMoveDraw() bool {
	return b.pos.HalfMoveClock() >= fiftyMoveHalfPlies || b.repetitionCount() >= repetitionDrawCount
}

// IsFiftyMoveDraw reports a draw by the fifty-move rule alone. Search calls this at every node
// instead of Result(), since it already detects checkmate/stalemate itself from the absence of a
// legal move, and deliberately does not consult repetition (tracked only for host draw queries).
func (b *Board) IsFiftyMoveDraw() bool {
	return b.pos.HalfMoveClock() >= fiftyMoveHalfPlies
}

// PushKnownLegalMove plays m without re-validating legality or recomputing the terminal result.
// The caller -- search, which already generates the legal move list once per node -- must
// guarantee m is legal in the current position.
func (b *Board) PushKnownLegalMove(m Move) {
	irreversible := b.isIrreversible(m)
	b.pos.MakeMove(m)
	b.history = append(b.history, entry{hash: b.zt.Hash(b.pos), irreversible: irreversible})
	b.result = ResultInProgress
}

// PushNullMove passes the turn, for search's null-move pruning. Must be paired with PopNullMove,
// never interleaved with PushKnownLegalMove/PopMove.
func (b *Board) PushNullMove() {
	b.pos.MakeNullMove()
	b.history = append(b.history, entry{hash: b.zt.Hash(b.pos), irreversible: true})
	b.result = ResultInProgress
}

// PopNullMove reverses the most recent PushNullMove.
func (b *Board) PopNullMove() {
	b.pos.UnmakeNullMove()
	b.history = b.history[:len(b.history)-1]
}

func (b *Board) isIrreversible(m Move) bool {
	_, piece, _ := b.pos.At(m.From())
	if piece == Pawn {
		return true
	}
	return !b.pos.IsEmpty(m.To()) || m.IsEnPassant()
}

// computeResult recomputes the terminal state after a move: checkmate/stalemate/fifty-move/
// insufficient-material from Terminal, plus threefold repetition, which only a position's
// history (not a single snapshot) can answer.
func (b *Board) computeResult() Result {
	pseudo := NewMoveListBuffer(64)
	GeneratePseudoLegalMoves(b.pos, pseudo)
	legal := NewMoveListBuffer(64)
	GenerateLegalMoves(b.pos, pseudo, legal)

	if r := Terminal(b.pos, legal); r != ResultInProgress {
		return r
	}
	if b.repetitionCount() >= repetitionDrawCount {
		return ResultThreefoldRepetition
	}
	return ResultInProgress
}

// repetitionCount returns how many times the current position's hash has occurred since the
// most recent irreversible move, inclusive of the current occurrence.
func (b *Board) repetitionCount() int {
	current := b.history[len(b.history)-1].hash
	count := 0
	for i := len(b.history) - 1; i >= 0; i-- {
		if b.history[i].hash == current {
			count++
		}
		if b.history[i].irreversible {
			break
		}
	}
	return count
}

func (b *Board) String() string {
	return fmt.Sprintf("board{pos=%v, result=%v, ply=%v}", b.pos, b.result, len(b.history)-1)
}
