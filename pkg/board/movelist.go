package board

// MoveList is a caller-owned, growable move buffer (spec §4.3). Move generation appends to it
// directly. Perft reuses buffers from a BufferStack instead of allocating per node; Negamax and
// Quiescence do not use a BufferStack and allocate fresh buffers at every node.
type MoveList struct {
	moves []Move
}

// NewMoveListBuffer preallocates a MoveList with the given capacity.
func NewMoveListBuffer(capacity int) *MoveList {
	return &MoveList{moves: make([]Move, 0, capacity)}
}

// Reset clears the buffer for reuse, retaining its backing array.
func (l *MoveList) Reset() {
	l.moves = l.moves[:0]
}

// Add appends a move to the buffer.
func (l *MoveList) Add(m Move) {
	l.moves = append(l.moves, m)
}

// Len returns the number of moves currently in the buffer.
func (l *MoveList) Len() int {
	return len(l.moves)
}

// At returns the move at index i.
func (l *MoveList) At(i int) Move {
	return l.moves[i]
}

// Slice returns the underlying moves as a slice. Valid only until the next Reset.
func (l *MoveList) Slice() []Move {
	return l.moves
}

// BufferStack is an explicit stack of MoveList buffers indexed by slot (spec §4.6), avoiding
// per-node allocation in perft, which uses two slots per ply (pseudo-legal and legal moves).
type BufferStack struct {
	buffers []*MoveList
}

// NewBufferStack creates a buffer stack with maxPly preallocated slots; At adds more on demand.
func NewBufferStack(maxPly int) *BufferStack {
	buffers := make([]*MoveList, maxPly)
	for i := range buffers {
		buffers[i] = NewMoveListBuffer(64)
	}
	return &BufferStack{buffers: buffers}
}

// At returns the buffer for the given ply (0-indexed from the root), growing the stack if
// the search recurses deeper than initially sized.
func (s *BufferStack) At(ply int) *MoveList {
	for ply >= len(s.buffers) {
		s.buffers = append(s.buffers, NewMoveListBuffer(64))
	}
	return s.buffers[ply]
}
