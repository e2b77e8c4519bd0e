package board

// Perft walks the legal move tree to the given depth and returns the leaf node count, the
// standard move-generator correctness benchmark (spec §4.6). It drives generation entirely off
// a BufferStack, two buffers per ply, so no move buffer is allocated per node.
func Perft(p *Position, depth int, stack *BufferStack) uint64 {
	return perft(p, depth, 0, stack)
}

func perft(p *Position, depth, ply int, stack *BufferStack) uint64 {
	if depth == 0 {
		return 1
	}

	pseudo := stack.At(2 * ply)
	pseudo.Reset()
	GeneratePseudoLegalMoves(p, pseudo)

	legal := stack.At(2*ply + 1)
	legal.Reset()
	GenerateLegalMoves(p, pseudo, legal)

	if depth == 1 {
		return uint64(legal.Len())
	}

	var nodes uint64
	for i := 0; i < legal.Len(); i++ {
		m := legal.At(i)
		p.MakeMove(m)
		nodes += perft(p, depth-1, ply+1, stack)
		p.UnmakeMove()
	}
	return nodes
}

// Divide returns the perft node count for depth broken down by the first move played: each entry
// is the depth-1 count below that move, and the entries sum to Perft(p, depth). Useful for
// diffing a move generator against a known-correct one.
func Divide(p *Position, depth int, stack *BufferStack) map[Move]uint64 {
	pseudo := stack.At(0)
	pseudo.Reset()
	GeneratePseudoLegalMoves(p, pseudo)

	legal := stack.At(1)
	legal.Reset()
	GenerateLegalMoves(p, pseudo, legal)

	ret := make(map[Move]uint64, legal.Len())
	for i := 0; i < legal.Len(); i++ {
		m := legal.At(i)
		p.MakeMove(m)
		ret[m] = perft(p, depth-1, 1, stack)
		p.UnmakeMove()
	}
	return ret
}
