package board

// Result enumerates the outcome of a finished game, from the perspective of the board alone (no
// clock/agreement/resignation outcomes, which live above this package).
type Result uint8

const (
	ResultInProgress Result = iota
	ResultCheckmate
	ResultStalemate
	ResultInsufficientMaterial
	ResultFiftyMoveRule
	ResultThreefoldRepetition
)

func (r Result) String() string {
	switch r {
	case ResultInProgress:
		return "in progress"
	case ResultCheckmate:
		return "checkmate"
	case ResultStalemate:
		return "stalemate"
	case ResultInsufficientMaterial:
		return "draw by insufficient material"
	case ResultFiftyMoveRule:
		return "draw by fifty-move rule"
	case ResultThreefoldRepetition:
		return "draw by threefold repetition"
	default:
		return "unknown"
	}
}

// IsDraw returns true iff the result is a draw (every terminal result but checkmate).
func (r Result) IsDraw() bool {
	return r != ResultInProgress && r != ResultCheckmate
}

// Terminal evaluates p for checkmate, stalemate, insufficient material and the fifty-move rule
// (spec §4.5). legal is the legal move list for the side to move, the caller's responsibility to
// supply since computing it again here would duplicate work the caller almost always already
// did. Threefold repetition is not decidable from a single Position and is the responsibility of
// the Board wrapper, which tracks a Zobrist-hash history across the whole game.
func Terminal(p *Position, legal *MoveList) Result {
	if legal.Len() == 0 {
		if p.IsChecked(p.turn) {
			return ResultCheckmate
		}
		return ResultStalemate
	}
	if p.halfmove >= 100 {
		return ResultFiftyMoveRule
	}
	if IsInsufficientMaterial(p) {
		return ResultInsufficientMaterial
	}
	return ResultInProgress
}

// IsInsufficientMaterial returns true iff neither side has enough material to deliver checkmate:
// K-vs-K, K+N-vs-K, K+B-vs-K, or K+B-vs-K+B with both bishops on the same color complex.
func IsInsufficientMaterial(p *Position) bool {
	if p.pieces[White][Pawn] != 0 || p.pieces[Black][Pawn] != 0 {
		return false
	}
	if p.pieces[White][Rook] != 0 || p.pieces[Black][Rook] != 0 {
		return false
	}
	if p.pieces[White][Queen] != 0 || p.pieces[Black][Queen] != 0 {
		return false
	}

	whiteMinor := p.pieces[White][Knight].PopCount() + p.pieces[White][Bishop].PopCount()
	blackMinor := p.pieces[Black][Knight].PopCount() + p.pieces[Black][Bishop].PopCount()

	if whiteMinor == 0 && blackMinor == 0 {
		return true // K-vs-K
	}
	if whiteMinor+blackMinor == 1 {
		return true // a single knight or bishop is never mating material
	}
	if whiteMinor == 1 && blackMinor == 1 {
		wb := p.pieces[White][Bishop]
		bb := p.pieces[Black][Bishop]
		if wb != 0 && bb != 0 {
			return squareColor(wb.LSB()) == squareColor(bb.LSB())
		}
	}
	return false
}

// squareColor returns 0 for a dark square (such as a1), 1 for a light square, by the standard
// (file+rank) parity convention.
func squareColor(sq Square) int {
	return (int(sq.File()) + int(sq.Rank())) % 2
}
