package eval

import "github.com/fathomchess/morlock/pkg/board"

// NominalValue returns a piece's material value in centipawns, identical in the middlegame and
// endgame phase (spec §4.7's material table: P=100, N=300, B=320, R=500, Q=900, K=0).
func NominalValue(p board.Piece) Score {
	switch p {
	case board.Pawn:
		return 100
	case board.Knight:
		return 300
	case board.Bishop:
		return 320
	case board.Rook:
		return 500
	case board.Queen:
		return 900
	default:
		return 0
	}
}

// totalPhase is the phase value of the starting position's non-pawn, non-king material: 4
// knights + 4 bishops + 4 rooks + 2 queens, weighted below. Phase interpolates linearly from
// totalPhase (opening) down to 0 (bare-king endgame), per spec §4.7.
const totalPhase = 4*knightPhase + 4*bishopPhase + 4*rookPhase + 2*queenPhase

const (
	knightPhase = 1
	bishopPhase = 1
	rookPhase   = 2
	queenPhase  = 4
)

// Phase returns the current game phase in [0, 256]: 256 at the opening, 0 once only kings and
// pawns remain. MG/EG component scores are blended by this value (spec §4.7).
func Phase(pos *board.Position) int {
	phase := 0
	for _, c := range [2]board.Color{board.White, board.Black} {
		phase += pos.PieceBB(c, board.Knight).PopCount() * knightPhase
		phase += pos.PieceBB(c, board.Bishop).PopCount() * bishopPhase
		phase += pos.PieceBB(c, board.Rook).PopCount() * rookPhase
		phase += pos.PieceBB(c, board.Queen).PopCount() * queenPhase
	}
	if phase > totalPhase {
		phase = totalPhase
	}
	return phase * 256 / totalPhase
}

// Taper blends a middlegame and endgame score by phase (256 = opening, 0 = endgame).
func Taper(mg, eg Score, phase int) Score {
	return (mg*Score(phase) + eg*Score(256-phase)) / 256
}

// material returns the material balance for color c: its material minus the opponent's.
func material(pos *board.Position, c board.Color) Score {
	opp := c.Opponent()
	var score Score
	for p := board.Pawn; p <= board.Queen; p++ {
		diff := pos.PieceBB(c, p).PopCount() - pos.PieceBB(opp, p).PopCount()
		score += Score(diff) * NominalValue(p)
	}
	return score
}
