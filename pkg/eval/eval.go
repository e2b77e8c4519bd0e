// Package eval contains static position evaluation: tapered material, piece-square, pawn
// structure, mobility, coordination and king-safety terms (spec §4.7).
package eval

import "github.com/fathomchess/morlock/pkg/board"

// Evaluator is a static position evaluator, returning a Score from the mover's perspective.
type Evaluator interface {
	Evaluate(pos *board.Position) Score
}

// Standard is the engine's tapered evaluator: material, piece-square tables, pawn structure,
// king safety, mobility, bishop pair and rook-placement bonuses, all interpolated between a
// middlegame and endgame weight by Phase (spec §4.7).
type Standard struct{}

func (Standard) Evaluate(pos *board.Position) Score {
	return Evaluate(pos)
}

// Evaluate scores pos in centipawns from the perspective of the side to move.
func Evaluate(pos *board.Position) Score {
	us := pos.Turn()
	phase := Phase(pos)

	score := material(pos, us)
	score += pieceSquareBalance(pos, us, phase)
	score += pawnStructure(pos, us, phase)
	score += mobility(pos, us, phase)
	score += bishopPair(pos, us, phase)
	score += rookBonuses(pos, us, phase)
	score += kingShield(pos, us, phase) - kingShield(pos, us.Opponent(), phase)
	return score
}
