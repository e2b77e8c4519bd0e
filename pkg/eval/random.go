package eval

import (
	"math/rand"

	"github.com/fathomchess/morlock/pkg/board"
)

// Random adds a small amount of noise to an evaluation, so two engines with identical search
// parameters don't play the same game twice. The limit specifies the spread in centipawns: the
// offset lies in the half-open range [-limit/2, limit-limit/2). The zero value always returns
// zero noise.
type Random struct {
	rand  *rand.Rand
	limit int
}

// NewRandom returns a Random noise generator bounded by limit centipawns, seeded by seed.
func NewRandom(limit int, seed int64) Random {
	return Random{limit: limit, rand: rand.New(rand.NewSource(seed))}
}

// Evaluate returns a random score offset, zero if no limit was configured.
func (n Random) Evaluate(pos *board.Position) Score {
	if n.limit <= 0 {
		return 0
	}
	return Score(n.rand.Intn(n.limit) - n.limit/2)
}

// Noisy wraps an Evaluator, adding n's noise to every evaluation.
type Noisy struct {
	Eval  Evaluator
	Noise Random
}

func (e Noisy) Evaluate(pos *board.Position) Score {
	return e.Eval.Evaluate(pos) + e.Noise.Evaluate(pos)
}
