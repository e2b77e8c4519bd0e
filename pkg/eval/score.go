package eval

import "fmt"

// Score is a position score in centipawns, always from the perspective of the side to move:
// positive favors the mover (spec §4.7). Search propagates Score through negation at each ply
// (negamax), so a Score only means "good for white" or "good for black" once paired with the
// color that was to move when it was computed.
type Score int32

const (
	ZeroScore Score = 0

	// InfScore/NegInfScore bound the alpha-beta window at the root.
	InfScore    Score = 1 << 20
	NegInfScore Score = -InfScore

	// InvalidScore is returned by a search call that did not complete (cancellation) and by a
	// transposition probe that found nothing usable.
	InvalidScore Score = InfScore + 1

	// MateScore is the score of delivering mate on the current move; MateScore-ply is the score
	// of a forced mate in ply plies (spec §4.10: "±30000 ∓ ply, favouring shorter mates").
	MateScore Score = 30000

	// mateThreshold is the boundary above which a score is considered a mate score rather than a
	// material/positional evaluation. 1000 plies of headroom is far beyond any reachable search
	// depth, so no ordinary evaluation can be mistaken for one.
	mateThreshold Score = MateScore - 1000
)

func (s Score) String() string {
	if d, ok := s.MateDistance(); ok {
		if d >= 0 {
			return fmt.Sprintf("mate in %d", (d+1)/2)
		}
		return fmt.Sprintf("mated in %d", (-d+1)/2)
	}
	return fmt.Sprintf("%.2f", float64(s)/100)
}

// Negate flips the score to the opponent's perspective, the core operation of negamax.
func (s Score) Negate() Score {
	if s.IsInvalid() {
		return s
	}
	return -s
}

// IsInvalid reports whether s is the sentinel "no score" value.
func (s Score) IsInvalid() bool {
	return s == InvalidScore
}

// IsMate reports whether s represents a forced mate for either side.
func (s Score) IsMate() bool {
	return s >= mateThreshold || s <= -mateThreshold
}

// MateDistance returns the number of plies to mate (positive: mover delivers it; negative: mover
// is mated) iff s is a mate score.
func (s Score) MateDistance() (int, bool) {
	switch {
	case s >= mateThreshold:
		return int(MateScore - s), true
	case s <= -mateThreshold:
		return -int(MateScore + s), true
	default:
		return 0, false
	}
}

// IncrementMateDistance lengthens a mate score by one ply, the adjustment quiescence applies while
// unwinding a recursive call: a "mate in k" one ply deeper is a "mate in k+1" from here. Negamax
// does not use it: its mate scores already count plies from the search root.
func (s Score) IncrementMateDistance() Score {
	switch {
	case s >= mateThreshold:
		return s - 1
	case s <= -mateThreshold:
		return s + 1
	default:
		return s
	}
}

// ToTranspositionTable adjusts a mate score from "distance from the search root" to "distance
// from the table key's position", so the same position reached at a different ply-from-root stores
// one consistent value (spec §4.9: "adjusted by the ply-from-root at probe/store time").
func (s Score) ToTranspositionTable(ply int) Score {
	switch {
	case s >= mateThreshold:
		return s + Score(ply)
	case s <= -mateThreshold:
		return s - Score(ply)
	default:
		return s
	}
}

// FromTranspositionTable reverses ToTranspositionTable on probe.
func (s Score) FromTranspositionTable(ply int) Score {
	switch {
	case s >= mateThreshold:
		return s - Score(ply)
	case s <= -mateThreshold:
		return s + Score(ply)
	default:
		return s
	}
}

// Max returns the largest of the given scores.
func Max(a, b Score) Score {
	if a < b {
		return b
	}
	return a
}

// Min returns the smallest of the given scores.
func Min(a, b Score) Score {
	if a < b {
		return a
	}
	return b
}
