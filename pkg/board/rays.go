package board

// Ray directions, indexed 0..7. Each entry is a (file, rank) step. This is the "ray tables in
// 8 directions" primitive of spec §4.1: rays[dir][sq] holds every square from sq to the edge of
// the board along that direction, exclusive of sq itself.
const (
	DirN = iota
	DirNE
	DirE
	DirSE
	DirS
	DirSW
	DirW
	DirNW

	NumDirections = 8
)

var rayStep = [NumDirections]struct{ df, dr int }{
	DirN:  {0, 1},
	DirNE: {1, 1},
	DirE:  {1, 0},
	DirSE: {1, -1},
	DirS:  {0, -1},
	DirSW: {-1, -1},
	DirW:  {-1, 0},
	DirNW: {-1, 1},
}

// positiveDir is true for directions along which the square index increases with distance
// from the origin, i.e. the nearest blocker is the least-significant set bit.
var positiveDir = [NumDirections]bool{
	DirN:  true,
	DirNE: true,
	DirE:  true,
	DirSE: false,
	DirS:  false,
	DirSW: false,
	DirW:  false,
	DirNW: true,
}

var rays [NumDirections][NumSquares]Bitboard

func init() {
	for sq := ZeroSquare; sq < NumSquares; sq++ {
		f, r := int(sq.File()), int(sq.Rank())
		for d := 0; d < NumDirections; d++ {
			step := rayStep[d]
			var bb Bitboard
			cf, cr := f+step.df, r+step.dr
			for cf >= 0 && cf < int(NumFiles) && cr >= 0 && cr < int(NumRanks) {
				bb = bb.Set(NewSquare(File(cf), Rank(cr)))
				cf += step.df
				cr += step.dr
			}
			rays[d][sq] = bb
		}
	}
}

// diagonalDirs and orthogonalDirs group the 8 ray directions by slider type.
var diagonalDirs = [4]int{DirNE, DirSE, DirSW, DirNW}
var orthogonalDirs = [4]int{DirN, DirE, DirS, DirW}

// slideAttacks walks each of the given directions from sq against the occupancy mask occ,
// stopping at (and including) the first blocker. No magic bitboards: a direct implementation
// of spec §4.1's "iterate through ray intersections with the occupancy mask".
func slideAttacks(occ Bitboard, sq Square, dirs [4]int) Bitboard {
	var attacks Bitboard
	for _, d := range dirs {
		ray := rays[d][sq]
		if blockers := ray & occ; blockers != 0 {
			var blocker Square
			if positiveDir[d] {
				blocker = blockers.LSB()
			} else {
				blocker = blockers.MSB()
			}
			ray &^= rays[d][blocker]
		}
		attacks |= ray
	}
	return attacks
}

// RookAttackboard returns all potential moves/attacks for a Rook at the given square, given
// the full board occupancy.
func RookAttackboard(occ Bitboard, sq Square) Bitboard {
	return slideAttacks(occ, sq, orthogonalDirs)
}

// BishopAttackboard returns all potential moves/attacks for a Bishop at the given square, given
// the full board occupancy.
func BishopAttackboard(occ Bitboard, sq Square) Bitboard {
	return slideAttacks(occ, sq, diagonalDirs)
}

// RayBetween returns the ray of squares strictly between two squares on the same rank, file or
// diagonal (exclusive of both ends), or zero if they are not aligned.
func RayBetween(from, to Square) Bitboard {
	for d := 0; d < NumDirections; d++ {
		ray := rays[d][from]
		if !ray.IsSet(to) {
			continue
		}
		return ray &^ rays[d][to] &^ BitMask(to)
	}
	return EmptyBitboard
}

// RayDirection returns the direction index from `from` towards `to` if they are aligned on a
// rank, file or diagonal, and ok=true.
func RayDirection(from, to Square) (dir int, ok bool) {
	for d := 0; d < NumDirections; d++ {
		if rays[d][from].IsSet(to) {
			return d, true
		}
	}
	return 0, false
}
