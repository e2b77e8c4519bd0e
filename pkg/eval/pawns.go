package eval

import "github.com/fathomchess/morlock/pkg/board"

// Pawn structure weights (spec §4.7). Index 0 = MG, 1 = EG.
var (
	doubledPenalty  = [2]Score{-15, -20}
	isolatedPenalty = [2]Score{-20, -25}
	passedBonus     = [2]Score{40, 70}
	shieldBonus     = [2]Score{15, 5}
)

// pawnStructure returns the tapered doubled/isolated/passed-pawn balance for c minus its
// opponent.
func pawnStructure(pos *board.Position, c board.Color, phase int) Score {
	return pawnStructureFor(pos, c, phase) - pawnStructureFor(pos, c.Opponent(), phase)
}

func pawnStructureFor(pos *board.Position, c board.Color, phase int) Score {
	pawns := pos.PieceBB(c, board.Pawn)
	oppPawns := pos.PieceBB(c.Opponent(), board.Pawn)

	var score Score
	for f := board.ZeroFile; f < board.NumFiles; f++ {
		onFile := pawns & board.BitFile(f)
		n := onFile.PopCount()
		if n == 0 {
			continue
		}
		if n > 1 {
			score += Score(n-1) * Taper(doubledPenalty[0], doubledPenalty[1], phase)
		}

		neighbors := adjacentFiles(f) & pawns
		if neighbors == 0 {
			score += Taper(isolatedPenalty[0], isolatedPenalty[1], phase)
		}

		for bb := onFile; bb != 0; {
			var sq board.Square
			sq, bb = bb.PopLSB()
			if isPassed(c, sq, oppPawns) {
				score += passedPawnBonus(c, sq, phase)
			}
		}
	}
	return score
}

func adjacentFiles(f board.File) board.Bitboard {
	var bb board.Bitboard
	if f > board.FileA {
		bb |= board.BitFile(f - 1)
	}
	if f < board.FileH {
		bb |= board.BitFile(f + 1)
	}
	return bb
}

// isPassed reports whether the pawn of color c on sq has no enemy pawn on its own or an
// adjacent file that can still block or capture it on its way to promotion.
func isPassed(c board.Color, sq board.Square, oppPawns board.Bitboard) bool {
	span := adjacentFiles(sq.File()) | board.BitFile(sq.File())
	var ahead board.Bitboard
	if c == board.White {
		for r := sq.Rank() + 1; r < board.NumRanks; r++ {
			ahead |= board.BitRank(r)
		}
	} else {
		for r := int(sq.Rank()) - 1; r >= 0; r-- {
			ahead |= board.BitRank(board.Rank(r))
		}
	}
	return oppPawns&span&ahead == 0
}

// passedPawnBonus scales the passed-pawn bonus by how far advanced the pawn is (spec §4.7:
// "scaled by rank").
func passedPawnBonus(c board.Color, sq board.Square, phase int) Score {
	rank := int(sq.Rank())
	if c == board.Black {
		rank = 7 - rank
	}
	// rank is now 1 (the pawn's starting rank) through 6 (one step from promotion); ranks 0 and 7
	// never hold a pawn.
	scale := Score(rank)
	return Taper(passedBonus[0], passedBonus[1], phase) * scale / 6
}

// kingShield returns the pawn-shield bonus for c's king, if it sits on its original wing (spec
// §4.7: "+15/+5 per friendly pawn on the 2 ranks in front of the king").
func kingShield(pos *board.Position, c board.Color, phase int) Score {
	king := pos.King(c)
	startRank := board.Rank1
	if c == board.Black {
		startRank = board.Rank8
	}
	if king.Rank() != startRank {
		return 0
	}
	if king.File() != board.FileA && king.File() != board.FileB && king.File() != board.FileC &&
		king.File() != board.FileF && king.File() != board.FileG && king.File() != board.FileH {
		return 0 // king still in the center; no fixed wing to shield.
	}

	pawns := pos.PieceBB(c, board.Pawn)
	var shield board.Bitboard
	for _, f := range wingFiles(king.File()) {
		shield |= board.BitFile(f)
	}
	shield &= shieldRanks(c)

	n := (pawns & shield).PopCount()
	return Score(n) * Taper(shieldBonus[0], shieldBonus[1], phase)
}

func wingFiles(kingFile board.File) []board.File {
	files := []board.File{kingFile}
	if kingFile > board.FileA {
		files = append(files, kingFile-1)
	}
	if kingFile < board.FileH {
		files = append(files, kingFile+1)
	}
	return files
}

func shieldRanks(c board.Color) board.Bitboard {
	if c == board.White {
		return board.BitRank(board.Rank2) | board.BitRank(board.Rank3)
	}
	return board.BitRank(board.Rank7) | board.BitRank(board.Rank6)
}
