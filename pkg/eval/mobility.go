package eval

import "github.com/fathomchess/morlock/pkg/board"

// Mobility weight per attacked square, centipawns. Index 0 = MG, 1 = EG (spec §4.7).
var mobilityWeight = map[board.Piece][2]Score{
	board.Knight: {4, 4},
	board.Bishop: {5, 5},
	board.Rook:   {2, 4},
	board.Queen:  {1, 2},
	board.King:   {0, 3},
}

const bishopPairBonus = 40 // MG; EG uses bishopPairBonusEG below (spec: +40/+50).
const bishopPairBonusEG = 50

var (
	rookOpenFileBonus     = [2]Score{25, 25}
	rookSemiOpenFileBonus = [2]Score{12, 12}
	rookSeventhRankBonus  = [2]Score{18, 25}
	connectedRooksBonus   = [2]Score{15, 15}
)

// mobility sums, for every piece of color c, the number of squares it attacks that are not
// occupied by its own side, weighted per piece type (spec §4.7), minus the opponent's.
func mobility(pos *board.Position, c board.Color, phase int) Score {
	return mobilityFor(pos, c, phase) - mobilityFor(pos, c.Opponent(), phase)
}

func mobilityFor(pos *board.Position, c board.Color, phase int) Score {
	occ := pos.Occupied()
	notOwn := ^pos.ColorBB(c)

	var score Score
	for bb := pos.PieceBB(c, board.Knight); bb != 0; {
		var sq board.Square
		sq, bb = bb.PopLSB()
		score += weighted(board.Knight, (board.KnightAttackboard(sq) & notOwn).PopCount(), phase)
	}
	for bb := pos.PieceBB(c, board.Bishop); bb != 0; {
		var sq board.Square
		sq, bb = bb.PopLSB()
		score += weighted(board.Bishop, (board.BishopAttackboard(occ, sq) & notOwn).PopCount(), phase)
	}
	for bb := pos.PieceBB(c, board.Rook); bb != 0; {
		var sq board.Square
		sq, bb = bb.PopLSB()
		score += weighted(board.Rook, (board.RookAttackboard(occ, sq) & notOwn).PopCount(), phase)
	}
	for bb := pos.PieceBB(c, board.Queen); bb != 0; {
		var sq board.Square
		sq, bb = bb.PopLSB()
		attacks := board.RookAttackboard(occ, sq) | board.BishopAttackboard(occ, sq)
		score += weighted(board.Queen, (attacks & notOwn).PopCount(), phase)
	}
	king := pos.King(c)
	score += weighted(board.King, (board.KingAttackboard(king) & notOwn).PopCount(), phase)
	return score
}

func weighted(p board.Piece, count int, phase int) Score {
	w := mobilityWeight[p]
	return Taper(w[0], w[1], phase) * Score(count)
}

// bishopPair returns the tapered bonus for c holding both bishops minus the opponent's, if it
// does (spec §4.7).
func bishopPair(pos *board.Position, c board.Color, phase int) Score {
	return bishopPairFor(pos, c, phase) - bishopPairFor(pos, c.Opponent(), phase)
}

func bishopPairFor(pos *board.Position, c board.Color, phase int) Score {
	if pos.PieceBB(c, board.Bishop).PopCount() < 2 {
		return 0
	}
	return Taper(bishopPairBonus, bishopPairBonusEG, phase)
}

// rookBonuses scores c's rooks for open/semi-open files, seventh-rank occupation and rooks
// connected along an empty rank or file, minus the opponent's (spec §4.7).
func rookBonuses(pos *board.Position, c board.Color, phase int) Score {
	return rookBonusesFor(pos, c, phase) - rookBonusesFor(pos, c.Opponent(), phase)
}

func rookBonusesFor(pos *board.Position, c board.Color, phase int) Score {
	ownPawns := pos.PieceBB(c, board.Pawn)
	oppPawns := pos.PieceBB(c.Opponent(), board.Pawn)
	seventh := board.Rank7
	if c == board.Black {
		seventh = board.Rank2
	}

	var score Score
	rooks := pos.PieceBB(c, board.Rook)
	for bb := rooks; bb != 0; {
		var sq board.Square
		sq, bb = bb.PopLSB()
		file := board.BitFile(sq.File())
		switch {
		case file&ownPawns == 0 && file&oppPawns == 0:
			score += Taper(rookOpenFileBonus[0], rookOpenFileBonus[1], phase)
		case file&ownPawns == 0:
			score += Taper(rookSemiOpenFileBonus[0], rookSemiOpenFileBonus[1], phase)
		}
		if sq.Rank() == seventh {
			score += Taper(rookSeventhRankBonus[0], rookSeventhRankBonus[1], phase)
		}
	}

	if rooks.PopCount() == 2 {
		occ := pos.Occupied()
		a, rest := rooks.PopLSB()
		b := rest.LSB()
		if (a.Rank() == b.Rank() || a.File() == b.File()) && board.RayBetween(a, b)&occ == 0 {
			score += Taper(connectedRooksBonus[0], connectedRooksBonus[1], phase)
		}
	}
	return score
}
