package eval

import "github.com/fathomchess/morlock/pkg/board"

// pst is a 64-entry piece-square table indexed by Square (a1=0 .. h8=63), written from White's
// point of view (rank 1 first). Black's score for the same piece on the mirror-image square is
// looked up by flipping the rank (spec §4.7: "mirrored for black").
type pst [64]Score

// at returns the piece-square bonus for a piece of color c on sq, for the given table.
func (t pst) at(c board.Color, sq board.Square) Score {
	if c == board.Black {
		sq = board.NewSquare(sq.File(), 7-sq.Rank())
	}
	return t[sq]
}

// The tables below follow the common "simplified evaluation function" shape (piece-specific
// shaping: pawns rewarded for central control and advancement, knights penalized on the rim,
// bishops on long diagonals, rooks on open files/seventh rank picked up separately in mobility.go,
// king safety in the middlegame vs. centralization in the endgame).

var pawnPST = pst{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, -20, -20, 10, 10, 5,
	5, -5, -10, 0, 0, -10, -5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, 5, 10, 25, 25, 10, 5, 5,
	10, 10, 20, 30, 30, 20, 10, 10,
	50, 50, 50, 50, 50, 50, 50, 50,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var pawnEGPST = pst{
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	10, 10, 10, 10, 10, 10, 10, 10,
	20, 20, 20, 20, 20, 20, 20, 20,
	35, 35, 35, 35, 35, 35, 35, 35,
	55, 55, 55, 55, 55, 55, 55, 55,
	80, 80, 80, 80, 80, 80, 80, 80,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightPST = pst{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var bishopPST = pst{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var rookPST = pst{
	0, 0, 0, 5, 5, 0, 0, 0,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	5, 10, 10, 10, 10, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var queenPST = pst{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-10, 5, 5, 5, 5, 5, 0, -10,
	0, 0, 5, 5, 5, 5, 0, -5,
	-5, 0, 5, 5, 5, 5, 0, -5,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var kingPST = pst{
	20, 30, 10, 0, 0, 10, 30, 20,
	20, 20, 0, 0, 0, 0, 20, 20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
}

var kingEGPST = pst{
	-50, -30, -30, -30, -30, -30, -30, -50,
	-30, -30, 0, 0, 0, 0, -30, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -20, -10, 0, 0, -10, -20, -30,
	-50, -40, -30, -20, -20, -30, -40, -50,
}

// pieceSquare returns the tapered piece-square bonus for a single piece of color c on sq.
func pieceSquare(c board.Color, piece board.Piece, sq board.Square, phase int) Score {
	var mg, eg pst
	switch piece {
	case board.Pawn:
		mg, eg = pawnPST, pawnEGPST
	case board.Knight:
		mg, eg = knightPST, knightPST
	case board.Bishop:
		mg, eg = bishopPST, bishopPST
	case board.Rook:
		mg, eg = rookPST, rookPST
	case board.Queen:
		mg, eg = queenPST, queenPST
	case board.King:
		mg, eg = kingPST, kingEGPST
	default:
		return 0
	}
	return Taper(mg.at(c, sq), eg.at(c, sq), phase)
}

// pieceSquareBalance sums pieceSquare over every piece on the board, for color c minus its
// opponent.
func pieceSquareBalance(pos *board.Position, c board.Color, phase int) Score {
	opp := c.Opponent()
	var score Score
	for p := board.Pawn; p <= board.King; p++ {
		for bb := pos.PieceBB(c, p); bb != 0; {
			var sq board.Square
			sq, bb = bb.PopLSB()
			score += pieceSquare(c, p, sq, phase)
		}
		for bb := pos.PieceBB(opp, p); bb != 0; {
			var sq board.Square
			sq, bb = bb.PopLSB()
			score -= pieceSquare(opp, p, sq, phase)
		}
	}
	return score
}
