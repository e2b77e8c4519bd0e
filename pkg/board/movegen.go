package board

// GeneratePseudoLegalMoves appends every pseudo-legal move for the side to move into buf: piece
// moves that obey piece movement rules and don't capture the mover's own pieces, but that may
// leave or walk the king into check. Filtering those out is legality.go's job (spec §4.3/§4.4
// split moves generation from legality checking so the generator stays a pure function of the
// board and never needs to probe check).
func GeneratePseudoLegalMoves(p *Position, buf *MoveList) {
	us := p.turn
	own := p.ColorBB(us)
	occ := p.Occupied()
	notOwn := ^own

	genPawnMoves(p, us, buf)

	for bb := p.pieces[us][Knight]; bb != 0; {
		var from Square
		from, bb = bb.PopLSB()
		addTargets(buf, from, KnightAttackboard(from)&notOwn)
	}
	for bb := p.pieces[us][Bishop]; bb != 0; {
		var from Square
		from, bb = bb.PopLSB()
		addTargets(buf, from, BishopAttackboard(occ, from)&notOwn)
	}
	for bb := p.pieces[us][Rook]; bb != 0; {
		var from Square
		from, bb = bb.PopLSB()
		addTargets(buf, from, RookAttackboard(occ, from)&notOwn)
	}
	for bb := p.pieces[us][Queen]; bb != 0; {
		var from Square
		from, bb = bb.PopLSB()
		addTargets(buf, from, (RookAttackboard(occ, from)|BishopAttackboard(occ, from))&notOwn)
	}

	king := p.King(us)
	addTargets(buf, king, KingAttackboard(king)&notOwn)
	genCastling(p, us, buf)
}

func addTargets(buf *MoveList, from Square, targets Bitboard) {
	for targets != 0 {
		var to Square
		to, targets = targets.PopLSB()
		buf.Add(NewMove(from, to, Normal))
	}
}

func genPawnMoves(p *Position, us Color, buf *MoveList) {
	pawns := p.pieces[us][Pawn]
	occ := p.Occupied()
	promoRank := PawnPromotionRank(us)

	singlePush := PawnPushboard(occ, us, pawns)
	addPawnAdvances(buf, us, singlePush, 8, promoRank)

	startRankPawns := pawns & PawnStartRank(us)
	singleFromStart := PawnPushboard(occ, us, startRankPawns)
	doublePush := PawnPushboard(occ, us, singleFromStart) & PawnDoublePushRank(us)
	for bb := doublePush; bb != 0; {
		var to Square
		to, bb = bb.PopLSB()
		from := pawnOrigin(us, to, 16)
		buf.Add(NewMove(from, to, Normal))
	}

	captures := PawnCaptureboard(us, pawns) & p.ColorBB(us.Opponent())
	addPawnCaptureTargets(buf, us, pawns, captures, promoRank)

	if ep, ok := p.EnPassant(); ok {
		attackers := pawnEnPassantAttackers(us, ep) & pawns
		for bb := attackers; bb != 0; {
			var from Square
			from, bb = bb.PopLSB()
			buf.Add(NewMove(from, ep, EnPassant))
		}
	}
}

// addPawnAdvances expands a bitboard of single-push destinations into moves, generating all
// four promotion variants (queen, rook, bishop, knight) on the promotion rank.
func addPawnAdvances(buf *MoveList, us Color, targets Bitboard, step int, promoRank Bitboard) {
	for bb := targets; bb != 0; {
		var to Square
		to, bb = bb.PopLSB()
		from := pawnOrigin(us, to, step)
		if promoRank.IsSet(to) {
			addPromotions(buf, from, to)
		} else {
			buf.Add(NewMove(from, to, Normal))
		}
	}
}

func addPawnCaptureTargets(buf *MoveList, us Color, pawns, captureTargets, promoRank Bitboard) {
	for bb := captureTargets; bb != 0; {
		var to Square
		to, bb = bb.PopLSB()
		for _, step := range []int{7, 9} {
			from := pawnOrigin(us, to, step)
			if !from.IsValid() || !pawns.IsSet(from) {
				continue
			}
			if !pawnCaptureAligned(from, to) {
				continue
			}
			if promoRank.IsSet(to) {
				addPromotions(buf, from, to)
			} else {
				buf.Add(NewMove(from, to, Normal))
			}
		}
	}
}

// pawnCaptureAligned rejects wrap-around false positives where pawnOrigin's arithmetic lands on
// the opposite edge of the board.
func pawnCaptureAligned(from, to Square) bool {
	df := int(to.File()) - int(from.File())
	return df == 1 || df == -1
}

func addPromotions(buf *MoveList, from, to Square) {
	buf.Add(NewPromotion(from, to, Queen))
	buf.Add(NewPromotion(from, to, Rook))
	buf.Add(NewPromotion(from, to, Bishop))
	buf.Add(NewPromotion(from, to, Knight))
}

// pawnOrigin returns the square a pawn of color us came from to reach to via the given forward
// step (8 = push, 16 = double push, 7/9 = diagonal captures).
func pawnOrigin(us Color, to Square, step int) Square {
	idx := int(to)
	if us == White {
		idx -= step
	} else {
		idx += step
	}
	if idx < 0 || idx >= int(NumSquares) {
		return NoSquare
	}
	return Square(idx)
}

// pawnEnPassantAttackers returns the squares from which a pawn of color us could capture onto
// the en passant target square ep.
func pawnEnPassantAttackers(us Color, ep Square) Bitboard {
	var bb Bitboard
	for _, step := range []int{7, 9} {
		from := pawnOrigin(us, ep, step)
		if from.IsValid() && pawnCaptureAligned(from, ep) {
			bb = bb.Set(from)
		}
	}
	return bb
}

// genCastling appends both castling moves when the path is clear and neither the king's start,
// transit, nor destination square is attacked (spec §4.3's castling legality is checked here,
// at generation time, rather than deferred to the make/unmake legality probe, since none of
// those three squares can be validated after the king has already moved through them).
func genCastling(p *Position, us Color, buf *MoveList) {
	occ := p.Occupied()
	if us == White {
		if p.castling.IsAllowed(WhiteKingSideCastle) && occ&(BitMask(F1)|BitMask(G1)) == 0 &&
			!p.IsAttacked(us, E1) && !p.IsAttacked(us, F1) && !p.IsAttacked(us, G1) {
			buf.Add(NewMove(E1, G1, Castling))
		}
		if p.castling.IsAllowed(WhiteQueenSideCastle) && occ&(BitMask(B1)|BitMask(C1)|BitMask(D1)) == 0 &&
			!p.IsAttacked(us, E1) && !p.IsAttacked(us, D1) && !p.IsAttacked(us, C1) {
			buf.Add(NewMove(E1, C1, Castling))
		}
		return
	}
	if p.castling.IsAllowed(BlackKingSideCastle) && occ&(BitMask(F8)|BitMask(G8)) == 0 &&
		!p.IsAttacked(us, E8) && !p.IsAttacked(us, F8) && !p.IsAttacked(us, G8) {
		buf.Add(NewMove(E8, G8, Castling))
	}
	if p.castling.IsAllowed(BlackQueenSideCastle) && occ&(BitMask(B8)|BitMask(C8)|BitMask(D8)) == 0 &&
		!p.IsAttacked(us, E8) && !p.IsAttacked(us, D8) && !p.IsAttacked(us, C8) {
		buf.Add(NewMove(E8, C8, Castling))
	}
}
