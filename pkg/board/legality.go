package board

// GenerateLegalMoves fills buf with every legal move in p, applying the hybrid filter of spec
// §4.4 to the pseudo-legal candidates in pseudo: most moves are validated by a direct
// ray-membership check against the mover's pin, while king moves and en passant captures (which
// can expose the king along a rank a pin map doesn't track) are validated by make/unmake
// probing, and a pinned knight is always illegal since it has no ray to stay on.
func GenerateLegalMoves(p *Position, pseudo, buf *MoveList) {
	f := NewLegalityFilter(p)
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i)
		if f.IsLegal(p, m) {
			buf.Add(m)
		}
	}
}

// LegalityFilter precomputes the check/pin state for one position, so a caller that needs to
// test many candidate moves one at a time (quiescence search, which only wants to filter the
// handful of pseudo-legal captures) doesn't redo that work per move.
type LegalityFilter struct {
	us       Color
	king     Square
	checkers Bitboard
	pins     []pinInfo
}

// NewLegalityFilter captures the legality state of p for the side to move.
func NewLegalityFilter(p *Position) LegalityFilter {
	us := p.turn
	king := p.King(us)
	return LegalityFilter{us: us, king: king, checkers: attackersOf(p, us, king), pins: computePins(p, us, king)}
}

// IsLegal reports whether the pseudo-legal move m is legal in the position the filter was built
// from.
func (f LegalityFilter) IsLegal(p *Position, m Move) bool {
	return isLegalMove(p, f.us, f.king, f.checkers, f.pins, m)
}

// pinInfo maps a pinned piece's square to the ray direction linking it to its king; every legal
// move for that piece must keep it somewhere along that same ray.
type pinInfo struct {
	sq  Square
	dir int
}

// computePins walks outward from the king along all 8 directions. A pin exists when the nearest
// piece on a ray belongs to us and the next piece beyond it is an enemy slider that attacks
// along that same line.
func computePins(p *Position, us Color, king Square) []pinInfo {
	opp := us.Opponent()
	diagSliders := p.pieces[opp][Bishop] | p.pieces[opp][Queen]
	orthoSliders := p.pieces[opp][Rook] | p.pieces[opp][Queen]
	occ := p.Occupied()

	var pins []pinInfo
	for d := 0; d < NumDirections; d++ {
		relevant := orthoSliders
		if d == DirNE || d == DirSE || d == DirSW || d == DirNW {
			relevant = diagSliders
		}

		ray := rays[d][king]
		blockers := ray & occ
		if blockers == 0 {
			continue
		}
		first := nearestBlocker(blockers, d)
		if !p.ColorBB(us).IsSet(first) {
			continue // nearest piece on the line is an enemy piece (a direct check, not a pin)
		}

		beyond := ray &^ (BitMask(first) | RayBetween(king, first))
		restBlockers := beyond & occ
		if restBlockers == 0 {
			continue
		}
		second := nearestBlocker(restBlockers, d)
		if relevant.IsSet(second) {
			pins = append(pins, pinInfo{sq: first, dir: d})
		}
	}
	return pins
}

func nearestBlocker(blockers Bitboard, dir int) Square {
	if positiveDir[dir] {
		return blockers.LSB()
	}
	return blockers.MSB()
}

func pinDirOf(pins []pinInfo, sq Square) (int, bool) {
	for _, pi := range pins {
		if pi.sq == sq {
			return pi.dir, true
		}
	}
	return 0, false
}

// attackersOf returns the bitboard of opponent pieces giving check to a square owned by us.
func attackersOf(p *Position, us Color, sq Square) Bitboard {
	opp := us.Opponent()
	occ := p.Occupied()

	var attackers Bitboard
	attackers |= KnightAttackboard(sq) & p.pieces[opp][Knight]
	attackers |= KingAttackboard(sq) & p.pieces[opp][King]
	attackers |= pawnAttackersOf(us, sq) & p.pieces[opp][Pawn]
	attackers |= BishopAttackboard(occ, sq) & (p.pieces[opp][Bishop] | p.pieces[opp][Queen])
	attackers |= RookAttackboard(occ, sq) & (p.pieces[opp][Rook] | p.pieces[opp][Queen])
	return attackers
}

// pawnAttackersOf returns the squares from which an opposing pawn could capture onto sq, a
// square owned by us. It is the reverse of PawnCaptureboard: a pawn of color us standing on sq
// would itself capture onto exactly the squares an enemy pawn attacking sq stands on.
func pawnAttackersOf(us Color, sq Square) Bitboard {
	return PawnCaptureboard(us, BitMask(sq))
}

// isLegalMove applies spec §4.4's table to a single pseudo-legal move.
func isLegalMove(p *Position, us Color, king Square, checkers Bitboard, pins []pinInfo, m Move) bool {
	from := m.From()

	if from == king {
		return probeLegal(p, m)
	}

	numCheckers := checkers.PopCount()
	if numCheckers >= 2 {
		return false // double check: only a king move escapes, handled above
	}

	if dir, pinned := pinDirOf(pins, from); pinned {
		_, piece, _ := p.At(from)
		if piece == Knight {
			return false // a pinned knight has no square along the pin ray to move to
		}
		if m.IsEnPassant() {
			return probeLegal(p, m) // the capture removes two men from the line; a ray check can't see that
		}
		if toDir, aligned := RayDirection(king, m.To()); !aligned || toDir != dir {
			return false
		}
	}

	if numCheckers == 1 {
		if m.IsEnPassant() {
			return probeLegal(p, m)
		}
		checkerSq := checkers.LSB()
		to := m.To()
		if to == checkerSq {
			return true // capturing the lone checker
		}
		return RayBetween(king, checkerSq).IsSet(to) // blocking the check
	}

	if m.IsEnPassant() {
		return probeLegal(p, m) // the classic pinned-pair-on-a-rank en passant exception
	}
	return true
}

// probeLegal makes the move, checks whether the king is left in check, and unmakes it. Reserved
// for the handful of cases a static ray/pin check can't decide cheaply: king moves (into a
// square the king's own departure might newly expose) and en passant (which can uncover a check
// along the capturing pawns' shared rank).
func probeLegal(p *Position, m Move) bool {
	us := p.turn
	p.MakeMove(m)
	ok := !p.IsAttacked(us, p.King(us))
	p.UnmakeMove()
	return ok
}
