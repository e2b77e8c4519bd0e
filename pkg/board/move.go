package board

import "fmt"

// MoveType indicates the type of move. 4 bits.
type MoveType uint8

const (
	Normal MoveType = iota
	EnPassant
	Castling
	PromoteKnight
	PromoteBishop
	PromoteRook
	PromoteQueen
)

// IsPromotion returns true iff the type is one of the four promotion variants.
func (t MoveType) IsPromotion() bool {
	return t >= PromoteKnight && t <= PromoteQueen
}

// PromotedPiece returns the promoted-to piece for a promotion move type.
func (t MoveType) PromotedPiece() Piece {
	switch t {
	case PromoteKnight:
		return Knight
	case PromoteBishop:
		return Bishop
	case PromoteRook:
		return Rook
	case PromoteQueen:
		return Queen
	default:
		return NoPiece
	}
}

func promotionMoveType(p Piece) MoveType {
	switch p {
	case Knight:
		return PromoteKnight
	case Bishop:
		return PromoteBishop
	case Rook:
		return PromoteRook
	case Queen:
		return PromoteQueen
	default:
		return Normal
	}
}

// Move is a 16-bit packed move: bits 0-5 = from square, bits 6-11 = to square, bits 12-15 =
// move-type tag (spec §3). It is comparable and hashable as-is, which MCTS aggregation relies
// on, and carries no contextual metadata -- captured piece, check, etc. are derived from the
// Position the move is applied to.
type Move uint16

// ZeroMove is the sentinel "no move" value (A1-A1, Normal), never produced by generation.
const ZeroMove Move = 0

const (
	moveFromMask = 0x3f
	moveToShift  = 6
	moveToMask   = 0x3f
	moveTypeShift = 12
)

// NewMove packs a from/to/type triple into a Move.
func NewMove(from, to Square, t MoveType) Move {
	return Move(uint16(from)&moveFromMask | (uint16(to)&moveToMask)<<moveToShift | uint16(t)<<moveTypeShift)
}

// NewPromotion packs a promotion move to the given piece.
func NewPromotion(from, to Square, promotion Piece) Move {
	return NewMove(from, to, promotionMoveType(promotion))
}

func (m Move) From() Square {
	return Square(m & moveFromMask)
}

func (m Move) To() Square {
	return Square((m >> moveToShift) & moveToMask)
}

func (m Move) Type() MoveType {
	return MoveType(m >> moveTypeShift)
}

func (m Move) IsPromotion() bool {
	return m.Type().IsPromotion()
}

func (m Move) Promotion() Piece {
	return m.Type().PromotedPiece()
}

func (m Move) IsEnPassant() bool {
	return m.Type() == EnPassant
}

func (m Move) IsCastling() bool {
	return m.Type() == Castling
}

// ParseMove parses a move in pure algebraic coordinate notation, such as "a2a4" or "a7a8q".
// The move type (castling, en passant) is not recoverable from notation alone; callers should
// match the parsed from/to/promotion against a legal move list to recover the exact Move.
func ParseMove(str string) (Move, error) {
	runes := []rune(str)

	if len(runes) < 4 || len(runes) > 5 {
		return ZeroMove, fmt.Errorf("invalid move: %q", str)
	}

	from, err := ParseSquare(runes[0], runes[1])
	if err != nil {
		return ZeroMove, fmt.Errorf("invalid from square: %q: %w", str, err)
	}
	to, err := ParseSquare(runes[2], runes[3])
	if err != nil {
		return ZeroMove, fmt.Errorf("invalid to square: %q: %w", str, err)
	}

	if len(runes) == 5 {
		promo, ok := ParsePiece(runes[4])
		if !ok || promo == Pawn || promo == King {
			return ZeroMove, fmt.Errorf("invalid promotion piece: %q", str)
		}
		return NewPromotion(from, to, promo), nil
	}
	return NewMove(from, to, Normal), nil
}

// Equals returns true iff the two moves share the same from/to/promotion, ignoring the move-type
// tag: a coordinate-notation move parsed by ParseMove is always Normal-typed even when the legal
// move it denotes is a Castling or EnPassant move, so matching on the full scalar would reject
// castling and en passant moves entered in notation.
func (m Move) Equals(o Move) bool {
	return m.From() == o.From() && m.To() == o.To() && m.Promotion() == o.Promotion()
}

func (m Move) String() string {
	if m.IsPromotion() {
		return fmt.Sprintf("%v%v%v", m.From(), m.To(), m.Promotion())
	}
	return fmt.Sprintf("%v%v", m.From(), m.To())
}
