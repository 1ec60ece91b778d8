package board

import (
	"errors"
	"fenboard/src/base"
	"fmt"
)

// BitboardSet holds side aggregates and colorless piece categories.
// A square holds a white knight iff it is set in both WhitePieces and Knights.
type BitboardSet struct {
	WhitePieces base.Bitboard
	BlackPieces base.Bitboard
	Pawns       base.Bitboard
	Rooks       base.Bitboard
	Knights     base.Bitboard
	Bishops     base.Bitboard
	Queens      base.Bitboard
	Kings       base.Bitboard
}

type CastlingState struct {
	Kingside  bool
	Queenside bool
}

type BoardState struct {
	SideToMove            base.Color
	WhiteCastleState      CastlingState
	BlackCastleState      CastlingState
	EnPassantTargetSquare base.Square // base.NoSquare if none
	HalfmoveClock         int
	FullmoveCounter       int
}

// Board is immutable once built; use New to create one.
type Board struct {
	bitboards BitboardSet
	state     BoardState
}

var (
	ErrColorOverlap    = errors.New("square occupied by both colors")
	ErrKindOverlap     = errors.New("square holds more than one piece kind")
	ErrOccupancy       = errors.New("piece kinds do not match side occupancy")
	ErrKingCount       = errors.New("expected exactly one king per side")
	ErrEnPassantSquare = errors.New("en passant square out of range")
	ErrMoveCounters    = errors.New("move counters out of range")
)

// New checks bb and st against the board invariants and returns the board.
func New(bb BitboardSet, st BoardState) (*Board, error) {
	if err := bb.Validate(); err != nil {
		return nil, err
	}
	if st.EnPassantTargetSquare != base.NoSquare && !st.EnPassantTargetSquare.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrEnPassantSquare, int(st.EnPassantTargetSquare))
	}
	if st.HalfmoveClock < 0 || st.FullmoveCounter < 1 {
		return nil, fmt.Errorf("%w: halfmove %d, fullmove %d", ErrMoveCounters, st.HalfmoveClock, st.FullmoveCounter)
	}
	return &Board{bitboards: bb, state: st}, nil
}

func (bb BitboardSet) kinds() [6]base.Bitboard {
	return [6]base.Bitboard{bb.Pawns, bb.Knights, bb.Bishops, bb.Rooks, bb.Queens, bb.Kings}
}

// Validate reports the first broken invariant of the set, or nil.
func (bb BitboardSet) Validate() error {
	if bb.WhitePieces&bb.BlackPieces != 0 {
		return fmt.Errorf("%w: %s", ErrColorOverlap, bb.WhitePieces&bb.BlackPieces)
	}
	var union base.Bitboard
	for _, k := range bb.kinds() {
		if union&k != 0 {
			return fmt.Errorf("%w: %s", ErrKindOverlap, union&k)
		}
		union |= k
	}
	if union != bb.WhitePieces|bb.BlackPieces {
		return ErrOccupancy
	}
	if bb.Kings.Count() != 2 || (bb.Kings&bb.WhitePieces).Count() != 1 || (bb.Kings&bb.BlackPieces).Count() != 1 {
		return fmt.Errorf("%w: kings %s", ErrKingCount, bb.Kings)
	}
	return nil
}

func (b *Board) Bitboards() BitboardSet { return b.bitboards }

func (b *Board) State() BoardState { return b.state }

// PieceAt returns EmptyPiece for vacant squares and InvalidPiece off the board.
func (b *Board) PieceAt(sq base.Square) base.Piece {
	if !sq.IsValid() {
		return base.InvalidPiece
	}
	var color base.Color
	switch {
	case b.bitboards.WhitePieces.Occupied(sq):
		color = base.White
	case b.bitboards.BlackPieces.Occupied(sq):
		color = base.Black
	default:
		return base.EmptyPiece
	}
	for i, k := range b.bitboards.kinds() {
		if k.Occupied(sq) {
			return base.NewPiece(color, base.Pawn+base.PieceKind(i))
		}
	}
	return base.InvalidPiece
}

func (b *Board) Mailbox() base.Mailbox {
	var mb base.Mailbox
	for sq := base.Square(0); sq < 64; sq++ {
		mb[sq] = b.PieceAt(sq)
	}
	return mb
}

// KingSquare returns the square of c's king.
func (b *Board) KingSquare(c base.Color) base.Square {
	side := b.bitboards.WhitePieces
	if c == base.Black {
		side = b.bitboards.BlackPieces
	}
	sqs := (b.bitboards.Kings & side).Squares()
	if len(sqs) == 0 {
		return base.NoSquare
	}
	return sqs[0]
}

func (b *Board) Equal(other *Board) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.bitboards == other.bitboards && b.state == other.state
}
