package base

import (
	"fmt"
	"math/bits"
	"strings"
)

// Bitboard is a 64-bit set, bit i is square i.
type Bitboard uint64

const EmptyBB Bitboard = 0

// SquareBB returns the single-bit board for sq, EmptyBB when sq is off the board.
func SquareBB(sq Square) Bitboard {
	if sq.IsValid() {
		return 1 << uint(sq)
	}
	return EmptyBB
}

func (b Bitboard) Set(sq Square) Bitboard { return b | SquareBB(sq) }

func (b Bitboard) Occupied(sq Square) bool {
	return sq.IsValid() && b&SquareBB(sq) != 0
}

func (b Bitboard) Count() int { return bits.OnesCount64(uint64(b)) }

// Squares lists the set squares in ascending order.
func (b Bitboard) Squares() []Square {
	out := make([]Square, 0, b.Count())
	for rest := uint64(b); rest != 0; rest &= rest - 1 {
		out = append(out, Square(bits.TrailingZeros64(rest)))
	}
	return out
}

func (b Bitboard) String() string {
	return fmt.Sprintf("0x%016x", uint64(b))
}

// Draw renders the board as an 8x8 grid, rank 8 on top.
func (b Bitboard) Draw() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d ", rank+1)
		for file := 0; file < 8; file++ {
			if b.Occupied(NewSquare(file, rank)) {
				sb.WriteString(" 1")
			} else {
				sb.WriteString(" .")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   a b c d e f g h\n")
	return sb.String()
}
