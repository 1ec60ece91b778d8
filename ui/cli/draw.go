package cli

import (
	"fenboard/src/base"
	"fenboard/src/board"
	"fmt"
	"io"
)

type DrawFunc func(w io.Writer, mb base.Mailbox)

// ANSI-code
const (
	reset   = "\033[0m"
	lightBg = "\033[47m"
	darkBg  = "\033[100m"
	whiteF  = "\033[97m"
	blackF  = "\033[30m"
	dimF    = "\033[90m"
)

func pieceGlyph(p base.Piece) string {
	switch p {
	case base.WKing:
		return "♔"
	case base.WQueen:
		return "♕"
	case base.WRook:
		return "♖"
	case base.WBishop:
		return "♗"
	case base.WKnight:
		return "♘"
	case base.WPawn:
		return "♙"
	case base.BKing:
		return "♚"
	case base.BQueen:
		return "♛"
	case base.BRook:
		return "♜"
	case base.BBishop:
		return "♝"
	case base.BKnight:
		return "♞"
	case base.BPawn:
		return "♟"
	case base.EmptyPiece:
		return " "
	default:
		return "?"
	}
}

// PrintMailbox draws a colored board, rank 8 on top.
func PrintMailbox(w io.Writer, m base.Mailbox) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "   a  b  c  d  e  f  g  h")
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(w, "%d ", rank+1)
		for file := 0; file < 8; file++ {
			p := m[base.NewSquare(file, rank)]
			g := pieceGlyph(p)

			// a1 is dark
			lightSquare := (rank+file)%2 == 1

			var bg, fg string
			if lightSquare {
				bg = lightBg
				if g == " " {
					fg = dimF
				} else {
					fg = blackF
				}
			} else {
				bg = darkBg
				if base.PieceIsWhite(p) {
					fg = whiteF
				} else if base.PieceIsBlack(p) {
					fg = blackF
				} else {
					fg = dimF
				}
			}

			fmt.Fprintf(w, "%s%s %s %s", bg, fg, g, reset)
		}
		fmt.Fprintf(w, " %d\n", rank+1)
	}
	fmt.Fprintln(w, "   a  b  c  d  e  f  g  h")
	fmt.Fprintln(w)
}

// PrintPlain draws the board with FEN letters and no escape codes.
func PrintPlain(w io.Writer, m base.Mailbox) {
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(w, "%d ", rank+1)
		for file := 0; file < 8; file++ {
			fmt.Fprintf(w, " %c", base.ConvertRuneFromPiece(m[base.NewSquare(file, rank)]))
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, "   a b c d e f g h")
}

func castleString(white, black board.CastlingState) string {
	s := ""
	if white.Kingside {
		s += "K"
	}
	if white.Queenside {
		s += "Q"
	}
	if black.Kingside {
		s += "k"
	}
	if black.Queenside {
		s += "q"
	}
	if s == "" {
		return "-"
	}
	return s
}

func PrintState(w io.Writer, st board.BoardState) {
	fmt.Fprintf(w, "Side to move: %s\n", st.SideToMove)
	fmt.Fprintf(w, "Castling: %s\n", castleString(st.WhiteCastleState, st.BlackCastleState))
	fmt.Fprintf(w, "En passant: %s\n", st.EnPassantTargetSquare)
	fmt.Fprintf(w, "Halfmove clock: %d\n", st.HalfmoveClock)
	fmt.Fprintf(w, "Fullmove counter: %d\n", st.FullmoveCounter)
}

func PrintBitboards(w io.Writer, bb board.BitboardSet) {
	rows := []struct {
		name string
		bb   base.Bitboard
	}{
		{"white", bb.WhitePieces},
		{"black", bb.BlackPieces},
		{"pawns", bb.Pawns},
		{"rooks", bb.Rooks},
		{"knights", bb.Knights},
		{"bishops", bb.Bishops},
		{"queens", bb.Queens},
		{"kings", bb.Kings},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%-8s %s (%d)\n", r.name, r.bb, r.bb.Count())
	}
}
