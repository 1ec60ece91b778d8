package base

import "fmt"

// Forsyth–Edwards Notation
const FEN_START_GAME string = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

type Color uint8

const (
	White Color = 0
	Black Color = 1
)

func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "white"
}

// colorless piece category
type PieceKind uint8

const (
	NoKind PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

func (k PieceKind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return "none"
	}
}

type Piece uint8

const (
	WKing        Piece = 19
	WQueen       Piece = 18
	WRook        Piece = 15
	WBishop      Piece = 14
	WKnight      Piece = 13
	WPawn        Piece = 11
	BKing        Piece = 9
	BQueen       Piece = 8
	BRook        Piece = 5
	BBishop      Piece = 4
	BKnight      Piece = 3
	BPawn        Piece = 1
	EmptyPiece   Piece = 99
	InvalidPiece Piece = 0
)

// Mailbox is a square-indexed view of a board, a1 = 0 .. h8 = 63.
type Mailbox [64]Piece

func PieceIsWhite(p Piece) bool {
	return p >= WPawn && p <= WKing
}

func PieceIsBlack(p Piece) bool {
	return p >= BPawn && p <= BKing
}

// Kind returns the colorless category of p, NoKind for empty or invalid pieces.
func (p Piece) Kind() PieceKind {
	switch p {
	case WPawn, BPawn:
		return Pawn
	case WKnight, BKnight:
		return Knight
	case WBishop, BBishop:
		return Bishop
	case WRook, BRook:
		return Rook
	case WQueen, BQueen:
		return Queen
	case WKing, BKing:
		return King
	default:
		return NoKind
	}
}

// Color is meaningful only for real pieces; EmptyPiece reports White.
func (p Piece) Color() Color {
	if PieceIsBlack(p) {
		return Black
	}
	return White
}

func (p Piece) String() string {
	switch p {
	case EmptyPiece:
		return "empty"
	case InvalidPiece:
		return "invalid"
	}
	return p.Color().String() + " " + p.Kind().String()
}

// NewPiece combines a colour and a category; NoKind yields EmptyPiece.
func NewPiece(c Color, k PieceKind) Piece {
	var w, b Piece
	switch k {
	case Pawn:
		w, b = WPawn, BPawn
	case Knight:
		w, b = WKnight, BKnight
	case Bishop:
		w, b = WBishop, BBishop
	case Rook:
		w, b = WRook, BRook
	case Queen:
		w, b = WQueen, BQueen
	case King:
		w, b = WKing, BKing
	default:
		return EmptyPiece
	}
	if c == Black {
		return b
	}
	return w
}

func ConvertPieceFromRune(p rune) Piece {
	switch p {
	case 'P':
		return WPawn
	case 'R':
		return WRook
	case 'N':
		return WKnight
	case 'B':
		return WBishop
	case 'Q':
		return WQueen
	case 'K':
		return WKing
	case 'p':
		return BPawn
	case 'r':
		return BRook
	case 'n':
		return BKnight
	case 'b':
		return BBishop
	case 'q':
		return BQueen
	case 'k':
		return BKing
	default:
		return InvalidPiece
	}
}

func ConvertRuneFromPiece(p Piece) rune {
	switch p {
	case WPawn:
		return 'P'
	case WKnight:
		return 'N'
	case WBishop:
		return 'B'
	case WRook:
		return 'R'
	case WQueen:
		return 'Q'
	case WKing:
		return 'K'
	case BPawn:
		return 'p'
	case BKnight:
		return 'n'
	case BBishop:
		return 'b'
	case BRook:
		return 'r'
	case BQueen:
		return 'q'
	case BKing:
		return 'k'
	default:
		return '.'
	}
}

// Square is a board index, a1 = 0, h1 = 7, a8 = 56, h8 = 63.
type Square int

const NoSquare Square = -1

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
)

const (
	A8 Square = iota + 56
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

func NewSquare(file, rank int) Square {
	return Square(rank*8 + file)
}

func (sq Square) File() int { return int(sq) % 8 }
func (sq Square) Rank() int { return int(sq) / 8 }

func (sq Square) IsValid() bool {
	return sq >= 0 && sq < 64
}

func (sq Square) String() string {
	s, err := AlgebraicFromSquare(sq)
	if err != nil {
		return "-"
	}
	return s
}

func SquareFromAlgebraic(pos string) (Square, error) {
	// 'a' ~ 'h' to 0-7
	// '1' ~ '8' to 0-7
	if len(pos) != 2 || pos[0] < 'a' || pos[0] > 'h' || pos[1] < '1' || pos[1] > '8' {
		return NoSquare, fmt.Errorf("invalid position %q", pos)
	}
	return NewSquare(int(pos[0]-'a'), int(pos[1]-'1')), nil
}

func AlgebraicFromSquare(sq Square) (string, error) {
	if !sq.IsValid() {
		return "", fmt.Errorf("invalid square index %d", int(sq))
	}
	return string([]byte{byte(sq.File()) + 'a', byte(sq.Rank()) + '1'}), nil
}
