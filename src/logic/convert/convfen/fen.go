package convfen

import (
	"errors"
	"fenboard/src/base"
	"fenboard/src/board"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidFEN covers every grammar or consistency failure; the cause is
	// not reported.
	ErrInvalidFEN = errors.New("invalid FEN")
	// ErrBoardConstruction means a FEN passed validation but no board could be
	// built from it.
	ErrBoardConstruction = errors.New("board construction failed")
)

// ConvertFENToBoard validates fen and decodes it into a Board.
func ConvertFENToBoard(fen string) (*board.Board, error) {
	if !IsFENValid(fen) {
		return nil, ErrInvalidFEN
	}
	b, err := buildBoard(extractComponents(fen))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBoardConstruction, err)
	}
	return b, nil
}

// CreateBoardFromFEN is ConvertFENToBoard.
func CreateBoardFromFEN(fen string) (*board.Board, error) {
	return ConvertFENToBoard(fen)
}

// ConvertBoardToFEN renders b as canonical FEN.
func ConvertBoardToFEN(b *board.Board) string {
	mb := b.Mailbox()
	st := b.State()

	// pieces
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			pc := mb[base.NewSquare(file, rank)]
			if pc == base.EmptyPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteRune(base.ConvertRuneFromPiece(pc))
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	// side to move
	if st.SideToMove == base.Black {
		sb.WriteString(" b ")
	} else {
		sb.WriteString(" w ")
	}

	// castling
	cast := ""
	if st.WhiteCastleState.Kingside {
		cast += "K"
	}
	if st.WhiteCastleState.Queenside {
		cast += "Q"
	}
	if st.BlackCastleState.Kingside {
		cast += "k"
	}
	if st.BlackCastleState.Queenside {
		cast += "q"
	}
	if cast == "" {
		cast = "-"
	}
	sb.WriteString(cast + " ")

	// en passant
	sb.WriteString(st.EnPassantTargetSquare.String() + " ")

	// moves
	sb.WriteString(strconv.Itoa(st.HalfmoveClock) + " ")
	sb.WriteString(strconv.Itoa(st.FullmoveCounter))

	return sb.String()
}
