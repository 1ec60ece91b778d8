package convfen

import (
	"fenboard/src/base"
	"fenboard/src/board"
	"fmt"
	"strconv"
)

// place sets sq in the side aggregate and in the kind board of p.
func place(set *board.BitboardSet, p base.Piece, sq base.Square) {
	bb := base.SquareBB(sq)
	if p.Color() == base.White {
		set.WhitePieces |= bb
	} else {
		set.BlackPieces |= bb
	}
	switch p.Kind() {
	case base.Pawn:
		set.Pawns |= bb
	case base.Knight:
		set.Knights |= bb
	case base.Bishop:
		set.Bishops |= bb
	case base.Rook:
		set.Rooks |= bb
	case base.Queen:
		set.Queens |= bb
	case base.King:
		set.Kings |= bb
	}
}

func buildBitboards(rows [8]string) board.BitboardSet {
	var set board.BitboardSet
	for r, row := range rows {
		rank := 7 - r
		file := 0
		for _, ch := range row {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			place(&set, base.ConvertPieceFromRune(ch), base.NewSquare(file, rank))
			file++
		}
	}
	return set
}

func buildCastling(castling string) (white, black board.CastlingState) {
	for _, ch := range castling {
		switch ch {
		case 'K':
			white.Kingside = true
		case 'Q':
			white.Queenside = true
		case 'k':
			black.Kingside = true
		case 'q':
			black.Queenside = true
		}
	}
	return white, black
}

// buildBoard turns validated components into a Board. Any error here means
// the validator let something through, never that the input was bad.
func buildBoard(fc fenComponents) (*board.Board, error) {
	var st board.BoardState
	var err error

	if fc.sideToMove == 'b' {
		st.SideToMove = base.Black
	}
	st.WhiteCastleState, st.BlackCastleState = buildCastling(fc.castling)

	st.EnPassantTargetSquare = base.NoSquare
	if fc.enPassant != "-" {
		if st.EnPassantTargetSquare, err = base.SquareFromAlgebraic(fc.enPassant); err != nil {
			return nil, fmt.Errorf("en passant %q: %w", fc.enPassant, err)
		}
	}
	if st.HalfmoveClock, err = strconv.Atoi(fc.halfmoveClock); err != nil {
		return nil, fmt.Errorf("halfmove clock %q: %w", fc.halfmoveClock, err)
	}
	if st.FullmoveCounter, err = strconv.Atoi(fc.fullmoveCounter); err != nil {
		return nil, fmt.Errorf("fullmove counter %q: %w", fc.fullmoveCounter, err)
	}

	return board.New(buildBitboards(fc.rows), st)
}
