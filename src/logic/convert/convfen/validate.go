package convfen

import "math"

// cursor is the read position inside a FEN string. Validators take it by
// value and return the advanced copy.
type cursor int

// a rank never needs more than 8 characters ("pppppppp")
const maxRankLen = 8

// move counters must fit a 32-bit int
const maxMoveCounter = math.MaxInt32

func isPieceLetter(c byte) bool {
	switch c {
	case 'P', 'N', 'B', 'R', 'Q', 'K', 'p', 'n', 'b', 'r', 'q', 'k':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isPiecePlacementCharValid accepts piece letters and gap digits 1-8.
func isPiecePlacementCharValid(c byte) bool {
	if c == '0' || c == '9' {
		return false
	}
	return isDigit(c) || isPieceLetter(c)
}

// isRankValid reports whether rank describes exactly 8 files with no two
// adjacent gap digits.
func isRankValid(rank string) bool {
	files := 0
	expectPiece := false
	for i := 0; i < len(rank); i++ {
		c := rank[i]
		if !isPiecePlacementCharValid(c) {
			return false
		}
		if isDigit(c) {
			if expectPiece {
				return false
			}
			files += int(c - '0')
			expectPiece = true
		} else {
			files++
			expectPiece = false
		}
	}
	return files == 8
}

// areRanksValid checks the 8 ranks of the placement field and returns the
// index of the space that terminates it.
func areRanksValid(fen string) (int, bool) {
	i := 0
	for rank := 0; rank < 8; rank++ {
		end := byte('/')
		if rank == 7 {
			end = ' '
		}
		start := i
		for ; i < len(fen) && fen[i] != end; i++ {
			if i-start >= maxRankLen {
				return 0, false
			}
		}
		if i >= len(fen) {
			return 0, false
		}
		if !isRankValid(fen[start:i]) {
			return 0, false
		}
		i++ // past the terminator
	}
	return i - 1, true
}

// areKingCountsValid wants exactly one K and one k before end.
func areKingCountsValid(fen string, end int) bool {
	white, black := 0, 0
	for i := 0; i < end && i < len(fen); i++ {
		switch fen[i] {
		case 'K':
			white++
		case 'k':
			black++
		}
	}
	return white == 1 && black == 1
}

func isPiecePlacementValid(fen string) (int, bool) {
	end, ok := areRanksValid(fen)
	if !ok {
		return 0, false
	}
	if !areKingCountsValid(fen, end) {
		return 0, false
	}
	return end, true
}

func isSideToMoveValid(fen string, c cursor) (cursor, bool) {
	if int(c) >= len(fen) {
		return c, false
	}
	if fen[c] != 'w' && fen[c] != 'b' {
		return c, false
	}
	return c + 1, true
}

type castlingRights struct {
	whiteKingside, whiteQueenside bool
	blackKingside, blackQueenside bool
}

func (r castlingRights) white() bool { return r.whiteKingside || r.whiteQueenside }
func (r castlingRights) black() bool { return r.blackKingside || r.blackQueenside }

// readCastlingRights consumes a non-empty run of K, Q, k, q with no repeats.
func readCastlingRights(fen string, c cursor) (cursor, castlingRights, bool) {
	var rights castlingRights
	start := c
	for ; int(c) < len(fen); c++ {
		var flag *bool
		switch fen[c] {
		case 'K':
			flag = &rights.whiteKingside
		case 'Q':
			flag = &rights.whiteQueenside
		case 'k':
			flag = &rights.blackKingside
		case 'q':
			flag = &rights.blackQueenside
		}
		if flag == nil {
			break
		}
		if *flag {
			return start, castlingRights{}, false
		}
		*flag = true
	}
	if c == start {
		return start, castlingRights{}, false
	}
	return c, rights, true
}

// placementCharAt returns the piece letter standing on file of the given
// FEN row (0 = rank 8) or 0 for an empty square.
func placementCharAt(placement string, row, file int) byte {
	i := 0
	for r := 0; r < row; r++ {
		for i < len(placement) && placement[i] != '/' {
			i++
		}
		i++
	}
	f := 0
	for ; i < len(placement) && placement[i] != '/'; i++ {
		c := placement[i]
		if isDigit(c) {
			f += int(c - '0')
			if f > file {
				return 0
			}
			continue
		}
		if f == file {
			return c
		}
		f++
	}
	return 0
}

// e1 lives on the last row of the placement field, e8 on the first.
func isWhiteKingOnE1(placement string) bool { return placementCharAt(placement, 7, 4) == 'K' }
func isBlackKingOnE8(placement string) bool { return placementCharAt(placement, 0, 4) == 'k' }

// checkCastlingPlacement only verifies the king is home; rook presence and
// move history are not checked.
func checkCastlingPlacement(placement string, rights castlingRights) bool {
	if rights.white() && !isWhiteKingOnE1(placement) {
		return false
	}
	if rights.black() && !isBlackKingOnE8(placement) {
		return false
	}
	return true
}

// isCastlingAbilityValid needs placementEnd to look up the king squares.
func isCastlingAbilityValid(fen string, c cursor, placementEnd int) (cursor, bool) {
	if int(c) >= len(fen) {
		return c, false
	}
	if fen[c] == '-' {
		return c + 1, true
	}
	next, rights, ok := readCastlingRights(fen, c)
	if !ok {
		return c, false
	}
	if !checkCastlingPlacement(fen[:placementEnd], rights) {
		return c, false
	}
	return next, true
}

// isEnPassantTargetValid accepts "-" or a square on rank 3 or 6.
func isEnPassantTargetValid(fen string, c cursor) (cursor, bool) {
	if int(c) >= len(fen) {
		return c, false
	}
	if fen[c] == '-' {
		return c + 1, true
	}
	if int(c)+1 >= len(fen) {
		return c, false
	}
	file, rank := fen[c], fen[c+1]
	if file < 'a' || file > 'h' {
		return c, false
	}
	if rank != '3' && rank != '6' {
		return c, false
	}
	return c + 2, true
}

// readCounter consumes one or more digits and returns their value.
func readCounter(fen string, c cursor) (cursor, int, bool) {
	var value int64
	start := c
	for ; int(c) < len(fen) && isDigit(fen[c]); c++ {
		value = value*10 + int64(fen[c]-'0')
		if value > maxMoveCounter {
			return start, 0, false
		}
	}
	if c == start {
		return start, 0, false
	}
	return c, int(value), true
}

func isHalfmoveClockValid(fen string, c cursor) (cursor, bool) {
	next, _, ok := readCounter(fen, c)
	if !ok {
		return c, false
	}
	return next, true
}

func isFullmoveCounterValid(fen string, c cursor) (cursor, bool) {
	next, value, ok := readCounter(fen, c)
	if !ok || value < 1 {
		return c, false
	}
	return next, true
}

// expectSpace steps over the single space separating two fields.
func expectSpace(fen string, c cursor) (cursor, bool) {
	if int(c) >= len(fen) || fen[c] != ' ' {
		return c, false
	}
	return c + 1, true
}

// validate runs every field check in order and returns the index of the
// space ending the piece-placement field.
func validate(fen string) (int, bool) {
	end, ok := isPiecePlacementValid(fen)
	if !ok {
		return 0, false
	}
	c := cursor(end)
	if c, ok = expectSpace(fen, c); !ok {
		return 0, false
	}
	if c, ok = isSideToMoveValid(fen, c); !ok {
		return 0, false
	}
	if c, ok = expectSpace(fen, c); !ok {
		return 0, false
	}
	if c, ok = isCastlingAbilityValid(fen, c, end); !ok {
		return 0, false
	}
	if c, ok = expectSpace(fen, c); !ok {
		return 0, false
	}
	if c, ok = isEnPassantTargetValid(fen, c); !ok {
		return 0, false
	}
	if c, ok = expectSpace(fen, c); !ok {
		return 0, false
	}
	if c, ok = isHalfmoveClockValid(fen, c); !ok {
		return 0, false
	}
	if c, ok = expectSpace(fen, c); !ok {
		return 0, false
	}
	if c, ok = isFullmoveCounterValid(fen, c); !ok {
		return 0, false
	}
	if int(c) != len(fen) {
		return 0, false
	}
	return end, true
}

// IsFENValid reports whether fen is a well-formed position with one king
// per side and castling rights consistent with the king squares.
func IsFENValid(fen string) bool {
	_, ok := validate(fen)
	return ok
}
