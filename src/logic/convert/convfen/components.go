package convfen

import "strings"

// fenComponents is a FEN split into its fields. It only ever holds text that
// validate already accepted.
type fenComponents struct {
	rows            [8]string // rows[0] is rank 8
	sideToMove      byte
	castling        string
	enPassant       string
	halfmoveClock   string
	fullmoveCounter string
}

// extractComponents slices a valid FEN into its fields without checking it.
func extractComponents(fen string) fenComponents {
	var fc fenComponents
	placement, rest, _ := strings.Cut(fen, " ")
	for i := 0; i < 7; i++ {
		fc.rows[i], placement, _ = strings.Cut(placement, "/")
	}
	fc.rows[7] = placement

	fc.sideToMove = rest[0]
	rest = rest[2:]
	fc.castling, rest, _ = strings.Cut(rest, " ")
	fc.enPassant, rest, _ = strings.Cut(rest, " ")
	fc.halfmoveClock, fc.fullmoveCounter, _ = strings.Cut(rest, " ")
	return fc
}
