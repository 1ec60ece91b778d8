package convfen

import (
	"errors"
	"fenboard/src/base"
	"fenboard/src/board"
	"testing"
)

func TestExtractComponents(t *testing.T) {
	fc := extractComponents("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	rows := [8]string{"rnbqkbnr", "pppppppp", "8", "8", "4P3", "8", "PPPP1PPP", "RNBQKBNR"}
	if fc.rows != rows {
		t.Fatalf("rows expected %v but got %v", rows, fc.rows)
	}
	if fc.sideToMove != 'b' {
		t.Fatalf("side expected 'b' but got %q", fc.sideToMove)
	}
	if fc.castling != "KQkq" || fc.enPassant != "e3" || fc.halfmoveClock != "0" || fc.fullmoveCounter != "1" {
		t.Fatalf("unexpected fields %+v", fc)
	}

	fc = extractComponents("k7/8/8/8/8/8/8/K7 w - - 12 34")
	if fc.rows[0] != "k7" || fc.rows[7] != "K7" {
		t.Fatalf("rows expected k7..K7 but got %v", fc.rows)
	}
	if fc.castling != "-" || fc.enPassant != "-" || fc.halfmoveClock != "12" || fc.fullmoveCounter != "34" {
		t.Fatalf("unexpected fields %+v", fc)
	}
}

func TestConvertFENToBoardStartPosition(t *testing.T) {
	b, err := ConvertFENToBoard(base.FEN_START_GAME)
	if err != nil {
		t.Fatalf("ConvertFENToBoard: %v", err)
	}
	bb := b.Bitboards()
	if bb.WhitePieces.Count() != 16 || bb.BlackPieces.Count() != 16 {
		t.Fatalf("expected 16 pieces per side, got %d and %d", bb.WhitePieces.Count(), bb.BlackPieces.Count())
	}
	if bb.Kings.Count() != 2 {
		t.Fatalf("expected 2 kings, got %d", bb.Kings.Count())
	}
	if (bb.Kings&bb.WhitePieces).Count() != 1 || (bb.Kings&bb.BlackPieces).Count() != 1 {
		t.Fatalf("expected one king per side, kings %s", bb.Kings)
	}
	if bb.Pawns != 0x00ff00000000ff00 {
		t.Fatalf("pawns expected 0x00ff00000000ff00 but got %s", bb.Pawns)
	}
	if bb.Rooks != 0x8100000000000081 {
		t.Fatalf("rooks expected 0x8100000000000081 but got %s", bb.Rooks)
	}
	if bb.Knights != 0x4200000000000042 || bb.Bishops != 0x2400000000000024 {
		t.Fatalf("minor pieces wrong: knights %s bishops %s", bb.Knights, bb.Bishops)
	}
	if bb.Queens != 0x0800000000000008 || bb.Kings != 0x1000000000000010 {
		t.Fatalf("queens %s kings %s", bb.Queens, bb.Kings)
	}
	if bb.WhitePieces != 0x000000000000ffff || bb.BlackPieces != 0xffff000000000000 {
		t.Fatalf("sides wrong: white %s black %s", bb.WhitePieces, bb.BlackPieces)
	}

	st := b.State()
	expected := board.BoardState{
		SideToMove:            base.White,
		WhiteCastleState:      board.CastlingState{Kingside: true, Queenside: true},
		BlackCastleState:      board.CastlingState{Kingside: true, Queenside: true},
		EnPassantTargetSquare: base.NoSquare,
		HalfmoveClock:         0,
		FullmoveCounter:       1,
	}
	if st != expected {
		t.Fatalf("state expected %+v but got %+v", expected, st)
	}
	if b.PieceAt(base.E1) != base.WKing || b.PieceAt(base.D8) != base.BQueen {
		t.Fatalf("e1 %v d8 %v", b.PieceAt(base.E1), b.PieceAt(base.D8))
	}
}

func TestConvertFENToBoardState(t *testing.T) {
	b, err := ConvertFENToBoard("rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w Kq f6 7 3")
	if err != nil {
		t.Fatalf("ConvertFENToBoard: %v", err)
	}
	st := b.State()
	f6, _ := base.SquareFromAlgebraic("f6")
	if st.EnPassantTargetSquare != f6 {
		t.Fatalf("en passant expected f6 but got %v", st.EnPassantTargetSquare)
	}
	if st.WhiteCastleState != (board.CastlingState{Kingside: true}) || st.BlackCastleState != (board.CastlingState{Queenside: true}) {
		t.Fatalf("castling expected K and q, got %+v %+v", st.WhiteCastleState, st.BlackCastleState)
	}
	if st.HalfmoveClock != 7 || st.FullmoveCounter != 3 {
		t.Fatalf("counters expected 7 3 but got %d %d", st.HalfmoveClock, st.FullmoveCounter)
	}

	b, err = ConvertFENToBoard("k7/8/8/8/8/8/8/K7 b - - 0 1")
	if err != nil {
		t.Fatalf("ConvertFENToBoard: %v", err)
	}
	if b.State().SideToMove != base.Black {
		t.Fatalf("side to move expected black")
	}
	if b.KingSquare(base.White) != base.A1 || b.KingSquare(base.Black) != base.A8 {
		t.Fatalf("king squares %v %v", b.KingSquare(base.White), b.KingSquare(base.Black))
	}
	if b.Bitboards().WhitePieces|b.Bitboards().BlackPieces != b.Bitboards().Kings {
		t.Fatalf("expected only kings on the board")
	}
}

func TestConvertFENToBoardInvalid(t *testing.T) {
	for _, fen := range []string{
		"",
		"8/8/8/8/8/8/8/8 w - - 0 1",
		"K7/8/8/8/1K6/8/8/8 w - - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQ1BNK w K - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1 ",
	} {
		b, err := CreateBoardFromFEN(fen)
		if !errors.Is(err, ErrInvalidFEN) {
			t.Fatalf("CreateBoardFromFEN(%q) expected ErrInvalidFEN but got %v", fen, err)
		}
		if errors.Is(err, ErrBoardConstruction) {
			t.Fatalf("CreateBoardFromFEN(%q) reported a construction failure", fen)
		}
		if b != nil {
			t.Fatalf("CreateBoardFromFEN(%q) returned a board", fen)
		}
	}
}

func TestBuildBoardConstructionFailure(t *testing.T) {
	// components that bypassed validation
	fc := fenComponents{
		rows:            [8]string{"8", "8", "8", "8", "8", "8", "8", "8"},
		sideToMove:      'w',
		castling:        "-",
		enPassant:       "-",
		halfmoveClock:   "0",
		fullmoveCounter: "1",
	}
	if _, err := buildBoard(fc); !errors.Is(err, board.ErrKingCount) {
		t.Fatalf("expected ErrKingCount but got %v", err)
	}

	fc.rows[0], fc.rows[7] = "k7", "K7"
	fc.halfmoveClock = "x"
	if _, err := buildBoard(fc); err == nil {
		t.Fatalf("expected an error for a non-numeric halfmove clock")
	}
}

func TestRoundTrip(t *testing.T) {
	fens := []string{
		base.FEN_START_GAME,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"k7/8/8/8/8/8/8/K7 w - - 0 1",
	}
	for _, fen := range fens {
		b, err := ConvertFENToBoard(fen)
		if err != nil {
			t.Fatalf("ConvertFENToBoard(%q): %v", fen, err)
		}
		out := ConvertBoardToFEN(b)
		if out != fen {
			t.Fatalf("ConvertBoardToFEN expected %q but got %q", fen, out)
		}
		again, err := ConvertFENToBoard(out)
		if err != nil {
			t.Fatalf("ConvertFENToBoard(%q): %v", out, err)
		}
		if !again.Equal(b) {
			t.Fatalf("round trip of %q changed the board", fen)
		}
	}

	// non-canonical spellings decode to the same board
	b1, _ := ConvertFENToBoard("4k3/8/8/8/8/8/8/4K3 w qK - 00 01")
	b2, _ := ConvertFENToBoard("4k3/8/8/8/8/8/8/4K3 w Kq - 0 1")
	if b1 == nil || !b1.Equal(b2) {
		t.Fatalf("expected equal boards for equivalent FENs")
	}
	if s := ConvertBoardToFEN(b1); s != "4k3/8/8/8/8/8/8/4K3 w Kq - 0 1" {
		t.Fatalf("canonical FEN expected %q but got %q", "4k3/8/8/8/8/8/8/4K3 w Kq - 0 1", s)
	}
}

func TestDecodeIsIdempotent(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	a, err := ConvertFENToBoard(fen)
	if err != nil {
		t.Fatalf("ConvertFENToBoard: %v", err)
	}
	b, err := ConvertFENToBoard(fen)
	if err != nil {
		t.Fatalf("ConvertFENToBoard: %v", err)
	}
	if a == b {
		t.Fatalf("expected two distinct boards")
	}
	if !a.Equal(b) {
		t.Fatalf("expected identical contents")
	}
}

func BenchmarkConvertFENToBoard(b *testing.B) {
	for i := 0; i < b.N; i++ {
		ConvertFENToBoard(base.FEN_START_GAME)
	}
}
