package cli

import (
	"bytes"
	"fenboard/src"
	"fenboard/src/base"
	"fenboard/src/logx"
	"strings"
	"testing"
)

func runLines(t *testing.T, input string) string {
	t.Helper()
	var out bytes.Buffer
	c := NewCLIWithIO(src.NewDecoder(logx.NewNop()), PrintPlain, strings.NewReader(input), &out)
	// not a terminal, so Run takes the line mode path
	if err := c.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return out.String()
}

func TestLineModeDecodes(t *testing.T) {
	out := runLines(t, "k7/8/8/8/8/8/8/K7 b - - 3 9\n")
	for _, want := range []string{
		"8  k . . . . . . .",
		"1  K . . . . . . .",
		"Side to move: black",
		"Castling: -",
		"En passant: -",
		"Halfmove clock: 3",
		"Fullmove counter: 9",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestLineModeCommands(t *testing.T) {
	out := runLines(t, strings.Join([]string{
		"fen",
		"start",
		"bb",
		"fen",
		"8/8/8/8/8/8/8/8 w - - 0 1",
		"q",
		"start",
	}, "\n"))

	if !strings.Contains(out, "No board decoded yet") {
		t.Fatalf("expected a notice before any board:\n%s", out)
	}
	if !strings.Contains(out, "Bitboards: true") {
		t.Fatalf("expected bitboard toggle:\n%s", out)
	}
	if !strings.Contains(out, "FEN: "+base.FEN_START_GAME) {
		t.Fatalf("expected the start FEN:\n%s", out)
	}
	if !strings.Contains(out, "Invalid FEN:") {
		t.Fatalf("expected the empty board to be rejected:\n%s", out)
	}
	if strings.Count(out, "Side to move:") != 1 {
		t.Fatalf("expected exactly one decoded board before quitting:\n%s", out)
	}
}

func TestPrintBoardBitboards(t *testing.T) {
	d := src.NewDecoder(nil)
	b, err := d.DecodeStart()
	if err != nil {
		t.Fatalf("DecodeStart: %v", err)
	}
	var out bytes.Buffer
	PrintBoard(&out, b, PrintMailbox, true)
	s := out.String()
	for _, want := range []string{
		"kings    0x1000000000000010 (2)",
		"white    0x000000000000ffff (16)",
		"Castling: KQkq",
		"♔",
		"♚",
	} {
		if !strings.Contains(s, want) {
			t.Fatalf("output missing %q:\n%s", want, s)
		}
	}
}
