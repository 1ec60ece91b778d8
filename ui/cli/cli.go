package cli

import (
	"bufio"
	"errors"
	"fenboard/src"
	"fenboard/src/board"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

const prompt = "fen> "

const helpText = `Enter a FEN to decode it.
  start  decode the initial position
  bb     toggle bitboard output
  fen    print the last board as FEN
  help   show this text
  q      quit`

type CLIProcessing struct {
	decoder   *src.Decoder
	draw      DrawFunc
	in        io.Reader
	out       io.Writer
	bitboards bool
	last      *board.Board
}

func NewCLI(d *src.Decoder, draw DrawFunc) *CLIProcessing {
	return NewCLIWithIO(d, draw, os.Stdin, os.Stdout)
}

func NewCLIWithIO(d *src.Decoder, draw DrawFunc, in io.Reader, out io.Writer) *CLIProcessing {
	return &CLIProcessing{decoder: d, draw: draw, in: in, out: out}
}

func (c *CLIProcessing) ShowBitboards(on bool) { c.bitboards = on }

// Run uses a line editor when attached to a terminal and falls back to
// plain line reading otherwise.
func (c *CLIProcessing) Run() error {
	f, ok := c.in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return c.RunLineMode()
	}
	fd := int(f.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return c.RunLineMode()
	}
	defer term.Restore(fd, oldState) //nolint:errcheck

	t := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{c.in, c.out}, prompt)
	fmt.Fprintln(t, helpText)
	for {
		line, err := t.ReadLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if c.handle(t, line) {
			return nil
		}
	}
}

func (c *CLIProcessing) RunLineMode() error {
	scanner := bufio.NewScanner(c.in)
	for scanner.Scan() {
		if c.handle(c.out, scanner.Text()) {
			return nil
		}
	}
	return scanner.Err()
}

// handle runs one input line and reports whether the session should end.
func (c *CLIProcessing) handle(w io.Writer, line string) bool {
	line = strings.TrimSpace(line)
	switch line {
	case "":
		return false
	case "q", "Q", "quit", "exit":
		return true
	case "help", "?":
		fmt.Fprintln(w, helpText)
		return false
	case "bb":
		c.bitboards = !c.bitboards
		fmt.Fprintf(w, "Bitboards: %t\n", c.bitboards)
		return false
	case "fen":
		if c.last == nil {
			fmt.Fprintln(w, "No board decoded yet")
		} else {
			fmt.Fprintf(w, "FEN: %s\n", c.decoder.Encode(c.last))
		}
		return false
	case "start":
		b, err := c.decoder.DecodeStart()
		c.show(w, b, err)
		return false
	}
	b, err := c.decoder.Decode(line)
	c.show(w, b, err)
	return false
}

func (c *CLIProcessing) show(w io.Writer, b *board.Board, err error) {
	if err != nil {
		fmt.Fprintf(w, "Invalid FEN: %v\n", err)
		return
	}
	c.last = b
	PrintBoard(w, b, c.draw, c.bitboards)
}

// PrintBoard writes the board, its state and optionally every bitboard.
func PrintBoard(w io.Writer, b *board.Board, draw DrawFunc, bitboards bool) {
	if draw != nil {
		draw(w, b.Mailbox())
	}
	PrintState(w, b.State())
	if bitboards {
		PrintBitboards(w, b.Bitboards())
	}
}
