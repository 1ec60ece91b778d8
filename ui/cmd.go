package ui

import (
	"context"
	"errors"
	"fenboard/src"
	"fenboard/src/base"
	"fenboard/src/logx"
	clic "fenboard/ui/cli"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
)

const logfile string = "fenboard.log"

// ErrInvalidInput is returned by validate when at least one FEN is rejected.
var ErrInvalidInput = errors.New("one or more FEN strings are invalid")

func GetLogger(w io.Writer, c *cli.Command) *logx.Logx {
	l := logx.NewLogx(
		logx.GetLoggerLevelByString(c.String("level")),
		c.Bool("debug"),
		c.Bool("console"),
	)
	l.InitLogger(w)
	return l
}

// withDecoder opens the log file, builds a decoder and hands it to fn.
func withDecoder(c *cli.Command, fn func(d *src.Decoder) error) error {
	file, err := os.OpenFile(c.String("log-file"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("error open logfile: %w", err)
	}
	defer file.Close()
	logger := GetLogger(file, c)
	defer logger.Sync() //nolint:errcheck
	return fn(src.NewDecoder(logger))
}

func runValidate(c *cli.Command, d *src.Decoder) error {
	fens := c.Args().Slice()
	if fen := c.String("fen"); fen != "" {
		fens = append(fens, fen)
	}
	if len(fens) == 0 {
		return errors.New("no FEN given")
	}
	out := c.Root().Writer
	failed := false
	for _, fen := range fens {
		if d.Validate(fen) {
			fmt.Fprintf(out, "valid   %s\n", fen)
		} else {
			fmt.Fprintf(out, "invalid %s\n", fen)
			failed = true
		}
	}
	if failed {
		return ErrInvalidInput
	}
	return nil
}

func runDecode(c *cli.Command, d *src.Decoder) error {
	fen := c.String("fen")
	if c.Args().Present() {
		fen = c.Args().First()
	}
	b, err := d.Decode(fen)
	if err != nil {
		return err
	}
	out := c.Root().Writer
	draw := clic.PrintPlain
	if c.Bool("color") {
		clic.EnableANSI()
		draw = clic.PrintMailbox
	}
	clic.PrintBoard(out, b, draw, c.Bool("bitboards"))
	fmt.Fprintf(out, "FEN: %s\n", d.Encode(b))
	return nil
}

func runREPL(c *cli.Command, d *src.Decoder) error {
	clic.EnableANSI()
	cl := clic.NewCLI(d, clic.PrintMailbox)
	cl.ShowBitboards(c.Bool("bitboards"))
	return cl.Run()
}

func NewCommand() *cli.Command {
	ff := &cli.StringFlag{
		Name:  "fen",
		Usage: "string FEN format",
		Value: base.FEN_START_GAME,
	}
	vf := &cli.StringFlag{
		Name:  "fen",
		Usage: "string FEN format",
	}
	bf := &cli.BoolFlag{
		Name:    "bitboards",
		Aliases: []string{"b"},
		Usage:   "print every bitboard",
	}
	colf := &cli.BoolFlag{
		Name:  "color",
		Usage: "draw the board with ANSI colors",
	}
	df := &cli.BoolFlag{
		Name:    "debug",
		Aliases: []string{"d"},
		Usage:   "enable debug mod",
		Sources: cli.EnvVars("FENBOARD_DEBUG"),
	}
	lf := &cli.StringFlag{
		Name:    "level",
		Aliases: []string{"l"},
		Usage:   "logger level",
		Value:   "info",
		Sources: cli.EnvVars("FENBOARD_LOG_LEVEL"),
	}
	cf := &cli.BoolFlag{
		Name:    "console",
		Aliases: []string{"c"},
		Usage:   "console logger encoding",
		Sources: cli.EnvVars("FENBOARD_LOG_CONSOLE"),
	}
	logf := &cli.StringFlag{
		Name:    "log-file",
		Usage:   "path to the log file",
		Value:   logfile,
		Sources: cli.EnvVars("FENBOARD_LOG_FILE"),
	}
	// root flags are inherited by every subcommand
	rootff := []cli.Flag{bf, df, lf, cf, logf}

	return &cli.Command{
		Name:  "fenboard",
		Usage: "FEN validator and bitboard decoder",
		Flags: rootff,
		Commands: []*cli.Command{
			{
				Name:      "validate",
				Usage:     "check FEN strings",
				ArgsUsage: "[FEN...]",
				Flags:     []cli.Flag{vf},
				Action: func(ctx context.Context, c *cli.Command) error {
					return withDecoder(c, func(d *src.Decoder) error { return runValidate(c, d) })
				},
			},
			{
				Name:      "decode",
				Usage:     "decode a FEN and print the board",
				ArgsUsage: "[FEN]",
				Flags:     []cli.Flag{ff, colf},
				Action: func(ctx context.Context, c *cli.Command) error {
					return withDecoder(c, func(d *src.Decoder) error { return runDecode(c, d) })
				},
			},
			{
				Name:  "repl",
				Usage: "decode FEN strings interactively",
				Action: func(ctx context.Context, c *cli.Command) error {
					return withDecoder(c, func(d *src.Decoder) error { return runREPL(c, d) })
				},
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return withDecoder(c, func(d *src.Decoder) error { return runREPL(c, d) })
		},
	}
}

func RunFenBoard() error {
	return NewCommand().Run(context.Background(), os.Args)
}
