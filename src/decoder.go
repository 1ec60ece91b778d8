package src

import (
	"errors"
	"fenboard/src/base"
	"fenboard/src/board"
	"fenboard/src/logic/convert/convfen"
	"fenboard/src/logx"
	"fmt"
)

// Decoder is the entry point UI layers use to turn FEN text into boards.
// It holds no position state and is safe for concurrent use.
type Decoder struct {
	logger logx.Logger
}

func NewDecoder(logger logx.Logger) *Decoder {
	if logger == nil {
		logger = logx.NewNop()
	}
	return &Decoder{logger: logger}
}

func (d *Decoder) Validate(fen string) bool {
	ok := convfen.IsFENValid(fen)
	d.logger.Debugf("validate FEN %q: %t", fen, ok)
	return ok
}

func (d *Decoder) Decode(fen string) (*board.Board, error) {
	d.logger.Debugf("decode FEN: %q", fen)
	b, err := convfen.ConvertFENToBoard(fen)
	switch {
	case err == nil:
		d.logger.Infof("decoded FEN: %q", fen)
		return b, nil
	case errors.Is(err, convfen.ErrBoardConstruction):
		d.logger.Errorf("build board from %q: %v", fen, err)
	default:
		d.logger.Warnf("rejected FEN %q", fen)
	}
	return nil, fmt.Errorf("error parse FEN: %w", err)
}

// DecodeStart decodes the standard initial position.
func (d *Decoder) DecodeStart() (*board.Board, error) {
	return d.Decode(base.FEN_START_GAME)
}

func (d *Decoder) Encode(b *board.Board) string {
	return convfen.ConvertBoardToFEN(b)
}
