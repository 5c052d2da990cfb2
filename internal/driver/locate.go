package driver

import (
	"context"
	"errors"
	"fmt"

	"textreader/internal/observ"
)

// ErrOffsetOutOfRange is returned when Locate is asked for an offset past the text.
var ErrOffsetOutOfRange = errors.New("offset out of range")

// Locate opens path and advances the cursor by offset runes. offset may equal
// the rune count; the cursor then sits at the end of text.
func Locate(ctx context.Context, path string, offset int, opts Options, timer *observ.Timer) (*Opened, error) {
	opened, err := Open(ctx, path, opts, timer)
	if err != nil {
		return nil, err
	}
	c := opened.Cursor
	if offset < 0 || offset > c.Len() {
		return nil, fmt.Errorf("%s: %w: %d (text has %d runes)", opened.File.Path, ErrOffsetOutOfRange, offset, c.Len())
	}
	idx := beginPhase(timer, "seek")
	for c.Position() < offset {
		c.Next()
	}
	endPhase(timer, idx, c.Location().String())
	return opened, nil
}
