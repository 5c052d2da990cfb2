package driver

import (
	"context"
	"fmt"
	"strconv"

	"textreader/internal/observ"
	"textreader/internal/reader"
	"textreader/internal/source"
	"textreader/internal/trace"
)

// Opened is a loaded file together with a fresh cursor over its text.
type Opened struct {
	File   *source.File
	Cursor *reader.Cursor
}

// Open loads path and decodes it into a cursor. Phases are recorded in timer
// when it is non-nil.
func Open(ctx context.Context, path string, opts Options, timer *observ.Timer) (*Opened, error) {
	tracer := trace.FromContext(ctx)

	loadSpan := trace.Begin(tracer, trace.ScopePass, "load", 0)
	loadIdx := beginPhase(timer, "load")
	file, err := source.Load(path)
	if err != nil {
		trace.Error(tracer, trace.ScopePass, "load", err, loadSpan.ID())
		loadSpan.End("failed")
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	endPhase(timer, loadIdx, strconv.Itoa(file.Size)+" bytes")
	loadSpan.WithExtra("bytes", strconv.Itoa(file.Size)).End("")

	decodeSpan := trace.Begin(tracer, trace.ScopePass, "decode", 0)
	decodeIdx := beginPhase(timer, "decode")
	cur, err := decodeFile(file, opts)
	if err != nil {
		trace.Error(tracer, trace.ScopePass, "decode", err, decodeSpan.ID())
		decodeSpan.End("failed")
		return nil, fmt.Errorf("%s: %w", file.Path, err)
	}
	endPhase(timer, decodeIdx, strconv.Itoa(cur.Len())+" runes")
	decodeSpan.WithExtra("runes", strconv.Itoa(cur.Len())).End("")

	return &Opened{File: file, Cursor: cur}, nil
}

// decodeFile converts file to UTF-8, applies the BOM and CRLF cleanup to the
// decoded text and builds the cursor. Cleanup never touches undecoded bytes.
func decodeFile(file *source.File, opts Options) (*reader.Cursor, error) {
	text, err := reader.Transcode(file.Content, opts.Decode.Encoding)
	if err != nil {
		return nil, err
	}
	file.SetText(text, opts.Load)
	return reader.Decode(file.Content, reader.Options{Normalize: opts.Decode.Normalize})
}

func beginPhase(timer *observ.Timer, name string) int {
	if timer == nil {
		return -1
	}
	return timer.Begin(name)
}

func endPhase(timer *observ.Timer, idx int, note string) {
	if timer == nil {
		return
	}
	timer.End(idx, note)
}
