package driver

import (
	"context"
	"strconv"

	"textreader/internal/diagfmt"
	"textreader/internal/observ"
	"textreader/internal/trace"
)

// WalkResult содержит результат обхода одного файла
type WalkResult struct {
	*Opened
	Records   []diagfmt.CharRecord
	Truncated bool // обход остановлен по Options.Limit
}

// Walk reads every rune of path with HasNext/Next and records where it was read.
func Walk(ctx context.Context, path string, opts Options, timer *observ.Timer) (*WalkResult, error) {
	opened, err := Open(ctx, path, opts, timer)
	if err != nil {
		return nil, err
	}
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopePass, "walk", 0)
	idx := beginPhase(timer, "walk")

	c := opened.Cursor
	records := make([]diagfmt.CharRecord, 0, c.Len())
	truncated := false
	for c.HasNext() {
		if opts.Limit > 0 && len(records) >= opts.Limit {
			truncated = true
			break
		}
		if err := ctx.Err(); err != nil {
			span.End("canceled")
			return nil, err
		}
		loc := c.Location()
		ch, _ := c.Next()
		rec, err := diagfmt.NewCharRecord(loc, ch)
		if err != nil {
			span.End("failed")
			return nil, err
		}
		if tracer.Level().ShouldEmit(trace.KindPoint, trace.ScopeChar) {
			trace.Point(tracer, trace.ScopeChar, "rune", loc.String()+" "+strconv.QuoteRune(ch), span.ID())
		}
		records = append(records, rec)
	}

	endPhase(timer, idx, strconv.Itoa(len(records))+" runes")
	span.WithExtra("runes", strconv.Itoa(len(records))).End("")
	return &WalkResult{Opened: opened, Records: records, Truncated: truncated}, nil
}
