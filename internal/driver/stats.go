package driver

import (
	"context"
	"errors"
	"runtime"
	"strconv"

	"golang.org/x/sync/errgroup"

	"textreader/internal/diagfmt"
	"textreader/internal/reader"
	"textreader/internal/source"
	"textreader/internal/trace"
)

// ErrStdinTwice is returned when standard input is requested more than once.
var ErrStdinTwice = errors.New(`standard input ("-") may be given only once`)

// Measure walks c from its current position to the end and summarizes the text.
func Measure(c *reader.Cursor) diagfmt.FileStats {
	st := diagfmt.FileStats{Runes: c.Len()}
	last := rune(0)
	for c.HasNext() {
		ch, _ := c.Next()
		if ch > 0x7F {
			st.NonASCII++
		}
		st.MaxColumn = max(st.MaxColumn, c.Column())
		last = ch
	}
	st.Lines = c.Line()
	st.TrailingNewline = last == '\n'
	if st.TrailingNewline {
		// последняя пустая "строка" после \n не считается
		st.Lines--
	}
	if c.Len() == 0 {
		st.Lines = 0
	}
	return st
}

// Stats measures every path concurrently. Each goroutine owns its cursor; the
// result slice keeps the input order. Per-file failures are reported in
// FileStats.Err and do not stop the others; only cancellation and a repeated
// "-" return an error.
func Stats(ctx context.Context, paths []string, jobs int, opts Options) ([]diagfmt.FileStats, error) {
	if len(paths) == 0 {
		return nil, nil
	}
	stdin := 0
	for _, p := range paths {
		if p == "-" {
			stdin++
		}
	}
	if stdin > 1 {
		return nil, ErrStdinTwice
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	tracer := trace.FromContext(ctx)
	root := trace.Begin(tracer, trace.ScopeDriver, "stats", 0)
	defer root.End("")

	// индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]diagfmt.FileStats, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))

	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			span := trace.Begin(tracer, trace.ScopeFile, "file:"+path, root.ID())
			file, err := source.Load(path)
			if err != nil {
				trace.Error(tracer, trace.ScopeFile, "file:"+path, err, root.ID())
				span.End("failed")
				results[i] = diagfmt.FileStats{Path: path, Err: err.Error()}
				return nil
			}
			c, err := decodeFile(file, opts)
			if err != nil {
				trace.Error(tracer, trace.ScopeFile, "file:"+path, err, root.ID())
				span.End("failed")
				results[i] = diagfmt.FileStats{Path: file.FormatPath(opts.PathMode, ""), Bytes: file.Size, Err: err.Error()}
				return nil
			}

			st := Measure(c)
			st.Path = file.FormatPath(opts.PathMode, "")
			st.Bytes = file.Size
			results[i] = st
			span.WithExtra("runes", strconv.Itoa(st.Runes)).End("")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
