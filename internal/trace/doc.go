// Package trace is the logging layer of textreader.
//
// Events are emitted around pipeline phases (load, decode, walk) and per
// file when several files are processed at once, which makes it easy to see
// where time goes on large inputs.
//
// # Usage
//
//	textreader stats --trace=- --trace-level=detail a.txt b.txt
//
// # Levels
//
//   - LevelOff: No tracing
//   - LevelError: Only failures
//   - LevelPhase: Driver and pass boundaries
//   - LevelDetail: Per-file events
//   - LevelDebug: Everything
//
// # Context Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	span := trace.Begin(t, trace.ScopePass, "decode", 0)
//	defer span.End("")
package trace
