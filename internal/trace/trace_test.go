package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	for _, s := range []string{"off", "error", "phase", "detail", "debug"} {
		lvl, err := ParseLevel(strings.ToUpper(s))
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", s, err)
		}
		if lvl.String() != s {
			t.Errorf("ParseLevel(%q).String() = %q", s, lvl.String())
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestShouldEmit(t *testing.T) {
	tests := []struct {
		level Level
		kind  Kind
		scope Scope
		want  bool
	}{
		{LevelOff, KindError, ScopeDriver, false},
		{LevelError, KindError, ScopeFile, true},
		{LevelError, KindSpanBegin, ScopeDriver, false},
		{LevelPhase, KindSpanBegin, ScopePass, true},
		{LevelPhase, KindSpanBegin, ScopeFile, false},
		{LevelDetail, KindPoint, ScopeFile, true},
		{LevelDetail, KindPoint, ScopeChar, false},
		{LevelDebug, KindPoint, ScopeChar, true},
	}
	for _, tt := range tests {
		if got := tt.level.ShouldEmit(tt.kind, tt.scope); got != tt.want {
			t.Errorf("%s.ShouldEmit(%s, %s) = %v, want %v", tt.level, tt.kind, tt.scope, got, tt.want)
		}
	}
}

func TestStreamTracerText(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelPhase, FormatText)

	span := Begin(tr, ScopePass, "decode", 0)
	span.WithExtra("runes", "7").WithExtra("bytes", "9")
	span.End("ok")
	Point(tr, ScopeFile, "skipped", "too detailed", 0)

	out := buf.String()
	if !strings.Contains(out, "→ decode") || !strings.Contains(out, "← decode (ok)") {
		t.Fatalf("missing span lines:\n%s", out)
	}
	if !strings.Contains(out, "{bytes=9, runes=7}") {
		t.Fatalf("extra should be sorted:\n%s", out)
	}
	if strings.Contains(out, "skipped") {
		t.Fatalf("file-scope point must be filtered at phase level:\n%s", out)
	}
}

func TestStreamTracerNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelError, FormatNDJSON)
	Error(tr, ScopeFile, "file:a.txt", errors.New("boom"), 0)

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid ndjson %q: %v", buf.String(), err)
	}
	if got["kind"] != "error" || got["detail"] != "boom" || got["name"] != "file:a.txt" {
		t.Fatalf("unexpected event: %v", got)
	}
}

func TestNewOffIsNop(t *testing.T) {
	tr, err := New(Config{Level: LevelOff})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if tr.Enabled() {
		t.Fatal("off tracer must be disabled")
	}
	span := Begin(tr, ScopeDriver, "x", 0)
	if d := span.End(""); d != 0 {
		t.Fatalf("nop span duration = %v", d)
	}
}

func TestNewFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.ndjson")
	tr, err := New(Config{Level: LevelDebug, OutputPath: path})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	Point(tr, ScopeChar, "rune", "a", 0)
	if err := tr.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestContextRoundTrip(t *testing.T) {
	if FromContext(context.Background()) != Nop {
		t.Fatal("empty context must yield Nop")
	}
	tr := NewStreamTracer(&bytes.Buffer{}, LevelDebug, FormatText)
	ctx := WithTracer(context.Background(), tr)
	if FromContext(ctx) != Tracer(tr) {
		t.Fatal("tracer lost in context")
	}
}
