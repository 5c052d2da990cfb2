package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"textreader/internal/reader"
)

func advance(c *reader.Cursor, n int) *reader.Cursor {
	for range n {
		c.Next()
	}
	return c
}

func TestSnippetPlain(t *testing.T) {
	c := advance(reader.MustNew("abc\ndef"), 5)
	var buf bytes.Buffer
	if err := Snippet(&buf, "t.txt", c, "here", SnippetOpts{}); err != nil {
		t.Fatalf("Snippet: %v", err)
	}
	want := "t.txt:2:2: here\ndef\n ^\n"
	if buf.String() != want {
		t.Fatalf("Snippet =\n%q\nwant\n%q", buf.String(), want)
	}
}

func TestSnippetGutter(t *testing.T) {
	c := advance(reader.MustNew("x\nyz"), 3)
	var buf bytes.Buffer
	if err := Snippet(&buf, "g.txt", c, "", SnippetOpts{Gutter: true}); err != nil {
		t.Fatalf("Snippet: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %q", buf.String())
	}
	if lines[0] != "g.txt:2:2:" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "   2 | yz" {
		t.Errorf("source line = %q", lines[1])
	}
	if lines[2] != "     |  ^" {
		t.Errorf("caret line = %q", lines[2])
	}
}

func TestSnippetEmptyText(t *testing.T) {
	var buf bytes.Buffer
	if err := Snippet(&buf, "e.txt", reader.MustNew(""), "empty", SnippetOpts{}); err != nil {
		t.Fatalf("Snippet: %v", err)
	}
	if buf.String() != "e.txt:1:1: empty\n" {
		t.Fatalf("Snippet = %q", buf.String())
	}
}

func TestCaretLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		column   int
		tabWidth int
		wantText string
		wantPad  string
	}{
		{"ascii", "hello", 3, 0, "hello", "   "},
		{"wide runes", "華文x", 2, 0, "華文x", "    "},
		{"tab copied", "\tx", 1, 0, "\tx", "\t"},
		{"tab expanded", "a\tb", 2, 4, "a   b", "    "},
		{"column at end", "ab", 2, 0, "ab", "  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, pad := CaretLine(tt.line, tt.column, tt.tabWidth)
			if text != tt.wantText || pad != tt.wantPad {
				t.Fatalf("CaretLine(%q, %d, %d) = (%q, %q), want (%q, %q)",
					tt.line, tt.column, tt.tabWidth, text, pad, tt.wantText, tt.wantPad)
			}
		})
	}
}
