package reader

import (
	"errors"
	"strings"
	"testing"
)

func assertState(t *testing.T, c *Cursor, pos, line, col int) {
	t.Helper()
	if c.Position() != pos || c.Line() != line || c.Column() != col {
		t.Fatalf("state = (pos=%d line=%d col=%d), want (pos=%d line=%d col=%d); %s",
			c.Position(), c.Line(), c.Column(), pos, line, col, c)
	}
}

// TestNewAndFirstNext: "abc\ndef" → len 7, затем 'a'
func TestNewAndFirstNext(t *testing.T) {
	c := MustNew("abc\ndef")
	if c.Len() != 7 {
		t.Fatalf("Len() = %d, want 7", c.Len())
	}
	assertState(t, c, 0, 1, 0)

	ch, ok := c.Next()
	if !ok || ch != 'a' {
		t.Fatalf("Next() = (%q, %v), want ('a', true)", ch, ok)
	}
	assertState(t, c, 1, 1, 1)

	c.Back()
	assertState(t, c, 0, 1, 0)
	line, ok := c.ThisLine()
	if !ok || line != "abc" {
		t.Fatalf("ThisLine() = (%q, %v), want (\"abc\", true)", line, ok)
	}
}

func TestLineAdvance(t *testing.T) {
	c := MustNew("abc\ndef")
	for range 3 {
		c.Next()
	}
	assertState(t, c, 3, 1, 3)

	ch, _ := c.Next()
	if ch != '\n' {
		t.Fatalf("expected newline, got %q", ch)
	}
	assertState(t, c, 4, 2, 0)
}

func TestMultiByteTraversal(t *testing.T) {
	c := MustNew("華文\ndef")
	if c.Len() != 6 {
		t.Fatalf("Len() = %d, want 6", c.Len())
	}
	want := []rune{'華', '文', '\n', 'd', 'e', 'f'}
	var got []rune
	for c.HasNext() {
		pos := c.Position()
		ch, ok := c.Next()
		if !ok {
			t.Fatalf("Next() returned false at %d", pos)
		}
		if ch != want[pos] {
			t.Errorf("at %d: got %q, want %q", pos, ch, want[pos])
		}
		got = append(got, ch)
	}
	if string(got) != string(want) {
		t.Fatalf("traversal = %q, want %q", string(got), string(want))
	}
	if _, ok := c.Next(); ok {
		t.Fatal("Next() past the end should return false")
	}
}

func TestEmptyText(t *testing.T) {
	c := MustNew("")
	if c.Len() != 0 || c.HasNext() {
		t.Fatalf("empty cursor: %s", c)
	}
	if _, ok := c.Next(); ok {
		t.Error("Next() on empty text should return false")
	}
	if _, ok := c.Peek(); ok {
		t.Error("Peek() on empty text should return false")
	}
	if line, ok := c.ThisLine(); ok || line != "" {
		t.Errorf("ThisLine() = (%q, %v), want (\"\", false)", line, ok)
	}
	c.Back()
	assertState(t, c, 0, 1, 0)
}

func TestNextAtEndKeepsState(t *testing.T) {
	c := MustNew("a\n")
	c.Next()
	c.Next()
	assertState(t, c, 2, 2, 0)
	if _, ok := c.Next(); ok {
		t.Fatal("expected end of text")
	}
	assertState(t, c, 2, 2, 0)
	// снимок от последнего успешного Next остаётся
	c.Back()
	assertState(t, c, 1, 1, 1)
}

func TestBackIsSingleStep(t *testing.T) {
	c := MustNew("ab\ncd")
	c.Next()
	c.Next()
	c.Next() // '\n'
	assertState(t, c, 3, 2, 0)

	if !c.CanBack() {
		t.Fatal("CanBack() should be true after Next")
	}
	c.Back().Back()
	assertState(t, c, 2, 1, 2)
	if c.CanBack() {
		t.Fatal("CanBack() should be false after Back")
	}

	ch, _ := c.Peek()
	if ch != '\n' {
		t.Fatalf("Peek() after Back = %q, want newline", ch)
	}
}

func TestBackWithoutNextIsNoop(t *testing.T) {
	c := MustNew("xyz")
	if got := c.Back(); got != c {
		t.Fatal("Back() must return the receiver")
	}
	assertState(t, c, 0, 1, 0)
}

func TestPeekIsIdempotent(t *testing.T) {
	c := MustNew("é\nz")
	for i := 0; i < 4; i++ {
		for range 3 {
			before := c.Location()
			a, okA := c.Peek()
			b, okB := c.Peek()
			if a != b || okA != okB {
				t.Fatalf("Peek() not idempotent: (%q,%v) vs (%q,%v)", a, okA, b, okB)
			}
			if c.Location() != before {
				t.Fatalf("Peek() moved the cursor: %v -> %v", before, c.Location())
			}
		}
		c.Next()
	}
}

func TestThisLine(t *testing.T) {
	tests := []struct {
		name string
		text string
		skip int
		want string
	}{
		{"first line start", "abc\ndef", 0, "abc"},
		{"on newline", "abc\ndef", 3, "abc"},
		{"after newline", "abc\ndef", 4, "def"},
		{"end of text", "abc\ndef", 7, "def"},
		{"empty middle line", "a\n\nb", 2, ""},
		{"trailing newline", "a\n", 2, ""},
		{"wide runes", "華文\ndef", 2, "華文"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := MustNew(tt.text)
			for range tt.skip {
				c.Next()
			}
			before := c.Location()
			got, ok := c.ThisLine()
			if !ok || got != tt.want {
				t.Fatalf("ThisLine() = (%q, %v), want (%q, true)", got, ok, tt.want)
			}
			if c.Location() != before {
				t.Fatalf("ThisLine() moved the cursor: %v -> %v", before, c.Location())
			}
		})
	}
}

func TestReset(t *testing.T) {
	c := MustNew("ab\nc")
	for c.HasNext() {
		c.Next()
	}
	c.Reset()
	assertState(t, c, 0, 1, 0)
	if c.CanBack() {
		t.Fatal("Reset() should drop the saved state")
	}
	ch, _ := c.Next()
	if ch != 'a' {
		t.Fatalf("Next() after Reset = %q, want 'a'", ch)
	}
}

func TestNewRejectsInvalidUTF8(t *testing.T) {
	_, err := New("ok\xffbad")
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
	if !strings.Contains(err.Error(), "byte 2") {
		t.Fatalf("error should carry the byte offset: %v", err)
	}
}

func TestNewAcceptsReplacementChar(t *testing.T) {
	c, err := New("a\uFFFDb")
	if err != nil {
		t.Fatalf("literal U+FFFD must be accepted: %v", err)
	}
	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", c.Len())
	}
}

func TestString(t *testing.T) {
	c := MustNew("abc\ndef")
	c.Next()
	want := `Cursor{len=7 pos=1 line=1 col=1 text="abc\ndef"}`
	if got := c.String(); got != want {
		t.Fatalf("String() = %s, want %s", got, want)
	}
}
