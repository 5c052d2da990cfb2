package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"textreader/internal/reader"
)

func collect(t *testing.T, text string) []CharRecord {
	t.Helper()
	c := reader.MustNew(text)
	var out []CharRecord
	for c.HasNext() {
		loc := c.Location()
		ch, _ := c.Next()
		rec, err := NewCharRecord(loc, ch)
		if err != nil {
			t.Fatalf("NewCharRecord: %v", err)
		}
		out = append(out, rec)
	}
	return out
}

func TestFormatCharsPretty(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatCharsPretty(&buf, collect(t, "a\n華"), CharsOpts{}); err != nil {
		t.Fatalf("FormatCharsPretty: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines:\n%s", buf.String())
	}
	if !strings.Contains(lines[1], `'\n'`) || !strings.Contains(lines[1], "U+000A") {
		t.Errorf("newline row = %q", lines[1])
	}
	if !strings.Contains(lines[2], "2:0") || !strings.Contains(lines[2], "U+83EF") {
		t.Errorf("wide rune row = %q", lines[2])
	}
}

func TestFormatCharsJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatCharsJSON(&buf, collect(t, "ab\nc")); err != nil {
		t.Fatalf("FormatCharsJSON: %v", err)
	}
	var got []CharRecord
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	last := got[len(got)-1]
	if last.Char != "c" || last.Offset != 3 || last.Line != 2 || last.Column != 0 {
		t.Fatalf("last record = %+v", last)
	}
}

func TestFormatCharsJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatCharsJSON(&buf, nil); err != nil {
		t.Fatalf("FormatCharsJSON: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Fatalf("empty dump = %q, want []", buf.String())
	}
}

func TestFormatCharsMsgpack(t *testing.T) {
	recs := collect(t, "\u00e9\n")
	var buf bytes.Buffer
	if err := FormatCharsMsgpack(&buf, recs); err != nil {
		t.Fatalf("FormatCharsMsgpack: %v", err)
	}
	var got []CharRecord
	if err := msgpack.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("msgpack decode: %v", err)
	}
	if len(got) != 2 || got[0] != recs[0] || got[1].Code != '\n' {
		t.Fatalf("decoded = %+v", got)
	}
}
