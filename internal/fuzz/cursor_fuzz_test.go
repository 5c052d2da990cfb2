package fuzztests

import (
	"errors"
	"testing"
	"unicode/utf8"

	"textreader/internal/reader"
	"textreader/internal/testkit"
)

func FuzzCursorWalk(f *testing.F) {
	addSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clip(input)

		c, err := reader.Decode(input, reader.Options{})
		if !utf8.Valid(input) {
			if !errors.Is(err, reader.ErrInvalidUTF8) {
				t.Fatalf("invalid input accepted: err=%v", err)
			}
			return
		}
		if err != nil {
			t.Fatalf("valid input rejected: %v", err)
		}

		text := string(input)
		steps := 0
		for c.HasNext() {
			before := c.Location()
			if _, ok := c.Next(); !ok {
				t.Fatalf("Next failed while HasNext at %v", before)
			}
			// exercise the undo step on every third rune
			if steps%3 == 0 {
				after := c.Location()
				if c.Back().Location() != before {
					t.Fatalf("Back did not restore %v", before)
				}
				c.Next()
				if c.Location() != after {
					t.Fatalf("replay mismatch: %v vs %v", c.Location(), after)
				}
			}
			if err := testkit.CheckCursorInvariants(c, text); err != nil {
				t.Fatal(err)
			}
			steps++
		}
		if steps != utf8.RuneCount(input) {
			t.Fatalf("walked %d runes, want %d", steps, utf8.RuneCount(input))
		}
	})
}

func FuzzThisLine(f *testing.F) {
	addSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clip(input)
		if !utf8.Valid(input) {
			return
		}
		c := reader.MustNew(string(input))
		for {
			line, ok := c.ThisLine()
			if ok != (c.Len() > 0) {
				t.Fatalf("ThisLine ok=%v for len %d", ok, c.Len())
			}
			for _, r := range line {
				if r == '\n' {
					t.Fatalf("line %q contains a newline", line)
				}
			}
			if _, ok := c.Next(); !ok {
				break
			}
		}
	})
}
