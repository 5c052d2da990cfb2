package testkit

import (
	"fmt"

	"textreader/internal/reader"
)

// CheckCursorInvariants re-derives the cursor state from the text it was built from:
// 1) 0 <= position <= len, and len equals the rune count of text
// 2) line == 1 + number of '\n' among the consumed runes
// 3) column == runes consumed since the last '\n'
// 4) Peek agrees with the rune at position
func CheckCursorInvariants(c *reader.Cursor, text string) error {
	if c == nil {
		return fmt.Errorf("nil cursor")
	}
	chars := []rune(text)

	// 1) bounds
	if c.Len() != len(chars) {
		return fmt.Errorf("len mismatch: cursor=%d text=%d", c.Len(), len(chars))
	}
	pos := c.Position()
	if pos < 0 || pos > c.Len() {
		return fmt.Errorf("position %d outside [0, %d]", pos, c.Len())
	}
	if c.HasNext() != (pos < c.Len()) {
		return fmt.Errorf("HasNext=%v at position %d of %d", c.HasNext(), pos, c.Len())
	}

	// 2) + 3) line/column from the consumed prefix
	line, col := 1, 0
	for _, ch := range chars[:pos] {
		if ch == '\n' {
			line++
			col = 0
			continue
		}
		col++
	}
	if c.Line() != line {
		return fmt.Errorf("line mismatch at %d: cursor=%d want=%d", pos, c.Line(), line)
	}
	if c.Column() != col {
		return fmt.Errorf("column mismatch at %d: cursor=%d want=%d", pos, c.Column(), col)
	}

	// 4) peek
	ch, ok := c.Peek()
	if pos < len(chars) {
		if !ok || ch != chars[pos] {
			return fmt.Errorf("peek at %d: got (%q,%v) want %q", pos, ch, ok, chars[pos])
		}
	} else if ok {
		return fmt.Errorf("peek at end returned %q", ch)
	}
	return nil
}
