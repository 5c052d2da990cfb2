package reader

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Location is a snapshot of the cursor state.
type Location struct {
	Offset int // runes consumed from the start
	Line   int // 1-based
	Column int // 0-based, runes since the last '\n'
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d@%d", l.Line, l.Column, l.Offset)
}

// Cursor walks a decoded text rune by rune and keeps line/column bookkeeping.
// One step of history is kept: Back undoes the most recent Next.
//
// A Cursor is not safe for concurrent use.
type Cursor struct {
	chars    []rune
	length   int
	position int
	line     int
	column   int

	prev    Location // состояние до последнего Next
	hasPrev bool
}

// New decodes text into runes. Invalid UTF-8 is rejected rather than
// replaced with utf8.RuneError.
func New(text string) (*Cursor, error) {
	if !utf8.ValidString(text) {
		return nil, fmt.Errorf("%w at byte %d", ErrInvalidUTF8, invalidOffset(text))
	}
	chars := []rune(text)
	return &Cursor{
		chars:    chars,
		length:   len(chars),
		position: 0,
		line:     1,
		column:   0,
	}, nil
}

// MustNew is like New but panics on a decode error.
func MustNew(text string) *Cursor {
	c, err := New(text)
	if err != nil {
		panic(err)
	}
	return c
}

// HasNext reports whether Next would return a rune.
func (c *Cursor) HasNext() bool {
	return c.position < c.length
}

// Peek returns the rune at the current position without consuming it.
func (c *Cursor) Peek() (rune, bool) {
	if c.position >= c.length {
		return 0, false
	}
	return c.chars[c.position], true
}

// Next consumes and returns the rune at the current position.
// At the end of text it returns false and leaves the state untouched.
func (c *Cursor) Next() (rune, bool) {
	if c.position >= c.length {
		return 0, false
	}
	ch := c.chars[c.position]
	c.prev = c.Location()
	c.hasPrev = true

	c.position++
	if ch == '\n' {
		c.line++
		c.column = 0
	} else {
		c.column++
	}
	return ch, true
}

// Back restores the state saved by the most recent Next and drops it.
// Without a saved state Back does nothing. It returns c for chaining.
func (c *Cursor) Back() *Cursor {
	if !c.hasPrev {
		return c
	}
	c.position = c.prev.Offset
	c.line = c.prev.Line
	c.column = c.prev.Column
	c.prev = Location{}
	c.hasPrev = false
	return c
}

// CanBack reports whether Back has a state to restore.
func (c *Cursor) CanBack() bool {
	return c.hasPrev
}

// Reset moves the cursor to the start of text and forgets the saved state.
func (c *Cursor) Reset() *Cursor {
	c.position = 0
	c.line = 1
	c.column = 0
	c.prev = Location{}
	c.hasPrev = false
	return c
}

// ThisLine returns the text of the line that contains the current position,
// without the terminating newline. The second result is false only when the
// cursor holds no text at all.
func (c *Cursor) ThisLine() (string, bool) {
	if c.length == 0 {
		return "", false
	}
	start := c.position
	for start > 0 && c.chars[start-1] != '\n' {
		start--
	}
	end := c.position
	for end < c.length && c.chars[end] != '\n' {
		end++
	}
	return string(c.chars[start:end]), true
}

// Position returns the number of runes consumed so far.
func (c *Cursor) Position() int { return c.position }

// Line returns the current 1-based line number.
func (c *Cursor) Line() int { return c.line }

// Column returns the 0-based offset within the current line.
func (c *Cursor) Column() int { return c.column }

// Len returns the number of runes in the text.
func (c *Cursor) Len() int { return c.length }

// Location returns the current position, line and column.
func (c *Cursor) Location() Location {
	return Location{Offset: c.position, Line: c.line, Column: c.column}
}

// String renders the cursor state for debugging and test failures.
func (c *Cursor) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Cursor{len=%d pos=%d line=%d col=%d text=%q}",
		c.length, c.position, c.line, c.column, string(c.chars))
	return sb.String()
}

func invalidOffset(text string) int {
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return len(text)
}
