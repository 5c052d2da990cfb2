package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"textreader/internal/reader"
)

func palette(enabled bool) (header, caret, gutter *color.Color) {
	header = color.New(color.Bold)
	caret = color.New(color.FgGreen, color.Bold)
	gutter = color.New(color.FgBlue)
	for _, c := range []*color.Color{header, caret, gutter} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return header, caret, gutter
}

// Snippet печатает позицию курсора в виде:
//
//	path:line:col: msg
//	   2 | text of the line
//	     |   ^
//
// Column in the header is 1-based, like compilers and editors print it.
func Snippet(w io.Writer, path string, c *reader.Cursor, msg string, opts SnippetOpts) error {
	header, caretColor, gutterColor := palette(opts.Color)

	loc := c.Location()
	head := fmt.Sprintf("%s:%d:%d:", path, loc.Line, loc.Column+1)
	if msg != "" {
		head += " " + msg
	}
	if _, err := fmt.Fprintln(w, header.Sprint(head)); err != nil {
		return err
	}

	line, ok := c.ThisLine()
	if !ok {
		return nil
	}
	text, pad := CaretLine(line, loc.Column, opts.TabWidth)

	prefix, blank := "", ""
	if opts.Gutter {
		num := strconv.Itoa(loc.Line)
		prefix = gutterColor.Sprintf("%4s | ", num)
		blank = gutterColor.Sprintf("%4s | ", "")
	}
	if _, err := fmt.Fprintf(w, "%s%s\n", prefix, text); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%s%s%s\n", blank, pad, caretColor.Sprint("^"))
	return err
}

// CaretLine returns the line as it should be printed and the padding that puts
// a caret under the rune at column. Wide runes take their display width;
// tabs are expanded to tabWidth stops, or copied into the padding when
// tabWidth is 0 so the terminal aligns both lines the same way.
func CaretLine(line string, column, tabWidth int) (text, pad string) {
	var out, sp strings.Builder
	width := 0
	for i, r := range []rune(line) {
		before := i < column
		switch {
		case r == '\t' && tabWidth > 0:
			n := tabWidth - width%tabWidth
			out.WriteString(strings.Repeat(" ", n))
			if before {
				sp.WriteString(strings.Repeat(" ", n))
			}
			width += n
		case r == '\t':
			out.WriteRune('\t')
			if before {
				sp.WriteRune('\t')
			}
		default:
			out.WriteRune(r)
			n := runewidth.RuneWidth(r)
			if before {
				sp.WriteString(strings.Repeat(" ", n))
			}
			width += n
		}
	}
	return out.String(), sp.String()
}
