package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"fortio.org/safecast"
	"github.com/fatih/color"
	"github.com/vmihailenco/msgpack/v5"

	"textreader/internal/reader"
)

// CharRecord is one consumed rune together with the location it was read at.
type CharRecord struct {
	Offset uint32 `json:"offset" msgpack:"offset"`
	Line   uint32 `json:"line" msgpack:"line"`
	Column uint32 `json:"column" msgpack:"column"`
	Char   string `json:"char" msgpack:"char"`
	Code   uint32 `json:"code" msgpack:"code"`
}

// NewCharRecord converts a location and rune into a CharRecord.
func NewCharRecord(loc reader.Location, ch rune) (CharRecord, error) {
	off, err := safecast.Conv[uint32](loc.Offset)
	if err != nil {
		return CharRecord{}, fmt.Errorf("offset overflow: %w", err)
	}
	line, err := safecast.Conv[uint32](loc.Line)
	if err != nil {
		return CharRecord{}, fmt.Errorf("line overflow: %w", err)
	}
	col, err := safecast.Conv[uint32](loc.Column)
	if err != nil {
		return CharRecord{}, fmt.Errorf("column overflow: %w", err)
	}
	code, err := safecast.Conv[uint32](ch)
	if err != nil {
		return CharRecord{}, fmt.Errorf("rune overflow: %w", err)
	}
	return CharRecord{Offset: off, Line: line, Column: col, Char: string(ch), Code: code}, nil
}

// FormatCharsPretty выводит руны в человекочитаемом формате
func FormatCharsPretty(w io.Writer, records []CharRecord, opts CharsOpts) error {
	loc := color.New(color.FgCyan)
	if opts.Color {
		loc.EnableColor()
	} else {
		loc.DisableColor()
	}
	for _, rec := range records {
		// QuoteRune keeps '\n' and '\t' readable
		quoted := strconv.QuoteRune(rune(rec.Code))
		if _, err := fmt.Fprintf(w, "%6d  %s  %-10s U+%04X\n",
			rec.Offset,
			loc.Sprintf("%4d:%-4d", rec.Line, rec.Column),
			quoted, rec.Code); err != nil {
			return err
		}
	}
	return nil
}

// FormatCharsJSON выводит руны в JSON формате
func FormatCharsJSON(w io.Writer, records []CharRecord) error {
	if records == nil {
		records = []CharRecord{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(records)
}

// FormatCharsMsgpack writes the records as a single msgpack array.
func FormatCharsMsgpack(w io.Writer, records []CharRecord) error {
	enc := msgpack.NewEncoder(w)
	return enc.Encode(records)
}
