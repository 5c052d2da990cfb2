package diagfmt

import (
	"encoding/json"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// FileStats summarizes one walked file.
type FileStats struct {
	Path            string `json:"path"`
	Bytes           int    `json:"bytes"`
	Runes           int    `json:"runes"`
	Lines           int    `json:"lines"`
	MaxColumn       int    `json:"max_column"`
	NonASCII        int    `json:"non_ascii"`
	TrailingNewline bool   `json:"trailing_newline"`
	Err             string `json:"error,omitempty"`
}

// FormatStatsPretty renders stats as a table.
func FormatStatsPretty(w io.Writer, stats []FileStats, colored bool) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	if colored {
		tw.SetStyle(table.StyleColoredDark)
	} else {
		tw.SetStyle(table.StyleLight)
	}
	tw.AppendHeader(table.Row{"FILE", "BYTES", "RUNES", "LINES", "MAX COL", "NON-ASCII", "EOL AT END"})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
	})
	for _, st := range stats {
		if st.Err != "" {
			tw.AppendRow(table.Row{st.Path, "error: " + st.Err})
			continue
		}
		tw.AppendRow(table.Row{
			st.Path,
			st.Bytes,
			st.Runes,
			st.Lines,
			st.MaxColumn,
			st.NonASCII,
			strconv.FormatBool(st.TrailingNewline),
		})
	}
	tw.Render()
}

// FormatStatsJSON renders stats as an indented JSON array.
func FormatStatsJSON(w io.Writer, stats []FileStats) error {
	if stats == nil {
		stats = []FileStats{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(stats)
}
