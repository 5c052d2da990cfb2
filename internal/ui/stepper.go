package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"textreader/internal/diagfmt"
	"textreader/internal/reader"
)

const stepperTabWidth = 4

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	gutterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	caretStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	noteStyle   = lipgloss.NewStyle().Faint(true)
)

type stepperModel struct {
	path  string
	cur   *reader.Cursor
	keys  keyMap
	help  help.Model
	width int
	note  string
}

// NewStepper returns a Bubble Tea model that walks c one rune at a time.
// The model owns c while the program runs.
func NewStepper(path string, c *reader.Cursor) tea.Model {
	return &stepperModel{
		path:  path,
		cur:   c,
		keys:  defaultKeyMap(),
		help:  help.New(),
		width: 80,
	}
}

func (m *stepperModel) Init() tea.Cmd {
	return nil
}

func (m *stepperModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.help.Width = msg.Width
		}
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.next()
		case key.Matches(msg, m.keys.Back):
			if !m.cur.CanBack() {
				m.note = "nothing to undo: only the last step can be taken back"
				return m, nil
			}
			m.cur.Back()
			m.note = "back"
		case key.Matches(msg, m.keys.Reset):
			m.cur.Reset()
			m.note = "reset"
		case key.Matches(msg, m.keys.Line):
			start := m.cur.Line()
			for m.cur.HasNext() && m.cur.Line() == start {
				m.cur.Next()
			}
			m.note = "line " + strconv.Itoa(m.cur.Line())
		}
	}
	return m, nil
}

func (m *stepperModel) next() {
	ch, ok := m.cur.Next()
	if !ok {
		m.note = "end of text"
		return
	}
	m.note = "read " + strconv.QuoteRune(ch)
}

func (m *stepperModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.path))
	b.WriteString("\n\n")

	loc := m.cur.Location()
	gutter := gutterStyle.Render(fmt.Sprintf("%4d │ ", loc.Line))
	blank := gutterStyle.Render(fmt.Sprintf("%4s │ ", ""))
	if line, ok := m.cur.ThisLine(); ok {
		text, pad := diagfmt.CaretLine(line, loc.Column, stepperTabWidth)
		maxWidth := m.width - 7
		if maxWidth < 10 {
			maxWidth = 10
		}
		visible, caretAt := scrollLine(text, runewidth.StringWidth(pad), maxWidth)
		b.WriteString(gutter + visible + "\n")
		b.WriteString(blank + strings.Repeat(" ", caretAt) + caretStyle.Render("^") + "\n")
	} else {
		b.WriteString(gutter + noteStyle.Render("(empty text)") + "\n")
	}

	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.status()))
	b.WriteString("\n")
	if m.note != "" {
		b.WriteString(noteStyle.Render(m.note))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

// scrollLine fits text into maxWidth cells so that the caret cell caretAt
// stays on screen. Long lines are shifted left and marked with "…".
// It returns the visible text and the caret cell within it.
func scrollLine(text string, caretAt, maxWidth int) (string, int) {
	if caretAt < maxWidth-1 {
		return runewidth.Truncate(text, maxWidth, "…"), caretAt
	}
	start := caretAt - maxWidth/2
	skipped := 0
	cut := len(text)
	for i, r := range text {
		if skipped >= start {
			cut = i
			break
		}
		skipped += runewidth.RuneWidth(r)
	}
	visible := "…" + text[cut:]
	return runewidth.Truncate(visible, maxWidth, "…"), caretAt - skipped + runewidth.StringWidth("…")
}

func (m *stepperModel) status() string {
	peek := "EOF"
	if ch, ok := m.cur.Peek(); ok {
		peek = strconv.QuoteRune(ch)
	}
	return fmt.Sprintf("pos %d/%d  line %d  col %d  peek %s",
		m.cur.Position(), m.cur.Len(), m.cur.Line(), m.cur.Column(), peek)
}
