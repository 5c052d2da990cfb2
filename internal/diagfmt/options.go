package diagfmt

// SnippetOpts configures caret snippets.
type SnippetOpts struct {
	Color    bool
	TabWidth int  // ширина таба для выравнивания каретки, при 0 таб копируется как есть
	Gutter   bool // печатать номер строки слева
}

// CharsOpts configures character dumps.
type CharsOpts struct {
	Color bool
}
