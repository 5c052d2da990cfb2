package source

// FileFlags encodes where the file came from and what SetText did to its text.
type FileFlags uint8

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota // добавлен не с диска (тест, stdin)
	FileHadBOM
	FileNormalizedCRLF
)

// File captures a loaded file. Content is raw after Load and UTF-8 text
// after SetText.
type File struct {
	Path    string
	Content []byte
	Size    int // размер исходных байтов до декодирования
	Flags   FileFlags
}

// LoadOptions controls the line-ending and BOM cleanup applied to decoded text.
type LoadOptions struct {
	KeepCRLF bool
	KeepBOM  bool
}
