package source

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Load reads a file from disk as raw bytes. "-" reads standard input.
// Content holds the undecoded bytes until SetText replaces them.
func Load(path string) (*File, error) {
	if path == "-" {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		return AddVirtual("<stdin>", content), nil
	}
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return newFile(path, content, 0), nil
}

// AddVirtual builds a File from memory with the FileVirtual flag.
func AddVirtual(name string, content []byte) *File {
	return newFile(name, content, FileVirtual)
}

func newFile(path string, content []byte, flags FileFlags) *File {
	return &File{
		Path:    normalizePath(path),
		Content: content,
		Size:    len(content),
		Flags:   flags,
	}
}

// SetText stores text, already decoded to UTF-8, as the file content after
// stripping a leading BOM and folding CRLF unless opts keeps them.
func (f *File) SetText(text []byte, opts LoadOptions) {
	f.Flags &^= FileHadBOM | FileNormalizedCRLF
	if !opts.KeepBOM {
		var hadBOM bool
		text, hadBOM = removeBOM(text)
		if hadBOM {
			f.Flags |= FileHadBOM
		}
	}
	if !opts.KeepCRLF {
		var hadCRLF bool
		text, hadCRLF = normalizeCRLF(text)
		if hadCRLF {
			f.Flags |= FileNormalizedCRLF
		}
	}
	f.Content = text
}

// FormatPath форматирует путь к файлу в зависимости от режима.
// mode: "absolute", "relative", "basename", "auto"
// baseDir: базовая директория для относительных путей (игнорируется для других режимов)
func (f *File) FormatPath(mode, baseDir string) string {
	if f.Flags&FileVirtual != 0 {
		return f.Path
	}
	switch mode {
	case "absolute":
		if abs, err := AbsolutePath(f.Path); err == nil {
			return abs
		}
		return f.Path

	case "relative":
		if baseDir == "" {
			if wd, err := os.Getwd(); err == nil {
				baseDir = wd
			}
		}
		if rel, err := RelativePath(f.Path, baseDir); err == nil {
			return rel
		}
		return f.Path

	case "basename":
		return BaseName(f.Path)

	case "auto":
		// Auto: если путь короткий или относительный - как есть, иначе basename
		if len(f.Path) < 40 || !filepath.IsAbs(f.Path) {
			return f.Path
		}
		return BaseName(f.Path)

	default:
		return f.Path
	}
}

// AbsolutePath returns the cleaned, slash-separated absolute form of p.
func AbsolutePath(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("abs %q: %w", p, err)
	}
	return normalizePath(abs), nil
}

// RelativePath returns p relative to baseDir. Paths that escape baseDir
// fall back to their absolute form.
func RelativePath(p, baseDir string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("abs %q: %w", p, err)
	}
	base, err := filepath.Abs(baseDir)
	if err != nil {
		return "", fmt.Errorf("abs %q: %w", baseDir, err)
	}
	rel, err := filepath.Rel(base, abs)
	if err != nil || rel == ".." || (len(rel) > 2 && rel[:3] == ".."+string(filepath.Separator)) {
		return normalizePath(abs), nil
	}
	return normalizePath(rel), nil
}

// BaseName returns the last element of p.
func BaseName(p string) string {
	return filepath.Base(p)
}
