package driver

import (
	"textreader/internal/reader"
	"textreader/internal/source"
)

// Options bundles everything needed to turn a path into a Cursor.
type Options struct {
	Load   source.LoadOptions
	Decode reader.Options
	Limit  int // максимум рун в выводе walk, 0 значит без ограничения

	// PathMode selects how file paths are shown: auto|absolute|relative|basename.
	PathMode string
}
