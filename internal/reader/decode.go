package reader

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/unicode/norm"
)

// Options controls how raw bytes become the text a Cursor walks.
type Options struct {
	Encoding  string // имя из WHATWG (htmlindex); "" или "utf-8" значит без перекодировки
	Normalize string // "", nfc, nfd, nfkc, nfkd
}

// Decode transcodes data to UTF-8, optionally normalizes it and builds a Cursor.
func Decode(data []byte, opts Options) (*Cursor, error) {
	utf, err := Transcode(data, opts.Encoding)
	if err != nil {
		return nil, err
	}
	text := string(utf)
	form, err := ParseNormalization(opts.Normalize)
	if err != nil {
		return nil, err
	}
	if form != nil {
		// norm не проверяет корректность UTF-8, поэтому проверяем до нормализации
		if _, err := New(text); err != nil {
			return nil, err
		}
		text = form.String(text)
	}
	return New(text)
}

// LookupEncoding resolves a WHATWG encoding label. Empty and UTF-8 labels
// return nil, meaning no transcoding is needed.
func LookupEncoding(name string) (encoding.Encoding, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	if canonical, _ := htmlindex.Name(enc); canonical == "utf-8" {
		return nil, nil
	}
	return enc, nil
}

// ParseNormalization maps a form name to a norm.Form. Empty means none.
func ParseNormalization(name string) (*norm.Form, error) {
	var form norm.Form
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return nil, nil
	case "nfc":
		form = norm.NFC
	case "nfd":
		form = norm.NFD
	case "nfkc":
		form = norm.NFKC
	case "nfkd":
		form = norm.NFKD
	default:
		return nil, fmt.Errorf("%w: %q (expected nfc|nfd|nfkc|nfkd)", ErrUnknownNormalization, name)
	}
	return &form, nil
}

// Transcode converts data from the named encoding to UTF-8. UTF-8 input is
// returned as is and validated later by New. Malformed input fails with
// ErrInvalidEncoding instead of being replaced by U+FFFD.
func Transcode(data []byte, name string) ([]byte, error) {
	enc, err := LookupEncoding(name)
	if err != nil {
		return nil, err
	}
	if enc == nil {
		return data, nil
	}
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrInvalidEncoding, name, err)
	}
	// декодеры x/text подставляют U+FFFD вместо ошибки; настоящий U+FFFD
	// во входе переживает обратное кодирование, подстановка нет
	if bytes.ContainsRune(out, utf8.RuneError) {
		back, err := encoding.ReplaceUnsupported(enc.NewEncoder()).Bytes(out)
		if err != nil || !bytes.Equal(back, data) {
			return nil, fmt.Errorf("%w %s at byte %d", ErrInvalidEncoding, name, mismatchOffset(back, data))
		}
	}
	return out, nil
}

// mismatchOffset is the index of the first differing byte.
func mismatchOffset(a, b []byte) int {
	n := min(len(a), len(b))
	for i := range n {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}
