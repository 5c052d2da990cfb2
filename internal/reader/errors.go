package reader

import "errors"

var (
	// ErrInvalidUTF8 is returned when the input is not valid UTF-8 after decoding.
	ErrInvalidUTF8 = errors.New("invalid UTF-8")
	// ErrInvalidEncoding is returned when the input has byte sequences that
	// are malformed for the selected encoding.
	ErrInvalidEncoding = errors.New("malformed input for encoding")
	// ErrUnknownEncoding is returned for an encoding name htmlindex does not know.
	ErrUnknownEncoding = errors.New("unknown encoding")
	// ErrUnknownNormalization is returned for a normalization form other than nfc|nfd|nfkc|nfkd.
	ErrUnknownNormalization = errors.New("unknown normalization form")
)
