package loader

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultEncoding is the encoding used when Options.Encoding is empty.
const DefaultEncoding = "utf-8"

// decodingReader wraps r so that it yields UTF-8 text decoded from the named
// encoding. A byte order mark, if present, takes precedence over the label.
func decodingReader(r io.Reader, label string) (io.Reader, error) {
	if strings.TrimSpace(label) == "" {
		label = DefaultEncoding
	}

	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, label)
	}

	return transform.NewReader(r, unicode.BOMOverride(enc.NewDecoder())), nil
}

// ValidateEncoding reports whether label names a supported encoding.
func ValidateEncoding(label string) error {
	if strings.TrimSpace(label) == "" {
		return nil
	}
	if _, err := htmlindex.Get(label); err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownEncoding, label)
	}
	return nil
}
