package melt

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrFormat            = errors.New("malformed input")
)

// Format represents a delimited-text format.
type Format string

const (
	CSV Format = "csv"
	TSV Format = "tsv"
)

var formats = []Format{CSV, TSV}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format string.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// codec is one format's parse/encode pair. Parsers produce positional
// records; Table construction and header handling are shared in table.go.
type codec struct {
	parse  func(text string) ([][]string, error)
	encode func(rows [][]string) string
}

var codecs = map[Format]codec{
	CSV: {parse: parseCSV, encode: encodeCSV},
	TSV: {parse: parseTSV, encode: encodeTSV},
}

// Encode serializes positional rows in the given format. Each row is
// terminated by a newline; encoding is total over any input.
func Encode(rows [][]string, f Format) (string, error) {
	c, ok := codecs[f]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
	return c.encode(rows), nil
}
