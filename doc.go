// Package melt reshapes wide delimited-text tables into long (unpivoted)
// form: one output row per (input row, non-key column) pair, each carrying
// the key-column values plus the column's identifier and value.
//
// Two formats are supported, comma-delimited ([CSV], RFC 4180 quoting) and
// tab-delimited ([TSV], backslash-tab escaping, no quoting). Use
// [ParseFormat] to convert a CLI flag string into a [Format].
//
// # Pipeline
//
// [Parse] tokenizes text into a [Table]; [Unpivot] produces the long-form
// rows as a lazy sequence; [Collect] materializes them; [Encode] serializes
// positional rows back to text:
//
//	t, err := melt.Parse(text, melt.CSV, true)
//	rows := melt.Collect(melt.Unpivot(t, keys))
//	out, err := melt.Encode(rows, melt.CSV)
//
// When the input declares headers, prepend [UnpivotHeader] to the collected
// rows before encoding.
//
// # Column identifiers
//
// With headers, identifiers are the header names; without, they are
// positional indices rendered as decimal strings ("0", "1", ...).
//
// # Key handling
//
// Keys are permissive: identifiers absent from the table are silently
// ignored, and duplicates collapse. Key values in each output row follow the
// table's declared column order regardless of the order keys were supplied
// in. Callers wanting strict membership must check it themselves.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrUnsupportedFormat] — unknown format string
//   - [ErrFormat] — text cannot be tokenized under the format's grammar,
//     or rows have inconsistent field counts
package melt
