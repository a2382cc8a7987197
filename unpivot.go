package melt

import "iter"

// Unpivot reshapes a wide table into long form. For each input row, in row
// order, it yields one output row per non-key column, in the table's
// declared column order: the row's key-column values (also in declared
// order), then the non-key column's identifier, then its value.
//
// Keys absent from the table are ignored; duplicates in keys have no effect
// beyond the first. A row whose columns are all keys yields nothing; with no
// keys at all, every column yields a row with an empty key prefix.
//
// The sequence is lazy, finite, and single-pass.
func Unpivot(t Table, keys []string) iter.Seq[[]string] {
	isKey := make(map[string]bool, len(keys))
	for _, k := range keys {
		isKey[k] = true
	}
	return func(yield func([]string) bool) {
		for _, row := range t.Rows {
			var prefix []string
			for i, col := range t.Columns {
				if isKey[col] {
					prefix = append(prefix, row[i])
				}
			}
			for i, col := range t.Columns {
				if isKey[col] {
					continue
				}
				out := make([]string, 0, len(prefix)+2)
				out = append(out, prefix...)
				out = append(out, col, row[i])
				if !yield(out) {
					return
				}
			}
		}
	}
}

// UnpivotHeader returns the header row for unpivoted output: the caller's
// keys verbatim, then "key" and "value". Callers should emit it only when
// the input itself declared headers.
func UnpivotHeader(keys []string) []string {
	header := make([]string, 0, len(keys)+2)
	header = append(header, keys...)
	return append(header, "key", "value")
}

// Collect materializes a row sequence into a slice. The encoder needs the
// full output before anything is written, so in-place rewrites never see a
// partial result.
func Collect(seq iter.Seq[[]string]) [][]string {
	var rows [][]string
	for row := range seq {
		rows = append(rows, row)
	}
	return rows
}
